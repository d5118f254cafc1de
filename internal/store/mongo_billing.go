package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"asset-hub-api-server/internal/models"
)

type MongoPackages struct {
	col *mongo.Collection
}

func (s *MongoPackages) List(ctx context.Context) ([]models.Package, error) {
	opts := options.Find().SetSort(bson.M{"employeeLimit": 1})
	cursor, err := s.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var packages []models.Package
	if err = cursor.All(ctx, &packages); err != nil {
		return nil, err
	}
	if packages == nil {
		packages = []models.Package{}
	}
	return packages, nil
}

func (s *MongoPackages) FindByName(ctx context.Context, name string) (*models.Package, error) {
	var pkg models.Package
	err := s.col.FindOne(ctx, bson.M{"name": name}).Decode(&pkg)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &pkg, nil
}

type MongoPayments struct {
	col *mongo.Collection
}

func (s *MongoPayments) Insert(ctx context.Context, p *models.Payment) error {
	result, err := s.col.InsertOne(ctx, p)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicate
		}
		return err
	}
	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		p.ID = oid
	}
	return nil
}

func (s *MongoPayments) FindByTransaction(ctx context.Context, transactionID string) (*models.Payment, error) {
	var payment models.Payment
	err := s.col.FindOne(ctx, bson.M{"transactionID": transactionID}).Decode(&payment)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &payment, nil
}

func (s *MongoPayments) List(ctx context.Context, companyEmail string) ([]models.Payment, error) {
	opts := options.Find().SetSort(bson.M{"paidAt": -1})
	cursor, err := s.col.Find(ctx, bson.M{"companyEmail": companyEmail}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var payments []models.Payment
	if err = cursor.All(ctx, &payments); err != nil {
		return nil, err
	}
	if payments == nil {
		payments = []models.Payment{}
	}
	return payments, nil
}
