package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"asset-hub-api-server/internal/models"
)

type MongoUsers struct {
	col *mongo.Collection
}

func (s *MongoUsers) Insert(ctx context.Context, u *models.User) error {
	result, err := s.col.InsertOne(ctx, u)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicate
		}
		return err
	}
	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		u.ID = oid
	}
	return nil
}

func (s *MongoUsers) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := s.col.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// IncrementEmployees admits one more employee only while the counter is below
// the package limit, so the limit cannot be overshot by concurrent approvals.
func (s *MongoUsers) IncrementEmployees(ctx context.Context, hrEmail string) (bool, error) {
	result, err := s.col.UpdateOne(ctx,
		bson.M{
			"email": hrEmail,
			"$expr": bson.M{"$lt": bson.A{"$currentEmployees", "$employeeLimit"}},
		},
		bson.M{"$inc": bson.M{"currentEmployees": 1}})
	if err != nil {
		return false, err
	}
	return result.ModifiedCount > 0, nil
}

func (s *MongoUsers) DecrementEmployees(ctx context.Context, hrEmail string) (bool, error) {
	result, err := s.col.UpdateOne(ctx,
		bson.M{"email": hrEmail, "currentEmployees": bson.M{"$gt": 0}},
		bson.M{"$inc": bson.M{"currentEmployees": -1}})
	if err != nil {
		return false, err
	}
	return result.ModifiedCount > 0, nil
}

func (s *MongoUsers) ApplyPackage(ctx context.Context, hrEmail, packageName string, employeeLimit int) error {
	_, err := s.col.UpdateOne(ctx,
		bson.M{"email": hrEmail},
		bson.M{"$set": bson.M{"packageName": packageName, "employeeLimit": employeeLimit}})
	return err
}

func (s *MongoUsers) SetCompanyLogo(ctx context.Context, hrEmail, logoURL string) error {
	_, err := s.col.UpdateOne(ctx,
		bson.M{"email": hrEmail},
		bson.M{"$set": bson.M{"companyLogo": logoURL}})
	return err
}
