package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"asset-hub-api-server/internal/models"
)

type MongoAffiliations struct {
	col *mongo.Collection
}

// Insert relies on the unique (employeeEmail, companyEmail) index; a racing
// insert for the same pair surfaces as ErrDuplicate instead of a second
// document.
func (s *MongoAffiliations) Insert(ctx context.Context, a *models.Affiliation) error {
	result, err := s.col.InsertOne(ctx, a)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicate
		}
		return err
	}
	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		a.ID = oid
	}
	return nil
}

func (s *MongoAffiliations) FindActive(ctx context.Context, employeeEmail, companyEmail string) (*models.Affiliation, error) {
	var affiliation models.Affiliation
	err := s.col.FindOne(ctx, bson.M{
		"employeeEmail": employeeEmail,
		"companyEmail":  companyEmail,
		"status":        models.AffiliationStatusActive,
	}).Decode(&affiliation)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &affiliation, nil
}

func (s *MongoAffiliations) Reactivate(ctx context.Context, employeeEmail, companyEmail string) (bool, error) {
	return s.flip(ctx, employeeEmail, companyEmail,
		models.AffiliationStatusInactive, models.AffiliationStatusActive)
}

func (s *MongoAffiliations) Deactivate(ctx context.Context, employeeEmail, companyEmail string) (bool, error) {
	return s.flip(ctx, employeeEmail, companyEmail,
		models.AffiliationStatusActive, models.AffiliationStatusInactive)
}

func (s *MongoAffiliations) flip(ctx context.Context, employeeEmail, companyEmail, from, to string) (bool, error) {
	result, err := s.col.UpdateOne(ctx,
		bson.M{"employeeEmail": employeeEmail, "companyEmail": companyEmail, "status": from},
		bson.M{"$set": bson.M{"status": to}})
	if err != nil {
		return false, err
	}
	return result.ModifiedCount > 0, nil
}

func (s *MongoAffiliations) ListActive(ctx context.Context, companyEmail string) ([]models.Affiliation, error) {
	opts := options.Find().SetSort(bson.M{"createdAt": -1})
	cursor, err := s.col.Find(ctx, bson.M{
		"companyEmail": companyEmail,
		"status":       models.AffiliationStatusActive,
	}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var affiliations []models.Affiliation
	if err = cursor.All(ctx, &affiliations); err != nil {
		return nil, err
	}
	if affiliations == nil {
		affiliations = []models.Affiliation{}
	}
	return affiliations, nil
}
