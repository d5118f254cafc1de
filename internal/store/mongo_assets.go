package store

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"asset-hub-api-server/internal/models"
)

type MongoAssets struct {
	col *mongo.Collection
}

func (s *MongoAssets) Insert(ctx context.Context, a *models.Asset) error {
	result, err := s.col.InsertOne(ctx, a)
	if err != nil {
		return err
	}
	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		a.ID = oid
	}
	return nil
}

func (s *MongoAssets) FindByID(ctx context.Context, assetID, companyEmail string) (*models.Asset, error) {
	filter := bson.M{"assetID": assetID}
	if companyEmail != "" {
		filter["companyEmail"] = companyEmail
	}
	var asset models.Asset
	err := s.col.FindOne(ctx, filter).Decode(&asset)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &asset, nil
}

func (s *MongoAssets) List(ctx context.Context, f AssetFilter) ([]models.Asset, int64, error) {
	filter := bson.M{}
	if f.CompanyEmail != "" {
		filter["companyEmail"] = f.CompanyEmail
	}
	if f.Search != "" {
		filter["name"] = bson.M{"$regex": f.Search, "$options": "i"}
	}
	if f.Type != "" {
		filter["type"] = f.Type
	}

	total, err := s.col.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	opts := options.Find().SetSort(bson.M{"createdAt": -1})
	if f.Page > 0 && f.Limit > 0 {
		opts.SetSkip((f.Page - 1) * f.Limit).SetLimit(f.Limit)
	}

	cursor, err := s.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	var assets []models.Asset
	if err = cursor.All(ctx, &assets); err != nil {
		return nil, 0, err
	}
	if assets == nil {
		assets = []models.Asset{}
	}
	return assets, total, nil
}

// Update rewrites the asset and resets availableQuantity to the new total.
// Outstanding assignments are deliberately not reconciled.
func (s *MongoAssets) Update(ctx context.Context, assetID, companyEmail string, u AssetUpdate, now time.Time) (bool, error) {
	result, err := s.col.UpdateOne(ctx,
		bson.M{"assetID": assetID, "companyEmail": companyEmail},
		bson.M{"$set": bson.M{
			"name":              u.Name,
			"type":              u.Type,
			"quantity":          u.Quantity,
			"availableQuantity": u.Quantity,
			"updatedAt":         now,
		}})
	if err != nil {
		return false, err
	}
	return result.MatchedCount > 0, nil
}

func (s *MongoAssets) Delete(ctx context.Context, assetID, companyEmail string) (bool, error) {
	result, err := s.col.DeleteOne(ctx, bson.M{"assetID": assetID, "companyEmail": companyEmail})
	if err != nil {
		return false, err
	}
	return result.DeletedCount > 0, nil
}

// DecrementAvailable takes one unit only while availability remains, so two
// concurrent approvals can never both claim the last unit.
func (s *MongoAssets) DecrementAvailable(ctx context.Context, assetID, companyEmail string) (bool, error) {
	result, err := s.col.UpdateOne(ctx,
		bson.M{"assetID": assetID, "companyEmail": companyEmail, "availableQuantity": bson.M{"$gt": 0}},
		bson.M{"$inc": bson.M{"availableQuantity": -1}})
	if err != nil {
		return false, err
	}
	return result.ModifiedCount > 0, nil
}

// IncrementAvailable gives one unit back, capped at the total quantity.
func (s *MongoAssets) IncrementAvailable(ctx context.Context, assetID string) (bool, error) {
	result, err := s.col.UpdateOne(ctx,
		bson.M{"assetID": assetID, "$expr": bson.M{"$lt": bson.A{"$availableQuantity", "$quantity"}}},
		bson.M{"$inc": bson.M{"availableQuantity": 1}})
	if err != nil {
		return false, err
	}
	return result.ModifiedCount > 0, nil
}

func (s *MongoAssets) CountByType(ctx context.Context, companyEmail string) ([]AssetTypeCount, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"companyEmail": companyEmail}}},
		{{Key: "$group", Value: bson.M{"_id": "$type", "count": bson.M{"$sum": 1}}}},
	}
	cursor, err := s.col.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var counts []AssetTypeCount
	if err = cursor.All(ctx, &counts); err != nil {
		return nil, err
	}
	if counts == nil {
		counts = []AssetTypeCount{}
	}
	return counts, nil
}
