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

type MongoRequests struct {
	col *mongo.Collection
}

func (s *MongoRequests) Insert(ctx context.Context, r *models.Request) error {
	result, err := s.col.InsertOne(ctx, r)
	if err != nil {
		return err
	}
	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		r.ID = oid
	}
	return nil
}

func (s *MongoRequests) FindPending(ctx context.Context, requestID, companyEmail string) (*models.Request, error) {
	var request models.Request
	err := s.col.FindOne(ctx, bson.M{
		"requestID":    requestID,
		"companyEmail": companyEmail,
		"status":       models.RequestStatusPending,
	}).Decode(&request)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &request, nil
}

func (s *MongoRequests) List(ctx context.Context, f RequestFilter) ([]models.Request, error) {
	filter := bson.M{}
	if f.CompanyEmail != "" {
		filter["companyEmail"] = f.CompanyEmail
	}
	if f.RequesterEmail != "" {
		filter["requesterEmail"] = f.RequesterEmail
	}
	if f.Status != "" {
		filter["status"] = f.Status
	}

	opts := options.Find().SetSort(bson.M{"requestDate": -1})
	cursor, err := s.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var requests []models.Request
	if err = cursor.All(ctx, &requests); err != nil {
		return nil, err
	}
	if requests == nil {
		requests = []models.Request{}
	}
	return requests, nil
}

// Resolve is the one-way transition out of pending. The status filter makes
// a second resolution of the same request miss.
func (s *MongoRequests) Resolve(ctx context.Context, requestID, status string, at time.Time) (bool, error) {
	result, err := s.col.UpdateOne(ctx,
		bson.M{"requestID": requestID, "status": models.RequestStatusPending},
		bson.M{"$set": bson.M{"status": status, "resolutionDate": at}})
	if err != nil {
		return false, err
	}
	return result.ModifiedCount > 0, nil
}

func (s *MongoRequests) CountPending(ctx context.Context, companyEmail string) (int64, error) {
	return s.col.CountDocuments(ctx, bson.M{
		"companyEmail": companyEmail,
		"status":       models.RequestStatusPending,
	})
}

func (s *MongoRequests) TopRequested(ctx context.Context, companyEmail string, limit int64) ([]AssetRequestCount, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"companyEmail": companyEmail}}},
		{{Key: "$group", Value: bson.M{"_id": "$assetName", "count": bson.M{"$sum": 1}}}},
		{{Key: "$sort", Value: bson.M{"count": -1}}},
		{{Key: "$limit", Value: limit}},
	}
	cursor, err := s.col.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var counts []AssetRequestCount
	if err = cursor.All(ctx, &counts); err != nil {
		return nil, err
	}
	if counts == nil {
		counts = []AssetRequestCount{}
	}
	return counts, nil
}
