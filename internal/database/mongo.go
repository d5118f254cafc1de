package database

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"asset-hub-api-server/config"
)

// Connect opens the MongoDB client and verifies the connection with a ping.
// The returned client is the process-wide storage handle; it is passed down
// explicitly and closed on shutdown.
func Connect(cfg config.MongoConfig) (*mongo.Client, error) {
	if cfg.URI == "" {
		return nil, fmt.Errorf("mongo URI is required (set MONGO_URI)")
	}

	clientOptions := options.Client().
		ApplyURI(cfg.URI).
		SetConnectTimeout(20 * time.Second).
		SetServerSelectionTimeout(15 * time.Second).
		SetMaxPoolSize(50)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to create MongoDB client: %w", err)
	}

	ctxPing, cancelPing := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelPing()

	if err = client.Ping(ctxPing, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}

	return client, nil
}

func Disconnect(client *mongo.Client) {
	if client == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = client.Disconnect(ctx)
}

// EnsureIndexes creates the unique indexes the workflow invariants lean on:
// one user per email, one affiliation document per (employee, company) pair,
// one payment per transaction, and unique friendly IDs per collection.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	unique := options.Index().SetUnique(true)

	indexes := map[string][]mongo.IndexModel{
		"users": {
			{Keys: bson.D{{Key: "email", Value: 1}}, Options: unique},
		},
		"assets": {
			{Keys: bson.D{{Key: "assetID", Value: 1}}, Options: unique},
			{Keys: bson.D{{Key: "companyEmail", Value: 1}}},
		},
		"asset_requests": {
			{Keys: bson.D{{Key: "requestID", Value: 1}}, Options: unique},
			{Keys: bson.D{{Key: "companyEmail", Value: 1}, {Key: "status", Value: 1}}},
			{Keys: bson.D{{Key: "requesterEmail", Value: 1}}},
		},
		"assigned_assets": {
			{Keys: bson.D{{Key: "assignmentID", Value: 1}}, Options: unique},
			{Keys: bson.D{{Key: "employeeEmail", Value: 1}, {Key: "status", Value: 1}}},
			{Keys: bson.D{{Key: "companyEmail", Value: 1}, {Key: "status", Value: 1}}},
		},
		"employee_affiliations": {
			{Keys: bson.D{{Key: "employeeEmail", Value: 1}, {Key: "companyEmail", Value: 1}}, Options: unique},
		},
		"packages": {
			{Keys: bson.D{{Key: "name", Value: 1}}, Options: unique},
		},
		"payments": {
			{Keys: bson.D{{Key: "transactionID", Value: 1}}, Options: unique},
		},
	}

	for collection, models := range indexes {
		if _, err := db.Collection(collection).Indexes().CreateMany(ctx, models); err != nil {
			return fmt.Errorf("failed to create indexes for %s: %w", collection, err)
		}
	}
	return nil
}
