package database

import (
	"context"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"asset-hub-api-server/internal/models"
)

var defaultPackages = []models.Package{
	{Name: "basic", EmployeeLimit: 5, PriceUSD: 5},
	{Name: "standard", EmployeeLimit: 10, PriceUSD: 8},
	{Name: "premium", EmployeeLimit: 20, PriceUSD: 15},
}

// SeedPackages inserts the subscription tiers on first boot.
func SeedPackages(ctx context.Context, db *mongo.Database) error {
	collection := db.Collection("packages")

	count, err := collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return err
	}
	if count > 0 {
		log.Info().Msg("Packages already exist. Seeding skipped.")
		return nil
	}

	docs := make([]interface{}, len(defaultPackages))
	for i, pkg := range defaultPackages {
		docs[i] = pkg
	}
	if _, err := collection.InsertMany(ctx, docs); err != nil {
		return err
	}

	log.Info().Int("count", len(defaultPackages)).Msg("Packages seeded successfully.")
	return nil
}
