package store

import (
	"go.mongodb.org/mongo-driver/mongo"
)

// Collection names.
const (
	colUsers        = "users"
	colAssets       = "assets"
	colRequests     = "asset_requests"
	colAssignments  = "assigned_assets"
	colAffiliations = "employee_affiliations"
	colPackages     = "packages"
	colPayments     = "payments"
)

// Mongo bundles the MongoDB-backed stores behind one handle, created once at
// process start and passed to each component.
type Mongo struct {
	Users        *MongoUsers
	Assets       *MongoAssets
	Requests     *MongoRequests
	Assignments  *MongoAssignments
	Affiliations *MongoAffiliations
	Packages     *MongoPackages
	Payments     *MongoPayments
}

func NewMongo(db *mongo.Database) *Mongo {
	return &Mongo{
		Users:        &MongoUsers{col: db.Collection(colUsers)},
		Assets:       &MongoAssets{col: db.Collection(colAssets)},
		Requests:     &MongoRequests{col: db.Collection(colRequests)},
		Assignments:  &MongoAssignments{col: db.Collection(colAssignments)},
		Affiliations: &MongoAffiliations{col: db.Collection(colAffiliations)},
		Packages:     &MongoPackages{col: db.Collection(colPackages)},
		Payments:     &MongoPayments{col: db.Collection(colPayments)},
	}
}
