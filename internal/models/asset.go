package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	AssetTypeReturnable    = "Returnable"
	AssetTypeNonReturnable = "NonReturnable"
)

// Asset is an inventory item owned by one company. AvailableQuantity is only
// ever mutated through the ledger's conditional increment/decrement, so
// 0 <= availableQuantity <= quantity holds at all times.
type Asset struct {
	ID                primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	AssetID           string             `bson:"assetID" json:"assetID"` // e.g. "AST-9F2C41AB"
	CompanyEmail      string             `bson:"companyEmail" json:"companyEmail"`
	Name              string             `bson:"name" json:"name"`
	Type              string             `bson:"type" json:"type"`
	Quantity          int                `bson:"quantity" json:"quantity"`
	AvailableQuantity int                `bson:"availableQuantity" json:"availableQuantity"`
	CreatedAt         time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt         time.Time          `bson:"updatedAt" json:"updatedAt"`
}
