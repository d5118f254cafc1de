package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Package is a subscription tier limiting how many employees a company may
// affiliate. Seeded at startup, read-only afterwards.
type Package struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name          string             `bson:"name" json:"name"`
	EmployeeLimit int                `bson:"employeeLimit" json:"employeeLimit"`
	PriceUSD      float64            `bson:"priceUSD" json:"priceUSD"`
}
