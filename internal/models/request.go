package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	RequestStatusPending  = "pending"
	RequestStatusApproved = "approved"
	RequestStatusRejected = "rejected"
)

// Request is an employee's asset request. Transitions are one-way: pending
// moves to approved or rejected exactly once and is never revisited.
type Request struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	RequestID      string             `bson:"requestID" json:"requestID"` // e.g. "REQ-4D11BE02"
	AssetID        string             `bson:"assetID" json:"assetID"`
	AssetName      string             `bson:"assetName" json:"assetName"`
	RequesterEmail string             `bson:"requesterEmail" json:"requesterEmail"`
	RequesterName  string             `bson:"requesterName" json:"requesterName"`
	CompanyEmail   string             `bson:"companyEmail" json:"companyEmail"`
	Note           string             `bson:"note,omitempty" json:"note,omitempty"`
	Status         string             `bson:"status" json:"status"`
	RequestDate    time.Time          `bson:"requestDate" json:"requestDate"`
	ResolutionDate *time.Time         `bson:"resolutionDate,omitempty" json:"resolutionDate,omitempty"`
}
