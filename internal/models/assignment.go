package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	AssignmentStatusAssigned = "assigned"
	AssignmentStatusReturned = "returned"
)

// Assignment records an asset handed to an employee following an approved
// request. AssetType is denormalized so the return check does not depend on
// the asset document still existing.
type Assignment struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	AssignmentID  string             `bson:"assignmentID" json:"assignmentID"` // e.g. "ASG-07C3F5D9"
	AssetID       string             `bson:"assetID" json:"assetID"`
	AssetName     string             `bson:"assetName" json:"assetName"`
	AssetType     string             `bson:"assetType" json:"assetType"`
	RequestID     string             `bson:"requestID" json:"requestID"`
	EmployeeEmail string             `bson:"employeeEmail" json:"employeeEmail"`
	CompanyEmail  string             `bson:"companyEmail" json:"companyEmail"`
	Status        string             `bson:"status" json:"status"`
	AssignedAt    time.Time          `bson:"assignedAt" json:"assignedAt"`
	ReturnedAt    *time.Time         `bson:"returnedAt,omitempty" json:"returnedAt,omitempty"`
}
