package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	AffiliationStatusActive   = "active"
	AffiliationStatusInactive = "inactive"
)

// Affiliation is the durable employee-to-company membership, established on
// the first approved request. A unique index on (employeeEmail, companyEmail)
// guarantees one document per pair; removal flips it to inactive and a later
// re-hire reactivates the same document.
type Affiliation struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	AffiliationID string             `bson:"affiliationID" json:"affiliationID"` // e.g. "AFF-1B8E6A30"
	EmployeeEmail string             `bson:"employeeEmail" json:"employeeEmail"`
	EmployeeName  string             `bson:"employeeName" json:"employeeName"`
	CompanyEmail  string             `bson:"companyEmail" json:"companyEmail"`
	Status        string             `bson:"status" json:"status"`
	CreatedAt     time.Time          `bson:"createdAt" json:"createdAt"`
}
