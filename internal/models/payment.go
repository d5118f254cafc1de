package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Payment records a confirmed checkout from the payment processor. A unique
// index on transactionID makes re-confirmation idempotent.
type Payment struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	PaymentID     string             `bson:"paymentID" json:"paymentID"` // e.g. "PAY-52A0D7E8"
	TransactionID string             `bson:"transactionID" json:"transactionID"`
	CompanyEmail  string             `bson:"companyEmail" json:"companyEmail"`
	PackageName   string             `bson:"packageName" json:"packageName"`
	EmployeeLimit int                `bson:"employeeLimit" json:"employeeLimit"`
	AmountPaid    float64            `bson:"amountPaid" json:"amountPaid"`
	PaidAt        time.Time          `bson:"paidAt" json:"paidAt"`
}
