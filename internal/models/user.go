package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Roles stored on the user document.
const (
	RoleHR       = "hr"
	RoleEmployee = "employee"
)

// User matches a document in the "users" collection. A company is identified
// by its HR's email; the package/limit/counter fields are only meaningful on
// HR documents.
type User struct {
	ID               primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Email            string             `bson:"email" json:"email"`
	Name             string             `bson:"name" json:"name"`
	Password         string             `bson:"password" json:"-"`
	Role             string             `bson:"role" json:"role"`
	CompanyName      string             `bson:"companyName,omitempty" json:"companyName,omitempty"`
	CompanyLogo      string             `bson:"companyLogo,omitempty" json:"companyLogo,omitempty"`
	PackageName      string             `bson:"packageName,omitempty" json:"packageName,omitempty"`
	EmployeeLimit    int                `bson:"employeeLimit,omitempty" json:"employeeLimit,omitempty"`
	CurrentEmployees int                `bson:"currentEmployees" json:"currentEmployees"`
	CreatedAt        time.Time          `bson:"createdAt" json:"createdAt"`
}
