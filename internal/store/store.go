// Package store is the storage seam between the workflow services and
// MongoDB. Every method that backs a cross-entity invariant is a single
// conditional write (filter precondition + update in one call), never a
// read-then-write sequence.
package store

import (
	"context"
	"errors"
	"time"

	"asset-hub-api-server/internal/models"
)

// ErrDuplicate is returned by inserts that hit a unique index.
var ErrDuplicate = errors.New("duplicate key")

type AssetFilter struct {
	CompanyEmail string // empty = all companies (employee catalog browsing)
	Search       string // case-insensitive name match
	Type         string
	Page         int64 // 1-based; 0 means no pagination
	Limit        int64
}

type AssetUpdate struct {
	Name     string
	Type     string
	Quantity int
}

type RequestFilter struct {
	CompanyEmail   string
	RequesterEmail string
	Status         string
}

type AssignmentFilter struct {
	CompanyEmail  string
	EmployeeEmail string
	Status        string
}

type AssetTypeCount struct {
	Type  string `bson:"_id"`
	Count int64  `bson:"count"`
}

type AssetRequestCount struct {
	AssetName string `bson:"_id"`
	Count     int64  `bson:"count"`
}

type Assets interface {
	Insert(ctx context.Context, a *models.Asset) error
	// FindByID returns (nil, nil) when no asset matches the id within the
	// company scope.
	FindByID(ctx context.Context, assetID, companyEmail string) (*models.Asset, error)
	List(ctx context.Context, f AssetFilter) ([]models.Asset, int64, error)
	Update(ctx context.Context, assetID, companyEmail string, u AssetUpdate, now time.Time) (bool, error)
	Delete(ctx context.Context, assetID, companyEmail string) (bool, error)
	// DecrementAvailable applies available-- only while available > 0.
	DecrementAvailable(ctx context.Context, assetID, companyEmail string) (bool, error)
	// IncrementAvailable applies available++ only while available < total.
	IncrementAvailable(ctx context.Context, assetID string) (bool, error)
	CountByType(ctx context.Context, companyEmail string) ([]AssetTypeCount, error)
}

type Requests interface {
	Insert(ctx context.Context, r *models.Request) error
	// FindPending returns (nil, nil) unless a pending request matches
	// (requestID, companyEmail).
	FindPending(ctx context.Context, requestID, companyEmail string) (*models.Request, error)
	List(ctx context.Context, f RequestFilter) ([]models.Request, error)
	// Resolve flips pending to status; reports false when the request was
	// already resolved by a concurrent caller.
	Resolve(ctx context.Context, requestID, status string, at time.Time) (bool, error)
	CountPending(ctx context.Context, companyEmail string) (int64, error)
	TopRequested(ctx context.Context, companyEmail string, limit int64) ([]AssetRequestCount, error)
}

type Assignments interface {
	Insert(ctx context.Context, a *models.Assignment) error
	// Remove deletes an assignment document. Only used to undo a half-applied
	// approval.
	Remove(ctx context.Context, assignmentID string) error
	FindOwned(ctx context.Context, assignmentID, employeeEmail string) (*models.Assignment, error)
	List(ctx context.Context, f AssignmentFilter) ([]models.Assignment, error)
	// MarkReturned flips assigned to returned for the employee's own
	// assignment; false when no such assigned document exists.
	MarkReturned(ctx context.Context, assignmentID, employeeEmail string, at time.Time) (bool, error)
	// MarkReturnedByCompany is the administrative variant scoped by company.
	MarkReturnedByCompany(ctx context.Context, assignmentID, companyEmail string, at time.Time) (bool, error)
}

type Affiliations interface {
	// Insert fails with ErrDuplicate when the (employee, company) pair
	// already has a document.
	Insert(ctx context.Context, a *models.Affiliation) error
	FindActive(ctx context.Context, employeeEmail, companyEmail string) (*models.Affiliation, error)
	// Reactivate flips inactive back to active; false when no inactive
	// document exists for the pair.
	Reactivate(ctx context.Context, employeeEmail, companyEmail string) (bool, error)
	Deactivate(ctx context.Context, employeeEmail, companyEmail string) (bool, error)
	ListActive(ctx context.Context, companyEmail string) ([]models.Affiliation, error)
}

type Users interface {
	Insert(ctx context.Context, u *models.User) error
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	// IncrementEmployees applies currentEmployees++ only while the counter is
	// below employeeLimit; false means the package limit is reached.
	IncrementEmployees(ctx context.Context, hrEmail string) (bool, error)
	DecrementEmployees(ctx context.Context, hrEmail string) (bool, error)
	ApplyPackage(ctx context.Context, hrEmail, packageName string, employeeLimit int) error
	SetCompanyLogo(ctx context.Context, hrEmail, logoURL string) error
}

type Packages interface {
	List(ctx context.Context) ([]models.Package, error)
	FindByName(ctx context.Context, name string) (*models.Package, error)
}

type Payments interface {
	// Insert fails with ErrDuplicate when the transactionID was already
	// recorded.
	Insert(ctx context.Context, p *models.Payment) error
	FindByTransaction(ctx context.Context, transactionID string) (*models.Payment, error)
	List(ctx context.Context, companyEmail string) ([]models.Payment, error)
}
