// Package scope resolves a verified caller identity into a typed scope
// object. Every store query downstream takes the scope's email as part of
// its filter, so cross-tenant access is structurally impossible rather than
// filtered after the fact.
package scope

import (
	"context"

	"asset-hub-api-server/internal/apperr"
	"asset-hub-api-server/internal/models"
	"asset-hub-api-server/internal/store"
)

// HRScope is the company-scoping record for an HR caller. The company is
// identified by the HR's own email.
type HRScope struct {
	Email            string `json:"email"`
	Name             string `json:"name"`
	CompanyName      string `json:"companyName"`
	CompanyLogo      string `json:"companyLogo,omitempty"`
	PackageName      string `json:"packageName,omitempty"`
	EmployeeLimit    int    `json:"employeeLimit"`
	CurrentEmployees int    `json:"currentEmployees"`
}

// EmployeeScope identifies an employee caller.
type EmployeeScope struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

type Guard struct {
	users store.Users
}

func NewGuard(users store.Users) *Guard {
	return &Guard{users: users}
}

// RequireHR resolves email to an HR scope, failing with Forbidden when the
// stored role is not "hr".
func (g *Guard) RequireHR(ctx context.Context, email string) (*HRScope, error) {
	user, err := g.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, apperr.Wrap(apperr.Internal, "failed to resolve caller", err)
	}
	if user == nil {
		return nil, apperr.New(apperr.Unauthenticated, "unknown caller identity")
	}
	if user.Role != models.RoleHR {
		return nil, apperr.New(apperr.Forbidden, "hr role required")
	}
	return &HRScope{
		Email:            user.Email,
		Name:             user.Name,
		CompanyName:      user.CompanyName,
		CompanyLogo:      user.CompanyLogo,
		PackageName:      user.PackageName,
		EmployeeLimit:    user.EmployeeLimit,
		CurrentEmployees: user.CurrentEmployees,
	}, nil
}

// RequireEmployee resolves email to an employee scope.
func (g *Guard) RequireEmployee(ctx context.Context, email string) (*EmployeeScope, error) {
	user, err := g.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, apperr.Wrap(apperr.Internal, "failed to resolve caller", err)
	}
	if user == nil {
		return nil, apperr.New(apperr.Unauthenticated, "unknown caller identity")
	}
	if user.Role != models.RoleEmployee {
		return nil, apperr.New(apperr.Forbidden, "employee role required")
	}
	return &EmployeeScope{Email: user.Email, Name: user.Name}, nil
}
