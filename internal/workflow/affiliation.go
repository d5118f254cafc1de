package workflow

import (
	"context"
	"errors"
	"time"

	"asset-hub-api-server/internal/apperr"
	"asset-hub-api-server/internal/models"
	"asset-hub-api-server/internal/scope"
	"asset-hub-api-server/internal/store"
)

// Affiliations maintains the employee-company membership and the company's
// employee counter. Creation is lazy and idempotent: the first approved
// request establishes the affiliation, later approvals find it in place.
type Affiliations struct {
	affiliations store.Affiliations
	users        store.Users
	assignments  *Assignments
}

func NewAffiliations(affiliations store.Affiliations, users store.Users, assignments *Assignments) *Affiliations {
	return &Affiliations{affiliations: affiliations, users: users, assignments: assignments}
}

// Ensure returns the active affiliation for (employee, company), creating or
// reactivating one if needed. The employee counter moves exactly once per
// admission, guarded by the package limit.
func (a *Affiliations) Ensure(ctx context.Context, employeeEmail, employeeName string, hr *scope.HRScope) (*models.Affiliation, error) {
	existing, err := a.affiliations.FindActive(ctx, employeeEmail, hr.Email)
	if err != nil {
		return nil, apperr.Wrap(apperr.Internal, "failed to look up affiliation", err)
	}
	if existing != nil {
		return existing, nil
	}

	// Admit through the guarded counter first; the affiliation document
	// follows. A failure after the increment rolls the counter back.
	ok, err := a.users.IncrementEmployees(ctx, hr.Email)
	if err != nil {
		return nil, apperr.Wrap(apperr.Internal, "failed to update employee counter", err)
	}
	if !ok {
		return nil, apperr.New(apperr.Conflict, "employee limit reached for current package")
	}

	reactivated, err := a.affiliations.Reactivate(ctx, employeeEmail, hr.Email)
	if err != nil {
		_, _ = a.users.DecrementEmployees(ctx, hr.Email)
		return nil, apperr.Wrap(apperr.Internal, "failed to reactivate affiliation", err)
	}
	if reactivated {
		return a.affiliations.FindActive(ctx, employeeEmail, hr.Email)
	}

	affiliation := &models.Affiliation{
		AffiliationID: newID("AFF"),
		EmployeeEmail: employeeEmail,
		EmployeeName:  employeeName,
		CompanyEmail:  hr.Email,
		Status:        models.AffiliationStatusActive,
		CreatedAt:     time.Now(),
	}
	err = a.affiliations.Insert(ctx, affiliation)
	if errors.Is(err, store.ErrDuplicate) {
		// A concurrent approval created the pair first; yield to it.
		_, _ = a.users.DecrementEmployees(ctx, hr.Email)
		return a.affiliations.FindActive(ctx, employeeEmail, hr.Email)
	}
	if err != nil {
		_, _ = a.users.DecrementEmployees(ctx, hr.Email)
		return nil, apperr.Wrap(apperr.Internal, "failed to create affiliation", err)
	}
	return affiliation, nil
}

// RemoveEmployee deactivates the affiliation, returns every outstanding
// assignment, and decrements the employee counter exactly once no matter how
// many assignments were cascaded.
func (a *Affiliations) RemoveEmployee(ctx context.Context, employeeEmail string, hr *scope.HRScope) (int, error) {
	ok, err := a.affiliations.Deactivate(ctx, employeeEmail, hr.Email)
	if err != nil {
		return 0, apperr.Wrap(apperr.Internal, "failed to deactivate affiliation", err)
	}
	if !ok {
		return 0, apperr.New(apperr.NotFound, "no active affiliation for this employee")
	}

	cascaded, cascadeErr := a.assignments.TerminateForRemoval(ctx, employeeEmail, hr.Email)

	if _, err := a.users.DecrementEmployees(ctx, hr.Email); err != nil {
		return cascaded, apperr.Wrap(apperr.Internal, "failed to update employee counter", err)
	}
	if cascadeErr != nil {
		return cascaded, cascadeErr
	}
	return cascaded, nil
}

func (a *Affiliations) ListEmployees(ctx context.Context, hr *scope.HRScope) ([]models.Affiliation, error) {
	affiliations, err := a.affiliations.ListActive(ctx, hr.Email)
	if err != nil {
		return nil, apperr.Wrap(apperr.Internal, "failed to query affiliations", err)
	}
	return affiliations, nil
}
