package workflow

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"asset-hub-api-server/internal/apperr"
	"asset-hub-api-server/internal/models"
	"asset-hub-api-server/internal/scope"
	"asset-hub-api-server/internal/store"
)

// Assignments creates and terminates assignment records. Termination pairs a
// status CAS with an availability increment; the CAS makes replays miss, so
// the increment can never be applied twice for one assignment.
type Assignments struct {
	assignments store.Assignments
	assets      store.Assets
}

func NewAssignments(assignments store.Assignments, assets store.Assets) *Assignments {
	return &Assignments{assignments: assignments, assets: assets}
}

// Return hands a returnable asset back: assigned -> returned, then
// availability++. Replayed returns fail with NotFound because the CAS
// matches nothing.
func (s *Assignments) Return(ctx context.Context, assignmentID string, employee *scope.EmployeeScope) (*models.Assignment, error) {
	assignment, err := s.assignments.FindOwned(ctx, assignmentID, employee.Email)
	if err != nil {
		return nil, apperr.Wrap(apperr.Internal, "failed to look up assignment", err)
	}
	if assignment == nil || assignment.Status != models.AssignmentStatusAssigned {
		return nil, apperr.New(apperr.NotFound, "no assigned asset with this id")
	}
	if assignment.AssetType != models.AssetTypeReturnable {
		return nil, apperr.New(apperr.Conflict, "this asset type is not returnable")
	}

	now := time.Now()
	ok, err := s.assignments.MarkReturned(ctx, assignmentID, employee.Email, now)
	if err != nil {
		return nil, apperr.Wrap(apperr.Internal, "failed to return asset", err)
	}
	if !ok {
		// A concurrent return won the CAS.
		return nil, apperr.New(apperr.NotFound, "no assigned asset with this id")
	}

	if _, err := s.assets.IncrementAvailable(ctx, assignment.AssetID); err != nil {
		// The assignment is already returned; retrying the call cannot
		// double-apply because the CAS above will miss.
		return nil, apperr.Wrap(apperr.Internal, "failed to restore asset availability", err)
	}

	assignment.Status = models.AssignmentStatusReturned
	assignment.ReturnedAt = &now
	return assignment, nil
}

// TerminateForRemoval returns every outstanding assignment between the
// employee and the company. Each CAS+increment pair is atomic on its own;
// a partial cascade is reported, not rolled back.
func (s *Assignments) TerminateForRemoval(ctx context.Context, employeeEmail, companyEmail string) (int, error) {
	outstanding, err := s.assignments.List(ctx, store.AssignmentFilter{
		CompanyEmail:  companyEmail,
		EmployeeEmail: employeeEmail,
		Status:        models.AssignmentStatusAssigned,
	})
	if err != nil {
		return 0, apperr.Wrap(apperr.Internal, "failed to query assignments", err)
	}

	terminated := 0
	for _, assignment := range outstanding {
		ok, err := s.assignments.MarkReturnedByCompany(ctx, assignment.AssignmentID, companyEmail, time.Now())
		if err != nil {
			return terminated, apperr.Wrap(apperr.Internal, "removal cascade failed partway", err)
		}
		if !ok {
			// Already returned by the employee in the meantime.
			continue
		}
		if _, err := s.assets.IncrementAvailable(ctx, assignment.AssetID); err != nil {
			log.Error().Err(err).
				Str("assignmentID", assignment.AssignmentID).
				Str("assetID", assignment.AssetID).
				Msg("availability not restored during removal cascade")
			return terminated, apperr.Wrap(apperr.Internal, "removal cascade failed partway", err)
		}
		terminated++
	}
	return terminated, nil
}

// ListForCompany lists assignments within the HR's company.
func (s *Assignments) ListForCompany(ctx context.Context, hr *scope.HRScope, status string) ([]models.Assignment, error) {
	assignments, err := s.assignments.List(ctx, store.AssignmentFilter{CompanyEmail: hr.Email, Status: status})
	if err != nil {
		return nil, apperr.Wrap(apperr.Internal, "failed to query assignments", err)
	}
	return assignments, nil
}

// ListForEmployee lists the employee's own assignments.
func (s *Assignments) ListForEmployee(ctx context.Context, employee *scope.EmployeeScope, status string) ([]models.Assignment, error) {
	assignments, err := s.assignments.List(ctx, store.AssignmentFilter{EmployeeEmail: employee.Email, Status: status})
	if err != nil {
		return nil, apperr.Wrap(apperr.Internal, "failed to query assignments", err)
	}
	return assignments, nil
}
