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

// Requests runs the request state machine: pending -> approved | rejected,
// one-way, never revisited. Approval is the only multi-entity step; it is
// decomposed into single-document conditional writes with rollback of the
// steps already applied when a later one fails.
type Requests struct {
	requests     store.Requests
	assets       store.Assets
	assignments  store.Assignments
	affiliations *Affiliations
}

func NewRequests(requests store.Requests, assets store.Assets, assignments store.Assignments, affiliations *Affiliations) *Requests {
	return &Requests{
		requests:     requests,
		assets:       assets,
		assignments:  assignments,
		affiliations: affiliations,
	}
}

type RequestInput struct {
	AssetID string
	Note    string
}

// Create files a pending request. The asset is deliberately not validated
// here; a request against a since-deleted asset is caught at approval time.
func (r *Requests) Create(ctx context.Context, employee *scope.EmployeeScope, companyEmail string, in RequestInput) (*models.Request, error) {
	if in.AssetID == "" {
		return nil, apperr.New(apperr.InvalidInput, "assetID is required")
	}
	if companyEmail == "" {
		return nil, apperr.New(apperr.InvalidInput, "companyEmail is required")
	}

	assetName := in.AssetID
	if asset, err := r.assets.FindByID(ctx, in.AssetID, companyEmail); err == nil && asset != nil {
		assetName = asset.Name
	}

	request := &models.Request{
		RequestID:      newID("REQ"),
		AssetID:        in.AssetID,
		AssetName:      assetName,
		RequesterEmail: employee.Email,
		RequesterName:  employee.Name,
		CompanyEmail:   companyEmail,
		Note:           in.Note,
		Status:         models.RequestStatusPending,
		RequestDate:    time.Now(),
	}
	if err := r.requests.Insert(ctx, request); err != nil {
		return nil, apperr.Wrap(apperr.Internal, "failed to create request", err)
	}
	return request, nil
}

// Approve resolves a pending request in the HR's scope and applies the
// assignment side effects. Order: scoped pending lookup -> asset lookup ->
// conditional availability decrement -> assignment insert -> affiliation
// ensure -> request CAS pending->approved. Everything after the decrement is
// undone if a later step fails, so a failed approval never leaves a claimed
// unit behind.
func (r *Requests) Approve(ctx context.Context, requestID string, hr *scope.HRScope) (*models.Assignment, error) {
	request, err := r.requests.FindPending(ctx, requestID, hr.Email)
	if err != nil {
		return nil, apperr.Wrap(apperr.Internal, "failed to look up request", err)
	}
	if request == nil {
		return nil, apperr.New(apperr.NotFound, "no pending request with this id")
	}

	asset, err := r.assets.FindByID(ctx, request.AssetID, hr.Email)
	if err != nil {
		return nil, apperr.Wrap(apperr.Internal, "failed to look up asset", err)
	}
	if asset == nil {
		return nil, apperr.New(apperr.NotFound, "requested asset no longer exists")
	}

	ok, err := r.assets.DecrementAvailable(ctx, request.AssetID, hr.Email)
	if err != nil {
		return nil, apperr.Wrap(apperr.Internal, "failed to claim asset availability", err)
	}
	if !ok {
		return nil, apperr.New(apperr.Conflict, "asset has no available quantity")
	}

	now := time.Now()
	assignment := &models.Assignment{
		AssignmentID:  newID("ASG"),
		AssetID:       asset.AssetID,
		AssetName:     asset.Name,
		AssetType:     asset.Type,
		RequestID:     request.RequestID,
		EmployeeEmail: request.RequesterEmail,
		CompanyEmail:  hr.Email,
		Status:        models.AssignmentStatusAssigned,
		AssignedAt:    now,
	}
	if err := r.assignments.Insert(ctx, assignment); err != nil {
		r.undoDecrement(ctx, asset.AssetID)
		return nil, apperr.Wrap(apperr.Internal, "failed to create assignment", err)
	}

	if _, err := r.affiliations.Ensure(ctx, request.RequesterEmail, request.RequesterName, hr); err != nil {
		r.undoAssignment(ctx, assignment.AssignmentID)
		r.undoDecrement(ctx, asset.AssetID)
		return nil, err
	}

	resolved, err := r.requests.Resolve(ctx, requestID, models.RequestStatusApproved, now)
	if err != nil {
		r.undoAssignment(ctx, assignment.AssignmentID)
		r.undoDecrement(ctx, asset.AssetID)
		return nil, apperr.Wrap(apperr.Internal, "failed to resolve request", err)
	}
	if !resolved {
		// A concurrent duplicate approval won the CAS; its side effects
		// stand, ours are undone. The affiliation stays: the winner ensured
		// the same one, so our ensure was a no-op.
		r.undoAssignment(ctx, assignment.AssignmentID)
		r.undoDecrement(ctx, asset.AssetID)
		return nil, apperr.New(apperr.Conflict, "request was already resolved")
	}

	return assignment, nil
}

// Reject resolves a pending request with no side effects beyond the status.
// The rejected request is returned so the caller can notify the requester.
func (r *Requests) Reject(ctx context.Context, requestID string, hr *scope.HRScope) (*models.Request, error) {
	request, err := r.requests.FindPending(ctx, requestID, hr.Email)
	if err != nil {
		return nil, apperr.Wrap(apperr.Internal, "failed to look up request", err)
	}
	if request == nil {
		return nil, apperr.New(apperr.NotFound, "no pending request with this id")
	}

	now := time.Now()
	resolved, err := r.requests.Resolve(ctx, requestID, models.RequestStatusRejected, now)
	if err != nil {
		return nil, apperr.Wrap(apperr.Internal, "failed to resolve request", err)
	}
	if !resolved {
		return nil, apperr.New(apperr.Conflict, "request was already resolved")
	}

	request.Status = models.RequestStatusRejected
	request.ResolutionDate = &now
	return request, nil
}

func (r *Requests) ListForCompany(ctx context.Context, hr *scope.HRScope, status, requesterEmail string) ([]models.Request, error) {
	requests, err := r.requests.List(ctx, store.RequestFilter{
		CompanyEmail:   hr.Email,
		RequesterEmail: requesterEmail,
		Status:         status,
	})
	if err != nil {
		return nil, apperr.Wrap(apperr.Internal, "failed to query requests", err)
	}
	return requests, nil
}

func (r *Requests) ListForEmployee(ctx context.Context, employee *scope.EmployeeScope, status string) ([]models.Request, error) {
	requests, err := r.requests.List(ctx, store.RequestFilter{
		RequesterEmail: employee.Email,
		Status:         status,
	})
	if err != nil {
		return nil, apperr.Wrap(apperr.Internal, "failed to query requests", err)
	}
	return requests, nil
}

func (r *Requests) undoDecrement(ctx context.Context, assetID string) {
	if _, err := r.assets.IncrementAvailable(ctx, assetID); err != nil {
		log.Error().Err(err).Str("assetID", assetID).Msg("failed to undo availability decrement")
	}
}

func (r *Requests) undoAssignment(ctx context.Context, assignmentID string) {
	if err := r.assignments.Remove(ctx, assignmentID); err != nil {
		log.Error().Err(err).Str("assignmentID", assignmentID).Msg("failed to undo assignment insert")
	}
}
