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

// Payments records confirmed checkouts from the payment processor and applies
// the package upgrade. The unique transactionID index makes re-confirmation a
// read instead of a second record.
type Payments struct {
	payments store.Payments
	packages store.Packages
	users    store.Users
}

func NewPayments(payments store.Payments, packages store.Packages, users store.Users) *Payments {
	return &Payments{payments: payments, packages: packages, users: users}
}

type PaymentInput struct {
	PackageName   string
	TransactionID string
	AmountPaid    float64
}

// Confirm consumes the processor's confirmation tuple and upgrades the HR's
// package. Replaying the same transactionID returns the recorded payment.
func (p *Payments) Confirm(ctx context.Context, hr *scope.HRScope, in PaymentInput) (*models.Payment, error) {
	if in.TransactionID == "" {
		return nil, apperr.New(apperr.InvalidInput, "transactionID is required")
	}

	pkg, err := p.packages.FindByName(ctx, in.PackageName)
	if err != nil {
		return nil, apperr.Wrap(apperr.Internal, "failed to look up package", err)
	}
	if pkg == nil {
		return nil, apperr.New(apperr.NotFound, "unknown package")
	}

	payment := &models.Payment{
		PaymentID:     newID("PAY"),
		TransactionID: in.TransactionID,
		CompanyEmail:  hr.Email,
		PackageName:   pkg.Name,
		EmployeeLimit: pkg.EmployeeLimit,
		AmountPaid:    in.AmountPaid,
		PaidAt:        time.Now(),
	}
	err = p.payments.Insert(ctx, payment)
	if errors.Is(err, store.ErrDuplicate) {
		existing, ferr := p.payments.FindByTransaction(ctx, in.TransactionID)
		if ferr != nil {
			return nil, apperr.Wrap(apperr.Internal, "failed to look up payment", ferr)
		}
		if existing == nil || existing.CompanyEmail != hr.Email {
			// Another company recorded this transactionID; its payment must
			// not be readable from here.
			return nil, apperr.New(apperr.Conflict, "transactionID already used")
		}
		// A retry that previously failed between the record and the upgrade
		// still owes the upgrade; ApplyPackage is an idempotent $set.
		if err := p.users.ApplyPackage(ctx, hr.Email, existing.PackageName, existing.EmployeeLimit); err != nil {
			return nil, apperr.Wrap(apperr.Internal, "failed to apply package upgrade", err)
		}
		return existing, nil
	}
	if err != nil {
		return nil, apperr.Wrap(apperr.Internal, "failed to record payment", err)
	}

	if err := p.users.ApplyPackage(ctx, hr.Email, pkg.Name, pkg.EmployeeLimit); err != nil {
		return nil, apperr.Wrap(apperr.Internal, "failed to apply package upgrade", err)
	}
	return payment, nil
}

func (p *Payments) History(ctx context.Context, hr *scope.HRScope) ([]models.Payment, error) {
	payments, err := p.payments.List(ctx, hr.Email)
	if err != nil {
		return nil, apperr.Wrap(apperr.Internal, "failed to query payments", err)
	}
	return payments, nil
}

func (p *Payments) ListPackages(ctx context.Context) ([]models.Package, error) {
	packages, err := p.packages.List(ctx)
	if err != nil {
		return nil, apperr.Wrap(apperr.Internal, "failed to query packages", err)
	}
	return packages, nil
}
