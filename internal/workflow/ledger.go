package workflow

import (
	"context"
	"time"

	"asset-hub-api-server/internal/apperr"
	"asset-hub-api-server/internal/models"
	"asset-hub-api-server/internal/scope"
	"asset-hub-api-server/internal/store"
)

// Ledger owns asset quantities. Availability moves only through the store's
// conditional increment/decrement, keeping 0 <= available <= total.
type Ledger struct {
	assets store.Assets
}

func NewLedger(assets store.Assets) *Ledger {
	return &Ledger{assets: assets}
}

type AssetInput struct {
	Name     string
	Type     string
	Quantity int
}

func validateAssetInput(in AssetInput) error {
	if in.Name == "" {
		return apperr.New(apperr.InvalidInput, "asset name is required")
	}
	if in.Type != models.AssetTypeReturnable && in.Type != models.AssetTypeNonReturnable {
		return apperr.Newf(apperr.InvalidInput, "asset type must be %q or %q",
			models.AssetTypeReturnable, models.AssetTypeNonReturnable)
	}
	if in.Quantity < 0 {
		return apperr.New(apperr.InvalidInput, "quantity cannot be negative")
	}
	return nil
}

// CreateAsset registers a new asset with available = total.
func (l *Ledger) CreateAsset(ctx context.Context, hr *scope.HRScope, in AssetInput) (*models.Asset, error) {
	if err := validateAssetInput(in); err != nil {
		return nil, err
	}

	now := time.Now()
	asset := &models.Asset{
		AssetID:           newID("AST"),
		CompanyEmail:      hr.Email,
		Name:              in.Name,
		Type:              in.Type,
		Quantity:          in.Quantity,
		AvailableQuantity: in.Quantity,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	if err := l.assets.Insert(ctx, asset); err != nil {
		return nil, apperr.Wrap(apperr.Internal, "failed to create asset", err)
	}
	return asset, nil
}

// EditAsset rewrites the asset and resets available to the new total.
// Outstanding assignments are not reconciled; this is the documented edit
// policy, not an oversight.
func (l *Ledger) EditAsset(ctx context.Context, hr *scope.HRScope, assetID string, in AssetInput) (*models.Asset, error) {
	if err := validateAssetInput(in); err != nil {
		return nil, err
	}

	ok, err := l.assets.Update(ctx, assetID, hr.Email, store.AssetUpdate{
		Name:     in.Name,
		Type:     in.Type,
		Quantity: in.Quantity,
	}, time.Now())
	if err != nil {
		return nil, apperr.Wrap(apperr.Internal, "failed to update asset", err)
	}
	if !ok {
		return nil, apperr.New(apperr.NotFound, "asset not found")
	}
	return l.GetAsset(ctx, hr, assetID)
}

func (l *Ledger) DeleteAsset(ctx context.Context, hr *scope.HRScope, assetID string) error {
	ok, err := l.assets.Delete(ctx, assetID, hr.Email)
	if err != nil {
		return apperr.Wrap(apperr.Internal, "failed to delete asset", err)
	}
	if !ok {
		return apperr.New(apperr.NotFound, "asset not found")
	}
	return nil
}

func (l *Ledger) GetAsset(ctx context.Context, hr *scope.HRScope, assetID string) (*models.Asset, error) {
	asset, err := l.assets.FindByID(ctx, assetID, hr.Email)
	if err != nil {
		return nil, apperr.Wrap(apperr.Internal, "failed to retrieve asset", err)
	}
	if asset == nil {
		return nil, apperr.New(apperr.NotFound, "asset not found")
	}
	return asset, nil
}

// ListAssets lists the HR's own assets.
func (l *Ledger) ListAssets(ctx context.Context, hr *scope.HRScope, f store.AssetFilter) ([]models.Asset, int64, error) {
	f.CompanyEmail = hr.Email
	assets, total, err := l.assets.List(ctx, f)
	if err != nil {
		return nil, 0, apperr.Wrap(apperr.Internal, "failed to query assets", err)
	}
	return assets, total, nil
}

// BrowseCatalog lists assets across companies for employees filing requests.
// Affiliation only exists after a first approval, so employee reads cannot be
// scoped to an affiliated company.
func (l *Ledger) BrowseCatalog(ctx context.Context, f store.AssetFilter) ([]models.Asset, int64, error) {
	f.CompanyEmail = ""
	assets, total, err := l.assets.List(ctx, f)
	if err != nil {
		return nil, 0, apperr.Wrap(apperr.Internal, "failed to query assets", err)
	}
	return assets, total, nil
}
