package workflow

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"asset-hub-api-server/internal/models"
	"asset-hub-api-server/internal/store"
)

// The fakes below implement the store interfaces over mutex-guarded maps.
// Each conditional write checks its precondition and applies its update under
// one lock acquisition, matching the atomicity of the Mongo implementation.

type fakeAssets struct {
	mu   sync.Mutex
	byID map[string]*models.Asset
}

func newFakeAssets() *fakeAssets {
	return &fakeAssets{byID: make(map[string]*models.Asset)}
}

func (f *fakeAssets) Insert(_ context.Context, a *models.Asset) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	cp := *a
	f.byID[a.AssetID] = &cp
	return nil
}

func (f *fakeAssets) FindByID(_ context.Context, assetID, companyEmail string) (*models.Asset, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	a, ok := f.byID[assetID]
	if !ok || (companyEmail != "" && a.CompanyEmail != companyEmail) {
		return nil, nil
	}
	cp := *a
	return &cp, nil
}

func (f *fakeAssets) List(_ context.Context, filter store.AssetFilter) ([]models.Asset, int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Asset
	for _, a := range f.byID {
		if filter.CompanyEmail != "" && a.CompanyEmail != filter.CompanyEmail {
			continue
		}
		if filter.Type != "" && a.Type != filter.Type {
			continue
		}
		if filter.Search != "" && !strings.Contains(strings.ToLower(a.Name), strings.ToLower(filter.Search)) {
			continue
		}
		out = append(out, *a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].AssetID < out[j].AssetID })
	return out, int64(len(out)), nil
}

func (f *fakeAssets) Update(_ context.Context, assetID, companyEmail string, u store.AssetUpdate, now time.Time) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	a, ok := f.byID[assetID]
	if !ok || a.CompanyEmail != companyEmail {
		return false, nil
	}
	a.Name = u.Name
	a.Type = u.Type
	a.Quantity = u.Quantity
	a.AvailableQuantity = u.Quantity
	a.UpdatedAt = now
	return true, nil
}

func (f *fakeAssets) Delete(_ context.Context, assetID, companyEmail string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	a, ok := f.byID[assetID]
	if !ok || a.CompanyEmail != companyEmail {
		return false, nil
	}
	delete(f.byID, assetID)
	return true, nil
}

func (f *fakeAssets) DecrementAvailable(_ context.Context, assetID, companyEmail string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	a, ok := f.byID[assetID]
	if !ok || a.CompanyEmail != companyEmail || a.AvailableQuantity <= 0 {
		return false, nil
	}
	a.AvailableQuantity--
	return true, nil
}

func (f *fakeAssets) IncrementAvailable(_ context.Context, assetID string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	a, ok := f.byID[assetID]
	if !ok || a.AvailableQuantity >= a.Quantity {
		return false, nil
	}
	a.AvailableQuantity++
	return true, nil
}

func (f *fakeAssets) CountByType(_ context.Context, companyEmail string) ([]store.AssetTypeCount, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	counts := make(map[string]int64)
	for _, a := range f.byID {
		if a.CompanyEmail == companyEmail {
			counts[a.Type]++
		}
	}
	var out []store.AssetTypeCount
	for t, n := range counts {
		out = append(out, store.AssetTypeCount{Type: t, Count: n})
	}
	return out, nil
}

type fakeRequests struct {
	mu   sync.Mutex
	byID map[string]*models.Request
}

func newFakeRequests() *fakeRequests {
	return &fakeRequests{byID: make(map[string]*models.Request)}
}

func (f *fakeRequests) Insert(_ context.Context, r *models.Request) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	cp := *r
	f.byID[r.RequestID] = &cp
	return nil
}

func (f *fakeRequests) FindPending(_ context.Context, requestID, companyEmail string) (*models.Request, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	r, ok := f.byID[requestID]
	if !ok || r.CompanyEmail != companyEmail || r.Status != models.RequestStatusPending {
		return nil, nil
	}
	cp := *r
	return &cp, nil
}

func (f *fakeRequests) List(_ context.Context, filter store.RequestFilter) ([]models.Request, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Request
	for _, r := range f.byID {
		if filter.CompanyEmail != "" && r.CompanyEmail != filter.CompanyEmail {
			continue
		}
		if filter.RequesterEmail != "" && r.RequesterEmail != filter.RequesterEmail {
			continue
		}
		if filter.Status != "" && r.Status != filter.Status {
			continue
		}
		out = append(out, *r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].RequestID < out[j].RequestID })
	return out, nil
}

func (f *fakeRequests) Resolve(_ context.Context, requestID, status string, at time.Time) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	r, ok := f.byID[requestID]
	if !ok || r.Status != models.RequestStatusPending {
		return false, nil
	}
	r.Status = status
	r.ResolutionDate = &at
	return true, nil
}

func (f *fakeRequests) CountPending(_ context.Context, companyEmail string) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var n int64
	for _, r := range f.byID {
		if r.CompanyEmail == companyEmail && r.Status == models.RequestStatusPending {
			n++
		}
	}
	return n, nil
}

func (f *fakeRequests) TopRequested(_ context.Context, companyEmail string, limit int64) ([]store.AssetRequestCount, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	counts := make(map[string]int64)
	for _, r := range f.byID {
		if r.CompanyEmail == companyEmail {
			counts[r.AssetName]++
		}
	}
	var out []store.AssetRequestCount
	for name, n := range counts {
		out = append(out, store.AssetRequestCount{AssetName: name, Count: n})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Count > out[j].Count })
	if int64(len(out)) > limit {
		out = out[:limit]
	}
	return out, nil
}

type fakeAssignments struct {
	mu   sync.Mutex
	byID map[string]*models.Assignment
}

func newFakeAssignments() *fakeAssignments {
	return &fakeAssignments{byID: make(map[string]*models.Assignment)}
}

func (f *fakeAssignments) Insert(_ context.Context, a *models.Assignment) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	cp := *a
	f.byID[a.AssignmentID] = &cp
	return nil
}

func (f *fakeAssignments) Remove(_ context.Context, assignmentID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.byID, assignmentID)
	return nil
}

func (f *fakeAssignments) FindOwned(_ context.Context, assignmentID, employeeEmail string) (*models.Assignment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	a, ok := f.byID[assignmentID]
	if !ok || a.EmployeeEmail != employeeEmail {
		return nil, nil
	}
	cp := *a
	return &cp, nil
}

func (f *fakeAssignments) List(_ context.Context, filter store.AssignmentFilter) ([]models.Assignment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Assignment
	for _, a := range f.byID {
		if filter.CompanyEmail != "" && a.CompanyEmail != filter.CompanyEmail {
			continue
		}
		if filter.EmployeeEmail != "" && a.EmployeeEmail != filter.EmployeeEmail {
			continue
		}
		if filter.Status != "" && a.Status != filter.Status {
			continue
		}
		out = append(out, *a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].AssignmentID < out[j].AssignmentID })
	return out, nil
}

func (f *fakeAssignments) MarkReturned(_ context.Context, assignmentID, employeeEmail string, at time.Time) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	a, ok := f.byID[assignmentID]
	if !ok || a.EmployeeEmail != employeeEmail || a.Status != models.AssignmentStatusAssigned {
		return false, nil
	}
	a.Status = models.AssignmentStatusReturned
	a.ReturnedAt = &at
	return true, nil
}

func (f *fakeAssignments) MarkReturnedByCompany(_ context.Context, assignmentID, companyEmail string, at time.Time) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	a, ok := f.byID[assignmentID]
	if !ok || a.CompanyEmail != companyEmail || a.Status != models.AssignmentStatusAssigned {
		return false, nil
	}
	a.Status = models.AssignmentStatusReturned
	a.ReturnedAt = &at
	return true, nil
}

type affiliationKey struct {
	employee string
	company  string
}

type fakeAffiliations struct {
	mu     sync.Mutex
	byPair map[affiliationKey]*models.Affiliation
}

func newFakeAffiliations() *fakeAffiliations {
	return &fakeAffiliations{byPair: make(map[affiliationKey]*models.Affiliation)}
}

func (f *fakeAffiliations) Insert(_ context.Context, a *models.Affiliation) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	key := affiliationKey{a.EmployeeEmail, a.CompanyEmail}
	if _, ok := f.byPair[key]; ok {
		return store.ErrDuplicate
	}
	cp := *a
	f.byPair[key] = &cp
	return nil
}

func (f *fakeAffiliations) FindActive(_ context.Context, employeeEmail, companyEmail string) (*models.Affiliation, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	a, ok := f.byPair[affiliationKey{employeeEmail, companyEmail}]
	if !ok || a.Status != models.AffiliationStatusActive {
		return nil, nil
	}
	cp := *a
	return &cp, nil
}

func (f *fakeAffiliations) Reactivate(_ context.Context, employeeEmail, companyEmail string) (bool, error) {
	return f.flip(employeeEmail, companyEmail, models.AffiliationStatusInactive, models.AffiliationStatusActive), nil
}

func (f *fakeAffiliations) Deactivate(_ context.Context, employeeEmail, companyEmail string) (bool, error) {
	return f.flip(employeeEmail, companyEmail, models.AffiliationStatusActive, models.AffiliationStatusInactive), nil
}

func (f *fakeAffiliations) flip(employeeEmail, companyEmail, from, to string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	a, ok := f.byPair[affiliationKey{employeeEmail, companyEmail}]
	if !ok || a.Status != from {
		return false
	}
	a.Status = to
	return true
}

func (f *fakeAffiliations) ListActive(_ context.Context, companyEmail string) ([]models.Affiliation, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Affiliation
	for _, a := range f.byPair {
		if a.CompanyEmail == companyEmail && a.Status == models.AffiliationStatusActive {
			out = append(out, *a)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].EmployeeEmail < out[j].EmployeeEmail })
	return out, nil
}

type fakeUsers struct {
	mu      sync.Mutex
	byEmail map[string]*models.User
}

func newFakeUsers() *fakeUsers {
	return &fakeUsers{byEmail: make(map[string]*models.User)}
}

func (f *fakeUsers) Insert(_ context.Context, u *models.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.byEmail[u.Email]; ok {
		return store.ErrDuplicate
	}
	cp := *u
	f.byEmail[u.Email] = &cp
	return nil
}

func (f *fakeUsers) FindByEmail(_ context.Context, email string) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.byEmail[email]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (f *fakeUsers) IncrementEmployees(_ context.Context, hrEmail string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.byEmail[hrEmail]
	if !ok || u.CurrentEmployees >= u.EmployeeLimit {
		return false, nil
	}
	u.CurrentEmployees++
	return true, nil
}

func (f *fakeUsers) DecrementEmployees(_ context.Context, hrEmail string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.byEmail[hrEmail]
	if !ok || u.CurrentEmployees <= 0 {
		return false, nil
	}
	u.CurrentEmployees--
	return true, nil
}

func (f *fakeUsers) ApplyPackage(_ context.Context, hrEmail, packageName string, employeeLimit int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if u, ok := f.byEmail[hrEmail]; ok {
		u.PackageName = packageName
		u.EmployeeLimit = employeeLimit
	}
	return nil
}

func (f *fakeUsers) SetCompanyLogo(_ context.Context, hrEmail, logoURL string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if u, ok := f.byEmail[hrEmail]; ok {
		u.CompanyLogo = logoURL
	}
	return nil
}

type fakePackages struct {
	mu     sync.Mutex
	byName map[string]*models.Package
}

func newFakePackages() *fakePackages {
	return &fakePackages{byName: make(map[string]*models.Package)}
}

func (f *fakePackages) List(_ context.Context) ([]models.Package, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Package
	for _, p := range f.byName {
		out = append(out, *p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].EmployeeLimit < out[j].EmployeeLimit })
	return out, nil
}

func (f *fakePackages) FindByName(_ context.Context, name string) (*models.Package, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.byName[name]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

type fakePayments struct {
	mu    sync.Mutex
	byTxn map[string]*models.Payment
}

func newFakePayments() *fakePayments {
	return &fakePayments{byTxn: make(map[string]*models.Payment)}
}

func (f *fakePayments) Insert(_ context.Context, p *models.Payment) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.byTxn[p.TransactionID]; ok {
		return store.ErrDuplicate
	}
	cp := *p
	f.byTxn[p.TransactionID] = &cp
	return nil
}

func (f *fakePayments) FindByTransaction(_ context.Context, transactionID string) (*models.Payment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.byTxn[transactionID]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (f *fakePayments) List(_ context.Context, companyEmail string) ([]models.Payment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Payment
	for _, p := range f.byTxn {
		if p.CompanyEmail == companyEmail {
			out = append(out, *p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].PaymentID < out[j].PaymentID })
	return out, nil
}
