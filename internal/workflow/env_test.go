package workflow

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"asset-hub-api-server/internal/models"
	"asset-hub-api-server/internal/scope"
)

const (
	testHREmail       = "hr@acme.test"
	testEmployeeEmail = "casey@employees.test"
)

type env struct {
	assets       *fakeAssets
	requests     *fakeRequests
	assignments  *fakeAssignments
	affiliations *fakeAffiliations
	users        *fakeUsers
	packages     *fakePackages
	payments     *fakePayments

	ledger          *Ledger
	requestService  *Requests
	assignService   *Assignments
	affiliationsSvc *Affiliations
	paymentService  *Payments

	hr       *scope.HRScope
	employee *scope.EmployeeScope
}

func newEnv(t *testing.T) *env {
	t.Helper()

	e := &env{
		assets:       newFakeAssets(),
		requests:     newFakeRequests(),
		assignments:  newFakeAssignments(),
		affiliations: newFakeAffiliations(),
		users:        newFakeUsers(),
		packages:     newFakePackages(),
		payments:     newFakePayments(),
	}

	e.ledger = NewLedger(e.assets)
	e.assignService = NewAssignments(e.assignments, e.assets)
	e.affiliationsSvc = NewAffiliations(e.affiliations, e.users, e.assignService)
	e.requestService = NewRequests(e.requests, e.assets, e.assignments, e.affiliationsSvc)
	e.paymentService = NewPayments(e.payments, e.packages, e.users)

	require.NoError(t, e.users.Insert(context.Background(), &models.User{
		Email:         testHREmail,
		Name:          "Acme HR",
		Role:          models.RoleHR,
		CompanyName:   "Acme Corp",
		PackageName:   "basic",
		EmployeeLimit: 5,
		CreatedAt:     time.Now(),
	}))
	require.NoError(t, e.users.Insert(context.Background(), &models.User{
		Email:     testEmployeeEmail,
		Name:      "Casey",
		Role:      models.RoleEmployee,
		CreatedAt: time.Now(),
	}))

	e.hr = &scope.HRScope{
		Email:         testHREmail,
		Name:          "Acme HR",
		CompanyName:   "Acme Corp",
		PackageName:   "basic",
		EmployeeLimit: 5,
	}
	e.employee = &scope.EmployeeScope{Email: testEmployeeEmail, Name: "Casey"}

	e.packages.byName["basic"] = &models.Package{Name: "basic", EmployeeLimit: 5, PriceUSD: 5}
	e.packages.byName["premium"] = &models.Package{Name: "premium", EmployeeLimit: 20, PriceUSD: 15}

	return e
}

func (e *env) mustCreateAsset(t *testing.T, name, assetType string, qty int) *models.Asset {
	t.Helper()
	asset, err := e.ledger.CreateAsset(context.Background(), e.hr, AssetInput{
		Name:     name,
		Type:     assetType,
		Quantity: qty,
	})
	require.NoError(t, err)
	return asset
}

func (e *env) mustCreateRequest(t *testing.T, assetID string) *models.Request {
	t.Helper()
	request, err := e.requestService.Create(context.Background(), e.employee, testHREmail, RequestInput{AssetID: assetID})
	require.NoError(t, err)
	return request
}

func (e *env) employeeCount(t *testing.T) int {
	t.Helper()
	user, err := e.users.FindByEmail(context.Background(), testHREmail)
	require.NoError(t, err)
	require.NotNil(t, user)
	return user.CurrentEmployees
}

func (e *env) assetState(t *testing.T, assetID string) *models.Asset {
	t.Helper()
	asset, err := e.assets.FindByID(context.Background(), assetID, "")
	require.NoError(t, err)
	require.NotNil(t, asset)
	return asset
}
