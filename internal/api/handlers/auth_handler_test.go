package handlers_test

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"asset-hub-api-server/internal/api/handlers"
	"asset-hub-api-server/internal/auth"
	"asset-hub-api-server/internal/models"
	"asset-hub-api-server/internal/store"
)

type stubUsers struct {
	byEmail map[string]*models.User
}

func newStubUsers() *stubUsers {
	return &stubUsers{byEmail: make(map[string]*models.User)}
}

func (s *stubUsers) Insert(_ context.Context, u *models.User) error {
	if _, ok := s.byEmail[u.Email]; ok {
		return store.ErrDuplicate
	}
	cp := *u
	s.byEmail[u.Email] = &cp
	return nil
}

func (s *stubUsers) FindByEmail(_ context.Context, email string) (*models.User, error) {
	u, ok := s.byEmail[email]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (s *stubUsers) IncrementEmployees(_ context.Context, _ string) (bool, error) {
	return false, nil
}

func (s *stubUsers) DecrementEmployees(_ context.Context, _ string) (bool, error) {
	return false, nil
}

func (s *stubUsers) ApplyPackage(_ context.Context, _, _ string, _ int) error { return nil }

func (s *stubUsers) SetCompanyLogo(_ context.Context, _, _ string) error { return nil }

type stubPackages struct {
	byName map[string]*models.Package
}

func (s *stubPackages) List(_ context.Context) ([]models.Package, error) {
	var out []models.Package
	for _, p := range s.byName {
		out = append(out, *p)
	}
	return out, nil
}

func (s *stubPackages) FindByName(_ context.Context, name string) (*models.Package, error) {
	p, ok := s.byName[name]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func TestRegisterHRStartsOnSeededEntryTier(t *testing.T) {
	gin.SetMode(gin.TestMode)
	auth.JwtSecret = []byte("handler-test-secret")

	users := newStubUsers()
	packages := &stubPackages{byName: map[string]*models.Package{
		// A limit different from any hardcoded fallback proves the value is
		// read from the package table.
		"basic": {Name: "basic", EmployeeLimit: 7, PriceUSD: 5},
	}}

	handler := &handlers.AuthHandler{Users: users, Packages: packages, JWTExpiration: time.Hour}
	router := gin.New()
	router.POST("/auth/register", handler.Register)

	body := []byte(`{"email":"hr@initech.test","name":"Initech HR","password":"secret1","role":"hr","companyName":"Initech"}`)
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/auth/register", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	user, err := users.FindByEmail(context.Background(), "hr@initech.test")
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, "basic", user.PackageName)
	assert.Equal(t, 7, user.EmployeeLimit)
}

func TestRegisterEmployeeSkipsPackages(t *testing.T) {
	gin.SetMode(gin.TestMode)
	auth.JwtSecret = []byte("handler-test-secret")

	users := newStubUsers()
	packages := &stubPackages{byName: map[string]*models.Package{}}

	handler := &handlers.AuthHandler{Users: users, Packages: packages, JWTExpiration: time.Hour}
	router := gin.New()
	router.POST("/auth/register", handler.Register)

	body := []byte(`{"email":"casey@initech.test","name":"Casey","password":"secret1","role":"employee"}`)
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/auth/register", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	user, err := users.FindByEmail(context.Background(), "casey@initech.test")
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Empty(t, user.PackageName)
	assert.Zero(t, user.EmployeeLimit)
}
