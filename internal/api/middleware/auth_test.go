package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"asset-hub-api-server/internal/api/middleware"
	"asset-hub-api-server/internal/auth"
)

func buildTestRouter(allowedRoles ...string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/protected",
		middleware.Authenticate(),
		middleware.Authorize(allowedRoles...),
		func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"ok":    true,
				"email": c.GetString(middleware.CtxUserEmail),
			})
		})
	return router
}

func tokenForRole(t *testing.T, role string) string {
	t.Helper()
	token, err := auth.GenerateJWT("user@test.test", "User", role, time.Hour)
	require.NoError(t, err)
	return "Bearer " + token
}

func TestAuthenticateMissingHeader(t *testing.T) {
	auth.JwtSecret = []byte("middleware-test-secret")
	router := buildTestRouter("hr")

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthenticateMalformedHeader(t *testing.T) {
	auth.JwtSecret = []byte("middleware-test-secret")
	router := buildTestRouter("hr")

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Token abc123")
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthorizeWrongRole(t *testing.T) {
	auth.JwtSecret = []byte("middleware-test-secret")
	router := buildTestRouter("hr")

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", tokenForRole(t, "employee"))
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestAuthorizeAllowedRole(t *testing.T) {
	auth.JwtSecret = []byte("middleware-test-secret")
	router := buildTestRouter("hr", "employee")

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", tokenForRole(t, "employee"))
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "user@test.test")
}

func TestExpiredToken(t *testing.T) {
	auth.JwtSecret = []byte("middleware-test-secret")
	router := buildTestRouter("hr")

	token, err := auth.GenerateJWT("user@test.test", "User", "hr", -time.Minute)
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
