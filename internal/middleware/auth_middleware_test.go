package middleware_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"scrumboard/internal/auth"
	"scrumboard/internal/middleware"
	"scrumboard/internal/model"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

const jwtSecret = "test-secret-key"

type stubResolver struct {
	userID uuid.UUID
	err    error
}

func (s stubResolver) Resolve(_ context.Context, claims *auth.Claims, role model.OrgRole) (model.Caller, error) {
	if s.err != nil {
		return model.Caller{}, s.err
	}
	return model.Caller{UserID: s.userID, OrganizationID: claims.OrgID, Role: role}, nil
}

func setupRouter(resolver middleware.CallerResolver) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	signer := auth.NewSigner(jwtSecret, "", time.Hour)

	// Protected route
	protected := r.Group("/protected")
	protected.Use(middleware.JWTAuthMiddleware(signer, resolver))

	protected.GET("/resource", func(c *gin.Context) {
		caller, ok := middleware.CallerFrom(c)
		if !ok {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Caller not found in context"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"message": "Access granted",
			"user_id": caller.UserID,
			"org_id":  caller.OrganizationID,
			"role":    caller.Role,
		})
	})

	return r
}

func generateTestToken(role string) string {
	token, _ := auth.NewSigner(jwtSecret, "", time.Hour).GenerateToken("user_ext", auth.Claims{OrgID: "org_1", OrgRole: role})
	return token
}

func TestJWTAuthMiddleware_ValidToken(t *testing.T) {
	// Arrange
	userID := uuid.New()
	router := setupRouter(stubResolver{userID: userID})

	req, _ := http.NewRequest("GET", "/protected/resource", nil)
	req.Header.Set("Authorization", "Bearer "+generateTestToken("org:admin"))

	// Act
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	// Assert
	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), "Access granted")
	assert.Contains(t, resp.Body.String(), userID.String())
	assert.Contains(t, resp.Body.String(), `"role":"admin"`)
	assert.Contains(t, resp.Body.String(), `"org_id":"org_1"`)
}

func TestJWTAuthMiddleware_NoAuthHeader(t *testing.T) {
	router := setupRouter(stubResolver{userID: uuid.New()})

	req, _ := http.NewRequest("GET", "/protected/resource", nil)

	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusUnauthorized, resp.Code)
	assert.Contains(t, resp.Body.String(), "Authorization header is required")
}

func TestJWTAuthMiddleware_InvalidAuthFormat(t *testing.T) {
	router := setupRouter(stubResolver{userID: uuid.New()})

	req, _ := http.NewRequest("GET", "/protected/resource", nil)
	req.Header.Set("Authorization", "InvalidFormat token123")

	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusUnauthorized, resp.Code)
	assert.Contains(t, resp.Body.String(), "Authorization header format must be Bearer {token}")
}

func TestJWTAuthMiddleware_InvalidToken(t *testing.T) {
	router := setupRouter(stubResolver{userID: uuid.New()})

	req, _ := http.NewRequest("GET", "/protected/resource", nil)
	req.Header.Set("Authorization", "Bearer invalid-token")

	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusUnauthorized, resp.Code)
	assert.Contains(t, resp.Body.String(), "Invalid or expired token")
}

func TestJWTAuthMiddleware_UnknownRole(t *testing.T) {
	router := setupRouter(stubResolver{userID: uuid.New()})

	req, _ := http.NewRequest("GET", "/protected/resource", nil)
	req.Header.Set("Authorization", "Bearer "+generateTestToken("org:owner"))

	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusUnauthorized, resp.Code)
	assert.Contains(t, resp.Body.String(), "Invalid organization role in token")
}

func TestJWTAuthMiddleware_ResolverFailure(t *testing.T) {
	router := setupRouter(stubResolver{err: errors.New("db down")})

	req, _ := http.NewRequest("GET", "/protected/resource", nil)
	req.Header.Set("Authorization", "Bearer "+generateTestToken("org:member"))

	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusInternalServerError, resp.Code)
}
