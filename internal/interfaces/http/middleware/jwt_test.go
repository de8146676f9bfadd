package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kabultaj10-sys/KabulTajHotelManagementSystem/internal/infrastructure/auth"
	"github.com/kabultaj10-sys/KabulTajHotelManagementSystem/internal/infrastructure/config"
)

func newTestJWTService(accessExpiration time.Duration) *auth.JWTService {
	return auth.NewJWTService(config.JWTConfig{
		Secret:                 "test-access-secret-0123456789abcdef",
		RefreshSecret:          "test-refresh-secret-0123456789abcdef",
		AccessTokenExpiration:  accessExpiration,
		RefreshTokenExpiration: 24 * time.Hour,
		Issuer:                 "hotel-backend",
	})
}

func setupJWTRouter(svc *auth.JWTService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestID())
	r.Use(JWTAuthMiddleware(svc))
	r.GET("/api/v1/guests", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"user_id":  GetJWTUserID(c),
			"username": c.GetString(JWTUsernameKey),
			"role":     string(GetJWTRole(c)),
		})
	})
	r.GET("/api/v1/health", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return r
}

func TestJWTAuthMiddleware(t *testing.T) {
	svc := newTestJWTService(time.Hour)

	t.Run("accepts valid access token", func(t *testing.T) {
		userID := uuid.New()
		pair, err := svc.GenerateTokenPair(auth.GenerateTokenInput{
			UserID:   userID,
			Username: "reception1",
			Role:     "receptionist",
		})
		require.NoError(t, err)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/guests", nil)
		req.Header.Set("Authorization", "Bearer "+pair.AccessToken)
		setupJWTRouter(svc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), userID.String())
		assert.Contains(t, w.Body.String(), "receptionist")
	})

	t.Run("rejects missing header", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/guests", nil)
		setupJWTRouter(svc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("rejects malformed header", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/guests", nil)
		req.Header.Set("Authorization", "Token abc")
		setupJWTRouter(svc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("rejects garbage token", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/guests", nil)
		req.Header.Set("Authorization", "Bearer not.a.token")
		setupJWTRouter(svc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("reports expired token code", func(t *testing.T) {
		expiredSvc := newTestJWTService(-time.Minute)
		pair, err := expiredSvc.GenerateTokenPair(auth.GenerateTokenInput{
			UserID:   uuid.New(),
			Username: "reception1",
			Role:     "receptionist",
		})
		require.NoError(t, err)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/guests", nil)
		req.Header.Set("Authorization", "Bearer "+pair.AccessToken)
		setupJWTRouter(expiredSvc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "TOKEN_EXPIRED")
	})

	t.Run("skips configured paths", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/health", nil)
		setupJWTRouter(svc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestRoleGuards(t *testing.T) {
	svc := newTestJWTService(time.Hour)

	newRouter := func(guard gin.HandlerFunc) *gin.Engine {
		gin.SetMode(gin.TestMode)
		r := gin.New()
		r.Use(RequestID(), JWTAuthMiddleware(svc))
		r.GET("/api/v1/protected", guard, func(c *gin.Context) {
			c.Status(http.StatusOK)
		})
		return r
	}

	tokenFor := func(t *testing.T, role string) string {
		pair, err := svc.GenerateTokenPair(auth.GenerateTokenInput{
			UserID:   uuid.New(),
			Username: "someone",
			Role:     role,
		})
		require.NoError(t, err)
		return pair.AccessToken
	}

	tests := []struct {
		name   string
		guard  gin.HandlerFunc
		role   string
		status int
	}{
		{"admin passes admin guard", RequireAdmin(), "admin", http.StatusOK},
		{"receptionist blocked by admin guard", RequireAdmin(), "receptionist", http.StatusForbidden},
		{"receptionist passes booking guard", RequireBookingAccess(), "receptionist", http.StatusOK},
		{"restaurant blocked by booking guard", RequireBookingAccess(), "restaurant", http.StatusForbidden},
		{"restaurant passes restaurant guard", RequireRestaurantAccess(), "restaurant", http.StatusOK},
		{"receptionist blocked by restaurant guard", RequireRestaurantAccess(), "receptionist", http.StatusForbidden},
		{"unknown role blocked everywhere", RequireBookingAccess(), "janitor", http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/api/v1/protected", nil)
			req.Header.Set("Authorization", "Bearer "+tokenFor(t, tt.role))
			newRouter(tt.guard).ServeHTTP(w, req)

			assert.Equal(t, tt.status, w.Code)
		})
	}
}
