package auth

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"staff-scheduler-backend/internal/config"
	apperrors "staff-scheduler-backend/internal/errors"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	return &config.Config{
		JWTSecret:       "test-signing-key",
		ManagerUsername: "manager",
		ManagerPassword: "schedule123",
		TokenTTLHours:   12,
	}
}

func TestAuthService_Login(t *testing.T) {
	service := NewAuthService(testConfig())

	t.Run("valid credentials", func(t *testing.T) {
		token, claims, err := service.Login("manager", "schedule123")
		require.NoError(t, err)
		assert.NotEmpty(t, token)
		assert.Equal(t, "manager", claims.Username)
		assert.Equal(t, "manager", claims.Role)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, _, err := service.Login("manager", "wrong")
		assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
	})

	t.Run("unknown username", func(t *testing.T) {
		_, _, err := service.Login("someone", "schedule123")
		assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
	})
}

func TestAuthService_ValidateJWT(t *testing.T) {
	service := NewAuthService(testConfig())

	t.Run("round trip", func(t *testing.T) {
		token, _, err := service.GenerateJWT("manager")
		require.NoError(t, err)

		claims, err := service.ValidateJWT(token)
		require.NoError(t, err)
		assert.Equal(t, "manager", claims.Username)
		assert.Equal(t, "staff-scheduler", claims.Issuer)
	})

	t.Run("malformed token", func(t *testing.T) {
		_, err := service.ValidateJWT("not-a-token")
		assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
	})

	t.Run("token signed with different secret", func(t *testing.T) {
		other := testConfig()
		other.JWTSecret = "another-secret"
		token, _, err := NewAuthService(other).GenerateJWT("manager")
		require.NoError(t, err)

		_, err = service.ValidateJWT(token)
		assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
	})
}

func TestAuthMiddleware_RequireAuth(t *testing.T) {
	gin.SetMode(gin.TestMode)

	service := NewAuthService(testConfig())
	middleware := NewAuthMiddleware(service)

	router := gin.New()
	router.GET("/protected", middleware.RequireAuth(), func(c *gin.Context) {
		username, _ := GetUsername(c)
		c.JSON(http.StatusOK, gin.H{"username": username})
	})

	t.Run("missing header", func(t *testing.T) {
		recorder := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/protected", nil)
		router.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	})

	t.Run("wrong header format", func(t *testing.T) {
		recorder := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/protected", nil)
		req.Header.Set("Authorization", "Basic abc123")
		router.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	})

	t.Run("invalid token", func(t *testing.T) {
		recorder := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/protected", nil)
		req.Header.Set("Authorization", "Bearer garbage")
		router.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	})

	t.Run("valid token", func(t *testing.T) {
		token, _, err := service.GenerateJWT("manager")
		require.NoError(t, err)

		recorder := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		router.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusOK, recorder.Code)

		var body map[string]string
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
		assert.Equal(t, "manager", body["username"])
	})
}

func TestAuthHandlers_Login(t *testing.T) {
	gin.SetMode(gin.TestMode)

	service := NewAuthService(testConfig())
	handlers := NewAuthHandlers(service)

	router := gin.New()
	router.POST("/api/auth/login", handlers.Login)

	t.Run("successful login", func(t *testing.T) {
		body := `{"username":"manager","password":"schedule123"}`
		recorder := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/api/auth/login", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusOK, recorder.Code)

		var resp LoginResponse
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
		assert.NotEmpty(t, resp.AccessToken)
		assert.Equal(t, "Bearer", resp.TokenType)
		assert.Equal(t, "manager", resp.Username)
	})

	t.Run("bad credentials", func(t *testing.T) {
		body := `{"username":"manager","password":"nope"}`
		recorder := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/api/auth/login", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	})

	t.Run("missing fields", func(t *testing.T) {
		body := `{"username":"manager"}`
		recorder := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/api/auth/login", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})
}
