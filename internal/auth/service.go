package auth

import (
	"crypto/subtle"
	"fmt"
	"time"

	"staff-scheduler-backend/internal/config"
	apperrors "staff-scheduler-backend/internal/errors"
	"staff-scheduler-backend/internal/logger"

	"github.com/golang-jwt/jwt/v5"
)

// AuthClaims represents JWT token claims for a signed-in manager
type AuthClaims struct {
	Username string `json:"username"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

// AuthService issues and validates manager session tokens. The scheduler is
// a single-tenant tool, so the credential set comes from configuration
// rather than a user table.
type AuthService struct {
	config *config.Config
	log    *logger.Logger
}

// NewAuthService creates a new authentication service
func NewAuthService(cfg *config.Config) *AuthService {
	return &AuthService{
		config: cfg,
		log:    logger.New().WithField("component", "auth"),
	}
}

// Login checks the manager credentials and returns a signed token
func (s *AuthService) Login(username, password string) (string, *AuthClaims, error) {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(s.config.ManagerUsername)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(s.config.ManagerPassword)) == 1
	if !userOK || !passOK {
		s.log.WithField("username", username).Warn("failed login attempt")
		return "", nil, apperrors.ErrInvalidCredentials
	}

	token, claims, err := s.GenerateJWT(username)
	if err != nil {
		return "", nil, fmt.Errorf("failed to sign token: %w", err)
	}
	return token, claims, nil
}

// GenerateJWT creates a signed token for the given manager
func (s *AuthService) GenerateJWT(username string) (string, *AuthClaims, error) {
	now := time.Now()
	claims := &AuthClaims{
		Username: username,
		Role:     "manager",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(s.config.TokenTTLHours) * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    "staff-scheduler",
			Subject:   username,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.config.JWTSecret))
	if err != nil {
		return "", nil, err
	}
	return signed, claims, nil
}

// ValidateJWT parses and validates a token string
func (s *AuthService) ValidateJWT(tokenString string) (*AuthClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &AuthClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.config.JWTSecret), nil
	})
	if err != nil {
		return nil, apperrors.ErrInvalidToken
	}

	claims, ok := token.Claims.(*AuthClaims)
	if !ok || !token.Valid {
		return nil, apperrors.ErrInvalidToken
	}
	return claims, nil
}
