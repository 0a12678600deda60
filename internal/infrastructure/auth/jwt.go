package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/officeless-platform/officeless-self-service-portal/internal/shared/config"
)

// JWTService issues and validates the HS256 tokens used by the admin
// API.
type JWTService struct {
	secret    []byte
	accessExp time.Duration
}

func NewJWTService(cfg *config.JWTConfig) *JWTService {
	exp := time.Duration(cfg.AccessExpMinutes) * time.Minute
	if exp <= 0 {
		exp = time.Hour
	}
	return &JWTService{
		secret:    []byte(cfg.Secret),
		accessExp: exp,
	}
}

// GenerateToken issues a signed token for the given subject.
func (s *JWTService) GenerateToken(subject string) (string, time.Time, error) {
	now := time.Now()
	expiresAt := now.Add(s.accessExp)

	claims := jwt.RegisteredClaims{
		Subject:   subject,
		Issuer:    "officeless-portal",
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign token: %w", err)
	}

	return signed, expiresAt, nil
}

// ValidateToken parses a token and returns its subject.
func (s *JWTService) ValidateToken(tokenString string) (string, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return "", fmt.Errorf("failed to parse token: %w", err)
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || !token.Valid {
		return "", fmt.Errorf("invalid token")
	}

	return claims.Subject, nil
}
