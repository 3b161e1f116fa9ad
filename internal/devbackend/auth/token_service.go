package auth

import (
	"aimlink-client/internal/contextkeys"
	"aimlink-client/internal/core/port"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrTokenExpired = errors.New("Token has expired")
	ErrTokenInvalid = errors.New("Invalid token")
)

// TokenService выпускает и проверяет JWT администратора.
type TokenService struct {
	signingKey []byte
	ttl        time.Duration
	now        func() time.Time
}

func NewTokenService(signingKey string, ttl time.Duration) (*TokenService, error) {
	if signingKey == "" {
		return nil, fmt.Errorf("JWT signing key cannot be empty")
	}
	if ttl <= 0 {
		return nil, fmt.Errorf("token TTL must be positive, got %s", ttl)
	}
	return &TokenService{signingKey: []byte(signingKey), ttl: ttl, now: time.Now}, nil
}

// jwtCustomClaims - email администратора хранится в sub.
type jwtCustomClaims struct {
	jwt.RegisteredClaims
}

// GenerateToken создает токен для администратора.
func (s *TokenService) GenerateToken(ctx context.Context, email string) (string, error) {
	serviceLogger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"component": "TokenService",
		"method":    "GenerateToken",
	})

	now := s.now()
	claims := &jwtCustomClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   email,
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    "aimlink-devbackend",
		},
	}

	signedToken, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.signingKey)
	if err != nil {
		serviceLogger.Error("Failed to sign token", err, nil)
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	serviceLogger.Debug("Token generated successfully.", port.Fields{"ttl": s.ttl.String()})
	return signedToken, nil
}

// ValidateToken возвращает email из токена. Истекший токен - ErrTokenExpired, остальное - ErrTokenInvalid.
func (s *TokenService) ValidateToken(ctx context.Context, tokenString string) (string, error) {
	serviceLogger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"component": "TokenService",
		"method":    "ValidateToken",
	})

	token, err := jwt.ParseWithClaims(tokenString, &jwtCustomClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.signingKey, nil
	}, jwt.WithTimeFunc(s.now))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			serviceLogger.Warn("Token has expired", nil)
			return "", ErrTokenExpired
		}
		serviceLogger.Warn("Invalid token format or signature", port.Fields{"error": err.Error()})
		return "", ErrTokenInvalid
	}

	claims, ok := token.Claims.(*jwtCustomClaims)
	if !ok || !token.Valid || claims.Subject == "" {
		return "", ErrTokenInvalid
	}
	return claims.Subject, nil
}
