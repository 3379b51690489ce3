package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Session cookie token errors
var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token expired")
)

// TokenConfig defines how session cookie tokens are signed
type TokenConfig struct {
	SecretKey   string
	TTL         time.Duration
	TokenIssuer string
}

// SessionTokenService signs and verifies the value stored in the session cookie.
// The token only carries the opaque session id; the session itself lives server-side.
type SessionTokenService struct {
	config TokenConfig
}

// NewSessionTokenService creates a new SessionTokenService
func NewSessionTokenService(config TokenConfig) *SessionTokenService {
	return &SessionTokenService{
		config: config,
	}
}

// TTL returns the lifetime of issued tokens
func (s *SessionTokenService) TTL() time.Duration {
	return s.config.TTL
}

// Sign issues a cookie token for the given session id
func (s *SessionTokenService) Sign(sessionID string) (string, error) {
	if sessionID == "" {
		return "", ErrInvalidToken
	}

	now := time.Now()
	claims := jwt.RegisteredClaims{
		ID:        sessionID,
		Issuer:    s.config.TokenIssuer,
		IssuedAt:  jwt.NewNumericDate(now),
		NotBefore: jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.config.TTL)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.config.SecretKey))
	if err != nil {
		return "", fmt.Errorf("failed to sign session token: %w", err)
	}
	return signed, nil
}

// Parse verifies a cookie token and returns the session id it references
func (s *SessionTokenService) Parse(tokenString string) (string, error) {
	if tokenString == "" {
		return "", ErrInvalidToken
	}

	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.config.SecretKey), nil
	}, jwt.WithIssuer(s.config.TokenIssuer))

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", ErrExpiredToken
		}
		return "", fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !token.Valid || claims.ID == "" {
		return "", ErrInvalidToken
	}

	return claims.ID, nil
}
