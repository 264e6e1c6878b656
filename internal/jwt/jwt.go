package jwt

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Token lifetimes. Session tokens back the Authorization header,
// reset tokens ride in the password-reset link.
const (
	SessionTTL = 7 * 24 * time.Hour
	ResetTTL   = time.Hour
)

// ErrInvalidToken covers bad signature, malformed structure and
// elapsed expiry alike.
var ErrInvalidToken = errors.New("invalid or expired token")

// Claims are the identity claims embedded in every token.
type Claims struct {
	UserID   int    `json:"userId"`
	Email    string `json:"email,omitempty"`
	Username string `json:"username,omitempty"`
	jwt.RegisteredClaims
}

// JWT issues and verifies HMAC-signed tokens with a process-wide secret.
type JWT struct {
	secretKey string
}

// New creates a new JWT instance
func New(secretKey string) *JWT {
	return &JWT{secretKey: secretKey}
}

// GenerateSession creates a 7-day session token carrying the user's
// id, email and username.
func (j *JWT) GenerateSession(ctx context.Context, userID int, email, username string) (string, error) {
	return j.generate(Claims{
		UserID:   userID,
		Email:    email,
		Username: username,
	}, SessionTTL)
}

// GenerateReset creates a 1-hour reset token carrying only the user's id.
func (j *JWT) GenerateReset(ctx context.Context, userID int) (string, error) {
	return j.generate(Claims{UserID: userID}, ResetTTL)
}

func (j *JWT) generate(claims Claims, ttl time.Duration) (string, error) {
	now := time.Now()
	claims.IssuedAt = jwt.NewNumericDate(now)
	claims.ExpiresAt = jwt.NewNumericDate(now.Add(ttl))

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(j.secretKey))
}

// GetClaims parses the token string and returns its claims if the
// signature and expiry check out.
func (j *JWT) GetClaims(ctx context.Context, tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(j.secretKey), nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// GetTokenFromRequest extracts the token string from the Authorization header
func (j *JWT) GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return "", errors.New("authorization header missing")
	}

	parts := strings.Fields(authHeader)
	if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
		return "", errors.New("invalid authorization header format")
	}

	return parts[1], nil
}
