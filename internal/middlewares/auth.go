package middlewares

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/cinemahub/cinemahub-api/internal/jwt"
	"github.com/cinemahub/cinemahub-api/internal/logger"
	"github.com/cinemahub/cinemahub-api/internal/models"
)

type contextKey string

const claimsKey contextKey = "claims"

// Tokener defines the minimal interface needed by the middleware
type Tokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// AuthMiddleware returns a middleware that validates the bearer token
// and stores its claims in the request context.
func AuthMiddleware(tokener Tokener) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			tokenString, err := tokener.GetTokenFromRequest(ctx, r)
			if err != nil {
				logger.Log.Debugw("authorization failed", "err", err)
				writeEnvelope(w, http.StatusUnauthorized, "Access token required")
				return
			}

			claims, err := tokener.GetClaims(ctx, tokenString)
			if err != nil {
				logger.Log.Debugw("authorization failed", "err", err)
				writeEnvelope(w, http.StatusForbidden, "Invalid or expired token")
				return
			}

			ctx = context.WithValue(ctx, claimsKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// UserFromContext returns the claims stored by AuthMiddleware.
func UserFromContext(ctx context.Context) (*jwt.Claims, bool) {
	claims, ok := ctx.Value(claimsKey).(*jwt.Claims)
	return claims, ok
}

// WithUser returns a context carrying the given claims. Test helper
// for handlers behind AuthMiddleware.
func WithUser(ctx context.Context, claims *jwt.Claims) context.Context {
	return context.WithValue(ctx, claimsKey, claims)
}

func writeEnvelope(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(models.Response{Success: false, Message: message})
}
