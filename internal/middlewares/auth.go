package middlewares

//go:generate mockgen -source=auth.go -destination=auth_mock.go -package=middlewares

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/sbilibin2017/gw-game-roster/internal/apperr"
	"github.com/sbilibin2017/gw-game-roster/internal/jwt"
	"github.com/sbilibin2017/gw-game-roster/internal/logger"
	"github.com/sbilibin2017/gw-game-roster/internal/models"
)

// Tokener defines the minimal interface needed by the middleware
type Tokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// Identity is the authenticated player of a request.
type Identity struct {
	PlayerID uuid.UUID
	Email    string
}

type identityKey struct{}

// WithIdentity stores the identity in the context.
func WithIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, identityKey{}, id)
}

// IdentityFromContext returns the identity set by AuthMiddleware.
func IdentityFromContext(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(identityKey{}).(Identity)
	return id, ok
}

// AuthMiddleware returns a middleware that validates the access token and
// stores the authenticated identity in the request context.
func AuthMiddleware(tokener Tokener) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			tokenString, err := tokener.GetTokenFromRequest(ctx, r)
			if err != nil {
				logger.FromContext(ctx).Infow("authorization failed", "error", err)
				writeUnauthorized(w, "Authentication required")
				return
			}

			claims, err := tokener.GetClaims(ctx, tokenString)
			if err != nil {
				logger.FromContext(ctx).Infow("authorization failed", "error", err)
				writeUnauthorized(w, "Invalid or expired token")
				return
			}

			ctx = WithIdentity(ctx, Identity{PlayerID: claims.PlayerID, Email: claims.Email})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func writeUnauthorized(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(models.ErrorResponse{
		Status:  http.StatusUnauthorized,
		Message: message,
		Error:   models.ErrorBody{Code: string(apperr.Unauthorized)},
	})
}
