package handlers

//go:generate mockgen -source=token.go -destination=token_mock.go -package=handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/gw-game-roster/internal/apperr"
	"github.com/sbilibin2017/gw-game-roster/internal/models"
)

// RefreshTokenGetter reads the refresh token of a request.
type RefreshTokenGetter interface {
	GetRefreshTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
}

// Logouter defines the interface that the logout service must implement.
type Logouter interface {
	Logout(ctx context.Context, refreshToken string) error
}

// Refresher defines the interface that the refresh service must implement.
type Refresher interface {
	Refresh(ctx context.Context, refreshToken string) (*models.AuthResult, error)
}

// NewLogoutHandler returns an HTTP handler that revokes the refresh token and clears the cookies.
// @Summary Log out
// @Description Revokes the refresh token and clears both token cookies.
// @Tags auth
// @Success 204 "Logged out"
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /auth/logout [post]
// @Security BearerAuth
func NewLogoutHandler(svc Logouter, tokens RefreshTokenGetter, cookies CookieConfig) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		// A missing refresh cookie still logs out.
		refreshToken, _ := tokens.GetRefreshTokenFromRequest(ctx, r)

		if err := svc.Logout(ctx, refreshToken); err != nil {
			writeError(ctx, w, err)
			return
		}

		clearAuthCookies(w, cookies)
		w.WriteHeader(http.StatusNoContent)
	}
}

// NewRefreshHandler returns an HTTP handler that rotates the token cookies.
// @Summary Refresh tokens
// @Description Exchanges the refresh token cookie for a new access and refresh token pair.
// @Tags auth
// @Success 204 "Tokens rotated"
// @Failure 401 {object} models.ErrorResponse "Missing, invalid or revoked refresh token"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /auth/refresh [post]
func NewRefreshHandler(svc Refresher, tokens RefreshTokenGetter, cookies CookieConfig) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		refreshToken, err := tokens.GetRefreshTokenFromRequest(ctx, r)
		if err != nil {
			writeError(ctx, w, apperr.Wrap(apperr.Unauthorized, err))
			return
		}

		res, err := svc.Refresh(ctx, refreshToken)
		if err != nil {
			writeError(ctx, w, err)
			return
		}

		setAuthCookies(w, cookies, res)
		w.WriteHeader(http.StatusNoContent)
	}
}
