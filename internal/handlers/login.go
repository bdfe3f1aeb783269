package handlers

//go:generate mockgen -source=login.go -destination=login_mock.go -package=handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/gw-game-roster/internal/models"
)

// Loginer defines the interface that the login service must implement.
type Loginer interface {
	Login(ctx context.Context, email, password string) (*models.AuthResult, error)
}

// LoginRequest represents the JSON body for player login
// swagger:model LoginRequest
type LoginRequest struct {
	// Email
	// required: true
	// default: john@example.com
	Email string `json:"email" validate:"required,email"`

	// Password
	// required: true
	// default: secret123
	Password string `json:"password" validate:"required"`
}

// NewLoginHandler returns an HTTP handler for player login.
// @Summary Log in
// @Description Verifies the credentials and sets the access and refresh token cookies.
// @Tags auth
// @Accept json
// @Produce json
// @Param loginRequest body handlers.LoginRequest true "Player credentials"
// @Success 200 {object} models.Response{data=models.PlayerResponse} "Logged in"
// @Failure 400 {object} models.ErrorResponse "Invalid request"
// @Failure 401 {object} models.ErrorResponse "Invalid credentials"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /auth/login [post]
func NewLoginHandler(svc Loginer, cookies CookieConfig) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var req LoginRequest
		if err := decodeAndValidate(r, &req); err != nil {
			writeError(ctx, w, err)
			return
		}

		res, err := svc.Login(ctx, req.Email, req.Password)
		if err != nil {
			writeError(ctx, w, err)
			return
		}

		setAuthCookies(w, cookies, res)
		writeJSON(w, http.StatusOK, "Login successful", models.NewPlayerResponse(res.Player))
	}
}
