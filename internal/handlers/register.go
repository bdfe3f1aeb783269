package handlers

//go:generate mockgen -source=register.go -destination=register_mock.go -package=handlers

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/sbilibin2017/gw-game-roster/internal/logger"
	"github.com/sbilibin2017/gw-game-roster/internal/models"
)

// Registerer defines the interface that the service must implement.
type Registerer interface {
	Register(ctx context.Context, name, email, password string) (*models.AuthResult, error)
}

// GameJoiner adds a freshly registered player to a game.
type GameJoiner interface {
	AddPlayer(ctx context.Context, gameID uuid.UUID, identity models.PlayerIdentity) (*models.Membership, error)
}

// RegisterRequest represents the JSON body for player registration
// swagger:model RegisterRequest
type RegisterRequest struct {
	// Display name
	// required: true
	// default: John Doe
	Name string `json:"name" validate:"required,min=1,max=255"`

	// Email
	// required: true
	// default: john@example.com
	Email string `json:"email" validate:"required,email,max=255"`

	// Password
	// required: true
	// default: secret123
	Password string `json:"password" validate:"required,min=6,max=255"`

	// Optional game the new player joins right away
	GameID *uuid.UUID `json:"gameId,omitempty"`
}

// NewRegisterHandler returns an HTTP handler for player registration.
// @Summary Register a new player
// @Description Creates a player account, sets the access and refresh token cookies. When gameId is given the player is also added to that game.
// @Tags auth
// @Accept json
// @Produce json
// @Param registerRequest body handlers.RegisterRequest true "Player registration request"
// @Success 201 {object} models.Response{data=models.PlayerResponse} "Player registered"
// @Failure 400 {object} models.ErrorResponse "Invalid request"
// @Failure 409 {object} models.ErrorResponse "Email already registered"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /auth/register [post]
func NewRegisterHandler(svc Registerer, joiner GameJoiner, cookies CookieConfig) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var req RegisterRequest
		if err := decodeAndValidate(r, &req); err != nil {
			writeError(ctx, w, err)
			return
		}

		res, err := svc.Register(ctx, req.Name, req.Email, req.Password)
		if err != nil {
			writeError(ctx, w, err)
			return
		}

		if req.GameID != nil && joiner != nil {
			_, err := joiner.AddPlayer(ctx, *req.GameID, models.PlayerIdentity{PlayerID: &res.Player.PlayerID})
			if err != nil {
				logger.FromContext(ctx).Warnw("failed to add registered player to game",
					"player_id", res.Player.PlayerID,
					"game_id", *req.GameID,
					"error", err,
				)
			}
		}

		setAuthCookies(w, cookies, res)
		writeJSON(w, http.StatusCreated, "Player registered successfully", models.NewPlayerResponse(res.Player))
	}
}
