package handlers

//go:generate mockgen -source=me.go -destination=me_mock.go -package=handlers

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/sbilibin2017/gw-game-roster/internal/models"
)

// CurrentUserGetter loads the authenticated player.
type CurrentUserGetter interface {
	GetCurrentUser(ctx context.Context, playerID uuid.UUID) (*models.PlayerDB, error)
}

// ProfileUpdater changes the authenticated player's profile.
type ProfileUpdater interface {
	UpdateProfile(ctx context.Context, playerID uuid.UUID, patch models.PlayerPatch) (*models.PlayerDB, error)
}

// UpdateProfileRequest represents the JSON body for a profile update. Omitted fields are kept.
// swagger:model UpdateProfileRequest
type UpdateProfileRequest struct {
	Name     *string `json:"name,omitempty" validate:"omitempty,min=1,max=255"`
	Email    *string `json:"email,omitempty" validate:"omitempty,email,max=255"`
	Password *string `json:"password,omitempty" validate:"omitempty,min=6,max=255"`
}

// NewGetMeHandler returns an HTTP handler for the authenticated player's profile.
// @Summary Current player
// @Description Returns the profile of the authenticated player.
// @Tags auth
// @Produce json
// @Success 200 {object} models.Response{data=models.PlayerResponse} "Player profile"
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Failure 404 {object} models.ErrorResponse "Player not found"
// @Router /auth/me [get]
// @Security BearerAuth
func NewGetMeHandler(svc CurrentUserGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		id, err := identity(r)
		if err != nil {
			writeError(ctx, w, err)
			return
		}

		player, err := svc.GetCurrentUser(ctx, id.PlayerID)
		if err != nil {
			writeError(ctx, w, err)
			return
		}

		writeJSON(w, http.StatusOK, "Success", models.NewPlayerResponse(player))
	}
}

// NewUpdateMeHandler returns an HTTP handler that updates the authenticated player's profile.
// @Summary Update current player
// @Description Updates name, email or password of the authenticated player. A new password is re-hashed.
// @Tags auth
// @Accept json
// @Produce json
// @Param updateProfileRequest body handlers.UpdateProfileRequest true "Profile changes"
// @Success 200 {object} models.Response{data=models.PlayerResponse} "Updated profile"
// @Failure 400 {object} models.ErrorResponse "Invalid request"
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Failure 409 {object} models.ErrorResponse "Email already registered"
// @Router /auth/me [patch]
// @Security BearerAuth
func NewUpdateMeHandler(svc ProfileUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		id, err := identity(r)
		if err != nil {
			writeError(ctx, w, err)
			return
		}

		var req UpdateProfileRequest
		if err := decodeAndValidate(r, &req); err != nil {
			writeError(ctx, w, err)
			return
		}

		player, err := svc.UpdateProfile(ctx, id.PlayerID, models.PlayerPatch{
			Name:     req.Name,
			Email:    req.Email,
			Password: req.Password,
		})
		if err != nil {
			writeError(ctx, w, err)
			return
		}

		writeJSON(w, http.StatusOK, "Profile updated successfully", models.NewPlayerResponse(player))
	}
}
