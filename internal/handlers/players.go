package handlers

//go:generate mockgen -source=players.go -destination=players_mock.go -package=handlers

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/sbilibin2017/gw-game-roster/internal/models"
)

// PlayerAdder defines the interface for adding one player to a game.
type PlayerAdder interface {
	AddPlayer(ctx context.Context, gameID uuid.UUID, identity models.PlayerIdentity) (*models.Membership, error)
}

// MultiplePlayerAdder defines the interface for adding several players to a game.
type MultiplePlayerAdder interface {
	AddMultiplePlayers(ctx context.Context, gameID uuid.UUID, identities []models.PlayerIdentity) (*models.BatchResult, error)
}

// StatusUpdater defines the interface for changing a player's status in a game.
type StatusUpdater interface {
	UpdateStatus(ctx context.Context, gameID, playerID uuid.UUID, status models.Status) (*models.Membership, error)
}

// AddPlayerRequest identifies the player to add: an existing player by playerId,
// or by email, in which case a missing player is created from name and password.
// swagger:model AddPlayerRequest
type AddPlayerRequest struct {
	PlayerID *uuid.UUID `json:"playerId,omitempty"`
	Name     string     `json:"name,omitempty" validate:"required_without=PlayerID,omitempty,max=255"`
	Email    string     `json:"email,omitempty" validate:"required_without=PlayerID,omitempty,email,max=255"`
	Password string     `json:"password,omitempty" validate:"required_without=PlayerID,omitempty,min=6,max=255"`
}

func (req AddPlayerRequest) identity() models.PlayerIdentity {
	return models.PlayerIdentity{
		PlayerID: req.PlayerID,
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	}
}

// AddMultiplePlayersRequest represents the JSON body for a batch add
// swagger:model AddMultiplePlayersRequest
type AddMultiplePlayersRequest struct {
	Players []AddPlayerRequest `json:"players" validate:"required,min=1,dive"`
}

// UpdateStatusRequest represents the JSON body for a status change
// swagger:model UpdateStatusRequest
type UpdateStatusRequest struct {
	// invited, accepted or declined
	// required: true
	// default: accepted
	Status models.Status `json:"status" validate:"required,status"`
}

// NewAddPlayerHandler returns an HTTP handler that invites a player to a game.
// @Summary Add player to game
// @Tags players
// @Accept json
// @Produce json
// @Param id path string true "Game ID"
// @Param addPlayerRequest body handlers.AddPlayerRequest true "Player"
// @Success 201 {object} models.Response{data=models.MembershipResponse} "Player added"
// @Failure 404 {object} models.ErrorResponse "Game or player not found"
// @Failure 409 {object} models.ErrorResponse "Player already in game"
// @Router /games/{id}/players [post]
// @Security BearerAuth
func NewAddPlayerHandler(svc PlayerAdder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		gameID, err := uuidParam(r, "id")
		if err != nil {
			writeError(ctx, w, err)
			return
		}

		var req AddPlayerRequest
		if err := decodeAndValidate(r, &req); err != nil {
			writeError(ctx, w, err)
			return
		}

		membership, err := svc.AddPlayer(ctx, gameID, req.identity())
		if err != nil {
			writeError(ctx, w, err)
			return
		}

		writeJSON(w, http.StatusCreated, "Player added to game successfully", models.NewMembershipResponse(membership))
	}
}

// NewAddMultiplePlayersHandler returns an HTTP handler that invites several players at once.
// Entries fail independently; the request fails only when none succeeded.
// @Summary Add several players to game
// @Tags players
// @Accept json
// @Produce json
// @Param id path string true "Game ID"
// @Param addMultiplePlayersRequest body handlers.AddMultiplePlayersRequest true "Players"
// @Success 201 {object} models.Response{data=models.BatchResponse} "Players added"
// @Failure 400 {object} models.ErrorResponse "No player could be added"
// @Failure 404 {object} models.ErrorResponse "Game not found"
// @Router /games/{id}/players/multiple [post]
// @Security BearerAuth
func NewAddMultiplePlayersHandler(svc MultiplePlayerAdder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		gameID, err := uuidParam(r, "id")
		if err != nil {
			writeError(ctx, w, err)
			return
		}

		var req AddMultiplePlayersRequest
		if err := decodeAndValidate(r, &req); err != nil {
			writeError(ctx, w, err)
			return
		}

		identities := make([]models.PlayerIdentity, 0, len(req.Players))
		for _, p := range req.Players {
			identities = append(identities, p.identity())
		}

		result, err := svc.AddMultiplePlayers(ctx, gameID, identities)
		if err != nil {
			writeError(ctx, w, err)
			return
		}

		writeJSON(w, http.StatusCreated, "Players added to game successfully", models.NewBatchResponse(result))
	}
}

// NewUpdatePlayerStatusHandler returns an HTTP handler that changes a player's status in a game.
// @Summary Update player status
// @Tags players
// @Accept json
// @Produce json
// @Param id path string true "Game ID"
// @Param playerId path string true "Player ID"
// @Param updateStatusRequest body handlers.UpdateStatusRequest true "Status"
// @Success 200 {object} models.Response{data=models.MembershipResponse} "Status updated"
// @Failure 400 {object} models.ErrorResponse "Invalid status"
// @Failure 404 {object} models.ErrorResponse "Game, player or membership not found"
// @Router /games/{id}/players/{playerId} [patch]
// @Security BearerAuth
func NewUpdatePlayerStatusHandler(svc StatusUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		gameID, err := uuidParam(r, "id")
		if err != nil {
			writeError(ctx, w, err)
			return
		}
		playerID, err := uuidParam(r, "playerId")
		if err != nil {
			writeError(ctx, w, err)
			return
		}

		var req UpdateStatusRequest
		if err := decodeAndValidate(r, &req); err != nil {
			writeError(ctx, w, err)
			return
		}

		membership, err := svc.UpdateStatus(ctx, gameID, playerID, req.Status)
		if err != nil {
			writeError(ctx, w, err)
			return
		}

		writeJSON(w, http.StatusOK, "Player status updated successfully", models.NewMembershipResponse(membership))
	}
}
