package handlers

//go:generate mockgen -source=games.go -destination=games_mock.go -package=handlers

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/sbilibin2017/gw-game-roster/internal/models"
)

// GameCreator defines the interface for scheduling games.
type GameCreator interface {
	Create(ctx context.Context, in models.CreateGameInput) (*models.GameDB, error)
}

// GameLister defines the interface for listing games.
type GameLister interface {
	List(ctx context.Context) ([]models.GameDB, error)
}

// GameGetter defines the interface for loading a game with its roster.
type GameGetter interface {
	GetByID(ctx context.Context, gameID uuid.UUID) (*models.GameDetails, error)
}

// GameUpdater defines the interface for patching games.
type GameUpdater interface {
	Update(ctx context.Context, gameID uuid.UUID, patch models.GamePatch) (*models.GameDB, error)
}

// GameDeleter defines the interface for deleting games.
type GameDeleter interface {
	Delete(ctx context.Context, gameID uuid.UUID) error
}

// CreateGameRequest represents the JSON body for a new game
// swagger:model CreateGameRequest
type CreateGameRequest struct {
	// Title
	// required: true
	// default: Trivia Night
	Title string `json:"title" validate:"required,min=1,max=255"`

	// RFC 3339 date-time or YYYY-MM-DD
	// required: true
	// default: 2025-03-01T19:00:00Z
	Date string `json:"date" validate:"required"`

	// Location
	// required: true
	// default: Pub
	Location string `json:"location" validate:"required,min=1,max=255"`

	// Optional description
	Description *string `json:"description,omitempty" validate:"omitempty,max=2000"`
}

// UpdateGameRequest represents the JSON body for a game patch. Omitted fields are kept.
// swagger:model UpdateGameRequest
type UpdateGameRequest struct {
	Title       *string `json:"title,omitempty" validate:"omitempty,min=1,max=255"`
	Date        *string `json:"date,omitempty" validate:"omitempty,min=1"`
	Location    *string `json:"location,omitempty" validate:"omitempty,min=1,max=255"`
	Description *string `json:"description,omitempty" validate:"omitempty,max=2000"`
}

// NewCreateGameHandler returns an HTTP handler that schedules a game.
// @Summary Create game
// @Tags games
// @Accept json
// @Produce json
// @Param createGameRequest body handlers.CreateGameRequest true "Game"
// @Success 201 {object} models.Response{data=models.GameResponse} "Game created"
// @Failure 400 {object} models.ErrorResponse "Invalid request or date"
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Router /games [post]
// @Security BearerAuth
func NewCreateGameHandler(svc GameCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var req CreateGameRequest
		if err := decodeAndValidate(r, &req); err != nil {
			writeError(ctx, w, err)
			return
		}

		game, err := svc.Create(ctx, models.CreateGameInput{
			Title:       req.Title,
			Date:        req.Date,
			Location:    req.Location,
			Description: req.Description,
		})
		if err != nil {
			writeError(ctx, w, err)
			return
		}

		writeJSON(w, http.StatusCreated, "Game created successfully", models.NewGameResponse(game))
	}
}

// NewListGamesHandler returns an HTTP handler that lists games by date.
// @Summary List games
// @Tags games
// @Produce json
// @Success 200 {object} models.Response{data=[]models.GameResponse} "Games"
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Router /games [get]
// @Security BearerAuth
func NewListGamesHandler(svc GameLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		games, err := svc.List(ctx)
		if err != nil {
			writeError(ctx, w, err)
			return
		}

		resp := make([]models.GameResponse, 0, len(games))
		for i := range games {
			resp = append(resp, models.NewGameResponse(&games[i]))
		}
		writeJSON(w, http.StatusOK, "Success", resp)
	}
}

// NewGetGameHandler returns an HTTP handler that loads a game with its players.
// @Summary Get game
// @Tags games
// @Produce json
// @Param id path string true "Game ID"
// @Success 200 {object} models.Response{data=models.GameResponse} "Game with roster"
// @Failure 404 {object} models.ErrorResponse "Game not found"
// @Router /games/{id} [get]
// @Security BearerAuth
func NewGetGameHandler(svc GameGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		gameID, err := uuidParam(r, "id")
		if err != nil {
			writeError(ctx, w, err)
			return
		}

		details, err := svc.GetByID(ctx, gameID)
		if err != nil {
			writeError(ctx, w, err)
			return
		}

		writeJSON(w, http.StatusOK, "Success", models.NewGameDetailsResponse(details))
	}
}

// NewUpdateGameHandler returns an HTTP handler that patches a game.
// @Summary Update game
// @Tags games
// @Accept json
// @Produce json
// @Param id path string true "Game ID"
// @Param updateGameRequest body handlers.UpdateGameRequest true "Changes"
// @Success 200 {object} models.Response{data=models.GameResponse} "Updated game"
// @Failure 400 {object} models.ErrorResponse "Invalid request or date"
// @Failure 404 {object} models.ErrorResponse "Game not found"
// @Router /games/{id} [patch]
// @Security BearerAuth
func NewUpdateGameHandler(svc GameUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		gameID, err := uuidParam(r, "id")
		if err != nil {
			writeError(ctx, w, err)
			return
		}

		var req UpdateGameRequest
		if err := decodeAndValidate(r, &req); err != nil {
			writeError(ctx, w, err)
			return
		}

		game, err := svc.Update(ctx, gameID, models.GamePatch{
			Title:       req.Title,
			Date:        req.Date,
			Location:    req.Location,
			Description: req.Description,
		})
		if err != nil {
			writeError(ctx, w, err)
			return
		}

		writeJSON(w, http.StatusOK, "Game updated successfully", models.NewGameResponse(game))
	}
}

// NewDeleteGameHandler returns an HTTP handler that deletes a game and its memberships.
// @Summary Delete game
// @Tags games
// @Param id path string true "Game ID"
// @Success 204 "Game deleted"
// @Failure 404 {object} models.ErrorResponse "Game not found"
// @Router /games/{id} [delete]
// @Security BearerAuth
func NewDeleteGameHandler(svc GameDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		gameID, err := uuidParam(r, "id")
		if err != nil {
			writeError(ctx, w, err)
			return
		}

		if err := svc.Delete(ctx, gameID); err != nil {
			writeError(ctx, w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
