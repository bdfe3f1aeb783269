package services

//go:generate mockgen -source=game.go -destination=game_mock.go -package=services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/sbilibin2017/gw-game-roster/internal/apperr"
	"github.com/sbilibin2017/gw-game-roster/internal/logger"
	"github.com/sbilibin2017/gw-game-roster/internal/models"
)

// GameWriter defines write operations for games.
type GameWriter interface {
	Create(ctx context.Context, game *models.GameDB) (*models.GameDB, error)
	Update(ctx context.Context, game *models.GameDB) (*models.GameDB, error)
	Delete(ctx context.Context, gameID uuid.UUID) (bool, error)
}

// RosterManager provides the membership operations games depend on.
type RosterManager interface {
	Roster(ctx context.Context, gameID uuid.UUID) ([]models.RosterEntry, error)
	RemoveAllForGame(ctx context.Context, gameID uuid.UUID) (int64, error)
}

// Accepted date layouts, tried in order. Layouts without a zone are read as UTC.
var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	time.DateOnly,
}

// parseDate parses a game date.
func parseDate(value string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, apperr.Wrap(apperr.BadRequest, ErrInvalidDate)
}

// GameService handles game CRUD.
type GameService struct {
	tx      Transactor
	reader  GameReader
	writer  GameWriter
	members RosterManager
}

// NewGameService creates a new GameService.
func NewGameService(tx Transactor, reader GameReader, writer GameWriter, members RosterManager) *GameService {
	return &GameService{
		tx:      tx,
		reader:  reader,
		writer:  writer,
		members: members,
	}
}

// Create schedules a new game.
func (svc *GameService) Create(ctx context.Context, in models.CreateGameInput) (*models.GameDB, error) {
	date, err := parseDate(in.Date)
	if err != nil {
		return nil, err
	}

	game, err := svc.writer.Create(ctx, &models.GameDB{
		Title:       in.Title,
		Date:        date,
		Location:    in.Location,
		Description: in.Description,
	})
	if err != nil {
		return nil, err
	}

	logger.FromContext(ctx).Infow("game created", "game_id", game.GameID)
	return game, nil
}

// List returns every game ordered by date.
func (svc *GameService) List(ctx context.Context) ([]models.GameDB, error) {
	return svc.reader.List(ctx)
}

// GetByID returns the game with its roster.
func (svc *GameService) GetByID(ctx context.Context, gameID uuid.UUID) (*models.GameDetails, error) {
	game, err := svc.reader.GetByID(ctx, gameID)
	if err != nil {
		return nil, err
	}
	if game == nil {
		return nil, apperr.Wrap(apperr.NotFound, ErrGameNotFound)
	}

	roster, err := svc.members.Roster(ctx, gameID)
	if err != nil {
		return nil, err
	}
	return &models.GameDetails{Game: *game, Roster: roster}, nil
}

// Update applies the patch. Omitted fields keep their value.
func (svc *GameService) Update(ctx context.Context, gameID uuid.UUID, patch models.GamePatch) (*models.GameDB, error) {
	var date *time.Time
	if patch.Date != nil {
		d, err := parseDate(*patch.Date)
		if err != nil {
			return nil, err
		}
		date = &d
	}

	var updated *models.GameDB
	err := svc.tx.WithinTx(ctx, func(ctx context.Context) error {
		game, err := svc.reader.GetByID(ctx, gameID)
		if err != nil {
			return err
		}
		if game == nil {
			return apperr.Wrap(apperr.NotFound, ErrGameNotFound)
		}

		if patch.Title != nil {
			game.Title = *patch.Title
		}
		if date != nil {
			game.Date = *date
		}
		if patch.Location != nil {
			game.Location = *patch.Location
		}
		if patch.Description != nil {
			game.Description = patch.Description
		}

		updated, err = svc.writer.Update(ctx, game)
		if err != nil {
			return err
		}
		if updated == nil {
			return apperr.Wrap(apperr.NotFound, ErrGameNotFound)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// Delete removes the game and all of its memberships in one transaction.
func (svc *GameService) Delete(ctx context.Context, gameID uuid.UUID) error {
	err := svc.tx.WithinTx(ctx, func(ctx context.Context) error {
		game, err := svc.reader.GetByID(ctx, gameID)
		if err != nil {
			return err
		}
		if game == nil {
			return apperr.Wrap(apperr.NotFound, ErrGameNotFound)
		}

		removed, err := svc.members.RemoveAllForGame(ctx, gameID)
		if err != nil {
			return err
		}

		deleted, err := svc.writer.Delete(ctx, gameID)
		if err != nil {
			return err
		}
		if !deleted {
			return apperr.Wrap(apperr.NotFound, ErrGameNotFound)
		}

		logger.FromContext(ctx).Infow("game deleted", "game_id", gameID, "memberships_removed", removed)
		return nil
	})
	return err
}
