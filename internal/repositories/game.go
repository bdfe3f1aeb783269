package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/samber/oops"

	"github.com/sbilibin2017/gw-game-roster/internal/models"
)

// GameReadRepository handles game read operations
type GameReadRepository struct {
	db *sqlx.DB
}

func NewGameReadRepository(db *sqlx.DB) *GameReadRepository {
	return &GameReadRepository{db: db}
}

// GetByID returns the game with the given id, or nil when there is none.
func (r *GameReadRepository) GetByID(ctx context.Context, gameID uuid.UUID) (*models.GameDB, error) {
	const query = `
		SELECT id, title, date, location, description, created_at, updated_at
		FROM games
		WHERE id = $1
	`

	var game models.GameDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db), &game, query, gameID)
	logQuery(ctx, query, []any{gameID}, game.GameID, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, oops.In("repository").With("table", "games").Wrap(err)
	}
	return &game, nil
}

// List returns all games ordered by date ascending.
func (r *GameReadRepository) List(ctx context.Context) ([]models.GameDB, error) {
	const query = `
		SELECT id, title, date, location, description, created_at, updated_at
		FROM games
		ORDER BY date ASC, created_at ASC
	`

	games := []models.GameDB{}
	err := sqlx.SelectContext(ctx, executor(ctx, r.db), &games, query)
	logQuery(ctx, query, nil, len(games), err)

	if err != nil {
		return nil, oops.In("repository").With("table", "games").Wrap(err)
	}
	return games, nil
}

// GameWriteRepository handles game write operations
type GameWriteRepository struct {
	db *sqlx.DB
}

func NewGameWriteRepository(db *sqlx.DB) *GameWriteRepository {
	return &GameWriteRepository{db: db}
}

// Create inserts a new game and returns the stored row.
func (r *GameWriteRepository) Create(ctx context.Context, game *models.GameDB) (*models.GameDB, error) {
	const query = `
		INSERT INTO games (id, title, date, location, description, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
		RETURNING id, title, date, location, description, created_at, updated_at
	`
	id := uuid.New()
	args := []any{id, game.Title, game.Date, game.Location, game.Description}

	var created models.GameDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db), &created, query, args...)
	logQuery(ctx, query, args, created.GameID, err)

	if err != nil {
		return nil, oops.In("repository").With("table", "games").Wrap(err)
	}
	return &created, nil
}

// Update overwrites all mutable fields of the game and returns the stored row,
// or nil when the game does not exist.
func (r *GameWriteRepository) Update(ctx context.Context, game *models.GameDB) (*models.GameDB, error) {
	const query = `
		UPDATE games
		SET title = $2, date = $3, location = $4, description = $5, updated_at = NOW()
		WHERE id = $1
		RETURNING id, title, date, location, description, created_at, updated_at
	`
	args := []any{game.GameID, game.Title, game.Date, game.Location, game.Description}

	var updated models.GameDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db), &updated, query, args...)
	logQuery(ctx, query, args, updated.GameID, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, oops.In("repository").With("table", "games").Wrap(err)
	}
	return &updated, nil
}

// Delete removes the game row. Returns false when no row was deleted.
func (r *GameWriteRepository) Delete(ctx context.Context, gameID uuid.UUID) (bool, error) {
	const query = `DELETE FROM games WHERE id = $1`

	res, err := executor(ctx, r.db).ExecContext(ctx, query, gameID)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}
	logQuery(ctx, query, []any{gameID}, rowsAffected, err)

	if err != nil {
		return false, oops.In("repository").With("table", "games").Wrap(err)
	}
	return rowsAffected > 0, nil
}
