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

// ErrEmailTaken is returned when a player with the same email already exists.
var ErrEmailTaken = errors.New("email already exists")

// PlayerReadRepository handles player read operations
type PlayerReadRepository struct {
	db *sqlx.DB
}

func NewPlayerReadRepository(db *sqlx.DB) *PlayerReadRepository {
	return &PlayerReadRepository{db: db}
}

// GetByID returns the player with the given id, or nil when there is none.
func (r *PlayerReadRepository) GetByID(ctx context.Context, playerID uuid.UUID) (*models.PlayerDB, error) {
	const query = `
		SELECT id, name, email, password_hash, created_at, updated_at
		FROM players
		WHERE id = $1
	`
	return r.get(ctx, query, playerID)
}

// GetByEmail returns the player with the given email, or nil when there is none.
func (r *PlayerReadRepository) GetByEmail(ctx context.Context, email string) (*models.PlayerDB, error) {
	const query = `
		SELECT id, name, email, password_hash, created_at, updated_at
		FROM players
		WHERE email = $1
	`
	return r.get(ctx, query, email)
}

func (r *PlayerReadRepository) get(ctx context.Context, query string, arg any) (*models.PlayerDB, error) {
	var player models.PlayerDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db), &player, query, arg)
	logQuery(ctx, query, []any{arg}, player.PlayerID, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, oops.In("repository").With("table", "players").Wrap(err)
	}
	return &player, nil
}

// PlayerWriteRepository handles player write operations
type PlayerWriteRepository struct {
	db *sqlx.DB
}

func NewPlayerWriteRepository(db *sqlx.DB) *PlayerWriteRepository {
	return &PlayerWriteRepository{db: db}
}

// Create inserts a new player. Returns ErrEmailTaken when the email is already used.
func (r *PlayerWriteRepository) Create(ctx context.Context, name, email, passwordHash string) (*models.PlayerDB, error) {
	const query = `
		INSERT INTO players (id, name, email, password_hash, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
		RETURNING id, name, email, password_hash, created_at, updated_at
	`
	id := uuid.New()

	var player models.PlayerDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db), &player, query, id, name, email, passwordHash)
	logQuery(ctx, query, []any{id, name, email}, player.PlayerID, err)

	if isUniqueViolation(err) {
		return nil, ErrEmailTaken
	}
	if err != nil {
		return nil, oops.In("repository").With("table", "players").Wrap(err)
	}
	return &player, nil
}

// CreateIfNotExists inserts a new player unless the email is already used, in which
// case it returns nil without error. Used where an existing player must be reused.
func (r *PlayerWriteRepository) CreateIfNotExists(ctx context.Context, name, email, passwordHash string) (*models.PlayerDB, error) {
	const query = `
		INSERT INTO players (id, name, email, password_hash, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
		ON CONFLICT (email) DO NOTHING
		RETURNING id, name, email, password_hash, created_at, updated_at
	`
	id := uuid.New()

	var player models.PlayerDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db), &player, query, id, name, email, passwordHash)
	logQuery(ctx, query, []any{id, name, email}, player.PlayerID, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, oops.In("repository").With("table", "players").Wrap(err)
	}
	return &player, nil
}

// Update overwrites the profile fields of the player and returns the stored row,
// or nil when the player does not exist. Returns ErrEmailTaken on email clash.
func (r *PlayerWriteRepository) Update(ctx context.Context, player *models.PlayerDB) (*models.PlayerDB, error) {
	const query = `
		UPDATE players
		SET name = $2, email = $3, password_hash = $4, updated_at = NOW()
		WHERE id = $1
		RETURNING id, name, email, password_hash, created_at, updated_at
	`

	var updated models.PlayerDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db), &updated, query,
		player.PlayerID, player.Name, player.Email, player.PasswordHash)
	logQuery(ctx, query, []any{player.PlayerID, player.Name, player.Email}, updated.PlayerID, err)

	switch {
	case errors.Is(err, sql.ErrNoRows):
		return nil, nil
	case isUniqueViolation(err):
		return nil, ErrEmailTaken
	case err != nil:
		return nil, oops.In("repository").With("table", "players").Wrap(err)
	}
	return &updated, nil
}
