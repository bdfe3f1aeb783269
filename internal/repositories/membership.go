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

// MembershipReadRepository handles game_players read operations
type MembershipReadRepository struct {
	db *sqlx.DB
}

func NewMembershipReadRepository(db *sqlx.DB) *MembershipReadRepository {
	return &MembershipReadRepository{db: db}
}

// Get returns the membership of the player in the game, or nil when there is none.
func (r *MembershipReadRepository) Get(ctx context.Context, gameID, playerID uuid.UUID) (*models.MembershipDB, error) {
	const query = `
		SELECT id, game_id, player_id, status, created_at, updated_at
		FROM game_players
		WHERE game_id = $1 AND player_id = $2
	`

	var membership models.MembershipDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db), &membership, query, gameID, playerID)
	logQuery(ctx, query, []any{gameID, playerID}, membership.Status, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, oops.In("repository").With("table", "game_players").Wrap(err)
	}
	return &membership, nil
}

// Roster returns the players of the game with their status, in the order they were added.
func (r *MembershipReadRepository) Roster(ctx context.Context, gameID uuid.UUID) ([]models.RosterEntry, error) {
	const query = `
		SELECT p.id, p.name, p.email, p.created_at, p.updated_at, gp.status
		FROM game_players gp
		JOIN players p ON p.id = gp.player_id
		WHERE gp.game_id = $1
		ORDER BY gp.created_at ASC, p.name ASC
	`

	roster := []models.RosterEntry{}
	err := sqlx.SelectContext(ctx, executor(ctx, r.db), &roster, query, gameID)
	logQuery(ctx, query, []any{gameID}, len(roster), err)

	if err != nil {
		return nil, oops.In("repository").With("table", "game_players").Wrap(err)
	}
	return roster, nil
}

// MembershipWriteRepository handles game_players write operations
type MembershipWriteRepository struct {
	db *sqlx.DB
}

func NewMembershipWriteRepository(db *sqlx.DB) *MembershipWriteRepository {
	return &MembershipWriteRepository{db: db}
}

// Create inserts an invited membership. Returns nil without error when the pair
// already exists; the unique (game_id, player_id) constraint decides concurrent inserts.
func (r *MembershipWriteRepository) Create(ctx context.Context, gameID, playerID uuid.UUID) (*models.MembershipDB, error) {
	const query = `
		INSERT INTO game_players (id, game_id, player_id, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4::game_player_status, NOW(), NOW())
		ON CONFLICT (game_id, player_id) DO NOTHING
		RETURNING id, game_id, player_id, status, created_at, updated_at
	`
	args := []any{uuid.New(), gameID, playerID, string(models.StatusInvited)}

	var membership models.MembershipDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db), &membership, query, args...)
	logQuery(ctx, query, args, membership.MembershipID, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, oops.In("repository").With("table", "game_players").Wrap(err)
	}
	return &membership, nil
}

// UpdateStatus overwrites the status of the membership and returns the stored row,
// or nil when the membership does not exist.
func (r *MembershipWriteRepository) UpdateStatus(ctx context.Context, gameID, playerID uuid.UUID, status models.Status) (*models.MembershipDB, error) {
	const query = `
		UPDATE game_players
		SET status = $3::game_player_status, updated_at = NOW()
		WHERE game_id = $1 AND player_id = $2
		RETURNING id, game_id, player_id, status, created_at, updated_at
	`
	args := []any{gameID, playerID, string(status)}

	var membership models.MembershipDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db), &membership, query, args...)
	logQuery(ctx, query, args, membership.Status, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, oops.In("repository").With("table", "game_players").Wrap(err)
	}
	return &membership, nil
}

// DeleteByGame removes every membership of the game and returns how many were removed.
func (r *MembershipWriteRepository) DeleteByGame(ctx context.Context, gameID uuid.UUID) (int64, error) {
	const query = `DELETE FROM game_players WHERE game_id = $1`

	res, err := executor(ctx, r.db).ExecContext(ctx, query, gameID)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}
	logQuery(ctx, query, []any{gameID}, rowsAffected, err)

	if err != nil {
		return 0, oops.In("repository").With("table", "game_players").Wrap(err)
	}
	return rowsAffected, nil
}
