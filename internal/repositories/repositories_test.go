package repositories

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sbilibin2017/gw-game-roster/internal/models"
)

var (
	playerColumns     = []string{"id", "name", "email", "password_hash", "created_at", "updated_at"}
	gameColumns       = []string{"id", "title", "date", "location", "description", "created_at", "updated_at"}
	membershipColumns = []string{"id", "game_id", "player_id", "status", "created_at", "updated_at"}
)

func TestPlayerReadRepository_GetByEmail(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPlayerReadRepository(db)
	ctx := context.Background()
	now := time.Now()
	id := uuid.New()

	t.Run("found", func(t *testing.T) {
		mock.ExpectQuery("SELECT id, name, email, password_hash").
			WithArgs("alice@example.com").
			WillReturnRows(sqlmock.NewRows(playerColumns).
				AddRow(id.String(), "Alice", "alice@example.com", "hash", now, now))

		player, err := repo.GetByEmail(ctx, "alice@example.com")
		require.NoError(t, err)
		require.NotNil(t, player)
		assert.Equal(t, id, player.PlayerID)
		assert.Equal(t, "hash", player.PasswordHash)
	})

	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery("SELECT id, name, email, password_hash").
			WithArgs("bob@example.com").
			WillReturnError(sql.ErrNoRows)

		player, err := repo.GetByEmail(ctx, "bob@example.com")
		assert.NoError(t, err)
		assert.Nil(t, player)
	})

	t.Run("db error", func(t *testing.T) {
		mock.ExpectQuery("SELECT id, name, email, password_hash").
			WithArgs("carol@example.com").
			WillReturnError(sql.ErrConnDone)

		player, err := repo.GetByEmail(ctx, "carol@example.com")
		assert.ErrorIs(t, err, sql.ErrConnDone)
		assert.Nil(t, player)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPlayerWriteRepository_Create(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPlayerWriteRepository(db)
	ctx := context.Background()
	now := time.Now()

	t.Run("ok", func(t *testing.T) {
		id := uuid.New()
		mock.ExpectQuery("INSERT INTO players").
			WithArgs(sqlmock.AnyArg(), "Alice", "alice@example.com", "hash").
			WillReturnRows(sqlmock.NewRows(playerColumns).
				AddRow(id.String(), "Alice", "alice@example.com", "hash", now, now))

		player, err := repo.Create(ctx, "Alice", "alice@example.com", "hash")
		require.NoError(t, err)
		assert.Equal(t, id, player.PlayerID)
	})

	t.Run("email taken", func(t *testing.T) {
		mock.ExpectQuery("INSERT INTO players").
			WithArgs(sqlmock.AnyArg(), "Alice", "alice@example.com", "hash").
			WillReturnError(&pgconn.PgError{Code: pgerrcode.UniqueViolation})

		player, err := repo.Create(ctx, "Alice", "alice@example.com", "hash")
		assert.ErrorIs(t, err, ErrEmailTaken)
		assert.Nil(t, player)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPlayerWriteRepository_CreateIfNotExists(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPlayerWriteRepository(db)

	mock.ExpectQuery("ON CONFLICT \\(email\\) DO NOTHING").
		WithArgs(sqlmock.AnyArg(), "Alice", "alice@example.com", "hash").
		WillReturnRows(sqlmock.NewRows(playerColumns))

	player, err := repo.CreateIfNotExists(context.Background(), "Alice", "alice@example.com", "hash")
	assert.NoError(t, err)
	assert.Nil(t, player)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPlayerWriteRepository_Update(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPlayerWriteRepository(db)
	ctx := context.Background()
	player := &models.PlayerDB{PlayerID: uuid.New(), Name: "A", Email: "a@example.com", PasswordHash: "h"}

	t.Run("missing", func(t *testing.T) {
		mock.ExpectQuery("UPDATE players").
			WithArgs(player.PlayerID, "A", "a@example.com", "h").
			WillReturnRows(sqlmock.NewRows(playerColumns))

		updated, err := repo.Update(ctx, player)
		assert.NoError(t, err)
		assert.Nil(t, updated)
	})

	t.Run("email taken", func(t *testing.T) {
		mock.ExpectQuery("UPDATE players").
			WithArgs(player.PlayerID, "A", "a@example.com", "h").
			WillReturnError(&pgconn.PgError{Code: pgerrcode.UniqueViolation})

		_, err := repo.Update(ctx, player)
		assert.ErrorIs(t, err, ErrEmailTaken)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGameRepositories(t *testing.T) {
	db, mock := newMockDB(t)
	read := NewGameReadRepository(db)
	write := NewGameWriteRepository(db)
	ctx := context.Background()
	now := time.Now()
	date := time.Date(2025, 3, 1, 19, 0, 0, 0, time.UTC)
	id := uuid.New()

	t.Run("create", func(t *testing.T) {
		mock.ExpectQuery("INSERT INTO games").
			WithArgs(sqlmock.AnyArg(), "Trivia Night", date, "Pub", nil).
			WillReturnRows(sqlmock.NewRows(gameColumns).
				AddRow(id.String(), "Trivia Night", date, "Pub", nil, now, now))

		game, err := write.Create(ctx, &models.GameDB{Title: "Trivia Night", Date: date, Location: "Pub"})
		require.NoError(t, err)
		assert.Equal(t, id, game.GameID)
		assert.Nil(t, game.Description)
	})

	t.Run("list", func(t *testing.T) {
		mock.ExpectQuery("ORDER BY date ASC").
			WillReturnRows(sqlmock.NewRows(gameColumns).
				AddRow(id.String(), "Trivia Night", date, "Pub", "fun", now, now).
				AddRow(uuid.NewString(), "Quiz", date.Add(time.Hour), "Bar", nil, now, now))

		games, err := read.List(ctx)
		require.NoError(t, err)
		require.Len(t, games, 2)
		require.NotNil(t, games[0].Description)
		assert.Equal(t, "fun", *games[0].Description)
	})

	t.Run("get missing", func(t *testing.T) {
		mock.ExpectQuery("FROM games").WithArgs(id).WillReturnRows(sqlmock.NewRows(gameColumns))

		game, err := read.GetByID(ctx, id)
		assert.NoError(t, err)
		assert.Nil(t, game)
	})

	t.Run("delete", func(t *testing.T) {
		mock.ExpectExec("DELETE FROM games").WithArgs(id).WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec("DELETE FROM games").WithArgs(id).WillReturnResult(sqlmock.NewResult(0, 0))

		deleted, err := write.Delete(ctx, id)
		require.NoError(t, err)
		assert.True(t, deleted)

		deleted, err = write.Delete(ctx, id)
		require.NoError(t, err)
		assert.False(t, deleted)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMembershipRepositories(t *testing.T) {
	db, mock := newMockDB(t)
	read := NewMembershipReadRepository(db)
	write := NewMembershipWriteRepository(db)
	ctx := context.Background()
	now := time.Now()
	gameID, playerID := uuid.New(), uuid.New()

	t.Run("create", func(t *testing.T) {
		mock.ExpectQuery("INSERT INTO game_players").
			WithArgs(sqlmock.AnyArg(), gameID, playerID, "invited").
			WillReturnRows(sqlmock.NewRows(membershipColumns).
				AddRow(uuid.NewString(), gameID.String(), playerID.String(), "invited", now, now))

		m, err := write.Create(ctx, gameID, playerID)
		require.NoError(t, err)
		assert.Equal(t, models.StatusInvited, m.Status)
	})

	t.Run("create duplicate", func(t *testing.T) {
		mock.ExpectQuery("ON CONFLICT \\(game_id, player_id\\) DO NOTHING").
			WithArgs(sqlmock.AnyArg(), gameID, playerID, "invited").
			WillReturnRows(sqlmock.NewRows(membershipColumns))

		m, err := write.Create(ctx, gameID, playerID)
		assert.NoError(t, err)
		assert.Nil(t, m)
	})

	t.Run("update status", func(t *testing.T) {
		mock.ExpectQuery("UPDATE game_players").
			WithArgs(gameID, playerID, "accepted").
			WillReturnRows(sqlmock.NewRows(membershipColumns).
				AddRow(uuid.NewString(), gameID.String(), playerID.String(), "accepted", now, now))

		m, err := write.UpdateStatus(ctx, gameID, playerID, models.StatusAccepted)
		require.NoError(t, err)
		assert.Equal(t, models.StatusAccepted, m.Status)
	})

	t.Run("roster", func(t *testing.T) {
		mock.ExpectQuery("JOIN players p ON p.id = gp.player_id").
			WithArgs(gameID).
			WillReturnRows(sqlmock.NewRows([]string{"id", "name", "email", "created_at", "updated_at", "status"}).
				AddRow(playerID.String(), "Alice", "alice@example.com", now, now, "accepted"))

		roster, err := read.Roster(ctx, gameID)
		require.NoError(t, err)
		require.Len(t, roster, 1)
		assert.Equal(t, playerID, roster[0].PlayerID)
		assert.Equal(t, models.StatusAccepted, roster[0].Status)
		assert.Empty(t, roster[0].PasswordHash)
	})

	t.Run("get error", func(t *testing.T) {
		boom := errors.New("boom")
		mock.ExpectQuery("FROM game_players").WithArgs(gameID, playerID).WillReturnError(boom)

		_, err := read.Get(ctx, gameID, playerID)
		assert.ErrorIs(t, err, boom)
	})

	t.Run("delete by game", func(t *testing.T) {
		mock.ExpectExec("DELETE FROM game_players").WithArgs(gameID).WillReturnResult(sqlmock.NewResult(0, 3))

		n, err := write.DeleteByGame(ctx, gameID)
		require.NoError(t, err)
		assert.Equal(t, int64(3), n)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepositories_UseTransactionFromContext(t *testing.T) {
	db, mock := newMockDB(t)
	gameID := uuid.New()

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM game_players").WithArgs(gameID).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("DELETE FROM games").WithArgs(gameID).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := NewTransactor(db).WithinTx(context.Background(), func(ctx context.Context) error {
		if _, err := NewMembershipWriteRepository(db).DeleteByGame(ctx, gameID); err != nil {
			return err
		}
		_, err := NewGameWriteRepository(db).Delete(ctx, gameID)
		return err
	})

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
