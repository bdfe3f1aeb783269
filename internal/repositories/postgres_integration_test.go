package repositories

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/sbilibin2017/gw-game-roster/internal/migrations"
	"github.com/sbilibin2017/gw-game-roster/internal/models"
)

func setupPostgresContainer(t *testing.T) *sqlx.DB {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping postgres integration test in short mode")
	}
	ctx := context.Background()

	req := tc.ContainerRequest{
		Image:        "postgres:15-alpine",
		Env:          map[string]string{"POSTGRES_PASSWORD": "password", "POSTGRES_DB": "testdb", "POSTGRES_USER": "postgres"},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   wait.ForLog("database system is ready to accept connections").WithOccurrence(2),
	}

	container, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = container.Terminate(context.Background()) })

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "5432")
	require.NoError(t, err)

	dsn := fmt.Sprintf("postgres://postgres:password@%s:%d/testdb?sslmode=disable", host, port.Int())

	var db *sqlx.DB
	for i := 0; i < 10; i++ {
		db, err = sqlx.Connect("pgx", dsn)
		if err == nil {
			break
		}
		time.Sleep(time.Second)
	}
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, migrations.Run(dsn))
	return db
}

func TestPostgres_RosterLifecycle(t *testing.T) {
	db := setupPostgresContainer(t)
	ctx := context.Background()

	players := NewPlayerWriteRepository(db)
	playerReader := NewPlayerReadRepository(db)
	games := NewGameWriteRepository(db)
	gameReader := NewGameReadRepository(db)
	members := NewMembershipWriteRepository(db)
	memberReader := NewMembershipReadRepository(db)
	tx := NewTransactor(db)

	alice, err := players.Create(ctx, "Alice", "alice@example.com", "hash")
	require.NoError(t, err)

	_, err = players.Create(ctx, "Alice again", "alice@example.com", "hash")
	assert.ErrorIs(t, err, ErrEmailTaken)

	existing, err := players.CreateIfNotExists(ctx, "Alice", "alice@example.com", "hash")
	require.NoError(t, err)
	assert.Nil(t, existing)

	byEmail, err := playerReader.GetByEmail(ctx, "alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, alice.PlayerID, byEmail.PlayerID)

	date := time.Date(2025, 3, 1, 19, 0, 0, 0, time.UTC)
	game, err := games.Create(ctx, &models.GameDB{Title: "Trivia Night", Date: date, Location: "Pub"})
	require.NoError(t, err)
	assert.True(t, date.Equal(game.Date))

	m, err := members.Create(ctx, game.GameID, alice.PlayerID)
	require.NoError(t, err)
	require.NotNil(t, m)
	assert.Equal(t, models.StatusInvited, m.Status)

	dup, err := members.Create(ctx, game.GameID, alice.PlayerID)
	require.NoError(t, err)
	assert.Nil(t, dup)

	_, err = members.UpdateStatus(ctx, game.GameID, alice.PlayerID, models.StatusAccepted)
	require.NoError(t, err)

	roster, err := memberReader.Roster(ctx, game.GameID)
	require.NoError(t, err)
	require.Len(t, roster, 1)
	assert.Equal(t, models.StatusAccepted, roster[0].Status)

	err = tx.WithinTx(ctx, func(ctx context.Context) error {
		if _, err := members.DeleteByGame(ctx, game.GameID); err != nil {
			return err
		}
		_, err := games.Delete(ctx, game.GameID)
		return err
	})
	require.NoError(t, err)

	gone, err := gameReader.GetByID(ctx, game.GameID)
	require.NoError(t, err)
	assert.Nil(t, gone)

	membership, err := memberReader.Get(ctx, game.GameID, alice.PlayerID)
	require.NoError(t, err)
	assert.Nil(t, membership)
}

func TestPostgres_ConcurrentMembershipInsert(t *testing.T) {
	db := setupPostgresContainer(t)
	ctx := context.Background()

	player, err := NewPlayerWriteRepository(db).Create(ctx, "Bob", "bob@example.com", "hash")
	require.NoError(t, err)
	game, err := NewGameWriteRepository(db).Create(ctx, &models.GameDB{Title: "Quiz", Date: time.Now(), Location: "Bar"})
	require.NoError(t, err)

	members := NewMembershipWriteRepository(db)

	const workers = 8
	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		created int
	)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			m, err := members.Create(ctx, game.GameID, player.PlayerID)
			assert.NoError(t, err)
			if m != nil {
				mu.Lock()
				created++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, created)
}

func TestPostgres_RollbackLeavesNoRows(t *testing.T) {
	db := setupPostgresContainer(t)
	ctx := context.Background()
	email := uuid.NewString() + "@example.com"

	err := NewTransactor(db).WithinTx(ctx, func(ctx context.Context) error {
		if _, err := NewPlayerWriteRepository(db).Create(ctx, "Tmp", email, "hash"); err != nil {
			return err
		}
		return fmt.Errorf("abort")
	})
	require.Error(t, err)

	player, err := NewPlayerReadRepository(db).GetByEmail(ctx, email)
	require.NoError(t, err)
	assert.Nil(t, player)
}
