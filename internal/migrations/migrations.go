// Package migrations applies the embedded database schema with golang-migrate.
package migrations

import (
	"embed"
	"errors"
	"strings"

	"github.com/golang-migrate/migrate/v4"
	// Register pgx/v5 database driver for golang-migrate.
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/samber/oops"

	"github.com/sbilibin2017/gw-game-roster/internal/logger"
)

//go:embed sql/*.sql
var migrationsFS embed.FS

// Migrator wraps golang-migrate for schema management.
type Migrator struct {
	m *migrate.Migrate
}

// toMigrateURL converts postgres:// and postgresql:// to the pgx5:// scheme the driver registers.
func toMigrateURL(databaseURL string) string {
	for _, prefix := range []string{"postgres://", "postgresql://"} {
		if rest, found := strings.CutPrefix(databaseURL, prefix); found {
			return "pgx5://" + rest
		}
	}
	return databaseURL
}

// New creates a Migrator for the database at databaseURL.
func New(databaseURL string) (*Migrator, error) {
	source, err := iofs.New(migrationsFS, "sql")
	if err != nil {
		return nil, oops.In("migrations").Wrapf(err, "create migration source")
	}

	m, err := migrate.NewWithSourceInstance("iofs", source, toMigrateURL(databaseURL))
	if err != nil {
		_ = source.Close()
		return nil, oops.In("migrations").Wrapf(err, "initialize migrator")
	}
	return &Migrator{m: m}, nil
}

// Up applies all pending migrations. No pending migrations is not an error.
func (m *Migrator) Up() error {
	if err := m.m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return oops.In("migrations").Wrapf(err, "migrate up")
	}

	version, dirty, err := m.m.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return oops.In("migrations").Wrapf(err, "read version")
	}
	logger.Log.Infow("database schema up to date", "version", version, "dirty", dirty)
	return nil
}

// Down rolls back every migration.
func (m *Migrator) Down() error {
	if err := m.m.Down(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return oops.In("migrations").Wrapf(err, "migrate down")
	}
	return nil
}

// Close releases the source and database handles.
func (m *Migrator) Close() error {
	srcErr, dbErr := m.m.Close()
	return errors.Join(srcErr, dbErr)
}

// Run applies all pending migrations to the database at databaseURL.
func Run(databaseURL string) error {
	m, err := New(databaseURL)
	if err != nil {
		return err
	}
	defer m.Close()

	return m.Up()
}
