package database

import (
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"

	"github.com/SscSPs/shopbooks/migrations"
	migrate "github.com/golang-migrate/migrate/v4"
	migratedb "github.com/golang-migrate/migrate/v4/database"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"

	_ "github.com/golang-migrate/migrate/v4/source/file"
)

// MigratePostgres applies the PostgreSQL schema through db, which must be
// opened with the pgx stdlib driver. An empty sourceURL uses the embedded
// migrations; otherwise it names a migrate source such as file://migrations/postgres.
func MigratePostgres(db *sql.DB, sourceURL string) error {
	driver, err := postgres.WithInstance(db, &postgres.Config{})
	if err != nil {
		return fmt.Errorf("could not create postgres driver instance for migrations: %w", err)
	}
	m, err := newMigrate(sourceURL, migrations.Postgres, "postgres", "postgres", driver)
	if err != nil {
		return err
	}
	if err := up(m); err != nil {
		return err
	}

	sourceErr, dbErr := m.Close()
	if sourceErr != nil {
		return fmt.Errorf("migration source error: %w", sourceErr)
	}
	if dbErr != nil {
		return fmt.Errorf("migration database error: %w", dbErr)
	}
	return nil
}

// MigrateSQLite applies the SQLite schema through db. The handle stays open:
// closing the migrate instance would close db with it.
func MigrateSQLite(db *sql.DB, sourceURL string) error {
	driver, err := sqlite.WithInstance(db, &sqlite.Config{})
	if err != nil {
		return fmt.Errorf("could not create sqlite driver instance for migrations: %w", err)
	}
	m, err := newMigrate(sourceURL, migrations.SQLite, "sqlite", "sqlite", driver)
	if err != nil {
		return err
	}
	return up(m)
}

func newMigrate(sourceURL string, embedded fs.FS, dir, dbName string, driver migratedb.Driver) (*migrate.Migrate, error) {
	if sourceURL != "" {
		m, err := migrate.NewWithDatabaseInstance(sourceURL, dbName, driver)
		if err != nil {
			return nil, fmt.Errorf("could not create migrate instance: %w", err)
		}
		return m, nil
	}

	src, err := iofs.New(embedded, dir)
	if err != nil {
		return nil, fmt.Errorf("could not open embedded migrations: %w", err)
	}
	m, err := migrate.NewWithInstance("iofs", src, dbName, driver)
	if err != nil {
		return nil, fmt.Errorf("could not create migrate instance: %w", err)
	}
	return m, nil
}

func up(m *migrate.Migrate) error {
	err := m.Up()
	if errors.Is(err, migrate.ErrNoChange) {
		slog.Info("No new migrations to apply")
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}
	slog.Info("Database migrations applied successfully")
	return nil
}
