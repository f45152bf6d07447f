package database

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	migratedb "github.com/golang-migrate/migrate/v4/database"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

//go:embed migrations
var migrationsFS embed.FS

func migrationSource(dialect Dialect) (string, error) {
	switch dialect {
	case DialectPostgres:
		return "migrations/postgres", nil
	case DialectSQLite:
		return "migrations/sqlite", nil
	}

	return "", fmt.Errorf("no migrations for dialect %q", dialect)
}

// migratePostgres runs on a dedicated pool that is closed afterwards.
func migratePostgres(dsn string) error {
	sqlDB, err := sql.Open("pgx", dsn)
	if err != nil {
		return err
	}

	driver, err := postgres.WithInstance(sqlDB, &postgres.Config{})
	if err != nil {
		sqlDB.Close()
		return err
	}

	m, err := newMigrate(DialectPostgres, "postgres", driver)
	if err != nil {
		sqlDB.Close()
		return err
	}

	// Closes the driver connection and sqlDB.
	defer m.Close()

	return up(m)
}

// migrateSQLite runs on the application pool. The migrate instance is not
// closed since that would close the pool too.
func migrateSQLite(sqlDB *sql.DB) error {
	driver, err := sqlite3.WithInstance(sqlDB, &sqlite3.Config{})
	if err != nil {
		return err
	}

	m, err := newMigrate(DialectSQLite, "sqlite3", driver)
	if err != nil {
		return err
	}

	return up(m)
}

func newMigrate(dialect Dialect, name string, driver migratedb.Driver) (*migrate.Migrate, error) {
	dir, err := migrationSource(dialect)
	if err != nil {
		return nil, err
	}

	source, err := iofs.New(migrationsFS, dir)
	if err != nil {
		return nil, err
	}

	return migrate.NewWithInstance("iofs", source, name, driver)
}

func up(m *migrate.Migrate) error {
	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}

	return nil
}
