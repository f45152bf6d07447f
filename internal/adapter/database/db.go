package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog"
	sqldblogger "github.com/simukti/sqldb-logger"
	"github.com/simukti/sqldb-logger/logadapter/zerologadapter"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"

	"todoapi/internal/shared"
)

type Dialect string

const (
	DialectPostgres Dialect = "postgres"
	DialectSQLite   Dialect = "sqlite3"
)

var ErrUnsupportedConnectionString = errors.New("unsupported connection string")

// Target is a parsed connection string.
type Target struct {
	Driver  string
	DSN     string
	Dialect Dialect
	// Memory is an in-process SQLite store that lives as long as its
	// single pooled connection.
	Memory bool
}

type DB struct {
	*sql.DB
	Dialect      Dialect
	QueryBuilder sq.StatementBuilderType
	Scanner      *Scanner
}

// ParseConnectionString picks the driver from the connection string scheme.
func ParseConnectionString(raw string) (Target, error) {
	raw = strings.TrimSpace(raw)

	switch {
	case strings.HasPrefix(raw, "postgres://"), strings.HasPrefix(raw, "postgresql://"):
		return Target{Driver: "pgx", DSN: raw, Dialect: DialectPostgres}, nil

	case raw == ":memory:", raw == "sqlite://:memory:":
		dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
		return Target{Driver: "sqlite3", DSN: dsn, Dialect: DialectSQLite, Memory: true}, nil

	case strings.HasPrefix(raw, "sqlite://"):
		path := strings.TrimPrefix(raw, "sqlite://")
		if path == "" {
			return Target{}, fmt.Errorf("%w: missing sqlite path", ErrUnsupportedConnectionString)
		}

		return Target{Driver: "sqlite3", DSN: path, Dialect: DialectSQLite}, nil

	case strings.HasPrefix(raw, "file:"):
		memory := strings.Contains(raw, "mode=memory")
		return Target{Driver: "sqlite3", DSN: raw, Dialect: DialectSQLite, Memory: memory}, nil
	}

	return Target{}, ErrUnsupportedConnectionString
}

func (d Dialect) PlaceholderFormat() sq.PlaceholderFormat {
	if d == DialectPostgres {
		return sq.Dollar
	}

	return sq.Question
}

// Open connects to the configured store and applies the embedded schema.
func Open(ctx context.Context, config shared.DatabaseConfig) (*DB, error) {
	target, err := ParseConnectionString(config.ConnectionString)
	if err != nil {
		return nil, err
	}

	if target.Dialect == DialectPostgres {
		if err := migratePostgres(target.DSN); err != nil {
			return nil, fmt.Errorf("failed to run migrations: %w", err)
		}
	}

	sqlDB, err := otelsql.Open(target.Driver, target.DSN,
		otelsql.WithDBSystem(dbSystem(target.Dialect)),
		otelsql.WithDBName("todoapi"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if config.LogQueries {
		sqlDB = withQueryLog(sqlDB, target.DSN, os.Stdout)
	}

	configurePool(sqlDB, target, config)

	if err := sqlDB.PingContext(ctx); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("failed to reach database: %w", err)
	}

	if target.Dialect == DialectSQLite {
		if err := migrateSQLite(sqlDB); err != nil {
			sqlDB.Close()
			return nil, fmt.Errorf("failed to run migrations: %w", err)
		}
	}

	return New(sqlDB, target.Dialect), nil
}

// withQueryLog reopens the traced driver behind sqldb-logger. The original
// pool is closed; it has not handed out any connection yet.
func withQueryLog(sqlDB *sql.DB, dsn string, out io.Writer) *sql.DB {
	logger := zerolog.New(out).With().Timestamp().Str("component", "sql").Logger()
	driver := sqlDB.Driver()

	sqlDB.Close()

	return sqldblogger.OpenDriver(dsn, driver, zerologadapter.New(logger))
}

// New wraps an already opened pool.
func New(sqlDB *sql.DB, dialect Dialect) *DB {
	return &DB{
		DB:           sqlDB,
		Dialect:      dialect,
		QueryBuilder: sq.StatementBuilder.PlaceholderFormat(dialect.PlaceholderFormat()),
		Scanner:      NewScanner(),
	}
}

func configurePool(sqlDB *sql.DB, target Target, config shared.DatabaseConfig) {
	if target.Memory {
		sqlDB.SetMaxOpenConns(1)
		sqlDB.SetMaxIdleConns(1)
		sqlDB.SetConnMaxLifetime(0)
		return
	}

	sqlDB.SetMaxOpenConns(config.MaxOpenConns)
	sqlDB.SetMaxIdleConns(config.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(config.ConnMaxLifetime)
}

func dbSystem(dialect Dialect) string {
	if dialect == DialectPostgres {
		return "postgresql"
	}

	return "sqlite"
}

// WithConn runs fn on a single connection taken from the pool. The
// connection is returned on every exit path.
func (db *DB) WithConn(ctx context.Context, fn func(conn *sql.Conn) error) error {
	conn, err := db.Conn(ctx)
	if err != nil {
		return fmt.Errorf("failed to acquire connection: %w", err)
	}
	defer conn.Close()

	return fn(conn)
}

// HealthCheck pings the store with a short deadline.
func (db *DB) HealthCheck(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	return db.PingContext(ctx)
}
