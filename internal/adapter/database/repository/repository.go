package repository

import (
	"context"
	"database/sql"

	"todoapi/internal/adapter/database"
	"todoapi/internal/adapter/database/query"
)

// base runs built statements on one scoped connection per call.
type base struct {
	db      *database.DB
	queries *query.Builder
}

func newBase(db *database.DB) base {
	return base{db: db, queries: query.NewBuilder(db.QueryBuilder)}
}

func (b base) exec(ctx context.Context, stmt query.Statement) (int64, error) {
	var affected int64

	err := b.db.WithConn(ctx, func(conn *sql.Conn) error {
		result, err := conn.ExecContext(ctx, stmt.SQL, stmt.Args...)
		if err != nil {
			return err
		}

		affected, err = result.RowsAffected()
		return err
	})

	return affected, err
}

func (b base) queryRows(ctx context.Context, stmt query.Statement, scan func(rows *sql.Rows) error) error {
	return b.db.WithConn(ctx, func(conn *sql.Conn) error {
		rows, err := conn.QueryContext(ctx, stmt.SQL, stmt.Args...)
		if err != nil {
			return err
		}
		defer rows.Close()

		return scan(rows)
	})
}
