package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"

	"todoapi/internal/adapter/database"
	"todoapi/internal/adapter/database/query"
	"todoapi/internal/core/domain"
	"todoapi/internal/core/port"
	tel "todoapi/internal/core/telemetry"
)

type UserRepository struct {
	base
	telemetry port.Telemetry
}

func NewUserRepository(db *database.DB, telemetry port.Telemetry) *UserRepository {
	if telemetry == nil {
		telemetry = tel.NewNoOpProbe()
	}

	return &UserRepository{
		base:      newBase(db),
		telemetry: telemetry,
	}
}

func (ur *UserRepository) GetByID(ctx context.Context, id uuid.UUID) (user domain.User, err error) {
	ctx, op := tel.StartRepositoryOperation(ctx, ur.telemetry, "select_by_id", "User", attribute.String("user.id", id.String()))
	defer func() { op.End(err) }()

	stmt, err := ur.queries.SelectUserByID(id)
	if err != nil {
		return domain.User{}, err
	}

	return ur.selectOne(ctx, stmt)
}

// GetByEmail also loads the password hash.
func (ur *UserRepository) GetByEmail(ctx context.Context, email string) (user domain.User, err error) {
	ctx, op := tel.StartRepositoryOperation(ctx, ur.telemetry, "select_by_email", "User")
	defer func() { op.End(err) }()

	stmt, err := ur.queries.SelectUserByEmail(email)
	if err != nil {
		return domain.User{}, err
	}

	return ur.selectOne(ctx, stmt)
}

// Create stores a user. Users are provisioned out of band; the HTTP surface
// never writes them.
func (ur *UserRepository) Create(ctx context.Context, user domain.User) (err error) {
	ctx, op := tel.StartRepositoryOperation(ctx, ur.telemetry, "insert", "User", attribute.String("user.id", user.ID.String()))
	defer func() { op.End(err) }()

	stmt, err := ur.queries.InsertUser(user)
	if err != nil {
		return err
	}

	if _, err := ur.exec(ctx, stmt); err != nil {
		return fmt.Errorf("insert user: %w", err)
	}

	return nil
}

func (ur *UserRepository) selectOne(ctx context.Context, stmt query.Statement) (domain.User, error) {
	var (
		user  domain.User
		found bool
	)

	err := ur.queryRows(ctx, stmt, func(rows *sql.Rows) error {
		if !rows.Next() {
			return rows.Err()
		}

		var err error
		user, err = ur.db.Scanner.ScanUser(rows)
		found = err == nil

		return err
	})
	if err != nil {
		return domain.User{}, fmt.Errorf("select user: %w", err)
	}

	if !found {
		return domain.User{}, domain.ErrNotFound
	}

	return user, nil
}
