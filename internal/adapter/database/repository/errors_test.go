package repository_test

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"todoapi/internal/adapter/database"
	"todoapi/internal/adapter/database/repository"
	"todoapi/internal/core/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockDB(t *testing.T) (*database.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	return database.New(sqlDB, database.DialectSQLite), mock
}

func TestTodoRepository_StoreFailure(t *testing.T) {
	db, mock := newMockDB(t)
	repo := repository.NewTodoRepository(db, nil)
	boom := errors.New("connection reset")

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO Todo")).WillReturnError(boom)

	_, err := repo.Create(context.Background(), domain.NewTodo("buy milk", domain.None[bool](), uuid.New()))

	assert.ErrorIs(t, err, boom)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTodoRepository_MalformedRowIsMappingError(t *testing.T) {
	db, mock := newMockDB(t)
	repo := repository.NewTodoRepository(db, nil)
	id := uuid.New()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT Id, Task, Completed, UserId, IsDeleted FROM Todo WHERE Id = ? AND IsDeleted = ?")).
		WithArgs(id.String(), false).
		WillReturnRows(sqlmock.NewRows([]string{"Id", "Task", "Completed", "UserId", "IsDeleted"}).
			AddRow(id.String(), "buy milk", "maybe", uuid.NewString(), false))

	_, err := repo.GetByID(context.Background(), id)

	assert.ErrorIs(t, err, database.ErrRowMapping)
	assert.False(t, errors.Is(err, domain.ErrNotFound))
}

func TestTodoRepository_EmptyUpdateSkipsStore(t *testing.T) {
	db, mock := newMockDB(t)
	repo := repository.NewTodoRepository(db, nil)

	_, err := repo.Update(context.Background(), domain.TodoPatch{ID: uuid.New()})

	assert.ErrorIs(t, err, domain.ErrEmptyUpdate)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_BoundParameters(t *testing.T) {
	db, mock := newMockDB(t)
	repo := repository.NewUserRepository(db, nil)
	email := "x' OR '1'='1"

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT Id, FirstName, LastName, Email, Password FROM "User" WHERE Email = ?`)).
		WithArgs(email).
		WillReturnRows(sqlmock.NewRows([]string{"Id", "FirstName", "LastName", "Email", "Password"}))

	_, err := repo.GetByEmail(context.Background(), email)

	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
