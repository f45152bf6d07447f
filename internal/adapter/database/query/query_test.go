package query

import (
	"testing"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"todoapi/internal/core/domain"
)

func sqliteBuilder() *Builder {
	return NewBuilder(sq.StatementBuilder.PlaceholderFormat(sq.Question))
}

func postgresBuilder() *Builder {
	return NewBuilder(sq.StatementBuilder.PlaceholderFormat(sq.Dollar))
}

func TestInsertTodo(t *testing.T) {
	todo := domain.NewTodo("buy milk", domain.None[bool](), uuid.New())

	stmt, err := sqliteBuilder().InsertTodo(todo)

	require.NoError(t, err)
	assert.Equal(t, "INSERT INTO Todo (Id,Task,Completed,UserId) VALUES (?,?,?,?)", stmt.SQL)
	assert.Equal(t, []any{todo.ID.String(), "buy milk", nil, todo.UserID.String()}, stmt.Args)
}

func TestInsertTodo_Completed(t *testing.T) {
	todo := domain.NewTodo("buy milk", domain.Some(false), uuid.New())

	stmt, err := postgresBuilder().InsertTodo(todo)

	require.NoError(t, err)
	assert.Equal(t, "INSERT INTO Todo (Id,Task,Completed,UserId) VALUES ($1,$2,$3,$4)", stmt.SQL)
	assert.Equal(t, false, stmt.Args[2])
}

func TestUpdateTodo(t *testing.T) {
	id := uuid.New()

	cases := []struct {
		name  string
		patch domain.TodoPatch
		sql   string
		args  []any
	}{
		{
			name:  "task and completed",
			patch: domain.TodoPatch{ID: id, Task: domain.Some("buy bread"), Completed: domain.Some(true)},
			sql:   "UPDATE Todo SET Task = ?, Completed = ? WHERE Id = ?",
			args:  []any{"buy bread", true, id.String()},
		},
		{
			name:  "task only",
			patch: domain.TodoPatch{ID: id, Task: domain.Some("buy bread")},
			sql:   "UPDATE Todo SET Task = ? WHERE Id = ?",
			args:  []any{"buy bread", id.String()},
		},
		{
			name:  "completed only",
			patch: domain.TodoPatch{ID: id, Completed: domain.Some(false)},
			sql:   "UPDATE Todo SET Completed = ? WHERE Id = ?",
			args:  []any{false, id.String()},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			stmt, err := sqliteBuilder().UpdateTodo(tc.patch)

			require.NoError(t, err)
			assert.Equal(t, tc.sql, stmt.SQL)
			assert.Equal(t, tc.args, stmt.Args)
		})
	}
}

func TestUpdateTodo_Empty(t *testing.T) {
	stmt, err := sqliteBuilder().UpdateTodo(domain.TodoPatch{ID: uuid.New()})

	assert.ErrorIs(t, err, domain.ErrEmptyUpdate)
	assert.Empty(t, stmt.SQL)
}

func TestSoftDeleteTodo(t *testing.T) {
	id := uuid.New()

	stmt, err := postgresBuilder().SoftDeleteTodo(id)

	require.NoError(t, err)
	assert.Equal(t, "UPDATE Todo SET IsDeleted = $1 WHERE Id = $2", stmt.SQL)
	assert.Equal(t, []any{true, id.String()}, stmt.Args)
}

func TestSelectTodos(t *testing.T) {
	id := uuid.New()
	b := sqliteBuilder()

	all, _ := b.SelectTodos()
	assert.Equal(t, "SELECT Id, Task, Completed, UserId, IsDeleted FROM Todo WHERE IsDeleted = ?", all.SQL)
	assert.Equal(t, []any{false}, all.Args)

	byUser, _ := b.SelectTodosByUser(id)
	assert.Equal(t, "SELECT Id, Task, Completed, UserId, IsDeleted FROM Todo WHERE UserId = ? AND IsDeleted = ?", byUser.SQL)
	assert.Equal(t, []any{id.String(), false}, byUser.Args)

	byID, _ := b.SelectTodoByID(id)
	assert.Equal(t, "SELECT Id, Task, Completed, UserId, IsDeleted FROM Todo WHERE Id = ? AND IsDeleted = ?", byID.SQL)
	assert.Equal(t, []any{id.String(), false}, byID.Args)
}

func TestSelectUser(t *testing.T) {
	id := uuid.New()
	b := postgresBuilder()

	byID, err := b.SelectUserByID(id)
	require.NoError(t, err)
	assert.Equal(t, `SELECT Id, FirstName, LastName, Email FROM "User" WHERE Id = $1`, byID.SQL)
	assert.Equal(t, []any{id.String()}, byID.Args)

	byEmail, err := b.SelectUserByEmail("ada@example.com")
	require.NoError(t, err)
	assert.Equal(t, `SELECT Id, FirstName, LastName, Email, Password FROM "User" WHERE Email = $1`, byEmail.SQL)
	assert.NotContains(t, byID.SQL, "Password")
}

func TestInsertUser(t *testing.T) {
	user := domain.User{ID: uuid.New(), FirstName: "Ada", LastName: "Lovelace", Email: "ada@example.com", Password: "hash"}

	stmt, err := sqliteBuilder().InsertUser(user)

	require.NoError(t, err)
	assert.Equal(t, `INSERT INTO "User" (Id,FirstName,LastName,Email,Password) VALUES (?,?,?,?,?)`, stmt.SQL)
	assert.Len(t, stmt.Args, 5)
}
