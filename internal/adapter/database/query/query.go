package query

import (
	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"todoapi/internal/core/domain"
)

const (
	TodoTable = "Todo"
	// UserTable is quoted since USER is reserved in PostgreSQL.
	UserTable = `"User"`
)

var (
	todoColumns = []string{"Id", "Task", "Completed", "UserId", "IsDeleted"}
	userColumns = []string{"Id", "FirstName", "LastName", "Email"}
)

// Statement is SQL text plus its bound arguments.
type Statement struct {
	SQL  string
	Args []any
}

type Builder struct {
	sb sq.StatementBuilderType
}

func NewBuilder(sb sq.StatementBuilderType) *Builder {
	return &Builder{sb: sb}
}

type sqlizer interface {
	ToSql() (string, []any, error)
}

func build(q sqlizer) (Statement, error) {
	text, args, err := q.ToSql()
	if err != nil {
		return Statement{}, err
	}

	return Statement{SQL: text, Args: args}, nil
}

// Identifiers are bound in their canonical text form; uuid.UUID is an
// array and squirrel would expand it into an IN list.
func idArg(id uuid.UUID) string {
	return id.String()
}

func (b *Builder) InsertTodo(todo domain.Todo) (Statement, error) {
	return build(b.sb.Insert(TodoTable).
		Columns("Id", "Task", "Completed", "UserId").
		Values(idArg(todo.ID), todo.Task, todo.Completed.OrNil(), idArg(todo.UserID)))
}

type assignment struct {
	column string
	value  any
}

// UpdateTodo sets only the patch fields that are present, Task before
// Completed. An empty patch yields domain.ErrEmptyUpdate and no statement.
func (b *Builder) UpdateTodo(patch domain.TodoPatch) (Statement, error) {
	var assignments []assignment

	if task, ok := patch.Task.Get(); ok {
		assignments = append(assignments, assignment{"Task", task})
	}

	if completed, ok := patch.Completed.Get(); ok {
		assignments = append(assignments, assignment{"Completed", completed})
	}

	if len(assignments) == 0 {
		return Statement{}, domain.ErrEmptyUpdate
	}

	update := b.sb.Update(TodoTable)

	for _, a := range assignments {
		update = update.Set(a.column, a.value)
	}

	return build(update.Where(sq.Eq{"Id": idArg(patch.ID)}))
}

func (b *Builder) SoftDeleteTodo(id uuid.UUID) (Statement, error) {
	return build(b.sb.Update(TodoTable).
		Set("IsDeleted", true).
		Where(sq.Eq{"Id": idArg(id)}))
}

func (b *Builder) selectTodos() sq.SelectBuilder {
	return b.sb.Select(todoColumns...).From(TodoTable)
}

func (b *Builder) SelectTodos() (Statement, error) {
	return build(b.selectTodos().
		Where(sq.Eq{"IsDeleted": false}))
}

func (b *Builder) SelectTodosByUser(userID uuid.UUID) (Statement, error) {
	return build(b.selectTodos().
		Where(sq.Eq{"UserId": idArg(userID)}).
		Where(sq.Eq{"IsDeleted": false}))
}

func (b *Builder) SelectTodoByID(id uuid.UUID) (Statement, error) {
	return build(b.selectTodos().
		Where(sq.Eq{"Id": idArg(id)}).
		Where(sq.Eq{"IsDeleted": false}))
}

func (b *Builder) SelectUserByID(id uuid.UUID) (Statement, error) {
	return build(b.sb.Select(userColumns...).
		From(UserTable).
		Where(sq.Eq{"Id": idArg(id)}))
}

func (b *Builder) SelectUserByEmail(email string) (Statement, error) {
	return build(b.sb.Select(append(userColumns, "Password")...).
		From(UserTable).
		Where(sq.Eq{"Email": email}))
}

func (b *Builder) InsertUser(user domain.User) (Statement, error) {
	return build(b.sb.Insert(UserTable).
		Columns(append(userColumns, "Password")...).
		Values(idArg(user.ID), user.FirstName, user.LastName, user.Email, user.Password))
}
