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

type TodoRepository struct {
	base
	telemetry port.Telemetry
}

func NewTodoRepository(db *database.DB, telemetry port.Telemetry) port.TodoRepository {
	if telemetry == nil {
		telemetry = tel.NewNoOpProbe()
	}

	return &TodoRepository{
		base:      newBase(db),
		telemetry: telemetry,
	}
}

func (tr *TodoRepository) attrs(extra ...attribute.KeyValue) []attribute.KeyValue {
	return append([]attribute.KeyValue{
		attribute.String("db.system", string(tr.db.Dialect)),
		attribute.String("db.table", query.TodoTable),
	}, extra...)
}

func (tr *TodoRepository) Create(ctx context.Context, todo domain.Todo) (affected int64, err error) {
	ctx, op := tel.StartRepositoryOperation(ctx, tr.telemetry, "insert", query.TodoTable, tr.attrs(attribute.String("todo.id", todo.ID.String()))...)
	defer func() { op.End(err) }()

	stmt, err := tr.queries.InsertTodo(todo)
	if err != nil {
		return 0, err
	}

	affected, err = tr.exec(ctx, stmt)
	if err != nil {
		return 0, fmt.Errorf("insert todo: %w", err)
	}

	return affected, nil
}

func (tr *TodoRepository) Update(ctx context.Context, patch domain.TodoPatch) (affected int64, err error) {
	ctx, op := tel.StartRepositoryOperation(ctx, tr.telemetry, "update", query.TodoTable, tr.attrs(attribute.String("todo.id", patch.ID.String()))...)
	defer func() { op.End(err) }()

	stmt, err := tr.queries.UpdateTodo(patch)
	if err != nil {
		return 0, err
	}

	affected, err = tr.exec(ctx, stmt)
	if err != nil {
		return 0, fmt.Errorf("update todo: %w", err)
	}

	return affected, nil
}

// SoftDelete flags the row; it stays in the table.
func (tr *TodoRepository) SoftDelete(ctx context.Context, id uuid.UUID) (affected int64, err error) {
	ctx, op := tel.StartRepositoryOperation(ctx, tr.telemetry, "soft_delete", query.TodoTable, tr.attrs(attribute.String("todo.id", id.String()))...)
	defer func() { op.End(err) }()

	stmt, err := tr.queries.SoftDeleteTodo(id)
	if err != nil {
		return 0, err
	}

	affected, err = tr.exec(ctx, stmt)
	if err != nil {
		return 0, fmt.Errorf("delete todo: %w", err)
	}

	return affected, nil
}

func (tr *TodoRepository) GetAll(ctx context.Context) (todos []domain.Todo, err error) {
	ctx, op := tel.StartRepositoryOperation(ctx, tr.telemetry, "select_all", query.TodoTable, tr.attrs()...)
	defer func() { op.End(err) }()

	stmt, err := tr.queries.SelectTodos()
	if err != nil {
		return nil, err
	}

	return tr.selectTodos(ctx, stmt)
}

func (tr *TodoRepository) GetByUser(ctx context.Context, userID uuid.UUID) (todos []domain.Todo, err error) {
	ctx, op := tel.StartRepositoryOperation(ctx, tr.telemetry, "select_by_user", query.TodoTable, tr.attrs(attribute.String("user.id", userID.String()))...)
	defer func() { op.End(err) }()

	stmt, err := tr.queries.SelectTodosByUser(userID)
	if err != nil {
		return nil, err
	}

	return tr.selectTodos(ctx, stmt)
}

func (tr *TodoRepository) GetByID(ctx context.Context, id uuid.UUID) (todo domain.Todo, err error) {
	ctx, op := tel.StartRepositoryOperation(ctx, tr.telemetry, "select_by_id", query.TodoTable, tr.attrs(attribute.String("todo.id", id.String()))...)
	defer func() { op.End(err) }()

	stmt, err := tr.queries.SelectTodoByID(id)
	if err != nil {
		return domain.Todo{}, err
	}

	todos, err := tr.selectTodos(ctx, stmt)
	if err != nil {
		return domain.Todo{}, err
	}

	if len(todos) == 0 {
		return domain.Todo{}, domain.ErrNotFound
	}

	return todos[0], nil
}

func (tr *TodoRepository) selectTodos(ctx context.Context, stmt query.Statement) ([]domain.Todo, error) {
	var todos []domain.Todo

	err := tr.queryRows(ctx, stmt, func(rows *sql.Rows) error {
		var err error
		todos, err = tr.db.Scanner.ScanTodos(rows)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("select todos: %w", err)
	}

	return todos, nil
}
