package service

import (
	"context"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"

	"todoapi/internal/core/domain"
	"todoapi/internal/core/model/request"
	"todoapi/internal/core/port"
	tel "todoapi/internal/core/telemetry"
	"todoapi/internal/core/validation"
)

const todoService = "todo"

type TodoService struct {
	repo      port.TodoRepository
	telemetry port.Telemetry
}

func NewTodoService(repo port.TodoRepository, telemetry port.Telemetry) *TodoService {
	if telemetry == nil {
		telemetry = tel.NewNoOpProbe()
	}

	return &TodoService{repo: repo, telemetry: telemetry}
}

// Create stores a new todo and returns it with the identifier that was
// persisted.
func (ts *TodoService) Create(ctx context.Context, req request.CreateTodoRequest) (todo domain.Todo, err error) {
	ctx, op := tel.StartServiceOperation(ctx, ts.telemetry, todoService, "create")
	defer func() { op.End(err) }()

	if err := validation.Struct(req); err != nil {
		return domain.Todo{}, err
	}

	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		return domain.Todo{}, domain.ErrInvalidUserID
	}

	todo = domain.NewTodo(req.Task, req.Completed, userID)

	affected, err := ts.repo.Create(ctx, todo)
	if err != nil {
		return domain.Todo{}, err
	}

	if affected == 0 {
		return domain.Todo{}, domain.ErrNoRowsAffected
	}

	ts.telemetry.RecordBusinessEvent(ctx, "todo.created", todoService, todo.ID.String())

	return todo, nil
}

// Update writes only the fields present in the request.
func (ts *TodoService) Update(ctx context.Context, req request.UpdateTodoRequest) (err error) {
	ctx, op := tel.StartServiceOperation(ctx, ts.telemetry, todoService, "update")
	defer func() { op.End(err) }()

	if err := validation.Struct(req); err != nil {
		return err
	}

	id, err := uuid.Parse(req.ID)
	if err != nil {
		return domain.ErrInvalidTodoID
	}

	patch := domain.TodoPatch{ID: id, Task: req.Task, Completed: req.Completed}

	if patch.IsEmpty() {
		return domain.ErrEmptyUpdate
	}

	affected, err := ts.repo.Update(ctx, patch)
	if err != nil {
		return err
	}

	if affected == 0 {
		return domain.ErrNoRowsAffected
	}

	return nil
}

// Delete soft-deletes a todo. A malformed identifier is reported like a
// missing row and never reaches the store.
func (ts *TodoService) Delete(ctx context.Context, rawID string) (err error) {
	ctx, op := tel.StartServiceOperation(ctx, ts.telemetry, todoService, "delete", attribute.String("todo.id", rawID))
	defer func() { op.End(err) }()

	id, err := validation.ParseID(rawID, domain.ErrInvalidID)
	if err != nil {
		return domain.ErrNoRowsAffected
	}

	affected, err := ts.repo.SoftDelete(ctx, id)
	if err != nil {
		return err
	}

	if affected == 0 {
		return domain.ErrNoRowsAffected
	}

	ts.telemetry.RecordBusinessEvent(ctx, "todo.deleted", todoService, id.String())

	return nil
}

func (ts *TodoService) GetAll(ctx context.Context) (todos []domain.Todo, err error) {
	ctx, op := tel.StartServiceOperation(ctx, ts.telemetry, todoService, "get_all")
	defer func() { op.End(err) }()

	return ts.repo.GetAll(ctx)
}

func (ts *TodoService) GetByUser(ctx context.Context, rawUserID string) (todos []domain.Todo, err error) {
	ctx, op := tel.StartServiceOperation(ctx, ts.telemetry, todoService, "get_by_user", attribute.String("user.id", rawUserID))
	defer func() { op.End(err) }()

	userID, err := validation.ParseID(rawUserID, domain.ErrInvalidUserID)
	if err != nil {
		return nil, err
	}

	return ts.repo.GetByUser(ctx, userID)
}

func (ts *TodoService) GetByID(ctx context.Context, rawID string) (todo domain.Todo, err error) {
	ctx, op := tel.StartServiceOperation(ctx, ts.telemetry, todoService, "get_by_id", attribute.String("todo.id", rawID))
	defer func() { op.End(err) }()

	id, err := validation.ParseID(rawID, domain.ErrInvalidID)
	if err != nil {
		return domain.Todo{}, err
	}

	return ts.repo.GetByID(ctx, id)
}
