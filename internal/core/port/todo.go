package port

import (
	"context"

	"todoapi/internal/core/domain"
	"todoapi/internal/core/model/request"

	"github.com/google/uuid"
)

// TodoRepository reads never return soft-deleted rows. Writes report the
// number of affected rows.
type TodoRepository interface {
	Create(ctx context.Context, todo domain.Todo) (int64, error)
	Update(ctx context.Context, patch domain.TodoPatch) (int64, error)
	SoftDelete(ctx context.Context, id uuid.UUID) (int64, error)
	GetAll(ctx context.Context) ([]domain.Todo, error)
	GetByUser(ctx context.Context, userID uuid.UUID) ([]domain.Todo, error)
	GetByID(ctx context.Context, id uuid.UUID) (domain.Todo, error)
}

type TodoService interface {
	Create(ctx context.Context, req request.CreateTodoRequest) (domain.Todo, error)
	Update(ctx context.Context, req request.UpdateTodoRequest) error
	Delete(ctx context.Context, rawID string) error
	GetAll(ctx context.Context) ([]domain.Todo, error)
	GetByUser(ctx context.Context, rawUserID string) ([]domain.Todo, error)
	GetByID(ctx context.Context, rawID string) (domain.Todo, error)
}
