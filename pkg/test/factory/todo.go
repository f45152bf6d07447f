package factory

import (
	"github.com/google/uuid"

	"todoapi/internal/core/domain"
)

type TodoOption func(*domain.Todo)

func WithTask(task string) TodoOption {
	return func(t *domain.Todo) { t.Task = task }
}

func WithCompleted(completed bool) TodoOption {
	return func(t *domain.Todo) { t.Completed = domain.Some(completed) }
}

// NewTodo builds a todo owned by userID with an unset Completed.
func NewTodo(userID uuid.UUID, opts ...TodoOption) domain.Todo {
	todo := domain.NewTodo("todo "+uuid.NewString()[:8], domain.None[bool](), userID)

	for _, opt := range opts {
		opt(&todo)
	}

	return todo
}
