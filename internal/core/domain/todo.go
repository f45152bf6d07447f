package domain

import "github.com/google/uuid"

type Todo struct {
	ID        uuid.UUID
	Task      string
	Completed Optional[bool]
	UserID    uuid.UUID
	IsDeleted bool
}

// NewTodo assigns a fresh identifier. The same identifier is persisted and
// handed back to the caller.
func NewTodo(task string, completed Optional[bool], userID uuid.UUID) Todo {
	return Todo{
		ID:        uuid.New(),
		Task:      task,
		Completed: completed,
		UserID:    userID,
		IsDeleted: false,
	}
}

// TodoPatch carries the fields an update may touch. Unset fields are left
// alone in the store.
type TodoPatch struct {
	ID        uuid.UUID
	Task      Optional[string]
	Completed Optional[bool]
}

func (p TodoPatch) IsEmpty() bool {
	return !p.Task.IsSet() && !p.Completed.IsSet()
}
