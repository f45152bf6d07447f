package request

import "todoapi/internal/core/domain"

type CreateTodoRequest struct {
	Task      string                `json:"task" validate:"notblank"`
	Completed domain.Optional[bool] `json:"completed"`
	UserID    string                `json:"userId" validate:"identifier_set"`
}

// UpdateTodoRequest sets only the fields present in the body.
type UpdateTodoRequest struct {
	ID        string                  `json:"id" validate:"identifier_set"`
	Task      domain.Optional[string] `json:"task"`
	Completed domain.Optional[bool]   `json:"completed"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"notblank"`
	Password string `json:"password" validate:"notblank"`
}
