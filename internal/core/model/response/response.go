package response

import (
	"todoapi/internal/core/domain"
)

type UserResponse struct {
	ID        string `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
}

type TodoResponse struct {
	ID        string                `json:"id"`
	Task      string                `json:"task"`
	Completed domain.Optional[bool] `json:"completed"`
	UserID    string                `json:"userId"`
	IsDeleted bool                  `json:"isDeleted"`
}

type TokenResponse struct {
	Token string `json:"token"`
}

type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type ResponseError struct {
	Code    string            `json:"code"`
	Errors  []ValidationError `json:"errors"`
	Details any               `json:"details,omitempty"`
}

type SuccessResponse struct {
	Data    any    `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
}

type ErrorResponse struct {
	Error ResponseError `json:"error"`
}

func NewTodoResponse(todo domain.Todo) TodoResponse {
	return TodoResponse{
		ID:        todo.ID.String(),
		Task:      todo.Task,
		Completed: todo.Completed,
		UserID:    todo.UserID.String(),
		IsDeleted: todo.IsDeleted,
	}
}

func NewTodoListResponse(todos []domain.Todo) []TodoResponse {
	out := make([]TodoResponse, 0, len(todos))

	for _, todo := range todos {
		out = append(out, NewTodoResponse(todo))
	}

	return out
}

// NewUserResponse never carries the password.
func NewUserResponse(user domain.User) UserResponse {
	return UserResponse{
		ID:        user.ID.String(),
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Email:     user.Email,
	}
}
