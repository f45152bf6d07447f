package domain

import "errors"

// ValidationError is a request-shape failure. It is reported to the caller
// as-is and always precedes any store access.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

var (
	ErrTaskRequired        = NewValidationError("task", "task required")
	ErrInvalidUserID       = NewValidationError("userId", "valid user id required")
	ErrInvalidTodoID       = NewValidationError("id", "valid todo id required")
	ErrInvalidID           = NewValidationError("id", "valid id required")
	ErrCredentialsRequired = NewValidationError("credentials", "email and password required")
	ErrEmptyUpdate         = NewValidationError("todo", "task or completed required")
)

var (
	// ErrNotFound means a single-record lookup matched nothing.
	ErrNotFound = errors.New("record not found")

	// ErrNoRowsAffected means a write matched no stored record, or was a no-op.
	ErrNoRowsAffected = errors.New("no rows affected")

	ErrAuthenticationFailed = errors.New("authentication failed")
)

func IsValidationError(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

func AsValidationError(err error) (*ValidationError, bool) {
	var validationErr *ValidationError

	if errors.As(err, &validationErr) {
		return validationErr, true
	}

	return nil, false
}
