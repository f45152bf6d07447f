package database

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"todoapi/internal/core/domain"
)

// ErrRowMapping marks a row whose shape does not match the entity. It is a
// server fault, never a validation failure.
var ErrRowMapping = errors.New("row mapping failed")

// Scanner maps result rows to entities by column name.
type Scanner struct{}

func NewScanner() *Scanner {
	return &Scanner{}
}

// Row is the current result row keyed by lower-cased column name.
type Row map[string]any

func (s *Scanner) ReadRow(rows *sql.Rows) (Row, error) {
	columns, err := rows.Columns()
	if err != nil {
		return nil, err
	}

	scanArgs := make([]any, len(columns))
	for i := range scanArgs {
		scanArgs[i] = new(any)
	}

	if err := rows.Scan(scanArgs...); err != nil {
		return nil, err
	}

	row := make(Row, len(columns))

	for i, column := range columns {
		row[strings.ToLower(column)] = *(scanArgs[i].(*any))
	}

	return row, nil
}

func (s *Scanner) ScanTodo(rows *sql.Rows) (domain.Todo, error) {
	row, err := s.ReadRow(rows)
	if err != nil {
		return domain.Todo{}, err
	}

	var todo domain.Todo

	if todo.ID, err = row.UUID("Id"); err != nil {
		return domain.Todo{}, err
	}

	if todo.Task, err = row.String("Task"); err != nil {
		return domain.Todo{}, err
	}

	if todo.Completed, err = row.OptionalBool("Completed"); err != nil {
		return domain.Todo{}, err
	}

	if todo.UserID, err = row.UUID("UserId"); err != nil {
		return domain.Todo{}, err
	}

	if todo.IsDeleted, err = row.Bool("IsDeleted"); err != nil {
		return domain.Todo{}, err
	}

	return todo, nil
}

// ScanTodos drains rows.
func (s *Scanner) ScanTodos(rows *sql.Rows) ([]domain.Todo, error) {
	todos := []domain.Todo{}

	for rows.Next() {
		todo, err := s.ScanTodo(rows)
		if err != nil {
			return nil, err
		}

		todos = append(todos, todo)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return todos, nil
}

// ScanUser reads Password only when the statement selected it.
func (s *Scanner) ScanUser(rows *sql.Rows) (domain.User, error) {
	row, err := s.ReadRow(rows)
	if err != nil {
		return domain.User{}, err
	}

	var user domain.User

	if user.ID, err = row.UUID("Id"); err != nil {
		return domain.User{}, err
	}

	if user.FirstName, err = row.String("FirstName"); err != nil {
		return domain.User{}, err
	}

	if user.LastName, err = row.String("LastName"); err != nil {
		return domain.User{}, err
	}

	if user.Email, err = row.String("Email"); err != nil {
		return domain.User{}, err
	}

	if row.Has("Password") {
		if user.Password, err = row.String("Password"); err != nil {
			return domain.User{}, err
		}
	}

	return user, nil
}

func (r Row) Has(column string) bool {
	_, ok := r[strings.ToLower(column)]
	return ok
}

func (r Row) value(column string) (any, error) {
	v, ok := r[strings.ToLower(column)]
	if !ok {
		return nil, fmt.Errorf("%w: missing column %s", ErrRowMapping, column)
	}

	return v, nil
}

func (r Row) String(column string) (string, error) {
	v, err := r.value(column)
	if err != nil {
		return "", err
	}

	switch val := v.(type) {
	case string:
		return val, nil
	case []byte:
		return string(val), nil
	case nil:
		return "", fmt.Errorf("%w: column %s is null", ErrRowMapping, column)
	}

	return "", fmt.Errorf("%w: column %s has type %T, want text", ErrRowMapping, column, v)
}

func (r Row) UUID(column string) (uuid.UUID, error) {
	v, err := r.value(column)
	if err != nil {
		return uuid.Nil, err
	}

	var id uuid.UUID

	switch val := v.(type) {
	case string:
		id, err = uuid.Parse(val)
	case []byte:
		if len(val) == 16 {
			id, err = uuid.FromBytes(val)
		} else {
			id, err = uuid.ParseBytes(val)
		}
	case [16]byte:
		id = uuid.UUID(val)
	case nil:
		return uuid.Nil, fmt.Errorf("%w: column %s is null", ErrRowMapping, column)
	default:
		return uuid.Nil, fmt.Errorf("%w: column %s has type %T, want identifier", ErrRowMapping, column, v)
	}

	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: column %s: %v", ErrRowMapping, column, err)
	}

	return id, nil
}

func (r Row) Bool(column string) (bool, error) {
	v, err := r.value(column)
	if err != nil {
		return false, err
	}

	if v == nil {
		return false, fmt.Errorf("%w: column %s is null", ErrRowMapping, column)
	}

	return toBool(column, v)
}

// OptionalBool maps NULL to an unset value.
func (r Row) OptionalBool(column string) (domain.Optional[bool], error) {
	v, err := r.value(column)
	if err != nil {
		return domain.None[bool](), err
	}

	if v == nil {
		return domain.None[bool](), nil
	}

	b, err := toBool(column, v)
	if err != nil {
		return domain.None[bool](), err
	}

	return domain.Some(b), nil
}

func toBool(column string, v any) (bool, error) {
	switch val := v.(type) {
	case bool:
		return val, nil
	case int64:
		if val == 0 || val == 1 {
			return val == 1, nil
		}
	}

	return false, fmt.Errorf("%w: column %s has value %v (%T), want boolean", ErrRowMapping, column, v, v)
}
