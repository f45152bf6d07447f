package service_test

import (
	"context"

	"github.com/google/uuid"

	"todoapi/internal/core/domain"
	"todoapi/internal/core/port"
)

// spyTodoRepository counts store calls and delegates to an optional inner
// repository.
type spyTodoRepository struct {
	inner    port.TodoRepository
	calls    int
	affected int64
	err      error
}

func (r *spyTodoRepository) Create(ctx context.Context, todo domain.Todo) (int64, error) {
	r.calls++
	if r.inner != nil {
		return r.inner.Create(ctx, todo)
	}
	return r.affected, r.err
}

func (r *spyTodoRepository) Update(ctx context.Context, patch domain.TodoPatch) (int64, error) {
	r.calls++
	if r.inner != nil {
		return r.inner.Update(ctx, patch)
	}
	return r.affected, r.err
}

func (r *spyTodoRepository) SoftDelete(ctx context.Context, id uuid.UUID) (int64, error) {
	r.calls++
	if r.inner != nil {
		return r.inner.SoftDelete(ctx, id)
	}
	return r.affected, r.err
}

func (r *spyTodoRepository) GetAll(ctx context.Context) ([]domain.Todo, error) {
	r.calls++
	if r.inner != nil {
		return r.inner.GetAll(ctx)
	}
	return nil, r.err
}

func (r *spyTodoRepository) GetByUser(ctx context.Context, userID uuid.UUID) ([]domain.Todo, error) {
	r.calls++
	if r.inner != nil {
		return r.inner.GetByUser(ctx, userID)
	}
	return nil, r.err
}

func (r *spyTodoRepository) GetByID(ctx context.Context, id uuid.UUID) (domain.Todo, error) {
	r.calls++
	if r.inner != nil {
		return r.inner.GetByID(ctx, id)
	}
	return domain.Todo{}, r.err
}

type spyIdentityProvider struct {
	calls int
	token string
	err   error
}

func (p *spyIdentityProvider) AcquireToken(ctx context.Context, email, password string) (string, error) {
	p.calls++
	return p.token, p.err
}
