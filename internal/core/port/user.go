package port

import (
	"context"

	"todoapi/internal/core/domain"

	"github.com/google/uuid"
)

type UserRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (domain.User, error)
	GetByEmail(ctx context.Context, email string) (domain.User, error)
}

type UserService interface {
	GetByID(ctx context.Context, rawID string) (domain.User, error)
}
