package service

import (
	"context"

	"go.opentelemetry.io/otel/attribute"

	"todoapi/internal/core/domain"
	"todoapi/internal/core/port"
	tel "todoapi/internal/core/telemetry"
	"todoapi/internal/core/validation"
)

type UserService struct {
	repo      port.UserRepository
	telemetry port.Telemetry
}

func NewUserService(repo port.UserRepository, telemetry port.Telemetry) *UserService {
	if telemetry == nil {
		telemetry = tel.NewNoOpProbe()
	}

	return &UserService{repo: repo, telemetry: telemetry}
}

func (us *UserService) GetByID(ctx context.Context, rawID string) (user domain.User, err error) {
	ctx, op := tel.StartServiceOperation(ctx, us.telemetry, "user", "get_by_id", attribute.String("user.id", rawID))
	defer func() { op.End(err) }()

	id, err := validation.ParseID(rawID, domain.ErrInvalidID)
	if err != nil {
		return domain.User{}, err
	}

	return us.repo.GetByID(ctx, id)
}
