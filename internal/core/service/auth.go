package service

import (
	"context"

	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.uber.org/zap"

	"todoapi/internal/core/domain"
	"todoapi/internal/core/model/request"
	"todoapi/internal/core/port"
	tel "todoapi/internal/core/telemetry"
	"todoapi/internal/core/validation"
)

type AuthService struct {
	provider  port.IdentityProvider
	telemetry port.Telemetry
	logger    *otelzap.Logger
}

func NewAuthService(provider port.IdentityProvider, telemetry port.Telemetry, logger *otelzap.Logger) *AuthService {
	if telemetry == nil {
		telemetry = tel.NewNoOpProbe()
	}

	if logger == nil {
		logger = otelzap.New(zap.NewNop())
	}

	return &AuthService{provider: provider, telemetry: telemetry, logger: logger}
}

// Login exchanges credentials for a token. Provider failures are logged and
// reported as domain.ErrAuthenticationFailed without their detail.
func (as *AuthService) Login(ctx context.Context, req request.LoginRequest) (token string, err error) {
	ctx, op := tel.StartServiceOperation(ctx, as.telemetry, "auth", "login")
	defer func() { op.End(err) }()

	if err := validation.Struct(req); err != nil {
		return "", err
	}

	token, err = as.provider.AcquireToken(ctx, req.Email, req.Password)
	if err != nil {
		as.logger.Ctx(ctx).Warn("token acquisition failed", zap.Error(err))
		return "", domain.ErrAuthenticationFailed
	}

	return token, nil
}
