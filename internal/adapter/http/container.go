package http

import (
	"errors"

	"todoapi/internal/adapter/database"
	"todoapi/internal/adapter/database/repository"
	"todoapi/internal/adapter/http/handler"
	"todoapi/internal/adapter/identity"
	"todoapi/internal/core/port"
	"todoapi/internal/core/service"
	"todoapi/internal/core/telemetry"
	"todoapi/internal/shared"
)

var ErrMissingJWTSecret = errors.New("jwt secret is required when no identity client id is configured")

type Container struct {
	UserRepo port.UserRepository
	TodoRepo port.TodoRepository

	UserService port.UserService
	TodoService port.TodoService
	AuthService port.AuthService

	UserHandler   *handler.UserHandler
	TodoHandler   *handler.TodoHandler
	AuthHandler   *handler.AuthHandler
	HealthHandler *handler.HealthHandler
}

// NewContainer wires repositories, services and handlers over db. A nil
// probe disables tracing and operation metrics.
func NewContainer(db *database.DB, config *shared.AppConfig, logger *shared.Logger, probe port.Telemetry) (*Container, error) {
	if probe == nil {
		probe = telemetry.NewNoOpProbe()
	}

	userRepo := repository.NewUserRepository(db, probe)
	todoRepo := repository.NewTodoRepository(db, probe)

	provider, err := NewIdentityProvider(config.Identity, userRepo)
	if err != nil {
		return nil, err
	}

	authSvc := service.NewAuthService(provider, probe, logger.Logger)
	userSvc := service.NewUserService(userRepo, probe)
	todoSvc := service.NewTodoService(todoRepo, probe)

	return &Container{
		UserRepo: userRepo,
		TodoRepo: todoRepo,

		UserService: userSvc,
		TodoService: todoSvc,
		AuthService: authSvc,

		UserHandler:   handler.NewUserHandler(userSvc, logger),
		TodoHandler:   handler.NewTodoHandler(todoSvc, logger),
		AuthHandler:   handler.NewAuthHandler(authSvc, logger),
		HealthHandler: handler.NewHealthHandler(db, logger),
	}, nil
}

// NewIdentityProvider uses the external password grant when a client id is
// configured and local credential checks otherwise.
func NewIdentityProvider(config shared.IdentityConfig, users port.UserRepository) (port.IdentityProvider, error) {
	if config.External() {
		return identity.NewPasswordGrantProvider(identity.PasswordGrantConfig{
			ClientID: config.ClientID,
			TenantID: config.TenantID,
			Scopes:   config.Scopes,
			TokenURL: config.TokenURL,
		}), nil
	}

	if config.JWTSecret == "" {
		return nil, ErrMissingJWTSecret
	}

	return identity.NewLocalProvider(users, &identity.JWT{
		Secret: config.JWTSecret,
		TTL:    config.TokenTTL,
		Issuer: "todoapi",
	}), nil
}
