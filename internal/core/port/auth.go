package port

import (
	"context"

	"todoapi/internal/core/model/request"
)

// IdentityProvider exchanges user credentials for a bearer token.
type IdentityProvider interface {
	AcquireToken(ctx context.Context, email, password string) (string, error)
}

type AuthService interface {
	Login(ctx context.Context, req request.LoginRequest) (string, error)
}
