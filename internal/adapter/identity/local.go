package identity

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"todoapi/internal/core/domain"
	"todoapi/internal/core/port"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

// LocalProvider checks credentials against the stored bcrypt hash and signs
// its own tokens.
type LocalProvider struct {
	users port.UserRepository
	jwt   *JWT
	now   func() time.Time
}

func NewLocalProvider(users port.UserRepository, jwt *JWT) *LocalProvider {
	return &LocalProvider{users: users, jwt: jwt, now: time.Now}
}

func (p *LocalProvider) AcquireToken(ctx context.Context, email, password string) (string, error) {
	user, err := p.users.GetByEmail(ctx, email)
	if errors.Is(err, domain.ErrNotFound) {
		return "", ErrInvalidCredentials
	}

	if err != nil {
		return "", fmt.Errorf("lookup user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}

	return p.jwt.CreateToken(user.ID, p.now())
}
