package factory

import (
	fab "github.com/Goldziher/fabricator"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// DefaultPassword is the plaintext behind every generated user's hash.
const DefaultPassword = "12345678"

// NewUser builds a T with fake data, a fresh ID and a bcrypt hash of
// DefaultPassword unless the overrides say otherwise.
func NewUser[T any](customData ...map[string]any) T {
	instance := fab.New(*new(T))

	defaults := map[string]any{
		"ID": uuid.New(),
	}

	hasPassword := false

	for _, data := range customData {
		if _, exists := data["Password"]; exists {
			hasPassword = true
			break
		}
	}

	if !hasPassword {
		hashed, _ := bcrypt.GenerateFromPassword([]byte(DefaultPassword), bcrypt.MinCost)
		defaults["Password"] = string(hashed)
	}

	return instance.Build(append([]map[string]any{defaults}, customData...)...)
}
