package ports

import (
	"context"

	"github.com/reliefworks/donation-system/internal/core/domain"
)

// AccountRepository resolves a username across the three role namespaces.
type AccountRepository interface {
	// Resolve returns the account whose username matches, searching admins,
	// pledgers and non-profits. Returns domain.ErrAccountNotFound when the
	// username is absent from all three tables; any other error is a store
	// failure.
	Resolve(ctx context.Context, username string) (*domain.Account, error)
}

// PasswordHasher is the hash capability consumed by the evaluator and the
// provisioning services.
type PasswordHasher interface {
	Hash(plaintext string) (string, error)
	Verify(plaintext, digest string) bool
}

// AuthService is the policy evaluator every handler consults before touching
// data. targetID is the identity embedded in the request path, nil on
// collection-level endpoints.
type AuthService interface {
	Authenticate(ctx context.Context, creds domain.Credentials, targetID *int64) (domain.AuthDecision, error)
}
