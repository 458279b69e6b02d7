package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/reliefworks/donation-system/internal/core/domain"
	"github.com/reliefworks/donation-system/internal/core/ports"
)

// AuthService is the unified policy evaluator. Every handler consults it
// before touching data; it answers exactly one question — who is this,
// truthfully, and are they asking about themselves. Per-operation
// authorization stays with each handler's Policy.
type AuthService struct {
	accounts ports.AccountRepository
	hasher   ports.PasswordHasher
	log      zerolog.Logger
}

func NewAuthService(accounts ports.AccountRepository, hasher ports.PasswordHasher, log zerolog.Logger) *AuthService {
	return &AuthService{accounts: accounts, hasher: hasher, log: log}
}

// Authenticate resolves the username across all role namespaces, verifies the
// supplied password against the stored digest, and computes self-ownership
// against the optional target identity.
//
// Failure kinds are distinct: an unknown username or a bad password comes
// back as a domain.Denial; a failed store round-trip comes back as a
// *domain.StoreError and must never be presented as a denial.
func (s *AuthService) Authenticate(ctx context.Context, creds domain.Credentials, targetID *int64) (domain.AuthDecision, error) {
	account, err := s.accounts.Resolve(ctx, creds.Username)
	if err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			s.log.Debug().Str("username", creds.Username).Msg("unknown username")
			return domain.AuthDecision{}, domain.Denial{Reason: domain.ReasonUsernameNotFound}
		}
		return domain.AuthDecision{}, &domain.StoreError{Op: "resolve account", Err: err}
	}

	// The stored role is authoritative; nothing in the request can claim a
	// different one.
	if !s.hasher.Verify(creds.Password, account.PasswordDigest) {
		s.log.Debug().Str("username", creds.Username).Msg("password mismatch")
		return domain.AuthDecision{}, domain.Denial{Reason: domain.ReasonIncorrectPassword}
	}

	isSelf := targetID != nil && account.ID == *targetID

	return domain.AuthDecision{Role: account.Role, ID: account.ID, IsSelf: isSelf}, nil
}
