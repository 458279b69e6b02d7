package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/reliefworks/donation-system/internal/core/domain"
)

// resolveQuery searches all three role namespaces in one round-trip. Namespace
// order is fixed (admins, pledgers, nonprofits): if malformed data carries the
// same username in more than one table, the first row in that order wins.
const resolveQuery = `
SELECT id, username, password_hash, 'Admin' AS role FROM admins WHERE username = $1
UNION ALL
SELECT id, username, password_hash, 'Pledger' FROM pledgers WHERE username = $1
UNION ALL
SELECT id, username, password_hash, 'NonProfit' FROM nonprofits WHERE username = $1
LIMIT 1`

// AccountRepository implements ports.AccountRepository on the shared pool.
type AccountRepository struct {
	store *Store
}

func NewAccountRepository(store *Store) *AccountRepository {
	return &AccountRepository{store: store}
}

func (r *AccountRepository) Resolve(ctx context.Context, username string) (*domain.Account, error) {
	var (
		account domain.Account
		role    string
	)
	err := r.store.pool.QueryRow(ctx, resolveQuery, username).
		Scan(&account.ID, &account.Username, &account.PasswordDigest, &role)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrAccountNotFound
		}
		return nil, fmt.Errorf("resolve %q: %w", username, err)
	}
	account.Role = domain.Role(role)
	return &account, nil
}
