package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/reliefworks/donation-system/internal/core/domain"
	"github.com/reliefworks/donation-system/internal/core/ports"
)

// isUniqueViolation reports whether err is a unique-constraint failure
// (duplicate username).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation
}

// AdminRepository implements ports.AdminRepository.
type AdminRepository struct {
	store *Store
}

func NewAdminRepository(store *Store) *AdminRepository {
	return &AdminRepository{store: store}
}

func (r *AdminRepository) List(ctx context.Context) ([]domain.Admin, error) {
	rows, err := r.store.pool.Query(ctx, `SELECT id, username, name FROM admins ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list admins: %w", err)
	}
	defer rows.Close()

	var admins []domain.Admin
	for rows.Next() {
		var a domain.Admin
		if err := rows.Scan(&a.ID, &a.Username, &a.Name); err != nil {
			return nil, fmt.Errorf("scan admin: %w", err)
		}
		admins = append(admins, a)
	}
	return admins, rows.Err()
}

func (r *AdminRepository) Get(ctx context.Context, id int64) (*domain.Admin, error) {
	var a domain.Admin
	err := r.store.pool.QueryRow(ctx, `SELECT id, username, name FROM admins WHERE id = $1`, id).
		Scan(&a.ID, &a.Username, &a.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrAdminNotFound
		}
		return nil, fmt.Errorf("get admin: %w", err)
	}
	return &a, nil
}

func (r *AdminRepository) Create(ctx context.Context, username, passwordDigest, name string) (*domain.Admin, error) {
	var id int64
	err := r.store.pool.QueryRow(ctx,
		`INSERT INTO admins (username, password_hash, name) VALUES ($1, $2, $3) RETURNING id`,
		username, passwordDigest, name,
	).Scan(&id)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domain.ErrUsernameTaken
		}
		return nil, fmt.Errorf("insert admin: %w", err)
	}
	return &domain.Admin{ID: id, Username: username, Name: name}, nil
}

func (r *AdminRepository) Update(ctx context.Context, id int64, patch ports.AdminPatch) error {
	var set setClause
	if patch.Username != nil {
		set.add("username", *patch.Username)
	}
	if patch.PasswordDigest != nil {
		set.add("password_hash", *patch.PasswordDigest)
	}
	if patch.Name != nil {
		set.add("name", *patch.Name)
	}
	if set.empty() {
		return nil
	}

	query, args := set.build("admins", id)
	tag, err := r.store.pool.Exec(ctx, query, args...)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrUsernameTaken
		}
		return fmt.Errorf("update admin: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrAdminNotFound
	}
	return nil
}

func (r *AdminRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.store.pool.Exec(ctx, `DELETE FROM admins WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete admin: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrAdminNotFound
	}
	return nil
}

// PledgerRepository implements ports.PledgerRepository.
type PledgerRepository struct {
	store *Store
}

func NewPledgerRepository(store *Store) *PledgerRepository {
	return &PledgerRepository{store: store}
}

func (r *PledgerRepository) List(ctx context.Context) ([]domain.Pledger, error) {
	rows, err := r.store.pool.Query(ctx, `SELECT id, username, name, email FROM pledgers ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list pledgers: %w", err)
	}
	defer rows.Close()

	var pledgers []domain.Pledger
	for rows.Next() {
		var p domain.Pledger
		if err := rows.Scan(&p.ID, &p.Username, &p.Name, &p.Email); err != nil {
			return nil, fmt.Errorf("scan pledger: %w", err)
		}
		pledgers = append(pledgers, p)
	}
	return pledgers, rows.Err()
}

func (r *PledgerRepository) Get(ctx context.Context, id int64) (*domain.Pledger, error) {
	var p domain.Pledger
	err := r.store.pool.QueryRow(ctx, `SELECT id, username, name, email FROM pledgers WHERE id = $1`, id).
		Scan(&p.ID, &p.Username, &p.Name, &p.Email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrPledgerNotFound
		}
		return nil, fmt.Errorf("get pledger: %w", err)
	}
	return &p, nil
}

func (r *PledgerRepository) Create(ctx context.Context, username, passwordDigest, name, email string) (*domain.Pledger, error) {
	var id int64
	err := r.store.pool.QueryRow(ctx,
		`INSERT INTO pledgers (username, password_hash, name, email) VALUES ($1, $2, $3, $4) RETURNING id`,
		username, passwordDigest, name, email,
	).Scan(&id)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domain.ErrUsernameTaken
		}
		return nil, fmt.Errorf("insert pledger: %w", err)
	}
	return &domain.Pledger{ID: id, Username: username, Name: name, Email: email}, nil
}

func (r *PledgerRepository) Update(ctx context.Context, id int64, patch ports.PledgerPatch) error {
	var set setClause
	if patch.Username != nil {
		set.add("username", *patch.Username)
	}
	if patch.PasswordDigest != nil {
		set.add("password_hash", *patch.PasswordDigest)
	}
	if patch.Name != nil {
		set.add("name", *patch.Name)
	}
	if patch.Email != nil {
		set.add("email", *patch.Email)
	}
	if set.empty() {
		return nil
	}

	query, args := set.build("pledgers", id)
	tag, err := r.store.pool.Exec(ctx, query, args...)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrUsernameTaken
		}
		return fmt.Errorf("update pledger: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrPledgerNotFound
	}
	return nil
}

func (r *PledgerRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.store.pool.Exec(ctx, `DELETE FROM pledgers WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete pledger: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrPledgerNotFound
	}
	return nil
}

// NonProfitRepository implements ports.NonProfitRepository.
type NonProfitRepository struct {
	store *Store
}

func NewNonProfitRepository(store *Store) *NonProfitRepository {
	return &NonProfitRepository{store: store}
}

func (r *NonProfitRepository) List(ctx context.Context) ([]domain.NonProfit, error) {
	rows, err := r.store.pool.Query(ctx, `SELECT id, username, name, mission FROM nonprofits ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list nonprofits: %w", err)
	}
	defer rows.Close()

	var nonprofits []domain.NonProfit
	for rows.Next() {
		var n domain.NonProfit
		if err := rows.Scan(&n.ID, &n.Username, &n.Name, &n.Mission); err != nil {
			return nil, fmt.Errorf("scan nonprofit: %w", err)
		}
		nonprofits = append(nonprofits, n)
	}
	return nonprofits, rows.Err()
}

func (r *NonProfitRepository) Get(ctx context.Context, id int64) (*domain.NonProfit, error) {
	var n domain.NonProfit
	err := r.store.pool.QueryRow(ctx, `SELECT id, username, name, mission FROM nonprofits WHERE id = $1`, id).
		Scan(&n.ID, &n.Username, &n.Name, &n.Mission)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNonProfitNotFound
		}
		return nil, fmt.Errorf("get nonprofit: %w", err)
	}
	return &n, nil
}

func (r *NonProfitRepository) Create(ctx context.Context, username, passwordDigest, name, mission string) (*domain.NonProfit, error) {
	var id int64
	err := r.store.pool.QueryRow(ctx,
		`INSERT INTO nonprofits (username, password_hash, name, mission) VALUES ($1, $2, $3, $4) RETURNING id`,
		username, passwordDigest, name, mission,
	).Scan(&id)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domain.ErrUsernameTaken
		}
		return nil, fmt.Errorf("insert nonprofit: %w", err)
	}
	return &domain.NonProfit{ID: id, Username: username, Name: name, Mission: mission}, nil
}

func (r *NonProfitRepository) Update(ctx context.Context, id int64, patch ports.NonProfitPatch) error {
	var set setClause
	if patch.Username != nil {
		set.add("username", *patch.Username)
	}
	if patch.PasswordDigest != nil {
		set.add("password_hash", *patch.PasswordDigest)
	}
	if patch.Name != nil {
		set.add("name", *patch.Name)
	}
	if patch.Mission != nil {
		set.add("mission", *patch.Mission)
	}
	if set.empty() {
		return nil
	}

	query, args := set.build("nonprofits", id)
	tag, err := r.store.pool.Exec(ctx, query, args...)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrUsernameTaken
		}
		return fmt.Errorf("update nonprofit: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNonProfitNotFound
	}
	return nil
}

func (r *NonProfitRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.store.pool.Exec(ctx, `DELETE FROM nonprofits WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete nonprofit: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNonProfitNotFound
	}
	return nil
}
