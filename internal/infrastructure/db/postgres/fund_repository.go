package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/reliefworks/donation-system/internal/core/domain"
	"github.com/reliefworks/donation-system/internal/core/ports"
)

// FundRepository implements ports.FundRepository.
type FundRepository struct {
	store *Store
}

func NewFundRepository(store *Store) *FundRepository {
	return &FundRepository{store: store}
}

func (r *FundRepository) List(ctx context.Context) ([]domain.Fund, error) {
	rows, err := r.store.pool.Query(ctx,
		`SELECT id, name, description, accessible, balance FROM funds ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list funds: %w", err)
	}
	defer rows.Close()

	var funds []domain.Fund
	for rows.Next() {
		var f domain.Fund
		if err := rows.Scan(&f.ID, &f.Name, &f.Description, &f.Accessible, &f.Balance); err != nil {
			return nil, fmt.Errorf("scan fund: %w", err)
		}
		funds = append(funds, f)
	}
	return funds, rows.Err()
}

func (r *FundRepository) Get(ctx context.Context, id int64) (*domain.Fund, error) {
	var f domain.Fund
	err := r.store.pool.QueryRow(ctx,
		`SELECT id, name, description, accessible, balance FROM funds WHERE id = $1`, id).
		Scan(&f.ID, &f.Name, &f.Description, &f.Accessible, &f.Balance)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrFundNotFound
		}
		return nil, fmt.Errorf("get fund: %w", err)
	}
	return &f, nil
}

func (r *FundRepository) Create(ctx context.Context, in ports.CreateFundInput) (*domain.Fund, error) {
	var id int64
	err := r.store.pool.QueryRow(ctx,
		`INSERT INTO funds (name, description, accessible, balance) VALUES ($1, $2, $3, $4) RETURNING id`,
		in.Name, in.Description, in.Accessible, in.Balance,
	).Scan(&id)
	if err != nil {
		return nil, fmt.Errorf("insert fund: %w", err)
	}
	return &domain.Fund{
		ID:          id,
		Name:        in.Name,
		Description: in.Description,
		Accessible:  in.Accessible,
		Balance:     in.Balance,
	}, nil
}

func (r *FundRepository) Update(ctx context.Context, id int64, patch ports.FundPatch) error {
	var set setClause
	if patch.Name != nil {
		set.add("name", *patch.Name)
	}
	if patch.Description != nil {
		set.add("description", *patch.Description)
	}
	if patch.Accessible != nil {
		set.add("accessible", *patch.Accessible)
	}
	if patch.Balance != nil {
		set.add("balance", *patch.Balance)
	}
	if set.empty() {
		return nil
	}

	query, args := set.build("funds", id)
	tag, err := r.store.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update fund: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrFundNotFound
	}
	return nil
}

func (r *FundRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.store.pool.Exec(ctx, `DELETE FROM funds WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete fund: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrFundNotFound
	}
	return nil
}
