package postgres

import (
	"context"
	"fmt"

	"github.com/reliefworks/donation-system/internal/core/domain"
)

// PledgeRepository implements ports.PledgeRepository.
type PledgeRepository struct {
	store *Store
}

func NewPledgeRepository(store *Store) *PledgeRepository {
	return &PledgeRepository{store: store}
}

func (r *PledgeRepository) List(ctx context.Context) ([]domain.Pledge, error) {
	return r.list(ctx,
		`SELECT id, pledger_id, fund_id, amount, pledged_at FROM pledges ORDER BY id`)
}

func (r *PledgeRepository) ListByPledger(ctx context.Context, pledgerID int64) ([]domain.Pledge, error) {
	return r.list(ctx,
		`SELECT id, pledger_id, fund_id, amount, pledged_at FROM pledges WHERE pledger_id = $1 ORDER BY id`,
		pledgerID)
}

func (r *PledgeRepository) list(ctx context.Context, query string, args ...any) ([]domain.Pledge, error) {
	rows, err := r.store.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list pledges: %w", err)
	}
	defer rows.Close()

	var pledges []domain.Pledge
	for rows.Next() {
		var p domain.Pledge
		if err := rows.Scan(&p.ID, &p.PledgerID, &p.FundID, &p.Amount, &p.PledgedAt); err != nil {
			return nil, fmt.Errorf("scan pledge: %w", err)
		}
		pledges = append(pledges, p)
	}
	return pledges, rows.Err()
}

func (r *PledgeRepository) Create(ctx context.Context, pledgerID, fundID int64, amount float64) (*domain.Pledge, error) {
	var p domain.Pledge
	err := r.store.pool.QueryRow(ctx,
		`INSERT INTO pledges (pledger_id, fund_id, amount) VALUES ($1, $2, $3)
		 RETURNING id, pledger_id, fund_id, amount, pledged_at`,
		pledgerID, fundID, amount,
	).Scan(&p.ID, &p.PledgerID, &p.FundID, &p.Amount, &p.PledgedAt)
	if err != nil {
		return nil, fmt.Errorf("insert pledge: %w", err)
	}
	return &p, nil
}

// WithdrawalRepository implements ports.WithdrawalRepository.
type WithdrawalRepository struct {
	store *Store
}

func NewWithdrawalRepository(store *Store) *WithdrawalRepository {
	return &WithdrawalRepository{store: store}
}

func (r *WithdrawalRepository) List(ctx context.Context) ([]domain.Withdrawal, error) {
	return r.list(ctx,
		`SELECT id, nonprofit_id, fund_id, amount, withdrawn_at FROM withdrawals ORDER BY id`)
}

func (r *WithdrawalRepository) ListByNonProfit(ctx context.Context, nonprofitID int64) ([]domain.Withdrawal, error) {
	return r.list(ctx,
		`SELECT id, nonprofit_id, fund_id, amount, withdrawn_at FROM withdrawals WHERE nonprofit_id = $1 ORDER BY id`,
		nonprofitID)
}

func (r *WithdrawalRepository) list(ctx context.Context, query string, args ...any) ([]domain.Withdrawal, error) {
	rows, err := r.store.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list withdrawals: %w", err)
	}
	defer rows.Close()

	var withdrawals []domain.Withdrawal
	for rows.Next() {
		var w domain.Withdrawal
		if err := rows.Scan(&w.ID, &w.NonProfitID, &w.FundID, &w.Amount, &w.WithdrawnAt); err != nil {
			return nil, fmt.Errorf("scan withdrawal: %w", err)
		}
		withdrawals = append(withdrawals, w)
	}
	return withdrawals, rows.Err()
}

func (r *WithdrawalRepository) Create(ctx context.Context, nonprofitID, fundID int64, amount float64) (*domain.Withdrawal, error) {
	var w domain.Withdrawal
	err := r.store.pool.QueryRow(ctx,
		`INSERT INTO withdrawals (nonprofit_id, fund_id, amount) VALUES ($1, $2, $3)
		 RETURNING id, nonprofit_id, fund_id, amount, withdrawn_at`,
		nonprofitID, fundID, amount,
	).Scan(&w.ID, &w.NonProfitID, &w.FundID, &w.Amount, &w.WithdrawnAt)
	if err != nil {
		return nil, fmt.Errorf("insert withdrawal: %w", err)
	}
	return &w, nil
}

func (r *WithdrawalRepository) AccessibleFunds(ctx context.Context, nonprofitID int64) ([]domain.Fund, error) {
	rows, err := r.store.pool.Query(ctx,
		`SELECT f.id, f.name, f.description, f.accessible, f.balance
		 FROM funds f
		 JOIN nonprofit_funds nf ON nf.fund_id = f.id
		 WHERE nf.nonprofit_id = $1 AND f.accessible
		 ORDER BY f.id`,
		nonprofitID)
	if err != nil {
		return nil, fmt.Errorf("list accessible funds: %w", err)
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
