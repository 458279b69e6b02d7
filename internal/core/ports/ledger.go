package ports

import (
	"context"

	"github.com/reliefworks/donation-system/internal/core/domain"
)

// PledgeRepository persists donations.
type PledgeRepository interface {
	List(ctx context.Context) ([]domain.Pledge, error)
	ListByPledger(ctx context.Context, pledgerID int64) ([]domain.Pledge, error)
	Create(ctx context.Context, pledgerID, fundID int64, amount float64) (*domain.Pledge, error)
}

// WithdrawalRepository persists non-profit draws and the fund-access mapping.
type WithdrawalRepository interface {
	List(ctx context.Context) ([]domain.Withdrawal, error)
	ListByNonProfit(ctx context.Context, nonprofitID int64) ([]domain.Withdrawal, error)
	Create(ctx context.Context, nonprofitID, fundID int64, amount float64) (*domain.Withdrawal, error)
	AccessibleFunds(ctx context.Context, nonprofitID int64) ([]domain.Fund, error)
}

// LedgerService exposes the pledge/withdrawal ledger to the handlers. It
// performs exactly one store operation per call; fund balance consistency is
// the store's concern, not this service's.
type LedgerService interface {
	ListPledges(ctx context.Context) ([]domain.Pledge, error)
	PledgesOf(ctx context.Context, pledgerID int64) ([]domain.Pledge, error)
	RecordPledge(ctx context.Context, pledgerID, fundID int64, amount float64) (*domain.Pledge, error)

	ListWithdrawals(ctx context.Context) ([]domain.Withdrawal, error)
	WithdrawalsOf(ctx context.Context, nonprofitID int64) ([]domain.Withdrawal, error)
	RecordWithdrawal(ctx context.Context, nonprofitID, fundID int64, amount float64) (*domain.Withdrawal, error)

	AccessibleFunds(ctx context.Context, nonprofitID int64) ([]domain.Fund, error)
}
