package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/reliefworks/donation-system/internal/core/domain"
	"github.com/reliefworks/donation-system/internal/core/ports"
)

// LedgerService exposes the pledge and withdrawal ledger. The resolve-then-act
// pair is not transactional: a concurrent mutation between authentication and
// the ledger write is an accepted limitation of this gateway.
type LedgerService struct {
	pledges     ports.PledgeRepository
	withdrawals ports.WithdrawalRepository
	log         zerolog.Logger
}

func NewLedgerService(pledges ports.PledgeRepository, withdrawals ports.WithdrawalRepository, log zerolog.Logger) *LedgerService {
	return &LedgerService{pledges: pledges, withdrawals: withdrawals, log: log}
}

func (s *LedgerService) ListPledges(ctx context.Context) ([]domain.Pledge, error) {
	pledges, err := s.pledges.List(ctx)
	if err != nil {
		return nil, storeErr("list pledges", err)
	}
	return pledges, nil
}

func (s *LedgerService) PledgesOf(ctx context.Context, pledgerID int64) ([]domain.Pledge, error) {
	pledges, err := s.pledges.ListByPledger(ctx, pledgerID)
	if err != nil {
		return nil, storeErr("list pledges by pledger", err)
	}
	return pledges, nil
}

func (s *LedgerService) RecordPledge(ctx context.Context, pledgerID, fundID int64, amount float64) (*domain.Pledge, error) {
	pledge, err := s.pledges.Create(ctx, pledgerID, fundID, amount)
	if err != nil {
		return nil, storeErr("record pledge", err)
	}
	s.log.Info().
		Int64("pledger_id", pledgerID).
		Int64("fund_id", fundID).
		Float64("amount", amount).
		Msg("pledge recorded")
	return pledge, nil
}

func (s *LedgerService) ListWithdrawals(ctx context.Context) ([]domain.Withdrawal, error) {
	withdrawals, err := s.withdrawals.List(ctx)
	if err != nil {
		return nil, storeErr("list withdrawals", err)
	}
	return withdrawals, nil
}

func (s *LedgerService) WithdrawalsOf(ctx context.Context, nonprofitID int64) ([]domain.Withdrawal, error) {
	withdrawals, err := s.withdrawals.ListByNonProfit(ctx, nonprofitID)
	if err != nil {
		return nil, storeErr("list withdrawals by nonprofit", err)
	}
	return withdrawals, nil
}

func (s *LedgerService) RecordWithdrawal(ctx context.Context, nonprofitID, fundID int64, amount float64) (*domain.Withdrawal, error) {
	withdrawal, err := s.withdrawals.Create(ctx, nonprofitID, fundID, amount)
	if err != nil {
		return nil, storeErr("record withdrawal", err)
	}
	s.log.Info().
		Int64("nonprofit_id", nonprofitID).
		Int64("fund_id", fundID).
		Float64("amount", amount).
		Msg("withdrawal recorded")
	return withdrawal, nil
}

func (s *LedgerService) AccessibleFunds(ctx context.Context, nonprofitID int64) ([]domain.Fund, error) {
	funds, err := s.withdrawals.AccessibleFunds(ctx, nonprofitID)
	if err != nil {
		return nil, storeErr("list accessible funds", err)
	}
	return funds, nil
}
