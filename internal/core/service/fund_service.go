package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/reliefworks/donation-system/internal/core/domain"
	"github.com/reliefworks/donation-system/internal/core/ports"
)

// FundService exposes fund CRUD. Each call performs exactly one store
// operation; no balance arithmetic happens here.
type FundService struct {
	funds ports.FundRepository
	log   zerolog.Logger
}

func NewFundService(funds ports.FundRepository, log zerolog.Logger) *FundService {
	return &FundService{funds: funds, log: log}
}

func (s *FundService) List(ctx context.Context) ([]domain.Fund, error) {
	funds, err := s.funds.List(ctx)
	if err != nil {
		return nil, storeErr("list funds", err)
	}
	return funds, nil
}

func (s *FundService) Get(ctx context.Context, id int64) (*domain.Fund, error) {
	fund, err := s.funds.Get(ctx, id)
	if err != nil {
		return nil, storeErr("get fund", err)
	}
	return fund, nil
}

func (s *FundService) Create(ctx context.Context, in ports.CreateFundInput) (*domain.Fund, error) {
	fund, err := s.funds.Create(ctx, in)
	if err != nil {
		return nil, storeErr("create fund", err)
	}
	s.log.Info().Int64("fund_id", fund.ID).Str("name", fund.Name).Msg("fund created")
	return fund, nil
}

func (s *FundService) Update(ctx context.Context, id int64, patch ports.FundPatch) error {
	if err := s.funds.Update(ctx, id, patch); err != nil {
		return storeErr("update fund", err)
	}
	s.log.Info().Int64("fund_id", id).Msg("fund updated")
	return nil
}

func (s *FundService) Delete(ctx context.Context, id int64) error {
	if err := s.funds.Delete(ctx, id); err != nil {
		return storeErr("delete fund", err)
	}
	s.log.Info().Int64("fund_id", id).Msg("fund deleted")
	return nil
}
