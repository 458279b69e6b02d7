package ports

import (
	"context"

	"github.com/reliefworks/donation-system/internal/core/domain"
)

type CreateFundInput struct {
	Name        string
	Description string
	Accessible  bool
	Balance     float64
}

// FundPatch carries only the fields present in the update request.
type FundPatch struct {
	Name        *string
	Description *string
	Accessible  *bool
	Balance     *float64
}

// FundRepository persists relief funds.
type FundRepository interface {
	List(ctx context.Context) ([]domain.Fund, error)
	Get(ctx context.Context, id int64) (*domain.Fund, error)
	Create(ctx context.Context, in CreateFundInput) (*domain.Fund, error)
	Update(ctx context.Context, id int64, patch FundPatch) error
	Delete(ctx context.Context, id int64) error
}

// FundService exposes fund CRUD to the handlers.
type FundService interface {
	List(ctx context.Context) ([]domain.Fund, error)
	Get(ctx context.Context, id int64) (*domain.Fund, error)
	Create(ctx context.Context, in CreateFundInput) (*domain.Fund, error)
	Update(ctx context.Context, id int64, patch FundPatch) error
	Delete(ctx context.Context, id int64) error
}
