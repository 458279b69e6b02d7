package ports

import (
	"context"

	"github.com/reliefworks/donation-system/internal/core/domain"
)

// --- Service-level inputs (plaintext password, sanitized by the service) ---

type CreateAdminInput struct {
	Username string
	Password string
	Name     string
}

type CreatePledgerInput struct {
	Username string
	Password string
	Name     string
	Email    string
}

type CreateNonProfitInput struct {
	Username string
	Password string
	Name     string
	Mission  string
}

// Update inputs carry only the fields present in the request; nil means
// "leave unchanged". Password is the plaintext rotation field — it never
// reaches a repository, only its digest does.
type UpdateAdminInput struct {
	Username *string
	Password *string
	Name     *string
}

type UpdatePledgerInput struct {
	Username *string
	Password *string
	Name     *string
	Email    *string
}

type UpdateNonProfitInput struct {
	Username *string
	Password *string
	Name     *string
	Mission  *string
}

// --- Repository-level patches (digest only, no plaintext) ---

type AdminPatch struct {
	Username       *string
	PasswordDigest *string
	Name           *string
}

type PledgerPatch struct {
	Username       *string
	PasswordDigest *string
	Name           *string
	Email          *string
}

type NonProfitPatch struct {
	Username       *string
	PasswordDigest *string
	Name           *string
	Mission        *string
}

// AdminRepository persists the admins role table.
type AdminRepository interface {
	List(ctx context.Context) ([]domain.Admin, error)
	Get(ctx context.Context, id int64) (*domain.Admin, error)
	Create(ctx context.Context, username, passwordDigest, name string) (*domain.Admin, error)
	Update(ctx context.Context, id int64, patch AdminPatch) error
	Delete(ctx context.Context, id int64) error
}

// PledgerRepository persists the pledgers role table.
type PledgerRepository interface {
	List(ctx context.Context) ([]domain.Pledger, error)
	Get(ctx context.Context, id int64) (*domain.Pledger, error)
	Create(ctx context.Context, username, passwordDigest, name, email string) (*domain.Pledger, error)
	Update(ctx context.Context, id int64, patch PledgerPatch) error
	Delete(ctx context.Context, id int64) error
}

// NonProfitRepository persists the nonprofits role table.
type NonProfitRepository interface {
	List(ctx context.Context) ([]domain.NonProfit, error)
	Get(ctx context.Context, id int64) (*domain.NonProfit, error)
	Create(ctx context.Context, username, passwordDigest, name, mission string) (*domain.NonProfit, error)
	Update(ctx context.Context, id int64, patch NonProfitPatch) error
	Delete(ctx context.Context, id int64) error
}

// DirectoryService provisions and maintains accounts in all three role
// namespaces. Mutations sanitize their inputs: credential fields are dropped
// and password rotations are stored as digests.
type DirectoryService interface {
	ListAdmins(ctx context.Context) ([]domain.Admin, error)
	GetAdmin(ctx context.Context, id int64) (*domain.Admin, error)
	CreateAdmin(ctx context.Context, in CreateAdminInput) (*domain.Admin, error)
	UpdateAdmin(ctx context.Context, id int64, in UpdateAdminInput) error
	DeleteAdmin(ctx context.Context, id int64) error

	ListPledgers(ctx context.Context) ([]domain.Pledger, error)
	GetPledger(ctx context.Context, id int64) (*domain.Pledger, error)
	CreatePledger(ctx context.Context, in CreatePledgerInput) (*domain.Pledger, error)
	UpdatePledger(ctx context.Context, id int64, in UpdatePledgerInput) error
	DeletePledger(ctx context.Context, id int64) error

	ListNonProfits(ctx context.Context) ([]domain.NonProfit, error)
	GetNonProfit(ctx context.Context, id int64) (*domain.NonProfit, error)
	CreateNonProfit(ctx context.Context, in CreateNonProfitInput) (*domain.NonProfit, error)
	UpdateNonProfit(ctx context.Context, id int64, in UpdateNonProfitInput) error
	DeleteNonProfit(ctx context.Context, id int64) error
}
