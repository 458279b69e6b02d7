package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/reliefworks/donation-system/internal/core/domain"
	"github.com/reliefworks/donation-system/internal/core/ports"
)

// DirectoryService provisions accounts in the three role namespaces. All
// mutations are sanitized here: plaintext passwords are hashed before they
// reach a repository, and credential fields never appear in the patch types
// at all.
type DirectoryService struct {
	admins     ports.AdminRepository
	pledgers   ports.PledgerRepository
	nonprofits ports.NonProfitRepository
	hasher     ports.PasswordHasher
	log        zerolog.Logger
}

func NewDirectoryService(
	admins ports.AdminRepository,
	pledgers ports.PledgerRepository,
	nonprofits ports.NonProfitRepository,
	hasher ports.PasswordHasher,
	log zerolog.Logger,
) *DirectoryService {
	return &DirectoryService{
		admins:     admins,
		pledgers:   pledgers,
		nonprofits: nonprofits,
		hasher:     hasher,
		log:        log,
	}
}

// hashRotation converts an optional plaintext password rotation into an
// optional digest. A nil input stays nil.
func (s *DirectoryService) hashRotation(password *string) (*string, error) {
	if password == nil {
		return nil, nil
	}
	digest, err := s.hasher.Hash(*password)
	if err != nil {
		return nil, err
	}
	return &digest, nil
}

func (s *DirectoryService) ListAdmins(ctx context.Context) ([]domain.Admin, error) {
	admins, err := s.admins.List(ctx)
	if err != nil {
		return nil, storeErr("list admins", err)
	}
	return admins, nil
}

func (s *DirectoryService) GetAdmin(ctx context.Context, id int64) (*domain.Admin, error) {
	admin, err := s.admins.Get(ctx, id)
	if err != nil {
		return nil, storeErr("get admin", err)
	}
	return admin, nil
}

func (s *DirectoryService) CreateAdmin(ctx context.Context, in ports.CreateAdminInput) (*domain.Admin, error) {
	digest, err := s.hasher.Hash(in.Password)
	if err != nil {
		return nil, err
	}
	admin, err := s.admins.Create(ctx, in.Username, digest, in.Name)
	if err != nil {
		return nil, storeErr("create admin", err)
	}
	s.log.Info().Int64("admin_id", admin.ID).Msg("admin created")
	return admin, nil
}

func (s *DirectoryService) UpdateAdmin(ctx context.Context, id int64, in ports.UpdateAdminInput) error {
	digest, err := s.hashRotation(in.Password)
	if err != nil {
		return err
	}
	patch := ports.AdminPatch{Username: in.Username, PasswordDigest: digest, Name: in.Name}
	if err := s.admins.Update(ctx, id, patch); err != nil {
		return storeErr("update admin", err)
	}
	return nil
}

func (s *DirectoryService) DeleteAdmin(ctx context.Context, id int64) error {
	if err := s.admins.Delete(ctx, id); err != nil {
		return storeErr("delete admin", err)
	}
	s.log.Info().Int64("admin_id", id).Msg("admin deleted")
	return nil
}

func (s *DirectoryService) ListPledgers(ctx context.Context) ([]domain.Pledger, error) {
	pledgers, err := s.pledgers.List(ctx)
	if err != nil {
		return nil, storeErr("list pledgers", err)
	}
	return pledgers, nil
}

func (s *DirectoryService) GetPledger(ctx context.Context, id int64) (*domain.Pledger, error) {
	pledger, err := s.pledgers.Get(ctx, id)
	if err != nil {
		return nil, storeErr("get pledger", err)
	}
	return pledger, nil
}

func (s *DirectoryService) CreatePledger(ctx context.Context, in ports.CreatePledgerInput) (*domain.Pledger, error) {
	digest, err := s.hasher.Hash(in.Password)
	if err != nil {
		return nil, err
	}
	pledger, err := s.pledgers.Create(ctx, in.Username, digest, in.Name, in.Email)
	if err != nil {
		return nil, storeErr("create pledger", err)
	}
	s.log.Info().Int64("pledger_id", pledger.ID).Msg("pledger created")
	return pledger, nil
}

func (s *DirectoryService) UpdatePledger(ctx context.Context, id int64, in ports.UpdatePledgerInput) error {
	digest, err := s.hashRotation(in.Password)
	if err != nil {
		return err
	}
	patch := ports.PledgerPatch{Username: in.Username, PasswordDigest: digest, Name: in.Name, Email: in.Email}
	if err := s.pledgers.Update(ctx, id, patch); err != nil {
		return storeErr("update pledger", err)
	}
	return nil
}

func (s *DirectoryService) DeletePledger(ctx context.Context, id int64) error {
	if err := s.pledgers.Delete(ctx, id); err != nil {
		return storeErr("delete pledger", err)
	}
	s.log.Info().Int64("pledger_id", id).Msg("pledger deleted")
	return nil
}

func (s *DirectoryService) ListNonProfits(ctx context.Context) ([]domain.NonProfit, error) {
	nonprofits, err := s.nonprofits.List(ctx)
	if err != nil {
		return nil, storeErr("list nonprofits", err)
	}
	return nonprofits, nil
}

func (s *DirectoryService) GetNonProfit(ctx context.Context, id int64) (*domain.NonProfit, error) {
	nonprofit, err := s.nonprofits.Get(ctx, id)
	if err != nil {
		return nil, storeErr("get nonprofit", err)
	}
	return nonprofit, nil
}

func (s *DirectoryService) CreateNonProfit(ctx context.Context, in ports.CreateNonProfitInput) (*domain.NonProfit, error) {
	digest, err := s.hasher.Hash(in.Password)
	if err != nil {
		return nil, err
	}
	nonprofit, err := s.nonprofits.Create(ctx, in.Username, digest, in.Name, in.Mission)
	if err != nil {
		return nil, storeErr("create nonprofit", err)
	}
	s.log.Info().Int64("nonprofit_id", nonprofit.ID).Msg("nonprofit created")
	return nonprofit, nil
}

func (s *DirectoryService) UpdateNonProfit(ctx context.Context, id int64, in ports.UpdateNonProfitInput) error {
	digest, err := s.hashRotation(in.Password)
	if err != nil {
		return err
	}
	patch := ports.NonProfitPatch{Username: in.Username, PasswordDigest: digest, Name: in.Name, Mission: in.Mission}
	if err := s.nonprofits.Update(ctx, id, patch); err != nil {
		return storeErr("update nonprofit", err)
	}
	return nil
}

func (s *DirectoryService) DeleteNonProfit(ctx context.Context, id int64) error {
	if err := s.nonprofits.Delete(ctx, id); err != nil {
		return storeErr("delete nonprofit", err)
	}
	s.log.Info().Int64("nonprofit_id", id).Msg("nonprofit deleted")
	return nil
}

// storeErr wraps a repository failure as a StoreError unless it is one of the
// row-level sentinel outcomes, which pass through for the envelope to report
// as-is.
func storeErr(op string, err error) error {
	switch {
	case errors.Is(err, domain.ErrAdminNotFound),
		errors.Is(err, domain.ErrPledgerNotFound),
		errors.Is(err, domain.ErrNonProfitNotFound),
		errors.Is(err, domain.ErrFundNotFound),
		errors.Is(err, domain.ErrUsernameTaken):
		return err
	}
	return &domain.StoreError{Op: op, Err: err}
}
