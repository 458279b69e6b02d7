package service

import (
	"context"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/reliefworks/donation-system/internal/core/domain"
	"github.com/reliefworks/donation-system/internal/core/ports"
)

// recordingPledgerRepo captures what the service hands to the store so tests
// can assert on sanitization.
type recordingPledgerRepo struct {
	createdDigest string
	lastPatch     ports.PledgerPatch
}

func (r *recordingPledgerRepo) List(_ context.Context) ([]domain.Pledger, error) { return nil, nil }

func (r *recordingPledgerRepo) Get(_ context.Context, id int64) (*domain.Pledger, error) {
	return &domain.Pledger{ID: id}, nil
}

func (r *recordingPledgerRepo) Create(_ context.Context, username, passwordDigest, name, email string) (*domain.Pledger, error) {
	r.createdDigest = passwordDigest
	return &domain.Pledger{ID: 1, Username: username, Name: name, Email: email}, nil
}

func (r *recordingPledgerRepo) Update(_ context.Context, _ int64, patch ports.PledgerPatch) error {
	r.lastPatch = patch
	return nil
}

func (r *recordingPledgerRepo) Delete(_ context.Context, _ int64) error { return nil }

type noopAdminRepo struct{}

func (noopAdminRepo) List(_ context.Context) ([]domain.Admin, error) { return nil, nil }
func (noopAdminRepo) Get(_ context.Context, id int64) (*domain.Admin, error) {
	return &domain.Admin{ID: id}, nil
}
func (noopAdminRepo) Create(_ context.Context, username, passwordDigest, name string) (*domain.Admin, error) {
	return &domain.Admin{ID: 1, Username: username, Name: name}, nil
}
func (noopAdminRepo) Update(_ context.Context, _ int64, _ ports.AdminPatch) error { return nil }
func (noopAdminRepo) Delete(_ context.Context, _ int64) error                     { return nil }

type noopNonProfitRepo struct{}

func (noopNonProfitRepo) List(_ context.Context) ([]domain.NonProfit, error) { return nil, nil }
func (noopNonProfitRepo) Get(_ context.Context, id int64) (*domain.NonProfit, error) {
	return &domain.NonProfit{ID: id}, nil
}
func (noopNonProfitRepo) Create(_ context.Context, username, passwordDigest, name, mission string) (*domain.NonProfit, error) {
	return &domain.NonProfit{ID: 1, Username: username, Name: name, Mission: mission}, nil
}
func (noopNonProfitRepo) Update(_ context.Context, _ int64, _ ports.NonProfitPatch) error { return nil }
func (noopNonProfitRepo) Delete(_ context.Context, _ int64) error                         { return nil }

func newDirectoryService(pledgers *recordingPledgerRepo) *DirectoryService {
	return NewDirectoryService(noopAdminRepo{}, pledgers, noopNonProfitRepo{}, plainHasher{}, zerolog.Nop())
}

func TestCreatePledger_HashesPassword(t *testing.T) {
	repo := &recordingPledgerRepo{}
	svc := newDirectoryService(repo)

	_, err := svc.CreatePledger(context.Background(), ports.CreatePledgerInput{
		Username: "alice",
		Password: "letmein",
		Name:     "Alice",
	})
	if err != nil {
		t.Fatalf("CreatePledger returned error: %v", err)
	}

	if repo.createdDigest == "letmein" {
		t.Fatal("plaintext password reached the repository")
	}
	if repo.createdDigest != "hashed:letmein" {
		t.Fatalf("unexpected digest: %q", repo.createdDigest)
	}
}

func TestUpdatePledger_RotatesPasswordAsDigest(t *testing.T) {
	repo := &recordingPledgerRepo{}
	svc := newDirectoryService(repo)

	password := "newsecret"
	name := "Alice B"
	err := svc.UpdatePledger(context.Background(), 7, ports.UpdatePledgerInput{
		Password: &password,
		Name:     &name,
	})
	if err != nil {
		t.Fatalf("UpdatePledger returned error: %v", err)
	}

	if repo.lastPatch.PasswordDigest == nil {
		t.Fatal("expected a password digest in the patch")
	}
	if strings.Contains(*repo.lastPatch.PasswordDigest, "newsecret") && *repo.lastPatch.PasswordDigest != "hashed:newsecret" {
		t.Fatalf("plaintext leaked into digest: %q", *repo.lastPatch.PasswordDigest)
	}
	if repo.lastPatch.Name == nil || *repo.lastPatch.Name != "Alice B" {
		t.Fatalf("name not carried through: %+v", repo.lastPatch)
	}
	if repo.lastPatch.Username != nil {
		t.Fatal("username must stay unchanged when absent from the input")
	}
}

func TestUpdatePledger_NoPasswordNoDigest(t *testing.T) {
	repo := &recordingPledgerRepo{}
	svc := newDirectoryService(repo)

	email := "alice@example.org"
	if err := svc.UpdatePledger(context.Background(), 7, ports.UpdatePledgerInput{Email: &email}); err != nil {
		t.Fatalf("UpdatePledger returned error: %v", err)
	}

	if repo.lastPatch.PasswordDigest != nil {
		t.Fatal("digest must be nil when no rotation was requested")
	}
}
