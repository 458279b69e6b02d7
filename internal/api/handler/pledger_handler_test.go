package handler

import (
	"context"
	"net/http"
	"strings"
	"testing"

	"github.com/reliefworks/donation-system/internal/core/domain"
	"github.com/reliefworks/donation-system/internal/core/ports"
)

// stubDirectoryService records the pledger calls; the admin and non-profit
// methods are inert.
type stubDirectoryService struct {
	pledgers []domain.Pledger

	createdPledger ports.CreatePledgerInput
	updatedID      int64
	updatedPledger ports.UpdatePledgerInput
	deletedID      int64
}

func (s *stubDirectoryService) ListAdmins(context.Context) ([]domain.Admin, error) { return nil, nil }
func (s *stubDirectoryService) GetAdmin(context.Context, int64) (*domain.Admin, error) {
	return nil, domain.ErrAdminNotFound
}
func (s *stubDirectoryService) CreateAdmin(context.Context, ports.CreateAdminInput) (*domain.Admin, error) {
	return &domain.Admin{}, nil
}
func (s *stubDirectoryService) UpdateAdmin(context.Context, int64, ports.UpdateAdminInput) error {
	return nil
}
func (s *stubDirectoryService) DeleteAdmin(context.Context, int64) error { return nil }

func (s *stubDirectoryService) ListPledgers(context.Context) ([]domain.Pledger, error) {
	return s.pledgers, nil
}

func (s *stubDirectoryService) GetPledger(_ context.Context, id int64) (*domain.Pledger, error) {
	for i := range s.pledgers {
		if s.pledgers[i].ID == id {
			return &s.pledgers[i], nil
		}
	}
	return nil, domain.ErrPledgerNotFound
}

func (s *stubDirectoryService) CreatePledger(_ context.Context, in ports.CreatePledgerInput) (*domain.Pledger, error) {
	s.createdPledger = in
	return &domain.Pledger{ID: 8, Username: in.Username}, nil
}

func (s *stubDirectoryService) UpdatePledger(_ context.Context, id int64, in ports.UpdatePledgerInput) error {
	s.updatedID = id
	s.updatedPledger = in
	return nil
}

func (s *stubDirectoryService) DeletePledger(_ context.Context, id int64) error {
	s.deletedID = id
	return nil
}

func (s *stubDirectoryService) ListNonProfits(context.Context) ([]domain.NonProfit, error) {
	return nil, nil
}
func (s *stubDirectoryService) GetNonProfit(context.Context, int64) (*domain.NonProfit, error) {
	return nil, domain.ErrNonProfitNotFound
}
func (s *stubDirectoryService) CreateNonProfit(context.Context, ports.CreateNonProfitInput) (*domain.NonProfit, error) {
	return &domain.NonProfit{}, nil
}
func (s *stubDirectoryService) UpdateNonProfit(context.Context, int64, ports.UpdateNonProfitInput) error {
	return nil
}
func (s *stubDirectoryService) DeleteNonProfit(context.Context, int64) error { return nil }

func TestPledgerHandlerGetSelf(t *testing.T) {
	dir := &stubDirectoryService{pledgers: []domain.Pledger{{ID: 7, Username: "alice"}}}
	h := NewPledgerHandler(testAccounts(), dir)

	c, rec := newTestContext(t, http.MethodGet, "/api/pledgers/7", `{`+creds("alice")+`}`, "7")
	if err := h.Get(c); err != nil {
		t.Fatalf("handler returned %v", err)
	}
	if env := decodeEnvelope(t, rec); env.Status != http.StatusOK {
		t.Fatalf("want 200, got %d (error %v)", env.Status, env.Error)
	}
}

func TestPledgerHandlerGetOtherDenied(t *testing.T) {
	dir := &stubDirectoryService{pledgers: []domain.Pledger{{ID: 9, Username: "bob"}}}
	h := NewPledgerHandler(testAccounts(), dir)

	c, rec := newTestContext(t, http.MethodGet, "/api/pledgers/9", `{`+creds("alice")+`}`, "9")
	if err := h.Get(c); err != nil {
		t.Fatalf("handler returned %v", err)
	}

	env := decodeEnvelope(t, rec)
	if env.Status != http.StatusBadRequest || env.Error == nil {
		t.Fatalf("want a denial envelope, got %+v", env)
	}
	if !strings.Contains(*env.Error, "GET pledgers/:id") {
		t.Fatalf("denial must name the rule, got %q", *env.Error)
	}
}

func TestPledgerHandlerCreateDropsCredentialFields(t *testing.T) {
	dir := &stubDirectoryService{}
	h := NewPledgerHandler(testAccounts(), dir)

	body := `{` + creds("root") + `,"Username":"bob","Password":"s3cret","Name":"Bob","Email":"bob@example.org"}`
	c, rec := newTestContext(t, http.MethodPost, "/api/pledgers", body, "")
	if err := h.Create(c); err != nil {
		t.Fatalf("handler returned %v", err)
	}
	if env := decodeEnvelope(t, rec); env.Status != http.StatusOK {
		t.Fatalf("want 200, got %d (error %v)", env.Status, env.Error)
	}

	in := dir.createdPledger
	if in.Username != "bob" || in.Password != "s3cret" || in.Name != "Bob" || in.Email != "bob@example.org" {
		t.Fatalf("unexpected input %+v", in)
	}
	// the auth pair exists only in the request schema; the service input has
	// no field that could carry it
	if in.Username == "root" || in.Password == "letmein" {
		t.Fatal("caller credentials leaked into the service input")
	}
}

func TestPledgerHandlerUpdateSelfPartial(t *testing.T) {
	dir := &stubDirectoryService{}
	h := NewPledgerHandler(testAccounts(), dir)

	body := `{` + creds("alice") + `,"Email":"alice@example.org"}`
	c, rec := newTestContext(t, http.MethodPut, "/api/pledgers/7", body, "7")
	if err := h.Update(c); err != nil {
		t.Fatalf("handler returned %v", err)
	}
	if env := decodeEnvelope(t, rec); env.Status != http.StatusOK {
		t.Fatalf("want 200, got %d (error %v)", env.Status, env.Error)
	}

	in := dir.updatedPledger
	if dir.updatedID != 7 || in.Email == nil || *in.Email != "alice@example.org" {
		t.Fatalf("email not patched: id %d input %+v", dir.updatedID, in)
	}
	if in.Username != nil || in.Password != nil || in.Name != nil {
		t.Fatalf("absent fields must stay nil: %+v", in)
	}
}

func TestPledgerHandlerDeleteRequiresAdmin(t *testing.T) {
	dir := &stubDirectoryService{}
	h := NewPledgerHandler(testAccounts(), dir)

	// even the row's owner cannot delete their own account
	c, rec := newTestContext(t, http.MethodDelete, "/api/pledgers/7", `{`+creds("alice")+`}`, "7")
	if err := h.Delete(c); err != nil {
		t.Fatalf("handler returned %v", err)
	}

	env := decodeEnvelope(t, rec)
	if env.Status != http.StatusBadRequest || env.Error == nil {
		t.Fatalf("want a denial envelope, got %+v", env)
	}
	if dir.deletedID != 0 {
		t.Fatal("store must not be touched on a denial")
	}
}
