package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/reliefworks/donation-system/internal/core/domain"
	"github.com/reliefworks/donation-system/internal/core/ports"
)

type stubFundService struct {
	funds []domain.Fund

	updatedID    int64
	updatedPatch ports.FundPatch
	deletedID    int64
}

func (s *stubFundService) List(context.Context) ([]domain.Fund, error) { return s.funds, nil }

func (s *stubFundService) Get(_ context.Context, id int64) (*domain.Fund, error) {
	for i := range s.funds {
		if s.funds[i].ID == id {
			return &s.funds[i], nil
		}
	}
	return nil, domain.ErrFundNotFound
}

func (s *stubFundService) Create(_ context.Context, in ports.CreateFundInput) (*domain.Fund, error) {
	return &domain.Fund{ID: 99, Name: in.Name}, nil
}

func (s *stubFundService) Update(_ context.Context, id int64, patch ports.FundPatch) error {
	s.updatedID = id
	s.updatedPatch = patch
	return nil
}

func (s *stubFundService) Delete(_ context.Context, id int64) error {
	s.deletedID = id
	return nil
}

func TestFundHandlerUpdatePartialPatch(t *testing.T) {
	funds := &stubFundService{}
	h := NewFundHandler(testAccounts(), funds)

	body := `{` + creds("root") + `,"FundBalance":500}`
	c, rec := newTestContext(t, http.MethodPut, "/api/funds/3", body, "3")
	if err := h.Update(c); err != nil {
		t.Fatalf("handler returned %v", err)
	}

	env := decodeEnvelope(t, rec)
	if env.Status != http.StatusOK {
		t.Fatalf("want 200, got %d (error %v)", env.Status, env.Error)
	}
	var msg string
	if err := json.Unmarshal(env.Response, &msg); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if msg != "here on a put -- update fund with ID 3" {
		t.Fatalf("unexpected message %q", msg)
	}

	if funds.updatedID != 3 {
		t.Fatalf("service saw id %d", funds.updatedID)
	}
	p := funds.updatedPatch
	if p.Balance == nil || *p.Balance != 500 {
		t.Fatalf("balance not patched: %+v", p)
	}
	if p.Name != nil || p.Description != nil || p.Accessible != nil {
		t.Fatalf("absent fields must stay nil: %+v", p)
	}
}

func TestFundHandlerUpdateRequiresAdmin(t *testing.T) {
	funds := &stubFundService{}
	h := NewFundHandler(testAccounts(), funds)

	body := `{` + creds("alice") + `,"FundBalance":500}`
	c, rec := newTestContext(t, http.MethodPut, "/api/funds/3", body, "3")
	if err := h.Update(c); err != nil {
		t.Fatalf("handler returned %v", err)
	}

	env := decodeEnvelope(t, rec)
	if env.Status != http.StatusBadRequest || env.Error == nil {
		t.Fatalf("want a denial envelope, got %+v", env)
	}
	if !strings.Contains(*env.Error, "PUT funds/:id") || !strings.Contains(*env.Error, "role Admin") {
		t.Fatalf("denial must name the rule, got %q", *env.Error)
	}
	if funds.updatedID != 0 {
		t.Fatal("store must not be touched on a denial")
	}
}

func TestFundHandlerListAnyRole(t *testing.T) {
	funds := &stubFundService{funds: []domain.Fund{{ID: 1, Name: "Flood Relief"}}}
	h := NewFundHandler(testAccounts(), funds)

	for _, username := range []string{"root", "alice", "shelter"} {
		c, rec := newTestContext(t, http.MethodGet, "/api/funds", `{`+creds(username)+`}`, "")
		if err := h.List(c); err != nil {
			t.Fatalf("%s: handler returned %v", username, err)
		}
		if env := decodeEnvelope(t, rec); env.Status != http.StatusOK {
			t.Fatalf("%s: want 200, got %d (error %v)", username, env.Status, env.Error)
		}
	}
}

func TestFundHandlerGetNotFound(t *testing.T) {
	h := NewFundHandler(testAccounts(), &stubFundService{})

	c, rec := newTestContext(t, http.MethodGet, "/api/funds/42", `{`+creds("root")+`}`, "42")
	if err := h.Get(c); err != nil {
		t.Fatalf("handler returned %v", err)
	}

	env := decodeEnvelope(t, rec)
	if env.Status != http.StatusBadRequest || env.Error == nil {
		t.Fatalf("want a 400 envelope, got %+v", env)
	}
}

func TestFundHandlerCreateMessage(t *testing.T) {
	h := NewFundHandler(testAccounts(), &stubFundService{})

	body := `{` + creds("root") + `,"FundName":"Quake Relief","FundAccessible":true}`
	c, rec := newTestContext(t, http.MethodPost, "/api/funds", body, "")
	if err := h.Create(c); err != nil {
		t.Fatalf("handler returned %v", err)
	}

	env := decodeEnvelope(t, rec)
	var msg string
	if err := json.Unmarshal(env.Response, &msg); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if msg != "here on a post -- create a new entry for Quake Relief" {
		t.Fatalf("unexpected message %q", msg)
	}
}
