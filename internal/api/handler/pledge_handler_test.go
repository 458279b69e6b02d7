package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/reliefworks/donation-system/internal/core/domain"
)

type stubLedgerService struct {
	pledges     []domain.Pledge
	withdrawals []domain.Withdrawal

	pledgesOfID int64
	recorded    struct {
		pledgerID, fundID int64
		amount            float64
	}
}

func (s *stubLedgerService) ListPledges(context.Context) ([]domain.Pledge, error) {
	return s.pledges, nil
}

func (s *stubLedgerService) PledgesOf(_ context.Context, pledgerID int64) ([]domain.Pledge, error) {
	s.pledgesOfID = pledgerID
	return s.pledges, nil
}

func (s *stubLedgerService) RecordPledge(_ context.Context, pledgerID, fundID int64, amount float64) (*domain.Pledge, error) {
	s.recorded.pledgerID = pledgerID
	s.recorded.fundID = fundID
	s.recorded.amount = amount
	return &domain.Pledge{ID: 1, PledgerID: pledgerID, FundID: fundID, Amount: amount}, nil
}

func (s *stubLedgerService) ListWithdrawals(context.Context) ([]domain.Withdrawal, error) {
	return s.withdrawals, nil
}

func (s *stubLedgerService) WithdrawalsOf(context.Context, int64) ([]domain.Withdrawal, error) {
	return s.withdrawals, nil
}

func (s *stubLedgerService) RecordWithdrawal(_ context.Context, nonprofitID, fundID int64, amount float64) (*domain.Withdrawal, error) {
	return &domain.Withdrawal{ID: 1, NonProfitID: nonprofitID, FundID: fundID, Amount: amount}, nil
}

func (s *stubLedgerService) AccessibleFunds(context.Context, int64) ([]domain.Fund, error) {
	return nil, nil
}

func TestPledgeHandlerListByPledgerSelf(t *testing.T) {
	ledger := &stubLedgerService{pledges: []domain.Pledge{{ID: 1, PledgerID: 7, FundID: 3, Amount: 25}}}
	h := NewPledgeHandler(testAccounts(), ledger)

	// alice is pledger 7 asking for her own rows
	c, rec := newTestContext(t, http.MethodGet, "/api/pledges/7", `{`+creds("alice")+`}`, "7")
	if err := h.ListByPledger(c); err != nil {
		t.Fatalf("handler returned %v", err)
	}

	env := decodeEnvelope(t, rec)
	if env.Status != http.StatusOK {
		t.Fatalf("want 200, got %d (error %v)", env.Status, env.Error)
	}
	if ledger.pledgesOfID != 7 {
		t.Fatalf("service queried pledger %d", ledger.pledgesOfID)
	}
	var rows []domain.Pledge
	if err := json.Unmarshal(env.Response, &rows); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(rows) != 1 || rows[0].PledgerID != 7 {
		t.Fatalf("unexpected rows %+v", rows)
	}
}

func TestPledgeHandlerListByPledgerOtherDenied(t *testing.T) {
	ledger := &stubLedgerService{}
	h := NewPledgeHandler(testAccounts(), ledger)

	// alice is pledger 7; pledger 9 is somebody else
	c, rec := newTestContext(t, http.MethodGet, "/api/pledges/9", `{`+creds("alice")+`}`, "9")
	if err := h.ListByPledger(c); err != nil {
		t.Fatalf("handler returned %v", err)
	}

	env := decodeEnvelope(t, rec)
	if env.Status != http.StatusBadRequest || env.Error == nil {
		t.Fatalf("want a denial envelope, got %+v", env)
	}
	if !strings.Contains(*env.Error, "GET pledges/:id") {
		t.Fatalf("denial must name the rule, got %q", *env.Error)
	}
	if ledger.pledgesOfID != 0 {
		t.Fatal("store must not be touched on a denial")
	}
}

func TestPledgeHandlerListByPledgerAdmin(t *testing.T) {
	ledger := &stubLedgerService{}
	h := NewPledgeHandler(testAccounts(), ledger)

	c, rec := newTestContext(t, http.MethodGet, "/api/pledges/9", `{`+creds("root")+`}`, "9")
	if err := h.ListByPledger(c); err != nil {
		t.Fatalf("handler returned %v", err)
	}
	if env := decodeEnvelope(t, rec); env.Status != http.StatusOK {
		t.Fatalf("admin must read any pledger, got %d (error %v)", env.Status, env.Error)
	}
}

func TestPledgeHandlerListByPledgerBadID(t *testing.T) {
	ledger := &stubLedgerService{}
	h := NewPledgeHandler(testAccounts(), ledger)

	c, rec := newTestContext(t, http.MethodGet, "/api/pledges/abc", `{`+creds("alice")+`}`, "abc")
	if err := h.ListByPledger(c); err != nil {
		t.Fatalf("handler returned %v", err)
	}

	env := decodeEnvelope(t, rec)
	if env.Error == nil || *env.Error != `invalid id "abc" in path` {
		t.Fatalf("want strict id rejection, got %v", env.Error)
	}
}

func TestPledgeHandlerRecord(t *testing.T) {
	ledger := &stubLedgerService{}
	h := NewPledgeHandler(testAccounts(), ledger)

	body := `{` + creds("alice") + `,"FundID":3,"Amount":25.5}`
	c, rec := newTestContext(t, http.MethodPut, "/api/pledges/7", body, "7")
	if err := h.Record(c); err != nil {
		t.Fatalf("handler returned %v", err)
	}

	env := decodeEnvelope(t, rec)
	if env.Status != http.StatusOK {
		t.Fatalf("want 200, got %d (error %v)", env.Status, env.Error)
	}
	if ledger.recorded.pledgerID != 7 || ledger.recorded.fundID != 3 || ledger.recorded.amount != 25.5 {
		t.Fatalf("unexpected record %+v", ledger.recorded)
	}
}

func TestPledgeHandlerRecordRejectsNonPositiveAmount(t *testing.T) {
	ledger := &stubLedgerService{}
	h := NewPledgeHandler(testAccounts(), ledger)

	body := `{` + creds("alice") + `,"FundID":3,"Amount":-5}`
	c, rec := newTestContext(t, http.MethodPut, "/api/pledges/7", body, "7")
	if err := h.Record(c); err != nil {
		t.Fatalf("handler returned %v", err)
	}

	env := decodeEnvelope(t, rec)
	if env.Status != http.StatusBadRequest || env.Error == nil {
		t.Fatalf("want a validation envelope, got %+v", env)
	}
	if ledger.recorded.pledgerID != 0 {
		t.Fatal("store must not be touched on invalid input")
	}
}
