package handler

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/reliefworks/donation-system/internal/core/domain"
)

// stubAuthService mimics the evaluator against a fixed set of accounts,
// including the self-ownership computation, so handler tests exercise the
// full dispatch chain.
type stubAuthService struct {
	accounts map[string]domain.Account // username -> account; password is "letmein" everywhere
}

func (s *stubAuthService) Authenticate(_ context.Context, creds domain.Credentials, targetID *int64) (domain.AuthDecision, error) {
	account, ok := s.accounts[creds.Username]
	if !ok {
		return domain.AuthDecision{}, domain.Denial{Reason: domain.ReasonUsernameNotFound}
	}
	if creds.Password != "letmein" {
		return domain.AuthDecision{}, domain.Denial{Reason: domain.ReasonIncorrectPassword}
	}
	isSelf := targetID != nil && account.ID == *targetID
	return domain.AuthDecision{Role: account.Role, ID: account.ID, IsSelf: isSelf}, nil
}

func testAccounts() *stubAuthService {
	return &stubAuthService{accounts: map[string]domain.Account{
		"root":    {ID: 1, Username: "root", Role: domain.RoleAdmin},
		"alice":   {ID: 7, Username: "alice", Role: domain.RolePledger},
		"shelter": {ID: 2, Username: "shelter", Role: domain.RoleNonProfit},
	}}
}

// newTestContext builds an echo context with a JSON body and, optionally, an
// :id path parameter.
func newTestContext(t *testing.T, method, path, body, id string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	e.Validator = NewValidator()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if id != "" {
		c.SetParamNames("id")
		c.SetParamValues(id)
	}
	return c, rec
}

func creds(username string) string {
	return `"AuthUsername":"` + username + `","AuthPassword":"letmein"`
}

// wireEnvelope mirrors Envelope on the decode side, keeping the payload raw so
// each test can assert its own shape.
type wireEnvelope struct {
	Status   int             `json:"status"`
	Error    *string         `json:"error"`
	Response json.RawMessage `json:"response"`
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) wireEnvelope {
	t.Helper()

	var env wireEnvelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode envelope: %v (body %q)", err, rec.Body.String())
	}
	if env.Status != rec.Code {
		t.Fatalf("envelope status %d does not mirror HTTP status %d", env.Status, rec.Code)
	}
	return env
}
