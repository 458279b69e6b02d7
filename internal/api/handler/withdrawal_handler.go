package handler

import (
	"fmt"

	"github.com/labstack/echo/v4"

	"github.com/reliefworks/donation-system/internal/api/metrics"
	"github.com/reliefworks/donation-system/internal/core/domain"
	"github.com/reliefworks/donation-system/internal/core/ports"
)

// WithdrawalHandler serves /api/withdrawals and /api/nonprofitfunds. The :id
// on per-row routes is the owning non-profit's identity.
type WithdrawalHandler struct {
	auth   ports.AuthService
	ledger ports.LedgerService
}

func NewWithdrawalHandler(auth ports.AuthService, ledger ports.LedgerService) *WithdrawalHandler {
	return &WithdrawalHandler{auth: auth, ledger: ledger}
}

var (
	listWithdrawalsPolicy  = domain.RequireRole("GET", "withdrawals", domain.RoleAdmin)
	getWithdrawalsPolicy   = domain.RequireRole("GET", "withdrawals/:id", domain.RoleAdmin).OrSelf(domain.RoleNonProfit)
	recordWithdrawalPolicy = domain.RequireRole("PUT", "withdrawals/:id", domain.RoleAdmin).OrSelf(domain.RoleNonProfit)
	nonprofitFundsPolicy   = domain.RequireRole("GET", "nonprofitfunds/:id", domain.RoleAdmin).OrSelf(domain.RoleNonProfit)
)

type recordWithdrawalRequest struct {
	credentials
	FundID int64   `json:"FundID" validate:"required"`
	Amount float64 `json:"Amount" validate:"required,gt=0"`
}

// List handles GET /api/withdrawals.
//
// @Summary      List all withdrawals
// @Tags         withdrawals
// @Accept       json
// @Produce      json
// @Success      200  {object}  Envelope
// @Failure      400  {object}  Envelope
// @Router       /api/withdrawals [get]
func (h *WithdrawalHandler) List(c echo.Context) error {
	var req struct{ credentials }
	if err := bind(c, &req); err != nil {
		return fail(c, err)
	}
	if _, err := authorize(c, h.auth, listWithdrawalsPolicy, req.credentials, nil); err != nil {
		return fail(c, err)
	}

	withdrawals, err := h.ledger.ListWithdrawals(c.Request().Context())
	if err != nil {
		return fail(c, err)
	}
	return ok(c, withdrawals)
}

// ListByNonProfit handles GET /api/withdrawals/:id.
//
// @Summary      List the withdrawals of one non-profit
// @Tags         withdrawals
// @Accept       json
// @Produce      json
// @Param        id  path      int  true  "NonProfit ID"
// @Success      200  {object}  Envelope
// @Failure      400  {object}  Envelope
// @Router       /api/withdrawals/{id} [get]
func (h *WithdrawalHandler) ListByNonProfit(c echo.Context) error {
	var req struct{ credentials }
	if err := bind(c, &req); err != nil {
		return fail(c, err)
	}
	id, err := pathID(c)
	if err != nil {
		return fail(c, err)
	}
	if _, err := authorize(c, h.auth, getWithdrawalsPolicy, req.credentials, &id); err != nil {
		return fail(c, err)
	}

	withdrawals, err := h.ledger.WithdrawalsOf(c.Request().Context(), id)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, withdrawals)
}

// Record handles PUT /api/withdrawals/:id, recording a draw by non-profit :id.
//
// @Summary      Record a withdrawal
// @Tags         withdrawals
// @Accept       json
// @Produce      json
// @Param        id    path      int                      true  "NonProfit ID"
// @Param        body  body      recordWithdrawalRequest  true  "Withdrawal"
// @Success      200   {object}  Envelope
// @Failure      400   {object}  Envelope
// @Router       /api/withdrawals/{id} [put]
func (h *WithdrawalHandler) Record(c echo.Context) error {
	var req recordWithdrawalRequest
	if err := bind(c, &req); err != nil {
		return fail(c, err)
	}
	id, err := pathID(c)
	if err != nil {
		return fail(c, err)
	}
	if _, err := authorize(c, h.auth, recordWithdrawalPolicy, req.credentials, &id); err != nil {
		return fail(c, err)
	}

	if _, err := h.ledger.RecordWithdrawal(c.Request().Context(), id, req.FundID, req.Amount); err != nil {
		return fail(c, err)
	}
	metrics.WithdrawalsRecordedTotal.Inc()
	return ok(c, fmt.Sprintf("here on a put -- record withdrawal for nonprofit with ID %d", id))
}

// AccessibleFunds handles GET /api/nonprofitfunds/:id, listing the accessible
// funds non-profit :id may draw from.
//
// @Summary      List funds accessible to one non-profit
// @Tags         withdrawals
// @Accept       json
// @Produce      json
// @Param        id  path      int  true  "NonProfit ID"
// @Success      200  {object}  Envelope
// @Failure      400  {object}  Envelope
// @Router       /api/nonprofitfunds/{id} [get]
func (h *WithdrawalHandler) AccessibleFunds(c echo.Context) error {
	var req struct{ credentials }
	if err := bind(c, &req); err != nil {
		return fail(c, err)
	}
	id, err := pathID(c)
	if err != nil {
		return fail(c, err)
	}
	if _, err := authorize(c, h.auth, nonprofitFundsPolicy, req.credentials, &id); err != nil {
		return fail(c, err)
	}

	funds, err := h.ledger.AccessibleFunds(c.Request().Context(), id)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, funds)
}
