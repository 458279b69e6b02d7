package handler

import (
	"fmt"

	"github.com/labstack/echo/v4"

	"github.com/reliefworks/donation-system/internal/api/metrics"
	"github.com/reliefworks/donation-system/internal/core/domain"
	"github.com/reliefworks/donation-system/internal/core/ports"
)

// PledgeHandler serves /api/pledges. The :id on per-row routes is the owning
// pledger's identity, so self-ownership means "my own donation history".
type PledgeHandler struct {
	auth   ports.AuthService
	ledger ports.LedgerService
}

func NewPledgeHandler(auth ports.AuthService, ledger ports.LedgerService) *PledgeHandler {
	return &PledgeHandler{auth: auth, ledger: ledger}
}

var (
	listPledgesPolicy  = domain.RequireRole("GET", "pledges", domain.RoleAdmin)
	getPledgesPolicy   = domain.RequireRole("GET", "pledges/:id", domain.RoleAdmin).OrSelf(domain.RolePledger)
	recordPledgePolicy = domain.RequireRole("PUT", "pledges/:id", domain.RoleAdmin).OrSelf(domain.RolePledger)
)

type recordPledgeRequest struct {
	credentials
	FundID int64   `json:"FundID" validate:"required"`
	Amount float64 `json:"Amount" validate:"required,gt=0"`
}

// List handles GET /api/pledges.
//
// @Summary      List all pledges
// @Tags         pledges
// @Accept       json
// @Produce      json
// @Success      200  {object}  Envelope
// @Failure      400  {object}  Envelope
// @Router       /api/pledges [get]
func (h *PledgeHandler) List(c echo.Context) error {
	var req struct{ credentials }
	if err := bind(c, &req); err != nil {
		return fail(c, err)
	}
	if _, err := authorize(c, h.auth, listPledgesPolicy, req.credentials, nil); err != nil {
		return fail(c, err)
	}

	pledges, err := h.ledger.ListPledges(c.Request().Context())
	if err != nil {
		return fail(c, err)
	}
	return ok(c, pledges)
}

// ListByPledger handles GET /api/pledges/:id.
//
// @Summary      List the pledges of one pledger
// @Tags         pledges
// @Accept       json
// @Produce      json
// @Param        id  path      int  true  "Pledger ID"
// @Success      200  {object}  Envelope
// @Failure      400  {object}  Envelope
// @Router       /api/pledges/{id} [get]
func (h *PledgeHandler) ListByPledger(c echo.Context) error {
	var req struct{ credentials }
	if err := bind(c, &req); err != nil {
		return fail(c, err)
	}
	id, err := pathID(c)
	if err != nil {
		return fail(c, err)
	}
	if _, err := authorize(c, h.auth, getPledgesPolicy, req.credentials, &id); err != nil {
		return fail(c, err)
	}

	pledges, err := h.ledger.PledgesOf(c.Request().Context(), id)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, pledges)
}

// Record handles PUT /api/pledges/:id, recording a donation by pledger :id.
//
// @Summary      Record a donation
// @Tags         pledges
// @Accept       json
// @Produce      json
// @Param        id    path      int                  true  "Pledger ID"
// @Param        body  body      recordPledgeRequest  true  "Donation"
// @Success      200   {object}  Envelope
// @Failure      400   {object}  Envelope
// @Router       /api/pledges/{id} [put]
func (h *PledgeHandler) Record(c echo.Context) error {
	var req recordPledgeRequest
	if err := bind(c, &req); err != nil {
		return fail(c, err)
	}
	id, err := pathID(c)
	if err != nil {
		return fail(c, err)
	}
	if _, err := authorize(c, h.auth, recordPledgePolicy, req.credentials, &id); err != nil {
		return fail(c, err)
	}

	if _, err := h.ledger.RecordPledge(c.Request().Context(), id, req.FundID, req.Amount); err != nil {
		return fail(c, err)
	}
	metrics.PledgesRecordedTotal.Inc()
	return ok(c, fmt.Sprintf("here on a put -- record pledge for pledger with ID %d", id))
}
