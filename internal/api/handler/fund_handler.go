package handler

import (
	"fmt"

	"github.com/labstack/echo/v4"

	"github.com/reliefworks/donation-system/internal/core/domain"
	"github.com/reliefworks/donation-system/internal/core/ports"
)

// FundHandler serves /api/funds. Reads are open to every authenticated role;
// mutations are admin-only.
type FundHandler struct {
	auth  ports.AuthService
	funds ports.FundService
}

func NewFundHandler(auth ports.AuthService, funds ports.FundService) *FundHandler {
	return &FundHandler{auth: auth, funds: funds}
}

var (
	listFundsPolicy  = domain.RequireRole("GET", "funds", domain.RoleAdmin, domain.RolePledger, domain.RoleNonProfit)
	getFundPolicy    = domain.RequireRole("GET", "funds/:id", domain.RoleAdmin, domain.RolePledger, domain.RoleNonProfit)
	createFundPolicy = domain.RequireRole("POST", "funds", domain.RoleAdmin)
	updateFundPolicy = domain.RequireRole("PUT", "funds/:id", domain.RoleAdmin)
	deleteFundPolicy = domain.RequireRole("DELETE", "funds/:id", domain.RoleAdmin)
)

type createFundRequest struct {
	credentials
	FundName        string  `json:"FundName" validate:"required"`
	FundDescription string  `json:"FundDescription"`
	FundAccessible  bool    `json:"FundAccessible"`
	FundBalance     float64 `json:"FundBalance"`
}

type updateFundRequest struct {
	credentials
	FundName        *string  `json:"FundName"`
	FundDescription *string  `json:"FundDescription"`
	FundAccessible  *bool    `json:"FundAccessible"`
	FundBalance     *float64 `json:"FundBalance"`
}

// List handles GET /api/funds.
//
// @Summary      List relief funds
// @Tags         funds
// @Accept       json
// @Produce      json
// @Success      200  {object}  Envelope
// @Failure      400  {object}  Envelope
// @Router       /api/funds [get]
func (h *FundHandler) List(c echo.Context) error {
	var req struct{ credentials }
	if err := bind(c, &req); err != nil {
		return fail(c, err)
	}
	if _, err := authorize(c, h.auth, listFundsPolicy, req.credentials, nil); err != nil {
		return fail(c, err)
	}

	funds, err := h.funds.List(c.Request().Context())
	if err != nil {
		return fail(c, err)
	}
	return ok(c, funds)
}

// Get handles GET /api/funds/:id.
//
// @Summary      Get one relief fund
// @Tags         funds
// @Accept       json
// @Produce      json
// @Param        id  path      int  true  "Fund ID"
// @Success      200  {object}  Envelope
// @Failure      400  {object}  Envelope
// @Router       /api/funds/{id} [get]
func (h *FundHandler) Get(c echo.Context) error {
	var req struct{ credentials }
	if err := bind(c, &req); err != nil {
		return fail(c, err)
	}
	id, err := pathID(c)
	if err != nil {
		return fail(c, err)
	}
	if _, err := authorize(c, h.auth, getFundPolicy, req.credentials, &id); err != nil {
		return fail(c, err)
	}

	fund, err := h.funds.Get(c.Request().Context(), id)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, fund)
}

// Create handles POST /api/funds.
//
// @Summary      Create a relief fund
// @Tags         funds
// @Accept       json
// @Produce      json
// @Param        body  body      createFundRequest  true  "Fund"
// @Success      200   {object}  Envelope
// @Failure      400   {object}  Envelope
// @Router       /api/funds [post]
func (h *FundHandler) Create(c echo.Context) error {
	var req createFundRequest
	if err := bind(c, &req); err != nil {
		return fail(c, err)
	}
	if _, err := authorize(c, h.auth, createFundPolicy, req.credentials, nil); err != nil {
		return fail(c, err)
	}

	fund, err := h.funds.Create(c.Request().Context(), ports.CreateFundInput{
		Name:        req.FundName,
		Description: req.FundDescription,
		Accessible:  req.FundAccessible,
		Balance:     req.FundBalance,
	})
	if err != nil {
		return fail(c, err)
	}
	return ok(c, fmt.Sprintf("here on a post -- create a new entry for %s", fund.Name))
}

// Update handles PUT /api/funds/:id. Only the fields present in the body are
// written.
//
// @Summary      Update a relief fund
// @Tags         funds
// @Accept       json
// @Produce      json
// @Param        id    path      int                true  "Fund ID"
// @Param        body  body      updateFundRequest  true  "Fields to change"
// @Success      200   {object}  Envelope
// @Failure      400   {object}  Envelope
// @Router       /api/funds/{id} [put]
func (h *FundHandler) Update(c echo.Context) error {
	var req updateFundRequest
	if err := bind(c, &req); err != nil {
		return fail(c, err)
	}
	id, err := pathID(c)
	if err != nil {
		return fail(c, err)
	}
	if _, err := authorize(c, h.auth, updateFundPolicy, req.credentials, &id); err != nil {
		return fail(c, err)
	}

	patch := ports.FundPatch{
		Name:        req.FundName,
		Description: req.FundDescription,
		Accessible:  req.FundAccessible,
		Balance:     req.FundBalance,
	}
	if err := h.funds.Update(c.Request().Context(), id, patch); err != nil {
		return fail(c, err)
	}
	return ok(c, fmt.Sprintf("here on a put -- update fund with ID %d", id))
}

// Delete handles DELETE /api/funds/:id.
//
// @Summary      Delete a relief fund
// @Tags         funds
// @Accept       json
// @Produce      json
// @Param        id  path      int  true  "Fund ID"
// @Success      200  {object}  Envelope
// @Failure      400  {object}  Envelope
// @Router       /api/funds/{id} [delete]
func (h *FundHandler) Delete(c echo.Context) error {
	var req struct{ credentials }
	if err := bind(c, &req); err != nil {
		return fail(c, err)
	}
	id, err := pathID(c)
	if err != nil {
		return fail(c, err)
	}
	if _, err := authorize(c, h.auth, deleteFundPolicy, req.credentials, &id); err != nil {
		return fail(c, err)
	}

	if err := h.funds.Delete(c.Request().Context(), id); err != nil {
		return fail(c, err)
	}
	return ok(c, fmt.Sprintf("here on a delete -- remove fund with ID %d", id))
}
