package handler

import (
	"fmt"

	"github.com/labstack/echo/v4"

	"github.com/reliefworks/donation-system/internal/core/domain"
	"github.com/reliefworks/donation-system/internal/core/ports"
)

// NonProfitHandler serves /api/nonprofits. Provisioning is admin-only; a
// non-profit may read and update their own row.
type NonProfitHandler struct {
	auth      ports.AuthService
	directory ports.DirectoryService
}

func NewNonProfitHandler(auth ports.AuthService, directory ports.DirectoryService) *NonProfitHandler {
	return &NonProfitHandler{auth: auth, directory: directory}
}

var (
	listNonProfitsPolicy  = domain.RequireRole("GET", "nonprofits", domain.RoleAdmin)
	getNonProfitPolicy    = domain.RequireRole("GET", "nonprofits/:id", domain.RoleAdmin).OrSelf(domain.RoleNonProfit)
	createNonProfitPolicy = domain.RequireRole("POST", "nonprofits", domain.RoleAdmin)
	updateNonProfitPolicy = domain.RequireRole("PUT", "nonprofits/:id", domain.RoleAdmin).OrSelf(domain.RoleNonProfit)
	deleteNonProfitPolicy = domain.RequireRole("DELETE", "nonprofits/:id", domain.RoleAdmin)
)

type createNonProfitRequest struct {
	credentials
	Username string `json:"Username" validate:"required"`
	Password string `json:"Password" validate:"required"`
	Name     string `json:"Name"`
	Mission  string `json:"Mission"`
}

type updateNonProfitRequest struct {
	credentials
	Username *string `json:"Username"`
	Password *string `json:"Password"`
	Name     *string `json:"Name"`
	Mission  *string `json:"Mission"`
}

// List handles GET /api/nonprofits.
//
// @Summary      List non-profit accounts
// @Tags         nonprofits
// @Accept       json
// @Produce      json
// @Success      200  {object}  Envelope
// @Failure      400  {object}  Envelope
// @Router       /api/nonprofits [get]
func (h *NonProfitHandler) List(c echo.Context) error {
	var req struct{ credentials }
	if err := bind(c, &req); err != nil {
		return fail(c, err)
	}
	if _, err := authorize(c, h.auth, listNonProfitsPolicy, req.credentials, nil); err != nil {
		return fail(c, err)
	}

	nonprofits, err := h.directory.ListNonProfits(c.Request().Context())
	if err != nil {
		return fail(c, err)
	}
	return ok(c, nonprofits)
}

// Get handles GET /api/nonprofits/:id.
//
// @Summary      Get one non-profit account
// @Tags         nonprofits
// @Accept       json
// @Produce      json
// @Param        id  path      int  true  "NonProfit ID"
// @Success      200  {object}  Envelope
// @Failure      400  {object}  Envelope
// @Router       /api/nonprofits/{id} [get]
func (h *NonProfitHandler) Get(c echo.Context) error {
	var req struct{ credentials }
	if err := bind(c, &req); err != nil {
		return fail(c, err)
	}
	id, err := pathID(c)
	if err != nil {
		return fail(c, err)
	}
	if _, err := authorize(c, h.auth, getNonProfitPolicy, req.credentials, &id); err != nil {
		return fail(c, err)
	}

	nonprofit, err := h.directory.GetNonProfit(c.Request().Context(), id)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, nonprofit)
}

// Create handles POST /api/nonprofits.
//
// @Summary      Provision a non-profit account
// @Tags         nonprofits
// @Accept       json
// @Produce      json
// @Param        body  body      createNonProfitRequest  true  "New non-profit"
// @Success      200   {object}  Envelope
// @Failure      400   {object}  Envelope
// @Router       /api/nonprofits [post]
func (h *NonProfitHandler) Create(c echo.Context) error {
	var req createNonProfitRequest
	if err := bind(c, &req); err != nil {
		return fail(c, err)
	}
	if _, err := authorize(c, h.auth, createNonProfitPolicy, req.credentials, nil); err != nil {
		return fail(c, err)
	}

	nonprofit, err := h.directory.CreateNonProfit(c.Request().Context(), ports.CreateNonProfitInput{
		Username: req.Username,
		Password: req.Password,
		Name:     req.Name,
		Mission:  req.Mission,
	})
	if err != nil {
		return fail(c, err)
	}
	return ok(c, fmt.Sprintf("here on a post -- create a new entry for %s", nonprofit.Username))
}

// Update handles PUT /api/nonprofits/:id.
//
// @Summary      Update a non-profit account
// @Tags         nonprofits
// @Accept       json
// @Produce      json
// @Param        id    path      int                     true  "NonProfit ID"
// @Param        body  body      updateNonProfitRequest  true  "Fields to change"
// @Success      200   {object}  Envelope
// @Failure      400   {object}  Envelope
// @Router       /api/nonprofits/{id} [put]
func (h *NonProfitHandler) Update(c echo.Context) error {
	var req updateNonProfitRequest
	if err := bind(c, &req); err != nil {
		return fail(c, err)
	}
	id, err := pathID(c)
	if err != nil {
		return fail(c, err)
	}
	if _, err := authorize(c, h.auth, updateNonProfitPolicy, req.credentials, &id); err != nil {
		return fail(c, err)
	}

	in := ports.UpdateNonProfitInput{
		Username: req.Username,
		Password: req.Password,
		Name:     req.Name,
		Mission:  req.Mission,
	}
	if err := h.directory.UpdateNonProfit(c.Request().Context(), id, in); err != nil {
		return fail(c, err)
	}
	return ok(c, fmt.Sprintf("here on a put -- update nonprofit with ID %d", id))
}

// Delete handles DELETE /api/nonprofits/:id.
//
// @Summary      Delete a non-profit account
// @Tags         nonprofits
// @Accept       json
// @Produce      json
// @Param        id  path      int  true  "NonProfit ID"
// @Success      200  {object}  Envelope
// @Failure      400  {object}  Envelope
// @Router       /api/nonprofits/{id} [delete]
func (h *NonProfitHandler) Delete(c echo.Context) error {
	var req struct{ credentials }
	if err := bind(c, &req); err != nil {
		return fail(c, err)
	}
	id, err := pathID(c)
	if err != nil {
		return fail(c, err)
	}
	if _, err := authorize(c, h.auth, deleteNonProfitPolicy, req.credentials, &id); err != nil {
		return fail(c, err)
	}

	if err := h.directory.DeleteNonProfit(c.Request().Context(), id); err != nil {
		return fail(c, err)
	}
	return ok(c, fmt.Sprintf("here on a delete -- remove nonprofit with ID %d", id))
}
