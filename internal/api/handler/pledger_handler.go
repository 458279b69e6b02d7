package handler

import (
	"fmt"

	"github.com/labstack/echo/v4"

	"github.com/reliefworks/donation-system/internal/core/domain"
	"github.com/reliefworks/donation-system/internal/core/ports"
)

// PledgerHandler serves /api/pledgers. Provisioning is admin-only; a pledger
// may read and update their own row.
type PledgerHandler struct {
	auth      ports.AuthService
	directory ports.DirectoryService
}

func NewPledgerHandler(auth ports.AuthService, directory ports.DirectoryService) *PledgerHandler {
	return &PledgerHandler{auth: auth, directory: directory}
}

var (
	listPledgersPolicy  = domain.RequireRole("GET", "pledgers", domain.RoleAdmin)
	getPledgerPolicy    = domain.RequireRole("GET", "pledgers/:id", domain.RoleAdmin).OrSelf(domain.RolePledger)
	createPledgerPolicy = domain.RequireRole("POST", "pledgers", domain.RoleAdmin)
	updatePledgerPolicy = domain.RequireRole("PUT", "pledgers/:id", domain.RoleAdmin).OrSelf(domain.RolePledger)
	deletePledgerPolicy = domain.RequireRole("DELETE", "pledgers/:id", domain.RoleAdmin)
)

type createPledgerRequest struct {
	credentials
	Username string `json:"Username" validate:"required"`
	Password string `json:"Password" validate:"required"`
	Name     string `json:"Name"`
	Email    string `json:"Email"`
}

type updatePledgerRequest struct {
	credentials
	Username *string `json:"Username"`
	Password *string `json:"Password"`
	Name     *string `json:"Name"`
	Email    *string `json:"Email"`
}

// List handles GET /api/pledgers.
//
// @Summary      List pledger accounts
// @Tags         pledgers
// @Accept       json
// @Produce      json
// @Success      200  {object}  Envelope
// @Failure      400  {object}  Envelope
// @Router       /api/pledgers [get]
func (h *PledgerHandler) List(c echo.Context) error {
	var req struct{ credentials }
	if err := bind(c, &req); err != nil {
		return fail(c, err)
	}
	if _, err := authorize(c, h.auth, listPledgersPolicy, req.credentials, nil); err != nil {
		return fail(c, err)
	}

	pledgers, err := h.directory.ListPledgers(c.Request().Context())
	if err != nil {
		return fail(c, err)
	}
	return ok(c, pledgers)
}

// Get handles GET /api/pledgers/:id.
//
// @Summary      Get one pledger account
// @Tags         pledgers
// @Accept       json
// @Produce      json
// @Param        id  path      int  true  "Pledger ID"
// @Success      200  {object}  Envelope
// @Failure      400  {object}  Envelope
// @Router       /api/pledgers/{id} [get]
func (h *PledgerHandler) Get(c echo.Context) error {
	var req struct{ credentials }
	if err := bind(c, &req); err != nil {
		return fail(c, err)
	}
	id, err := pathID(c)
	if err != nil {
		return fail(c, err)
	}
	if _, err := authorize(c, h.auth, getPledgerPolicy, req.credentials, &id); err != nil {
		return fail(c, err)
	}

	pledger, err := h.directory.GetPledger(c.Request().Context(), id)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, pledger)
}

// Create handles POST /api/pledgers.
//
// @Summary      Provision a pledger account
// @Tags         pledgers
// @Accept       json
// @Produce      json
// @Param        body  body      createPledgerRequest  true  "New pledger"
// @Success      200   {object}  Envelope
// @Failure      400   {object}  Envelope
// @Router       /api/pledgers [post]
func (h *PledgerHandler) Create(c echo.Context) error {
	var req createPledgerRequest
	if err := bind(c, &req); err != nil {
		return fail(c, err)
	}
	if _, err := authorize(c, h.auth, createPledgerPolicy, req.credentials, nil); err != nil {
		return fail(c, err)
	}

	pledger, err := h.directory.CreatePledger(c.Request().Context(), ports.CreatePledgerInput{
		Username: req.Username,
		Password: req.Password,
		Name:     req.Name,
		Email:    req.Email,
	})
	if err != nil {
		return fail(c, err)
	}
	return ok(c, fmt.Sprintf("here on a post -- create a new entry for %s", pledger.Username))
}

// Update handles PUT /api/pledgers/:id.
//
// @Summary      Update a pledger account
// @Tags         pledgers
// @Accept       json
// @Produce      json
// @Param        id    path      int                   true  "Pledger ID"
// @Param        body  body      updatePledgerRequest  true  "Fields to change"
// @Success      200   {object}  Envelope
// @Failure      400   {object}  Envelope
// @Router       /api/pledgers/{id} [put]
func (h *PledgerHandler) Update(c echo.Context) error {
	var req updatePledgerRequest
	if err := bind(c, &req); err != nil {
		return fail(c, err)
	}
	id, err := pathID(c)
	if err != nil {
		return fail(c, err)
	}
	if _, err := authorize(c, h.auth, updatePledgerPolicy, req.credentials, &id); err != nil {
		return fail(c, err)
	}

	in := ports.UpdatePledgerInput{
		Username: req.Username,
		Password: req.Password,
		Name:     req.Name,
		Email:    req.Email,
	}
	if err := h.directory.UpdatePledger(c.Request().Context(), id, in); err != nil {
		return fail(c, err)
	}
	return ok(c, fmt.Sprintf("here on a put -- update pledger with ID %d", id))
}

// Delete handles DELETE /api/pledgers/:id.
//
// @Summary      Delete a pledger account
// @Tags         pledgers
// @Accept       json
// @Produce      json
// @Param        id  path      int  true  "Pledger ID"
// @Success      200  {object}  Envelope
// @Failure      400  {object}  Envelope
// @Router       /api/pledgers/{id} [delete]
func (h *PledgerHandler) Delete(c echo.Context) error {
	var req struct{ credentials }
	if err := bind(c, &req); err != nil {
		return fail(c, err)
	}
	id, err := pathID(c)
	if err != nil {
		return fail(c, err)
	}
	if _, err := authorize(c, h.auth, deletePledgerPolicy, req.credentials, &id); err != nil {
		return fail(c, err)
	}

	if err := h.directory.DeletePledger(c.Request().Context(), id); err != nil {
		return fail(c, err)
	}
	return ok(c, fmt.Sprintf("here on a delete -- remove pledger with ID %d", id))
}
