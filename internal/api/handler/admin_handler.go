package handler

import (
	"fmt"

	"github.com/labstack/echo/v4"

	"github.com/reliefworks/donation-system/internal/core/domain"
	"github.com/reliefworks/donation-system/internal/core/ports"
)

// AdminHandler serves /api/admins. Provisioning is admin-only; an admin may
// also read and update their own row through the per-row routes.
type AdminHandler struct {
	auth      ports.AuthService
	directory ports.DirectoryService
}

func NewAdminHandler(auth ports.AuthService, directory ports.DirectoryService) *AdminHandler {
	return &AdminHandler{auth: auth, directory: directory}
}

var (
	listAdminsPolicy  = domain.RequireRole("GET", "admins", domain.RoleAdmin)
	getAdminPolicy    = domain.RequireRole("GET", "admins/:id", domain.RoleAdmin).OrSelf(domain.RoleAdmin)
	createAdminPolicy = domain.RequireRole("POST", "admins", domain.RoleAdmin)
	updateAdminPolicy = domain.RequireRole("PUT", "admins/:id", domain.RoleAdmin).OrSelf(domain.RoleAdmin)
	deleteAdminPolicy = domain.RequireRole("DELETE", "admins/:id", domain.RoleAdmin)
)

type createAdminRequest struct {
	credentials
	Username string `json:"Username" validate:"required"`
	Password string `json:"Password" validate:"required"`
	Name     string `json:"Name"`
}

type updateAdminRequest struct {
	credentials
	Username *string `json:"Username"`
	Password *string `json:"Password"`
	Name     *string `json:"Name"`
}

// List handles GET /api/admins.
//
// @Summary      List admin accounts
// @Tags         admins
// @Accept       json
// @Produce      json
// @Success      200  {object}  Envelope
// @Failure      400  {object}  Envelope
// @Router       /api/admins [get]
func (h *AdminHandler) List(c echo.Context) error {
	var req struct{ credentials }
	if err := bind(c, &req); err != nil {
		return fail(c, err)
	}
	if _, err := authorize(c, h.auth, listAdminsPolicy, req.credentials, nil); err != nil {
		return fail(c, err)
	}

	admins, err := h.directory.ListAdmins(c.Request().Context())
	if err != nil {
		return fail(c, err)
	}
	return ok(c, admins)
}

// Get handles GET /api/admins/:id.
//
// @Summary      Get one admin account
// @Tags         admins
// @Accept       json
// @Produce      json
// @Param        id  path      int  true  "Admin ID"
// @Success      200  {object}  Envelope
// @Failure      400  {object}  Envelope
// @Router       /api/admins/{id} [get]
func (h *AdminHandler) Get(c echo.Context) error {
	var req struct{ credentials }
	if err := bind(c, &req); err != nil {
		return fail(c, err)
	}
	id, err := pathID(c)
	if err != nil {
		return fail(c, err)
	}
	if _, err := authorize(c, h.auth, getAdminPolicy, req.credentials, &id); err != nil {
		return fail(c, err)
	}

	admin, err := h.directory.GetAdmin(c.Request().Context(), id)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, admin)
}

// Create handles POST /api/admins.
//
// @Summary      Provision an admin account
// @Tags         admins
// @Accept       json
// @Produce      json
// @Param        body  body      createAdminRequest  true  "New admin"
// @Success      200   {object}  Envelope
// @Failure      400   {object}  Envelope
// @Router       /api/admins [post]
func (h *AdminHandler) Create(c echo.Context) error {
	var req createAdminRequest
	if err := bind(c, &req); err != nil {
		return fail(c, err)
	}
	if _, err := authorize(c, h.auth, createAdminPolicy, req.credentials, nil); err != nil {
		return fail(c, err)
	}

	admin, err := h.directory.CreateAdmin(c.Request().Context(), ports.CreateAdminInput{
		Username: req.Username,
		Password: req.Password,
		Name:     req.Name,
	})
	if err != nil {
		return fail(c, err)
	}
	return ok(c, fmt.Sprintf("here on a post -- create a new entry for %s", admin.Username))
}

// Update handles PUT /api/admins/:id. A present Password field is stored as a
// digest only.
//
// @Summary      Update an admin account
// @Tags         admins
// @Accept       json
// @Produce      json
// @Param        id    path      int                 true  "Admin ID"
// @Param        body  body      updateAdminRequest  true  "Fields to change"
// @Success      200   {object}  Envelope
// @Failure      400   {object}  Envelope
// @Router       /api/admins/{id} [put]
func (h *AdminHandler) Update(c echo.Context) error {
	var req updateAdminRequest
	if err := bind(c, &req); err != nil {
		return fail(c, err)
	}
	id, err := pathID(c)
	if err != nil {
		return fail(c, err)
	}
	if _, err := authorize(c, h.auth, updateAdminPolicy, req.credentials, &id); err != nil {
		return fail(c, err)
	}

	in := ports.UpdateAdminInput{Username: req.Username, Password: req.Password, Name: req.Name}
	if err := h.directory.UpdateAdmin(c.Request().Context(), id, in); err != nil {
		return fail(c, err)
	}
	return ok(c, fmt.Sprintf("here on a put -- update admin with ID %d", id))
}

// Delete handles DELETE /api/admins/:id.
//
// @Summary      Delete an admin account
// @Tags         admins
// @Accept       json
// @Produce      json
// @Param        id  path      int  true  "Admin ID"
// @Success      200  {object}  Envelope
// @Failure      400  {object}  Envelope
// @Router       /api/admins/{id} [delete]
func (h *AdminHandler) Delete(c echo.Context) error {
	var req struct{ credentials }
	if err := bind(c, &req); err != nil {
		return fail(c, err)
	}
	id, err := pathID(c)
	if err != nil {
		return fail(c, err)
	}
	if _, err := authorize(c, h.auth, deleteAdminPolicy, req.credentials, &id); err != nil {
		return fail(c, err)
	}

	if err := h.directory.DeleteAdmin(c.Request().Context(), id); err != nil {
		return fail(c, err)
	}
	return ok(c, fmt.Sprintf("here on a delete -- remove admin with ID %d", id))
}
