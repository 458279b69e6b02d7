package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/reliefworks/donation-system/internal/core/ports"
)

// RoleHandler answers "who am I" for CLI clients that need to branch on role
// before making further calls.
type RoleHandler struct {
	auth ports.AuthService
}

func NewRoleHandler(auth ports.AuthService) *RoleHandler {
	return &RoleHandler{auth: auth}
}

type roleRequest struct {
	credentials
}

type roleResponse struct {
	Role string `json:"Role"`
	ID   int64  `json:"ID"`
}

// Get handles GET /api/role.
//
// @Summary      Resolve the caller's role and identity
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      roleRequest  true  "Credentials"
// @Success      200   {object}  Envelope
// @Failure      400   {object}  Envelope
// @Router       /api/role [get]
func (h *RoleHandler) Get(c echo.Context) error {
	var req roleRequest
	if err := bind(c, &req); err != nil {
		return fail(c, err)
	}

	decision, err := h.auth.Authenticate(c.Request().Context(), req.domain(), nil)
	if err != nil {
		return fail(c, err)
	}

	return ok(c, roleResponse{Role: string(decision.Role), ID: decision.ID})
}

// Greeting handles GET /, kept for clients that probe the root path.
func Greeting(c echo.Context) error {
	return c.String(http.StatusOK, "Yo! This my API. Call it right, or don't call it at all!")
}
