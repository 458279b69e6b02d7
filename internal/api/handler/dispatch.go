package handler

import (
	"fmt"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/reliefworks/donation-system/internal/core/domain"
	"github.com/reliefworks/donation-system/internal/core/ports"
)

// credentials is the auth pair embedded in every request body. The fields are
// consumed here and never forwarded to a service or a store.
type credentials struct {
	AuthUsername string `json:"AuthUsername" validate:"required"`
	AuthPassword string `json:"AuthPassword" validate:"required"`
}

func (cr credentials) domain() domain.Credentials {
	return domain.Credentials{Username: cr.AuthUsername, Password: cr.AuthPassword}
}

// bind binds and presence-checks the request body.
func bind(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return domain.Denial{Reason: "invalid payload"}
	}
	if err := c.Validate(req); err != nil {
		return domain.Denial{Reason: err.Error()}
	}
	return nil
}

// pathID parses the :id path parameter strictly to int64. Identity comparison
// downstream is numeric only; a non-numeric parameter is rejected before the
// store is touched.
func pathID(c echo.Context) (int64, error) {
	raw := c.Param("id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, domain.Denial{Reason: fmt.Sprintf("invalid id %q in path", raw)}
	}
	return id, nil
}

// authorize runs the shared Resolving -> Evaluating portion of the request
// state machine: authenticate the embedded credentials against the optional
// target identity, then apply the handler's declared policy. On success the
// handler proceeds to its single store operation; any error is terminal for
// the request.
func authorize(c echo.Context, auth ports.AuthService, pol domain.Policy, creds credentials, targetID *int64) (domain.AuthDecision, error) {
	decision, err := auth.Authenticate(c.Request().Context(), creds.domain(), targetID)
	if err != nil {
		return domain.AuthDecision{}, err
	}
	if !pol.Permits(decision) {
		return domain.AuthDecision{}, pol.Deny()
	}
	return decision, nil
}
