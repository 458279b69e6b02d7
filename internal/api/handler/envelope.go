package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/reliefworks/donation-system/internal/api/metrics"
	"github.com/reliefworks/donation-system/internal/core/domain"
)

// Envelope is the uniform wire wrapper around every outcome. Status is
// mirrored as the HTTP status code; only 200 and 400 are ever emitted.
// Callers rely on this shape, including the collapse of client- and
// server-caused failures into 400.
type Envelope struct {
	Status   int     `json:"status"`
	Error    *string `json:"error"`
	Response any     `json:"response"`
}

// ok writes the success envelope.
func ok(c echo.Context, payload any) error {
	return c.JSON(http.StatusOK, Envelope{Status: http.StatusOK, Response: payload})
}

// fail converts any evaluator or service error into the failure envelope.
// Denials keep their reason verbatim; store failures pass through the
// driver diagnostic verbatim.
func fail(c echo.Context, err error) error {
	var reason string

	var denial domain.Denial
	var storeErr *domain.StoreError
	switch {
	case errors.As(err, &denial):
		metrics.DenialsTotal.WithLabelValues(denialKind(denial.Reason)).Inc()
		reason = denial.Reason
	case errors.As(err, &storeErr):
		metrics.StoreFailuresTotal.WithLabelValues(storeErr.Op).Inc()
		reason = storeErr.Err.Error()
	default:
		reason = err.Error()
	}

	return c.JSON(http.StatusBadRequest, Envelope{Status: http.StatusBadRequest, Error: &reason})
}

func denialKind(reason string) string {
	switch reason {
	case domain.ReasonUsernameNotFound:
		return "username_not_found"
	case domain.ReasonIncorrectPassword:
		return "incorrect_password"
	default:
		return "policy"
	}
}
