package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/reliefworks/donation-system/internal/api/handler"
)

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that catches anything
// a handler did not convert itself (unknown routes, malformed requests,
// panics surfaced by Recover) and renders the same envelope the handlers
// emit. The wire contract collapses every failure to status 400.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		reason := resolveError(err, log, c)
		_ = c.JSON(http.StatusBadRequest, handler.Envelope{Status: http.StatusBadRequest, Error: &reason})
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) string {
	// Echo's own errors (bind failures, 404 from the router, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return fmt.Sprintf("%v", he.Message)
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return "internal server error"
}
