// Package handler implements the HTTP handlers for auth, listings,
// reviews and bookings.
package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/wanderlust/wanderlust-api/internal/flash"
)

// getUserID extracts the user_id placed in context by SessionAuth.
func getUserID(c echo.Context) (uint64, error) {
	switch t := c.Get("user_id").(type) {
	case uint64:
		return t, nil
	case int:
		return uint64(t), nil
	case int64:
		return uint64(t), nil
	case float64:
		return uint64(t), nil
	case string:
		if n, err := strconv.ParseUint(t, 10, 64); err == nil {
			return n, nil
		}
	}
	return 0, errors.New("invalid user_id in context")
}

// pathID parses a numeric :id style path parameter.
func pathID(c echo.Context, name string) (uint64, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		return 0, errors.New("invalid id")
	}
	return id, nil
}

// redirectWithError flashes a message and redirects; this is how
// missing resources surface in a form-driven flow (never a bare 404).
func redirectWithError(c echo.Context, msg, to string) error {
	flash.Set(c, flash.Error, msg)
	return c.Redirect(http.StatusSeeOther, to)
}

// redirectWithSuccess flashes a confirmation and redirects.
func redirectWithSuccess(c echo.Context, msg, to string) error {
	flash.Set(c, flash.Success, msg)
	return c.Redirect(http.StatusSeeOther, to)
}

// validationFailed renders a 400 with field-level messages, raised
// before anything is persisted.
func validationFailed(c echo.Context, fields map[string]string) error {
	return c.JSON(http.StatusBadRequest, echo.Map{
		"error":  "validation failed",
		"fields": fields,
	})
}
