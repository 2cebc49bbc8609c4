// Package middleware provides shared request processing: session
// authentication, Redis-backed rate limiting and response caching.
package middleware

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/wanderlust/wanderlust-api/internal/flash"
	"github.com/wanderlust/wanderlust-api/internal/repository"
	"github.com/wanderlust/wanderlust-api/internal/utils"
)

// SessionCookie is the name of the cookie carrying the session JWT,
// matching the cookie name of the original site.
const SessionCookie = "session_id"

// SessionAuth returns middleware that authenticates a request from the
// session cookie (or an Authorization bearer header for API clients).
// The token signature and expiry are checked first, then the session's
// jti hash is validated against session_tokens so that logged-out
// sessions are rejected.  On success the user id and username are
// stored in the context under "user_id" and "username".  Failures
// redirect to /login with an error flash rather than returning a raw
// 401; this is a form-driven application.
func SessionAuth(secret string, tokens *repository.TokenRepo) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			raw := ""
			if ck, err := c.Cookie(SessionCookie); err == nil {
				raw = ck.Value
			}
			if raw == "" {
				if auth := c.Request().Header.Get("Authorization"); strings.HasPrefix(auth, "Bearer ") {
					raw = strings.TrimPrefix(auth, "Bearer ")
				}
			}
			if raw == "" {
				return RedirectToLogin(c)
			}

			uid, name, jti, err := utils.ParseSession(secret, raw)
			if err != nil {
				return RedirectToLogin(c)
			}

			// Reject sessions revoked by logout.
			ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
			defer cancel()
			if _, err := tokens.ValidateSession(ctx, utils.HashSessionID(jti)); err != nil {
				return RedirectToLogin(c)
			}

			c.Set("user_id", uid)
			c.Set("username", name)
			return next(c)
		}
	}
}

// RedirectToLogin flashes the login prompt and redirects.  Exported so
// handlers can reuse the exact same unauthenticated behaviour.
func RedirectToLogin(c echo.Context) error {
	flash.Set(c, flash.Error, "You must be logged in first!")
	return c.Redirect(http.StatusSeeOther, "/login")
}
