// Package flash implements one-shot notification messages.  A message
// is written as a short-lived cookie on a redirect response and cleared
// the first time it is read, so it surfaces on exactly one subsequent
// page.  Handlers pass the popped Notice around explicitly instead of
// relying on ambient request state.
package flash

import (
	"net/http"
	"net/url"

	"github.com/labstack/echo/v4"
)

// Cookie names for the two message channels.
const (
	Success = "flash_success"
	Error   = "flash_error"
)

// cookie lifetime; flashes are meant to survive exactly one redirect.
const maxAge = 300

// Notice carries the one-shot messages collected for the current
// request.  Zero value means nothing to show.
type Notice struct {
	Success string `json:"success,omitempty"`
	Error   string `json:"error,omitempty"`
}

// Set queues a message under the given channel.  The value is escaped
// because cookie values cannot carry spaces or punctuation verbatim.
func Set(c echo.Context, name, msg string) {
	c.SetCookie(&http.Cookie{
		Name:     name,
		Value:    url.QueryEscape(msg),
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
	})
}

// Pop returns the queued message for a channel and expires its cookie
// so the message is never shown twice.  Missing or undecodable cookies
// yield an empty string.
func Pop(c echo.Context, name string) string {
	ck, err := c.Cookie(name)
	if err != nil || ck.Value == "" {
		return ""
	}
	// Expire the cookie on this response.
	c.SetCookie(&http.Cookie{
		Name:     name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})
	msg, err := url.QueryUnescape(ck.Value)
	if err != nil {
		return ""
	}
	return msg
}

// PopAll drains both channels into a Notice for the current request.
func PopAll(c echo.Context) Notice {
	return Notice{
		Success: Pop(c, Success),
		Error:   Pop(c, Error),
	}
}
