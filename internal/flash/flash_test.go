package flash

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
)

func newContext(e *echo.Echo, cookies ...*http.Cookie) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, ck := range cookies {
		req.AddCookie(ck)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestSetWritesEscapedCookie(t *testing.T) {
	e := echo.New()
	c, rec := newContext(e)

	Set(c, Success, "Booking confirmed! Total: $300.00 for 3 nights.")

	var found *http.Cookie
	for _, ck := range rec.Result().Cookies() {
		if ck.Name == Success {
			found = ck
		}
	}
	if found == nil {
		t.Fatal("Set did not write a flash_success cookie")
	}
	if strings.Contains(found.Value, " ") {
		t.Errorf("cookie value %q contains unescaped spaces", found.Value)
	}
	if !found.HttpOnly {
		t.Error("flash cookie should be HttpOnly")
	}
}

func TestPopReturnsMessageOnceAndClears(t *testing.T) {
	e := echo.New()
	c, rec := newContext(e, &http.Cookie{Name: Error, Value: "Listing%20not%20found%21"})

	if got := Pop(c, Error); got != "Listing not found!" {
		t.Fatalf("Pop = %q, want %q", got, "Listing not found!")
	}

	// The response must expire the cookie so the message is one-shot.
	cleared := false
	for _, ck := range rec.Result().Cookies() {
		if ck.Name == Error && ck.MaxAge < 0 {
			cleared = true
		}
	}
	if !cleared {
		t.Error("Pop did not expire the flash cookie")
	}
}

func TestPopMissingCookie(t *testing.T) {
	e := echo.New()
	c, _ := newContext(e)
	if got := Pop(c, Success); got != "" {
		t.Errorf("Pop on missing cookie = %q, want empty", got)
	}
}

func TestPopAll(t *testing.T) {
	e := echo.New()
	c, _ := newContext(e,
		&http.Cookie{Name: Success, Value: "saved"},
		&http.Cookie{Name: Error, Value: "failed"},
	)
	n := PopAll(c)
	if n.Success != "saved" || n.Error != "failed" {
		t.Errorf("PopAll = %+v, want success=saved error=failed", n)
	}
}
