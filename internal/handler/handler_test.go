package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/wanderlust/wanderlust-api/internal/pricing"
)

func TestConfirmationMessage(t *testing.T) {
	cases := []struct {
		name  string
		quote pricing.Quote
		want  string
	}{
		{"multi night", pricing.Quote{Nights: 3, Total: 300}, "Booking confirmed! Total: $300.00 for 3 nights."},
		{"single night", pricing.Quote{Nights: 1, Total: 99.99}, "Booking confirmed! Total: $99.99 for 1 night."},
		{"fractional rate", pricing.Quote{Nights: 7, Total: 699.93}, "Booking confirmed! Total: $699.93 for 7 nights."},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := confirmationMessage(tc.quote); got != tc.want {
				t.Errorf("confirmationMessage(%+v) = %q, want %q", tc.quote, got, tc.want)
			}
		})
	}
}

func TestListingFormValidate(t *testing.T) {
	ok := listingForm{Title: "Cozy Cabin", Description: "Quiet woods", Price: 120, Location: "Aspen", Country: "USA"}
	if fields := ok.validate(); len(fields) != 0 {
		t.Fatalf("valid form flagged: %v", fields)
	}

	bad := listingForm{Title: "  ", Price: 0, Location: "x", Country: ""}
	fields := bad.validate()
	for _, want := range []string{"title", "description", "price", "country"} {
		if _, present := fields[want]; !present {
			t.Errorf("expected a validation message for %q, got %v", want, fields)
		}
	}
	if _, present := fields["location"]; present {
		t.Errorf("location was provided but still flagged: %v", fields)
	}
}

func TestReviewFormValidate(t *testing.T) {
	cases := []struct {
		name    string
		form    reviewForm
		badKeys []string
	}{
		{"valid", reviewForm{Body: "Great stay", Rating: 5}, nil},
		{"empty body", reviewForm{Body: "   ", Rating: 3}, []string{"body"}},
		{"rating too low", reviewForm{Body: "ok", Rating: 0}, []string{"rating"}},
		{"rating too high", reviewForm{Body: "ok", Rating: 6}, []string{"rating"}},
		{"both bad", reviewForm{}, []string{"body", "rating"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			fields := tc.form.validate()
			if len(fields) != len(tc.badKeys) {
				t.Fatalf("got %d validation messages (%v), want %d", len(fields), fields, len(tc.badKeys))
			}
			for _, k := range tc.badKeys {
				if _, present := fields[k]; !present {
					t.Errorf("missing validation message for %q: %v", k, fields)
				}
			}
		})
	}
}

func TestPathID(t *testing.T) {
	e := echo.New()

	newCtx := func(raw string) echo.Context {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		c := e.NewContext(req, httptest.NewRecorder())
		c.SetParamNames("id")
		c.SetParamValues(raw)
		return c
	}

	if id, err := pathID(newCtx("42"), "id"); err != nil || id != 42 {
		t.Errorf("pathID(42) = %d, %v", id, err)
	}
	for _, raw := range []string{"0", "-1", "abc", ""} {
		if _, err := pathID(newCtx(raw), "id"); err == nil {
			t.Errorf("pathID(%q) accepted an invalid id", raw)
		}
	}
}

func TestValidationFailedResponse(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/listings", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := validationFailed(c, map[string]string{"price": "price must be a positive number"}); err != nil {
		t.Fatalf("validationFailed returned error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "validation failed") || !strings.Contains(body, "price must be a positive number") {
		t.Errorf("unexpected body: %s", body)
	}
}

func TestRedirectWithErrorSetsFlashAndRedirects(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodDelete, "/listings/9", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := redirectWithError(c, "Listing not found!", "/listings"); err != nil {
		t.Fatalf("redirectWithError returned error: %v", err)
	}
	if rec.Code != http.StatusSeeOther {
		t.Errorf("status = %d, want 303", rec.Code)
	}
	if loc := rec.Header().Get(echo.HeaderLocation); loc != "/listings" {
		t.Errorf("Location = %q, want /listings", loc)
	}
	found := false
	for _, ck := range rec.Result().Cookies() {
		if ck.Name == "flash_error" {
			found = true
		}
	}
	if !found {
		t.Error("no flash_error cookie set on error redirect")
	}
}
