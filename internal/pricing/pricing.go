// Package pricing computes booking totals.  It is the single place in
// the codebase where a stay total is derived; handlers and repositories
// must not reimplement the calculation.
package pricing

import (
	"errors"
	"math"
	"time"
)

// DateLayout is the wire format for check-in/check-out form fields.
const DateLayout = "2006-01-02"

// ErrInvalidDate is returned when a check-in or check-out value is
// missing or does not parse as a date.
var ErrInvalidDate = errors.New("invalid date")

// Quote is the result of pricing a stay.
type Quote struct {
	Nights int     // whole nights charged, never below 1
	Total  float64 // Nights × nightly rate, rounded to 2 decimals
}

// ParseDate parses a form date value.  Empty or malformed input yields
// ErrInvalidDate.
func ParseDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, ErrInvalidDate
	}
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return t, nil
}

// Nights returns the number of whole nights between check-in and
// check-out, rounding partial days up.  A check-out on or before the
// check-in charges exactly one night; the clamp is deliberate policy
// carried over from the original site, not input validation.
func Nights(checkIn, checkOut time.Time) int {
	n := int(math.Ceil(checkOut.Sub(checkIn).Hours() / 24))
	if n < 1 {
		return 1
	}
	return n
}

// QuoteStay prices a stay at the given nightly rate.  The rate must be
// positive; listings enforce that at creation time.  The computation is
// pure and deterministic: for n whole days the total is exactly rate×n.
func QuoteStay(rate float64, checkIn, checkOut time.Time) Quote {
	n := Nights(checkIn, checkOut)
	return Quote{Nights: n, Total: round2(rate * float64(n))}
}

// round2 rounds to 2 decimal places for currency display.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
