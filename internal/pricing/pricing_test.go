package pricing

import (
	"errors"
	"testing"
	"time"
)

func date(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := ParseDate(s)
	if err != nil {
		t.Fatalf("ParseDate(%q) failed: %v", s, err)
	}
	return d
}

func TestParseDate(t *testing.T) {
	if _, err := ParseDate("2024-01-01"); err != nil {
		t.Errorf("ParseDate(2024-01-01) = %v, want nil", err)
	}
	for _, bad := range []string{"", "01/01/2024", "2024-13-40", "tomorrow"} {
		if _, err := ParseDate(bad); !errors.Is(err, ErrInvalidDate) {
			t.Errorf("ParseDate(%q) = %v, want ErrInvalidDate", bad, err)
		}
	}
}

func TestQuoteStay(t *testing.T) {
	tests := []struct {
		name       string
		rate       float64
		in, out    string
		wantNights int
		wantTotal  float64
	}{
		{"three nights at 100", 100, "2024-01-01", "2024-01-04", 3, 300},
		{"single night", 100, "2024-01-01", "2024-01-02", 1, 100},
		{"inverted range clamps to one night", 100, "2024-01-04", "2024-01-01", 1, 100},
		{"same-day stay clamps to one night", 100, "2024-01-01", "2024-01-01", 1, 100},
		{"week at fractional rate", 99.99, "2024-03-01", "2024-03-08", 7, 699.93},
		{"month boundary", 80, "2024-02-27", "2024-03-02", 4, 320},
		{"cheap rate rounds to cents", 33.335, "2024-01-01", "2024-01-03", 2, 66.67},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := QuoteStay(tt.rate, date(t, tt.in), date(t, tt.out))
			if q.Nights != tt.wantNights {
				t.Errorf("Nights = %d, want %d", q.Nights, tt.wantNights)
			}
			if q.Total != tt.wantTotal {
				t.Errorf("Total = %v, want %v", q.Total, tt.wantTotal)
			}
		})
	}
}

func TestNightsNeverZeroOrNegative(t *testing.T) {
	base := date(t, "2024-06-15")
	for d := -10; d <= 10; d++ {
		out := base.AddDate(0, 0, d)
		if n := Nights(base, out); n < 1 {
			t.Errorf("Nights(base, base%+dd) = %d, want >= 1", d, n)
		}
	}
}

func TestWholeDayCountsHaveNoRoundingDrift(t *testing.T) {
	in := date(t, "2024-01-01")
	for n := 1; n <= 30; n++ {
		q := QuoteStay(125, in, in.AddDate(0, 0, n))
		if q.Total != float64(125*n) {
			t.Errorf("QuoteStay(125, %d days).Total = %v, want %d", n, q.Total, 125*n)
		}
	}
}
