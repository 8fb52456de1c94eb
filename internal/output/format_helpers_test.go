//go:build unit

package output

import (
	"math"
	"testing"
)

func TestFormatCurrency(t *testing.T) {
	v := 1234567.567
	got := FormatCurrency(v)
	want := "₹12,34,567.57"
	if got != want {
		t.Errorf("FormatCurrency(%v) = %q, want %q", v, got, want)
	}
	if got := FormatCurrency(math.NaN()); got != "NaN" {
		t.Errorf("FormatCurrency(NaN) = %q", got)
	}
}

func TestFormatPercentage(t *testing.T) {
	v := 0.125
	got := FormatPercentage(v)
	want := "12.5%"
	if got != want {
		t.Errorf("FormatPercentage(%v) = %q, want %q", v, got, want)
	}
}

func TestFormatNumber(t *testing.T) {
	cases := map[float64]string{
		1234567.891234: "12,34,567.891",
		-4500.5:        "-4,500.5",
		42:             "42",
	}
	for in, want := range cases {
		if got := FormatNumber(in); got != want {
			t.Errorf("FormatNumber(%v) = %q, want %q", in, got, want)
		}
	}
}
