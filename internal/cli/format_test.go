package cli

import (
	"math"
	"testing"
)

func TestFormatMoney(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{0, "$0"},
		{5, "$5"},
		{1234, "$1,234"},
		{1234.6, "$1,235"},
		{2000000, "$2,000,000"},
		{-500, "-$500"},
		{-1234.4, "-$1,234"},
		{math.NaN(), "$0"},
		{math.Inf(1), "$0"},
	}
	for _, tc := range cases {
		if got := FormatMoney(tc.in); got != tc.want {
			t.Errorf("FormatMoney(%v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestFormatNumber(t *testing.T) {
	cases := []struct {
		in   int64
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1,000"},
		{1234567, "1,234,567"},
		{-4200, "-4,200"},
	}
	for _, tc := range cases {
		if got := FormatNumber(tc.in); got != tc.want {
			t.Errorf("FormatNumber(%d) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestFormatPercent(t *testing.T) {
	if got := FormatPercent(0.5); got != "50%" {
		t.Errorf("FormatPercent(0.5) = %q", got)
	}
	if got := FormatPercent(1); got != "100%" {
		t.Errorf("FormatPercent(1) = %q", got)
	}
}
