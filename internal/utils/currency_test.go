package utils

import "testing"

func TestFormatCents(t *testing.T) {
	cases := []struct {
		cents int64
		want  string
	}{
		{0, "$0.00"},
		{5, "$0.05"},
		{5000, "$50.00"},
		{123450, "$1,234.50"},
		{110000, "$1,100.00"},
		{1000000000, "$10,000,000.00"},
		{-123450, "-$1,234.50"},
	}
	for _, tc := range cases {
		if got := FormatCents(tc.cents); got != tc.want {
			t.Errorf("FormatCents(%d) = %q, want %q", tc.cents, got, tc.want)
		}
	}
}
