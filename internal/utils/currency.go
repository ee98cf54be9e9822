package utils

import "fmt"

// FormatCents renders an integer cent amount as a dollar string,
// e.g. 123450 -> "$1,234.50".  Negative amounts keep the sign in
// front of the currency symbol.
func FormatCents(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	whole := cents / 100
	frac := cents % 100
	return fmt.Sprintf("%s$%s.%02d", sign, groupThousands(whole), frac)
}

// groupThousands inserts comma separators into a non-negative integer.
func groupThousands(n int64) string {
	s := fmt.Sprintf("%d", n)
	if len(s) <= 3 {
		return s
	}
	first := len(s) % 3
	if first == 0 {
		first = 3
	}
	out := s[:first]
	for i := first; i < len(s); i += 3 {
		out += "," + s[i:i+3]
	}
	return out
}
