package validate

import (
	"strings"

	"github.com/shopspring/decimal"
)

// MaxInputLength is the hard cap applied to every sanitized string.
// Individual form fields enforce tighter caps on top of this.
const MaxInputLength = 500

// Sanitize strips characters that could break downstream rendering or
// URI construction, trims surrounding whitespace, and caps the length.
func Sanitize(s string) string {
	s = strings.Map(func(r rune) rune {
		switch r {
		case '<', '>', '"', '\'':
			return -1
		}

		return r
	}, s)

	s = strings.TrimSpace(s)

	if len(s) > MaxInputLength {
		s = s[:MaxInputLength]
	}

	return s
}

// SanitizeN sanitizes and additionally caps the result at n characters.
func SanitizeN(s string, n int) string {
	s = Sanitize(s)
	if len(s) > n {
		s = s[:n]
	}

	return s
}

// Email reports whether s looks like a deliverable address: exactly one @,
// a non-empty local part, and a domain containing a dot. No whitespace.
func Email(s string) bool {
	if s == "" || strings.ContainsAny(s, " \t\n") {
		return false
	}

	at := strings.Index(s, "@")
	if at <= 0 || at != strings.LastIndex(s, "@") {
		return false
	}

	domain := s[at+1:]

	dot := strings.Index(domain, ".")

	return dot > 0 && dot < len(domain)-1
}

// Phone reports whether s is a plausible phone number: only digits and the
// separators -() and spaces, 10 to 15 characters once spaces are removed,
// and at least 10 actual digits.
func Phone(s string) bool {
	compact := strings.ReplaceAll(s, " ", "")
	if len(compact) < 10 || len(compact) > 15 {
		return false
	}

	digits := 0

	for _, r := range compact {
		switch {
		case r >= '0' && r <= '9':
			digits++
		case r == '-' || r == '(' || r == ')':
		default:
			return false
		}
	}

	return digits >= 10
}

// Numeric parses s as a decimal number and reports whether it falls within
// [min, max]. Anything unparseable is rejected.
func Numeric(s string, min, max decimal.Decimal) (decimal.Decimal, bool) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Zero, false
	}

	if d.LessThan(min) || d.GreaterThan(max) {
		return decimal.Zero, false
	}

	return d, true
}
