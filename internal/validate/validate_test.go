package validate_test

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"wrenchbill/internal/validate"
)

func TestSanitize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "Plain", in: "Oil Change", want: "Oil Change"},
		{name: "StripsAngleBrackets", in: "<script>alert(1)</script>", want: "scriptalert(1)/script"},
		{name: "StripsQuotes", in: `Jane "JD" O'Hara`, want: "Jane JD OHara"},
		{name: "TrimsWhitespace", in: "  Brake Pads  ", want: "Brake Pads"},
		{name: "Empty", in: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, validate.Sanitize(tt.in))
		})
	}
}

func TestSanitize_CapsLength(t *testing.T) {
	long := strings.Repeat("a", 600)
	assert.Len(t, validate.Sanitize(long), validate.MaxInputLength)
}

func TestSanitizeN(t *testing.T) {
	assert.Equal(t, "abc", validate.SanitizeN("abcdef", 3))
	assert.Equal(t, "abc", validate.SanitizeN("abc", 100))
}

func TestEmail(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"john@email.com", true},
		{"a@b.co", true},
		{"not-an-email", false},
		{"@email.com", false},
		{"john@email", false},
		{"john@@email.com", false},
		{"john smith@email.com", false},
		{"john@email.", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, validate.Email(tt.in))
		})
	}
}

func TestPhone(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"5551234567", true},
		{"555-123-4567", true},
		{"(555) 123-4567", true},
		{"555-1234", false},          // too short
		{"55512345678901234", false}, // too long
		{"555-123-456a", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, validate.Phone(tt.in))
		})
	}
}

func TestNumeric(t *testing.T) {
	min := decimal.Zero
	max := decimal.NewFromInt(999)

	d, ok := validate.Numeric("42.5", min, max)
	assert.True(t, ok)
	assert.True(t, d.Equal(decimal.NewFromFloat(42.5)))

	_, ok = validate.Numeric("1500", min, max)
	assert.False(t, ok)

	_, ok = validate.Numeric("-1", min, max)
	assert.False(t, ok)

	_, ok = validate.Numeric("abc", min, max)
	assert.False(t, ok)

	_, ok = validate.Numeric("", min, max)
	assert.False(t, ok)
}
