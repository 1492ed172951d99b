package pricelist

import (
	"strings"

	"github.com/shopspring/decimal"
)

// parseUSAmount parses a US-formatted price string. Format examples:
// "$1,234.56", "45.99", " 12.50 ".
func parseUSAmount(s string) (decimal.Decimal, error) {
	clean := strings.TrimSpace(s)
	clean = strings.TrimPrefix(clean, "$")
	clean = strings.ReplaceAll(clean, ",", "")

	return decimal.NewFromString(clean)
}
