// Package parts is the searchable catalog of auto parts with a
// price-staleness policy: a price not refreshed in six weeks is flagged for
// review, never corrected automatically.
package parts

import (
	"time"

	"github.com/shopspring/decimal"
)

// StaleAfter is how long a price stays trustworthy. Six weeks.
const StaleAfter = 42 * 24 * time.Hour

// Part is one catalog entry. Duplicate part numbers are allowed.
type Part struct {
	PartNumber   string          `json:"partNumber"`
	Manufacturer string          `json:"manufacturer"`
	Description  string          `json:"description"`
	Price        decimal.Decimal `json:"price"`
	Category     string          `json:"category"`
	LastUpdated  *time.Time      `json:"lastUpdated,omitempty"`
}

// Stale reports whether the price is older than StaleAfter relative to now.
// A part with no timestamp is always stale. Derived on every call, never
// cached.
func (p Part) Stale(now time.Time) bool {
	if p.LastUpdated == nil {
		return true
	}

	return p.LastUpdated.Before(now.Add(-StaleAfter))
}

// LineDescription is how a part reads when placed on an invoice line.
func (p Part) LineDescription() string {
	return p.PartNumber + " - " + p.Description + " (" + p.Manufacturer + ")"
}
