// Package render turns a document snapshot into its export artifacts. Every
// renderer is a pure function: same snapshot, same bytes. Renderers never
// fail on well-formed input; a document with no billable items renders 0.00
// totals. Malformed quantities and prices cannot reach this package, range
// validation happens at entry.
package render

import "time"

// Fixed accounting constants baked into the QuickBooks formats. These are
// part of the frozen wire contract, not configuration.
const (
	paymentTerms = "Net 30"
	dueDays      = 30
	repName      = "Mechanic"
	className    = "Service"
	shipVia      = "Standard"
	taxCode      = "Tax"
)

const dateLayout = time.DateOnly

func dueDate(date time.Time) string {
	return date.AddDate(0, 0, dueDays).Format(dateLayout)
}
