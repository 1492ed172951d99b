package render

import (
	"fmt"
	"strings"

	"wrenchbill/internal/document"
)

// Text renders the human-readable form sent over message, mail, and
// clipboard channels.
func Text(snap document.Snapshot) []byte {
	var sb strings.Builder

	kind := strings.ToUpper(string(snap.Kind))
	fmt.Fprintf(&sb, "%s %s\n", kind, snap.Number)
	fmt.Fprintf(&sb, "Date: %s\n\n", snap.Date.Format(dateLayout))

	billTo := "Bill To"
	if snap.Kind == document.KindQuote {
		billTo = "Quote For"
	}

	fmt.Fprintf(&sb, "%s: %s\n", billTo, snap.Customer.Name)

	if snap.Customer.Phone != "" {
		fmt.Fprintf(&sb, "Phone: %s\n", snap.Customer.Phone)
	}

	if snap.Customer.Email != "" {
		fmt.Fprintf(&sb, "Email: %s\n", snap.Customer.Email)
	}

	sb.WriteString("\nItems:\n")
	sb.WriteString("------------------------\n")

	for _, it := range snap.BillableItems() {
		fmt.Fprintf(&sb, "%s\n", it.Description)
		fmt.Fprintf(&sb, "  Qty: %s × $%s = $%s\n",
			it.Quantity.String(), it.UnitPrice.StringFixed(2), it.Total().StringFixed(2))
	}

	sb.WriteString("------------------------\n")
	fmt.Fprintf(&sb, "Subtotal: $%s\n", snap.Subtotal().StringFixed(2))
	fmt.Fprintf(&sb, "Tax (8%%): $%s\n", snap.Tax().StringFixed(2))
	fmt.Fprintf(&sb, "TOTAL: $%s\n", snap.Total().StringFixed(2))

	if len(snap.Attachments) > 0 {
		fmt.Fprintf(&sb, "\nAttachments: %d file(s)\n", len(snap.Attachments))

		for _, a := range snap.Attachments {
			fmt.Fprintf(&sb, "- %s (%.2fMB)\n", a.Name, a.SizeMB)
		}
	}

	return []byte(sb.String())
}
