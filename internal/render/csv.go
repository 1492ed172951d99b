package render

import (
	"fmt"
	"strings"

	"wrenchbill/internal/document"
)

// csvHeader is the fixed 20-column QuickBooks 2013/2014 invoice import
// schema. Column order is a frozen contract with the QB import wizard.
const csvHeader = `"Invoice#","Customer","Date","Item","Description","Quantity","Rate","Amount","Tax Code","Tax Amount","Customer Phone","Customer Email","Terms","Due Date","Memo","Service Date","Class","Rep","FOB","Ship Via"`

// CSV renders the tabular QuickBooks import: one row per billable item plus
// a synthetic TOTAL summary row. String columns are double-quoted with
// internal quotes doubled; numeric columns are bare. That mix is what the
// import wizard expects, so rows are written by hand rather than through
// encoding/csv.
func CSV(snap document.Snapshot) []byte {
	var sb strings.Builder

	sb.WriteString(csvHeader)
	sb.WriteString("\n")

	date := snap.Date.Format(dateLayout)
	due := dueDate(snap.Date)
	kind := strings.ToUpper(string(snap.Kind))
	memo := kind + " - Created with Invoice Creator"

	for _, it := range snap.BillableItems() {
		taxAmount := it.Total().Mul(document.TaxRate)

		fmt.Fprintf(&sb, "%s,%s,%s,%s,%s,%s,%s,%s,%s,%s,%s,%s,%s,%s,%s,%s,%s,%s,%s,%s\n",
			q(snap.Number),
			q(snap.Customer.Name),
			q(date),
			q(it.Description),
			q(it.Description),
			it.Quantity.String(),
			it.UnitPrice.String(),
			it.Total().StringFixed(2),
			q(taxCode),
			taxAmount.StringFixed(2),
			q(snap.Customer.Phone),
			q(snap.Customer.Email),
			q(paymentTerms),
			q(due),
			q(memo),
			q(date),
			q(className),
			q(repName),
			q(""),
			q(shipVia),
		)
	}

	grand := snap.Total().StringFixed(2)

	fmt.Fprintf(&sb, "%s,%s,%s,%s,%s,1,%s,%s,%s,%s,%s,%s,%s,%s,%s,%s,%s,%s,%s,%s",
		q(snap.Number),
		q(snap.Customer.Name),
		q(date),
		q("TOTAL"),
		q("Invoice Total"),
		grand,
		grand,
		q(""),
		q(""),
		q(snap.Customer.Phone),
		q(snap.Customer.Email),
		q(paymentTerms),
		q(due),
		q(kind+" Total"),
		q(date),
		q(className),
		q(repName),
		q(""),
		q(shipVia),
	)

	return []byte(sb.String())
}

// q double-quotes a string field, doubling any internal quotes.
func q(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}
