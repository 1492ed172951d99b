package render

import (
	"fmt"
	"strings"
	"time"

	"wrenchbill/internal/document"
)

// IIF column layouts. Positional and frozen: consuming systems parse these
// by column index, so order and cardinality must never change.
const (
	iifHdrHeader  = "!HDR\tPROD\tVER\tREL\tIOTA\tBLD\tDATE\tTIME\tBASIS"
	iifTrnsHeader = "!TRNS\tTRNSTYPE\tDATE\tACCNT\tNAME\tCLASS\tAMOUNT\tDOCNUM\tMEMO\tCLEAR\tTOPRINT\tNAMETXN\tADDR1\tADDR2\tADDR3\tADDR4\tADDR5\tDUEDATE\tTERMS\tPAID\tSHIPDATE"
	iifSplHeader  = "!SPL\tTRNSTYPE\tDATE\tACCNT\tNAME\tCLASS\tAMOUNT\tDOCNUM\tMEMO\tCLEAR\tQNTY\tPRICE\tINVITEM\tPAIDSTATUS\tTXBL\tTAXCODE\tINVDATE\tPAIDDATE\tADDR1\tADDR2\tADDR3\tADDR4\tREIMBEXP\tSERVICEDATE\tOTHER2"
)

// IIF renders the tab-delimited QuickBooks transaction import: a version
// header section, one transaction line for the whole document, one split
// line per billable item with the amount negated per double-entry
// convention, a tax split when tax is due, and the terminating marker. The
// header section timestamps the file, so now is injected to keep the output
// a pure function of its inputs.
func IIF(snap document.Snapshot, now time.Time) []byte {
	var lines []string

	date := snap.Date.Format(dateLayout)
	due := dueDate(snap.Date)
	kind := strings.ToUpper(string(snap.Kind))

	lines = append(lines, iifHdrHeader)
	lines = append(lines, fmt.Sprintf("HDR\tQuickBooks Pro\t2014\tRelease\tR1P\t20140101\t%s\t%s\tCash",
		now.Format("01/02/2006"), now.Format("15:04:05")))

	lines = append(lines, iifTrnsHeader)
	lines = append(lines, fmt.Sprintf(
		"TRNS\tINVOICE\t%s\tAccounts Receivable\t%s\tService\t%s\t%s\t%s for %s\tN\tN\t\t\t\t\t\t\t%s\t%s\tN\t",
		date, snap.Customer.Name, snap.Total().StringFixed(2), snap.Number,
		kind, snap.Customer.Name, due, paymentTerms))

	lines = append(lines, iifSplHeader)

	for _, it := range snap.BillableItems() {
		lines = append(lines, fmt.Sprintf(
			"SPL\tINVOICE\t%s\tIncome:Service Income\t%s\tService\t-%s\t%s\t%s\tN\t%s\t%s\t%s\tUnpaid\tY\tTax\t%s\t\t\t\t\t\t\t%s\t",
			date, snap.Customer.Name, it.Total().StringFixed(2), snap.Number,
			it.Description, it.Quantity.String(), it.UnitPrice.String(),
			it.Description, date, date))
	}

	if tax := snap.Tax(); tax.IsPositive() {
		lines = append(lines, fmt.Sprintf(
			"SPL\tINVOICE\t%s\tSales Tax Payable\t%s\tService\t-%s\t%s\tSales Tax (8%%)\tN\t1\t%s\tTax\tUnpaid\tN\tTax\t%s\t\t\t\t\t\t\t%s\t",
			date, snap.Customer.Name, tax.StringFixed(2), snap.Number,
			tax.StringFixed(2), date, date))
	}

	lines = append(lines, "ENDTRNS")

	return []byte(strings.Join(lines, "\n"))
}
