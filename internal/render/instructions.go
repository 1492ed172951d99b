package render

import (
	"fmt"
	"strings"

	"wrenchbill/internal/document"
)

// InstructionsFilename is the fixed name of the import-instructions
// artifact.
const InstructionsFilename = "QuickBooks_2013-2014_Import_Instructions.txt"

// Instructions renders the human-readable import guide that accompanies the
// CSV and IIF artifacts. Purely textual; nothing parses it.
func Instructions(snap document.Snapshot) []byte {
	var sb strings.Builder

	sb.WriteString("QUICKBOOKS 2013/2014 IMPORT INSTRUCTIONS\n")
	sb.WriteString("=========================================\n\n")
	sb.WriteString("This folder contains files formatted for QuickBooks 2013 and 2014:\n\n")

	fmt.Fprintf(&sb, "1. %s_QB2014.csv\n", snap.Number)
	sb.WriteString("   - Enhanced CSV format for importing invoice data\n")
	sb.WriteString("   - Use: File > Utilities > Import > Excel Files\n")
	sb.WriteString("   - Compatible with QuickBooks 2013 and 2014 data import\n\n")

	fmt.Fprintf(&sb, "2. %s_QB2014.iif\n", snap.Number)
	sb.WriteString("   - Enhanced IIF format for direct invoice import\n")
	sb.WriteString("   - Use: File > Utilities > Import > IIF Files\n")
	sb.WriteString("   - Creates a complete invoice transaction with classes and service dates\n\n")

	sb.WriteString("IMPORT STEPS FOR IIF FILE (RECOMMENDED):\n")
	sb.WriteString("1. Open QuickBooks 2013 or 2014\n")
	sb.WriteString("2. Go to File > Utilities > Import > IIF Files\n")
	fmt.Fprintf(&sb, "3. Select the %s_QB2014.iif file\n", snap.Number)
	sb.WriteString("4. Click Import\n")
	sb.WriteString("5. Verify customer and item information\n\n")

	sb.WriteString("IMPORT STEPS FOR CSV FILE:\n")
	sb.WriteString("1. Open QuickBooks 2013 or 2014\n")
	sb.WriteString("2. Go to File > Utilities > Import > Excel Files\n")
	sb.WriteString("3. Select \"Invoices\" for invoice data import\n")
	sb.WriteString("4. Follow the import wizard and map the columns to QuickBooks fields\n\n")

	sb.WriteString("NOTES:\n")
	fmt.Fprintf(&sb, "- Customer %q may need to be created first\n", snap.Customer.Name)
	sb.WriteString("- Tax settings should match your QuickBooks tax setup (8% configured)\n")
	sb.WriteString("- Item codes will be created as \"Service Income\" items\n")
	fmt.Fprintf(&sb, "- Service class will be set to %q\n", className)
	fmt.Fprintf(&sb, "- Representative will be set to %q\n", repName)
	fmt.Fprintf(&sb, "- Invoice date: %s\n", snap.Date.Format(dateLayout))
	sb.WriteString("- Due date: 30 days from invoice date\n")
	fmt.Fprintf(&sb, "- Total amount: $%s\n", snap.Total().StringFixed(2))
	fmt.Fprintf(&sb, "- Payment terms: %s\n\n", paymentTerms)

	sb.WriteString("TROUBLESHOOTING:\n")
	sb.WriteString("- If import fails, ensure QB is updated to the latest version\n")
	sb.WriteString("- Create the customer record manually if needed\n")
	sb.WriteString("- Check that the Service Income account exists\n")
	sb.WriteString("- Verify tax code setup matches (Tax = 8%)\n")

	return []byte(sb.String())
}
