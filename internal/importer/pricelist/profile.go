package pricelist

// Profile describes the column layout of one supplier's price sheet.
// Supporting a new supplier is just adding a Profile to the profiles slice.
type Profile struct {
	Name        string
	PartCol     string
	DescCol     string
	PriceCol    string
	MakerCol    string // optional; empty means use DefaultMaker
	CategoryCol string // optional
	// DefaultMaker backfills the manufacturer for sheets that carry a
	// single brand and omit the column.
	DefaultMaker string
}

// requiredCols returns the headers that must be present for this profile
// to match.
func (p Profile) requiredCols() []string {
	cols := []string{p.PartCol, p.DescCol, p.PriceCol}
	if p.MakerCol != "" {
		cols = append(cols, p.MakerCol)
	}

	return cols
}

// profiles is the ordered list of layouts tried during auto-detection.
// More specific profiles come first to avoid false matches.
var profiles = []Profile{
	{
		Name:        "distributor",
		PartCol:     "Part Number",
		DescCol:     "Description",
		PriceCol:    "List Price",
		MakerCol:    "Manufacturer",
		CategoryCol: "Category",
	},
	{
		Name:     "jobber",
		PartCol:  "Part #",
		DescCol:  "Desc",
		PriceCol: "Price",
		MakerCol: "Brand",
	},
	{
		Name:         "single-brand",
		PartCol:      "SKU",
		DescCol:      "Description",
		PriceCol:     "Unit Price",
		DefaultMaker: "Unbranded",
	},
}
