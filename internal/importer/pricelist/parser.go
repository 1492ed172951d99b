package pricelist

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	enc "wrenchbill/internal/encoding"
	"wrenchbill/internal/parts"
)

// Parser reads supplier price-sheet CSVs and produces catalog entries. The
// sheet layout is auto-detected by matching column headers against known
// supplier profiles; preamble rows before the header are skipped.
type Parser struct{}

func NewParser() *Parser {
	return &Parser{}
}

func (p *Parser) Parse(r io.Reader) ([]parts.AddParams, error) {
	utf8r, err := enc.NewUTF8Reader(r)
	if err != nil {
		return nil, fmt.Errorf("detect encoding: %w", err)
	}

	reader := csv.NewReader(utf8r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}

	profile, cols, headerIdx := detectProfile(rows)
	if profile == nil {
		return nil, fmt.Errorf("no matching price-sheet layout found")
	}

	return parseRows(profile, cols, rows[headerIdx+1:]), nil
}

// colIndex maps column names to their index in the row.
type colIndex map[string]int

// detectProfile scans rows for a header matching a known profile. Returns
// the matched profile, column index map, and header row index.
func detectProfile(rows [][]string) (*Profile, colIndex, int) {
	for rowIdx, row := range rows {
		cols := make(colIndex)

		for i, cell := range row {
			name := strings.TrimSpace(cell)
			if name != "" {
				cols[name] = i
			}
		}

		for i := range profiles {
			if matchesProfile(&profiles[i], cols) {
				return &profiles[i], cols, rowIdx
			}
		}
	}

	return nil, nil, 0
}

func matchesProfile(p *Profile, cols colIndex) bool {
	for _, name := range p.requiredCols() {
		if _, ok := cols[name]; !ok {
			return false
		}
	}

	return true
}

// parseRows extracts catalog entries from the data rows. Rows missing a
// part number or description, or with an unparseable price, are skipped;
// footer rows fall out the same way.
func parseRows(p *Profile, cols colIndex, rows [][]string) []parts.AddParams {
	var batch []parts.AddParams

	for _, row := range rows {
		number := cellValue(row, cols[p.PartCol])
		desc := cellValue(row, cols[p.DescCol])
		if number == "" || desc == "" {
			continue
		}

		price, err := parseUSAmount(cellValue(row, cols[p.PriceCol]))
		if err != nil {
			continue
		}

		maker := p.DefaultMaker
		if p.MakerCol != "" {
			maker = cellValue(row, cols[p.MakerCol])
		}

		category := ""
		if p.CategoryCol != "" {
			if idx, ok := cols[p.CategoryCol]; ok {
				category = cellValue(row, idx)
			}
		}

		batch = append(batch, parts.AddParams{
			PartNumber:   number,
			Manufacturer: maker,
			Description:  desc,
			Price:        price.String(),
			Category:     category,
		})
	}

	return batch
}

// cellValue safely gets a trimmed cell value from a row.
func cellValue(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}

	return strings.TrimSpace(row[idx])
}
