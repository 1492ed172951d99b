package importer

import (
	"context"
	"fmt"
	"io"

	"wrenchbill/internal/importer/pricelist"
	"wrenchbill/internal/parts"
)

// Service parses a price sheet and loads the rows into the parts catalog.
type Service struct {
	priceListImporter Importer
	catalog           *parts.Service
}

func NewService(catalog *parts.Service) *Service {
	return &Service{
		priceListImporter: pricelist.NewParser(),
		catalog:           catalog,
	}
}

// Parse reads a price sheet without touching the catalog.
func (s *Service) Parse(format Format, r io.Reader) ([]parts.AddParams, error) {
	var imp Importer

	switch format {
	case FormatPriceList:
		imp = s.priceListImporter
	default:
		return nil, fmt.Errorf("unknown import format: %s", format)
	}

	return imp.Parse(r)
}

// Import parses the sheet and appends its rows to the catalog, returning
// the added and skipped row counts.
func (s *Service) Import(ctx context.Context, format Format, r io.Reader) (added, skipped int, err error) {
	batch, err := s.Parse(format, r)
	if err != nil {
		return 0, 0, err
	}

	return s.catalog.AddBatch(ctx, batch)
}
