// Package importer turns vendor price-sheet files into catalog entries.
package importer

import (
	"io"

	"wrenchbill/internal/parts"
)

// Format identifies a supported price-sheet layout family.
type Format string

const (
	FormatPriceList Format = "pricelist"
)

type Importer interface {
	Parse(r io.Reader) ([]parts.AddParams, error)
}
