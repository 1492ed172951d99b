package store

import (
	"context"

	"github.com/shopspring/decimal"

	"wrenchbill/internal/parts"
	"wrenchbill/internal/store"
)

// Store persists the parts catalog as a single blob.
type Store struct {
	blobs *store.Store
}

func New(blobs *store.Store) *Store {
	return &Store{blobs: blobs}
}

// List returns the catalog, seeding the common-parts set on first run. The
// seed carries no timestamps, so every seeded price starts out stale until
// the mechanic confirms it.
func (s *Store) List(ctx context.Context) ([]parts.Part, error) {
	var all []parts.Part

	found, err := s.blobs.Get(ctx, store.KeyPartsDatabase, &all)
	if err != nil {
		return nil, err
	}

	if !found {
		seed := commonParts()
		if err := s.blobs.Put(ctx, store.KeyPartsDatabase, seed); err != nil {
			return nil, err
		}

		return seed, nil
	}

	return all, nil
}

// Save replaces the whole catalog.
func (s *Store) Save(ctx context.Context, all []parts.Part) error {
	return s.blobs.Put(ctx, store.KeyPartsDatabase, all)
}

func part(number, maker, desc string, price float64, category string) parts.Part {
	return parts.Part{
		PartNumber:   number,
		Manufacturer: maker,
		Description:  desc,
		Price:        decimal.NewFromFloat(price),
		Category:     category,
	}
}

func commonParts() []parts.Part {
	return []parts.Part{
		part("5W-30", "Mobil", "Engine Oil 5W-30 Synthetic", 24.99, "Oil"),
		part("10W-40", "Castrol", "Engine Oil 10W-40", 19.99, "Oil"),
		part("PH3614", "Fram", "Oil Filter", 8.99, "Filter"),
		part("CA9482", "Fram", "Air Filter", 15.99, "Filter"),
		part("DG508", "Motorcraft", "Ignition Coil", 45.99, "Ignition"),
		part("SP493", "Motorcraft", "Spark Plug", 7.99, "Ignition"),
		part("MKD465", "Wagner", "Brake Pads Front", 49.99, "Brakes"),
		part("BD125", "Wagner", "Brake Rotor", 65.99, "Brakes"),
		part("51R-600", "Interstate", "Car Battery 51R", 129.99, "Battery"),
		part("H11", "Sylvania", "Headlight Bulb H11", 12.99, "Lights"),
		part("3157", "Sylvania", "Brake Light Bulb", 4.99, "Lights"),
		part("24F-600", "DieHard", "Car Battery 24F", 139.99, "Battery"),
		part("ATF+4", "Valvoline", "Transmission Fluid ATF+4", 8.99, "Fluids"),
		part("DOT3", "Prestone", "Brake Fluid DOT 3", 6.99, "Fluids"),
		part("50/50", "Prestone", "Antifreeze/Coolant 50/50", 12.99, "Fluids"),
		part("7440", "Bosch", "Turn Signal Bulb", 3.99, "Lights"),
		part("MS-6335", "Moog", "Tie Rod End", 42.99, "Suspension"),
		part("K6117", "Moog", "Ball Joint", 56.99, "Suspension"),
		part("43330", "Gates", "Serpentine Belt", 23.99, "Belts"),
		part("25060", "Gates", "Radiator Hose Upper", 18.99, "Cooling"),
	}
}
