package parts

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"wrenchbill/internal/validate"
)

type Repository interface {
	List(ctx context.Context) ([]Part, error)
	Save(ctx context.Context, parts []Part) error
}

var (
	ErrPartNotFound    = errors.New("part not found")
	ErrInvalidPrice    = errors.New("price must be between 0 and 999999")
	ErrMissingRequired = errors.New("part number, manufacturer and description are required")
)

var (
	priceMin = decimal.Zero
	priceMax = decimal.NewFromInt(999999)
)

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo, now: time.Now}
}

// Search filters the catalog. query matches part number, description, or
// category; manufacturer narrows by maker. Both are case-insensitive
// substring matches, both optional, combined with AND.
func (s *Service) Search(ctx context.Context, query, manufacturer string) ([]Part, error) {
	all, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing parts: %w", err)
	}

	query = strings.ToLower(query)
	manufacturer = strings.ToLower(manufacturer)

	matched := make([]Part, 0, len(all))

	for _, p := range all {
		if query != "" &&
			!strings.Contains(strings.ToLower(p.PartNumber), query) &&
			!strings.Contains(strings.ToLower(p.Description), query) &&
			!strings.Contains(strings.ToLower(p.Category), query) {
			continue
		}

		if manufacturer != "" && !strings.Contains(strings.ToLower(p.Manufacturer), manufacturer) {
			continue
		}

		matched = append(matched, p)
	}

	return matched, nil
}

// IsStale applies the staleness rule at the current time.
func (s *Service) IsStale(p Part) bool {
	return p.Stale(s.now())
}

// RecordPriceUpdate sets a new price for the first part with the given
// number and refreshes its timestamp.
func (s *Service) RecordPriceUpdate(ctx context.Context, partNumber, price string) error {
	p, ok := validate.Numeric(price, priceMin, priceMax)
	if !ok {
		return ErrInvalidPrice
	}

	all, err := s.repo.List(ctx)
	if err != nil {
		return fmt.Errorf("listing parts: %w", err)
	}

	for i := range all {
		if all[i].PartNumber != partNumber {
			continue
		}

		now := s.now()
		all[i].Price = p
		all[i].LastUpdated = &now

		if err := s.repo.Save(ctx, all); err != nil {
			return fmt.Errorf("saving parts: %w", err)
		}

		return nil
	}

	return ErrPartNotFound
}

type AddParams struct {
	PartNumber   string
	Manufacturer string
	Description  string
	Price        string
	Category     string
}

// Add validates and appends a catalog entry with a fresh timestamp. No
// de-duplication is performed.
func (s *Service) Add(ctx context.Context, params AddParams) (*Part, error) {
	number := validate.Sanitize(params.PartNumber)
	maker := validate.Sanitize(params.Manufacturer)
	desc := validate.Sanitize(params.Description)
	category := validate.Sanitize(params.Category)

	if number == "" || maker == "" || desc == "" {
		return nil, ErrMissingRequired
	}

	price, ok := validate.Numeric(params.Price, priceMin, priceMax)
	if !ok {
		return nil, ErrInvalidPrice
	}

	if category == "" {
		category = "Other"
	}

	all, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing parts: %w", err)
	}

	now := s.now()
	p := Part{
		PartNumber:   number,
		Manufacturer: maker,
		Description:  desc,
		Price:        price,
		Category:     category,
		LastUpdated:  &now,
	}

	if err := s.repo.Save(ctx, append(all, p)); err != nil {
		return nil, fmt.Errorf("saving parts: %w", err)
	}

	return &p, nil
}

// AddBatch appends multiple entries in one save, used by the price-list
// importer. Rows that fail validation are skipped and counted.
func (s *Service) AddBatch(ctx context.Context, batch []AddParams) (added, skipped int, err error) {
	all, err := s.repo.List(ctx)
	if err != nil {
		return 0, 0, fmt.Errorf("listing parts: %w", err)
	}

	now := s.now()

	for _, params := range batch {
		number := validate.Sanitize(params.PartNumber)
		maker := validate.Sanitize(params.Manufacturer)
		desc := validate.Sanitize(params.Description)

		price, ok := validate.Numeric(params.Price, priceMin, priceMax)
		if number == "" || maker == "" || desc == "" || !ok {
			skipped++
			continue
		}

		category := validate.Sanitize(params.Category)
		if category == "" {
			category = "Other"
		}

		ts := now
		all = append(all, Part{
			PartNumber:   number,
			Manufacturer: maker,
			Description:  desc,
			Price:        price,
			Category:     category,
			LastUpdated:  &ts,
		})
		added++
	}

	if added > 0 {
		if err := s.repo.Save(ctx, all); err != nil {
			return 0, 0, fmt.Errorf("saving parts: %w", err)
		}
	}

	return added, skipped, nil
}

// StaleCount scans the catalog and reports how many prices are stale. Runs
// once per session after the initial load; advisory only.
func (s *Service) StaleCount(ctx context.Context) (int, error) {
	all, err := s.repo.List(ctx)
	if err != nil {
		return 0, fmt.Errorf("listing parts: %w", err)
	}

	now := s.now()
	count := 0

	for _, p := range all {
		if p.Stale(now) {
			count++
		}
	}

	return count, nil
}

// RefreshAllTimestamps stamps every part with the current time, the
// "refresh all part dates" maintenance action.
func (s *Service) RefreshAllTimestamps(ctx context.Context) error {
	all, err := s.repo.List(ctx)
	if err != nil {
		return fmt.Errorf("listing parts: %w", err)
	}

	now := s.now()
	for i := range all {
		ts := now
		all[i].LastUpdated = &ts
	}

	if err := s.repo.Save(ctx, all); err != nil {
		return fmt.Errorf("saving parts: %w", err)
	}

	return nil
}
