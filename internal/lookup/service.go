package lookup

import (
	"context"
	"errors"
	"fmt"
)

type Repository interface {
	List(ctx context.Context) ([]Site, error)
	Save(ctx context.Context, sites []Site) error
}

var ErrSiteNotFound = errors.New("lookup site not found")

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Sites lists the configured vendor sites in display order.
func (s *Service) Sites(ctx context.Context) ([]Site, error) {
	return s.repo.List(ctx)
}

// Enabled lists only the sites currently switched on.
func (s *Service) Enabled(ctx context.Context) ([]Site, error) {
	all, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	var enabled []Site
	for _, site := range all {
		if site.Enabled {
			enabled = append(enabled, site)
		}
	}

	return enabled, nil
}

// SetEnabled flips a site on or off and persists the change.
func (s *Service) SetEnabled(ctx context.Context, name string, enabled bool) error {
	all, err := s.repo.List(ctx)
	if err != nil {
		return fmt.Errorf("listing sites: %w", err)
	}

	for i := range all {
		if all[i].Name == name {
			all[i].Enabled = enabled

			return s.repo.Save(ctx, all)
		}
	}

	return fmt.Errorf("%w: %q", ErrSiteNotFound, name)
}

// Search builds the outbound URL for a named, enabled site.
func (s *Service) Search(ctx context.Context, name, term string) (string, error) {
	all, err := s.repo.List(ctx)
	if err != nil {
		return "", fmt.Errorf("listing sites: %w", err)
	}

	for _, site := range all {
		if site.Name == name {
			return SearchURL(site, term)
		}
	}

	return "", fmt.Errorf("%w: %q", ErrSiteNotFound, name)
}
