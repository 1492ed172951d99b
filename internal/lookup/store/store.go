package store

import (
	"context"

	"wrenchbill/internal/lookup"
	"wrenchbill/internal/store"
)

// Store persists the vendor site list as a single blob.
type Store struct {
	blobs *store.Store
}

func New(blobs *store.Store) *Store {
	return &Store{blobs: blobs}
}

// List returns the configured sites, seeding the defaults on first run.
func (s *Store) List(ctx context.Context) ([]lookup.Site, error) {
	var all []lookup.Site

	found, err := s.blobs.Get(ctx, store.KeyPartLookupSites, &all)
	if err != nil {
		return nil, err
	}

	if !found {
		seed := lookup.DefaultSites()
		if err := s.blobs.Put(ctx, store.KeyPartLookupSites, seed); err != nil {
			return nil, err
		}

		return seed, nil
	}

	return all, nil
}

// Save replaces the whole site list.
func (s *Store) Save(ctx context.Context, all []lookup.Site) error {
	return s.blobs.Put(ctx, store.KeyPartLookupSites, all)
}
