package store

import (
	"context"

	"github.com/google/uuid"

	"wrenchbill/internal/contacts"
	"wrenchbill/internal/store"
)

// Store persists the contact book as a single blob under the contacts key.
type Store struct {
	blobs *store.Store
}

func New(blobs *store.Store) *Store {
	return &Store{blobs: blobs}
}

// List returns all saved contacts. A missing or unreadable blob seeds the
// sample contacts so a first run starts with something to pick from.
func (s *Store) List(ctx context.Context) ([]contacts.Contact, error) {
	var all []contacts.Contact

	found, err := s.blobs.Get(ctx, store.KeyContacts, &all)
	if err != nil {
		return nil, err
	}

	if !found {
		seed := sampleContacts()
		if err := s.blobs.Put(ctx, store.KeyContacts, seed); err != nil {
			return nil, err
		}

		return seed, nil
	}

	return all, nil
}

// Save replaces the whole contact book.
func (s *Store) Save(ctx context.Context, all []contacts.Contact) error {
	return s.blobs.Put(ctx, store.KeyContacts, all)
}

func sampleContacts() []contacts.Contact {
	return []contacts.Contact{
		{ID: uuid.NewString(), Name: "John Smith", Phone: "555-123-1234", Email: "john@email.com"},
		{ID: uuid.NewString(), Name: "Sarah Johnson", Phone: "555-123-5678", Email: "sarah@email.com"},
	}
}
