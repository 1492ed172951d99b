package store

import (
	"context"

	"wrenchbill/internal/history"
	"wrenchbill/internal/store"
)

// Store persists saved documents, the send log, and the document counter as
// blobs. Each key is written independently; there is no cross-key atomicity.
type Store struct {
	blobs *store.Store
}

func New(blobs *store.Store) *Store {
	return &Store{blobs: blobs}
}

func (s *Store) ListDocuments(ctx context.Context) ([]history.SavedDocument, error) {
	var all []history.SavedDocument

	if _, err := s.blobs.Get(ctx, store.KeyInvoices, &all); err != nil {
		return nil, err
	}

	return all, nil
}

func (s *Store) AppendDocument(ctx context.Context, doc history.SavedDocument) error {
	all, err := s.ListDocuments(ctx)
	if err != nil {
		return err
	}

	return s.blobs.Put(ctx, store.KeyInvoices, append(all, doc))
}

func (s *Store) ListLogs(ctx context.Context) ([]history.LogEntry, error) {
	var all []history.LogEntry

	if _, err := s.blobs.Get(ctx, store.KeyInvoiceLogs, &all); err != nil {
		return nil, err
	}

	return all, nil
}

func (s *Store) AppendLog(ctx context.Context, entry history.LogEntry) error {
	all, err := s.ListLogs(ctx)
	if err != nil {
		return err
	}

	return s.blobs.Put(ctx, store.KeyInvoiceLogs, append(all, entry))
}

func (s *Store) LastNumber(ctx context.Context) (string, bool, error) {
	var number string

	found, err := s.blobs.Get(ctx, store.KeyLastNumber, &number)
	if err != nil {
		return "", false, err
	}

	return number, found, nil
}

func (s *Store) SetLastNumber(ctx context.Context, number string) error {
	return s.blobs.Put(ctx, store.KeyLastNumber, number)
}
