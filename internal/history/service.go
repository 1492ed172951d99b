package history

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"wrenchbill/internal/document"
)

type Repository interface {
	ListDocuments(ctx context.Context) ([]SavedDocument, error)
	AppendDocument(ctx context.Context, doc SavedDocument) error
	ListLogs(ctx context.Context) ([]LogEntry, error)
	AppendLog(ctx context.Context, entry LogEntry) error
	LastNumber(ctx context.Context) (string, bool, error)
	SetLastNumber(ctx context.Context, number string) error
}

var ErrNotFound = errors.New("document not found in history")

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo, now: time.Now}
}

// SaveParams describes the save action alongside the document itself.
type SaveParams struct {
	Method             string
	FilesSaved         bool
	FilesSavedLocation string
}

// Save appends the snapshot to history, writes a log entry, and advances the
// persisted document counter. It returns the saved entry and the number the
// next document should carry. History writes are not atomic across keys; a
// crash mid-save can leave the counter behind the saved entry, which only
// delays the number bump.
func (s *Service) Save(ctx context.Context, snap document.Snapshot, params SaveParams) (*SavedDocument, string, error) {
	now := s.now()

	saved := SavedDocument{
		ID:          uuid.NewString(),
		Kind:        snap.Kind,
		Number:      snap.Number,
		Date:        snap.Date,
		Customer:    snap.Customer,
		Items:       snap.BillableItems(),
		Attachments: snap.Attachments,
		Subtotal:    snap.Subtotal(),
		Tax:         snap.Tax(),
		Total:       snap.Total(),
		SavedAt:     now,
	}

	if err := s.repo.AppendDocument(ctx, saved); err != nil {
		return nil, "", fmt.Errorf("appending document: %w", err)
	}

	entry := LogEntry{
		ID:                 uuid.NewString(),
		DocumentNumber:     snap.Number,
		CustomerName:       snap.Customer.Name,
		Total:              saved.Total,
		SentAt:             now,
		Method:             params.Method,
		AttachmentCount:    len(snap.Attachments),
		FilesSaved:         params.FilesSaved,
		FilesSavedLocation: params.FilesSavedLocation,
		ExportReady:        params.FilesSaved,
	}

	if err := s.repo.AppendLog(ctx, entry); err != nil {
		return nil, "", fmt.Errorf("appending log entry: %w", err)
	}

	next := document.FormatNumber(snap.Kind, document.NumberValue(snap.Number)+1)
	if err := s.repo.SetLastNumber(ctx, next); err != nil {
		return nil, "", fmt.Errorf("persisting next number: %w", err)
	}

	return &saved, next, nil
}

// SeedNumber returns the persisted document number for a new session, or the
// kind's starting number when none has been saved yet.
func (s *Service) SeedNumber(ctx context.Context, kind document.Kind) (string, error) {
	stored, found, err := s.repo.LastNumber(ctx)
	if err != nil {
		return "", fmt.Errorf("reading last number: %w", err)
	}

	if !found || stored == "" {
		return document.FormatNumber(kind, 1), nil
	}

	return stored, nil
}

// Documents lists every saved document, oldest first.
func (s *Service) Documents(ctx context.Context) ([]SavedDocument, error) {
	return s.repo.ListDocuments(ctx)
}

// Logs lists every send-log entry, oldest first.
func (s *Service) Logs(ctx context.Context) ([]LogEntry, error) {
	return s.repo.ListLogs(ctx)
}

// Load returns the saved document with the given id. The caller seeds a
// fresh editable document from it; history itself is never mutated.
func (s *Service) Load(ctx context.Context, id string) (*SavedDocument, error) {
	all, err := s.repo.ListDocuments(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing documents: %w", err)
	}

	for i := range all {
		if all[i].ID == id {
			entry := all[i]
			entry.Items = append([]document.LineItem(nil), all[i].Items...)

			return &entry, nil
		}
	}

	return nil, ErrNotFound
}
