// Package export writes the rendered artifacts of a document to disk and
// hands them to the platform share sheet when one is available.
package export

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"wrenchbill/internal/document"
	"wrenchbill/internal/render"
)

var (
	// ErrShareUnavailable means the platform has no share sheet. Callers
	// fall back to a plain disk export.
	ErrShareUnavailable = errors.New("sharing is not available on this platform")

	// ErrShareCancelled means the user dismissed the share sheet. It is
	// not a failure and suppresses the device-export fallback.
	ErrShareCancelled = errors.New("share cancelled")
)

// Sharer presents a set of files through the platform share mechanism.
type Sharer interface {
	Share(paths []string) error
}

// Item links an artifact kind to the file written for it.
type Item struct {
	Kind     string
	FilePath string
}

type artifact struct {
	kind string
	name string
	data []byte
}

// Service renders and exports document artifacts.
type Service struct {
	sharer Sharer
	now    func() time.Time
}

func NewService(sharer Sharer) *Service {
	return &Service{sharer: sharer, now: time.Now}
}

func (s *Service) artifacts(snap document.Snapshot) []artifact {
	return []artifact{
		{"text", snap.Number + ".txt", render.Text(snap)},
		{"csv", snap.Number + "_QB2014.csv", render.CSV(snap)},
		{"iif", snap.Number + "_QB2014.iif", render.IIF(snap, s.now())},
		{"instructions", render.InstructionsFilename, render.Instructions(snap)},
	}
}

func writeArtifacts(dir string, artifacts []artifact) ([]Item, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating export directory: %w", err)
	}

	items := make([]Item, 0, len(artifacts))

	for _, a := range artifacts {
		path := filepath.Join(dir, a.name)
		if err := os.WriteFile(path, a.data, 0o644); err != nil {
			return nil, fmt.Errorf("writing %s: %w", a.name, err)
		}

		items = append(items, Item{Kind: a.kind, FilePath: path})
	}

	return items, nil
}

// ExportAll writes the full artifact set for the snapshot into dir: the
// plain-text document, the QuickBooks 2014 CSV and IIF files, and the
// import instructions. It returns one item per file written.
func (s *Service) ExportAll(snap document.Snapshot, dir string) ([]Item, error) {
	return writeArtifacts(dir, s.artifacts(snap))
}

// Share offers the text and CSV artifacts through the share sheet. When no
// sharer is wired, or the sharer reports ErrShareUnavailable or any other
// failure, the full artifact set is written to dir instead. A cancelled
// share keeps only the two files written for the handoff and suppresses
// the fallback.
func (s *Service) Share(snap document.Snapshot, dir string) ([]Item, error) {
	if s.sharer == nil {
		return s.ExportAll(snap, dir)
	}

	items, err := writeArtifacts(dir, s.artifacts(snap)[:2])
	if err != nil {
		return nil, err
	}

	paths := make([]string, 0, len(items))
	for _, item := range items {
		paths = append(paths, item.FilePath)
	}

	switch err := s.sharer.Share(paths); {
	case err == nil:
		return items, nil
	case errors.Is(err, ErrShareCancelled):
		return items, nil
	default:
		return s.ExportAll(snap, dir)
	}
}
