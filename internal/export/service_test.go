package export

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wrenchbill/internal/document"
	"wrenchbill/internal/render"
)

type fakeSharer struct {
	shared [][]string
	err    error
}

func (f *fakeSharer) Share(paths []string) error {
	f.shared = append(f.shared, paths)
	return f.err
}

func sampleSnapshot() document.Snapshot {
	return document.Snapshot{
		Kind:   document.KindInvoice,
		Number: "INV-007",
		Date:   time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
		Customer: document.Customer{
			Name:  "John Smith",
			Phone: "555-123-4567",
			Email: "john@email.com",
		},
		Items: []document.LineItem{
			{ID: 1, Description: "Oil Change", Quantity: decimal.NewFromInt(2), UnitPrice: decimal.NewFromFloat(25)},
		},
	}
}

func newTestService(sharer Sharer) *Service {
	svc := NewService(sharer)
	svc.now = func() time.Time {
		return time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)
	}

	return svc
}

func TestExportAll(t *testing.T) {
	dir := t.TempDir()
	svc := newTestService(nil)

	items, err := svc.ExportAll(sampleSnapshot(), dir)
	require.NoError(t, err)
	require.Len(t, items, 4)

	wantNames := []string{
		"INV-007.txt",
		"INV-007_QB2014.csv",
		"INV-007_QB2014.iif",
		render.InstructionsFilename,
	}
	for i, name := range wantNames {
		assert.Equal(t, filepath.Join(dir, name), items[i].FilePath)
		assert.FileExists(t, items[i].FilePath)
	}

	text, err := os.ReadFile(filepath.Join(dir, "INV-007.txt"))
	require.NoError(t, err)
	assert.Contains(t, string(text), "INVOICE INV-007")
	assert.Contains(t, string(text), "TOTAL: $54.00")

	iif, err := os.ReadFile(filepath.Join(dir, "INV-007_QB2014.iif"))
	require.NoError(t, err)
	assert.Contains(t, string(iif), "03/15/2024")
	assert.Contains(t, string(iif), "10:30:00")
}

func TestExportAll_CreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "exports")
	svc := newTestService(nil)

	_, err := svc.ExportAll(sampleSnapshot(), dir)
	require.NoError(t, err)
	assert.DirExists(t, dir)
}

func TestShare_HandsOffTextAndCSVOnly(t *testing.T) {
	dir := t.TempDir()
	sharer := &fakeSharer{}
	svc := newTestService(sharer)

	items, err := svc.Share(sampleSnapshot(), dir)
	require.NoError(t, err)
	require.Len(t, items, 2)

	require.Len(t, sharer.shared, 1)
	require.Len(t, sharer.shared[0], 2)
	assert.Equal(t, filepath.Join(dir, "INV-007.txt"), sharer.shared[0][0])
	assert.Equal(t, filepath.Join(dir, "INV-007_QB2014.csv"), sharer.shared[0][1])

	assert.NoFileExists(t, filepath.Join(dir, "INV-007_QB2014.iif"))
	assert.NoFileExists(t, filepath.Join(dir, render.InstructionsFilename))
}

func TestShare_CancelledSuppressesFallback(t *testing.T) {
	dir := t.TempDir()
	svc := newTestService(&fakeSharer{err: ErrShareCancelled})

	items, err := svc.Share(sampleSnapshot(), dir)
	require.NoError(t, err, "a user cancel is not a failure")
	assert.Len(t, items, 2)

	assert.FileExists(t, filepath.Join(dir, "INV-007.txt"))
	assert.FileExists(t, filepath.Join(dir, "INV-007_QB2014.csv"))
	assert.NoFileExists(t, filepath.Join(dir, "INV-007_QB2014.iif"),
		"cancelling must not trigger the device export")
	assert.NoFileExists(t, filepath.Join(dir, render.InstructionsFilename))
}

func TestShare_UnavailableFallsBackToExport(t *testing.T) {
	dir := t.TempDir()
	svc := newTestService(&fakeSharer{err: ErrShareUnavailable})

	items, err := svc.Share(sampleSnapshot(), dir)
	require.NoError(t, err)
	assert.Len(t, items, 4)
	assert.FileExists(t, filepath.Join(dir, "INV-007_QB2014.iif"))
	assert.FileExists(t, filepath.Join(dir, render.InstructionsFilename))
}

func TestShare_FailureFallsBackToExport(t *testing.T) {
	dir := t.TempDir()
	svc := newTestService(&fakeSharer{err: errors.New("share service crashed")})

	items, err := svc.Share(sampleSnapshot(), dir)
	require.NoError(t, err)
	assert.Len(t, items, 4)
	assert.FileExists(t, filepath.Join(dir, "INV-007_QB2014.iif"))
}

func TestShare_NilSharerExportsEverything(t *testing.T) {
	dir := t.TempDir()
	svc := newTestService(nil)

	items, err := svc.Share(sampleSnapshot(), dir)
	require.NoError(t, err)
	assert.Len(t, items, 4)
}
