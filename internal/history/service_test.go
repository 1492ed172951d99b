package history_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wrenchbill/internal/document"
	"wrenchbill/internal/history"
)

type fakeRepo struct {
	docs       []history.SavedDocument
	logs       []history.LogEntry
	lastNumber string
}

func (f *fakeRepo) ListDocuments(ctx context.Context) ([]history.SavedDocument, error) {
	return f.docs, nil
}

func (f *fakeRepo) AppendDocument(ctx context.Context, doc history.SavedDocument) error {
	f.docs = append(f.docs, doc)
	return nil
}

func (f *fakeRepo) ListLogs(ctx context.Context) ([]history.LogEntry, error) {
	return f.logs, nil
}

func (f *fakeRepo) AppendLog(ctx context.Context, entry history.LogEntry) error {
	f.logs = append(f.logs, entry)
	return nil
}

func (f *fakeRepo) LastNumber(ctx context.Context) (string, bool, error) {
	return f.lastNumber, f.lastNumber != "", nil
}

func (f *fakeRepo) SetLastNumber(ctx context.Context, number string) error {
	f.lastNumber = number
	return nil
}

func sampleDoc(t *testing.T) *document.Document {
	t.Helper()

	d := document.New(document.KindInvoice)
	d.SetNumber("INV-007")
	d.SetCustomerName("John Smith")
	require.True(t, d.UpdateItem(1, document.FieldDescription, "Oil Change"))
	require.True(t, d.UpdateItem(1, document.FieldQuantity, "2"))
	require.True(t, d.UpdateItem(1, document.FieldPrice, "25.00"))

	// An empty extra row must not reach history.
	d.AddItem()

	return d
}

func TestService_Save(t *testing.T) {
	repo := &fakeRepo{}
	svc := history.NewService(repo)

	saved, next, err := svc.Save(context.Background(), sampleDoc(t).Snapshot(), history.SaveParams{
		Method:             "copy",
		FilesSaved:         true,
		FilesSavedLocation: "Device Downloads",
	})
	require.NoError(t, err)

	assert.Equal(t, "INV-008", next)
	assert.Equal(t, "INV-008", repo.lastNumber)

	require.Len(t, repo.docs, 1)
	assert.Equal(t, "INV-007", saved.Number)
	assert.Len(t, saved.Items, 1, "empty rows are filtered out")
	assert.Equal(t, "54.00", saved.Total.StringFixed(2))
	assert.WithinDuration(t, time.Now(), saved.SavedAt, time.Minute)

	require.Len(t, repo.logs, 1)
	log := repo.logs[0]
	assert.Equal(t, "INV-007", log.DocumentNumber)
	assert.Equal(t, "John Smith", log.CustomerName)
	assert.Equal(t, "copy", log.Method)
	assert.True(t, log.FilesSaved)
	assert.True(t, log.ExportReady)
	assert.Equal(t, "Device Downloads", log.FilesSavedLocation)
}

func TestService_Save_IsAppendOnly(t *testing.T) {
	repo := &fakeRepo{}
	svc := history.NewService(repo)
	ctx := context.Background()

	snap := sampleDoc(t).Snapshot()

	_, _, err := svc.Save(ctx, snap, history.SaveParams{Method: "sms"})
	require.NoError(t, err)

	// Saving the same number again appends a second entry instead of
	// replacing the first; uniqueness is by convention only.
	_, _, err = svc.Save(ctx, snap, history.SaveParams{Method: "email"})
	require.NoError(t, err)

	assert.Len(t, repo.docs, 2)
	assert.Len(t, repo.logs, 2)
}

func TestService_SeedNumber(t *testing.T) {
	svc := history.NewService(&fakeRepo{})

	n, err := svc.SeedNumber(context.Background(), document.KindInvoice)
	require.NoError(t, err)
	assert.Equal(t, "INV-001", n)

	svc = history.NewService(&fakeRepo{lastNumber: "INV-042"})

	n, err = svc.SeedNumber(context.Background(), document.KindInvoice)
	require.NoError(t, err)
	assert.Equal(t, "INV-042", n)
}

func TestService_Load(t *testing.T) {
	repo := &fakeRepo{}
	svc := history.NewService(repo)
	ctx := context.Background()

	saved, _, err := svc.Save(ctx, sampleDoc(t).Snapshot(), history.SaveParams{Method: "copy"})
	require.NoError(t, err)

	got, err := svc.Load(ctx, saved.ID)
	require.NoError(t, err)
	assert.Equal(t, saved.Number, got.Number)

	// The loaded entry is a copy: mutating it must not touch history.
	got.Items[0].Description = "tampered"
	again, err := svc.Load(ctx, saved.ID)
	require.NoError(t, err)
	assert.Equal(t, "Oil Change", again.Items[0].Description)

	_, err = svc.Load(ctx, "missing")
	assert.ErrorIs(t, err, history.ErrNotFound)
}
