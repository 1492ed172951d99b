package document_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wrenchbill/internal/document"
)

func writeTempFile(t *testing.T, name string, size int) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, make([]byte, size), 0o644))

	return path
}

func TestAttachFile_Image(t *testing.T) {
	d := document.New(document.KindInvoice)
	path := writeTempFile(t, "leaky gasket.JPG", 2*1024*1024)

	id, err := d.AttachFile(path)
	require.NoError(t, err)

	require.Len(t, d.Attachments, 1)
	assert.Equal(t, id, d.Attachments[0].ID)
	assert.Equal(t, "leaky gasket.JPG", d.Attachments[0].Name)
	assert.Equal(t, document.MediaImage, d.Attachments[0].Media)
	assert.InDelta(t, 2.0, d.Attachments[0].SizeMB, 0.01)

	assert.True(t, d.RemoveAttachment(id))
}

func TestAttachFile_Video(t *testing.T) {
	d := document.New(document.KindInvoice)
	path := writeTempFile(t, "rattle.mov", 512)

	_, err := d.AttachFile(path)
	require.NoError(t, err)

	assert.Equal(t, document.MediaVideo, d.Attachments[0].Media)
}

func TestAttachFile_RejectsUnsupportedType(t *testing.T) {
	d := document.New(document.KindInvoice)
	path := writeTempFile(t, "notes.pdf", 64)

	_, err := d.AttachFile(path)

	assert.ErrorIs(t, err, document.ErrUnsupportedMedia)
	assert.Empty(t, d.Attachments)
}

func TestAttachFile_MissingFile(t *testing.T) {
	d := document.New(document.KindInvoice)

	_, err := d.AttachFile(filepath.Join(t.TempDir(), "gone.png"))

	assert.Error(t, err)
	assert.Empty(t, d.Attachments)
}
