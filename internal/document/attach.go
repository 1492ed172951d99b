package document

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ErrUnsupportedMedia rejects files that are neither images nor videos.
var ErrUnsupportedMedia = errors.New("only images and videos can be attached")

var mediaKindsByExt = map[string]MediaKind{
	".jpg":  MediaImage,
	".jpeg": MediaImage,
	".png":  MediaImage,
	".gif":  MediaImage,
	".webp": MediaImage,
	".mp4":  MediaVideo,
	".mov":  MediaVideo,
	".avi":  MediaVideo,
}

// MediaKindForFile classifies a filename by extension.
func MediaKindForFile(name string) (MediaKind, bool) {
	kind, ok := mediaKindsByExt[strings.ToLower(filepath.Ext(name))]
	return kind, ok
}

// fileHandle keeps an attached file open for the life of the attachment,
// the session-scoped resource the document releases on removal or reset.
type fileHandle struct {
	f *os.File
}

func (h fileHandle) Release() error {
	return h.f.Close()
}

// AttachFile registers a file on disk as an attachment: the media kind
// comes from the extension, the size from the file itself, and the open
// handle is held until the attachment is removed or the form is reset.
// Returns the attachment id.
func (d *Document) AttachFile(path string) (string, error) {
	kind, ok := MediaKindForFile(path)
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedMedia, filepath.Base(path))
	}

	info, err := os.Stat(path)
	if err != nil {
		return "", fmt.Errorf("inspecting attachment: %w", err)
	}

	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("opening attachment: %w", err)
	}

	sizeMB := float64(info.Size()) / (1024 * 1024)

	return d.AddAttachment(filepath.Base(path), kind, sizeMB, fileHandle{f: f}), nil
}
