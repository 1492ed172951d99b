package send

import (
	"os/exec"

	"github.com/atotto/clipboard"
)

// SystemClipboard writes through the host clipboard.
type SystemClipboard struct{}

func (SystemClipboard) WriteAll(text string) error {
	return clipboard.WriteAll(text)
}

// XDGOpener launches URIs with xdg-open. The command is started and not
// waited on; the handler app owns the rest of the flow.
type XDGOpener struct{}

func (XDGOpener) Open(uri string) error {
	return exec.Command("xdg-open", uri).Start()
}
