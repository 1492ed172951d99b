package export

import (
	"fmt"
	"os/exec"
)

// XDGShare hands files to the desktop mail composer via xdg-email, the
// closest thing to a share sheet on a Linux desktop.
type XDGShare struct{}

func (XDGShare) Share(paths []string) error {
	if _, err := exec.LookPath("xdg-email"); err != nil {
		return fmt.Errorf("%w: %v", ErrShareUnavailable, err)
	}

	args := make([]string, 0, 2*len(paths))
	for _, p := range paths {
		args = append(args, "--attach", p)
	}

	if err := exec.Command("xdg-email", args...).Start(); err != nil {
		return fmt.Errorf("launching share: %w", err)
	}

	return nil
}
