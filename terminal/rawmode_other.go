//go:build !windows

package terminal

import (
	"os"
	"sync"

	"golang.org/x/term"
)

// The state the terminal was in before raw mode was enabled. Raw mode is a
// process-wide property; a single coordinating owner per process is
// assumed.
var rawMode struct {
	mu    sync.Mutex
	prior *term.State
}

// IsRawModeEnabled reports whether this process put the terminal into raw
// mode.
func IsRawModeEnabled() bool {
	rawMode.mu.Lock()
	defer rawMode.mu.Unlock()
	return rawMode.prior != nil
}

// EnableRawMode disables line buffering, input echo and signal-generating
// keys so input bytes reach the program unprocessed. Enabling twice is a
// no-op; the original state is kept for DisableRawMode.
func EnableRawMode() error {
	rawMode.mu.Lock()
	defer rawMode.mu.Unlock()
	if rawMode.prior != nil {
		return nil
	}
	prior, err := term.MakeRaw(int(os.Stdin.Fd()))
	if err != nil {
		return err
	}
	rawMode.prior = prior
	return nil
}

// DisableRawMode restores the terminal state EnableRawMode saved. Without a
// prior EnableRawMode it is a no-op.
func DisableRawMode() error {
	rawMode.mu.Lock()
	defer rawMode.mu.Unlock()
	if rawMode.prior == nil {
		return nil
	}
	if err := term.Restore(int(os.Stdin.Fd()), rawMode.prior); err != nil {
		return err
	}
	rawMode.prior = nil
	return nil
}

// Size returns the terminal size as (columns, rows).
func Size() (int, int, error) {
	return term.GetSize(int(os.Stdout.Fd()))
}
