//go:build windows

package terminal

import "github.com/StephanvanSchaik/crossterm/terminal/console"

// IsRawModeEnabled reports whether the console input is in raw mode. The
// console owns the truth, so a query failure reads as "not raw".
func IsRawModeEnabled() bool {
	enabled, err := console.IsRawModeEnabled()
	return err == nil && enabled
}

// EnableRawMode clears the cooked-mode bits on the console input.
func EnableRawMode() error {
	return console.EnableRawMode()
}

// DisableRawMode restores the cooked-mode bits on the console input.
func DisableRawMode() error {
	return console.DisableRawMode()
}

// Size returns the terminal size as (columns, rows).
func Size() (int, int, error) {
	return console.Size()
}
