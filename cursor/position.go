package cursor

import (
	"io"
	"os"
	"time"

	"github.com/StephanvanSchaik/crossterm"
	"github.com/StephanvanSchaik/crossterm/event"
	"github.com/StephanvanSchaik/crossterm/logger"
	"github.com/StephanvanSchaik/crossterm/terminal"
	"github.com/StephanvanSchaik/crossterm/terminal/ansi"
)

// How long Position waits for the terminal to answer the query.
const positionTimeout = 2 * time.Second

// rawModeControl abstracts the raw-mode toggling Position coordinates
// with, so the protocol can be tested without a live terminal.
type rawModeControl interface {
	IsEnabled() bool
	Enable() error
	Disable() error
}

type terminalRawMode struct{}

func (terminalRawMode) IsEnabled() bool { return terminal.IsRawModeEnabled() }
func (terminalRawMode) Enable() error   { return terminal.EnableRawMode() }
func (terminalRawMode) Disable() error  { return terminal.DisableRawMode() }

// Position returns the cursor position as 0-based (column, row).
//
// The terminal reports its cursor position on the input stream, so this
// call blocks until the report arrives on the process event source, for at
// most two seconds. Raw mode is required for the report to be readable: if
// it is not already enabled, Position enables it for the duration of the
// query and restores the previous state on every exit path.
func Position() (int, int, error) {
	return position(os.Stdout, terminalRawMode{}, event.DefaultSource())
}

func position(w io.Writer, raw rawModeControl, src event.Source) (int, int, error) {
	if src == nil {
		return 0, 0, crossterm.ErrInputReader
	}
	if raw.IsEnabled() {
		return readPosition(w, src)
	}

	if err := raw.Enable(); err != nil {
		return 0, 0, err
	}
	column, row, err := readPosition(w, src)
	if disableErr := raw.Disable(); disableErr != nil && err == nil {
		err = disableErr
	}
	return column, row, err
}

func readPosition(w io.Writer, src event.Source) (int, int, error) {
	if _, err := io.WriteString(w, ansi.CursorPositionQuery); err != nil {
		return 0, 0, err
	}
	if f, ok := w.(crossterm.Flusher); ok {
		if err := f.Flush(); err != nil {
			return 0, 0, err
		}
	}

	for {
		ok, err := src.Poll(positionTimeout, event.CursorPositionFilter)
		if err != nil {
			return 0, 0, err
		}
		if !ok {
			return 0, 0, crossterm.ErrCursorPositionTimeout
		}

		ev, err := src.Read(event.CursorPositionFilter)
		if err != nil {
			return 0, 0, err
		}
		if pos, ok := ev.(event.CursorPosition); ok {
			return pos.X, pos.Y, nil
		}
		// The source handed back something the filter should have
		// rejected; ignore it and keep polling.
		logger.DefaultLogger.Debug("discarding unexpected event while reading cursor position", "event", ev)
	}
}
