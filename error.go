package crossterm

import (
	"errors"
	"fmt"
)

// The closed set of failures this library produces. I/O failures coming from
// the byte sink or from a native console call are returned as-is (or wrapped
// with %w) so callers can still match them with errors.Is / errors.As.
var (
	// ErrCouldNotParseEvent is returned when the terminal sends back a
	// malformed response to a query sequence.
	ErrCouldNotParseEvent = errors.New("could not parse event")

	// ErrKeyboardEnhancementTimeout is returned when the keyboard
	// enhancement status could not be read within a normal duration.
	ErrKeyboardEnhancementTimeout = errors.New("the keyboard enhancement status could not be read within a normal duration")

	// ErrCursorPositionTimeout is returned when the cursor position could
	// not be read within a normal duration.
	ErrCursorPositionTimeout = errors.New("the cursor position could not be read within a normal duration")

	// ErrInputReader is returned when no input-event source is available to
	// answer a terminal query.
	ErrInputReader = errors.New("failed to initialize input reader")

	// ErrWidthTooSmall is returned when a resize requests a width of 0 or 1.
	ErrWidthTooSmall = errors.New("terminal width is too small")

	// ErrHeightTooSmall is returned when a resize requests a height of 0 or 1.
	ErrHeightTooSmall = errors.New("terminal height is too small")

	// ErrWidthTooLarge is returned when a resize requests a width beyond
	// what the console can represent or display.
	ErrWidthTooLarge = errors.New("terminal width is too large")

	// ErrHeightTooLarge is returned when a resize requests a height beyond
	// what the console can represent or display.
	ErrHeightTooLarge = errors.New("terminal height is too large")

	// ErrSetUnderlineColorUnsupported is returned when the active terminal
	// cannot set an underline color.
	ErrSetUnderlineColorUnsupported = errors.New("setting the underline color is not supported")

	// ErrBracketedPasteUnsupported is returned when the active terminal
	// cannot do bracketed paste.
	ErrBracketedPasteUnsupported = errors.New("bracketed paste is not supported")

	// ErrKeyboardProgressiveEnhancementUnsupported is returned when the
	// active terminal cannot do keyboard progressive enhancement.
	ErrKeyboardProgressiveEnhancementUnsupported = errors.New("keyboard progressive enhancement is not supported")
)

// CursorXOutOfRangeError is returned when a cursor column cannot be
// represented in the native console coordinate system.
type CursorXOutOfRangeError struct {
	X int
}

func (e CursorXOutOfRangeError) Error() string {
	return fmt.Sprintf("cursor position X %d is out of range", e.X)
}

// CursorYOutOfRangeError is returned when a cursor row cannot be represented
// in the native console coordinate system.
type CursorYOutOfRangeError struct {
	Y int
}

func (e CursorYOutOfRangeError) Error() string {
	return fmt.Sprintf("cursor position Y %d is out of range", e.Y)
}
