package ansi

// CSI is the control sequence introducer. Most terminal manipulation
// sequences are CSI sequences.
const CSI = "\x1b["

// OSC is the operating system command introducer, used for sequences that
// talk to the terminal emulator itself (e.g. setting the window title).
const OSC = "\x1b]"

// ST is the string terminator used by OSC sequences. BEL is accepted by
// every emulator we care about and is shorter than ESC \.
const ST = "\a"

// Fixed sequences emitted by the command layer. Parameterized sequences are
// rendered with fmt directly against these introducers.
const (
	// Synchronized update markers (private mode 2026). Terminals that do
	// not implement the extension ignore them.
	SyncUpdateStart = CSI + "?2026h"
	SyncUpdateEnd   = CSI + "?2026l"

	// CursorPositionQuery asks the terminal to report the cursor position
	// as a CSI R response on the input stream.
	CursorPositionQuery = CSI + "6n"

	CursorShow = CSI + "?25h"
	CursorHide = CSI + "?25l"

	// DECSC/DECRC, save and restore the cursor position.
	CursorSave    = "\x1b7"
	CursorRestore = "\x1b8"

	// DECAWM, auto-wrap at the right margin.
	EnableLineWrap  = CSI + "?7h"
	DisableLineWrap = CSI + "?7l"

	// Erase in display.
	EraseAll        = CSI + "2J"
	EraseDown       = CSI + "J"
	EraseUp         = CSI + "1J"
	EraseScrollback = CSI + "3J"

	// Erase in line.
	EraseLine      = CSI + "2K"
	EraseUntilLine = CSI + "K"
)
