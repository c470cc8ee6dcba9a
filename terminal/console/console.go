// Package console drives the native console control surface on platforms
// whose terminal does not understand ANSI escape sequences.
//
// The OS console object is a process-wide resource that can change between
// calls (handles can be redirected), so every exported operation looks the
// console up fresh through current() instead of caching it. The operations
// themselves are written against the API interface, which mirrors the
// Windows console surface closely enough that tests can substitute a fake.
package console

// Coord is a cell coordinate or a size in cells, in the console's native
// zero-based coordinate system.
type Coord struct {
	X int16
	Y int16
}

// Rect is a window rectangle in buffer coordinates, edges inclusive.
type Rect struct {
	Left   int16
	Top    int16
	Right  int16
	Bottom int16
}

// ScreenBufferInfo is a snapshot of the console screen buffer. It is
// fetched fresh before every geometry-dependent operation; the OS may have
// resized the console since the last call.
type ScreenBufferInfo struct {
	// Size is the screen buffer size in cells.
	Size Coord
	// CursorPosition is the cursor cell in buffer coordinates.
	CursorPosition Coord
	// Attributes is the current text attribute used for fills.
	Attributes uint16
	// Window is the visible window within the buffer.
	Window Rect
	// MaximumWindowSize is the largest window the display allows.
	MaximumWindowSize Coord
}

// API is the slice of the native console surface this package needs. The
// real implementation opens a fresh console handle per call.
type API interface {
	InputMode() (uint32, error)
	SetInputMode(mode uint32) error
	OutputMode() (uint32, error)
	SetOutputMode(mode uint32) error

	ScreenBufferInfo() (ScreenBufferInfo, error)
	SetBufferSize(size Coord) error
	SetWindowInfo(window Rect) error
	SetCursorPosition(pos Coord) error
	CursorInfo() (size uint32, visible bool, err error)
	SetCursorInfo(size uint32, visible bool) error
	LargestWindowSize() (Coord, error)

	// FillCharacter and FillAttribute overwrite count cells starting at
	// start, wrapping across rows.
	FillCharacter(start Coord, count uint32, char rune) error
	FillAttribute(start Coord, count uint32, attribute uint16) error

	// SetTitle sets the console window title from null-terminated UTF-16
	// code units.
	SetTitle(title []uint16) error
}

// Console input mode bits, as defined by the platform.
const (
	enableProcessedInput uint32 = 0x0001
	enableLineInput      uint32 = 0x0002
	enableEchoInput      uint32 = 0x0004

	// cookedModeMask holds the bits that cannot be set in raw mode: line
	// buffering, input echo and signal-generating keys.
	cookedModeMask = enableLineInput | enableEchoInput | enableProcessedInput
)

// Console output mode bits.
const (
	enableWrapAtEOLOutput uint32 = 0x0002
)
