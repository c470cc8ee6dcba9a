package console

// ClearType selects the region a clear operation blanks.
type ClearType uint8

const (
	// ClearAll blanks the entire screen and moves the cursor to the
	// origin.
	ClearAll ClearType = iota
	// ClearPurge additionally drops the scrollback on ANSI terminals. The
	// native console keeps no scrollback beyond the buffer, so it behaves
	// like ClearAll here.
	// TODO flush the whole screen buffer for ClearPurge instead of just
	// the visible window.
	ClearPurge
	// ClearFromCursorDown blanks from the cursor to the end of the
	// screen.
	ClearFromCursorDown
	// ClearFromCursorUp blanks from the start of the screen through the
	// cursor.
	ClearFromCursorUp
	// ClearCurrentLine blanks the cursor's row and moves the cursor to
	// the start of that row.
	ClearCurrentLine
	// ClearUntilNewLine blanks from the cursor to the end of the row,
	// leaving the cursor where it was.
	ClearUntilNewLine
)

// Clear blanks a region of the console screen buffer. The region is
// computed from the clear type, the cursor position and the buffer geometry,
// all taken from a fresh snapshot, and is overwritten with blank cells
// carrying the current text attribute.
func Clear(t ClearType) error {
	c, err := current()
	if err != nil {
		return err
	}
	return clear(c, t)
}

func clear(c API, t ClearType) error {
	info, err := c.ScreenBufferInfo()
	if err != nil {
		return err
	}

	pos := info.CursorPosition
	size := info.Size
	attribute := info.Attributes

	switch t {
	case ClearFromCursorDown:
		return clearAfterCursor(c, pos, size, attribute)
	case ClearFromCursorUp:
		return clearBeforeCursor(c, pos, size, attribute)
	case ClearCurrentLine:
		return clearCurrentLine(c, pos, size, attribute)
	case ClearUntilNewLine:
		return clearUntilLine(c, pos, size, attribute)
	default:
		return clearEntireScreen(c, size, attribute)
	}
}

func clearAfterCursor(c API, pos Coord, size Coord, attribute uint16) error {
	x, y := pos.X, pos.Y

	// A cursor past the outer right edge belongs to the next row.
	if x > size.X {
		y++
		x = 0
	}

	// The fill is clamped at the end of the buffer, so the remainder of
	// the screen is simply "everything from here".
	count := uint32(size.X) * uint32(size.Y)
	return fillBlank(c, Coord{X: x, Y: y}, count, attribute)
}

func clearBeforeCursor(c API, pos Coord, size Coord, attribute uint16) error {
	// All full rows above the cursor, plus the partial row through the
	// cursor cell itself.
	count := uint32(size.X)*uint32(pos.Y) + uint32(pos.X) + 1
	return fillBlank(c, Coord{X: 0, Y: 0}, count, attribute)
}

func clearEntireScreen(c API, size Coord, attribute uint16) error {
	count := uint32(size.X) * uint32(size.Y)
	if err := fillBlank(c, Coord{X: 0, Y: 0}, count, attribute); err != nil {
		return err
	}
	// Clearing the whole screen homes the cursor, matching the ANSI
	// sequence convention.
	return c.SetCursorPosition(Coord{X: 0, Y: 0})
}

func clearCurrentLine(c API, pos Coord, size Coord, attribute uint16) error {
	if err := fillBlank(c, Coord{X: 0, Y: pos.Y}, uint32(size.X), attribute); err != nil {
		return err
	}
	// The cursor ends up at the start of the cleared row.
	return c.SetCursorPosition(Coord{X: 0, Y: pos.Y})
}

func clearUntilLine(c API, pos Coord, size Coord, attribute uint16) error {
	count := uint32(size.X - pos.X)
	if err := fillBlank(c, pos, count, attribute); err != nil {
		return err
	}
	// The fill moved the native cursor; put it back where it was.
	return c.SetCursorPosition(pos)
}

func fillBlank(c API, start Coord, count uint32, attribute uint16) error {
	if err := c.FillCharacter(start, count, ' '); err != nil {
		return err
	}
	return c.FillAttribute(start, count, attribute)
}
