package console

import (
	"math"
	"sync"

	"github.com/StephanvanSchaik/crossterm"
)

// CursorPosition returns the cursor cell as 0-based (column, row).
func CursorPosition() (int, int, error) {
	c, err := current()
	if err != nil {
		return 0, 0, err
	}
	return cursorPosition(c)
}

// MoveTo places the cursor at the 0-based (column, row) cell.
func MoveTo(column, row int) error {
	c, err := current()
	if err != nil {
		return err
	}
	return moveTo(c, column, row)
}

// MoveUp moves the cursor count rows up, stopping at the top edge.
func MoveUp(count int) error { return moveBy(0, -count) }

// MoveDown moves the cursor count rows down.
func MoveDown(count int) error { return moveBy(0, count) }

// MoveLeft moves the cursor count columns left, stopping at the left edge.
func MoveLeft(count int) error { return moveBy(-count, 0) }

// MoveRight moves the cursor count columns right.
func MoveRight(count int) error { return moveBy(count, 0) }

// MoveToColumn places the cursor on the given 0-based column of the current
// row.
func MoveToColumn(column int) error {
	c, err := current()
	if err != nil {
		return err
	}
	_, y, err := cursorPosition(c)
	if err != nil {
		return err
	}
	return moveTo(c, column, y)
}

// MoveToRow places the cursor on the given 0-based row, keeping the column.
func MoveToRow(row int) error {
	c, err := current()
	if err != nil {
		return err
	}
	x, _, err := cursorPosition(c)
	if err != nil {
		return err
	}
	return moveTo(c, x, row)
}

// MoveToNextLine places the cursor at the start of the row count rows down.
func MoveToNextLine(count int) error {
	c, err := current()
	if err != nil {
		return err
	}
	_, y, err := cursorPosition(c)
	if err != nil {
		return err
	}
	return moveTo(c, 0, y+count)
}

// MoveToPreviousLine places the cursor at the start of the row count rows
// up.
func MoveToPreviousLine(count int) error {
	c, err := current()
	if err != nil {
		return err
	}
	_, y, err := cursorPosition(c)
	if err != nil {
		return err
	}
	if y < count {
		y = count
	}
	return moveTo(c, 0, y-count)
}

var savedPosition struct {
	mu  sync.Mutex
	pos *Coord
}

// SavePosition remembers the current cursor cell for RestorePosition,
// mirroring the DECSC escape sequence.
func SavePosition() error {
	c, err := current()
	if err != nil {
		return err
	}
	info, err := c.ScreenBufferInfo()
	if err != nil {
		return err
	}
	savedPosition.mu.Lock()
	defer savedPosition.mu.Unlock()
	pos := info.CursorPosition
	savedPosition.pos = &pos
	return nil
}

// RestorePosition moves the cursor back to the cell remembered by
// SavePosition. Without a prior SavePosition it does nothing, like DECRC on
// a fresh terminal.
func RestorePosition() error {
	c, err := current()
	if err != nil {
		return err
	}
	savedPosition.mu.Lock()
	defer savedPosition.mu.Unlock()
	if savedPosition.pos == nil {
		return nil
	}
	return c.SetCursorPosition(*savedPosition.pos)
}

// SetCursorVisible shows or hides the cursor, keeping its size.
func SetCursorVisible(visible bool) error {
	c, err := current()
	if err != nil {
		return err
	}
	size, _, err := c.CursorInfo()
	if err != nil {
		return err
	}
	return c.SetCursorInfo(size, visible)
}

func cursorPosition(c API) (int, int, error) {
	info, err := c.ScreenBufferInfo()
	if err != nil {
		return 0, 0, err
	}
	return int(info.CursorPosition.X), int(info.CursorPosition.Y), nil
}

func moveTo(c API, column, row int) error {
	if column < 0 || column > math.MaxInt16 {
		return crossterm.CursorXOutOfRangeError{X: column}
	}
	if row < 0 || row > math.MaxInt16 {
		return crossterm.CursorYOutOfRangeError{Y: row}
	}
	return c.SetCursorPosition(Coord{X: int16(column), Y: int16(row)})
}

func moveBy(dx, dy int) error {
	c, err := current()
	if err != nil {
		return err
	}
	x, y, err := cursorPosition(c)
	if err != nil {
		return err
	}
	x += dx
	y += dy
	if x < 0 {
		x = 0
	}
	if y < 0 {
		y = 0
	}
	return moveTo(c, x, y)
}
