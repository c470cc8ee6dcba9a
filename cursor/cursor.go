// Package cursor provides the commands that move, show, hide and query the
// terminal cursor. All coordinates are 0-based (column, row).
package cursor

import (
	"fmt"
	"io"

	"github.com/StephanvanSchaik/crossterm"
	"github.com/StephanvanSchaik/crossterm/internal/ansisupport"
	"github.com/StephanvanSchaik/crossterm/terminal/ansi"
	"github.com/StephanvanSchaik/crossterm/terminal/console"
)

// MoveTo returns a command that places the cursor at (column, row).
func MoveTo(column, row int) crossterm.Command { return moveToCommand{column, row} }

// MoveToColumn returns a command that places the cursor on the given column
// of the current row.
func MoveToColumn(column int) crossterm.Command { return moveToColumnCommand{column} }

// MoveToRow returns a command that places the cursor on the given row,
// keeping the column.
func MoveToRow(row int) crossterm.Command { return moveToRowCommand{row} }

// MoveUp returns a command that moves the cursor count rows up.
func MoveUp(count int) crossterm.Command { return relativeMoveCommand{'A', count} }

// MoveDown returns a command that moves the cursor count rows down.
func MoveDown(count int) crossterm.Command { return relativeMoveCommand{'B', count} }

// MoveRight returns a command that moves the cursor count columns right.
func MoveRight(count int) crossterm.Command { return relativeMoveCommand{'C', count} }

// MoveLeft returns a command that moves the cursor count columns left.
func MoveLeft(count int) crossterm.Command { return relativeMoveCommand{'D', count} }

// MoveToNextLine returns a command that places the cursor at the start of
// the row count rows down.
func MoveToNextLine(count int) crossterm.Command { return relativeMoveCommand{'E', count} }

// MoveToPreviousLine returns a command that places the cursor at the start
// of the row count rows up.
func MoveToPreviousLine(count int) crossterm.Command { return relativeMoveCommand{'F', count} }

// SavePosition returns a command that remembers the cursor position for
// RestorePosition (DECSC).
func SavePosition() crossterm.Command { return fixedCommand{ansi.CursorSave, console.SavePosition} }

// RestorePosition returns a command that moves the cursor back to the last
// saved position (DECRC).
func RestorePosition() crossterm.Command {
	return fixedCommand{ansi.CursorRestore, console.RestorePosition}
}

// Show returns a command that makes the cursor visible.
func Show() crossterm.Command {
	return fixedCommand{ansi.CursorShow, func() error { return console.SetCursorVisible(true) }}
}

// Hide returns a command that makes the cursor invisible.
func Hide() crossterm.Command {
	return fixedCommand{ansi.CursorHide, func() error { return console.SetCursorVisible(false) }}
}

type moveToCommand struct {
	column int
	row    int
}

func (c moveToCommand) WriteANSI(w io.Writer) error {
	// ANSI coordinates are 1-based.
	_, err := fmt.Fprintf(w, "%s%d;%dH", ansi.CSI, c.row+1, c.column+1)
	return err
}

func (c moveToCommand) ExecuteNative() error { return console.MoveTo(c.column, c.row) }
func (c moveToCommand) ANSISupported() bool  { return ansisupport.Supported() }

type moveToColumnCommand struct {
	column int
}

func (c moveToColumnCommand) WriteANSI(w io.Writer) error {
	_, err := fmt.Fprintf(w, "%s%dG", ansi.CSI, c.column+1)
	return err
}

func (c moveToColumnCommand) ExecuteNative() error { return console.MoveToColumn(c.column) }
func (c moveToColumnCommand) ANSISupported() bool  { return ansisupport.Supported() }

type moveToRowCommand struct {
	row int
}

func (c moveToRowCommand) WriteANSI(w io.Writer) error {
	_, err := fmt.Fprintf(w, "%s%dd", ansi.CSI, c.row+1)
	return err
}

func (c moveToRowCommand) ExecuteNative() error { return console.MoveToRow(c.row) }
func (c moveToRowCommand) ANSISupported() bool  { return ansisupport.Supported() }

// relativeMoveCommand covers the CSI sequences that move the cursor
// relative to where it is: A/B/C/D for up/down/right/left and E/F for
// next/previous line.
type relativeMoveCommand struct {
	final byte
	count int
}

func (c relativeMoveCommand) WriteANSI(w io.Writer) error {
	_, err := fmt.Fprintf(w, "%s%d%c", ansi.CSI, c.count, c.final)
	return err
}

func (c relativeMoveCommand) ExecuteNative() error {
	switch c.final {
	case 'A':
		return console.MoveUp(c.count)
	case 'B':
		return console.MoveDown(c.count)
	case 'C':
		return console.MoveRight(c.count)
	case 'D':
		return console.MoveLeft(c.count)
	case 'E':
		return console.MoveToNextLine(c.count)
	default:
		return console.MoveToPreviousLine(c.count)
	}
}

func (c relativeMoveCommand) ANSISupported() bool { return ansisupport.Supported() }

// fixedCommand pairs a fixed escape sequence with its native counterpart.
type fixedCommand struct {
	seq    string
	native func() error
}

func (c fixedCommand) WriteANSI(w io.Writer) error {
	_, err := io.WriteString(w, c.seq)
	return err
}

func (c fixedCommand) ExecuteNative() error { return c.native() }
func (c fixedCommand) ANSISupported() bool  { return ansisupport.Supported() }
