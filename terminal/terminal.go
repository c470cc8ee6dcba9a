// Package terminal provides the commands that manipulate the terminal
// screen and window, plus raw-mode control and the terminal size query.
package terminal

import (
	"fmt"
	"io"

	"github.com/StephanvanSchaik/crossterm"
	"github.com/StephanvanSchaik/crossterm/internal/ansisupport"
	"github.com/StephanvanSchaik/crossterm/terminal/ansi"
	"github.com/StephanvanSchaik/crossterm/terminal/console"
)

// ClearType selects the region a Clear command blanks. See the console
// package for the variants and their cursor side effects.
type ClearType = console.ClearType

const (
	ClearAll            = console.ClearAll
	ClearPurge          = console.ClearPurge
	ClearFromCursorDown = console.ClearFromCursorDown
	ClearFromCursorUp   = console.ClearFromCursorUp
	ClearCurrentLine    = console.ClearCurrentLine
	ClearUntilNewLine   = console.ClearUntilNewLine
)

// Clear returns a command that blanks a region of the terminal.
func Clear(t ClearType) crossterm.Command { return clearCommand{t} }

// ScrollUp returns a command that scrolls the terminal up by count rows.
func ScrollUp(count int) crossterm.Command { return scrollUpCommand{count} }

// ScrollDown returns a command that scrolls the terminal down by count
// rows.
func ScrollDown(count int) crossterm.Command { return scrollDownCommand{count} }

// SetSize returns a command that resizes the terminal window to the given
// number of columns and rows.
func SetSize(columns, rows int) crossterm.Command { return setSizeCommand{columns, rows} }

// SetTitle returns a command that changes the terminal window title.
func SetTitle(title string) crossterm.Command { return setTitleCommand{title} }

// EnableLineWrap returns a command that makes output wrap at the right
// margin again.
func EnableLineWrap() crossterm.Command { return lineWrapCommand{enable: true} }

// DisableLineWrap returns a command that stops output from wrapping at the
// right margin.
func DisableLineWrap() crossterm.Command { return lineWrapCommand{enable: false} }

type clearCommand struct {
	kind ClearType
}

func (c clearCommand) WriteANSI(w io.Writer) error {
	var seq string
	switch c.kind {
	case ClearPurge:
		seq = ansi.EraseScrollback
	case ClearFromCursorDown:
		seq = ansi.EraseDown
	case ClearFromCursorUp:
		seq = ansi.EraseUp
	case ClearCurrentLine:
		seq = ansi.EraseLine
	case ClearUntilNewLine:
		seq = ansi.EraseUntilLine
	default:
		seq = ansi.EraseAll
	}
	_, err := io.WriteString(w, seq)
	return err
}

func (c clearCommand) ExecuteNative() error { return console.Clear(c.kind) }
func (c clearCommand) ANSISupported() bool  { return ansisupport.Supported() }

type scrollUpCommand struct {
	count int
}

func (c scrollUpCommand) WriteANSI(w io.Writer) error {
	_, err := fmt.Fprintf(w, "%s%dS", ansi.CSI, c.count)
	return err
}

func (c scrollUpCommand) ExecuteNative() error { return console.ScrollUp(c.count) }
func (c scrollUpCommand) ANSISupported() bool  { return ansisupport.Supported() }

type scrollDownCommand struct {
	count int
}

func (c scrollDownCommand) WriteANSI(w io.Writer) error {
	_, err := fmt.Fprintf(w, "%s%dT", ansi.CSI, c.count)
	return err
}

func (c scrollDownCommand) ExecuteNative() error { return console.ScrollDown(c.count) }
func (c scrollDownCommand) ANSISupported() bool  { return ansisupport.Supported() }

type setSizeCommand struct {
	columns int
	rows    int
}

func (c setSizeCommand) WriteANSI(w io.Writer) error {
	_, err := fmt.Fprintf(w, "%s8;%d;%dt", ansi.CSI, c.rows, c.columns)
	return err
}

func (c setSizeCommand) ExecuteNative() error { return console.SetSize(c.columns, c.rows) }
func (c setSizeCommand) ANSISupported() bool  { return ansisupport.Supported() }

type setTitleCommand struct {
	title string
}

func (c setTitleCommand) WriteANSI(w io.Writer) error {
	_, err := fmt.Fprintf(w, "%s0;%s%s", ansi.OSC, c.title, ansi.ST)
	return err
}

func (c setTitleCommand) ExecuteNative() error { return console.SetTitle(c.title) }
func (c setTitleCommand) ANSISupported() bool  { return ansisupport.Supported() }

type lineWrapCommand struct {
	enable bool
}

func (c lineWrapCommand) WriteANSI(w io.Writer) error {
	seq := ansi.DisableLineWrap
	if c.enable {
		seq = ansi.EnableLineWrap
	}
	_, err := io.WriteString(w, seq)
	return err
}

func (c lineWrapCommand) ExecuteNative() error {
	if c.enable {
		return console.EnableLineWrap()
	}
	return console.DisableLineWrap()
}

func (c lineWrapCommand) ANSISupported() bool { return ansisupport.Supported() }
