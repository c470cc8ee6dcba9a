// Package crossterm is the command layer of a cross-platform terminal
// manipulation library. Terminal operations are expressed as [Command]
// values and delivered through [Queue], [Execute] and [SyncUpdate], which
// pick the control surface the running platform actually supports: the ANSI
// escape-code protocol written into a byte sink, or direct native console
// calls on Windows consoles without ANSI support.
package crossterm

import (
	"io"

	"github.com/StephanvanSchaik/crossterm/internal/ansisupport"
	"github.com/StephanvanSchaik/crossterm/terminal/ansi"
)

// Command is an action that can be performed on the terminal.
//
// A command is pure data: it holds no terminal state and is consumed once
// per dispatch call. The cursor and terminal packages provide the command
// set; there is rarely a reason to implement Command yourself.
type Command interface {
	// WriteANSI writes the ANSI escape representation of this command to
	// w. It must only fail when w itself fails.
	WriteANSI(w io.Writer) error

	// ExecuteNative performs this command through the native console API.
	// This path is only taken on Windows consoles that do not understand
	// ANSI sequences. Commands without a native equivalent implement this
	// as a no-op returning nil.
	ExecuteNative() error

	// ANSISupported reports whether the ANSI representation of this
	// command works on the active terminal. On platforms with a single
	// control surface this is constant true.
	ANSISupported() bool
}

// BeginSynchronizedUpdate opens a synchronized-update window. The terminal
// keeps rendering the last presented state until [EndSynchronizedUpdate] is
// delivered, which avoids tearing during rapid redraws.
//
// This command is ANSI-only: terminals without the extension ignore the
// marker bytes, and on consoles without ANSI support it does nothing at all.
var BeginSynchronizedUpdate Command = syncUpdateMarker{ansi.SyncUpdateStart}

// EndSynchronizedUpdate closes the window opened by
// [BeginSynchronizedUpdate]. Same surface rules apply.
var EndSynchronizedUpdate Command = syncUpdateMarker{ansi.SyncUpdateEnd}

type syncUpdateMarker struct {
	seq string
}

func (m syncUpdateMarker) WriteANSI(w io.Writer) error {
	_, err := io.WriteString(w, m.seq)
	return err
}

// No native equivalent exists, the extension is pure ANSI.
func (m syncUpdateMarker) ExecuteNative() error { return nil }

func (m syncUpdateMarker) ANSISupported() bool { return ansisupport.Supported() }
