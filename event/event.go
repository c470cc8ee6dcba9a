// Package event defines the input-event channel the command layer consumes.
//
// The escape-sequence parser producing these events lives outside this
// module; a host program installs its reader through SetSource once and the
// query protocols poll it. The only event variant the command layer itself
// depends on is the cursor-position report.
package event

import (
	"sync"
	"time"
)

// Event is a parsed terminal input event.
type Event interface {
	event()
}

// CursorPosition is the terminal's answer to a cursor-position query: the
// 0-based (column, row) cell the cursor is on.
type CursorPosition struct {
	X int
	Y int
}

func (CursorPosition) event() {}

// Filter selects the events a poll or read call is interested in.
// Non-matching events are kept for other consumers, not discarded.
type Filter func(Event) bool

// CursorPositionFilter matches only cursor-position reports.
var CursorPositionFilter Filter = func(e Event) bool {
	_, ok := e.(CursorPosition)
	return ok
}

// Source is an ordered channel of parsed input events.
type Source interface {
	// Poll waits until an event matching f is available or the timeout
	// elapses, reporting whether a matching event can be read.
	Poll(timeout time.Duration, f Filter) (bool, error)

	// Read returns the next event matching f, blocking until one arrives.
	Read(f Filter) (Event, error)
}

var (
	sourceMu sync.Mutex
	source   Source
)

// SetSource installs the process-wide event source. The command layer
// assumes a single coordinating owner per process; installing a source while
// another goroutine is polling the previous one is undefined with respect to
// ordering.
func SetSource(s Source) {
	sourceMu.Lock()
	defer sourceMu.Unlock()
	source = s
}

// DefaultSource returns the installed event source, or nil when none has
// been installed yet.
func DefaultSource() Source {
	sourceMu.Lock()
	defer sourceMu.Unlock()
	return source
}
