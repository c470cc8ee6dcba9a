package crossterm

import (
	"errors"
	"fmt"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingSink records every write and flush in order, optionally failing.
type recordingSink struct {
	events   []string
	writeErr error
	flushErr error
}

func (s *recordingSink) Write(p []byte) (int, error) {
	s.events = append(s.events, "write:"+string(p))
	if s.writeErr != nil {
		return 0, s.writeErr
	}
	return len(p), nil
}

func (s *recordingSink) Flush() error {
	s.events = append(s.events, "flush")
	return s.flushErr
}

func (s *recordingSink) flushes() int {
	n := 0
	for _, e := range s.events {
		if e == "flush" {
			n++
		}
	}
	return n
}

// ansiCommand renders a fixed sequence and always reports ANSI viability.
type ansiCommand struct {
	seq string
}

func (c ansiCommand) WriteANSI(w io.Writer) error {
	_, err := io.WriteString(w, c.seq)
	return err
}

func (c ansiCommand) ExecuteNative() error { return nil }
func (c ansiCommand) ANSISupported() bool  { return true }

// nativeCommand refuses the ANSI surface and records its native execution
// in the sink's event log, so ordering with writes and flushes is visible.
type nativeCommand struct {
	sink *recordingSink
	err  error
}

func (c nativeCommand) WriteANSI(io.Writer) error { return nil }

func (c nativeCommand) ExecuteNative() error {
	c.sink.events = append(c.sink.events, "native")
	return c.err
}

func (c nativeCommand) ANSISupported() bool { return false }

// brokenCommand errors without touching the sink, violating the Command
// contract.
type brokenCommand struct{}

func (brokenCommand) WriteANSI(io.Writer) error { return errors.New("internal formatting error") }
func (brokenCommand) ExecuteNative() error      { return nil }
func (brokenCommand) ANSISupported() bool       { return true }

func TestQueueWritesWithoutFlushing(t *testing.T) {
	sink := &recordingSink{}

	err := Queue(sink, ansiCommand{"\x1b[2J"}, ansiCommand{"\x1b[1;1H"})
	require.NoError(t, err)

	assert.Equal(t, []string{"write:\x1b[2J", "write:\x1b[1;1H"}, sink.events)
}

func TestQueueFlushesBeforeNativeFallback(t *testing.T) {
	sink := &recordingSink{}

	// The queued ANSI bytes must reach the terminal before the native
	// call takes effect.
	err := Queue(sink, ansiCommand{"a"}, nativeCommand{sink: sink}, ansiCommand{"b"})
	require.NoError(t, err)

	assert.Equal(t, []string{"write:a", "flush", "native", "write:b"}, sink.events)
}

func TestExecuteFlushesOncePerCall(t *testing.T) {
	sink := &recordingSink{}
	require.NoError(t, Execute(sink, ansiCommand{"x"}))
	assert.Equal(t, 1, sink.flushes())
}

func TestExecuteFlushCountsNativeFallbacks(t *testing.T) {
	// One flush ahead of the fallback plus the final flush of Execute.
	sink := &recordingSink{}
	require.NoError(t, Execute(sink, nativeCommand{sink: sink}))
	assert.Equal(t, 2, sink.flushes())
	assert.Equal(t, []string{"flush", "native", "flush"}, sink.events)
}

func TestExecuteOnUnbufferedSink(t *testing.T) {
	// Sinks without a Flush method are treated as unbuffered.
	var buf writerOnly
	err := Execute(&buf, ansiCommand{"\x1b[2J"})
	require.NoError(t, err)
	assert.Equal(t, "\x1b[2J", buf.String())
}

type writerOnly struct {
	data []byte
}

func (w *writerOnly) Write(p []byte) (int, error) {
	w.data = append(w.data, p...)
	return len(p), nil
}

func (w *writerOnly) String() string { return string(w.data) }

func TestQueuePropagatesSinkError(t *testing.T) {
	sinkErr := errors.New("broken pipe")
	sink := &recordingSink{writeErr: sinkErr}

	err := Queue(sink, ansiCommand{"x"})
	assert.ErrorIs(t, err, sinkErr)
}

func TestQueuePropagatesNativeError(t *testing.T) {
	nativeErr := errors.New("console call failed")
	sink := &recordingSink{}

	err := Queue(sink, nativeCommand{sink: sink, err: nativeErr})
	assert.ErrorIs(t, err, nativeErr)
}

func TestBrokenCommandPanics(t *testing.T) {
	sink := &recordingSink{}
	assert.Panics(t, func() {
		_ = Queue(sink, brokenCommand{})
	})
}

func TestSyncUpdateOrdering(t *testing.T) {
	sink := &recordingSink{}

	err := SyncUpdate(sink, func(w io.Writer) error {
		return Queue(w, ansiCommand{"body"})
	})
	require.NoError(t, err)

	assert.Equal(t, []string{
		"write:\x1b[?2026h",
		"write:body",
		"write:\x1b[?2026l",
		"flush",
	}, sink.events)
}

func TestSyncUpdatePassesOperationsErrorThrough(t *testing.T) {
	sink := &recordingSink{}
	opErr := errors.New("render failed")

	err := SyncUpdate(sink, func(io.Writer) error { return opErr })
	assert.ErrorIs(t, err, opErr)

	// The window is still closed and flushed.
	assert.Equal(t, []string{
		"write:\x1b[?2026h",
		"write:\x1b[?2026l",
		"flush",
	}, sink.events)
}

func TestSyncUpdateSinkFailsMidway(t *testing.T) {
	sink := &recordingSink{}
	sinkErr := errors.New("sink gone")

	err := SyncUpdate(sink, func(w io.Writer) error {
		// The sink dies while the operations run.
		sink.writeErr = sinkErr
		return Queue(w, ansiCommand{"body"})
	})

	// The operations' failure wins, but the end marker was still
	// attempted before returning.
	assert.ErrorIs(t, err, sinkErr)
	assert.Contains(t, sink.events, "write:\x1b[?2026l")
}

func TestWriterChaining(t *testing.T) {
	sink := &recordingSink{}
	wr := NewWriter(sink)

	_, err := wr.Queue(ansiCommand{"a"})
	require.NoError(t, err)
	_, err = wr.Execute(ansiCommand{"b"})
	require.NoError(t, err)

	assert.Equal(t, []string{"write:a", "write:b", "flush"}, sink.events)
}

func TestWriterIsAByteSink(t *testing.T) {
	sink := &recordingSink{}
	wr := NewWriter(sink)

	// Raw bytes interleave with commands in program order.
	_, err := wr.Queue(ansiCommand{"a"})
	require.NoError(t, err)
	_, err = fmt.Fprint(wr, "text")
	require.NoError(t, err)
	require.NoError(t, wr.Flush())

	assert.Equal(t, []string{"write:a", "write:text", "flush"}, sink.events)
}
