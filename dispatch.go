package crossterm

import (
	"fmt"
	"io"

	"github.com/StephanvanSchaik/crossterm/logger"
	"github.com/StephanvanSchaik/crossterm/terminal/utils"
)

// Flusher is the explicit flush operation of a buffered byte sink. Sinks
// that do not implement it (e.g. os.Stdout) are treated as unbuffered and
// flushing them is a no-op.
type Flusher interface {
	Flush() error
}

// Queue appends the effect of each command to w without forcing delivery.
//
// Queued commands take effect when w is flushed, either explicitly or as a
// side effect of its buffer filling up. When a command cannot use the ANSI
// surface, any bytes already queued are flushed first and the command is
// performed through the native console immediately; this keeps ANSI-rendered
// and natively-executed commands in program order.
func Queue(w io.Writer, commands ...Command) error {
	for _, command := range commands {
		if err := queue(w, command); err != nil {
			return err
		}
	}
	return nil
}

// Execute queues each command and then flushes w, guaranteeing every effect
// is visible on the terminal before it returns.
func Execute(w io.Writer, commands ...Command) error {
	if err := Queue(w, commands...); err != nil {
		return err
	}
	return flush(w)
}

// SyncUpdate brackets operations in a synchronized-update window: the begin
// marker is queued ahead of anything operations writes to w, and the end
// marker is executed (forcing a flush) after operations returns, even when
// operations fails. The error from operations wins over a failure to
// deliver the end marker.
func SyncUpdate(w io.Writer, operations func(w io.Writer) error) error {
	if err := Queue(w, BeginSynchronizedUpdate); err != nil {
		return err
	}
	opErr := operations(w)
	endErr := Execute(w, EndSynchronizedUpdate)
	if opErr != nil {
		return opErr
	}
	return endErr
}

func queue(w io.Writer, command Command) error {
	if !command.ANSISupported() {
		// There may be queued bytes in w, but the native call takes
		// effect immediately. Flush first so commands cannot be
		// observed out of order.
		if err := flush(w); err != nil {
			return err
		}
		logger.DefaultLogger.Debug("executing command through native console", "command", fmt.Sprintf("%T", command))
		return command.ExecuteNative()
	}
	return writeANSI(w, command)
}

func flush(w io.Writer) error {
	if f, ok := w.(Flusher); ok {
		return f.Flush()
	}
	return nil
}

// writeANSI renders command into w through a tracking adapter so a sink
// failure can be told apart from a failure of the command's own rendering
// routine. The latter breaks the Command contract and panics.
func writeANSI(w io.Writer, command Command) error {
	tw := &trackingWriter{w: w}
	if err := command.WriteANSI(tw); err != nil {
		utils.Assert(tw.err != nil, fmt.Sprintf("%T.WriteANSI errored without the sink failing", command))
		return tw.err
	}
	return nil
}

// trackingWriter records the first error reported by the underlying sink.
type trackingWriter struct {
	w   io.Writer
	err error
}

func (t *trackingWriter) Write(p []byte) (int, error) {
	n, err := t.w.Write(p)
	if err != nil && t.err == nil {
		t.err = err
	}
	return n, err
}
