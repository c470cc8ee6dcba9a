package crossterm

import "io"

// Writer wraps a byte sink with chainable command dispatch. The sink is
// borrowed: Writer never closes it and holds no state besides the
// reference, so wrapping the same sink twice is harmless.
type Writer struct {
	w io.Writer
}

// NewWriter wraps w for command dispatch.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// Queue queues the given commands on the underlying sink. The returned
// handle is the receiver, so calls can be chained while still checking
// every error.
func (wr *Writer) Queue(commands ...Command) (*Writer, error) {
	return wr, Queue(wr.w, commands...)
}

// Execute queues the given commands and flushes the underlying sink.
func (wr *Writer) Execute(commands ...Command) (*Writer, error) {
	return wr, Execute(wr.w, commands...)
}

// SyncUpdate runs operations inside a synchronized-update window on the
// underlying sink.
func (wr *Writer) SyncUpdate(operations func(w io.Writer) error) error {
	return SyncUpdate(wr.w, operations)
}

// Write passes raw bytes through to the underlying sink, so a Writer can be
// used anywhere an io.Writer is expected.
func (wr *Writer) Write(p []byte) (int, error) {
	return wr.w.Write(p)
}

// Flush flushes the underlying sink if it is buffered.
func (wr *Writer) Flush() error {
	return flush(wr.w)
}
