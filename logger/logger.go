package logger

import (
	"io"
	"log/slog"
)

type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

type Options struct {
	Buffer io.Writer
	Level  Level
	Type   Type
}

// DefaultLogger is the logger the library emits debug traces through. It
// discards everything by default: a terminal-control library must not write
// log lines into the terminal it is manipulating. Reassign it (or point it
// at a file) to see what the dispatch layer is doing.
var DefaultLogger = NewNop()

type logger struct {
	*slog.Logger
}

func New(opts Options) Logger {
	var handler slog.Handler
	switch opts.Type {
	case TypeJSON:
		handler = slog.NewJSONHandler(opts.Buffer, &slog.HandlerOptions{
			Level: levels[opts.Level],
		})
	case TypeText:
		fallthrough
	default:
		handler = slog.NewTextHandler(opts.Buffer, &slog.HandlerOptions{
			Level: levels[opts.Level],
		})
	}
	return &logger{
		Logger: slog.New(handler),
	}
}

// NewNop returns a logger that drops every record.
func NewNop() Logger {
	return New(Options{Buffer: io.Discard, Level: ErrorLevel, Type: TypeText})
}
