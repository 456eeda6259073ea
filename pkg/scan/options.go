package scan

import (
	"log/slog"

	slogmulti "github.com/samber/slog-multi"
)

// Options configures cursor behavior.
type Options struct {
	// Trace, if not nil, receives a debug record for every whitespace skip,
	// popped token and literal match performed by the cursor and its
	// successors. Records carry "offset" and, where relevant, "token" and
	// "source" attributes.
	// Default: nil (tracing disabled)
	Trace *slog.Logger
}

// DefaultOptions returns the default cursor configuration.
func DefaultOptions() Options {
	return Options{
		Trace: nil,
	}
}

// NewTraceLogger returns a logger for Options.Trace that forwards each record
// to every handler that accepts it. Handlers choose their own level; trace
// records are emitted at slog.LevelDebug.
//
// Example:
//
//	opts := scan.DefaultOptions()
//	opts.Trace = scan.NewTraceLogger(
//	    slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}),
//	    slog.NewJSONHandler(traceFile, &slog.HandlerOptions{Level: slog.LevelDebug}),
//	)
func NewTraceLogger(handlers ...slog.Handler) *slog.Logger {
	return slog.New(slogmulti.Fanout(handlers...))
}
