package diag

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

// NewLogger builds bark's structured diagnostics logger, writing
// newline-delimited JSON to w so it never interleaves with the TUI's own
// screen output (stdout/stderr are both owned by the terminal backend
// while the program runs).
//
// eviltik-docker-tui has no logging library of its own (it writes
// ad-hoc fmt.Fprintf to a crash file only), and no retrieved example
// carries a structured logger either, so this reaches past the pack for
// github.com/rs/zerolog, a standard ecosystem choice for the same
// newline-JSON shape eviltik-docker-tui's own crash log already favors.
func NewLogger(w io.Writer) zerolog.Logger {
	return zerolog.New(w).With().Timestamp().Logger()
}

// NewFileLogger opens path for append and returns a logger writing to
// it, falling back to a discard logger (never to stderr, which the TUI
// owns) if the file can't be opened.
func NewFileLogger(path string) zerolog.Logger {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return zerolog.New(io.Discard)
	}
	return NewLogger(f)
}
