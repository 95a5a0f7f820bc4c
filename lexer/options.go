package lexer

import (
	"log/slog"

	"github.com/jsonx-lang/jsonx/token"
)

// Options configures a Lexer.
type Options struct {
	// Mode selects the dialect: json, jsonc, or json5.
	Mode token.Mode

	// Ranges, when true, attaches a [location.Range] byte-offset pair to
	// every token in addition to its [location.LocationRange].
	Ranges bool

	// Logger, when non-nil, receives debug-level entry/exit instrumentation
	// for Tokenize. Nil (the default) disables tracing entirely at near-zero
	// cost; see internal/trace.
	Logger *slog.Logger
}
