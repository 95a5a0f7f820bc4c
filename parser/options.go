package parser

import (
	"log/slog"

	"github.com/jsonx-lang/jsonx/token"
)

// Options configures Parse.
type Options struct {
	// Mode selects the dialect: json, jsonc, or json5.
	Mode token.Mode

	// Ranges, when true, attaches a [location.Range] byte-offset pair to
	// every AST node and token.
	Ranges bool

	// Tokens, when true, retains the full token stream (including
	// comments) on the returned Document.
	Tokens bool

	// AllowTrailingCommas permits a trailing comma before a closing `}`
	// or `]` in json/jsonc mode. json5 always allows it regardless of
	// this setting.
	AllowTrailingCommas bool

	// Logger, when non-nil, receives debug-level entry/exit instrumentation
	// for Parse. Nil (the default) disables tracing entirely at near-zero
	// cost; see internal/trace.
	Logger *slog.Logger
}
