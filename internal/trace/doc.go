// Package trace provides optional debug logging helpers for the library.
//
// This package is an internal utility for developer observability. It is
// distinct from [perr.Error] (source-position errors raised by the lexer
// and parser) and plain error returns (argument/IO failures).
//
// # Internal Package
//
// This package is internal to the module and is not importable by external
// consumers per Go's internal/ package semantics. It is used by the lexer
// and parser packages.
//
// # Design Principles
//
//   - Near-zero cost when disabled: when the logger is nil, overhead is a
//     single nil check (~2ns). When the logger is non-nil but the level is
//     disabled, overhead includes the nil check plus a level test
//     (~3-4ns). The Lazy variants guarantee no allocation from attribute
//     construction when disabled.
//   - Stdlib only: uses [log/slog], preserving dependency hygiene for
//     something this close to the hot path.
//   - Logger injection: loggers are passed via options at API boundaries,
//     not stored in globals or read from environment variables.
//
// # Usage Patterns
//
// There are four patterns for logging, chosen based on attribute
// computation cost:
//
//   - [Begin]/[Op.End]: operation boundaries (start/end of a tokenize or
//     parse call). Use for wrapping top-level functions with automatic
//     duration measurement.
//   - [Debug], [Info], [Warn], [Error]: simple, pre-computed attributes.
//     The variadic args are evaluated at the call site even when logging
//     is disabled.
//   - [DebugLazy], [InfoLazy], [WarnLazy], [ErrorLazy]: computed
//     attributes. The function argument is not called when logging is
//     disabled, guaranteeing no allocation from attribute construction.
//   - [Enabled]: for complex control flow or multiple log calls at
//     different levels.
//
// # Context Handling
//
// All logging functions accept a context parameter and pass it through to
// the underlying [log/slog.Logger]. This enables context-scoped behaviors
// such as request-scoped logging values and cancellation-aware handlers.
//
// The Op Runner ([Begin]/[Op.End]) additionally:
//   - Includes "request_id" if present in context (via [WithRequestID])
//   - Checks context cancellation for "ctx_err" attribute
//
// # Op Runner
//
// The [Op] type provides consistent operation boundary logging with
// automatic duration measurement and cancellation handling. [Begin]
// returns nil when logging is disabled (nil logger or level below Debug).
// All [Op] methods are safe to call on nil.
//
//	func Parse(ctx context.Context, text string, opts Options) (ast.ValueNode, error) {
//	    op := trace.Begin(ctx, logger, "jsonx.parser.parse", slog.String("mode", opts.Mode.String()))
//	    defer op.End(nil)
//
//	    node, err := parseInternal(ctx, text, opts)
//	    if err != nil {
//	        op.End(err)
//	        return nil, err
//	    }
//
//	    op.End(nil)
//	    return node, nil
//	}
//
// The Op runner automatically logs:
//   - "op": operation name
//   - "request_id": if present in context (via [WithRequestID])
//   - "elapsed_ms": elapsed time in milliseconds (int64, machine-parseable)
//   - "duration": elapsed time as [time.Duration] (human-readable)
//   - "ctx_err": context error message if cancelled
//   - "error": error message if err != nil
//
// # Operation Names
//
// Operation names follow the format jsonx.<package>.<operation>:
//   - jsonx.lexer.tokenize
//   - jsonx.parser.parse
//
// Operation names are implementation details and may change without
// notice. Tests should not depend on the exact set of operation names.
package trace
