package lsp

import (
	"errors"

	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/jsonx-lang/jsonx/parser"
	"github.com/jsonx-lang/jsonx/perr"
)

const diagnosticSource = "jsonx"

// severityFor maps a tagged parse-error kind to an LSP diagnostic severity.
// Every kind this front end produces is a hard syntax error today; the
// mapping is kept explicit (rather than a constant return) so a future
// advisory kind — e.g. a deprecation warning — has an obvious home.
func severityFor(kind perr.Kind) protocol.DiagnosticSeverity {
	switch kind {
	case perr.KindUnexpectedChar,
		perr.KindUnexpectedIdentifier,
		perr.KindUnexpectedToken,
		perr.KindUnexpectedEOF,
		perr.KindInvalidUnicodeEscape,
		perr.KindInvalidEscape:
		return protocol.DiagnosticSeverityError
	default:
		return protocol.DiagnosticSeverityError
	}
}

// diagnosticsFor parses text under opts and returns the diagnostics to
// publish for it. The parser never recovers from a syntax error, so the
// result holds at most one diagnostic.
func diagnosticsFor(text string, opts parser.Options) []protocol.Diagnostic {
	_, err := parser.Parse(text, opts)
	if err == nil {
		return []protocol.Diagnostic{}
	}

	var perrErr *perr.Error
	if !errors.As(err, &perrErr) {
		return []protocol.Diagnostic{}
	}

	starts := lineStarts(text)
	loc := perrErr.Location()
	line, char := offsetToLSPPosition(text, starts, loc.Offset, PositionEncodingUTF16)

	rng := protocol.Range{
		Start: protocol.Position{Line: protocol.UInteger(line), Character: protocol.UInteger(char)},
		End:   protocol.Position{Line: protocol.UInteger(line), Character: protocol.UInteger(char + 1)},
	}

	severity := severityFor(perrErr.Kind())
	msg := perrErr.Message()
	src := diagnosticSource

	return []protocol.Diagnostic{
		{
			Range:    rng,
			Severity: &severity,
			Source:   &src,
			Message:  msg,
		},
	}
}
