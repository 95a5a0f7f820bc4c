package lsp

import (
	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/jsonx-lang/jsonx/parser"
	"github.com/jsonx-lang/jsonx/printer"
)

// formatEdits parses text under opts and, on success, returns a single
// TextEdit replacing the whole document with its canonical printed form.
// Formatting is canonical, like gofmt: there are no FormattingOptions to
// honor, and a document with a syntax error is left untouched rather than
// partially reformatted.
func formatEdits(text string, opts parser.Options, enc PositionEncoding) ([]protocol.TextEdit, error) {
	doc, err := parser.Parse(text, opts)
	if err != nil {
		return []protocol.TextEdit{}, nil
	}

	formatted := printer.PrintDocument(doc, printer.Options{Indent: 2})
	if formatted == text {
		return []protocol.TextEdit{}, nil
	}

	starts := lineStarts(text)
	lastLine, lastChar := offsetToLSPPosition(text, starts, len(text), enc)

	return []protocol.TextEdit{
		{
			Range: protocol.Range{
				Start: protocol.Position{Line: 0, Character: 0},
				End:   protocol.Position{Line: protocol.UInteger(lastLine), Character: protocol.UInteger(lastChar)},
			},
			NewText: formatted,
		},
	}, nil
}
