// Package location provides the source position types shared by the lexer,
// parser, printer, and diagnostics.
//
// # Location
//
// Location identifies a single point in a source text:
//   - Line: 1-based line number.
//   - Column: 1-based column, counted in runes from the start of the line.
//   - Offset: 0-based byte index into the source.
//
// Offset is byte-based rather than UTF-16-code-unit-based. Either choice
// is workable as long as it is documented; byte offsets are picked here
// because Go strings
// are UTF-8 byte sequences, so a byte offset slices source text directly
// with no conversion step. LSP clients index positions in UTF-16 code
// units; the lsp package converts at that boundary, the same separation
// of concerns its position-conversion helper uses.
//
// # LocationRange
//
// LocationRange is a half-open range [Start, End) over a source text. End is
// exclusive, matching the convention used throughout the AST: a node's
// LocationRange.End is the position immediately after its last byte.
//
// # Dependencies
//
// This package depends only on the standard library. It sits at the
// foundation of the module and must never import the lexer, parser, ast, or
// printer packages.
package location
