package ast

import (
	"github.com/jsonx-lang/jsonx/location"
	"github.com/jsonx-lang/jsonx/token"
)

// Document is the root of a parse: the single top-level value plus,
// optionally, the full token stream the parser consumed to produce it.
// Document is a structural wrapper like Member and Element, not a
// ValueNode — a document is never nested inside another value.
type Document struct {
	Loc   location.LocationRange
	Range *location.Range
	Body  ValueNode

	// Tokens holds every token.Token the lexer produced, including
	// comments, when the parser was configured with the tokens option.
	// It is nil otherwise.
	Tokens []token.Token
}

// NewDocument builds a Document wrapping body. tokens may be nil.
func NewDocument(parts NodeParts, body ValueNode, tokens []token.Token) *Document {
	return &Document{Loc: parts.Loc, Range: parts.Range, Body: body, Tokens: tokens}
}
