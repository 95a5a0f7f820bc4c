package perr

import (
	"fmt"

	"github.com/jsonx-lang/jsonx/location"
)

// Error is the single error type raised by [lexer] and [parser]. It is
// immutable after construction; build one with the package-level New*
// constructors, not a struct literal, so Kind is never left at its zero
// value.
type Error struct {
	kind    Kind
	loc     location.Location
	message string
}

// Kind returns the error's category.
func (e *Error) Kind() Kind {
	return e.kind
}

// Location returns the source position the error points at. For errors
// whose offending sequence straddles a token (an invalid \uXXXX inside a
// string, for example) this is the position of the backslash that
// introduced the escape, not the start of the enclosing token.
func (e *Error) Location() location.Location {
	return e.loc
}

// Message returns the human-readable description, without the trailing
// "(line:column)" suffix that [Error.Error] appends.
func (e *Error) Message() string {
	return e.message
}

// Error implements the error interface. The canonical display is the
// message followed by " (line:column)".
func (e *Error) Error() string {
	return fmt.Sprintf("%s (%d:%d)", e.message, e.loc.Line, e.loc.Column)
}

// NewUnexpectedChar reports a character that cannot begin any token.
func NewUnexpectedChar(loc location.Location, c rune) *Error {
	return &Error{
		kind:    KindUnexpectedChar,
		loc:     loc,
		message: fmt.Sprintf("Unexpected character '%c' found.", c),
	}
}

// NewUnexpectedIdentifier reports a json5 identifier run that is not a
// recognized keyword where one was required.
func NewUnexpectedIdentifier(loc location.Location, ident string) *Error {
	return &Error{
		kind:    KindUnexpectedIdentifier,
		loc:     loc,
		message: fmt.Sprintf("Unexpected identifier '%s' found.", ident),
	}
}

// NewUnexpectedToken reports a token of the wrong type at the current
// grammar position. kindName is the TokenType's display name (e.g.
// "RBracket", "Number").
func NewUnexpectedToken(loc location.Location, kindName string) *Error {
	return &Error{
		kind:    KindUnexpectedToken,
		loc:     loc,
		message: fmt.Sprintf("Unexpected token %s found.", kindName),
	}
}

// NewUnexpectedEOF reports input ending before a token, string, or comment
// was closed.
func NewUnexpectedEOF(loc location.Location) *Error {
	return &Error{
		kind:    KindUnexpectedEOF,
		loc:     loc,
		message: "Unexpected end of input found.",
	}
}

// NewInvalidUnicodeEscape reports a \u escape that did not have exactly
// four hex digits. hexText is whatever was found in that position (may be
// shorter than four characters, or contain a non-hex character).
func NewInvalidUnicodeEscape(loc location.Location, hexText string) *Error {
	return &Error{
		kind:    KindInvalidUnicodeEscape,
		loc:     loc,
		message: fmt.Sprintf("Invalid unicode escape \\u%s.", hexText),
	}
}

// NewInvalidEscape reports a \c escape whose character is not in the
// dialect's short-escape table, or a json5 \x escape without two hex
// digits (c is then 'x').
func NewInvalidEscape(loc location.Location, c rune) *Error {
	return &Error{
		kind:    KindInvalidEscape,
		loc:     loc,
		message: fmt.Sprintf("Invalid escape \\%c.", c),
	}
}
