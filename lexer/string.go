package lexer

import (
	"github.com/jsonx-lang/jsonx/location"
	"github.com/jsonx-lang/jsonx/perr"
	"github.com/jsonx-lang/jsonx/token"
)

// scanString is entered with the reader positioned on the opening
// delimiter (" in every mode, or ' in json5), not yet consumed. It scans
// to the matching closing delimiter without decoding escapes — that is
// [internal/textlit.Decode]'s job once the parser has the token's raw
// text. The lexer only needs to recognize where an escape sequence ends
// so a delimiter or backslash inside one is not mistaken for the string's
// end.
func (l *Lexer) scanString(start location.Location, quote rune) (token.Type, error) {
	l.r.Next() // consume opening quote

	for {
		if l.r.AtEOF() {
			return l.fail(perr.NewUnexpectedEOF(l.r.Locate()))
		}
		c := l.r.Next()
		if c == quote {
			return l.emit(token.String, start)
		}
		if c != '\\' {
			continue
		}
		if l.r.AtEOF() {
			return l.fail(perr.NewUnexpectedEOF(l.r.Locate()))
		}
		switch l.r.Next() {
		case 'u':
			for i := 0; i < 4 && !l.r.AtEOF() && isHexDigit(l.r.Peek()); i++ {
				l.r.Next()
			}
		case 'x':
			if l.opts.Mode.IsJSON5() {
				for i := 0; i < 2 && !l.r.AtEOF() && isHexDigit(l.r.Peek()); i++ {
					l.r.Next()
				}
			}
		case '\r':
			if l.opts.Mode.IsJSON5() && l.r.Peek() == '\n' {
				l.r.Next()
			}
		}
	}
}
