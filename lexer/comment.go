package lexer

import (
	"github.com/jsonx-lang/jsonx/internal/reader"
	"github.com/jsonx-lang/jsonx/location"
	"github.com/jsonx-lang/jsonx/perr"
	"github.com/jsonx-lang/jsonx/token"
)

// scanComment is entered with the reader positioned on a `/` that has not
// yet been consumed. It requires jsonc or json5 mode, and dispatches to a
// line or block comment depending on the following character.
func (l *Lexer) scanComment(start location.Location) (token.Type, error) {
	if !l.opts.Mode.AllowsComments() {
		c := l.r.Peek()
		l.r.Next()
		return l.fail(perr.NewUnexpectedChar(start, c))
	}
	l.r.Next() // consume the first '/'

	switch l.r.Peek() {
	case '/':
		l.r.Next()
		return l.scanLineComment(start)
	case '*':
		l.r.Next()
		return l.scanBlockComment(start)
	default:
		return l.fail(perr.NewUnexpectedChar(start, '/'))
	}
}

// scanLineComment consumes up to (not including) the next line terminator
// or EOF. A LineComment never includes its terminator.
func (l *Lexer) scanLineComment(start location.Location) (token.Type, error) {
	for {
		c := l.r.Peek()
		if c == reader.EOF || c == '\n' || c == '\r' {
			break
		}
		l.r.Next()
	}
	return l.emit(token.LineComment, start)
}

// scanBlockComment consumes up to and including the closing `*/`. Nested
// `/*` has no special meaning. Reaching EOF before the closing delimiter
// is UnexpectedEOF.
func (l *Lexer) scanBlockComment(start location.Location) (token.Type, error) {
	for {
		if l.r.AtEOF() {
			return l.fail(perr.NewUnexpectedEOF(l.r.Locate()))
		}
		c := l.r.Next()
		if c == '*' && l.r.Peek() == '/' {
			l.r.Next()
			break
		}
	}
	return l.emit(token.BlockComment, start)
}
