package lexer

import (
	"context"
	"log/slog"

	"github.com/jsonx-lang/jsonx/internal/idtable"
	"github.com/jsonx-lang/jsonx/internal/reader"
	"github.com/jsonx-lang/jsonx/internal/trace"
	"github.com/jsonx-lang/jsonx/location"
	"github.com/jsonx-lang/jsonx/perr"
	"github.com/jsonx-lang/jsonx/token"
)

// Lexer tokenizes a single source string according to Options.Mode. A
// Lexer is single-use and single-threaded: construct a fresh one per
// call to [Tokenize] or equivalent.
type Lexer struct {
	src  string
	r    *reader.CharReader
	opts Options
	tok  token.Token
}

// New returns a Lexer positioned before the first character of src.
func New(src string, opts Options) *Lexer {
	return &Lexer{src: src, r: reader.New(src), opts: opts}
}

// Token returns the token most recently produced by Next.
func (l *Lexer) Token() token.Token {
	return l.tok
}

// Next scans and returns the next token's type, or an error if the
// source could not be tokenized at the current position. EOF is a
// distinct, repeatable type: once reached, further calls keep returning
// it without error.
func (l *Lexer) Next() (token.Type, error) {
	l.skipWhitespace()
	start := l.r.Locate()

	if l.r.AtEOF() {
		l.tok = l.finish(token.EOF, start, start)
		return token.EOF, nil
	}

	c := l.r.Peek()
	switch {
	case c == '{', c == '}', c == '[', c == ']', c == ':', c == ',':
		l.r.Next()
		return l.emit(punctuatorType(c), start)

	case c == '"':
		return l.scanString(start, '"')

	case c == '\'':
		if !l.opts.Mode.IsJSON5() {
			l.r.Next()
			return l.fail(perr.NewUnexpectedChar(start, c))
		}
		return l.scanString(start, '\'')

	case c == '/':
		return l.scanComment(start)

	case c == 't' || c == 'f' || c == 'n':
		return l.scanIdentifierRun(start)

	case isNumberStart(c, l.opts.Mode):
		return l.scanNumber(start)

	case l.opts.Mode.IsJSON5() && isIdentifierDispatchStart(c):
		return l.scanIdentifierRun(start)

	default:
		l.r.Next()
		return l.fail(perr.NewUnexpectedChar(start, c))
	}
}

// Tokenize drives a fresh Lexer to completion, returning every token
// (including comments) in source order. The final token is always EOF;
// it is included in the result.
func Tokenize(src string, opts Options) ([]token.Token, error) {
	return TokenizeContext(context.Background(), src, opts)
}

// TokenizeContext is Tokenize with a context, passed through to
// Options.Logger for request-scoped debug instrumentation. Cancellation
// is not checked mid-scan: tokenizing a single document is never long
// enough to warrant it.
func TokenizeContext(ctx context.Context, src string, opts Options) ([]token.Token, error) {
	op := trace.Begin(ctx, opts.Logger, "jsonx.lexer.tokenize", slog.String("mode", opts.Mode.String()))

	l := New(src, opts)
	var toks []token.Token
	for {
		typ, err := l.Next()
		if err != nil {
			op.End(err)
			return nil, err
		}
		toks = append(toks, l.Token())
		if typ == token.EOF {
			op.End(nil, slog.Int("tokens", len(toks)))
			return toks, nil
		}
	}
}

func (l *Lexer) skipWhitespace() {
	for isWhitespace(l.r.Peek(), l.opts.Mode) {
		l.r.Next()
	}
}

// emit consumes no further input; it closes the token at the reader's
// current position and returns typ.
func (l *Lexer) emit(typ token.Type, start location.Location) (token.Type, error) {
	end := l.r.Locate()
	l.tok = l.finish(typ, start, end)
	return typ, nil
}

func (l *Lexer) fail(err error) (token.Type, error) {
	l.tok = token.Token{}
	return token.Invalid, err
}

func (l *Lexer) finish(typ token.Type, start, end location.Location) token.Token {
	loc := location.NewLocationRange(start, end)
	tok := token.Token{Type: typ, Loc: loc}
	if l.opts.Ranges {
		r := location.RangeOf(loc)
		tok.Range = &r
	}
	return tok
}

func punctuatorType(c rune) token.Type {
	switch c {
	case '{':
		return token.LBrace
	case '}':
		return token.RBrace
	case '[':
		return token.LBracket
	case ']':
		return token.RBracket
	case ':':
		return token.Colon
	case ',':
		return token.Comma
	default:
		return token.Invalid
	}
}

// isNumberStart reports whether c can begin a number literal: a digit or
// `-` in every mode, additionally `+` or a leading `.` in json5.
func isNumberStart(c rune, mode token.Mode) bool {
	if isDigit(c) || c == '-' {
		return true
	}
	if !mode.IsJSON5() {
		return false
	}
	return c == '+' || c == '.'
}

// isIdentifierDispatchStart reports whether c, in json5 mode, may begin a
// bare identifier run that was not already routed through the t/f/n
// dispatch case: `\` (the escape form, resolved once consumeIdentifierChar
// decodes it) or any rune satisfying idtable.IsIdentifierStart ($, _,
// U+200C, U+200D, or the ID_Start property).
func isIdentifierDispatchStart(c rune) bool {
	if c == '\\' {
		return true
	}
	return idtable.IsIdentifierStart(c)
}

func isDigit(c rune) bool {
	return c >= '0' && c <= '9'
}

func isHexDigit(c rune) bool {
	switch {
	case c >= '0' && c <= '9':
		return true
	case c >= 'a' && c <= 'f':
		return true
	case c >= 'A' && c <= 'F':
		return true
	default:
		return false
	}
}
