package parser

import (
	"context"
	"log/slog"

	"github.com/jsonx-lang/jsonx/ast"
	"github.com/jsonx-lang/jsonx/internal/trace"
	"github.com/jsonx-lang/jsonx/lexer"
	"github.com/jsonx-lang/jsonx/location"
	"github.com/jsonx-lang/jsonx/perr"
	"github.com/jsonx-lang/jsonx/token"
)

// Parser descends a token stream already produced in full by
// [lexer.Tokenize]. pos indexes into toks; peek and advance skip over
// comment tokens transparently.
type Parser struct {
	src  string
	toks []token.Token
	pos  int
	opts Options
}

// Parse tokenizes text and parses it to a single [ast.Document].
func Parse(text string, opts Options) (*ast.Document, error) {
	return ParseContext(context.Background(), text, opts)
}

// ParseContext is Parse with a context, passed through to Options.Logger
// for request-scoped debug instrumentation.
func ParseContext(ctx context.Context, text string, opts Options) (*ast.Document, error) {
	op := trace.Begin(ctx, opts.Logger, "jsonx.parser.parse", slog.String("mode", opts.Mode.String()))

	toks, err := lexer.TokenizeContext(ctx, text, lexer.Options{Mode: opts.Mode, Ranges: opts.Ranges, Logger: opts.Logger})
	if err != nil {
		op.End(err)
		return nil, err
	}
	p := &Parser{src: text, toks: toks, opts: opts}
	doc, err := p.parseDocument()
	op.End(err)
	return doc, err
}

func (p *Parser) parseDocument() (*ast.Document, error) {
	startLoc := location.NewLocation(1, 1, 0)

	value, err := p.parseValue()
	if err != nil {
		return nil, err
	}

	if tok := p.peek(); tok.Type != token.EOF {
		return nil, perr.NewUnexpectedToken(tok.Loc.Start, tok.Type.String())
	}

	endLoc := p.toks[len(p.toks)-1].Loc.End
	loc := location.NewLocationRange(startLoc, endLoc)
	parts := ast.NodeParts{Loc: loc}
	if p.opts.Ranges {
		r := location.RangeOf(loc)
		parts.Range = &r
	}

	var toks []token.Token
	if p.opts.Tokens {
		toks = p.toks
	}
	return ast.NewDocument(parts, value, toks), nil
}

// peek returns the next non-comment token without consuming it.
func (p *Parser) peek() token.Token {
	i := p.pos
	for i < len(p.toks) && p.toks[i].Type.IsComment() {
		i++
	}
	return p.toks[i]
}

// advance consumes and returns the next non-comment token.
func (p *Parser) advance() token.Token {
	for p.toks[p.pos].Type.IsComment() {
		p.pos++
	}
	tok := p.toks[p.pos]
	p.pos++
	return tok
}

// expect consumes the next non-comment token if it has typ, otherwise
// returns the error from [unexpected].
func (p *Parser) expect(typ token.Type) (token.Token, error) {
	tok := p.peek()
	if tok.Type != typ {
		return token.Token{}, unexpected(tok)
	}
	return p.advance(), nil
}

// unexpected reports tok as out of place: UnexpectedEOF at the end of
// input when tok is the EOF token, otherwise UnexpectedToken.
func unexpected(tok token.Token) error {
	if tok.Type == token.EOF {
		return perr.NewUnexpectedEOF(tok.Loc.Start)
	}
	return perr.NewUnexpectedToken(tok.Loc.Start, tok.Type.String())
}

func (p *Parser) parts(loc location.LocationRange) ast.NodeParts {
	parts := ast.NodeParts{Loc: loc}
	if p.opts.Ranges {
		r := location.RangeOf(loc)
		parts.Range = &r
	}
	return parts
}
