package parser

import (
	"github.com/jsonx-lang/jsonx/ast"
	"github.com/jsonx-lang/jsonx/internal/textlit"
	"github.com/jsonx-lang/jsonx/perr"
)

// parseStringValue decodes a String token's raw text (delimiters
// stripped) via [textlit.Decode]. A decode error's offset is relative to
// the inner text; it is translated to an absolute source location before
// being wrapped in a [perr.Error].
func (p *Parser) parseStringValue() (*ast.String, error) {
	tok := p.advance()
	raw := tok.Text(p.src)
	inner := raw[1 : len(raw)-1] // strip the matching opening/closing quote

	decoded, err := textlit.Decode(inner, p.opts.Mode)
	if err != nil {
		return nil, p.wrapDecodeError(err, tok.Loc.Start.Offset+1)
	}
	return ast.NewString(p.parts(tok.Loc), decoded), nil
}

// wrapDecodeError translates a [textlit.DecodeError] (offset relative to
// a token's inner text, innerStart bytes into the source) into a
// [perr.Error] pointing at the backslash that introduced the offending
// escape.
func (p *Parser) wrapDecodeError(err error, innerStart int) error {
	de, ok := err.(*textlit.DecodeError)
	if !ok {
		return err
	}
	loc := locationAt(p.src, innerStart+de.Offset)
	if de.Kind == perr.KindInvalidUnicodeEscape {
		return perr.NewInvalidUnicodeEscape(loc, de.HexText)
	}
	return perr.NewInvalidEscape(loc, de.Char)
}
