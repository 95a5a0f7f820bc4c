package parser

import (
	"github.com/jsonx-lang/jsonx/ast"
	"github.com/jsonx-lang/jsonx/internal/textlit"
)

// parseIdentifierValue decodes an Identifier token's raw text (a json5
// bare word, possibly containing inline \uXXXX escapes) via
// [textlit.DecodeIdentifier].
func (p *Parser) parseIdentifierValue() (*ast.Identifier, error) {
	tok := p.advance()
	raw := tok.Text(p.src)

	decoded, err := textlit.DecodeIdentifier(raw)
	if err != nil {
		return nil, p.wrapDecodeError(err, tok.Loc.Start.Offset)
	}
	return ast.NewIdentifier(p.parts(tok.Loc), decoded), nil
}
