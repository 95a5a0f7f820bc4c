package parser

import (
	"github.com/jsonx-lang/jsonx/ast"
	"github.com/jsonx-lang/jsonx/perr"
	"github.com/jsonx-lang/jsonx/token"
)

// parseArray implements:
//
//	array := '[' [ element (',' element)* [','] ] ']'
func (p *Parser) parseArray() (*ast.Array, error) {
	open, err := p.expect(token.LBracket)
	if err != nil {
		return nil, err
	}

	var elements []ast.Element
	if p.peek().Type != token.RBracket {
		for {
			e, err := p.parseElement()
			if err != nil {
				return nil, err
			}
			elements = append(elements, e)

			if p.peek().Type != token.Comma {
				break
			}
			p.advance()

			if p.peek().Type == token.RBracket {
				if !p.allowsTrailingComma() {
					tok := p.peek()
					return nil, perr.NewUnexpectedToken(tok.Loc.Start, tok.Type.String())
				}
				break
			}
		}
	}

	close, err := p.expect(token.RBracket)
	if err != nil {
		return nil, err
	}

	loc := open.Loc
	loc.End = close.Loc.End
	return ast.NewArray(p.parts(loc), elements), nil
}

// parseElement implements:
//
//	element := value
func (p *Parser) parseElement() (ast.Element, error) {
	value, err := p.parseValue()
	if err != nil {
		return ast.Element{}, err
	}
	return ast.NewElement(p.parts(value.Location()), value), nil
}
