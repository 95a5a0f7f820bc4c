package parser

import (
	"github.com/jsonx-lang/jsonx/ast"
	"github.com/jsonx-lang/jsonx/token"
)

// parseValue implements:
//
//	value := object | array | string | number | boolean | null
//	       | identifier | nan | infinity          (json5 only)
func (p *Parser) parseValue() (ast.ValueNode, error) {
	tok := p.peek()
	switch tok.Type {
	case token.LBrace:
		return p.parseObject()
	case token.LBracket:
		return p.parseArray()
	case token.String:
		return p.parseStringValue()
	case token.Number:
		return p.parseNumberValue()
	case token.Boolean:
		return p.parseBooleanValue()
	case token.Null:
		return p.parseNullValue()
	case token.Identifier:
		return p.parseIdentifierValue()
	default:
		return nil, unexpected(tok)
	}
}

func (p *Parser) parseBooleanValue() (*ast.Boolean, error) {
	tok := p.advance()
	return ast.NewBoolean(p.parts(tok.Loc), tok.Text(p.src) == "true"), nil
}

func (p *Parser) parseNullValue() (*ast.Null, error) {
	tok := p.advance()
	return ast.NewNull(p.parts(tok.Loc)), nil
}
