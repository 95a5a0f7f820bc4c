package parser

import (
	"github.com/jsonx-lang/jsonx/ast"
	"github.com/jsonx-lang/jsonx/perr"
	"github.com/jsonx-lang/jsonx/token"
)

// parseObject implements:
//
//	object := '{' [ member (',' member)* [','] ] '}'
func (p *Parser) parseObject() (*ast.Object, error) {
	open, err := p.expect(token.LBrace)
	if err != nil {
		return nil, err
	}

	var members []ast.Member
	if p.peek().Type != token.RBrace {
		for {
			m, err := p.parseMember()
			if err != nil {
				return nil, err
			}
			members = append(members, m)

			if p.peek().Type != token.Comma {
				break
			}
			p.advance()

			if p.peek().Type == token.RBrace {
				if !p.allowsTrailingComma() {
					tok := p.peek()
					return nil, perr.NewUnexpectedToken(tok.Loc.Start, tok.Type.String())
				}
				break
			}
		}
	}

	close, err := p.expect(token.RBrace)
	if err != nil {
		return nil, err
	}

	loc := open.Loc
	loc.End = close.Loc.End
	return ast.NewObject(p.parts(loc), members), nil
}

// parseMember implements:
//
//	member := name ':' value
func (p *Parser) parseMember() (ast.Member, error) {
	name, err := p.parseName()
	if err != nil {
		return ast.Member{}, err
	}
	if _, err := p.expect(token.Colon); err != nil {
		return ast.Member{}, err
	}
	value, err := p.parseValue()
	if err != nil {
		return ast.Member{}, err
	}

	loc := name.Location()
	loc.End = value.Location().End
	return ast.NewMember(p.parts(loc), name, value), nil
}

// parseName implements:
//
//	name := string | identifier                  (identifier: json5)
func (p *Parser) parseName() (ast.ValueNode, error) {
	tok := p.peek()
	switch tok.Type {
	case token.String:
		return p.parseStringValue()
	case token.Identifier:
		return p.parseIdentifierValue()
	default:
		return nil, unexpected(tok)
	}
}

// allowsTrailingComma reports whether the current dialect permits a
// trailing comma before a container's closing delimiter: always in
// json5, otherwise only when Options.AllowTrailingCommas is set.
func (p *Parser) allowsTrailingComma() bool {
	return p.opts.Mode.IsJSON5() || p.opts.AllowTrailingCommas
}
