package parser

import (
	"strconv"
	"strings"

	"github.com/jsonx-lang/jsonx/ast"
)

// parseNumberValue decodes a Number token's raw text. The lexer never
// distinguishes NaN/Infinity from ordinary numbers at the token-type
// level (token.Type has no entries for them); classification into
// ast.Number versus ast.NaN/ast.Infinity happens here, by inspecting the
// token's text directly.
func (p *Parser) parseNumberValue() (ast.ValueNode, error) {
	tok := p.advance()
	text := tok.Text(p.src)
	parts := p.parts(tok.Loc)

	if sign, rest, ok := splitSign(text); ok {
		switch rest {
		case "NaN":
			return ast.NewNaN(parts, sign), nil
		case "Infinity":
			return ast.NewInfinity(parts, sign), nil
		}
	}

	value := decodeNumberText(text)
	return ast.NewNumber(parts, value), nil
}

// splitSign strips a leading '+' or '-' from text, reporting whether the
// remainder is exactly "NaN" or "Infinity" — the only two json5 keyword
// literals that the lexer folds into a Number token.
func splitSign(text string) (sign ast.Sign, rest string, ok bool) {
	switch {
	case strings.HasPrefix(text, "+"):
		sign, rest = ast.SignPositive, text[1:]
	case strings.HasPrefix(text, "-"):
		sign, rest = ast.SignNegative, text[1:]
	default:
		sign, rest = ast.SignNone, text
	}
	return sign, rest, rest == "NaN" || rest == "Infinity"
}

// decodeNumberText parses an ordinary (non-NaN/Infinity) number literal's
// raw text to its float64 value. json5's `0x`/`0X` hex integers (with an
// optional sign) are not accepted by strconv.ParseFloat, so they are
// detected and parsed separately; every other accepted spelling —
// including json5's leading '+' and its bare leading/trailing decimal
// point — parses directly via strconv.ParseFloat.
func decodeNumberText(text string) float64 {
	sign := 1.0
	unsigned := text
	if strings.HasPrefix(unsigned, "+") {
		unsigned = unsigned[1:]
	} else if strings.HasPrefix(unsigned, "-") {
		sign = -1.0
		unsigned = unsigned[1:]
	}

	if strings.HasPrefix(unsigned, "0x") || strings.HasPrefix(unsigned, "0X") {
		v, _ := strconv.ParseUint(unsigned[2:], 16, 64)
		return sign * float64(v)
	}

	v, _ := strconv.ParseFloat(text, 64)
	return v
}
