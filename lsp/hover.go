package lsp

import (
	"fmt"

	"github.com/jsonx-lang/jsonx/ast"
	"github.com/jsonx-lang/jsonx/location"
	"github.com/jsonx-lang/jsonx/parser"
	"github.com/jsonx-lang/jsonx/visit"
)

// nodeAtOffset returns the innermost ast.ValueNode whose span contains
// offset, or nil if none does (offset falls outside the top-level value).
// Punctuation and whitespace inside an Object or Array resolve to that
// container.
func nodeAtOffset(doc *ast.Document, offset int) ast.ValueNode {
	var best ast.ValueNode
	_ = visit.Traverse(doc, visit.Hooks{
		Enter: func(n any) error {
			v, ok := n.(ast.ValueNode)
			if !ok {
				return nil
			}
			loc := v.Location()
			if offset >= loc.Start.Offset && offset < loc.End.Offset {
				best = v
			}
			return nil
		},
	})
	return best
}

// describe returns a short human-readable summary of a value node, used
// as hover content. It never inspects sibling or parent nodes: hover in
// this front end is purely local to the value under the cursor.
func describe(v ast.ValueNode) string {
	switch n := v.(type) {
	case *ast.Object:
		return fmt.Sprintf("object (%d member%s)", len(n.Members), plural(len(n.Members)))
	case *ast.Array:
		return fmt.Sprintf("array (%d element%s)", len(n.Elements), plural(len(n.Elements)))
	case *ast.String:
		return "string"
	case *ast.Number:
		return fmt.Sprintf("number: %v", n.Value)
	case *ast.Boolean:
		return fmt.Sprintf("boolean: %t", n.Value)
	case *ast.Null:
		return "null"
	case *ast.Identifier:
		return "identifier (json5 unquoted key)"
	case *ast.NaN:
		return "NaN (json5)"
	case *ast.Infinity:
		return "Infinity (json5)"
	default:
		return "value"
	}
}

func plural(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}

// hoverAt parses text and returns hover content for the 0-based LSP
// position, or ("", false) if the document fails to parse or no value
// covers that position.
func hoverAt(text string, opts parser.Options, line, char int, enc PositionEncoding) (string, location.LocationRange, bool) {
	doc, err := parser.Parse(text, opts)
	if err != nil {
		return "", location.LocationRange{}, false
	}

	starts := lineStarts(text)
	offset := byteOffsetFromLSP(text, starts, line, char, enc)

	node := nodeAtOffset(doc, offset)
	if node == nil {
		return "", location.LocationRange{}, false
	}
	return describe(node), node.Location(), true
}
