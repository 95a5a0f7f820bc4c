package printer

import (
	"strings"

	"github.com/jsonx-lang/jsonx/ast"
)

// Print serializes node to text. Print never returns an error: every
// [ast.ValueNode] the parser can build is printable by construction.
func Print(node ast.ValueNode, opts Options) string {
	var b strings.Builder
	p := printState{opts: opts}
	p.writeValue(&b, node, 0)
	return b.String()
}

// PrintDocument prints a [ast.Document]'s body — the Document wrapper
// itself carries no printable syntax of its own.
func PrintDocument(doc *ast.Document, opts Options) string {
	return Print(doc.Body, opts)
}

type printState struct {
	opts Options
}

func (p *printState) writeValue(b *strings.Builder, node ast.ValueNode, depth int) {
	switch n := node.(type) {
	case *ast.Object:
		p.writeObject(b, n, depth)
	case *ast.Array:
		p.writeArray(b, n, depth)
	case *ast.String:
		writeQuotedString(b, n.Value)
	case *ast.Number:
		b.WriteString(formatNumber(n.Value))
	case *ast.Boolean:
		if n.Value {
			b.WriteString("true")
		} else {
			b.WriteString("false")
		}
	case *ast.Null:
		b.WriteString("null")
	case *ast.Identifier:
		b.WriteString(n.Name)
	case *ast.NaN:
		writeSign(b, n.Sign)
		b.WriteString("NaN")
	case *ast.Infinity:
		writeSign(b, n.Sign)
		b.WriteString("Infinity")
	}
}

func writeSign(b *strings.Builder, sign ast.Sign) {
	if sign != ast.SignNone {
		b.WriteString(string(sign))
	}
}

func (p *printState) writeObject(b *strings.Builder, obj *ast.Object, depth int) {
	b.WriteByte('{')
	p.writeItems(b, len(obj.Members), depth, func(i int) {
		m := obj.Members[i]
		p.writeValue(b, m.Name, depth+1)
		b.WriteByte(':')
		if p.opts.Indent > 0 {
			b.WriteByte(' ')
		}
		p.writeValue(b, m.Value, depth+1)
	})
	b.WriteByte('}')
}

func (p *printState) writeArray(b *strings.Builder, arr *ast.Array, depth int) {
	b.WriteByte('[')
	p.writeItems(b, len(arr.Elements), depth, func(i int) {
		p.writeValue(b, arr.Elements[i].Value, depth+1)
	})
	b.WriteByte(']')
}

// writeItems handles the shared brace/bracket body layout: comma
// separation, and, when indented, a leading newline+indent before each
// item and a trailing newline+indent before the closing delimiter.
func (p *printState) writeItems(b *strings.Builder, n int, depth int, writeItem func(i int)) {
	if n == 0 {
		return
	}
	indented := p.opts.Indent > 0
	for i := 0; i < n; i++ {
		if i > 0 {
			b.WriteByte(',')
		}
		if indented {
			b.WriteByte('\n')
			p.writeIndent(b, depth+1)
		}
		writeItem(i)
	}
	if indented {
		b.WriteByte('\n')
		p.writeIndent(b, depth)
	}
}

func (p *printState) writeIndent(b *strings.Builder, depth int) {
	for i := 0; i < depth; i++ {
		for j := uint(0); j < p.opts.Indent; j++ {
			b.WriteByte(' ')
		}
	}
}
