package visit_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsonx-lang/jsonx/ast"
	"github.com/jsonx-lang/jsonx/parser"
	"github.com/jsonx-lang/jsonx/token"
	"github.com/jsonx-lang/jsonx/visit"
)

func mustParse(t *testing.T, src string) *ast.Document {
	t.Helper()
	doc, err := parser.Parse(src, parser.Options{Mode: token.JSON})
	require.NoError(t, err)
	return doc
}

func TestTraverse_VisitsEveryNodeOnEnterAndExit(t *testing.T) {
	doc := mustParse(t, `{"a": [1, 2]}`)

	var enters, exits int
	err := visit.Traverse(doc, visit.Hooks{
		Enter: func(node any) error { enters++; return nil },
		Exit:  func(node any) error { exits++; return nil },
	})
	require.NoError(t, err)

	// Document, Object, Member, String(name "a"), Array, 2x Element, 2x Number.
	assert.Equal(t, 9, enters)
	assert.Equal(t, enters, exits)
}

func TestTraverse_PreOrderVisitsParentBeforeChild(t *testing.T) {
	doc := mustParse(t, `[1]`)

	var order []string
	visit.Traverse(doc, visit.Hooks{
		Enter: func(node any) error {
			switch node.(type) {
			case *ast.Document:
				order = append(order, "Document")
			case *ast.Array:
				order = append(order, "Array")
			case ast.Element:
				order = append(order, "Element")
			case *ast.Number:
				order = append(order, "Number")
			}
			return nil
		},
	})
	assert.Equal(t, []string{"Document", "Array", "Element", "Number"}, order)
}

func TestTraverse_AbortsOnError(t *testing.T) {
	doc := mustParse(t, `[1, 2, 3]`)
	boom := assert.AnError

	calls := 0
	err := visit.Traverse(doc, visit.Hooks{
		Enter: func(node any) error {
			calls++
			if _, ok := node.(*ast.Array); ok {
				return boom
			}
			return nil
		},
	})
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 2, calls) // Document, then Array before aborting
}

func TestIterator_FiltersByPredicate(t *testing.T) {
	doc := mustParse(t, `[1, "x", 2, true]`)

	var numbers []float64
	for node := range visit.Iterator(doc, func(node any) bool {
		_, ok := node.(*ast.Number)
		return ok
	}) {
		numbers = append(numbers, node.(*ast.Number).Value)
	}
	assert.Equal(t, []float64{1, 2}, numbers)
}

func TestIterator_NilFilterYieldsEveryNode(t *testing.T) {
	doc := mustParse(t, `{"a": 1}`)
	count := 0
	for range visit.Iterator(doc, nil) {
		count++
	}
	assert.Equal(t, 5, count) // Document, Object, Member, String, Number
}

func TestKeys_DocumentsChildRelationships(t *testing.T) {
	assert.Equal(t, []string{"Body"}, visit.Keys["Document"])
	assert.Equal(t, []string{"Members"}, visit.Keys["Object"])
	assert.Empty(t, visit.Keys["Number"])
}
