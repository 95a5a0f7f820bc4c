package ast_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsonx-lang/jsonx/ast"
)

func TestNewArray_EmptyElements(t *testing.T) {
	arr := ast.NewArray(partsAt(0, 2), nil)
	require.NotNil(t, arr)
	assert.Empty(t, arr.Elements)
	var _ ast.ValueNode = arr
}

func TestNewArray_PreservesElementOrder(t *testing.T) {
	v1 := ast.NewNumber(partsAt(1, 2), 1)
	v2 := ast.NewNumber(partsAt(4, 5), 2)
	elements := []ast.Element{
		ast.NewElement(partsAt(1, 2), v1),
		ast.NewElement(partsAt(4, 5), v2),
	}
	arr := ast.NewArray(partsAt(0, 6), elements)

	require.Len(t, arr.Elements, 2)
	assert.Same(t, v1, arr.Elements[0].Value)
	assert.Same(t, v2, arr.Elements[1].Value)
}

func TestNewElement_MirrorsValueLocation(t *testing.T) {
	v := ast.NewString(partsAt(2, 7), "hi")
	e := ast.NewElement(partsAt(2, 7), v)
	assert.Equal(t, v.Location(), e.Loc)
}
