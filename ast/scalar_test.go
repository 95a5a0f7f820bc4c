package ast_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jsonx-lang/jsonx/ast"
	"github.com/jsonx-lang/jsonx/location"
)

func partsAt(startOffset, endOffset int) ast.NodeParts {
	start := location.NewLocation(1, startOffset+1, startOffset)
	end := location.NewLocation(1, endOffset+1, endOffset)
	return ast.NodeParts{Loc: location.NewLocationRange(start, end)}
}

func TestNewString(t *testing.T) {
	n := ast.NewString(partsAt(0, 5), "hello")
	assert.Equal(t, "hello", n.Value)
	assert.Equal(t, 0, n.Location().Start.Offset)
	var _ ast.ValueNode = n
}

func TestNewNumber(t *testing.T) {
	n := ast.NewNumber(partsAt(0, 3), 3.14)
	assert.Equal(t, 3.14, n.Value)
	var _ ast.ValueNode = n
}

func TestNewBoolean(t *testing.T) {
	n := ast.NewBoolean(partsAt(0, 4), true)
	assert.True(t, n.Value)
	var _ ast.ValueNode = n
}

func TestNewNull(t *testing.T) {
	n := ast.NewNull(partsAt(0, 4))
	assert.NotNil(t, n)
	var _ ast.ValueNode = n
}

func TestNewIdentifier(t *testing.T) {
	n := ast.NewIdentifier(partsAt(0, 3), "foo")
	assert.Equal(t, "foo", n.Name)
	var _ ast.ValueNode = n
}

func TestNewNaN_Signs(t *testing.T) {
	for _, sign := range []ast.Sign{ast.SignNone, ast.SignPositive, ast.SignNegative} {
		n := ast.NewNaN(partsAt(0, 3), sign)
		assert.Equal(t, sign, n.Sign)
		var _ ast.ValueNode = n
	}
}

func TestNewInfinity_Signs(t *testing.T) {
	for _, sign := range []ast.Sign{ast.SignNone, ast.SignPositive, ast.SignNegative} {
		n := ast.NewInfinity(partsAt(0, 8), sign)
		assert.Equal(t, sign, n.Sign)
		var _ ast.ValueNode = n
	}
}
