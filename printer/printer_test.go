package printer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsonx-lang/jsonx/ast"
	"github.com/jsonx-lang/jsonx/parser"
	"github.com/jsonx-lang/jsonx/printer"
	"github.com/jsonx-lang/jsonx/token"
)

func parse(t *testing.T, src string) ast.ValueNode {
	t.Helper()
	doc, err := parser.Parse(src, parser.Options{Mode: token.JSON5})
	require.NoError(t, err)
	return doc.Body
}

func TestPrint_Scalars(t *testing.T) {
	assert.Equal(t, "null", printer.Print(parse(t, "null"), printer.Options{}))
	assert.Equal(t, "true", printer.Print(parse(t, "true"), printer.Options{}))
	assert.Equal(t, "false", printer.Print(parse(t, "false"), printer.Options{}))
	assert.Equal(t, "1.5", printer.Print(parse(t, "1.5"), printer.Options{}))
	assert.Equal(t, "NaN", printer.Print(parse(t, "NaN"), printer.Options{}))
	assert.Equal(t, "-Infinity", printer.Print(parse(t, "-Infinity"), printer.Options{}))
}

func TestPrint_CompactObjectAndArray(t *testing.T) {
	assert.Equal(t, `{a:1,b:[1,2,3]}`, printer.Print(parse(t, `{a: 1, b: [1, 2, 3]}`), printer.Options{}))
	assert.Equal(t, "{}", printer.Print(parse(t, "{}"), printer.Options{}))
	assert.Equal(t, "[]", printer.Print(parse(t, "[]"), printer.Options{}))
}

func TestPrint_IndentedObject(t *testing.T) {
	got := printer.Print(parse(t, `{a: 1, b: 2}`), printer.Options{Indent: 2})
	assert.Equal(t, "{\n  a: 1,\n  b: 2\n}", got)
}

func TestPrint_IndentedNestedArray(t *testing.T) {
	got := printer.Print(parse(t, `[1, [2, 3]]`), printer.Options{Indent: 2})
	assert.Equal(t, "[\n  1,\n  [\n    2,\n    3\n  ]\n]", got)
}

func TestPrint_IdentifierNameNotReescaped(t *testing.T) {
	got := printer.Print(parse(t, `{foo: 1}`), printer.Options{})
	assert.Equal(t, `{foo:1}`, got)
}

func TestPrint_StringEscaping(t *testing.T) {
	doc, err := parser.Parse("\"a\\\"b\\\\c\\nd\"", parser.Options{Mode: token.JSON})
	require.NoError(t, err)
	assert.Equal(t, "\"a\\\"b\\\\c\\nd\"", printer.Print(doc.Body, printer.Options{}))
}

func TestPrint_ControlCharacterEscapedAsUnicode(t *testing.T) {
	doc, err := parser.Parse("\"\\u0001\"", parser.Options{Mode: token.JSON})
	require.NoError(t, err)
	assert.Equal(t, "\"\\u0001\"", printer.Print(doc.Body, printer.Options{}))
}

func TestPrint_RoundTripIdempotent(t *testing.T) {
	src := `{a: [1, 2.5, "hi", true, null, NaN, -Infinity, {b: 'x'}]}`
	doc, err := parser.Parse(src, parser.Options{Mode: token.JSON5})
	require.NoError(t, err)

	first := printer.Print(doc.Body, printer.Options{Indent: 2})
	reparsed, err := parser.Parse(first, parser.Options{Mode: token.JSON5})
	require.NoError(t, err)
	second := printer.Print(reparsed.Body, printer.Options{Indent: 2})

	assert.Equal(t, first, second)
}

func TestPrint_LargeAndSmallNumbers(t *testing.T) {
	doc, err := parser.Parse(`1e21`, parser.Options{Mode: token.JSON})
	require.NoError(t, err)
	assert.Equal(t, "1e+21", printer.Print(doc.Body, printer.Options{}))

	doc, err = parser.Parse(`1e-7`, parser.Options{Mode: token.JSON})
	require.NoError(t, err)
	assert.Equal(t, "1e-7", printer.Print(doc.Body, printer.Options{}))

	doc, err = parser.Parse(`0`, parser.Options{Mode: token.JSON})
	require.NoError(t, err)
	assert.Equal(t, "0", printer.Print(doc.Body, printer.Options{}))
}
