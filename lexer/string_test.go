package lexer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsonx-lang/jsonx/lexer"
	"github.com/jsonx-lang/jsonx/token"
)

func TestString_Simple(t *testing.T) {
	src := `"hello"`
	toks, err := lexer.Tokenize(src, lexer.Options{Mode: token.JSON})
	require.NoError(t, err)
	require.Equal(t, token.String, toks[0].Type)
	assert.Equal(t, `"hello"`, toks[0].Text(src))
}

func TestString_WithEscapedQuote(t *testing.T) {
	src := `"a\"b"`
	toks, err := lexer.Tokenize(src, lexer.Options{Mode: token.JSON})
	require.NoError(t, err)
	assert.Equal(t, src, toks[0].Text(src))
}

func TestString_WithUnicodeEscape(t *testing.T) {
	src := "\"\\u0041\""
	toks, err := lexer.Tokenize(src, lexer.Options{Mode: token.JSON})
	require.NoError(t, err)
	assert.Equal(t, src, toks[0].Text(src))
}

func TestString_UnterminatedIsUnexpectedEOF(t *testing.T) {
	_, err := lexer.Tokenize(`"never closed`, lexer.Options{Mode: token.JSON})
	require.Error(t, err)
}

func TestString_TrailingBackslashIsUnexpectedEOF(t *testing.T) {
	_, err := lexer.Tokenize(`"abc\`, lexer.Options{Mode: token.JSON})
	require.Error(t, err)
}

func TestString_HexEscapeOnlyConsumedInJSON5(t *testing.T) {
	// In JSON the lexer does not special-case \x; it is an ordinary escape
	// byte and tokenizing still succeeds (decode-time rejects it).
	src := `"\xFF rest"`
	toks, err := lexer.Tokenize(src, lexer.Options{Mode: token.JSON})
	require.NoError(t, err)
	assert.Equal(t, src, toks[0].Text(src))
}

func TestString_SingleQuotedInJSON5(t *testing.T) {
	src := `'it''s'`
	toks, err := lexer.Tokenize(src, lexer.Options{Mode: token.JSON5})
	require.NoError(t, err)
	// the first ' after "it" closes the string; a second string token follows
	assert.Equal(t, []token.Type{token.String, token.String, token.EOF}, []token.Type{toks[0].Type, toks[1].Type, toks[2].Type})
}

func TestString_DoesNotStopAtEscapedDelimiter(t *testing.T) {
	src := `"a\"quote inside\""`
	toks, err := lexer.Tokenize(src, lexer.Options{Mode: token.JSON})
	require.NoError(t, err)
	require.Len(t, toks, 2)
	assert.Equal(t, src, toks[0].Text(src))
}
