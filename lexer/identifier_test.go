package lexer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsonx-lang/jsonx/lexer"
	"github.com/jsonx-lang/jsonx/token"
)

func TestIdentifier_BareKeyInJSON5(t *testing.T) {
	src := "foo"
	toks, err := lexer.Tokenize(src, lexer.Options{Mode: token.JSON5})
	require.NoError(t, err)
	require.Equal(t, token.Identifier, toks[0].Type)
	assert.Equal(t, "foo", toks[0].Text(src))
}

func TestIdentifier_DollarAndUnderscoreStart(t *testing.T) {
	for _, src := range []string{"$foo", "_foo"} {
		toks, err := lexer.Tokenize(src, lexer.Options{Mode: token.JSON5})
		require.NoError(t, err)
		require.Equal(t, token.Identifier, toks[0].Type)
		assert.Equal(t, src, toks[0].Text(src))
	}
}

func TestIdentifier_ContinuesWithDigits(t *testing.T) {
	src := "a1b2"
	toks, err := lexer.Tokenize(src, lexer.Options{Mode: token.JSON5})
	require.NoError(t, err)
	assert.Equal(t, src, toks[0].Text(src))
}

func TestIdentifier_RejectedOutsideJSON5(t *testing.T) {
	_, err := lexer.Tokenize("foo", lexer.Options{Mode: token.JSONC})
	require.Error(t, err)
}

func TestIdentifier_UnicodeEscapeStart(t *testing.T) {
	// The escape for U+0061 decodes to 'a', a valid IdentifierStart character.
	src := "\\u0061bc"
	toks, err := lexer.Tokenize(src, lexer.Options{Mode: token.JSON5})
	require.NoError(t, err)
	require.Equal(t, token.Identifier, toks[0].Type)
	assert.Equal(t, src, toks[0].Text(src))
}

func TestIdentifier_InvalidUnicodeEscapeStart(t *testing.T) {
	// The escape for U+0020 decodes to a space, not a valid IdentifierStart character.
	_, err := lexer.Tokenize("\\u0020", lexer.Options{Mode: token.JSON5})
	require.Error(t, err)
}

func TestIdentifier_MalformedUnicodeEscape(t *testing.T) {
	_, err := lexer.Tokenize("\\u00", lexer.Options{Mode: token.JSON5})
	require.Error(t, err)
}

func TestIdentifier_TrueFalseNullAlwaysKeywords(t *testing.T) {
	toks, err := lexer.Tokenize("true false null", lexer.Options{Mode: token.JSON5})
	require.NoError(t, err)
	assert.Equal(t, token.Boolean, toks[0].Type)
	assert.Equal(t, token.Boolean, toks[1].Type)
	assert.Equal(t, token.Null, toks[2].Type)
}
