package lexer

import (
	"unicode"

	"github.com/jsonx-lang/jsonx/token"
)

// isWhitespace reports whether c is insignificant whitespace under mode.
// json and jsonc recognize space, tab, LF, and CR; json5 additionally
// recognizes vertical tab, form feed, NBSP, the UTF-8 BOM, the U+2028/
// U+2029 line/paragraph separators, and every Unicode Zs-category space.
func isWhitespace(c rune, mode token.Mode) bool {
	switch c {
	case ' ', '\t', '\n', '\r':
		return true
	}
	if !mode.IsJSON5() {
		return false
	}
	switch c {
	case '\v', '\f', '\u00a0', '\ufeff', '\u2028', '\u2029':
		return true
	}
	return unicode.Is(unicode.Zs, c)
}
