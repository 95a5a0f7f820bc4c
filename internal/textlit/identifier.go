package textlit

import (
	"strings"
	"unicode/utf8"

	"github.com/jsonx-lang/jsonx/perr"
)

// DecodeIdentifier resolves every inline `\uXXXX` escape in a json5 bare
// identifier's raw text to its character; every other byte passes
// through unchanged. Unlike [Decode], identifiers have no short-escape
// table — `\u` is the only escape form the lexer accepts inside one.
func DecodeIdentifier(raw string) (string, error) {
	var b strings.Builder
	b.Grow(len(raw))

	i := 0
	for i < len(raw) {
		if raw[i] != '\\' {
			r, size := utf8.DecodeRuneInString(raw[i:])
			b.WriteRune(r)
			i += size
			continue
		}
		escapeStart := i
		if i+1 >= len(raw) || raw[i+1] != 'u' {
			return "", &DecodeError{Offset: escapeStart, Kind: perr.KindInvalidUnicodeEscape}
		}
		r, consumed, err := decodeUnicodeEscapeAt(raw, i+2)
		if err != nil {
			de := err.(*DecodeError)
			de.Offset = escapeStart
			return "", de
		}
		b.WriteRune(r)
		i += 2 + consumed
	}
	return b.String(), nil
}
