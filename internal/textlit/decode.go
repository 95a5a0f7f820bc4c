package textlit

import (
	"strconv"
	"strings"
	"unicode/utf16"
	"unicode/utf8"

	"github.com/jsonx-lang/jsonx/perr"
	"github.com/jsonx-lang/jsonx/token"
)

// DecodeError reports a malformed escape sequence. Offset is the byte
// offset, within the text passed to [Decode] or [DecodeUnicodeEscape], of
// the backslash that introduced the offending escape — not the start of
// the enclosing token. Callers translate Offset into an absolute
// [location.Location] using the token's own start offset.
type DecodeError struct {
	Offset int
	Kind   perr.Kind
	// HexText is the malformed digits for an InvalidUnicodeEscape.
	HexText string
	// Char is the offending escaped character for an InvalidEscape.
	Char rune
}

func (e *DecodeError) Error() string {
	if e.Kind == perr.KindInvalidUnicodeEscape {
		return "invalid unicode escape \\u" + e.HexText
	}
	return "invalid escape \\" + string(e.Char)
}

// Decode converts a string token's inner text (the bytes between its
// opening and closing quote, exclusive) to its decoded value. mode
// governs which escapes beyond the common short-escape table are legal:
// JSON5 additionally accepts \v, \0, \x HH, \', and line continuations
// (a backslash immediately followed by a line terminator, which
// contributes no character to the result); any other \c is an identity
// escape. In json and jsonc mode, any \c outside the short-escape table
// is a [perr.KindInvalidEscape] error.
func Decode(inner string, mode token.Mode) (string, error) {
	var b strings.Builder
	b.Grow(len(inner))

	i := 0
	for i < len(inner) {
		if inner[i] != '\\' {
			r, size := utf8.DecodeRuneInString(inner[i:])
			b.WriteRune(r)
			i += size
			continue
		}

		escapeStart := i
		if i+1 >= len(inner) {
			return "", &DecodeError{Offset: escapeStart, Kind: perr.KindInvalidEscape}
		}

		switch inner[i+1] {
		case '"':
			b.WriteByte('"')
			i += 2
		case '\\':
			b.WriteByte('\\')
			i += 2
		case '/':
			b.WriteByte('/')
			i += 2
		case 'b':
			b.WriteByte('\b')
			i += 2
		case 'n':
			b.WriteByte('\n')
			i += 2
		case 'f':
			b.WriteByte('\f')
			i += 2
		case 'r':
			b.WriteByte('\r')
			i += 2
		case 't':
			b.WriteByte('\t')
			i += 2
		case 'u':
			r, consumed, err := decodeUnicodeEscapeAt(inner, i+2)
			if err != nil {
				de := err.(*DecodeError)
				de.Offset = escapeStart
				return "", de
			}
			i += 2 + consumed
			// A high surrogate followed by a \u low surrogate is one
			// supplementary-plane character.
			if utf16.IsSurrogate(r) && i+1 < len(inner) && inner[i] == '\\' && inner[i+1] == 'u' {
				if r2, consumed2, err2 := decodeUnicodeEscapeAt(inner, i+2); err2 == nil {
					if pair := utf16.DecodeRune(r, r2); pair != utf8.RuneError {
						r = pair
						i += 2 + consumed2
					}
				}
			}
			b.WriteRune(r)
		default:
			if !mode.IsJSON5() {
				r, _ := utf8.DecodeRuneInString(inner[i+1:])
				return "", &DecodeError{Offset: escapeStart, Kind: perr.KindInvalidEscape, Char: r}
			}
			consumed, err := decodeJSON5Escape(&b, inner, i+1)
			if err != nil {
				de := err.(*DecodeError)
				de.Offset = escapeStart
				return "", de
			}
			i += 1 + consumed
		}
	}
	return b.String(), nil
}

// decodeJSON5Escape handles the JSON5-only escapes, writing any decoded
// character to b and returning how many bytes starting at pos (the byte
// after the backslash) were consumed.
func decodeJSON5Escape(b *strings.Builder, s string, pos int) (int, error) {
	switch s[pos] {
	case 'v':
		b.WriteByte('\v')
		return 1, nil
	case '0':
		b.WriteByte(0)
		return 1, nil
	case '\'':
		b.WriteByte('\'')
		return 1, nil
	case 'x':
		r, err := decodeHexDigits(s, pos+1, 2)
		if err != nil {
			return 0, err
		}
		b.WriteRune(r)
		return 3, nil
	case '\n':
		return 1, nil // line continuation, no output
	case '\r':
		if pos+1 < len(s) && s[pos+1] == '\n' {
			return 2, nil
		}
		return 1, nil
	default:
		r, size := utf8.DecodeRuneInString(s[pos:])
		if r == '\u2028' || r == '\u2029' {
			return size, nil // line continuation, no output
		}
		b.WriteRune(r) // identity escape
		return size, nil
	}
}

// decodeUnicodeEscapeAt decodes a \u escape whose four hex digits start at
// s[pos:]. It returns the decoded rune and the number of bytes consumed
// (always 4 on success, since the digits are required to be ASCII hex).
func decodeUnicodeEscapeAt(s string, pos int) (rune, int, error) {
	r, err := decodeHexDigits(s, pos, 4)
	if err != nil {
		return 0, 0, err
	}
	return r, 4, nil
}

// decodeHexDigits parses exactly n ASCII hex digits starting at s[pos:].
// On failure it returns a DecodeError carrying whatever substring was
// actually available, for the "Invalid unicode escape \u<h>" message.
func decodeHexDigits(s string, pos, n int) (rune, error) {
	end := pos + n
	if end > len(s) {
		end = len(s)
	}
	digits := s[pos:end]
	if len(digits) < n || !isAllHex(digits) {
		kind, char := perr.KindInvalidUnicodeEscape, rune(0)
		if n == 2 {
			kind, char = perr.KindInvalidEscape, 'x'
		}
		return 0, &DecodeError{Kind: kind, HexText: digits, Char: char}
	}
	v, err := strconv.ParseUint(digits, 16, 32)
	if err != nil {
		return 0, &DecodeError{Kind: perr.KindInvalidUnicodeEscape, HexText: digits}
	}
	return rune(v), nil
}

func isAllHex(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= '0' && c <= '9':
		case c >= 'a' && c <= 'f':
		case c >= 'A' && c <= 'F':
		default:
			return false
		}
	}
	return true
}

// DecodeUnicodeEscape decodes a standalone \uXXXX escape (the four hex
// digits, without the leading \u) as used for an inline escape inside a
// json5 identifier run. It is exported for the lexer, which must validate
// the resulting rune against ID_Start/ID_Continue before accepting it.
func DecodeUnicodeEscape(hex string) (rune, error) {
	if len(hex) != 4 || !isAllHex(hex) {
		return 0, &DecodeError{Kind: perr.KindInvalidUnicodeEscape, HexText: hex}
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 0, &DecodeError{Kind: perr.KindInvalidUnicodeEscape, HexText: hex}
	}
	return rune(v), nil
}
