package idtable

import (
	"sync"
	"unicode"

	"golang.org/x/text/unicode/rangetable"
)

// idStartCategories approximates Unicode's ID_Start derived property as
// the union of the letter-ish general categories: uppercase, lowercase,
// titlecase, modifier, and other letters, plus letter numbers.
var idStartCategories = []*unicode.RangeTable{
	unicode.Lu, unicode.Ll, unicode.Lt, unicode.Lm, unicode.Lo, unicode.Nl,
}

// idContinueExtra are the categories ID_Continue adds on top of ID_Start:
// combining marks, decimal digits, and connector punctuation.
var idContinueExtra = []*unicode.RangeTable{
	unicode.Mn, unicode.Mc, unicode.Nd, unicode.Pc,
}

var idStartTable = sync.OnceValue(func() *unicode.RangeTable {
	return rangetable.Merge(idStartCategories...)
})

var idContinueTable = sync.OnceValue(func() *unicode.RangeTable {
	tables := make([]*unicode.RangeTable, 0, len(idStartCategories)+len(idContinueExtra))
	tables = append(tables, idStartCategories...)
	tables = append(tables, idContinueExtra...)
	return rangetable.Merge(tables...)
})

// IsIDStart reports whether r has the Unicode ID_Start property.
func IsIDStart(r rune) bool {
	return unicode.Is(idStartTable(), r)
}

// IsIDContinue reports whether r has the Unicode ID_Continue property.
func IsIDContinue(r rune) bool {
	return unicode.Is(idContinueTable(), r)
}

// IsIdentifierStart reports whether r may begin a JSON5 identifier: $, _,
// U+200C, U+200D, or any code point with the ID_Start property (which
// includes the ASCII letter ranges). The lexer handles the `\uXXXX`
// escape form separately, decoding it before calling IsIdentifierStart on
// the resulting rune.
func IsIdentifierStart(r rune) bool {
	switch r {
	case '$', '_', '\u200c', '\u200d':
		return true
	}
	return IsIDStart(r)
}

// IsIdentifierPart reports whether r may continue a JSON5 identifier
// after its first character: everything IsIdentifierStart accepts, plus
// ID_Continue (ASCII digits, combining marks, connector punctuation).
func IsIdentifierPart(r rune) bool {
	if IsIdentifierStart(r) {
		return true
	}
	return IsIDContinue(r)
}
