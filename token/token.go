package token

import "github.com/jsonx-lang/jsonx/location"

// Token is a single lexical unit: a type and the source span it occupies.
// Range is nil unless the lexer was configured with the ranges option.
type Token struct {
	Type  Type
	Loc   location.LocationRange
	Range *location.Range
}

// Text recovers the token's raw lexical text by slicing source between
// the token's location offsets. The caller is responsible for passing the
// same source the token was produced from.
func (t Token) Text(source string) string {
	return source[t.Loc.Start.Offset:t.Loc.End.Offset]
}
