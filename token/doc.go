// Package token defines the token vocabulary shared by the lexer and
// parser, and the dialect ([Mode]) that governs which tokens are legal.
//
// A Token never carries a decoded value. Its lexical text is recovered by
// slicing the source between its [location.LocationRange] endpoints and,
// for strings and identifiers, decoded on demand by internal/textlit.
package token
