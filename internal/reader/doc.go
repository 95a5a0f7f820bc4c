// Package reader implements the cursor the lexer reads characters through.
//
// A [CharReader] wraps a single in-memory source string for the lifetime of
// one tokenize/parse call; there is no multi-source registry and no shared
// mutable state between reader instances. It tracks line, column, and a
// byte offset as it advances, normalizing CR, LF, and CRLF to a single line
// break. See [location.Location] for the coordinate system.
package reader
