// Package lexer tokenizes JSON, JSONC, and JSON5 source text into a
// [token.Token] stream.
//
// [Lexer] wraps an [internal/reader.CharReader] and exposes [Lexer.Next]
// (advance and return the next token's type, EOF being a distinct type)
// and [Lexer.Token] (the token just produced). [Tokenize] is the
// convenience that drives a Lexer to completion and collects every token,
// including comments.
//
// Dialect rules are gated by [token.Mode] at every decision point:
// whitespace tables, comment support, single-quoted strings, bare
// identifier keys, hex/leading-decimal-point/signed-Infinity-NaN number
// forms, and the JSON5-only escape table. The lexer does not decode
// string or identifier escapes — it only validates `\uXXXX` well-
// formedness enough to keep identifier scanning correct; full escape
// decoding is [internal/textlit.Decode]'s job, invoked by the parser
// against each string/identifier token's raw text.
//
// Errors are first-error-wins: the lexer never attempts recovery and
// returns as soon as one token fails to scan.
package lexer
