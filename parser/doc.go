// Package parser builds an [ast.Document] from JSON, JSONC, or JSON5
// source text.
//
// [Parse] tokenizes the full input with [lexer.Tokenize] up front, then
// descends recursively: one private method per grammar nonterminal
// (value, object, member, name, array, element, document), each
// consuming a single token of lookahead. Comments are skipped
// transparently wherever the grammar allows them; in strict JSON mode
// the lexer itself never produces one.
//
// Parsing does not attempt error recovery: the first grammar violation
// or lexer error aborts the parse and returns a [perr.Error].
package parser
