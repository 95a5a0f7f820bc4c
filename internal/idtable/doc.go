// Package idtable exposes JSON5 identifier membership tests.
//
// JSON5 identifiers follow a restricted form of ECMAScript's
// IdentifierName: the Unicode ID_Start / ID_Continue properties plus a
// handful of ASCII and zero-width exceptions (see [IsIdentifierStart] and
// [IsIdentifierPart]). The underlying range tables are assembled once,
// lazily, via [sync.OnceValue] and reused for the process lifetime, since
// they are immutable constant data with no per-call state.
package idtable
