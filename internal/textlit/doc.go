// Package textlit decodes raw string-token text into the string value a
// String AST node carries.
//
// [Decode] is the single place unicode escapes and line continuations
// affect the resulting value; the lexer never decodes, it only locates
// token boundaries. Decode errors report the escape that failed, not the
// token's own span, since an error mid-string should point at the
// offending backslash.
//
// # Internal Package
//
// This package is internal to the module. Its API may change without
// notice between versions.
package textlit
