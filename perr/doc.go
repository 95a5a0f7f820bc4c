// Package perr defines the tagged error kinds raised by the lexer and
// parser.
//
// Every error from [lexer] or [parser] is an [Error] carrying a [Kind] and a
// [location.Location]. There is no severity, no diagnostic collector, and no
// batching: the lexer and parser stop at the first error (see their package
// docs), so at most one Error is ever produced per call. This is a
// deliberately smaller surface than a general diagnostics system — this
// module's grammar never recovers from a syntax error, so there is nothing
// for a collector to accumulate.
package perr
