// Package ast defines the tagged AST node types this module's parser
// builds and its printer consumes.
//
// [ValueNode] is the closed union {Object, Array, String, Number,
// Boolean, Null, Identifier, NaN, Infinity}; membership is enforced by an
// unexported marker method rather than a string `type` tag, so an
// exhaustive type switch is a compile-time-checkable idiom instead of a
// runtime string comparison. [Document], [Member], and [Element] are
// structural wrappers, not ValueNode variants themselves, but every node
// — wrapper or value — carries a [location.LocationRange] and an optional
// [location.Range].
//
// Every constructor in this package is a pure builder: it attaches the
// location data from a [NodeParts] and performs no validation. Structural
// invariants (object member uniqueness is explicitly NOT one of them,
// array element counts, and so on) are the parser's responsibility.
package ast
