package ast

import "github.com/jsonx-lang/jsonx/location"

// NodeParts carries the location data every constructor attaches to its
// node: the required span and an optional offset pair, present only when
// the parser was configured with the ranges option.
type NodeParts struct {
	Loc   location.LocationRange
	Range *location.Range
}

// ValueNode is the closed union of value variants: Object, Array, String,
// Number, Boolean, Null, Identifier, NaN, Infinity. Identifier, NaN, and
// Infinity only ever appear when parsing in json5 mode.
type ValueNode interface {
	// Location returns the node's span in the source it was parsed from.
	Location() location.LocationRange

	// valueNode is unexported: only types in this package may implement
	// ValueNode, giving callers an exhaustive, compiler-checked type
	// switch instead of a runtime string-tag comparison.
	valueNode()
}
