package ast

import "github.com/jsonx-lang/jsonx/location"

// Array is a `[...]` value: an ordered list of elements.
type Array struct {
	Loc      location.LocationRange
	Range    *location.Range
	Elements []Element
}

// Element wraps a single array item. Its Loc always equals its inner
// Value's Loc.
type Element struct {
	Loc   location.LocationRange
	Range *location.Range
	Value ValueNode
}

func (a *Array) Location() location.LocationRange { return a.Loc }
func (a *Array) valueNode()                       {}

// NewArray builds an Array from its parts and elements.
func NewArray(parts NodeParts, elements []Element) *Array {
	return &Array{Loc: parts.Loc, Range: parts.Range, Elements: elements}
}

// NewElement builds an Element wrapping value. parts should mirror
// value's own location, per the invariant that Element.Loc equals its
// inner value's Loc.
func NewElement(parts NodeParts, value ValueNode) Element {
	return Element{Loc: parts.Loc, Range: parts.Range, Value: value}
}
