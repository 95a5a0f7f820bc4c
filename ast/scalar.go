package ast

import "github.com/jsonx-lang/jsonx/location"

// String is a decoded string value. Value has already had all escapes
// (including json5 line continuations) resolved; the original quoting
// style is not recoverable from the node.
type String struct {
	Loc   location.LocationRange
	Range *location.Range
	Value string
}

// Number is a decoded IEEE-754 double. Literals that overflow the double
// range become ±Infinity per the host's float-parsing rules; a json5
// `NaN` literal is represented by the NaN node, never by Number.
type Number struct {
	Loc   location.LocationRange
	Range *location.Range
	Value float64
}

// Boolean is `true` or `false`.
type Boolean struct {
	Loc   location.LocationRange
	Range *location.Range
	Value bool
}

// Null is the `null` literal. It carries no value.
type Null struct {
	Loc   location.LocationRange
	Range *location.Range
}

// Identifier is a json5 bare identifier used as an object key. Name has
// already had any inline \uXXXX escapes resolved to their characters.
type Identifier struct {
	Loc   location.LocationRange
	Range *location.Range
	Name  string
}

// Sign is the optional leading sign on a json5 NaN or Infinity literal.
type Sign string

const (
	SignNone     Sign = ""
	SignPositive Sign = "+"
	SignNegative Sign = "-"
)

// NaN is a json5 (optionally signed) NaN literal.
type NaN struct {
	Loc   location.LocationRange
	Range *location.Range
	Sign  Sign
}

// Infinity is a json5 (optionally signed) Infinity literal.
type Infinity struct {
	Loc   location.LocationRange
	Range *location.Range
	Sign  Sign
}

func (s *String) Location() location.LocationRange    { return s.Loc }
func (n *Number) Location() location.LocationRange     { return n.Loc }
func (b *Boolean) Location() location.LocationRange    { return b.Loc }
func (n *Null) Location() location.LocationRange       { return n.Loc }
func (i *Identifier) Location() location.LocationRange { return i.Loc }
func (n *NaN) Location() location.LocationRange        { return n.Loc }
func (i *Infinity) Location() location.LocationRange   { return i.Loc }

func (s *String) valueNode()     {}
func (n *Number) valueNode()     {}
func (b *Boolean) valueNode()    {}
func (n *Null) valueNode()       {}
func (i *Identifier) valueNode() {}
func (n *NaN) valueNode()        {}
func (i *Infinity) valueNode()   {}

// NewString builds a String from its parts and decoded value.
func NewString(parts NodeParts, value string) *String {
	return &String{Loc: parts.Loc, Range: parts.Range, Value: value}
}

// NewNumber builds a Number from its parts and decoded value.
func NewNumber(parts NodeParts, value float64) *Number {
	return &Number{Loc: parts.Loc, Range: parts.Range, Value: value}
}

// NewBoolean builds a Boolean from its parts and value.
func NewBoolean(parts NodeParts, value bool) *Boolean {
	return &Boolean{Loc: parts.Loc, Range: parts.Range, Value: value}
}

// NewNull builds a Null from its parts.
func NewNull(parts NodeParts) *Null {
	return &Null{Loc: parts.Loc, Range: parts.Range}
}

// NewIdentifier builds an Identifier from its parts and decoded name.
func NewIdentifier(parts NodeParts, name string) *Identifier {
	return &Identifier{Loc: parts.Loc, Range: parts.Range, Name: name}
}

// NewNaN builds a NaN literal from its parts and sign.
func NewNaN(parts NodeParts, sign Sign) *NaN {
	return &NaN{Loc: parts.Loc, Range: parts.Range, Sign: sign}
}

// NewInfinity builds an Infinity literal from its parts and sign.
func NewInfinity(parts NodeParts, sign Sign) *Infinity {
	return &Infinity{Loc: parts.Loc, Range: parts.Range, Sign: sign}
}
