package ast

import "github.com/jsonx-lang/jsonx/location"

// Object is a `{...}` value: an ordered list of members. Member names are
// not required to be unique; the parser preserves every member it reads
// and leaves "last write wins" semantics to evaluate.Evaluate.
type Object struct {
	Loc     location.LocationRange
	Range   *location.Range
	Members []Member
}

// Member is a single `name: value` pair of an Object. Name is a String in
// every dialect, or an Identifier in json5.
type Member struct {
	Loc   location.LocationRange
	Range *location.Range
	Name  ValueNode
	Value ValueNode
}

func (o *Object) Location() location.LocationRange { return o.Loc }
func (o *Object) valueNode()                       {}

// NewObject builds an Object from its parts and members.
func NewObject(parts NodeParts, members []Member) *Object {
	return &Object{Loc: parts.Loc, Range: parts.Range, Members: members}
}

// NewMember builds a Member from its parts, name, and value.
func NewMember(parts NodeParts, name, value ValueNode) Member {
	return Member{Loc: parts.Loc, Range: parts.Range, Name: name, Value: value}
}
