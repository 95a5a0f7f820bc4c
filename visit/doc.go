// Package visit is a depth-first walker over a parsed AST.
//
// Traverse and Iterator both descend using the same fixed children
// relationships as [Keys] documents: Document->Body, Object->Members
// (each Member->Name, Value), Array->Elements (each Element->Value);
// scalar value nodes have no children. There is no reflection —
// descent is a plain type switch, same as evaluate and printer.
package visit
