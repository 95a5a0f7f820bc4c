package visit

import "github.com/jsonx-lang/jsonx/ast"

// Hooks are the optional enter/exit callbacks Traverse invokes at each
// node. Either may be nil. Returning a non-nil error from either aborts
// the traversal immediately; Traverse returns that error.
type Hooks struct {
	Enter func(node any) error
	Exit  func(node any) error
}

// Traverse walks root depth-first, calling Enter before descending into
// a node's children and Exit after. root may be an *ast.Document, any
// *ast.ValueNode variant, or an ast.Member/ast.Element (Traverse, unlike
// evaluate.Evaluate, accepts the structural wrapper types since it walks
// the whole tree, not just values).
func Traverse(root any, hooks Hooks) error {
	if hooks.Enter != nil {
		if err := hooks.Enter(root); err != nil {
			return err
		}
	}

	for _, child := range children(root) {
		if err := Traverse(child, hooks); err != nil {
			return err
		}
	}

	if hooks.Exit != nil {
		if err := hooks.Exit(root); err != nil {
			return err
		}
	}
	return nil
}

// children returns node's direct children in source order, per the
// relationships documented in Keys.
func children(node any) []any {
	switch n := node.(type) {
	case *ast.Document:
		return []any{n.Body}
	case *ast.Object:
		out := make([]any, len(n.Members))
		for i, m := range n.Members {
			out[i] = m
		}
		return out
	case ast.Member:
		return []any{n.Name, n.Value}
	case *ast.Array:
		out := make([]any, len(n.Elements))
		for i, e := range n.Elements {
			out[i] = e
		}
		return out
	case ast.Element:
		return []any{n.Value}
	default:
		return nil
	}
}
