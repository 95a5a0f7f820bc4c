package visit

import "iter"

// Iterator returns a lazy depth-first pre-order sequence over root and
// its descendants, yielding only the nodes for which filter returns
// true. A nil filter yields every node.
func Iterator(root any, filter func(node any) bool) iter.Seq[any] {
	if filter == nil {
		filter = func(any) bool { return true }
	}
	return func(yield func(any) bool) {
		var walk func(node any) bool
		walk = func(node any) bool {
			if filter(node) && !yield(node) {
				return false
			}
			for _, child := range children(node) {
				if !walk(child) {
					return false
				}
			}
			return true
		}
		walk(root)
	}
}
