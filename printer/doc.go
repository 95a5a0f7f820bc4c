// Package printer re-emits an [ast.ValueNode] as text.
//
// Print is source-agnostic: it never attempts to reproduce the original
// spelling of a value (single quotes, hex numbers, trailing commas all
// collapse to one canonical form). The same node always prints the same
// text regardless of which dialect parsed it.
package printer
