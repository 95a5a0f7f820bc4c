// Package evaluate projects an [ast.ValueNode] onto plain Go values:
// map[string]any for objects, []any for arrays, string/float64/bool/nil
// for scalars. The projection is lossy by design — source locations,
// member order duplicates (last write wins), and the json5-only
// Identifier/NaN/Infinity node distinctions all collapse into their
// plain-value equivalents.
package evaluate
