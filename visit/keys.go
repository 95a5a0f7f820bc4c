package visit

// Keys documents, for each node shape, the ordered field names Traverse
// and Iterator descend into. It is metadata for callers introspecting
// the tree shape; traversal itself is a direct type switch, not driven
// by this map.
var Keys = map[string][]string{
	"Document":   {"Body"},
	"Object":     {"Members"},
	"Member":     {"Name", "Value"},
	"Array":      {"Elements"},
	"Element":    {"Value"},
	"String":     {},
	"Number":     {},
	"Boolean":    {},
	"Null":       {},
	"Identifier": {},
	"NaN":        {},
	"Infinity":   {},
}
