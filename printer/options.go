package printer

// Options configures Print.
type Options struct {
	// Indent is the number of spaces per nesting level. Zero produces
	// compact output with no inserted whitespace; a positive value
	// produces pretty output with a newline before every element/member
	// and a single space after each ':'.
	Indent uint
}
