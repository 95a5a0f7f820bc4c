package location

import "fmt"

// LocationRange is a half-open range [Start, End) over a source text. End is
// exclusive: it names the position immediately after the range's last code
// unit, so a zero-width range has Start == End.
type LocationRange struct {
	Start Location
	End   Location
}

// NewLocationRange builds a LocationRange. It does not validate that Start
// precedes End; callers constructing ranges from live scanner state are
// trusted to pass a geometrically sound pair. Use [LocationRange.IsValid]
// to check a range obtained from elsewhere.
func NewLocationRange(start, end Location) LocationRange {
	return LocationRange{Start: start, End: end}
}

// PointRange builds a zero-width LocationRange at a single point.
func PointRange(at Location) LocationRange {
	return LocationRange{Start: at, End: at}
}

// IsZero reports whether both endpoints are unknown.
func (r LocationRange) IsZero() bool {
	return r.Start.IsZero() && r.End.IsZero()
}

// IsValid reports whether both endpoints are known and Start does not come
// after End.
func (r LocationRange) IsValid() bool {
	if !r.Start.IsKnown() || !r.End.IsKnown() {
		return false
	}
	return !r.End.Before(r.Start)
}

// Contains reports whether the byte/unit Offset of p falls within the
// half-open range [Start.Offset, End.Offset). Both endpoints must have a
// non-negative Offset for this to be meaningful.
func (r LocationRange) Contains(p Location) bool {
	if r.Start.Offset < 0 || r.End.Offset < 0 || p.Offset < 0 {
		return false
	}
	return p.Offset >= r.Start.Offset && p.Offset < r.End.Offset
}

// String returns "startLine:startCol-endLine:endCol", or "<no location>" for
// a zero range.
func (r LocationRange) String() string {
	if r.IsZero() {
		return "<no location>"
	}
	return fmt.Sprintf("%s-%s", r.Start.String(), r.End.String())
}

// Range is the convenience [start.Offset, end.Offset] pair attached to
// tokens and AST nodes when the `ranges` option is enabled.
type Range struct {
	Start int
	End   int
}

// RangeOf projects a LocationRange's offsets into a [Range].
func RangeOf(r LocationRange) Range {
	return Range{Start: r.Start.Offset, End: r.End.Offset}
}
