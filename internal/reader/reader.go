package reader

import (
	"unicode/utf8"

	"github.com/jsonx-lang/jsonx/location"
)

// EOF is returned by [CharReader.Peek] and [CharReader.Next] once the
// source is exhausted.
const EOF rune = -1

// CharReader presents a cursor over a UTF-8 source string. line starts at
// 1; column starts at 0 and becomes 1 on the first call to Next. offset
// counts bytes, matching [location.Location]'s coordinate system.
type CharReader struct {
	src     string
	pos     int // byte offset of the next rune to decode
	line    int
	column  int
	current rune // last rune returned by Next; EOF before the first call
}

// New returns a CharReader positioned before the first character of src.
func New(src string) *CharReader {
	return &CharReader{
		src:     src,
		line:    1,
		column:  0,
		current: EOF,
	}
}

// Peek returns the next code point without consuming it, or EOF.
func (r *CharReader) Peek() rune {
	c, _ := r.decode()
	return c
}

// Next consumes and returns the next code point, or EOF if the source is
// exhausted. \r, \n, and \r\n all advance to a new line and count as a
// single line break; the reader consumes a \n immediately following a \r.
func (r *CharReader) Next() rune {
	c, size := r.decode()
	if c == EOF {
		return EOF
	}
	r.pos += size
	r.current = c

	if c == '\r' {
		r.line++
		r.column = 0
		if c2, size2 := r.decode(); c2 == '\n' {
			r.pos += size2
		}
		return c
	}
	if c == '\n' {
		r.line++
		r.column = 0
		return c
	}
	r.column++
	return c
}

// Current returns the code point most recently consumed by Next. It is
// EOF before the first call to Next.
func (r *CharReader) Current() rune {
	return r.current
}

// Locate returns the position of the next character Next would return.
func (r *CharReader) Locate() location.Location {
	return location.NewLocation(r.line, r.column+1, r.pos)
}

// Match consumes and returns true if the next code point satisfies
// predicate; otherwise it leaves the cursor untouched and returns false.
func (r *CharReader) Match(predicate func(rune) bool) bool {
	if predicate(r.Peek()) {
		r.Next()
		return true
	}
	return false
}

// AtEOF reports whether the cursor has reached the end of the source.
func (r *CharReader) AtEOF() bool {
	return r.Peek() == EOF
}

// decode returns the rune starting at r.pos and its size in bytes, or
// (EOF, 0) at end of input. A byte that does not begin a valid UTF-8
// sequence decodes as (utf8.RuneError, 1).
func (r *CharReader) decode() (rune, int) {
	if r.pos >= len(r.src) {
		return EOF, 0
	}
	return utf8.DecodeRuneInString(r.src[r.pos:])
}
