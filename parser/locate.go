package parser

import (
	"github.com/jsonx-lang/jsonx/internal/reader"
	"github.com/jsonx-lang/jsonx/location"
)

// locationAt re-walks src with a fresh CharReader to recover the
// line/column for an arbitrary byte offset. It is used only on the rare
// error path where a string or identifier escape decode error reports an
// offset relative to a token's inner text, which must be translated to
// an absolute source position for [perr.Error].
func locationAt(src string, offset int) location.Location {
	r := reader.New(src)
	for !r.AtEOF() && r.Locate().Offset < offset {
		r.Next()
	}
	return r.Locate()
}
