package lsp

import "unicode/utf8"

// PositionEncoding identifies how LSP character offsets are counted within
// a line. UTF-16 is the default required by the protocol; UTF-8 is used
// only when Config.Encoding selects it. The server does not read the
// client's positionEncoding capability.
type PositionEncoding string

const (
	PositionEncodingUTF16 PositionEncoding = "utf-16"
	PositionEncodingUTF8  PositionEncoding = "utf-8"
)

// lineStarts returns the byte offset of the first byte of each line in src,
// starting with line 0 at offset 0.
func lineStarts(src string) []int {
	starts := []int{0}
	for i := 0; i < len(src); i++ {
		if src[i] == '\n' {
			starts = append(starts, i+1)
		}
	}
	return starts
}

// byteOffsetFromLSP converts a 0-based LSP line/character position into a
// byte offset into src. The char value is interpreted per enc: UTF-16 code
// units (the LSP default) or raw bytes.
//
// Mid-surrogate positions are floored to the start of the rune they fall
// within, mirroring how editors themselves never produce such positions
// except via a misbehaving client.
func byteOffsetFromLSP(src string, starts []int, line, char int, enc PositionEncoding) int {
	if line < 0 {
		return 0
	}
	if line >= len(starts) {
		return len(src)
	}
	lineStart := starts[line]
	lineEnd := len(src)
	if line+1 < len(starts) {
		lineEnd = starts[line+1] - 1 // exclude the newline itself
		if lineEnd < lineStart {
			lineEnd = lineStart
		}
	}

	if enc == PositionEncodingUTF8 {
		off := lineStart + char
		if off > lineEnd {
			return lineEnd
		}
		return off
	}

	pos := lineStart
	units := 0
	for pos < lineEnd && units < char {
		r, size := utf8.DecodeRuneInString(src[pos:])
		if r == utf8.RuneError && size <= 1 {
			units++
			pos++
			continue
		}
		if r > 0xFFFF {
			if units+1 == char {
				return pos
			}
			units += 2
		} else {
			units++
		}
		pos += size
	}
	return pos
}

// byteToUTF16Offset returns the number of UTF-16 code units between
// lineStart and targetByte, both byte offsets into src on the same line.
func byteToUTF16Offset(src string, lineStart, targetByte int) int {
	if targetByte <= lineStart {
		return 0
	}
	units := 0
	pos := lineStart
	for pos < targetByte && pos < len(src) {
		r, size := utf8.DecodeRuneInString(src[pos:])
		if r == utf8.RuneError && size <= 1 {
			units++
			pos++
			continue
		}
		if pos+size > targetByte {
			break
		}
		if r > 0xFFFF {
			units += 2
		} else {
			units++
		}
		pos += size
	}
	return units
}

// lineOf returns the 0-based line index containing byte offset, and that
// line's starting byte offset.
func lineOf(starts []int, offset int) (line, lineStart int) {
	line = 0
	for i, s := range starts {
		if s > offset {
			break
		}
		line, lineStart = i, s
	}
	return line, lineStart
}

// offsetToLSPPosition converts a byte offset into src to a 0-based LSP
// line/character position under the given encoding.
func offsetToLSPPosition(src string, starts []int, offset int, enc PositionEncoding) (line, char int) {
	line, lineStart := lineOf(starts, offset)
	if enc == PositionEncodingUTF8 {
		return line, offset - lineStart
	}
	return line, byteToUTF16Offset(src, lineStart, offset)
}
