package lsp

import "testing"

func TestByteOffsetFromLSP_ASCII(t *testing.T) {
	t.Parallel()

	src := "line one\nline two\n"
	starts := lineStarts(src)

	off := byteOffsetFromLSP(src, starts, 1, 5, PositionEncodingUTF16)
	want := len("line one\n") + 5
	if off != want {
		t.Errorf("offset = %d; want %d", off, want)
	}
}

func TestByteOffsetFromLSP_Surrogate(t *testing.T) {
	t.Parallel()

	// U+1F600 (GRINNING FACE) is 4 UTF-8 bytes and 2 UTF-16 code units.
	src := "a😀b"
	starts := lineStarts(src)

	// char=1 is right after 'a', before the emoji.
	off := byteOffsetFromLSP(src, starts, 0, 1, PositionEncodingUTF16)
	if off != 1 {
		t.Errorf("offset before surrogate = %d; want 1", off)
	}

	// char=2 lands mid-surrogate; floor to the start of the emoji rune.
	off = byteOffsetFromLSP(src, starts, 0, 2, PositionEncodingUTF16)
	if off != 1 {
		t.Errorf("offset mid-surrogate = %d; want 1 (floored)", off)
	}

	// char=3 is right after the emoji (2 code units past it).
	off = byteOffsetFromLSP(src, starts, 0, 3, PositionEncodingUTF16)
	if off != 5 {
		t.Errorf("offset after surrogate = %d; want 5", off)
	}
}

func TestByteOffsetFromLSP_UTF8Encoding(t *testing.T) {
	t.Parallel()

	src := "a😀b"
	starts := lineStarts(src)

	off := byteOffsetFromLSP(src, starts, 0, 5, PositionEncodingUTF8)
	if off != 5 {
		t.Errorf("utf-8 offset = %d; want 5", off)
	}
}

func TestOffsetToLSPPosition_RoundTrip(t *testing.T) {
	t.Parallel()

	src := "a😀b\nsecond"
	starts := lineStarts(src)

	line, char := offsetToLSPPosition(src, starts, 5, PositionEncodingUTF16)
	if line != 0 || char != 3 {
		t.Errorf("position = (%d,%d); want (0,3)", line, char)
	}

	back := byteOffsetFromLSP(src, starts, line, char, PositionEncodingUTF16)
	if back != 5 {
		t.Errorf("round-tripped offset = %d; want 5", back)
	}
}
