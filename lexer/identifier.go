package lexer

import (
	"github.com/jsonx-lang/jsonx/internal/idtable"
	"github.com/jsonx-lang/jsonx/internal/textlit"
	"github.com/jsonx-lang/jsonx/location"
	"github.com/jsonx-lang/jsonx/perr"
	"github.com/jsonx-lang/jsonx/token"
)

// scanIdentifierRun reads a run of identifier characters starting at the
// reader's current position (not yet consumed) and classifies it: the
// exact spellings true/false/null become Boolean/Boolean/Null; in json5,
// Infinity/NaN become Number (matching the signed forms scanNumber
// produces) and any other run becomes Identifier; in json/jsonc any
// other run is UnexpectedIdentifier.
func (l *Lexer) scanIdentifierRun(start location.Location) (token.Type, error) {
	if err := l.consumeIdentifierChar(true); err != nil {
		return l.fail(err)
	}
	for {
		if l.r.Peek() == '\\' {
			ok, err := l.identifierEscapeContinues()
			if err != nil {
				return l.fail(err)
			}
			if !ok {
				break
			}
			if err := l.consumeIdentifierChar(false); err != nil {
				return l.fail(err)
			}
			continue
		}
		if !idtable.IsIdentifierPart(l.r.Peek()) {
			break
		}
		l.r.Next()
	}

	end := l.r.Locate()
	text := l.src[start.Offset:end.Offset]

	switch text {
	case "true", "false":
		return l.emitAt(token.Boolean, start, end)
	case "null":
		return l.emitAt(token.Null, start, end)
	case "Infinity", "NaN":
		if l.opts.Mode.IsJSON5() {
			return l.emitAt(token.Number, start, end)
		}
	}
	if !l.opts.Mode.IsJSON5() {
		return l.fail(perr.NewUnexpectedIdentifier(start, text))
	}
	return l.emitAt(token.Identifier, start, end)
}

// identifierEscapeContinues reports, without consuming, whether a `\u`
// escape at the reader's current position decodes to a rune satisfying
// IdentifierPart — used to decide whether the run continues. It does not
// consume input; the caller re-decodes and consumes via
// consumeIdentifierChar once it decides to continue.
func (l *Lexer) identifierEscapeContinues() (bool, error) {
	r, _, err := l.peekIdentifierEscape()
	if err != nil {
		return false, err
	}
	return idtable.IsIdentifierPart(r), nil
}

// consumeIdentifierChar consumes one identifier character at the
// reader's current position: a plain rune, or a `\uXXXX` escape. first
// selects which membership test the resulting rune must satisfy.
func (l *Lexer) consumeIdentifierChar(first bool) error {
	if l.r.Peek() != '\\' {
		l.r.Next()
		return nil
	}
	backslashLoc := l.r.Locate()
	r, consumed, err := l.peekIdentifierEscape()
	if err != nil {
		return err
	}
	valid := idtable.IsIdentifierStart(r)
	if !first {
		valid = valid || idtable.IsIdentifierPart(r)
	}
	if !valid {
		return perr.NewUnexpectedChar(backslashLoc, '\\')
	}
	for i := 0; i < consumed; i++ {
		l.r.Next()
	}
	return nil
}

// peekIdentifierEscape decodes, without consuming, the `\uXXXX` escape
// starting at the reader's current position. consumed is the number of
// reader.Next calls (6, for `\`, `u`, and 4 hex digits) the caller must
// issue to actually consume it.
func (l *Lexer) peekIdentifierEscape() (rune, int, error) {
	backslashLoc := l.r.Locate()
	rest := l.src[backslashLoc.Offset:]
	if len(rest) < 2 || rest[1] != 'u' {
		return 0, 0, perr.NewUnexpectedChar(backslashLoc, '\\')
	}
	hexEnd := 2
	for hexEnd < len(rest) && hexEnd < 6 && isHexDigit(rune(rest[hexEnd])) {
		hexEnd++
	}
	hexText := rest[2:hexEnd]
	r, err := textlit.DecodeUnicodeEscape(hexText)
	if err != nil {
		return 0, 0, perr.NewInvalidUnicodeEscape(backslashLoc, hexText)
	}
	return r, 6, nil
}

func (l *Lexer) emitAt(typ token.Type, start, end location.Location) (token.Type, error) {
	l.tok = l.finish(typ, start, end)
	return typ, nil
}
