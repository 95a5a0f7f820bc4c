package lexer

import (
	"github.com/jsonx-lang/jsonx/location"
	"github.com/jsonx-lang/jsonx/perr"
	"github.com/jsonx-lang/jsonx/token"
)

// scanNumber is entered with the reader positioned on the first
// character of a number literal (a digit, `-`, or, in json5 only, `+` or
// a leading `.`), not yet consumed.
func (l *Lexer) scanNumber(start location.Location) (token.Type, error) {
	if c := l.r.Peek(); c == '-' || (c == '+' && l.opts.Mode.IsJSON5()) {
		l.r.Next()
	}

	if l.opts.Mode.IsJSON5() {
		switch l.r.Peek() {
		case 'I':
			return l.scanKeywordSuffix(start, "Infinity", token.Number)
		case 'N':
			return l.scanKeywordSuffix(start, "NaN", token.Number)
		}
	}

	hasIntDigits := false
	switch {
	case l.r.Peek() == '0':
		l.r.Next()
		hasIntDigits = true

		if l.opts.Mode.IsJSON5() && (l.r.Peek() == 'x' || l.r.Peek() == 'X') {
			l.r.Next()
			digits := 0
			for !l.r.AtEOF() && isHexDigit(l.r.Peek()) {
				l.r.Next()
				digits++
			}
			if digits == 0 {
				return l.numberError()
			}
			return l.emit(token.Number, start)
		}

		if isDigit(l.r.Peek()) {
			// A leading zero followed by another digit is never valid.
			errLoc := l.r.Locate()
			errChar := l.r.Peek()
			l.r.Next()
			return l.fail(perr.NewUnexpectedChar(errLoc, errChar))
		}

	case isDigit(l.r.Peek()):
		hasIntDigits = true
		for isDigit(l.r.Peek()) {
			l.r.Next()
		}
	}

	hasFracDigits := false
	if l.r.Peek() == '.' {
		l.r.Next()
		for isDigit(l.r.Peek()) {
			l.r.Next()
			hasFracDigits = true
		}
		if !hasFracDigits && !l.opts.Mode.IsJSON5() {
			return l.numberError()
		}
	}

	if !hasIntDigits && !hasFracDigits {
		return l.numberError()
	}

	if c := l.r.Peek(); c == 'e' || c == 'E' {
		l.r.Next()
		if c2 := l.r.Peek(); c2 == '+' || c2 == '-' {
			l.r.Next()
		}
		expDigits := 0
		for isDigit(l.r.Peek()) {
			l.r.Next()
			expDigits++
		}
		if expDigits == 0 {
			return l.numberError()
		}
	}

	return l.emit(token.Number, start)
}

// numberError reports the character (or EOF) immediately at the reader's
// current position as the reason a number literal could not continue.
func (l *Lexer) numberError() (token.Type, error) {
	loc := l.r.Locate()
	if l.r.AtEOF() {
		return l.fail(perr.NewUnexpectedEOF(loc))
	}
	c := l.r.Peek()
	l.r.Next()
	return l.fail(perr.NewUnexpectedChar(loc, c))
}

// scanKeywordSuffix requires the reader, positioned at word's first
// character, to spell word exactly; on success it emits typ. Used for
// json5's signed Infinity/NaN number forms.
func (l *Lexer) scanKeywordSuffix(start location.Location, word string, typ token.Type) (token.Type, error) {
	for _, want := range word {
		if l.r.AtEOF() || l.r.Peek() != want {
			return l.numberError()
		}
		l.r.Next()
	}
	return l.emit(typ, start)
}
