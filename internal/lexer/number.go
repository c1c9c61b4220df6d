package lexer

import (
	"strconv"
	"strings"

	"github.com/cstarlang/cstar/internal/source"
	"github.com/cstarlang/cstar/internal/token"
)

// tokNumber dispatches to the right numeric-literal reader based on the
// 0x/0b/0o prefixes, falling through to the decimal/floating-point path.
func (l *Lexer) tokNumber() {
	pos := l.mark()
	if l.peek(0) == '0' {
		switch toUpper(l.peek(1)) {
		case 'X':
			l.advance(2)
			l.tokHexNumber(pos)
			return
		case 'B':
			l.advance(2)
			l.tokBinaryNumber(pos)
			return
		case 'O':
			l.advance(2)
			l.tokOctalNumber(pos)
			return
		}
		if isOctDigit(l.peek(1)) {
			l.advance(1)
			l.tokOctalNumber(pos)
			return
		}
	}
	l.tokDecimalNumber(pos)
}

func isBinDigit(c byte) bool { return c == '0' || c == '1' }

func (l *Lexer) tokBinaryNumber(pos source.Position) {
	start := l.idx
	for isBinDigit(l.peek(0)) || l.peek(0) == '_' {
		l.advance(1)
	}
	digits := stripUnderscores(l.src.Contents()[start:l.idx])
	if digits == "" {
		l.fatalContinue(l.rangeFrom(pos), "binary literal has no digits")
		return
	}
	v, err := strconv.ParseUint(digits, 2, 64)
	if err != nil {
		l.fatalContinue(l.rangeFrom(pos), "binary literal out of range")
		l.emit(token.INTEGER, pos, l.idx, token.IntValue(0))
		return
	}
	l.emit(token.INTEGER, pos, l.idx, token.IntValue(v))
}

// tokHexNumber reads a hex digit run and, per the hex-float path, an
// optional fractional part and a 'P'/'p' exponent (hex digits have no
// 'e' of their own to signal a decimal exponent, hence the different
// letter). Falls back to strconv.ParseFloat's own hex-float syntax
// support when either is present.
func (l *Lexer) tokHexNumber(pos source.Position) {
	start := l.idx
	for isHexDigit(l.peek(0)) || l.peek(0) == '_' {
		l.advance(1)
	}

	isFloat := false
	if l.peek(0) == '.' && isHexDigit(l.peek(1)) {
		isFloat = true
		l.advance(1)
		for isHexDigit(l.peek(0)) || l.peek(0) == '_' {
			l.advance(1)
		}
	}
	if c := toUpper(l.peek(0)); c == 'P' {
		n := uint32(1)
		if l.peek(1) == '+' || l.peek(1) == '-' {
			n = 2
		}
		if isDigit(l.peek(n)) {
			isFloat = true
			l.advance(n)
			l.eatWhileFunc(isDigit)
		} else {
			l.fatalContinue(l.rangeFrom(pos), "empty exponent in hexadecimal float literal")
		}
	}

	if isFloat {
		text := stripUnderscores(l.src.Contents()[pos.Index:l.idx])
		v, err := strconv.ParseFloat(text, 64)
		if err != nil {
			l.fatalContinue(l.rangeFrom(pos), "hexadecimal float literal out of range")
			l.emit(token.FLOAT, pos, l.idx, token.FloatValue(0))
			return
		}
		l.emit(token.FLOAT, pos, l.idx, token.FloatValue(v))
		return
	}

	digits := stripUnderscores(l.src.Contents()[start:l.idx])
	if digits == "" {
		l.fatalContinue(l.rangeFrom(pos), "hexadecimal literal has no digits")
		return
	}
	v, err := strconv.ParseUint(digits, 16, 64)
	if err != nil {
		l.fatalContinue(l.rangeFrom(pos), "hexadecimal literal out of range")
		l.emit(token.INTEGER, pos, l.idx, token.IntValue(0))
		return
	}
	l.emit(token.INTEGER, pos, l.idx, token.IntValue(v))
}

// tokOctalNumber reads an octal digit run, entered either via an explicit
// "0o" marker or via a bare leading zero followed by an octal digit. A
// digit-like tail that isn't itself octal (an 8/9, a '.', or an
// exponent marker) means the literal was decimal/floating-point all
// along and merely started with a leading zero, so the cursor rewinds to
// pos and re-dispatches to the decimal path rather than reporting "not a
// valid octal digit" for what is legal decimal syntax.
func (l *Lexer) tokOctalNumber(pos source.Position) {
	start := l.idx
	for isOctDigit(l.peek(0)) || l.peek(0) == '_' {
		l.advance(1)
	}
	if c := l.peek(0); isDigit(c) || c == '.' || toUpper(c) == 'E' {
		l.idx = pos.Index
		l.pos = pos.Coord
		l.tokDecimalNumber(pos)
		return
	}
	digits := stripUnderscores(l.src.Contents()[start:l.idx])
	if digits == "" {
		l.emit(token.INTEGER, pos, l.idx, token.IntValue(0))
		return
	}
	v, err := strconv.ParseUint(digits, 8, 64)
	if err != nil {
		l.fatalContinue(l.rangeFrom(pos), "octal literal out of range")
		l.emit(token.INTEGER, pos, l.idx, token.IntValue(0))
		return
	}
	l.emit(token.INTEGER, pos, l.idx, token.IntValue(v))
}

// tokDecimalNumber reads the integer part, then hands off to
// tokFloatingPoint if it sees a fractional dot or an exponent.
func (l *Lexer) tokDecimalNumber(pos source.Position) {
	l.eatWhileFunc(func(c byte) bool { return isDigit(c) || c == '_' })

	isFloat := false
	if l.peek(0) == '.' && isDigit(l.peek(1)) {
		isFloat = true
		l.advance(1)
		l.eatWhileFunc(func(c byte) bool { return isDigit(c) || c == '_' })
	}
	if c := toUpper(l.peek(0)); c == 'E' {
		n := uint32(1)
		if l.peek(1) == '+' || l.peek(1) == '-' {
			n = 2
		}
		if isDigit(l.peek(n)) {
			isFloat = true
			l.advance(n)
			l.eatWhileFunc(isDigit)
		} else {
			l.fatalContinue(l.rangeFrom(pos), "empty exponent in numeric literal")
		}
	}

	digits := stripUnderscores(l.src.Contents()[pos.Index:l.idx])
	if isFloat {
		v, err := strconv.ParseFloat(digits, 64)
		if err != nil {
			l.fatalContinue(l.rangeFrom(pos), "floating point literal out of range")
			l.emit(token.FLOAT, pos, l.idx, token.FloatValue(0))
			return
		}
		l.emit(token.FLOAT, pos, l.idx, token.FloatValue(v))
		return
	}

	v, err := strconv.ParseUint(digits, 10, 64)
	if err != nil {
		l.fatalContinue(l.rangeFrom(pos), "integer literal out of range")
		l.emit(token.INTEGER, pos, l.idx, token.IntValue(0))
		return
	}
	l.emit(token.INTEGER, pos, l.idx, token.IntValue(v))
}

func stripUnderscores(b []byte) string {
	if !strings.ContainsRune(string(b), '_') {
		return string(b)
	}
	out := make([]byte, 0, len(b))
	for _, c := range b {
		if c != '_' {
			out = append(out, c)
		}
	}
	return string(out)
}
