package lexer

import (
	"github.com/cstarlang/cstar/internal/flags"
	"github.com/cstarlang/cstar/internal/source"
	"github.com/cstarlang/cstar/internal/token"
)

// tokComment consumes a line comment ("//...") or a nesting-aware block
// comment ("/* ... /* ... */ ... */") starting at pos, whose first two
// bytes the caller has confirmed but not yet advanced past.
func (l *Lexer) tokComment(pos source.Position) {
	if l.peek(1) == '/' {
		l.advance(2)
		l.eatWhileFunc(func(c byte) bool { return c != '\n' })
		l.maybeEmitComment(pos)
		return
	}

	l.advance(2)
	depth := 1
	for l.hasChars() && depth > 0 {
		switch {
		case l.peek(0) == '/' && l.peek(1) == '*':
			l.advance(2)
			depth++
		case l.peek(0) == '*' && l.peek(1) == '/':
			l.advance(2)
			depth--
		default:
			l.advance(1)
		}
	}
	if depth > 0 {
		l.fatalContinue(l.rangeFrom(pos), "unterminated block comment")
		return
	}
	l.maybeEmitComment(pos)
}

func (l *Lexer) maybeEmitComment(pos source.Position) {
	if l.flags.Has(flags.LexerSkipComments) {
		return
	}
	l.emit(token.COMMENT, pos, l.idx, token.NoValue())
}
