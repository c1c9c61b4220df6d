package lexer

import (
	"github.com/cstarlang/cstar/internal/intern"
	"github.com/cstarlang/cstar/internal/token"
)

// tokIdentifierOrFString handles the one dispatch ambiguity the grammar
// has at the byte level: 'f' followed by '"' opens an interpolated string
// instead of naming an identifier.
func (l *Lexer) tokIdentifierOrFString(c byte) {
	if c == 'f' && l.peek(1) == '"' {
		pos := l.mark()
		l.inStrExpr = true
		l.advance(2)
		l.emit(token.LSTREXPR, pos, l.idx, token.NoValue())
		l.tokString()
		return
	}
	l.tokIdentifier()
}

func (l *Lexer) tokIdentifier() {
	pos := l.mark()
	for isIdentPart(l.peek(0)) {
		l.advance(1)
	}

	lexeme := string(l.src.Contents()[pos.Index:l.idx])
	if kind, ok := token.Lookup(lexeme); ok {
		switch kind {
		case token.TRUE, token.FALSE:
			l.emit(kind, pos, l.idx, token.BoolValue(kind == token.TRUE))
		default:
			l.emit(kind, pos, l.idx, token.NoValue())
		}
		return
	}

	l.emit(token.IDENTIFIER, pos, l.idx, token.StringValue(intern.Strings().Intern(lexeme)))
}
