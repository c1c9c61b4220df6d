// Package lexer implements the stateful UTF-8 tokenizer: byte-dispatch
// scanning with explicit range bookkeeping, numeric-literal variants,
// universal character escapes, and string-interpolation sub-states.
package lexer

import (
	"github.com/cstarlang/cstar/internal/diag"
	"github.com/cstarlang/cstar/internal/flags"
	"github.com/cstarlang/cstar/internal/source"
	"github.com/cstarlang/cstar/internal/token"
)

// Lexer turns a Source into a flat token list. It carries two bits of
// state across calls: the byte/line/column cursor, and inStrExpr, which is
// true while tokenizing the raw-text portions of an interpolated string.
type Lexer struct {
	src *source.Source
	idx uint32
	pos source.LineColumn

	inStrExpr bool
	flags     flags.Set

	log *diag.Log

	tokens []token.Token

	// fatal records whether an unknown byte, an unterminated construct, or
	// a malformed UTF-8 escape was seen; Tokenize returns it negated.
	fatal bool
	// stop additionally breaks the scan loop early — set only by the
	// malformed-UTF-8-escape / internal-assertion class of error that
	// spec.md §5 calls out as aborting the pipeline.
	stop bool
}

// New builds a Lexer over src. fl carries the lexerSkipComments bit and any
// future lexer-scoped flags; diagnostics are appended to log.
func New(src *source.Source, fl flags.Set, log *diag.Log) *Lexer {
	return &Lexer{src: src, flags: fl, log: log, pos: source.LineColumn{Line: 0, Column: 0}}
}

// Tokenize consumes the whole Source and returns the token list, terminated
// by exactly one EoF token, plus whether the run was free of fatal lexing
// conditions (unknown bytes, unterminated literals, malformed escapes).
func (l *Lexer) Tokenize() ([]token.Token, bool) {
	for l.hasChars() && !l.stop {
		c := l.peek(0)
		if isSpace(c) {
			l.eatWhitespace()
			continue
		}
		l.dispatch(c)
	}

	end := l.idx
	start := end
	if start > 0 {
		start = end - 1
	}
	l.emit(token.EoF, source.Position{Index: start, Coord: l.pos}, end, token.NoValue())

	return l.tokens, !l.fatal
}

func (l *Lexer) hasChars() bool { return l.idx < l.src.Size() }

func (l *Lexer) peek(n uint32) byte {
	idx := l.idx + n
	if idx < l.src.Size() {
		return l.src.At(idx)
	}
	return 0
}

func (l *Lexer) mark() source.Position {
	return source.Position{Index: l.idx, Coord: l.pos}
}

// advance moves the cursor forward by n bytes (clamped to the source's
// size), scanning for newlines to keep line/column in sync. It returns the
// index the cursor started at.
func (l *Lexer) advance(n uint32) uint32 {
	old := l.idx
	limit := l.src.Size()
	end := l.idx + n
	if end > limit {
		end = limit
	}
	for i := l.idx; i < end; i++ {
		if l.src.At(i) == '\n' {
			l.pos.Line++
			l.pos.Column = 0
		} else {
			l.pos.Column++
		}
	}
	l.idx = end
	return old
}

func (l *Lexer) eatWhileFunc(pred func(byte) bool) {
	for l.hasChars() && pred(l.peek(0)) {
		l.advance(1)
	}
}

func (l *Lexer) eatWhitespace() {
	l.eatWhileFunc(isSpace)
}

func (l *Lexer) emit(kind token.Kind, pos source.Position, end uint32, value token.Value) {
	rng := source.NewRangeAt(l.src, pos, end)
	l.tokens = append(l.tokens, token.NewWithValue(kind, rng, value))
}

func (l *Lexer) rangeFrom(pos source.Position) source.Range {
	return source.NewRangeAt(l.src, pos, l.idx)
}

// rangeAt builds a range using the cursor's *current* line/column as the
// position even when start predates it by a few bytes — an approximation
// carried over from how escape-sequence diagnostics have always been
// rendered here, acceptable because escapes never cross a line.
func (l *Lexer) rangeAt(start, end uint32) source.Range {
	return source.Range{Src: l.src, Start: start, End: end, Position: l.pos}
}

func (l *Lexer) errorf(rng source.Range, format string, args ...any) {
	l.log.Errorf(rng, format, args...)
}

func (l *Lexer) warnf(rng source.Range, format string, args ...any) {
	l.log.Warnf(rng, format, args...)
}

// fatalContinue records a fatal-enough-to-stop condition (unknown byte,
// unterminated literal) but lets scanning continue, per spec.md §7: the
// lexer "still attempts to continue producing tokens where possible".
func (l *Lexer) fatalContinue(rng source.Range, format string, args ...any) {
	l.errorf(rng, format, args...)
	l.fatal = true
}

// fatalAbort records a malformed-UTF-8-escape condition and stops the scan
// loop, per spec.md §5's "fatal conditions... call an abort path... and
// terminate". The abort is local to Tokenize, not a process exit: the CLI
// driver is the one that turns a failed Tokenize into a non-zero exit.
func (l *Lexer) fatalAbort(rng source.Range, format string, args ...any) {
	l.errorf(rng, format, args...)
	l.fatal = true
	l.stop = true
}
