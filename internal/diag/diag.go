// Package diag implements the diagnostics log: an append-only buffer of
// {severity, range, message} records, rendered with a caret/tilde
// underline into the offending source line.
package diag

import (
	"bufio"
	"fmt"
	"io"

	"github.com/cstarlang/cstar/internal/source"
)

type Kind int

const (
	Error Kind = iota
	Warning
)

func (k Kind) String() string {
	if k == Warning {
		return "warning"
	}
	return "error"
}

// Record is one logged diagnostic.
type Record struct {
	Kind  Kind
	Range source.Range
	Msg   string
}

func (r *Record) Message() string { return r.Msg }

// Colorizer lets a caller tint rendered diagnostics. The default NoColor
// colorizer is a seam for the out-of-scope ANSI helper, not a feature in
// its own right.
type Colorizer interface {
	Kind(k Kind, s string) string
	Underline(s string) string
}

type noColor struct{}

func (noColor) Kind(_ Kind, s string) string { return s }
func (noColor) Underline(s string) string    { return s }

// NoColor is the default Colorizer: identity formatting.
var NoColor Colorizer = noColor{}

// Log is the append-only diagnostics buffer.
type Log struct {
	records []*Record
	Color   Colorizer
}

func NewLog() *Log {
	return &Log{Color: NoColor}
}

func (l *Log) Errorf(rng source.Range, format string, args ...any) *Record {
	r := &Record{Kind: Error, Range: rng, Msg: fmt.Sprintf(format, args...)}
	l.records = append(l.records, r)
	return r
}

func (l *Log) Warnf(rng source.Range, format string, args ...any) *Record {
	r := &Record{Kind: Warning, Range: rng, Msg: fmt.Sprintf(format, args...)}
	l.records = append(l.records, r)
	return r
}

func (l *Log) Records() []*Record { return l.records }

func (l *Log) HasErrors() bool {
	for _, r := range l.records {
		if r.Kind == Error {
			return true
		}
	}
	return false
}

// Render writes every record in discovery order using the path:line:col
// diagnostic format, each followed by the enclosing source line and a
// caret/tilde underline sized by the record's range.
func (l *Log) Render(w io.Writer) {
	bw := bufio.NewWriter(w)
	defer bw.Flush()
	for _, r := range l.records {
		renderRecord(bw, l.Color, r)
	}
}

func renderRecord(w *bufio.Writer, color Colorizer, r *Record) {
	rng := r.Range
	src := rng.Source()
	line, col := rng.Position.Line+1, rng.Position.Column+1

	fmt.Fprintf(w, "%s:%d:%d: %s: %s\n", src.Name(), line, col, color.Kind(r.Kind, r.Kind.String()), r.Msg)

	enclosing := rng.EnclosingLine()
	lineText := enclosing.String()
	fmt.Fprintf(w, "%s\n", lineText)

	pad := make([]byte, rng.Start-enclosing.Start)
	for i := range pad {
		pad[i] = ' '
	}

	// Clip the underline at the first embedded newline: a range that spans
	// multiple lines (an unterminated block comment reaching EoF, say) still
	// only has one line of source text printed above it.
	contents := src.Contents()
	width := rng.Size()
	for i := uint32(0); i < width; i++ {
		if contents[rng.Start+i] == '\n' {
			width = i
			break
		}
	}
	if width == 0 {
		width = 1
	}
	underline := make([]byte, width)
	underline[0] = '^'
	for i := 1; i < len(underline); i++ {
		underline[i] = '~'
	}
	fmt.Fprintf(w, "%s%s\n", pad, color.Underline(string(underline)))
}
