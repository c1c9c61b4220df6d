package dump

import (
	"bytes"
	"strings"
	"testing"

	"github.com/cstarlang/cstar/internal/ast"
	"github.com/cstarlang/cstar/internal/diag"
	"github.com/cstarlang/cstar/internal/flags"
	"github.com/cstarlang/cstar/internal/lexer"
	"github.com/cstarlang/cstar/internal/parser"
	"github.com/cstarlang/cstar/internal/source"
	"github.com/cstarlang/cstar/internal/symbol"
)

func mustParse(t *testing.T, src string) *ast.Program {
	t.Helper()
	log := diag.NewLog()
	toks, _ := lexer.New(source.New("test", []byte(src)), flags.Of(flags.LexerSkipComments), log).Tokenize()
	program, ok := parser.New(toks, log, symbol.New(nil)).Parse()
	if !ok {
		t.Fatalf("expected clean parse, got errors: %v", log.Records())
	}
	return program
}

func dumpString(program *ast.Program) string {
	var buf bytes.Buffer
	Dump(&buf, program)
	return buf.String()
}

func TestDumpShowsNestedParentheses(t *testing.T) {
	program := mustParse(t, "mut x: i32 = 1 + 2 * 3;")
	out := dumpString(program)
	if !strings.Contains(out, "(1 + (2 * 3))") {
		t.Fatalf("expected nested-parens rendering, got:\n%s", out)
	}
}

func TestDumpFunctionDeclShowsNameAndReturnType(t *testing.T) {
	program := mustParse(t, "func main() -> 42;")
	out := dumpString(program)
	if !strings.Contains(out, "- name: main") {
		t.Fatalf("expected function name in dump, got:\n%s", out)
	}
	if !strings.Contains(out, "- returns: void") {
		t.Fatalf("expected void return type in dump, got:\n%s", out)
	}
}

func TestDumpMarksImmutableDeclarations(t *testing.T) {
	program := mustParse(t, `imm s = "hi";`)
	out := dumpString(program)
	if !strings.Contains(out, "- immutable") {
		t.Fatalf("expected immutable marker in dump, got:\n%s", out)
	}
}

func TestDumpMarksVariadicParameters(t *testing.T) {
	program := mustParse(t, "func f(a: i32, ...c: i32) -> 0;")
	out := dumpString(program)
	if !strings.Contains(out, "- name: ...c") {
		t.Fatalf("expected variadic parameter to render with '...' prefix, got:\n%s", out)
	}
}

func TestDumpIsDeterministicAcrossRuns(t *testing.T) {
	program := mustParse(t, "func f(a: i32, b: i32 = 1) -> a + b;")
	first := dumpString(program)
	second := dumpString(program)
	if first != second {
		t.Fatalf("expected repeated dumps of the same tree to be identical")
	}
}
