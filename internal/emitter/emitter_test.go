package emitter

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

func emitString(program *ast.Program) string {
	var buf bytes.Buffer
	Emit(&buf, program)
	return buf.String()
}

func TestEmitHeaderAndVoidMain(t *testing.T) {
	out := emitString(mustParse(t, "func main() -> 42;"))
	if !strings.HasPrefix(out, "// Generated code\n") {
		t.Fatalf("expected generated-code header, got:\n%s", out)
	}
	if !strings.Contains(out, "void main()") {
		t.Fatalf("expected void main() signature, got:\n%s", out)
	}
	if !strings.Contains(out, "42;") {
		t.Fatalf("expected the arrow body's expression statement, got:\n%s", out)
	}
}

func TestEmitConstForImmutableDeclaration(t *testing.T) {
	out := emitString(mustParse(t, "imm x: i32 = 1;"))
	if !strings.Contains(out, "const i32 x = 1;") {
		t.Fatalf("expected const-qualified declaration, got:\n%s", out)
	}
}

func TestEmitBooleansAsOneAndZero(t *testing.T) {
	out := emitString(mustParse(t, "mut b: bool = true;"))
	if !strings.Contains(out, "= 1;") {
		t.Fatalf("expected boolean true to render as 1, got:\n%s", out)
	}
}

func TestEmitIfWithExpressionBodyIndentsOneLevelDeeper(t *testing.T) {
	out := emitString(mustParse(t, "func f() { if (1) 2; }"))
	lines := strings.Split(out, "\n")
	foundIf, foundIndentedBody := false, false
	for i, line := range lines {
		if strings.Contains(line, "if (") {
			foundIf = true
			if i+1 < len(lines) && strings.HasPrefix(lines[i+1], "    2;") {
				foundIndentedBody = true
			}
		}
	}
	if !foundIf || !foundIndentedBody {
		t.Fatalf("expected a bare-expression if-body indented one level deeper than its header, got:\n%s", out)
	}
}

func TestEmitForLoopHeaderStaysOnOneLine(t *testing.T) {
	out := emitString(mustParse(t, "func f() { for (mut i: i32 = 0; i < 3; i += 1) i; }"))
	if !strings.Contains(out, "for (i32 i = 0; i < 3; i = i + 1)") {
		t.Fatalf("expected a single-line for-header with desugared update, got:\n%s", out)
	}
}

func TestEmitIsIdempotentAcrossRuns(t *testing.T) {
	program := mustParse(t, "func f(a: i32, b: i32 = 1) -> a + b;")
	first := emitString(program)
	second := emitString(program)
	if first != second {
		t.Fatalf("expected repeated emissions of the same tree to be byte-identical")
	}
}
