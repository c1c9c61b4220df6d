package parser

import (
	"strings"
	"testing"

	"github.com/cstarlang/cstar/internal/ast"
	"github.com/cstarlang/cstar/internal/diag"
	"github.com/cstarlang/cstar/internal/flags"
	"github.com/cstarlang/cstar/internal/lexer"
	"github.com/cstarlang/cstar/internal/source"
	"github.com/cstarlang/cstar/internal/symbol"
)

func parse(t *testing.T, src string) (*ast.Program, bool, *diag.Log) {
	t.Helper()
	log := diag.NewLog()
	toks, _ := lexer.New(source.New("test", []byte(src)), flags.Of(flags.LexerSkipComments), log).Tokenize()
	program, ok := New(toks, log, symbol.New(nil)).Parse()
	return program, ok, log
}

func firstMessage(log *diag.Log) string {
	if len(log.Records()) == 0 {
		return ""
	}
	return log.Records()[0].Msg
}

func TestParsesMinimalFunction(t *testing.T) {
	program, ok, log := parse(t, "func main() -> 42;")
	if !ok {
		t.Fatalf("expected clean parse, got errors: %v", log.Records())
	}
	if len(program.Stmts) != 1 {
		t.Fatalf("expected one top-level declaration, got %d", len(program.Stmts))
	}
	fn, isFn := program.Stmts[0].(*ast.FunctionDecl)
	if !isFn {
		t.Fatalf("expected *ast.FunctionDecl, got %T", program.Stmts[0])
	}
	if fn.Name != "main" {
		t.Fatalf("expected function named main, got %q", fn.Name)
	}
	if len(fn.Body.Stmts) != 1 {
		t.Fatalf("expected single-statement arrow body, got %d stmts", len(fn.Body.Stmts))
	}
}

func TestOperatorPrecedenceNestsMultiplicationInsideAddition(t *testing.T) {
	program, ok, log := parse(t, "mut x: i32 = 1 + 2 * 3;")
	if !ok {
		t.Fatalf("expected clean parse, got errors: %v", log.Records())
	}
	decl := program.Stmts[0].(*ast.DeclarationStmt)
	add, isBin := decl.Value.(*ast.BinaryExpr)
	if !isBin {
		t.Fatalf("expected top-level BinaryExpr, got %T", decl.Value)
	}
	if _, isInt := add.Left.(*ast.IntegerExpr); !isInt {
		t.Fatalf("expected left operand to stay a bare literal, got %T", add.Left)
	}
	if _, isMul := add.Right.(*ast.BinaryExpr); !isMul {
		t.Fatalf("expected right operand to be the nested multiplication, got %T", add.Right)
	}
}

func TestExponentBindsTighterThanUnaryMinus(t *testing.T) {
	// -2 ** 2 should parse as -(2 ** 2), matching unary's lower precedence
	// than the power level.
	program, ok, log := parse(t, "mut x: i32 = -2 ** 2;")
	if !ok {
		t.Fatalf("expected clean parse, got errors: %v", log.Records())
	}
	decl := program.Stmts[0].(*ast.DeclarationStmt)
	neg, isUnary := decl.Value.(*ast.UnaryExpr)
	if !isUnary {
		t.Fatalf("expected outer UnaryExpr, got %T", decl.Value)
	}
	if _, isPow := neg.Operand.(*ast.BinaryExpr); !isPow {
		t.Fatalf("expected unary operand to be the exponent expression, got %T", neg.Operand)
	}
}

func TestMissingTypeAndInitializerIsAnError(t *testing.T) {
	_, ok, log := parse(t, "imm s;")
	if ok {
		t.Fatalf("expected a diagnostic for a typeless, valueless declaration")
	}
	if msg := firstMessage(log); !strings.Contains(msg, "an explicit type must be assigned") {
		t.Fatalf("unexpected message: %q", msg)
	}
}

func TestVariadicParameterMustBeLast(t *testing.T) {
	_, ok, log := parse(t, "func f(...rest: i32, x: i32) -> 0;")
	if ok {
		t.Fatalf("expected a diagnostic for a non-trailing variadic parameter")
	}
	found := false
	for _, rec := range log.Records() {
		if strings.Contains(rec.Msg, "variadic parameter '...' is followed by another parameter") {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected variadic-ordering diagnostic, got %v", log.Records())
	}
}

func TestVariadicParameterRejectsDefaultValue(t *testing.T) {
	_, ok, log := parse(t, "func f(...rest: i32 = 1) -> 0;")
	if ok {
		t.Fatalf("expected a diagnostic for a defaulted variadic parameter")
	}
	found := false
	for _, rec := range log.Records() {
		if strings.Contains(rec.Msg, "default parameter arguments cannot be assigned to variadic parameters") {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected variadic-default diagnostic, got %v", log.Records())
	}
}

func TestDuplicateVariableInSameScopeIsAnError(t *testing.T) {
	program, ok, log := parse(t, "func f() { mut x: i32 = 1; mut x: i32 = 2; }")
	if ok {
		t.Fatalf("expected a diagnostic for redefining x in the same scope")
	}
	if msg := firstMessage(log); !strings.Contains(msg, "variable 'x' already defined in current scope") {
		t.Fatalf("unexpected message: %q", msg)
	}
	if len(log.Records()) != 1 {
		t.Fatalf("expected exactly one diagnostic, no cascading '}' error, got %v", log.Records())
	}
	fn, isFn := program.Stmts[0].(*ast.FunctionDecl)
	if !isFn {
		t.Fatalf("expected the enclosing function to still survive the bad declaration, got %T", program.Stmts[0])
	}
	if fn.Name != "f" {
		t.Fatalf("expected function named f, got %q", fn.Name)
	}
}

func TestUndefinedVariableIsDiagnosedButStillParses(t *testing.T) {
	program, ok, log := parse(t, "func f() -> a;")
	if ok {
		t.Fatalf("expected a diagnostic for referencing an undefined name")
	}
	if msg := firstMessage(log); !strings.Contains(msg, "undefined variable 'a'") {
		t.Fatalf("unexpected message: %q", msg)
	}
	fn := program.Stmts[0].(*ast.FunctionDecl)
	if len(fn.Body.Stmts) != 1 {
		t.Fatalf("expected the arrow body to still be produced despite the error")
	}
}

func TestFunctionCanCallItselfRecursively(t *testing.T) {
	_, ok, log := parse(t, "func fact(n: i32) -> fact(n);")
	if !ok {
		t.Fatalf("expected recursive self-call to resolve cleanly, got errors: %v", log.Records())
	}
}

func TestCompoundAssignmentDesugarsToBinaryRHS(t *testing.T) {
	program, ok, log := parse(t, "func f() { mut x: i32 = 1; x += 2; }")
	if !ok {
		t.Fatalf("expected clean parse, got errors: %v", log.Records())
	}
	fn := program.Stmts[0].(*ast.FunctionDecl)
	stmt := fn.Body.Stmts[1].(*ast.ExpressionStmt)
	assign := stmt.Expr.(*ast.AssignmentExpr)
	bin, isBin := assign.Value.(*ast.BinaryExpr)
	if !isBin {
		t.Fatalf("expected desugared compound assignment RHS to be a BinaryExpr, got %T", assign.Value)
	}
	if _, isVar := bin.Left.(*ast.VariableExpr); !isVar {
		t.Fatalf("expected desugared binary's left operand to reuse the target expression, got %T", bin.Left)
	}
}

func TestForLoopScopesInitAcrossConditionUpdateAndBody(t *testing.T) {
	_, ok, log := parse(t, "func f() { for (mut i: i32 = 0; i < 10; i += 1) i; }")
	if !ok {
		t.Fatalf("expected the loop variable to be visible in cond/update/body, got errors: %v", log.Records())
	}
}

func TestOneBadDeclarationDoesNotPoisonItsSiblings(t *testing.T) {
	program, ok, log := parse(t, "imm broken;\nfunc ok() -> 1;")
	if ok {
		t.Fatalf("expected the first declaration to still report its error")
	}
	if len(log.Records()) != 1 {
		t.Fatalf("expected exactly one diagnostic from the broken declaration, got %v", log.Records())
	}
	found := false
	for _, stmt := range program.Stmts {
		if fn, isFn := stmt.(*ast.FunctionDecl); isFn && fn.Name == "ok" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected the well-formed function after the bad declaration to still parse")
	}
}
