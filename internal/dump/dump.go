// Package dump implements the AST dumper: a visitor that renders a tree
// to an indented, line-oriented text form for inspection and snapshot
// testing.
package dump

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/cstarlang/cstar/internal/ast"
	"github.com/cstarlang/cstar/internal/flags"
)

// Dumper walks an AST with ast.BaseVisitor's no-op defaults overridden for
// every node variant, tracking an indentation level the way
// original_source/src/compiler/dump.cpp's `level` field does. Statement
// and container-level Visit methods print their own leading `- Kind`
// indentation; expression-level ones print only their inline text, since
// they're always invoked from inside a parent's `- field: ` prefix.
type Dumper struct {
	ast.BaseVisitor
	w     *bufio.Writer
	level int
}

// Dump writes program's tree to w and flushes.
func Dump(w io.Writer, program *ast.Program) {
	d := &Dumper{w: bufio.NewWriter(w)}
	d.VisitProgram(program)
	d.w.WriteByte('\n')
	d.w.Flush()
}

func (d *Dumper) printf(format string, args ...any) {
	fmt.Fprintf(d.w, format, args...)
}

func (d *Dumper) pad() string { return strings.Repeat(" ", d.level) }

func (d *Dumper) dump(n ast.Node) {
	if n == nil {
		return
	}
	n.Accept(d)
}

// --- containers -----------------------------------------------------

func (d *Dumper) VisitProgram(n *ast.Program) {
	for _, stmt := range n.Stmts {
		d.dump(stmt)
		d.w.WriteByte('\n')
	}
}

func (d *Dumper) VisitStatementList(n *ast.StatementList) {
	for _, stmt := range n.Stmts {
		d.w.WriteByte('\n')
		d.dump(stmt)
	}
}

func (d *Dumper) VisitExpressionList(n *ast.ExpressionList) {
	for _, e := range n.Items {
		d.printf("\n%s- ", d.pad())
		d.dump(e)
	}
}

func (d *Dumper) VisitBlock(n *ast.Block) {
	d.printf("%s- Block", d.pad())
	d.level += 2
	for _, stmt := range n.Stmts {
		d.w.WriteByte('\n')
		d.dump(stmt)
	}
	d.level -= 2
}

// --- declarations & statements ---------------------------------------

func (d *Dumper) VisitFunctionDecl(n *ast.FunctionDecl) {
	d.printf("%s- FunctionDecl:\n", d.pad())
	d.level += 2

	d.printf("%s- returns: %s", d.pad(), n.ReturnType.Name())
	d.printf("\n%s- name: %s", d.pad(), n.Name)

	if len(n.Params) > 0 {
		d.printf("\n%s- params:", d.pad())
		d.level += 2
		for _, param := range n.Params {
			d.w.WriteByte('\n')
			d.dump(param)
		}
		d.level -= 2
	}

	d.printf("\n%s- body: \n", d.pad())
	d.level += 2
	d.dump(n.Body)
	d.level -= 4
}

func (d *Dumper) VisitDeclarationStmt(n *ast.DeclarationStmt) {
	d.printf("%s- DeclarationStmt:", d.pad())
	d.level += 2

	if n.Flags.Any(flags.IsImmutable) {
		d.printf("\n%s- immutable\n", d.pad())
	}

	if n.Type != nil {
		d.printf("\n%s- type: %s", d.pad(), n.Type.Name())
	}

	d.printf("\n%s- name: %s", d.pad(), n.Name)

	if n.Value != nil {
		d.printf("\n%s- value: ", d.pad())
		d.dump(n.Value)
	}
	d.level -= 2
}

func (d *Dumper) VisitParameterStmt(n *ast.ParameterStmt) {
	d.printf("%s- ParameterStmt:", d.pad())
	d.level += 2

	if n.Type != nil {
		d.printf("\n%s- type: %s", d.pad(), n.Type.Name())
	}

	variadic := ""
	if n.Flags.Any(flags.IsVariadic) {
		variadic = "..."
	}
	d.printf("\n%s- name: %s%s", d.pad(), variadic, n.Name)

	if n.Default != nil {
		d.printf("\n%s- value: ", d.pad())
		d.dump(n.Default)
	}
	d.level -= 2
}

func (d *Dumper) VisitExpressionStmt(n *ast.ExpressionStmt) {
	d.printf("%s- ExpressionStmt: ", d.pad())
	d.dump(n.Expr)
}

func (d *Dumper) VisitIfStmt(n *ast.IfStmt) {
	d.printf("%s- IfStmt\n", d.pad())
	d.level += 2

	d.printf("%s- cond: ", d.pad())
	d.dump(n.Condition)

	d.printf("\n%s- then: \n", d.pad())
	d.level += 2
	d.dump(n.Then)
	d.level -= 2

	if n.Else != nil {
		d.printf("\n%s- else: \n", d.pad())
		d.level += 2
		d.dump(n.Else)
		d.level -= 2
	}
	d.level -= 2
}

func (d *Dumper) VisitWhileStmt(n *ast.WhileStmt) {
	d.printf("%s- WhileStmt:\n", d.pad())
	d.level += 2

	d.printf("%s- cond: ", d.pad())
	d.dump(n.Condition)

	if n.Body != nil {
		d.printf("\n%s- body:\n", d.pad())
		d.level += 2
		d.dump(n.Body)
		d.level -= 2
	}
	d.level -= 2
}

func (d *Dumper) VisitForStmt(n *ast.ForStmt) {
	d.printf("%s- ForStmt:\n", d.pad())
	d.level += 2

	if n.Init != nil {
		d.printf("%s init:\n", d.pad())
		d.level += 2
		d.dump(n.Init)
		d.level -= 2
	}

	if n.Condition != nil {
		d.printf("\n%s- cond: ", d.pad())
		d.dump(n.Condition)
	}

	if n.Update != nil {
		d.printf("\n%s- update: ", d.pad())
		d.dump(n.Update)
	}

	if n.Body != nil {
		d.printf("\n%s- body:\n", d.pad())
		d.level += 2
		d.dump(n.Body)
		d.level -= 2
	}
	d.level -= 2
}

// --- expressions ------------------------------------------------------

func (d *Dumper) VisitBoolExpr(n *ast.BoolExpr) {
	if n.Value {
		d.printf("true")
	} else {
		d.printf("false")
	}
}

func (d *Dumper) VisitCharExpr(n *ast.CharExpr) {
	d.w.WriteByte('\'')
	writeCharEscaped(d.w, n.Value)
	d.w.WriteByte('\'')
}

func (d *Dumper) VisitIntegerExpr(n *ast.IntegerExpr) { d.printf("%d", n.Value) }

func (d *Dumper) VisitFloatExpr(n *ast.FloatExpr) {
	d.printf("%s", strconv.FormatFloat(n.Value, 'g', -1, 64))
}

func (d *Dumper) VisitStringExpr(n *ast.StringExpr) { d.printf("%q", n.Value) }

func (d *Dumper) VisitVariableExpr(n *ast.VariableExpr) { d.printf("%s", n.Name) }

func (d *Dumper) VisitGroupingExpr(n *ast.GroupingExpr) {
	d.w.WriteByte('(')
	d.dump(n.Inner)
	d.w.WriteByte(')')
}

func (d *Dumper) VisitUnaryExpr(n *ast.UnaryExpr) {
	d.w.WriteByte('(')
	d.printf("%s", n.Op.Lexeme())
	d.dump(n.Operand)
	d.w.WriteByte(')')
}

func (d *Dumper) VisitPostfixExpr(n *ast.PostfixExpr) {
	d.w.WriteByte('(')
	d.dump(n.Operand)
	d.printf("%s", n.Op.Lexeme())
	d.w.WriteByte(')')
}

func (d *Dumper) VisitPrefixExpr(n *ast.PrefixExpr) {
	d.w.WriteByte('(')
	d.printf("%s", n.Op.Lexeme())
	d.dump(n.Operand)
	d.w.WriteByte(')')
}

func (d *Dumper) VisitBinaryExpr(n *ast.BinaryExpr) {
	d.w.WriteByte('(')
	d.dump(n.Left)
	d.printf(" %s ", n.Op.Lexeme())
	d.dump(n.Right)
	d.w.WriteByte(')')
}

func (d *Dumper) VisitAssignmentExpr(n *ast.AssignmentExpr) {
	d.printf("AssignmentExpr:\n")
	d.level += 2
	d.printf("%s- lhs: ", d.pad())
	d.dump(n.Target)
	d.printf("\n%s- rhs: ", d.pad())
	d.dump(n.Value)
	d.level -= 2
}

func (d *Dumper) VisitTernaryExpr(n *ast.TernaryExpr) {
	d.w.WriteByte('(')
	d.dump(n.Condition)
	d.printf("? ")
	d.dump(n.Then)
	d.printf(" : ")
	d.dump(n.Else)
	d.w.WriteByte(')')
}

func (d *Dumper) VisitNullishCoalescingExpr(n *ast.NullishCoalescingExpr) {
	d.w.WriteByte('(')
	d.dump(n.Left)
	d.printf("?? ")
	d.dump(n.Right)
	d.w.WriteByte(')')
}

func (d *Dumper) VisitStringExpressionExpr(n *ast.StringExpressionExpr) {
	d.printf(`f"`)
	for _, part := range n.Parts {
		d.printf("${")
		d.dump(part)
		d.w.WriteByte('}')
	}
	d.w.WriteByte('"')
}

func (d *Dumper) VisitCallExpr(n *ast.CallExpr) {
	d.printf("CallExpr:\n")
	d.level += 2
	d.printf("%s- callee: ", d.pad())
	d.dump(n.Callee)
	d.printf("\n%s- args: ", d.pad())
	if n.Arguments != nil {
		d.level += 2
		d.dump(n.Arguments)
		d.level -= 2
	}
	d.level -= 2
}

// writeCharEscaped writes r's textual form the way a CHAR literal should
// read back: printable ASCII verbatim, everything else (including
// non-ASCII scalars) as its raw UTF-8 encoding, hand-rolled to match the
// lexer's own encode/decode rather than delegating to unicode/utf8.
func writeCharEscaped(w *bufio.Writer, r uint32) {
	if r < 0x80 {
		w.WriteByte(byte(r))
		return
	}
	switch {
	case r < 0x800:
		w.WriteByte(byte(0xC0 | (r >> 6)))
		w.WriteByte(byte(0x80 | (r & 0x3F)))
	case r < 0x10000:
		w.WriteByte(byte(0xE0 | (r >> 12)))
		w.WriteByte(byte(0x80 | ((r >> 6) & 0x3F)))
		w.WriteByte(byte(0x80 | (r & 0x3F)))
	default:
		w.WriteByte(byte(0xF0 | (r >> 18)))
		w.WriteByte(byte(0x80 | ((r >> 12) & 0x3F)))
		w.WriteByte(byte(0x80 | ((r >> 6) & 0x3F)))
		w.WriteByte(byte(0x80 | (r & 0x3F)))
	}
}
