// Package emitter implements the C-style code emitter: a visitor that
// renders an AST back out as readable, if not directly compilable, C-like
// source text.
package emitter

import (
	"bufio"
	"io"
	"strconv"

	"github.com/cstarlang/cstar/internal/ast"
	"github.com/cstarlang/cstar/internal/flags"
)

// Emitter writes C-like text for an AST. Nesting depth is tracked by
// level, incremented/decremented by 2 per block the same way
// original_source/src/compiler/codegen.cpp's `_level` counter does.
type Emitter struct {
	ast.BaseVisitor
	w     *bufio.Writer
	level int
}

// Emit writes program's C-like rendering to w and flushes. Running it
// twice against the same tree always produces byte-identical output: the
// only state Emit reads is the AST itself.
func Emit(w io.Writer, program *ast.Program) {
	e := &Emitter{w: bufio.NewWriter(w)}
	e.append("// Generated code")
	e.nl()
	e.VisitProgram(program)
	e.nl()
	e.w.Flush()
}

func (e *Emitter) append(s string) { e.w.WriteString(s) }

func (e *Emitter) nl() { e.w.WriteByte('\n') }

// tab writes level spaces, the 2-space-per-nesting-level indent.
func (e *Emitter) tab() {
	for i := 0; i < e.level; i++ {
		e.w.WriteByte(' ')
	}
}

func (e *Emitter) dump(n ast.Node) {
	if n == nil {
		return
	}
	n.Accept(e)
}

func (e *Emitter) VisitProgram(n *ast.Program) {
	for _, stmt := range n.Stmts {
		e.dump(stmt)
	}
}

func (e *Emitter) VisitFunctionDecl(n *ast.FunctionDecl) {
	e.tab()
	e.append(n.ReturnType.Name())
	e.append(" ")
	e.append(n.Name)
	e.append("()")
	e.nl()
	e.dump(n.Body)
	e.nl()
}

func (e *Emitter) VisitBlock(n *ast.Block) {
	e.tab()
	e.append("{")
	e.level += 2
	for _, stmt := range n.Stmts {
		e.nl()
		e.dump(stmt)
	}
	e.level -= 2
	e.nl()
	e.tab()
	e.append("}")
}

func (e *Emitter) VisitStatementList(n *ast.StatementList) {
	for _, stmt := range n.Stmts {
		e.dump(stmt)
	}
}

func (e *Emitter) VisitExpressionList(n *ast.ExpressionList) {
	for i, item := range n.Items {
		if i > 0 {
			e.append(", ")
		}
		e.dump(item)
	}
}

func (e *Emitter) VisitDeclarationStmt(n *ast.DeclarationStmt) {
	e.tab()
	if n.Flags.Any(flags.IsImmutable) {
		e.append("const ")
	}
	e.append(n.Type.Name())
	e.append(" ")
	e.append(n.Name)
	if n.Value != nil {
		e.append(" = ")
		e.dump(n.Value)
	}
	e.append(";")
}

func (e *Emitter) VisitParameterStmt(n *ast.ParameterStmt) {
	e.append(n.Type.Name())
	e.append(" ")
	e.append(n.Name)
	if n.Default != nil {
		e.append(" = ")
		e.dump(n.Default)
	}
}

func (e *Emitter) VisitExpressionStmt(n *ast.ExpressionStmt) {
	e.tab()
	e.dump(n.Expr)
	e.append(";")
}

// bodyOrEmpty emits stmt as an if/while/for body: a bare ExpressionStmt is
// indented one level deeper since it supplies no braces of its own, a
// Block relies on its own Tab/indent, and a missing body renders as a
// lone ';'.
func (e *Emitter) bodyOrEmpty(stmt ast.Stmt) {
	switch body := stmt.(type) {
	case nil:
		e.append(";")
	case *ast.ExpressionStmt:
		e.level += 2
		e.dump(body)
		e.level -= 2
	default:
		e.dump(body)
	}
}

func (e *Emitter) VisitIfStmt(n *ast.IfStmt) {
	e.tab()
	e.append("if (")
	e.dump(n.Condition)
	e.append(")\n")

	if stmt, ok := n.Then.(*ast.ExpressionStmt); ok {
		e.level += 2
		e.dump(stmt)
		e.level -= 2
	} else {
		e.dump(n.Then)
	}

	if n.Else == nil {
		return
	}
	if stmt, ok := n.Else.(*ast.ExpressionStmt); ok {
		e.nl()
		e.tab()
		e.append("else\n")
		e.level += 2
		e.dump(stmt)
		e.level -= 2
	} else {
		e.nl()
		e.tab()
		e.append("else\n")
		e.dump(n.Else)
	}
}

func (e *Emitter) VisitWhileStmt(n *ast.WhileStmt) {
	e.tab()
	e.append("while (")
	e.dump(n.Condition)
	e.append(")\n")
	e.bodyOrEmpty(n.Body)
}

// VisitForStmt emits the header with level pinned to 0 while the init
// clause renders, so a Tab() inside init's own DeclarationStmt/
// ExpressionStmt visit doesn't indent mid-line — the same convention
// codegen.cpp's ForStmt visitor uses.
func (e *Emitter) VisitForStmt(n *ast.ForStmt) {
	e.tab()
	e.append("for (")

	saved := e.level
	e.level = 0
	if n.Init != nil {
		e.dump(n.Init)
		e.append(" ")
	} else {
		e.append("; ")
	}
	e.level = saved

	if n.Condition != nil {
		e.dump(n.Condition)
	}
	e.append("; ")

	if n.Update != nil {
		e.dump(n.Update)
	}
	e.append(")\n")

	e.bodyOrEmpty(n.Body)
}

// --- expressions ------------------------------------------------------

func (e *Emitter) VisitUnaryExpr(n *ast.UnaryExpr) {
	e.append(n.Op.Lexeme())
	e.dump(n.Operand)
}

func (e *Emitter) VisitPrefixExpr(n *ast.PrefixExpr) {
	e.append(n.Op.Lexeme())
	e.dump(n.Operand)
}

func (e *Emitter) VisitPostfixExpr(n *ast.PostfixExpr) {
	e.dump(n.Operand)
	e.append(n.Op.Lexeme())
}

func (e *Emitter) VisitBinaryExpr(n *ast.BinaryExpr) {
	e.dump(n.Left)
	e.append(" ")
	e.append(n.Op.Lexeme())
	e.append(" ")
	e.dump(n.Right)
}

func (e *Emitter) VisitGroupingExpr(n *ast.GroupingExpr) {
	e.append("(")
	e.dump(n.Inner)
	e.append(")")
}

func (e *Emitter) VisitVariableExpr(n *ast.VariableExpr) { e.append(n.Name) }

func (e *Emitter) VisitBoolExpr(n *ast.BoolExpr) {
	if n.Value {
		e.append("1")
	} else {
		e.append("0")
	}
}

func (e *Emitter) VisitCharExpr(n *ast.CharExpr) {
	e.w.Write(encodeUTF8(nil, n.Value))
}

func (e *Emitter) VisitIntegerExpr(n *ast.IntegerExpr) {
	e.append(strconv.FormatInt(n.Value, 10))
}

func (e *Emitter) VisitFloatExpr(n *ast.FloatExpr) {
	e.append(strconv.FormatFloat(n.Value, 'g', -1, 64))
}

func (e *Emitter) VisitStringExpr(n *ast.StringExpr) { e.append(n.Value) }

func (e *Emitter) VisitStringExpressionExpr(n *ast.StringExpressionExpr) {
	for _, part := range n.Parts {
		e.dump(part)
	}
}

func (e *Emitter) VisitAssignmentExpr(n *ast.AssignmentExpr) {
	e.dump(n.Target)
	e.append(" = ")
	e.dump(n.Value)
}

func (e *Emitter) VisitTernaryExpr(n *ast.TernaryExpr) {
	e.append("(")
	e.dump(n.Condition)
	e.append(" ? ")
	e.dump(n.Then)
	e.append(" : ")
	e.dump(n.Else)
	e.append(")")
}

func (e *Emitter) VisitNullishCoalescingExpr(n *ast.NullishCoalescingExpr) {
	e.append("(")
	e.dump(n.Left)
	e.append(" ?? ")
	e.dump(n.Right)
	e.append(")")
}

func (e *Emitter) VisitCallExpr(n *ast.CallExpr) {
	e.dump(n.Callee)
	e.append("(")
	if n.Arguments != nil {
		e.dump(n.Arguments)
	}
	e.append(")")
}

// encodeUTF8 appends the UTF-8 encoding of r to dst, hand-rolled to match
// the lexer's own decode/encode rather than delegating to unicode/utf8.
func encodeUTF8(dst []byte, r uint32) []byte {
	switch {
	case r < 0x80:
		return append(dst, byte(r))
	case r < 0x800:
		return append(dst, byte(0xC0|(r>>6)), byte(0x80|(r&0x3F)))
	case r < 0x10000:
		return append(dst,
			byte(0xE0|(r>>12)),
			byte(0x80|((r>>6)&0x3F)),
			byte(0x80|(r&0x3F)))
	default:
		return append(dst,
			byte(0xF0|(r>>18)),
			byte(0x80|((r>>12)&0x3F)),
			byte(0x80|((r>>6)&0x3F)),
			byte(0x80|(r&0x3F)))
	}
}
