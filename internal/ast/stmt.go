package ast

import (
	"github.com/cstarlang/cstar/internal/flags"
	"github.com/cstarlang/cstar/internal/source"
	"github.com/cstarlang/cstar/internal/types"
)

// DeclarationStmt is a variable declaration: `imm name: type = value;` or
// `mut name = value;`. Flags carries isImmutable (imm vs mut) and, when the
// declaration has a leading '@', isComptime.
type DeclarationStmt struct {
	base
	Name  string
	Type  types.Type
	Value Expr
	Flags flags.Set
}

func NewDeclarationStmt(rng source.Range, name string, typ types.Type, value Expr, fl flags.Set) *DeclarationStmt {
	return &DeclarationStmt{base: newBase(rng), Name: name, Type: typ, Value: value, Flags: fl}
}

func (n *DeclarationStmt) Accept(v Visitor) { v.VisitDeclarationStmt(n) }
func (n *DeclarationStmt) stmtNode()        {}

// ParameterStmt extends DeclarationStmt with a default-value expression,
// used only in a function's parameter list. Flags' isVariadic bit marks
// the trailing `...name` parameter.
type ParameterStmt struct {
	DeclarationStmt
	Default Expr
}

func NewParameterStmt(rng source.Range, name string, typ types.Type, def Expr, fl flags.Set) *ParameterStmt {
	return &ParameterStmt{
		DeclarationStmt: DeclarationStmt{base: newBase(rng), Name: name, Type: typ, Flags: fl},
		Default:         def,
	}
}

func (n *ParameterStmt) Accept(v Visitor) { v.VisitParameterStmt(n) }

// ExpressionStmt wraps a bare expression used for its side effects,
// terminated by a semicolon.
type ExpressionStmt struct {
	base
	Expr Expr
}

func NewExpressionStmt(rng source.Range, expr Expr) *ExpressionStmt {
	return &ExpressionStmt{base: newBase(rng), Expr: expr}
}

func (n *ExpressionStmt) Accept(v Visitor) { v.VisitExpressionStmt(n) }
func (n *ExpressionStmt) stmtNode()        {}

// IfStmt is `if (condition) then else otherwise`; Else is nil when there
// is no else-clause.
type IfStmt struct {
	base
	Condition Expr
	Then      Stmt
	Else      Stmt
}

func NewIfStmt(rng source.Range, cond Expr, then, els Stmt) *IfStmt {
	return &IfStmt{base: newBase(rng), Condition: cond, Then: then, Else: els}
}

func (n *IfStmt) Accept(v Visitor) { v.VisitIfStmt(n) }
func (n *IfStmt) stmtNode()        {}

// WhileStmt is `while (condition) body`.
type WhileStmt struct {
	base
	Condition Expr
	Body      Stmt
}

func NewWhileStmt(rng source.Range, cond Expr, body Stmt) *WhileStmt {
	return &WhileStmt{base: newBase(rng), Condition: cond, Body: body}
}

func (n *WhileStmt) Accept(v Visitor) { v.VisitWhileStmt(n) }
func (n *WhileStmt) stmtNode()        {}

// ForStmt is `for (init; condition; update) body`; any of the three
// header clauses may be nil, matching a C-style for-loop's optional
// clauses.
type ForStmt struct {
	base
	Init      Stmt
	Condition Expr
	Update    Expr
	Body      Stmt
}

func NewForStmt(rng source.Range, init Stmt, cond Expr, update Expr, body Stmt) *ForStmt {
	return &ForStmt{base: newBase(rng), Init: init, Condition: cond, Update: update, Body: body}
}

func (n *ForStmt) Accept(v Visitor) { v.VisitForStmt(n) }
func (n *ForStmt) stmtNode()        {}
