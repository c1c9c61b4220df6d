package ast

import "github.com/cstarlang/cstar/internal/source"

// Program is the parser's top-level output: an ordered sequence of
// top-level statements (function declarations, struct/union
// declarations once those are modeled, top-level variable
// declarations).
type Program struct {
	base
	Stmts []Stmt
}

func NewProgram(rng source.Range, stmts []Stmt) *Program {
	return &Program{base: newBase(rng), Stmts: stmts}
}

func (n *Program) Accept(v Visitor) { v.VisitProgram(n) }

// Block is a brace-delimited statement sequence that introduces its own
// lexical scope, e.g. a function or if/while/for body.
type Block struct {
	base
	Stmts []Stmt
}

func NewBlock(rng source.Range, stmts []Stmt) *Block {
	return &Block{base: newBase(rng), Stmts: stmts}
}

func (n *Block) Accept(v Visitor) { v.VisitBlock(n) }
func (n *Block) stmtNode()        {}

// StatementList is a flat statement sequence with no scope of its own.
// The parser does not build one: a for-loop's init clause is a single Stmt
// and its update clause a single Expr.
type StatementList struct {
	base
	Stmts []Stmt
}

func NewStatementList(rng source.Range, stmts []Stmt) *StatementList {
	return &StatementList{base: newBase(rng), Stmts: stmts}
}

func (n *StatementList) Accept(v Visitor) { v.VisitStatementList(n) }

// ExpressionList is a comma-separated expression sequence — call
// arguments today, tuple/array literals if those are ever added.
type ExpressionList struct {
	base
	Items []Expr
}

func NewExpressionList(rng source.Range, items []Expr) *ExpressionList {
	return &ExpressionList{base: newBase(rng), Items: items}
}

func (n *ExpressionList) Accept(v Visitor) { v.VisitExpressionList(n) }
