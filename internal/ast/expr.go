package ast

import (
	"github.com/cstarlang/cstar/internal/source"
	"github.com/cstarlang/cstar/internal/token"
)

// BoolExpr, CharExpr, IntegerExpr, FloatExpr, StringExpr are the literal
// leaves, one per token.Value variant that can stand alone as an
// expression.

type BoolExpr struct {
	base
	Value bool
}

func NewBoolExpr(rng source.Range, value bool) *BoolExpr {
	return &BoolExpr{base: newBase(rng), Value: value}
}

func (n *BoolExpr) Accept(v Visitor) { v.VisitBoolExpr(n) }
func (n *BoolExpr) exprNode()        {}

type CharExpr struct {
	base
	Value uint32
}

func NewCharExpr(rng source.Range, value uint32) *CharExpr {
	return &CharExpr{base: newBase(rng), Value: value}
}

func (n *CharExpr) Accept(v Visitor) { v.VisitCharExpr(n) }
func (n *CharExpr) exprNode()        {}

type IntegerExpr struct {
	base
	Value int64
}

func NewIntegerExpr(rng source.Range, value int64) *IntegerExpr {
	return &IntegerExpr{base: newBase(rng), Value: value}
}

func (n *IntegerExpr) Accept(v Visitor) { v.VisitIntegerExpr(n) }
func (n *IntegerExpr) exprNode()        {}

type FloatExpr struct {
	base
	Value float64
}

func NewFloatExpr(rng source.Range, value float64) *FloatExpr {
	return &FloatExpr{base: newBase(rng), Value: value}
}

func (n *FloatExpr) Accept(v Visitor) { v.VisitFloatExpr(n) }
func (n *FloatExpr) exprNode()        {}

type StringExpr struct {
	base
	Value string
}

func NewStringExpr(rng source.Range, value string) *StringExpr {
	return &StringExpr{base: newBase(rng), Value: value}
}

func (n *StringExpr) Accept(v Visitor) { v.VisitStringExpr(n) }
func (n *StringExpr) exprNode()        {}

// VariableExpr names a symbol-table lookup.
type VariableExpr struct {
	base
	Name string
}

func NewVariableExpr(rng source.Range, name string) *VariableExpr {
	return &VariableExpr{base: newBase(rng), Name: name}
}

func (n *VariableExpr) Accept(v Visitor) { v.VisitVariableExpr(n) }
func (n *VariableExpr) exprNode()        {}

// GroupingExpr is a parenthesized sub-expression, kept as its own node
// (rather than discarded at parse time) so the Dumper/Emitter can render
// the parentheses back out.
type GroupingExpr struct {
	base
	Inner Expr
}

func NewGroupingExpr(rng source.Range, inner Expr) *GroupingExpr {
	return &GroupingExpr{base: newBase(rng), Inner: inner}
}

func (n *GroupingExpr) Accept(v Visitor) { v.VisitGroupingExpr(n) }
func (n *GroupingExpr) exprNode()        {}

// UnaryExpr is a prefix operator applied once: -x, !x, ~x.
type UnaryExpr struct {
	base
	Op      token.Kind
	Operand Expr
}

func NewUnaryExpr(rng source.Range, op token.Kind, operand Expr) *UnaryExpr {
	return &UnaryExpr{base: newBase(rng), Op: op, Operand: operand}
}

func (n *UnaryExpr) Accept(v Visitor) { v.VisitUnaryExpr(n) }
func (n *UnaryExpr) exprNode()        {}

// PostfixExpr is x++ / x--: the increment/decrement applies after the
// expression's value is read.
type PostfixExpr struct {
	base
	Op      token.Kind
	Operand Expr
}

func NewPostfixExpr(rng source.Range, op token.Kind, operand Expr) *PostfixExpr {
	return &PostfixExpr{base: newBase(rng), Op: op, Operand: operand}
}

func (n *PostfixExpr) Accept(v Visitor) { v.VisitPostfixExpr(n) }
func (n *PostfixExpr) exprNode()        {}

// PrefixExpr is ++x / --x: the increment/decrement applies before the
// expression's value is read. Kept distinct from UnaryExpr because the
// two have different evaluation-order semantics even though both parse
// off the same PLUSPLUS/MINUSMINUS tokens.
type PrefixExpr struct {
	base
	Op      token.Kind
	Operand Expr
}

func NewPrefixExpr(rng source.Range, op token.Kind, operand Expr) *PrefixExpr {
	return &PrefixExpr{base: newBase(rng), Op: op, Operand: operand}
}

func (n *PrefixExpr) Accept(v Visitor) { v.VisitPrefixExpr(n) }
func (n *PrefixExpr) exprNode()        {}

// BinaryExpr is any left-op-right expression at the full precedence
// ladder spec.md's grammar defines, from `*`/`/` up through `||`.
type BinaryExpr struct {
	base
	Op    token.Kind
	Left  Expr
	Right Expr
}

func NewBinaryExpr(rng source.Range, op token.Kind, left, right Expr) *BinaryExpr {
	return &BinaryExpr{base: newBase(rng), Op: op, Left: left, Right: right}
}

func (n *BinaryExpr) Accept(v Visitor) { v.VisitBinaryExpr(n) }
func (n *BinaryExpr) exprNode()        {}

// AssignmentExpr is `target = value` after compound-assignment operators
// have already been desugared into Assignment(target, Binary(op, target,
// value)) by the parser.
type AssignmentExpr struct {
	base
	Target Expr
	Value  Expr
}

func NewAssignmentExpr(rng source.Range, target, value Expr) *AssignmentExpr {
	return &AssignmentExpr{base: newBase(rng), Target: target, Value: value}
}

func (n *AssignmentExpr) Accept(v Visitor) { v.VisitAssignmentExpr(n) }
func (n *AssignmentExpr) exprNode()        {}

// TernaryExpr is `condition ? then : otherwise`.
type TernaryExpr struct {
	base
	Condition Expr
	Then      Expr
	Else      Expr
}

func NewTernaryExpr(rng source.Range, cond, then, els Expr) *TernaryExpr {
	return &TernaryExpr{base: newBase(rng), Condition: cond, Then: then, Else: els}
}

func (n *TernaryExpr) Accept(v Visitor) { v.VisitTernaryExpr(n) }
func (n *TernaryExpr) exprNode()        {}

// NullishCoalescingExpr is `left ?? right`: right is evaluated only when
// left is null.
type NullishCoalescingExpr struct {
	base
	Left  Expr
	Right Expr
}

func NewNullishCoalescingExpr(rng source.Range, left, right Expr) *NullishCoalescingExpr {
	return &NullishCoalescingExpr{base: newBase(rng), Left: left, Right: right}
}

func (n *NullishCoalescingExpr) Accept(v Visitor) { v.VisitNullishCoalescingExpr(n) }
func (n *NullishCoalescingExpr) exprNode()        {}

// StringExpressionExpr is an interpolated string literal, `f"text ${e}
// text"`: Parts holds, in source order, a StringExpr for each non-empty run
// of literal text and the interpolated sub-expressions between them.
type StringExpressionExpr struct {
	base
	Parts []Expr
}

func NewStringExpressionExpr(rng source.Range, parts []Expr) *StringExpressionExpr {
	return &StringExpressionExpr{base: newBase(rng), Parts: parts}
}

func (n *StringExpressionExpr) Accept(v Visitor) { v.VisitStringExpressionExpr(n) }
func (n *StringExpressionExpr) exprNode()        {}

// CallExpr is `callee(arguments)`.
type CallExpr struct {
	base
	Callee    Expr
	Arguments *ExpressionList
}

func NewCallExpr(rng source.Range, callee Expr, arguments *ExpressionList) *CallExpr {
	return &CallExpr{base: newBase(rng), Callee: callee, Arguments: arguments}
}

func (n *CallExpr) Accept(v Visitor) { v.VisitCallExpr(n) }
func (n *CallExpr) exprNode()        {}
