// Package ast is the closed AST node taxonomy and the double-dispatch
// Visitor protocol the Dumper and Emitter both traverse through.
package ast

import "github.com/cstarlang/cstar/internal/source"

// Node is the root of every AST type. Accept is the dispatch half of the
// visitor protocol: each concrete node's Accept calls the single Visitor
// method that matches its own type, so a caller holding only a Node can
// still reach type-specific behavior without a type switch.
type Node interface {
	Range() source.Range
	Accept(v Visitor)
}

// Stmt and Expr exist so struct fields can be typed as "any statement" or
// "any expression" instead of the bare Node; the marker methods seal the
// interfaces to this package's node set.
type Stmt interface {
	Node
	stmtNode()
}

type Expr interface {
	Node
	exprNode()
}

// base gives every concrete node its Range() accessor.
type base struct {
	rng source.Range
}

func (b *base) Range() source.Range { return b.rng }

func newBase(rng source.Range) base { return base{rng: rng} }
