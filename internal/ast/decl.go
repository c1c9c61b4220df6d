package ast

import (
	"github.com/cstarlang/cstar/internal/flags"
	"github.com/cstarlang/cstar/internal/source"
	"github.com/cstarlang/cstar/internal/types"
)

// FunctionDecl is a top-level (or, once nested functions exist, local)
// function definition: a return type, a parameter list, and a body.
// Flags carries isComptime when the declaration has a leading '@'; the
// parser sets no other bit here.
type FunctionDecl struct {
	base
	Name       string
	ReturnType types.Type
	Params     []*ParameterStmt
	Body       *Block
	Flags      flags.Set
}

func NewFunctionDecl(rng source.Range, name string, returnType types.Type, params []*ParameterStmt, body *Block, fl flags.Set) *FunctionDecl {
	return &FunctionDecl{
		base:       newBase(rng),
		Name:       name,
		ReturnType: returnType,
		Params:     params,
		Body:       body,
		Flags:      fl,
	}
}

func (n *FunctionDecl) Accept(v Visitor) { v.VisitFunctionDecl(n) }

func (n *FunctionDecl) stmtNode() {}
