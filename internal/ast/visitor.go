package ast

// Visitor is the double-dispatch target for every concrete node type.
// Ported from the original's NODE_LIST/NODE_STMT_LIST/NODE_EXPR_LIST/
// NODE_DECL_LIST macro-generated Visitor base class, with a couple of
// additions: the retrieved vistor.hpp predates PostfixExpr, PrefixExpr,
// TernaryExpr, NullishCoalescingExpr, and StringExpressionExpr — all of
// which dump.cpp clearly knows how to render — so this interface gives
// each of those its own Visit method too rather than leaving them to
// fall back on a generic Node visit, which would make double-dispatch
// incomplete for exactly the nodes a real implementation needs it for.
type Visitor interface {
	VisitProgram(*Program)

	VisitBlock(*Block)
	VisitStatementList(*StatementList)
	VisitExpressionList(*ExpressionList)

	VisitFunctionDecl(*FunctionDecl)

	VisitDeclarationStmt(*DeclarationStmt)
	VisitParameterStmt(*ParameterStmt)
	VisitExpressionStmt(*ExpressionStmt)
	VisitIfStmt(*IfStmt)
	VisitWhileStmt(*WhileStmt)
	VisitForStmt(*ForStmt)

	VisitBoolExpr(*BoolExpr)
	VisitCharExpr(*CharExpr)
	VisitIntegerExpr(*IntegerExpr)
	VisitFloatExpr(*FloatExpr)
	VisitStringExpr(*StringExpr)
	VisitVariableExpr(*VariableExpr)
	VisitGroupingExpr(*GroupingExpr)
	VisitUnaryExpr(*UnaryExpr)
	VisitPostfixExpr(*PostfixExpr)
	VisitPrefixExpr(*PrefixExpr)
	VisitBinaryExpr(*BinaryExpr)
	VisitAssignmentExpr(*AssignmentExpr)
	VisitTernaryExpr(*TernaryExpr)
	VisitNullishCoalescingExpr(*NullishCoalescingExpr)
	VisitStringExpressionExpr(*StringExpressionExpr)
	VisitCallExpr(*CallExpr)
}

// BaseVisitor gives every Visit method a no-op default, mirroring the
// original's `virtual void visit(N&) {}` defaults. Embed it and override
// only the methods a particular traversal cares about.
type BaseVisitor struct{}

func (BaseVisitor) VisitProgram(*Program)                               {}
func (BaseVisitor) VisitBlock(*Block)                                   {}
func (BaseVisitor) VisitStatementList(*StatementList)                   {}
func (BaseVisitor) VisitExpressionList(*ExpressionList)                 {}
func (BaseVisitor) VisitFunctionDecl(*FunctionDecl)                     {}
func (BaseVisitor) VisitDeclarationStmt(*DeclarationStmt)               {}
func (BaseVisitor) VisitParameterStmt(*ParameterStmt)                   {}
func (BaseVisitor) VisitExpressionStmt(*ExpressionStmt)                 {}
func (BaseVisitor) VisitIfStmt(*IfStmt)                                 {}
func (BaseVisitor) VisitWhileStmt(*WhileStmt)                           {}
func (BaseVisitor) VisitForStmt(*ForStmt)                               {}
func (BaseVisitor) VisitBoolExpr(*BoolExpr)                             {}
func (BaseVisitor) VisitCharExpr(*CharExpr)                             {}
func (BaseVisitor) VisitIntegerExpr(*IntegerExpr)                       {}
func (BaseVisitor) VisitFloatExpr(*FloatExpr)                           {}
func (BaseVisitor) VisitStringExpr(*StringExpr)                         {}
func (BaseVisitor) VisitVariableExpr(*VariableExpr)                     {}
func (BaseVisitor) VisitGroupingExpr(*GroupingExpr)                     {}
func (BaseVisitor) VisitUnaryExpr(*UnaryExpr)                           {}
func (BaseVisitor) VisitPostfixExpr(*PostfixExpr)                       {}
func (BaseVisitor) VisitPrefixExpr(*PrefixExpr)                         {}
func (BaseVisitor) VisitBinaryExpr(*BinaryExpr)                         {}
func (BaseVisitor) VisitAssignmentExpr(*AssignmentExpr)                 {}
func (BaseVisitor) VisitTernaryExpr(*TernaryExpr)                       {}
func (BaseVisitor) VisitNullishCoalescingExpr(*NullishCoalescingExpr)   {}
func (BaseVisitor) VisitStringExpressionExpr(*StringExpressionExpr)     {}
func (BaseVisitor) VisitCallExpr(*CallExpr)                             {}
