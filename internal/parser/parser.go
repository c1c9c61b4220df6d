// Package parser implements the hand-written recursive-descent parser:
// full operator precedence, panic-mode error recovery, and lexical
// scoping through a nested symbol table.
package parser

import (
	"github.com/cstarlang/cstar/internal/ast"
	"github.com/cstarlang/cstar/internal/diag"
	"github.com/cstarlang/cstar/internal/flags"
	"github.com/cstarlang/cstar/internal/source"
	"github.com/cstarlang/cstar/internal/symbol"
	"github.com/cstarlang/cstar/internal/token"
	"github.com/cstarlang/cstar/internal/types"
)

// syncSignal is the local control-flow signal a mismatched expect/consume
// throws; it's caught at the nearest recovery boundary (safeDeclaration,
// one per declaration in a program or block) rather than unwinding
// through many frames of application logic — the same shape go/parser's
// own bailout type uses, scoped to this package only.
type syncSignal struct{}

// Parser consumes a token list plus a root symbol table and produces a
// Program. It never returns partial results through error values; a
// failed parse still yields the best-effort Program its panic-mode
// recovery could assemble, with every mistake recorded in log.
type Parser struct {
	tokens []token.Token
	pos    int

	log   *diag.Log
	scope *symbol.Scope
}

// New builds a Parser over tokens (which must end with exactly one EoF
// token, as Lexer.Tokenize guarantees), logging diagnostics to log and
// resolving/defining names in root's scope chain.
func New(tokens []token.Token, log *diag.Log, root *symbol.Table) *Parser {
	return &Parser{tokens: tokens, log: log, scope: symbol.NewScope(root)}
}

// Parse consumes the whole token stream and returns the resulting
// Program plus whether the run logged no errors. Returning the built
// Program is the idiomatic Go shape for what would otherwise be an
// in-out parameter the caller pre-owns.
func (p *Parser) Parse() (*ast.Program, bool) {
	start := p.current()
	stmts := p.parseDeclarations(token.EoF)
	end := p.current()
	return ast.NewProgram(start.Range.Merge(end.Range), stmts), !p.log.HasErrors()
}

// --- token cursor -----------------------------------------------------

func (p *Parser) current() token.Token {
	if p.pos >= len(p.tokens) {
		return p.tokens[len(p.tokens)-1]
	}
	return p.tokens[p.pos]
}

func (p *Parser) previous() token.Token {
	if p.pos == 0 {
		return p.tokens[0]
	}
	return p.tokens[p.pos-1]
}

func (p *Parser) isAtEnd() bool { return p.current().Kind == token.EoF }

func (p *Parser) check(kind token.Kind) bool { return p.current().Kind == kind }

func (p *Parser) advance() token.Token {
	tok := p.current()
	if !p.isAtEnd() {
		p.pos++
	}
	return tok
}

func (p *Parser) match(kind token.Kind) bool {
	if p.check(kind) {
		p.advance()
		return true
	}
	return false
}

func (p *Parser) matchAny(kinds ...token.Kind) bool {
	for _, k := range kinds {
		if p.check(k) {
			p.advance()
			return true
		}
	}
	return false
}

func (p *Parser) errorAt(rng source.Range, format string, args ...any) {
	p.log.Errorf(rng, format, args...)
}

// expect returns the current token without consuming it if it matches
// kind, else logs msg against the offending token's range and throws
// syncSignal.
func (p *Parser) expect(kind token.Kind, msg string) token.Token {
	if p.check(kind) {
		return p.current()
	}
	p.errorAt(p.current().Range, "%s, got %s", msg, p.current().Kind.String())
	panic(syncSignal{})
}

// consume is expect plus advancing past the matched token.
func (p *Parser) consume(kind token.Kind, msg string) token.Token {
	tok := p.expect(kind, msg)
	p.advance()
	return tok
}

// define inserts name into the current scope, logging "already defined"
// and throwing syncSignal on a same-scope collision — the parser gives up
// on the enclosing declaration entirely and resumes at the next
// synchronization boundary.
func (p *Parser) define(name string, value any, rng source.Range, kind symbol.Kind) {
	if !p.scope.Table().Define(name, value, rng, kind) {
		what := "name"
		if kind == symbol.Variable {
			what = "variable"
		} else if kind == symbol.Func {
			what = "function"
		}
		p.errorAt(rng, "%s '%s' already defined in current scope", what, name)
		panic(syncSignal{})
	}
}

// --- panic-mode recovery -----------------------------------------------

// parseDeclarations runs declaration() until EoF or stop, recovering
// independently around each one so one bad declaration never poisons its
// siblings.
func (p *Parser) parseDeclarations(stop token.Kind) []ast.Stmt {
	var stmts []ast.Stmt
	for !p.isAtEnd() && !p.check(stop) {
		if stmt, ok := p.safeDeclaration(); ok {
			stmts = append(stmts, stmt)
		}
	}
	return stmts
}

func (p *Parser) safeDeclaration() (stmt ast.Stmt, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			if _, isSync := r.(syncSignal); isSync {
				p.synchronize()
				return
			}
			panic(r)
		}
	}()
	return p.declaration(), true
}

// synchronize advances past the next semicolon, or stops (without
// consuming) at any of the fixed anchor keywords, then returns control to
// the enclosing declaration loop.
func (p *Parser) synchronize() {
	p.advance()
	for !p.isAtEnd() {
		if p.previous().Kind == token.SEMICOLON {
			return
		}
		switch p.current().Kind {
		case token.STRUCT, token.FUNC, token.IMM, token.MUT, token.FOR, token.IF, token.WHILE, token.UNION, token.RETURN:
			return
		}
		p.advance()
	}
}

// --- declarations & statements ------------------------------------------

// declaration := '@'? ( variableDecl | function | statement )
func (p *Parser) declaration() ast.Stmt {
	isComptime := p.match(token.AT)
	switch {
	case p.check(token.IMM), p.check(token.MUT):
		return p.variableDecl(isComptime)
	case p.check(token.FUNC):
		return p.function(isComptime)
	default:
		return p.statement()
	}
}

// variableDecl := ('imm'|'mut') IDENT (':' type)? ('=' expression)? ';'
func (p *Parser) variableDecl(isComptime bool) ast.Stmt {
	kw := p.advance()
	isImmutable := kw.Kind == token.IMM

	nameTok := p.consume(token.IDENTIFIER, "expected variable name")
	name := nameTok.Value.String()
	end := nameTok.Range

	var typ types.Type
	hasType := false
	if p.match(token.COLON) {
		typ = p.parseType()
		hasType = true
		end = p.previous().Range
	}

	var value ast.Expr
	if p.match(token.ASSIGN) {
		value = p.expression()
		end = value.Range()
	}

	if !hasType {
		typ = types.Auto()
		if value == nil {
			p.errorAt(nameTok.Range, "an explicit type must be assigned")
		}
	}

	fl := flags.Set(0)
	if isImmutable {
		fl = fl.Set(flags.IsImmutable)
	}
	if isComptime {
		fl = fl.Set(flags.IsComptime)
	}

	decl := ast.NewDeclarationStmt(kw.Range.Merge(end), name, typ, value, fl)

	// define() runs before the terminating ';' is consumed: if it panics
	// on a same-scope redefinition, the cursor is left sitting right
	// before that ';' rather than past it, so synchronize()'s leading
	// advance() skips the ';' itself instead of some token beyond it —
	// swallowing the block's closing '}' when the bad declaration is a
	// block's last statement.
	p.define(name, decl, nameTok.Range, symbol.Variable)

	p.consume(token.SEMICOLON, "expected ';' after variable declaration")
	return decl
}

// function := 'func' IDENT '(' (parameter (',' parameter)*)? ')'
//             ( '->' expressionStmt | block )
func (p *Parser) function(isComptime bool) ast.Stmt {
	start := p.consume(token.FUNC, "expected 'func'")
	nameTok := p.consume(token.IDENTIFIER, "expected function name")
	name := nameTok.Value.String()

	// Defined before the body is parsed, and patched with the finished
	// FunctionDecl afterward, so recursive calls inside the body resolve
	// through the same symbol.
	p.define(name, (*ast.FunctionDecl)(nil), nameTok.Range, symbol.Func)

	p.consume(token.LPAREN, "expected '(' after function name")
	p.scope.Push()
	defer p.scope.Pop()

	params := p.parameterList()
	p.consume(token.RPAREN, "expected ')' after parameter list")

	var body *ast.Block
	if p.match(token.RARROW) {
		stmt := p.expressionStmt()
		body = ast.NewBlock(stmt.Range(), []ast.Stmt{stmt})
	} else {
		body = p.block()
	}

	fl := flags.Set(0)
	if isComptime {
		fl = fl.Set(flags.IsComptime)
	}

	decl := ast.NewFunctionDecl(start.Range.Merge(body.Range()), name, types.Void(), params, body, fl)
	p.scope.Table().Assign(name, decl)
	return decl
}

// parameterList := (parameter (',' parameter)*)?
//
// Enforces three rules: a variadic parameter must be last, a variadic
// parameter cannot itself carry a default value, and once one parameter
// carries a default every later non-variadic parameter must carry one
// too.
func (p *Parser) parameterList() []*ast.ParameterStmt {
	var params []*ast.ParameterStmt
	if p.check(token.RPAREN) {
		return params
	}

	seenVariadic := false
	seenDefault := false
	for {
		start := p.current()
		variadic := p.match(token.ELIPSIS)

		if seenVariadic {
			p.errorAt(start.Range, "variadic parameter '...' is followed by another parameter")
		}

		nameTok := p.consume(token.IDENTIFIER, "expected parameter name")
		name := nameTok.Value.String()
		p.consume(token.COLON, "expected ':' after parameter name")
		typ := p.parseType()

		var def ast.Expr
		if p.match(token.ASSIGN) {
			if variadic {
				p.errorAt(start.Range, "default parameter arguments cannot be assigned to variadic parameters")
			}
			def = p.expression()
		}

		if def != nil {
			seenDefault = true
		} else if seenDefault && !variadic {
			p.errorAt(nameTok.Range, "parameter '%s' must have a default value", name)
		}
		if variadic {
			seenVariadic = true
		}

		fl := flags.Set(0)
		if variadic {
			fl = fl.Set(flags.IsVariadic)
		}
		end := p.previous()
		param := ast.NewParameterStmt(start.Range.Merge(end.Range), name, typ, def, fl)
		p.define(name, param, nameTok.Range, symbol.Variable)
		params = append(params, param)

		if !p.match(token.COMMA) {
			break
		}
	}
	return params
}

// statement := ifStmt | whileStmt | forStmt | block | expressionStmt
func (p *Parser) statement() ast.Stmt {
	switch {
	case p.check(token.IF):
		return p.ifStmt()
	case p.check(token.WHILE):
		return p.whileStmt()
	case p.check(token.FOR):
		return p.forStmt()
	case p.check(token.LBRACE):
		return p.block()
	default:
		return p.expressionStmt()
	}
}

// block := '{' declaration* '}'
func (p *Parser) block() *ast.Block {
	start := p.consume(token.LBRACE, "expected '{'")
	p.scope.Push()
	defer p.scope.Pop()
	stmts := p.parseDeclarations(token.RBRACE)
	end := p.consume(token.RBRACE, "expected '}' to close block")
	return ast.NewBlock(start.Range.Merge(end.Range), stmts)
}

// ifStmt := 'if' '(' expression ')' statement ('else' statement)?
func (p *Parser) ifStmt() ast.Stmt {
	start := p.consume(token.IF, "expected 'if'")
	p.consume(token.LPAREN, "expected '(' after 'if'")
	cond := p.expression()
	p.consume(token.RPAREN, "expected ')' after if condition")

	then := p.statement()
	end := then.Range()

	var els ast.Stmt
	if p.match(token.ELSE) {
		els = p.statement()
		end = els.Range()
	}

	return ast.NewIfStmt(start.Range.Merge(end), cond, then, els)
}

// whileStmt := 'while' '(' expression ')' ( ';' | statement )
func (p *Parser) whileStmt() ast.Stmt {
	start := p.consume(token.WHILE, "expected 'while'")
	p.consume(token.LPAREN, "expected '(' after 'while'")
	cond := p.expression()
	end := p.consume(token.RPAREN, "expected ')' after while condition")

	var body ast.Stmt
	endRange := end.Range
	if p.check(token.SEMICOLON) {
		endRange = p.advance().Range
	} else {
		body = p.statement()
		endRange = body.Range()
	}

	return ast.NewWhileStmt(start.Range.Merge(endRange), cond, body)
}

// forStmt := 'for' '(' (variableDecl | expressionStmt | ';')
//                       expression? ';' expression? ')'
//                    ( ';' | statement )
//
// Pushes a scope over the whole header plus body, so `for (mut i = 0; ...)`
// sees `i` inside its own condition/update/body.
func (p *Parser) forStmt() ast.Stmt {
	start := p.consume(token.FOR, "expected 'for'")
	p.consume(token.LPAREN, "expected '(' after 'for'")
	p.scope.Push()
	defer p.scope.Pop()

	var init ast.Stmt
	switch {
	case p.match(token.SEMICOLON):
		// empty init clause, semicolon already consumed
	case p.check(token.IMM), p.check(token.MUT):
		init = p.variableDecl(false)
	default:
		init = p.expressionStmt()
	}

	var cond ast.Expr
	if !p.check(token.SEMICOLON) {
		cond = p.expression()
	}
	p.consume(token.SEMICOLON, "expected ';' after loop condition")

	var update ast.Expr
	if !p.check(token.RPAREN) {
		update = p.expression()
	}
	end := p.consume(token.RPAREN, "expected ')' after for-loop clauses")

	var body ast.Stmt
	endRange := end.Range
	if p.check(token.SEMICOLON) {
		endRange = p.advance().Range
	} else {
		body = p.statement()
		endRange = body.Range()
	}

	return ast.NewForStmt(start.Range.Merge(endRange), init, cond, update, body)
}

// expressionStmt := expression ';'
func (p *Parser) expressionStmt() ast.Stmt {
	expr := p.expression()
	end := p.consume(token.SEMICOLON, "expected ';' after expression")
	return ast.NewExpressionStmt(expr.Range().Merge(end.Range), expr)
}

// --- types --------------------------------------------------------------

// parseType resolves a type name token (a builtin keyword or a plain
// identifier) to its registered singleton. An unresolvable name is a
// recoverable "unknown type name" error: the parser logs it and defaults
// to auto rather than aborting the declaration, since the rest of the
// declaration still parses fine around a bad type name.
func (p *Parser) parseType() types.Type {
	tok := p.current()
	var name string
	switch tok.Kind {
	case token.VOID, token.AUTO, token.NULL:
		name = tok.Kind.Lexeme()
		p.advance()
	case token.IDENTIFIER:
		name = tok.Value.String()
		p.advance()
	default:
		p.errorAt(tok.Range, "expected a type name, got %s", tok.Kind.String())
		panic(syncSignal{})
	}

	if t, ok := types.Lookup(name); ok {
		return t
	}
	p.errorAt(tok.Range, "unknown type name '%s'", name)
	return types.Auto()
}

// --- expressions ----------------------------------------------------

// expression := assignment
func (p *Parser) expression() ast.Expr { return p.assignment() }

// assignment := ternary (ASSIGNOP assignment)?     // right-assoc
//
// Compound-assignment operators desugar to Assignment(t, Binary(t, op, v)):
// the left-hand side's already-built expression node is reused as-is on
// both sides of the resulting Binary rather than re-parsed.
func (p *Parser) assignment() ast.Expr {
	left := p.ternary()
	if !p.current().Kind.IsAssignmentOperator() {
		return left
	}
	opTok := p.advance()
	right := p.assignment()

	if opTok.Kind == token.ASSIGN {
		return ast.NewAssignmentExpr(left.Range().Merge(right.Range()), left, right)
	}
	binOp, _ := opTok.Kind.BinaryOperatorFor()
	desugared := ast.NewBinaryExpr(left.Range().Merge(right.Range()), binOp, left, right)
	return ast.NewAssignmentExpr(left.Range().Merge(right.Range()), left, desugared)
}

// ternary := coalescing ('?' ternary ':' ternary)?
func (p *Parser) ternary() ast.Expr {
	cond := p.coalescing()
	if !p.match(token.QUESTION) {
		return cond
	}
	then := p.ternary()
	p.consume(token.COLON, "expected ':' in ternary expression")
	els := p.ternary()
	return ast.NewTernaryExpr(cond.Range().Merge(els.Range()), cond, then, els)
}

// coalescing := lor ('??' lor)?
func (p *Parser) coalescing() ast.Expr {
	left := p.lor()
	if !p.match(token.QUESTIONQUESTION) {
		return left
	}
	right := p.lor()
	return ast.NewNullishCoalescingExpr(left.Range().Merge(right.Range()), left, right)
}

// leftAssoc implements one left-associative binary precedence level:
// next (OP next)* for any of kinds.
func (p *Parser) leftAssoc(next func() ast.Expr, kinds ...token.Kind) ast.Expr {
	left := next()
	for p.matchAny(kinds...) {
		op := p.previous()
		right := next()
		left = ast.NewBinaryExpr(left.Range().Merge(right.Range()), op.Kind, left, right)
	}
	return left
}

func (p *Parser) lor() ast.Expr      { return p.leftAssoc(p.land, token.LOR) }
func (p *Parser) land() ast.Expr     { return p.leftAssoc(p.bor, token.LAND) }
func (p *Parser) bor() ast.Expr      { return p.leftAssoc(p.bxor, token.BITOR) }
func (p *Parser) bxor() ast.Expr     { return p.leftAssoc(p.band, token.BITXOR) }
func (p *Parser) band() ast.Expr     { return p.leftAssoc(p.equality, token.BITAND) }
func (p *Parser) equality() ast.Expr { return p.leftAssoc(p.comparison, token.EQUAL, token.NEQ) }
func (p *Parser) comparison() ast.Expr {
	return p.leftAssoc(p.shift, token.LT, token.LTE, token.GT, token.GTE)
}

// shift slots '<<'/'>>' between comparison and the additive level, the
// usual C-family placement for tokens that BinaryOperatorFor knows how to
// desugar but the base grammar never gives a precedence slot; power()
// below does the same for '**'.
func (p *Parser) shift() ast.Expr { return p.leftAssoc(p.terminal, token.SHL, token.SHR) }

// terminal := factor (('+'|'-') factor)*
func (p *Parser) terminal() ast.Expr { return p.leftAssoc(p.factor, token.PLUS, token.MINUS) }

// factor := power (('*'|'/'|'%') power)*
func (p *Parser) factor() ast.Expr { return p.leftAssoc(p.power, token.MULT, token.DIV, token.MOD) }

// power := nots ('**' power)?      // right-assoc, binds tighter than factor
func (p *Parser) power() ast.Expr {
	left := p.nots()
	if !p.match(token.EXPONENT) {
		return left
	}
	right := p.power()
	return ast.NewBinaryExpr(left.Range().Merge(right.Range()), token.EXPONENT, left, right)
}

// nots := ('~'|'!') nots | unary
func (p *Parser) nots() ast.Expr {
	if p.check(token.COMPLEMENT) || p.check(token.NOT) {
		op := p.advance()
		operand := p.nots()
		return ast.NewUnaryExpr(op.Range.Merge(operand.Range()), op.Kind, operand)
	}
	return p.unary()
}

// unary := ('+'|'-') unary | prefix
func (p *Parser) unary() ast.Expr {
	if p.check(token.PLUS) || p.check(token.MINUS) {
		op := p.advance()
		operand := p.unary()
		return ast.NewUnaryExpr(op.Range.Merge(operand.Range()), op.Kind, operand)
	}
	return p.prefix()
}

// prefix := ('++'|'--') prefix | call ('++'|'--')*
func (p *Parser) prefix() ast.Expr {
	if p.check(token.PLUSPLUS) || p.check(token.MINUSMINUS) {
		op := p.advance()
		operand := p.prefix()
		return ast.NewPrefixExpr(op.Range.Merge(operand.Range()), op.Kind, operand)
	}

	expr := p.call()
	for p.check(token.PLUSPLUS) || p.check(token.MINUSMINUS) {
		op := p.advance()
		expr = ast.NewPostfixExpr(expr.Range().Merge(op.Range), op.Kind, expr)
	}
	return expr
}

// call := primary ( '(' (expression (',' expression)*)? ')' )*
func (p *Parser) call() ast.Expr {
	expr := p.primary()
	for p.check(token.LPAREN) {
		expr = p.finishCall(expr)
	}
	return expr
}

func (p *Parser) finishCall(callee ast.Expr) ast.Expr {
	start := p.consume(token.LPAREN, "expected '('")
	var args []ast.Expr
	if !p.check(token.RPAREN) {
		args = append(args, p.expression())
		for p.match(token.COMMA) {
			args = append(args, p.expression())
		}
	}
	end := p.consume(token.RPAREN, "expected ')' after call arguments")
	argList := ast.NewExpressionList(start.Range.Merge(end.Range), args)
	return ast.NewCallExpr(callee.Range().Merge(end.Range), callee, argList)
}

// primary := literal | interpolated | IDENT | '(' expression ')'
func (p *Parser) primary() ast.Expr {
	tok := p.current()
	switch tok.Kind {
	case token.TRUE, token.FALSE:
		p.advance()
		return ast.NewBoolExpr(tok.Range, tok.Value.Bool())
	case token.CHAR:
		p.advance()
		return ast.NewCharExpr(tok.Range, tok.Value.Char())
	case token.INTEGER:
		p.advance()
		return ast.NewIntegerExpr(tok.Range, int64(tok.Value.Int()))
	case token.FLOAT:
		p.advance()
		return ast.NewFloatExpr(tok.Range, tok.Value.Float())
	case token.STRING:
		p.advance()
		return ast.NewStringExpr(tok.Range, tok.Value.String())
	case token.LSTREXPR:
		return p.interpolatedString()
	case token.IDENTIFIER:
		return p.variableExpr()
	case token.LPAREN:
		p.advance()
		inner := p.expression()
		end := p.consume(token.RPAREN, "expected ')' after expression")
		return ast.NewGroupingExpr(tok.Range.Merge(end.Range), inner)
	default:
		p.errorAt(tok.Range, "unexpected token %s", tok.Kind.String())
		panic(syncSignal{})
	}
}

// variableExpr resolves an identifier against the scope chain.
// "Undefined variable" is diagnosed but does not synchronize: the
// VariableExpr is still produced and parsing continues.
func (p *Parser) variableExpr() ast.Expr {
	tok := p.advance()
	name := tok.Value.String()
	if sym := p.scope.Table().Find(name, symbol.MaxLookupDepth); !sym.IsPresent() {
		p.errorAt(tok.Range, "undefined variable '%s'", name)
	}
	return ast.NewVariableExpr(tok.Range, name)
}

// interpolatedString collects expression parts (the lexer turns the
// interpolated string's literal-text spans into their own STRING tokens)
// until RSTREXPR closes it.
func (p *Parser) interpolatedString() ast.Expr {
	start := p.consume(token.LSTREXPR, "expected interpolated string")
	var parts []ast.Expr
	for !p.check(token.RSTREXPR) && !p.isAtEnd() {
		parts = append(parts, p.expression())
	}
	end := p.consume(token.RSTREXPR, "expected end of interpolated string")
	return ast.NewStringExpressionExpr(start.Range.Merge(end.Range), parts)
}
