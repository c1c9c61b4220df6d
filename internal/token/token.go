// Package token defines the closed token-kind grid, the Token value itself,
// and the keyword/punctuator lexeme tables the lexer and parser both
// consult.
package token

import "github.com/cstarlang/cstar/internal/source"

// Kind is the closed set of lexical token kinds.
type Kind int

const (
	EoF Kind = iota
	CHAR
	STRING
	INTEGER
	FLOAT
	IDENTIFIER
	COMMENT

	// punctuators
	ASSIGN
	BITAND
	BITANDASSIGN
	BITOR
	BITORASSIGN
	BITXOR
	BITXORASSIGN
	COLON
	DCOLON
	COMMA
	COMPLEMENT
	COMPASSIGN
	DIV
	DOT
	DOTDOT
	ELIPSIS
	DIVASSIGN
	EQUAL
	GT
	GTE
	LT
	LTE
	LBRACE
	RBRACE
	LBRACKET
	RBRACKET
	LPAREN
	RPAREN
	LAND
	LOR
	MINUS
	MINUSMINUS
	MINUSASSIGN
	MULT
	EXPONENT
	MULTASSIGN
	NOT
	NEQ
	PLUS
	PLUSPLUS
	PLUSASSIGN
	MOD
	MODASSIGN
	QUESTION
	QUESTIONQUESTION
	SEMICOLON
	SHL
	SHLASSIGN
	SHR
	SHRASSIGN
	LARROW
	RARROW
	AT
	HASH
	BACKQUOTE

	keywordsBegin
	ALIGNOF
	AS
	AUTO
	BREAK
	CASE
	CONTINUE
	CONST
	ELSE
	ENUM
	EXTERN
	FALSE
	FOR
	FUNC
	IF
	IMM
	IN
	INLINE
	IMPORT
	MACRO
	MOVE
	MUT
	NEW
	NULL
	RETURN
	SIZEOF
	STATIC
	STRUCT
	SWITCH
	THIS
	TRAIT
	TRUE
	UNSAFE
	UNION
	USING
	WHILE
	VOID
	keywordsEnd

	builtinKeywordsBegin
	LINE
	COLUMN
	FILEEXPR
	ARGEXPR
	OPAQUE
	builtinKeywordsEnd

	// alias keywords: AND resolves to LAND, OR resolves to LOR in the
	// keyword table, but the lexer emits the canonical kind directly, so
	// these two exist only so the keyword table can name the lexeme.
	AND
	OR

	LSTREXPR
	RSTREXPR
)

// lexeme carries both the display form (used in diagnostics) and whether
// that display form should be emitted quoted, mirroring
// Token::toString(kind, strip).
type lexeme struct {
	text   string
	quoted bool
}

var lexemes = map[Kind]lexeme{
	EoF:        {"<eof>", false},
	CHAR:       {"<char>", false},
	STRING:     {"<string>", false},
	INTEGER:    {"<integer>", false},
	FLOAT:      {"<float>", false},
	IDENTIFIER: {"<identifier>", false},
	COMMENT:    {"<comment>", false},

	ASSIGN:           {"=", true},
	BITAND:           {"&", true},
	BITANDASSIGN:     {"&=", true},
	BITOR:            {"|", true},
	BITORASSIGN:      {"|=", true},
	BITXOR:           {"^", true},
	BITXORASSIGN:     {"^=", true},
	COLON:            {":", true},
	DCOLON:           {"::", true},
	COMMA:            {",", true},
	COMPLEMENT:       {"~", true},
	COMPASSIGN:       {"~=", true},
	DIV:              {"/", true},
	DOT:              {".", true},
	DOTDOT:           {"..", true},
	ELIPSIS:          {"...", true},
	DIVASSIGN:        {"/=", true},
	EQUAL:            {"==", true},
	GT:               {">", true},
	GTE:              {">=", true},
	LT:               {"<", true},
	LTE:              {"<=", true},
	LBRACE:           {"{", true},
	RBRACE:           {"}", true},
	LBRACKET:         {"[", true},
	RBRACKET:         {"]", true},
	LPAREN:           {"(", true},
	RPAREN:           {")", true},
	LAND:             {"&&", true},
	LOR:              {"||", true},
	MINUS:            {"-", true},
	MINUSMINUS:       {"--", true},
	MINUSASSIGN:      {"-=", true},
	MULT:             {"*", true},
	EXPONENT:         {"**", true},
	MULTASSIGN:       {"*=", true},
	NOT:              {"!", true},
	NEQ:              {"!=", true},
	PLUS:             {"+", true},
	PLUSPLUS:         {"++", true},
	PLUSASSIGN:       {"+=", true},
	MOD:              {"%", true},
	MODASSIGN:        {"%=", true},
	QUESTION:         {"?", true},
	QUESTIONQUESTION: {"??", true},
	SEMICOLON:        {";", true},
	SHL:              {"<<", true},
	SHLASSIGN:        {"<<=", true},
	SHR:              {">>", true},
	SHRASSIGN:        {">>=", true},
	LARROW:           {"<-", true},
	RARROW:           {"->", true},
	AT:               {"@", true},
	HASH:             {"#", true},
	BACKQUOTE:        {"`", true},

	ALIGNOF:  {"alignof", false},
	AS:       {"as", false},
	AUTO:     {"auto", false},
	BREAK:    {"break", false},
	CASE:     {"case", false},
	CONTINUE: {"continue", false},
	CONST:    {"const", false},
	ELSE:     {"else", false},
	ENUM:     {"enum", false},
	EXTERN:   {"extern", false},
	FALSE:    {"false", false},
	FOR:      {"for", false},
	FUNC:     {"func", false},
	IF:       {"if", false},
	IMM:      {"imm", false},
	IN:       {"in", false},
	INLINE:   {"inline", false},
	IMPORT:   {"import", false},
	MACRO:    {"macro", false},
	MOVE:     {"@move", false},
	MUT:      {"mut", false},
	NEW:      {"new", false},
	NULL:     {"null", false},
	RETURN:   {"return", false},
	SIZEOF:   {"sizeof", false},
	STATIC:   {"static", false},
	STRUCT:   {"struct", false},
	SWITCH:   {"switch", false},
	THIS:     {"this", false},
	TRAIT:    {"trait", false},
	TRUE:     {"true", false},
	UNSAFE:   {"unsafe", false},
	UNION:    {"union", false},
	USING:    {"using", false},
	WHILE:    {"while", false},
	VOID:     {"void", false},

	LINE:     {"line", false},
	COLUMN:   {"column", false},
	FILEEXPR: {"file", false},
	ARGEXPR:  {"arg", false},
	OPAQUE:   {"opaque", false},

	AND: {"and", false},
	OR:  {"or", false},

	LSTREXPR: {"<strexpr>", false},
	RSTREXPR: {"</strexpr>", false},
}

// String renders the kind's canonical lexeme, quoted for punctuators the
// same way Token::toString(kind, false) does.
func (k Kind) String() string {
	l, ok := lexemes[k]
	if !ok {
		return "<unknown>"
	}
	if k.IsBuiltinKeyword() {
		return "@" + l.text
	}
	if l.quoted {
		return "'" + l.text + "'"
	}
	return l.text
}

// Lexeme is the bare lexeme text with no quoting, matching
// Token::toString(kind, /*strip=*/true).
func (k Kind) Lexeme() string {
	l, ok := lexemes[k]
	if !ok {
		return ""
	}
	return l.text
}

// keywords maps lexeme text to its Kind for the lexer's identifier lookup.
var keywords = func() map[string]Kind {
	m := make(map[string]Kind)
	for k := keywordsBegin + 1; k < keywordsEnd; k++ {
		m[lexemes[k].text] = k
	}
	for k := builtinKeywordsBegin + 1; k < builtinKeywordsEnd; k++ {
		m[lexemes[k].text] = k
	}
	m["and"] = LAND
	m["or"] = LOR
	return m
}()

// Lookup resolves an identifier lexeme to a keyword Kind, or (IDENTIFIER,
// false) when it isn't one.
func Lookup(lexeme string) (Kind, bool) {
	k, ok := keywords[lexeme]
	return k, ok
}

// IsKeyword reports whether k falls in the contiguous keyword band,
// mirroring Token::isKeyword's range check.
func (k Kind) IsKeyword() bool {
	return (k > keywordsBegin && k < keywordsEnd) || (k > builtinKeywordsBegin && k < builtinKeywordsEnd)
}

// IsBuiltinKeyword reports whether k is one of the small subset of
// keywords (line, column, file, arg, opaque) rendered with a leading '@'
// in diagnostics.
func (k Kind) IsBuiltinKeyword() bool {
	return k > builtinKeywordsBegin && k < builtinKeywordsEnd
}

// IsBinaryOperator reports whether k can appear as a BinaryExpr operator.
func (k Kind) IsBinaryOperator() bool {
	switch k {
	case LOR, LAND, BITOR, BITXOR, BITAND, EQUAL, NEQ, LT, LTE, GT, GTE,
		PLUS, MINUS, MULT, DIV, MOD, SHL, SHR, EXPONENT:
		return true
	default:
		return false
	}
}

// IsUnaryOperator reports whether k can appear as a prefix UnaryExpr/PrefixExpr operator.
func (k Kind) IsUnaryOperator() bool {
	switch k {
	case PLUS, MINUS, COMPLEMENT, NOT, PLUSPLUS, MINUSMINUS:
		return true
	default:
		return false
	}
}

// IsTernaryOperator reports whether k opens a ternary-family expression.
func (k Kind) IsTernaryOperator() bool {
	return k == QUESTION || k == QUESTIONQUESTION
}

// IsAssignmentOperator reports whether k is '=' or a compound-assignment
// punctuator that desugars per spec.md §4.2.
func (k Kind) IsAssignmentOperator() bool {
	switch k {
	case ASSIGN, PLUSASSIGN, MINUSASSIGN, MULTASSIGN, DIVASSIGN, MODASSIGN,
		SHLASSIGN, SHRASSIGN, BITANDASSIGN, BITORASSIGN, BITXORASSIGN, COMPASSIGN:
		return true
	default:
		return false
	}
}

// BinaryOperatorFor returns the underlying binary operator a compound
// assignment desugars around, per spec.md §4.2's
// Assignment(t, Binary(t, op, v)) rule. COMPASSIGN ('~=') desugars around
// COMPLEMENT per spec.md §9 (bitwise-complement-and-assign).
func (k Kind) BinaryOperatorFor() (Kind, bool) {
	switch k {
	case PLUSASSIGN:
		return PLUS, true
	case MINUSASSIGN:
		return MINUS, true
	case MULTASSIGN:
		return MULT, true
	case DIVASSIGN:
		return DIV, true
	case MODASSIGN:
		return MOD, true
	case SHLASSIGN:
		return SHL, true
	case SHRASSIGN:
		return SHR, true
	case BITANDASSIGN:
		return BITAND, true
	case BITORASSIGN:
		return BITOR, true
	case BITXORASSIGN:
		return BITXOR, true
	case COMPASSIGN:
		return COMPLEMENT, true
	default:
		return k, false
	}
}

// IsStatementBoundary reports whether k is one of the synchronization
// anchors the parser's panic-mode recovery stops at.
func (k Kind) IsStatementBoundary() bool {
	switch k {
	case STRUCT, FUNC, IMM, MUT, FOR, IF, WHILE, UNION, RETURN, SEMICOLON:
		return true
	default:
		return false
	}
}

// IsLogicalOperator reports whether k is a logical (as opposed to bitwise)
// operator.
func IsLogicalOperator(k Kind) bool {
	return k == LAND || k == LOR
}

// Value is the tagged union a Token may carry: none, bool, a decoded char
// scalar, an integer, a float, or an interned string view.
type Value struct {
	kind valueKind
	b    bool
	u32  uint32
	u64  uint64
	f64  float64
	str  string
}

type valueKind int

const (
	vNone valueKind = iota
	vBool
	vChar
	vInt
	vFloat
	vString
)

func NoValue() Value                { return Value{kind: vNone} }
func BoolValue(b bool) Value        { return Value{kind: vBool, b: b} }
func CharValue(r uint32) Value      { return Value{kind: vChar, u32: r} }
func IntValue(v uint64) Value       { return Value{kind: vInt, u64: v} }
func FloatValue(v float64) Value    { return Value{kind: vFloat, f64: v} }
func StringValue(s string) Value    { return Value{kind: vString, str: s} }

func (v Value) IsNone() bool      { return v.kind == vNone }
func (v Value) Bool() bool        { return v.b }
func (v Value) Char() uint32      { return v.u32 }
func (v Value) Int() uint64       { return v.u64 }
func (v Value) Float() float64    { return v.f64 }
func (v Value) String() string    { return v.str }

// Token is a single lexical unit.
type Token struct {
	Kind  Kind
	Range source.Range
	Value Value
}

func New(kind Kind, rng source.Range) Token {
	return Token{Kind: kind, Range: rng, Value: NoValue()}
}

func NewWithValue(kind Kind, rng source.Range, v Value) Token {
	return Token{Kind: kind, Range: rng, Value: v}
}

// IsComptimeLiteral reports whether the token's kind is one of the literal
// kinds that can be folded at parse time without evaluation.
func (t Token) IsComptimeLiteral() bool {
	switch t.Kind {
	case CHAR, STRING, INTEGER, FLOAT, TRUE, FALSE, NULL:
		return true
	default:
		return false
	}
}
