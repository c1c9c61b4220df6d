package lexer

import (
	"testing"

	"github.com/cstarlang/cstar/internal/diag"
	"github.com/cstarlang/cstar/internal/flags"
	"github.com/cstarlang/cstar/internal/source"
	"github.com/cstarlang/cstar/internal/token"
)

func tokenize(t *testing.T, src string) ([]token.Token, *diag.Log) {
	t.Helper()
	log := diag.NewLog()
	s := source.New("test.cs", []byte(src))
	toks, _ := New(s, flags.Of(), log).Tokenize()
	return toks, log
}

func kinds(toks []token.Token) []token.Kind {
	out := make([]token.Kind, len(toks))
	for i, tok := range toks {
		out[i] = tok.Kind
	}
	return out
}

func TestEmptySourceYieldsOnlyEoF(t *testing.T) {
	toks, log := tokenize(t, "")
	if len(toks) != 1 || toks[0].Kind != token.EoF {
		t.Fatalf("expected a single EoF token, got %v", kinds(toks))
	}
	if log.HasErrors() {
		t.Fatalf("expected no diagnostics, got %d", len(log.Records()))
	}
}

func TestIntegerLiteralVariants(t *testing.T) {
	cases := []struct {
		src  string
		want uint64
	}{
		{"0xDEAD", 0xDEAD},
		{"0b1010", 0b1010},
		{"0o777", 0o777},
		{"1_000_000", 1000000},
	}
	for _, c := range cases {
		toks, log := tokenize(t, c.src)
		if log.HasErrors() {
			t.Fatalf("%s: unexpected diagnostics", c.src)
		}
		if len(toks) != 2 || toks[0].Kind != token.INTEGER {
			t.Fatalf("%s: expected single INTEGER + EoF, got %v", c.src, kinds(toks))
		}
		if got := toks[0].Value.Int(); got != c.want {
			t.Fatalf("%s: want %d, got %d", c.src, c.want, got)
		}
	}
}

func TestBareLeadingZeroOctal(t *testing.T) {
	toks, log := tokenize(t, "0777")
	if log.HasErrors() {
		t.Fatalf("unexpected diagnostics for a bare-leading-zero octal literal")
	}
	if len(toks) != 2 || toks[0].Kind != token.INTEGER {
		t.Fatalf("expected single INTEGER + EoF, got %v", kinds(toks))
	}
	if got := toks[0].Value.Int(); got != 0o777 {
		t.Fatalf("want %d, got %d", uint64(0o777), got)
	}
}

func TestBareLeadingZeroFollowedByNonOctalDigitIsDecimal(t *testing.T) {
	// A leading zero followed by an 8 or 9 isn't a malformed octal digit,
	// it's decimal syntax that happens to start with a zero.
	toks, log := tokenize(t, "0789")
	if log.HasErrors() {
		t.Fatalf("unexpected diagnostics for %q", "0789")
	}
	if len(toks) != 2 || toks[0].Kind != token.INTEGER {
		t.Fatalf("expected single INTEGER + EoF, got %v", kinds(toks))
	}
	if got := toks[0].Value.Int(); got != 789 {
		t.Fatalf("want 789, got %d", got)
	}
}

func TestHexFloatLiteralWithExponent(t *testing.T) {
	toks, log := tokenize(t, "0x1Ap3")
	if log.HasErrors() {
		t.Fatalf("unexpected diagnostics for a hex float literal")
	}
	if len(toks) != 2 || toks[0].Kind != token.FLOAT {
		t.Fatalf("expected single FLOAT + EoF, got %v", kinds(toks))
	}
	if got, want := toks[0].Value.Float(), float64(0x1A)*8; got != want {
		t.Fatalf("want %v, got %v", want, got)
	}
}

func TestEmptyExponentIsDiagnosedButStillEmitsIntegerToken(t *testing.T) {
	toks, log := tokenize(t, "1e")
	if !log.HasErrors() {
		t.Fatalf("expected a diagnostic for an empty exponent")
	}
	if len(toks) < 1 || toks[0].Kind != token.INTEGER || toks[0].Value.Int() != 1 {
		t.Fatalf("expected the digits before 'e' to still be emitted as INTEGER 1, got %v", kinds(toks))
	}
}

func TestOutOfRangeIntegerLiteralStillEmitsAToken(t *testing.T) {
	toks, log := tokenize(t, "99999999999999999999")
	if !log.HasErrors() {
		t.Fatalf("expected an out-of-range diagnostic")
	}
	if len(toks) != 2 || toks[0].Kind != token.INTEGER {
		t.Fatalf("expected the literal to still produce a token with a default value, got %v", kinds(toks))
	}
	if got := toks[0].Value.Int(); got != 0 {
		t.Fatalf("want default value 0, got %d", got)
	}
}

func TestFloatLiteral(t *testing.T) {
	toks, log := tokenize(t, "0.5e-3")
	if log.HasErrors() {
		t.Fatalf("unexpected diagnostics")
	}
	if len(toks) != 2 || toks[0].Kind != token.FLOAT {
		t.Fatalf("expected single FLOAT + EoF, got %v", kinds(toks))
	}
	if got := toks[0].Value.Float(); got != 0.0005 {
		t.Fatalf("want 0.0005, got %v", got)
	}
}

func TestCharLiteralEscapes(t *testing.T) {
	cases := []struct {
		src  string
		want uint32
	}{
		{`'\''`, '\''},
		{`'\n'`, '\n'},
		{`'\x41'`, 'A'},
		{`'é'`, 0x00E9},
	}
	for _, c := range cases {
		toks, log := tokenize(t, c.src)
		if log.HasErrors() {
			t.Fatalf("%s: unexpected diagnostics", c.src)
		}
		if len(toks) != 2 || toks[0].Kind != token.CHAR {
			t.Fatalf("%s: expected single CHAR + EoF, got %v", c.src, kinds(toks))
		}
		if got := toks[0].Value.Char(); got != c.want {
			t.Fatalf("%s: want %U, got %U", c.src, c.want, got)
		}
	}
}

func TestUniversalCharEscapeRoundTripsThroughDecodeRune(t *testing.T) {
	// Exercises the writeUtf8 half of the readRune/writeUtf8 round-trip:
	// é and \U000000E9 both encode the same scalar value as the raw
	// 'é' literal decodes to.
	cases := []string{`"é"`, `"\U000000E9"`}
	for _, src := range cases {
		toks, log := tokenize(t, src)
		if log.HasErrors() {
			t.Fatalf("%s: unexpected diagnostics", src)
		}
		if len(toks) != 2 || toks[0].Kind != token.STRING {
			t.Fatalf("%s: expected single STRING + EoF, got %v", src, kinds(toks))
		}
		r, size, ok := decodeRune([]byte(toks[0].Value.String()))
		if !ok || size != len(toks[0].Value.String()) {
			t.Fatalf("%s: expected the escape to encode a single well-formed rune, got %q", src, toks[0].Value.String())
		}
		if r != 0x00E9 {
			t.Fatalf("%s: want U+00E9, got %U", src, r)
		}
	}
}

func TestGreaterThanMaximalMunch(t *testing.T) {
	cases := []struct {
		src  string
		want []token.Kind
	}{
		{">", []token.Kind{token.GT, token.EoF}},
		{">=", []token.Kind{token.GTE, token.EoF}},
		{">>", []token.Kind{token.SHR, token.EoF}},
		{">>=", []token.Kind{token.SHRASSIGN, token.EoF}},
		{"<-", []token.Kind{token.LARROW, token.EoF}},
		{"<<=", []token.Kind{token.SHLASSIGN, token.EoF}},
	}
	for _, c := range cases {
		toks, log := tokenize(t, c.src)
		if log.HasErrors() {
			t.Fatalf("%s: unexpected diagnostics", c.src)
		}
		got := kinds(toks)
		if len(got) != len(c.want) {
			t.Fatalf("%s: want %v, got %v", c.src, c.want, got)
		}
		for i := range got {
			if got[i] != c.want[i] {
				t.Fatalf("%s: want %v, got %v", c.src, c.want, got)
			}
		}
	}
}

func TestNestedBlockComment(t *testing.T) {
	toks, log := tokenize(t, "/* outer /* inner */ still outer */")
	if log.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", log.Records())
	}
	if len(toks) != 2 || toks[0].Kind != token.COMMENT {
		t.Fatalf("expected single COMMENT + EoF, got %v", kinds(toks))
	}
}

func TestLexerSkipCommentsFlag(t *testing.T) {
	log := diag.NewLog()
	s := source.New("test.cs", []byte("// a line comment\nx"))
	toks, _ := New(s, flags.Of(flags.LexerSkipComments), log).Tokenize()
	if len(toks) != 2 || toks[0].Kind != token.IDENTIFIER {
		t.Fatalf("expected comment suppressed, got %v", kinds(toks))
	}
}

func TestStringInterpolation(t *testing.T) {
	toks, log := tokenize(t, `f"hi ${x} there"`)
	if log.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", log.Records())
	}
	want := []token.Kind{
		token.LSTREXPR, token.STRING, token.IDENTIFIER, token.STRING, token.RSTREXPR, token.EoF,
	}
	got := kinds(toks)
	if len(got) != len(want) {
		t.Fatalf("want %v, got %v", want, got)
	}
	for i := range got {
		if got[i] != want[i] {
			t.Fatalf("want %v, got %v", want, got)
		}
	}
}

func TestUnterminatedStringIsFatalButContinues(t *testing.T) {
	s := source.New("test.cs", []byte("\"abc\nx"))
	log := diag.NewLog()
	toks, ok := New(s, flags.Of(), log).Tokenize()
	if ok {
		t.Fatalf("expected Tokenize to report a fatal condition")
	}
	if !log.HasErrors() {
		t.Fatalf("expected a diagnostic for the unterminated string")
	}
	found := false
	for _, tok := range toks {
		if tok.Kind == token.IDENTIFIER {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected lexer to keep producing tokens after the unterminated string, got %v", kinds(toks))
	}
}

func TestIdentifierAndTrailingLineComment(t *testing.T) {
	toks, log := tokenize(t, "cafe // trailing")
	if log.HasErrors() {
		t.Fatalf("unexpected diagnostics")
	}
	want := []token.Kind{token.IDENTIFIER, token.COMMENT, token.EoF}
	got := kinds(toks)
	if len(got) != len(want) {
		t.Fatalf("want %v, got %v", want, got)
	}
}

func TestKeywordAliasesLowerToLogicalOperators(t *testing.T) {
	toks, log := tokenize(t, "a and b or c")
	if log.HasErrors() {
		t.Fatalf("unexpected diagnostics")
	}
	want := []token.Kind{
		token.IDENTIFIER, token.LAND, token.IDENTIFIER, token.LOR, token.IDENTIFIER, token.EoF,
	}
	got := kinds(toks)
	if len(got) != len(want) {
		t.Fatalf("want %v, got %v", want, got)
	}
	for i := range got {
		if got[i] != want[i] {
			t.Fatalf("want %v, got %v", want, got)
		}
	}
}
