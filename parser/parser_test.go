package parser

import (
	"testing"

	"github.com/teacup-lang/teacup/ast"
	"github.com/teacup-lang/teacup/lexer"
	"github.com/teacup-lang/teacup/relexer"
)

func parseOne(t *testing.T, input string) ast.Node {
	t.Helper()
	l := lexer.New(lexer.DefaultRules)
	toks := relexer.New().Relex(l.Lex("test", input))
	if len(l.Ers) > 0 {
		t.Fatalf("lexer threw %q", l.Ers[0].Message)
	}
	p := New(DefaultPriorities)
	node := p.ParseTokens(toks)
	if len(p.Errors) > 0 {
		t.Fatalf("parser threw %q", p.Errors[0].Message)
	}
	return node
}

func TestPrecedenceAndAssociativity(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"1 + 2 * 3", "(1 + (2 * 3))"},
		{"1 * 2 + 3", "((1 * 2) + 3)"},
		{"10 - 4 - 3", "((10 - 4) - 3)"},
		{"2 ^ 3 ^ 2", "(2 ^ (3 ^ 2))"},
		{"-3 + 4", "((- 3) + 4)"},
		{"-x ^ 2", "(- (x ^ 2))"},
		{"a.b.c", "((a . b) . c)"},
		{"-x.f", "(- (x . f))"},
		{"1 < 2 and 2 < 3", "((1 < 2) and (2 < 3))"},
		{"not a or b", "(not (a or b))"},
		{"x -> x + 1", "(x -> (x + 1))"},
		{"1 .. n + 1", "(1 .. (n + 1))"},
	}

	for i, tt := range tests {
		got := parseOne(t, tt.input).String()
		if got != tt.expected {
			t.Fatalf("tests[%d] - tree wrong. expected=%q, got=%q", i, tt.expected, got)
		}
	}
}

func TestSignatures(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"x", "word"},
		{"42", "number"},
		{"x + 1", "E + E"},
		{"-x", "_ - E"},
		{"(1 + 2)", "_ ( E ) _"},
		{"f(x, y)", "E ( E ) _"},
		{"f()", "E ( _ ) _"},
		{"[1, 2]", "_ [ E ] _"},
		{"[]", "_ [ _ ] _"},
		{"xs[0]", "E [ E ] _"},
		{"a.b", "E . E"},
		{"1, 2, 3", "E , E , E"},
		{"1; 2", "E ; E"},
		{"1 + 2\n3 * 4", "E \n E"},
		{"if x then 1 else 2 end", "_ if E then E else E end _"},
		{"if x then 1 elif y then 2 else 3 end", "_ if E then E elif E then E else E end _"},
		{"if x then 1 end", "_ if E then E end _"},
		{"let x = 1, y = 2 in x + y end", "_ let E in E end _"},
		{"for x in xs do x end", "_ for E in E do E end _"},
		{"for x in xs when x > 0 do x end", "_ for E in E when E do E end _"},
		{"begin 1; 2 end", "_ begin E end _"},
	}

	for i, tt := range tests {
		got := parseOne(t, tt.input).Signature()
		if got != tt.expected {
			t.Fatalf("tests[%d] - signature wrong. expected=%q, got=%q", i, tt.expected, got)
		}
	}
}

// Brackets bind their contents by priority ties, so a parenthesized
// subexpression must come out as a slot of the bracket node, not as a
// sibling.
func TestBracketNesting(t *testing.T) {
	node := parseOne(t, "(1 + 2) * 3")
	if node.Signature() != "E * E" {
		t.Fatalf("outer signature wrong. expected=%q, got=%q", "E * E", node.Signature())
	}
	left := node.(*ast.Branch).Slots[0]
	if left.Signature() != "_ ( E ) _" {
		t.Fatalf("inner signature wrong. expected=%q, got=%q", "_ ( E ) _", left.Signature())
	}
}

func TestLetBindingsShape(t *testing.T) {
	node := parseOne(t, "let x = 1, y = 2 in x + y end")
	bindings := node.(*ast.Branch).Slots[1]
	if bindings.Signature() != "E , E" {
		t.Fatalf("bindings signature wrong. expected=%q, got=%q", "E , E", bindings.Signature())
	}
	first := bindings.(*ast.Branch).Slots[0]
	if first.Signature() != "E = E" {
		t.Fatalf("binding signature wrong. expected=%q, got=%q", "E = E", first.Signature())
	}
}

func TestEmptyInput(t *testing.T) {
	p := New(DefaultPriorities)
	if node := p.ParseTokens(nil); node != nil {
		t.Fatalf("expected nil for empty input, got=%q", node.String())
	}
}

func TestUnknownOperator(t *testing.T) {
	l := lexer.New(lexer.DefaultRules)
	toks := l.Lex("test", "1 + 2")
	p := New(map[string]Priority{"type:number": xassoc(atom)})
	node := p.ParseTokens(toks)
	if node != nil {
		t.Fatalf("expected nil, got=%q", node.String())
	}
	if len(p.Errors) == 0 || p.Errors[0].ErrorId != "parse/prio" {
		t.Fatalf("expected a parse/prio error, got=%v", p.Errors)
	}
}

func TestSpans(t *testing.T) {
	input := "1 + 2 * 3"
	node := parseOne(t, input)
	if node.Start() != 0 || node.End() != len(input) {
		t.Fatalf("span wrong. expected=%d:%d, got=%d:%d", 0, len(input), node.Start(), node.End())
	}
}
