package lexer

import (
	"testing"

	"github.com/teacup-lang/teacup/token"
)

func TestLex(t *testing.T) {
	input := `let fact = (n) -> if n == 0 then 1 else n * fact(n - 1) end in fact(5) end`

	tests := []struct {
		expectedType    token.TokenType
		expectedLiteral string
	}{
		{token.OPEN, "let"},
		{token.WORD, "fact"},
		{token.INFIX, "="},
		{token.OPEN, "("},
		{token.WORD, "n"},
		{token.CLOSE, ")"},
		{token.INFIX, "->"},
		{token.OPEN, "if"},
		{token.WORD, "n"},
		{token.INFIX, "=="},
		{token.NUMBER, "0"},
		{token.MIDDLE, "then"},
		{token.NUMBER, "1"},
		{token.MIDDLE, "else"},
		{token.WORD, "n"},
		{token.INFIX, "*"},
		{token.WORD, "fact"},
		{token.OPEN, "("},
		{token.WORD, "n"},
		{token.INFIX, "-"},
		{token.NUMBER, "1"},
		{token.CLOSE, ")"},
		{token.CLOSE, "end"},
		{token.MIDDLE, "in"},
		{token.WORD, "fact"},
		{token.OPEN, "("},
		{token.NUMBER, "5"},
		{token.CLOSE, ")"},
		{token.CLOSE, "end"},
	}

	l := New(DefaultRules)
	toks := l.Lex("test", input)

	if len(l.Ers) > 0 {
		t.Fatalf("lexer threw %q", l.Ers[0].Message)
	}
	if len(toks) != len(tests) {
		t.Fatalf("wrong number of tokens. expected=%d, got=%d", len(tests), len(toks))
	}
	for i, tt := range tests {
		if toks[i].Type != tt.expectedType {
			t.Fatalf("tests[%d] - tokentype wrong. expected=%q, got=%q",
				i, tt.expectedType, toks[i].Type)
		}
		if toks[i].Literal != tt.expectedLiteral {
			t.Fatalf("tests[%d] - literal wrong. expected=%q, got=%q",
				i, tt.expectedLiteral, toks[i].Literal)
		}
	}
}

func TestLexStringsCommentsNewlines(t *testing.T) {
	input := "x = \"a\\\"b\" + 2.5e3 # note\ny"

	tests := []struct {
		expectedType    token.TokenType
		expectedLiteral string
	}{
		{token.WORD, "x"},
		{token.INFIX, "="},
		{token.STRING, `"a\"b"`},
		{token.INFIX, "+"},
		{token.NUMBER, "2.5e3"},
		{token.INFIX, "\n"},
		{token.WORD, "y"},
	}

	l := New(DefaultRules)
	toks := l.Lex("test", input)

	if len(l.Ers) > 0 {
		t.Fatalf("lexer threw %q", l.Ers[0].Message)
	}
	if len(toks) != len(tests) {
		t.Fatalf("wrong number of tokens. expected=%d, got=%d", len(tests), len(toks))
	}
	for i, tt := range tests {
		if toks[i].Type != tt.expectedType {
			t.Fatalf("tests[%d] - tokentype wrong. expected=%q, got=%q",
				i, tt.expectedType, toks[i].Type)
		}
		if toks[i].Literal != tt.expectedLiteral {
			t.Fatalf("tests[%d] - literal wrong. expected=%q, got=%q",
				i, tt.expectedLiteral, toks[i].Literal)
		}
	}
}

func TestLexOffsets(t *testing.T) {
	input := "ab + cd"

	tests := []struct {
		expectedStart int
		expectedEnd   int
	}{
		{0, 2},
		{3, 4},
		{5, 7},
	}

	l := New(DefaultRules)
	toks := l.Lex("test", input)

	for i, tt := range tests {
		if toks[i].Start != tt.expectedStart || toks[i].End != tt.expectedEnd {
			t.Fatalf("tests[%d] - span wrong. expected=%d:%d, got=%d:%d",
				i, tt.expectedStart, tt.expectedEnd, toks[i].Start, toks[i].End)
		}
	}
}

func TestLexError(t *testing.T) {
	l := New(DefaultRules)
	l.Lex("test", "2 ` 2")

	if len(l.Ers) != 1 {
		t.Fatalf("wrong number of errors. expected=%d, got=%d", 1, len(l.Ers))
	}
	if l.Ers[0].ErrorId != "lex/rule" {
		t.Fatalf("error id wrong. expected=%q, got=%q", "lex/rule", l.Ers[0].ErrorId)
	}
	if l.Ers[0].Token.Literal != "`" {
		t.Fatalf("error literal wrong. expected=%q, got=%q", "`", l.Ers[0].Token.Literal)
	}
}
