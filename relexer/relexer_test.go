package relexer

import (
	"testing"

	"github.com/teacup-lang/teacup/lexer"
	"github.com/teacup-lang/teacup/token"
)

func TestRelex(t *testing.T) {
	input := `-x + -(y - not z)`

	tests := []struct {
		expectedType    token.TokenType
		expectedLiteral string
	}{
		{token.PREFIX, "-"}, // start of input
		{token.WORD, "x"},
		{token.INFIX, "+"},
		{token.PREFIX, "-"}, // after an infix
		{token.OPEN, "("},
		{token.WORD, "y"},
		{token.INFIX, "-"},
		{token.PREFIX, "not"}, // after an infix
		{token.WORD, "z"},
		{token.CLOSE, ")"},
	}

	toks := New().Relex(lexer.New(lexer.DefaultRules).Lex("test", input))

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

func TestRelexAfterOpen(t *testing.T) {
	toks := New().Relex(lexer.New(lexer.DefaultRules).Lex("test", "(-1)"))

	if toks[1].Type != token.PREFIX {
		t.Fatalf("tokentype wrong. expected=%q, got=%q", token.PREFIX, toks[1].Type)
	}
}

func TestRelexIsIdempotent(t *testing.T) {
	rl := New()
	once := rl.Relex(lexer.New(lexer.DefaultRules).Lex("test", "-a + -b - -c"))
	snapshot := make([]token.Token, len(once))
	copy(snapshot, once)
	twice := rl.Relex(once)

	for i := range snapshot {
		if snapshot[i] != twice[i] {
			t.Fatalf("tokens[%d] - second pass changed the token. got=%v", i, twice[i])
		}
	}
}
