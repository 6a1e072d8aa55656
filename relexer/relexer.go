package relexer

// The relexer sits between the lexer and the parser and re-lexes one thing:
// an infix token that has nothing on its left to be infix to. If the
// previous token was itself an infix, or an opening bracket, or if there is
// no previous token at all, then the current "-" can't be subtraction and
// must be negation, so we re-tag it as a prefix. This is what lets the
// parser tell '-a' from 'a - b' without ever looking behind itself.
//
// The pass is linear, in place, and idempotent: a token it has re-tagged is
// no longer infix, so a second pass leaves the stream alone.

import (
	"fmt"

	"github.com/teacup-lang/teacup/token"
)

// The sentinel standing in for the kind of the token before the first one.
const startOfInput token.TokenType = "start"

type Relexer struct {
	prevType token.TokenType
}

func New() *Relexer {
	return &Relexer{prevType: startOfInput}
}

func (rl *Relexer) Relex(toks []token.Token) []token.Token {
	rl.prevType = startOfInput
	for i := range toks {
		if toks[i].Type == token.INFIX && rl.prefixPosition() {
			toks[i].Type = token.PREFIX
		}
		rl.prevType = toks[i].Type
	}
	return toks
}

func (rl *Relexer) prefixPosition() bool {
	return rl.prevType == startOfInput ||
		rl.prevType == token.INFIX ||
		rl.prevType == token.OPEN
}

func RelexDump(toks []token.Token) {
	fmt.Print("Relexer output: \n\n")
	for _, tok := range New().Relex(toks) {
		fmt.Println(tok)
	}
	fmt.Println()
}
