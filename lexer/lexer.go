package lexer

// The lexer is built from an ordered table of rules, each mapping a token
// type to a regex fragment. The fragments are compiled into one alternation,
// preserving declaration order, which matters because Go's regexp engine
// takes the first alternative that matches at a position: it is what lets
// the keyword rules fire before the word rule.
//
// The input is split at every match of the alternation. The matched pieces
// become tokens of whichever rule's group fired; the unmatched gaps between
// them should be nothing but whitespace, and anything else in a gap is text
// no rule can consume, which is a lex error.

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/teacup-lang/teacup/object"
	"github.com/teacup-lang/teacup/token"
)

type Rule struct {
	Type    token.TokenType
	Pattern string
}

// The default Teacup taxonomy. PREFIX does not appear: it is assigned by the
// relexer, never by the lexer.
var DefaultRules = []Rule{
	{token.NUMBER, `\d+(?:\.\d+)?(?:[eE][+-]?\d+)?`},
	{token.OPEN, `[(\[{]|\b(?:let|for|if|begin)\b`},
	{token.MIDDLE, `\b(?:then|elif|else|in|do|when)\b`},
	{token.CLOSE, `[)\]}]|\bend\b`},
	{token.INFIX, `,|;|\n|[!@$%^&*|/?.:~+=<>-]+|\b(?:and|or|not)\b`},
	{token.WORD, `\w+`},
	{token.STRING, `"(?:\\.|[^"\\])*"`},
	{token.COMMENT, `#[^\n]*`},
}

type Lexer struct {
	rules  []Rule
	re     *regexp.Regexp
	groups []int // subexpression index of each rule's capture group
	Ers    object.Errors
}

// New compiles the rule table. It panics on a malformed pattern, since a
// rule table is part of a language definition, not user input.
func New(rules []Rule) *Lexer {
	alternatives := make([]string, len(rules))
	for i, rule := range rules {
		alternatives[i] = "(?P<rule" + strconv.Itoa(i) + ">" + rule.Pattern + ")"
	}
	re := regexp.MustCompile(strings.Join(alternatives, "|"))
	groups := make([]int, len(rules))
	for gi, name := range re.SubexpNames() {
		if strings.HasPrefix(name, "rule") {
			ri, _ := strconv.Atoi(name[len("rule"):])
			groups[ri] = gi
		}
	}
	return &Lexer{rules: rules, re: re, groups: groups, Ers: object.Errors{}}
}

// Lex turns the input into tokens. Comment tokens, empty matches, and the
// whitespace between tokens are discarded; start and end offsets are kept
// relative to the original text, discarded pieces included.
func (l *Lexer) Lex(source, input string) []token.Token {
	l.Ers = object.Errors{}
	toks := []token.Token{}
	cursor := 0
	for _, m := range l.re.FindAllStringSubmatchIndex(input, -1) {
		l.checkGap(source, input, cursor, m[0])
		cursor = m[1]
		literal := input[m[0]:m[1]]
		if literal == "" {
			continue
		}
		ty := l.firedRule(m)
		if ty == token.COMMENT {
			continue
		}
		toks = append(toks, token.Token{
			Type:    ty,
			Literal: literal,
			Start:   m[0],
			End:     m[1],
			Source:  source,
		})
	}
	l.checkGap(source, input, cursor, len(input))
	return toks
}

func (l *Lexer) firedRule(m []int) token.TokenType {
	for ri, gi := range l.groups {
		if m[2*gi] != -1 {
			return l.rules[ri].Type
		}
	}
	// Unreachable: every match is some alternative's.
	return token.COMMENT
}

func (l *Lexer) checkGap(source, input string, from, to int) {
	gap := strings.TrimSpace(input[from:to])
	if gap == "" {
		return
	}
	offset := from + strings.Index(input[from:to], gap)
	l.Throw("lex/rule", token.Token{
		Literal: gap,
		Start:   offset,
		End:     offset + len(gap),
		Source:  source,
	})
}

func LexDump(l *Lexer, input string) {
	fmt.Print("\nLexer output: \n\n")
	for _, tok := range l.Lex("", input) {
		fmt.Println(tok)
	}
	fmt.Println()
}

func (l *Lexer) Throw(errorId string, tok token.Token, args ...any) {
	l.Ers = object.Throw(errorId, l.Ers, tok, args...)
}
