package token

type TokenType string

const (
	// The kinds the lexer can assign. Declaration order matters: it is the
	// order of the rules in the default Teacup rule table.
	NUMBER  = "number"
	OPEN    = "open"   // ( [ { let for if begin
	MIDDLE  = "middle" // then elif else in do when
	CLOSE   = "close"  // ) ] } end
	INFIX   = "infix"  // , ; newline, operator runs, and or not
	WORD    = "word"   // add, foobar, x, y, ...
	STRING  = "string" // "foo"
	COMMENT = "comment" // # foo bar zort troz

	// Assigned only by the relexer, never by the lexer.
	PREFIX = "prefix"
)

type Token struct {
	Type    TokenType
	Literal string
	Start   int
	End     int
	Source  string
}

// Name is the key under which a token resolves as a variable. Prefix tokens
// live in the environment under "prefix:" + their literal, so that unary '-'
// and binary '-' can coexist.
func (t Token) Name() string {
	if t.Type == PREFIX {
		return "prefix:" + t.Literal
	}
	return t.Literal
}

func TokenTypeIsNamelike(t TokenType) bool {
	return t == WORD || t == INFIX || t == PREFIX
}
