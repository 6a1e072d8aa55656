// The initializer assembles the stages of the pipeline into a Definition: a
// lexer compiled from a rule table, a relexer, a parser primed with a
// priority table, an evaluator with its handler table, and an environment
// holding the builtins. The standard Definition is the language as shipped;
// an embedder can start from a bare one and install its own tables.

package initializer

import (
	"github.com/teacup-lang/teacup/evaluator"
	"github.com/teacup-lang/teacup/lexer"
	"github.com/teacup-lang/teacup/object"
	"github.com/teacup-lang/teacup/parser"
	"github.com/teacup-lang/teacup/relexer"
)

type Definition struct {
	Lexer     *lexer.Lexer
	Relexer   *relexer.Relexer
	Parser    *parser.Parser
	Evaluator *evaluator.Evaluator
	Env       *object.Environment
}

// NewStandardDefinition wires up the default rules, priorities, handlers,
// and builtins.
func NewStandardDefinition() *Definition {
	return &Definition{
		Lexer:     lexer.New(lexer.DefaultRules),
		Relexer:   relexer.New(),
		Parser:    parser.New(parser.DefaultPriorities),
		Evaluator: evaluator.NewStandard(),
		Env:       evaluator.StandardEnvironment(),
	}
}

// NewBareDefinition wires up the default syntax over an evaluator with no
// handlers and an environment with no bindings, for embedders who want to
// supply the semantics themselves.
func NewBareDefinition() *Definition {
	return &Definition{
		Lexer:     lexer.New(lexer.DefaultRules),
		Relexer:   relexer.New(),
		Parser:    parser.New(parser.DefaultPriorities),
		Evaluator: evaluator.New(),
		Env:       object.NewEnvironment(),
	}
}
