// Package tc is the embedding surface: a Service owns one instance of the
// language, from rule table to environment, and runs source through the
// whole pipeline. Several services can coexist and none of them shares
// state with another.
package tc

import (
	"github.com/teacup-lang/teacup/ast"
	"github.com/teacup-lang/teacup/evaluator"
	"github.com/teacup-lang/teacup/initializer"
	"github.com/teacup-lang/teacup/lexer"
	"github.com/teacup-lang/teacup/object"
	"github.com/teacup-lang/teacup/parser"
	"github.com/teacup-lang/teacup/relexer"
	"github.com/teacup-lang/teacup/signature"
	"github.com/teacup-lang/teacup/token"
)

type Service struct {
	def  *initializer.Definition
	emit func(object.Object)
}

// NewService starts a service on the standard language definition. The
// 'emit' builtin is installed here rather than in the standard environment
// because its sink belongs to the service.
func NewService() *Service {
	sv := &Service{def: initializer.NewStandardDefinition(), emit: func(object.Object) {}}
	sv.def.Env.Set("emit", &object.Builtin{Name: "emit", Fn: func(tok token.Token, args ...object.Object) object.Object {
		for _, arg := range args {
			sv.emit(arg)
		}
		if len(args) == 0 {
			return object.NULL
		}
		return args[len(args)-1]
	}})
	return sv
}

// Evaluate runs input through lexer, relexer, parser, and evaluator, in the
// service's environment. Failures at any stage come back as an error
// object; empty input comes back as null.
func (sv *Service) Evaluate(source, input string) object.Object {
	node := sv.Parse(source, input)
	if node == nil {
		return object.NULL
	}
	if err, ok := node.(errNode); ok {
		return err.err
	}
	return sv.def.Evaluator.Eval(node, sv.def.Env)
}

// Parse runs the front half of the pipeline only. A stage error is smuggled
// out as a node so that Evaluate has one channel for everything; callers of
// Parse itself get nil for empty input.
func (sv *Service) Parse(source, input string) ast.Node {
	toks := sv.def.Lexer.Lex(source, input)
	if len(sv.def.Lexer.Ers) > 0 {
		return errNode{sv.def.Lexer.Ers[0]}
	}
	toks = sv.def.Relexer.Relex(toks)
	node := sv.def.Parser.ParseTokens(toks)
	if len(sv.def.Parser.Errors) > 0 {
		return errNode{sv.def.Parser.Errors[0]}
	}
	return node
}

// Dump prints each stage's view of the input, for poking at the pipeline.
func (sv *Service) Dump(source, input string) {
	lexer.LexDump(sv.def.Lexer, input)
	toks := sv.def.Lexer.Lex(source, input)
	relexer.RelexDump(toks)
	parser.ParseDump(sv.def.Parser, sv.def.Relexer.Relex(toks))
}

// Define binds a name in the service's root environment: the embedder's way
// of handing Go values, records, and builtins to the language.
func (sv *Service) Define(name string, value object.Object) {
	sv.def.Env.Set(name, value)
}

// Get reads a binding back out of the root environment.
func (sv *Service) Get(name string) (object.Object, bool) {
	return sv.def.Env.Get(name)
}

// RegisterHandler adds a handler to the service's evaluator, shadowing any
// standard handler with an overlapping signature key.
func (sv *Service) RegisterHandler(key signature.Matcher, fn evaluator.HandlerFn) {
	sv.def.Evaluator.RegisterHandler(key, fn)
}

// SetEmit points the 'emit' builtin at a sink.
func (sv *Service) SetEmit(fn func(object.Object)) {
	sv.emit = fn
}

// An ast.Node wrapping a lex or parse error, so the pipeline's stages plumb
// through one return type.
type errNode struct {
	err *object.Error
}

func (e errNode) Signature() string     { return "error" }
func (e errNode) GetToken() token.Token { return e.err.Token }
func (e errNode) Start() int            { return e.err.Token.Start }
func (e errNode) End() int              { return e.err.Token.End }
func (e errNode) String() string        { return e.err.Message }
