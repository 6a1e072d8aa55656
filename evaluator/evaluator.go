package evaluator

// This is basically your standard tree-walking evaluator, with one central
// peculiarity: it doesn't switch on node types, because there is only one
// node type. Dispatch is by node *signature*. The evaluator holds an ordered
// list of handlers, each pairing a signature matcher with a function, and
// consults them latest-first, so that a handler registered later shadows an
// earlier one with an overlapping key. A bare leaf token dispatches on its
// kind name ("word", "number", ...), which the built-in leaf handlers match.

import (
	"github.com/teacup-lang/teacup/ast"
	"github.com/teacup-lang/teacup/object"
	"github.com/teacup-lang/teacup/signature"
	"github.com/teacup-lang/teacup/token"
)

type HandlerFn func(ev *Evaluator, node ast.Node, env *object.Environment, args []ast.Node) object.Object

type Handler struct {
	Key signature.Matcher
	Fn  HandlerFn
}

type Evaluator struct {
	handlers []Handler
}

func New() *Evaluator {
	return &Evaluator{handlers: []Handler{}}
}

// NewStandard gives an evaluator with the whole Teacup handler table
// installed.
func NewStandard() *Evaluator {
	ev := New()
	RegisterStandardHandlers(ev)
	return ev
}

// RegisterHandler appends to the handler list. Since dispatch runs from the
// end of the list, registering is overriding.
func (ev *Evaluator) RegisterHandler(key signature.Matcher, fn HandlerFn) {
	ev.handlers = append(ev.handlers, Handler{Key: key, Fn: fn})
}

func (ev *Evaluator) Eval(node ast.Node, env *object.Environment) object.Object {
	sig := node.Signature()
	for i := len(ev.handlers) - 1; i >= 0; i-- {
		if ev.handlers[i].Key.Matches(sig) {
			return ev.handlers[i].Fn(ev, node, env, argsOf(node))
		}
	}
	return newError("eval/sig", node.GetToken(), sig)
}

func argsOf(node ast.Node) []ast.Node {
	if br, ok := node.(*ast.Branch); ok {
		return br.Args()
	}
	return []ast.Node{}
}

// apply calls a function value on argument expressions. A lazy callee gets
// its arguments as thunks deferring evaluation in the call-site env; a
// strict one gets them as values, left to right, first error aborting.
func (ev *Evaluator) apply(fn object.Object, tok token.Token, argNodes []ast.Node, env *object.Environment) object.Object {
	if th, ok := fn.(*object.Thunk); ok {
		if len(argNodes) != 0 {
			return newError("eval/thunk", tok)
		}
		return th.Force()
	}
	lazy := false
	switch fn := fn.(type) {
	case *object.Builtin:
		lazy = fn.Lazy
	case *object.Func:
		lazy = fn.Lazy
	}
	args := make([]object.Object, len(argNodes))
	for i, argNode := range argNodes {
		if lazy {
			argNode := argNode
			args[i] = &object.Thunk{Force: func() object.Object { return ev.Eval(argNode, env) }}
			continue
		}
		result := ev.Eval(argNode, env)
		if isError(result) {
			return throwback(result, tok)
		}
		args[i] = result
	}
	return ev.callWithValues(fn, tok, args)
}

// callWithValues is the back half of apply, split out so that a method
// bound to its receiver can be invoked on arguments that are already
// values.
func (ev *Evaluator) callWithValues(fn object.Object, tok token.Token, args []object.Object) object.Object {
	switch fn := fn.(type) {
	case *object.Builtin:
		return fn.Fn(tok, args...)
	case *object.Func:
		if len(args) != len(fn.Params) {
			return newError("eval/args", tok, len(fn.Params), len(args))
		}
		bodyEnv := object.NewChildEnvironment(fn.Env)
		for i, param := range fn.Params {
			bodyEnv.Set(param, args[i])
		}
		result := ev.Eval(fn.Body, bodyEnv)
		if isError(result) {
			return throwback(result, tok)
		}
		return result
	default:
		return newError("eval/call", tok, object.EmphType(fn))
	}
}

func newError(errorId string, tok token.Token, args ...any) *object.Error {
	return object.CreateErr(errorId, tok, args...)
}

func isError(obj object.Object) bool {
	if obj == nil {
		return false
	}
	return obj.Type() == object.ERROR_OBJ
}

// throwback adds the token to the error's trace on the way up.
func throwback(err object.Object, tok token.Token) object.Object {
	e := err.(*object.Error)
	e.Trace = append(e.Trace, tok)
	return e
}
