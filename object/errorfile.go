package object

import (
	"fmt"

	"github.com/teacup-lang/teacup/text"
	"github.com/teacup-lang/teacup/token"
)

// A map from error identifiers to functions that supply the corresponding
// error messages and explanations.
//
// Errors in the map are in alphabetical order of their identifiers.
//
// Major categories are built, eval, lex, and parse. Two otherwise identical
// errors thrown in different places in the Go code must be assigned
// different identifiers, if only by suffixing /a, /b, etc to the identifier.

var ErrorCreatorMap = map[string]ErrorCreator{

	"built/div/zero": {
		Message: func(tok token.Token, args ...any) string {
			return "division by zero"
		},
		Explanation: func(errors Errors, pos int, tok token.Token, args ...any) string {
			return "There is no number that, multiplied by zero, gives the dividend, so there is no " +
				"right answer for Teacup to return: the question itself is ill-posed."
		},
	},

	"built/index/int": {
		Message: func(tok token.Token, args ...any) string {
			return "index " + text.Emph(fmt.Sprint(args[0])) + " is not a whole number"
		},
		Explanation: func(errors Errors, pos int, tok token.Token, args ...any) string {
			return "A list can only be indexed by whole numbers, since its elements sit at " +
				"positions 0, 1, 2 ..."
		},
	},

	"built/index/range": {
		Message: func(tok token.Token, args ...any) string {
			return "index " + text.Emph(fmt.Sprint(args[0])) + " is out of range for a list of length " + fmt.Sprint(args[1])
		},
		Explanation: func(errors Errors, pos int, tok token.Token, args ...any) string {
			return "Lists are indexed from 0, so the valid indices of a list of length 'n' run from 0 to 'n - 1'."
		},
	},

	"built/index/type": {
		Message: func(tok token.Token, args ...any) string {
			return "can't index a value of type " + args[0].(string)
		},
		Explanation: func(errors Errors, pos int, tok token.Token, args ...any) string {
			return "Only lists and strings can be indexed with the 'x[i]' syntax."
		},
	},

	"built/type": {
		Message: func(tok token.Token, args ...any) string {
			return text.Emph(tok.Literal) + " can't be applied to a value of type " + args[0].(string)
		},
		Explanation: func(errors Errors, pos int, tok token.Token, args ...any) string {
			return "The operator exists, but not for operands of the type you've given it: " +
				"you can't add a boolean to a number, for example."
		},
	},

	"eval/args": {
		Message: func(tok token.Token, args ...any) string {
			return fmt.Sprintf("function wants %v argument(s), got %v", args[0], args[1])
		},
		Explanation: func(errors Errors, pos int, tok token.Token, args ...any) string {
			return "A Teacup function must be supplied with exactly as many arguments as it has parameters."
		},
	},

	"eval/bind/target": {
		Message: func(tok token.Token, args ...any) string {
			return "can't bind to " + text.Emph(tok.Literal)
		},
		Explanation: func(errors Errors, pos int, tok token.Token, args ...any) string {
			return "The target of a 'let' binding, a lambda parameter, or a 'for' variable must be a " +
				"name: a word, or an operator being rebound."
		},
	},

	"eval/call": {
		Message: func(tok token.Token, args ...any) string {
			return "can't call a value of type " + args[0].(string)
		},
		Explanation: func(errors Errors, pos int, tok token.Token, args ...any) string {
			return "The thing to the left of the parentheses must evaluate to a function before " +
				"Teacup can apply it to the arguments."
		},
	},

	"eval/cond": {
		Message: func(tok token.Token, args ...any) string {
			return "condition evaluates to " + args[0].(string) + ", not to a boolean"
		},
		Explanation: func(errors Errors, pos int, tok token.Token, args ...any) string {
			return "The conditions of an 'if' or a 'when' clause must evaluate to 'true' or 'false': " +
				"Teacup has no notion of a truthy value."
		},
	},

	"eval/field": {
		Message: func(tok token.Token, args ...any) string {
			return "value of type " + args[0].(string) + " has no field " + text.Emph(args[1].(string))
		},
		Explanation: func(errors Errors, pos int, tok token.Token, args ...any) string {
			return "The thing to the right of the '.' must name a field that the value on the left actually has."
		},
	},

	"eval/for/source": {
		Message: func(tok token.Token, args ...any) string {
			return "can't iterate over a value of type " + args[0].(string)
		},
		Explanation: func(errors Errors, pos int, tok token.Token, args ...any) string {
			return "The source of a 'for' comprehension must be a list or a range."
		},
	},

	"eval/ident": {
		Message: func(tok token.Token, args ...any) string {
			return "undefined variable " + text.Emph(args[0].(string))
		},
		Explanation: func(errors Errors, pos int, tok token.Token, args ...any) string {
			return "The name isn't bound in this environment or in any environment enclosing it."
		},
	},

	"eval/sig": {
		Message: func(tok token.Token, args ...any) string {
			return "don't know how to evaluate a node of form " + text.Emph(args[0].(string))
		},
		Explanation: func(errors Errors, pos int, tok token.Token, args ...any) string {
			return "The parser produced a node whose signature matches none of the registered " +
				"handlers. This usually means mismatched brackets, or an operator used where the " +
				"language supplies no meaning for it."
		},
	},

	"eval/thunk": {
		Message: func(tok token.Token, args ...any) string {
			return "a lazy function's argument can only be forced, not " + text.Emph(tok.Literal)
		},
		Explanation: func(errors Errors, pos int, tok token.Token, args ...any) string {
			return "Inside a lazy function the arguments arrive as thunks: nullary closures over the " +
				"call site. Apply one to no arguments to get its value."
		},
	},

	"lex/rule": {
		Message: func(tok token.Token, args ...any) string {
			return "can't make sense of " + text.Emph(tok.Literal)
		},
		Explanation: func(errors Errors, pos int, tok token.Token, args ...any) string {
			return "The input contains text that no rule of the lexer can consume."
		},
	},

	"parse/prio": {
		Message: func(tok token.Token, args ...any) string {
			return "unknown operator " + text.Emph(tok.Literal)
		},
		Explanation: func(errors Errors, pos int, tok token.Token, args ...any) string {
			return "Every token must have a priority entry under its kind-and-text, its text, or its " +
				"kind; this one has none, so the parser can't decide how tightly it binds."
		},
	},
}

type ErrorCreator struct {
	Message     func(tok token.Token, args ...any) string
	Explanation func(errors Errors, pos int, tok token.Token, args ...any) string
}

type Error struct {
	ErrorId string
	Message string
	Token   token.Token
	Trace   []token.Token
}

func (e *Error) Type() ObjectType { return ERROR_OBJ }
func (e *Error) Inspect(view View) string {
	return text.ERROR + e.Message + text.PosDescription(e.Token)
}

type Errors []*Error

func CreateErr(errorId string, tok token.Token, args ...any) *Error {
	creator, ok := ErrorCreatorMap[errorId]
	msg := "oopsie, unknown error identifier " + text.Emph(errorId)
	if ok {
		msg = creator.Message(tok, args...)
	}
	return &Error{ErrorId: errorId, Message: msg, Token: tok}
}

func Throw(errorId string, errors Errors, tok token.Token, args ...any) Errors {
	return append(errors, CreateErr(errorId, tok, args...))
}

// ExplainErr gives the long-form explanation of an error, for a user who
// wants more than the one-line message.
func ExplainErr(e *Error) string {
	creator, ok := ErrorCreatorMap[e.ErrorId]
	if !ok {
		return "this error has no explanation"
	}
	return creator.Explanation(Errors{e}, 0, e.Token)
}
