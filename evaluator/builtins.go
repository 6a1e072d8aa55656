package evaluator

// The standard environment: every operator of the language is a binding in
// here, looked up by the operator-application handler like any other name.
// '+' and '-' do double duty as prefix and infix under their plain key,
// which covers the positions the relexer can't see, e.g. after 'then'.

import (
	"math"

	"github.com/teacup-lang/teacup/object"
	"github.com/teacup-lang/teacup/token"
)

func StandardEnvironment() *object.Environment {
	env := object.NewEnvironment()
	env.Set("true", object.TRUE)
	env.Set("false", object.FALSE)
	env.Set("null", object.NULL)

	def := func(name string, fn object.BuiltinFunction) {
		env.Set(name, &object.Builtin{Name: name, Fn: fn})
	}

	def("+", func(tok token.Token, args ...object.Object) object.Object {
		if len(args) == 1 {
			if _, ok := args[0].(*object.Number); ok {
				return args[0]
			}
			return newError("built/type", tok, object.EmphType(args[0]))
		}
		if err := wantArgs(tok, args, 2); err != nil {
			return err
		}
		if a, b, ok := twoNumbers(args); ok {
			return &object.Number{Value: a + b}
		}
		if a, ok := args[0].(*object.String); ok {
			if b, ok := args[1].(*object.String); ok {
				return &object.String{Value: a.Value + b.Value}
			}
		}
		return newError("built/type", tok, object.EmphType(args[0]))
	})

	def("-", func(tok token.Token, args ...object.Object) object.Object {
		if len(args) == 1 {
			return negate(tok, args[0])
		}
		return arith(tok, args, func(a, b float64) float64 { return a - b })
	})
	env.Set("prefix:-", &object.Builtin{Name: "prefix:-", Fn: func(tok token.Token, args ...object.Object) object.Object {
		if err := wantArgs(tok, args, 1); err != nil {
			return err
		}
		return negate(tok, args[0])
	}})

	def("*", func(tok token.Token, args ...object.Object) object.Object {
		return arith(tok, args, func(a, b float64) float64 { return a * b })
	})
	def("/", func(tok token.Token, args ...object.Object) object.Object {
		if err := wantArgs(tok, args, 2); err != nil {
			return err
		}
		if a, b, ok := twoNumbers(args); ok {
			if b == 0 {
				return newError("built/div/zero", tok)
			}
			return &object.Number{Value: a / b}
		}
		return newError("built/type", tok, object.EmphType(args[0]))
	})
	def("%", func(tok token.Token, args ...object.Object) object.Object {
		return arith(tok, args, math.Mod)
	})
	def("^", func(tok token.Token, args ...object.Object) object.Object {
		return arith(tok, args, math.Pow)
	})

	def("<", func(tok token.Token, args ...object.Object) object.Object {
		return compare(tok, args, func(a, b float64) bool { return a < b })
	})
	def("<=", func(tok token.Token, args ...object.Object) object.Object {
		return compare(tok, args, func(a, b float64) bool { return a <= b })
	})
	def(">", func(tok token.Token, args ...object.Object) object.Object {
		return compare(tok, args, func(a, b float64) bool { return a > b })
	})
	def(">=", func(tok token.Token, args ...object.Object) object.Object {
		return compare(tok, args, func(a, b float64) bool { return a >= b })
	})

	def("==", func(tok token.Token, args ...object.Object) object.Object {
		if err := wantArgs(tok, args, 2); err != nil {
			return err
		}
		return object.MakeBool(equals(args[0], args[1]))
	})
	def("!=", func(tok token.Token, args ...object.Object) object.Object {
		if err := wantArgs(tok, args, 2); err != nil {
			return err
		}
		return object.MakeBool(!equals(args[0], args[1]))
	})

	def("..", func(tok token.Token, args ...object.Object) object.Object {
		if err := wantArgs(tok, args, 2); err != nil {
			return err
		}
		if a, b, ok := twoNumbers(args); ok {
			return &object.Range{Lo: a, Hi: b}
		}
		return newError("built/type", tok, object.EmphType(args[0]))
	})

	// 'and' and 'or' are lazy: their right operand arrives as a thunk and is
	// forced only if the left operand doesn't settle the matter.
	env.Set("and", &object.Builtin{Name: "and", Lazy: true, Fn: func(tok token.Token, args ...object.Object) object.Object {
		return shortCircuit(tok, args, false)
	}})
	env.Set("or", &object.Builtin{Name: "or", Lazy: true, Fn: func(tok token.Token, args ...object.Object) object.Object {
		return shortCircuit(tok, args, true)
	}})

	notFn := func(tok token.Token, args ...object.Object) object.Object {
		if err := wantArgs(tok, args, 1); err != nil {
			return err
		}
		if b, ok := args[0].(*object.Boolean); ok {
			return object.MakeBool(!b.Value)
		}
		return newError("built/type", tok, object.EmphType(args[0]))
	}
	def("not", notFn)
	env.Set("prefix:not", &object.Builtin{Name: "prefix:not", Fn: notFn})

	return env
}

func negate(tok token.Token, arg object.Object) object.Object {
	if n, ok := arg.(*object.Number); ok {
		return &object.Number{Value: -n.Value}
	}
	return newError("built/type", tok, object.EmphType(arg))
}

func wantArgs(tok token.Token, args []object.Object, n int) object.Object {
	if len(args) != n {
		return newError("eval/args", tok, n, len(args))
	}
	return nil
}

func twoNumbers(args []object.Object) (float64, float64, bool) {
	a, ok := args[0].(*object.Number)
	if !ok {
		return 0, 0, false
	}
	b, ok := args[1].(*object.Number)
	if !ok {
		return 0, 0, false
	}
	return a.Value, b.Value, true
}

func arith(tok token.Token, args []object.Object, fn func(a, b float64) float64) object.Object {
	if err := wantArgs(tok, args, 2); err != nil {
		return err
	}
	if a, b, ok := twoNumbers(args); ok {
		return &object.Number{Value: fn(a, b)}
	}
	return newError("built/type", tok, object.EmphType(args[0]))
}

func compare(tok token.Token, args []object.Object, fn func(a, b float64) bool) object.Object {
	if err := wantArgs(tok, args, 2); err != nil {
		return err
	}
	if a, b, ok := twoNumbers(args); ok {
		return object.MakeBool(fn(a, b))
	}
	return newError("built/type", tok, object.EmphType(args[0]))
}

// shortCircuit implements both 'and' (decider false) and 'or' (decider
// true): if the left operand equals the decider, it is the answer and the
// right thunk is never forced.
func shortCircuit(tok token.Token, args []object.Object, decider bool) object.Object {
	if err := wantArgs(tok, args, 2); err != nil {
		return err
	}
	left := force(args[0])
	if isError(left) {
		return left
	}
	leftBool, ok := left.(*object.Boolean)
	if !ok {
		return newError("built/type", tok, object.EmphType(left))
	}
	if leftBool.Value == decider {
		return leftBool
	}
	right := force(args[1])
	if isError(right) {
		return right
	}
	if rightBool, ok := right.(*object.Boolean); ok {
		return rightBool
	}
	return newError("built/type", tok, object.EmphType(right))
}

func force(arg object.Object) object.Object {
	if th, ok := arg.(*object.Thunk); ok {
		return th.Force()
	}
	return arg
}

// equals is structural across every type a Teacup program can make: two
// lists are equal elementwise, values of different types are simply unequal.
func equals(a, b object.Object) bool {
	switch a := a.(type) {
	case *object.Number:
		b, ok := b.(*object.Number)
		return ok && a.Value == b.Value
	case *object.String:
		b, ok := b.(*object.String)
		return ok && a.Value == b.Value
	case *object.Boolean:
		b, ok := b.(*object.Boolean)
		return ok && a.Value == b.Value
	case *object.Null:
		_, ok := b.(*object.Null)
		return ok
	case *object.Range:
		b, ok := b.(*object.Range)
		return ok && a.Lo == b.Lo && a.Hi == b.Hi
	case *object.List:
		b, ok := b.(*object.List)
		if !ok || a.Elements.Len() != b.Elements.Len() {
			return false
		}
		for i := 0; i < a.Elements.Len(); i++ {
			x, _ := a.Elements.Index(i)
			y, _ := b.Elements.Index(i)
			if !equals(x.(object.Object), y.(object.Object)) {
				return false
			}
		}
		return true
	}
	return a == b
}
