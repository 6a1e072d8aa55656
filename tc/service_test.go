package tc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teacup-lang/teacup/ast"
	"github.com/teacup-lang/teacup/evaluator"
	"github.com/teacup-lang/teacup/object"
	"github.com/teacup-lang/teacup/signature"
	"github.com/teacup-lang/teacup/token"
)

func TestEvaluate(t *testing.T) {
	sv := NewService()

	result := sv.Evaluate("test", "1 + 2 * 3")
	require.IsType(t, &object.Number{}, result)
	assert.Equal(t, float64(7), result.(*object.Number).Value)

	assert.Equal(t, object.NULL, sv.Evaluate("test", ""))
	assert.Equal(t, object.NULL, sv.Evaluate("test", "   "))
}

func TestDefineAndGet(t *testing.T) {
	sv := NewService()
	sv.Define("pi", &object.Number{Value: 3.5})

	result := sv.Evaluate("test", "pi * 2")
	require.IsType(t, &object.Number{}, result)
	assert.Equal(t, float64(7), result.(*object.Number).Value)

	pi, ok := sv.Get("pi")
	require.True(t, ok)
	assert.Equal(t, float64(3.5), pi.(*object.Number).Value)

	_, ok = sv.Get("tau")
	assert.False(t, ok)
}

func TestServicesAreIndependent(t *testing.T) {
	one := NewService()
	two := NewService()
	one.Define("x", &object.Number{Value: 1})

	require.IsType(t, &object.Number{}, one.Evaluate("test", "x"))
	err := two.Evaluate("test", "x")
	require.IsType(t, &object.Error{}, err)
	assert.Equal(t, "eval/ident", err.(*object.Error).ErrorId)
}

func TestEmit(t *testing.T) {
	sv := NewService()
	emitted := []string{}
	sv.SetEmit(func(obj object.Object) {
		emitted = append(emitted, obj.Inspect(object.ViewStdOut))
	})

	result := sv.Evaluate("test", `emit("a"); emit("b")`)
	assert.Equal(t, []string{"a", "b"}, emitted)
	require.IsType(t, &object.String{}, result)
	assert.Equal(t, "b", result.(*object.String).Value)
}

func TestEmitInsideComprehension(t *testing.T) {
	sv := NewService()
	emitted := []string{}
	sv.SetEmit(func(obj object.Object) {
		emitted = append(emitted, obj.Inspect(object.ViewStdOut))
	})

	sv.Evaluate("test", "for x in 1 .. 4 do emit(x) end")
	assert.Equal(t, []string{"1", "2", "3"}, emitted)
}

func TestRecordFieldsAndMethods(t *testing.T) {
	sv := NewService()
	rec := &object.Record{
		Name: "greeter",
		Fields: map[string]object.Object{
			"who": &object.String{Value: "world"},
		},
	}
	rec.Fields["greet"] = &object.Builtin{Name: "greet", Fn: func(tok token.Token, args ...object.Object) object.Object {
		receiver := args[0].(*object.Record)
		return &object.String{Value: "hello, " + receiver.Fields["who"].(*object.String).Value}
	}}
	sv.Define("g", rec)

	who := sv.Evaluate("test", "g.who")
	require.IsType(t, &object.String{}, who)
	assert.Equal(t, "world", who.(*object.String).Value)

	greeting := sv.Evaluate("test", "g.greet()")
	require.IsType(t, &object.String{}, greeting)
	assert.Equal(t, "hello, world", greeting.(*object.String).Value)

	missing := sv.Evaluate("test", "g.nope")
	require.IsType(t, &object.Error{}, missing)
	assert.Equal(t, "eval/field", missing.(*object.Error).ErrorId)
}

// An embedder can give meaning to a node shape the standard table rejects:
// here the postfix bang.
func TestRegisterHandler(t *testing.T) {
	sv := NewService()

	before := sv.Evaluate("test", "5 !")
	require.IsType(t, &object.Error{}, before)

	sv.RegisterHandler(signature.Exact("E ! _"), func(ev *evaluator.Evaluator, node ast.Node, env *object.Environment, args []ast.Node) object.Object {
		operand := ev.Eval(args[0], env)
		num, ok := operand.(*object.Number)
		if !ok {
			return operand
		}
		acc := 1.0
		for n := num.Value; n > 1; n-- {
			acc = acc * n
		}
		return &object.Number{Value: acc}
	})

	after := sv.Evaluate("test", "5 !")
	require.IsType(t, &object.Number{}, after)
	assert.Equal(t, float64(120), after.(*object.Number).Value)
}

func TestStageErrorsComeBackAsValues(t *testing.T) {
	sv := NewService()

	lexErr := sv.Evaluate("test", "2 ` 2")
	require.IsType(t, &object.Error{}, lexErr)
	assert.Equal(t, "lex/rule", lexErr.(*object.Error).ErrorId)

	unbalanced := sv.Evaluate("test", "(1 + 2")
	require.IsType(t, &object.Error{}, unbalanced)
	assert.Equal(t, "eval/sig", unbalanced.(*object.Error).ErrorId)
}

func TestDefinedList(t *testing.T) {
	sv := NewService()
	sv.Define("xs", object.MakeList(
		&object.Number{Value: 10},
		&object.String{Value: "mid"},
		&object.Number{Value: 30},
	))

	mid := sv.Evaluate("test", "xs[1]")
	require.IsType(t, &object.String{}, mid)
	assert.Equal(t, "mid", mid.(*object.String).Value)

	length := sv.Evaluate("test", "xs.length")
	require.IsType(t, &object.Number{}, length)
	assert.Equal(t, float64(3), length.(*object.Number).Value)
}

func TestStatePersistsAcrossEvaluations(t *testing.T) {
	sv := NewService()
	sv.Define("base", &object.Number{Value: 40})

	first := sv.Evaluate("test", "base + 1")
	second := sv.Evaluate("test", "base + 2")
	assert.Equal(t, float64(41), first.(*object.Number).Value)
	assert.Equal(t, float64(42), second.(*object.Number).Value)
}
