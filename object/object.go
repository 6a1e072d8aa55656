package object

import (
	"bytes"
	"strconv"

	"src.elv.sh/pkg/persistent/vector"

	"github.com/teacup-lang/teacup/ast"
	"github.com/teacup-lang/teacup/text"
	"github.com/teacup-lang/teacup/token"
)

type View int

const (
	ViewStdOut = iota
	ViewTeacupLiteral
)

type ObjectType string

const (
	ERROR_OBJ = "error"

	NUMBER_OBJ  = "number"
	BOOLEAN_OBJ = "bool"
	STRING_OBJ  = "string"
	NULL_OBJ    = "null"

	FUNC_OBJ    = "func"
	BUILTIN_OBJ = "builtin"
	THUNK_OBJ   = "thunk"

	LIST_OBJ   = "list"
	RANGE_OBJ  = "range"
	RECORD_OBJ = "record"
)

type Object interface {
	Type() ObjectType
	Inspect(view View) string
}

func EmphType(o Object) string {
	return "<" + string(o.Type()) + ">"
}

func EmphValue(o Object) string {
	if o.Type() == STRING_OBJ {
		return text.Cyan(o.Inspect(ViewTeacupLiteral))
	}
	return text.Emph(o.Inspect(ViewTeacupLiteral))
}

type Number struct {
	Value float64
}

func (n *Number) Type() ObjectType { return NUMBER_OBJ }
func (n *Number) Inspect(view View) string {
	return strconv.FormatFloat(n.Value, 'g', -1, 64)
}

type Boolean struct {
	Value bool
}

func (b *Boolean) Type() ObjectType { return BOOLEAN_OBJ }
func (b *Boolean) Inspect(view View) string {
	if b.Value {
		return "true"
	}
	return "false"
}

var (
	TRUE  = &Boolean{Value: true}
	FALSE = &Boolean{Value: false}
	NULL  = &Null{}
)

func MakeBool(v bool) *Boolean {
	if v {
		return TRUE
	}
	return FALSE
}

type String struct {
	Value string
}

func (s *String) Type() ObjectType { return STRING_OBJ }
func (s *String) Inspect(view View) string {
	if view == ViewStdOut {
		return s.Value
	}
	return "\"" + s.Value + "\""
}

type Null struct{}

func (n *Null) Type() ObjectType          { return NULL_OBJ }
func (n *Null) Inspect(view View) string { return "null" }

// Lists are persistent vectors, so taking a sublist or conj-ing an element
// never copies the spine.
type List struct {
	Elements vector.Vector
}

func MakeList(elements ...Object) *List {
	vec := vector.Empty
	for _, el := range elements {
		vec = vec.Conj(el)
	}
	return &List{Elements: vec}
}

func (lo *List) Type() ObjectType { return LIST_OBJ }
func (lo *List) Inspect(view View) string {
	var out bytes.Buffer
	out.WriteString("[")
	for i := 0; i < lo.Elements.Len(); i++ {
		if i > 0 {
			out.WriteString(", ")
		}
		el, _ := lo.Elements.Index(i)
		out.WriteString(el.(Object).Inspect(ViewTeacupLiteral))
	}
	out.WriteString("]")
	return out.String()
}

// A Range is the value of 'lo .. hi': the numbers lo, lo+1, ... up to but
// not including hi.
type Range struct {
	Lo, Hi float64
}

func (r *Range) Type() ObjectType { return RANGE_OBJ }
func (r *Range) Inspect(view View) string {
	return strconv.FormatFloat(r.Lo, 'g', -1, 64) + " .. " + strconv.FormatFloat(r.Hi, 'g', -1, 64)
}

// A Func is a lambda closed over its defining environment. A lazy Func
// receives its arguments as thunks rather than values.
type Func struct {
	Name   string
	Params []string
	Body   ast.Node
	Env    *Environment
	Lazy   bool
}

func (fn *Func) Type() ObjectType { return FUNC_OBJ }
func (fn *Func) Inspect(view View) string {
	var out bytes.Buffer
	out.WriteString("(")
	for i, p := range fn.Params {
		if i > 0 {
			out.WriteString(", ")
		}
		out.WriteString(p)
	}
	out.WriteString(") -> ")
	out.WriteString(fn.Body.String())
	return out.String()
}

type BuiltinFunction func(tok token.Token, args ...Object) Object

type Builtin struct {
	Name string
	Lazy bool
	Fn   BuiltinFunction
}

func (bi *Builtin) Type() ObjectType          { return BUILTIN_OBJ }
func (bi *Builtin) Inspect(view View) string { return "builtin " + bi.Name }

// A Thunk is a deferred argument to a lazy function: a nullary closure over
// the call-site environment. Forcing it evaluates the argument expression.
type Thunk struct {
	Force func() Object
}

func (th *Thunk) Type() ObjectType          { return THUNK_OBJ }
func (th *Thunk) Inspect(view View) string { return "thunk" }

// A Record is a host object: named fields installed by the embedder. A
// callable field is bound to its receiver on access, so that x.m(y) calls m
// with x in scope.
type Record struct {
	Name   string
	Fields map[string]Object
}

func (rec *Record) Type() ObjectType { return RECORD_OBJ }
func (rec *Record) Inspect(view View) string {
	if rec.Name == "" {
		return "record"
	}
	return rec.Name
}
