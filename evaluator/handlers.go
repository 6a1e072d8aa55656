package evaluator

// The standard handler table: the semantics of Teacup, one signature at a
// time. Registration order is the reverse of precedence, so the catch-all
// operator-application handler goes in first and everything more specific
// shadows it.

import (
	"regexp"
	"strconv"
	"strings"

	"src.elv.sh/pkg/persistent/vector"

	"github.com/teacup-lang/teacup/ast"
	"github.com/teacup-lang/teacup/object"
	"github.com/teacup-lang/teacup/signature"
	"github.com/teacup-lang/teacup/token"
)

var operatorText = regexp.MustCompile(`^(?:[!@$%^&*|/?.:~+=<>-]+|and|or|not)$`)

func RegisterStandardHandlers(ev *Evaluator) {

	// A node of the shape 'E OP E' or '_ OP E' is a call: the operator
	// itself is the callee, resolved in the environment like any other
	// name. This is what makes the operators rebindable.
	ev.RegisterHandler(signature.Func("operator application", func(sig string) bool {
		parts := strings.Split(sig, " ")
		return len(parts) == 3 && parts[2] == "E" && operatorText.MatchString(parts[1])
	}), evalOperatorCall)

	// The leaves.
	ev.RegisterHandler(signature.Exact("number"), evalNumberLeaf)
	ev.RegisterHandler(signature.Exact("string"), evalStringLeaf)
	ev.RegisterHandler(signature.Exact("word"), evalNameLeaf)
	ev.RegisterHandler(signature.Exact("infix"), evalNameLeaf)
	ev.RegisterHandler(signature.Exact("prefix"), evalNameLeaf)

	// Sequences: evaluate everything, keep the last.
	ev.RegisterHandler(signature.Separators(",", ";", "\n"), evalSequence)

	// Grouping.
	ev.RegisterHandler(signature.Exact("_ ( E ) _"), evalInner)
	ev.RegisterHandler(signature.Exact("_ begin E end _"), evalInner)

	// Calls.
	ev.RegisterHandler(signature.Exact("E ( E ) _"), evalCall)
	ev.RegisterHandler(signature.Exact("E ( _ ) _"), evalCall)

	// Lists and indexing.
	ev.RegisterHandler(signature.Exact("_ [ E ] _"), evalListLiteral)
	ev.RegisterHandler(signature.Exact("_ [ _ ] _"), evalEmptyList)
	ev.RegisterHandler(signature.Exact("E [ E ] _"), evalIndex)

	// Field access.
	ev.RegisterHandler(signature.Exact("E . E"), evalField)

	// Lambdas.
	ev.RegisterHandler(signature.Exact("E -> E"), evalLambda)

	// The bracketing constructs.
	ev.RegisterHandler(signature.Exact("_ let E in E end _"), evalLet)
	ev.RegisterHandler(signature.Pattern(`_ if E then E(?: elif E then E)*(?: else E)? end _`), evalIf)
	ev.RegisterHandler(signature.Pattern(`_ for E in E(?: when E)? do E end _`), evalFor)
}

func evalNumberLeaf(ev *Evaluator, node ast.Node, env *object.Environment, args []ast.Node) object.Object {
	tok := node.GetToken()
	value, err := strconv.ParseFloat(tok.Literal, 64)
	if err != nil {
		return newError("built/type", tok, "number literal")
	}
	return &object.Number{Value: value}
}

func evalStringLeaf(ev *Evaluator, node ast.Node, env *object.Environment, args []ast.Node) object.Object {
	literal := node.GetToken().Literal
	return &object.String{Value: unescape(literal[1 : len(literal)-1])}
}

func unescape(s string) string {
	var sb strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] != '\\' || i == len(s)-1 {
			sb.WriteByte(s[i])
			continue
		}
		i++
		switch s[i] {
		case 'n':
			sb.WriteByte('\n')
		case 't':
			sb.WriteByte('\t')
		case 'r':
			sb.WriteByte('\r')
		default:
			sb.WriteByte(s[i])
		}
	}
	return sb.String()
}

// Words resolve as variables, and so, by the same path, does an operator
// token standing on its own: '+' is just a name bound to a builtin. Prefix
// tokens resolve under their "prefix:" key.
func evalNameLeaf(ev *Evaluator, node ast.Node, env *object.Environment, args []ast.Node) object.Object {
	tok := node.GetToken()
	value, ok := env.Get(tok.Name())
	if !ok {
		return newError("eval/ident", tok, tok.Name())
	}
	return value
}

func evalOperatorCall(ev *Evaluator, node ast.Node, env *object.Environment, args []ast.Node) object.Object {
	op := node.(*ast.Branch).Ops[0]
	callee, ok := env.Get(op.Name())
	if !ok {
		return newError("eval/ident", op, op.Name())
	}
	return ev.apply(callee, op, args, env)
}

func evalSequence(ev *Evaluator, node ast.Node, env *object.Environment, args []ast.Node) object.Object {
	var result object.Object = object.NULL
	for _, arg := range args {
		result = ev.Eval(arg, env)
		if isError(result) {
			return result
		}
	}
	return result
}

func evalInner(ev *Evaluator, node ast.Node, env *object.Environment, args []ast.Node) object.Object {
	return ev.Eval(args[0], env)
}

func evalCall(ev *Evaluator, node ast.Node, env *object.Environment, args []ast.Node) object.Object {
	br := node.(*ast.Branch)
	callee := ev.Eval(br.Slots[0], env)
	if isError(callee) {
		return callee
	}
	return ev.apply(callee, br.Ops[0], splitOnCommas(br.Slots[1]), env)
}

func evalListLiteral(ev *Evaluator, node ast.Node, env *object.Environment, args []ast.Node) object.Object {
	elements := vector.Empty
	for _, elNode := range splitOnCommas(node.(*ast.Branch).Slots[1]) {
		el := ev.Eval(elNode, env)
		if isError(el) {
			return el
		}
		elements = elements.Conj(el)
	}
	return &object.List{Elements: elements}
}

func evalEmptyList(ev *Evaluator, node ast.Node, env *object.Environment, args []ast.Node) object.Object {
	return &object.List{Elements: vector.Empty}
}

// x[i, j] indexes iteratively: it means x[i][j].
func evalIndex(ev *Evaluator, node ast.Node, env *object.Environment, args []ast.Node) object.Object {
	br := node.(*ast.Branch)
	receiver := ev.Eval(br.Slots[0], env)
	if isError(receiver) {
		return receiver
	}
	for _, idxNode := range splitOnCommas(br.Slots[1]) {
		index := ev.Eval(idxNode, env)
		if isError(index) {
			return index
		}
		receiver = indexOne(receiver, index, br.Ops[0])
		if isError(receiver) {
			return receiver
		}
	}
	return receiver
}

func indexOne(receiver, index object.Object, tok token.Token) object.Object {
	num, ok := index.(*object.Number)
	if !ok {
		return newError("built/index/int", tok, index.Inspect(object.ViewTeacupLiteral))
	}
	i := int(num.Value)
	if float64(i) != num.Value {
		return newError("built/index/int", tok, num.Value)
	}
	switch receiver := receiver.(type) {
	case *object.List:
		if i < 0 || i >= receiver.Elements.Len() {
			return newError("built/index/range", tok, i, receiver.Elements.Len())
		}
		element, _ := receiver.Elements.Index(i)
		return element.(object.Object)
	case *object.String:
		if i < 0 || i >= len(receiver.Value) {
			return newError("built/index/range", tok, i, len(receiver.Value))
		}
		return &object.String{Value: string(receiver.Value[i])}
	default:
		return newError("built/index/type", tok, object.EmphType(receiver))
	}
}

// The right side of 'x.f' is taken as a literal field name iff it is a word
// token; anything else is evaluated and must produce a string. Callable
// fields of a record come out bound to their receiver.
func evalField(ev *Evaluator, node ast.Node, env *object.Environment, args []ast.Node) object.Object {
	br := node.(*ast.Branch)
	receiver := ev.Eval(br.Slots[0], env)
	if isError(receiver) {
		return receiver
	}
	var name string
	if leaf, ok := br.Slots[1].(*ast.Leaf); ok && leaf.Token.Type == token.WORD {
		name = leaf.Token.Literal
	} else {
		fieldValue := ev.Eval(br.Slots[1], env)
		if isError(fieldValue) {
			return fieldValue
		}
		str, ok := fieldValue.(*object.String)
		if !ok {
			return newError("eval/field", br.Ops[0], object.EmphType(receiver), fieldValue.Inspect(object.ViewTeacupLiteral))
		}
		name = str.Value
	}
	return ev.getField(receiver, name, br.Ops[0])
}

func (ev *Evaluator) getField(receiver object.Object, name string, tok token.Token) object.Object {
	switch receiver := receiver.(type) {
	case *object.List:
		if name == "length" {
			return &object.Number{Value: float64(receiver.Elements.Len())}
		}
	case *object.String:
		if name == "length" {
			return &object.Number{Value: float64(len(receiver.Value))}
		}
	case *object.Record:
		if field, ok := receiver.Fields[name]; ok {
			return ev.bindMethod(receiver, field)
		}
	}
	return newError("eval/field", tok, object.EmphType(receiver), name)
}

// bindMethod wraps a callable field so that the receiver arrives as its
// first argument. Non-callable fields pass through untouched.
func (ev *Evaluator) bindMethod(receiver *object.Record, field object.Object) object.Object {
	switch field.(type) {
	case *object.Builtin, *object.Func:
		return &object.Builtin{Name: "bound method", Fn: func(tok token.Token, args ...object.Object) object.Object {
			return ev.callWithValues(field, tok, append([]object.Object{receiver}, args...))
		}}
	}
	return field
}

func evalLambda(ev *Evaluator, node ast.Node, env *object.Environment, args []ast.Node) object.Object {
	br := node.(*ast.Branch)
	params, err := paramNames(br.Slots[0])
	if err != nil {
		return err
	}
	return &object.Func{Params: params, Body: br.Slots[1], Env: env}
}

// The parameter list of a lambda is its left operand, unparenthesized and
// split on commas; every piece must be a name-like token.
func paramNames(node ast.Node) ([]string, *object.Error) {
	params := []string{}
	for _, part := range splitOnCommas(unparenthesize(node)) {
		leaf, ok := part.(*ast.Leaf)
		if !ok || !token.TokenTypeIsNamelike(leaf.Token.Type) {
			return nil, newError("eval/bind/target", part.GetToken())
		}
		params = append(params, leaf.Token.Name())
	}
	return params, nil
}

// let installs its bindings, in order, into one fresh child environment,
// and evaluates its body there. The right side of a value binding is
// evaluated before its name is installed, so 'let x = x + 1' sees the outer
// x; a function binding's closure is constructed against the new
// environment itself, which is what makes it recursive.
func evalLet(ev *Evaluator, node ast.Node, env *object.Environment, args []ast.Node) object.Object {
	br := node.(*ast.Branch)
	letEnv := object.NewChildEnvironment(env)
	for _, binding := range splitBindings(br.Slots[1]) {
		if err := evalBinding(ev, binding, letEnv); err != nil {
			return err
		}
	}
	return ev.Eval(br.Slots[2], letEnv)
}

func evalBinding(ev *Evaluator, binding ast.Node, letEnv *object.Environment) object.Object {
	bindBr, ok := binding.(*ast.Branch)
	if !ok || bindBr.Signature() != "E = E" {
		return newError("eval/bind/target", binding.GetToken())
	}
	target, expr := bindBr.Slots[0], bindBr.Slots[1]
	switch target := target.(type) {
	case *ast.Leaf:
		if !token.TokenTypeIsNamelike(target.Token.Type) {
			return newError("eval/bind/target", target.Token)
		}
		value := ev.Eval(expr, letEnv)
		if isError(value) {
			return value
		}
		if fn, ok := value.(*object.Func); ok && fn.Name == "" {
			fn.Name = target.Token.Name()
		}
		letEnv.Set(target.Token.Name(), value)
		return nil
	case *ast.Branch:
		// 'f(x, y) = expr' is sugar for binding f to a lambda.
		if target.Signature() != "E ( E ) _" && target.Signature() != "E ( _ ) _" {
			return newError("eval/bind/target", binding.GetToken())
		}
		nameLeaf, ok := target.Slots[0].(*ast.Leaf)
		if !ok || !token.TokenTypeIsNamelike(nameLeaf.Token.Type) {
			return newError("eval/bind/target", target.GetToken())
		}
		params, err := paramNames(target.Slots[1])
		if err != nil {
			return err
		}
		name := nameLeaf.Token.Name()
		letEnv.Set(name, &object.Func{Name: name, Params: params, Body: expr, Env: letEnv})
		return nil
	}
	return newError("eval/bind/target", binding.GetToken())
}

func evalIf(ev *Evaluator, node ast.Node, env *object.Environment, args []ast.Node) object.Object {
	br := node.(*ast.Branch)
	for i, op := range br.Ops {
		switch op.Literal {
		case "if", "elif":
			condition := ev.Eval(br.Slots[i+1], env)
			if isError(condition) {
				return condition
			}
			boolean, ok := condition.(*object.Boolean)
			if !ok {
				return newError("eval/cond", op, object.EmphValue(condition))
			}
			if boolean.Value {
				return ev.Eval(br.Slots[i+2], env)
			}
		case "else":
			return ev.Eval(br.Slots[i+1], env)
		}
	}
	return object.NULL
}

// The comprehension: one child environment per iteration, the 'when'
// filter evaluated in it, the results conj'd into a fresh list.
func evalFor(ev *Evaluator, node ast.Node, env *object.Environment, args []ast.Node) object.Object {
	br := node.(*ast.Branch)
	targetLeaf, ok := br.Slots[1].(*ast.Leaf)
	if !ok || !token.TokenTypeIsNamelike(targetLeaf.Token.Type) {
		return newError("eval/bind/target", br.Slots[1].GetToken())
	}
	name := targetLeaf.Token.Name()
	source := ev.Eval(br.Slots[2], env)
	if isError(source) {
		return source
	}
	var whenNode, bodyNode ast.Node
	if len(br.Ops) == 5 { // for .. in .. when .. do .. end
		whenNode, bodyNode = br.Slots[3], br.Slots[4]
	} else { // for .. in .. do .. end
		bodyNode = br.Slots[3]
	}
	elements, err := elementsOf(source, br.Ops[0])
	if err != nil {
		return err
	}
	results := vector.Empty
	for _, element := range elements {
		loopEnv := object.NewChildEnvironment(env)
		loopEnv.Set(name, element)
		if whenNode != nil {
			condition := ev.Eval(whenNode, loopEnv)
			if isError(condition) {
				return condition
			}
			boolean, ok := condition.(*object.Boolean)
			if !ok {
				return newError("eval/cond", br.Ops[0], object.EmphValue(condition))
			}
			if !boolean.Value {
				continue
			}
		}
		value := ev.Eval(bodyNode, loopEnv)
		if isError(value) {
			return value
		}
		results = results.Conj(value)
	}
	return &object.List{Elements: results}
}

func elementsOf(source object.Object, tok token.Token) ([]object.Object, *object.Error) {
	switch source := source.(type) {
	case *object.List:
		elements := make([]object.Object, 0, source.Elements.Len())
		for i := 0; i < source.Elements.Len(); i++ {
			element, _ := source.Elements.Index(i)
			elements = append(elements, element.(object.Object))
		}
		return elements, nil
	case *object.Range:
		elements := []object.Object{}
		for x := source.Lo; x < source.Hi; x++ {
			elements = append(elements, &object.Number{Value: x})
		}
		return elements, nil
	default:
		return nil, newError("eval/for/source", tok, object.EmphType(source))
	}
}

// splitBindings flattens the bindings slot of a let. Bindings may be
// separated by any mix of commas, semicolons, and newlines, and a newline
// next to a comma leaves an empty slot behind, so the separator nodes are
// walked recursively and the empty slots dropped.
func splitBindings(node ast.Node) []ast.Node {
	if node == nil {
		return []ast.Node{}
	}
	if br, ok := node.(*ast.Branch); ok {
		allSeparators := true
		for _, op := range br.Ops {
			if op.Literal != "," && op.Literal != ";" && op.Literal != "\n" {
				allSeparators = false
			}
		}
		if allSeparators {
			bindings := []ast.Node{}
			for _, slot := range br.Slots {
				bindings = append(bindings, splitBindings(slot)...)
			}
			return bindings
		}
	}
	return []ast.Node{node}
}

// splitOnCommas takes a node apart at its commas: the operands of a pure
// comma node, or the node itself as a singleton, or nothing at all for an
// empty slot.
func splitOnCommas(node ast.Node) []ast.Node {
	if node == nil {
		return []ast.Node{}
	}
	if br, ok := node.(*ast.Branch); ok {
		allCommas := true
		for _, op := range br.Ops {
			if op.Literal != "," {
				allCommas = false
			}
		}
		if allCommas {
			return br.Args()
		}
	}
	return []ast.Node{node}
}

func unparenthesize(node ast.Node) ast.Node {
	if br, ok := node.(*ast.Branch); ok {
		if br.Signature() == "_ ( E ) _" {
			return br.Slots[1]
		}
		if br.Signature() == "_ ( _ ) _" {
			return nil
		}
	}
	return node
}
