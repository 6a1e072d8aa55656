package parser

// Data for sorting out the operator priorities.
//
// Every token carries a pair of numbers. When the parser has to decide which
// of two operators gets the operand sitting between them, the operator on
// the left weighs in with the first number of its pair and the operator
// arriving from the input weighs in with the second; higher is tighter. If
// the left side wins, the current handle closes; if the right side wins, a
// new handle opens; and a tie extends the current handle, which is what
// glues an open token, its middles, and its close into a single n-ary node.
//
// NOTE: this is why the members of a bracketing family all sit at the same
// number (5): 'if' ties with 'then', which ties with 'else', which ties with
// 'end'. It is also why an atom's pair is the highest of all: an atom closes
// into a leaf before anything else gets a say.

type Priority struct {
	Left  int
	Right int
}

const (
	grab = 10004 // the right-hand number of anything that takes exactly one tight operand
	shut = 10005 // the left-hand number of a closing bracket: nothing survives it
	atom = 20005 // words, numbers, strings
)

func lassoc(n int) Priority { return Priority{n, n - 1} }
func rassoc(n int) Priority { return Priority{n, n + 1} }
func xassoc(n int) Priority { return Priority{n, n} }
func prefix(n int) Priority { return Priority{n, grab} }
func suffix(n int) Priority { return Priority{shut, n} }

// The priority table of the definitional instance of Teacup. Lookup per
// token falls back through three keys: "<kind>:<text>", then "<text>", then
// "type:<kind>"; a token matching none of them is a syntax error.
var DefaultPriorities = map[string]Priority{
	"type:open":   prefix(5),
	"type:middle": xassoc(5),
	"type:close":  suffix(5),

	"\n": xassoc(15),
	";":  xassoc(15),
	",":  xassoc(25),

	"=":  rassoc(35),
	"->": rassoc(35),

	"not": prefix(105),
	"or":  lassoc(115),
	"and": lassoc(125),

	"<":  xassoc(205),
	"<=": xassoc(205),
	">":  xassoc(205),
	">=": xassoc(205),
	"==": xassoc(205),
	"!=": xassoc(205),

	"..": xassoc(305),

	"+": lassoc(505),
	"-": lassoc(505),

	"prefix:-": prefix(605),

	"*": lassoc(605),
	"/": lassoc(605),
	"%": lassoc(605),

	"^": rassoc(705),

	"type:infix":  xassoc(905),
	"type:prefix": prefix(905),

	// Field access: so tight on the left that 'a.b' grabs just the one name
	// after the dot and closes before a call or any operator bites; loose
	// enough on the right that 'a.b.c' chains and '-x.f' negates the field.
	".": {15005, 1004},

	"type:word":   xassoc(atom),
	"type:number": xassoc(atom),
	"type:string": xassoc(atom),
}
