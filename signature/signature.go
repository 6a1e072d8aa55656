package signature

// A node's signature is the canonical string form of its shape: each operand
// slot becomes "_" if empty and "E" otherwise, interleaved with the literals
// of the operator tokens, all joined by single spaces. So "x + 1" has the
// signature "E + E" and a parenthesized expression has "_ ( E ) _". The
// evaluator dispatches on these strings, so this package also supplies the
// matchers the handler table is keyed by.

import (
	"regexp"
	"strings"
)

// Of builds a signature from the occupancy of the operand slots and the
// literals of the operators between them. len(slots) must be len(ops) + 1.
func Of(slots []bool, ops []string) string {
	var sb strings.Builder
	for i, occupied := range slots {
		if i > 0 {
			sb.WriteString(" ")
			sb.WriteString(ops[i-1])
			sb.WriteString(" ")
		}
		if occupied {
			sb.WriteString("E")
		} else {
			sb.WriteString("_")
		}
	}
	return sb.String()
}

// Ops recovers the operator literals of a signature: the elements at odd
// positions when the signature is split on single spaces. We split on spaces
// rather than on whitespace because "\n" is itself an operator literal.
func Ops(sig string) []string {
	parts := strings.Split(sig, " ")
	ops := []string{}
	for i := 1; i < len(parts); i = i + 2 {
		ops = append(ops, parts[i])
	}
	return ops
}

// A Matcher decides whether a handler serves a given signature.
type Matcher interface {
	Matches(sig string) bool
	String() string
}

type exactMatcher string

func (em exactMatcher) Matches(sig string) bool { return sig == string(em) }
func (em exactMatcher) String() string          { return string(em) }

// Exact matches one signature literally.
func Exact(sig string) Matcher {
	return exactMatcher(sig)
}

type regexpMatcher struct {
	re *regexp.Regexp
}

func (rm regexpMatcher) Matches(sig string) bool { return rm.re.MatchString(sig) }
func (rm regexpMatcher) String() string          { return rm.re.String() }

// Pattern matches signatures against an anchored regular expression.
func Pattern(pattern string) Matcher {
	return regexpMatcher{re: regexp.MustCompile(`^(?:` + pattern + `)$`)}
}

type opsMatcher struct {
	seps map[string]bool
}

func (om opsMatcher) Matches(sig string) bool {
	ops := Ops(sig)
	if len(ops) == 0 {
		return false
	}
	for _, op := range ops {
		if !om.seps[op] {
			return false
		}
	}
	return true
}

func (om opsMatcher) String() string {
	keys := []string{}
	for k := range om.seps {
		keys = append(keys, k)
	}
	return "ops in {" + strings.Join(keys, " ") + "}"
}

// Separators matches any signature all of whose operators come from the
// given set, e.g. Separators(",", ";", "\n") for expression sequences.
func Separators(seps ...string) Matcher {
	m := opsMatcher{seps: map[string]bool{}}
	for _, s := range seps {
		m.seps[s] = true
	}
	return m
}

type funcMatcher struct {
	name string
	fn   func(string) bool
}

func (fm funcMatcher) Matches(sig string) bool { return fm.fn(sig) }
func (fm funcMatcher) String() string          { return fm.name }

// Func wraps an arbitrary predicate as a Matcher.
func Func(name string, fn func(string) bool) Matcher {
	return funcMatcher{name: name, fn: fn}
}
