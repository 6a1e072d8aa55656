package ast

import (
	"bytes"

	"github.com/teacup-lang/teacup/signature"
	"github.com/teacup-lang/teacup/token"
)

// The base Node interface. There are only two kinds of node: a Leaf wrapping
// a bare token, and a Branch holding an ordered sequence of operand slots
// interleaved with operator tokens. The parser's finalizer collapses the
// trivial branch [NONE, token, NONE] into a Leaf, so the evaluator sees bare
// tokens for atoms.
type Node interface {
	Signature() string
	GetToken() token.Token
	Start() int
	End() int
	String() string
}

type Leaf struct {
	Token token.Token
}

func (lf *Leaf) Signature() string     { return string(lf.Token.Type) }
func (lf *Leaf) GetToken() token.Token { return lf.Token }
func (lf *Leaf) Start() int            { return lf.Token.Start }
func (lf *Leaf) End() int              { return lf.Token.End }
func (lf *Leaf) String() string        { return lf.Token.Literal }

// A Branch always has len(Ops) + 1 operand slots, so that the sequence
// begins and ends with an operand position. A nil slot is the empty slot.
type Branch struct {
	Slots []Node
	Ops   []token.Token
	sig   string
}

func MakeBranch(slots []Node, ops []token.Token) *Branch {
	occupancy := make([]bool, len(slots))
	literals := make([]string, len(ops))
	for i, slot := range slots {
		occupancy[i] = slot != nil
	}
	for i, op := range ops {
		literals[i] = op.Literal
	}
	return &Branch{Slots: slots, Ops: ops, sig: signature.Of(occupancy, literals)}
}

func (br *Branch) Signature() string { return br.sig }

func (br *Branch) GetToken() token.Token { return br.Ops[0] }

// Args returns the non-empty operand slots in order: these are what the
// evaluator passes to a handler.
func (br *Branch) Args() []Node {
	args := []Node{}
	for _, slot := range br.Slots {
		if slot != nil {
			args = append(args, slot)
		}
	}
	return args
}

// Start and End cover the span of all the non-empty components of the node.

func (br *Branch) Start() int {
	start := br.Ops[0].Start
	for _, slot := range br.Slots {
		if slot != nil && slot.Start() < start {
			start = slot.Start()
		}
	}
	return start
}

func (br *Branch) End() int {
	end := br.Ops[len(br.Ops)-1].End
	for _, slot := range br.Slots {
		if slot != nil && slot.End() > end {
			end = slot.End()
		}
	}
	return end
}

func (br *Branch) String() string {
	var out bytes.Buffer
	out.WriteString("(")
	first := true
	for i, slot := range br.Slots {
		if i > 0 {
			if !first {
				out.WriteString(" ")
			}
			out.WriteString(br.Ops[i-1].Literal)
			first = false
		}
		if slot != nil {
			if !first {
				out.WriteString(" ")
			}
			out.WriteString(slot.String())
			first = false
		}
	}
	out.WriteString(")")
	return out.String()
}
