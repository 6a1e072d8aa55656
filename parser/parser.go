package parser

// The parser reshapes the flat token stream into a tree using nothing but
// the priority pairs: there is no grammar as such. It keeps a stack of
// handles, a handle being a partial node [operand, op, operand, op, ...]
// still under construction, and walks the stream with two cursors: 'left',
// the operator most recently bound into the current handle, and 'right',
// the next operator from the input, with 'middle' the operand caught
// between them. At every step the two operators fight over the middle:
//
//   - right wins:  push the current handle, open a fresh one [middle, right];
//   - left wins:   close the current handle into a node, which becomes the
//     middle of the handle underneath;
//   - a tie:       extend the current handle with middle and right.
//
// An absent left loses to everything and an absent right loses to
// everything, so the stream starts by opening and ends by closing. When
// both cursors are exhausted, whatever the middle holds is the tree.
//
// Closing runs the finalizer: a handle of the trivial form [NONE, token,
// NONE] collapses into the bare token, which is how atoms come out as
// leaves; anything else becomes a Branch carrying its signature.

import (
	"fmt"

	"github.com/teacup-lang/teacup/ast"
	"github.com/teacup-lang/teacup/object"
	"github.com/teacup-lang/teacup/stack"
	"github.com/teacup-lang/teacup/token"
)

type Parser struct {
	Priorities map[string]Priority
	Errors     object.Errors
}

func New(priorities map[string]Priority) *Parser {
	return &Parser{Priorities: priorities, Errors: object.Errors{}}
}

// A handle under construction has one more operand slot than it has
// operators only once it is closed: until then the slice of slots trails
// one behind, and closing appends the final middle.
type handle struct {
	slots []ast.Node
	ops   []token.Token
}

// ParseTokens produces a single root node, or nil for empty input. On a
// syntax error it returns nil and the error is in p.Errors.
func (p *Parser) ParseTokens(toks []token.Token) ast.Node {
	p.Errors = object.Errors{}
	outer := stack.NewStack[*handle]()
	current := &handle{}
	var middle ast.Node
	i := 0
	for {
		var left, right *token.Token
		if len(current.ops) > 0 {
			left = &current.ops[len(current.ops)-1]
		}
		if i < len(toks) {
			right = &toks[i]
		}
		if left == nil && right == nil {
			return middle
		}
		direction, ok := p.order(left, right)
		if !ok {
			return nil
		}
		switch direction {
		case +1:
			outer.Push(current)
			current = &handle{slots: []ast.Node{middle}, ops: []token.Token{*right}}
			middle = nil
			i++
		case -1:
			current.slots = append(current.slots, middle)
			node := finalize(current)
			current, _ = outer.Pop()
			middle = node
		case 0:
			current.slots = append(current.slots, middle)
			current.ops = append(current.ops, *right)
			middle = nil
			i++
		}
	}
}

// order decides the fate of the middle operand: +1 opens, -1 closes, 0
// extends. The operator on the left weighs in with the first number of its
// priority pair, the operator on the right with the second.
func (p *Parser) order(left, right *token.Token) (int, bool) {
	if left == nil {
		return +1, true
	}
	if right == nil {
		return -1, true
	}
	leftPrio, ok := p.lookup(*left)
	if !ok {
		p.Throw("parse/prio", *left)
		return 0, false
	}
	rightPrio, ok := p.lookup(*right)
	if !ok {
		p.Throw("parse/prio", *right)
		return 0, false
	}
	switch {
	case leftPrio.Left < rightPrio.Right:
		return +1, true
	case leftPrio.Left > rightPrio.Right:
		return -1, true
	}
	return 0, true
}

func (p *Parser) lookup(tok token.Token) (Priority, bool) {
	if prio, ok := p.Priorities[string(tok.Type)+":"+tok.Literal]; ok {
		return prio, true
	}
	if prio, ok := p.Priorities[tok.Literal]; ok {
		return prio, true
	}
	if prio, ok := p.Priorities["type:"+string(tok.Type)]; ok {
		return prio, true
	}
	return Priority{}, false
}

func (p *Parser) Throw(errorId string, tok token.Token, args ...any) {
	p.Errors = object.Throw(errorId, p.Errors, tok, args...)
}

func finalize(h *handle) ast.Node {
	if len(h.ops) == 1 && h.slots[0] == nil && h.slots[1] == nil {
		return &ast.Leaf{Token: h.ops[0]}
	}
	return ast.MakeBranch(h.slots, h.ops)
}

func ParseDump(p *Parser, toks []token.Token) {
	fmt.Print("\nParser output: \n\n")
	node := p.ParseTokens(toks)
	if node == nil {
		fmt.Println("<nil>")
	} else {
		fmt.Println(node.String(), " has signature ", node.Signature())
	}
	fmt.Println()
}
