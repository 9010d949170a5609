package nfa

import (
	"github.com/coregx/refsa/fsa"
	"github.com/coregx/refsa/syntax"
)

// Compile translates an expression tree into an NFA by Thompson
// construction. Each call allocates fresh state ids from its own
// allocator; sub-expressions shared between parents in the tree are
// compiled independently at each occurrence, so fragments never alias
// states.
//
// The only invalid pattern is a literal with no characters, reported
// as a CompileError wrapping ErrEmptyPattern. On error no partial
// automaton is returned.
func Compile(expr *syntax.Expr) (*NFA, error) {
	c := &compiler{alloc: fsa.NewAllocator()}
	n, err := c.compile(expr)
	if err != nil {
		return nil, &CompileError{Expr: expr.String(), Err: err}
	}
	return n, nil
}

type compiler struct {
	alloc *fsa.Allocator
}

// compile is one exhaustive case analysis over the five expression
// shapes, one Thompson wiring per shape.
func (c *compiler) compile(expr *syntax.Expr) (*NFA, error) {
	switch expr.Op {
	case syntax.OpLiteral:
		return c.literal(expr.Runes)

	case syntax.OpConcat:
		left, err := c.compile(expr.Sub[0])
		if err != nil {
			return nil, err
		}
		right, err := c.compile(expr.Sub[1])
		if err != nil {
			return nil, err
		}
		return c.concat(left, right), nil

	case syntax.OpAlternate:
		left, err := c.compile(expr.Sub[0])
		if err != nil {
			return nil, err
		}
		right, err := c.compile(expr.Sub[1])
		if err != nil {
			return nil, err
		}
		return c.alternate(left, right), nil

	case syntax.OpStar:
		inner, err := c.compile(expr.Sub[0])
		if err != nil {
			return nil, err
		}
		return c.closure(inner), nil

	case syntax.OpPlus:
		// One-or-more reduces to sub·(sub)*. The sub-expression is
		// compiled twice so the two fragments share no states.
		first, err := c.compile(expr.Sub[0])
		if err != nil {
			return nil, err
		}
		rest, err := c.compile(expr.Sub[0])
		if err != nil {
			return nil, err
		}
		return c.concat(first, c.closure(rest)), nil

	default:
		return nil, ErrInvalidExpr
	}
}

// literal folds single-character fragments left to right through the
// concatenation wiring. An empty literal has no character to anchor a
// fragment on and is rejected.
func (c *compiler) literal(runes []rune) (*NFA, error) {
	if len(runes) == 0 {
		return nil, ErrEmptyPattern
	}
	n := c.char(runes[0])
	for _, r := range runes[1:] {
		n = c.concat(n, c.char(r))
	}
	return n, nil
}

// char builds the fragment for one character: S --c--> E.
func (c *compiler) char(r rune) *NFA {
	start := NewState(c.alloc)
	end := NewState(c.alloc)
	start.AddTransition(fsa.Char(r), end)
	return New(start, end)
}

// concat wires left's end to right's start with an epsilon edge.
func (c *compiler) concat(left, right *NFA) *NFA {
	left.end.AddEpsilon(right.start)
	return New(left.start, right.end)
}

// alternate wires a fresh start into both branches and both branch
// ends into a fresh end.
func (c *compiler) alternate(left, right *NFA) *NFA {
	start := NewState(c.alloc)
	end := NewState(c.alloc)

	start.AddEpsilon(left.start).AddEpsilon(right.start)
	left.end.AddEpsilon(end)
	right.end.AddEpsilon(end)

	return New(start, end)
}

// closure wires the zero-or-more loop: skip, enter, repeat, exit.
func (c *compiler) closure(inner *NFA) *NFA {
	start := NewState(c.alloc)
	end := NewState(c.alloc)

	start.AddEpsilon(end).AddEpsilon(inner.start)
	inner.end.AddEpsilon(inner.start).AddEpsilon(end)

	return New(start, end)
}
