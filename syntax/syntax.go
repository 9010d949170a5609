// Package syntax defines the expression tree from which patterns are
// built programmatically.
//
// There is no textual pattern parser; callers compose expressions from
// the constructors and combinators below. The tree is a closed set of
// five operations, so the NFA compiler can case over it exhaustively.
//
// Example:
//
//	// ab(a|b)*ba
//	expr := syntax.Literal("ab").
//		And(syntax.Alternate(syntax.Literal("a"), syntax.Literal("b")).Many()).
//		And(syntax.Literal("ba"))
package syntax

import "strings"

// Op identifies the operation an Expr node performs.
type Op uint8

const (
	// OpLiteral matches the runes in Expr.Runes, in order.
	OpLiteral Op = iota

	// OpConcat matches Sub[0] followed by Sub[1].
	OpConcat

	// OpAlternate matches Sub[0] or Sub[1].
	OpAlternate

	// OpStar matches zero or more repetitions of Sub[0].
	OpStar

	// OpPlus matches one or more repetitions of Sub[0].
	OpPlus
)

// String returns a human-readable name for the operation.
func (op Op) String() string {
	switch op {
	case OpLiteral:
		return "Literal"
	case OpConcat:
		return "Concat"
	case OpAlternate:
		return "Alternate"
	case OpStar:
		return "Star"
	case OpPlus:
		return "Plus"
	default:
		return "Unknown"
	}
}

// Expr is one node of an expression tree.
//
// OpLiteral nodes carry Runes; OpConcat and OpAlternate carry two
// sub-expressions; OpStar and OpPlus carry one. Expressions are
// immutable once built and may be shared freely between parents: the
// compiler never mutates a tree, and every compilation allocates fresh
// automaton states.
type Expr struct {
	Op    Op
	Runes []rune
	Sub   []*Expr
}

// Literal returns an expression matching exactly s.
//
// The empty string is representable but not compilable; the NFA
// compiler rejects it with an invalid-pattern error.
func Literal(s string) *Expr {
	return &Expr{Op: OpLiteral, Runes: []rune(s)}
}

// Rune returns an expression matching exactly the one rune r.
func Rune(r rune) *Expr {
	return &Expr{Op: OpLiteral, Runes: []rune{r}}
}

// Concat returns an expression matching x followed by y.
func Concat(x, y *Expr) *Expr {
	return &Expr{Op: OpConcat, Sub: []*Expr{x, y}}
}

// Alternate returns an expression matching x or y.
func Alternate(x, y *Expr) *Expr {
	return &Expr{Op: OpAlternate, Sub: []*Expr{x, y}}
}

// Star returns an expression matching zero or more repetitions of x.
func Star(x *Expr) *Expr {
	return &Expr{Op: OpStar, Sub: []*Expr{x}}
}

// Plus returns an expression matching one or more repetitions of x.
func Plus(x *Expr) *Expr {
	return &Expr{Op: OpPlus, Sub: []*Expr{x}}
}

// And returns the concatenation of e and next.
func (e *Expr) And(next *Expr) *Expr {
	return Concat(e, next)
}

// Or returns the alternation of e and other.
func (e *Expr) Or(other *Expr) *Expr {
	return Alternate(e, other)
}

// Many returns the zero-or-more repetition of e.
func (e *Expr) Many() *Expr {
	return Star(e)
}

// Some returns the one-or-more repetition of e.
func (e *Expr) Some() *Expr {
	return Plus(e)
}

// String renders the expression in a conventional regex-like notation,
// for diagnostics and error messages only.
func (e *Expr) String() string {
	var b strings.Builder
	e.render(&b)
	return b.String()
}

func (e *Expr) render(b *strings.Builder) {
	switch e.Op {
	case OpLiteral:
		b.WriteString(string(e.Runes))
	case OpConcat:
		e.Sub[0].render(b)
		e.Sub[1].render(b)
	case OpAlternate:
		b.WriteByte('(')
		e.Sub[0].render(b)
		b.WriteByte('|')
		e.Sub[1].render(b)
		b.WriteByte(')')
	case OpStar:
		b.WriteByte('(')
		e.Sub[0].render(b)
		b.WriteString(")*")
	case OpPlus:
		b.WriteByte('(')
		e.Sub[0].render(b)
		b.WriteString(")+")
	}
}
