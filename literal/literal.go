// Package literal extracts required literal factors from expression
// trees for prefilter optimization.
//
// A required factor set for an expression is a set of strings such
// that every string the expression accepts contains at least one of
// them as a substring. The matcher uses these factors to reject inputs
// quickly before walking the DFA: if none of the factors occurs, the
// automaton cannot accept.
//
// Extraction is best-effort and always sound: when an expression
// offers no usable factors (a bare closure, or a result over the
// configured limits), the extractor returns an empty Seq and the
// matcher simply runs without a prefilter.
package literal

import (
	"bytes"
	"sort"

	"github.com/coregx/refsa/syntax"
)

// Literal is one required factor.
type Literal struct {
	// Bytes contains the factor's byte sequence.
	Bytes []byte
}

// Len returns the length of the factor in bytes.
func (l Literal) Len() int {
	return len(l.Bytes)
}

// Seq is a set of alternative required factors: a string can only
// match the source expression if it contains at least one member.
// Members are deduplicated; order is not significant.
type Seq struct {
	lits []Literal
}

// NewSeq returns a Seq holding the given factors, deduplicated.
func NewSeq(lits ...Literal) *Seq {
	s := &Seq{}
	for _, l := range lits {
		s.Add(l)
	}
	return s
}

// Add inserts a factor unless an equal one is already present.
func (s *Seq) Add(lit Literal) {
	for _, have := range s.lits {
		if bytes.Equal(have.Bytes, lit.Bytes) {
			return
		}
	}
	s.lits = append(s.lits, lit)
}

// Len returns the number of factors.
func (s *Seq) Len() int {
	return len(s.lits)
}

// Get returns the i-th factor.
func (s *Seq) Get(i int) Literal {
	return s.lits[i]
}

// IsEmpty reports whether the Seq holds no factors.
func (s *Seq) IsEmpty() bool {
	return len(s.lits) == 0
}

// MinLen returns the length of the shortest factor, or 0 for an empty
// Seq. Longer minimum lengths make stronger prefilters.
func (s *Seq) MinLen() int {
	if len(s.lits) == 0 {
		return 0
	}
	min := s.lits[0].Len()
	for _, l := range s.lits[1:] {
		if l.Len() < min {
			min = l.Len()
		}
	}
	return min
}

// Strings returns the factors as sorted strings, for tests and
// diagnostics.
func (s *Seq) Strings() []string {
	out := make([]string, len(s.lits))
	for i, l := range s.lits {
		out[i] = string(l.Bytes)
	}
	sort.Strings(out)
	return out
}

// Config bounds extraction.
//
// Limits keep pathological patterns (wide alternation towers) from
// producing oversized factor sets; over-limit results collapse to an
// empty Seq rather than an unsound partial one.
type Config struct {
	// MaxLiterals limits the number of factors in a Seq. Default: 64.
	MaxLiterals int

	// MaxLiteralLen limits the byte length of each factor. Default: 64.
	MaxLiteralLen int
}

// DefaultConfig returns the default extraction limits.
func DefaultConfig() Config {
	return Config{
		MaxLiterals:   64,
		MaxLiteralLen: 64,
	}
}

// Extractor computes required factor sets from expression trees.
type Extractor struct {
	config Config
}

// New creates an Extractor with the given configuration.
func New(config Config) *Extractor {
	return &Extractor{config: config}
}

// Required returns the required factor set of expr.
//
// Rules, per operation:
//   - Literal: the string itself.
//   - Concat: a factor required by either side is required by the
//     whole, so take the stronger side (greater minimum length).
//   - Alternate: a matching string satisfies one branch or the other,
//     so the union — and only if both branches produced factors.
//   - Star: zero repetitions are allowed; nothing is required.
//   - Plus: at least one repetition, so the sub-expression's factors.
func (e *Extractor) Required(expr *syntax.Expr) *Seq {
	return e.enforce(e.required(expr))
}

func (e *Extractor) required(expr *syntax.Expr) *Seq {
	switch expr.Op {
	case syntax.OpLiteral:
		if len(expr.Runes) == 0 {
			return NewSeq()
		}
		return NewSeq(Literal{Bytes: []byte(string(expr.Runes))})

	case syntax.OpConcat:
		left := e.required(expr.Sub[0])
		right := e.required(expr.Sub[1])
		if left.IsEmpty() {
			return right
		}
		if right.IsEmpty() {
			return left
		}
		if right.MinLen() > left.MinLen() {
			return right
		}
		return left

	case syntax.OpAlternate:
		left := e.required(expr.Sub[0])
		right := e.required(expr.Sub[1])
		if left.IsEmpty() || right.IsEmpty() {
			return NewSeq()
		}
		union := NewSeq(left.lits...)
		for _, l := range right.lits {
			union.Add(l)
		}
		return union

	case syntax.OpStar:
		return NewSeq()

	case syntax.OpPlus:
		return e.required(expr.Sub[0])

	default:
		return NewSeq()
	}
}

// enforce applies the configured limits; any violation disables the
// prefilter entirely.
func (e *Extractor) enforce(seq *Seq) *Seq {
	if seq.Len() > e.config.MaxLiterals {
		return NewSeq()
	}
	for _, l := range seq.lits {
		if l.Len() > e.config.MaxLiteralLen {
			return NewSeq()
		}
	}
	return seq
}
