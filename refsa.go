// Package refsa compiles programmatically-built regex expressions into
// minimal deterministic finite automata and matches whole strings
// against them in linear time.
//
// The pipeline is the classical one:
//   - Thompson construction: expression tree → NFA (package nfa)
//   - Subset construction: NFA → DFA (nfa.Determinize)
//   - Partition refinement: DFA → minimal DFA (dfa.Minimize)
//
// Patterns are authored with package syntax; there is no textual
// pattern parser. Matching is anchored at both ends: IsMatched reports
// whether the whole input is in the pattern's language.
//
// Basic usage:
//
//	// ab(a|b)*ba
//	expr := syntax.Literal("ab").
//		And(syntax.Literal("a").Or(syntax.Literal("b")).Many()).
//		And(syntax.Literal("ba"))
//
//	m, err := refsa.FromRegex(expr)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	m.IsMatched("abaaabbba") // true
//	m.IsMatched("ab")        // false
//
// When the pattern has required literal factors, FromRegex also builds
// an Aho-Corasick prefilter that rejects inputs missing every factor
// before the DFA is consulted.
package refsa

import (
	"github.com/coregx/refsa/dfa"
	"github.com/coregx/refsa/fsa"
	"github.com/coregx/refsa/literal"
	"github.com/coregx/refsa/nfa"
	"github.com/coregx/refsa/prefilter"
	"github.com/coregx/refsa/syntax"
)

// Matcher decides whole-string membership against a minimized DFA.
//
// A Matcher is immutable after construction and safe for concurrent
// use from multiple goroutines.
type Matcher struct {
	dfa *dfa.DFA
	pre *prefilter.Prefilter
}

// FromRegex compiles an expression through the full pipeline:
// Thompson construction, subset construction, minimization. It also
// attaches a literal prefilter when the expression yields required
// factors.
//
// The only construction error is the empty literal pattern
// (nfa.ErrEmptyPattern); no partial Matcher is returned on error.
func FromRegex(expr *syntax.Expr) (*Matcher, error) {
	n, err := nfa.Compile(expr)
	if err != nil {
		return nil, err
	}

	m := FromNFA(n)
	m.pre = prefilter.FromSeq(literal.New(literal.DefaultConfig()).Required(expr))
	return m, nil
}

// FromNFA builds a Matcher from an already-constructed NFA. The NFA is
// determinized and minimized before use; matching against a
// non-minimized automaton is not a supported state.
func FromNFA(n *nfa.NFA) *Matcher {
	return FromDFA(n.Determinize())
}

// FromDFA builds a Matcher from an already-constructed DFA, minimizing
// it unconditionally first.
func FromDFA(d *dfa.DFA) *Matcher {
	return &Matcher{dfa: d.Minimize()}
}

// IsMatched reports whether input, in its entirety, is in the
// pattern's language. A symbol with no transition from the current
// state fails the match immediately; when the input is exhausted the
// result is the acceptance flag of the state reached. IsMatched never
// errors: every input has a defined boolean outcome.
func (m *Matcher) IsMatched(input string) bool {
	if m.pre != nil && !m.pre.IsMatch([]byte(input)) {
		return false
	}

	runes := []rune(input)
	symbols := make([]fsa.Symbol, len(runes))
	for i, r := range runes {
		symbols[i] = fsa.Char(r)
	}

	end, ok := m.dfa.EndOf(symbols)
	return ok && end.Accept()
}

// DFA returns the minimized automaton backing the matcher, for
// diagnostics such as dfa.Dump.
func (m *Matcher) DFA() *dfa.DFA {
	return m.dfa
}
