// Package dfa implements the deterministic finite automaton: a shared
// state graph with at most one transition per symbol per state, a
// per-state acceptance flag, and partition-refinement minimization.
//
// A DFA is defined entirely by its start state; the automaton is the
// closure of states reachable from it. DFAs are produced by subset
// construction (package nfa) and consumed by the matcher after
// minimization.
package dfa

import (
	"fmt"
	"sort"
	"strings"

	"github.com/coregx/refsa/fsa"
)

// State is a single DFA state: at most one target per symbol, plus an
// acceptance flag. States are shared pointers and may participate in
// cycles; identity is the StateID.
type State struct {
	id          fsa.StateID
	transitions map[fsa.Symbol]*State
	accept      bool
}

// NewState allocates a state from alloc.
func NewState(alloc *fsa.Allocator, accept bool) *State {
	return &State{
		id:          alloc.Next(),
		transitions: make(map[fsa.Symbol]*State),
		accept:      accept,
	}
}

// ID returns the state's unique identifier.
func (s *State) ID() fsa.StateID {
	return s.id
}

// Accept reports whether the state is accepting.
func (s *State) Accept() bool {
	return s.accept
}

// Alphabet returns every symbol the state transitions on.
// Epsilon never appears; DFA transitions always consume input.
func (s *State) Alphabet() []fsa.Symbol {
	symbols := make([]fsa.Symbol, 0, len(s.transitions))
	for sym := range s.transitions {
		symbols = append(symbols, sym)
	}
	return symbols
}

// SetTransition sets the target for sym, replacing any previous target.
// Determinism is structural: there is one map slot per symbol.
func (s *State) SetTransition(sym fsa.Symbol, target *State) {
	s.transitions[sym] = target
}

// Next returns the target state for sym, if any.
func (s *State) Next(sym fsa.Symbol) (*State, bool) {
	target, ok := s.transitions[sym]
	return target, ok
}

// DFA is a deterministic automaton rooted at its start state.
type DFA struct {
	start *State
}

// New returns a DFA with the given start state.
func New(start *State) *DFA {
	return &DFA{start: start}
}

// Start returns the start state.
func (d *DFA) Start() *State {
	return d.start
}

// EndOf walks the automaton over symbols from the start state.
// It returns the final state reached, or (nil, false) as soon as a
// symbol has no transition from the current state. A missing
// transition is a failed match, not an error.
func (d *DFA) EndOf(symbols []fsa.Symbol) (*State, bool) {
	state := d.start
	for _, sym := range symbols {
		next, ok := state.Next(sym)
		if !ok {
			return nil, false
		}
		state = next
	}
	return state, true
}

// States returns every state reachable from the start, including the
// start itself. There is no separate authoritative state list; the
// automaton is whatever this traversal finds.
func (d *DFA) States() *fsa.StateSet[*State] {
	set := fsa.NewStateSet[*State]()
	queue := []*State{d.start}
	for len(queue) > 0 {
		state := queue[0]
		queue = queue[1:]
		if set.Contains(state) {
			continue
		}
		set.Insert(state)
		for _, target := range state.transitions {
			queue = append(queue, target)
		}
	}
	return set
}

// Dump returns the transition relation, one line per transition, with
// accepting states rendered as [id] and non-accepting as (id). Lines
// are sorted so the output is stable across runs. Diagnostics only.
func (d *DFA) Dump() string {
	stateStr := func(s *State) string {
		if s.accept {
			return fmt.Sprintf("[%d]", s.id)
		}
		return fmt.Sprintf("(%d)", s.id)
	}

	var lines []string
	for _, state := range d.States().States() {
		for sym, target := range state.transitions {
			lines = append(lines, fmt.Sprintf("[%s, %s] = %s", stateStr(state), sym, stateStr(target)))
		}
	}
	sort.Strings(lines)
	return strings.Join(lines, "\n")
}
