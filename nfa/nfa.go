package nfa

import (
	"fmt"
	"sort"
	"strings"

	"github.com/coregx/refsa/fsa"
)

// State is a single NFA state. A symbol (including epsilon) may have
// any number of targets; targets are kept in insertion order, but
// nothing observes that order — closure and move treat them as a set.
// States are shared pointers and routinely form cycles (closure loops).
type State struct {
	id          fsa.StateID
	transitions map[fsa.Symbol][]*State
}

// NewState allocates a state from alloc.
func NewState(alloc *fsa.Allocator) *State {
	return &State{
		id:          alloc.Next(),
		transitions: make(map[fsa.Symbol][]*State),
	}
}

// ID returns the state's unique identifier.
func (s *State) ID() fsa.StateID {
	return s.id
}

// Alphabet returns every symbol the state has a transition on,
// including epsilon.
func (s *State) Alphabet() []fsa.Symbol {
	symbols := make([]fsa.Symbol, 0, len(s.transitions))
	for sym := range s.transitions {
		symbols = append(symbols, sym)
	}
	return symbols
}

// AddTransition appends a target for sym.
func (s *State) AddTransition(sym fsa.Symbol, target *State) *State {
	s.transitions[sym] = append(s.transitions[sym], target)
	return s
}

// AddEpsilon appends an epsilon transition to target.
func (s *State) AddEpsilon(target *State) *State {
	return s.AddTransition(fsa.Epsilon, target)
}

// Next returns the targets reachable from s on sym.
func (s *State) Next(sym fsa.Symbol) []*State {
	return s.transitions[sym]
}

// NFA is a Thompson fragment: exactly one start state and one end
// state, wired internally. The end state carries no acceptance flag;
// "accepting" means "is the designated end".
type NFA struct {
	start *State
	end   *State
}

// New returns an NFA with the given start and end states.
func New(start, end *State) *NFA {
	return &NFA{start: start, end: end}
}

// Start returns the start state.
func (n *NFA) Start() *State {
	return n.start
}

// End returns the designated end state.
func (n *NFA) End() *State {
	return n.end
}

type stateSet = fsa.StateSet[*State]

// move returns the states reachable from any member of set via sym.
func move(set *stateSet, sym fsa.Symbol) *stateSet {
	out := fsa.NewStateSet[*State]()
	for _, state := range set.States() {
		out.Extend(state.Next(sym))
	}
	return out
}

// epsilonClosure returns the states reachable from set through epsilon
// transitions alone, including the members themselves. Worklist with a
// visited-set fixed point; cycles terminate because each state is
// expanded once.
func epsilonClosure(set *stateSet) *stateSet {
	out := fsa.NewStateSet[*State]()
	queue := set.States()
	for len(queue) > 0 {
		state := queue[0]
		queue = queue[1:]
		if out.Contains(state) {
			continue
		}
		out.Insert(state)
		queue = append(queue, state.Next(fsa.Epsilon)...)
	}
	return out
}

// Dump returns the transition relation, one line per transition in the
// form "[id, sym] = id", sorted for stable output. Diagnostics only.
func (n *NFA) Dump() string {
	seen := fsa.NewStateSet[*State]()
	queue := []*State{n.start}
	var lines []string
	for len(queue) > 0 {
		state := queue[0]
		queue = queue[1:]
		if seen.Contains(state) {
			continue
		}
		seen.Insert(state)
		for sym, targets := range state.transitions {
			for _, target := range targets {
				queue = append(queue, target)
				lines = append(lines, fmt.Sprintf("[%d, %s] = %d", state.id, sym, target.id))
			}
		}
	}
	sort.Strings(lines)
	return strings.Join(lines, "\n")
}
