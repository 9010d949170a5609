// Package fsa provides the shared primitives of the automaton pipeline:
// input symbols, state identity, and canonical state sets.
//
// Both the NFA and DFA packages build their state graphs on these types.
// State nodes are shared pointers and may form cycles (closure loops,
// diamond references from subset construction); identity lives in the
// StateID, never in the pointer.
package fsa

// Symbol is one element of the input alphabet, or the distinguished
// epsilon (no-input) marker. Symbols are comparable and may be used as
// map keys directly.
type Symbol struct {
	r   rune
	eps bool
}

// Epsilon is the no-input symbol. It appears only on NFA transitions;
// it is never part of a DFA's alphabet.
var Epsilon = Symbol{eps: true}

// Char returns the symbol for a single input rune.
func Char(r rune) Symbol {
	return Symbol{r: r}
}

// IsEpsilon reports whether s is the epsilon symbol.
func (s Symbol) IsEpsilon() bool {
	return s.eps
}

// Rune returns the rune carried by a non-epsilon symbol.
// Returns 0 for epsilon.
func (s Symbol) Rune() rune {
	if s.eps {
		return 0
	}
	return s.r
}

// String returns "ε" for epsilon, otherwise the symbol's rune.
func (s Symbol) String() string {
	if s.eps {
		return "ε"
	}
	return string(s.r)
}

// StateID uniquely identifies a state within one construction context.
// IDs are used only for identity comparison, ordering (canonical set
// keys), and hashing; they carry no automaton-kind information, and ids
// from different automata are never compared to each other.
type StateID uint32

// Allocator hands out monotonically increasing StateIDs. Each
// construction pass (compile, determinize, minimize) owns its own
// allocator, so ids are deterministic per automaton and tests do not
// depend on process-global state.
type Allocator struct {
	next StateID
}

// NewAllocator returns an allocator whose first id is 0.
func NewAllocator() *Allocator {
	return &Allocator{}
}

// Next returns a fresh id.
func (a *Allocator) Next() StateID {
	id := a.next
	a.next++
	return id
}

// State is the capability shared by NFA and DFA state nodes.
type State interface {
	// ID returns the state's unique identifier.
	ID() StateID

	// Alphabet returns every symbol the state has a transition on,
	// including epsilon for NFA states.
	Alphabet() []Symbol
}
