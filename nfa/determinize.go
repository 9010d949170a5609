package nfa

import (
	"github.com/coregx/refsa/dfa"
	"github.com/coregx/refsa/fsa"
)

// Determinize converts the NFA into an equivalent DFA by subset
// construction.
//
// The epsilon-closure of {start} backs the DFA start state. A worklist
// then processes each discovered set: for every symbol in the set's
// alphabet, move then epsilon-closure yields the successor set. An
// empty successor means no transition (a failed match at simulation
// time, not an error). Sets are identified by their canonical key, so
// each distinct set is materialized and enqueued exactly once; the
// construction terminates after at most 2^|NFA states| sets, and only
// reachable ones are ever built. A DFA state accepts iff its backing
// set contains the NFA's designated end state.
func (n *NFA) Determinize() *dfa.DFA {
	alloc := fsa.NewAllocator()
	endID := n.end.ID()

	newDFAState := func(set *stateSet) *dfa.State {
		return dfa.NewState(alloc, set.ContainsID(endID))
	}

	start := epsilonClosure(fsa.SingletonStateSet(n.start))
	dfaStart := newDFAState(start)

	states := map[fsa.SetKey]*dfa.State{start.Key(): dfaStart}
	queue := []*stateSet{start}

	for len(queue) > 0 {
		set := queue[0]
		queue = queue[1:]
		from := states[set.Key()]

		for _, sym := range set.Alphabet() {
			next := epsilonClosure(move(set, sym))
			if next.IsEmpty() {
				continue
			}

			key := next.Key()
			target, ok := states[key]
			if !ok {
				target = newDFAState(next)
				states[key] = target
				queue = append(queue, next)
			}
			from.SetTransition(sym, target)
		}
	}

	return dfa.New(dfaStart)
}
