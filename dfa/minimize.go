package dfa

import (
	"sort"

	"github.com/coregx/refsa/fsa"
)

// stateSet and group implement the equivalence partition used by
// Minimize. A group is a set of disjoint state sets covering the
// reachable states, keyed canonically so sets can be looked up and
// replaced as refinement splits them.
type stateSet = fsa.StateSet[*State]

type group struct {
	blocks map[fsa.SetKey]*stateSet
}

func newGroup(blocks ...*stateSet) *group {
	g := &group{blocks: make(map[fsa.SetKey]*stateSet)}
	for _, b := range blocks {
		g.add(b)
	}
	return g
}

func (g *group) add(b *stateSet) {
	if !b.IsEmpty() {
		g.blocks[b.Key()] = b
	}
}

func (g *group) remove(b *stateSet) {
	delete(g.blocks, b.Key())
}

func (g *group) len() int {
	return len(g.blocks)
}

func (g *group) all() []*stateSet {
	sets := make([]*stateSet, 0, len(g.blocks))
	for _, b := range g.blocks {
		sets = append(sets, b)
	}
	return sets
}

// blockOf returns the block containing the state, or nil if the state
// is outside the partition's universe.
func (g *group) blockOf(state *State) *stateSet {
	for _, b := range g.blocks {
		if b.Contains(state) {
			return b
		}
	}
	return nil
}

// Minimize returns a new DFA recognizing the same language with the
// fewest reachable states possible.
//
// The algorithm is equivalence-partition refinement: start from the
// accepting / non-accepting split of the reachable states, then
// repeatedly resplit every block by transition signature until the
// number of blocks stops growing. Two states share a signature only if,
// for every symbol in the automaton's whole alphabet, their targets
// land in the same block of the previous partition — where "no
// transition" is its own distinguishable outcome. At the fixed point
// every block holds only language-equivalent states, and one
// representative state is manufactured per block.
func (d *DFA) Minimize() *DFA {
	states := d.States()
	g := divideByAcceptance(states)
	alphabet := sortedAlphabet(states)

	for {
		prev := g
		g = newGroup()
		for _, block := range prev.all() {
			for _, split := range divide(block, prev, alphabet) {
				g.add(split)
			}
		}
		if g.len() == prev.len() {
			break
		}
	}

	return d.merge(g)
}

// divideByAcceptance builds the initial two-block partition.
func divideByAcceptance(states *stateSet) *group {
	accepting := fsa.NewStateSet[*State]()
	rest := fsa.NewStateSet[*State]()
	for _, state := range states.States() {
		if state.accept {
			accepting.Insert(state)
		} else {
			rest.Insert(state)
		}
	}
	return newGroup(accepting, rest)
}

// sortedAlphabet returns the union of the states' symbols in a fixed
// order, so signatures are comparable across states.
func sortedAlphabet(states *stateSet) []fsa.Symbol {
	symbols := states.Alphabet()
	sort.Slice(symbols, func(i, j int) bool { return symbols[i].Rune() < symbols[j].Rune() })
	return symbols
}

// divide splits one block into sub-blocks of states that agree, symbol
// by symbol, on which block of the previous partition their targets
// fall into.
func divide(block *stateSet, prev *group, alphabet []fsa.Symbol) []*stateSet {
	bySignature := make(map[string]*stateSet)
	for _, state := range block.States() {
		sig := signature(state, prev, alphabet)
		sub, ok := bySignature[sig]
		if !ok {
			sub = fsa.NewStateSet[*State]()
			bySignature[sig] = sub
		}
		sub.Insert(state)
	}

	splits := make([]*stateSet, 0, len(bySignature))
	for _, sub := range bySignature {
		splits = append(splits, sub)
	}
	return splits
}

// signature encodes, per alphabet symbol, the canonical key of the
// block the state's target lands in, with "-" marking the absence of a
// transition.
func signature(state *State, prev *group, alphabet []fsa.Symbol) string {
	var sig []byte
	for _, sym := range alphabet {
		target, ok := state.Next(sym)
		if !ok {
			sig = append(sig, '-')
		} else {
			sig = append(sig, []byte(prev.blockOf(target).Key())...)
		}
		sig = append(sig, ';')
	}
	return string(sig)
}

// merge builds the minimized DFA: one representative state per block,
// accepting iff any member accepts (all members of a stable block
// agree), with every original transition redirected to the
// representative of its target's block.
func (d *DFA) merge(g *group) *DFA {
	alloc := fsa.NewAllocator()
	reps := make(map[fsa.SetKey]*State)

	repOfBlock := func(block *stateSet) *State {
		key := block.Key()
		rep, ok := reps[key]
		if !ok {
			accept := false
			for _, member := range block.States() {
				if member.accept {
					accept = true
					break
				}
			}
			rep = NewState(alloc, accept)
			reps[key] = rep
		}
		return rep
	}
	repOfState := func(state *State) *State {
		return repOfBlock(g.blockOf(state))
	}

	for _, block := range g.all() {
		rep := repOfBlock(block)
		for _, member := range block.States() {
			for sym, target := range member.transitions {
				rep.SetTransition(sym, repOfState(target))
			}
		}
	}

	return New(repOfState(d.start))
}
