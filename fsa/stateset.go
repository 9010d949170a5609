package fsa

import (
	"sort"
	"strconv"
	"strings"
)

// SetKey is the canonical, order-independent key of a StateSet: the
// sorted member ids joined into a comparable string. Two sets with the
// same member identities have the same key regardless of insertion
// order or of which node instance represents a given id.
type SetKey string

// StateSet is a set of shared state nodes keyed by their StateIDs.
// Inserting a second node with an id already present replaces the
// existing entry; membership is identity-based, never pointer-based.
type StateSet[S State] struct {
	members map[StateID]S
}

// NewStateSet returns an empty set.
func NewStateSet[S State]() *StateSet[S] {
	return &StateSet[S]{members: make(map[StateID]S)}
}

// SingletonStateSet returns a set holding exactly one state.
func SingletonStateSet[S State](state S) *StateSet[S] {
	set := NewStateSet[S]()
	set.Insert(state)
	return set
}

// Insert adds a state to the set.
func (s *StateSet[S]) Insert(state S) {
	s.members[state.ID()] = state
}

// Extend adds every given state to the set.
func (s *StateSet[S]) Extend(states []S) {
	for _, st := range states {
		s.Insert(st)
	}
}

// Contains reports whether a state with the same identity is a member.
func (s *StateSet[S]) Contains(state S) bool {
	return s.ContainsID(state.ID())
}

// ContainsID reports whether the id identifies a member.
func (s *StateSet[S]) ContainsID(id StateID) bool {
	_, ok := s.members[id]
	return ok
}

// Len returns the number of members.
func (s *StateSet[S]) Len() int {
	return len(s.members)
}

// IsEmpty reports whether the set has no members.
func (s *StateSet[S]) IsEmpty() bool {
	return len(s.members) == 0
}

// States returns a snapshot of the members in unspecified order.
func (s *StateSet[S]) States() []S {
	states := make([]S, 0, len(s.members))
	for _, st := range s.members {
		states = append(states, st)
	}
	return states
}

// Alphabet returns the union of the members' non-epsilon symbols.
func (s *StateSet[S]) Alphabet() []Symbol {
	seen := make(map[Symbol]struct{})
	for _, st := range s.members {
		for _, sym := range st.Alphabet() {
			if sym.IsEpsilon() {
				continue
			}
			seen[sym] = struct{}{}
		}
	}
	symbols := make([]Symbol, 0, len(seen))
	for sym := range seen {
		symbols = append(symbols, sym)
	}
	return symbols
}

// SortedIDs returns the member ids in ascending order.
func (s *StateSet[S]) SortedIDs() []StateID {
	ids := make([]StateID, 0, len(s.members))
	for id := range s.members {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// Key returns the canonical key for use in set-keyed maps.
func (s *StateSet[S]) Key() SetKey {
	ids := s.SortedIDs()
	var b strings.Builder
	for i, id := range ids {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.FormatUint(uint64(id), 10))
	}
	return SetKey(b.String())
}
