// Package prefilter implements a quick-reject stage in front of the
// DFA walk.
//
// A Prefilter is an Aho-Corasick automaton over the pattern's required
// literal factors (package literal). An input containing none of the
// factors cannot be accepted by the pattern, so the matcher answers
// false without touching the DFA. The prefilter is purely an
// optimization: it never affects which strings match.
package prefilter

import (
	"github.com/coregx/ahocorasick"

	"github.com/coregx/refsa/literal"
)

// Prefilter answers "can this input possibly match?" in one multi-
// pattern scan.
type Prefilter struct {
	ac *ahocorasick.Automaton
}

// FromSeq builds a Prefilter from a required factor set. It returns
// nil when the Seq is empty or the automaton cannot be built; a nil
// Prefilter means "no quick reject available", never an error.
func FromSeq(seq *literal.Seq) *Prefilter {
	if seq == nil || seq.IsEmpty() {
		return nil
	}

	builder := ahocorasick.NewBuilder()
	for i := 0; i < seq.Len(); i++ {
		builder.AddPattern(seq.Get(i).Bytes)
	}
	auto, err := builder.Build()
	if err != nil {
		return nil
	}
	return &Prefilter{ac: auto}
}

// IsMatch reports whether any required factor occurs in haystack.
// False proves the full pattern cannot match haystack.
func (p *Prefilter) IsMatch(haystack []byte) bool {
	return p.ac.IsMatch(haystack)
}
