package refsa

import (
	"errors"
	"testing"

	"github.com/coregx/refsa/nfa"
	"github.com/coregx/refsa/syntax"
)

func mustMatcher(t *testing.T, expr *syntax.Expr) *Matcher {
	t.Helper()
	m, err := FromRegex(expr)
	if err != nil {
		t.Fatalf("FromRegex(%s) failed: %v", expr, err)
	}
	return m
}

func allStrings(alphabet string, max int) []string {
	out := []string{""}
	frontier := []string{""}
	for i := 0; i < max; i++ {
		var next []string
		for _, s := range frontier {
			for _, r := range alphabet {
				next = append(next, s+string(r))
			}
		}
		out = append(out, next...)
		frontier = next
	}
	return out
}

// TestMatcher_Scenario tests the ab(a|b)*ba walkthrough end to end
func TestMatcher_Scenario(t *testing.T) {
	expr := syntax.Literal("ab").
		And(syntax.Literal("a").Or(syntax.Literal("b")).Many()).
		And(syntax.Literal("ba"))
	m := mustMatcher(t, expr)

	tests := []struct {
		input string
		want  bool
	}{
		{"abaaabbba", true},
		{"ab", false}, // missing trailing ba
		{"abba", true},
		{"abbba", true},
		{"", false},
		{"ba", false},
		{"abab", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := m.IsMatched(tt.input); got != tt.want {
				t.Errorf("IsMatched(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

// TestMatcher_OneOrMore tests the a+ scenario
func TestMatcher_OneOrMore(t *testing.T) {
	m := mustMatcher(t, syntax.Literal("a").Some())

	tests := []struct {
		input string
		want  bool
	}{
		{"", false},
		{"a", true},
		{"aaaa", true},
		{"b", false},
	}
	for _, tt := range tests {
		if got := m.IsMatched(tt.input); got != tt.want {
			t.Errorf("IsMatched(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

// TestMatcher_SingleChar tests that one character accepts exactly itself
func TestMatcher_SingleChar(t *testing.T) {
	m := mustMatcher(t, syntax.Rune('c'))
	if !m.IsMatched("c") {
		t.Error(`IsMatched("c") = false`)
	}
	for _, input := range []string{"", "b", "cc", "cb"} {
		if m.IsMatched(input) {
			t.Errorf("IsMatched(%q) = true", input)
		}
	}
}

// TestMatcher_LanguageProperties tests the concatenation, alternation
// and closure laws over bounded string enumerations
func TestMatcher_LanguageProperties(t *testing.T) {
	p := syntax.Literal("ab")
	q := syntax.Literal("a").Or(syntax.Literal("bb"))

	mp := mustMatcher(t, p)
	mq := mustMatcher(t, q)
	inputs := allStrings("ab", 6)

	t.Run("concatenation splits", func(t *testing.T) {
		m := mustMatcher(t, p.And(q))
		for _, s := range inputs {
			want := false
			for i := 0; i <= len(s); i++ {
				if mp.IsMatched(s[:i]) && mq.IsMatched(s[i:]) {
					want = true
					break
				}
			}
			if got := m.IsMatched(s); got != want {
				t.Errorf("PQ on %q = %v, want %v", s, got, want)
			}
		}
	})

	t.Run("alternation unions", func(t *testing.T) {
		m := mustMatcher(t, p.Or(q))
		for _, s := range inputs {
			want := mp.IsMatched(s) || mq.IsMatched(s)
			if got := m.IsMatched(s); got != want {
				t.Errorf("P|Q on %q = %v, want %v", s, got, want)
			}
		}
	})

	t.Run("closure pumps", func(t *testing.T) {
		m := mustMatcher(t, syntax.Star(p))
		if !m.IsMatched("") {
			t.Error("closure rejects the empty string")
		}
		pumped := ""
		for n := 1; n <= 4; n++ {
			pumped += "ab"
			if !m.IsMatched(pumped) {
				t.Errorf("closure rejects %d repetitions", n)
			}
		}
		for _, s := range []string{"a", "aba", "ba", "abb"} {
			if m.IsMatched(s) {
				t.Errorf("closure accepts %q", s)
			}
		}
	})
}

// TestMatcher_MinimizationUnconditional tests that every entry point
// stores a minimized automaton and that minimization is idempotent
func TestMatcher_MinimizationUnconditional(t *testing.T) {
	expr := syntax.Literal("ab").Or(syntax.Literal("ba")).Some()

	n, err := nfa.Compile(expr)
	if err != nil {
		t.Fatal(err)
	}

	viaRegex := mustMatcher(t, expr)
	viaNFA := FromNFA(n)
	viaDFA := FromDFA(n.Determinize())

	want := viaRegex.DFA().States().Len()
	if got := viaNFA.DFA().States().Len(); got != want {
		t.Errorf("FromNFA states = %d, FromRegex states = %d", got, want)
	}
	if got := viaDFA.DFA().States().Len(); got != want {
		t.Errorf("FromDFA states = %d, FromRegex states = %d", got, want)
	}

	// Re-minimizing the stored automaton must not shrink it further.
	if again := viaRegex.DFA().Minimize().States().Len(); again != want {
		t.Errorf("minimize(minimize(D)) states = %d, want %d", again, want)
	}

	// All entry points agree on the language.
	for _, s := range allStrings("ab", 5) {
		a, b, c := viaRegex.IsMatched(s), viaNFA.IsMatched(s), viaDFA.IsMatched(s)
		if a != b || b != c {
			t.Errorf("entry points disagree on %q: %v %v %v", s, a, b, c)
		}
	}
}

// TestMatcher_MinimizationPreservesLanguage tests pre- vs
// post-minimization agreement for every bounded input
func TestMatcher_MinimizationPreservesLanguage(t *testing.T) {
	exprs := []*syntax.Expr{
		syntax.Literal("ab").And(syntax.Literal("a").Or(syntax.Literal("b")).Many()).And(syntax.Literal("ba")),
		syntax.Literal("a").Some().Or(syntax.Literal("b").Some()),
		syntax.Literal("aa").Or(syntax.Literal("ab")).Many(),
	}

	inputs := allStrings("ab", 6)
	for _, expr := range exprs {
		t.Run(expr.String(), func(t *testing.T) {
			n, err := nfa.Compile(expr)
			if err != nil {
				t.Fatal(err)
			}
			raw := n.Determinize()
			min := raw.Minimize()

			for _, s := range inputs {
				if got, want := (&Matcher{dfa: min}).IsMatched(s), (&Matcher{dfa: raw}).IsMatched(s); got != want {
					t.Errorf("input %q: minimized = %v, raw = %v", s, got, want)
				}
			}
			if min.States().Len() > raw.States().Len() {
				t.Error("minimization grew the automaton")
			}
		})
	}
}

// TestFromRegex_EmptyPattern tests the invalid-pattern condition
func TestFromRegex_EmptyPattern(t *testing.T) {
	m, err := FromRegex(syntax.Literal(""))
	if err == nil {
		t.Fatal("FromRegex(empty literal) succeeded")
	}
	if m != nil {
		t.Error("FromRegex returned a partial Matcher alongside the error")
	}
	if !errors.Is(err, nfa.ErrEmptyPattern) {
		t.Errorf("error = %v, want nfa.ErrEmptyPattern", err)
	}
}

// TestMatcher_PrefilterSoundness tests that the quick-reject stage
// never flips a true match to false
func TestMatcher_PrefilterSoundness(t *testing.T) {
	exprs := []*syntax.Expr{
		syntax.Literal("ab").And(syntax.Literal("a").Or(syntax.Literal("b")).Many()).And(syntax.Literal("ba")),
		syntax.Literal("aa").Or(syntax.Literal("bb")),
		syntax.Literal("a").Many().And(syntax.Literal("b")),
		syntax.Literal("ab").Some(),
	}

	inputs := allStrings("ab", 6)
	for _, expr := range exprs {
		t.Run(expr.String(), func(t *testing.T) {
			withPre := mustMatcher(t, expr)
			n, err := nfa.Compile(expr)
			if err != nil {
				t.Fatal(err)
			}
			withoutPre := FromNFA(n) // no expression, no prefilter

			for _, s := range inputs {
				if got, want := withPre.IsMatched(s), withoutPre.IsMatched(s); got != want {
					t.Errorf("input %q: with prefilter = %v, without = %v", s, got, want)
				}
			}
		})
	}
}

// TestMatcher_Unicode tests rune-level symbols beyond ASCII
func TestMatcher_Unicode(t *testing.T) {
	m := mustMatcher(t, syntax.Literal("дa").Or(syntax.Literal("дb")))
	for input, want := range map[string]bool{
		"дa": true,
		"дb": true,
		"д":  false,
		"a":  false,
		"":   false,
	} {
		if got := m.IsMatched(input); got != want {
			t.Errorf("IsMatched(%q) = %v, want %v", input, got, want)
		}
	}
}
