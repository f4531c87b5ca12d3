package automaton

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// Test_Determinize_epsilonNFA covers the ε-NFA
// 3;A;{C};{a,b};A,&,B;B,a,B;B,b,C determinizing to a DFA whose initial
// state AB steps to B on a and C on b.
func Test_Determinize_epsilonNFA(t *testing.T) {
	nfa := New("A", []string{"C"}, []string{"a", "b"}, []Transition{
		{Source: "A", Symbol: "&", Dest: "B"},
		{Source: "B", Symbol: "a", Dest: "B"},
		{Source: "B", Symbol: "b", Dest: "C"},
	})

	dfa := Determinize(nfa)

	assert.Equal(t, "AB", dfa.Initial())
	assert.Equal(t, []string{"B"}, dfa.Step("AB", "a"))
	assert.Equal(t, []string{"C"}, dfa.Step("AB", "b"))
	assert.Equal(t, []string{"B"}, dfa.Step("B", "a"))
	assert.Equal(t, []string{"C"}, dfa.Step("B", "b"))
	assert.Equal(t, []string{"C"}, dfa.Finals())
}

func Test_Determinize_isIdempotentUpToLabel(t *testing.T) {
	nfa := New("A", []string{"C"}, []string{"a", "b"}, []Transition{
		{Source: "A", Symbol: "&", Dest: "B"},
		{Source: "B", Symbol: "a", Dest: "B"},
		{Source: "B", Symbol: "b", Dest: "C"},
	})

	once := Determinize(nfa)
	twice := Determinize(once)

	assert.ElementsMatch(t, once.States(), twice.States())
	assert.Equal(t, once.Initial(), twice.Initial())
}

func accepts(a Automaton, w string) bool {
	cur := a.Initial()
	for i := 0; i < len(w); i++ {
		next := a.Step(cur, string(w[i]))
		if len(next) == 0 {
			return false
		}
		cur = next[0]
	}
	return a.IsFinal(cur)
}

func Test_Determinize_preservesLanguage(t *testing.T) {
	nfa := New("A", []string{"C"}, []string{"a", "b"}, []Transition{
		{Source: "A", Symbol: "&", Dest: "B"},
		{Source: "B", Symbol: "a", Dest: "B"},
		{Source: "B", Symbol: "b", Dest: "C"},
	})
	dfa := Determinize(nfa)

	for _, w := range []string{"b", "ab", "aab", "a", "ba", ""} {
		assert.Equal(t, nfaAccepts(nfa, w), accepts(dfa, w), "input %q", w)
	}
}

// nfaAccepts is a brute-force NFA simulator used only to cross-check
// Determinize's output against the original nondeterministic language.
func nfaAccepts(a Automaton, w string) bool {
	cur := map[string]bool{}
	for _, q := range a.Reachable(a.Initial(), "&") {
		cur[q] = true
	}
	for i := 0; i < len(w); i++ {
		next := map[string]bool{}
		for q := range cur {
			for _, q2 := range a.Step(q, string(w[i])) {
				next[q2] = true
			}
		}
		closed := map[string]bool{}
		for q := range next {
			for _, q2 := range a.Reachable(q, "&") {
				closed[q2] = true
			}
		}
		cur = closed
	}
	for q := range cur {
		if a.IsFinal(q) {
			return true
		}
	}
	return false
}
