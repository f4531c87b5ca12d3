package automaton

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// Test_Minimize_mergesEquivalentFinals covers two final states that
// behave identically merging into one, named with the lexicographically
// smaller label.
func Test_Minimize_mergesEquivalentFinals(t *testing.T) {
	dfa := New("q0", []string{"q1", "q2"}, []string{"a", "b"}, []Transition{
		{Source: "q0", Symbol: "a", Dest: "q1"},
		{Source: "q0", Symbol: "b", Dest: "q2"},
	})

	min := Minimize(dfa)

	assert.Equal(t, []string{"q1"}, min.Finals())
	assert.ElementsMatch(t, []string{"q0", "q1"}, min.States())
}

func Test_Minimize_prunesUnreachableAndDeadStates(t *testing.T) {
	dfa := New("A", []string{"C"}, []string{"a", "b"}, []Transition{
		{Source: "A", Symbol: "a", Dest: "C"},
		{Source: "A", Symbol: "b", Dest: "D"}, // D is a dead end, never reaches a final
		{Source: "E", Symbol: "a", Dest: "C"}, // E is unreachable from A
	})

	min := Minimize(dfa)

	assert.NotContains(t, min.States(), "D")
	assert.NotContains(t, min.States(), "E")
}

// Test_Minimize_doesNotMergeThroughPrunedDestination covers a live state
// whose edge on one symbol leads into a pruned dead-end state: that edge
// must be treated as absent (-1) during refinement, not as "class 0",
// otherwise it can collide with an unrelated state whose same-symbol edge
// legitimately lands in class 0 and the two get merged despite accepting
// different languages.
func Test_Minimize_doesNotMergeThroughPrunedDestination(t *testing.T) {
	dfa := New("S", []string{"C"}, []string{"a", "b"}, []Transition{
		{Source: "S", Symbol: "a", Dest: "B"},
		{Source: "S", Symbol: "b", Dest: "G"},
		{Source: "B", Symbol: "a", Dest: "D"}, // D is a dead end, never reaches a final
		{Source: "B", Symbol: "b", Dest: "C"},
		{Source: "G", Symbol: "a", Dest: "C"},
		{Source: "G", Symbol: "b", Dest: "C"},
		{Source: "D", Symbol: "a", Dest: "D"},
		{Source: "C", Symbol: "a", Dest: "C"},
		{Source: "C", Symbol: "b", Dest: "C"},
	})

	min := Minimize(dfa)

	for _, w := range []string{"a", "b", "ba", "aa", "bb"} {
		assert.Equal(t, accepts(dfa, w), accepts(min, w), "input %q", w)
	}
}

func Test_Minimize_isIdempotent(t *testing.T) {
	dfa := New("q0", []string{"q1", "q2"}, []string{"a", "b"}, []Transition{
		{Source: "q0", Symbol: "a", Dest: "q1"},
		{Source: "q0", Symbol: "b", Dest: "q2"},
		{Source: "q1", Symbol: "a", Dest: "q1"},
		{Source: "q1", Symbol: "b", Dest: "q1"},
		{Source: "q2", Symbol: "a", Dest: "q2"},
		{Source: "q2", Symbol: "b", Dest: "q2"},
	})

	once := Minimize(dfa)
	twice := Minimize(once)

	assert.ElementsMatch(t, once.States(), twice.States())
}

func Test_Minimize_preservesLanguage(t *testing.T) {
	dfa := New("q0", []string{"q3"}, []string{"a", "b"}, []Transition{
		{Source: "q0", Symbol: "a", Dest: "q1"},
		{Source: "q0", Symbol: "b", Dest: "q2"},
		{Source: "q1", Symbol: "a", Dest: "q1"},
		{Source: "q1", Symbol: "b", Dest: "q3"},
		{Source: "q2", Symbol: "a", Dest: "q2"},
		{Source: "q2", Symbol: "b", Dest: "q3"},
		{Source: "q3", Symbol: "a", Dest: "q3"},
		{Source: "q3", Symbol: "b", Dest: "q3"},
	})

	min := Minimize(dfa)

	for _, w := range []string{"", "a", "b", "ab", "ba", "aab", "abba"} {
		assert.Equal(t, accepts(dfa, w), accepts(min, w), "input %q", w)
	}
}
