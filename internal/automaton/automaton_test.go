package automaton

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_New_derivesStatesAndFiltersEpsilonFromAlphabet(t *testing.T) {
	a := New("A", []string{"C"}, []string{"a", "b", "&"}, []Transition{
		{Source: "A", Symbol: "&", Dest: "B"},
		{Source: "B", Symbol: "a", Dest: "B"},
		{Source: "B", Symbol: "b", Dest: "C"},
	})

	assert.Equal(t, []string{"A", "B", "C"}, a.States())
	assert.Equal(t, []string{"a", "b"}, a.Alphabet())
	assert.Equal(t, []string{"C"}, a.Finals())
	assert.True(t, a.IsFinal("C"))
	assert.False(t, a.IsFinal("B"))
}

func Test_Step_returnsEmptyForMissingTransition(t *testing.T) {
	a := New("A", nil, []string{"a"}, nil)
	assert.Empty(t, a.Step("A", "a"))
}

func Test_IterTransitions_canonicalOrder(t *testing.T) {
	a := New("A", []string{"A"}, []string{"a", "b"}, []Transition{
		{Source: "B", Symbol: "a", Dest: "A"},
		{Source: "A", Symbol: "b", Dest: "B"},
		{Source: "A", Symbol: "a", Dest: "C"},
		{Source: "A", Symbol: "a", Dest: "B"},
	})

	got := a.IterTransitions()
	want := []Transition{
		{Source: "A", Symbol: "a", Dest: "B"},
		{Source: "A", Symbol: "a", Dest: "C"},
		{Source: "A", Symbol: "b", Dest: "B"},
		{Source: "B", Symbol: "a", Dest: "A"},
	}
	assert.Equal(t, want, got)
}

func Test_Reachable_defaultSweepExcludesEpsilon(t *testing.T) {
	a := New("A", nil, []string{"a"}, []Transition{
		{Source: "A", Symbol: "&", Dest: "B"},
		{Source: "B", Symbol: "a", Dest: "C"},
	})

	assert.Equal(t, []string{"A"}, a.Reachable("A"))
	assert.Equal(t, []string{"A", "B"}, a.Reachable("A", "&"))
}

func Test_Productive_onlyStatesThatReachAFinal(t *testing.T) {
	a := New("A", []string{"C"}, []string{"a"}, []Transition{
		{Source: "A", Symbol: "a", Dest: "B"},
		{Source: "B", Symbol: "a", Dest: "C"},
		{Source: "A", Symbol: "a", Dest: "D"}, // D is a dead end
	})

	assert.Equal(t, []string{"A", "B", "C"}, a.Productive())
}
