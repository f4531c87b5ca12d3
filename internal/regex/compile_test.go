package regex

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func simulate(t *testing.T, r, w string) bool {
	t.Helper()
	dfa, err := Compile(r)
	assert.NoError(t, err)

	cur := dfa.Initial()
	for i := 0; i < len(w); i++ {
		next := dfa.Step(cur, string(w[i]))
		if len(next) == 0 {
			return false
		}
		cur = next[0]
	}
	return dfa.IsFinal(cur)
}

// Test_Compile_abStarAbb covers (a|b)*abb compiling to a
// 4-state DFA over {a,b} with exactly one final state, reached after abb.
func Test_Compile_abStarAbb(t *testing.T) {
	dfa, err := Compile("(a|b)*abb")
	assert.NoError(t, err)

	assert.Equal(t, []string{"a", "b"}, dfa.Alphabet())
	assert.Len(t, dfa.States(), 4)
	assert.Len(t, dfa.Finals(), 1)

	assert.True(t, simulate(t, "(a|b)*abb", "abb"))
	assert.True(t, simulate(t, "(a|b)*abb", "aaabb"))
	assert.True(t, simulate(t, "(a|b)*abb", "babbabb"))
	assert.False(t, simulate(t, "(a|b)*abb", "ab"))
	assert.False(t, simulate(t, "(a|b)*abb", "abba"))
}

// Test_Compile_epsilonOnly covers a case where the DFA's initial state is
// also final, and the alphabet is empty.
func Test_Compile_epsilonOnly(t *testing.T) {
	dfa, err := Compile("&")
	assert.NoError(t, err)

	assert.Empty(t, dfa.Alphabet())
	assert.True(t, dfa.IsFinal(dfa.Initial()))
}

func Test_Compile_roundTripsAgainstHandSimulation(t *testing.T) {
	cases := []struct {
		re     string
		accept []string
		reject []string
	}{
		{re: "a*b", accept: []string{"b", "ab", "aaab"}, reject: []string{"", "a", "ba"}},
		{re: "a|b", accept: []string{"a", "b"}, reject: []string{"", "ab", "c"}},
		{re: "(ab)*", accept: []string{"", "ab", "abab"}, reject: []string{"a", "aba"}},
	}

	for _, c := range cases {
		for _, w := range c.accept {
			assert.True(t, simulate(t, c.re, w), "regex %q should accept %q", c.re, w)
		}
		for _, w := range c.reject {
			assert.False(t, simulate(t, c.re, w), "regex %q should reject %q", c.re, w)
		}
	}
}
