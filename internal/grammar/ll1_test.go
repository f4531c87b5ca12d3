package grammar

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_BuildLL1Table_simpleGrammar(t *testing.T) {
	g := buildGrammar(t,
		[2]string{"S", "AB"},
		[2]string{"A", "aA"},
		[2]string{"A", "&"},
		[2]string{"B", "b"},
	)

	table, err := BuildLL1Table(g)
	assert.NoError(t, err)

	i, ok := table.Get("S", "a")
	assert.True(t, ok)
	assert.Equal(t, 1, i)

	i, ok = table.Get("A", "a")
	assert.True(t, ok)
	assert.Equal(t, 2, i)

	i, ok = table.Get("A", "b")
	assert.True(t, ok)
	assert.Equal(t, 3, i) // A -> epsilon selected via FOLLOW(A) = {b}

	_, ok = table.Get("A", "$")
	assert.False(t, ok)
}

func Test_BuildLL1Table_rejectsLeftRecursion(t *testing.T) {
	g := New()
	g.AddProduction("E", Production{"E", "+", "T"})
	g.AddProduction("E", Production{"T"})
	g.AddProduction("T", Production{"i"})

	_, err := BuildLL1Table(g)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "E")
}

func Test_BuildLL1Table_rejectsLeftAmbiguity(t *testing.T) {
	g := New()
	g.AddProduction("A", Production{"a", "B"})
	g.AddProduction("A", Production{"a", "C"})
	g.AddProduction("B", Production{"b"})
	g.AddProduction("C", Production{"c"})

	_, err := BuildLL1Table(g)
	assert.Error(t, err)
}

func Test_LL1Table_terminalsSortAlphaBeforeDollar(t *testing.T) {
	// S -> & is selected via FOLLOW(S) = {b, $}, so "$" is a column.
	g := buildGrammar(t,
		[2]string{"S", "aSb"},
		[2]string{"S", "&"},
	)
	table, err := BuildLL1Table(g)
	assert.NoError(t, err)

	terms := table.Terminals()
	assert.NotEmpty(t, terms)
	assert.Equal(t, "$", terms[len(terms)-1])
}
