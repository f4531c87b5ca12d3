package regex

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_Parse_epsilonLeaf(t *testing.T) {
	n, err := Parse("&")
	assert.NoError(t, err)
	assert.Equal(t, Leaf, n.Kind)
	assert.Equal(t, "", n.Value)
}

func Test_Parse_emptySequenceIsEpsilon(t *testing.T) {
	n, err := Parse("()")
	assert.NoError(t, err)
	assert.Equal(t, Leaf, n.Kind)
	assert.Equal(t, "", n.Value)
}

func Test_Parse_starBindsTighterThanConcatenation(t *testing.T) {
	n, err := Parse("ab*")
	assert.NoError(t, err)
	assert.Equal(t, Cat, n.Kind)
	assert.Equal(t, Leaf, n.Left.Kind)
	assert.Equal(t, "a", n.Left.Value)
	assert.Equal(t, Star, n.Right.Kind)
	assert.Equal(t, "b", n.Right.Left.Value)
}

func Test_Parse_alternationIsLowestPrecedence(t *testing.T) {
	n, err := Parse("ab|c")
	assert.NoError(t, err)
	assert.Equal(t, Or, n.Kind)
	assert.Equal(t, Cat, n.Left.Kind)
	assert.Equal(t, "c", n.Right.Value)
}

func Test_Parse_toleratesUnmatchedCloseParen(t *testing.T) {
	_, err := Parse("a)b")
	assert.NoError(t, err)
}
