package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_StringSet_addHasRemove(t *testing.T) {
	s := StringSet{}
	assert.False(t, s.Has("a"))

	s.Add("a")
	assert.True(t, s.Has("a"))

	s.Remove("a")
	assert.False(t, s.Has("a"))
}

func Test_StringSet_copyIsIndependent(t *testing.T) {
	s := StringSet{"a": true}
	cp := s.Copy()
	cp.Add("b")

	assert.False(t, s.Has("b"))
	assert.True(t, cp.Has("b"))
}

func Test_StringSet_unionAndIntersection(t *testing.T) {
	a := StringSet{"x": true, "y": true}
	b := StringSet{"y": true, "z": true}

	assert.ElementsMatch(t, []string{"x", "y", "z"}, a.Union(b).Elements())
	assert.ElementsMatch(t, []string{"y"}, a.Intersection(b).Elements())
}

func Test_StringSet_addAll(t *testing.T) {
	s := StringSet{"a": true}
	s.AddAll(StringSet{"b": true, "c": true})

	assert.ElementsMatch(t, []string{"a", "b", "c"}, s.Elements())
}

func Test_StringSet_stringOrdered(t *testing.T) {
	s := StringSet{"b": true, "$": true, "a": true}
	assert.Equal(t, "{a,b,$}", s.StringOrdered())
}

func Test_StringSetOf_nilInputStaysNil(t *testing.T) {
	assert.Nil(t, StringSetOf(nil))
}

func Test_KeySet_unionAndAddAll(t *testing.T) {
	a := KeySet[int]{1: true, 2: true}
	b := KeySet[int]{2: true, 3: true}

	assert.ElementsMatch(t, []int{1, 2, 3}, a.Union(b).Elements())

	a.AddAll(b)
	assert.ElementsMatch(t, []int{1, 2, 3}, a.Elements())
}

func Test_KeySetOf_nilInputStaysNil(t *testing.T) {
	assert.Nil(t, KeySetOf[int](nil))
}
