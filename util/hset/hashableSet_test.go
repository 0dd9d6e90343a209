package hset

import (
	"testing"

	"github.com/cottand/mcrl/data"
	"github.com/stretchr/testify/assert"
)

func TestHSet(t *testing.T) {
	s := Empty[data.Term](data.TermHasher{})
	one := data.Word(1)
	x := data.Var("x", data.SortWord)

	assert.False(t, s.Contains(one))
	s.Add(one, x)
	assert.True(t, s.Contains(data.Word(1)))
	assert.True(t, s.Contains(x))
	assert.False(t, s.Contains(data.Var("x", data.SortBool)))
}
