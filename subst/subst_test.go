package subst

import (
	"testing"

	"github.com/cottand/mcrl/data"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	sortS = data.Basic("S")
	fSym  = data.Func("f", data.Arrow([]data.Sort{sortS, sortS}, sortS))
	pSym  = data.Func("p", data.Arrow([]data.Sort{sortS, sortS}, data.SortBool))
	aSym  = data.Func("a", sortS)
	x     = data.Var("x", sortS)
	y     = data.Var("y", sortS)
	z     = data.Var("z", sortS)
)

func TestMap(t *testing.T) {
	m := NewMap()
	assert.Equal(t, data.Term(x), m.Apply(x))

	m.Set(x, aSym)
	m.Set(y, y)
	assert.Equal(t, 2, m.Len())
	assert.Equal(t, data.Term(aSym), m.Apply(x))
	image, ok := m.Lookup(y)
	assert.True(t, ok)
	assert.Equal(t, data.Term(y), image)
	m.Erase(y)

	clone := m.Clone()
	m.Erase(x)
	assert.Equal(t, 0, m.Len())
	assert.Equal(t, data.Term(aSym), clone.Apply(x))
	assert.False(t, m.Equal(clone))
	assert.Equal(t, "[x := a]", clone.String())

	clone.Set(z, data.App(fSym, y, aSym))
	assert.True(t, clone.Captures(y))
	assert.False(t, clone.Captures(x))
}

func TestLayerDoesNotModifyParent(t *testing.T) {
	parent := Of(data.Assignment{Var: x, Value: aSym})
	layer := Extend(parent).With(x, y).With(z, x)

	assert.Equal(t, data.Term(y), layer.Apply(x))
	assert.Equal(t, data.Term(x), layer.Apply(z))
	assert.Equal(t, data.Term(aSym), parent.Apply(x))
	assert.Equal(t, data.Term(z), parent.Apply(z))
	assert.Equal(t, 2, layer.Len())

	assert.True(t, layer.Captures(x))
	assert.True(t, layer.Captures(y))
	assert.False(t, Extend(Identity).Captures(x))

	// extending a layer shares its parent
	assert.Same(t, layer, Extend(layer))

	count := 0
	for range layer.All() {
		count++
	}
	assert.Equal(t, 3, count)
}

func TestGenerator(t *testing.T) {
	gen := NewGenerator()
	gen.Reserve("x'1")
	gen.ReserveTerm(data.LambdaOf(data.App(fSym, x, y), z))
	assert.True(t, gen.Reserved("z"))

	first := gen.Fresh("x")
	second := gen.Fresh("x")
	assert.Equal(t, "x'2", first)
	assert.NotEqual(t, first, second)
	assert.True(t, gen.Reserved(first))

	// suffixes do not accumulate
	assert.Equal(t, "x'4", gen.Fresh(second))

	v := gen.FreshVariable(y)
	assert.Same(t, sortS, v.Sort())
	assert.NotEqual(t, "y", v.Name())
}

func TestReplace(t *testing.T) {
	sigma := Of(data.Assignment{Var: x, Value: aSym})
	testCases := []struct {
		name     string
		term     data.Term
		expected data.Term
	}{
		{"free variable", data.App(fSym, x, y), data.App(fSym, aSym, y)},
		{"shadowed by lambda", data.LambdaOf(data.App(fSym, x, y), x), data.LambdaOf(data.App(fSym, x, y), x)},
		{"under lambda", data.LambdaOf(data.App(fSym, x, y), y), data.LambdaOf(data.App(fSym, aSym, y), y)},
		{"where value sees outer scope", data.WhereOf(x, data.Assignment{Var: x, Value: x}), data.WhereOf(x, data.Assignment{Var: x, Value: aSym})},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, Replace(tc.term, sigma, NewGenerator()))
		})
	}
}

// forall x. p(x, y) with y := f(x, a) must not capture the substituted x
func TestReplaceAvoidsCapture(t *testing.T) {
	quantified := data.ForallOf(data.App(pSym, x, y), x)
	sigma := Of(data.Assignment{Var: y, Value: data.App(fSym, x, aSym)})
	gen := NewGenerator()
	gen.ReserveTerm(quantified)
	gen.ReserveSubstitution(sigma)

	result := Replace(quantified, sigma, gen)

	abstraction, ok := result.(*data.Abstraction)
	require.True(t, ok)
	require.Len(t, abstraction.Vars(), 1)
	renamed := abstraction.Vars()[0]
	assert.NotSame(t, x, renamed)
	assert.Equal(t, data.App(pSym, renamed, data.App(fSym, x, aSym)), abstraction.Body())

	// the substituted x stays free, and nothing free is also bound
	assert.Equal(t, []*data.Variable{x}, data.FreeVariables(result))
	for _, v := range abstraction.Vars() {
		assert.False(t, data.OccursFree(v, result))
	}
}
