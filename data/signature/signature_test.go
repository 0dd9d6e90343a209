package signature

import (
	"errors"
	"sync"
	"testing"

	"github.com/cottand/mcrl/data"
	"github.com/cottand/mcrl/data/sortbool"
	"github.com/cottand/mcrl/data/sortword"
	"github.com/cottand/mcrl/data/standard"
	"github.com/cottand/mcrl/rerr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHasSystemSorts(t *testing.T) {
	sig := New()
	assert.Equal(t, []data.Sort{data.SortBool, data.SortWord}, sig.Sorts())
	assert.Equal(t, sortbool.Constructors(), sig.Constructors(data.SortBool))
	assert.Equal(t, sortword.Constructors(), sig.Constructors(data.SortWord))
	assert.True(t, sig.IsConstructor(sortword.SuccWord.Symbol()))
	assert.False(t, sig.IsConstructor(sortword.AddWord.Symbol()))

	impl, ok := sig.Native(sortword.AddWord.Symbol())
	assert.True(t, ok)
	assert.Equal(t, "add_word", impl.Name)
	_, ok = sig.Native(sortbool.And())
	assert.False(t, ok)
	assert.Len(t, sig.Natives(), 42)
}

func TestIndependentSignatures(t *testing.T) {
	first, second := New(), New()
	_, err := first.AddStructuredSort("Colour", data.StructuredConstructor{Name: "red"}, data.StructuredConstructor{Name: "green"})
	require.NoError(t, err)
	assert.Len(t, first.Sorts(), 3)
	assert.Len(t, second.Sorts(), 2)
}

func TestIsEnumerable(t *testing.T) {
	sig := New()
	assert.True(t, sig.IsEnumerable(data.SortBool))
	assert.False(t, sig.IsEnumerable(data.SortWord))
	assert.False(t, sig.IsEnumerable(data.Basic("Undeclared")))
}

func TestStandardFunctionsAreLazy(t *testing.T) {
	sig := New()
	sort := data.Basic("Lazy")
	sig.AddSort(sort)
	before := len(sig.Equations())
	assert.NotContains(t, sig.Mappings(), standard.Equal(sort))

	equations := sig.EquationsFor(standard.Equal(sort))
	assert.Len(t, equations, 1)
	assert.Len(t, sig.Equations(), before+len(standard.Equations(sort)))
	assert.Contains(t, sig.Mappings(), standard.Equal(sort))

	// asking again does not generate twice
	assert.Equal(t, standard.Functions(sort), sig.StandardFunctions(sort))
	assert.Len(t, sig.Equations(), before+len(standard.Equations(sort)))
}

func TestStandardFunctionsConcurrent(t *testing.T) {
	sig := New()
	sort := data.Basic("Concurrent")
	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			sig.StandardFunctions(sort)
		}()
	}
	wg.Wait()
	assert.Len(t, sig.EquationsFor(standard.If(sort)), 3)
}

func TestWordEqualityUsesNativeFirst(t *testing.T) {
	sig := New()
	equations := sig.EquationsFor(standard.Equal(data.SortWord))
	require.NotEmpty(t, equations)
	assert.True(t, sortword.EqualWord.IsApplication(equations[0].RHS))
}

func TestRegistrationErrors(t *testing.T) {
	sig := New()
	x := data.Var("x", data.SortWord)

	err := sig.AddEquation(data.NewEquation(nil, sortword.AddWord.Make(x, x), x))
	require.Error(t, err)
	var invalid rerr.InvalidRewriteRule
	assert.True(t, errors.As(err, &invalid))

	err = sig.AddNative(sortword.AddWord.Symbol(), data.Implementation{Name: "again"})
	var duplicate rerr.DuplicateNativeImplementation
	assert.True(t, errors.As(err, &duplicate))
	assert.Equal(t, "add_word", duplicate.Existing)

	undeclared := data.Func("plus", data.Arrow([]data.Sort{data.SortWord, data.SortWord}, data.SortWord))
	err = sig.BindNative(undeclared, "nope")
	var unknown rerr.UnknownNativeImplementation
	assert.True(t, errors.As(err, &unknown))

	err = sig.AddNative(undeclared, data.Implementation{Name: "plus"})
	assert.True(t, errors.As(err, &unknown))

	require.NoError(t, sig.AddMapping(undeclared))
	require.NoError(t, sig.BindNative(undeclared, "add_word"))
	impl, ok := sig.Native(undeclared)
	require.True(t, ok)
	result, applied, err := impl.Apply([]data.Term{data.Word(2), data.Word(3)})
	require.NoError(t, err)
	assert.True(t, applied)
	assert.Equal(t, data.Term(data.Word(5)), result)

	assert.Error(t, sig.AddConstructor(undeclared))
}

func TestStructuredSort(t *testing.T) {
	sig := New()
	word := data.SortWord
	sort, err := sig.AddStructuredSort("Pair",
		data.StructuredConstructor{
			Name:       "pair",
			Fields:     []data.StructuredField{{Projection: "fst", Sort: word}, {Projection: "snd", Sort: word}},
			Recogniser: "is_pair",
		},
		data.StructuredConstructor{Name: "none", Recogniser: "is_none"},
	)
	require.NoError(t, err)

	structured, ok := sig.Resolve(sort).(*data.StructuredSort)
	require.True(t, ok)
	assert.Equal(t, "struct pair(fst: @word, snd: @word)?is_pair | none?is_none", structured.String())

	constructors := sig.Constructors(sort)
	require.Len(t, constructors, 2)
	assert.Equal(t, "pair", constructors[0].Name())
	assert.Equal(t, 2, constructors[0].Arity())
	assert.False(t, sig.IsEnumerable(sort))

	names := map[string]bool{}
	for _, f := range sig.Mappings() {
		names[f.Name()] = true
	}
	for _, name := range []string{"fst", "snd", "is_pair", "is_none"} {
		assert.True(t, names[name], "missing mapping %s", name)
	}
	fst := data.Func("fst", data.Arrow([]data.Sort{sort}, word))
	assert.Len(t, sig.EquationsFor(fst), 1)
	isNone := data.Func("is_none", data.Arrow([]data.Sort{sort}, data.SortBool))
	assert.Len(t, sig.EquationsFor(isNone), 2)
}

func TestStructuredSortRejectsUndeclaredFields(t *testing.T) {
	sig := New()
	_, err := sig.AddStructuredSort("Box", data.StructuredConstructor{
		Name:   "box",
		Fields: []data.StructuredField{{Sort: data.Basic("Nowhere")}},
	})
	var undeclared rerr.UndeclaredSort
	assert.True(t, errors.As(err, &undeclared))

	_, err = sig.AddStructuredSort("Empty")
	assert.Error(t, err)
}
