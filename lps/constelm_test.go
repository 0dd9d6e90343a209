package lps

import (
	"testing"

	"github.com/cottand/mcrl/data"
	"github.com/cottand/mcrl/data/signature"
	"github.com/cottand/mcrl/data/sortbool"
	"github.com/cottand/mcrl/data/sortword"
	"github.com/cottand/mcrl/data/standard"
	"github.com/cottand/mcrl/rerr"
	"github.com/cottand/mcrl/rewr"
	"github.com/cottand/mcrl/subst"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	x    = data.Var("x", data.SortWord)
	y    = data.Var("y", data.SortWord)
	d    = data.Var("d", data.SortWord)
	word = func(v uint64) data.Term { return data.Word(v) }
)

func newConstelm(t *testing.T, options ConstelmOptions) *Constelm {
	t.Helper()
	r, err := rewr.New(signature.New(), rewr.DefaultSettings())
	require.NoError(t, err)
	return NewConstelm(r, options)
}

// counter counts x up to ten and back, while y is only ever
// reassigned its own value or guarded by a condition that never holds
func counter() Process {
	return Process{
		Parameters: []*data.Variable{x, y},
		Init:       []data.Term{sortword.ZeroWord.Make(), sortword.AddWord.Make(word(2), word(3))},
		Summands: []Summand{
			{
				Condition: standard.MakeLess(x, word(10)),
				Action:    "inc",
				Assignments: []data.Assignment{
					{Var: x, Value: sortword.AddWord.Make(x, word(1))},
					{Var: y, Value: sortword.AddWord.Make(y, word(0))},
				},
			},
			{
				Condition:   standard.MakeEqual(x, word(10)),
				Action:      "reset",
				Assignments: []data.Assignment{{Var: x, Value: word(0)}},
			},
			{
				Condition:   standard.MakeGreater(y, word(100)),
				Action:      "never",
				Assignments: []data.Assignment{{Var: y, Value: word(7)}},
			},
		},
	}
}

func TestConstelmRemovesConstantParameter(t *testing.T) {
	c := newConstelm(t, ConstelmOptions{})
	result, sigma, err := c.Run(counter())
	require.NoError(t, err)

	assert.Equal(t, []*data.Variable{x}, result.Parameters)
	assert.Equal(t, []data.Term{sortword.ZeroWord.Make()}, result.Init)
	assert.True(t, sigma.Equal(subst.Of(data.Assignment{Var: y, Value: word(5)})), "got %s", sigma)

	require.Len(t, result.Summands, 3)
	inc := result.Summands[0]
	assert.Equal(t, sortword.LessWord.Make(x, word(10)), inc.Condition)
	assert.Equal(t, []data.Assignment{{Var: x, Value: sortword.AddWord.Make(x, word(1))}}, inc.Assignments)

	never := result.Summands[2]
	assert.Equal(t, data.Term(sortbool.False()), never.Condition)
	assert.Empty(t, never.Assignments)
}

func TestConstelmIsStable(t *testing.T) {
	c := newConstelm(t, ConstelmOptions{RemoveFalseSummands: true})
	once, sigma, err := c.Run(counter())
	require.NoError(t, err)
	assert.Equal(t, 1, sigma.Len())
	require.Len(t, once.Summands, 2)

	twice, sigma, err := c.Run(once)
	require.NoError(t, err)
	assert.Equal(t, 0, sigma.Len())
	assert.Equal(t, once, twice)
	assert.Equal(t, once.String(), twice.String())
}

func TestConstelmIgnoringConditions(t *testing.T) {
	c := newConstelm(t, ConstelmOptions{IgnoreConditions: true})
	result, sigma, err := c.Run(counter())
	require.NoError(t, err)
	assert.Equal(t, []*data.Variable{x, y}, result.Parameters)
	assert.Equal(t, 0, sigma.Len())
}

func TestConstelm(t *testing.T) {
	testCases := []struct {
		name     string
		summands []Summand
		constant []*data.Variable
	}{
		{
			name:     "no summands",
			summands: nil,
			constant: []*data.Variable{x, y},
		},
		{
			name: "sum variable",
			summands: []Summand{{
				SumVariables: []*data.Variable{d},
				Action:       "choose",
				Assignments:  []data.Assignment{{Var: x, Value: d}},
			}},
			constant: []*data.Variable{y},
		},
		{
			name: "dependency through a non constant parameter",
			summands: []Summand{
				{Action: "a", Assignments: []data.Assignment{{Var: x, Value: sortword.SuccWord.Make(x)}}},
				{Action: "b", Assignments: []data.Assignment{{Var: y, Value: x}}},
			},
			constant: nil,
		},
		{
			name: "condition enabled once another parameter changes",
			summands: []Summand{
				{Action: "a", Assignments: []data.Assignment{{Var: x, Value: word(3)}}},
				{
					Condition:   standard.MakeEqual(x, word(3)),
					Action:      "b",
					Assignments: []data.Assignment{{Var: y, Value: word(9)}},
				},
			},
			constant: nil,
		},
		{
			name: "swap of equal values",
			summands: []Summand{{
				Action:      "swap",
				Assignments: []data.Assignment{{Var: x, Value: y}, {Var: y, Value: x}},
			}},
			constant: nil,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			c := newConstelm(t, ConstelmOptions{})
			p := Process{
				Parameters: []*data.Variable{x, y},
				Init:       []data.Term{word(0), word(1)},
				Summands:   tc.summands,
			}
			_, sigma, err := c.Run(p)
			require.NoError(t, err)
			assert.Equal(t, len(tc.constant), sigma.Len())
			for _, v := range tc.constant {
				_, ok := sigma.Lookup(v)
				assert.True(t, ok, "%s should be constant", v)
			}
		})
	}
}

func TestConstelmSwapOfIdenticalValues(t *testing.T) {
	c := newConstelm(t, ConstelmOptions{})
	p := Process{
		Parameters: []*data.Variable{x, y},
		Init:       []data.Term{word(4), sortword.FourWord.Make()},
		Summands: []Summand{{
			Action:      "swap",
			Assignments: []data.Assignment{{Var: x, Value: y}, {Var: y, Value: x}},
		}},
	}
	result, sigma, err := c.Run(p)
	require.NoError(t, err)
	assert.Empty(t, result.Parameters)
	assert.Equal(t, 2, sigma.Len())
}

func TestValidate(t *testing.T) {
	b := data.Var("b", data.SortBool)
	testCases := []struct {
		name    string
		process Process
		code    rerr.ErrCode
	}{
		{
			name:    "initial value of the wrong sort",
			process: Process{Parameters: []*data.Variable{x}, Init: []data.Term{sortbool.True()}},
			code:    rerr.SortMismatch,
		},
		{
			name: "non boolean condition",
			process: Process{
				Parameters: []*data.Variable{x},
				Init:       []data.Term{word(0)},
				Summands:   []Summand{{Condition: x, Action: "a"}},
			},
			code: rerr.SortMismatch,
		},
		{
			name: "assignment of the wrong sort",
			process: Process{
				Parameters: []*data.Variable{x, b},
				Init:       []data.Term{word(0), sortbool.True()},
				Summands:   []Summand{{Action: "a", Assignments: []data.Assignment{{Var: b, Value: x}}}},
			},
			code: rerr.SortMismatch,
		},
		{
			name: "assignment to an unknown parameter",
			process: Process{
				Parameters: []*data.Variable{x},
				Init:       []data.Term{word(0)},
				Summands:   []Summand{{Action: "a", Assignments: []data.Assignment{{Var: y, Value: x}}}},
			},
			code: rerr.MalformedProcess,
		},
		{
			name: "sum variable shadows a parameter",
			process: Process{
				Parameters: []*data.Variable{x},
				Init:       []data.Term{word(0)},
				Summands:   []Summand{{SumVariables: []*data.Variable{data.Var("x", data.SortBool)}, Action: "a"}},
			},
			code: rerr.MalformedProcess,
		},
		{
			name:    "parameter declared twice",
			process: Process{Parameters: []*data.Variable{x, x}, Init: []data.Term{word(0), word(0)}},
			code:    rerr.MalformedProcess,
		},
		{
			name:    "missing initial value",
			process: Process{Parameters: []*data.Variable{x, y}, Init: []data.Term{word(0)}},
			code:    rerr.MalformedProcess,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.process.Validate()
			var errs *rerr.Errors
			require.ErrorAs(t, err, &errs)
			require.Len(t, errs.Errors(), 1)
			assert.Equal(t, tc.code, errs.Errors()[0].Code())
		})
	}

	_, _, err := newConstelm(t, ConstelmOptions{}).Run(Process{Parameters: []*data.Variable{x}})
	assert.ErrorContains(t, err, "invalid process")
}

func TestProcessString(t *testing.T) {
	p := Process{
		Parameters: []*data.Variable{x},
		Init:       []data.Term{word(0)},
		Summands: []Summand{
			{Condition: standard.MakeLess(x, word(3)), Action: "tick", Assignments: []data.Assignment{{Var: x, Value: word(1)}}},
			{SumVariables: []*data.Variable{d}, Action: "jump", Assignments: []data.Assignment{{Var: x, Value: d}}},
		},
	}
	expected := "proc P(x: @word) =\n" +
		"    (x < 3) -> tick . P(x = 1)\n" +
		"    + sum d: @word. jump . P(x = d)\n" +
		"init P(0);"
	assert.Equal(t, expected, p.String())
}
