// Package sortword declares the sort of 64-bit machine words together
// with its arithmetic, comparison and bit operations, most of which are
// implemented natively
package sortword

import (
	"strings"

	"github.com/cottand/mcrl/data"
	"github.com/cottand/mcrl/data/sortbool"
)

// Op is one function symbol of the machine word sort, with recognisers
// and a constructor for its applications
type Op struct {
	symbol *data.FunctionSymbol
}

func newOp(name string, result data.Sort, domain ...data.Sort) Op {
	return Op{symbol: data.Func(name, data.Arrow(domain, result))}
}

func (o Op) Symbol() *data.FunctionSymbol { return o.symbol }
func (o Op) Name() string                 { return o.symbol.Name() }
func (o Op) Arity() int                   { return o.symbol.Arity() }

// ImplementationName is the textual name of the native procedure of o
func (o Op) ImplementationName() string {
	return strings.TrimPrefix(o.symbol.Name(), "@")
}

func (o Op) IsFunctionSymbol(t data.Term) bool { return t == o.symbol }

// Make applies o to args, or returns the constant itself when o takes none
func (o Op) Make(args ...data.Term) data.Term { return data.Apply(o.symbol, args...) }

func (o Op) IsApplication(t data.Term) bool { return data.IsApplicationOf(t, o.symbol) }

var (
	w = data.SortWord
	b = data.SortBool
)

// constructors
var (
	ZeroWord = newOp("@zero_word", w)
	SuccWord = newOp("@succ_word", w, w)
)

// mappings
var (
	OneWord   = newOp("@one_word", w)
	TwoWord   = newOp("@two_word", w)
	ThreeWord = newOp("@three_word", w)
	FourWord  = newOp("@four_word", w)
	MaxWord   = newOp("@max_word", w)

	EqualsZeroWord    = newOp("@equals_zero_word", b, w)
	NotEqualsZeroWord = newOp("@not_equals_zero_word", b, w)
	EqualsOneWord     = newOp("@equals_one_word", b, w)
	EqualsMaxWord     = newOp("@equals_max_word", b, w)

	AddWord                    = newOp("@add_word", w, w, w)
	AddWithCarryWord           = newOp("@add_with_carry_word", w, w, w)
	AddOverflowWord            = newOp("@add_overflow_word", b, w, w)
	AddWithCarryOverflowWord   = newOp("@add_with_carry_overflow_word", b, w, w)
	TimesWord                  = newOp("@times_word", w, w, w)
	TimesWithCarryWord         = newOp("@times_with_carry_word", w, w, w, w)
	TimesOverflowWord          = newOp("@times_overflow_word", b, w, w)
	TimesWithCarryOverflowWord = newOp("@times_with_carry_overflow_word", b, w, w, w)
	MinusWord                  = newOp("@minus_word", w, w, w)
	MonusWord                  = newOp("@monus_word", w, w, w)
	DivWord                    = newOp("@div_word", w, w, w)
	ModWord                    = newOp("@mod_word", w, w, w)
	SqrtWord                   = newOp("@sqrt_word", w, w)

	DivDoubleword             = newOp("@div_doubleword", w, w, w, w)
	DivDoubleDoubleword       = newOp("@div_double_doubleword", w, w, w, w, w)
	DivTripleDoubleword       = newOp("@div_triple_doubleword", w, w, w, w, w, w)
	ModDoubleword             = newOp("@mod_doubleword", w, w, w, w)
	SqrtDoubleword            = newOp("@sqrt_doubleword", w, w, w)
	SqrtTripleword            = newOp("@sqrt_tripleword", w, w, w, w)
	SqrtTriplewordOverflow    = newOp("@sqrt_tripleword_overflow", w, w, w, w)
	SqrtQuadrupleword         = newOp("@sqrt_quadrupleword", w, w, w, w, w)
	SqrtQuadruplewordOverflow = newOp("@sqrt_quadrupleword_overflow", w, w, w, w, w)

	PredWord         = newOp("@pred_word", w, w)
	EqualWord        = newOp("@equal_word", b, w, w)
	NotEqualWord     = newOp("@not_equal_word", b, w, w)
	LessWord         = newOp("@less_word", b, w, w)
	LessEqualWord    = newOp("@less_equal_word", b, w, w)
	GreaterWord      = newOp("@greater_word", b, w, w)
	GreaterEqualWord = newOp("@greater_equal_word", b, w, w)
	RightmostBit     = newOp("@rightmost_bit", b, w)
	ShiftRight       = newOp("@shift_right", w, b, w)
)

var constructorOps = []Op{ZeroWord, SuccWord}

var mappingOps = []Op{
	OneWord, TwoWord, ThreeWord, FourWord, MaxWord,
	EqualsZeroWord, NotEqualsZeroWord, EqualsOneWord, EqualsMaxWord,
	AddWord, AddWithCarryWord, AddOverflowWord, AddWithCarryOverflowWord,
	TimesWord, TimesWithCarryWord, TimesOverflowWord, TimesWithCarryOverflowWord,
	MinusWord, MonusWord, DivWord, ModWord, SqrtWord,
	DivDoubleword, DivDoubleDoubleword, DivTripleDoubleword, ModDoubleword,
	SqrtDoubleword, SqrtTripleword, SqrtTriplewordOverflow,
	SqrtQuadrupleword, SqrtQuadruplewordOverflow,
	PredWord, EqualWord, NotEqualWord, LessWord, LessEqualWord, GreaterWord, GreaterEqualWord,
	RightmostBit, ShiftRight,
}

func Sort() data.Sort { return data.SortWord }

func IsSort(s data.Sort) bool { return s == data.SortWord }

// Ops returns every operation of the sort, constructors first
func Ops() []Op {
	return append(append([]Op(nil), constructorOps...), mappingOps...)
}

// Lookup finds the operation whose function symbol is named name
func Lookup(name string) (Op, bool) {
	for _, op := range Ops() {
		if op.Name() == name {
			return op, true
		}
	}
	return Op{}, false
}

func symbols(ops []Op) []*data.FunctionSymbol {
	fs := make([]*data.FunctionSymbol, len(ops))
	for i, op := range ops {
		fs[i] = op.symbol
	}
	return fs
}

func Constructors() []*data.FunctionSymbol { return symbols(constructorOps) }

func Mappings() []*data.FunctionSymbol { return symbols(mappingOps) }

// Equations relate the standard functions on words to their native
// counterparts, and decide the native comparisons of a word with itself
// when the word is not a machine number
func Equations() []data.Equation {
	w1 := data.Var("w1", data.SortWord)
	w2 := data.Var("w2", data.SortWord)
	vars := []*data.Variable{w1, w2}
	relation := func(name string) *data.FunctionSymbol {
		return data.Func(name, data.Arrow([]data.Sort{w, w}, b))
	}
	reflexive := []*data.Variable{w1}
	return []data.Equation{
		data.NewEquation(vars, data.App(relation("=="), w1, w2), EqualWord.Make(w1, w2)),
		data.NewEquation(vars, data.App(relation("<"), w1, w2), LessWord.Make(w1, w2)),
		data.NewEquation(vars, data.App(relation("<="), w1, w2), LessEqualWord.Make(w1, w2)),
		data.NewEquation(reflexive, EqualWord.Make(w1, w1), sortbool.True()),
		data.NewEquation(reflexive, LessWord.Make(w1, w1), sortbool.False()),
		data.NewEquation(reflexive, LessEqualWord.Make(w1, w1), sortbool.True()),
	}
}

// Library exposes this package as a sort library
type Library struct{}

func (Library) Sort() data.Sort                            { return Sort() }
func (Library) Constructors() []*data.FunctionSymbol       { return Constructors() }
func (Library) Mappings() []*data.FunctionSymbol           { return Mappings() }
func (Library) Equations() []data.Equation                 { return Equations() }
func (Library) NativeConstructors() data.ImplementationMap { return NativeConstructors() }
func (Library) NativeMappings() data.ImplementationMap     { return NativeMappings() }
