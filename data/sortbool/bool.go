// Package sortbool declares the Bool sort, its constructors true and false,
// and the connectives over it
package sortbool

import (
	"github.com/cottand/mcrl/data"
)

var (
	unary  = data.Arrow([]data.Sort{data.SortBool}, data.SortBool)
	binary = data.Arrow([]data.Sort{data.SortBool, data.SortBool}, data.SortBool)

	trueSymbol    = data.Func("true", data.SortBool)
	falseSymbol   = data.Func("false", data.SortBool)
	notSymbol     = data.Func("!", unary)
	andSymbol     = data.Func("&&", binary)
	orSymbol      = data.Func("||", binary)
	impliesSymbol = data.Func("=>", binary)
	// equalSymbol is the standard equality on Bool
	equalSymbol = data.Func("==", binary)
)

func Sort() data.Sort { return data.SortBool }

func IsSort(s data.Sort) bool { return s == data.SortBool }

func True() *data.FunctionSymbol    { return trueSymbol }
func False() *data.FunctionSymbol   { return falseSymbol }
func Not() *data.FunctionSymbol     { return notSymbol }
func And() *data.FunctionSymbol     { return andSymbol }
func Or() *data.FunctionSymbol      { return orSymbol }
func Implies() *data.FunctionSymbol { return impliesSymbol }

// Of returns the constructor representing b
func Of(b bool) data.Term {
	if b {
		return trueSymbol
	}
	return falseSymbol
}

func IsTrue(t data.Term) bool  { return t == trueSymbol }
func IsFalse(t data.Term) bool { return t == falseSymbol }

func MakeNot(b data.Term) data.Term        { return data.App(notSymbol, b) }
func MakeAnd(a, b data.Term) data.Term     { return data.App(andSymbol, a, b) }
func MakeOr(a, b data.Term) data.Term      { return data.App(orSymbol, a, b) }
func MakeImplies(a, b data.Term) data.Term { return data.App(impliesSymbol, a, b) }

func IsNotApplication(t data.Term) bool     { return data.IsApplicationOf(t, notSymbol) }
func IsAndApplication(t data.Term) bool     { return data.IsApplicationOf(t, andSymbol) }
func IsOrApplication(t data.Term) bool      { return data.IsApplicationOf(t, orSymbol) }
func IsImpliesApplication(t data.Term) bool { return data.IsApplicationOf(t, impliesSymbol) }

// Conjunction folds ts with &&, dropping true operands.
// It is true when ts is empty and false when any operand is false
func Conjunction(ts ...data.Term) data.Term {
	return fold(ts, andSymbol, trueSymbol, falseSymbol)
}

// Disjunction folds ts with ||, dropping false operands
func Disjunction(ts ...data.Term) data.Term {
	return fold(ts, orSymbol, falseSymbol, trueSymbol)
}

func fold(ts []data.Term, op *data.FunctionSymbol, unit, absorbing data.Term) data.Term {
	var acc data.Term
	for _, t := range ts {
		switch t {
		case absorbing:
			return absorbing
		case unit:
			continue
		}
		if acc == nil {
			acc = t
		} else {
			acc = data.App(op, acc, t)
		}
	}
	if acc == nil {
		return unit
	}
	return acc
}

func Constructors() []*data.FunctionSymbol {
	return []*data.FunctionSymbol{trueSymbol, falseSymbol}
}

func Mappings() []*data.FunctionSymbol {
	return []*data.FunctionSymbol{notSymbol, andSymbol, orSymbol, impliesSymbol}
}

func Equations() []data.Equation {
	b := data.Var("b", data.SortBool)
	vars := []*data.Variable{b}
	eq := func(lhs, rhs data.Term) data.Equation { return data.NewEquation(vars, lhs, rhs) }
	return []data.Equation{
		eq(MakeNot(trueSymbol), falseSymbol),
		eq(MakeNot(falseSymbol), trueSymbol),
		eq(MakeNot(MakeNot(b)), b),
		eq(MakeAnd(trueSymbol, b), b),
		eq(MakeAnd(falseSymbol, b), falseSymbol),
		eq(MakeAnd(b, trueSymbol), b),
		eq(MakeAnd(b, falseSymbol), falseSymbol),
		eq(MakeOr(trueSymbol, b), trueSymbol),
		eq(MakeOr(falseSymbol, b), b),
		eq(MakeOr(b, trueSymbol), trueSymbol),
		eq(MakeOr(b, falseSymbol), b),
		eq(MakeImplies(trueSymbol, b), b),
		eq(MakeImplies(falseSymbol, b), trueSymbol),
		eq(MakeImplies(b, trueSymbol), trueSymbol),
		eq(MakeImplies(b, falseSymbol), MakeNot(b)),
		eq(data.App(equalSymbol, trueSymbol, b), b),
		eq(data.App(equalSymbol, falseSymbol, b), MakeNot(b)),
		eq(data.App(equalSymbol, b, trueSymbol), b),
		eq(data.App(equalSymbol, b, falseSymbol), MakeNot(b)),
	}
}

func NativeConstructors() data.ImplementationMap { return data.ImplementationMap{} }
func NativeMappings() data.ImplementationMap     { return data.ImplementationMap{} }

// Library exposes this package as a sort library
type Library struct{}

func (Library) Sort() data.Sort                            { return Sort() }
func (Library) Constructors() []*data.FunctionSymbol       { return Constructors() }
func (Library) Mappings() []*data.FunctionSymbol           { return Mappings() }
func (Library) Equations() []data.Equation                 { return Equations() }
func (Library) NativeConstructors() data.ImplementationMap { return NativeConstructors() }
func (Library) NativeMappings() data.ImplementationMap     { return NativeMappings() }
