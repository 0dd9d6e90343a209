// Package standard declares the functions every sort S has:
// equality, inequality, if-then-else and the orderings
package standard

import (
	"github.com/cottand/mcrl/data"
	"github.com/cottand/mcrl/data/sortbool"
)

const (
	EqualName        = "=="
	NotEqualName     = "!="
	IfName           = "if"
	LessName         = "<"
	LessEqualName    = "<="
	GreaterName      = ">"
	GreaterEqualName = ">="
)

func relation(name string, s data.Sort) *data.FunctionSymbol {
	return data.Func(name, data.Arrow([]data.Sort{s, s}, data.SortBool))
}

func Equal(s data.Sort) *data.FunctionSymbol        { return relation(EqualName, s) }
func NotEqual(s data.Sort) *data.FunctionSymbol     { return relation(NotEqualName, s) }
func Less(s data.Sort) *data.FunctionSymbol         { return relation(LessName, s) }
func LessEqual(s data.Sort) *data.FunctionSymbol    { return relation(LessEqualName, s) }
func Greater(s data.Sort) *data.FunctionSymbol      { return relation(GreaterName, s) }
func GreaterEqual(s data.Sort) *data.FunctionSymbol { return relation(GreaterEqualName, s) }

func If(s data.Sort) *data.FunctionSymbol {
	return data.Func(IfName, data.Arrow([]data.Sort{data.SortBool, s, s}, s))
}

func MakeEqual(a, b data.Term) data.Term        { return data.App(Equal(a.Sort()), a, b) }
func MakeNotEqual(a, b data.Term) data.Term     { return data.App(NotEqual(a.Sort()), a, b) }
func MakeLess(a, b data.Term) data.Term         { return data.App(Less(a.Sort()), a, b) }
func MakeLessEqual(a, b data.Term) data.Term    { return data.App(LessEqual(a.Sort()), a, b) }
func MakeGreater(a, b data.Term) data.Term      { return data.App(Greater(a.Sort()), a, b) }
func MakeGreaterEqual(a, b data.Term) data.Term { return data.App(GreaterEqual(a.Sort()), a, b) }
func MakeIf(c, a, b data.Term) data.Term        { return data.App(If(a.Sort()), c, a, b) }

func IsEqualApplication(t data.Term) bool {
	return isStandardApplication(t, EqualName)
}

func IsIfApplication(t data.Term) bool {
	return isStandardApplication(t, IfName)
}

func isStandardApplication(t data.Term, name string) bool {
	app, ok := t.(*data.Application)
	if !ok {
		return false
	}
	f, ok := app.Head().(*data.FunctionSymbol)
	if !ok || f.Name() != name {
		return false
	}
	s, ok := SortOf(f)
	return ok && app.Arity() > 0 && s == app.Arg(app.Arity()-1).Sort()
}

// Functions returns the standard functions of s in declaration order
func Functions(s data.Sort) []*data.FunctionSymbol {
	return []*data.FunctionSymbol{Equal(s), NotEqual(s), If(s), Less(s), LessEqual(s), Greater(s), GreaterEqual(s)}
}

// SortOf returns the sort S when f is one of the standard functions of S
func SortOf(f *data.FunctionSymbol) (data.Sort, bool) {
	fs, ok := f.Sort().(*data.FunctionSort)
	if !ok {
		return nil, false
	}
	domain := fs.Domain()
	switch f.Name() {
	case EqualName, NotEqualName, LessName, LessEqualName, GreaterName, GreaterEqualName:
		if len(domain) == 2 && domain[0] == domain[1] && fs.Codomain() == data.SortBool {
			return domain[0], true
		}
	case IfName:
		if len(domain) == 3 && domain[0] == data.SortBool && domain[1] == domain[2] && domain[1] == fs.Codomain() {
			return domain[1], true
		}
	}
	return nil, false
}

// Equations returns the equations defining the standard functions of s
// on top of any sort specific equations
func Equations(s data.Sort) []data.Equation {
	x := data.Var("x", s)
	y := data.Var("y", s)
	b := data.Var("b", data.SortBool)
	xy := []*data.Variable{x, y}
	return []data.Equation{
		data.NewEquation([]*data.Variable{x}, MakeEqual(x, x), sortbool.True()),
		data.NewEquation(xy, MakeNotEqual(x, y), sortbool.MakeNot(MakeEqual(x, y))),
		data.NewEquation(xy, MakeIf(sortbool.True(), x, y), x),
		data.NewEquation(xy, MakeIf(sortbool.False(), x, y), y),
		data.NewEquation([]*data.Variable{b, x}, MakeIf(b, x, x), x),
		data.NewEquation([]*data.Variable{x}, MakeLess(x, x), sortbool.False()),
		data.NewEquation([]*data.Variable{x}, MakeLessEqual(x, x), sortbool.True()),
		data.NewEquation(xy, MakeGreater(x, y), MakeLess(y, x)),
		data.NewEquation(xy, MakeGreaterEqual(x, y), MakeLessEqual(y, x)),
	}
}
