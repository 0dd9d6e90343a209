package data

import (
	"fmt"
	"slices"
	"strconv"
)

// Term is an immutable data expression. Terms are interned, so
// structurally equal terms are the same pointer and can be compared with ==
type Term interface {
	ID() uint32
	Sort() Sort
	String() string
	isTerm()
}

type Variable struct {
	id   uint32
	name string
	sort Sort
}

func (v *Variable) ID() uint32   { return v.id }
func (v *Variable) Sort() Sort   { return v.sort }
func (v *Variable) Name() string { return v.name }
func (*Variable) isTerm()        {}

func Var(name string, sort Sort) *Variable {
	return intern(key('v', name, sort), func(id uint32) *Variable {
		return &Variable{id: id, name: name, sort: sort}
	})
}

// FunctionSymbol is a named, sorted constant or operation.
// Two function symbols are equal iff both their name and sort are
type FunctionSymbol struct {
	id   uint32
	name string
	sort Sort
}

func (f *FunctionSymbol) ID() uint32   { return f.id }
func (f *FunctionSymbol) Sort() Sort   { return f.sort }
func (f *FunctionSymbol) Name() string { return f.name }
func (*FunctionSymbol) isTerm()        {}

// Arity is the number of arguments f expects, 0 for constants
func (f *FunctionSymbol) Arity() int {
	if fs, ok := f.sort.(*FunctionSort); ok {
		return fs.Arity()
	}
	return 0
}

func Func(name string, sort Sort) *FunctionSymbol {
	return intern(key('c', name, sort), func(id uint32) *FunctionSymbol {
		return &FunctionSymbol{id: id, name: name, sort: sort}
	})
}

type Application struct {
	id   uint32
	head Term
	args []Term
	sort Sort
}

func (a *Application) ID() uint32 { return a.id }
func (a *Application) Sort() Sort { return a.sort }
func (a *Application) Head() Term { return a.head }

// Args must not be modified
func (a *Application) Args() []Term   { return a.args }
func (a *Application) Arg(i int) Term { return a.args[i] }
func (a *Application) Arity() int     { return len(a.args) }
func (*Application) isTerm()          {}

// App applies head to args. It panics when head is not of a
// function sort taking exactly len(args) arguments, as such a term
// can only be built by a programming error
func App(head Term, args ...Term) *Application {
	fs, ok := head.Sort().(*FunctionSort)
	if !ok {
		panic(fmt.Sprintf("cannot apply %s of non-function sort %s", head, head.Sort()))
	}
	if fs.Arity() != len(args) {
		panic(fmt.Sprintf("%s of sort %s expects %d arguments, got %d", head, fs, fs.Arity(), len(args)))
	}
	children := append(append(make([]Term, 0, len(args)+1), head), args...)
	return intern(key('a', "", children...), func(id uint32) *Application {
		return &Application{id: id, head: head, args: slices.Clone(args), sort: fs.Codomain()}
	})
}

// Apply is like App but returns head itself when there are no arguments,
// which makes constants and applications interchangeable for callers
func Apply(head Term, args ...Term) Term {
	if len(args) == 0 {
		return head
	}
	return App(head, args...)
}

// MachineNumber is a literal 64-bit machine word, the normal form
// of every closed expression of SortWord
type MachineNumber struct {
	id    uint32
	value uint64
}

func (n *MachineNumber) ID() uint32    { return n.id }
func (n *MachineNumber) Sort() Sort    { return SortWord }
func (n *MachineNumber) Value() uint64 { return n.value }
func (*MachineNumber) isTerm()         {}

func Word(value uint64) *MachineNumber {
	return intern(key[Term]('n', strconv.FormatUint(value, 10)), func(id uint32) *MachineNumber {
		return &MachineNumber{id: id, value: value}
	})
}

type Binder int

const (
	Lambda Binder = iota
	Forall
	Exists
)

func (b Binder) String() string {
	switch b {
	case Lambda:
		return "lambda"
	case Forall:
		return "forall"
	case Exists:
		return "exists"
	}
	return "binder(" + strconv.Itoa(int(b)) + ")"
}

// Abstraction binds Vars in Body: a lambda, or a universal or existential quantifier
type Abstraction struct {
	id     uint32
	binder Binder
	vars   []*Variable
	body   Term
	sort   Sort
}

func (a *Abstraction) ID() uint32     { return a.id }
func (a *Abstraction) Sort() Sort     { return a.sort }
func (a *Abstraction) Binder() Binder { return a.binder }

// Vars must not be modified
func (a *Abstraction) Vars() []*Variable { return a.vars }
func (a *Abstraction) Body() Term        { return a.body }
func (*Abstraction) isTerm()             {}

// Abstract binds vars in body. Binding no variables returns body itself.
// Quantifiers panic when body is not of SortBool
func Abstract(binder Binder, vars []*Variable, body Term) Term {
	if len(vars) == 0 {
		return body
	}
	var sort Sort
	switch binder {
	case Lambda:
		domain := make([]Sort, len(vars))
		for i, v := range vars {
			domain[i] = v.Sort()
		}
		sort = Arrow(domain, body.Sort())
	case Forall, Exists:
		if body.Sort() != SortBool {
			panic(fmt.Sprintf("%s body %s must be of sort Bool, not %s", binder, body, body.Sort()))
		}
		sort = SortBool
	default:
		panic("unhandled binder " + binder.String())
	}
	children := make([]Term, 0, len(vars)+1)
	for _, v := range vars {
		children = append(children, v)
	}
	children = append(children, body)
	return intern(key('b', binder.String(), children...), func(id uint32) *Abstraction {
		return &Abstraction{id: id, binder: binder, vars: slices.Clone(vars), body: body, sort: sort}
	})
}

func LambdaOf(body Term, vars ...*Variable) Term { return Abstract(Lambda, vars, body) }
func ForallOf(body Term, vars ...*Variable) Term { return Abstract(Forall, vars, body) }
func ExistsOf(body Term, vars ...*Variable) Term { return Abstract(Exists, vars, body) }

type Assignment struct {
	Var   *Variable
	Value Term
}

// Where is the expression `body whr x1 = t1, ..., xn = tn end`,
// where each ti is evaluated outside the scope of the xi
type Where struct {
	id          uint32
	body        Term
	assignments []Assignment
}

func (w *Where) ID() uint32 { return w.id }
func (w *Where) Sort() Sort { return w.body.Sort() }
func (w *Where) Body() Term { return w.body }

// Assignments must not be modified
func (w *Where) Assignments() []Assignment { return w.assignments }
func (*Where) isTerm()                     {}

func WhereOf(body Term, assignments ...Assignment) Term {
	if len(assignments) == 0 {
		return body
	}
	children := []Term{body}
	for _, a := range assignments {
		if a.Var.Sort() != a.Value.Sort() {
			panic(fmt.Sprintf("cannot assign %s of sort %s to %s of sort %s", a.Value, a.Value.Sort(), a.Var, a.Var.Sort()))
		}
		children = append(children, a.Var, a.Value)
	}
	return intern(key('w', "", children...), func(id uint32) *Where {
		return &Where{id: id, body: body, assignments: slices.Clone(assignments)}
	})
}

// HeadSymbol returns the function symbol at the innermost head position of t,
// looking through nested applications such as f(a)(b)
func HeadSymbol(t Term) (*FunctionSymbol, bool) {
	for {
		switch current := t.(type) {
		case *FunctionSymbol:
			return current, true
		case *Application:
			t = current.head
		default:
			return nil, false
		}
	}
}

// IsApplicationOf reports whether t is f applied directly to arguments
func IsApplicationOf(t Term, f *FunctionSymbol) bool {
	app, ok := t.(*Application)
	return ok && app.head == f
}
