package subst

import (
	"github.com/cottand/mcrl/data"
)

// Replace applies sigma to the free variables of t without rewriting.
// Bound variables that would capture a variable of an image of sigma are
// renamed using gen.
//
// Going under a binder extends sigma with a Layer that maps each bound
// variable to itself or its new name, so the substitution seen by a subterm
// also records which names are bound above it
func Replace(t data.Term, sigma Substitution, gen *Generator) data.Term {
	switch t := t.(type) {
	case *data.Variable:
		return sigma.Apply(t)
	case *data.FunctionSymbol, *data.MachineNumber:
		return t
	case *data.Application:
		head := Replace(t.Head(), sigma, gen)
		args := make([]data.Term, t.Arity())
		for i, arg := range t.Args() {
			args[i] = Replace(arg, sigma, gen)
		}
		return data.App(head, args...)
	case *data.Abstraction:
		inner, vars := Bind(sigma, t.Vars(), gen)
		return data.Abstract(t.Binder(), vars, Replace(t.Body(), inner, gen))
	case *data.Where:
		assigned := make([]*data.Variable, len(t.Assignments()))
		for i, a := range t.Assignments() {
			assigned[i] = a.Var
		}
		inner, vars := Bind(sigma, assigned, gen)
		assignments := make([]data.Assignment, len(vars))
		for i, a := range t.Assignments() {
			assignments[i] = data.Assignment{Var: vars[i], Value: Replace(a.Value, sigma, gen)}
		}
		return data.WhereOf(Replace(t.Body(), inner, gen), assignments...)
	}
	panic("unhandled term in Replace: " + t.String())
}

// Bind shadows vars in sigma for the scope of a binder, renaming those
// that sigma would otherwise capture. It returns the substitution to use
// inside the scope and the, possibly renamed, bound variables
func Bind(sigma Substitution, vars []*data.Variable, gen *Generator) (*Layer, []*data.Variable) {
	inner := Extend(sigma)
	renamed := make([]*data.Variable, len(vars))
	for i, v := range vars {
		renamed[i] = v
		if sigma.Captures(v) {
			renamed[i] = gen.FreshVariable(v)
		}
		inner = inner.With(v, renamed[i])
	}
	return inner, renamed
}
