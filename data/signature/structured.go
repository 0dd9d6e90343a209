package signature

import (
	"fmt"

	"github.com/cottand/mcrl/data"
	"github.com/cottand/mcrl/data/sortbool"
	"github.com/cottand/mcrl/data/standard"
	"github.com/cottand/mcrl/rerr"
	"github.com/pkg/errors"
)

// AddStructuredSort declares name as an alias of the structured sort with the
// given constructors, and generates its constructor, projection and recogniser
// functions together with the equations defining them and ==, < and <=
func (s *Signature) AddStructuredSort(name string, constructors ...data.StructuredConstructor) (*data.BasicSort, error) {
	sort := data.Basic(name)
	if len(constructors) == 0 {
		return nil, rerr.New(rerr.UndeclaredSort{Sort: name + " (structured sort without constructors)"})
	}
	for _, c := range constructors {
		for _, field := range c.Fields {
			if !s.IsDeclared(field.Sort) && field.Sort != sort {
				return nil, rerr.New(rerr.UndeclaredSort{Sort: field.Sort.String()})
			}
		}
	}
	s.AddAlias(sort, data.Struct(constructors...))

	gen := structGenerator{sort: sort, constructors: constructors}
	for _, c := range gen.constructorSymbols() {
		if err := s.AddConstructor(c); err != nil {
			return nil, err
		}
	}
	mappings := append(gen.projections(), gen.recognisers()...)
	for _, f := range mappings {
		if err := s.AddMapping(f); err != nil {
			return nil, err
		}
	}
	equations := gen.projectionEquations()
	equations = append(equations, gen.recogniserEquations()...)
	equations = append(equations, gen.comparisonEquations()...)
	for _, eq := range equations {
		if err := s.AddEquation(eq); err != nil {
			return nil, errors.Wrapf(err, "structured sort %s", name)
		}
	}
	s.logger.Debug("added structured sort", "sort", sort, "constructors", len(constructors), "equations", len(equations))
	return sort, nil
}

type structGenerator struct {
	sort         *data.BasicSort
	constructors []data.StructuredConstructor
}

func (g structGenerator) symbol(c data.StructuredConstructor) *data.FunctionSymbol {
	domain := make([]data.Sort, len(c.Fields))
	for i, f := range c.Fields {
		domain[i] = f.Sort
	}
	return data.Func(c.Name, data.Arrow(domain, g.sort))
}

func (g structGenerator) constructorSymbols() []*data.FunctionSymbol {
	symbols := make([]*data.FunctionSymbol, len(g.constructors))
	for i, c := range g.constructors {
		symbols[i] = g.symbol(c)
	}
	return symbols
}

// variables returns one fresh variable per field of c, named prefix1, prefix2...
func (g structGenerator) variables(c data.StructuredConstructor, prefix string) []*data.Variable {
	vars := make([]*data.Variable, len(c.Fields))
	for i, f := range c.Fields {
		vars[i] = data.Var(fmt.Sprintf("%s%d", prefix, i+1), f.Sort)
	}
	return vars
}

func (g structGenerator) instance(c data.StructuredConstructor, vars []*data.Variable) data.Term {
	args := make([]data.Term, len(vars))
	for i, v := range vars {
		args[i] = v
	}
	return data.Apply(g.symbol(c), args...)
}

func (g structGenerator) projection(f data.StructuredField) *data.FunctionSymbol {
	return data.Func(f.Projection, data.Arrow([]data.Sort{g.sort}, f.Sort))
}

func (g structGenerator) recogniser(c data.StructuredConstructor) *data.FunctionSymbol {
	return data.Func(c.Recogniser, data.Arrow([]data.Sort{g.sort}, data.SortBool))
}

func (g structGenerator) projections() []*data.FunctionSymbol {
	var symbols []*data.FunctionSymbol
	for _, c := range g.constructors {
		for _, f := range c.Fields {
			if f.Projection != "" {
				symbols = append(symbols, g.projection(f))
			}
		}
	}
	return symbols
}

func (g structGenerator) recognisers() []*data.FunctionSymbol {
	var symbols []*data.FunctionSymbol
	for _, c := range g.constructors {
		if c.Recogniser != "" {
			symbols = append(symbols, g.recogniser(c))
		}
	}
	return symbols
}

func (g structGenerator) projectionEquations() []data.Equation {
	var equations []data.Equation
	for _, c := range g.constructors {
		vars := g.variables(c, "x")
		for i, f := range c.Fields {
			if f.Projection == "" {
				continue
			}
			lhs := data.App(g.projection(f), g.instance(c, vars))
			equations = append(equations, data.NewEquation(vars, lhs, vars[i]))
		}
	}
	return equations
}

func (g structGenerator) recogniserEquations() []data.Equation {
	var equations []data.Equation
	for _, r := range g.constructors {
		if r.Recogniser == "" {
			continue
		}
		for _, c := range g.constructors {
			vars := g.variables(c, "x")
			lhs := data.App(g.recogniser(r), g.instance(c, vars))
			equations = append(equations, data.NewEquation(vars, lhs, sortbool.Of(r.Name == c.Name)))
		}
	}
	return equations
}

// comparisonEquations orders values first by constructor, in declaration
// order, and then lexicographically by fields
func (g structGenerator) comparisonEquations() []data.Equation {
	var equations []data.Equation
	for i, ci := range g.constructors {
		xs := g.variables(ci, "x")
		left := g.instance(ci, xs)
		for j, cj := range g.constructors {
			ys := g.variables(cj, "y")
			right := g.instance(cj, ys)
			vars := append(append([]*data.Variable(nil), xs...), ys...)
			if i != j {
				equations = append(equations,
					data.NewEquation(vars, standard.MakeEqual(left, right), sortbool.False()),
					data.NewEquation(vars, standard.MakeLess(left, right), sortbool.Of(i < j)),
					data.NewEquation(vars, standard.MakeLessEqual(left, right), sortbool.Of(i < j)),
				)
				continue
			}
			if len(xs) == 0 {
				// c == c, c < c and c <= c follow from the standard equations
				continue
			}
			var fieldsEqual []data.Term
			for k := range xs {
				fieldsEqual = append(fieldsEqual, standard.MakeEqual(xs[k], ys[k]))
			}
			equations = append(equations,
				data.NewEquation(vars, standard.MakeEqual(left, right), sortbool.Conjunction(fieldsEqual...)),
				data.NewEquation(vars, standard.MakeLess(left, right), lexicographic(xs, ys, standard.MakeLess)),
				data.NewEquation(vars, standard.MakeLessEqual(left, right), lexicographic(xs, ys, standard.MakeLessEqual)),
			)
		}
	}
	return equations
}

// lexicographic compares xs and ys field by field, using last on the final pair
func lexicographic(xs, ys []*data.Variable, last func(a, b data.Term) data.Term) data.Term {
	n := len(xs) - 1
	result := last(xs[n], ys[n])
	for k := n - 1; k >= 0; k-- {
		result = sortbool.MakeOr(
			standard.MakeLess(xs[k], ys[k]),
			sortbool.MakeAnd(standard.MakeEqual(xs[k], ys[k]), result),
		)
	}
	return result
}
