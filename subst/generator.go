package subst

import (
	"strconv"
	"strings"

	"github.com/cottand/mcrl/data"
	"github.com/hashicorp/go-set/v3"
)

// Generator produces variable names that do not occur in its context.
// Every name it generates is added to the context.
// It is mutable and not suitable for concurrent use
type Generator struct {
	counter uint64
	context *set.Set[string]
}

func NewGenerator() *Generator {
	return &Generator{context: set.New[string](16)}
}

// Reserve adds names to the context
func (g *Generator) Reserve(names ...string) {
	g.context.InsertSlice(names)
}

// ReserveTerm adds the name of every variable of t, bound or free, to the context
func (g *Generator) ReserveTerm(t data.Term) {
	for v := range data.AllVariables(t) {
		g.context.Insert(v.Name())
	}
}

// ReserveSubstitution adds the variables of the domain and images of sigma to the context
func (g *Generator) ReserveSubstitution(sigma Substitution) {
	for v, t := range sigma.All() {
		g.context.Insert(v.Name())
		g.ReserveTerm(t)
	}
}

func (g *Generator) Reserved(name string) bool {
	return g.context.Contains(name)
}

// Fresh returns a name based on hint that is not in the context
func (g *Generator) Fresh(hint string) string {
	// strip a previously generated suffix so names do not keep growing
	if i := strings.LastIndexByte(hint, '\''); i > 0 {
		if _, err := strconv.ParseUint(hint[i+1:], 10, 64); err == nil {
			hint = hint[:i]
		}
	}
	for {
		g.counter++
		name := hint + "'" + strconv.FormatUint(g.counter, 10)
		if g.context.Insert(name) {
			return name
		}
	}
}

// FreshVariable returns a variable of the same sort as v with a fresh name
func (g *Generator) FreshVariable(v *data.Variable) *data.Variable {
	return data.Var(g.Fresh(v.Name()), v.Sort())
}
