// Package subst implements substitutions of data expressions for variables,
// capture avoiding replacement and fresh name generation
package subst

import (
	"iter"
	"maps"
	"slices"
	"strings"

	"github.com/benbjohnson/immutable"
	"github.com/cottand/mcrl/data"
)

// Substitution maps variables to terms and is the identity outside its domain
type Substitution interface {
	Apply(v *data.Variable) data.Term
	// Lookup returns the image of v when v is in the domain
	Lookup(v *data.Variable) (data.Term, bool)
	// Captures reports whether v occurs free in the image of
	// some variable of the domain, so that binding v under a binder
	// would capture it
	Captures(v *data.Variable) bool
	// All yields the bindings of the domain. A variable may be yielded more
	// than once when a binding is shadowed
	All() iter.Seq2[*data.Variable, data.Term]
}

type identity struct{}

func (identity) Apply(v *data.Variable) data.Term        { return v }
func (identity) Lookup(*data.Variable) (data.Term, bool) { return nil, false }
func (identity) Captures(*data.Variable) bool            { return false }
func (identity) All() iter.Seq2[*data.Variable, data.Term] {
	return func(func(*data.Variable, data.Term) bool) {}
}

// Identity is the empty substitution
var Identity Substitution = identity{}

// Map is a mutable substitution. It is not safe for concurrent use
type Map struct {
	bindings map[*data.Variable]data.Term
}

func NewMap() *Map {
	return &Map{bindings: make(map[*data.Variable]data.Term)}
}

// Of builds a Map from assignments
func Of(pairs ...data.Assignment) *Map {
	m := NewMap()
	for _, p := range pairs {
		m.Set(p.Var, p.Value)
	}
	return m
}

// Set binds v to t. Binding v to itself keeps v in the domain
func (m *Map) Set(v *data.Variable, t data.Term) {
	m.bindings[v] = t
}

func (m *Map) Erase(v *data.Variable) {
	delete(m.bindings, v)
}

func (m *Map) Apply(v *data.Variable) data.Term {
	if t, ok := m.bindings[v]; ok {
		return t
	}
	return v
}

func (m *Map) Lookup(v *data.Variable) (data.Term, bool) {
	t, ok := m.bindings[v]
	return t, ok
}

func (m *Map) Captures(v *data.Variable) bool {
	for bound, t := range m.bindings {
		if bound != v && data.OccursFree(v, t) {
			return true
		}
	}
	return false
}

func (m *Map) Len() int { return len(m.bindings) }

// All iterates the bindings in no particular order
func (m *Map) All() iter.Seq2[*data.Variable, data.Term] {
	return maps.All(m.bindings)
}

func (m *Map) Clone() *Map {
	return &Map{bindings: maps.Clone(m.bindings)}
}

// Equal reports whether m and other have the same bindings
func (m *Map) Equal(other *Map) bool {
	return maps.Equal(m.bindings, other.bindings)
}

func (m *Map) String() string {
	shown := make([]string, 0, len(m.bindings))
	for v, t := range m.bindings {
		shown = append(shown, v.Name()+" := "+t.String())
	}
	slices.Sort(shown)
	return "[" + strings.Join(shown, ", ") + "]"
}

// Layer extends a parent substitution with bindings of its own without
// modifying the parent. Extending a Layer returns a new Layer
type Layer struct {
	parent   Substitution
	bindings *immutable.Map[*data.Variable, data.Term]
}

// Extend returns parent with no additional bindings
func Extend(parent Substitution) *Layer {
	if layer, ok := parent.(*Layer); ok {
		return layer
	}
	return &Layer{parent: parent, bindings: immutable.NewMap[*data.Variable, data.Term](data.VariableHasher{})}
}

// With returns a Layer where v is bound to t, shadowing any binding of v in l
func (l *Layer) With(v *data.Variable, t data.Term) *Layer {
	return &Layer{parent: l.parent, bindings: l.bindings.Set(v, t)}
}

func (l *Layer) Apply(v *data.Variable) data.Term {
	if t, ok := l.bindings.Get(v); ok {
		return t
	}
	return l.parent.Apply(v)
}

func (l *Layer) Lookup(v *data.Variable) (data.Term, bool) {
	if t, ok := l.bindings.Get(v); ok {
		return t, true
	}
	return l.parent.Lookup(v)
}

func (l *Layer) Captures(v *data.Variable) bool {
	itr := l.bindings.Iterator()
	for !itr.Done() {
		bound, t, _ := itr.Next()
		if bound != v && data.OccursFree(v, t) {
			return true
		}
	}
	return l.parent.Captures(v)
}

func (l *Layer) All() iter.Seq2[*data.Variable, data.Term] {
	return func(yield func(*data.Variable, data.Term) bool) {
		itr := l.bindings.Iterator()
		for !itr.Done() {
			v, t, _ := itr.Next()
			if !yield(v, t) {
				return
			}
		}
		for v, t := range l.parent.All() {
			if !yield(v, t) {
				return
			}
		}
	}
}

// Len is the number of bindings of l, not counting those of its parent
func (l *Layer) Len() int { return l.bindings.Len() }
