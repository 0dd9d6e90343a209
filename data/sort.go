package data

import (
	"strconv"
	"strings"
)

// Sort is the type of a data expression. Sorts are interned:
// two sorts are structurally equal iff they are the same pointer
type Sort interface {
	ID() uint32
	String() string
	isSort()
}

type BasicSort struct {
	id   uint32
	name string
}

func (s *BasicSort) ID() uint32     { return s.id }
func (s *BasicSort) Name() string   { return s.name }
func (s *BasicSort) String() string { return s.name }
func (*BasicSort) isSort()          {}

// Basic returns the basic sort called name
func Basic(name string) *BasicSort {
	return intern(key[Sort]('s', name), func(id uint32) *BasicSort {
		return &BasicSort{id: id, name: name}
	})
}

var (
	SortBool = Basic("Bool")
	SortWord = Basic("@word")
)

type FunctionSort struct {
	id       uint32
	domain   []Sort
	codomain Sort
}

func (s *FunctionSort) ID() uint32 { return s.id }

// Domain must not be modified
func (s *FunctionSort) Domain() []Sort { return s.domain }
func (s *FunctionSort) Codomain() Sort { return s.codomain }
func (s *FunctionSort) Arity() int     { return len(s.domain) }
func (*FunctionSort) isSort()          {}

func (s *FunctionSort) String() string {
	parts := make([]string, len(s.domain))
	for i, d := range s.domain {
		parts[i] = d.String()
		if _, ok := d.(*FunctionSort); ok {
			parts[i] = "(" + parts[i] + ")"
		}
	}
	return strings.Join(parts, " # ") + " -> " + s.codomain.String()
}

// Arrow returns the function sort from domain to codomain.
// An empty domain yields codomain itself
func Arrow(domain []Sort, codomain Sort) Sort {
	if len(domain) == 0 {
		return codomain
	}
	children := append(append(make([]Sort, 0, len(domain)+1), domain...), codomain)
	return intern(key('f', "", children...), func(id uint32) *FunctionSort {
		return &FunctionSort{id: id, domain: append([]Sort(nil), domain...), codomain: codomain}
	})
}

// StructuredField is an argument of a structured sort constructor.
// Projection may be empty when no projection function is declared
type StructuredField struct {
	Projection string
	Sort       Sort
}

type StructuredConstructor struct {
	Name   string
	Fields []StructuredField
	// Recogniser may be empty when no recogniser function is declared
	Recogniser string
}

func (c StructuredConstructor) String() string {
	var b strings.Builder
	b.WriteString(c.Name)
	if len(c.Fields) > 0 {
		b.WriteByte('(')
		for i, f := range c.Fields {
			if i > 0 {
				b.WriteString(", ")
			}
			if f.Projection != "" {
				b.WriteString(f.Projection)
				b.WriteString(": ")
			}
			b.WriteString(f.Sort.String())
		}
		b.WriteByte(')')
	}
	if c.Recogniser != "" {
		b.WriteByte('?')
		b.WriteString(c.Recogniser)
	}
	return b.String()
}

// StructuredSort is a sort defined by its constructors, like
//
//	struct c1(p1: S1, p2: S2)?is_c1 | c2
type StructuredSort struct {
	id           uint32
	constructors []StructuredConstructor
}

func (s *StructuredSort) ID() uint32 { return s.id }

// Constructors must not be modified
func (s *StructuredSort) Constructors() []StructuredConstructor { return s.constructors }
func (*StructuredSort) isSort()                                 {}

func (s *StructuredSort) String() string {
	parts := make([]string, len(s.constructors))
	for i, c := range s.constructors {
		parts[i] = c.String()
	}
	return "struct " + strings.Join(parts, " | ")
}

func Struct(constructors ...StructuredConstructor) *StructuredSort {
	var fieldSorts []Sort
	var names strings.Builder
	for _, c := range constructors {
		names.WriteString(strconv.Quote(c.Name))
		names.WriteString(strconv.Quote(c.Recogniser))
		names.WriteString(strconv.Itoa(len(c.Fields)))
		for _, f := range c.Fields {
			names.WriteString(strconv.Quote(f.Projection))
			fieldSorts = append(fieldSorts, f.Sort)
		}
	}
	return intern(key('t', names.String(), fieldSorts...), func(id uint32) *StructuredSort {
		copied := make([]StructuredConstructor, len(constructors))
		for i, c := range constructors {
			c.Fields = append([]StructuredField(nil), c.Fields...)
			copied[i] = c
		}
		return &StructuredSort{id: id, constructors: copied}
	})
}

// IsFunctionSort reports whether s is a function sort of the given arity
func IsFunctionSort(s Sort, arity int) bool {
	fs, ok := s.(*FunctionSort)
	return ok && fs.Arity() == arity
}
