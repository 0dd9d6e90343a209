package data

import (
	"iter"
	"sort"

	"github.com/hashicorp/go-set/v3"
	xset "github.com/xtgo/set"
)

type byID []*Variable

func (s byID) Len() int           { return len(s) }
func (s byID) Less(i, j int) bool { return s[i].id < s[j].id }
func (s byID) Swap(i, j int)      { s[i], s[j] = s[j], s[i] }

// FreeOccurrences yields every free occurrence of a variable in t,
// possibly repeating variables
func FreeOccurrences(t Term) iter.Seq[*Variable] {
	return func(yield func(*Variable) bool) {
		walkFree(t, set.New[*Variable](0), yield)
	}
}

func walkFree(t Term, bound *set.Set[*Variable], yield func(*Variable) bool) bool {
	switch t := t.(type) {
	case *Variable:
		if bound.Contains(t) {
			return true
		}
		return yield(t)
	case *Application:
		if !walkFree(t.head, bound, yield) {
			return false
		}
		for _, arg := range t.args {
			if !walkFree(arg, bound, yield) {
				return false
			}
		}
		return true
	case *Abstraction:
		newlyBound := bindAll(bound, t.vars)
		defer bound.RemoveSlice(newlyBound)
		return walkFree(t.body, bound, yield)
	case *Where:
		vars := make([]*Variable, len(t.assignments))
		for i, a := range t.assignments {
			if !walkFree(a.Value, bound, yield) {
				return false
			}
			vars[i] = a.Var
		}
		newlyBound := bindAll(bound, vars)
		defer bound.RemoveSlice(newlyBound)
		return walkFree(t.body, bound, yield)
	default:
		return true
	}
}

func bindAll(bound *set.Set[*Variable], vars []*Variable) []*Variable {
	var newlyBound []*Variable
	for _, v := range vars {
		if bound.Insert(v) {
			newlyBound = append(newlyBound, v)
		}
	}
	return newlyBound
}

// FreeVariables returns the variables occurring free in t, without
// duplicates and in a deterministic order
func FreeVariables(t Term) []*Variable {
	var found byID
	for v := range FreeOccurrences(t) {
		found = append(found, v)
	}
	sort.Sort(found)
	return found[:xset.Uniq(found)]
}

// FreeVariableSet is like FreeVariables but returns a set
func FreeVariableSet(t Term) *set.Set[*Variable] {
	s := set.New[*Variable](4)
	for v := range FreeOccurrences(t) {
		s.Insert(v)
	}
	return s
}

func OccursFree(v *Variable, t Term) bool {
	for occurrence := range FreeOccurrences(t) {
		if occurrence == v {
			return true
		}
	}
	return false
}

func IsClosed(t Term) bool {
	for range FreeOccurrences(t) {
		return false
	}
	return true
}

// AllVariables yields every variable in t, free, bound or declared by a binder
func AllVariables(t Term) iter.Seq[*Variable] {
	return func(yield func(*Variable) bool) {
		walkAll(t, yield)
	}
}

func walkAll(t Term, yield func(*Variable) bool) bool {
	switch t := t.(type) {
	case *Variable:
		return yield(t)
	case *Application:
		if !walkAll(t.head, yield) {
			return false
		}
		for _, arg := range t.args {
			if !walkAll(arg, yield) {
				return false
			}
		}
	case *Abstraction:
		for _, v := range t.vars {
			if !yield(v) {
				return false
			}
		}
		return walkAll(t.body, yield)
	case *Where:
		for _, a := range t.assignments {
			if !yield(a.Var) || !walkAll(a.Value, yield) {
				return false
			}
		}
		return walkAll(t.body, yield)
	}
	return true
}
