package rewr

import (
	"github.com/cottand/mcrl/data"
	"github.com/cottand/mcrl/data/sortword"
	"github.com/cottand/mcrl/subst"
)

// match extends bindings so that pattern under bindings equals t.
// Variables occurring more than once in pattern must match equal subterms.
// On failure bindings may hold partial results
func match(pattern, t data.Term, bindings *subst.Map) bool {
	if n, ok := t.(*data.MachineNumber); ok {
		return matchWord(pattern, n, bindings)
	}
	switch p := pattern.(type) {
	case *data.Variable:
		return bind(p, t, bindings)
	case *data.Application:
		app, ok := t.(*data.Application)
		if !ok || app.Arity() != p.Arity() {
			return false
		}
		if !match(p.Head(), app.Head(), bindings) {
			return false
		}
		for i, arg := range p.Args() {
			if !match(arg, app.Arg(i), bindings) {
				return false
			}
		}
		return true
	default:
		return pattern == t
	}
}

func bind(v *data.Variable, t data.Term, bindings *subst.Map) bool {
	if bound, ok := bindings.Lookup(v); ok {
		return bound == t
	}
	if v.Sort() != t.Sort() {
		return false
	}
	bindings.Set(v, t)
	return true
}

// matchWord matches a machine number against a pattern that may still be
// written with the word constructors, since natives turn @zero_word into 0
// and @succ_word(n) into n+1 before equations are tried
func matchWord(pattern data.Term, n *data.MachineNumber, bindings *subst.Map) bool {
	switch {
	case sortword.ZeroWord.IsFunctionSymbol(pattern):
		return n.Value() == 0
	case sortword.SuccWord.IsApplication(pattern):
		if n.Value() == 0 {
			return false
		}
		return match(pattern.(*data.Application).Arg(0), data.Word(n.Value()-1), bindings)
	}
	if v, ok := pattern.(*data.Variable); ok {
		return bind(v, n, bindings)
	}
	return pattern == data.Term(n)
}
