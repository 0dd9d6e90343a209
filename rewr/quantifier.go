package rewr

import (
	"github.com/cottand/mcrl/data"
	"github.com/cottand/mcrl/data/sortbool"
	"github.com/cottand/mcrl/subst"
	"github.com/cottand/mcrl/util/hset"
)

// quantifier builds the normal form of a quantifier whose body is already
// normal. Variables not occurring in body are dropped, and variables
// of enumerable sorts are expanded when enabled
func (r *Rewriter) quantifier(c *call, binder data.Binder, vars []*data.Variable, body data.Term) (data.Term, error) {
	var used []*data.Variable
	for _, v := range vars {
		if data.OccursFree(v, body) {
			used = append(used, v)
		}
	}
	if len(used) == 0 {
		return body, nil
	}
	if !r.settings.EnumerateQuantifiers {
		return data.Abstract(binder, used, body), nil
	}

	var domains [][]*data.FunctionSymbol
	instances := 1
	for _, v := range used {
		if !r.sig.IsEnumerable(v.Sort()) {
			return data.Abstract(binder, used, body), nil
		}
		domain := r.sig.Constructors(v.Sort())
		domains = append(domains, domain)
		instances *= len(domain)
		if instances > r.settings.MaxEnumeration {
			r.logger.Debug("not enumerating quantifier", "binder", binder.String(), "body", body, "instances", instances)
			return data.Abstract(binder, used, body), nil
		}
	}

	// forall is a conjunction of its instances and exists a disjunction.
	// Stop at the first instance equal to the absorbing element
	absorbing, combine := sortbool.False(), sortbool.Conjunction
	if binder == data.Exists {
		absorbing, combine = sortbool.True(), sortbool.Disjunction
	}
	var residuals []data.Term
	seen := hset.Empty[data.Term](data.TermHasher{})
	choice := make([]int, len(used))
	for {
		sigma := subst.NewMap()
		for i, v := range used {
			sigma.Set(v, domains[i][choice[i]])
		}
		instance, err := r.rewrite(c, body, sigma)
		if err != nil {
			return nil, err
		}
		if instance == data.Term(absorbing) {
			return absorbing, nil
		}
		if !seen.Contains(instance) {
			seen.Add(instance)
			residuals = append(residuals, instance)
		}
		if !next(choice, domains) {
			break
		}
	}
	combined := combine(residuals...)
	if _, ok := combined.(*data.Application); ok {
		// connectives between residuals may simplify further
		return r.rewrite(c, combined, subst.Identity)
	}
	return combined, nil
}

// next advances choice to the following combination of domain elements,
// reporting false once every combination has been visited
func next(choice []int, domains [][]*data.FunctionSymbol) bool {
	for i := len(choice) - 1; i >= 0; i-- {
		choice[i]++
		if choice[i] < len(domains[i]) {
			return true
		}
		choice[i] = 0
	}
	return false
}
