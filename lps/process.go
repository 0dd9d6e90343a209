// Package lps models linear processes and simplifies them with the rewriter
package lps

import (
	"fmt"
	"slices"
	"strings"

	"github.com/cottand/mcrl/data"
	"github.com/cottand/mcrl/rerr"
	"github.com/cottand/mcrl/util"
	"github.com/cottand/mcrl/util/hset"
)

// Summand is one alternative of a linear process:
//
//	sum SumVariables. Condition -> Action . P(Assignments)
//
// Parameters without an assignment keep their value
type Summand struct {
	SumVariables []*data.Variable
	// Condition is nil when the summand is always enabled
	Condition   data.Term
	Action      string
	Assignments []data.Assignment
}

// NextState returns the value p gets after taking s
func (s Summand) NextState(p *data.Variable) data.Term {
	for _, a := range s.Assignments {
		if a.Var == p {
			return a.Value
		}
	}
	return p
}

func (s Summand) String() string {
	var b strings.Builder
	if len(s.SumVariables) > 0 {
		b.WriteString("sum ")
		b.WriteString(data.ShowVariables(s.SumVariables))
		b.WriteString(". ")
	}
	if s.Condition != nil {
		b.WriteString(s.Condition.String())
		b.WriteString(" -> ")
	}
	b.WriteString(s.Action)
	b.WriteString(" . P(")
	for i, a := range s.Assignments {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(a.Var.Name())
		b.WriteString(" = ")
		b.WriteString(a.Value.String())
	}
	b.WriteString(")")
	return b.String()
}

type Process struct {
	Parameters []*data.Variable
	Summands   []Summand
	// Init holds the initial value of each parameter, in the order of Parameters
	Init []data.Term
}

func (p Process) String() string {
	var b strings.Builder
	b.WriteString("proc P(")
	b.WriteString(data.ShowVariables(p.Parameters))
	b.WriteString(") =\n")
	for i, s := range p.Summands {
		b.WriteString("    ")
		if i > 0 {
			b.WriteString("+ ")
		}
		b.WriteString(s.String())
		b.WriteByte('\n')
	}
	b.WriteString("init P(")
	b.WriteString(strings.Join(data.ShowTerms(p.Init), ", "))
	b.WriteString(");")
	return b.String()
}

// Validate checks that parameters are declared once, that every assignment
// and initial value fits the parameter it is for, and that conditions are boolean
func (p Process) Validate() error {
	var errs *rerr.Errors
	mismatch := func(context string, expected, actual data.Sort) {
		errs = errs.With(rerr.New(rerr.MismatchedSorts{Context: context, Expected: expected.String(), Actual: actual.String()}))
	}
	invalid := func(subject, reason string) {
		errs = errs.With(rerr.New(rerr.InvalidProcess{Subject: subject, Reason: reason}))
	}
	if len(p.Init) != len(p.Parameters) {
		invalid("initial state", fmt.Sprintf("has %d values for %d parameters", len(p.Init), len(p.Parameters)))
		return errs.Err()
	}
	params := hset.Empty[*data.Variable](data.VariableHasher{})
	for i, param := range p.Parameters {
		if params.Contains(param) {
			invalid("parameter "+param.Name(), "is declared more than once")
		}
		params.Add(param)
		if p.Init[i].Sort() != param.Sort() {
			mismatch("initial value of "+param.Name(), param.Sort(), p.Init[i].Sort())
		}
	}
	names := util.SetFromSeq(util.MapIter(slices.Values(p.Parameters), (*data.Variable).Name), len(p.Parameters))
	for i, s := range p.Summands {
		for _, v := range s.SumVariables {
			if names.Contains(v.Name()) {
				invalid(fmt.Sprintf("sum variable %s of summand %d", v.Name(), i), "shadows a parameter")
			}
		}
		if s.Condition != nil && s.Condition.Sort() != data.SortBool {
			mismatch(fmt.Sprintf("condition of summand %d", i), data.SortBool, s.Condition.Sort())
		}
		for _, a := range s.Assignments {
			if !params.Contains(a.Var) {
				invalid(fmt.Sprintf("assignment to %s in summand %d", a.Var.Name(), i), "is not to a parameter")
				continue
			}
			if a.Value.Sort() != a.Var.Sort() {
				mismatch(fmt.Sprintf("assignment to %s in summand %d", a.Var.Name(), i), a.Var.Sort(), a.Value.Sort())
			}
		}
	}
	return errs.Err()
}
