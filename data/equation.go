package data

import (
	"fmt"
	"strings"

	"github.com/cottand/mcrl/rerr"
	"github.com/hashicorp/go-set/v3"
)

// Equation is the guarded rewrite rule `Condition -> LHS = RHS`.
// Condition is nil for unconditional equations
type Equation struct {
	Variables []*Variable
	Condition Term
	LHS       Term
	RHS       Term
}

func NewEquation(vars []*Variable, lhs, rhs Term) Equation {
	return Equation{Variables: vars, LHS: lhs, RHS: rhs}
}

func NewConditionalEquation(vars []*Variable, condition, lhs, rhs Term) Equation {
	return Equation{Variables: vars, Condition: condition, LHS: lhs, RHS: rhs}
}

// Head is the function symbol the equation defines
func (e Equation) Head() (*FunctionSymbol, bool) {
	return HeadSymbol(e.LHS)
}

func (e Equation) String() string {
	var b strings.Builder
	if len(e.Variables) > 0 {
		b.WriteString("var ")
		b.WriteString(ShowVariables(e.Variables))
		b.WriteString("; ")
	}
	if e.Condition != nil {
		b.WriteString(e.Condition.String())
		b.WriteString(" -> ")
	}
	b.WriteString(e.LHS.String())
	b.WriteString(" = ")
	b.WriteString(e.RHS.String())
	return b.String()
}

// Check reports whether e can be used as a left-to-right rewrite rule:
// variables of the left-hand side are declared, variables of the condition
// and right-hand side occur in the left-hand side, both sides have the same
// sort and the left-hand side is headed by a function symbol
func (e Equation) Check() error {
	invalid := func(format string, args ...any) error {
		return rerr.New(rerr.InvalidRewriteRule{Rule: e.String(), Reason: fmt.Sprintf(format, args...)})
	}
	if _, ok := e.LHS.(*Variable); ok {
		return invalid("left-hand side is a variable")
	}
	if _, ok := e.Head(); !ok {
		return invalid("left-hand side is not headed by a function symbol")
	}
	if e.LHS.Sort() != e.RHS.Sort() {
		return invalid("left-hand side has sort %s, right-hand side has sort %s", e.LHS.Sort(), e.RHS.Sort())
	}
	if e.Condition != nil && e.Condition.Sort() != SortBool {
		return invalid("condition has sort %s instead of Bool", e.Condition.Sort())
	}
	if binder, found := findBinder(e.LHS); found {
		return invalid("left-hand side contains binder %s", binder)
	}

	declared := set.From(e.Variables)
	lhsVars := FreeVariableSet(e.LHS)
	for _, v := range FreeVariables(e.LHS) {
		if !declared.Contains(v) {
			return invalid("variable %s in left-hand side is not declared", v)
		}
	}
	if e.Condition != nil {
		for _, v := range FreeVariables(e.Condition) {
			if !lhsVars.Contains(v) {
				return invalid("variable %s in condition does not occur in left-hand side", v)
			}
		}
	}
	for _, v := range FreeVariables(e.RHS) {
		if !lhsVars.Contains(v) {
			return invalid("variable %s in right-hand side does not occur in left-hand side", v)
		}
	}
	return nil
}

func findBinder(t Term) (Term, bool) {
	switch t := t.(type) {
	case *Abstraction, *Where:
		return t, true
	case *Application:
		if found, ok := findBinder(t.head); ok {
			return found, true
		}
		for _, arg := range t.args {
			if found, ok := findBinder(arg); ok {
				return found, true
			}
		}
	}
	return nil, false
}
