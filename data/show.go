package data

import (
	"strconv"
	"strings"
)

var infixOperators = map[string]bool{
	"==": true, "!=": true, "<": true, "<=": true, ">": true, ">=": true,
	"&&": true, "||": true, "=>": true,
}

func (v *Variable) String() string       { return v.name }
func (f *FunctionSymbol) String() string { return f.name }
func (n *MachineNumber) String() string  { return strconv.FormatUint(n.value, 10) }

func (a *Application) String() string {
	var b strings.Builder
	writeTerm(&b, a)
	return b.String()
}

func (a *Abstraction) String() string {
	var b strings.Builder
	writeTerm(&b, a)
	return b.String()
}

func (w *Where) String() string {
	var b strings.Builder
	writeTerm(&b, w)
	return b.String()
}

func writeTerm(b *strings.Builder, t Term) {
	switch t := t.(type) {
	case *Application:
		if f, ok := t.head.(*FunctionSymbol); ok {
			if len(t.args) == 2 && infixOperators[f.name] {
				b.WriteByte('(')
				writeTerm(b, t.args[0])
				b.WriteString(" " + f.name + " ")
				writeTerm(b, t.args[1])
				b.WriteByte(')')
				return
			}
			if len(t.args) == 1 && f.name == "!" {
				b.WriteByte('!')
				writeTerm(b, t.args[0])
				return
			}
		}
		if _, ok := t.head.(*Abstraction); ok {
			b.WriteByte('(')
			writeTerm(b, t.head)
			b.WriteByte(')')
		} else {
			writeTerm(b, t.head)
		}
		b.WriteByte('(')
		for i, arg := range t.args {
			if i > 0 {
				b.WriteString(", ")
			}
			writeTerm(b, arg)
		}
		b.WriteByte(')')
	case *Abstraction:
		b.WriteString(t.binder.String())
		b.WriteByte(' ')
		writeVariables(b, t.vars)
		b.WriteString(". ")
		writeTerm(b, t.body)
	case *Where:
		writeTerm(b, t.body)
		b.WriteString(" whr ")
		for i, a := range t.assignments {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(a.Var.name)
			b.WriteString(" = ")
			writeTerm(b, a.Value)
		}
		b.WriteString(" end")
	default:
		b.WriteString(t.String())
	}
}

func writeVariables(b *strings.Builder, vars []*Variable) {
	for i, v := range vars {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(v.name)
		b.WriteString(": ")
		b.WriteString(v.sort.String())
	}
}

// ShowVariables renders vars as a declaration list, like `x: Bool, w: @word`
func ShowVariables(vars []*Variable) string {
	var b strings.Builder
	writeVariables(&b, vars)
	return b.String()
}

// ShowTerms renders each of ts with String
func ShowTerms(ts []Term) []string {
	shown := make([]string, len(ts))
	for i, t := range ts {
		shown[i] = t.String()
	}
	return shown
}
