package data

import "github.com/benbjohnson/immutable"

var (
	_ immutable.Hasher[*Variable] = VariableHasher{}
	_ immutable.Hasher[Term]      = TermHasher{}
)

// VariableHasher hashes variables by their interned identity
type VariableHasher struct{}

func (VariableHasher) Hash(v *Variable) uint32   { return v.id }
func (VariableHasher) Equal(a, b *Variable) bool { return a == b }

type TermHasher struct{}

func (TermHasher) Hash(t Term) uint32   { return t.ID() }
func (TermHasher) Equal(a, b Term) bool { return a == b }
