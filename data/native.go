package data

// NativeFunc is the host implementation of a function symbol. It receives
// arguments already in normal form. When the arguments are not of a shape
// it can compute with, like free variables, it returns ok == false and
// rewriting falls back to equations. A non-nil error is a violated precondition
type NativeFunc func(args []Term) (result Term, ok bool, err error)

// Implementation is a native procedure together with the textual name
// it is known by
type Implementation struct {
	Name  string
	Apply NativeFunc
}

// ImplementationMap maps natively implemented function symbols to their procedure
type ImplementationMap map[*FunctionSymbol]Implementation

// Merge copies every entry of other into m and returns m
func (m ImplementationMap) Merge(other ImplementationMap) ImplementationMap {
	for f, impl := range other {
		m[f] = impl
	}
	return m
}
