// Package signature holds the sorts, function symbols, equations and native
// implementations a rewriter works with
package signature

import (
	"cmp"
	"log/slog"
	"slices"
	"sync"

	"github.com/cottand/mcrl/data"
	"github.com/cottand/mcrl/data/sortbool"
	"github.com/cottand/mcrl/data/sortword"
	"github.com/cottand/mcrl/data/standard"
	"github.com/cottand/mcrl/internal/log"
	"github.com/cottand/mcrl/rerr"
	"github.com/hashicorp/go-set/v3"
	"github.com/pkg/errors"
)

// SortLibrary is a system defined sort together with its operations.
// Every method must be pure and idempotent
type SortLibrary interface {
	Sort() data.Sort
	Constructors() []*data.FunctionSymbol
	Mappings() []*data.FunctionSymbol
	Equations() []data.Equation
	NativeConstructors() data.ImplementationMap
	NativeMappings() data.ImplementationMap
}

var (
	_ SortLibrary = sortbool.Library{}
	_ SortLibrary = sortword.Library{}
)

// Signature is safe for concurrent use. Standard functions of a sort are
// generated on first use
type Signature struct {
	mu sync.RWMutex

	sorts         []data.Sort
	declared      *set.Set[data.Sort]
	aliases       map[*data.BasicSort]data.Sort
	constructors  map[data.Sort][]*data.FunctionSymbol
	isConstructor *set.Set[*data.FunctionSymbol]
	mappings      []*data.FunctionSymbol
	isMapping     *set.Set[*data.FunctionSymbol]
	equations     []data.Equation
	byHead        map[*data.FunctionSymbol][]data.Equation
	natives       data.ImplementationMap

	// namedNatives indexes every native procedure registered so far by its name
	namedNatives map[string]data.NativeFunc
	standardDone *set.Set[data.Sort]

	logger *slog.Logger
}

// Empty returns a signature that knows no sorts, not even Bool
func Empty() *Signature {
	return &Signature{
		declared:      set.New[data.Sort](8),
		aliases:       make(map[*data.BasicSort]data.Sort),
		constructors:  make(map[data.Sort][]*data.FunctionSymbol),
		isConstructor: set.New[*data.FunctionSymbol](16),
		isMapping:     set.New[*data.FunctionSymbol](64),
		byHead:        make(map[*data.FunctionSymbol][]data.Equation),
		natives:       make(data.ImplementationMap),
		namedNatives:  make(map[string]data.NativeFunc),
		standardDone:  set.New[data.Sort](8),
		logger:        slog.New(data.SlogHandler(log.DefaultLogger.Handler())).With("section", "signature"),
	}
}

// New returns a signature with the Bool and machine word sorts
func New() *Signature {
	sig := Empty()
	for _, lib := range []SortLibrary{sortbool.Library{}, sortword.Library{}} {
		if err := sig.AddLibrary(lib); err != nil {
			panic("system sort library is invalid: " + err.Error())
		}
	}
	return sig
}

// AddLibrary declares the sort of lib together with all of its
// functions, equations and native implementations
func (s *Signature) AddLibrary(lib SortLibrary) error {
	s.AddSort(lib.Sort())
	for _, f := range lib.Constructors() {
		if err := s.AddConstructor(f); err != nil {
			return err
		}
	}
	for _, f := range lib.Mappings() {
		if err := s.AddMapping(f); err != nil {
			return err
		}
	}
	for _, natives := range []data.ImplementationMap{lib.NativeConstructors(), lib.NativeMappings()} {
		// iterate deterministically so that errors are reproducible
		symbols := make([]*data.FunctionSymbol, 0, len(natives))
		for f := range natives {
			symbols = append(symbols, f)
		}
		slices.SortFunc(symbols, func(a, b *data.FunctionSymbol) int { return cmp.Compare(a.ID(), b.ID()) })
		for _, f := range symbols {
			if err := s.AddNative(f, natives[f]); err != nil {
				return err
			}
		}
	}
	for _, eq := range lib.Equations() {
		if err := s.AddEquation(eq); err != nil {
			return errors.Wrapf(err, "library of sort %s", lib.Sort())
		}
	}
	s.logger.Debug("added sort library", "sort", lib.Sort(), "equations", len(lib.Equations()))
	return nil
}

// AddSort declares sort. Declaring a sort twice has no effect
func (s *Signature) AddSort(sort data.Sort) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.addSortLocked(sort)
}

func (s *Signature) addSortLocked(sort data.Sort) {
	if s.declared.Insert(sort) {
		s.sorts = append(s.sorts, sort)
	}
}

// AddAlias declares name as another name for target
func (s *Signature) AddAlias(name *data.BasicSort, target data.Sort) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.addSortLocked(name)
	s.aliases[name] = target
}

// Resolve follows aliases from sort until it reaches a sort that is not an alias
func (s *Signature) Resolve(sort data.Sort) data.Sort {
	s.mu.RLock()
	defer s.mu.RUnlock()
	seen := set.New[data.Sort](1)
	for {
		basic, ok := sort.(*data.BasicSort)
		if !ok {
			return sort
		}
		target, ok := s.aliases[basic]
		if !ok || !seen.Insert(sort) {
			return sort
		}
		sort = target
	}
}

func targetSort(f *data.FunctionSymbol) data.Sort {
	if fs, ok := f.Sort().(*data.FunctionSort); ok {
		return fs.Codomain()
	}
	return f.Sort()
}

func (s *Signature) AddConstructor(f *data.FunctionSymbol) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.isMapping.Contains(f) {
		return rerr.New(rerr.MismatchedSorts{Context: "constructor declaration", Expected: "constructor", Actual: "mapping " + f.Name()})
	}
	if !s.isConstructor.Insert(f) {
		return nil
	}
	target := targetSort(f)
	s.addSortLocked(target)
	s.constructors[target] = append(s.constructors[target], f)
	return nil
}

func (s *Signature) AddMapping(f *data.FunctionSymbol) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.isConstructor.Contains(f) {
		return rerr.New(rerr.MismatchedSorts{Context: "mapping declaration", Expected: "mapping", Actual: "constructor " + f.Name()})
	}
	if s.isMapping.Insert(f) {
		s.mappings = append(s.mappings, f)
	}
	return nil
}

// AddEquation appends eq to the equations of its head symbol, after
// checking that it is a valid rewrite rule
func (s *Signature) AddEquation(eq data.Equation) error {
	if err := eq.Check(); err != nil {
		return errors.Wrap(err, "adding equation")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.addEquationLocked(eq)
	return nil
}

func (s *Signature) addEquationLocked(eq data.Equation) {
	head, _ := eq.Head()
	s.equations = append(s.equations, eq)
	s.byHead[head] = append(s.byHead[head], eq)
}

// AddNative registers impl as the native implementation of f, which must be declared
func (s *Signature) AddNative(f *data.FunctionSymbol, impl data.Implementation) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if existing, ok := s.natives[f]; ok {
		return rerr.New(rerr.DuplicateNativeImplementation{Symbol: f.Name(), Existing: existing.Name})
	}
	if !s.isConstructor.Contains(f) && !s.isMapping.Contains(f) {
		return rerr.New(rerr.UnknownNativeImplementation{Name: impl.Name + " for undeclared " + f.Name()})
	}
	s.natives[f] = impl
	if impl.Name != "" {
		s.namedNatives[impl.Name] = impl.Apply
	}
	return nil
}

// BindNative makes f natively implemented by the procedure registered under name
func (s *Signature) BindNative(f *data.FunctionSymbol, name string) error {
	s.mu.RLock()
	apply, ok := s.namedNatives[name]
	s.mu.RUnlock()
	if !ok {
		return rerr.New(rerr.UnknownNativeImplementation{Name: name})
	}
	return s.AddNative(f, data.Implementation{Name: name, Apply: apply})
}

func (s *Signature) Sorts() []data.Sort {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.sorts)
}

func (s *Signature) IsDeclared(sort data.Sort) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.declared.Contains(sort)
}

// Constructors returns the constructors of sort, in declaration order.
// The constructors of an alias are those of the sort it names
func (s *Signature) Constructors(sort data.Sort) []*data.FunctionSymbol {
	s.mu.RLock()
	constructors := s.constructors[sort]
	s.mu.RUnlock()
	if len(constructors) == 0 {
		if resolved := s.Resolve(sort); resolved != sort {
			s.mu.RLock()
			constructors = s.constructors[resolved]
			s.mu.RUnlock()
		}
	}
	return slices.Clone(constructors)
}

func (s *Signature) IsConstructor(f *data.FunctionSymbol) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.isConstructor.Contains(f)
}

func (s *Signature) Mappings() []*data.FunctionSymbol {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.mappings)
}

func (s *Signature) Equations() []data.Equation {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.equations)
}

// EquationsFor returns the equations whose left-hand side is headed by f,
// in declaration order. The standard functions of a sort get their equations
// the first time they are asked for
func (s *Signature) EquationsFor(f *data.FunctionSymbol) []data.Equation {
	if sort, ok := standard.SortOf(f); ok {
		s.ensureStandard(sort)
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.byHead[f]
}

// Native returns the native implementation of f, if any
func (s *Signature) Native(f *data.FunctionSymbol) (data.Implementation, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	impl, ok := s.natives[f]
	return impl, ok
}

// Natives returns a copy of every registered native implementation
func (s *Signature) Natives() data.ImplementationMap {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return make(data.ImplementationMap, len(s.natives)).Merge(s.natives)
}

// StandardFunctions returns ==, !=, if, <, <=, > and >= for sort,
// declaring them and their equations on first use
func (s *Signature) StandardFunctions(sort data.Sort) []*data.FunctionSymbol {
	s.ensureStandard(sort)
	return standard.Functions(sort)
}

func (s *Signature) ensureStandard(sort data.Sort) {
	s.mu.RLock()
	done := s.standardDone.Contains(sort)
	s.mu.RUnlock()
	if done {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.standardDone.Insert(sort) {
		return
	}
	for _, f := range standard.Functions(sort) {
		if s.isMapping.Insert(f) {
			s.mappings = append(s.mappings, f)
		}
	}
	for _, eq := range standard.Equations(sort) {
		s.addEquationLocked(eq)
	}
	s.logger.Debug("generated standard functions", "sort", sort)
}

// IsEnumerable reports whether sort has finitely many values, all of which
// are constructor constants
func (s *Signature) IsEnumerable(sort data.Sort) bool {
	constructors := s.Constructors(sort)
	if len(constructors) == 0 {
		return false
	}
	for _, c := range constructors {
		if c.Arity() != 0 {
			return false
		}
	}
	return true
}
