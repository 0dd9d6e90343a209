package rewr

import (
	"fmt"
	"slices"
)

const (
	// Innermost normalises arguments before trying natives and equations
	Innermost = "innermost"
)

var strategies = []string{Innermost}

type Settings struct {
	Strategy string `yaml:"strategy"`
	// NativeImplementations makes natively implemented function symbols
	// use their native procedure before any equation
	NativeImplementations bool `yaml:"native_implementations"`
	// EnumerateQuantifiers expands quantifiers over sorts with finitely
	// many constant constructors into conjunctions and disjunctions
	EnumerateQuantifiers bool `yaml:"enumerate_quantifiers"`
	// MaxEnumeration bounds how many instances a single quantifier
	// may be expanded into
	MaxEnumeration int `yaml:"max_enumeration"`
}

func DefaultSettings() Settings {
	return Settings{
		Strategy:              Innermost,
		NativeImplementations: true,
		EnumerateQuantifiers:  true,
		MaxEnumeration:        1024,
	}
}

func (s Settings) Validate() error {
	if !slices.Contains(strategies, s.Strategy) {
		return fmt.Errorf("unknown rewrite strategy '%s', expected one of %v", s.Strategy, strategies)
	}
	if s.MaxEnumeration < 0 {
		return fmt.Errorf("max_enumeration must not be negative, got %d", s.MaxEnumeration)
	}
	return nil
}
