// Package hset implements a set of hashable elements, JVM style
package hset

import (
	"github.com/benbjohnson/immutable"
)

// HSet is a shallow wrapper around a map keyed by hash.
// Elements with colliding hashes replace each other, so the
// hasher must be injective over the elements stored
type HSet[A any] struct {
	hasher     immutable.Hasher[A]
	underlying map[uint32]A
}

func Empty[A any](hasher immutable.Hasher[A]) HSet[A] {
	return HSet[A]{
		hasher:     hasher,
		underlying: make(map[uint32]A),
	}
}

func (s HSet[A]) Add(elems ...A) {
	for _, elem := range elems {
		s.underlying[s.hasher.Hash(elem)] = elem
	}
}

func (s HSet[A]) Contains(elem A) bool {
	e, ok := s.underlying[s.hasher.Hash(elem)]
	return ok && s.hasher.Equal(e, elem)
}
