package data

import (
	"strconv"
	"strings"
	"sync"
)

// pool interns every sort and term built through this package, so that
// two structurally equal values are always the same pointer.
// It is safe for concurrent use
type pool struct {
	mu      sync.Mutex
	entries map[string]any
	next    uint32
}

var interned = &pool{entries: make(map[string]any)}

func intern[T any](key string, mk func(id uint32) T) T {
	interned.mu.Lock()
	defer interned.mu.Unlock()
	if existing, ok := interned.entries[key]; ok {
		return existing.(T)
	}
	interned.next++
	created := mk(interned.next)
	interned.entries[key] = created
	return created
}

type identified interface {
	ID() uint32
}

// key builds the pool key for a node tagged kind with the given name and children
func key[T identified](kind byte, name string, children ...T) string {
	var b strings.Builder
	b.WriteByte(kind)
	b.WriteByte('|')
	b.WriteString(strconv.Quote(name))
	for _, child := range children {
		b.WriteByte('|')
		b.WriteString(strconv.FormatUint(uint64(child.ID()), 36))
	}
	return b.String()
}
