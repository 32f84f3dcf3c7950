// Package registry holds named, swappable tables such as gore calibrations
// and print sheet layouts.
package registry

import (
	"fmt"
	"sort"
	"sync"
)

// Registry maps names to values of type T. The zero value is not usable;
// create registries with New.
//
// Thread safety: all methods are safe for concurrent use.
type Registry[T any] struct {
	kind string

	mu      sync.RWMutex
	entries map[string]T
}

// New creates an empty registry. kind names the registered things in
// panic and error messages ("calibration", "layout", ...).
func New[T any](kind string) *Registry[T] {
	return &Registry[T]{kind: kind, entries: make(map[string]T)}
}

// Register adds a value under name. Like database/sql drivers, tables are
// typically registered from init(); Register panics if name is empty or
// already taken so that conflicts surface at program start.
func (r *Registry[T]) Register(name string, v T) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if name == "" {
		panic("registry: Register " + r.kind + " with empty name")
	}
	if _, dup := r.entries[name]; dup {
		panic("registry: Register called twice for " + r.kind + " " + name)
	}
	r.entries[name] = v
}

// Unregister removes name. It is a no-op for unknown names.
func (r *Registry[T]) Unregister(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.entries, name)
}

// Lookup returns the value registered under name.
func (r *Registry[T]) Lookup(name string) (T, error) {
	r.mu.RLock()
	v, ok := r.entries[name]
	r.mu.RUnlock()

	if !ok {
		var zero T
		return zero, fmt.Errorf("registry: unknown %s %q", r.kind, name)
	}
	return v, nil
}

// Names returns the registered names sorted alphabetically.
func (r *Registry[T]) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.entries))
	for name := range r.entries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
