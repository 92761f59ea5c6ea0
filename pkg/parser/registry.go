package parser

import (
	"fmt"
)

// Factory instantiates a parser. It fails when the parser cannot be loaded,
// for example because an external command it depends on is missing.
type Factory func() (Parser, error)

// Entry is one named registration.
type Entry struct {
	Name string
	New  Factory
}

// Registry is an ordered catalog of parser factories. It is populated once
// at startup and read-only afterwards, so it may be shared freely.
type Registry struct {
	entries []Entry
	index   map[string]int
}

// NewRegistry returns a registry holding entries in the given order.
// Names must be non-empty and unique.
func NewRegistry(entries ...Entry) (*Registry, error) {
	r := &Registry{
		entries: make([]Entry, 0, len(entries)),
		index:   make(map[string]int, len(entries)),
	}
	for _, e := range entries {
		if e.Name == "" {
			return nil, fmt.Errorf("parser registered without a name")
		}
		if e.New == nil {
			return nil, fmt.Errorf("parser %q has no factory", e.Name)
		}
		if _, dup := r.index[e.Name]; dup {
			return nil, fmt.Errorf("parser %q registered twice", e.Name)
		}
		r.index[e.Name] = len(r.entries)
		r.entries = append(r.entries, e)
	}
	return r, nil
}

// All returns the registered entries in registration order.
func (r *Registry) All() []Entry {
	out := make([]Entry, len(r.entries))
	copy(out, r.entries)
	return out
}

// ByName returns the entry registered under name.
func (r *Registry) ByName(name string) (Entry, bool) {
	i, ok := r.index[name]
	if !ok {
		return Entry{}, false
	}
	return r.entries[i], true
}

// Names returns the registered names in registration order.
func (r *Registry) Names() []string {
	names := make([]string, len(r.entries))
	for i, e := range r.entries {
		names[i] = e.Name
	}
	return names
}

// Len returns the number of registered parsers.
func (r *Registry) Len() int { return len(r.entries) }
