package secrets

import (
	"context"
	"fmt"
	"sort"
)

// Map is a read-only mapping from secret short name to its decrypted value.
// It is built once at startup and safe for concurrent reads.
type Map struct {
	values map[string]string
}

// NewMap copies values into a new Map
func NewMap(values map[string]string) *Map {
	m := &Map{values: make(map[string]string, len(values))}
	for k, v := range values {
		m.values[k] = v
	}
	return m
}

// Get returns the value stored under name
func (m *Map) Get(name string) (string, bool) {
	if m == nil {
		return "", false
	}
	v, ok := m.values[name]
	return v, ok
}

// Lookup returns the value stored under name or ErrParameterNotFound
func (m *Map) Lookup(name string) (string, error) {
	v, ok := m.Get(name)
	if !ok {
		return "", NewError("Lookup", name, ErrParameterNotFound)
	}
	return v, nil
}

// Names returns the secret names in sorted order
func (m *Map) Names() []string {
	if m == nil {
		return nil
	}
	names := make([]string, 0, len(m.values))
	for k := range m.values {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of secrets held
func (m *Map) Len() int {
	if m == nil {
		return 0
	}
	return len(m.values)
}

// Load fetches every name under prefix from provider and returns the result
// as a Map. It fails if any requested name is absent from the response.
func Load(ctx context.Context, provider Provider, prefix string, names []string) (*Map, error) {
	if len(names) == 0 {
		return nil, NewError("Load", "", ErrNoSecretNames)
	}

	values, err := provider.Fetch(ctx, prefix, names)
	if err != nil {
		return nil, fmt.Errorf("failed to load secrets under %s: %w", prefix, err)
	}

	for _, name := range names {
		if _, ok := values[name]; !ok {
			return nil, NewError("Load", prefix+name, ErrParameterNotFound)
		}
	}

	return NewMap(values), nil
}
