// Package translations provides the ordered string map used for locale files
// and its JSON codec.
//
// A Map keeps keys in insertion order so that files rewritten by langsync
// produce minimal diffs. Absence of a key is distinct from a key holding the
// empty string.
package translations

import (
	"iter"
	"slices"
)

// Map is an ordered mapping from translation key to text.
// The zero value is an empty map ready to use.
type Map struct {
	keys   []string
	values map[string]string
}

// New returns an empty map with room for size keys.
func New(size int) *Map {
	return &Map{
		keys:   make([]string, 0, size),
		values: make(map[string]string, size),
	}
}

// FromPairs builds a map from alternating key, value arguments.
// It panics on an odd number of arguments; it is meant for literals in tests
// and examples.
func FromPairs(kv ...string) *Map {
	if len(kv)%2 != 0 {
		panic("translations: FromPairs requires an even number of arguments")
	}
	m := New(len(kv) / 2)
	for i := 0; i < len(kv); i += 2 {
		m.Set(kv[i], kv[i+1])
	}
	return m
}

// Len returns the number of keys.
func (m *Map) Len() int {
	if m == nil {
		return 0
	}
	return len(m.keys)
}

// Get returns the value for key and whether it is present.
func (m *Map) Get(key string) (string, bool) {
	if m == nil || m.values == nil {
		return "", false
	}
	v, ok := m.values[key]
	return v, ok
}

// Has reports whether key is present.
func (m *Map) Has(key string) bool {
	_, ok := m.Get(key)
	return ok
}

// Set stores value under key. New keys are appended; existing keys keep
// their position.
func (m *Map) Set(key, value string) {
	if m.values == nil {
		m.values = make(map[string]string)
	}
	if _, ok := m.values[key]; !ok {
		m.keys = append(m.keys, key)
	}
	m.values[key] = value
}

// Delete removes key. It is a no-op if the key is absent.
func (m *Map) Delete(key string) {
	if m == nil || m.values == nil {
		return
	}
	if _, ok := m.values[key]; !ok {
		return
	}
	delete(m.values, key)
	if i := slices.Index(m.keys, key); i >= 0 {
		m.keys = slices.Delete(m.keys, i, i+1)
	}
}

// Keys returns a copy of the keys in order.
func (m *Map) Keys() []string {
	if m == nil {
		return nil
	}
	return slices.Clone(m.keys)
}

// All iterates over key, value pairs in order.
func (m *Map) All() iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		if m == nil {
			return
		}
		for _, k := range m.keys {
			if !yield(k, m.values[k]) {
				return
			}
		}
	}
}

// Clone returns a deep copy. Cloning a nil map returns nil.
func (m *Map) Clone() *Map {
	if m == nil {
		return nil
	}
	c := New(len(m.keys))
	for k, v := range m.All() {
		c.Set(k, v)
	}
	return c
}

// Equal reports whether both maps hold the same keys, values and order.
func (m *Map) Equal(other *Map) bool {
	if m.Len() != other.Len() {
		return false
	}
	for i, k := range m.Keys() {
		if other.keys[i] != k || other.values[k] != m.values[k] {
			return false
		}
	}
	return true
}

// ToStdMap returns the contents as a plain Go map.
func (m *Map) ToStdMap() map[string]string {
	out := make(map[string]string, m.Len())
	for k, v := range m.All() {
		out[k] = v
	}
	return out
}
