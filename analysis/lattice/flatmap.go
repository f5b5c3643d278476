package lattice

import (
	"fmt"
	"strings"

	i "github.com/cs-au-dk/latmap/utils/indenter"

	"golang.org/x/exp/slices"
)

// Entry is a single binding of a FlatMap.
type Entry[K, V any] struct {
	Key   K
	Value V
}

// FlatMap is a sparse map from keys to lattice values, backed by a slice of
// entries sorted by key. Keys that are not stored are implicitly bound to the
// default value of the value policy, and no entry ever stores the default
// value. Because of this, the stored entries are the canonical
// representation of the mapping.
//
// A FlatMap owns its entries: copies made with Clone share nothing with the
// original. FlatMaps are not safe for concurrent mutation.
type FlatMap[K, V any] struct {
	entries []Entry[K, V]
	cmp     Comparer[K]
	policy  Value[V]
}

// NewFlatMap creates a map ordered by cmp whose values follow the given policy.
// The provided entries are inserted in order, so later bindings for the same
// key win.
func NewFlatMap[K, V any](cmp Comparer[K], policy Value[V], entries ...Entry[K, V]) *FlatMap[K, V] {
	m := &FlatMap[K, V]{cmp: cmp, policy: policy}
	for _, e := range entries {
		m.InsertOrAssign(e.Key, e.Value)
	}
	return m
}

// Policy returns the value policy of the map.
func (m *FlatMap[K, V]) Policy() Value[V] {
	return m.policy
}

// Comparer returns the key ordering of the map.
func (m *FlatMap[K, V]) Comparer() Comparer[K] {
	return m.cmp
}

// Size returns the number of explicitly stored (non-default) bindings.
func (m *FlatMap[K, V]) Size() int {
	return len(m.entries)
}

func (m *FlatMap[K, V]) IsEmpty() bool {
	return len(m.entries) == 0
}

// search finds the position of key in entries[from:]. The returned index is
// absolute, and points to the first entry with a key not smaller than key.
func (m *FlatMap[K, V]) search(entries []Entry[K, V], from int, key K) (int, bool) {
	idx, found := slices.BinarySearchFunc(entries[from:], key, func(e Entry[K, V], k K) int {
		return m.cmp.Compare(e.Key, k)
	})
	return from + idx, found
}

// Get retrieves the value bound to k. The boolean reports whether the
// binding is explicitly stored. Missing keys yield the default value.
func (m *FlatMap[K, V]) Get(k K) (V, bool) {
	if idx, found := m.search(m.entries, 0, k); found {
		return m.entries[idx].Value, true
	}
	return m.policy.Default(), false
}

// At retrieves the value bound to k, which is the default value if k is not
// stored.
func (m *FlatMap[K, V]) At(k K) V {
	v, _ := m.Get(k)
	return v
}

// Contains reports whether k is bound to a non-default value.
func (m *FlatMap[K, V]) Contains(k K) bool {
	_, found := m.search(m.entries, 0, k)
	return found
}

// InsertOrAssign binds k to v. Binding k to the default value removes it.
func (m *FlatMap[K, V]) InsertOrAssign(k K, v V) *FlatMap[K, V] {
	if m.policy.IsDefault(v) {
		return m.Remove(k)
	}

	idx, found := m.search(m.entries, 0, k)
	if found {
		m.entries[idx].Value = v
	} else {
		m.entries = slices.Insert(m.entries, idx, Entry[K, V]{k, v})
	}
	return m
}

// Remove drops the binding for k, if present.
func (m *FlatMap[K, V]) Remove(k K) *FlatMap[K, V] {
	if idx, found := m.search(m.entries, 0, k); found {
		m.entries = slices.Delete(m.entries, idx, idx+1)
	}
	return m
}

// Update rebinds k to op(v), where v is the current value at k (the default
// value if k is absent). If the result is the default value, k ends up absent.
func (m *FlatMap[K, V]) Update(op func(V) V, k K) *FlatMap[K, V] {
	idx, found := m.search(m.entries, 0, k)
	if !found {
		if v := op(m.policy.Default()); !m.policy.IsDefault(v) {
			m.entries = slices.Insert(m.entries, idx, Entry[K, V]{k, v})
		}
		return m
	}

	if v := op(m.entries[idx].Value); m.policy.IsDefault(v) {
		m.entries = slices.Delete(m.entries, idx, idx+1)
	} else {
		m.entries[idx].Value = v
	}
	return m
}

// Map replaces every stored value v with f(v). Bindings that become default
// are dropped afterwards.
func (m *FlatMap[K, V]) Map(f func(V) V) *FlatMap[K, V] {
	hasDefault := false
	for idx := range m.entries {
		m.entries[idx].Value = f(m.entries[idx].Value)
		if m.policy.IsDefault(m.entries[idx].Value) {
			hasDefault = true
		}
	}
	if hasDefault {
		m.eraseDefaultValues()
	}
	return m
}

// Filter keeps only the bindings satisfying pred.
func (m *FlatMap[K, V]) Filter(pred func(K, V) bool) *FlatMap[K, V] {
	kept := m.entries[:0]
	for _, e := range m.entries {
		if pred(e.Key, e.Value) {
			kept = append(kept, e)
		}
	}
	m.truncate(kept)
	return m
}

func (m *FlatMap[K, V]) eraseDefaultValues() {
	m.Filter(func(_ K, v V) bool {
		return !m.policy.IsDefault(v)
	})
}

// truncate adopts kept, a prefix-aliased compaction of m.entries, and clears
// the abandoned tail so it does not retain references.
func (m *FlatMap[K, V]) truncate(kept []Entry[K, V]) {
	var zero Entry[K, V]
	for idx := len(kept); idx < len(m.entries); idx++ {
		m.entries[idx] = zero
	}
	m.entries = kept
}

// Clear removes every binding.
func (m *FlatMap[K, V]) Clear() {
	m.truncate(m.entries[:0])
}

// Clone returns an independent copy of the map.
func (m *FlatMap[K, V]) Clone() *FlatMap[K, V] {
	return &FlatMap[K, V]{
		entries: slices.Clone(m.entries),
		cmp:     m.cmp,
		policy:  m.policy,
	}
}

// ForEach calls do on every stored binding in ascending key order.
func (m *FlatMap[K, V]) ForEach(do func(K, V)) {
	for _, e := range m.entries {
		do(e.Key, e.Value)
	}
}

// Entries returns a copy of the stored bindings in ascending key order.
func (m *FlatMap[K, V]) Entries() []Entry[K, V] {
	return slices.Clone(m.entries)
}

// Keys returns the keys of the stored bindings in ascending order.
func (m *FlatMap[K, V]) Keys() []K {
	keys := make([]K, len(m.entries))
	for idx, e := range m.entries {
		keys[idx] = e.Key
	}
	return keys
}

// Equals checks that both maps store the same bindings. Since neither map
// stores default values, this coincides with pointwise equality.
func (m *FlatMap[K, V]) Equals(o *FlatMap[K, V]) bool {
	if m == o {
		return true
	}
	return slices.EqualFunc(m.entries, o.entries, func(a, b Entry[K, V]) bool {
		return m.cmp.Compare(a.Key, b.Key) == 0 && m.policy.Equals(a.Value, b.Value)
	})
}

// String renders the map as {k1 -> v1, k2 -> v2}.
func (m *FlatMap[K, V]) String() string {
	var sb strings.Builder
	sb.WriteString("{")
	for idx, e := range m.entries {
		if idx > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%v -> %v", e.Key, e.Value)
	}
	sb.WriteString("}")
	return sb.String()
}

// Pretty renders the map with one binding per line, in the same style as
// the rest of the lattice package.
func (m *FlatMap[K, V]) Pretty() string {
	strs := make([]string, 0, len(m.entries))
	for _, e := range m.entries {
		strs = append(strs, fmt.Sprintf("%s ↦ %v", colorize.Key(e.Key), e.Value))
	}
	return i.Indenter().Start("{").NestSep(",", strs...).End("}")
}
