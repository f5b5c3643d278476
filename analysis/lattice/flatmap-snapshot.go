package lattice

import (
	"github.com/benbjohnson/immutable"
	"golang.org/x/exp/constraints"
)

// Snapshot exports the stored bindings of m to a persistent sorted map using
// the same key ordering. Later updates to m are not reflected in the snapshot.
func Snapshot[K constraints.Ordered, V any](m *FlatMap[K, V]) *immutable.SortedMap[K, V] {
	b := immutable.NewSortedMapBuilder[K, V](m.cmp)
	for _, e := range m.entries {
		b.Set(e.Key, e.Value)
	}
	return b.Map()
}

// FromSortedMap builds a FlatMap from a persistent sorted map. The sorted
// map is already ordered by cmp, so the entries are adopted in a single pass
// without searching. Bindings to the default value are skipped.
func FromSortedMap[K constraints.Ordered, V any](cmp Comparer[K], policy Value[V], sm *immutable.SortedMap[K, V]) *FlatMap[K, V] {
	m := &FlatMap[K, V]{
		entries: make([]Entry[K, V], 0, sm.Len()),
		cmp:     cmp,
		policy:  policy,
	}
	for itr := sm.Iterator(); !itr.Done(); {
		k, v, _ := itr.Next()
		if !policy.IsDefault(v) {
			m.entries = append(m.entries, Entry[K, V]{k, v})
		}
	}
	return m
}
