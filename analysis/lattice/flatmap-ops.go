package lattice

import "fmt"

// Leq computes m ⊑ o. It is only defined when the value policy orders its
// values and its default value is either ⊤ or ⊥. Otherwise, an error
// wrapping ErrUndefinedOperation is returned.
func (m *FlatMap[K, V]) Leq(o *FlatMap[K, V]) (bool, error) {
	ord, ok := m.policy.(Ordering[V])
	if !ok {
		return false, fmt.Errorf("%w: value policy %T does not order values", ErrUndefinedOperation, m.policy)
	}

	// Assumes the default value is either ⊤ or ⊥.
	switch {
	case ord.DefaultIsTop():
		return m.leqWhenDefaultIsTop(ord, o), nil
	case ord.DefaultIsBot():
		return m.leqWhenDefaultIsBot(ord, o), nil
	default:
		return false, fmt.Errorf("%w: default value %v is neither ⊤ nor ⊥", ErrUndefinedOperation, ord.Default())
	}
}

// MustLeq computes m ⊑ o, and panics if the comparison is undefined.
func (m *FlatMap[K, V]) MustLeq(o *FlatMap[K, V]) bool {
	res, err := m.Leq(o)
	if err != nil {
		panic(err)
	}
	return res
}

// Geq computes m ⊒ o.
func (m *FlatMap[K, V]) Geq(o *FlatMap[K, V]) (bool, error) {
	return o.Leq(m)
}

func (m *FlatMap[K, V]) leqWhenDefaultIsTop(ord Ordering[V], o *FlatMap[K, V]) bool {
	if len(m.entries) < len(o.entries) {
		// Some key bound to a non-⊤ value in o is not stored in m, and is
		// therefore implicitly bound to ⊤.
		return false
	}

	it, end := 0, len(m.entries)
	for oit, oend := 0, len(o.entries); oit < oend; oit, it = oit+1, it+1 {
		if end-it < oend-oit {
			// Same as above, restricted to the remaining suffixes.
			return false
		}

		// The search starts where the previous one ended.
		var found bool
		it, found = m.search(m.entries, it, o.entries[oit].Key)
		if !found || !ord.Leq(m.entries[it].Value, o.entries[oit].Value) {
			return false
		}
	}
	return true
}

func (m *FlatMap[K, V]) leqWhenDefaultIsBot(ord Ordering[V], o *FlatMap[K, V]) bool {
	if len(m.entries) > len(o.entries) {
		// Some key bound to a non-⊥ value in m is not stored in o, and is
		// therefore implicitly bound to ⊥.
		return false
	}

	oit, oend := 0, len(o.entries)
	for it, end := 0, len(m.entries); it < end; it, oit = it+1, oit+1 {
		if end-it > oend-oit {
			return false
		}

		var found bool
		oit, found = o.search(o.entries, oit, m.entries[it].Key)
		if !found || !ord.Leq(m.entries[it].Value, o.entries[oit].Value) {
			return false
		}
	}
	return true
}

// UnionWith updates m such that every key bound in either map is bound to
// the combination of both values. Keys bound in only one of the maps keep
// the value of that map, so combine(v, default) must be v. Combined values
// that end up being the default value are dropped.
//
// Where both maps bind the same key, the key of m is retained.
func (m *FlatMap[K, V]) UnionWith(combine func(a, b V) V, o *FlatMap[K, V]) *FlatMap[K, V] {
	if m == o {
		o = o.Clone()
	}
	if len(o.entries) == 0 {
		return m
	}

	res := make([]Entry[K, V], 0, len(m.entries)+len(o.entries))
	keep := func(e Entry[K, V]) {
		if !m.policy.IsDefault(e.Value) {
			res = append(res, e)
		}
	}

	it, end := 0, len(m.entries)
	oit, oend := 0, len(o.entries)
	for ; oit < oend; oit++ {
		next, found := m.search(m.entries, it, o.entries[oit].Key)
		// Entries of m skipped by the search have no counterpart in o.
		res = append(res, m.entries[it:next]...)
		it = next

		if it == end {
			break
		}
		if found {
			keep(Entry[K, V]{m.entries[it].Key, combine(m.entries[it].Value, o.entries[oit].Value)})
			it++
		} else {
			keep(o.entries[oit])
		}
	}

	// At most one of the remainders is non-empty.
	res = append(res, m.entries[it:]...)
	for ; oit < oend; oit++ {
		keep(o.entries[oit])
	}

	m.truncate(m.entries[:0])
	m.entries = res
	return m
}

// IntersectionWith updates m such that every key bound in m is bound to the
// combination of its value and the value in o. Keys of m that are absent
// from o are reset to the default value, and therefore dropped, as are
// combined values that end up being the default value.
func (m *FlatMap[K, V]) IntersectionWith(combine func(a, b V) V, o *FlatMap[K, V]) *FlatMap[K, V] {
	if m == o {
		o = o.Clone()
	}

	kept := m.entries[:0]
	oit, oend := 0, len(o.entries)
	for it := range m.entries {
		var found bool
		oit, found = o.search(o.entries, oit, m.entries[it].Key)
		if oit == oend {
			// No remaining entry of m can find a match.
			break
		}
		if !found {
			continue
		}

		if v := combine(m.entries[it].Value, o.entries[oit].Value); !m.policy.IsDefault(v) {
			kept = append(kept, Entry[K, V]{m.entries[it].Key, v})
		}
		oit++
	}

	m.truncate(kept)
	return m
}
