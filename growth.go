package swisstable

// Reserve grows m to the smallest power-of-two capacity at or above n when
// n exceeds its current capacity; a smaller n leaves it unchanged.
// Capacity counts slots, so Put still grows the table once the size
// exceeds 3/4 of it. It allocates m's first table if m is nil or has none yet, matching Put's
// allow-nil contract. Reserve returns the Map to use afterward.
func Reserve[V any](m *Map[V], n int) *Map[V] {
	if m == nil {
		m = New[V]()
	}
	if m.t == nil {
		m.t = newTable[V](nextPow2(n))
		return m
	}
	if n > m.t.capacity {
		m.growTo(nextPow2(n))
	}
	return m
}

// growTo rebuilds m's table at the given power-of-two capacity and
// rehashes every currently Full slot into it (spec.md section 4.5). The
// new table starts Free everywhere, so it holds no tombstones, and a
// plain linear probe to the first Free slot is sufficient during
// rehash — the fuller Match probe used elsewhere is unnecessary because
// no two keys being rehashed can collide (they were already unique in
// the old table). growTo mutates m's existing table pointer in place;
// since m itself is already the stable handle the caller holds, there is
// nothing for the caller to write back, unlike the original source's
// macro-based swap of a raw pointer.
func (m *Map[V]) growTo(newCapacity int) {
	old := m.t
	next := newTable[V](newCapacity)
	next.size = old.size

	groupMask := next.numGroups() - 1
	for i := 0; i < old.capacity; i++ {
		if old.control[i]&metaFullMask == 0 {
			continue
		}
		key := old.keys[i]
		h := mixHash(m.seed, key)
		idx57, tag7 := splitHash(h)
		group := idx57 & groupMask
		slot := int(group) * groupSize
		for next.control[slot] != metaFree {
			slot = (slot + 1) & (newCapacity - 1)
		}
		next.control[slot] = tag7 | metaFullMask
		next.keys[slot] = key
		next.values[slot] = old.values[i]
	}

	m.t = next
}
