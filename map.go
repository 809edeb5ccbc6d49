package swisstable

import "fmt"

// debug gates the tracing prints used while developing probe behavior,
// exactly as the teacher's own debug constant does; it is always false
// in shipped code.
const debug = false

// closer is the destructor protocol a value type may opt into in place
// of the original cascade-delete flag (spec.md section 9, "Cascading
// delete flag"): Close is invoked automatically whenever a value leaves
// the map, whether by overwrite, deletion, or final teardown.
type closer interface {
	Close()
}

func closeValue[V any](v V) {
	if c, ok := any(v).(closer); ok {
		c.Close()
	}
}

// stats are cheap running counters mirroring the teacher's own gets/
// getTopHashFalsePositives/getExtraGroups fields, readable via Stats.
type stats struct {
	gets               int64
	tagFalsePositives  int64
	extraGroupsScanned int64
}

// Map is the Handle described by spec.md: the externally visible
// reference through which callers operate on a table Image. A nil *Map
// is a valid, empty map for every read-only operation; Put and Reserve
// return the Map to use afterward, since both allocate a new Map when
// given a nil one.
type Map[V any] struct {
	t     *table[V]
	seed  uint64
	stats stats
}

// New returns an empty Map that allocates its first table, at capacity
// 16, on the first Put. It is equivalent to a nil *Map[V]; calling New is
// only needed when a non-nil zero-length Map is wanted up front; Put and
// Reserve both accept a nil Map.
func New[V any]() *Map[V] {
	return NewSeeded[V](defaultSeedOverride)
}

// NewSeeded returns an empty Map using the given hash seed instead of
// the package default. The seed is fixed for the lifetime of the Map:
// every slot's tag and probe position was computed with it, so changing
// it later would silently break lookups (spec.md section 4.2).
func NewSeeded[V any](seed uint64) *Map[V] {
	return &Map[V]{seed: seed}
}

// Len reports the number of key/value pairs stored. A nil Map has
// length 0.
func (m *Map[V]) Len() int {
	if m == nil || m.t == nil {
		return 0
	}
	return m.t.size
}

// Cap reports the current slot capacity. A nil Map has capacity 0.
func (m *Map[V]) Cap() int {
	if m == nil || m.t == nil {
		return 0
	}
	return m.t.capacity
}

// Stats returns a snapshot of the map's internal probe counters, for
// diagnostics and benchmarking; it has no effect on behavior.
func (m *Map[V]) Stats() (gets, tagFalsePositives, extraGroupsScanned int64) {
	if m == nil {
		return 0, 0, 0
	}
	return m.stats.gets, m.stats.tagFalsePositives, m.stats.extraGroupsScanned
}

// Get returns the value stored for key and true, or the zero value and
// false if key is absent. A nil Map always reports absent.
func (m *Map[V]) Get(key uint64) (V, bool) {
	if m == nil || m.t == nil {
		var zero V
		return zero, false
	}
	m.stats.gets++

	idx, found := m.t.findKey(&m.stats, m.seed, key)
	if !found {
		var zero V
		return zero, false
	}
	return m.t.values[idx], true
}

// Put inserts key, or overwrites the existing value for key, and returns
// the Map to use for subsequent operations. m may be nil, in which case
// a fresh table is allocated at capacity 16. The returned Map must
// replace the caller's variable: the very first Put on a nil Map returns
// a new Map. A Put that crosses the 3/4 load-factor bound replaces the
// table inside the same Map.
func Put[V any](m *Map[V], key uint64, value V) *Map[V] {
	if m == nil {
		m = New[V]()
	}
	if m.t == nil {
		m.t = newTable[V](startCapacity)
	}
	t := m.t

	group, tag := t.startGroup(m.seed, key)
	if idx, found := t.findKeyFrom(nil, group, tag, key); found {
		closeValue(t.values[idx])
		t.values[idx] = value
		if debug {
			fmt.Println("put: overwrote existing key", key, "at", idx)
		}
		return m
	}

	idx := t.findInsertSlotFrom(group)
	t.control[idx] = tag
	t.keys[idx] = key
	t.values[idx] = value
	t.size++

	if t.loadFactorBreached() {
		m.growTo(nextPow2(t.capacity + 1))
	}
	return m
}

// Delete removes key from the map, closing its value first if the value
// type implements closer (spec.md section 9's destructor-protocol
// replacement for the cascade flag). It reports whether key was present.
func (m *Map[V]) Delete(key uint64) bool {
	if m == nil || m.t == nil {
		return false
	}
	t := m.t
	idx, found := t.findKey(nil, m.seed, key)
	if !found {
		return false
	}
	closeValue(t.values[idx])
	var zero V
	t.values[idx] = zero
	t.control[idx] = metaTombstone
	t.size--
	return true
}

// Free releases the map's table, closing every remaining value first if
// the value type implements closer. Go's garbage collector reclaims the
// backing memory once nothing else references it; Free's role is purely
// to run value teardown deterministically and to drop the map's own
// references up front, rather than any manual deallocation.
func (m *Map[V]) Free() {
	if m == nil || m.t == nil {
		return
	}
	t := m.t
	for i := 0; i < t.capacity; i++ {
		if t.control[i]&metaFullMask != 0 {
			closeValue(t.values[i])
		}
	}
	m.t = nil
}
