// Package swisstable implements a SwissTable-style open-addressed hash map
// keyed on 64-bit integers, with parallel probing of 16-slot metadata
// groups via SSE2/SSSE3 instructions on amd64 and a portable SWAR fallback
// elsewhere.
//
// # Basic usage
//
//	var m *swisstable.Map[string]
//	m = swisstable.Put(m, 1, "A")
//	m = swisstable.Put(m, 2, "B")
//	v, ok := m.Get(1) // "A", true
//	m.Delete(2)
//
// A nil *Map is a valid empty map for every read-only operation; Put and
// Reserve allocate on first use and must have their result assigned back,
// since first allocation from a nil *Map returns a new Map. Growth
// replaces the table inside the same Map.
//
// # Memory layout
//
// Each Map owns one table: a 16-byte-aligned metadata byte per slot, a
// 64-bit key per slot, and a value per slot, grouped 16 slots at a time so
// a single 128-bit load can be tested against a broadcast tag in one step.
// Capacity is always a power of two of at least 16, and growth is
// triggered once size would exceed 3/4 of capacity.
//
// # Concurrency
//
// Map is not safe for concurrent use from multiple goroutines; callers
// sharing a Map across goroutines must provide their own synchronization.
package swisstable
