package swisstable

import (
	"math/bits"
	"unsafe"
)

// group returns a pointer to the 16-byte metadata group starting at slot
// index base, suitable for feeding matchGroup.
func (t *table[V]) group(base int) *[groupSize]byte {
	return (*[groupSize]byte)(unsafe.Pointer(&t.control[base]))
}

// startGroup derives the group a key's probe sequence begins at, and the
// tag byte (with the Full high bit already set) used to prefilter
// matches within each group.
func (t *table[V]) startGroup(seed, key uint64) (group uint64, fullTag byte) {
	h := mixHash(seed, key)
	idx57, tag7 := splitHash(h)
	return idx57 & (t.numGroups() - 1), tag7 | metaFullMask
}

// findKey runs the Match probe (spec.md section 4.3): it scans groups
// starting at key's home group, testing each candidate tag match against
// the actual key, and stops as soon as it crosses a Free byte. Tombstones
// are skipped over, never terminating the scan, so a key probed past a
// since-deleted slot stays reachable.
func (t *table[V]) findKey(s *stats, seed, key uint64) (idx int, found bool) {
	group, fullTag := t.startGroup(seed, key)
	return t.findKeyFrom(s, group, fullTag, key)
}

// findKeyFrom is findKey's loop body, taking an already-computed starting
// group and tag so Put can share one hash computation between the lookup
// and insert-slot probes instead of hashing key twice.
func (t *table[V]) findKeyFrom(s *stats, group uint64, fullTag byte, key uint64) (idx int, found bool) {
	groupMask := t.numGroups() - 1
	for {
		base := int(group) * groupSize
		g := t.group(base)

		matches := matchGroup(fullTag, g)
		for matches != 0 {
			i := bits.TrailingZeros16(matches)
			slot := base + i
			if t.keys[slot] == key {
				return slot, true
			}
			if s != nil {
				s.tagFalsePositives++
			}
			matches &= matches - 1
		}

		if matchGroup(metaFree, g) != 0 {
			return 0, false
		}

		if s != nil {
			s.extraGroupsScanned++
		}
		group = (group + 1) & groupMask
	}
}

// findInsertSlotFrom runs the find-free-or-tombstone probe used by Put
// once findKeyFrom has confirmed the key is absent (spec.md section 4.3,
// second probe variant), starting from the same group findKeyFrom just
// used. A Full byte always has its high bit set and Free/Tombstone never
// do, so "high bit clear" is exactly the union of a Free match and a
// Tombstone match; this reuses matchGroup instead of a dedicated
// high-bit-clear primitive.
func (t *table[V]) findInsertSlotFrom(group uint64) int {
	groupMask := t.numGroups() - 1
	for {
		base := int(group) * groupSize
		g := t.group(base)

		free := matchGroup(metaFree, g) | matchGroup(metaTombstone, g)
		if free != 0 {
			return base + bits.TrailingZeros16(free)
		}

		group = (group + 1) & groupMask
	}
}
