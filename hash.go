package swisstable

// defaultSeed is the seed a Map uses when none is supplied explicitly.
// It is the original source's own default (original_source/chibilibs/hash.h,
// hash__seed) and is also the seed used throughout spec.md's scenarios.
const defaultSeed uint64 = 0x12345678ABCDEF00

// defaultSeedOverride lets SetDefaultSeed change what New uses, without
// making the seed itself package-global mutable state read on every
// operation: it is consulted only at construction time. See the
// "Seed visibility" design note in spec.md section 9.
var defaultSeedOverride = defaultSeed

// SetDefaultSeed changes the seed that New will use for maps created
// after this call; NewSeeded always uses the seed it is given. It has no
// effect on Maps that already exist: each Map carries the seed that built
// it, so changing the default can never desynchronize an existing
// Image's tags and probe positions from its own hash function.
func SetDefaultSeed(seed uint64) {
	defaultSeedOverride = seed
}

// mixHash is the hash mixer: a seeded 64-bit avalanche finalizer. It is a
// direct port of original_source/chibilibs/hash.h's hash__hash, which is
// itself the finalizer step of MurmurHash3's 64-bit mixer.
func mixHash(seed, key uint64) uint64 {
	x := key ^ seed
	x ^= x >> 33
	x *= 0xff51afd7ed558ccd
	x ^= x >> 33
	x *= 0xc4ceb9fe1a85ec53
	x ^= x >> 33
	return x
}

// hash57Mask isolates the low 57 bits of a mixed hash, used to pick a
// starting group.
const hash57Mask = (1 << 57) - 1

// splitHash derives the starting group index (not yet reduced modulo the
// table's group count) and the 7-bit tag from a mixed hash, per spec.md
// section 4.2.
func splitHash(h uint64) (groupIdx57 uint64, tag7 uint8) {
	groupIdx57 = h & hash57Mask
	tag7 = uint8((h >> 57) & 0x7f)
	return groupIdx57, tag7
}
