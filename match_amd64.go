//go:build amd64

package swisstable

// matchGroup returns a 16-bit mask with bit i set iff group[i] == tag. It
// is implemented in match_amd64.s as one broadcast-compare-movemask
// sequence (an SSSE3 PSHUFB broadcast, then SSE2 PCMPEQB and PMOVMSKB), generated by the nested avo/ module (see avo/asm.go) in
// the same style as the teacher's own MatchByte.
//
//go:noescape
func matchGroup(tag byte, group *[groupSize]byte) uint16
