package swisstable

import "testing"

func TestMatchGroup(t *testing.T) {
	tests := []struct {
		name string
		tag  byte
		buf  [groupSize]byte
		want uint16
	}{
		{
			"match 3",
			42,
			[16]byte{42, 0, 0, 42, 42, 0, 17, 17, 0, 0, 0, 0, 0, 0, 0, 0},
			1<<0 | 1<<3 | 1<<4,
		},
		{
			"match 1 at end",
			42,
			[16]byte{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 42},
			1 << 15,
		},
		{
			"match 2 at start and end",
			42,
			[16]byte{42, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 42},
			1<<0 | 1<<15,
		},
		{
			"match all",
			42,
			[16]byte{42, 42, 42, 42, 42, 42, 42, 42, 42, 42, 42, 42, 42, 42, 42, 42},
			1<<16 - 1,
		},
		{
			"no match",
			255,
			[16]byte{42, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 42},
			0,
		},
		{
			"match Free marker",
			metaFree,
			[16]byte{0, 1, 0x80, 1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
			1<<0 | 1<<4 | 1<<5 | 1<<6 | 1<<7 | 1<<8 | 1<<9 | 1<<10 | 1<<11 | 1<<12 | 1<<13 | 1<<14 | 1<<15,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := matchGroup(tt.tag, &tt.buf)
			if got != tt.want {
				t.Errorf("matchGroup() = %016b, want %016b", got, tt.want)
			}
		})
	}
}

// TestMatchGroupAlignment exercises matchGroup at every 16-byte group
// offset within a larger buffer, the way the teacher's
// TestMatchByteAlignment covered every byte offset of a []byte slice.
func TestMatchGroupAlignment(t *testing.T) {
	var big [256]byte
	for i := range big {
		big[i] = 42
	}
	for g := 0; g < len(big)/groupSize; g++ {
		group := (*[groupSize]byte)(big[g*groupSize : (g+1)*groupSize])
		if got := matchGroup(42, group); got != 1<<16-1 {
			t.Fatalf("group %d: matchGroup() = %016b, want all bits set", g, got)
		}
		if got := matchGroup(7, group); got != 0 {
			t.Fatalf("group %d: matchGroup() = %016b, want 0", g, got)
		}
	}
}

// TestMatchGroupFreeOrTombstone checks the derivation used by
// findInsertSlotFrom: ORing the Free match and the Tombstone match produces
// exactly the "high bit clear" bitmask.
func TestMatchGroupFreeOrTombstone(t *testing.T) {
	group := [groupSize]byte{
		metaFree, metaTombstone, 0x80 | 5, 0x80, metaFree, 0xff & (0x80 | 127),
		metaTombstone, metaFree, 0x80 | 1, metaFree, metaTombstone, 0x80 | 2,
		metaFree, metaFree, metaTombstone, 0x80,
	}
	var want uint16
	for i, b := range group {
		if b&metaFullMask == 0 {
			want |= 1 << uint(i)
		}
	}
	got := matchGroup(metaFree, &group) | matchGroup(metaTombstone, &group)
	if got != want {
		t.Errorf("free-or-tombstone mask = %016b, want %016b", got, want)
	}
}
