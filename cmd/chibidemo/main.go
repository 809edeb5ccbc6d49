// Command chibidemo is a small, runnable demonstration of the Map API,
// descended from the teacher's cmd/main.go smoke test for its MatchByte
// primitive: where the teacher printed a raw bitmask from one hand-built
// buffer, this drives a real Map through inserts, a lookup, a delete, and
// a growth, then prints the probe statistics Stats reports.
package main

import (
	"fmt"

	swisstable "github.com/nadrojpeg/chibicollections"
)

func main() {
	var m *swisstable.Map[string]
	for i := 0; i < 20; i++ {
		m = swisstable.Put(m, uint64(i), fmt.Sprintf("value-%d", i))
	}

	v, ok := m.Get(7)
	fmt.Println("Get(7) =", v, ok)

	m.Delete(7)
	_, ok = m.Get(7)
	fmt.Println("after Delete(7), Get(7) ok =", ok)

	gets, tagFalsePositives, extraGroups := m.Stats()
	fmt.Printf("len=%d cap=%d gets=%d tagFalsePositives=%d extraGroupsScanned=%d\n",
		m.Len(), m.Cap(), gets, tagFalsePositives, extraGroups)
}
