// Command chibibench compares this module's Map against three other
// SwissTable-family implementations from the Go ecosystem, following the
// structure of nikgalushko-swisstable-bench/{main,bench}.go: a flag
// selects the implementation under test, a seeded random workload is
// generated once, and insert/lookup timings are reported for it.
package main

import (
	"fmt"
	"runtime"
	"testing"

	cockroach "github.com/cockroachdb/swiss"
	crn4 "github.com/crn4/swiss"
	dolthub "github.com/dolthub/swiss"
	"github.com/spf13/pflag"
	"pgregory.net/rand"

	swisstable "github.com/nadrojpeg/chibicollections"
)

// mapUnderTest is the narrow interface every contestant implements,
// mirroring nikgalushko-swisstable-bench's own Map[K, V] interface.
type mapUnderTest[V any] interface {
	Get(uint64) (V, bool)
	Set(uint64, V)
	Delete(uint64)
}

type chibiAdapter[V any] struct{ m *swisstable.Map[V] }

func newChibiAdapter[V any]() *chibiAdapter[V] { return &chibiAdapter[V]{} }

func (a *chibiAdapter[V]) Get(k uint64) (V, bool) { return a.m.Get(k) }
func (a *chibiAdapter[V]) Set(k uint64, v V)      { a.m = swisstable.Put(a.m, k, v) }
func (a *chibiAdapter[V]) Delete(k uint64)        { a.m.Delete(k) }

type cockroachAdapter[V any] struct{ m *cockroach.Map[uint64, V] }

func newCockroachAdapter[V any]() *cockroachAdapter[V] {
	return &cockroachAdapter[V]{m: cockroach.New[uint64, V](0)}
}
func (a *cockroachAdapter[V]) Get(k uint64) (V, bool) { return a.m.Get(k) }
func (a *cockroachAdapter[V]) Set(k uint64, v V)      { a.m.Put(k, v) }
func (a *cockroachAdapter[V]) Delete(k uint64)        { a.m.Delete(k) }

type dolthubAdapter[V any] struct{ m *dolthub.Map[uint64, V] }

func newDolthubAdapter[V any]() *dolthubAdapter[V] {
	return &dolthubAdapter[V]{m: dolthub.NewMap[uint64, V](0)}
}
func (a *dolthubAdapter[V]) Get(k uint64) (V, bool) { return a.m.Get(k) }
func (a *dolthubAdapter[V]) Set(k uint64, v V)      { a.m.Put(k, v) }
func (a *dolthubAdapter[V]) Delete(k uint64)        { a.m.Delete(k) }

type crn4Adapter[V any] struct{ m *crn4.Map[uint64, V] }

func newCRN4Adapter[V any]() *crn4Adapter[V] {
	return &crn4Adapter[V]{m: crn4.New[uint64, V](0)}
}
func (a *crn4Adapter[V]) Get(k uint64) (V, bool) { return a.m.Get(k) }
func (a *crn4Adapter[V]) Set(k uint64, v V)      { a.m.Put(k, v) }
func (a *crn4Adapter[V]) Delete(k uint64)        { a.m.Delete(k) }

type workload struct {
	keys   []uint64
	values []int64
}

func newWorkload(size int, seed uint64) workload {
	r := rand.New(seed)
	w := workload{keys: make([]uint64, size), values: make([]int64, size)}
	seen := make(map[uint64]bool, size)
	for i := 0; i < size; i++ {
		var k uint64
		for {
			k = r.Uint64()
			if !seen[k] {
				seen[k] = true
				break
			}
		}
		w.keys[i] = k
		w.values[i] = r.Int63()
	}
	return w
}

func benchmarkInsert(w workload, build func() mapUnderTest[int64]) func(*testing.B) {
	return func(b *testing.B) {
		for i := 0; b.Loop(); i++ {
			m := build()
			for j, key := range w.keys {
				m.Set(key, w.values[j])
			}
		}
	}
}

func benchmarkLookup(w workload, build func() mapUnderTest[int64]) func(*testing.B) {
	return func(b *testing.B) {
		m := build()
		for i, key := range w.keys {
			m.Set(key, w.values[i])
		}
		b.ResetTimer()
		for i := 0; b.Loop(); i++ {
			m.Get(w.keys[i%len(w.keys)])
		}
	}
}

func measureMemoryUsage() {
	runtime.GC()
	var ms runtime.MemStats
	runtime.ReadMemStats(&ms)
	fmt.Printf("Memory Usage: Alloc = %v KB, Sys = %v KB, NumGC = %v\n", ms.Alloc/1024, ms.Sys/1024, ms.NumGC)
}

func main() {
	var (
		seed uint64
		size int
		impl string
	)
	pflag.Uint64Var(&seed, "seed", 1234, "seed for the random workload")
	pflag.IntVar(&size, "size", 1_000_000, "number of distinct keys in the workload")
	pflag.StringVar(&impl, "impl", "chibi", "chibi/cockroach/dolthub/crn4")
	pflag.Parse()

	build := func() mapUnderTest[int64] { return newChibiAdapter[int64]() }
	switch impl {
	case "cockroach":
		build = func() mapUnderTest[int64] { return newCockroachAdapter[int64]() }
	case "dolthub":
		build = func() mapUnderTest[int64] { return newDolthubAdapter[int64]() }
	case "crn4":
		build = func() mapUnderTest[int64] { return newCRN4Adapter[int64]() }
	}

	w := newWorkload(size, seed)

	fmt.Printf("Running Map Benchmarks (impl=%s size=%d seed=%d)\n", impl, size, seed)
	fmt.Println(testing.Benchmark(benchmarkInsert(w, build)))
	fmt.Println(testing.Benchmark(benchmarkLookup(w, build)))
	measureMemoryUsage()
}
