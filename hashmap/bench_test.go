package hashmap_test

import (
	"fmt"
	"runtime"
	"strconv"
	"testing"

	"github.com/theflywheel/hashheap/hashmap"
)

// getMemoryUsage returns the current memory stats as a formatted string
func getMemoryUsage() string {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	return fmt.Sprintf("Memory: Alloc=%.1fMB Sys=%.1fMB",
		float64(m.Alloc)/1024/1024,
		float64(m.Sys)/1024/1024)
}

// fillWithResize inserts numKeys keys, doubling the table whenever the load
// factor passes maxLoad, the growth policy callers are expected to run.
func fillWithResize(m *hashmap.HashMap[int], numKeys int, maxLoad float64) int {
	resizes := 0
	for i := 0; i < numKeys; i++ {
		m.Put("key-"+strconv.Itoa(i), i)
		if m.TableLoad() > maxLoad {
			m.ResizeTable(m.Capacity() * 2)
			resizes++
		}
	}
	return resizes
}

// BenchmarkPut measures insertion with caller-driven resizing
func BenchmarkPut(b *testing.B) {
	hashes := []struct {
		name string
		fn   hashmap.HashFunc
	}{
		{"FNV1a", hashmap.FNV1aHash},
		{"XXHash", hashmap.XXHash},
		{"WeightedSum", hashmap.WeightedSumHash},
	}

	for _, h := range hashes {
		b.Run(h.name, func(b *testing.B) {
			resizes := 0
			for n := 0; n < b.N; n++ {
				m := hashmap.New[int](16, h.fn)
				resizes += fillWithResize(m, 10_000, 0.75)
			}
			b.ReportMetric(float64(resizes)/float64(b.N), "resizes/op")
		})
	}
}

// BenchmarkGet measures random lookups against a table of one hundred thousand keys
func BenchmarkGet(b *testing.B) {
	numKeys := 100_000
	m := hashmap.New[int](16, hashmap.XXHash)
	fillWithResize(m, numKeys, 0.75)
	b.Logf("Loaded %d keys into %d buckets (load %.2f), %s",
		m.Size(), m.Capacity(), m.TableLoad(), getMemoryUsage())

	keys := make([]string, numKeys)
	for i := range keys {
		keys[i] = "key-" + strconv.Itoa((i*7919)%numKeys)
	}

	b.ResetTimer()
	for n := 0; n < b.N; n++ {
		if _, found := m.Get(keys[n%numKeys]); !found {
			b.Fatalf("Key %s not found", keys[n%numKeys])
		}
	}
}

// BenchmarkResizeTable measures a full rehash of one hundred thousand keys
func BenchmarkResizeTable(b *testing.B) {
	m := hashmap.New[int](1024, hashmap.XXHash)
	for i := 0; i < 100_000; i++ {
		m.Put("key-"+strconv.Itoa(i), i)
	}

	b.ResetTimer()
	for n := 0; n < b.N; n++ {
		if n%2 == 0 {
			m.ResizeTable(200_000)
		} else {
			m.ResizeTable(1024)
		}
	}
}
