package minheap_test

import (
	"math/rand"
	"testing"

	"github.com/theflywheel/hashheap/dynarray"
	"github.com/theflywheel/hashheap/minheap"
)

func randomValues(n int) []int {
	rng := rand.New(rand.NewSource(1))
	values := make([]int, n)
	for i := range values {
		values[i] = rng.Int()
	}
	return values
}

// BenchmarkConstruction compares repeated Add against BuildHeap
func BenchmarkConstruction(b *testing.B) {
	values := randomValues(100_000)

	b.Run("Add", func(b *testing.B) {
		for n := 0; n < b.N; n++ {
			minheap.New(values...)
		}
	})

	b.Run("BuildHeap", func(b *testing.B) {
		for n := 0; n < b.N; n++ {
			h := minheap.New[int]()
			h.BuildHeap(dynarray.New(values...))
		}
	})
}

// BenchmarkRemoveMin drains a heap of ten thousand elements
func BenchmarkRemoveMin(b *testing.B) {
	values := randomValues(10_000)

	for n := 0; n < b.N; n++ {
		b.StopTimer()
		h := minheap.New[int]()
		h.BuildHeap(dynarray.New(values...))
		b.StartTimer()

		for !h.IsEmpty() {
			if _, err := h.RemoveMin(); err != nil {
				b.Fatalf("RemoveMin failed: %v", err)
			}
		}
	}
}
