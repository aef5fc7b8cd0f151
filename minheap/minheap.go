// Package minheap implements a binary min-heap stored as an implicit complete
// binary tree in a dynarray.Array.
//
// The element at index i has children at 2i+1 and 2i+2 and its parent at
// (i-1)/2. Every parent compares less than or equal to its children.
package minheap

import (
	"github.com/pkg/errors"
	"golang.org/x/exp/constraints"

	"github.com/theflywheel/hashheap/dynarray"
)

// ErrEmptyHeap is returned by GetMin and RemoveMin on a heap with no elements
var ErrEmptyHeap = errors.New("minheap: heap is empty")

// MinHeap is a binary min-heap. It is not safe for concurrent use.
type MinHeap[T constraints.Ordered] struct {
	heap *dynarray.Array[T]
}

// New creates a heap and adds values to it one at a time
func New[T constraints.Ordered](values ...T) *MinHeap[T] {
	h := &MinHeap[T]{heap: dynarray.New[T]()}
	for _, v := range values {
		h.Add(v)
	}
	return h
}

// IsEmpty reports whether the heap has no elements
func (h *MinHeap[T]) IsEmpty() bool {
	return h.heap.Len() == 0
}

// Len returns the number of elements
func (h *MinHeap[T]) Len() int {
	return h.heap.Len()
}

// Add inserts v and sifts it up past every strictly greater parent
func (h *MinHeap[T]) Add(v T) {
	index := h.heap.Len()
	h.heap.Append(v)
	for index > 0 {
		parent := (index - 1) / 2
		if !(v < h.heap.Get(parent)) {
			break
		}
		h.heap.Swap(index, parent)
		index = parent
	}
}

// GetMin returns the smallest element without removing it
func (h *MinHeap[T]) GetMin() (T, error) {
	if h.IsEmpty() {
		var zero T
		return zero, errors.WithStack(ErrEmptyHeap)
	}
	return h.heap.Get(0), nil
}

// RemoveMin removes and returns the smallest element
func (h *MinHeap[T]) RemoveMin() (T, error) {
	switch h.heap.Len() {
	case 0:
		var zero T
		return zero, errors.WithStack(ErrEmptyHeap)
	case 1:
		return h.heap.Pop(), nil
	}

	h.heap.Swap(0, h.heap.Len()-1)
	root := h.heap.Pop()
	h.siftDown(0)
	return root, nil
}

// BuildHeap discards the current contents and adopts a as the heap's storage,
// reordering it in place. The caller hands over a: later heap operations keep
// mutating the same array.
func (h *MinHeap[T]) BuildHeap(a *dynarray.Array[T]) {
	if a == nil {
		a = dynarray.New[T]()
	}
	h.heap = a
	// leaves are already one-element heaps
	for i := a.Len()/2 - 1; i >= 0; i-- {
		h.siftDown(i)
	}
}

// siftDown moves the element at index below any strictly smaller child
func (h *MinHeap[T]) siftDown(index int) {
	n := h.heap.Len()
	for {
		left, right := 2*index+1, 2*index+2
		if left >= n {
			return
		}
		child := left
		if right < n && h.heap.Get(right) < h.heap.Get(left) {
			child = right
		}
		if !(h.heap.Get(index) > h.heap.Get(child)) {
			return
		}
		h.heap.Swap(index, child)
		index = child
	}
}

func (h *MinHeap[T]) String() string {
	return "HEAP " + h.heap.String()
}
