// Package dynarray provides the growable array used as backing storage by the
// hashmap buckets and the min-heap.
package dynarray

import (
	"fmt"
	"strings"
)

// Array is a growable, zero-indexed sequence of values.
// Out-of-range access panics the same way a slice index does.
type Array[T any] struct {
	data []T
}

// New creates an array primed with a copy of values
func New[T any](values ...T) *Array[T] {
	data := make([]T, len(values))
	copy(data, values)
	return &Array[T]{data: data}
}

// Len returns the number of elements
func (a *Array[T]) Len() int {
	return len(a.data)
}

// Append adds v at the tail
func (a *Array[T]) Append(v T) {
	a.data = append(a.data, v)
}

// Pop removes and returns the last element. It panics on an empty array.
func (a *Array[T]) Pop() T {
	n := len(a.data) - 1
	v := a.data[n]
	var zero T
	a.data[n] = zero
	a.data = a.data[:n]
	return v
}

// Get returns the element at index i
func (a *Array[T]) Get(i int) T {
	return a.data[i]
}

// Set replaces the element at index i
func (a *Array[T]) Set(i int, v T) {
	a.data[i] = v
}

// Swap exchanges the elements at i and j
func (a *Array[T]) Swap(i, j int) {
	a.data[i], a.data[j] = a.data[j], a.data[i]
}

// Values returns a copy of the elements in index order
func (a *Array[T]) Values() []T {
	out := make([]T, len(a.data))
	copy(out, a.data)
	return out
}

func (a *Array[T]) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, v := range a.data {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprint(&sb, v)
	}
	sb.WriteByte(']')
	return sb.String()
}
