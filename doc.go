/*
Package hashheap provides two in-memory containers: a resizable hash map using
separate chaining, and a binary min-heap backed by a growable array.

The containers live in their own packages and share nothing but the dynarray
package they are built on.

Basic usage:

	import (
		"github.com/theflywheel/hashheap/hashmap"
		"github.com/theflywheel/hashheap/minheap"
	)

	// Hash map with 16 buckets and xxHash
	m := hashmap.New[int](16, hashmap.XXHash)
	m.Put("apples", 3)
	if v, ok := m.Get("apples"); ok {
		fmt.Println("apples:", v)
	}

	// Growth is the caller's decision
	if m.TableLoad() > 0.75 {
		m.ResizeTable(m.Capacity() * 2)
	}

	// Min-heap over any ordered type
	h := minheap.New(5, 3, 8, 1)
	for !h.IsEmpty() {
		v, _ := h.RemoveMin()
		fmt.Println(v)
	}

Features:

  - String keys with a caller-supplied hash function (xxHash, FNV-1a and two
    code-point sums are provided)
  - Separate chaining with singly-linked chains per bucket
  - Explicit resizing by full rehash; the map never resizes on its own
  - Optional logrus logger for resize and clear events
  - Generic min-heap with linear-time bulk construction (BuildHeap)

Implementation Details:

Each hash map bucket holds a chain of entries. A key always lives in the
chain at index hash(key) % capacity, so lookups hash once and scan a single
chain. ResizeTable allocates a fresh bucket array and reinserts every entry.

The heap is an implicit complete binary tree: the element at index i has
children at 2i+1 and 2i+2. Add sifts the new tail element up; RemoveMin moves
the tail to the root and sifts it down. BuildHeap adopts the caller's array and
sifts down every internal node from the last one to the root.

Neither container is safe for concurrent use.
*/
package hashheap
