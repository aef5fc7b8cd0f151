// Package chain implements the singly-linked collision chain held by each
// hashmap bucket.
package chain

import (
	"fmt"
	"strings"
)

// Node is a single key/value entry in a chain
type Node[V any] struct {
	Key   string
	Value V
	next  *Node[V]
}

// List is a singly-linked list of string-keyed entries. It does not enforce
// key uniqueness; the caller checks Contains before Insert.
type List[V any] struct {
	head *Node[V]
	size int
}

// New returns an empty chain
func New[V any]() *List[V] {
	return &List[V]{}
}

// Len returns the number of entries in the chain
func (l *List[V]) Len() int {
	return l.size
}

// Insert adds a new entry at the head of the chain
func (l *List[V]) Insert(key string, value V) {
	l.head = &Node[V]{Key: key, Value: value, next: l.head}
	l.size++
}

// Remove unlinks the first entry matching key and reports whether one was found
func (l *List[V]) Remove(key string) bool {
	var prev *Node[V]
	for cur := l.head; cur != nil; prev, cur = cur, cur.next {
		if cur.Key != key {
			continue
		}
		if prev == nil {
			l.head = cur.next
		} else {
			prev.next = cur.next
		}
		l.size--
		return true
	}
	return false
}

// Contains returns the live node for key, or nil. Writes to the returned
// node's Value are visible to later lookups.
func (l *List[V]) Contains(key string) *Node[V] {
	for cur := l.head; cur != nil; cur = cur.next {
		if cur.Key == key {
			return cur
		}
	}
	return nil
}

// All calls fn for every entry in chain order until fn returns false
func (l *List[V]) All(fn func(key string, value V) bool) {
	for cur := l.head; cur != nil; cur = cur.next {
		if !fn(cur.Key, cur.Value) {
			return
		}
	}
}

func (l *List[V]) String() string {
	var sb strings.Builder
	for cur := l.head; cur != nil; cur = cur.next {
		fmt.Fprintf(&sb, "-> (%s: %v) ", cur.Key, cur.Value)
	}
	return strings.TrimSuffix(sb.String(), " ")
}
