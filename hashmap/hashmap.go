package hashmap

import (
	"fmt"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/theflywheel/hashheap/dynarray"
	"github.com/theflywheel/hashheap/internal/chain"
)

// HashMap is a string-keyed hash table using separate chaining.
//
// Every stored key lives in the chain at index hash(key) % Capacity(). The
// table never resizes itself; callers watch TableLoad and call ResizeTable.
// A HashMap is not safe for concurrent use.
type HashMap[V any] struct {
	buckets  *dynarray.Array[*chain.List[V]]
	capacity int
	size     int
	hashFunc HashFunc
	logger   log.FieldLogger
}

// New creates a hash map with capacity empty buckets. A nil fn selects XXHash.
func New[V any](capacity int, fn HashFunc, opts ...Option) *HashMap[V] {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if fn == nil {
		fn = XXHash
	}
	if capacity < 0 {
		capacity = 0
	}

	return &HashMap[V]{
		buckets:  newBuckets[V](capacity),
		capacity: capacity,
		hashFunc: fn,
		logger:   o.logger,
	}
}

func newBuckets[V any](n int) *dynarray.Array[*chain.List[V]] {
	buckets := dynarray.New[*chain.List[V]]()
	for i := 0; i < n; i++ {
		buckets.Append(chain.New[V]())
	}
	return buckets
}

// Size returns the number of stored keys
func (m *HashMap[V]) Size() int {
	return m.size
}

// Capacity returns the number of buckets
func (m *HashMap[V]) Capacity() int {
	return m.capacity
}

// bucket returns the chain key hashes into, or nil for a table without buckets
func (m *HashMap[V]) bucket(key string) *chain.List[V] {
	if m.capacity == 0 {
		return nil
	}
	return m.buckets.Get(int(m.hashFunc(key) % uint64(m.capacity)))
}

// Put stores value under key, overwriting the value of an existing key in place
func (m *HashMap[V]) Put(key string, value V) {
	links := m.bucket(key)
	if links == nil {
		return
	}
	if existing := links.Contains(key); existing != nil {
		existing.Value = value
		return
	}
	links.Insert(key, value)
	m.size++
}

// Get returns the value stored under key and whether it was found
func (m *HashMap[V]) Get(key string) (V, bool) {
	if links := m.bucket(key); links != nil {
		if node := links.Contains(key); node != nil {
			return node.Value, true
		}
	}
	var zero V
	return zero, false
}

// Remove deletes key. Removing an absent key is a no-op.
func (m *HashMap[V]) Remove(key string) {
	if links := m.bucket(key); links != nil && links.Remove(key) {
		m.size--
	}
}

// ContainsKey reports whether key is stored
func (m *HashMap[V]) ContainsKey(key string) bool {
	links := m.bucket(key)
	return links != nil && links.Contains(key) != nil
}

// Clear empties every bucket. Capacity is unchanged.
func (m *HashMap[V]) Clear() {
	for i := 0; i < m.buckets.Len(); i++ {
		m.buckets.Set(i, chain.New[V]())
	}
	m.logger.WithFields(log.Fields{
		"capacity": m.capacity,
		"dropped":  m.size,
	}).Debug("hashmap cleared")
	m.size = 0
}

// EmptyBuckets returns the number of buckets holding no entries
func (m *HashMap[V]) EmptyBuckets() int {
	count := 0
	for i := 0; i < m.buckets.Len(); i++ {
		if m.buckets.Get(i).Len() == 0 {
			count++
		}
	}
	return count
}

// TableLoad returns the load factor Size()/Capacity(), or 0 without buckets
func (m *HashMap[V]) TableLoad() float64 {
	if m.capacity == 0 {
		return 0
	}
	return float64(m.size) / float64(m.capacity)
}

// ResizeTable rehashes every entry into newCapacity fresh buckets.
// A newCapacity below 1 is ignored.
func (m *HashMap[V]) ResizeTable(newCapacity int) {
	if newCapacity < 1 {
		m.logger.WithField("capacity", newCapacity).Debug("hashmap resize ignored")
		return
	}

	table := newBuckets[V](newCapacity)
	for i := 0; i < m.buckets.Len(); i++ {
		m.buckets.Get(i).All(func(key string, value V) bool {
			idx := int(m.hashFunc(key) % uint64(newCapacity))
			table.Get(idx).Insert(key, value)
			return true
		})
	}

	m.logger.WithFields(log.Fields{
		"from": m.capacity,
		"to":   newCapacity,
		"size": m.size,
	}).Debug("hashmap resized")

	m.buckets = table
	m.capacity = newCapacity
}

// Keys returns every stored key, bucket by bucket in chain order
func (m *HashMap[V]) Keys() *dynarray.Array[string] {
	keys := dynarray.New[string]()
	for i := 0; i < m.buckets.Len(); i++ {
		m.buckets.Get(i).All(func(key string, _ V) bool {
			keys.Append(key)
			return true
		})
	}
	return keys
}

// String renders one line per bucket as "index: chain"
func (m *HashMap[V]) String() string {
	var sb strings.Builder
	for i := 0; i < m.buckets.Len(); i++ {
		fmt.Fprintf(&sb, "%d: %s\n", i, m.buckets.Get(i))
	}
	return sb.String()
}
