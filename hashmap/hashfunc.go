package hashmap

import "github.com/cespare/xxhash/v2"

// HashFunc maps a key to a bucket-independent hash value. It must be pure:
// the same key always yields the same value. The map reduces the result
// modulo its capacity.
type HashFunc func(key string) uint64

// SumHash adds up the code points of key
func SumHash(key string) uint64 {
	var hash uint64
	for _, r := range key {
		hash += uint64(r)
	}
	return hash
}

// WeightedSumHash adds up the code points of key, each multiplied by its
// 1-based position, so anagrams land in different buckets.
func WeightedSumHash(key string) uint64 {
	var hash uint64
	pos := uint64(0)
	for _, r := range key {
		pos++
		hash += pos * uint64(r)
	}
	return hash
}

const (
	offset32 = 2166136261
	prime32  = 16777619
)

// FNV1aHash computes a 32-bit FNV-1a hash of key
func FNV1aHash(key string) uint64 {
	hash := uint32(offset32)
	for i := 0; i < len(key); i++ {
		hash ^= uint32(key[i])
		hash *= prime32
	}
	return uint64(hash)
}

// XXHash computes the 64-bit xxHash of key
func XXHash(key string) uint64 {
	return xxhash.Sum64String(key)
}
