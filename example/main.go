package main

import (
	"fmt"
	"strconv"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/theflywheel/hashheap/dynarray"
	"github.com/theflywheel/hashheap/hashmap"
	"github.com/theflywheel/hashheap/minheap"
)

const maxLoad = 0.75

func main() {
	log.SetLevel(log.DebugLevel)

	if err := runHashMap(); err != nil {
		log.Fatalf("Hash map example failed: %v", err)
	}
	if err := runMinHeap(); err != nil {
		log.Fatalf("Min-heap example failed: %v", err)
	}

	fmt.Println("Example completed successfully")
}

func runHashMap() error {
	m := hashmap.New[int](8, hashmap.XXHash, hashmap.WithLogger(log.StandardLogger()))

	for i := 0; i < 20; i++ {
		m.Put("key"+strconv.Itoa(i), i*100)
		if m.TableLoad() > maxLoad {
			m.ResizeTable(m.Capacity() * 2)
		}
	}
	log.Infof("Inserted %d keys into %d buckets, %d empty, load %.2f",
		m.Size(), m.Capacity(), m.EmptyBuckets(), m.TableLoad())

	for i := 0; i < 25; i += 4 {
		key := "key" + strconv.Itoa(i)
		if value, found := m.Get(key); found {
			fmt.Printf("%s => %d\n", key, value)
		} else {
			fmt.Printf("%s not found\n", key)
		}
	}

	m.Put("key2", 999)
	if value, _ := m.Get("key2"); value != 999 {
		return errors.Errorf("key2 holds %d after update", value)
	}

	m.Remove("key3")
	if m.ContainsKey("key3") {
		return errors.New("key3 still present after remove")
	}

	fmt.Println("Keys:", m.Keys())
	m.Clear()
	log.Infof("Cleared: size %d, capacity %d", m.Size(), m.Capacity())
	return nil
}

func runMinHeap() error {
	h := minheap.New(5, 3, 8, 1, 9, 2)
	fmt.Println(h)

	for !h.IsEmpty() {
		v, err := h.RemoveMin()
		if err != nil {
			return errors.Wrap(err, "remove min")
		}
		fmt.Printf("%d ", v)
	}
	fmt.Println()

	if _, err := h.GetMin(); !errors.Is(err, minheap.ErrEmptyHeap) {
		return errors.Errorf("expected empty heap error, got %v", err)
	}

	h.BuildHeap(dynarray.New(100, 20, 6, 200, 90, 150, 300))
	lowest, err := h.GetMin()
	if err != nil {
		return errors.Wrap(err, "get min after build")
	}
	log.Infof("Built %s, minimum %d", h, lowest)
	return nil
}
