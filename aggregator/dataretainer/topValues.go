package dataretainer

import (
	"cmp"
	"container/heap"
	"sort"
)

// Entry holds a group key and the value it is ranked by.
type Entry[V cmp.Ordered] struct {
	Key   string
	Value V
}

// ranksBefore orders by value (descending when largest) and then by key, so
// ties always resolve the same way.
func ranksBefore[V cmp.Ordered](a, b Entry[V], largest bool) bool {
	if a.Value != b.Value {
		if largest {
			return a.Value > b.Value
		}
		return a.Value < b.Value
	}
	return a.Key < b.Key
}

type entryHeap[V cmp.Ordered] struct {
	items   []Entry[V]
	largest bool // true => keep the N largest
}

func (h entryHeap[V]) Len() int      { return len(h.items) }
func (h entryHeap[V]) Swap(i, j int) { h.items[i], h.items[j] = h.items[j], h.items[i] }

// the root is the entry that would be evicted first
func (h entryHeap[V]) Less(i, j int) bool {
	return ranksBefore(h.items[j], h.items[i], h.largest)
}
func (h *entryHeap[V]) Push(x interface{}) { h.items = append(h.items, x.(Entry[V])) }
func (h *entryHeap[V]) Pop() interface{} {
	old := h.items
	n := len(old)
	x := old[n-1]
	h.items = old[:n-1]
	return x
}

type TopN[V cmp.Ordered] struct {
	h        *entryHeap[V]
	capacity int
}

func NewTopN[V cmp.Ordered](capacity int, largest bool) *TopN[V] {
	if capacity <= 0 {
		capacity = 1
	}
	h := &entryHeap[V]{items: make([]Entry[V], 0, capacity), largest: largest}
	heap.Init(h)
	return &TopN[V]{h: h, capacity: capacity}
}

func (t *TopN[V]) Insert(e Entry[V]) {
	if t.h.Len() < t.capacity {
		heap.Push(t.h, e)
		return
	}
	if ranksBefore(e, t.h.items[0], t.h.largest) {
		t.h.items[0] = e
		heap.Fix(t.h, 0)
	}
}

func (t *TopN[V]) Len() int {
	return t.h.Len()
}

// Values returns the retained entries, best ranked first.
func (t *TopN[V]) Values() []Entry[V] {
	out := make([]Entry[V], len(t.h.items))
	copy(out, t.h.items)
	largest := t.h.largest
	sort.Slice(out, func(i, j int) bool { return ranksBefore(out[i], out[j], largest) })
	return out
}

// Sorted ranks every entry without a capacity limit.
func Sorted[V cmp.Ordered](entries []Entry[V], largest bool) []Entry[V] {
	out := make([]Entry[V], len(entries))
	copy(out, entries)
	sort.Slice(out, func(i, j int) bool { return ranksBefore(out[i], out[j], largest) })
	return out
}
