package routingalgorithm

import (
	"errors"

	"lintang/flightnav/pkg/datastructure"
)

var ErrInvalidDecreaseKey = errors.New("invalid index or new value")

// HeapEntry is the scratch record of one airport during a single query.
type HeapEntry struct {
	Airport int
	datastructure.Weights
}

// MinHeap binary heap priorityqueue over airport indices. pos maps an airport
// to its slot in heap; extracted airports are parked behind size so that
// pos[heap[i].Airport] == i holds for every slot.
type MinHeap struct {
	heap      []HeapEntry
	pos       []int
	size      int
	criterion Criterion
}

// NewMinHeap allocates a heap for n airports ordered by the accumulator
// selected by c. The heap is empty until Fill is called.
func NewMinHeap(n int, c Criterion) *MinHeap {
	return &MinHeap{
		heap:      make([]HeapEntry, n),
		pos:       make([]int, n),
		criterion: c,
	}
}

// Fill puts exactly one entry per airport in the heap, in airport order. The
// entries must already respect the heap order (e.g. all equal), keys can be
// lowered afterwards with DecreaseKey.
func (h *MinHeap) Fill(entry func(airport int) HeapEntry) {
	for v := range h.heap {
		e := entry(v)
		e.Airport = v
		h.heap[v] = e
		h.pos[v] = v
	}
	h.size = len(h.heap)
}

func (h *MinHeap) rank(i int) int64 {
	return h.criterion.Value(h.heap[i].Weights)
}

// parent returns the slot of the parent of index
func (h *MinHeap) parent(index int) int {
	return (index - 1) / 2
}

func (h *MinHeap) leftChild(index int) int {
	return 2*index + 1
}

func (h *MinHeap) rightChild(index int) int {
	return 2*index + 2
}

func (h *MinHeap) swap(i, j int) {
	h.heap[i], h.heap[j] = h.heap[j], h.heap[i]
	h.pos[h.heap[i].Airport] = i
	h.pos[h.heap[j].Airport] = j
}

// heapifyUp moves the entry at index towards the root while it is strictly
// smaller than its parent. O(logN).
func (h *MinHeap) heapifyUp(index int) {
	for index != 0 && h.rank(index) < h.rank(h.parent(index)) {
		h.swap(index, h.parent(index))
		index = h.parent(index)
	}
}

// heapifyDown swaps the entry at index with its smallest child as long as that
// child is strictly smaller. On ties the left child wins. O(logN).
func (h *MinHeap) heapifyDown(index int) {
	smallest := index
	left := h.leftChild(index)
	right := h.rightChild(index)

	if left < h.size && h.rank(left) < h.rank(smallest) {
		smallest = left
	}
	if right < h.size && h.rank(right) < h.rank(smallest) {
		smallest = right
	}
	if smallest != index {
		h.swap(index, smallest)
		h.heapifyDown(smallest)
	}
}

func (h *MinHeap) IsEmpty() bool {
	return h.size == 0
}

func (h *MinHeap) Size() int {
	return h.size
}

// ExtractMin pops the entry with the smallest key. The boolean is false if the
// heap is empty.
func (h *MinHeap) ExtractMin() (HeapEntry, bool) {
	if h.IsEmpty() {
		return HeapEntry{}, false
	}
	root := h.heap[0]
	h.swap(0, h.size-1)
	h.size--
	h.heapifyDown(0)
	return root, true
}

// DecreaseKey overwrites the weights of airport and restores the heap order.
// The key may only go down and the airport must still be in the heap.
func (h *MinHeap) DecreaseKey(airport int, w datastructure.Weights) error {
	if !h.IsInHeap(airport) {
		return ErrInvalidDecreaseKey
	}
	i := h.pos[airport]
	if h.criterion.Value(w) > h.rank(i) {
		return ErrInvalidDecreaseKey
	}
	h.heap[i].Weights = w
	h.heapifyUp(i)
	return nil
}

// IsInHeap reports whether airport has not been extracted yet.
func (h *MinHeap) IsInHeap(airport int) bool {
	if airport < 0 || airport >= len(h.pos) {
		return false
	}
	return h.pos[airport] < h.size
}

// Entries returns the occupied slots in heap order.
//
// Important: the slice is a view on the heap's internal structure and should
// only be used in read-only operations.
func (h *MinHeap) Entries() []HeapEntry {
	return h.heap[:h.size]
}

// Position returns the slot currently holding airport.
func (h *MinHeap) Position(airport int) int {
	return h.pos[airport]
}
