// SPDX-License-Identifier: MIT

package pq

import "container/heap"

// Order selects which end of the priority range a Queue pops first.
type Order int

const (
	// MinFirst pops the entry with the lowest priority first.
	MinFirst Order = iota

	// MaxFirst pops the entry with the highest priority first.
	MaxFirst
)

// Queue is a binary-heap priority queue of Entry values.
//
// The zero value is not usable; construct with New.
type Queue[T any] struct {
	h entryHeap[T]
}

// New returns an empty Queue popping in the given order.
// Unknown orders fall back to MinFirst.
// Complexity: O(1).
func New[T any](order Order) *Queue[T] {
	if order != MaxFirst {
		order = MinFirst
	}

	return &Queue[T]{h: entryHeap[T]{order: order}}
}

// Push inserts value with the given priority.
// Complexity: O(log n).
func (q *Queue[T]) Push(value T, priority int64) {
	q.PushEntry(NewEntry(value, priority))
}

// PushEntry inserts a prebuilt entry.
// Complexity: O(log n).
func (q *Queue[T]) PushEntry(e Entry[T]) {
	heap.Push(&q.h, slot[T]{entry: e, seq: q.h.nextSeq})
	q.h.nextSeq++
}

// Pop removes and returns the next entry in queue order.
// ok is false when the queue is empty.
// Complexity: O(log n).
func (q *Queue[T]) Pop() (e Entry[T], ok bool) {
	if len(q.h.slots) == 0 {
		return e, false
	}
	s := heap.Pop(&q.h).(slot[T])

	return s.entry, true
}

// Peek returns the next entry without removing it.
// ok is false when the queue is empty.
// Complexity: O(1).
func (q *Queue[T]) Peek() (e Entry[T], ok bool) {
	if len(q.h.slots) == 0 {
		return e, false
	}

	return q.h.slots[0].entry, true
}

// Len returns the number of queued entries.
func (q *Queue[T]) Len() int { return len(q.h.slots) }

// Order returns the pop order chosen at construction.
func (q *Queue[T]) Order() Order { return q.h.order }

// Reset drops all entries but keeps the allocated capacity.
func (q *Queue[T]) Reset() {
	clear(q.h.slots)
	q.h.slots = q.h.slots[:0]
	q.h.nextSeq = 0
}

// slot is the heap element: the caller's entry plus an insertion sequence
// number used to keep equal priorities in FIFO order.
type slot[T any] struct {
	entry Entry[T]
	seq   uint64
}

// entryHeap implements heap.Interface over slots.
type entryHeap[T any] struct {
	slots   []slot[T]
	order   Order
	nextSeq uint64
}

func (h entryHeap[T]) Len() int { return len(h.slots) }

func (h entryHeap[T]) Less(i, j int) bool {
	a, b := h.slots[i], h.slots[j]
	switch c := a.entry.Compare(b.entry); {
	case c == 0:
		return a.seq < b.seq
	case h.order == MaxFirst:
		return c > 0
	default:
		return c < 0
	}
}

func (h entryHeap[T]) Swap(i, j int) { h.slots[i], h.slots[j] = h.slots[j], h.slots[i] }

func (h *entryHeap[T]) Push(x any) { h.slots = append(h.slots, x.(slot[T])) }

func (h *entryHeap[T]) Pop() any {
	old := h.slots
	n := len(old)
	item := old[n-1]
	var zero slot[T]
	old[n-1] = zero // release payload references held by the backing array
	h.slots = old[:n-1]

	return item
}
