// SPDX-License-Identifier: MIT

package pq

// Entry is a payload tagged with an integer priority.
//
// Two entries are equal iff their priorities are equal; Value is ignored by
// Compare, Less and Equal. Entries are plain values and are never mutated by
// the Queue.
type Entry[T any] struct {
	// Value is the caller payload carried through the queue.
	Value T

	// Priority orders the entry. Lower priority means a "lesser" entry.
	Priority int64
}

// NewEntry builds an Entry. It never fails.
func NewEntry[T any](value T, priority int64) Entry[T] {
	return Entry[T]{Value: value, Priority: priority}
}

// Compare returns -1, 0 or +1 when e has a lower, equal or higher priority
// than other.
func (e Entry[T]) Compare(other Entry[T]) int {
	switch {
	case e.Priority < other.Priority:
		return -1
	case e.Priority > other.Priority:
		return 1
	default:
		return 0
	}
}

// Less reports whether e orders strictly before other.
func (e Entry[T]) Less(other Entry[T]) bool { return e.Priority < other.Priority }

// Equal reports whether e and other have the same priority.
func (e Entry[T]) Equal(other Entry[T]) bool { return e.Priority == other.Priority }
