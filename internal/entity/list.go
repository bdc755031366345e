package entity

import "iter"

// Entry ties a grid position to an entity record.
type Entry[T Ref] struct {
	X, Y int
	Ref  T
}

// List is an insertion-ordered, position-tagged collection. The zero value is
// an empty list ready to use.
type List[T Ref] struct {
	entries []Entry[T]
}

// NewList returns an empty list.
func NewList[T Ref]() *List[T] {
	return &List[T]{}
}

// Insert appends ref at the tail.
func (l *List[T]) Insert(x, y int, ref T) {
	l.entries = append(l.entries, Entry[T]{X: x, Y: y, Ref: ref})
}

// Remove deletes the entry holding ref, keeping the order of the rest.
// Returns false if ref is not in the list.
func (l *List[T]) Remove(ref T) bool {
	i := l.index(ref)
	if i < 0 {
		return false
	}
	l.entries = append(l.entries[:i], l.entries[i+1:]...)
	return true
}

// Len returns the number of entries.
func (l *List[T]) Len() int {
	return len(l.entries)
}

// Entries returns a copy of the entries in insertion order. Callers may
// remove entries from the list while walking the copy.
func (l *List[T]) Entries() []Entry[T] {
	out := make([]Entry[T], len(l.entries))
	copy(out, l.entries)
	return out
}

// All iterates the live entries in insertion order. The list must not be
// modified during the walk; use Entries for that.
func (l *List[T]) All() iter.Seq2[int, Entry[T]] {
	return func(yield func(int, Entry[T]) bool) {
		for i, e := range l.entries {
			if !yield(i, e) {
				return
			}
		}
	}
}

// At returns the first ref standing on (x, y).
func (l *List[T]) At(x, y int) (T, bool) {
	for _, e := range l.entries {
		if e.X == x && e.Y == y {
			return e.Ref, true
		}
	}
	var zero T
	return zero, false
}

// Has reports whether anything in the list stands on (x, y).
func (l *List[T]) Has(x, y int) bool {
	_, ok := l.At(x, y)
	return ok
}

// Position returns where ref stands.
func (l *List[T]) Position(ref T) (x, y int, ok bool) {
	i := l.index(ref)
	if i < 0 {
		return 0, 0, false
	}
	return l.entries[i].X, l.entries[i].Y, true
}

// Move updates the position stored for ref.
func (l *List[T]) Move(ref T, x, y int) bool {
	i := l.index(ref)
	if i < 0 {
		return false
	}
	l.entries[i].X = x
	l.entries[i].Y = y
	return true
}

// Clear drops every entry.
func (l *List[T]) Clear() {
	l.entries = nil
}

func (l *List[T]) index(ref T) int {
	for i, e := range l.entries {
		if e.Ref == ref {
			return i
		}
	}
	return -1
}
