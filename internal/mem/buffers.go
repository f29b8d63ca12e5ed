// Package mem provides the scratch memory management used by the flattener.
//
// Nothing in this package is safe for concurrent use. Values are meant to live
// for the duration of a single call and to be discarded afterwards.
package mem

import "fmt"

// Buffers hands out slices of one fixed length and takes them back for reuse.
// Peak memory is bounded by the number of slices that are out at the same
// time, not by the number of Get calls.
type Buffers[E any] struct {
	size   int
	free   [][]E
	allocs int
}

// NewBuffers returns a free list of slices of length size.
func NewBuffers[E any](size int) *Buffers[E] {
	if size < 0 {
		panic(fmt.Sprintf("mem: negative buffer size %d", size))
	}
	return &Buffers[E]{size: size}
}

// Size returns the length of the slices managed by b.
func (b *Buffers[E]) Size() int { return b.size }

// Get returns a slice of length b.Size(). Slices returned to the free list are
// reused before new ones are allocated; their contents are not cleared.
func (b *Buffers[E]) Get() []E {
	if n := len(b.free); n > 0 {
		s := b.free[n-1]
		b.free[n-1] = nil
		b.free = b.free[:n-1]
		return s
	}
	b.allocs++
	return make([]E, b.size)
}

// Put returns s to the free list. s must have been obtained from Get and must
// not be used afterwards.
func (b *Buffers[E]) Put(s []E) {
	if len(s) != b.size {
		panic(fmt.Sprintf("mem: buffer of length %d returned to free list of size %d", len(s), b.size))
	}
	b.free = append(b.free, s)
}

// Allocs returns how many slices b had to allocate so far.
func (b *Buffers[E]) Allocs() int { return b.allocs }

// Free returns the number of slices currently held for reuse.
func (b *Buffers[E]) Free() int { return len(b.free) }

// Stack is a LIFO of values. The zero value is an empty stack.
type Stack[E any] struct {
	items []E
}

func (s *Stack[E]) Push(v E) {
	s.items = append(s.items, v)
}

// Pop removes and returns the most recently pushed value. It returns false if
// the stack is empty.
func (s *Stack[E]) Pop() (E, bool) {
	n := len(s.items)
	if n == 0 {
		return *new(E), false
	}
	v := s.items[n-1]
	// Don't keep the value alive through the backing array.
	s.items[n-1] = *new(E)
	s.items = s.items[:n-1]
	return v, true
}

func (s *Stack[E]) Len() int { return len(s.items) }
