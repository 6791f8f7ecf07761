// Package fixcap provides value containers backed by a single
// fixed-capacity buffer. A Vec behaves like a growable slice but never
// allocates past the capacity chosen at construction: exceeding it is a
// reported failure, not a reallocation. That makes it usable where heap
// growth must be bounded or eliminated (pools, hot paths, deterministic
// latency).
//
// Operations that can fail report sentinel errors (ErrCapacity,
// ErrRange, ErrEmpty) and leave the container unchanged on failure.
// Unchecked accessors (Get, Set, Front, Back) document their
// preconditions instead; violating them panics.
//
// A Vec is a plain in-memory value. Concurrent mutation of one
// instance requires external synchronization.
package fixcap

import "iter"

// Vec is a fixed-capacity ordered collection of up to Cap() elements.
//
// Internally the live elements occupy buf[:len(buf)] and every slot
// beyond the live length is held at the zero value, so dropped elements
// never pin memory for the garbage collector.
type Vec[T any] struct {
	buf []T // live elements; cap(buf) is the fixed bound
}

// New returns an empty Vec with the given fixed capacity.
// The capacity never changes for the life of the instance.
func New[T any](capacity int) *Vec[T] {
	if capacity < 0 {
		panic("fixcap: negative capacity")
	}
	return &Vec[T]{buf: make([]T, 0, capacity)}
}

// Wrap adopts a caller-owned backing slice as storage. The capacity is
// cap(backing); the Vec starts empty and clears the backing so no stale
// values are retained. The caller must not use backing afterwards.
func Wrap[T any](backing []T) *Vec[T] {
	clear(backing[:cap(backing)])
	return &Vec[T]{buf: backing[:0]}
}

// Of returns a Vec with the given capacity holding vals.
func Of[T any](capacity int, vals ...T) (*Vec[T], error) {
	v := New[T](capacity)
	if err := v.Append(vals...); err != nil {
		return nil, err
	}
	return v, nil
}

// Repeat returns a Vec with the given capacity holding count copies of val.
func Repeat[T any](capacity, count int, val T) (*Vec[T], error) {
	v := New[T](capacity)
	if err := v.ResizeFill(count, val); err != nil {
		return nil, err
	}
	return v, nil
}

// Collect drains a single-pass source into a new Vec. It fails with
// ErrCapacity if the source yields more than capacity elements.
func Collect[T any](capacity int, seq iter.Seq[T]) (*Vec[T], error) {
	v := New[T](capacity)
	if _, err := v.AppendSeq(seq); err != nil {
		return nil, err
	}
	return v, nil
}

// Len returns the live length.
func (v *Vec[T]) Len() int { return len(v.buf) }

// Cap returns the fixed capacity.
func (v *Vec[T]) Cap() int { return cap(v.buf) }

// IsEmpty reports whether no live elements exist.
func (v *Vec[T]) IsEmpty() bool { return len(v.buf) == 0 }

// IsFull reports whether Len() == Cap().
func (v *Vec[T]) IsFull() bool { return len(v.buf) == cap(v.buf) }

// At returns the element at i, or ErrRange if i is not a live index.
func (v *Vec[T]) At(i int) (T, error) {
	if i < 0 || i >= len(v.buf) {
		var zero T
		return zero, ErrRange
	}
	return v.buf[i], nil
}

// Get returns the element at i. i must be a live index.
func (v *Vec[T]) Get(i int) T { return v.buf[i] }

// Set overwrites the element at i. i must be a live index.
func (v *Vec[T]) Set(i int, val T) { v.buf[i] = val }

// Front returns the first element. The Vec must be non-empty.
func (v *Vec[T]) Front() T { return v.buf[0] }

// Back returns the last element. The Vec must be non-empty.
func (v *Vec[T]) Back() T { return v.buf[len(v.buf)-1] }

// Slice returns the live region without copying. The view aliases the
// Vec's storage and is invalidated by any mutating call.
func (v *Vec[T]) Slice() []T { return v.buf }

// Values iterates over the live elements in order.
func (v *Vec[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, e := range v.buf {
			if !yield(e) {
				return
			}
		}
	}
}

// All iterates over index/element pairs in order.
func (v *Vec[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, e := range v.buf {
			if !yield(i, e) {
				return
			}
		}
	}
}

// Push appends one element. Fails with ErrCapacity when full.
func (v *Vec[T]) Push(val T) error {
	if len(v.buf) == cap(v.buf) {
		return ErrCapacity
	}
	v.buf = append(v.buf, val)
	return nil
}

// Append appends vals in order. Fails with ErrCapacity, appending
// nothing, if they do not all fit.
func (v *Vec[T]) Append(vals ...T) error {
	return v.Insert(len(v.buf), vals...)
}

// Pop removes and returns the last element.
// Unlike slice indexing this is checked: popping an empty Vec returns
// ErrEmpty rather than panicking.
func (v *Vec[T]) Pop() (T, error) {
	var zero T
	if len(v.buf) == 0 {
		return zero, ErrEmpty
	}
	last := len(v.buf) - 1
	val := v.buf[last]
	v.buf[last] = zero
	v.buf = v.buf[:last]
	return val, nil
}

// Resize grows with zero values or shrinks, clearing removed slots.
// Fails with ErrCapacity, unchanged, if n exceeds the capacity.
// Resize(Len()) is a no-op.
func (v *Vec[T]) Resize(n int) error {
	var zero T
	return v.ResizeFill(n, zero)
}

// ResizeFill is Resize with an explicit fill value for new slots.
func (v *Vec[T]) ResizeFill(n int, fill T) error {
	if n < 0 {
		panic("fixcap: negative length")
	}
	if n > cap(v.buf) {
		return ErrCapacity
	}
	old := len(v.buf)
	if n > old {
		grown := v.buf[:n]
		for i := old; i < n; i++ {
			grown[i] = fill
		}
		v.buf = grown
	} else {
		clear(v.buf[n:old])
		v.buf = v.buf[:n]
	}
	return nil
}

// Clear removes all elements.
func (v *Vec[T]) Clear() {
	clear(v.buf)
	v.buf = v.buf[:0]
}

// Clone returns a copy with the same capacity and contents.
func (v *Vec[T]) Clone() *Vec[T] {
	c := New[T](cap(v.buf))
	c.buf = c.buf[:len(v.buf)]
	copy(c.buf, v.buf)
	return c
}

// CopyFrom replaces the contents with a copy of other's elements.
// Works across differing capacities; fails with ErrCapacity, unchanged,
// if other's length exceeds this Vec's capacity.
func (v *Vec[T]) CopyFrom(other *Vec[T]) error {
	if other.Len() > cap(v.buf) {
		return ErrCapacity
	}
	if other == v {
		return nil
	}
	v.Clear()
	v.buf = v.buf[:other.Len()]
	copy(v.buf, other.buf)
	return nil
}

// MoveFrom transfers other's elements into this Vec and leaves other
// empty. Elements are copied out and other's slots cleared, so the
// source retains nothing. Fails with ErrCapacity, both sides unchanged,
// if other's length exceeds this Vec's capacity.
func (v *Vec[T]) MoveFrom(other *Vec[T]) error {
	if err := v.CopyFrom(other); err != nil {
		return err
	}
	if other != v {
		other.Clear()
	}
	return nil
}
