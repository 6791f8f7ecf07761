package fixcap

import "cmp"

// Equal reports whether two Vecs hold the same elements in the same
// order. Capacities are irrelevant: a capacity-4 and a capacity-10 Vec
// with equal contents compare equal.
func Equal[T comparable](a, b *Vec[T]) bool {
	if a.Len() != b.Len() {
		return false
	}
	for i, e := range a.buf {
		if e != b.buf[i] {
			return false
		}
	}
	return true
}

// EqualFunc is Equal with a caller-supplied element predicate, usable
// across element types.
func EqualFunc[T, U any](a *Vec[T], b *Vec[U], eq func(T, U) bool) bool {
	if a.Len() != b.Len() {
		return false
	}
	for i, e := range a.buf {
		if !eq(e, b.buf[i]) {
			return false
		}
	}
	return true
}

// Compare orders two Vecs lexicographically by element order, shorter
// prefix first. Consistent across instances of differing capacities.
func Compare[T cmp.Ordered](a, b *Vec[T]) int {
	return CompareSlice(a, b.buf)
}

// CompareFunc is Compare with a caller-supplied element comparison.
func CompareFunc[T, U any](a *Vec[T], b *Vec[U], compare func(T, U) int) int {
	for i, e := range a.buf {
		if i >= b.Len() {
			return 1
		}
		if c := compare(e, b.buf[i]); c != 0 {
			return c
		}
	}
	return cmp.Compare(a.Len(), b.Len())
}

// EqualSlice reports element-wise equality with a plain slice, the
// heap-backed analog of a Vec.
func EqualSlice[T comparable](a *Vec[T], b []T) bool {
	if a.Len() != len(b) {
		return false
	}
	for i, e := range a.buf {
		if e != b[i] {
			return false
		}
	}
	return true
}

// CompareSlice orders a Vec against a plain slice lexicographically.
func CompareSlice[T cmp.Ordered](a *Vec[T], b []T) int {
	for i, e := range a.buf {
		if i >= len(b) {
			return 1
		}
		if c := cmp.Compare(e, b[i]); c != 0 {
			return c
		}
	}
	return cmp.Compare(a.Len(), len(b))
}
