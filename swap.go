package fixcap

// Swap exchanges the contents of two Vecs, which may have different
// capacities. Both post-swap lengths are validated against both bounds
// before anything moves: on ErrCapacity neither side changes.
//
// The overlapping prefix is swapped element-wise, the longer side's
// surplus is moved across, and the vacated slots cleared. O(max len).
func (v *Vec[T]) Swap(other *Vec[T]) error {
	if v.Len() > other.Cap() || other.Len() > v.Cap() {
		return ErrCapacity
	}
	if other == v {
		return nil
	}
	a, b := v, other
	if a.Len() > b.Len() {
		a, b = b, a // a is the shorter side
	}
	shared := a.Len()
	for k := 0; k < shared; k++ {
		a.buf[k], b.buf[k] = b.buf[k], a.buf[k]
	}
	surplus := b.buf[shared:]
	a.buf = a.buf[:shared+len(surplus)]
	copy(a.buf[shared:], surplus)
	clear(surplus)
	b.buf = b.buf[:shared]
	return nil
}

// SwapSlice exchanges contents with a heap-backed dynamic slice. Only
// the fixed side's bound applies; the slice may grow to take the Vec's
// surplus. On ErrCapacity (slice longer than the Vec's capacity)
// neither side changes.
func (v *Vec[T]) SwapSlice(other *[]T) error {
	s := *other
	if len(s) > v.Cap() {
		return ErrCapacity
	}
	shared := min(len(v.buf), len(s))
	for k := 0; k < shared; k++ {
		v.buf[k], s[k] = s[k], v.buf[k]
	}
	switch {
	case len(s) > len(v.buf):
		surplus := s[shared:]
		v.buf = v.buf[:len(s)]
		copy(v.buf[shared:], surplus)
		clear(surplus)
		*other = s[:shared]
	case len(v.buf) > len(s):
		s = append(s, v.buf[shared:]...)
		clear(v.buf[shared:])
		v.buf = v.buf[:shared]
		*other = s
	}
	return nil
}
