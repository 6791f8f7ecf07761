package fixcap

// Insert places vals at position i, shifting the suffix right.
// Relative order of surviving elements is preserved; cost is
// O(elements moved + len(vals)).
//
// The resulting length is validated before anything moves: on
// ErrCapacity the Vec is unchanged. i must satisfy 0 <= i <= Len().
func (v *Vec[T]) Insert(i int, vals ...T) error {
	n := len(v.buf)
	if i < 0 || i > n {
		panic("fixcap: insert position out of range")
	}
	count := len(vals)
	if count == 0 {
		return nil
	}
	if n+count > cap(v.buf) {
		return ErrCapacity
	}
	grown := v.buf[:n+count]
	// copy has memmove semantics, so the overlapping shift is safe.
	copy(grown[i+count:], grown[i:n])
	copy(grown[i:], vals)
	v.buf = grown
	return nil
}

// InsertRepeat inserts count copies of val at position i under the same
// contract as Insert.
func (v *Vec[T]) InsertRepeat(i, count int, val T) error {
	n := len(v.buf)
	if i < 0 || i > n {
		panic("fixcap: insert position out of range")
	}
	if count < 0 {
		panic("fixcap: negative count")
	}
	if count == 0 {
		return nil
	}
	if n+count > cap(v.buf) {
		return ErrCapacity
	}
	grown := v.buf[:n+count]
	copy(grown[i+count:], grown[i:n])
	for k := i; k < i+count; k++ {
		grown[k] = val
	}
	v.buf = grown
	return nil
}

// Delete erases the elements in [i, j), shifting the suffix left and
// clearing the vacated tail slots. 0 <= i <= j <= Len() is required.
func (v *Vec[T]) Delete(i, j int) {
	n := len(v.buf)
	if i < 0 || j < i || j > n {
		panic("fixcap: delete range out of range")
	}
	if i == j {
		return
	}
	copy(v.buf[i:], v.buf[j:])
	kept := n - (j - i)
	clear(v.buf[kept:n])
	v.buf = v.buf[:kept]
}
