package fixcap

import "iter"

// InsertSeq inserts the elements of a single-pass source at position i,
// returning how many were written.
//
// The source's length cannot be known in advance, so the capacity check
// that guards Insert is impossible here. Instead the insertion runs
// speculatively and is undone exactly if the source overruns the
// remaining capacity:
//
//  1. The suffix (everything from i to the old end) is relocated to the
//     physical end of the backing array, opening a gap after i.
//  2. Source elements are written into the gap one at a time.
//  3. If the write cursor meets the relocated suffix before the source
//     is exhausted, the suffix is moved back, every slot touched beyond
//     the old length is cleared, and the call fails with ErrCapacity.
//     The Vec, live elements and cleared spare region alike, is
//     restored to exactly its pre-call state.
//  4. Otherwise the suffix is compacted down to sit after the written
//     elements, stale slots are cleared, and the new length committed.
//
// Nothing is buffered elsewhere, so the operation never allocates.
// On overflow the element that did not fit has already been consumed
// from the source and is dropped. i must satisfy 0 <= i <= Len().
func (v *Vec[T]) InsertSeq(i int, seq iter.Seq[T]) (int, error) {
	n := len(v.buf)
	if i < 0 || i > n {
		panic("fixcap: insert position out of range")
	}
	capacity := cap(v.buf)
	full := v.buf[:capacity]
	tail := n - i
	park := capacity - tail // where the relocated suffix starts

	copy(full[park:], full[i:n])

	w := i
	overflow := false
	for val := range seq {
		if w == park {
			overflow = true
			break
		}
		full[w] = val
		w++
	}

	if overflow {
		copy(full[i:], full[park:])
		clear(full[n:])
		v.buf = full[:n]
		return 0, ErrCapacity
	}

	count := w - i
	copy(full[w:], full[park:])
	newLen := n + count
	clear(full[newLen:])
	v.buf = full[:newLen]
	return count, nil
}

// AppendSeq appends a single-pass source, with InsertSeq's rollback
// contract.
func (v *Vec[T]) AppendSeq(seq iter.Seq[T]) (int, error) {
	return v.InsertSeq(len(v.buf), seq)
}

// AssignSeq replaces the contents with a single-pass source. The old
// contents are cleared before the source is consumed, so on ErrCapacity
// the Vec is left empty rather than restored. Callers needing the
// strong guarantee should Collect into a fresh Vec and MoveFrom it.
func (v *Vec[T]) AssignSeq(seq iter.Seq[T]) (int, error) {
	v.Clear()
	return v.AppendSeq(seq)
}
