// Package fixstr provides Str, a mutable byte string backed by a
// fixed-capacity buffer. It supports the usual string-container
// operations (insert, delete, append, replace, search, compare) but never
// allocates past the capacity chosen at construction; exceeding it is a
// reported failure, not a reallocation.
//
// Str manipulates bytes, not code points. The buffer holds one code
// unit beyond the capacity for a permanent NUL sentinel, so the
// contents are always usable as a terminated view (CString) without an
// extra call.
//
// Every edit is expressed through one primitive, Replace, which shifts
// the trailing block (sentinel included) and rewrites a window. Failed
// operations leave the Str unchanged. Instances are plain in-memory
// values with no internal synchronization.
package fixstr

import (
	"errors"
	"io"
)

var (
	// ErrCapacity is returned when an edit would push the length past
	// the fixed capacity. The Str is left unchanged.
	ErrCapacity = errors.New("fixstr: capacity exceeded")

	// ErrRange is returned by checked access beyond the live length,
	// and by numeric parses whose value exceeds the destination type.
	ErrRange = errors.New("fixstr: out of range")

	// ErrEmpty is returned by Pop on an empty Str.
	ErrEmpty = errors.New("fixstr: empty string")

	// ErrSyntax is returned by numeric parses that consume no number.
	ErrSyntax = errors.New("fixstr: invalid syntax")
)

// Str is a fixed-capacity byte string.
//
// The live bytes occupy buf[:len(buf)]; cap(buf) is capacity+1 and the
// slot at the live length always holds the NUL sentinel. Every byte
// past the sentinel is kept zero as well, which is what lets the
// rollback paths restore a failed operation's state exactly.
type Str struct {
	buf []byte
}

// New returns an empty Str with the given fixed capacity.
func New(capacity int) *Str {
	if capacity < 0 {
		panic("fixstr: negative capacity")
	}
	return &Str{buf: make([]byte, 0, capacity+1)}
}

// Make returns a Str with the given capacity holding s.
func Make(capacity int, s string) (*Str, error) {
	b := New(capacity)
	if err := b.Assign(s); err != nil {
		return nil, err
	}
	return b, nil
}

// Len returns the live length in bytes.
func (s *Str) Len() int { return len(s.buf) }

// Cap returns the fixed capacity in bytes.
func (s *Str) Cap() int { return cap(s.buf) - 1 }

// IsEmpty reports whether the Str holds no bytes.
func (s *Str) IsEmpty() bool { return len(s.buf) == 0 }

// IsFull reports whether Len() == Cap().
func (s *Str) IsFull() bool { return len(s.buf) == s.Cap() }

// String returns a copy of the live bytes.
func (s *Str) String() string { return string(s.buf) }

// Bytes returns the live bytes without copying. The view aliases the
// Str's storage and is invalidated by any mutating call.
func (s *Str) Bytes() []byte { return s.buf }

// CString returns the live bytes plus the NUL sentinel, without
// copying.
func (s *Str) CString() []byte { return s.buf[:len(s.buf)+1] }

// At returns the byte at i, or ErrRange if i is not a live index.
func (s *Str) At(i int) (byte, error) {
	if i < 0 || i >= len(s.buf) {
		return 0, ErrRange
	}
	return s.buf[i], nil
}

// Get returns the byte at i. i must be a live index.
func (s *Str) Get(i int) byte { return s.buf[i] }

// Set overwrites the byte at i. i must be a live index.
func (s *Str) Set(i int, b byte) { s.buf[i] = b }

// Front returns the first byte. The Str must be non-empty.
func (s *Str) Front() byte { return s.buf[0] }

// Back returns the last byte. The Str must be non-empty.
func (s *Str) Back() byte { return s.buf[len(s.buf)-1] }

// Substr returns a copy of the bytes in [i, j). 0 <= i <= j <= Len()
// is required.
func (s *Str) Substr(i, j int) string {
	return string(s.buf[i:j])
}

// Replace substitutes content for the window [i, j). All other edits
// are expressed through this primitive.
//
// When the window and content lengths differ, the resulting length is
// validated first (fail ErrCapacity, unchanged), then the trailing
// block (everything after the window, sentinel included) is shifted
// to its final position before the content is copied in. The sentinel
// therefore always sits immediately after the last live byte.
// 0 <= i <= j <= Len() is required.
func (s *Str) Replace(i, j int, content string) error {
	n := len(s.buf)
	if i < 0 || j < i || j > n {
		panic("fixstr: replace window out of range")
	}
	delta := len(content) - (j - i)
	if delta != 0 {
		if n+delta > s.Cap() {
			return ErrCapacity
		}
		full := s.buf[:cap(s.buf)]
		copy(full[i+len(content):], full[j:n+1]) // tail incl. sentinel
		if delta < 0 {
			clear(full[n+delta+1 : n+1])
		}
	}
	copy(s.buf[i:i+len(content)], content)
	s.buf = s.buf[:n+delta]
	return nil
}

// Insert places content at position i. 0 <= i <= Len() is required.
func (s *Str) Insert(i int, content string) error {
	return s.Replace(i, i, content)
}

// Delete erases the bytes in [i, j). 0 <= i <= j <= Len() is required.
func (s *Str) Delete(i, j int) {
	_ = s.Replace(i, j, "")
}

// Append adds content at the end. Fails with ErrCapacity, unchanged,
// if it does not fit.
func (s *Str) Append(content string) error {
	return s.Replace(len(s.buf), len(s.buf), content)
}

// AppendByte adds one byte at the end.
func (s *Str) AppendByte(b byte) error {
	n := len(s.buf)
	if n == s.Cap() {
		return ErrCapacity
	}
	s.buf = s.buf[:n+1]
	s.buf[n] = b
	return nil
}

// AppendRepeat adds count copies of b at the end.
func (s *Str) AppendRepeat(count int, b byte) error {
	n := len(s.buf)
	if count < 0 {
		panic("fixstr: negative count")
	}
	if n+count > s.Cap() {
		return ErrCapacity
	}
	grown := s.buf[:n+count]
	for k := n; k < n+count; k++ {
		grown[k] = b
	}
	s.buf = grown
	return nil
}

// Assign replaces the whole contents with content.
func (s *Str) Assign(content string) error {
	return s.Replace(0, len(s.buf), content)
}

// Pop removes and returns the last byte, or ErrEmpty.
func (s *Str) Pop() (byte, error) {
	n := len(s.buf)
	if n == 0 {
		return 0, ErrEmpty
	}
	b := s.buf[n-1]
	s.Delete(n-1, n)
	return b, nil
}

// Truncate shortens the Str to n bytes. n must not exceed Len().
func (s *Str) Truncate(n int) {
	if n < 0 || n > len(s.buf) {
		panic("fixstr: truncate length out of range")
	}
	s.Delete(n, len(s.buf))
}

// Resize grows the Str with fill bytes or shrinks it. Fails with
// ErrCapacity, unchanged, if n exceeds the capacity. Resize(Len(), _)
// is a no-op.
func (s *Str) Resize(n int, fill byte) error {
	old := len(s.buf)
	if n < 0 {
		panic("fixstr: negative length")
	}
	if n <= old {
		s.Delete(n, old)
		return nil
	}
	return s.AppendRepeat(n-old, fill)
}

// Clear removes all bytes.
func (s *Str) Clear() {
	s.Delete(0, len(s.buf))
}

// Clone returns a copy with the same capacity and contents.
func (s *Str) Clone() *Str {
	c := New(s.Cap())
	c.buf = c.buf[:len(s.buf)]
	copy(c.buf, s.buf)
	return c
}

// Swap exchanges the contents of two Strs, which may have different
// capacities. Both post-swap lengths are validated against both bounds
// before anything moves: on ErrCapacity neither side changes.
func (s *Str) Swap(other *Str) error {
	if s.Len() > other.Cap() || other.Len() > s.Cap() {
		return ErrCapacity
	}
	if other == s {
		return nil
	}
	a, b := s, other
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

// SwapBytes exchanges contents with a heap-backed byte slice. Only the
// Str's bound applies; the slice may grow to take the surplus. On
// ErrCapacity neither side changes.
func (s *Str) SwapBytes(other *[]byte) error {
	o := *other
	if len(o) > s.Cap() {
		return ErrCapacity
	}
	shared := min(len(s.buf), len(o))
	for k := 0; k < shared; k++ {
		s.buf[k], o[k] = o[k], s.buf[k]
	}
	switch {
	case len(o) > len(s.buf):
		s.buf = s.buf[:len(o)]
		copy(s.buf[shared:], o[shared:])
		clear(o[shared:])
		*other = o[:shared]
	case len(s.buf) > len(o):
		o = append(o, s.buf[shared:]...)
		clear(s.buf[shared:])
		s.buf = s.buf[:shared]
		*other = o
	}
	return nil
}

// Write implements io.Writer. A write that does not fit fails with
// ErrCapacity and writes nothing.
func (s *Str) Write(p []byte) (int, error) {
	n := len(s.buf)
	if n+len(p) > s.Cap() {
		return 0, ErrCapacity
	}
	s.buf = s.buf[:n+len(p)]
	copy(s.buf[n:], p)
	return len(p), nil
}

// WriteString implements io.StringWriter under Write's contract.
func (s *Str) WriteString(str string) (int, error) {
	if err := s.Append(str); err != nil {
		return 0, err
	}
	return len(str), nil
}

// WriteByte implements io.ByteWriter under Write's contract.
func (s *Str) WriteByte(b byte) error {
	return s.AppendByte(b)
}

// ReadFrom implements io.ReaderFrom: it appends bytes from r until EOF,
// reading directly into the spare capacity. r is a single-pass source,
// so the total cannot be checked upfront; if the buffer fills while r
// still has data, the Str is restored to its pre-call state exactly and
// the call fails with ErrCapacity. One byte of lookahead is consumed
// from r to detect that case.
func (s *Str) ReadFrom(r io.Reader) (int64, error) {
	old := len(s.buf)
	full := s.buf[:cap(s.buf)]
	w := old
	for {
		if w == s.Cap() {
			var probe [1]byte
			n, err := r.Read(probe[:])
			if n > 0 {
				clear(full[old:s.Cap()])
				s.buf = full[:old]
				return 0, ErrCapacity
			}
			if err == io.EOF {
				break
			}
			if err != nil {
				clear(full[old:s.Cap()])
				s.buf = full[:old]
				return 0, err
			}
			continue
		}
		n, err := r.Read(full[w:s.Cap()])
		w += n
		if err == io.EOF {
			break
		}
		if err != nil {
			clear(full[old:s.Cap()])
			s.buf = full[:old]
			return 0, err
		}
	}
	// a Read may scribble past the bytes it reports; re-establish the
	// zeroed spare region before committing
	clear(full[w:s.Cap()])
	s.buf = full[:w]
	return int64(w - old), nil
}
