package fixstr

import "bytes"

// The search family reads the live range only and never allocates.
// Byte and byte-set scans delegate to package bytes; the substring
// scans are plain O(n*m) sweeps, which is the right trade for the
// short strings a fixed buffer holds.

// Index returns the first position of sub, or -1. An empty sub matches
// at 0.
func (s *Str) Index(sub string) int {
	m := len(sub)
	for i := 0; i+m <= len(s.buf); i++ {
		if string(s.buf[i:i+m]) == sub {
			return i
		}
	}
	return -1
}

// LastIndex returns the last position of sub, or -1. An empty sub
// matches at Len().
func (s *Str) LastIndex(sub string) int {
	m := len(sub)
	for i := len(s.buf) - m; i >= 0; i-- {
		if string(s.buf[i:i+m]) == sub {
			return i
		}
	}
	return -1
}

// IndexByte returns the first position of b, or -1.
func (s *Str) IndexByte(b byte) int {
	return bytes.IndexByte(s.buf, b)
}

// LastIndexByte returns the last position of b, or -1.
func (s *Str) LastIndexByte(b byte) int {
	return bytes.LastIndexByte(s.buf, b)
}

// IndexAny returns the first position of any byte in chars, or -1.
func (s *Str) IndexAny(chars string) int {
	for i, b := range s.buf {
		if indexByteString(chars, b) >= 0 {
			return i
		}
	}
	return -1
}

// LastIndexAny returns the last position of any byte in chars, or -1.
func (s *Str) LastIndexAny(chars string) int {
	for i := len(s.buf) - 1; i >= 0; i-- {
		if indexByteString(chars, s.buf[i]) >= 0 {
			return i
		}
	}
	return -1
}

// IndexNotAny returns the first position of a byte absent from chars,
// or -1.
func (s *Str) IndexNotAny(chars string) int {
	for i, b := range s.buf {
		if indexByteString(chars, b) < 0 {
			return i
		}
	}
	return -1
}

// LastIndexNotAny returns the last position of a byte absent from
// chars, or -1.
func (s *Str) LastIndexNotAny(chars string) int {
	for i := len(s.buf) - 1; i >= 0; i-- {
		if indexByteString(chars, s.buf[i]) < 0 {
			return i
		}
	}
	return -1
}

// Contains reports whether sub occurs in the Str.
func (s *Str) Contains(sub string) bool {
	return s.Index(sub) >= 0
}

// HasPrefix reports whether the Str starts with prefix.
func (s *Str) HasPrefix(prefix string) bool {
	return len(s.buf) >= len(prefix) && string(s.buf[:len(prefix)]) == prefix
}

// HasSuffix reports whether the Str ends with suffix.
func (s *Str) HasSuffix(suffix string) bool {
	return len(s.buf) >= len(suffix) && string(s.buf[len(s.buf)-len(suffix):]) == suffix
}

// Compare orders two Strs lexicographically by byte value, shorter
// prefix first. Consistent across instances of differing capacities.
func (s *Str) Compare(other *Str) int {
	return bytes.Compare(s.buf, other.buf)
}

// CompareString orders the Str against a heap-backed string.
func (s *Str) CompareString(str string) int {
	shared := min(len(s.buf), len(str))
	for i := 0; i < shared; i++ {
		if s.buf[i] != str[i] {
			if s.buf[i] < str[i] {
				return -1
			}
			return 1
		}
	}
	switch {
	case len(s.buf) < len(str):
		return -1
	case len(s.buf) > len(str):
		return 1
	}
	return 0
}

// Equal reports whether two Strs hold the same bytes.
func (s *Str) Equal(other *Str) bool {
	return bytes.Equal(s.buf, other.buf)
}

// EqualString reports whether the Str holds exactly str.
func (s *Str) EqualString(str string) bool {
	return string(s.buf) == str
}

func indexByteString(chars string, b byte) int {
	for i := 0; i < len(chars); i++ {
		if chars[i] == b {
			return i
		}
	}
	return -1
}
