package fixstr

import (
	"errors"
	"math"
	"strconv"
)

// Numeric leaf utilities. The Parse functions interpret the whole
// contents and map strconv's failure modes onto the package taxonomy;
// the Scan functions consume the longest leading number instead and
// report how many bytes they took, failing with ErrSyntax only when no
// digit is consumed and ErrRange when the magnitude exceeds the
// destination type. Formatting renders into a stack scratch first and
// fails with ErrCapacity, Str unchanged, when the rendering cannot fit.

// ParseInt interprets the whole contents as a signed integer in the
// given base (0 for prefix detection) and bit size.
func (s *Str) ParseInt(base, bitSize int) (int64, error) {
	v, err := strconv.ParseInt(s.String(), base, bitSize)
	if err != nil {
		return v, mapNumError(err)
	}
	return v, nil
}

// ParseUint is ParseInt for unsigned integers.
func (s *Str) ParseUint(base, bitSize int) (uint64, error) {
	v, err := strconv.ParseUint(s.String(), base, bitSize)
	if err != nil {
		return v, mapNumError(err)
	}
	return v, nil
}

// ParseFloat interprets the whole contents as a floating-point number
// of the given bit size (32 or 64).
func (s *Str) ParseFloat(bitSize int) (float64, error) {
	v, err := strconv.ParseFloat(s.String(), bitSize)
	if err != nil {
		return v, mapNumError(err)
	}
	return v, nil
}

// ScanInt consumes the longest leading signed integer in the given base
// (0 for prefix detection) and returns the value together with the
// number of bytes consumed. Trailing non-numeric bytes are left alone.
// ErrSyntax means no digit was consumed; on ErrRange the value is
// clamped to the nearest int64 bound and the digits are still counted
// as consumed.
func (s *Str) ScanInt(base int) (int64, int, error) {
	i := 0
	neg := false
	if i < len(s.buf) && (s.buf[i] == '+' || s.buf[i] == '-') {
		neg = s.buf[i] == '-'
		i++
	}
	acc, end, err := scanDigits(s.buf, i, base)
	if err == ErrSyntax {
		return 0, 0, err
	}
	limit := uint64(math.MaxInt64)
	if neg {
		limit++
	}
	if err == ErrRange || acc > limit {
		if neg {
			return math.MinInt64, end, ErrRange
		}
		return math.MaxInt64, end, ErrRange
	}
	v := int64(acc)
	if neg {
		v = -v
	}
	return v, end, nil
}

// ScanUint is ScanInt without a sign.
func (s *Str) ScanUint(base int) (uint64, int, error) {
	return scanDigits(s.buf, 0, base)
}

// scanDigits accumulates digits starting at i, resolving base prefixes
// the way strtol does when base is 0. On overflow it keeps consuming
// and returns ErrRange with the accumulator clamped to MaxUint64.
func scanDigits(b []byte, i, base int) (uint64, int, error) {
	if base == 0 {
		base = 10
		if i < len(b) && b[i] == '0' {
			// A bare leading zero means octal. 0x, 0b and 0o
			// prefixes are consumed only when a digit follows.
			base = 8
			if i+2 < len(b) {
				switch b[i+1] {
				case 'x', 'X':
					if digitVal(b[i+2]) < 16 {
						base = 16
						i += 2
					}
				case 'b', 'B':
					if digitVal(b[i+2]) < 2 {
						base = 2
						i += 2
					}
				case 'o', 'O':
					if digitVal(b[i+2]) < 8 {
						base = 8
						i += 2
					}
				}
			}
		}
	} else if base == 16 && i+2 < len(b) && b[i] == '0' &&
		(b[i+1] == 'x' || b[i+1] == 'X') && digitVal(b[i+2]) < 16 {
		i += 2
	}
	start := i
	var acc uint64
	overflow := false
	for ; i < len(b); i++ {
		d := digitVal(b[i])
		if d >= base {
			break
		}
		if acc > (math.MaxUint64-uint64(d))/uint64(base) {
			overflow = true
			continue
		}
		acc = acc*uint64(base) + uint64(d)
	}
	if i == start {
		return 0, 0, ErrSyntax
	}
	if overflow {
		return math.MaxUint64, i, ErrRange
	}
	return acc, i, nil
}

func digitVal(c byte) int {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0')
	case c >= 'a' && c <= 'z':
		return int(c-'a') + 10
	case c >= 'A' && c <= 'Z':
		return int(c-'A') + 10
	}
	return 99
}

// AppendInt appends the base-b representation of v.
func (s *Str) AppendInt(v int64, base int) error {
	var scratch [64]byte
	return s.appendRendered(strconv.AppendInt(scratch[:0], v, base))
}

// AppendUint appends the base-b representation of v.
func (s *Str) AppendUint(v uint64, base int) error {
	var scratch [64]byte
	return s.appendRendered(strconv.AppendUint(scratch[:0], v, base))
}

// AppendFloat appends the representation of f in the given strconv
// format, precision and bit size.
func (s *Str) AppendFloat(f float64, fmt byte, prec, bitSize int) error {
	var scratch [64]byte
	return s.appendRendered(strconv.AppendFloat(scratch[:0], f, fmt, prec, bitSize))
}

// AppendBool appends "true" or "false".
func (s *Str) AppendBool(v bool) error {
	var scratch [8]byte
	return s.appendRendered(strconv.AppendBool(scratch[:0], v))
}

// FormatInt returns a new Str of the given capacity holding the base-b
// representation of v, or ErrCapacity if it cannot fit.
func FormatInt(capacity int, v int64, base int) (*Str, error) {
	b := New(capacity)
	if err := b.AppendInt(v, base); err != nil {
		return nil, err
	}
	return b, nil
}

func (s *Str) appendRendered(rendered []byte) error {
	n := len(s.buf)
	if n+len(rendered) > s.Cap() {
		return ErrCapacity
	}
	s.buf = s.buf[:n+len(rendered)]
	copy(s.buf[n:], rendered)
	return nil
}

func mapNumError(err error) error {
	var ne *strconv.NumError
	if errors.As(err, &ne) {
		switch ne.Err {
		case strconv.ErrSyntax:
			return ErrSyntax
		case strconv.ErrRange:
			return ErrRange
		}
	}
	return err
}
