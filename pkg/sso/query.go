// File: query.go
// Title: Element Access and Queries
// Description: Checked and unchecked element access, views, iteration,
//              prefix and suffix tests, comparison, substring extraction and
//              byte sink output.
// Author: msto63
// Version: v1.0.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v1.0.0: Initial implementation

package sso

import (
	"bytes"
	"io"
	"iter"
)

// At returns the byte at i, or an error matching ErrOutOfRange if i is not
// below Size().
func (s *String) At(i int) (byte, error) {
	n := s.Size()
	if i < 0 || i >= n {
		return 0, outOfRange("at", i, n)
	}
	return s.storage()[i], nil
}

// SetAt replaces the byte at i, or reports ErrOutOfRange
func (s *String) SetAt(i int, c byte) error {
	n := s.Size()
	if i < 0 || i >= n {
		return outOfRange("at", i, n)
	}
	s.storage()[i] = c
	return nil
}

// Index returns the byte at i. It panics if i is not below Size().
func (s *String) Index(i int) byte {
	return s.storage()[checkIndex("Index", i, s.Size())]
}

// SetIndex replaces the byte at i. It panics if i is not below Size().
func (s *String) SetIndex(i int, c byte) {
	s.storage()[checkIndex("SetIndex", i, s.Size())] = c
}

// Front returns the first byte. It panics on an empty string.
func (s *String) Front() byte {
	return s.storage()[checkIndex("Front", 0, s.Size())]
}

// Back returns the last byte. It panics on an empty string.
func (s *String) Back() byte {
	n := s.Size()
	return s.storage()[checkIndex("Back", n-1, n)]
}

// View returns the content without copying. The slice is only valid until
// the next mutation of s and must not be written to.
func (s *String) View() []byte {
	n := s.Size()
	return s.storage()[:n:n]
}

// CStr returns the content followed by its NUL terminator without copying.
// The same validity rules as for View apply.
func (s *String) CStr() []byte {
	n := s.Size() + 1
	return s.storage()[:n:n]
}

// String returns a copy of the content
func (s *String) String() string {
	return string(s.bytes())
}

// All iterates over the content front to back
func (s *String) All() iter.Seq2[int, byte] {
	return func(yield func(int, byte) bool) {
		for i := 0; i < s.Size(); i++ {
			if !yield(i, s.storage()[i]) {
				return
			}
		}
	}
}

// Backward iterates over the content back to front
func (s *String) Backward() iter.Seq2[int, byte] {
	return func(yield func(int, byte) bool) {
		for i := s.Size() - 1; i >= 0; i-- {
			if !yield(i, s.storage()[i]) {
				return
			}
		}
	}
}

// StartsWith reports whether o's content is a prefix of s
func (s *String) StartsWith(o *String) bool {
	return bytes.HasPrefix(s.bytes(), o.bytes())
}

// StartsWithBytes reports whether b is a prefix of s
func (s *String) StartsWithBytes(b []byte) bool {
	return bytes.HasPrefix(s.bytes(), b)
}

// StartsWithString reports whether v is a prefix of s
func (s *String) StartsWithString(v string) bool {
	b := s.bytes()
	return len(b) >= len(v) && string(b[:len(v)]) == v
}

// StartsWithByte reports whether s is non-empty and begins with c
func (s *String) StartsWithByte(c byte) bool {
	return s.Size() > 0 && s.storage()[0] == c
}

// StartsWithCString reports whether the bytes of b up to its first NUL are
// a prefix of s
func (s *String) StartsWithCString(b []byte) bool {
	return s.StartsWithBytes(cstring(b))
}

// EndsWith reports whether o's content is a suffix of s
func (s *String) EndsWith(o *String) bool {
	return bytes.HasSuffix(s.bytes(), o.bytes())
}

// EndsWithBytes reports whether b is a suffix of s
func (s *String) EndsWithBytes(b []byte) bool {
	return bytes.HasSuffix(s.bytes(), b)
}

// EndsWithString reports whether v is a suffix of s
func (s *String) EndsWithString(v string) bool {
	b := s.bytes()
	return len(b) >= len(v) && string(b[len(b)-len(v):]) == v
}

// EndsWithByte reports whether s is non-empty and ends with c
func (s *String) EndsWithByte(c byte) bool {
	n := s.Size()
	return n > 0 && s.storage()[n-1] == c
}

// EndsWithCString reports whether the bytes of b up to its first NUL are a
// suffix of s
func (s *String) EndsWithCString(b []byte) bool {
	return s.EndsWithBytes(cstring(b))
}

// Equal reports whether s and o hold the same bytes
func (s *String) Equal(o *String) bool {
	return bytes.Equal(s.bytes(), o.bytes())
}

// EqualBytes reports whether s holds exactly b
func (s *String) EqualBytes(b []byte) bool {
	return bytes.Equal(s.bytes(), b)
}

// EqualString reports whether s holds exactly v
func (s *String) EqualString(v string) bool {
	return string(s.bytes()) == v
}

// Compare orders s and o byte-wise lexicographically by unsigned byte value
// and returns -1, 0 or +1.
func (s *String) Compare(o *String) int {
	return bytes.Compare(s.bytes(), o.bytes())
}

// CompareBytes orders s against b
func (s *String) CompareBytes(b []byte) int {
	return bytes.Compare(s.bytes(), b)
}

// CompareString orders s against v
func (s *String) CompareString(v string) int {
	b := s.bytes()
	switch {
	case string(b) < v:
		return -1
	case string(b) > v:
		return 1
	default:
		return 0
	}
}

// Substr returns an exactly sized copy of up to count bytes starting at pos.
// A count beyond the content, including Npos, is clamped. A pos beyond
// Size() reports ErrOutOfRange; pos == Size() yields an empty string.
func (s *String) Substr(pos, count int) (*String, error) {
	n := s.Size()
	if pos < 0 || pos > n {
		return nil, outOfRange("substr", pos, n)
	}
	checkCount("Substr", count)
	return FromBytes(s.bytes()[pos : pos+min(count, n-pos)]), nil
}

// CopyTo copies up to count bytes starting at pos into dst and returns the
// number copied. The count is clamped to the content and to len(dst). No
// terminator is written. A pos beyond Size() reports ErrOutOfRange.
func (s *String) CopyTo(dst []byte, count, pos int) (int, error) {
	n := s.Size()
	if pos < 0 || pos > n {
		return 0, outOfRange("copy", pos, n)
	}
	checkCount("CopyTo", count)
	return copy(dst, s.bytes()[pos:pos+min(count, n-pos)]), nil
}

// WriteTo writes the content, without the terminator, to w. It implements
// io.WriterTo.
func (s *String) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(s.bytes())
	return int64(n), err
}
