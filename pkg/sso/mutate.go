// File: mutate.go
// Title: Mutators and Growth Policy
// Description: Capacity management, insertion, erasure, appending and
//              resizing. Every mutator either fits the current capacity and
//              works in place, or builds a replacement and swaps it in.
// Author: msto63
// Version: v1.0.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v1.0.0: Initial implementation

package sso

import (
	"slices"
)

// Reserve ensures Cap() >= n. It never shrinks; the replacement, if any, is
// sized exactly n.
func (s *String) Reserve(n int) {
	if n > s.Cap() {
		s.realloc(s.Size(), n)
	}
}

// ShrinkToFit reallocates a heap string to exactly Size() bytes. Content of
// up to InlineCap bytes moves back inline.
func (s *String) ShrinkToFit() {
	if s.kind == kindHeap && s.Size() < s.Cap() {
		s.realloc(s.Size(), s.Size())
	}
}

// Clear removes all content and keeps the capacity
func (s *String) Clear() {
	s.setSize(0)
}

// splice builds a replacement with room for count new bytes at pos, lets
// fill write them and swaps it in. The replacement has twice the required
// capacity.
func (s *String) splice(pos, count int, fill func(dst []byte)) {
	src := s.bytes()
	required := len(src) + count
	var tmp String
	buf := tmp.init(required, grown(required))
	copy(buf, src[:pos])
	fill(buf[pos : pos+count])
	copy(buf[pos+count:], src[pos:])
	buf[required] = 0
	s.swap(&tmp)
}

// InsertFill inserts count copies of c before pos. It panics if pos is
// outside [0, Size()] or count is negative.
func (s *String) InsertFill(pos, count int, c byte) *String {
	n := s.Size()
	checkPos("InsertFill", pos, n)
	checkCount("InsertFill", count)
	if count == 0 {
		return s
	}
	checkLen(n + count)
	if n+count <= s.Cap() {
		buf := s.storage()
		copy(buf[pos+count:], buf[pos:n])
		fill(buf[pos:pos+count], c)
		s.setSize(n + count)
		return s
	}
	s.splice(pos, count, func(dst []byte) { fill(dst, c) })
	return s
}

// Insert inserts a copy of b before pos. b may alias the string's own
// content. It panics if pos is outside [0, Size()].
func (s *String) Insert(pos int, b []byte) *String {
	n := s.Size()
	checkPos("Insert", pos, n)
	if len(b) == 0 {
		return s
	}
	checkLen(n + len(b))
	if n+len(b) <= s.Cap() {
		buf := s.storage()
		_ = slices.Insert(buf[:n], pos, b...)
		s.setSize(n + len(b))
		return s
	}
	s.splice(pos, len(b), func(dst []byte) { copy(dst, b) })
	return s
}

// InsertString inserts a copy of v before pos
func (s *String) InsertString(pos int, v string) *String {
	n := s.Size()
	checkPos("InsertString", pos, n)
	if len(v) == 0 {
		return s
	}
	checkLen(n + len(v))
	if n+len(v) <= s.Cap() {
		buf := s.storage()
		copy(buf[pos+len(v):], buf[pos:n])
		copy(buf[pos:], v)
		s.setSize(n + len(v))
		return s
	}
	s.splice(pos, len(v), func(dst []byte) { copy(dst, v) })
	return s
}

// EraseRange removes the bytes in [first, last) and returns first, the
// position of the byte that followed the removed range. It panics on an
// invalid range.
func (s *String) EraseRange(first, last int) int {
	n := s.Size()
	if first < 0 || last < first || last > n {
		panic(rangePanic("EraseRange", first, last, n))
	}
	buf := s.storage()
	copy(buf[first:], buf[last:n])
	s.setSize(n - (last - first))
	return first
}

// EraseAt removes the byte at pos and returns pos. It panics if pos is not
// a valid index.
func (s *String) EraseAt(pos int) int {
	return s.EraseRange(pos, checkIndex("EraseAt", pos, s.Size())+1)
}

// Erase removes up to count bytes starting at index. A count beyond the
// remaining content, including Npos, is clamped. An index beyond Size()
// reports ErrOutOfRange.
func (s *String) Erase(index, count int) error {
	n := s.Size()
	if index < 0 || index > n {
		return outOfRange("erase", index, n)
	}
	checkCount("Erase", count)
	s.EraseRange(index, index+min(count, n-index))
	return nil
}

// PushBack appends c
func (s *String) PushBack(c byte) {
	n := s.Size()
	if n < s.Cap() {
		s.storage()[n] = c
		s.setSize(n + 1)
		return
	}
	s.splice(n, 1, func(dst []byte) { dst[0] = c })
}

// PopBack removes the last byte. It panics on an empty string.
func (s *String) PopBack() {
	n := s.Size()
	if n == 0 {
		panic("sso: PopBack on empty string")
	}
	s.setSize(n - 1)
}

// AppendFill appends count copies of c
func (s *String) AppendFill(count int, c byte) *String {
	checkCount("AppendFill", count)
	n := s.Size()
	checkLen(n + count)
	if n+count <= s.Cap() {
		fill(s.storage()[n:n+count], c)
		s.setSize(n + count)
		return s
	}
	s.splice(n, count, func(dst []byte) { fill(dst, c) })
	return s
}

// Append appends a copy of b. b may alias the string's own content.
func (s *String) Append(b []byte) *String {
	n := s.Size()
	checkLen(n + len(b))
	if n+len(b) <= s.Cap() {
		copy(s.storage()[n:], b)
		s.setSize(n + len(b))
		return s
	}
	s.splice(n, len(b), func(dst []byte) { copy(dst, b) })
	return s
}

// AppendString appends a copy of v
func (s *String) AppendString(v string) *String {
	n := s.Size()
	checkLen(n + len(v))
	if n+len(v) <= s.Cap() {
		copy(s.storage()[n:], v)
		s.setSize(n + len(v))
		return s
	}
	s.splice(n, len(v), func(dst []byte) { copy(dst, v) })
	return s
}

// AppendCString appends the bytes of b up to its first NUL
func (s *String) AppendCString(b []byte) *String {
	return s.Append(cstring(b))
}

// Write appends p and never fails. It implements io.Writer.
func (s *String) Write(p []byte) (int, error) {
	s.Append(p)
	return len(p), nil
}

// WriteString appends v and never fails. It implements io.StringWriter.
func (s *String) WriteString(v string) (int, error) {
	s.AppendString(v)
	return len(v), nil
}

// WriteByte appends c and never fails. It implements io.ByteWriter.
func (s *String) WriteByte(c byte) error {
	s.PushBack(c)
	return nil
}

// Resize truncates to n bytes or grows to n bytes padded with zero bytes
func (s *String) Resize(n int) {
	s.ResizeFill(n, 0)
}

// ResizeFill truncates to n bytes or grows to n bytes padded with c. Growth
// beyond Cap() reallocates to exactly n bytes.
func (s *String) ResizeFill(n int, c byte) {
	checkCount("ResizeFill", n)
	size := s.Size()
	if n <= s.Cap() {
		if n > size {
			fill(s.storage()[size:n], c)
		}
		s.setSize(n)
		return
	}
	var tmp String
	buf := tmp.init(n, n)
	copy(buf, s.bytes())
	fill(buf[size:n], c)
	buf[n] = 0
	s.swap(&tmp)
}

func fill(dst []byte, c byte) {
	for i := range dst {
		dst[i] = c
	}
}
