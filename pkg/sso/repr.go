// File: repr.go
// Title: String Representation
// Description: Inline and heap representations, the discriminant and the
//              mask based accessors for size, capacity and storage.
// Author: msto63
// Version: v1.0.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v1.0.0: Initial implementation

package sso

import (
	"math"
)

const (
	// InlineCap is the number of content bytes stored without a heap allocation
	InlineCap = 30

	// Npos as a count means "up to the end of the content"
	Npos = math.MaxInt

	// maxSize leaves room for the terminator and for doubling during growth
	maxSize = math.MaxInt/2 - 1
)

// kind is the discriminant; its value doubles as the source of the selection mask
type kind uint8

const (
	kindInline kind = 0
	kindHeap   kind = 1
)

func (k kind) String() string {
	if k == kindHeap {
		return "heap"
	}
	return "inline"
}

// inlineRep holds content and terminator within the value
type inlineRep struct {
	size uint8
	data [InlineCap + 1]byte
}

// heapRep owns a buffer of len capacity+1; extra is capacity-InlineCap
type heapRep struct {
	size  int
	extra int
	data  []byte
}

// String is a mutable byte string with small-string optimization. The zero
// value is an empty string ready to use. A String must not be copied by
// value once in use; see Clone, Move and Swap.
type String struct {
	kind  kind
	small inlineRep
	large heapRep
}

// mask is all zero bits for the inline representation and all one bits for
// the heap representation.
func (s *String) mask() uint {
	return -uint(s.kind)
}

// Size returns the number of content bytes, excluding the terminator
func (s *String) Size() int {
	m := s.mask()
	return int(uint(s.small.size)&^m | uint(s.large.size)&m)
}

// Len is an alias for Size
func (s *String) Len() int {
	return s.Size()
}

// Cap returns the number of content bytes that fit without reallocation
func (s *String) Cap() int {
	return InlineCap + int(uint(s.large.extra)&s.mask())
}

// MaxSize returns the largest length a String can hold
func (s *String) MaxSize() int {
	return maxSize
}

// Empty reports whether the string has no content
func (s *String) Empty() bool {
	return s.Size() == 0
}

// IsInline reports whether the content is stored without a heap allocation
func (s *String) IsInline() bool {
	return s.kind == kindInline
}

// storage returns the active buffer: Cap()+1 bytes
func (s *String) storage() []byte {
	switch s.kind {
	case kindHeap:
		return s.large.data
	default:
		return s.small.data[:]
	}
}

// bytes returns the content without the terminator
func (s *String) bytes() []byte {
	return s.storage()[:s.Size()]
}

// setSize updates the active size field and writes the terminator
func (s *String) setSize(n int) {
	if s.kind == kindHeap {
		s.large.size = n
		s.large.data[n] = 0
		return
	}
	s.small.size = uint8(n)
	s.small.data[n] = 0
}

// init turns a fresh String into a representation for capacity bytes with
// the given size and returns its storage. The caller fills the content and
// the terminator at storage[size].
func (s *String) init(size, capacity int) []byte {
	checkLen(capacity)
	if capacity <= InlineCap {
		s.kind = kindInline
		s.small.size = uint8(size)
		return s.small.data[:]
	}
	s.kind = kindHeap
	s.large = heapRep{
		size:  size,
		extra: capacity - InlineCap,
		data:  make([]byte, capacity+1),
	}
	return s.large.data
}

// swap exchanges the whole representation of s and o
func (s *String) swap(o *String) {
	*s, *o = *o, *s
}

// reset drops any heap buffer and leaves s empty and inline
func (s *String) reset() {
	*s = String{}
}

// grown returns the capacity used when an amortized operation needs required bytes
func grown(required int) int {
	checkLen(required)
	if required > maxSize/2 {
		return maxSize
	}
	return 2 * required
}

// realloc replaces the representation with one of the given capacity holding
// the first keep bytes of the current content followed by a terminator.
func (s *String) realloc(keep, capacity int) {
	var tmp String
	buf := tmp.init(keep, capacity)
	copy(buf, s.bytes()[:keep])
	buf[keep] = 0
	s.swap(&tmp)
}
