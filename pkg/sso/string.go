// File: string.go
// Title: Construction, Assignment and Transfer
// Description: Constructors, deep copy, move and swap, and assignment from
//              byte views.
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
)

// New returns an empty string
func New() *String {
	return &String{}
}

// WithCapacity returns an empty string able to hold n bytes without
// reallocating. Hints up to InlineCap stay inline.
func WithCapacity(n int) *String {
	checkCount("WithCapacity", n)
	s := &String{}
	buf := s.init(0, n)
	buf[0] = 0
	return s
}

// FromBytes returns an exactly sized string holding a copy of b
func FromBytes(b []byte) *String {
	s := &String{}
	buf := s.init(len(b), len(b))
	copy(buf, b)
	buf[len(b)] = 0
	return s
}

// FromString returns an exactly sized string holding a copy of v
func FromString(v string) *String {
	s := &String{}
	buf := s.init(len(v), len(v))
	copy(buf, v)
	buf[len(v)] = 0
	return s
}

// FromCString returns a string holding the bytes of b up to its first NUL.
// Without a NUL all of b is used.
func FromCString(b []byte) *String {
	return FromBytes(cstring(b))
}

func cstring(b []byte) []byte {
	if i := bytes.IndexByte(b, 0); i >= 0 {
		return b[:i]
	}
	return b
}

// Clone returns a deep copy. The copy is exactly sized, so a heap string
// whose content fits inline clones to an inline string.
func (s *String) Clone() *String {
	return FromBytes(s.bytes())
}

// Move transfers the content to a new String and leaves s empty
func (s *String) Move() *String {
	moved := &String{}
	moved.swap(s)
	return moved
}

// MoveFrom replaces the content of s with that of o and leaves o empty.
// The previous content of s is released.
func (s *String) MoveFrom(o *String) {
	if s == o {
		return
	}
	tmp := o.Move()
	s.swap(tmp)
}

// Swap exchanges the contents of s and o in constant time
func (s *String) Swap(o *String) {
	s.swap(o)
}

// Assign replaces the content with a copy of b. The current storage is
// reused when b fits; otherwise an exactly sized replacement is built.
func (s *String) Assign(b []byte) *String {
	if len(b) <= s.Cap() {
		// b may alias our own storage
		copy(s.storage(), b)
		s.setSize(len(b))
		return s
	}
	tmp := FromBytes(b)
	s.swap(tmp)
	return s
}

// AssignString replaces the content with a copy of v
func (s *String) AssignString(v string) *String {
	if len(v) <= s.Cap() {
		copy(s.storage(), v)
		s.setSize(len(v))
		return s
	}
	tmp := FromString(v)
	s.swap(tmp)
	return s
}

// AssignCString replaces the content with the bytes of b up to its first NUL
func (s *String) AssignCString(b []byte) *String {
	return s.Assign(cstring(b))
}

// CopyFrom replaces the content with a deep copy of o
func (s *String) CopyFrom(o *String) *String {
	if s == o {
		return s
	}
	return s.Assign(o.bytes())
}
