// File: concat.go
// Title: Concatenation
// Description: Concatenation of strings, byte views, Go strings and single
//              bytes. Copying variants build a new exactly sized value;
//              owned variants consume an operand and reuse its storage.
// Author: msto63
// Version: v1.0.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v1.0.0: Initial implementation

package sso

import (
	"io"
)

var (
	_ io.Writer       = (*String)(nil)
	_ io.StringWriter = (*String)(nil)
	_ io.ByteWriter   = (*String)(nil)
	_ io.WriterTo     = (*String)(nil)
)

// Concat returns an exactly sized string holding all parts in order
func Concat(parts ...[]byte) *String {
	total := 0
	for _, p := range parts {
		total += len(p)
		checkLen(total)
	}
	s := &String{}
	buf := s.init(total, total)
	at := 0
	for _, p := range parts {
		at += copy(buf[at:], p)
	}
	buf[total] = 0
	return s
}

// join builds an exactly sized string from a byte view and a Go string
func join(head []byte, tail string, tailFirst bool) *String {
	total := len(head) + len(tail)
	checkLen(total)
	s := &String{}
	buf := s.init(total, total)
	if tailFirst {
		copy(buf[copy(buf, tail):], head)
	} else {
		copy(buf[copy(buf, head):], tail)
	}
	buf[total] = 0
	return s
}

// Add returns a new string holding a followed by b
func Add(a, b *String) *String {
	return Concat(a.bytes(), b.bytes())
}

// AddBytes returns a new string holding a followed by b
func AddBytes(a *String, b []byte) *String {
	return Concat(a.bytes(), b)
}

// AddString returns a new string holding a followed by v
func AddString(a *String, v string) *String {
	return join(a.bytes(), v, false)
}

// BytesAdd returns a new string holding b followed by a
func BytesAdd(b []byte, a *String) *String {
	return Concat(b, a.bytes())
}

// StringAdd returns a new string holding v followed by a
func StringAdd(v string, a *String) *String {
	return join(a.bytes(), v, true)
}

// AddByte returns a new string holding a followed by c
func AddByte(a *String, c byte) *String {
	return Concat(a.bytes(), []byte{c})
}

// ByteAdd returns a new string holding c followed by a
func ByteAdd(c byte, a *String) *String {
	return Concat([]byte{c}, a.bytes())
}

// AddOwned appends b to a and returns a. The caller gives up a; no
// allocation happens when a has room for b.
func AddOwned(a, b *String) *String {
	return a.Append(b.bytes())
}

// AddBytesOwned appends b to a and returns a
func AddBytesOwned(a *String, b []byte) *String {
	return a.Append(b)
}

// AddStringOwned appends v to a and returns a
func AddStringOwned(a *String, v string) *String {
	return a.AppendString(v)
}

// BytesAddOwned inserts b at the front of a and returns a
func BytesAddOwned(b []byte, a *String) *String {
	return a.Insert(0, b)
}

// StringAddOwned inserts v at the front of a and returns a
func StringAddOwned(v string, a *String) *String {
	return a.InsertString(0, v)
}

// AddByteOwned appends c to a and returns a
func AddByteOwned(a *String, c byte) *String {
	return a.AppendFill(1, c)
}

// ByteAddOwned inserts c at the front of a and returns a
func ByteAddOwned(c byte, a *String) *String {
	return a.InsertFill(0, 1, c)
}
