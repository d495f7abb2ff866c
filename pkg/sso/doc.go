// File: doc.go
// Title: Package Documentation for sso
// Description: Package sso provides a mutable byte string with small-string
//              optimization.
// Author: msto63
// Version: v1.0.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v1.0.0: Initial release

// Package sso provides String, a growable, mutable byte string that keeps
// short content inside the value itself and moves longer content to an owned
// heap buffer.
//
// Overview
//
// A String has two representations selected by a discriminant:
//
//   - inline: up to InlineCap bytes stored in a fixed array within the value,
//     no heap allocation
//   - heap: a buffer of capacity+1 bytes owned by exactly one String
//
// Content is always followed by a NUL terminator that is not counted in
// Size, so CStr can be handed to C-style consumers without copying.
//
// Size and Cap are derived from the discriminant with a bit mask instead of a
// branch. The mask is all zero bits for the inline representation and all one
// bits for the heap representation.
//
// Growth
//
// A mutation that fits the current capacity is applied in place. Otherwise a
// replacement is built and swapped in as a whole:
//
//   - Insert, Append, PushBack and the Write methods size the replacement at
//     twice the required length
//   - Resize, Reserve, Substr, ShrinkToFit, construction and assignment size
//     it exactly
//
// A String never returns to the inline representation on its own; only
// ShrinkToFit tightens capacity.
//
// Value semantics
//
// Go copies structs by assignment, which would alias the heap buffer. Do not
// copy a String by value. Use Clone or CopyFrom for a deep copy and Move,
// MoveFrom or Swap to transfer content. A moved-from String is empty and
// inline.
//
// Errors
//
// At, SetAt, Erase, Substr and CopyTo report a position beyond the content
// with an error matching ErrOutOfRange. Counts are clamped instead. Index,
// SetIndex, Front, Back, PopBack, EraseAt, EraseRange and the insert
// operations panic on an invalid position; these are programming errors, not
// conditions to recover from. Lengths beyond MaxSize panic with ErrTooLarge.
//
// Usage
//
//	var s sso.String
//	s.AppendString("hello")
//	s.PushBack('!')
//	fmt.Println(s.String(), s.IsInline()) // hello! true
//
//	sub, err := s.Substr(10, 1)
//	if sso.IsOutOfRange(err) {
//		// position 10 is beyond size 6
//	}
//
// A String is not safe for concurrent mutation. Distinct values share no
// state.
package sso
