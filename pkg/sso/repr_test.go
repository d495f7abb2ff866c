// File: repr_test.go
// Title: Representation Tests
// Description: Tests for the discriminant, the mask based accessors and the
//              inline/heap boundary.
// Author: msto63
// Version: v1.0.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v1.0.0: Initial test implementation

package sso

import (
	"strings"
	"testing"
)

// checkInvariants verifies the representation invariants that must hold
// after every public operation.
func checkInvariants(t *testing.T, s *String) {
	t.Helper()
	buf := s.storage()
	if len(buf) != s.Cap()+1 {
		t.Errorf("len(storage) = %d, want Cap()+1 = %d", len(buf), s.Cap()+1)
	}
	if s.Size() > s.Cap() {
		t.Errorf("Size() = %d > Cap() = %d", s.Size(), s.Cap())
	}
	if buf[s.Size()] != 0 {
		t.Errorf("terminator = %q, want NUL", buf[s.Size()])
	}
	switch s.kind {
	case kindInline:
		if s.Cap() != InlineCap {
			t.Errorf("inline Cap() = %d, want %d", s.Cap(), InlineCap)
		}
	case kindHeap:
		if s.Cap() <= InlineCap {
			t.Errorf("heap Cap() = %d, want > %d", s.Cap(), InlineCap)
		}
	default:
		t.Errorf("unknown kind %d", s.kind)
	}
}

func TestMask(t *testing.T) {
	var s String
	if s.mask() != 0 {
		t.Errorf("inline mask = %#x, want 0", s.mask())
	}
	s.kind = kindHeap
	if s.mask() != ^uint(0) {
		t.Errorf("heap mask = %#x, want all ones", s.mask())
	}
}

func TestZeroValue(t *testing.T) {
	var s String

	if s.Size() != 0 || !s.Empty() {
		t.Errorf("Size() = %d, want 0", s.Size())
	}
	if s.Cap() != InlineCap {
		t.Errorf("Cap() = %d, want %d", s.Cap(), InlineCap)
	}
	if !s.IsInline() {
		t.Error("zero value should be inline")
	}
	if got := s.CStr(); len(got) != 1 || got[0] != 0 {
		t.Errorf("CStr() = %v, want [0]", got)
	}
	checkInvariants(t, &s)
}

func TestInlineBoundary(t *testing.T) {
	tests := []struct {
		name    string
		length  int
		inline  bool
		wantCap int
	}{
		{"empty", 0, true, InlineCap},
		{"one below threshold", InlineCap - 1, true, InlineCap},
		{"at threshold", InlineCap, true, InlineCap},
		{"one beyond threshold", InlineCap + 1, false, InlineCap + 1},
		{"twice threshold", 2 * InlineCap, false, 2 * InlineCap},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			content := strings.Repeat("x", tt.length)
			s := FromString(content)

			if s.IsInline() != tt.inline {
				t.Errorf("IsInline() = %v, want %v", s.IsInline(), tt.inline)
			}
			if s.Cap() != tt.wantCap {
				t.Errorf("Cap() = %d, want %d", s.Cap(), tt.wantCap)
			}
			if s.Size() != tt.length {
				t.Errorf("Size() = %d, want %d", s.Size(), tt.length)
			}
			if s.String() != content {
				t.Errorf("String() = %q, want %q", s.String(), content)
			}
			checkInvariants(t, s)
		})
	}
}

func TestSizeIgnoresInactiveVariant(t *testing.T) {
	s := FromString("abc")
	s.large.size = 999
	s.large.extra = 999
	if s.Size() != 3 || s.Cap() != InlineCap {
		t.Errorf("inline Size()/Cap() = %d/%d, want 3/%d", s.Size(), s.Cap(), InlineCap)
	}

	h := FromString(strings.Repeat("y", 40))
	h.small.size = 7
	if h.Size() != 40 {
		t.Errorf("heap Size() = %d, want 40", h.Size())
	}
}

func TestSwapExchangesRepresentation(t *testing.T) {
	a := FromString("short")
	b := FromString(strings.Repeat("L", 50))

	a.Swap(b)

	if !a.EqualString(strings.Repeat("L", 50)) || a.IsInline() {
		t.Errorf("a = %q inline=%v", a.String(), a.IsInline())
	}
	if !b.EqualString("short") || !b.IsInline() {
		t.Errorf("b = %q inline=%v", b.String(), b.IsInline())
	}
	checkInvariants(t, a)
	checkInvariants(t, b)
}

func TestGrown(t *testing.T) {
	if got := grown(31); got != 62 {
		t.Errorf("grown(31) = %d, want 62", got)
	}
	if got := grown(maxSize); got != maxSize {
		t.Errorf("grown(maxSize) = %d, want maxSize", got)
	}
}

func TestTooLargePanics(t *testing.T) {
	defer func() {
		if r := recover(); r != ErrTooLarge {
			t.Errorf("recover() = %v, want ErrTooLarge", r)
		}
	}()
	var s String
	s.Reserve(maxSize + 1)
}

func TestKindString(t *testing.T) {
	if kindInline.String() != "inline" || kindHeap.String() != "heap" {
		t.Errorf("kind strings = %q, %q", kindInline, kindHeap)
	}
}
