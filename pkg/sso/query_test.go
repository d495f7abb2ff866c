// File: query_test.go
// Title: Query Tests
// Description: Tests for element access, views, iteration, prefix and
//              suffix tests, ordering, substrings and byte sink output.
// Author: msto63
// Version: v1.0.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v1.0.0: Initial test implementation

package sso

import (
	"bytes"
	"errors"
	"slices"
	"strings"
	"testing"

	coreerror "github.com/msto63/sso/pkg/core/error"
)

func TestAt(t *testing.T) {
	s := FromString("hello")

	tests := []struct {
		i       int
		want    byte
		wantErr bool
	}{
		{0, 'h', false},
		{4, 'o', false},
		{5, 0, true},
		{-1, 0, true},
	}
	for _, tt := range tests {
		got, err := s.At(tt.i)
		if (err != nil) != tt.wantErr || got != tt.want {
			t.Errorf("At(%d) = %q, %v; want %q, wantErr %v", tt.i, got, err, tt.want, tt.wantErr)
		}
		if err != nil && !errors.Is(err, ErrOutOfRange) {
			t.Errorf("At(%d) error does not match ErrOutOfRange", tt.i)
		}
	}

	if err := s.SetAt(1, 'a'); err != nil || !s.EqualString("hallo") {
		t.Errorf("SetAt() = %v, content %q", err, s.String())
	}
	if err := s.SetAt(5, 'x'); !IsOutOfRange(err) {
		t.Errorf("SetAt(5) error = %v", err)
	}
}

func TestOutOfRangeDetails(t *testing.T) {
	s := FromString("abc")
	_, err := s.Substr(9, 1)

	var e *coreerror.Error
	if !errors.As(err, &e) {
		t.Fatalf("Substr() error type = %T", err)
	}
	if e.Code() != coreerror.CodeOutOfRange || e.Operation() != "substr" {
		t.Errorf("code = %v, operation = %q", e.Code(), e.Operation())
	}
	if pos, _ := e.Detail("pos"); pos != 9 {
		t.Errorf("pos detail = %v, want 9", pos)
	}
	if size, _ := e.Detail("size"); size != 3 {
		t.Errorf("size detail = %v, want 3", size)
	}
}

func TestIndexFrontBack(t *testing.T) {
	s := FromString("xyz")
	if s.Index(1) != 'y' || s.Front() != 'x' || s.Back() != 'z' {
		t.Errorf("Index/Front/Back = %q %q %q", s.Index(1), s.Front(), s.Back())
	}
	s.SetIndex(0, 'X')
	if !s.EqualString("Xyz") {
		t.Errorf("SetIndex() = %q", s.String())
	}

	empty := New()
	expectPanic(t, "Index(size)", func() { s.Index(3) })
	expectPanic(t, "SetIndex(-1)", func() { s.SetIndex(-1, 'a') })
	expectPanic(t, "Front on empty", func() { empty.Front() })
	expectPanic(t, "Back on empty", func() { empty.Back() })
}

func TestViewAndCStr(t *testing.T) {
	s := FromString(long)
	v := s.View()
	if !bytes.Equal(v, []byte(long)) || cap(v) != len(long) {
		t.Errorf("View() len %d cap %d", len(v), cap(v))
	}
	c := s.CStr()
	if len(c) != len(long)+1 || c[len(long)] != 0 {
		t.Errorf("CStr() = %q", c)
	}
	if &v[0] != &c[0] {
		t.Error("View() and CStr() should share storage")
	}
}

func TestIteration(t *testing.T) {
	s := FromString("abc")

	var forward []byte
	var positions []int
	for i, c := range s.All() {
		forward = append(forward, c)
		positions = append(positions, i)
	}
	if string(forward) != "abc" || !slices.Equal(positions, []int{0, 1, 2}) {
		t.Errorf("All() = %q at %v", forward, positions)
	}

	var backward []byte
	for _, c := range s.Backward() {
		backward = append(backward, c)
	}
	if string(backward) != "cba" {
		t.Errorf("Backward() = %q", backward)
	}

	count := 0
	for range s.All() {
		count++
		break
	}
	if count != 1 {
		t.Errorf("All() ignored break, yielded %d", count)
	}

	for range New().Backward() {
		t.Error("Backward() of empty string yielded")
	}
}

func TestPrefixSuffix(t *testing.T) {
	s := FromString("hello")

	tests := []struct {
		name string
		got  bool
		want bool
	}{
		{"StartsWithByte h", s.StartsWithByte('h'), true},
		{"StartsWithByte e", s.StartsWithByte('e'), false},
		{"StartsWithString he", s.StartsWithString("he"), true},
		{"StartsWithString longer", s.StartsWithString("hello!"), false},
		{"StartsWithBytes empty", s.StartsWithBytes(nil), true},
		{"StartsWith value", s.StartsWith(FromString("hell")), true},
		{"StartsWithCString", s.StartsWithCString([]byte("he\x00xx")), true},
		{"StartsWithCString mismatch", s.StartsWithCString([]byte("ha\x00")), false},
		{"EndsWithString lo", s.EndsWithString("lo"), true},
		{"EndsWithString longer", s.EndsWithString("ahello"), false},
		{"EndsWithByte o", s.EndsWithByte('o'), true},
		{"EndsWithBytes llo", s.EndsWithBytes([]byte("llo")), true},
		{"EndsWith value", s.EndsWith(FromString("hello")), true},
		{"EndsWithCString", s.EndsWithCString([]byte("lo\x00")), true},
		{"empty StartsWithByte", New().StartsWithByte(0), false},
		{"empty EndsWithByte", New().EndsWithByte(0), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %v, want %v", tt.got, tt.want)
			}
		})
	}
}

func TestCompare(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"a", "", 1},
		{"", "a", -1},
		{"abc", "abd", -1},
		{"abc", "ab", 1},
		{"\x7f", "\x80", -1},
		{"\xff", "a", 1},
		{long, long, 0},
	}
	for _, tt := range tests {
		a, b := FromString(tt.a), FromString(tt.b)
		if got := a.Compare(b); got != tt.want {
			t.Errorf("Compare(%q, %q) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
		if got := a.CompareBytes([]byte(tt.b)); got != tt.want {
			t.Errorf("CompareBytes(%q, %q) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
		if got := a.CompareString(tt.b); got != tt.want {
			t.Errorf("CompareString(%q, %q) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
		if a.Equal(b) != (tt.want == 0) || a.EqualString(tt.b) != (tt.want == 0) {
			t.Errorf("Equal(%q, %q) disagrees with Compare", tt.a, tt.b)
		}
	}
}

func TestEqualIgnoresCapacity(t *testing.T) {
	a := FromString("same")
	b := WithCapacity(500)
	b.AppendString("same")
	if !a.Equal(b) || a.Compare(b) != 0 {
		t.Error("equality must depend on content only")
	}
}

func TestSubstr(t *testing.T) {
	s := FromString("hello")

	tests := []struct {
		name    string
		pos     int
		count   int
		want    string
		wantErr bool
	}{
		{"whole", 0, 5, "hello", false},
		{"oversized count", 2, 1000, "llo", false},
		{"npos", 1, Npos, "ello", false},
		{"at size", 5, 1, "", false},
		{"zero count", 2, 0, "", false},
		{"beyond size", 10, 1, "", true},
		{"negative pos", -1, 1, "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sub, err := s.Substr(tt.pos, tt.count)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Substr() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil {
				if !IsOutOfRange(err) {
					t.Errorf("Substr() error = %v, want ErrOutOfRange", err)
				}
				return
			}
			if !sub.EqualString(tt.want) {
				t.Errorf("Substr() = %q, want %q", sub.String(), tt.want)
			}
			checkInvariants(t, sub)
		})
	}
}

func TestSubstrExactlySized(t *testing.T) {
	s := FromString(strings.Repeat("q", 100))
	sub, err := s.Substr(10, 40)
	if err != nil {
		t.Fatal(err)
	}
	if sub.Cap() != 40 {
		t.Errorf("Substr() Cap() = %d, want 40", sub.Cap())
	}
	small, _ := s.Substr(0, 3)
	if !small.IsInline() {
		t.Error("short Substr() should be inline")
	}
}

func TestCopyTo(t *testing.T) {
	s := FromString("hello")

	tests := []struct {
		name    string
		dstLen  int
		count   int
		pos     int
		want    string
		wantErr bool
	}{
		{"prefix", 8, 3, 0, "hel", false},
		{"clamped to content", 8, 10, 3, "lo", false},
		{"clamped to dst", 3, 10, 1, "ell", false},
		{"at size", 8, 2, 5, "", false},
		{"beyond size", 8, 1, 6, "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dst := make([]byte, tt.dstLen)
			n, err := s.CopyTo(dst, tt.count, tt.pos)
			if (err != nil) != tt.wantErr {
				t.Fatalf("CopyTo() error = %v, wantErr %v", err, tt.wantErr)
			}
			if string(dst[:n]) != tt.want {
				t.Errorf("CopyTo() copied %q, want %q", dst[:n], tt.want)
			}
		})
	}
}

func TestWriteTo(t *testing.T) {
	var buf bytes.Buffer
	s := FromString("out\x00put")
	n, err := s.WriteTo(&buf)
	if err != nil || n != 7 {
		t.Errorf("WriteTo() = %d, %v", n, err)
	}
	if buf.String() != "out\x00put" {
		t.Errorf("WriteTo() wrote %q", buf.String())
	}
}

func TestWriteToSelf(t *testing.T) {
	s := FromString("ab")
	if _, err := s.WriteTo(s); err != nil {
		t.Fatal(err)
	}
	if !s.EqualString("abab") {
		t.Errorf("WriteTo(self) = %q", s.String())
	}
}
