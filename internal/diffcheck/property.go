package diffcheck

import (
	"bytes"
	"fmt"
	"sort"
	"strings"

	coreerror "github.com/msto63/sso/pkg/core/error"
	"github.com/msto63/sso/pkg/sso"
)

// Property is one differential check. Check draws its inputs from the
// generator, drives sso.String and a plain []byte reference, and returns a
// mismatch error when they disagree.
type Property struct {
	Name        string
	Description string
	Check       func(g *Gen) error
}

// Select returns the catalogue entries with the given names, in catalogue
// order. An empty list selects every property.
func Select(names []string) ([]Property, error) {
	all := Properties()
	if len(names) == 0 {
		return all, nil
	}

	wanted := make(map[string]bool, len(names))
	for _, name := range names {
		wanted[strings.TrimSpace(name)] = true
	}

	var selected []Property
	for _, p := range all {
		if wanted[p.Name] {
			selected = append(selected, p)
			delete(wanted, p.Name)
		}
	}
	if len(wanted) > 0 {
		unknown := make([]string, 0, len(wanted))
		for name := range wanted {
			unknown = append(unknown, name)
		}
		sort.Strings(unknown)
		return nil, coreerror.Newf("unknown properties: %s", strings.Join(unknown, ", ")).
			WithCode(coreerror.CodeNotFound).
			WithOperation("diffcheck.Select").
			WithDetail("unknown", unknown)
	}
	return selected, nil
}

// Names returns the names of all properties in catalogue order
func Names() []string {
	all := Properties()
	names := make([]string, len(all))
	for i, p := range all {
		names[i] = p.Name
	}
	return names
}

// Lookup finds a property by name
func Lookup(name string) (Property, bool) {
	for _, p := range Properties() {
		if p.Name == name {
			return p, true
		}
	}
	return Property{}, false
}

func mismatch(op string, format string, args ...interface{}) error {
	return coreerror.Newf("%s: %s", op, fmt.Sprintf(format, args...)).
		WithCode(coreerror.CodeMismatch).
		WithOperation(op)
}

// agree compares s against the reference content and checks the invariants
// observable through the public API.
func agree(op string, s *sso.String, want []byte) error {
	if !bytes.Equal(s.View(), want) {
		return mismatch(op, "content %q, want %q", s.View(), want)
	}
	if s.Size() != len(want) || s.Len() != len(want) {
		return mismatch(op, "size %d, want %d", s.Size(), len(want))
	}
	if s.Empty() != (len(want) == 0) {
		return mismatch(op, "empty %v for size %d", s.Empty(), len(want))
	}
	if c := s.CStr(); len(c) != len(want)+1 || c[len(want)] != 0 {
		return mismatch(op, "terminator missing in %q", c)
	}
	if s.Size() > s.Cap() {
		return mismatch(op, "size %d exceeds capacity %d", s.Size(), s.Cap())
	}
	if s.IsInline() != (s.Cap() == sso.InlineCap) {
		return mismatch(op, "inline %v with capacity %d", s.IsInline(), s.Cap())
	}
	return nil
}

func expectCap(op string, s *sso.String, want int) error {
	if s.Cap() != want {
		return mismatch(op, "capacity %d, want %d", s.Cap(), want)
	}
	return nil
}

// exactCap is the capacity of an exactly sized value holding n bytes
func exactCap(n int) int {
	return max(n, sso.InlineCap)
}

// grownCap is the capacity after an amortized operation. Content that fits
// keeps the current capacity.
func grownCap(current, required int) int {
	if required <= current {
		return current
	}
	return 2 * required
}

func expectOutOfRange(op string, err error) error {
	if err == nil {
		return mismatch(op, "expected out-of-range error")
	}
	if !sso.IsOutOfRange(err) {
		return mismatch(op, "error %v does not match ErrOutOfRange", err)
	}
	return nil
}

func expectNoError(op string, err error) error {
	if err != nil {
		return mismatch(op, "unexpected error %v", err)
	}
	return nil
}

func clip(count, n int) int {
	return min(count, n)
}

func concat(parts ...[]byte) []byte {
	return bytes.Join(parts, nil)
}

func firstErr(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
