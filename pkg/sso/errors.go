// File: errors.go
// Title: String Errors
// Description: Sentinel errors and error constructors for the string type.
// Author: msto63
// Version: v1.0.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v1.0.0: Initial implementation

package sso

import (
	"errors"
	"fmt"

	coreerror "github.com/msto63/sso/pkg/core/error"
)

var (
	// ErrOutOfRange matches every error reported for a position beyond the content
	ErrOutOfRange = coreerror.New("sso: position out of range").
			WithCode(coreerror.CodeOutOfRange)

	// ErrTooLarge is the panic value for lengths beyond MaxSize
	ErrTooLarge = coreerror.New("sso: length exceeds maximum size").
			WithCode(coreerror.CodeTooLarge)
)

// IsOutOfRange reports whether err is an out-of-range error
func IsOutOfRange(err error) bool {
	return errors.Is(err, ErrOutOfRange)
}

func outOfRange(op string, pos, size int) error {
	return coreerror.Newf("sso: %s position %d out of range for size %d", op, pos, size).
		WithCode(coreerror.CodeOutOfRange).
		WithOperation(op).
		WithDetail("pos", pos).
		WithDetail("size", size)
}

// checkLen panics with ErrTooLarge if n cannot be stored
func checkLen(n int) {
	if n < 0 || n > maxSize {
		panic(ErrTooLarge)
	}
}

func checkCount(op string, count int) {
	if count < 0 {
		panic(fmt.Sprintf("sso: %s: negative count %d", op, count))
	}
}

func checkPos(op string, pos, size int) {
	if pos < 0 || pos > size {
		panic(fmt.Sprintf("sso: %s: position %d out of range [0, %d]", op, pos, size))
	}
}

// checkIndex panics unless i addresses an existing byte and returns i
func checkIndex(op string, i, size int) int {
	if i < 0 || i >= size {
		panic(fmt.Sprintf("sso: %s: index %d out of range [0, %d)", op, i, size))
	}
	return i
}

func rangePanic(op string, first, last, size int) string {
	return fmt.Sprintf("sso: %s: invalid range [%d, %d) for size %d", op, first, last, size)
}
