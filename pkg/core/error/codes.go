// File: codes.go
// Title: Error Code Definitions
// Description: Defines the error codes used across the sso module so that
//              callers can classify failures without matching on messages.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with core error codes
// - 2026-10-19 v0.2.0: Reduced to the codes used by the string type and its tooling

package error

// Code represents a structured error code for categorizing errors
type Code string

const (
	// Generic codes
	CodeUnknown      Code = "UNKNOWN"
	CodeInternal     Code = "INTERNAL"
	CodeInvalidInput Code = "INVALID_INPUT"
	CodeNotFound     Code = "NOT_FOUND"

	// String container
	CodeOutOfRange Code = "OUT_OF_RANGE"
	CodeTooLarge   Code = "TOO_LARGE"

	// Differential checking
	CodeMismatch Code = "MISMATCH"

	// Configuration and storage
	CodeConfigError   Code = "CONFIG_ERROR"
	CodeInvalidConfig Code = "INVALID_CONFIG"
	CodeStorageError  Code = "STORAGE_ERROR"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// IsValid reports whether the code is one of the known codes
func (c Code) IsValid() bool {
	switch c {
	case CodeUnknown, CodeInternal, CodeInvalidInput, CodeNotFound,
		CodeOutOfRange, CodeTooLarge, CodeMismatch,
		CodeConfigError, CodeInvalidConfig, CodeStorageError:
		return true
	}
	return false
}
