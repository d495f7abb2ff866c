// File: severity.go
// Title: Error Severity Levels
// Description: Defines severity levels for errors so that reports and logs can
//              separate caller mistakes from broken invariants.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with severity levels
// - 2026-10-19 v0.2.0: Code mapping updated for the sso code set

package error

// Severity represents the severity level of an error
type Severity int

const (
	// SeverityLow indicates a recoverable caller error, e.g. an index past the end
	SeverityLow Severity = iota

	// SeverityMedium indicates an error that affects functionality but has workarounds
	SeverityMedium

	// SeverityHigh indicates a failure of the environment, e.g. an unreadable corpus
	SeverityHigh

	// SeverityCritical indicates a broken invariant of the string type itself
	SeverityCritical
)

// String returns the string representation of the severity level
func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "low"
	case SeverityMedium:
		return "medium"
	case SeverityHigh:
		return "high"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// ShouldAlert returns true if this severity level should fail a run
func (s Severity) ShouldAlert() bool {
	return s >= SeverityHigh
}

// GetSeverityFromCode determines appropriate severity level based on error code
func GetSeverityFromCode(code Code) Severity {
	switch code {
	case CodeMismatch, CodeTooLarge:
		return SeverityCritical
	case CodeStorageError, CodeInternal:
		return SeverityHigh
	case CodeConfigError, CodeInvalidConfig:
		return SeverityMedium
	case CodeOutOfRange, CodeInvalidInput, CodeNotFound:
		return SeverityLow
	default:
		return SeverityMedium
	}
}
