// File: error_test.go
// Title: Error Module Tests
// Description: Tests for error creation, wrapping, code matching, severity
//              mapping and serialization.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with comprehensive test coverage
// - 2026-10-19 v0.2.0: Tests for code based errors.Is matching

package error

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	msg := "test error message"
	err := New(msg)

	if err.Error() != msg {
		t.Errorf("Error() = %q, want %q", err.Error(), msg)
	}
	if err.Code() != CodeUnknown {
		t.Errorf("Code() = %v, want %v", err.Code(), CodeUnknown)
	}
	if err.Severity() != SeverityMedium {
		t.Errorf("Severity() = %v, want %v", err.Severity(), SeverityMedium)
	}
	if err.Timestamp().IsZero() {
		t.Error("Timestamp() should not be zero")
	}
	if len(err.StackTrace()) == 0 {
		t.Error("StackTrace() should not be empty")
	}
}

func TestNewf(t *testing.T) {
	err := Newf("index %d out of range [0:%d]", 7, 5)
	if err.Error() != "index 7 out of range [0:5]" {
		t.Errorf("Error() = %q", err.Error())
	}
}

func TestWrap(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		message  string
		wantNil  bool
		wantMsg  string
		wantCode Code
	}{
		{
			name:    "wrap nil error",
			message: "wrapper message",
			wantNil: true,
		},
		{
			name:     "wrap standard error",
			err:      errors.New("original error"),
			message:  "wrapper message",
			wantMsg:  "wrapper message: original error",
			wantCode: CodeUnknown,
		},
		{
			name:     "wrap coded error",
			err:      New("disk gone").WithCode(CodeStorageError),
			message:  "save report",
			wantMsg:  "save report: disk gone",
			wantCode: CodeStorageError,
		},
		{
			name:     "wrap fmt wrapped coded error",
			err:      fmt.Errorf("outer: %w", New("bad").WithCode(CodeInvalidConfig)),
			message:  "load",
			wantMsg:  "load: outer: bad",
			wantCode: CodeInvalidConfig,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wrapped := Wrap(tt.err, tt.message)
			if tt.wantNil {
				if wrapped != nil {
					t.Errorf("Wrap() = %v, want nil", wrapped)
				}
				return
			}
			if wrapped.Error() != tt.wantMsg {
				t.Errorf("Error() = %q, want %q", wrapped.Error(), tt.wantMsg)
			}
			if wrapped.Code() != tt.wantCode {
				t.Errorf("Code() = %v, want %v", wrapped.Code(), tt.wantCode)
			}
		})
	}
}

func TestErrorChaining(t *testing.T) {
	original := errors.New("root cause")
	middle := Wrap(original, "middle layer")
	top := Wrap(middle, "top layer")

	if got, want := top.Error(), "top layer: middle layer: root cause"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
	if !errors.Is(top, middle) {
		t.Error("errors.Is(top, middle) = false")
	}
	if !errors.Is(top, original) {
		t.Error("errors.Is(top, original) = false")
	}
	if top.RootCause() != original {
		t.Errorf("RootCause() = %v, want %v", top.RootCause(), original)
	}
}

func TestChainTruncation(t *testing.T) {
	var err error = errors.New("root")
	for i := 0; i < MaxErrorChainDepth+2; i++ {
		err = Wrap(err, fmt.Sprintf("layer %d", i))
	}
	e := err.(*Error)
	if truncated, _ := e.Detail("truncated"); truncated != true {
		t.Fatalf("expected truncated chain, details = %v", e.Details())
	}
	if !strings.Contains(e.Error(), "chain truncated") {
		t.Errorf("Error() = %q", e.Error())
	}
}

func TestIsMatchesByCode(t *testing.T) {
	sentinel := New("index out of range").WithCode(CodeOutOfRange)
	err := New("at: index 3 out of range").WithCode(CodeOutOfRange).WithOperation("at")

	if !errors.Is(err, sentinel) {
		t.Error("errors.Is should match errors with the same code")
	}
	if errors.Is(New("other").WithCode(CodeTooLarge), sentinel) {
		t.Error("errors.Is should not match a different code")
	}
	if errors.Is(New("a"), New("b")) {
		t.Error("errors with CodeUnknown must only match themselves")
	}
	if !errors.Is(fmt.Errorf("ctx: %w", err), sentinel) {
		t.Error("errors.Is should see through fmt wrapping")
	}
}

func TestWithMethods(t *testing.T) {
	err := New("boom").
		WithCode(CodeOutOfRange).
		WithOperation("substr").
		WithContext("sso").
		WithDetail("pos", 9).
		WithDetails(map[string]interface{}{"size": 5})

	if err.Severity() != SeverityLow {
		t.Errorf("Severity() = %v, want low", err.Severity())
	}
	if err.Operation() != "substr" || err.Context() != "sso" {
		t.Errorf("Operation()/Context() = %q/%q", err.Operation(), err.Context())
	}
	details := err.Details()
	if details["pos"] != 9 || details["size"] != 5 {
		t.Errorf("Details() = %v", details)
	}
	details["pos"] = 0
	if v, _ := err.Detail("pos"); v != 9 {
		t.Error("Details() must return a copy")
	}

	str := err.String()
	for _, want := range []string{"Code: OUT_OF_RANGE", "Operation: substr", "Details: {pos=9, size=5}"} {
		if !strings.Contains(str, want) {
			t.Errorf("String() missing %q:\n%s", want, str)
		}
	}
}

func TestExplicitSeverityIsKept(t *testing.T) {
	err := New("x").WithSeverity(SeverityCritical).WithCode(CodeOutOfRange)
	if err.Severity() != SeverityCritical {
		t.Errorf("Severity() = %v, want critical", err.Severity())
	}
}

func TestMarshalJSON(t *testing.T) {
	err := Wrap(errors.New("cause"), "outer").WithCode(CodeMismatch).WithOperation("append")

	data, mErr := json.Marshal(err)
	if mErr != nil {
		t.Fatalf("json.Marshal() error = %v", mErr)
	}

	var decoded map[string]interface{}
	if uErr := json.Unmarshal(data, &decoded); uErr != nil {
		t.Fatalf("json.Unmarshal() error = %v", uErr)
	}
	if decoded["code"] != "MISMATCH" {
		t.Errorf("code = %v", decoded["code"])
	}
	if decoded["severity"] != "critical" {
		t.Errorf("severity = %v", decoded["severity"])
	}
	if decoded["operation"] != "append" || decoded["cause"] != "cause" {
		t.Errorf("decoded = %v", decoded)
	}
}

func TestGetCodeAndSeverity(t *testing.T) {
	if GetCode(errors.New("plain")) != CodeUnknown {
		t.Error("plain errors have CodeUnknown")
	}
	if GetSeverity(errors.New("plain")) != SeverityMedium {
		t.Error("plain errors have SeverityMedium")
	}
	wrapped := fmt.Errorf("wrap: %w", New("x").WithCode(CodeStorageError))
	if !HasCode(wrapped, CodeStorageError) {
		t.Error("HasCode should look through wrapping")
	}
	if GetSeverity(wrapped) != SeverityHigh {
		t.Errorf("GetSeverity() = %v, want high", GetSeverity(wrapped))
	}
}

func TestSeverityFromCode(t *testing.T) {
	tests := []struct {
		code Code
		want Severity
	}{
		{CodeMismatch, SeverityCritical},
		{CodeTooLarge, SeverityCritical},
		{CodeStorageError, SeverityHigh},
		{CodeConfigError, SeverityMedium},
		{CodeOutOfRange, SeverityLow},
		{CodeUnknown, SeverityMedium},
	}
	for _, tt := range tests {
		t.Run(tt.code.String(), func(t *testing.T) {
			if got := GetSeverityFromCode(tt.code); got != tt.want {
				t.Errorf("GetSeverityFromCode(%s) = %v, want %v", tt.code, got, tt.want)
			}
			if !tt.code.IsValid() {
				t.Errorf("%s should be valid", tt.code)
			}
		})
	}
	if Code("NOPE").IsValid() {
		t.Error("unknown code reported valid")
	}
	if !SeverityHigh.ShouldAlert() || SeverityLow.ShouldAlert() {
		t.Error("ShouldAlert() thresholds are wrong")
	}
}
