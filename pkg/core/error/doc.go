// File: doc.go
// Title: Package Documentation for error
// Description: Package error provides the structured error type used by the
//              sso module.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-19

// Package error provides coded, structured errors.
//
// Every error carries a Code that classifies it independently of its message,
// a Severity derived from the code, free-form details and the stack at the
// point of creation. Sentinels created with New(...).WithCode(...) match any
// error with the same code under errors.Is:
//
//	var ErrOutOfRange = coreerror.New("index out of range").WithCode(coreerror.CodeOutOfRange)
//
//	err := coreerror.New("at: index 7 out of range").
//		WithCode(coreerror.CodeOutOfRange).
//		WithOperation("at").
//		WithDetail("index", 7)
//
//	errors.Is(err, ErrOutOfRange) // true
//
// Importers use an alias such as coreerror so the builtin error type stays
// visible.
package error
