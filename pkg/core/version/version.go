// ============================================================================
// sso - Small-String-Optimized Byte Strings
// ============================================================================
//
// Package:     version
// Description: Central version management for the library, harness and store
// Author:      msto63
// Created:     2025-12-06
// License:     MIT
// ============================================================================

package version

import (
	"fmt"
	"runtime"
)

// Version constants for the sso components
const (
	// Library version of pkg/sso
	Library = "1.0.0"

	// Component versions
	Harness = "1.0.0"
	Corpus  = "1.0.0"
	CLI     = "1.0.0"
)

// Build information, injected via -ldflags at build time
var (
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// ComponentVersion returns the version for a given component name
func ComponentVersion(name string) string {
	switch name {
	case "harness", "diffcheck":
		return Harness
	case "corpus":
		return Corpus
	case "cli", "sso":
		return CLI
	default:
		return Library
	}
}

// Info returns a one-line build description
func Info() string {
	return fmt.Sprintf("sso %s (commit %s, built %s, %s %s/%s)",
		Library, GitCommit, BuildDate, runtime.Version(), runtime.GOOS, runtime.GOARCH)
}
