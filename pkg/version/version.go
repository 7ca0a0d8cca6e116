/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/

// Package version carries build metadata stamped in via -ldflags.
package version

import "fmt"

var (
	// Version is the semantic version of the build.
	Version = "1.0.0"
	// Commit is the git revision the binary was built from.
	Commit = "unknown"
	// Date is the build timestamp.
	Date = "unknown"
)

// String returns a single human-readable version line.
func String() string {
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, Date)
}
