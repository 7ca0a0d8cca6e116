/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/

// Package scanner drives line-by-line validation of configuration files.
//
// # Overview
//
// A Scanner reads a configuration file, skips blank lines and comments,
// strips trailing end-of-line comments, and feeds every surviving line
// (with its 1-based line number) to the line validator. Per-line
// failures are captured as outcomes and scanning continues; only a file
// that cannot be read at all aborts the scan with an error.
//
// # Comment Rules
//
// A line is blank if it contains only whitespace. A line is a full-line
// comment if its first non-whitespace character is '#' or ';'. Otherwise
// a trailing comment starts at the first '#' strictly after the start of
// the raw line; a '#' in the very first column is handled by the
// full-line rule, never the trailing rule.
//
// # Aggregation
//
// The report fails when any line failed, and also when no line was
// validated at all: an empty or all-comment file is a failure with an
// empty outcome list, not a vacuous success.
//
// # Concurrency
//
// Scanning within one file is strictly sequential. ScanAll fans out
// across independent files with one goroutine each; the shared registry
// is read-only, so no synchronization is needed.
package scanner
