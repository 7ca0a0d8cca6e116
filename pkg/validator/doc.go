/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/

// Package validator checks single configuration lines against directive
// schemas.
//
// # Overview
//
// CheckLine receives one trimmed, comment-free configuration line plus a
// keyword registry and applies the schema of the line's directive: the
// argument count is checked against the mandatory arity, then every
// argument position is validated against its declared value type. The
// first violated rule determines the single reported error; there is no
// multi-error accumulation per line.
//
// # Argument Semantics
//
// A line must carry strictly more tokens than the directive's mandatory
// argument count. Positions beyond the mandatory count and up to the
// schema length are optional, so trailing optional arguments may simply
// be omitted. A schema with mandatory count -1 (the reserved route
// directive) accepts any argument list unchecked.
//
// Two value types consume more than their own token: a quoted string
// consumes the whole remainder of the line and ends validation early,
// and an IPv4 network consumes its address token plus the following
// netmask token.
//
// # Errors
//
// All failures are *errors.StructuredError values whose codes form the
// closed validation taxonomy (unknown keyword, arity violations, typed
// value failures). CheckLine is a pure function over its inputs and is
// safe to call concurrently with a shared registry.
package validator
