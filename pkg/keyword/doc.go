/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/

// Package keyword defines the directive schema registry for OpenVPN-style
// configuration files.
//
// # Overview
//
// Every recognized directive (keyword) has a schema describing how many
// arguments it requires, the value type expected at each argument position,
// and, for enumerated positions, the set of allowed patterns. The registry
// maps directive names to their schemas and is the single lookup table
// shared by all validation calls.
//
// # Value Types
//
// Argument positions are typed with a closed set of value types:
//
//	none     - the directive accepts no arguments
//	integer  - unsigned decimal integer (ASCII digits only)
//	ascii    - 7-bit ASCII text
//	string   - double-quoted string consuming the remainder of the line
//	enum     - token matching one of a set of anchored patterns
//	ipv4     - dotted-quad IPv4 address
//	network  - IPv4 address plus netmask, consumed as two consecutive tokens
//	route    - reserved; arguments pass unchecked
//
// # Lifecycle
//
// A Registry is built once, either from the builtin directive table
// (Default) or from explicit definitions (New), and is immutable
// afterwards. It is safe for concurrent read access from any number of
// validation goroutines.
//
// # Extensions
//
// Additional directive definitions can be loaded from a YAML file with
// LoadDefinitions and merged into a new registry:
//
//	extra, err := keyword.LoadDefinitions("site-keywords.yaml")
//	if err != nil {
//	    return err
//	}
//	reg, err := keyword.New(append(keyword.Builtin(), extra...)...)
package keyword
