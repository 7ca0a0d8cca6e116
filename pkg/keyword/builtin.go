/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/

package keyword

import (
	"fmt"
	"sync"
)

// builtin is the directive table of the OpenVPN configuration language.
// Argument positions beyond MinArgs are optional; MinArgs -1 marks
// unchecked arity.
var builtin = []Definition{
	{Name: "client"},
	{Name: "remote", MinArgs: 1, ArgTypes: []ValueType{TypeIPv4Address, TypeInteger, TypeEnum},
		AllowedValues: [][]string{{}, {}, {"udp", "tcp"}}},
	{Name: "resolv-retry", MinArgs: 1, ArgTypes: []ValueType{TypeEnum},
		AllowedValues: [][]string{{"infinite", `\d+`}}},
	{Name: "nobind"},
	{Name: "mode", MinArgs: 1, ArgTypes: []ValueType{TypeEnum},
		AllowedValues: [][]string{{"p2p", "server"}}},
	{Name: "server", MinArgs: 2, ArgTypes: []ValueType{TypeIPv4Network, TypeEnum},
		AllowedValues: [][]string{{}, {"nopool"}}},
	{Name: "local", MinArgs: 1, ArgTypes: []ValueType{TypeIPv4Address}},
	{Name: "port", MinArgs: 1, ArgTypes: []ValueType{TypeInteger}},
	{Name: "proto", MinArgs: 1, ArgTypes: []ValueType{TypeEnum},
		AllowedValues: [][]string{{"udp", "tcp"}}},
	{Name: "dev", MinArgs: 1, ArgTypes: []ValueType{TypeASCII}},
	{Name: "ca", MinArgs: 1, ArgTypes: []ValueType{TypeASCII}},
	{Name: "cert", MinArgs: 1, ArgTypes: []ValueType{TypeASCII}},
	{Name: "key", MinArgs: 1, ArgTypes: []ValueType{TypeASCII}},
	{Name: "pkcs12", MinArgs: 1, ArgTypes: []ValueType{TypeASCII}},
	{Name: "dh", MinArgs: 1, ArgTypes: []ValueType{TypeASCII}},
	{Name: "tls-server"},
	{Name: "tls-client"},
	{Name: "tls-version-min", MinArgs: 1, ArgTypes: []ValueType{TypeEnum},
		AllowedValues: [][]string{{"1.0", "1.1", "1.2", "1.3"}}},
	{Name: "tls-version-max", MinArgs: 1, ArgTypes: []ValueType{TypeEnum},
		AllowedValues: [][]string{{"1.0", "1.1", "1.2", "1.3"}}},
	{Name: "remote-cert-tls", MinArgs: 1, ArgTypes: []ValueType{TypeEnum},
		AllowedValues: [][]string{{"server", "client"}}},
	{Name: "ifconfig-pool-persist", MinArgs: 1, ArgTypes: []ValueType{TypeASCII}},
	{Name: "ifconfig", MinArgs: 2, ArgTypes: []ValueType{TypeIPv4Address, TypeIPv4Address}},
	{Name: "push", MinArgs: 1, ArgTypes: []ValueType{TypeQuotedString}},
	{Name: "client-config-dir", MinArgs: 1, ArgTypes: []ValueType{TypeASCII}},
	{Name: "route", MinArgs: -1, ArgTypes: []ValueType{TypeRoute}},
	{Name: "route-metric", MinArgs: 1, ArgTypes: []ValueType{TypeInteger}},
	{Name: "client-to-client"},
	{Name: "keepalive", MinArgs: 2, ArgTypes: []ValueType{TypeInteger, TypeInteger}},
	{Name: "tls-auth", MinArgs: 1, ArgTypes: []ValueType{TypeASCII, TypeEnum},
		AllowedValues: [][]string{{}, {"0", "1"}}},
	{Name: "tls-crypt", MinArgs: 1, ArgTypes: []ValueType{TypeASCII}},
	{Name: "cipher", MinArgs: 1, ArgTypes: []ValueType{TypeASCII}},
	{Name: "compress", MinArgs: 1, ArgTypes: []ValueType{TypeEnum},
		AllowedValues: [][]string{{"lzo", "lz4", "lz4-v2"}}},
	{Name: "comp-lzo"},
	{Name: "mtu-test"},
	{Name: "tun-mtu", MinArgs: 1, ArgTypes: []ValueType{TypeInteger}},
	{Name: "link-mtu", MinArgs: 1, ArgTypes: []ValueType{TypeInteger}},
	{Name: "fragment", MinArgs: 1, ArgTypes: []ValueType{TypeInteger}},
	{Name: "mss-fix", MinArgs: 1, ArgTypes: []ValueType{TypeInteger}},
	{Name: "sndbuf", MinArgs: 1, ArgTypes: []ValueType{TypeInteger}},
	{Name: "rcvbuf", MinArgs: 1, ArgTypes: []ValueType{TypeInteger}},
	{Name: "max-clients", MinArgs: 1, ArgTypes: []ValueType{TypeInteger}},
	{Name: "user", MinArgs: 1, ArgTypes: []ValueType{TypeASCII}},
	{Name: "group", MinArgs: 1, ArgTypes: []ValueType{TypeASCII}},
	{Name: "persist-key"},
	{Name: "persist-tun"},
	{Name: "status", MinArgs: 1, ArgTypes: []ValueType{TypeASCII}},
	{Name: "log", MinArgs: 1, ArgTypes: []ValueType{TypeASCII}},
	{Name: "log-append", MinArgs: 1, ArgTypes: []ValueType{TypeASCII}},
	{Name: "verb", MinArgs: 1, ArgTypes: []ValueType{TypeInteger}},
	{Name: "mute", MinArgs: 1, ArgTypes: []ValueType{TypeInteger}},
	{Name: "mute-replay-warnings"},
	{Name: "replay-window", MinArgs: 1, ArgTypes: []ValueType{TypeInteger, TypeInteger}},
	{Name: "explicit-exit-notify", MinArgs: 1, ArgTypes: []ValueType{TypeEnum},
		AllowedValues: [][]string{{"1", "2"}}},
}

// Builtin returns a copy of the builtin directive definitions, for merging
// with extension definitions before constructing a registry.
func Builtin() []Definition {
	return append([]Definition(nil), builtin...)
}

var (
	defaultOnce     sync.Once
	defaultRegistry *Registry
)

// Default returns the registry built from the builtin directive table.
// Because the table is static, it is compiled once and the in-memory
// registry is reused for the lifetime of the process.
func Default() *Registry {
	defaultOnce.Do(func() {
		r, err := New(builtin...)
		if err != nil {
			// The builtin table is static and covered by tests; a compile
			// failure here is a programming error.
			panic(fmt.Sprintf("keyword: builtin directive table: %v", err))
		}
		defaultRegistry = r
	})
	return defaultRegistry
}
