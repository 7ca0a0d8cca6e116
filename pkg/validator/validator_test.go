/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/

package validator

import (
	"testing"

	"github.com/ovpn-tools/ovpncheck/pkg/errors"
	"github.com/ovpn-tools/ovpncheck/pkg/keyword"
)

func TestCheckLine_ValidLines(t *testing.T) {
	reg := keyword.Default()

	lines := []string{
		"",
		"client",
		"nobind",
		"persist-key",
		"persist-tun",
		"remote 192.168.1.1",
		"remote 192.168.1.1 1194",
		"remote 192.168.1.1 1194 udp",
		"remote 192.168.1.1 1194 tcp",
		"resolv-retry infinite",
		"resolv-retry 30",
		"mode p2p",
		"mode server",
		"local 10.0.0.1",
		"port 1194",
		"proto udp",
		"dev tun",
		"dev tap0",
		"ca /etc/openvpn/ca.crt",
		"cert client.crt",
		"key client.key",
		"dh dh2048.pem",
		"tls-server",
		"tls-version-min 1.2",
		"remote-cert-tls server",
		"ifconfig 10.8.0.1 10.8.0.2",
		"ifconfig-pool-persist /var/log/openvpn/ipp.txt",
		`push "redirect-gateway def1 bypass-dhcp"`,
		`push "route 192.168.10.0 255.255.255.0"`,
		"server 10.8.0.0 255.255.255.0",
		"server 10.0.0.0 255.0.0.0",
		"server 10.8.0.0 255.255.255.0 nopool",
		"server 10.8.0.0 24",
		"server 0.0.0.0 0",
		"route 10.9.0.0 255.255.255.0",
		"route anything goes here",
		"route",
		"keepalive 10 120",
		"tls-auth ta.key",
		"tls-auth ta.key 0",
		"tls-auth ta.key 1",
		"cipher AES-256-GCM",
		"compress lz4-v2",
		"comp-lzo",
		"tun-mtu 1500",
		"verb 3",
		"mute 20",
		"replay-window 64",
		"replay-window 64 15",
		"explicit-exit-notify 1",
		"max-clients 100",
		"user nobody",
		"group nogroup",
		"status /var/log/openvpn/status.log",
	}

	for _, line := range lines {
		if err := CheckLine(line, reg); err != nil {
			t.Errorf("CheckLine(%q) = %v, want nil", line, err)
		}
	}
}

func TestCheckLine_InvalidLines(t *testing.T) {
	reg := keyword.Default()

	tests := []struct {
		name string
		line string
		code errors.Code
	}{
		{"unknown keyword", "foo", errors.ErrCodeUnknownKeyword},
		{"misspelled keyword", "servr 10.8.0.0 255.255.255.0", errors.ErrCodeUnknownKeyword},
		{"missing mandatory argument", "port", errors.ErrCodeTooFewArguments},
		{"missing second mandatory argument", "keepalive 10", errors.ErrCodeTooFewArguments},
		{"missing server arguments", "server 10.8.0.0", errors.ErrCodeTooFewArguments},
		{"argument on bare keyword", "client extra", errors.ErrCodeTakesNoArguments},
		{"excess optional argument", "remote 192.168.1.1 1194 udp extra", errors.ErrCodeTooManyArguments},
		{"excess server argument", "server 10.8.0.0 255.255.255.0 nopool extra", errors.ErrCodeTooManyArguments},
		{"non-numeric integer", "port abc", errors.ErrCodeInvalidInteger},
		{"letter O for zero", "keepalive 1O 20", errors.ErrCodeInvalidInteger},
		{"letter O in address", "local 10.0.0.O", errors.ErrCodeInvalidIPAddress},
		{"negative integer", "port -1", errors.ErrCodeInvalidInteger},
		{"fullwidth digits", "verb ３", errors.ErrCodeInvalidInteger},
		{"integer with sign", "tun-mtu +1500", errors.ErrCodeInvalidInteger},
		{"non-ascii value", "dev tün", errors.ErrCodeInvalidAscii},
		{"control character in value", "dev tun\x01", errors.ErrCodeInvalidCharacters},
		{"invalid enum value", "proto icmp", errors.ErrCodeInvalidEnumValue},
		{"enum not anchored", "proto udp4", errors.ErrCodeInvalidEnumValue},
		{"invalid resolv-retry", "resolv-retry forever", errors.ErrCodeInvalidEnumValue},
		{"invalid tls-auth direction", "tls-auth ta.key 2", errors.ErrCodeInvalidEnumValue},
		{"hostname as ip", "remote vpn.example.com", errors.ErrCodeInvalidIPAddress},
		{"octet out of range", "local 256.1.1.1", errors.ErrCodeInvalidIPAddress},
		{"ipv6 address", "local ::1", errors.ErrCodeInvalidIPAddress},
		{"host bits set", "server 10.8.0.1 255.255.255.0", errors.ErrCodeInvalidNetwork},
		{"host bits beyond short mask", "server 10.10.0.0 255.0.0.0", errors.ErrCodeInvalidNetwork},
		{"non-contiguous mask", "server 10.8.0.0 255.255.0.255", errors.ErrCodeInvalidNetwork},
		{"prefix length out of range", "server 10.8.0.0 33", errors.ErrCodeInvalidNetwork},
		{"garbage mask", "server 10.8.0.0 mask", errors.ErrCodeInvalidNetwork},
		{"bare push", "push", errors.ErrCodeMissingArgument},
		{"unquoted push argument", "push redirect-gateway", errors.ErrCodeInvalidStringFormat},
		{"unterminated quote", `push "redirect-gateway`, errors.ErrCodeInvalidStringFormat},
		{"interior quote", `push "redirect" "gateway"`, errors.ErrCodeInvalidStringFormat},
		{"quote only", `push "`, errors.ErrCodeInvalidStringFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckLine(tt.line, reg)
			if err == nil {
				t.Fatalf("CheckLine(%q) = nil, want code %s", tt.line, tt.code)
			}
			if got := errors.CodeOf(err); got != tt.code {
				t.Errorf("CheckLine(%q) code = %s, want %s (message: %s)", tt.line, got, tt.code, err)
			}
		})
	}
}

func TestCheckLine_Messages(t *testing.T) {
	reg := keyword.Default()

	tests := []struct {
		line string
		want string
	}{
		{"foo", "Unknown keyword 'foo'"},
		{"port", "Invalid number of arguments for keyword 'port'"},
		{"port abc", "Invalid integer value 'abc' for keyword 'port'"},
		{"client extra", "Keyword 'client' takes no arguments"},
		{"remote 192.168.1.1 1194 udp extra", "Invalid optional argument for keyword 'remote'"},
		{"proto icmp", "Invalid enumeration value 'icmp' for keyword 'proto'"},
		{"remote vpn.example.com", "Invalid IP address 'vpn.example.com' for keyword 'remote'"},
		{"server 10.8.0.1 255.255.255.0", "Invalid IP network address for keyword 'server'"},
		{"push", "Missing string argument for keyword 'push'"},
		{"push redirect-gateway", "Invalid string format for keyword 'push'"},
		{"dev tün", "Invalid ascii value 'tün' for keyword 'dev'"},
	}

	for _, tt := range tests {
		if err := CheckLine(tt.line, reg); err == nil || err.Error() != tt.want {
			t.Errorf("CheckLine(%q) = %v, want %q", tt.line, err, tt.want)
		}
	}
}

// Keywords whose network argument is not guarded by the arity check need a
// dedicated registry so the missing-mask path is reachable.
func TestCheckLine_MissingNetworkPart(t *testing.T) {
	reg, err := keyword.New(keyword.Definition{
		Name:     "subnet",
		MinArgs:  1,
		ArgTypes: []keyword.ValueType{keyword.TypeIPv4Network},
	})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	err = CheckLine("subnet 10.8.0.0", reg)
	if got := errors.CodeOf(err); got != errors.ErrCodeMissingNetworkPart {
		t.Fatalf("code = %s, want %s (err: %v)", got, errors.ErrCodeMissingNetworkPart, err)
	}
	if want := "Missing IP network address part for keyword 'subnet'"; err.Error() != want {
		t.Errorf("message = %q, want %q", err.Error(), want)
	}

	if err := CheckLine("subnet 10.8.0.0 255.255.255.0", reg); err != nil {
		t.Errorf("CheckLine with mask = %v, want nil", err)
	}
}

func TestCheckLine_NoEnumValuesDefined(t *testing.T) {
	reg, err := keyword.New(keyword.Definition{
		Name:          "choice",
		MinArgs:       1,
		ArgTypes:      []keyword.ValueType{keyword.TypeEnum},
		AllowedValues: [][]string{{}},
	})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	err = CheckLine("choice anything", reg)
	if got := errors.CodeOf(err); got != errors.ErrCodeNoEnumValuesDefined {
		t.Fatalf("code = %s, want %s (err: %v)", got, errors.ErrCodeNoEnumValuesDefined, err)
	}
}

// The quoted string spans the raw remainder of the line, so interior
// whitespace must survive tokenization.
func TestCheckLine_QuotedStringRemainder(t *testing.T) {
	reg := keyword.Default()

	valid := []string{
		`push "a"`,
		`push "dhcp-option DNS 10.8.0.1"`,
		"push\t\"route 10.0.0.0 255.0.0.0\"",
	}
	for _, line := range valid {
		if err := CheckLine(line, reg); err != nil {
			t.Errorf("CheckLine(%q) = %v, want nil", line, err)
		}
	}

	if err := CheckLine(`push ""`, reg); errors.CodeOf(err) != errors.ErrCodeInvalidStringFormat {
		t.Errorf("CheckLine(push \"\") = %v, want invalid string format", err)
	}
}

func TestIsQuotedString(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{`"a"`, true},
		{`"redirect-gateway def1"`, true},
		{`""`, false},
		{`"`, false},
		{`a"b"`, false},
		{`"a"b`, false},
		{`"a"b"`, false},
		{`'a'`, false},
	}
	for _, tt := range tests {
		if got := isQuotedString(tt.in); got != tt.want {
			t.Errorf("isQuotedString(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestIsIPv4Network(t *testing.T) {
	tests := []struct {
		addr, mask string
		want       bool
	}{
		{"10.8.0.0", "255.255.255.0", true},
		{"10.8.0.0", "24", true},
		{"0.0.0.0", "0", true},
		{"192.168.1.128", "255.255.255.128", true},
		{"10.8.0.1", "255.255.255.0", false},
		{"10.8.0.0", "255.255.0.255", false},
		{"10.8.0.0", "33", false},
		{"10.8.0.0", "-1", false},
		{"10.8.0.0", "mask", false},
		{"300.0.0.0", "24", false},
	}
	for _, tt := range tests {
		if got := isIPv4Network(tt.addr, tt.mask); got != tt.want {
			t.Errorf("isIPv4Network(%q, %q) = %v, want %v", tt.addr, tt.mask, got, tt.want)
		}
	}
}

func TestRemainder(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"push", ""},
		{`push "a b"`, `"a b"`},
		{"push\t\t\"a\"", `"a"`},
		{"push   trailing text", "trailing text"},
	}
	for _, tt := range tests {
		if got := remainder(tt.in); got != tt.want {
			t.Errorf("remainder(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
