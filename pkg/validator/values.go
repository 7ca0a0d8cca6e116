package validator

import (
	"net"
	"net/netip"
	"strconv"
	"strings"
	"unicode"
)

// isPrintable reports whether the token is free of control and other
// unprintable characters. Applied to every token before type checks.
func isPrintable(s string) bool {
	for _, r := range s {
		if !unicode.IsPrint(r) {
			return false
		}
	}
	return true
}

// isASCII reports whether every character of the token encodes in the
// 7-bit ASCII range.
func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] > unicode.MaxASCII {
			return false
		}
	}
	return true
}

// isDigits reports whether the token is a non-empty run of decimal
// digits. Signs are rejected, so negative integers do not validate.
func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// isQuotedString reports whether the raw remainder of a line forms a
// valid quoted string: delimited by double quotes, at least three
// characters long, with no interior double quote.
func isQuotedString(s string) bool {
	if len(s) < 3 {
		return false
	}
	if !strings.HasPrefix(s, `"`) || !strings.HasSuffix(s, `"`) {
		return false
	}
	return !strings.Contains(s[1:len(s)-1], `"`)
}

// parseIPv4 parses a dotted-quad IPv4 address. IPv6 and IPv4-mapped
// forms are rejected.
func parseIPv4(s string) (netip.Addr, bool) {
	addr, err := netip.ParseAddr(s)
	if err != nil || !addr.Is4() {
		return netip.Addr{}, false
	}
	return addr, true
}

// isIPv4 reports whether the token is a dotted-quad IPv4 address.
func isIPv4(s string) bool {
	_, ok := parseIPv4(s)
	return ok
}

// isIPv4Network reports whether addr and mask jointly form a valid IPv4
// network: the mask must be a contiguous netmask in dotted or
// prefix-length form, and the address must have no host bits set.
func isIPv4Network(addr, mask string) bool {
	ip, ok := parseIPv4(addr)
	if !ok {
		return false
	}

	var bits int
	if n, err := strconv.Atoi(mask); err == nil {
		if n < 0 || n > 32 {
			return false
		}
		bits = n
	} else {
		m, ok := parseIPv4(mask)
		if !ok {
			return false
		}
		m4 := m.As4()
		ones, size := net.IPv4Mask(m4[0], m4[1], m4[2], m4[3]).Size()
		if size == 0 {
			// Non-contiguous mask.
			return false
		}
		bits = ones
	}

	prefix := netip.PrefixFrom(ip, bits)
	return prefix.Masked().Addr() == ip
}

// remainder returns the raw text of the line after the directive name,
// with the separating whitespace stripped. Returns "" when the line
// holds only the directive name.
func remainder(line string) string {
	idx := strings.IndexFunc(line, unicode.IsSpace)
	if idx < 0 {
		return ""
	}
	return strings.TrimLeftFunc(line[idx:], unicode.IsSpace)
}
