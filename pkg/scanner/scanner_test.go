/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/

package scanner

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ovpn-tools/ovpncheck/pkg/errors"
)

const serverConf = `# OpenVPN server configuration
port 1194
proto udp
dev tun

ca ca.crt
cert server.crt
key server.key
dh dh2048.pem

server 10.8.0.0 255.255.255.0
ifconfig-pool-persist ipp.txt
push "redirect-gateway def1 bypass-dhcp"
keepalive 10 120
persist-key
persist-tun
verb 3 # keep logs quiet
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.conf")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestScanner_Scan_ValidConfig(t *testing.T) {
	path := writeConfig(t, serverConf)

	report, err := New().Scan(context.Background(), path)
	require.NoError(t, err)

	assert.Equal(t, path, report.Path)
	assert.Equal(t, StatusPass, report.Summary.Status)
	assert.True(t, report.Passed())
	assert.Equal(t, 14, report.Summary.Checked)
	assert.Zero(t, report.Summary.Errors)

	for _, o := range report.Outcomes {
		assert.True(t, o.OK, "line %d: %s", o.Line, o.Message)
		assert.NotEmpty(t, o.Text)
	}
}

func TestScanner_Scan_MissingFile(t *testing.T) {
	_, err := New().Scan(context.Background(), filepath.Join(t.TempDir(), "absent.conf"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to open configuration file")
}

func TestScanReader_LineNumbersAndErrors(t *testing.T) {
	input := strings.Join([]string{
		"port 1194",        // line 1: ok
		"",                 // line 2: blank
		"pord 1194",        // line 3: unknown keyword
		"# comment",        // line 4: comment
		"proto icmp",       // line 5: bad enum
		"verb 3",           // line 6: ok
	}, "\n")

	report, err := New().ScanReader(context.Background(), strings.NewReader(input))
	require.NoError(t, err)

	assert.Equal(t, StatusFail, report.Summary.Status)
	assert.False(t, report.Passed())
	assert.Equal(t, 4, report.Summary.Checked)
	assert.Equal(t, 2, report.Summary.Errors)

	require.Len(t, report.Outcomes, 4)
	assert.Equal(t, []int{1, 3, 5, 6},
		[]int{report.Outcomes[0].Line, report.Outcomes[1].Line, report.Outcomes[2].Line, report.Outcomes[3].Line})

	bad := report.Outcomes[1]
	assert.False(t, bad.OK)
	assert.Equal(t, errors.ErrCodeUnknownKeyword, bad.Code)
	assert.Equal(t, "Unknown keyword 'pord'", bad.Message)
	assert.Equal(t, "port", bad.Hint)

	badEnum := report.Outcomes[2]
	assert.Equal(t, errors.ErrCodeInvalidEnumValue, badEnum.Code)
	assert.Empty(t, badEnum.Hint)
}

func TestScanReader_Comments(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		wantChecked int
		wantErrors  int
	}{
		{"full-line hash comment", "# proto icmp\nverb 3", 1, 0},
		{"full-line semicolon comment", "; proto icmp\nverb 3", 1, 0},
		{"indented comment", "   # proto icmp\nverb 3", 1, 0},
		{"trailing comment stripped", "proto udp # not checked here", 1, 0},
		{"trailing comment hides garbage", "verb 3 # proto icmp", 1, 0},
		{"comment-only remainder", "proto udp #", 1, 0},
		{"bad directive before comment", "proto icmp # looks fine", 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report, err := New().ScanReader(context.Background(), strings.NewReader(tt.input))
			require.NoError(t, err)
			assert.Equal(t, tt.wantChecked, report.Summary.Checked)
			assert.Equal(t, tt.wantErrors, report.Summary.Errors)
		})
	}
}

func TestScanReader_EmptyInput(t *testing.T) {
	for name, input := range map[string]string{
		"empty":         "",
		"blank lines":   "\n\n\n",
		"only comments": "# one\n; two\n   # three\n",
	} {
		t.Run(name, func(t *testing.T) {
			report, err := New().ScanReader(context.Background(), strings.NewReader(input))
			require.NoError(t, err)
			assert.Equal(t, StatusFail, report.Summary.Status)
			assert.False(t, report.Passed())
			assert.Zero(t, report.Summary.Checked)
			assert.Empty(t, report.Outcomes)
		})
	}
}

func TestScanReader_TabSeparated(t *testing.T) {
	report, err := New().ScanReader(context.Background(), strings.NewReader("port\t1194\n"))
	require.NoError(t, err)
	assert.True(t, report.Passed())
}

func TestScanReader_Idempotent(t *testing.T) {
	input := "port 1194\nproto icmp\nverb 3\n"

	first, err := New().ScanReader(context.Background(), strings.NewReader(input))
	require.NoError(t, err)
	second, err := New().ScanReader(context.Background(), strings.NewReader(input))
	require.NoError(t, err)

	assert.Equal(t, first.Summary.Checked, second.Summary.Checked)
	assert.Equal(t, first.Summary.Errors, second.Summary.Errors)
	assert.Equal(t, first.Summary.Status, second.Summary.Status)
	assert.Equal(t, first.Outcomes, second.Outcomes)
}

func TestScanReader_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := New().ScanReader(ctx, strings.NewReader("port 1194\n"))
	require.ErrorIs(t, err, context.Canceled)
}

func TestScanner_IgnorePatterns(t *testing.T) {
	sc := New(WithIgnorePatterns("plugin*", "management"))

	input := strings.Join([]string{
		"plugin-auth /usr/lib/openvpn/auth.so",
		"management 127.0.0.1 7505",
		"port 1194",
	}, "\n")

	report, err := sc.ScanReader(context.Background(), strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, 1, report.Summary.Checked)
	assert.True(t, report.Passed())
}

func TestScanner_ScanAll(t *testing.T) {
	good := writeConfig(t, "port 1194\nproto udp\n")
	bad := writeConfig(t, "porto 1194\n")

	reports, err := New().ScanAll(context.Background(), []string{good, bad})
	require.NoError(t, err)
	require.Len(t, reports, 2)

	assert.Equal(t, good, reports[0].Path)
	assert.True(t, reports[0].Passed())
	assert.Equal(t, bad, reports[1].Path)
	assert.False(t, reports[1].Passed())
}

func TestScanner_ScanAll_MissingFile(t *testing.T) {
	good := writeConfig(t, "port 1194\n")

	_, err := New().ScanAll(context.Background(), []string{good, filepath.Join(t.TempDir(), "absent.conf")})
	require.Error(t, err)
}

func TestIgnored_Patterns(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		input   string
		want    bool
	}{
		{"exact match", "management", "management", true},
		{"exact mismatch", "management", "management-client", false},
		{"prefix wildcard", "plugin*", "plugin-auth", true},
		{"prefix wildcard mismatch", "plugin*", "my-plugin", false},
		{"suffix wildcard", "*-metric", "route-metric", true},
		{"contains wildcard", "*tls*", "remote-cert-tls", true},
		{"contains wildcard mismatch", "*tls*", "proto", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sc := New(WithIgnorePatterns(tt.pattern))
			assert.Equal(t, tt.want, sc.Ignored(tt.input))
		})
	}
}
