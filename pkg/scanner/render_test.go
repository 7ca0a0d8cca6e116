/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/

package scanner

import (
	"bytes"
	"testing"

	"github.com/ovpn-tools/ovpncheck/pkg/errors"
)

func TestOutcome_String(t *testing.T) {
	tests := []struct {
		name    string
		outcome Outcome
		want    string
	}{
		{
			name:    "ok line",
			outcome: Outcome{Line: 7, OK: true, Text: "port 1194"},
			want:    "   7 OK: port 1194",
		},
		{
			name: "error line",
			outcome: Outcome{Line: 12, Code: errors.ErrCodeUnknownKeyword,
				Message: "Unknown keyword 'pord'"},
			want: "  12 ERROR: Unknown keyword 'pord'",
		},
		{
			name:    "wide line number",
			outcome: Outcome{Line: 12345, OK: true, Text: "verb 3"},
			want:    "12345 OK: verb 3",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.outcome.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestReport_WriteText(t *testing.T) {
	report := &Report{
		Outcomes: []Outcome{
			{Line: 1, OK: true, Text: "port 1194"},
			{Line: 2, Message: "Unknown keyword 'pord'"},
		},
	}

	var buf bytes.Buffer
	if err := report.WriteText(&buf); err != nil {
		t.Fatalf("WriteText failed: %v", err)
	}

	want := "   1 OK: port 1194\n   2 ERROR: Unknown keyword 'pord'\n"
	if buf.String() != want {
		t.Errorf("WriteText = %q, want %q", buf.String(), want)
	}
}
