package scanner

import (
	"time"

	"github.com/ovpn-tools/ovpncheck/pkg/errors"
)

// Status is the overall result of scanning one configuration file.
type Status string

const (
	// StatusPass means every validated line passed and at least one line
	// was validated.
	StatusPass Status = "pass"

	// StatusFail means at least one line failed, or the file contained no
	// validatable lines at all.
	StatusFail Status = "fail"
)

// Outcome is the validation result of one configuration line.
type Outcome struct {
	// Line is the 1-based physical line number.
	Line int `json:"line" yaml:"line"`

	// OK reports whether the line validated.
	OK bool `json:"ok" yaml:"ok"`

	// Text is the normalized line text, set on success.
	Text string `json:"text,omitempty" yaml:"text,omitempty"`

	// Code and Message describe the failure, set when OK is false.
	Code    errors.Code `json:"code,omitempty" yaml:"code,omitempty"`
	Message string      `json:"message,omitempty" yaml:"message,omitempty"`

	// Hint names the closest registered directive when the failure was an
	// unknown keyword.
	Hint string `json:"hint,omitempty" yaml:"hint,omitempty"`
}

// Summary aggregates the per-line outcomes of one scan.
type Summary struct {
	// Checked is the number of lines validated (blank, comment, and
	// ignored lines are not counted).
	Checked int `json:"checked" yaml:"checked"`

	// Errors is the number of lines that failed validation.
	Errors int `json:"errors" yaml:"errors"`

	// Status is the overall result.
	Status Status `json:"status" yaml:"status"`

	// Duration is the wall time of the scan.
	Duration time.Duration `json:"duration" yaml:"duration"`
}

// Report holds the ordered per-line outcomes and the summary of one
// configuration file scan. A fresh Report is produced per scan and is
// owned by the caller.
type Report struct {
	// Path is the scanned file, when the input came from a file.
	Path string `json:"path,omitempty" yaml:"path,omitempty"`

	Outcomes []Outcome `json:"outcomes" yaml:"outcomes"`
	Summary  Summary   `json:"summary" yaml:"summary"`
}

// Passed reports whether the scan passed overall.
func (r *Report) Passed() bool {
	return r.Summary.Status == StatusPass
}
