/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/

package scanner

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/ovpn-tools/ovpncheck/pkg/errors"
	"github.com/ovpn-tools/ovpncheck/pkg/keyword"
	"github.com/ovpn-tools/ovpncheck/pkg/validator"
)

// Scanner reads configuration files line by line, filters comments and
// blank lines, and validates every surviving line against its registry.
type Scanner struct {
	registry *keyword.Registry
	ignore   []string
}

// Option is a functional option for configuring Scanner instances.
type Option func(*Scanner)

// WithRegistry returns an Option that sets the keyword registry. The
// default is the builtin directive table.
func WithRegistry(reg *keyword.Registry) Option {
	return func(s *Scanner) {
		s.registry = reg
	}
}

// WithIgnorePatterns returns an Option that sets directive-name patterns
// to skip. Lines whose directive matches one of the patterns are not
// validated and do not appear in the report. Patterns support the same
// wildcard forms as Ignored.
func WithIgnorePatterns(patterns ...string) Option {
	return func(s *Scanner) {
		s.ignore = append(s.ignore, patterns...)
	}
}

// New creates a Scanner with the provided options.
func New(opts ...Option) *Scanner {
	s := &Scanner{}
	for _, opt := range opts {
		opt(s)
	}
	if s.registry == nil {
		s.registry = keyword.Default()
	}
	return s
}

// Registry returns the registry the scanner validates against.
func (s *Scanner) Registry() *keyword.Registry {
	return s.registry
}

// Scan validates the configuration file at path and returns its report.
// A non-nil error means the file could not be read at all; per-line
// validation failures are captured in the report instead.
func (s *Scanner) Scan(ctx context.Context, path string) (*Report, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open configuration file %q: %w", path, err)
	}
	defer f.Close()

	report, err := s.ScanReader(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("failed to read configuration file %q: %w", path, err)
	}
	report.Path = path
	return report, nil
}

// ScanReader validates configuration text from r. Lines are processed
// strictly in order; there is no cross-line state beyond the 1-based
// line counter.
func (s *Scanner) ScanReader(ctx context.Context, r io.Reader) (*Report, error) {
	start := time.Now()
	defer func() {
		scanDuration.Observe(time.Since(start).Seconds())
	}()

	report := &Report{}
	sc := bufio.NewScanner(r)

	lineNr := 0
	for sc.Scan() {
		lineNr++

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		raw := sc.Text()
		trimmed := strings.TrimSpace(raw)

		// Blank lines and full-line comments never reach the report.
		if trimmed == "" {
			linesSkipped.Inc()
			continue
		}
		if trimmed[0] == '#' || trimmed[0] == ';' {
			linesSkipped.Inc()
			continue
		}

		// Strip a trailing comment: the first '#' strictly after the start
		// of the raw line. A '#' at index 0 is the full-line rule above.
		if pos := strings.Index(raw, "#"); pos > 0 {
			raw = raw[:pos]
		}
		text := strings.TrimSpace(raw)
		if text == "" {
			linesSkipped.Inc()
			continue
		}

		name := strings.Fields(text)[0]
		if s.Ignored(name) {
			linesSkipped.Inc()
			continue
		}

		outcome := Outcome{Line: lineNr}
		if err := validator.CheckLine(text, s.registry); err != nil {
			outcome.Code = errors.CodeOf(err)
			outcome.Message = err.Error()
			if outcome.Code == errors.ErrCodeUnknownKeyword {
				outcome.Hint = s.registry.Suggest(name)
			}
			report.Summary.Errors++
			linesChecked.WithLabelValues("error").Inc()
			slog.Debug("line rejected",
				slog.Int("line", lineNr),
				slog.String("code", string(outcome.Code)),
				slog.String("message", outcome.Message))
		} else {
			outcome.OK = true
			outcome.Text = text
			linesChecked.WithLabelValues("ok").Inc()
		}
		report.Outcomes = append(report.Outcomes, outcome)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}

	report.Summary.Checked = len(report.Outcomes)
	report.Summary.Duration = time.Since(start)

	// A file without a single validated line is a failure, not a vacuous
	// success.
	if report.Summary.Errors == 0 && report.Summary.Checked > 0 {
		report.Summary.Status = StatusPass
	} else {
		report.Summary.Status = StatusFail
	}

	slog.Debug("scan completed",
		slog.Int("checked", report.Summary.Checked),
		slog.Int("errors", report.Summary.Errors),
		slog.String("status", string(report.Summary.Status)))

	return report, nil
}

// ScanAll validates multiple configuration files in parallel, one
// goroutine per file. Line order within each file stays strictly
// sequential. Reports are returned in the order of paths; the first file
// that cannot be read fails the whole call.
func (s *Scanner) ScanAll(ctx context.Context, paths []string) ([]*Report, error) {
	reports := make([]*Report, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			report, err := s.Scan(ctx, path)
			if err != nil {
				return err
			}
			reports[i] = report
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return reports, nil
}

// Ignored reports whether a directive name matches one of the scanner's
// ignore patterns. Patterns support the wildcard forms "prefix*",
// "*suffix", "*contains*", and exact matches.
func (s *Scanner) Ignored(name string) bool {
	for _, pattern := range s.ignore {
		if matchesPattern(name, pattern) {
			return true
		}
	}
	return false
}

// matchesPattern checks if a name matches a wildcard pattern.
func matchesPattern(name, pattern string) bool {
	// No wildcard - exact match
	if !strings.Contains(pattern, "*") {
		return name == pattern
	}

	// *contains* - contains match
	if strings.HasPrefix(pattern, "*") && strings.HasSuffix(pattern, "*") {
		return strings.Contains(name, strings.Trim(pattern, "*"))
	}

	// *suffix - ends with match
	if strings.HasPrefix(pattern, "*") {
		return strings.HasSuffix(name, strings.TrimPrefix(pattern, "*"))
	}

	// prefix* - starts with match
	if strings.HasSuffix(pattern, "*") {
		return strings.HasPrefix(name, strings.TrimSuffix(pattern, "*"))
	}

	return false
}
