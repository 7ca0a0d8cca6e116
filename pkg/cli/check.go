/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/ovpn-tools/ovpncheck/pkg/keyword"
	"github.com/ovpn-tools/ovpncheck/pkg/logging"
	"github.com/ovpn-tools/ovpncheck/pkg/scanner"
	"github.com/ovpn-tools/ovpncheck/pkg/serializer"
	"github.com/ovpn-tools/ovpncheck/pkg/version"
)

// Exit codes of the check command.
const (
	exitInvalid = 1 // at least one file failed validation
	exitError   = 2 // unreadable input or unexpected failure
)

func checkFlags() []cli.Flag {
	return []cli.Flag{
		debugFlag,
		logJSONFlag,
		verboseFlag,
		outputFlag,
		formatFlag,
		ignoreFlag,
		keywordsFlag,
	}
}

func checkCmd() *cli.Command {
	return &cli.Command{
		Name:                  "check",
		EnableShellCompletion: true,
		Usage:                 "Validate one or more OpenVPN configuration files",
		ArgsUsage:             "CONFIG [CONFIG...]",
		Description: `Validates the syntax of whitespace-delimited OpenVPN configuration files
line by line against the builtin directive table. Every line is checked
even when an earlier line fails, so a single run reports all problems.

A file passes when every directive line is valid and at least one
directive line is present; an empty file or a file containing only
comments fails.

# Examples

Validate a server configuration:
  ovpncheck check server.conf

Validate several files at once:
  ovpncheck check server.conf client1.ovpn client2.ovpn

Write the full report as JSON:
  ovpncheck check --format json --output report.json server.conf

Skip site-specific directives:
  ovpncheck check --ignore 'plugin*' --ignore management server.conf

Extend the directive table:
  ovpncheck check --keywords extra-keywords.yaml server.conf

# Exit Codes

  0  every file is valid
  1  at least one file failed validation
  2  a file could not be read, or an unexpected error occurred`,
		Flags:  checkFlags(),
		Action: runCheck,
	}
}

func runCheck(ctx context.Context, cmd *cli.Command) error {
	logging.SetDefaultStructuredLogger(appName, version.Version,
		cmd.Bool("debug"), cmd.Bool("log-json"))

	paths := cmd.Args().Slice()
	if len(paths) == 0 {
		return cli.Exit(fmt.Sprintf("missing configuration file argument, see '%s --help'", appName), exitError)
	}

	outFormat, err := parseOutputFormat(cmd)
	if err != nil {
		return cli.Exit(err.Error(), exitError)
	}

	reg, err := buildRegistry(cmd.String("keywords"))
	if err != nil {
		return cli.Exit(fmt.Sprintf("ERROR: %v", err), exitError)
	}

	sc := scanner.New(
		scanner.WithRegistry(reg),
		scanner.WithIgnorePatterns(cmd.StringSlice("ignore")...),
	)

	reports, err := sc.ScanAll(ctx, paths)
	if err != nil {
		return cli.Exit(fmt.Sprintf("ERROR: %v", err), exitError)
	}

	if outFormat == serializer.FormatText && cmd.String("output") == "" {
		printReports(cmd, reports)
	} else if err := writeReports(ctx, outFormat, cmd.String("output"), reports); err != nil {
		return cli.Exit(fmt.Sprintf("ERROR: %v", err), exitError)
	}

	for _, rep := range reports {
		if !rep.Passed() {
			return cli.Exit("", exitInvalid)
		}
	}
	return nil
}

// buildRegistry compiles the builtin directive table, merged with the
// definitions from extensionFile when one is given. Extension entries
// override builtin entries of the same name.
func buildRegistry(extensionFile string) (*keyword.Registry, error) {
	defs := keyword.Builtin()
	if extensionFile != "" {
		extra, err := keyword.LoadDefinitions(extensionFile)
		if err != nil {
			return nil, err
		}
		defs = append(defs, extra...)
	}
	return keyword.New(defs...)
}

// printReports renders scan results on the console: failing lines on
// stderr, passing lines on stdout when --debug is set, and per-file
// statistics when --verbose is set.
func printReports(cmd *cli.Command, reports []*scanner.Report) {
	debug := cmd.Bool("debug")
	verbose := cmd.Bool("verbose")

	for _, rep := range reports {
		for _, o := range rep.Outcomes {
			if o.OK {
				if debug {
					fmt.Println(o)
				}
				continue
			}
			fmt.Fprintln(os.Stderr, o)
			if o.Hint != "" && debug {
				fmt.Fprintf(os.Stderr, "     hint: did you mean %q?\n", o.Hint)
			}
		}
		if verbose {
			prefix := "Stats:"
			if len(reports) > 1 {
				prefix = rep.Path + ":"
			}
			fmt.Printf("%s %d line(s) with %d error(s)\n",
				prefix, rep.Summary.Checked, rep.Summary.Errors)
		}
	}
}

// writeReports serializes the reports to the requested format and
// destination. A single report is written bare, multiple reports as a
// list; the text format is always rendered per report.
func writeReports(ctx context.Context, format serializer.Format, output string, reports []*scanner.Report) error {
	ser := serializer.NewFileWriterOrStdout(format, output)
	defer func() {
		if err := ser.Close(); err != nil {
			slog.Warn("failed to close serializer", "error", err)
		}
	}()

	if format == serializer.FormatText {
		for _, rep := range reports {
			if err := ser.Serialize(ctx, rep); err != nil {
				return err
			}
		}
		return nil
	}

	var payload any = reports
	if len(reports) == 1 {
		payload = reports[0]
	}
	return ser.Serialize(ctx, payload)
}
