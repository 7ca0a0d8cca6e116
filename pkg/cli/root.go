/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"github.com/urfave/cli/v3"

	"github.com/ovpn-tools/ovpncheck/pkg/version"
)

// appName is the binary name used in logs and usage text.
const appName = "ovpncheck"

// Flags shared across commands.
var (
	debugFlag = &cli.BoolFlag{
		Name:    "debug",
		Aliases: []string{"d"},
		Usage:   "enable debug logging and include passing lines in the console output",
	}
	logJSONFlag = &cli.BoolFlag{
		Name:  "log-json",
		Usage: "emit log records as JSON",
	}
	verboseFlag = &cli.BoolFlag{
		Name:    "verbose",
		Aliases: []string{"v"},
		Usage:   "print per-file line and error statistics",
	}
	outputFlag = &cli.StringFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "output file path (default: stdout)",
	}
	formatFlag = &cli.StringFlag{
		Name:    "format",
		Aliases: []string{"t"},
		Value:   "text",
		Usage:   "output format (text, json, yaml)",
	}
	ignoreFlag = &cli.StringSliceFlag{
		Name:  "ignore",
		Usage: "directive pattern to skip during validation (supports '*' wildcards, can be repeated)",
	}
	keywordsFlag = &cli.StringFlag{
		Name:    "keywords",
		Aliases: []string{"k"},
		Usage:   "YAML file with additional keyword definitions to merge into the builtin table",
	}
)

// New builds the root command. Running the binary with configuration
// file arguments validates them directly; keywords and serve are
// available as subcommands.
func New() *cli.Command {
	return &cli.Command{
		Name:                  appName,
		Usage:                 "Validate OpenVPN configuration file syntax",
		ArgsUsage:             "CONFIG [CONFIG...]",
		Version:               version.String(),
		EnableShellCompletion: true,
		Flags:                 checkFlags(),
		Action:                runCheck,
		Commands: []*cli.Command{
			checkCmd(),
			keywordsCmd(),
			serveCmd(),
		},
	}
}
