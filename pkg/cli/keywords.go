/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"text/tabwriter"

	"github.com/urfave/cli/v3"

	"github.com/ovpn-tools/ovpncheck/pkg/keyword"
	"github.com/ovpn-tools/ovpncheck/pkg/logging"
	"github.com/ovpn-tools/ovpncheck/pkg/serializer"
	"github.com/ovpn-tools/ovpncheck/pkg/version"
)

func keywordsCmd() *cli.Command {
	return &cli.Command{
		Name:                  "keywords",
		EnableShellCompletion: true,
		Usage:                 "Print the directive table the validator checks against",
		Description: `Prints every known directive with its mandatory argument count,
argument types, and allowed enum values. The table reflects the builtin
directive set merged with any --keywords extension file, so it shows
exactly what a check run would accept.

# Examples

List the builtin directives:
  ovpncheck keywords

Inspect the merged table with site extensions:
  ovpncheck keywords --keywords extra-keywords.yaml --format yaml`,
		Flags: []cli.Flag{
			debugFlag,
			logJSONFlag,
			outputFlag,
			formatFlag,
			keywordsFlag,
		},
		Action: runKeywords,
	}
}

func runKeywords(ctx context.Context, cmd *cli.Command) error {
	logging.SetDefaultStructuredLogger(appName, version.Version,
		cmd.Bool("debug"), cmd.Bool("log-json"))

	outFormat, err := parseOutputFormat(cmd)
	if err != nil {
		return cli.Exit(err.Error(), exitError)
	}

	reg, err := buildRegistry(cmd.String("keywords"))
	if err != nil {
		return cli.Exit(fmt.Sprintf("ERROR: %v", err), exitError)
	}

	ser := serializer.NewFileWriterOrStdout(outFormat, cmd.String("output"))
	defer func() {
		if err := ser.Close(); err != nil {
			slog.Warn("failed to close serializer", "error", err)
		}
	}()

	if outFormat == serializer.FormatText {
		return ser.Serialize(ctx, keywordTable{reg.Keywords()})
	}
	return ser.Serialize(ctx, reg.Keywords())
}

// keywordTable renders the directive set as an aligned text table.
type keywordTable struct {
	keywords []*keyword.Keyword
}

func (t keywordTable) WriteText(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "KEYWORD\tMIN ARGS\tARG TYPES\tALLOWED VALUES")
	for _, kw := range t.keywords {
		minArgs := fmt.Sprintf("%d", kw.MinArgs)
		if kw.MinArgs < 0 {
			minArgs = "-"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n",
			kw.Name, minArgs, joinTypes(kw.ArgTypes), joinValues(kw.AllowedValues))
	}
	return tw.Flush()
}

func joinTypes(types []keyword.ValueType) string {
	if len(types) == 0 {
		return "-"
	}
	parts := make([]string, len(types))
	for i, tp := range types {
		parts[i] = tp.String()
	}
	return strings.Join(parts, ", ")
}

func joinValues(values [][]string) string {
	var parts []string
	for _, vals := range values {
		if len(vals) == 0 {
			continue
		}
		parts = append(parts, strings.Join(vals, "|"))
	}
	if len(parts) == 0 {
		return "-"
	}
	return strings.Join(parts, ", ")
}
