/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"
	"golang.org/x/time/rate"

	"github.com/ovpn-tools/ovpncheck/pkg/logging"
	"github.com/ovpn-tools/ovpncheck/pkg/scanner"
	"github.com/ovpn-tools/ovpncheck/pkg/server"
	"github.com/ovpn-tools/ovpncheck/pkg/version"
)

func serveCmd() *cli.Command {
	defaults := server.DefaultConfig()

	return &cli.Command{
		Name:                  "serve",
		EnableShellCompletion: true,
		Usage:                 "Run the HTTP validation API",
		Description: `Runs an HTTP server exposing the validator. POST raw configuration text
to /v1/validate to receive the scan report as JSON. The server also
serves /health, /ready, and Prometheus metrics on /metrics.

# Examples

Serve on the default port:
  ovpncheck serve

Serve on a specific address with site extensions:
  ovpncheck serve --address 127.0.0.1 --port 9090 --keywords extra.yaml`,
		Flags: []cli.Flag{
			debugFlag,
			logJSONFlag,
			keywordsFlag,
			ignoreFlag,
			&cli.StringFlag{
				Name:    "address",
				Aliases: []string{"a"},
				Value:   defaults.Address,
				Usage:   "address to listen on",
			},
			&cli.IntFlag{
				Name:    "port",
				Aliases: []string{"p"},
				Value:   int64(defaults.Port),
				Usage:   "port to listen on",
			},
			&cli.FloatFlag{
				Name:  "rate-limit",
				Value: float64(defaults.RateLimit),
				Usage: "maximum requests per second before 429 responses",
			},
		},
		Action: runServe,
	}
}

func runServe(ctx context.Context, cmd *cli.Command) error {
	logging.SetDefaultStructuredLogger(appName, version.Version,
		cmd.Bool("debug"), cmd.Bool("log-json"))

	reg, err := buildRegistry(cmd.String("keywords"))
	if err != nil {
		return cli.Exit(fmt.Sprintf("ERROR: %v", err), exitError)
	}

	cfg := server.DefaultConfig()
	cfg.Address = cmd.String("address")
	cfg.Port = int(cmd.Int("port"))
	cfg.RateLimit = rate.Limit(cmd.Float("rate-limit"))

	srv := server.New(
		server.WithName(appName),
		server.WithVersion(version.Version),
		server.WithConfig(cfg),
		server.WithScanner(scanner.New(
			scanner.WithRegistry(reg),
			scanner.WithIgnorePatterns(cmd.StringSlice("ignore")...),
		)),
	)

	if err := srv.Run(ctx); err != nil {
		return cli.Exit(fmt.Sprintf("ERROR: %v", err), exitError)
	}
	return nil
}
