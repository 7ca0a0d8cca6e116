// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package cli implements the command-line interface of the ovpncheck tool.
//
// # Overview
//
// ovpncheck validates whitespace-delimited OpenVPN configuration files
// line by line against a directive schema table. The root invocation is
// the check operation; keywords and serve are subcommands.
//
// # Commands
//
// check (also the root action) - Validate configuration files:
//
//	ovpncheck server.conf
//	ovpncheck check --verbose server.conf client.ovpn
//	ovpncheck check --format json --output report.json server.conf
//	ovpncheck check --ignore 'plugin*' --keywords extra.yaml server.conf
//
// Every line is validated even when earlier lines fail, so one run
// reports all problems in a file. Lines starting with '#', blank lines,
// and anything after an embedded '#' are ignored.
//
// keywords - Print the directive table:
//
//	ovpncheck keywords
//	ovpncheck keywords --format yaml --keywords extra.yaml
//
// serve - Run the HTTP validation API:
//
//	ovpncheck serve --address 127.0.0.1 --port 8080
//
// POST raw configuration text to /v1/validate to receive the scan
// report as JSON. /health, /ready, and /metrics are also served.
//
// # Global Flags
//
//	--debug, -d    Enable debug logging; check also prints passing lines
//	--log-json     Emit log records as JSON
//	--output, -o   Output file path (default: stdout)
//	--format, -t   Output format: text, json, yaml (default: text)
//	--keywords, -k YAML file with additional directive definitions
//	--version      Show version information
//
// # Exit Codes
//
//	0  every file is valid
//	1  at least one file failed validation
//	2  a file could not be read, or an unexpected error occurred
//
// # Architecture
//
// The CLI uses the urfave/cli/v3 framework and delegates to
// specialized packages:
//   - pkg/keyword - directive schema table and registry
//   - pkg/validator - single-line validation
//   - pkg/scanner - file scanning and report aggregation
//   - pkg/serializer - output formatting
//   - pkg/server - HTTP validation API
//   - pkg/logging - structured logging
//
// Version information is embedded at build time using ldflags:
//
//	go build -ldflags="-X 'github.com/ovpn-tools/ovpncheck/pkg/version.Version=1.0.0'"
package cli
