// Copyright 2026 The Substrait Validator Authors.
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

package main

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/substrait-io/substrait-validator-go/diag"
	"github.com/substrait-io/substrait-validator-go/validator"
)

type options struct {
	format              string
	ignoreUnknownFields bool
	maxURIDepth         int
	verbose             bool
}

func newRootCommand() *cobra.Command {
	opts := &options{format: "diagnostics"}

	cmd := &cobra.Command{
		Use:   "substrait-validate [plan.json]",
		Short: "Validate a Substrait plan and report diagnostics",
		Long: "substrait-validate decodes a JSON-encoded Substrait plan, walks it with the\n" +
			"same traversal engine the validator library exposes, and prints the\n" +
			"resulting diagnostic tree. Reads from stdin when no file is given.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "-"
			if len(args) == 1 {
				path = args[0]
			}
			return run(cmd, path, opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.format, "format", "f", opts.format, "export format: diagnostics|proto")
	flags.BoolVar(&opts.ignoreUnknownFields, "ignore-unknown-fields", false, "suppress diagnostics for unconsumed plan fields")
	flags.IntVar(&opts.maxURIDepth, "max-uri-depth", 0, "bound on transitive extension URI resolution (0 = unlimited)")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "log extension resolution at debug level")

	return cmd
}

func run(cmd *cobra.Command, path string, opts *options) error {
	planBytes, err := readPlan(path)
	if err != nil {
		return fmt.Errorf("reading plan: %w", err)
	}

	logger := logrus.New()
	logger.SetOutput(cmd.ErrOrStderr())
	if opts.verbose {
		logger.SetLevel(logrus.DebugLevel)
	} else {
		logger.SetLevel(logrus.WarnLevel)
	}

	cfg := validator.Config{
		URIResolver:           httpFileResolver,
		MaxURIResolutionDepth: opts.maxURIDepth,
		IgnoreUnknownFields:   opts.ignoreUnknownFields,
		Logger:                logger,
	}

	root, worst, err := validator.Validate(planBytes, cfg)
	if err != nil {
		return fmt.Errorf("validating plan: %w", err)
	}

	format := validator.Diagnostics
	if opts.format == "proto" {
		format = validator.Proto
	}
	out, err := validator.Export(root, format)
	if err != nil {
		return fmt.Errorf("exporting result: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(out))

	switch worst {
	case diag.Error:
		return errSilentExit{code: 2}
	case diag.Warning:
		return errSilentExit{code: 1}
	default:
		return nil
	}
}

// errSilentExit carries a process exit code through cobra's RunE without
// printing anything extra; main translates it via os.Exit.
type errSilentExit struct{ code int }

func (e errSilentExit) Error() string { return "" }

func readPlan(path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}

// httpFileResolver resolves extension URIs that name a local file path
// directly, or fetches http(s) URIs over the network.
func httpFileResolver(ctx context.Context, uri string) ([]byte, error) {
	if data, err := os.ReadFile(uri); err == nil {
		return data, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, uri, nil)
	if err != nil {
		return nil, fmt.Errorf("%s is not a local file and not a valid URL: %w", uri, err)
	}
	client := http.Client{Timeout: 30 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetching %s: HTTP %d", uri, resp.StatusCode)
	}
	return io.ReadAll(resp.Body)
}
