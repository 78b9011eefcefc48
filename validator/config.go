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

// Package validator is the entry point: it decodes a plan,
// drives planparse.Parse over it with a freshly built parsectx.State, and
// exposes the resulting tree, its worst severity, the validator's and
// Substrait's version strings, and an exporter for the finished tree.
package validator

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/substrait-io/substrait-validator-go/diag"
	"github.com/substrait-io/substrait-validator-go/extension/loader"
)

// Config holds the options a validation run recognizes.
type Config struct {
	// URIResolver fetches the raw bytes of an extension URI referenced by
	// the plan. A nil resolver makes every extension URI fail to resolve.
	URIResolver loader.Resolver

	// MaxURIResolutionDepth bounds the extension dependency graph's
	// recursion depth. Zero means unlimited; the loader still enforces a
	// large finite backstop so a cyclic dependency graph terminates.
	MaxURIResolutionDepth int

	// OverrideURI rewrites a URI before resolution, when ok is true. The
	// loader's cache keys on the rewritten URI.
	OverrideURI func(uri string) (rewritten string, ok bool)

	// DiagnosticLevelOverrides bumps or demotes selected causes' severity
	// after parsing completes.
	DiagnosticLevelOverrides map[diag.Kind]diag.Severity

	// IgnoreUnknownFields suppresses the diagnostic normally attached to a
	// field no parser consumed, leaving only the marker child.
	IgnoreUnknownFields bool

	// Logger receives ambient, non-diagnostic log output. A nil Logger gets a
	// fresh logrus.Logger with its defaults.
	Logger *logrus.Logger
}

// unlimitedDepth stands in for "no limit" when building the loader: deep
// enough that no real extension dependency graph will hit it, but still
// finite so a resolver that returns a cyclic graph terminates.
const unlimitedDepth = 1 << 20

func (c Config) resolver() loader.Resolver {
	if c.URIResolver == nil {
		return func(ctx context.Context, uri string) ([]byte, error) {
			return nil, fmt.Errorf("no URI resolver configured, cannot fetch %s", uri)
		}
	}
	return c.URIResolver
}

func (c Config) maxDepth() int {
	if c.MaxURIResolutionDepth <= 0 {
		return unlimitedDepth
	}
	return c.MaxURIResolutionDepth
}
