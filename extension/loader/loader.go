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

// Package loader resolves, parses and caches extension YAML documents into
// extension.Module values. Results are memoized by URI: a repeat use links
// back to the first one, and each document is validated against an
// embedded JSON Schema before it is interpreted.
package loader

import (
	"context"
	"fmt"
	"net/url"
	"sync"

	"github.com/xeipuuv/gojsonschema"
	yaml "gopkg.in/yaml.v3"

	"github.com/substrait-io/substrait-validator-go/diag"
	"github.com/substrait-io/substrait-validator-go/extension"
	"github.com/substrait-io/substrait-validator-go/extref"
	"github.com/substrait-io/substrait-validator-go/path"
)

// DefaultMaxDepth bounds the dependency recursion a single Load call will
// follow, guarding against a cyclic or pathologically deep "dependencies"
// graph between extension documents.
const DefaultMaxDepth = 32

// Resolver fetches the raw bytes of the document at uri. Callers supply
// their own; a Resolver reading from an in-memory map or the local
// filesystem are both valid implementations.
type Resolver func(ctx context.Context, uri string) ([]byte, error)

var schema = gojsonschema.NewStringLoader(extensionSchemaJSON)

// Loader loads, validates and caches extension modules by URI for the
// lifetime of one validation run.
type Loader struct {
	resolve  Resolver
	override func(uri string) (string, bool)
	maxDepth int

	mu    sync.Mutex
	cache map[string]*cacheEntry
}

type cacheEntry struct {
	module     *extension.Module
	anchorPath path.Path
}

// New returns a Loader that fetches documents via resolve.
func New(resolve Resolver) *Loader {
	return NewWithMaxDepth(resolve, DefaultMaxDepth)
}

// NewWithMaxDepth is New, but with the dependency recursion bound set
// explicitly. maxDepth <= 0 means DefaultMaxDepth.
func NewWithMaxDepth(resolve Resolver, maxDepth int) *Loader {
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}
	return &Loader{
		resolve:  resolve,
		maxDepth: maxDepth,
		cache:    make(map[string]*cacheEntry),
	}
}

// Load resolves, parses and returns the module at uri, referenced from p.
// A second Load of the same uri returns the cached module together with
// an Info diagnostic linking back to the first use's path.
// Parse/validation failures are returned as diagnostics, not Go errors —
// except resolver I/O failures, which are not classifiable as a plan
// defect and are returned as a plain error.
func (l *Loader) Load(ctx context.Context, uri string, p path.Path) (*extension.Module, []*diag.Diagnostic, error) {
	return l.load(ctx, uri, p, 0)
}

// SetOverrideURI installs a rewrite hook applied to every URI before the
// cache lookup, so the cache keys on the post-override URI.
func (l *Loader) SetOverrideURI(f func(uri string) (string, bool)) {
	l.override = f
}

func (l *Loader) load(ctx context.Context, uri string, p path.Path, depth int) (*extension.Module, []*diag.Diagnostic, error) {
	if l.override != nil {
		if rewritten, ok := l.override(uri); ok {
			uri = rewritten
		}
	}

	l.mu.Lock()
	if entry, ok := l.cache[uri]; ok {
		anchor := entry.anchorPath
		l.mu.Unlock()
		return entry.module, []*diag.Diagnostic{
			diag.LinkDiscouragedName.New(diag.Info, p, fmt.Sprintf("%s already used at %s", uri, anchor.String())),
		}, nil
	}
	l.mu.Unlock()

	if depth > l.maxDepth {
		return nil, []*diag.Diagnostic{
			diag.YamlParseFailed.New(diag.Error, p, fmt.Sprintf("extension dependency graph exceeds maximum depth %d while loading %s", l.maxDepth, uri)),
		}, nil
	}

	if _, err := url.Parse(uri); err != nil {
		return nil, []*diag.Diagnostic{
			diag.IllegalValue.New(diag.Error, p, fmt.Sprintf("invalid extension URI %s: %s", uri, err)),
		}, nil
	}

	raw, err := l.resolve(ctx, uri)
	if err != nil {
		return nil, nil, fmt.Errorf("resolving extension URI %s: %w", uri, err)
	}

	var diags []*diag.Diagnostic
	module, deps, parseDiags := l.parse(raw, uri, p)
	diags = append(diags, parseDiags...)
	if module == nil {
		return nil, diags, nil
	}

	l.mu.Lock()
	l.cache[uri] = &cacheEntry{module: module, anchorPath: p}
	l.mu.Unlock()

	for depName, depURI := range deps {
		depModule, depDiags, err := l.load(ctx, depURI, p.WithField("dependencies").WithField(depName), depth+1)
		diags = append(diags, depDiags...)
		if err != nil {
			return nil, diags, err
		}
		if depModule != nil {
			module.Dependencies[depURI] = depModule
		}
	}
	module.Seal()

	return module, diags, nil
}

// parse decodes and validates one YAML document, returning the resulting
// module (possibly partially populated) plus any diagnostics produced along
// the way. The module is nil when the document fails to decode or coerce,
// fails schema validation, or does not have a mapping at its root.
func (l *Loader) parse(raw []byte, uri string, p path.Path) (*extension.Module, map[string]string, []*diag.Diagnostic) {
	var doc yaml.Node
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, nil, []*diag.Diagnostic{
			diag.YamlParseFailed.New(diag.Error, p, fmt.Sprintf("failed to parse YAML for %s: %s", uri, err)),
		}
	}

	coerced, err := coerceToJSONCompatible(&doc, 0)
	if err != nil {
		return nil, nil, []*diag.Diagnostic{
			diag.YamlParseFailed.New(diag.Error, p, fmt.Sprintf("%s: %s", uri, err)),
		}
	}

	result, err := gojsonschema.Validate(schema, gojsonschema.NewGoLoader(coerced))
	if err != nil {
		return nil, nil, []*diag.Diagnostic{
			diag.YamlParseFailed.New(diag.Error, p, fmt.Sprintf("schema validation of %s failed to run: %s", uri, err)),
		}
	}
	var diags []*diag.Diagnostic
	if !result.Valid() {
		for _, e := range result.Errors() {
			diags = append(diags, diag.YamlParseFailed.New(diag.Error, p, fmt.Sprintf("%s: %s", uri, e.String())))
		}
		return nil, nil, diags
	}

	top, ok := coerced.(map[string]interface{})
	if !ok {
		diags = append(diags, diag.YamlParseFailed.New(diag.Error, p, fmt.Sprintf("%s: document root is not a mapping", uri)))
		return nil, nil, diags
	}

	module := extension.NewModule(uri)
	deps, buildDiags := buildModule(module, top, uri, p)
	diags = append(diags, buildDiags...)
	return module, deps, diags
}

// ResetExtensionIDs clears the process-local extension id counter. Call
// once per validation run, before any loader use.
func ResetExtensionIDs() {
	extref.ResetExtensionIDs()
}
