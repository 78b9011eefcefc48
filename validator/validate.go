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

package validator

import (
	"encoding/json"
	"fmt"

	"github.com/substrait-io/substrait-validator-go/diag"
	"github.com/substrait-io/substrait-validator-go/extension/loader"
	"github.com/substrait-io/substrait-validator-go/input"
	"github.com/substrait-io/substrait-validator-go/parsectx"
	"github.com/substrait-io/substrait-validator-go/planparse"
	"github.com/substrait-io/substrait-validator-go/tree"
)

// Validate decodes planBytes as a Substrait plan and validates it according
// to cfg, returning the annotated output tree and the worst diagnostic
// severity found anywhere in it. A non-nil error means planBytes could not
// even be decoded; everything else the validator finds is a diagnostic on
// the returned tree, never a Go error.
func Validate(planBytes []byte, cfg Config) (*tree.Node, diag.Severity, error) {
	var plan input.Plan
	if err := json.Unmarshal(planBytes, &plan); err != nil {
		return nil, diag.Error, fmt.Errorf("decoding plan: %w", err)
	}

	l := loader.NewWithMaxDepth(cfg.resolver(), cfg.maxDepth())
	if cfg.OverrideURI != nil {
		l.SetOverrideURI(cfg.OverrideURI)
	}
	state := parsectx.NewState(l, cfg.Logger)
	state.IgnoreUnknownFields = cfg.IgnoreUnknownFields

	c := parsectx.Root(state, "plan", tree.NodeProtoMessage)
	planparse.Parse(c, &plan)

	root := c.Node()
	applyLevelOverrides(root, cfg.DiagnosticLevelOverrides)

	return root, root.WorstSeverity(), nil
}

func applyLevelOverrides(n *tree.Node, overrides map[diag.Kind]diag.Severity) {
	if len(overrides) == 0 {
		return
	}
	for _, d := range n.Diagnostics {
		if sev, ok := overrides[d.Cause]; ok {
			d.Severity = sev
		}
	}
	for _, e := range n.Children {
		applyLevelOverrides(e.Node, overrides)
	}
}
