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

// Package planparse implements the toplevel plan parser: version checking,
// extension binding, and dispatch over the plan's top-level relations. It
// composes planparse/relations (one parser per relation kind) and
// planparse/expressions (scalar expression and type conversion) through the
// shared extbind.Bindings anchor table.
package planparse

import (
	"fmt"

	"github.com/substrait-io/substrait-validator-go/diag"
	"github.com/substrait-io/substrait-validator-go/extbind"
	"github.com/substrait-io/substrait-validator-go/input"
	"github.com/substrait-io/substrait-validator-go/parsectx"
	"github.com/substrait-io/substrait-validator-go/planparse/relations"
	"github.com/substrait-io/substrait-validator-go/tree"
	"github.com/substrait-io/substrait-validator-go/types"
)

// Parse parses p at c: it marks the run experimental, checks the plan's
// declared version, binds extension anchors, and parses every top-level
// relation, finally reporting any extension declaration that was never
// referenced.
func Parse(c *parsectx.Context, p *input.Plan) {
	c.Diagnose(diag.Info, diag.Experimental,
		"this version of the validator is EXPERIMENTAL; please report issues against the project this was generated for")

	parseVersion(c, p.Version)

	b := parseExtensions(c, p.ExtensionUris, p.Extensions)

	if len(p.Relations) == 0 {
		c.Diagnose(diag.Error, diag.RelationRootMissing, "a plan must declare at least one relation")
	}
	parsectx.RepeatedField(c, "relations", p.Relations, tree.NodeProtoMessage, func(cc *parsectx.Context, i int, pr input.PlanRel) {
		parsePlanRel(cc, &pr, b)
	})

	b.CheckUnused(c)
	parsectx.Sweep(c, p)
}

// parsePlanRel dispatches a toplevel relation, either a bare Rel (whose
// schema has its field names stripped) or a RelRoot (which applies field
// names to its input's schema).
func parsePlanRel(c *parsectx.Context, pr *input.PlanRel, b *extbind.Bindings) {
	switch {
	case pr.Rel != nil:
		c.MarkParsed("rel")
		parsectx.OneofField(c, "rel_type", "rel", *pr.Rel, tree.NodeProtoMessage, func(cc *parsectx.Context, r input.Rel) {
			t := relations.Parse(cc, &r, b)
			cc.Node().SetDataType(t.StripFieldNames())
		})
	case pr.Root != nil:
		c.MarkParsed("root")
		parsectx.OneofField(c, "rel_type", "root", *pr.Root, tree.NodeProtoMessage, func(cc *parsectx.Context, root input.RelRoot) {
			parseRelRoot(cc, &root, b)
		})
	default:
		c.Diagnose(diag.Error, diag.ProtoMissingField, "rel_type")
	}
	parsectx.Sweep(c, pr)
}

func parseRelRoot(c *parsectx.Context, root *input.RelRoot, b *extbind.Bindings) {
	if root.Input == nil {
		c.Diagnose(diag.Error, diag.ProtoMissingField, "input")
		parsectx.Sweep(c, root)
		return
	}
	var schema types.Type
	node := parsectx.Field(c, "input", *root.Input, tree.NodeProtoMessage, func(cc *parsectx.Context, r input.Rel) {
		schema = relations.Parse(cc, &r, b)
	})
	schema = extbind.NodeDataType(node)

	named, err := schema.ApplyFieldNames(root.Names)
	if err != nil {
		c.Diagnose(diag.Error, diag.IllegalValue, err.Error())
		named = schema
	}
	c.MarkParsed("names")
	c.Node().SetDataType(named)
	c.Node().Describe(fmt.Sprintf("Root relation, naming %d field(s)", len(root.Names)))
	parsectx.Sweep(c, root)
}

