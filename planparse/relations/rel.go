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

// Package relations implements the per-relation-kind parsers, one file
// per relation kind, each deriving its output schema from its input(s)
// and the relation's own operation.
package relations

import (
	"github.com/substrait-io/substrait-validator-go/diag"
	"github.com/substrait-io/substrait-validator-go/extbind"
	"github.com/substrait-io/substrait-validator-go/input"
	"github.com/substrait-io/substrait-validator-go/parsectx"
	"github.com/substrait-io/substrait-validator-go/tree"
	"github.com/substrait-io/substrait-validator-go/types"
)

// Parse dispatches rel to the parser for whichever of its oneof variants is
// set, sets the derived schema as the enclosing node's data type, and
// returns it.
func Parse(c *parsectx.Context, rel *input.Rel, b *extbind.Bindings) types.Type {
	var t types.Type
	switch {
	case rel.Read != nil:
		t = field(c, "read", *rel.Read, func(cc *parsectx.Context, r input.ReadRel) types.Type { return parseRead(cc, &r, b) })
	case rel.Filter != nil:
		t = field(c, "filter", *rel.Filter, func(cc *parsectx.Context, r input.FilterRel) types.Type { return parseFilter(cc, &r, b) })
	case rel.Fetch != nil:
		t = field(c, "fetch", *rel.Fetch, func(cc *parsectx.Context, r input.FetchRel) types.Type { return parseFetch(cc, &r, b) })
	case rel.Aggregate != nil:
		t = field(c, "aggregate", *rel.Aggregate, func(cc *parsectx.Context, r input.AggregateRel) types.Type { return parseAggregate(cc, &r, b) })
	case rel.Sort != nil:
		t = field(c, "sort", *rel.Sort, func(cc *parsectx.Context, r input.SortRel) types.Type { return parseSort(cc, &r, b) })
	case rel.Join != nil:
		t = field(c, "join", *rel.Join, func(cc *parsectx.Context, r input.JoinRel) types.Type { return parseJoin(cc, &r, b) })
	case rel.Project != nil:
		t = field(c, "project", *rel.Project, func(cc *parsectx.Context, r input.ProjectRel) types.Type { return parseProject(cc, &r, b) })
	case rel.Set != nil:
		t = field(c, "set", *rel.Set, func(cc *parsectx.Context, r input.SetRel) types.Type { return parseSet(cc, &r, b) })
	default:
		c.Diagnose(diag.Error, diag.IllegalValue, "relation has no recognized variant set")
		t = types.NewUnresolvedType()
	}
	c.Node().SetDataType(t)
	parsectx.Sweep(c, rel)
	return t
}

// field opens a child context addressed by name, runs build against value,
// stores its returned type on the child node and wires it into c, then
// returns build's result. It is the shared shape every relation parser
// below uses for its one-of-many relation kind dispatch.
func field[T any](c *parsectx.Context, name string, value T, build func(*parsectx.Context, T) types.Type) types.Type {
	c.MarkParsed(name)
	var result types.Type
	node := parsectx.OneofField(c, "rel_type", name, value, tree.NodeProtoMessage, func(cc *parsectx.Context, v T) {
		result = build(cc, v)
		cc.Node().SetDataType(result)
	})
	return extbind.NodeDataType(node)
}

// child parses a relation's single Input field, recursing through Parse.
func child(c *parsectx.Context, in *input.Rel, b *extbind.Bindings) types.Type {
	return childNamed(c, "input", in, b)
}

// childNamed is child, addressed under an arbitrary field name (Join's
// "left"/"right" rather than the usual singular "input").
func childNamed(c *parsectx.Context, name string, in *input.Rel, b *extbind.Bindings) types.Type {
	if in == nil {
		c.Diagnose(diag.Error, diag.ProtoMissingField, name)
		return types.NewUnresolvedType()
	}
	node := parsectx.Field(c, name, *in, tree.NodeProtoMessage, func(cc *parsectx.Context, r input.Rel) {
		Parse(cc, &r, b)
	})
	return extbind.NodeDataType(node)
}

// sweepCommon marks RelCommon as visited without deriving anything from
// it: no relation parser in this repository yet needs emit-ordering/hint
// information, but the field must still be marked parsed so the
// unknown-field sweep doesn't flag it.
func sweepCommon(c *parsectx.Context, common *input.RelCommon) {
	if common == nil {
		return
	}
	parsectx.Field(c, "common", *common, tree.NodeProtoMessage, func(cc *parsectx.Context, rc input.RelCommon) {
		parsectx.Sweep(cc, &rc)
	})
}

