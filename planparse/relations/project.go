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

package relations

import (
	"fmt"

	"github.com/substrait-io/substrait-validator-go/extbind"
	"github.com/substrait-io/substrait-validator-go/input"
	"github.com/substrait-io/substrait-validator-go/parsectx"
	"github.com/substrait-io/substrait-validator-go/planparse/expressions"
	"github.com/substrait-io/substrait-validator-go/tree"
	"github.com/substrait-io/substrait-validator-go/types"
)

// parseProject appends the derived type of each of Expressions to the
// input schema's fields, producing a wider struct.
func parseProject(c *parsectx.Context, r *input.ProjectRel, b *extbind.Bindings) types.Type {
	sweepCommon(c, r.Common)
	schema := child(c, r.Input, b)

	fields := append([]types.Type(nil), structFields(schema)...)
	parsectx.RepeatedField(c, "expressions", r.Expressions, tree.NodeProtoMessage, func(cc *parsectx.Context, i int, e input.Expression) {
		t, _ := expressions.Parse(cc, &e, schema, b)
		fields = append(fields, t)
	})

	c.Node().Describe(fmt.Sprintf("Project %d computed field(s) onto the input schema", len(r.Expressions)))
	parsectx.Sweep(c, r)
	return types.NewStruct(fields, schema.Nullable)
}

// structFields returns t's parameter values as plain field types, or nil if
// t is not (yet) known to be a struct.
func structFields(t types.Type) []types.Type {
	if cmp, ok := t.Class.Compound(); !ok || cmp != types.Struct {
		return nil
	}
	out := make([]types.Type, len(t.Parameters))
	for i, p := range t.Parameters {
		dt, ok := types.GetDataType(p.Value)
		if !ok {
			dt = types.NewUnresolvedType()
		}
		out[i] = dt
	}
	return out
}
