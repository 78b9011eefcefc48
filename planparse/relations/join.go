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

	"github.com/substrait-io/substrait-validator-go/diag"
	"github.com/substrait-io/substrait-validator-go/extbind"
	"github.com/substrait-io/substrait-validator-go/input"
	"github.com/substrait-io/substrait-validator-go/parsectx"
	"github.com/substrait-io/substrait-validator-go/planparse/expressions"
	"github.com/substrait-io/substrait-validator-go/tree"
	"github.com/substrait-io/substrait-validator-go/types"
)

var joinTypeNames = map[input.JoinType]string{
	input.JoinTypeInner:  "inner",
	input.JoinTypeOuter:  "full outer",
	input.JoinTypeLeft:   "left",
	input.JoinTypeRight:  "right",
	input.JoinTypeSemi:   "semi",
	input.JoinTypeAnti:   "anti",
	input.JoinTypeSingle: "single",
}

// parseJoin joins Left and Right on Expr, concatenating both sides' fields
// for inner/outer/left/right joins; semi/anti/single joins only ever
// project the left side's fields through, mirroring how they constrain
// cardinality rather than widen the schema.
func parseJoin(c *parsectx.Context, r *input.JoinRel, b *extbind.Bindings) types.Type {
	sweepCommon(c, r.Common)

	leftSchema := childNamed(c, "left", r.Left, b)
	rightSchema := childNamed(c, "right", r.Right, b)

	c.MarkParsed("type")
	jt := input.JoinType(r.JoinType)
	name, known := joinTypeNames[jt]
	if !known {
		c.Diagnose(diag.Error, diag.IllegalValue, fmt.Sprintf("unknown value %d for join type", r.JoinType))
		name = "unknown"
	}

	if r.Expr != nil {
		joinSchema := types.NewStruct(append(structFields(leftSchema), structFields(rightSchema)...), false)
		var condType types.Type
		parsectx.Field(c, "expression", r.Expr, tree.NodeProtoMessage, func(cc *parsectx.Context, e *input.Expression) {
			condType, _ = expressions.Parse(cc, e, joinSchema, b)
		})
		if s, ok := condType.Class.Simple(); !condType.IsUnresolvedType() && (!ok || s != types.Bool) {
			c.Diagnose(diag.Error, diag.TypeMismatch, fmt.Sprintf("join condition must be boolean, but found %s", condType))
		}
	}

	c.Node().Describe(fmt.Sprintf("Perform a %s join", name))

	parsectx.Sweep(c, r)
	switch jt {
	case input.JoinTypeSemi, input.JoinTypeAnti, input.JoinTypeSingle:
		return leftSchema
	default:
		fields := append(append([]types.Type(nil), structFields(leftSchema)...), structFields(rightSchema)...)
		return types.NewStruct(fields, false)
	}
}

