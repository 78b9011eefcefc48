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
	"github.com/substrait-io/substrait-validator-go/tree"
	"github.com/substrait-io/substrait-validator-go/types"
)

var setOpNames = map[input.SetOp]string{
	input.SetOpMinusPrimary:         "except (primary)",
	input.SetOpMinusMultiset:        "except (multiset)",
	input.SetOpIntersectionPrimary:  "intersect (primary)",
	input.SetOpIntersectionMultiset: "intersect (multiset)",
	input.SetOpUnionDistinct:        "union distinct",
	input.SetOpUnionAll:             "union all",
}

// parseSet combines Inputs with set-operation semantics, requiring every
// input to have the same field count; the field types are not compared.
// The combined schema is the first input's, with its field names stripped.
func parseSet(c *parsectx.Context, r *input.SetRel, b *extbind.Bindings) types.Type {
	sweepCommon(c, r.Common)

	if len(r.Inputs) == 0 {
		c.Diagnose(diag.Error, diag.ProtoMissingField, "inputs")
		parsectx.Sweep(c, r)
		return types.NewUnresolvedType()
	}

	var schemas []types.Type
	nodes := parsectx.RepeatedField(c, "inputs", r.Inputs, tree.NodeProtoMessage, func(cc *parsectx.Context, i int, rel input.Rel) {
		Parse(cc, &rel, b)
	})
	for _, n := range nodes {
		schemas = append(schemas, extbind.NodeDataType(n))
	}

	first := schemas[0]
	for i, s := range schemas[1:] {
		if !s.IsUnresolvedType() && !first.IsUnresolvedType() && len(s.Parameters) != len(first.Parameters) {
			c.Diagnose(diag.Error, diag.TypeMismatch, fmt.Sprintf("set relation input %d has %d field(s), expected %d", i+1, len(s.Parameters), len(first.Parameters)))
		}
	}

	c.MarkParsed("op")
	op := input.SetOp(r.Op)
	name, known := setOpNames[op]
	if !known {
		c.Diagnose(diag.Error, diag.IllegalValue, fmt.Sprintf("unknown value %d for set operation", r.Op))
		name = "unknown"
	}
	c.Node().Describe(fmt.Sprintf("Combine %d input(s) with %s", len(r.Inputs), name))

	parsectx.Sweep(c, r)
	return first.StripFieldNames()
}
