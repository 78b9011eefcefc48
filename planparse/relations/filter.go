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

// parseFilter keeps rows for which Condition evaluates true, passing the
// input schema through unchanged. A non-boolean condition is a TypeMismatch.
func parseFilter(c *parsectx.Context, r *input.FilterRel, b *extbind.Bindings) types.Type {
	sweepCommon(c, r.Common)
	schema := child(c, r.Input, b)

	if r.Condition == nil {
		c.Diagnose(diag.Error, diag.ProtoMissingField, "condition")
		c.Node().Describe("Filter relation is missing its condition")
		parsectx.Sweep(c, r)
		return schema
	}

	var condType types.Type
	parsectx.Field(c, "condition", r.Condition, tree.NodeProtoMessage, func(cc *parsectx.Context, e *input.Expression) {
		condType, _ = expressions.Parse(cc, e, schema, b)
	})

	if s, ok := condType.Class.Simple(); !condType.IsUnresolvedType() && (!ok || s != types.Bool) {
		c.Diagnose(diag.Error, diag.TypeMismatch, fmt.Sprintf("filter condition must be boolean, but found %s", condType))
	}

	c.Node().Describe("Filter rows where the condition holds")
	parsectx.Sweep(c, r)
	return schema
}
