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

// parseAggregate groups Input by Groupings and produces one value per
// Measure per group, emitting a struct of the grouping expressions'
// derived types followed by each measure's derived return type.
func parseAggregate(c *parsectx.Context, r *input.AggregateRel, b *extbind.Bindings) types.Type {
	sweepCommon(c, r.Common)
	schema := child(c, r.Input, b)

	var fields []types.Type

	parsectx.RepeatedField(c, "groupings", r.Groupings, tree.NodeProtoMessage, func(cc *parsectx.Context, i int, g input.AggregateGrouping) {
		parsectx.RepeatedField(cc, "grouping_expressions", g.GroupingExpressions, tree.NodeProtoMessage, func(ccc *parsectx.Context, j int, e input.Expression) {
			t, _ := expressions.Parse(ccc, &e, schema, b)
			fields = append(fields, t)
		})
	})

	parsectx.RepeatedField(c, "measures", r.Measures, tree.NodeProtoMessage, func(cc *parsectx.Context, i int, m input.AggregateMeasure) {
		fields = append(fields, parseAggregateMeasure(cc, &m, schema, b))
	})

	c.Node().Describe(fmt.Sprintf("Aggregate over %d grouping set(s) with %d measure(s)", len(r.Groupings), len(r.Measures)))
	parsectx.Sweep(c, r)
	return types.NewStruct(fields, false)
}

func parseAggregateMeasure(c *parsectx.Context, m *input.AggregateMeasure, schema types.Type, b *extbind.Bindings) types.Type {
	if m.Filter != nil {
		parsectx.Field(c, "filter", m.Filter, tree.NodeProtoMessage, func(cc *parsectx.Context, e *input.Expression) {
			expressions.Parse(cc, e, schema, b)
		})
	}

	if m.Measure == nil {
		c.Diagnose(diag.Error, diag.ProtoMissingField, "measure")
		parsectx.Sweep(c, m)
		return types.NewUnresolvedType()
	}

	var result types.Type
	parsectx.Field(c, "measure", m.Measure, tree.NodeProtoMessage, func(cc *parsectx.Context, fn *input.AggregateFunction) {
		result = parseAggregateFunction(cc, fn, schema, b)
	})
	parsectx.Sweep(c, m)
	return result
}

func parseAggregateFunction(c *parsectx.Context, fn *input.AggregateFunction, schema types.Type, b *extbind.Bindings) types.Type {
	c.MarkParsed("function_reference")
	def, ok := b.LookupFunction(c, fn.FunctionReference)

	argTypes := make([]types.Type, len(fn.Arguments))
	parsectx.RepeatedField(c, "arguments", fn.Arguments, tree.NodeProtoMessage, func(cc *parsectx.Context, i int, e input.Expression) {
		argTypes[i], _ = expressions.Parse(cc, &e, schema, b)
	})

	// AGGREGATION_INVOCATION (e.g. DISTINCT) isn't modeled by return-type
	// derivation yet; marked parsed rather than left to trip the sweep.
	c.MarkParsed("invocation")
	parsectx.Sweep(c, fn)

	if !ok {
		return types.NewUnresolvedType()
	}

	values := make([]types.Value, len(argTypes))
	for i, at := range argTypes {
		values[i] = types.DataTypeValue{Type_: at}
	}

	t, err := def.DeriveReturnType(values)
	if err != nil {
		c.Diagnose(diag.Warning, diag.TypeDerivationFailed, err.Error())
		return types.NewUnresolvedType()
	}
	return t
}
