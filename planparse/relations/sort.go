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

// parseSort orders Input by Sorts, passing its schema through unchanged.
func parseSort(c *parsectx.Context, r *input.SortRel, b *extbind.Bindings) types.Type {
	sweepCommon(c, r.Common)
	schema := child(c, r.Input, b)

	parsectx.RepeatedField(c, "sorts", r.Sorts, tree.NodeProtoMessage, func(cc *parsectx.Context, i int, sf input.SortField) {
		parseSortField(cc, &sf, schema, b)
	})

	parsectx.Sweep(c, r)
	return schema
}

// parseSortField implements parse_sort_field: an expression plus a sort
// kind, either a direction enum or a comparison function reference. The
// node is described and summarized with the resolved comparison semantics
// in prose.
func parseSortField(c *parsectx.Context, sf *input.SortField, schema types.Type, b *extbind.Bindings) {
	var exprType types.Type
	var exprText string
	if sf.Expr != nil {
		node := parsectx.Field(c, "expr", sf.Expr, tree.NodeProtoMessage, func(cc *parsectx.Context, e *input.Expression) {
			exprType, exprText = expressions.Parse(cc, e, schema, b)
		})
		exprType = extbind.NodeDataType(node)
	} else {
		c.Diagnose(diag.Error, diag.ProtoMissingField, "expr")
		exprType = types.NewUnresolvedType()
		exprText = "?"
	}

	method := "Invalid sort by"
	c.MarkParsed("sort_kind")
	c.MarkParsed("direction")
	c.MarkParsed("comparison_function_reference")
	switch {
	case sf.Direction != nil:
		method = sortDirection(c, *sf.Direction)
	case sf.ComparisonFunctionReference != nil:
		method = comparisonFunctionReference(c, *sf.ComparisonFunctionReference, exprType, b)
	default:
		c.Diagnose(diag.Error, diag.ProtoMissingField, "sort_kind")
	}

	c.Node().Describe(fmt.Sprintf("%s %s", method, exprText))
	if c.Node().Summary == "" {
		c.Node().SetSummary(fmt.Sprintf("%s %s.", method, exprText))
	}
	parsectx.Sweep(c, sf)
}

func sortDirection(c *parsectx.Context, dir int32) string {
	switch input.SortDirection(dir) {
	case input.SortDirectionAscNullsFirst:
		return "Ascending sort by"
	case input.SortDirectionAscNullsLast:
		return "Ascending sort by"
	case input.SortDirectionDescNullsFirst:
		return "Descending sort by"
	case input.SortDirectionDescNullsLast:
		return "Descending sort by"
	case input.SortDirectionClustered:
		c.Node().SetSummary("Equal values are grouped together, but no ordering is defined between clusters.")
		return "Coalesce"
	case input.SortDirectionUnspecified:
		c.Diagnose(diag.Error, diag.ProtoMissingField, "direction")
		return "Invalid sort by"
	default:
		c.Diagnose(diag.Error, diag.IllegalValue, fmt.Sprintf("unknown value %d for sort direction", dir))
		return "Invalid sort by"
	}
}

// comparisonFunctionReference binds anchor to a resolved function with the
// sorted expression's data type on both sides, and interprets its return
// class: boolean means f(a,b) is "a<b"; signed integer means sign-of-result;
// anything else resolved is a TypeMismatch.
func comparisonFunctionReference(c *parsectx.Context, anchor uint32, dataType types.Type, b *extbind.Bindings) string {
	def, ok := b.LookupFunction(c, anchor)
	if !ok {
		return "Custom sort"
	}

	arg := types.DataTypeValue{Type_: dataType}
	returnType, err := def.DeriveReturnType([]types.Value{arg, arg})
	if err != nil {
		c.Diagnose(diag.Warning, diag.TypeDerivationFailed, err.Error())
		return "Custom sort"
	}

	if s, isSimple := returnType.Class.Simple(); isSimple {
		switch s {
		case types.Bool:
			if returnType.Nullable {
				c.Node().SetSummary("Comparison function for sorting: f(a, b) true means a sorts before b, false means b sorts before a, null means no defined sort order.")
			} else {
				c.Node().SetSummary("Comparison function for sorting: f(a, b) true means a sorts before b, false means b sorts before a.")
			}
			return "Custom sort"
		case types.I8, types.I16, types.I32, types.I64:
			if returnType.Nullable {
				c.Node().SetSummary("Comparison function for sorting: f(a, b) negative means a sorts before b, positive means b sorts before a, zero or null means no defined sort order.")
			} else {
				c.Node().SetSummary("Comparison function for sorting: f(a, b) negative means a sorts before b, positive means b sorts before a, zero means no defined sort order.")
			}
			return "Custom sort"
		}
	}
	if !returnType.IsUnresolvedType() {
		c.Diagnose(diag.Error, diag.TypeMismatch, fmt.Sprintf("comparison functions must yield booleans (a < b) or integers (a ?= b), but found %s", returnType))
	}
	return "Custom sort"
}
