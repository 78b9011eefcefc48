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

// parseFetch implements the offset/count window operation: the output schema is the input
// schema verbatim, and the node's description is chosen from a fixed
// phrasing table keyed on the resolved (offset, count) pair.
func parseFetch(c *parsectx.Context, r *input.FetchRel, b *extbind.Bindings) types.Type {
	sweepCommon(c, r.Common)
	schema := child(c, r.Input, b)

	offset := fetchBound(c, "offset", "offset_expr", r.Offset, r.OffsetExpr, schema, b, "offsets cannot be negative")
	count := fetchBound(c, "count", "count_expr", r.Count, r.CountExpr, schema, b, "count cannot be negative")

	c.Node().Describe(fetchDescription(offset, count))
	parsectx.Sweep(c, r)
	return schema
}

// fetchBound resolves one of FetchRel's two oneof-style bound fields (a
// literal value or an unevaluated expression), diagnosing a negative
// literal and a not-yet-implemented warning for the expression branch.
func fetchBound(c *parsectx.Context, literalName, exprName string, literal *int64, expr *input.Expression, schema types.Type, b *extbind.Bindings, negativeMsg string) int64 {
	c.MarkParsed(literalName)
	c.MarkParsed(exprName)
	switch {
	case literal != nil:
		if *literal < 0 {
			c.Diagnose(diag.Error, diag.IllegalValue, negativeMsg)
		}
		return *literal
	case expr != nil:
		parsectx.Field(c, exprName, expr, tree.NodeProtoMessage, func(cc *parsectx.Context, e *input.Expression) {
			expressions.Parse(cc, e, schema, b)
		})
		c.Diagnose(diag.Warning, diag.NotYetImplemented, exprName+" evaluation not yet implemented")
		return 0
	default:
		return 0
	}
}

func fetchDescription(offset, count int64) string {
	switch {
	case count == 1:
		return fmt.Sprintf("Propagate only the %s row", ordinal(offset+1))
	case count > 1 && offset > 1:
		return fmt.Sprintf("Propagate only %d rows, starting from the %s", count, ordinal(offset+1))
	case count > 1:
		return fmt.Sprintf("Propagate only %d rows", count)
	case offset == 0:
		return "Fetch all rows"
	case offset == 1:
		return "Discard the first row"
	case offset > 1:
		return fmt.Sprintf("Discard the first %d rows", offset)
	default:
		return "Invalid fetch relation"
	}
}

// ordinal renders n in English ordinal form ("1st", "2nd", "3rd", "4th", …).
func ordinal(n int64) string {
	if n < 0 {
		return "?"
	}
	suffix := "th"
	switch {
	case n%100 >= 11 && n%100 <= 13:
		suffix = "th"
	case n%10 == 1:
		suffix = "st"
	case n%10 == 2:
		suffix = "nd"
	case n%10 == 3:
		suffix = "rd"
	}
	return fmt.Sprintf("%d%s", n, suffix)
}
