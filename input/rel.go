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

package input

// Rel is a relational operator node. Exactly one pointer field is set,
// mirroring the wire format's oneof over relation kinds.
type Rel struct {
	Read      *ReadRel      `json:"read"`
	Filter    *FilterRel    `json:"filter"`
	Fetch     *FetchRel     `json:"fetch"`
	Aggregate *AggregateRel `json:"aggregate"`
	Sort      *SortRel      `json:"sort"`
	Join      *JoinRel      `json:"join"`
	Project   *ProjectRel   `json:"project"`
	Set       *SetRel       `json:"set"`
}

// RelCommon carries cross-cutting fields shared by every relation kind
// (emit ordering, hints), present on each *Rel variant's Common field in
// the real wire format but flattened here since no relation parser in this
// repository yet derives behavior from it beyond presence-tracking.
type RelCommon struct {
	EmitKinds []int32 `json:"emit"`
}

// ReadRel is a leaf relation reading from a named table.
type ReadRel struct {
	Common     *RelCommon         `json:"common"`
	BaseSchema *NamedStruct       `json:"base_schema"`
	Filter     *Expression        `json:"filter"`
	NamedTable *ReadRelNamedTable `json:"named_table"`
}

// ReadRelNamedTable identifies the table by a dotted name path.
type ReadRelNamedTable struct {
	Names []string `json:"names"`
}

// NamedStruct pairs a struct type with the flat, depth-first field names
// substrait uses to label it.
type NamedStruct struct {
	Names  []string `json:"names"`
	Struct *Type    `json:"struct"`
}

// FilterRel keeps rows for which Condition evaluates true.
type FilterRel struct {
	Common    *RelCommon  `json:"common"`
	Input     *Rel        `json:"input"`
	Condition *Expression `json:"condition"`
}

// FetchRel implements the offset/count window operation. Offset and
// count each arrive as one of two oneof branches: a literal value, or an
// (unevaluated-by-this-parser) expression.
type FetchRel struct {
	Common     *RelCommon  `json:"common"`
	Input      *Rel        `json:"input"`
	Offset     *int64      `json:"offset"`
	OffsetExpr *Expression `json:"offset_expr"`
	Count      *int64      `json:"count"`
	CountExpr  *Expression `json:"count_expr"`
}

// AggregateRel groups Input by Groupings, producing one Measures value per
// group per measure.
type AggregateRel struct {
	Common    *RelCommon          `json:"common"`
	Input     *Rel                `json:"input"`
	Groupings []AggregateGrouping `json:"groupings"`
	Measures  []AggregateMeasure  `json:"measures"`
}

// AggregateGrouping is one GROUP BY grouping set.
type AggregateGrouping struct {
	GroupingExpressions []Expression `json:"grouping_expressions"`
}

// AggregateMeasure is one aggregate function applied over Input.
type AggregateMeasure struct {
	Measure *AggregateFunction `json:"measure"`
	Filter  *Expression        `json:"filter"`
}

// AggregateFunction invokes a resolved aggregate function by anchor.
type AggregateFunction struct {
	FunctionReference uint32       `json:"function_reference"`
	Arguments         []Expression `json:"arguments"`
	Invocation        int32        `json:"invocation"`
}

// SortRel orders Input by Sorts.
type SortRel struct {
	Common *RelCommon  `json:"common"`
	Input  *Rel        `json:"input"`
	Sorts  []SortField `json:"sorts"`
}

// SortField is one ORDER BY key: an expression, a sort direction, and
// (when the direction is custom) a comparison function reference.
type SortField struct {
	Expr                        *Expression `json:"expr"`
	Direction                   *int32      `json:"direction"`
	ComparisonFunctionReference *uint32     `json:"comparison_function_reference"`
}

// SortDirection mirrors substrait's SortField.SortDirection enum.
type SortDirection int32

const (
	SortDirectionUnspecified SortDirection = iota
	SortDirectionAscNullsFirst
	SortDirectionAscNullsLast
	SortDirectionDescNullsFirst
	SortDirectionDescNullsLast
	SortDirectionClustered
)

// JoinRel joins Left and Right on the optional Expression, with JoinType
// selecting inner/left/right/outer/semi/anti semantics.
type JoinRel struct {
	Common   *RelCommon  `json:"common"`
	Left     *Rel        `json:"left"`
	Right    *Rel        `json:"right"`
	Expr     *Expression `json:"expression"`
	JoinType int32       `json:"type"`
}

// JoinType enumerates the recognized join kinds, matching substrait's
// JoinRel.JoinType enum.
type JoinType int32

const (
	JoinTypeUnspecified JoinType = iota
	JoinTypeInner
	JoinTypeOuter
	JoinTypeLeft
	JoinTypeRight
	JoinTypeSemi
	JoinTypeAnti
	JoinTypeSingle
)

// ProjectRel appends the results of Expressions to Input's output schema.
type ProjectRel struct {
	Common      *RelCommon   `json:"common"`
	Input       *Rel         `json:"input"`
	Expressions []Expression `json:"expressions"`
}

// SetRel combines N Inputs with set-operation semantics (union/intersect/
// except), requiring schema compatibility across all inputs.
type SetRel struct {
	Common *RelCommon `json:"common"`
	Inputs []Rel      `json:"inputs"`
	Op     int32      `json:"op"`
}

// SetOp enumerates the recognized set operations, matching substrait's
// SetRel.SetOp enum.
type SetOp int32

const (
	SetOpUnspecified SetOp = iota
	SetOpMinusPrimary
	SetOpMinusMultiset
	SetOpIntersectionPrimary
	SetOpIntersectionMultiset
	SetOpUnionDistinct
	SetOpUnionAll
)
