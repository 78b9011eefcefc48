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

// Expression is a scalar expression node: exactly one pointer field is
// set, mirroring substrait's Expression oneof.
type Expression struct {
	Literal        *Literal        `json:"literal"`
	Selection      *FieldReference `json:"selection"`
	ScalarFunction *ScalarFunction `json:"scalar_function"`
	Cast           *Cast           `json:"cast"`
}

// Literal is a constant value, carrying its own (possibly inferred) type.
type Literal struct {
	Boolean  *bool           `json:"boolean"`
	I8       *int32          `json:"i8"`
	I16      *int32          `json:"i16"`
	I32      *int32          `json:"i32"`
	I64      *int64          `json:"i64"`
	Fp32     *float32        `json:"fp32"`
	Fp64     *float64        `json:"fp64"`
	String_  *string         `json:"string"`
	Binary   []byte          `json:"binary"`
	Decimal  *LiteralDecimal `json:"decimal"`
	Null     *Type           `json:"null"`
	Nullable bool            `json:"nullable"`
}

// LiteralDecimal carries a decimal literal as its decimal string rendering
// plus the declared precision and scale the value must fit.
type LiteralDecimal struct {
	Value     string `json:"value"`
	Precision int32  `json:"precision"`
	Scale     int32  `json:"scale"`
}

// FieldReference selects a field of the input schema by ordinal position
// within a (possibly nested) struct, the direct/masked-reference shape
// substrait uses for column references.
type FieldReference struct {
	DirectReference *ReferenceSegment `json:"direct_reference"`
}

// ReferenceSegment is one step of a field reference: a struct field index,
// optionally followed by a nested child segment.
type ReferenceSegment struct {
	StructField *StructFieldSegment `json:"struct_field"`
}

// StructFieldSegment addresses the Field-th element of the enclosing
// struct, continuing into Child if set.
type StructFieldSegment struct {
	Field int32             `json:"field"`
	Child *ReferenceSegment `json:"child"`
}

// ScalarFunction invokes a resolved scalar function by anchor over
// Arguments, each an expression in its own right.
type ScalarFunction struct {
	FunctionReference uint32       `json:"function_reference"`
	Arguments         []Expression `json:"arguments"`
	OutputType        *Type        `json:"output_type"`
}

// Cast requests a type coercion of Input to Type, with FailureBehavior
// selecting whether an invalid cast is an error or yields null.
type Cast struct {
	Type            *Type       `json:"type"`
	Input           *Expression `json:"input"`
	FailureBehavior int32       `json:"failure_behavior"`
}
