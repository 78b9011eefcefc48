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

// Type is the wire representation of a data type reference: exactly one of
// the pointer fields below is set, mirroring substrait's Type oneof. This
// is the pre-resolution counterpart of types.Type (package types owns the
// resolved algebra; planparse/expressions converts between the two).
type Type struct {
	Bool         *TypeNullable    `json:"bool"`
	I8           *TypeNullable    `json:"i8"`
	I16          *TypeNullable    `json:"i16"`
	I32          *TypeNullable    `json:"i32"`
	I64          *TypeNullable    `json:"i64"`
	Fp32         *TypeNullable    `json:"fp32"`
	Fp64         *TypeNullable    `json:"fp64"`
	String_      *TypeNullable    `json:"string"`
	Binary       *TypeNullable    `json:"binary"`
	Timestamp    *TypeNullable    `json:"timestamp"`
	Date         *TypeNullable    `json:"date"`
	Time         *TypeNullable    `json:"time"`
	IntervalYear *TypeNullable    `json:"interval_year"`
	IntervalDay  *TypeNullable    `json:"interval_day"`
	UUID         *TypeNullable    `json:"uuid"`
	FixedChar    *TypeFixedLen    `json:"fixed_char"`
	Varchar      *TypeFixedLen    `json:"varchar"`
	FixedBinary  *TypeFixedLen    `json:"fixed_binary"`
	Decimal      *TypeDecimal     `json:"decimal"`
	Struct       *TypeStruct      `json:"struct"`
	List         *TypeList        `json:"list"`
	Map          *TypeMap         `json:"map"`
	UserDefined  *TypeUserDefined `json:"user_defined"`
}

// TypeNullable is the common shape of every simple (parameterless) type
// variant: a nullability flag plus an optional type variation anchor.
type TypeNullable struct {
	Nullability            int32  `json:"nullability"`
	TypeVariationReference uint32 `json:"type_variation_reference"`
}

// TypeFixedLen is shared by varchar/fixed_char/fixed_binary, all of which
// take one length parameter.
type TypeFixedLen struct {
	Length                 int32  `json:"length"`
	Nullability            int32  `json:"nullability"`
	TypeVariationReference uint32 `json:"type_variation_reference"`
}

// TypeDecimal carries precision/scale parameters.
type TypeDecimal struct {
	Scale                  int32  `json:"scale"`
	Precision              int32  `json:"precision"`
	Nullability            int32  `json:"nullability"`
	TypeVariationReference uint32 `json:"type_variation_reference"`
}

// TypeStruct lists the types of its fields, in order; field names are
// carried separately by NamedStruct.
type TypeStruct struct {
	Types                  []Type `json:"types"`
	Nullability            int32  `json:"nullability"`
	TypeVariationReference uint32 `json:"type_variation_reference"`
}

// TypeList carries its element type.
type TypeList struct {
	Type                   *Type  `json:"type"`
	Nullability            int32  `json:"nullability"`
	TypeVariationReference uint32 `json:"type_variation_reference"`
}

// TypeMap carries its key and value types.
type TypeMap struct {
	Key                    *Type  `json:"key"`
	Value                  *Type  `json:"value"`
	Nullability            int32  `json:"nullability"`
	TypeVariationReference uint32 `json:"type_variation_reference"`
}

// TypeUserDefined references an extension-defined type class by anchor,
// with its actual parameter values.
type TypeUserDefined struct {
	TypeReference          uint32          `json:"type_reference"`
	TypeParameters         []TypeParameter `json:"type_parameters"`
	Nullability            int32           `json:"nullability"`
	TypeVariationReference uint32          `json:"type_variation_reference"`
}

// TypeParameter is one actual parameter of a user-defined type, itself
// possibly a nested data type, an integer, or an enum/string identifier.
type TypeParameter struct {
	DataType *Type   `json:"data_type"`
	Boolean  *bool   `json:"boolean"`
	Integer  *int64  `json:"integer"`
	Enum     *string `json:"enum"`
	String_  *string `json:"string"`
	Null     *Type   `json:"null"`
}

// Nullability mirrors substrait's Type.Nullability enum.
type Nullability int32

const (
	NullabilityUnspecified Nullability = iota
	NullabilityNullable
	NullabilityRequired
)
