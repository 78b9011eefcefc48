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

// Package expressions parses scalar expressions and converts the
// wire-shaped input.Type into the resolved types.Type algebra.
package expressions

import (
	"github.com/substrait-io/substrait-validator-go/diag"
	"github.com/substrait-io/substrait-validator-go/extbind"
	"github.com/substrait-io/substrait-validator-go/input"
	"github.com/substrait-io/substrait-validator-go/parsectx"
	"github.com/substrait-io/substrait-validator-go/types"
)

// ParseType converts a wire-shaped input.Type into a resolved types.Type,
// resolving any user-defined type class/variation anchors through b. A nil
// t yields the unresolved type with a ProtoMissingField diagnostic, mirroring
// how every other local failure in this codebase degrades.
func ParseType(c *parsectx.Context, t *input.Type, b *extbind.Bindings) types.Type {
	if t == nil {
		c.Diagnose(diag.Error, diag.ProtoMissingField, "type")
		return types.NewUnresolvedType()
	}
	switch {
	case t.Bool != nil:
		return simpleType(types.Bool, t.Bool.Nullability)
	case t.I8 != nil:
		return simpleType(types.I8, t.I8.Nullability)
	case t.I16 != nil:
		return simpleType(types.I16, t.I16.Nullability)
	case t.I32 != nil:
		return simpleType(types.I32, t.I32.Nullability)
	case t.I64 != nil:
		return simpleType(types.I64, t.I64.Nullability)
	case t.Fp32 != nil:
		return simpleType(types.FP32, t.Fp32.Nullability)
	case t.Fp64 != nil:
		return simpleType(types.FP64, t.Fp64.Nullability)
	case t.String_ != nil:
		return simpleType(types.Str, t.String_.Nullability)
	case t.Binary != nil:
		return simpleType(types.Binary, t.Binary.Nullability)
	case t.Timestamp != nil:
		return simpleType(types.Timestamp, t.Timestamp.Nullability)
	case t.Date != nil:
		return simpleType(types.Date, t.Date.Nullability)
	case t.Time != nil:
		return simpleType(types.Time, t.Time.Nullability)
	case t.IntervalYear != nil:
		return simpleType(types.IntervalYear, t.IntervalYear.Nullability)
	case t.IntervalDay != nil:
		return simpleType(types.IntervalDay, t.IntervalDay.Nullability)
	case t.UUID != nil:
		return simpleType(types.UUID, t.UUID.Nullability)
	case t.FixedChar != nil:
		return fixedLenType(c, types.FixedChar, t.FixedChar, b)
	case t.Varchar != nil:
		return fixedLenType(c, types.Varchar, t.Varchar, b)
	case t.FixedBinary != nil:
		return fixedLenType(c, types.FixedBinary, t.FixedBinary, b)
	case t.Decimal != nil:
		return decimalType(c, t.Decimal, b)
	case t.Struct != nil:
		return structType(c, t.Struct, b)
	case t.List != nil:
		return listType(c, t.List, b)
	case t.Map != nil:
		return mapType(c, t.Map, b)
	case t.UserDefined != nil:
		return userDefinedType(c, t.UserDefined, b)
	default:
		c.Diagnose(diag.Error, diag.ProtoMissingField, "type")
		return types.NewUnresolvedType()
	}
}

func nullable(n int32) bool {
	return input.Nullability(n) == input.NullabilityNullable
}

func simpleType(s types.Simple, n int32) types.Type {
	return types.Type{Class: types.NewSimpleClass(s), Nullable: nullable(n), Variation: types.SystemPreferredVariation}
}

func variationFor(c *parsectx.Context, anchor uint32, b *extbind.Bindings) types.Variation {
	if anchor == 0 {
		return types.SystemPreferredVariation
	}
	return b.LookupTypeVariation(c, anchor)
}

func fixedLenType(c *parsectx.Context, cls types.Compound, t *input.TypeFixedLen, b *extbind.Bindings) types.Type {
	out, err := types.New(types.NewCompoundClass(cls), nullable(t.Nullability),
		variationFor(c, t.TypeVariationReference, b),
		[]types.Parameter{types.UnnamedParameter(types.IntValue(t.Length))},
		cls.ParameterSlots())
	if err != nil {
		c.Diagnose(diag.Error, diag.TypeMismatchedParameters, err.Error())
		return types.NewUnresolvedType()
	}
	return out
}

func decimalType(c *parsectx.Context, t *input.TypeDecimal, b *extbind.Bindings) types.Type {
	out, err := types.NewDecimal(int64(t.Precision), int64(t.Scale),
		nullable(t.Nullability), variationFor(c, t.TypeVariationReference, b))
	if err != nil {
		c.Diagnose(diag.Error, diag.TypeMismatchedParameters, err.Error())
		return types.NewUnresolvedType()
	}
	return out
}

func structType(c *parsectx.Context, t *input.TypeStruct, b *extbind.Bindings) types.Type {
	fields := make([]types.Type, len(t.Types))
	for i := range t.Types {
		fields[i] = ParseType(c, &t.Types[i], b)
	}
	out := types.NewStruct(fields, nullable(t.Nullability))
	out.Variation = variationFor(c, t.TypeVariationReference, b)
	return out
}

func listType(c *parsectx.Context, t *input.TypeList, b *extbind.Bindings) types.Type {
	elem := ParseType(c, t.Type, b)
	out := types.NewList(elem, nullable(t.Nullability))
	out.Variation = variationFor(c, t.TypeVariationReference, b)
	return out
}

func mapType(c *parsectx.Context, t *input.TypeMap, b *extbind.Bindings) types.Type {
	key := ParseType(c, t.Key, b)
	value := ParseType(c, t.Value, b)
	out := types.NewMap(key, value, nullable(t.Nullability))
	out.Variation = variationFor(c, t.TypeVariationReference, b)
	return out
}

func userDefinedType(c *parsectx.Context, t *input.TypeUserDefined, b *extbind.Bindings) types.Type {
	cls := b.LookupTypeClass(c, t.TypeReference)
	params := make([]types.Parameter, len(t.TypeParameters))
	for i, p := range t.TypeParameters {
		params[i] = userDefinedParameter(c, &p, b)
	}
	return types.Type{
		Class:      cls,
		Nullable:   nullable(t.Nullability),
		Variation:  variationFor(c, t.TypeVariationReference, b),
		Parameters: params,
	}
}

func userDefinedParameter(c *parsectx.Context, p *input.TypeParameter, b *extbind.Bindings) types.Parameter {
	switch {
	case p.DataType != nil:
		return types.UnnamedParameter(types.DataTypeValue{Type_: ParseType(c, p.DataType, b)})
	case p.Boolean != nil:
		return types.UnnamedParameter(types.BoolValue(*p.Boolean))
	case p.Integer != nil:
		return types.UnnamedParameter(types.IntValue(*p.Integer))
	case p.Enum != nil:
		return types.UnnamedParameter(types.EnumValue(*p.Enum))
	case p.String_ != nil:
		return types.UnnamedParameter(types.StringValue(*p.String_))
	case p.Null != nil:
		return types.NullParameter()
	default:
		c.Diagnose(diag.Warning, diag.IllegalValue, "type parameter has no value set")
		return types.NullParameter()
	}
}
