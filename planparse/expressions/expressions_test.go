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

package expressions_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/substrait-io/substrait-validator-go/extbind"
	"github.com/substrait-io/substrait-validator-go/input"
	"github.com/substrait-io/substrait-validator-go/parsectx"
	"github.com/substrait-io/substrait-validator-go/planparse/expressions"
	"github.com/substrait-io/substrait-validator-go/tree"
	"github.com/substrait-io/substrait-validator-go/types"
)

func newTestContext(t *testing.T) *parsectx.Context {
	t.Helper()
	state := parsectx.NewState(nil, nil)
	return parsectx.Root(state, "test", tree.NodeProtoMessage)
}

func TestParseLiteralInt32(t *testing.T) {
	c := newTestContext(t)
	v := int32(42)
	typ, text := expressions.Parse(c, &input.Expression{Literal: &input.Literal{I32: &v}}, types.Type{}, extbind.New())
	require.Equal(t, "42", text)
	s, ok := typ.Class.Simple()
	require.True(t, ok)
	require.Equal(t, types.I32, s)
	require.False(t, typ.Nullable)
}

func TestParseFieldReferenceOutOfRange(t *testing.T) {
	c := newTestContext(t)
	schema := types.NewStruct([]types.Type{types.NewIntegerWithNullability(false)}, false)

	typ, _ := expressions.Parse(c, &input.Expression{
		Selection: &input.FieldReference{
			DirectReference: &input.ReferenceSegment{
				StructField: &input.StructFieldSegment{Field: 5},
			},
		},
	}, schema, extbind.New())

	require.True(t, typ.IsUnresolvedType())
	require.Len(t, c.Node().Diagnostics, 1)
	require.Equal(t, "error", c.Node().Diagnostics[0].Severity.String())
}

func TestParseFieldReferenceResolves(t *testing.T) {
	c := newTestContext(t)
	schema := types.NewStruct([]types.Type{types.NewPredicateWithNullability(true)}, false)

	typ, text := expressions.Parse(c, &input.Expression{
		Selection: &input.FieldReference{
			DirectReference: &input.ReferenceSegment{
				StructField: &input.StructFieldSegment{Field: 0},
			},
		},
	}, schema, extbind.New())

	require.Equal(t, "$0", text)
	s, ok := typ.Class.Simple()
	require.True(t, ok)
	require.Equal(t, types.Bool, s)
	require.True(t, typ.Nullable)
}

func TestParseTypeDecimalIsBoundsChecked(t *testing.T) {
	c := newTestContext(t)
	typ := expressions.ParseType(c, &input.Type{
		Decimal: &input.TypeDecimal{Precision: 10, Scale: 2},
	}, extbind.New())
	require.Equal(t, "decimal<10, 2>", typ.String())
	require.Empty(t, c.Node().Diagnostics)

	bad := newTestContext(t)
	typ = expressions.ParseType(bad, &input.Type{
		Decimal: &input.TypeDecimal{Precision: 99, Scale: 2},
	}, extbind.New())
	require.True(t, typ.IsUnresolvedType())
	require.NotEmpty(t, bad.Node().Diagnostics)

	swapped := newTestContext(t)
	typ = expressions.ParseType(swapped, &input.Type{
		Decimal: &input.TypeDecimal{Precision: 4, Scale: 7},
	}, extbind.New())
	require.True(t, typ.IsUnresolvedType())
	require.NotEmpty(t, swapped.Node().Diagnostics)
}

func TestParseTypeFixedLenIsBoundsChecked(t *testing.T) {
	c := newTestContext(t)
	typ := expressions.ParseType(c, &input.Type{
		Varchar: &input.TypeFixedLen{Length: 80},
	}, extbind.New())
	require.Equal(t, "varchar<80>", typ.String())
	require.Empty(t, c.Node().Diagnostics)

	bad := newTestContext(t)
	typ = expressions.ParseType(bad, &input.Type{
		Varchar: &input.TypeFixedLen{Length: 0},
	}, extbind.New())
	require.True(t, typ.IsUnresolvedType())
	require.NotEmpty(t, bad.Node().Diagnostics)
}

func TestParseLiteralDecimalFitChecking(t *testing.T) {
	c := newTestContext(t)
	typ, text := expressions.Parse(c, &input.Expression{
		Literal: &input.Literal{Decimal: &input.LiteralDecimal{Value: "12.34", Precision: 4, Scale: 2}},
	}, types.Type{}, extbind.New())
	require.Equal(t, "12.34", text)
	require.Equal(t, "decimal<4, 2>", typ.String())
	require.Empty(t, c.Node().Diagnostics)

	tooBig := newTestContext(t)
	expressions.Parse(tooBig, &input.Expression{
		Literal: &input.Literal{Decimal: &input.LiteralDecimal{Value: "123.45", Precision: 4, Scale: 2}},
	}, types.Type{}, extbind.New())
	require.NotEmpty(t, tooBig.Node().Diagnostics)

	notANumber := newTestContext(t)
	expressions.Parse(notANumber, &input.Expression{
		Literal: &input.Literal{Decimal: &input.LiteralDecimal{Value: "twelve", Precision: 4, Scale: 2}},
	}, types.Type{}, extbind.New())
	require.NotEmpty(t, notANumber.Node().Diagnostics)
}

func TestParseTypeStructRoundTrips(t *testing.T) {
	c := newTestContext(t)
	nullable := int32(input.NullabilityNullable)
	wire := &input.Type{
		Struct: &input.TypeStruct{
			Types:       []input.Type{{I32: &input.TypeNullable{Nullability: nullable}}},
			Nullability: int32(input.NullabilityRequired),
		},
	}
	typ := expressions.ParseType(c, wire, extbind.New())
	require.False(t, typ.Nullable)
	require.Len(t, typ.Parameters, 1)
	inner, ok := types.GetDataType(typ.Parameters[0].Value)
	require.True(t, ok)
	require.True(t, inner.Nullable)
}
