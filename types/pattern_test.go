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

package types_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/substrait-io/substrait-validator-go/extref"
	"github.com/substrait-io/substrait-validator-go/types"
)

func TestLiteralPattern(t *testing.T) {
	ctx := types.NewContext()
	pat := types.LiteralPattern{Value: types.IntValue(7)}

	v, err := pat.Evaluate(ctx)
	require.NoError(t, err)
	require.Equal(t, types.IntValue(7), v)

	ok, err := pat.Match(ctx, types.IntValue(7))
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = pat.Match(ctx, types.IntValue(8))
	require.NoError(t, err)
	require.False(t, ok)
}

func TestBindingPatternBindsThenChecks(t *testing.T) {
	ctx := types.NewContext()
	pat := types.BindingPattern{Name: "n"}

	ok, err := pat.Match(ctx, types.IntValue(3))
	require.NoError(t, err)
	require.True(t, ok)

	v, err := pat.Evaluate(ctx)
	require.NoError(t, err)
	require.Equal(t, types.IntValue(3), v)

	ok, err = pat.Match(ctx, types.IntValue(4))
	require.NoError(t, err)
	require.False(t, ok, "a second, differing match against an already-bound variable must fail")
}

func TestWildcardMatchesAnything(t *testing.T) {
	ctx := types.NewContext()
	ok, err := types.WildcardPattern{}.Match(ctx, types.StringValue("anything"))
	require.NoError(t, err)
	require.True(t, ok)
}

func TestIntRangePattern(t *testing.T) {
	ctx := types.NewContext()
	pat := types.IntRangePattern{Min: 1, Max: 3}

	ok, _ := pat.Match(ctx, types.IntValue(2))
	require.True(t, ok)

	ok, _ = pat.Match(ctx, types.IntValue(4))
	require.False(t, ok)

	ok, _ = pat.Match(ctx, types.StringValue("no"))
	require.False(t, ok)
}

func TestEnumSetPatternIsCaseInsensitive(t *testing.T) {
	ctx := types.NewContext()
	pat := types.EnumSetPattern{Variants: []string{"SUM", "Count"}}

	ok, _ := pat.Match(ctx, types.EnumValue("sum"))
	require.True(t, ok)

	ok, _ = pat.Match(ctx, types.EnumValue("avg"))
	require.False(t, ok)
}

func TestDataTypePatternMatchRollsBackOnFailure(t *testing.T) {
	ctx := types.NewContext()
	pat := types.DataTypePattern{
		Class:         &[]types.Class{types.NewCompoundClass(types.Decimal)}[0],
		ParamPatterns: []types.Pattern{types.BindingPattern{Name: "p"}, types.IntRangePattern{Min: 100, Max: 200}},
	}

	decimalType, err := types.New(types.NewCompoundClass(types.Decimal), false, types.SystemPreferredVariation,
		[]types.Parameter{types.UnnamedParameter(types.IntValue(10)), types.UnnamedParameter(types.IntValue(2))}, nil)
	require.NoError(t, err)

	ok, err := pat.Match(ctx, types.DataTypeValue{Type_: decimalType})
	require.NoError(t, err)
	require.False(t, ok, "second parameter (2) is outside 100..200")

	_, bound := ctx.Get("p")
	require.False(t, bound, "a failed structural match must not leave partial bindings")
}

func TestDataTypePatternMatchesVariation(t *testing.T) {
	ctx := types.NewContext()
	intClass := types.NewSimpleClass(types.I32)
	systemPreferred := types.SystemPreferredVariation
	pat := types.DataTypePattern{Class: &intClass, Variation: &systemPreferred}

	ok, err := pat.Match(ctx, types.DataTypeValue{Type_: types.Type{Class: intClass, Variation: types.SystemPreferredVariation}})
	require.NoError(t, err)
	require.True(t, ok)

	userDefined := types.NewUserDefinedVariation(extref.Reference[types.UserDefinedVariationDef]{URI: "u", Name: "v"})
	ok, err = pat.Match(ctx, types.DataTypeValue{Type_: types.Type{Class: intClass, Variation: userDefined}})
	require.NoError(t, err)
	require.False(t, ok, "a pattern pinned to system-preferred must reject a user-defined variation")
}

func TestDataTypePatternMatchSucceedsAndBinds(t *testing.T) {
	ctx := types.NewContext()
	decimalClass := types.NewCompoundClass(types.Decimal)
	pat := types.DataTypePattern{
		Class:         &decimalClass,
		ParamPatterns: []types.Pattern{types.BindingPattern{Name: "precision"}, types.BindingPattern{Name: "scale"}},
	}

	decimalType, err := types.New(decimalClass, false, types.SystemPreferredVariation,
		[]types.Parameter{types.UnnamedParameter(types.IntValue(10)), types.UnnamedParameter(types.IntValue(2))}, nil)
	require.NoError(t, err)

	ok, err := pat.Match(ctx, types.DataTypeValue{Type_: decimalType})
	require.NoError(t, err)
	require.True(t, ok)

	v, ok := ctx.Get("precision")
	require.True(t, ok)
	require.Equal(t, types.IntValue(10), v)
}
