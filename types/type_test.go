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

	"github.com/substrait-io/substrait-validator-go/types"
)

func TestNewStructEquality(t *testing.T) {
	a := types.NewStruct([]types.Type{types.NewInteger(), types.NewPredicate()}, false)
	b := types.NewStruct([]types.Type{types.NewInteger(), types.NewPredicate()}, false)
	require.True(t, a.Equal(b))

	c := types.NewStruct([]types.Type{types.NewInteger()}, false)
	require.False(t, a.Equal(c))
}

func TestApplyAndStripFieldNames(t *testing.T) {
	s := types.NewStruct([]types.Type{types.NewInteger(), types.NewPredicate()}, false)

	named, err := s.ApplyFieldNames([]string{"a", "b"})
	require.NoError(t, err)
	names, ok := named.FieldNames()
	require.True(t, ok)
	require.Equal(t, []string{"a", "b"}, names)

	_, err = s.ApplyFieldNames([]string{"only_one"})
	require.Error(t, err)

	stripped := named.StripFieldNames()
	_, ok = stripped.FieldNames()
	require.False(t, ok)
}

func TestListAndMapConstructors(t *testing.T) {
	l := types.NewList(types.NewInteger(), false)
	cls, ok := l.Class.Compound()
	require.True(t, ok)
	require.Equal(t, types.List, cls)
	require.Len(t, l.Parameters, 1)

	m := types.NewMap(types.NewInteger(), types.NewPredicate(), true)
	cls, ok = m.Class.Compound()
	require.True(t, ok)
	require.Equal(t, types.Map, cls)
	require.Len(t, m.Parameters, 2)
	require.True(t, m.Nullable)
}

func TestUnresolvedType(t *testing.T) {
	u := types.NewUnresolvedType()
	require.True(t, u.IsUnresolvedType())
	require.False(t, types.NewInteger().IsUnresolvedType())
}

func TestNewValidatesParameters(t *testing.T) {
	slots := []types.ParameterSlot{
		{Name: "scale", Pattern: types.IntRangePattern{Min: 0, Max: 38}},
	}
	_, err := types.New(types.NewCompoundClass(types.Decimal), false, types.SystemPreferredVariation,
		[]types.Parameter{types.UnnamedParameter(types.IntValue(10))}, slots)
	require.NoError(t, err)

	_, err = types.New(types.NewCompoundClass(types.Decimal), false, types.SystemPreferredVariation,
		[]types.Parameter{types.UnnamedParameter(types.IntValue(100))}, slots)
	require.Error(t, err)

	_, err = types.New(types.NewCompoundClass(types.Decimal), false, types.SystemPreferredVariation, nil, slots)
	require.Error(t, err)
}

func TestTypeString(t *testing.T) {
	require.Equal(t, "i32", types.NewInteger().String())
	require.Equal(t, "i32?", types.NewIntegerWithNullability(true).String())
}
