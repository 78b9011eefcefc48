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

func TestSystemPreferredVariation(t *testing.T) {
	require.Equal(t, types.SystemPreferred, types.SystemPreferredVariation.Kind())
	require.True(t, types.SystemPreferredVariation.CompatibleWithSystemPreferred())
	require.Equal(t, "0", types.SystemPreferredVariation.String())
}

func TestUserDefinedVariationCompatibility(t *testing.T) {
	base := types.NewSimpleClass(types.I32)
	inherits := &types.UserDefinedVariationDef{Base: base, FunctionBehavior: types.Inherits}
	separate := &types.UserDefinedVariationDef{Base: base, FunctionBehavior: types.Separate}

	v1 := types.NewUserDefinedVariation(extref.Reference[types.UserDefinedVariationDef]{Name: "a", URI: "u", Definition: inherits})
	require.True(t, v1.CompatibleWithSystemPreferred())

	v2 := types.NewUserDefinedVariation(extref.Reference[types.UserDefinedVariationDef]{Name: "b", URI: "u", Definition: separate})
	require.False(t, v2.CompatibleWithSystemPreferred())

	unresolved := types.NewUserDefinedVariation(extref.Unresolved[types.UserDefinedVariationDef]("c", "u"))
	require.True(t, unresolved.CompatibleWithSystemPreferred())
}

func TestResolveVariationByClass(t *testing.T) {
	i32 := types.NewSimpleClass(types.I32)
	i64 := types.NewSimpleClass(types.I64)
	defs := []*types.UserDefinedVariationDef{
		{Base: i64, Identifier: extref.Identifier{Names: []string{"x"}}},
		{Base: i32, Identifier: extref.Identifier{Names: []string{"x"}}},
	}

	ref := types.ResolveVariationByClass(defs, "x", "u", i32)
	require.True(t, ref.Resolved())
	require.True(t, ref.Definition.Base.Equal(i32))

	missing := types.ResolveVariationByClass(defs, "x", "u", types.NewSimpleClass(types.Bool))
	require.False(t, missing.Resolved())
}
