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

func TestSimpleClassEquality(t *testing.T) {
	a := types.NewSimpleClass(types.I32)
	b := types.NewSimpleClass(types.I32)
	c := types.NewSimpleClass(types.I64)
	require.True(t, a.Equal(b))
	require.False(t, a.Equal(c))
	require.Equal(t, "i32", a.String())
}

func TestCompoundClassVariadic(t *testing.T) {
	require.True(t, types.NewCompoundClass(types.Struct).Variadic())
	require.False(t, types.NewCompoundClass(types.List).Variadic())
	require.Equal(t, "list", types.NewCompoundClass(types.List).String())
}

func TestParseSimpleAndCompound(t *testing.T) {
	s, ok := types.ParseSimple("i32")
	require.True(t, ok)
	require.Equal(t, types.I32, s)

	_, ok = types.ParseSimple("not_a_class")
	require.False(t, ok)

	c, ok := types.ParseCompound("decimal")
	require.True(t, ok)
	require.Equal(t, types.Decimal, c)
}

func TestUnresolvedClass(t *testing.T) {
	require.Equal(t, types.ClassUnresolved, types.UnresolvedClass.Kind())
	require.Equal(t, "unresolved", types.UnresolvedClass.String())
	require.True(t, types.UnresolvedClass.Equal(types.UnresolvedClass))
}

func TestUserDefinedClassEquality(t *testing.T) {
	def := &types.TypeClassDef{Identifier: extref.Identifier{URI: "u", Names: []string{"point"}}}
	ref := extref.Reference[types.TypeClassDef]{Name: "point", URI: "u", Definition: def}
	a := types.NewUserDefinedClass(ref)
	b := types.NewUserDefinedClass(extref.Reference[types.TypeClassDef]{Name: "point", URI: "u"})
	require.True(t, a.Equal(b))
	require.Equal(t, "point", a.String())

	_, ok := a.Simple()
	require.False(t, ok)
	_, ok = a.Compound()
	require.False(t, ok)
	gotRef, ok := a.UserDefined()
	require.True(t, ok)
	require.Equal(t, "point", gotRef.Name)
}
