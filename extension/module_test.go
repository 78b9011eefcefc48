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

package extension_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/substrait-io/substrait-validator-go/extension"
	"github.com/substrait-io/substrait-validator-go/extref"
	"github.com/substrait-io/substrait-validator-go/types"
)

func addFunction(t *testing.T, name string) *extension.FunctionDef {
	t.Helper()
	fn := &extension.FunctionDef{
		Identifier: extref.Identifier{Names: []string{name}},
		Kind:       extension.ScalarFunction,
		Overloads: []extension.FunctionOverload{
			{
				Arguments: []types.ParameterSlot{
					{Name: "arg", Pattern: types.WildcardPattern{}},
				},
				ReturnType: types.Program{Final: types.LiteralPattern{
					Value: types.DataTypeValue{Type_: types.NewPredicate()},
				}},
			},
		},
	}
	return fn
}

func TestModuleResolvesLocalFunction(t *testing.T) {
	m := extension.NewModule("urn:example")
	fn := addFunction(t, "is_substr")
	m.Functions.Register("is_substr", fn)
	m.Seal()

	res := m.ResolveFunction("IS_SUBSTR")
	require.Equal(t, extref.KindResolved, res.Kind())
	require.Same(t, fn, res.First())
}

func TestModuleResolvesThroughDependencies(t *testing.T) {
	dep := extension.NewModule("urn:dep")
	fn := addFunction(t, "shared_fn")
	dep.Functions.Register("shared_fn", fn)
	dep.Seal()

	root := extension.NewModule("urn:root")
	root.Dependencies["urn:dep"] = dep
	root.Seal()

	res := root.ResolveFunction("shared_fn")
	require.Equal(t, extref.KindResolved, res.Kind())
}

func TestModuleResolveUnknownIsUnresolved(t *testing.T) {
	m := extension.NewModule("urn:example")
	m.Seal()
	res := m.ResolveFunction("nope")
	require.Equal(t, extref.KindUnresolved, res.Kind())
}

func TestModuleResolutionAmbiguousAcrossDependencies(t *testing.T) {
	dep1 := extension.NewModule("urn:dep1")
	dep1.Functions.Register("dup", addFunction(t, "dup"))
	dep1.Seal()

	dep2 := extension.NewModule("urn:dep2")
	dep2.Functions.Register("dup", addFunction(t, "dup"))
	dep2.Seal()

	root := extension.NewModule("urn:root")
	root.Dependencies["urn:dep1"] = dep1
	root.Dependencies["urn:dep2"] = dep2
	root.Seal()

	res := root.ResolveFunction("dup")
	require.Equal(t, extref.KindAmbiguous, res.Kind())
}

func TestDeriveReturnType(t *testing.T) {
	fn := addFunction(t, "always_bool")
	dt, err := fn.DeriveReturnType([]types.Value{types.IntValue(1)})
	require.NoError(t, err)
	require.True(t, dt.Equal(types.NewPredicate()))

	_, err = fn.DeriveReturnType(nil)
	require.Error(t, err)
}

func TestDependencyCycleDoesNotInfiniteLoop(t *testing.T) {
	a := extension.NewModule("urn:a")
	b := extension.NewModule("urn:b")
	a.Dependencies["urn:b"] = b
	b.Dependencies["urn:a"] = a
	a.Functions.Register("f", addFunction(t, "f"))
	a.Seal()
	b.Seal()

	res := b.ResolveFunction("f")
	require.Equal(t, extref.KindResolved, res.Kind())
}
