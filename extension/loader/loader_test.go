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

package loader_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/substrait-io/substrait-validator-go/diag"
	"github.com/substrait-io/substrait-validator-go/extension/loader"
	"github.com/substrait-io/substrait-validator-go/extref"
	"github.com/substrait-io/substrait-validator-go/path"
	"github.com/substrait-io/substrait-validator-go/types"
)

const rootDoc = `
name: root_extensions
dependencies:
  geo: urn:example:geo
types:
  - name: point
scalar_functions:
  - name: is_substr
    impls:
      - args:
          - name: needle
          - name: haystack
        variadic: false
`

const geoDoc = `
name: geo_extensions
type_variations:
  - name: geography
    base: i32
`

func fakeResolver(docs map[string]string) loader.Resolver {
	return func(_ context.Context, uri string) ([]byte, error) {
		doc, ok := docs[uri]
		if !ok {
			return nil, fmt.Errorf("no document registered for %s", uri)
		}
		return []byte(doc), nil
	}
}

func TestLoadBuildsModuleAndDependencies(t *testing.T) {
	docs := map[string]string{
		"urn:example:root": rootDoc,
		"urn:example:geo":  geoDoc,
	}
	l := loader.New(fakeResolver(docs))

	module, diags, err := l.Load(context.Background(), "urn:example:root", path.WithRoot("urn:example:root"))
	require.NoError(t, err)
	require.Empty(t, diags)
	require.NotNil(t, module)

	res := module.TypeClasses.ResolveLocal("point")
	require.Equal(t, extref.KindResolved, res.Kind())

	fn := module.Functions.ResolveLocal("is_substr")
	require.Equal(t, extref.KindResolved, fn.Kind())

	dep, ok := module.Dependencies["urn:example:geo"]
	require.True(t, ok)
	variation := dep.TypeVariations.ResolveLocal("geography")
	require.Equal(t, extref.KindResolved, variation.Kind())
}

func TestLoadCachesAndLinksRepeatUse(t *testing.T) {
	docs := map[string]string{"urn:example:geo": geoDoc}
	l := loader.New(fakeResolver(docs))
	root := path.WithRoot("plan")

	first, diags, err := l.Load(context.Background(), "urn:example:geo", root.WithField("a"))
	require.NoError(t, err)
	require.Empty(t, diags)

	second, diags, err := l.Load(context.Background(), "urn:example:geo", root.WithField("b"))
	require.NoError(t, err)
	require.Len(t, diags, 1)
	require.Same(t, first, second)
}

const mathDoc = `
name: math_extensions
scalar_functions:
  - name: add_decimal
    impls:
      - args:
          - name: a
            value: decimal<P1, S1>
          - name: b
            value: decimal<P2, S2>
        return: |-
          init_scale = max(S1, S2)
          init_prec = init_scale + max(P1 - S1, P2 - S2) + 1
          min_scale = min(init_scale, 6)
          delta = init_prec - 38
          prec = min(init_prec, 38)
          scale_after_borrow = max(init_scale - delta, min_scale)
          scale = if init_prec > 38 then scale_after_borrow else init_scale
          DECIMAL<prec, scale>
  - name: broken
    impls:
      - args:
          - name: x
            value: "@not a type"
        return: "= nope"
`

func decimalOf(t *testing.T, precision, scale int64) types.Type {
	t.Helper()
	dt, err := types.New(types.NewCompoundClass(types.Decimal), false, types.SystemPreferredVariation,
		[]types.Parameter{types.UnnamedParameter(types.IntValue(precision)), types.UnnamedParameter(types.IntValue(scale))}, nil)
	require.NoError(t, err)
	return dt
}

func TestLoadParsesArgumentAndReturnDerivations(t *testing.T) {
	docs := map[string]string{"urn:example:math": mathDoc}
	l := loader.New(fakeResolver(docs))

	module, diags, err := l.Load(context.Background(), "urn:example:math", path.WithRoot("urn:example:math"))
	require.NoError(t, err)
	require.NotNil(t, module)

	fn := module.Functions.ResolveLocal("add_decimal")
	require.Equal(t, extref.KindResolved, fn.Kind())
	def := fn.Candidates[0]

	result, err := def.DeriveReturnType([]types.Value{
		types.DataTypeValue{Type_: decimalOf(t, 12, 3)},
		types.DataTypeValue{Type_: decimalOf(t, 10, 5)},
	})
	require.NoError(t, err)
	require.Equal(t, "decimal<15, 5>", result.String())

	// A non-decimal argument does not admit the only overload.
	_, err = def.DeriveReturnType([]types.Value{
		types.DataTypeValue{Type_: types.NewInteger()},
		types.DataTypeValue{Type_: types.NewInteger()},
	})
	require.Error(t, err)

	// The broken sibling degrades to wildcard/unresolved with warnings,
	// but still resolves by name.
	broken := module.Functions.ResolveLocal("broken")
	require.Equal(t, extref.KindResolved, broken.Kind())
	require.NotEmpty(t, diags)
	for _, d := range diags {
		require.Equal(t, diag.Warning, d.Severity)
	}
	unresolvedReturn, err := broken.Candidates[0].DeriveReturnType([]types.Value{types.DataTypeValue{Type_: types.NewInteger()}})
	require.NoError(t, err)
	require.True(t, unresolvedReturn.IsUnresolvedType())
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	docs := map[string]string{"urn:example:bad": "types: [unterminated"}
	l := loader.New(fakeResolver(docs))

	module, diags, err := l.Load(context.Background(), "urn:example:bad", path.WithRoot("plan"))
	require.NoError(t, err)
	require.Nil(t, module)
	require.NotEmpty(t, diags)
}

func TestLoadRejectsNonStringMapKeys(t *testing.T) {
	docs := map[string]string{"urn:example:intkey": "1: x"}
	l := loader.New(fakeResolver(docs))

	module, diags, err := l.Load(context.Background(), "urn:example:intkey", path.WithRoot("plan"))
	require.NoError(t, err)
	require.Nil(t, module)
	require.Len(t, diags, 1)
	require.Equal(t, diag.Error, diags[0].Severity)
	require.Equal(t, diag.YamlParseFailed, diags[0].Cause)
	require.Contains(t, diags[0].Message, "non-string map keys are not supported")
}

func TestLoadRejectsTaggedValues(t *testing.T) {
	docs := map[string]string{"urn:example:tagged": "name: !custom hello"}
	l := loader.New(fakeResolver(docs))

	module, diags, err := l.Load(context.Background(), "urn:example:tagged", path.WithRoot("plan"))
	require.NoError(t, err)
	require.Nil(t, module)
	require.Len(t, diags, 1)
	require.Equal(t, diag.Error, diags[0].Severity)
	require.Equal(t, diag.YamlParseFailed, diags[0].Cause)
	require.Contains(t, diags[0].Message, "tagged values are not supported")
}

func TestLoadSurfacesResolverErrorAsGoError(t *testing.T) {
	l := loader.New(fakeResolver(nil))
	_, _, err := l.Load(context.Background(), "urn:example:missing", path.WithRoot("plan"))
	require.Error(t, err)
}
