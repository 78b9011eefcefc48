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

package extref_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/substrait-io/substrait-validator-go/extref"
)

type fakeDef struct {
	Value int
}

func TestNamespaceResolutionArity(t *testing.T) {
	var ns extref.Namespace[fakeDef]

	require.Equal(t, extref.KindUnresolved, ns.ResolveLocal("func").Kind())

	ns.Register("func", &fakeDef{Value: 1})
	require.Equal(t, extref.KindResolved, ns.ResolveLocal("FUNC").Kind())

	ns.Register("FUNC", &fakeDef{Value: 2})
	result := ns.ResolveLocal("func")
	require.Equal(t, extref.KindAmbiguous, result.Kind())
	require.Equal(t, 1, result.First().Value)
	require.Len(t, result.Candidates, 2)
}

func TestNamespaceSealPanicsOnRegister(t *testing.T) {
	var ns extref.Namespace[fakeDef]
	ns.Seal()
	require.Panics(t, func() {
		ns.Register("x", &fakeDef{})
	})
}

func TestReferenceResolved(t *testing.T) {
	unresolved := extref.Unresolved[fakeDef]("foo", "https://example.com")
	require.False(t, unresolved.Resolved())

	resolved := extref.Reference[fakeDef]{Name: "foo", Definition: &fakeDef{Value: 42}}
	require.True(t, resolved.Resolved())
}

func TestIdentifierHasName(t *testing.T) {
	id := extref.Identifier{Names: []string{"Add", "plus"}}
	require.True(t, id.HasName("add"))
	require.True(t, id.HasName("PLUS"))
	require.False(t, id.HasName("subtract"))
}
