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

package parsectx_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/substrait-io/substrait-validator-go/diag"
	"github.com/substrait-io/substrait-validator-go/parsectx"
	"github.com/substrait-io/substrait-validator-go/tree"
)

func newTestContext(t *testing.T) *parsectx.Context {
	t.Helper()
	state := parsectx.NewState(nil, nil)
	return parsectx.Root(state, "test-plan", tree.NodeProtoMessage)
}

func TestFieldWiresChildAndMarksParsed(t *testing.T) {
	c := newTestContext(t)

	child := parsectx.Field(c, "offset", int32(5), tree.NodeProtoPrimitive, func(cc *parsectx.Context, v int32) {
		cc.Node().SetSummary("offset")
	})

	require.True(t, c.IsParsed("offset"))
	require.Len(t, c.Node().Children, 1)
	require.Same(t, child, c.Node().Children[0].Node)
	require.Equal(t, "offset", child.Summary)
}

func TestRequiredFieldDiagnosesMissing(t *testing.T) {
	c := newTestContext(t)

	parsectx.RequiredField(c, "input", "", func(s string) bool { return s == "" }, tree.NodeProtoMessage, func(*parsectx.Context, string) {})

	require.Len(t, c.Node().Children, 1)
	diags := c.Node().Children[0].Node.Diagnostics
	require.Empty(t, diags, "the diagnostic is attached to the parent, not the (possibly still empty) child")
	require.Len(t, c.Node().Diagnostics, 1)
	require.Equal(t, diag.Error, c.Node().Diagnostics[0].Severity)
}

func TestRepeatedFieldVisitsInOrder(t *testing.T) {
	c := newTestContext(t)
	var seen []int

	parsectx.RepeatedField(c, "expressions", []int{10, 20, 30}, tree.NodeProtoMessage, func(cc *parsectx.Context, i int, v int) {
		seen = append(seen, v)
	})

	require.Equal(t, []int{10, 20, 30}, seen)
	require.Len(t, c.Node().Children, 3)
}

func TestOneofFieldUsesVariantPath(t *testing.T) {
	c := newTestContext(t)
	parsectx.OneofField(c, "rel_type", "filter", "x", tree.NodeProtoMessage, func(*parsectx.Context, string) {})
	require.True(t, c.IsParsed("rel_type"))
	require.Len(t, c.Node().Children, 1)
}
