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

package tree_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/substrait-io/substrait-validator-go/diag"
	"github.com/substrait-io/substrait-validator-go/tree"
)

func TestWorstSeverityRollsUpFromChildren(t *testing.T) {
	var root tree.Path
	parent := tree.New(root, tree.NodeProtoMessage)

	childPath := root.WithField("offset_mode")
	child := tree.New(childPath, tree.NodeProtoPrimitive)
	child.AddDiagnostic(diag.IllegalValue.New(diag.Error, childPath, "offsets cannot be negative"))

	parent.AddChild(tree.Edge{Path: childPath, Node: child})
	parent.AddDiagnostic(diag.Experimental.New(diag.Info, root, "experimental"))

	require.Equal(t, diag.Error, parent.WorstSeverity())
	require.Len(t, parent.AllDiagnostics(), 2)
}

func TestWorstSeverityDefaultsToInfo(t *testing.T) {
	var root tree.Path
	n := tree.New(root, tree.NodeUnresolved)
	require.Equal(t, diag.Info, n.WorstSeverity())
	require.Empty(t, n.AllDiagnostics())
}

func TestDescribeAndSummary(t *testing.T) {
	var root tree.Path
	n := tree.New(root, tree.NodeProtoMessage)
	n.Describe("Fetch all rows")
	n.SetSummary("Propagates the input unchanged.")
	require.Equal(t, []string{"Fetch all rows"}, n.Description)
	require.Equal(t, "Propagates the input unchanged.", n.Summary)
}
