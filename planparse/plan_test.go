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

package planparse_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/substrait-io/substrait-validator-go/diag"
	"github.com/substrait-io/substrait-validator-go/extension/loader"
	"github.com/substrait-io/substrait-validator-go/input"
	"github.com/substrait-io/substrait-validator-go/parsectx"
	"github.com/substrait-io/substrait-validator-go/planparse"
	"github.com/substrait-io/substrait-validator-go/tree"
)

func newTestContext(t *testing.T) *parsectx.Context {
	t.Helper()
	state := parsectx.NewState(nil, nil)
	return parsectx.Root(state, "test-plan", tree.NodeProtoMessage)
}

func currentVersion() *input.Version {
	return &input.Version{MajorNumber: 0, MinorNumber: 52, PatchNumber: 0}
}

func simpleReadPlanRel() input.PlanRel {
	return input.PlanRel{
		Root: &input.RelRoot{
			Names: []string{"a"},
			Input: &input.Rel{
				Read: &input.ReadRel{
					BaseSchema: &input.NamedStruct{
						Names: []string{"a"},
						Struct: &input.Type{Struct: &input.TypeStruct{
							Types: []input.Type{{I64: &input.TypeNullable{Nullability: int32(input.NullabilityNullable)}}},
						}},
					},
					NamedTable: &input.ReadRelNamedTable{Names: []string{"t"}},
				},
			},
		},
	}
}

func TestParseMarksRunExperimental(t *testing.T) {
	c := newTestContext(t)
	plan := &input.Plan{Version: currentVersion(), Relations: []input.PlanRel{simpleReadPlanRel()}}

	planparse.Parse(c, plan)

	var found bool
	for _, d := range c.Node().Diagnostics {
		if d.Cause == diag.Experimental {
			found = true
		}
	}
	require.True(t, found, "parsing a plan always reports the experimental-status notice")
	require.Equal(t, diag.Info, c.Node().WorstSeverity())
}

func TestParseEmptyPlanRequiresARelation(t *testing.T) {
	c := newTestContext(t)
	plan := &input.Plan{Version: currentVersion()}

	planparse.Parse(c, plan)

	require.Equal(t, diag.Error, c.Node().WorstSeverity())
}

func TestParseIncompatibleVersionIsWarning(t *testing.T) {
	c := newTestContext(t)
	plan := &input.Plan{
		Version:   &input.Version{MajorNumber: 99, MinorNumber: 0, PatchNumber: 0},
		Relations: []input.PlanRel{simpleReadPlanRel()},
	}

	planparse.Parse(c, plan)

	require.Equal(t, diag.Warning, c.Node().WorstSeverity())
}

func TestParseMissingVersionIsError(t *testing.T) {
	c := newTestContext(t)
	plan := &input.Plan{Relations: []input.PlanRel{simpleReadPlanRel()}}

	planparse.Parse(c, plan)

	require.Equal(t, diag.Error, c.Node().WorstSeverity())
}

func TestParseUnloadableExtensionURIIsError(t *testing.T) {
	state := parsectx.NewState(loader.New(func(ctx context.Context, uri string) ([]byte, error) {
		return nil, fmt.Errorf("no such URI in this test: %s", uri)
	}), nil)
	c := parsectx.Root(state, "test-plan", tree.NodeProtoMessage)
	plan := &input.Plan{
		Version: currentVersion(),
		ExtensionUris: []input.SimpleExtensionURI{
			{ExtensionUriAnchor: 1, Uri: "urn:example:unused"},
		},
		Relations: []input.PlanRel{simpleReadPlanRel()},
	}

	planparse.Parse(c, plan)

	// The resolver fails for every URI, so the extension cannot be loaded;
	// the load failure itself must surface as an error.
	require.Equal(t, diag.Error, c.Node().WorstSeverity())
}
