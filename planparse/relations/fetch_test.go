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

package relations_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/substrait-io/substrait-validator-go/diag"
	"github.com/substrait-io/substrait-validator-go/extbind"
	"github.com/substrait-io/substrait-validator-go/input"
	"github.com/substrait-io/substrait-validator-go/parsectx"
	"github.com/substrait-io/substrait-validator-go/planparse/relations"
	"github.com/substrait-io/substrait-validator-go/tree"
)

func newTestContext(t *testing.T) *parsectx.Context {
	t.Helper()
	state := parsectx.NewState(nil, nil)
	return parsectx.Root(state, "test-plan", tree.NodeProtoMessage)
}

func readRel(names []string) input.Rel {
	types := make([]input.Type, len(names))
	for i := range names {
		types[i] = input.Type{I64: &input.TypeNullable{Nullability: int32(input.NullabilityNullable)}}
	}
	return input.Rel{
		Read: &input.ReadRel{
			BaseSchema: &input.NamedStruct{
				Names:  names,
				Struct: &input.Type{Struct: &input.TypeStruct{Types: types}},
			},
			NamedTable: &input.ReadRelNamedTable{Names: []string{"t"}},
		},
	}
}

func int64p(v int64) *int64 { return &v }

// Exercises the fixed phrasing table keyed on the (offset, count) pair.
func TestFetchDescriptionPropagateOnlyNRows(t *testing.T) {
	c := newTestContext(t)
	rel := readRel([]string{"a"})
	fetchRel := &relationsFetch{Input: &rel, Count: int64p(5)}
	fetchRelNode := fetchRel.toRel()

	relations.Parse(c, &fetchRelNode, extbind.New())

	require.Len(t, c.Node().Children, 1)
	child := c.Node().Children[0].Node
	require.Equal(t, []string{"Propagate only 5 rows"}, child.Description)
}

func TestFetchDescriptionFetchAllRows(t *testing.T) {
	c := newTestContext(t)
	rel := readRel([]string{"a"})
	fetchRel := &relationsFetch{Input: &rel}
	fetchRelNode := fetchRel.toRel()

	relations.Parse(c, &fetchRelNode, extbind.New())

	child := c.Node().Children[0].Node
	require.Equal(t, []string{"Fetch all rows"}, child.Description)
}

func TestFetchNegativeOffsetIsIllegalValue(t *testing.T) {
	c := newTestContext(t)
	rel := readRel([]string{"a"})
	fetchRel := &relationsFetch{Input: &rel, Offset: int64p(-1)}
	fetchRelNode := fetchRel.toRel()

	relations.Parse(c, &fetchRelNode, extbind.New())

	child := c.Node().Children[0].Node
	require.Len(t, child.Diagnostics, 1)
	require.Equal(t, diag.Error, child.Diagnostics[0].Severity)
}

func TestFetchPreservesInputSchema(t *testing.T) {
	c := newTestContext(t)
	rel := readRel([]string{"a"})
	fetchRel := &relationsFetch{Input: &rel, Count: int64p(1)}
	fetchRelNode := fetchRel.toRel()

	schema := relations.Parse(c, &fetchRelNode, extbind.New())

	names, ok := schema.FieldNames()
	require.True(t, ok)
	require.Equal(t, []string{"a"}, names)
}

// relationsFetch is a small builder over input.FetchRel to keep the
// individual test cases focused on the fields they vary.
type relationsFetch struct {
	Input  *input.Rel
	Offset *int64
	Count  *int64
}

func (f *relationsFetch) toRel() input.Rel {
	return input.Rel{
		Fetch: &input.FetchRel{
			Input:  f.Input,
			Offset: f.Offset,
			Count:  f.Count,
		},
	}
}
