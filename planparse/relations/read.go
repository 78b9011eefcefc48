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

package relations

import (
	"fmt"
	"strings"

	"github.com/substrait-io/substrait-validator-go/diag"
	"github.com/substrait-io/substrait-validator-go/extbind"
	"github.com/substrait-io/substrait-validator-go/input"
	"github.com/substrait-io/substrait-validator-go/parsectx"
	"github.com/substrait-io/substrait-validator-go/planparse/expressions"
	"github.com/substrait-io/substrait-validator-go/tree"
	"github.com/substrait-io/substrait-validator-go/types"
)

// parseRead is a leaf relation reading BaseSchema's named struct from a
// named table, optionally pruned by Filter. Its schema is exactly
// BaseSchema's struct with field names applied.
func parseRead(c *parsectx.Context, r *input.ReadRel, b *extbind.Bindings) types.Type {
	sweepCommon(c, r.Common)

	schema := parsectx.RequiredField(c, "base_schema", r.BaseSchema,
		func(v *input.NamedStruct) bool { return v == nil },
		tree.NodeProtoMessage,
		func(cc *parsectx.Context, ns *input.NamedStruct) {
			if ns == nil {
				return
			}
			t := expressions.ParseType(cc, ns.Struct, b)
			named, err := t.ApplyFieldNames(ns.Names)
			if err != nil {
				cc.Diagnose(diag.Error, diag.IllegalValue, err.Error())
				named = t
			}
			cc.Node().SetDataType(named)
		})
	schemaType := extbind.NodeDataType(schema)

	if r.Filter != nil {
		parsectx.Field(c, "filter", r.Filter, tree.NodeProtoMessage, func(cc *parsectx.Context, e *input.Expression) {
			expressions.Parse(cc, e, schemaType, b)
		})
	}

	c.MarkParsed("read_type")
	tableName := "?"
	if r.NamedTable != nil {
		parsectx.Field(c, "named_table", r.NamedTable, tree.NodeProtoMessage, func(cc *parsectx.Context, nt *input.ReadRelNamedTable) {
			tableName = strings.Join(nt.Names, ".")
		})
	} else {
		c.Diagnose(diag.Error, diag.ProtoMissingField, "read_type")
	}

	c.Node().Describe(fmt.Sprintf("Read from table %s", tableName))
	parsectx.Sweep(c, r)
	return schemaType
}
