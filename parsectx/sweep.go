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

package parsectx

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/substrait-io/substrait-validator-go/diag"
	"github.com/substrait-io/substrait-validator-go/tree"
)

// Sweep walks raw (a pointer to, or value of, one of the input package's
// decoded node structs) and, for every non-zero-valued top-level field
// whose JSON name was never passed to a field helper on c, attaches an
// Unknown child edge carrying a Warning diagnostic. Fields
// are visited in declaration order, which for the input package's structs
// is the field's proto-equivalent ascending tag order.
func Sweep(c *Context, raw interface{}) {
	v := reflect.ValueOf(raw)
	for v.Kind() == reflect.Ptr {
		if v.IsNil() {
			return
		}
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return
	}

	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if f.PkgPath != "" {
			continue // unexported
		}
		name := jsonFieldName(f)
		if name == "-" || c.IsParsed(name) {
			continue
		}
		fv := v.Field(i)
		if fv.IsZero() {
			continue
		}
		p := c.path.WithField(name)
		child := tree.New(p, tree.NodeUnresolved)
		if !c.state.IgnoreUnknownFields {
			child.AddDiagnostic(diag.IllegalValue.New(diag.Warning, p,
				fmt.Sprintf("field %q was present but not consumed while parsing this node", name)))
		}
		c.node.AddChild(tree.Edge{Path: p, Node: child, Unknown: true})
	}
}

func jsonFieldName(f reflect.StructField) string {
	tag := f.Tag.Get("json")
	if tag == "" {
		return f.Name
	}
	name := strings.Split(tag, ",")[0]
	if name == "" {
		return f.Name
	}
	return name
}
