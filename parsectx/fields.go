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
	"github.com/substrait-io/substrait-validator-go/diag"
	"github.com/substrait-io/substrait-validator-go/tree"
)

// Field visits a single, optional field of the node at c: it records the
// field as parsed, creates a child node/context addressed by
// c.Path().WithField(name), runs build against it, and wires the result
// back into c's node as a child edge. It returns the child node so callers
// can, e.g., read its derived data type.
func Field[T any](c *Context, name string, value T, nodeType tree.NodeType, build func(*Context, T)) *tree.Node {
	c.MarkParsed(name)
	p := c.path.WithField(name)
	child := tree.New(p, nodeType)
	build(New(c.state, p, child), value)
	c.node.AddChild(tree.Edge{Path: p, Node: child})
	return child
}

// RequiredField is Field, plus a ProtoMissingField diagnostic if isZero
// reports the field was left at its zero value.
func RequiredField[T any](c *Context, name string, value T, isZero func(T) bool, nodeType tree.NodeType, build func(*Context, T)) *tree.Node {
	if isZero(value) {
		c.Diagnose(diag.Error, diag.ProtoMissingField, name)
	}
	return Field(c, name, value, nodeType, build)
}

// RepeatedField visits each element of values in ascending index order,
// so output-tree ordering stays deterministic, addressing the i-th
// element at c.Path().WithField(name).WithIndex(i).
func RepeatedField[T any](c *Context, name string, values []T, nodeType tree.NodeType, build func(*Context, int, T)) []*tree.Node {
	c.MarkParsed(name)
	base := c.path.WithField(name)
	nodes := make([]*tree.Node, len(values))
	for i, v := range values {
		p := base.WithIndex(i)
		child := tree.New(p, nodeType)
		build(New(c.state, p, child), i, v)
		nodes[i] = child
		c.node.AddChild(tree.Edge{Path: p, Node: child})
	}
	return nodes
}

// OneofField visits the active branch (variant) of a oneof-typed field,
// addressing it at c.Path().WithVariant(variant).
func OneofField[T any](c *Context, name, variant string, value T, nodeType tree.NodeType, build func(*Context, T)) *tree.Node {
	c.MarkParsed(name)
	p := c.path.WithVariant(variant)
	child := tree.New(p, nodeType)
	build(New(c.state, p, child), value)
	c.node.AddChild(tree.Edge{Path: p, Node: child})
	return child
}

// YAMLField is Field specialized for a scalar/mapping field sourced from an
// extension YAML document rather than the plan's own wire format.
func YAMLField[T any](c *Context, name string, value T, build func(*Context, T)) *tree.Node {
	return Field(c, name, value, tree.NodeYAMLMap, build)
}

// YAMLRepeatedField is RepeatedField specialized for a YAML sequence field.
func YAMLRepeatedField[T any](c *Context, name string, values []T, build func(*Context, int, T)) []*tree.Node {
	return RepeatedField(c, name, values, tree.NodeYAMLArray, build)
}
