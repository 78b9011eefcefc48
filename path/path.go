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

// Package path provides Path, an immutable, structurally shared address
// into the input tree. It is kept separate from package tree
// so that package diag can depend on it without creating an import cycle
// between diagnostics and the tree they are attached to.
package path

import (
	"fmt"
	"strings"
)

// StepKind distinguishes the four ways a Path can be extended.
type StepKind int

const (
	// StepField addresses a named field of a message-like node.
	StepField StepKind = iota
	// StepIndex addresses an element of a repeated field by position.
	StepIndex
	// StepVariant addresses the active branch of a oneof.
	StepVariant
	// StepRoot addresses the root of a document resolved from a URI.
	StepRoot
)

// Path is an immutable address into the input tree. The zero value is the
// empty (root) path. Paths are structurally shared: With* methods return a
// new Path that shares its parent's backing node, so branching a Path at any
// point in the traversal never mutates a sibling's address.
type Path struct {
	node *pathNode
}

type pathNode struct {
	parent *pathNode
	kind   StepKind
	field  string
	index  int
}

// WithField returns the path of a named field below p.
func (p Path) WithField(name string) Path {
	return Path{&pathNode{parent: p.node, kind: StepField, field: name}}
}

// WithIndex returns the path of the i-th element of a repeated field below p.
func (p Path) WithIndex(i int) Path {
	return Path{&pathNode{parent: p.node, kind: StepIndex, index: i}}
}

// WithVariant returns the path of the active oneof variant named name below p.
func (p Path) WithVariant(name string) Path {
	return Path{&pathNode{parent: p.node, kind: StepVariant, field: name}}
}

// WithRoot returns the path of the root of the document resolved from uri.
// The returned path has no parent: a resolved document's root is the first
// step of every path inside it.
func WithRoot(uri string) Path {
	return Path{&pathNode{kind: StepRoot, field: uri}}
}

// Equal reports whether p and q address the same node. Two paths are equal
// iff their step sequences are equal element-wise.
func (p Path) Equal(q Path) bool {
	return p.Buf() == q.Buf()
}

// step is one element of the path, in root-to-leaf order.
type step struct {
	kind  StepKind
	field string
	index int
}

func (p Path) steps() []step {
	var out []step
	for n := p.node; n != nil; n = n.parent {
		out = append(out, step{kind: n.kind, field: n.field, index: n.index})
	}
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return out
}

// Buf renders the path to a stable, comparable string buffer: two nodes
// are the same iff their Bufs are equal.
func (p Path) Buf() string {
	var b strings.Builder
	for _, s := range p.steps() {
		switch s.kind {
		case StepField:
			b.WriteByte('.')
			b.WriteString(s.field)
		case StepIndex:
			fmt.Fprintf(&b, "[%d]", s.index)
		case StepVariant:
			b.WriteString("::")
			b.WriteString(s.field)
		case StepRoot:
			b.WriteByte('@')
			b.WriteString(s.field)
		}
	}
	return b.String()
}

// String renders a human-readable form of the path, used in diagnostic
// messages and tree dumps.
func (p Path) String() string {
	if p.node == nil {
		return "$"
	}
	return "$" + p.Buf()
}
