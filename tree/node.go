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

package tree

import (
	"github.com/substrait-io/substrait-validator-go/diag"
	"github.com/substrait-io/substrait-validator-go/path"
)

// Path addresses a node of the input tree. It is an alias of path.Path; see
// that package for the immutable, structurally shared representation.
type Path = path.Path

// NodeType tags the kind of input node a Node was produced from.
type NodeType int

const (
	NodeProtoMessage NodeType = iota
	NodeProtoPrimitive
	NodeYAMLMap
	NodeYAMLArray
	NodeYAMLPrimitive
	NodeUnresolved
)

// DataType is implemented by types.Type. It is declared here, rather than
// imported from package types, to avoid an import cycle (types needs to
// describe itself without depending on the tree it's embedded in); the
// validator package binds the two together.
type DataType interface {
	// IsUnresolvedType reports whether this is the distinguished
	// unresolved placeholder data type.
	IsUnresolvedType() bool
	String() string
}

// Edge is one labeled child of a Node.
type Edge struct {
	Path    Path
	Node    *Node
	Unknown bool // true if discovered by the post-traversal sweep rather than deliberately visited.
}

// Node is one node of the output tree: a derived type, diagnostics, child
// edges and human-readable commentary. Nodes are created top-down by the
// traversal engine (package parsectx) and closed bottom-up; once a Node has
// been attached to its parent's edge list it is not mutated further except
// by the still-open child context that owns it.
type Node struct {
	Path        Path
	NodeType    NodeType
	DataType    DataType
	Children    []Edge
	Diagnostics []*diag.Diagnostic
	Description []string
	Summary     string
	Brief       []string
}

// New creates a fresh, empty Node addressed by path. Its data type starts
// out unset; a node whose data type is never explicitly set inherits the
// unresolved type.
func New(p Path, nt NodeType) *Node {
	return &Node{Path: p, NodeType: nt}
}

// AddDiagnostic appends a diagnostic in arrival order.
func (n *Node) AddDiagnostic(d *diag.Diagnostic) {
	n.Diagnostics = append(n.Diagnostics, d)
}

// AddChild appends a completed child edge.
func (n *Node) AddChild(e Edge) {
	n.Children = append(n.Children, e)
}

// SetDataType sets the node's derived data type.
func (n *Node) SetDataType(t DataType) {
	n.DataType = t
}

// Describe appends a description string (role + formatted text).
func (n *Node) Describe(text string) {
	n.Description = append(n.Description, text)
}

// SetSummary sets the one-line summary.
func (n *Node) SetSummary(text string) {
	n.Summary = text
}

// PushBrief appends a comment/brief line.
func (n *Node) PushBrief(text string) {
	n.Brief = append(n.Brief, text)
}

// WorstSeverity returns the most severe diagnostic found anywhere in the
// subtree rooted at n, or Info if there are none. This is the run's
// roll-up severity.
func (n *Node) WorstSeverity() diag.Severity {
	worst := diag.Info
	n.walk(func(m *Node) {
		for _, d := range m.Diagnostics {
			worst = diag.Worst(worst, d.Severity)
		}
	})
	return worst
}

// AllDiagnostics flattens every diagnostic in the subtree, in a stable,
// depth-first, arrival order.
func (n *Node) AllDiagnostics() []*diag.Diagnostic {
	var out []*diag.Diagnostic
	n.walk(func(m *Node) {
		out = append(out, m.Diagnostics...)
	})
	return out
}

func (n *Node) walk(f func(*Node)) {
	if n == nil {
		return
	}
	f(n)
	for _, e := range n.Children {
		e.Node.walk(f)
	}
}
