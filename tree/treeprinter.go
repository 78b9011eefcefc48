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
	"fmt"
	"strings"
)

// TreePrinter renders a labeled tree as ASCII art: WriteNode sets this
// printer's own label, WriteChildren attaches already-rendered children.
type TreePrinter struct {
	line     string
	children []string
}

// NewTreePrinter returns an empty printer.
func NewTreePrinter() *TreePrinter {
	return &TreePrinter{}
}

// WriteNode sets the label of this printer's node, formatted like fmt.Sprintf.
func (p *TreePrinter) WriteNode(format string, args ...interface{}) {
	p.line = fmt.Sprintf(format, args...)
}

// WriteChildren appends already-rendered child trees (each produced by a
// nested TreePrinter's String method, or a bare label).
func (p *TreePrinter) WriteChildren(children ...string) {
	p.children = append(p.children, children...)
}

// String renders the tree.
func (p *TreePrinter) String() string {
	var b strings.Builder
	b.WriteString(p.line)
	b.WriteByte('\n')
	for i, c := range p.children {
		last := i == len(p.children)-1
		writeChild(&b, c, last)
	}
	return b.String()
}

func writeChild(b *strings.Builder, child string, last bool) {
	lines := strings.Split(strings.TrimRight(child, "\n"), "\n")
	for i, line := range lines {
		switch {
		case i == 0 && last:
			b.WriteString(" └─ ")
		case i == 0:
			b.WriteString(" ├─ ")
		case last:
			b.WriteString("    ")
		default:
			b.WriteString(" │  ")
		}
		b.WriteString(line)
		b.WriteByte('\n')
	}
}

// Dump renders a Node subtree, including diagnostics, as an ASCII tree.
// This backs the Diagnostics export format.
func Dump(n *Node) string {
	p := NewTreePrinter()
	label := n.Summary
	if label == "" && len(n.Description) > 0 {
		label = n.Description[len(n.Description)-1]
	}
	if label == "" {
		label = nodeTypeLabel(n.NodeType)
	}
	p.WriteNode("%s", label)
	for _, d := range n.Diagnostics {
		p.WriteChildren(fmt.Sprintf("[%s/%s] %s", d.Severity, d.Cause, d.Message))
	}
	for _, e := range n.Children {
		child := Dump(e.Node)
		if e.Unknown {
			child = "(unknown) " + child
		}
		p.WriteChildren(strings.TrimRight(child, "\n"))
	}
	return p.String()
}

func nodeTypeLabel(nt NodeType) string {
	switch nt {
	case NodeProtoMessage:
		return "<message>"
	case NodeProtoPrimitive:
		return "<primitive>"
	case NodeYAMLMap:
		return "<yaml map>"
	case NodeYAMLArray:
		return "<yaml array>"
	case NodeYAMLPrimitive:
		return "<yaml primitive>"
	default:
		return "<unresolved>"
	}
}
