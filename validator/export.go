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

package validator

import (
	"encoding/json"
	"fmt"

	"github.com/substrait-io/substrait-validator-go/tree"
)

// ExportFormat selects the rendering Export produces from a validated
// tree.
type ExportFormat int

const (
	// Proto renders the tree as a JSON document mirroring its structure:
	// every node's path, derived data type, diagnostics and commentary,
	// nested the same way the tree itself is nested.
	Proto ExportFormat = iota
	// Diagnostics renders the tree as the ASCII-art diagnostic dump
	// produced by tree.Dump, the format meant for a human reading a
	// terminal.
	Diagnostics
	// Html would render an interactive report; this validator delegates
	// that rendering to an external tool and does not implement it.
	Html
)

// Export renders n according to format. Html is declared so callers can
// name the format, but rendering it is delegated to an external tool; it
// always returns an error.
func Export(n *tree.Node, format ExportFormat) ([]byte, error) {
	switch format {
	case Proto:
		return json.MarshalIndent(exportNode(n), "", "  ")
	case Diagnostics:
		return []byte(tree.Dump(n)), nil
	case Html:
		return nil, fmt.Errorf("HTML export is not implemented by this validator; render the Proto export externally")
	default:
		return nil, fmt.Errorf("unrecognized export format %d", format)
	}
}

// exportDiagnostic and exportEdge mirror diag.Diagnostic/tree.Edge into a
// shape encoding/json can render without reaching into diag.Kind's
// unexported field.
type exportDiagnostic struct {
	Severity string `json:"severity"`
	Cause    string `json:"cause"`
	Path     string `json:"path"`
	Message  string `json:"message"`
}

type exportTree struct {
	Path        string              `json:"path"`
	NodeType    string              `json:"node_type"`
	DataType    string              `json:"data_type,omitempty"`
	Description []string            `json:"description,omitempty"`
	Summary     string              `json:"summary,omitempty"`
	Brief       []string            `json:"brief,omitempty"`
	Diagnostics []exportDiagnostic  `json:"diagnostics,omitempty"`
	Children    map[string]*exportTree `json:"children,omitempty"`
	Unknown     bool                `json:"unknown,omitempty"`
}

func exportNode(n *tree.Node) *exportTree {
	if n == nil {
		return nil
	}
	out := &exportTree{
		Path:        n.Path.String(),
		NodeType:    nodeTypeName(n.NodeType),
		Description: n.Description,
		Summary:     n.Summary,
		Brief:       n.Brief,
	}
	if n.DataType != nil {
		out.DataType = n.DataType.String()
	}
	for _, d := range n.Diagnostics {
		out.Diagnostics = append(out.Diagnostics, exportDiagnostic{
			Severity: d.Severity.String(),
			Cause:    d.Cause.String(),
			Path:     d.Path.String(),
			Message:  d.Message,
		})
	}
	for _, e := range n.Children {
		if out.Children == nil {
			out.Children = make(map[string]*exportTree)
		}
		child := exportNode(e.Node)
		child.Unknown = e.Unknown
		out.Children[e.Path.String()] = child
	}
	return out
}

func nodeTypeName(nt tree.NodeType) string {
	switch nt {
	case tree.NodeProtoMessage:
		return "proto_message"
	case tree.NodeProtoPrimitive:
		return "proto_primitive"
	case tree.NodeYAMLMap:
		return "yaml_map"
	case tree.NodeYAMLArray:
		return "yaml_array"
	case tree.NodeYAMLPrimitive:
		return "yaml_primitive"
	default:
		return "unresolved"
	}
}
