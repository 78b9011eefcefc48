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
	"github.com/substrait-io/substrait-validator-go/path"
	"github.com/substrait-io/substrait-validator-go/tree"
)

// Context carries the current position in the traversal (its Path and the
// output Node being built) plus a reference to the run-scoped State. A
// Context is created fresh for every node the traversal visits; the field
// helpers in fields.go are what create child contexts and wire the
// resulting nodes back into their parent.
type Context struct {
	state  *State
	path   path.Path
	node   *tree.Node
	parsed map[string]bool
}

// New creates the context for a freshly created node at p.
func New(state *State, p path.Path, node *tree.Node) *Context {
	return &Context{state: state, path: p, node: node, parsed: make(map[string]bool)}
}

// Root creates the context for the root node of a validation run.
func Root(state *State, uri string, nodeType tree.NodeType) *Context {
	p := path.WithRoot(uri)
	return New(state, p, tree.New(p, nodeType))
}

func (c *Context) State() *State   { return c.state }
func (c *Context) Path() path.Path { return c.path }
func (c *Context) Node() *tree.Node { return c.node }

// Diagnose attaches a diagnostic of the given cause and severity to this
// context's node, at this context's path. args are forwarded to the
// cause's message template.
func (c *Context) Diagnose(sev diag.Severity, cause diag.Kind, args ...interface{}) {
	c.node.AddDiagnostic(cause.New(sev, c.path, args...))
}

// MarkParsed records that name has been explicitly visited by a field
// helper, excluding it from the post-traversal unknown-field sweep.
func (c *Context) MarkParsed(name string) {
	c.parsed[name] = true
}

// IsParsed reports whether name has already been visited.
func (c *Context) IsParsed(name string) bool {
	return c.parsed[name]
}
