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

package types

import "strings"

// Context tracks named bindings established by matching patterns, used
// while evaluating patterns/programs. Keys are stored case-folded, so
// variable names compare case-insensitively.
type Context struct {
	bindings map[string]Value
}

// NewContext returns an empty context.
func NewContext() *Context {
	return &Context{bindings: make(map[string]Value)}
}

// Get looks up a previously bound variable.
func (c *Context) Get(name string) (Value, bool) {
	v, ok := c.bindings[strings.ToLower(name)]
	return v, ok
}

// Bind assigns a value to a variable, overwriting any previous binding.
func (c *Context) Bind(name string, v Value) {
	c.bindings[strings.ToLower(name)] = v
}

// snapshot captures the current bindings so a failed match attempt can be
// rolled back, leaving the context unchanged. It is a shallow copy,
// sufficient because Value is immutable.
func (c *Context) snapshot() map[string]Value {
	cp := make(map[string]Value, len(c.bindings))
	for k, v := range c.bindings {
		cp[k] = v
	}
	return cp
}

func (c *Context) restore(snap map[string]Value) {
	c.bindings = snap
}
