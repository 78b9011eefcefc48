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

// Package extbind resolves a plan's anchor-based extension declarations
// into
// values the rest of the plan parser can look up by anchor. It lives below
// planparse, planparse/relations and planparse/expressions so all three can
// share one Bindings type without those packages forming an import cycle
// with each other.
package extbind

import (
	"fmt"
	"sort"

	"github.com/substrait-io/substrait-validator-go/diag"
	"github.com/substrait-io/substrait-validator-go/extension"
	"github.com/substrait-io/substrait-validator-go/extref"
	"github.com/substrait-io/substrait-validator-go/parsectx"
	"github.com/substrait-io/substrait-validator-go/path"
	"github.com/substrait-io/substrait-validator-go/types"
)

// Binding is one anchor's declaration: the name it was declared under, the
// reference it resolved to (possibly unresolved), where it was declared,
// and whether anything in the plan ever dereferenced the anchor.
type Binding[T any] struct {
	Name string
	Ref  extref.Reference[T]
	Path path.Path
	Used bool
}

// Bindings is the plan-wide anchor table built while parsing a plan's
// extension declarations.
type Bindings struct {
	TypeClasses    map[uint32]*Binding[types.TypeClassDef]
	TypeVariations map[uint32]*Binding[types.UserDefinedVariationDef]
	Functions      map[uint32]*Binding[extension.FunctionDef]
}

// New returns an empty binding table.
func New() *Bindings {
	return &Bindings{
		TypeClasses:    make(map[uint32]*Binding[types.TypeClassDef]),
		TypeVariations: make(map[uint32]*Binding[types.UserDefinedVariationDef]),
		Functions:      make(map[uint32]*Binding[extension.FunctionDef]),
	}
}

// LookupTypeClass resolves a type anchor to a Class, marking it used. An
// undeclared anchor is diagnosed and yields an unresolved user-defined class
// rather than aborting the enclosing parse.
func (b *Bindings) LookupTypeClass(c *parsectx.Context, anchor uint32) types.Class {
	bind, ok := b.TypeClasses[anchor]
	if !ok {
		c.Diagnose(diag.Error, diag.IllegalValue, fmt.Sprintf("no type declared with anchor %d", anchor))
		return types.NewUserDefinedClass(extref.Unresolved[types.TypeClassDef]("", ""))
	}
	bind.Used = true
	return types.NewUserDefinedClass(bind.Ref)
}

// LookupTypeVariation resolves a type variation anchor, marking it used.
func (b *Bindings) LookupTypeVariation(c *parsectx.Context, anchor uint32) types.Variation {
	bind, ok := b.TypeVariations[anchor]
	if !ok {
		c.Diagnose(diag.Error, diag.IllegalValue, fmt.Sprintf("no type variation declared with anchor %d", anchor))
		return types.NewUserDefinedVariation(extref.Unresolved[types.UserDefinedVariationDef]("", ""))
	}
	bind.Used = true
	return types.NewUserDefinedVariation(bind.Ref)
}

// LookupFunction resolves a function anchor, marking it used. ok is false
// if the anchor was never declared, or declared but never resolved to a
// definition; both cases have already been diagnosed by the time this
// returns.
func (b *Bindings) LookupFunction(c *parsectx.Context, anchor uint32) (*extension.FunctionDef, bool) {
	bind, ok := b.Functions[anchor]
	if !ok {
		c.Diagnose(diag.Error, diag.IllegalValue, fmt.Sprintf("no function declared with anchor %d", anchor))
		return nil, false
	}
	bind.Used = true
	if !bind.Ref.Resolved() {
		return nil, false
	}
	return bind.Ref.Definition, true
}

// CheckUnused emits an Info diagnostic for every declared anchor that was
// never dereferenced while parsing the plan's relations. Anchors are
// visited in ascending order so the emitted diagnostics are deterministic.
func (b *Bindings) CheckUnused(c *parsectx.Context) {
	checkUnused(c, b.TypeClasses, "type")
	checkUnused(c, b.TypeVariations, "type variation")
	checkUnused(c, b.Functions, "function")
}

func checkUnused[T any](c *parsectx.Context, m map[uint32]*Binding[T], kind string) {
	anchors := make([]uint32, 0, len(m))
	for a := range m {
		anchors = append(anchors, a)
	}
	sort.Slice(anchors, func(i, j int) bool { return anchors[i] < anchors[j] })
	for _, a := range anchors {
		bind := m[a]
		if bind.Used {
			continue
		}
		c.Diagnose(diag.Info, diag.IllegalValue, fmt.Sprintf("%s declaration %q (anchor %d) is never referenced and can be removed", kind, bind.Name, a))
	}
}
