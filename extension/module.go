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

// Package extension implements the extension model: a
// Module loaded from one YAML document, exposing three namespaces (type
// classes, type variations, functions) plus its own declared dependencies
// on other modules, resolved transitively. A module's namespaces are
// populated incrementally while its document parses, then sealed.
package extension

import (
	"github.com/substrait-io/substrait-validator-go/extref"
	"github.com/substrait-io/substrait-validator-go/types"
)

// FunctionKind classifies how a function may be invoked within a plan.
type FunctionKind int

const (
	ScalarFunction FunctionKind = iota
	AggregateFunction
	WindowFunction
)

func (k FunctionKind) String() string {
	switch k {
	case ScalarFunction:
		return "scalar function"
	case AggregateFunction:
		return "aggregate function"
	case WindowFunction:
		return "window function"
	default:
		return "unknown function kind"
	}
}

// FunctionOverload is one signature of a function: its declared argument
// slots (reusing types.ParameterSlot's name/optional/pattern shape) and the
// program that derives its return type from the bound argument values.
type FunctionOverload struct {
	Arguments  []types.ParameterSlot
	Variadic   bool
	ReturnType types.Program
}

// FunctionDef is the definition of a (possibly overloaded) extension
// function.
type FunctionDef struct {
	Identifier extref.Identifier
	Kind       FunctionKind
	Overloads  []FunctionOverload
}

// DeriveReturnType finds the first overload that admits args — by
// cardinality against Arguments/Variadic, and by matching each argument
// against its slot's declared pattern — then evaluates that overload's
// ReturnType program. Matching is what carries information into the
// program: a slot declared as decimal<P1,S1> binds P1 and S1 from the
// argument's actual parameters, and each argument is additionally bound
// under its slot name.
func (f *FunctionDef) DeriveReturnType(args []types.Value) (types.Type, error) {
	for _, ov := range f.Overloads {
		min := types.MinParameters(ov.Arguments)
		if len(args) < min {
			continue
		}
		if !ov.Variadic && len(args) > len(ov.Arguments) {
			continue
		}
		ctx := types.NewContext()
		admits := true
		for i, v := range args {
			if pat := slotPattern(ov, i); pat != nil {
				ok, err := pat.Match(ctx, v)
				if err != nil || !ok {
					admits = false
					break
				}
			}
			ctx.Bind(types.SlotName(ov.Arguments, i), v)
		}
		if !admits {
			continue
		}
		return ov.ReturnType.EvaluateType(ctx)
	}
	return types.Type{}, typeDerivationFailed(f.Identifier, len(args))
}

// slotPattern returns the declared pattern for the i-th argument, reusing
// the last slot for variadic tails.
func slotPattern(ov FunctionOverload, i int) types.Pattern {
	if i < len(ov.Arguments) {
		return ov.Arguments[i].Pattern
	}
	if ov.Variadic && len(ov.Arguments) > 0 {
		return ov.Arguments[len(ov.Arguments)-1].Pattern
	}
	return nil
}

// Module is one loaded extension document: its own namespaces plus the set
// of modules it depends on.
type Module struct {
	Identifier   extref.Identifier
	Description  string
	ActualURI    string
	Dependencies map[string]*Module

	TypeClasses    extref.Namespace[types.TypeClassDef]
	TypeVariations extref.Namespace[types.UserDefinedVariationDef]
	Functions      extref.Namespace[FunctionDef]
}

// NewModule returns an empty module for the document loaded from uri.
func NewModule(uri string) *Module {
	return &Module{
		ActualURI:    uri,
		Dependencies: make(map[string]*Module),
	}
}

// Seal freezes this module's own namespaces. It does not reseal
// dependencies, which are sealed individually as they finish loading.
func (m *Module) Seal() {
	m.TypeClasses.Seal()
	m.TypeVariations.Seal()
	m.Functions.Seal()
}

// ResolveTypeClass looks up name in this module, then in its transitive
// dependencies.
func (m *Module) ResolveTypeClass(name string) extref.ResolutionResult[types.TypeClassDef] {
	return resolveAcrossModules(m, name, make(map[*Module]bool),
		func(mod *Module, n string) extref.ResolutionResult[types.TypeClassDef] {
			return mod.TypeClasses.ResolveLocal(n)
		})
}

// ResolveTypeVariation looks up name in this module, then in its
// transitive dependencies.
func (m *Module) ResolveTypeVariation(name string) extref.ResolutionResult[types.UserDefinedVariationDef] {
	return resolveAcrossModules(m, name, make(map[*Module]bool),
		func(mod *Module, n string) extref.ResolutionResult[types.UserDefinedVariationDef] {
			return mod.TypeVariations.ResolveLocal(n)
		})
}

// ResolveFunction looks up name in this module, then in its transitive
// dependencies.
func (m *Module) ResolveFunction(name string) extref.ResolutionResult[FunctionDef] {
	return resolveAcrossModules(m, name, make(map[*Module]bool),
		func(mod *Module, n string) extref.ResolutionResult[FunctionDef] {
			return mod.Functions.ResolveLocal(n)
		})
}

// resolveAcrossModules walks m and its dependencies depth-first, collecting
// every local match (a name may legitimately be declared by more than one
// module in the dependency graph, which is surfaced as ambiguity rather
// than silently preferring one). visited guards against a dependency cycle
// revisiting a module.
func resolveAcrossModules[T any](
	m *Module,
	name string,
	visited map[*Module]bool,
	localResolve func(*Module, string) extref.ResolutionResult[T],
) extref.ResolutionResult[T] {
	if m == nil || visited[m] {
		return extref.ResolutionResult[T]{}
	}
	visited[m] = true

	result := localResolve(m, name)
	candidates := append([]*T(nil), result.Candidates...)
	for _, dep := range m.Dependencies {
		sub := resolveAcrossModules(dep, name, visited, localResolve)
		candidates = append(candidates, sub.Candidates...)
	}
	return extref.ResolutionResult[T]{Candidates: candidates}
}
