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

import "github.com/substrait-io/substrait-validator-go/extref"

// FunctionBehavior controls whether functions defined for a variation's
// base class also apply to the variation itself.
type FunctionBehavior int

const (
	// Inherits means the base class's functions apply to this variation
	// too. It is the default.
	Inherits FunctionBehavior = iota
	// Separate means this variation needs its own function overloads.
	Separate
)

// UserDefinedVariationDef is the definition of a user-defined type
// variation loaded from an extension document.
type UserDefinedVariationDef struct {
	Identifier      extref.Identifier
	Base            Class
	FunctionBehavior FunctionBehavior
}

// VariationKind distinguishes the two Variation variants.
type VariationKind int

const (
	SystemPreferred VariationKind = iota
	UserDefinedVariation
)

// Variation is a marker on a type selecting an alternate physical/semantic
// representation sharing the base class.
type Variation struct {
	kind VariationKind
	ref  extref.Reference[UserDefinedVariationDef]
}

// SystemPreferredVariation is the canonical, zero-th variation of any class.
var SystemPreferredVariation = Variation{kind: SystemPreferred}

// NewUserDefinedVariation builds a Variation referencing an extension type
// variation.
func NewUserDefinedVariation(ref extref.Reference[UserDefinedVariationDef]) Variation {
	return Variation{kind: UserDefinedVariation, ref: ref}
}

func (v Variation) Kind() VariationKind { return v.kind }

// UserDefined returns the underlying reference and true, if this is a
// user-defined variation.
func (v Variation) UserDefined() (extref.Reference[UserDefinedVariationDef], bool) {
	if v.kind != UserDefinedVariation {
		return extref.Reference[UserDefinedVariationDef]{}, false
	}
	return v.ref, true
}

// Equal reports whether two variations compare equal: both system-preferred,
// or both referring to the same user-defined variation identifier.
func (v Variation) Equal(other Variation) bool {
	if v.kind != other.kind {
		return false
	}
	if v.kind == SystemPreferred {
		return true
	}
	return v.ref.URI == other.ref.URI && v.ref.Name == other.ref.Name
}

// CompatibleWithSystemPreferred reports whether this variation is
// compatible with the system-preferred variation: it is system-preferred
// itself, or its definition's FunctionBehavior is Inherits. An unresolved
// reference is assumed compatible, to suppress secondary diagnostics.
func (v Variation) CompatibleWithSystemPreferred() bool {
	if v.kind == SystemPreferred {
		return true
	}
	if v.ref.Definition == nil {
		return true
	}
	return v.ref.Definition.FunctionBehavior == Inherits
}

func (v Variation) String() string {
	if v.kind == SystemPreferred {
		return "0"
	}
	return v.ref.Name
}

// ResolveVariationByClass resolves a reference to a group of same-named
// variations (scoped per base class, since Substrait allows reuse of a
// variation name across unrelated base classes) down to the single
// variation whose declared base equals base, or an unresolved reference if
// none matches.
func ResolveVariationByClass(candidates []*UserDefinedVariationDef, name, uri string, base Class) extref.Reference[UserDefinedVariationDef] {
	for _, def := range candidates {
		if def.Base.Equal(base) {
			return extref.Reference[UserDefinedVariationDef]{Name: name, URI: uri, Definition: def}
		}
	}
	return extref.Unresolved[UserDefinedVariationDef](name, uri)
}
