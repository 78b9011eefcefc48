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

import (
	"fmt"
	"strings"
)

// Type is an immutable (Class, nullable, Variation, Parameters) four-tuple.
type Type struct {
	Class      Class
	Nullable   bool
	Variation  Variation
	Parameters []Parameter
}

// NewUnresolvedType returns the distinguished unresolved placeholder type.
func NewUnresolvedType() Type {
	return Type{Class: UnresolvedClass, Variation: SystemPreferredVariation}
}

// IsUnresolvedType reports whether t is the unresolved placeholder. This
// satisfies tree.DataType.
func (t Type) IsUnresolvedType() bool {
	return t.Class.Kind() == ClassUnresolved
}

// New validates parameter cardinality/kinds against cls's declared slots
// and, if they check out, returns the constructed type. slots may be nil
// for classes with no declared parameters (simple classes, and compound
// classes whose slot shapes are checked elsewhere, e.g. struct field
// patterns supplied by the caller).
func New(cls Class, nullable bool, variation Variation, params []Parameter, slots []ParameterSlot) (Type, error) {
	if len(slots) > 0 {
		if err := CheckParameters(slots, params, cls.Variadic(), cls.AllowsNames()); err != nil {
			return Type{}, err
		}
	}
	return Type{Class: cls, Nullable: nullable, Variation: variation, Parameters: params}, nil
}

// NewStruct builds a struct type over the given field types.
func NewStruct(fields []Type, nullable bool) Type {
	params := make([]Parameter, len(fields))
	for i, f := range fields {
		params[i] = UnnamedParameter(DataTypeValue{Type_: f})
	}
	return Type{
		Class:      NewCompoundClass(Struct),
		Nullable:   nullable,
		Variation:  SystemPreferredVariation,
		Parameters: params,
	}
}

// NewList builds a list type over the given element type.
func NewList(element Type, nullable bool) Type {
	return Type{
		Class:      NewCompoundClass(List),
		Nullable:   nullable,
		Variation:  SystemPreferredVariation,
		Parameters: []Parameter{UnnamedParameter(DataTypeValue{Type_: element})},
	}
}

// NewMap builds a map type over the given key and value types.
func NewMap(key, value Type, nullable bool) Type {
	return Type{
		Class:     NewCompoundClass(Map),
		Nullable:  nullable,
		Variation: SystemPreferredVariation,
		Parameters: []Parameter{
			UnnamedParameter(DataTypeValue{Type_: key}),
			UnnamedParameter(DataTypeValue{Type_: value}),
		},
	}
}

// NewPredicate returns the (non-nullable) type of a boolean predicate.
func NewPredicate() Type {
	return NewPredicateWithNullability(false)
}

// NewPredicateWithNullability returns the type of a boolean predicate.
func NewPredicateWithNullability(nullable bool) Type {
	return Type{Class: NewSimpleClass(Bool), Nullable: nullable, Variation: SystemPreferredVariation}
}

// NewInteger returns the type of a (default) i32 integer.
func NewInteger() Type {
	return NewIntegerWithNullability(false)
}

// NewIntegerWithNullability returns the type of an i32 integer.
func NewIntegerWithNullability(nullable bool) Type {
	return Type{Class: NewSimpleClass(I32), Nullable: nullable, Variation: SystemPreferredVariation}
}

// Equal reports structural equality: same class, nullability, variation and
// parameters.
func (t Type) Equal(other Type) bool {
	if !t.Class.Equal(other.Class) || t.Nullable != other.Nullable || !t.Variation.Equal(other.Variation) {
		return false
	}
	if len(t.Parameters) != len(other.Parameters) {
		return false
	}
	for i := range t.Parameters {
		if !t.Parameters[i].Equal(other.Parameters[i]) {
			return false
		}
	}
	return true
}

func (t Type) String() string {
	var b strings.Builder
	b.WriteString(t.Class.String())
	if t.Nullable {
		b.WriteByte('?')
	}
	if t.Variation.Kind() != SystemPreferred {
		b.WriteByte('[')
		b.WriteString(t.Variation.String())
		b.WriteByte(']')
	}
	if len(t.Parameters) > 0 {
		b.WriteByte('<')
		for i, p := range t.Parameters {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(p.String())
		}
		b.WriteByte('>')
	}
	return b.String()
}

// ApplyFieldNames rewrites a struct type's parameter names from names,
// failing if the cardinalities disagree.
func (t Type) ApplyFieldNames(names []string) (Type, error) {
	if len(names) != len(t.Parameters) {
		return Type{}, fmt.Errorf("cannot apply %d field name(s) to a struct with %d field(s)", len(names), len(t.Parameters))
	}
	params := make([]Parameter, len(t.Parameters))
	for i, p := range t.Parameters {
		name := names[i]
		params[i] = Parameter{Name: &name, Value: p.Value}
	}
	out := t
	out.Parameters = params
	return out, nil
}

// StripFieldNames is the inverse of ApplyFieldNames: it clears all
// parameter names.
func (t Type) StripFieldNames() Type {
	params := make([]Parameter, len(t.Parameters))
	for i, p := range t.Parameters {
		params[i] = Parameter{Value: p.Value}
	}
	out := t
	out.Parameters = params
	return out
}

// FieldNames returns the struct's field names, in order, when every
// parameter is named; ok is false otherwise.
func (t Type) FieldNames() (names []string, ok bool) {
	names = make([]string, len(t.Parameters))
	for i, p := range t.Parameters {
		n, has := p.GetName()
		if !has {
			return nil, false
		}
		names[i] = n
	}
	return names, true
}
