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

// Package types implements the data-type algebra: the runtime
// Class/Variation/Parameter/Type four-tuple, its constructors, and
// structural equality, plus the compile-time meta-value algebra layered
// on top of it.
package types

import (
	"math"

	"github.com/substrait-io/substrait-validator-go/extref"
)

// Simple enumerates the classes that take no parameters.
type Simple int

const (
	Bool Simple = iota
	I8
	I16
	I32
	I64
	FP32
	FP64
	Str
	Binary
	Timestamp
	Date
	Time
	IntervalYear
	IntervalDay
	UUID
)

var simpleNames = [...]string{
	"boolean", "i8", "i16", "i32", "i64", "fp32", "fp64", "string", "binary",
	"timestamp", "date", "time", "interval_year", "interval_day", "uuid",
}

func (s Simple) String() string {
	if int(s) < 0 || int(s) >= len(simpleNames) {
		return "unknown"
	}
	return simpleNames[s]
}

// ParseSimple looks up a simple class by its canonical lower-case name, as
// used in extension documents.
func ParseSimple(name string) (Simple, bool) {
	for i, n := range simpleNames {
		if n == name {
			return Simple(i), true
		}
	}
	return 0, false
}

// Compound enumerates the classes that require parameters.
type Compound int

const (
	Decimal Compound = iota
	Varchar
	FixedChar
	FixedBinary
	Struct
	List
	Map
)

var compoundNames = [...]string{
	"decimal", "varchar", "fixed_char", "fixed_binary", "struct", "list", "map",
}

func (c Compound) String() string {
	if int(c) < 0 || int(c) >= len(compoundNames) {
		return "unknown"
	}
	return compoundNames[c]
}

// ParseCompound looks up a compound class by its canonical lower-case
// name, as used in extension documents.
func ParseCompound(name string) (Compound, bool) {
	for i, n := range compoundNames {
		if n == name {
			return Compound(i), true
		}
	}
	return 0, false
}

// Variadic reports whether a compound class accepts more parameters than
// its declared slots, reusing the last slot for the extras.
func (c Compound) Variadic() bool {
	return c == Struct
}

// ParameterSlots returns the declared parameter slots of a compound class.
// New routes supplied parameters through CheckParameters against these, so
// an out-of-range precision/scale/length is rejected at construction. The
// struct slot is optional (an empty struct is legal) and reused variadically
// for every field.
func (c Compound) ParameterSlots() []ParameterSlot {
	anyType := DataTypePattern{}
	switch c {
	case Decimal:
		return []ParameterSlot{
			{Name: "precision", Pattern: IntRangePattern{Min: 1, Max: 38}},
			{Name: "scale", Pattern: IntRangePattern{Min: 0, Max: 38}},
		}
	case Varchar, FixedChar, FixedBinary:
		return []ParameterSlot{
			{Name: "length", Pattern: IntRangePattern{Min: 1, Max: math.MaxInt32}},
		}
	case Struct:
		return []ParameterSlot{{Optional: true, Pattern: anyType}}
	case List:
		return []ParameterSlot{{Name: "element", Pattern: anyType}}
	case Map:
		return []ParameterSlot{
			{Name: "key", Pattern: anyType},
			{Name: "value", Pattern: anyType},
		}
	default:
		return nil
	}
}

// TypeClassDef is the definition of a user-defined type class loaded from
// an extension document.
type TypeClassDef struct {
	Identifier extref.Identifier
}

// ClassKind distinguishes the three Class variants.
type ClassKind int

const (
	ClassUnresolved ClassKind = iota
	ClassSimple
	ClassCompound
	ClassUserDefined
)

// Class is the kind dimension of a data type, independent of
// nullability, variation and parameters. The zero value is Unresolved.
type Class struct {
	kind       ClassKind
	simple     Simple
	compound   Compound
	userDefRef extref.Reference[TypeClassDef]
}

// UnresolvedClass is the distinguished placeholder class.
var UnresolvedClass = Class{kind: ClassUnresolved}

// NewSimpleClass builds a Class for a parameterless simple type.
func NewSimpleClass(s Simple) Class { return Class{kind: ClassSimple, simple: s} }

// NewCompoundClass builds a Class for a parameterized compound type.
func NewCompoundClass(c Compound) Class { return Class{kind: ClassCompound, compound: c} }

// NewUserDefinedClass builds a Class referencing an extension-defined type
// class.
func NewUserDefinedClass(ref extref.Reference[TypeClassDef]) Class {
	return Class{kind: ClassUserDefined, userDefRef: ref}
}

func (c Class) Kind() ClassKind { return c.kind }

// Simple returns the underlying Simple class and true, if this is a simple
// class.
func (c Class) Simple() (Simple, bool) {
	if c.kind != ClassSimple {
		return 0, false
	}
	return c.simple, true
}

// Compound returns the underlying Compound class and true, if this is a
// compound class.
func (c Class) Compound() (Compound, bool) {
	if c.kind != ClassCompound {
		return 0, false
	}
	return c.compound, true
}

// UserDefined returns the underlying reference and true, if this is a
// user-defined class.
func (c Class) UserDefined() (extref.Reference[TypeClassDef], bool) {
	if c.kind != ClassUserDefined {
		return extref.Reference[TypeClassDef]{}, false
	}
	return c.userDefRef, true
}

// Variadic reports whether this class accepts excess trailing parameters.
func (c Class) Variadic() bool {
	return c.kind == ClassCompound && c.compound.Variadic()
}

// AllowsNames reports whether this class permits named parameters; only
// structs do.
func (c Class) AllowsNames() bool {
	return c.kind == ClassCompound && c.compound == Struct
}

// Equal reports whether c and other are the same class.
func (c Class) Equal(other Class) bool {
	if c.kind != other.kind {
		return false
	}
	switch c.kind {
	case ClassSimple:
		return c.simple == other.simple
	case ClassCompound:
		return c.compound == other.compound
	case ClassUserDefined:
		return c.userDefRef.URI == other.userDefRef.URI &&
			c.userDefRef.Name == other.userDefRef.Name
	default:
		return true // both unresolved
	}
}

func (c Class) String() string {
	switch c.kind {
	case ClassSimple:
		return c.simple.String()
	case ClassCompound:
		return c.compound.String()
	case ClassUserDefined:
		return c.userDefRef.Name
	default:
		return "unresolved"
	}
}
