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

import "fmt"

// Value is the closed sum type of meta values, implemented as an
// interface with an unexported marker method so the variant set stays
// closed while the evaluator can still switch over every case.
type Value interface {
	isValue()
	// Type returns this value's metatype.
	Type() MetaType
	String() string
}

// UnresolvedValue is the distinguished placeholder used to keep evaluation
// progressing after a local failure.
type UnresolvedValue struct{}

func (UnresolvedValue) isValue()       {}
func (UnresolvedValue) Type() MetaType { return MetaUnresolved }
func (UnresolvedValue) String() string { return "!" }

// BoolValue wraps a metabool.
type BoolValue bool

func (BoolValue) isValue()       {}
func (BoolValue) Type() MetaType { return MetaBoolean }
func (v BoolValue) String() string {
	if v {
		return "true"
	}
	return "false"
}

// IntValue wraps a metaint. Arithmetic on IntValue is signed 64-bit, with
// overflow reported as an error.
type IntValue int64

func (IntValue) isValue()         {}
func (IntValue) Type() MetaType   { return MetaInteger }
func (v IntValue) String() string { return fmt.Sprintf("%d", int64(v)) }

// EnumValue wraps a metaenum (an identifier-valued string).
type EnumValue string

func (EnumValue) isValue()       {}
func (EnumValue) Type() MetaType { return MetaEnum }
func (v EnumValue) String() string { return string(v) }

// StringValue wraps a metastr.
type StringValue string

func (StringValue) isValue()       {}
func (StringValue) Type() MetaType { return MetaString }
func (v StringValue) String() string {
	return fmt.Sprintf("%q", string(v))
}

// DataTypeValue wraps a data Type as a meta value.
type DataTypeValue struct {
	Type_ Type
}

func (DataTypeValue) isValue()       {}
func (DataTypeValue) Type() MetaType { return MetaDataType }
func (v DataTypeValue) String() string {
	return v.Type_.String()
}

// GetDataType returns the underlying data type, treating UnresolvedValue
// as the unresolved data type.
func GetDataType(v Value) (Type, bool) {
	switch x := v.(type) {
	case UnresolvedValue:
		return NewUnresolvedType(), true
	case DataTypeValue:
		return x.Type_, true
	default:
		return Type{}, false
	}
}
