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

// Meta-type algebra. Kept in this same package as the
// data-type algebra (rather than a separate package) because the two are
// mutually recursive — a meta Value can hold a data Type (DataType
// variant), and a data Type's Parameters hold meta Values — which in Go
// would otherwise require an import cycle between two packages.
package types

// MetaType enumerates the types of the compile-time meta-value algebra.
// Much simpler than, and not extensible the way, the data type system is.
type MetaType int

const (
	MetaUnresolved MetaType = iota
	MetaBoolean
	MetaInteger
	MetaEnum
	MetaString
	MetaDataType
)

func (t MetaType) String() string {
	switch t {
	case MetaBoolean:
		return "metabool"
	case MetaInteger:
		return "metaint"
	case MetaEnum:
		return "metaenum"
	case MetaString:
		return "metastr"
	case MetaDataType:
		return "typename"
	default:
		return "!"
	}
}
