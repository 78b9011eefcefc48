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

import "strconv"

// Parameter is one slot of a parameterized (compound) type: an optional
// name, used for named struct/schema elements, and an optional value. A
// nil Value (as opposed to a Value that happens to be unresolved) means the
// parameter slot was explicitly skipped.
type Parameter struct {
	Name  *string
	Value Value
}

// NullParameter builds a placeholder for a skipped parameter.
func NullParameter() Parameter {
	return Parameter{}
}

// NamedParameter builds a named parameter.
func NamedParameter(name string, v Value) Parameter {
	return Parameter{Name: &name, Value: v}
}

// UnnamedParameter builds an unnamed parameter.
func UnnamedParameter(v Value) Parameter {
	return Parameter{Value: v}
}

// GetName returns the parameter's name, if any.
func (p Parameter) GetName() (string, bool) {
	if p.Name == nil {
		return "", false
	}
	return *p.Name, true
}

// Equal reports structural equality between two parameters.
func (p Parameter) Equal(other Parameter) bool {
	if (p.Name == nil) != (other.Name == nil) {
		return false
	}
	if p.Name != nil && *p.Name != *other.Name {
		return false
	}
	return valuesEqual(p.Value, other.Value)
}

func valuesEqual(a, b Value) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	switch av := a.(type) {
	case DataTypeValue:
		bv, ok := b.(DataTypeValue)
		return ok && av.Type_.Equal(bv.Type_)
	default:
		return a.Type() == b.Type() && a.String() == b.String()
	}
}

func (p Parameter) String() string {
	if p.Name != nil {
		if p.Value == nil {
			return *p.Name + ": null"
		}
		return *p.Name + ": " + p.Value.String()
	}
	if p.Value == nil {
		return "null"
	}
	return p.Value.String()
}

// ParameterSlot describes one declared parameter slot of a class, used for
// parameter-count and pattern checking.
type ParameterSlot struct {
	Name     string // empty if unnamed
	Optional bool
	Pattern  Pattern
}

// MinParameters computes the minimum parameter cardinality of a class's
// declared slots: index-of-last-non-optional + 1.
func MinParameters(slots []ParameterSlot) int {
	min := 0
	for i, s := range slots {
		if !s.Optional {
			min = i + 1
		}
	}
	return min
}

// SlotName computes the name used for the i-th provided parameter (0-based)
// given the class's declared slots: the slot's own name, the positional
// index if unnamed, and for variadic tail parameters past the last declared
// slot, "{slotname}.{i+1-len}" (or the bare positional index if that slot
// is unnamed).
func SlotName(slots []ParameterSlot, i int) string {
	if i < len(slots) {
		if slots[i].Name != "" {
			return slots[i].Name
		}
		return strconv.Itoa(i)
	}
	last := slots[len(slots)-1]
	if last.Name == "" {
		return strconv.Itoa(i)
	}
	return last.Name + "." + strconv.Itoa(i+1-len(slots))
}
