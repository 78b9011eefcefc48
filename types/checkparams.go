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

import "github.com/substrait-io/substrait-validator-go/diag"

// CheckParameters validates params against a class's declared slots:
// cardinality must fall within [MinParameters(slots), len(slots)] unless
// variadic (in which case there is no upper bound, and the last slot's
// pattern is reused for every parameter past len(slots)), each supplied
// parameter must match its slot's pattern, and a parameter's name must be
// absent unless allowsNames (structs do; every other class does not). A
// nil Pattern on a slot means "accept anything". A parameter with a nil
// Value is a skipped slot: legal only when the slot is optional, and
// exempt from the slot's pattern rather than matched against it.
func CheckParameters(slots []ParameterSlot, params []Parameter, variadic, allowsNames bool) error {
	min := MinParameters(slots)
	if len(params) < min {
		return newEvalError(diag.TypeMismatchedParameters,
			"expected at least %d parameter(s), got %d", min, len(params))
	}
	if !variadic && len(params) > len(slots) {
		return newEvalError(diag.TypeMismatchedParameters,
			"expected at most %d parameter(s), got %d", len(slots), len(params))
	}
	ctx := NewContext()
	for i, param := range params {
		if name, has := param.GetName(); has && !allowsNames {
			return newEvalError(diag.TypeMismatchedParameters,
				"parameter %s: named parameters are not allowed for this class", name)
		}
		if param.Value == nil {
			if !slotOptionalFor(slots, i, variadic) {
				return newEvalError(diag.TypeMismatchedParameters,
					"parameter %s: no value was provided, but this parameter slot is not optional", SlotName(slots, i))
			}
			continue
		}
		pat := slotPatternFor(slots, i, variadic)
		if pat == nil {
			continue
		}
		ok, err := pat.Match(ctx, param.Value)
		if err != nil {
			return prefixEvalError(err, "parameter "+SlotName(slots, i))
		}
		if !ok {
			return newEvalError(diag.TypeMismatchedParameters,
				"parameter %s: %s does not match %s", SlotName(slots, i), param.Value.String(), pat.String())
		}
	}
	return nil
}

func slotPatternFor(slots []ParameterSlot, i int, variadic bool) Pattern {
	if i < len(slots) {
		return slots[i].Pattern
	}
	if variadic && len(slots) > 0 {
		return slots[len(slots)-1].Pattern
	}
	return nil
}

// slotOptionalFor mirrors slotPatternFor for the Optional flag. With no
// declared slot to consult there is no constraint to enforce, so a skipped
// value is allowed.
func slotOptionalFor(slots []ParameterSlot, i int, variadic bool) bool {
	if i < len(slots) {
		return slots[i].Optional
	}
	if variadic && len(slots) > 0 {
		return slots[len(slots)-1].Optional
	}
	return true
}
