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
	"github.com/shopspring/decimal"

	"github.com/substrait-io/substrait-validator-go/diag"
)

// NewDecimal builds a decimal type, checking precision and scale against
// the class's declared slots and against each other: precision must be
// 1..38, scale 0..precision.
func NewDecimal(precision, scale int64, nullable bool, variation Variation) (Type, error) {
	if scale > precision {
		return Type{}, newEvalError(diag.TypeMismatchedParameters,
			"scale %d exceeds precision %d", scale, precision)
	}
	return New(NewCompoundClass(Decimal), nullable, variation,
		[]Parameter{UnnamedParameter(IntValue(precision)), UnnamedParameter(IntValue(scale))},
		Decimal.ParameterSlots())
}

// DecimalBounds returns the inclusive value range decimal<precision, scale>
// can represent: ±(10^(precision-scale) - 10^-scale). The bounds are
// computed with exact decimal arithmetic; at 38 digits they have no exact
// float64 or int64 rendering.
func DecimalBounds(precision, scale int64) (lo, hi decimal.Decimal) {
	hi = decimal.New(1, int32(precision-scale)).Sub(decimal.New(1, int32(-scale)))
	return hi.Neg(), hi
}

// CheckDecimalFits reports whether v is representable by decimal<precision,
// scale>: within DecimalBounds and with no more than scale fraction digits.
func CheckDecimalFits(v decimal.Decimal, precision, scale int64) error {
	lo, hi := DecimalBounds(precision, scale)
	if v.LessThan(lo) || v.GreaterThan(hi) {
		return newEvalError(diag.IllegalValue,
			"%s does not fit decimal<%d, %d>; the representable range is %s to %s",
			v, precision, scale, lo, hi)
	}
	if int64(-v.Exponent()) > scale {
		return newEvalError(diag.IllegalValue,
			"%s has more than %d fraction digit(s)", v, scale)
	}
	return nil
}
