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

package types_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/substrait-io/substrait-validator-go/types"
)

func TestNewDecimalChecksBounds(t *testing.T) {
	dt, err := types.NewDecimal(38, 9, false, types.SystemPreferredVariation)
	require.NoError(t, err)
	require.Equal(t, "decimal<38, 9>", dt.String())

	_, err = types.NewDecimal(0, 0, false, types.SystemPreferredVariation)
	require.Error(t, err, "precision below 1")

	_, err = types.NewDecimal(39, 0, false, types.SystemPreferredVariation)
	require.Error(t, err, "precision above 38")

	_, err = types.NewDecimal(10, 11, false, types.SystemPreferredVariation)
	require.Error(t, err)
	require.Contains(t, err.Error(), "scale 11 exceeds precision 10")

	_, err = types.NewDecimal(10, -1, false, types.SystemPreferredVariation)
	require.Error(t, err, "negative scale")
}

func TestDecimalBounds(t *testing.T) {
	lo, hi := types.DecimalBounds(3, 1)
	require.Equal(t, "99.9", hi.String())
	require.Equal(t, "-99.9", lo.String())

	// A 38-digit bound prints exactly, digit for digit.
	_, hi = types.DecimalBounds(38, 0)
	require.Equal(t, "99999999999999999999999999999999999999", hi.String())
}

func TestCheckDecimalFits(t *testing.T) {
	v := decimal.RequireFromString("99.9")
	require.NoError(t, types.CheckDecimalFits(v, 3, 1))

	v = decimal.RequireFromString("100")
	err := types.CheckDecimalFits(v, 3, 1)
	require.Error(t, err)
	require.Contains(t, err.Error(), "does not fit")

	v = decimal.RequireFromString("9.99")
	err = types.CheckDecimalFits(v, 3, 1)
	require.Error(t, err)
	require.Contains(t, err.Error(), "fraction digit")
}

func TestDerivedCompoundTypesAreBoundsChecked(t *testing.T) {
	prog, err := types.ParseProgram("DECIMAL<99, 2>")
	require.NoError(t, err)
	_, err = prog.EvaluateType(types.NewContext())
	require.Error(t, err)

	prog, err = types.ParseProgram("DECIMAL<10, 11>")
	require.NoError(t, err)
	_, err = prog.EvaluateType(types.NewContext())
	require.Error(t, err)
	require.Contains(t, err.Error(), "scale 11 exceeds precision 10")
}
