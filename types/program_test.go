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
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/substrait-io/substrait-validator-go/types"
)

func TestProgramEvaluatesStatementsThenFinal(t *testing.T) {
	prog := types.Program{
		Statements: []types.Statement{
			{LHS: types.BindingPattern{Name: "a"}, Expr: types.LiteralPattern{Value: types.IntValue(2)}},
			{LHS: types.BindingPattern{Name: "b"}, Expr: types.BindingPattern{Name: "a"}},
		},
		Final: types.BindingPattern{Name: "b"},
	}

	v, err := prog.Evaluate(types.NewContext())
	require.NoError(t, err)
	require.Equal(t, types.IntValue(2), v)
}

func TestProgramStatementAssertsConstraint(t *testing.T) {
	passing := types.Program{
		Statements: []types.Statement{
			{LHS: types.LiteralPattern{Value: types.BoolValue(true)}, Expr: types.LiteralPattern{Value: types.BoolValue(true)}},
		},
		Final: types.LiteralPattern{Value: types.IntValue(0)},
	}
	v, err := passing.Evaluate(types.NewContext())
	require.NoError(t, err)
	require.Equal(t, types.IntValue(0), v)

	failing := types.Program{
		Statements: []types.Statement{
			{LHS: types.LiteralPattern{Value: types.BoolValue(true)}, Expr: types.LiteralPattern{Value: types.BoolValue(false)}},
		},
		Final: types.LiteralPattern{Value: types.IntValue(0)},
	}
	_, err = failing.Evaluate(types.NewContext())
	require.Error(t, err)
	require.True(t, strings.HasPrefix(err.Error(), "on line 1"))
}

func TestProgramErrorIsPrefixedWithLineNumber(t *testing.T) {
	prog := types.Program{
		Statements: []types.Statement{
			{LHS: types.BindingPattern{Name: "a"}, Expr: types.LiteralPattern{Value: types.IntValue(1)}},
			{LHS: types.BindingPattern{Name: "b"}, Expr: types.BindingPattern{Name: "undefined"}},
		},
		Final: types.BindingPattern{Name: "b"},
	}

	_, err := prog.Evaluate(types.NewContext())
	require.Error(t, err)
	require.True(t, strings.HasPrefix(err.Error(), "on line 2"))
}

func TestProgramFinalExpressionErrorIsPrefixed(t *testing.T) {
	prog := types.Program{Final: types.BindingPattern{Name: "missing"}}

	_, err := prog.Evaluate(types.NewContext())
	require.Error(t, err)
	require.True(t, strings.HasPrefix(err.Error(), "in final expression"))
}

func TestProgramEvaluateTypeRequiresDataType(t *testing.T) {
	prog := types.Program{Final: types.LiteralPattern{Value: types.IntValue(1)}}
	_, err := prog.EvaluateType(types.NewContext())
	require.Error(t, err)

	prog2 := types.Program{Final: types.LiteralPattern{Value: types.DataTypeValue{Type_: types.NewInteger()}}}
	dt, err := prog2.EvaluateType(types.NewContext())
	require.NoError(t, err)
	require.True(t, dt.Equal(types.NewInteger()))
}
