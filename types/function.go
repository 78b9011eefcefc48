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
	"math"
	"strings"

	"github.com/substrait-io/substrait-validator-go/diag"
)

// FunctionPattern is the call form of the type-derivation language: the
// arithmetic, comparison and boolean operators, the min/max/abs builtins,
// and the if-then-else ternary. Name holds the operator lexeme ("+", ">=",
// "&&", ...) or the builtin's lower-cased name ("min", "if", ...). It only
// evaluates; matching a value against a call matches against the call's
// result, so a call can still appear on a statement's left-hand side as a
// pure equality constraint.
type FunctionPattern struct {
	Name string
	Args []Pattern
}

func (FunctionPattern) isPattern() {}

func (p FunctionPattern) Evaluate(ctx *Context) (Value, error) {
	args := make([]Value, len(p.Args))
	for i, a := range p.Args {
		v, err := a.Evaluate(ctx)
		if err != nil {
			return nil, err
		}
		args[i] = v
	}
	return applyFunction(p.Name, args)
}

func (p FunctionPattern) Match(ctx *Context, v Value) (bool, error) {
	result, err := p.Evaluate(ctx)
	if err != nil {
		return false, err
	}
	return valuesEqual(result, v), nil
}

func (p FunctionPattern) String() string {
	parts := make([]string, len(p.Args))
	for i, a := range p.Args {
		parts[i] = a.String()
	}
	switch p.Name {
	case "if":
		return "if " + parts[0] + " then " + parts[1] + " else " + parts[2]
	case "!":
		return "!" + parts[0]
	case "+", "-", "*", "/", "==", "!=", "<", ">", "<=", ">=", "&&", "||":
		if len(parts) == 1 {
			return p.Name + parts[0]
		}
		return parts[0] + " " + p.Name + " " + parts[1]
	default:
		return p.Name + "(" + strings.Join(parts, ", ") + ")"
	}
}

// applyFunction dispatches one builtin call. All integer arithmetic is
// signed 64-bit with overflow reported as an error rather than wrapping.
func applyFunction(name string, args []Value) (Value, error) {
	switch name {
	case "if":
		if len(args) != 3 {
			return nil, arityError(name, 3, len(args))
		}
		cond, ok := args[0].(BoolValue)
		if !ok {
			return nil, typeErrorf("if condition must be a boolean, got %s", args[0])
		}
		if cond {
			return args[1], nil
		}
		return args[2], nil

	case "!":
		if len(args) != 1 {
			return nil, arityError(name, 1, len(args))
		}
		b, ok := args[0].(BoolValue)
		if !ok {
			return nil, typeErrorf("! needs a boolean operand, got %s", args[0])
		}
		return BoolValue(!b), nil

	case "&&", "||":
		if len(args) != 2 {
			return nil, arityError(name, 2, len(args))
		}
		a, aok := args[0].(BoolValue)
		b, bok := args[1].(BoolValue)
		if !aok || !bok {
			return nil, typeErrorf("%s needs two boolean operands", name)
		}
		if name == "&&" {
			return BoolValue(a && b), nil
		}
		return BoolValue(a || b), nil

	case "==", "!=":
		if len(args) != 2 {
			return nil, arityError(name, 2, len(args))
		}
		eq := valuesEqual(args[0], args[1])
		if name == "!=" {
			eq = !eq
		}
		return BoolValue(eq), nil

	case "<", ">", "<=", ">=":
		a, b, err := twoInts(name, args)
		if err != nil {
			return nil, err
		}
		switch name {
		case "<":
			return BoolValue(a < b), nil
		case ">":
			return BoolValue(a > b), nil
		case "<=":
			return BoolValue(a <= b), nil
		default:
			return BoolValue(a >= b), nil
		}

	case "+":
		a, b, err := twoInts(name, args)
		if err != nil {
			return nil, err
		}
		if (b > 0 && a > math.MaxInt64-b) || (b < 0 && a < math.MinInt64-b) {
			return nil, overflowError("%d + %d", a, b)
		}
		return IntValue(a + b), nil

	case "-":
		if len(args) == 1 {
			a, ok := args[0].(IntValue)
			if !ok {
				return nil, typeErrorf("- needs an integer operand, got %s", args[0])
			}
			if int64(a) == math.MinInt64 {
				return nil, overflowError("-(%d)", int64(a))
			}
			return IntValue(-a), nil
		}
		a, b, err := twoInts(name, args)
		if err != nil {
			return nil, err
		}
		if (b < 0 && a > math.MaxInt64+b) || (b > 0 && a < math.MinInt64+b) {
			return nil, overflowError("%d - %d", a, b)
		}
		return IntValue(a - b), nil

	case "*":
		a, b, err := twoInts(name, args)
		if err != nil {
			return nil, err
		}
		if a != 0 && b != 0 {
			c := a * b
			if c/a != b || (a == -1 && b == math.MinInt64) || (b == -1 && a == math.MinInt64) {
				return nil, overflowError("%d * %d", a, b)
			}
			return IntValue(c), nil
		}
		return IntValue(0), nil

	case "/":
		a, b, err := twoInts(name, args)
		if err != nil {
			return nil, err
		}
		if b == 0 {
			return nil, typeErrorf("division by zero")
		}
		if a == math.MinInt64 && b == -1 {
			return nil, overflowError("%d / %d", a, b)
		}
		return IntValue(a / b), nil

	case "min", "max":
		if len(args) == 0 {
			return nil, typeErrorf("%s needs at least one argument", name)
		}
		best, ok := args[0].(IntValue)
		if !ok {
			return nil, typeErrorf("%s needs integer arguments, got %s", name, args[0])
		}
		for _, v := range args[1:] {
			iv, ok := v.(IntValue)
			if !ok {
				return nil, typeErrorf("%s needs integer arguments, got %s", name, v)
			}
			if (name == "min" && iv < best) || (name == "max" && iv > best) {
				best = iv
			}
		}
		return best, nil

	case "abs":
		if len(args) != 1 {
			return nil, arityError(name, 1, len(args))
		}
		a, ok := args[0].(IntValue)
		if !ok {
			return nil, typeErrorf("abs needs an integer argument, got %s", args[0])
		}
		if int64(a) == math.MinInt64 {
			return nil, overflowError("abs(%d)", int64(a))
		}
		if a < 0 {
			return IntValue(-a), nil
		}
		return a, nil

	default:
		return nil, typeErrorf("unknown function %q", name)
	}
}

func arityError(name string, want, got int) error {
	return newEvalError(diag.TypeDerivationFailed, "%s expects %d argument(s), got %d", name, want, got)
}

func typeErrorf(format string, args ...interface{}) error {
	return newEvalError(diag.TypeDerivationFailed, format, args...)
}

func overflowError(format string, args ...interface{}) error {
	return newEvalError(diag.TypeDerivationFailed, "integer overflow in %s", fmt.Sprintf(format, args...))
}

func twoInts(name string, args []Value) (int64, int64, error) {
	if len(args) != 2 {
		return 0, 0, arityError(name, 2, len(args))
	}
	a, aok := args[0].(IntValue)
	b, bok := args[1].(IntValue)
	if !aok || !bok {
		return 0, 0, typeErrorf("%s needs two integer operands, got %s and %s", name, args[0], args[1])
	}
	return int64(a), int64(b), nil
}
