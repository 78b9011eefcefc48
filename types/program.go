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

	"github.com/substrait-io/substrait-validator-go/diag"
)

// Statement is lhs_pattern = rhs_expression: Expr is evaluated to a Value,
// then matched against LHS, in order, before a Program's final expression
// runs. A BindingPattern LHS is how a let-binding is expressed; any other
// pattern turns the statement into a constraint (e.g.
// LiteralPattern{BoolValue(true)} for "assert expr").
type Statement struct {
	LHS  Pattern
	Expr Pattern
}

// Program is a small sequence of let-bindings followed by a final
// expression — the compiled form of a type-derivation rule. It reuses
// Pattern as its expression AST, since a pattern's Evaluate method
// already computes a Value from a Context.
type Program struct {
	Statements []Statement
	Final      Pattern
}

// Evaluate runs the program's statements against ctx in order, then
// evaluates and returns the final expression. Each statement evaluates its
// RHS and matches it against its LHS pattern; a failed match fails the
// whole program with TypeDerivationFailed, the same way a failed evaluation
// does. Errors are prefixed with "on line N" for a failing statement, or
// "in final expression" for a failure in Final, so a multi-statement
// derivation names where it went wrong.
func (p Program) Evaluate(ctx *Context) (Value, error) {
	for i, stmt := range p.Statements {
		v, err := stmt.Expr.Evaluate(ctx)
		if err != nil {
			return nil, prefixEvalError(err, fmt.Sprintf("on line %d", i+1))
		}
		ok, err := stmt.LHS.Match(ctx, v)
		if err != nil {
			return nil, prefixEvalError(err, fmt.Sprintf("on line %d", i+1))
		}
		if !ok {
			return nil, newEvalError(diag.TypeDerivationFailed,
				"on line %d: %s does not match %s", i+1, v.String(), stmt.LHS.String())
		}
	}
	v, err := p.Final.Evaluate(ctx)
	if err != nil {
		return nil, prefixEvalError(err, "in final expression")
	}
	return v, nil
}

// EvaluateType runs the program and coerces its result to a data Type,
// failing if the final value isn't one.
func (p Program) EvaluateType(ctx *Context) (Type, error) {
	v, err := p.Evaluate(ctx)
	if err != nil {
		return Type{}, err
	}
	dt, ok := GetDataType(v)
	if !ok {
		return Type{}, newEvalError(diag.TypeDerivationInvalid, "final expression did not evaluate to a data type, got %s", v.String())
	}
	return dt, nil
}
