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
	"strings"

	"github.com/substrait-io/substrait-validator-go/diag"
)

// EvalError is returned by Pattern evaluation/matching and Program
// execution. It carries a diag.Kind but not yet a severity or path — those
// are filled in by the caller (package planparse) when the error is
// surfaced as a diagnostic on a tree node.
type EvalError struct {
	Kind    diag.Kind
	Message string
}

func (e *EvalError) Error() string { return e.Message }

func newEvalError(kind diag.Kind, format string, args ...interface{}) *EvalError {
	return &EvalError{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// prefixEvalError wraps err's message with text, preserving its Kind;
// programs use it for their "on line N" / "in final expression" prefixes.
func prefixEvalError(err error, text string) error {
	ee, ok := err.(*EvalError)
	if !ok {
		return fmt.Errorf("%s: %w", text, err)
	}
	return &EvalError{Kind: ee.Kind, Message: text + ": " + ee.Message}
}

// Pattern is the closed sum type of meta-level expressions that both match
// (with binding) and evaluate. Implemented as an interface
// with an unexported marker method.
type Pattern interface {
	isPattern()
	// Evaluate computes this pattern's value given ctx.
	Evaluate(ctx *Context) (Value, error)
	// Match attempts to match v against this pattern, possibly binding new
	// variables into ctx. On failure, ctx is left unchanged.
	Match(ctx *Context, v Value) (bool, error)
	String() string
}

// --- Literal patterns -------------------------------------------------

// LiteralPattern matches/evaluates to a fixed Value.
type LiteralPattern struct{ Value Value }

func (LiteralPattern) isPattern() {}

func (p LiteralPattern) Evaluate(*Context) (Value, error) { return p.Value, nil }

func (p LiteralPattern) Match(ctx *Context, v Value) (bool, error) {
	if isUnresolvedValue(v) {
		return true, nil
	}
	return valuesEqual(p.Value, v), nil
}

// isUnresolvedValue reports whether v is the unresolved placeholder, which
// matches every pattern so an upstream failure doesn't cascade into
// secondary mismatch diagnostics.
func isUnresolvedValue(v Value) bool {
	_, ok := v.(UnresolvedValue)
	return ok
}

func (p LiteralPattern) String() string { return p.Value.String() }

// --- Binding / wildcard -----------------------------------------------

// BindingPattern names a variable (case-insensitively); evaluating it reads
// the bound value, matching it binds (or, if already bound, compares
// against) the value.
type BindingPattern struct{ Name string }

func (BindingPattern) isPattern() {}

func (p BindingPattern) Evaluate(ctx *Context) (Value, error) {
	v, ok := ctx.Get(p.Name)
	if !ok {
		return nil, newEvalError(diag.TypeDerivationFailed, "undefined variable %q", p.Name)
	}
	return v, nil
}

func (p BindingPattern) Match(ctx *Context, v Value) (bool, error) {
	if existing, ok := ctx.Get(p.Name); ok {
		return valuesEqual(existing, v), nil
	}
	ctx.Bind(p.Name, v)
	return true, nil
}

func (p BindingPattern) String() string { return "?" + p.Name }

// WildcardPattern matches anything without binding.
type WildcardPattern struct{}

func (WildcardPattern) isPattern() {}
func (WildcardPattern) Evaluate(*Context) (Value, error) {
	return nil, newEvalError(diag.TypeDerivationFailed, "wildcard pattern cannot be evaluated")
}
func (WildcardPattern) Match(*Context, Value) (bool, error) { return true, nil }
func (WildcardPattern) String() string                      { return "_" }

// --- Integer range -----------------------------------------------------

// IntRangePattern matches any integer in [Min, Max] (inclusive).
type IntRangePattern struct{ Min, Max int64 }

func (IntRangePattern) isPattern() {}

func (p IntRangePattern) Evaluate(*Context) (Value, error) {
	return nil, newEvalError(diag.TypeDerivationFailed, "integer range pattern cannot be evaluated")
}

func (p IntRangePattern) Match(_ *Context, v Value) (bool, error) {
	if isUnresolvedValue(v) {
		return true, nil
	}
	iv, ok := v.(IntValue)
	if !ok {
		return false, nil
	}
	return int64(iv) >= p.Min && int64(iv) <= p.Max, nil
}

func (p IntRangePattern) String() string { return fmt.Sprintf("%d..%d", p.Min, p.Max) }

// --- Enum set -----------------------------------------------------------

// EnumSetPattern matches any of a fixed, case-insensitive set of enum
// variant names.
type EnumSetPattern struct{ Variants []string }

func (EnumSetPattern) isPattern() {}

func (p EnumSetPattern) Evaluate(*Context) (Value, error) {
	return nil, newEvalError(diag.TypeDerivationFailed, "enum set pattern cannot be evaluated")
}

func (p EnumSetPattern) Match(_ *Context, v Value) (bool, error) {
	if isUnresolvedValue(v) {
		return true, nil
	}
	ev, ok := v.(EnumValue)
	if !ok {
		return false, nil
	}
	for _, variant := range p.Variants {
		if strings.EqualFold(variant, string(ev)) {
			return true, nil
		}
	}
	return false, nil
}

func (p EnumSetPattern) String() string { return strings.Join(p.Variants, "|") }

// --- Structural data-type pattern ---------------------------------------

// DataTypePattern recursively matches a data type's class, nullability,
// variation and each parameter slot. A nil field means "don't
// care". ParamPatterns is matched positionally; if the pattern's Variadic
// field is set, the last entry of ParamPatterns is reused for any excess
// parameters, and otherwise parameters past the last entry are not checked.
// The class's own variadic-ness is not consulted.
type DataTypePattern struct {
	Class         *Class
	Nullable      Pattern // matched against a BoolValue; nil means don't-care
	Variation     *Variation
	ParamPatterns []Pattern
	Variadic      bool
}

func (DataTypePattern) isPattern() {}

// Evaluate constructs the concrete data type this pattern describes, given
// that every component is itself evaluable: the class must be fixed, a nil
// Nullable evaluates as non-nullable, and each parameter pattern is
// evaluated in order (a nil entry becomes a skipped/null parameter slot).
// This is what makes a derivation program's final expression, e.g.
// decimal<prec, scale>, yield a type.
func (p DataTypePattern) Evaluate(ctx *Context) (Value, error) {
	if p.Class == nil {
		return nil, newEvalError(diag.TypeDerivationFailed, "data type pattern without a class cannot be evaluated")
	}
	nullable := false
	if p.Nullable != nil {
		nv, err := p.Nullable.Evaluate(ctx)
		if err != nil {
			return nil, err
		}
		b, ok := nv.(BoolValue)
		if !ok {
			return nil, newEvalError(diag.TypeDerivationFailed, "nullability must evaluate to a boolean, got %s", nv.String())
		}
		nullable = bool(b)
	}
	variation := SystemPreferredVariation
	if p.Variation != nil {
		variation = *p.Variation
	}
	params := make([]Parameter, 0, len(p.ParamPatterns))
	for _, pat := range p.ParamPatterns {
		if pat == nil {
			params = append(params, NullParameter())
			continue
		}
		v, err := pat.Evaluate(ctx)
		if err != nil {
			return nil, err
		}
		params = append(params, UnnamedParameter(v))
	}
	// Compound classes declare parameter slots, so a derived
	// decimal<99, -1> fails here instead of flowing on as a type.
	if cmp, ok := p.Class.Compound(); ok {
		return evaluateCompound(cmp, nullable, variation, params)
	}
	return DataTypeValue{Type_: Type{
		Class:      *p.Class,
		Nullable:   nullable,
		Variation:  variation,
		Parameters: params,
	}}, nil
}

func evaluateCompound(cmp Compound, nullable bool, variation Variation, params []Parameter) (Value, error) {
	t, err := New(NewCompoundClass(cmp), nullable, variation, params, cmp.ParameterSlots())
	if err != nil {
		return nil, err
	}
	if cmp == Decimal && len(params) == 2 {
		p, pok := params[0].Value.(IntValue)
		s, sok := params[1].Value.(IntValue)
		if pok && sok && int64(s) > int64(p) {
			return nil, newEvalError(diag.TypeMismatchedParameters,
				"scale %d exceeds precision %d", int64(s), int64(p))
		}
	}
	return DataTypeValue{Type_: t}, nil
}

func (p DataTypePattern) Match(ctx *Context, v Value) (bool, error) {
	dt, ok := GetDataType(v)
	if !ok {
		return false, nil
	}
	snap := ctx.snapshot()
	ok, err := p.matchType(ctx, dt)
	if err != nil {
		ctx.restore(snap)
		return false, err
	}
	if !ok {
		ctx.restore(snap)
	}
	return ok, nil
}

func (p DataTypePattern) matchType(ctx *Context, dt Type) (bool, error) {
	if dt.IsUnresolvedType() {
		// An unresolved type matches any structural pattern, binding its
		// would-be captures to unresolved values so whatever consumes the
		// bindings keeps progressing without secondary diagnostics.
		for _, pat := range p.ParamPatterns {
			if pat != nil {
				_, _ = pat.Match(ctx, UnresolvedValue{})
			}
		}
		return true, nil
	}
	if p.Class != nil && !p.Class.Equal(dt.Class) {
		return false, nil
	}
	if p.Nullable != nil {
		ok, err := p.Nullable.Match(ctx, BoolValue(dt.Nullable))
		if err != nil || !ok {
			return false, err
		}
	}
	if p.Variation != nil && !p.Variation.Equal(dt.Variation) {
		return false, nil
	}
	for i, param := range dt.Parameters {
		pat := p.slotPattern(i)
		if pat == nil {
			continue
		}
		var v Value = UnresolvedValue{}
		if param.Value != nil {
			v = param.Value
		}
		ok, err := pat.Match(ctx, v)
		if err != nil || !ok {
			return false, err
		}
	}
	return true, nil
}

func (p DataTypePattern) slotPattern(i int) Pattern {
	if i < len(p.ParamPatterns) {
		return p.ParamPatterns[i]
	}
	if p.Variadic && len(p.ParamPatterns) > 0 {
		return p.ParamPatterns[len(p.ParamPatterns)-1]
	}
	return nil
}

func (p DataTypePattern) String() string {
	var b strings.Builder
	if p.Class == nil {
		b.WriteString("typename")
	} else {
		b.WriteString(p.Class.String())
	}
	if lp, ok := p.Nullable.(LiteralPattern); ok {
		if bv, ok := lp.Value.(BoolValue); ok && bool(bv) {
			b.WriteByte('?')
		}
	}
	if len(p.ParamPatterns) > 0 {
		b.WriteByte('<')
		for i, pat := range p.ParamPatterns {
			if i > 0 {
				b.WriteString(", ")
			}
			if pat == nil {
				b.WriteByte('?')
			} else {
				b.WriteString(pat.String())
			}
		}
		b.WriteByte('>')
	}
	return b.String()
}
