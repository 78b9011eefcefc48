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

package expressions

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/substrait-io/substrait-validator-go/diag"
	"github.com/substrait-io/substrait-validator-go/extbind"
	"github.com/substrait-io/substrait-validator-go/input"
	"github.com/substrait-io/substrait-validator-go/parsectx"
	"github.com/substrait-io/substrait-validator-go/tree"
	"github.com/substrait-io/substrait-validator-go/types"
)

// Parse parses e under the row type schema (the struct type of the relation
// e is evaluated against), resolving function anchors through b. The
// derived type is set on c's node, and the expression's source text
// (approximated, since no AST-to-source pretty-printer exists in this
// repository — see the Cast/ScalarFunction branches below) is returned for
// callers, such as Sort, that weave it into a description.
func Parse(c *parsectx.Context, e *input.Expression, schema types.Type, b *extbind.Bindings) (types.Type, string) {
	if e == nil {
		c.Diagnose(diag.Error, diag.ProtoMissingField, "expression")
		t := types.NewUnresolvedType()
		c.Node().SetDataType(t)
		return t, "?"
	}
	var t types.Type
	var text string
	switch {
	case e.Literal != nil:
		c.MarkParsed("literal")
		t, text = literal(c, e.Literal)
	case e.Selection != nil:
		c.MarkParsed("selection")
		t, text = selection(c, e.Selection, schema, b)
	case e.ScalarFunction != nil:
		c.MarkParsed("scalar_function")
		t, text = scalarFunction(c, e.ScalarFunction, schema, b)
	case e.Cast != nil:
		c.MarkParsed("cast")
		t, text = cast(c, e.Cast, schema, b)
	default:
		c.Diagnose(diag.Error, diag.ProtoMissingField, "expression")
		t = types.NewUnresolvedType()
		c.Node().SetDataType(t)
		text = "?"
	}
	parsectx.Sweep(c, e)
	return t, text
}

func literal(c *parsectx.Context, l *input.Literal) (types.Type, string) {
	var t types.Type
	var text string
	switch {
	case l.Null != nil:
		c.MarkParsed("null")
		t = types.NewUnresolvedType()
		t.Nullable = true
		text = "null"
	case l.Boolean != nil:
		c.MarkParsed("boolean")
		t = types.Type{Class: types.NewSimpleClass(types.Bool), Variation: types.SystemPreferredVariation}
		text = fmt.Sprintf("%v", *l.Boolean)
	case l.I8 != nil:
		c.MarkParsed("i8")
		t = types.Type{Class: types.NewSimpleClass(types.I8), Variation: types.SystemPreferredVariation}
		text = fmt.Sprintf("%d", *l.I8)
	case l.I16 != nil:
		c.MarkParsed("i16")
		t = types.Type{Class: types.NewSimpleClass(types.I16), Variation: types.SystemPreferredVariation}
		text = fmt.Sprintf("%d", *l.I16)
	case l.I32 != nil:
		c.MarkParsed("i32")
		t = types.Type{Class: types.NewSimpleClass(types.I32), Variation: types.SystemPreferredVariation}
		text = fmt.Sprintf("%d", *l.I32)
	case l.I64 != nil:
		c.MarkParsed("i64")
		t = types.Type{Class: types.NewSimpleClass(types.I64), Variation: types.SystemPreferredVariation}
		text = fmt.Sprintf("%d", *l.I64)
	case l.Fp32 != nil:
		c.MarkParsed("fp32")
		t = types.Type{Class: types.NewSimpleClass(types.FP32), Variation: types.SystemPreferredVariation}
		text = fmt.Sprintf("%v", *l.Fp32)
	case l.Fp64 != nil:
		c.MarkParsed("fp64")
		t = types.Type{Class: types.NewSimpleClass(types.FP64), Variation: types.SystemPreferredVariation}
		text = fmt.Sprintf("%v", *l.Fp64)
	case l.String_ != nil:
		c.MarkParsed("string")
		t = types.Type{Class: types.NewSimpleClass(types.Str), Variation: types.SystemPreferredVariation}
		text = fmt.Sprintf("%q", *l.String_)
	case l.Binary != nil:
		c.MarkParsed("binary")
		t = types.Type{Class: types.NewSimpleClass(types.Binary), Variation: types.SystemPreferredVariation}
		text = "<binary literal>"
	case l.Decimal != nil:
		c.MarkParsed("decimal")
		t, text = decimalLiteral(c, l.Decimal)
	default:
		t = types.NewUnresolvedType()
		text = "<empty literal>"
	}
	c.MarkParsed("nullable")
	t.Nullable = l.Nullable || l.Null != nil
	c.Node().SetDataType(t)
	c.Node().Describe(fmt.Sprintf("Literal %s", text))
	parsectx.Sweep(c, l)
	return t, text
}

// decimalLiteral derives decimal<precision, scale> for the literal and
// checks that the declared parameters are in range and the value actually
// fits them, using exact decimal arithmetic for the bounds.
func decimalLiteral(c *parsectx.Context, d *input.LiteralDecimal) (types.Type, string) {
	t, err := types.NewDecimal(int64(d.Precision), int64(d.Scale), false, types.SystemPreferredVariation)
	if err != nil {
		c.Diagnose(diag.Error, diag.TypeMismatchedParameters, err.Error())
		return types.NewUnresolvedType(), d.Value
	}
	v, err := decimal.NewFromString(d.Value)
	if err != nil {
		c.Diagnose(diag.Error, diag.IllegalValue, fmt.Sprintf("%q is not a decimal value: %s", d.Value, err))
		return t, d.Value
	}
	if err := types.CheckDecimalFits(v, int64(d.Precision), int64(d.Scale)); err != nil {
		c.Diagnose(diag.Error, diag.IllegalValue, err.Error())
	}
	return t, v.String()
}

// selection resolves a (possibly nested) struct field reference against
// schema, descending one StructFieldSegment at a time.
func selection(c *parsectx.Context, ref *input.FieldReference, schema types.Type, b *extbind.Bindings) (types.Type, string) {
	if ref.DirectReference == nil {
		c.Diagnose(diag.Error, diag.ProtoMissingField, "direct_reference")
		t := types.NewUnresolvedType()
		c.Node().SetDataType(t)
		return t, "?"
	}
	c.MarkParsed("direct_reference")
	t, text := resolveSegment(c, ref.DirectReference, schema)
	c.Node().SetDataType(t)
	c.Node().Describe(fmt.Sprintf("Field reference %s", text))
	parsectx.Sweep(c, ref)
	return t, text
}

func resolveSegment(c *parsectx.Context, seg *input.ReferenceSegment, schema types.Type) (types.Type, string) {
	if seg.StructField == nil {
		c.Diagnose(diag.Error, diag.ProtoMissingField, "struct_field")
		return types.NewUnresolvedType(), "?"
	}
	c.MarkParsed("struct_field")
	field := seg.StructField
	c.MarkParsed("field")
	if field.Field < 0 || int(field.Field) >= len(schema.Parameters) {
		c.Diagnose(diag.Error, diag.IllegalValue, fmt.Sprintf("field index %d is out of range for a schema with %d field(s)", field.Field, len(schema.Parameters)))
		return types.NewUnresolvedType(), fmt.Sprintf("$%d", field.Field)
	}
	param := schema.Parameters[field.Field]
	elemType, ok := types.GetDataType(param.Value)
	if !ok {
		elemType = types.NewUnresolvedType()
	}
	text := fmt.Sprintf("$%d", field.Field)
	if name, has := param.GetName(); has {
		text = name
	}
	if field.Child != nil {
		c.MarkParsed("child")
		childType, childText := resolveSegment(c, field.Child, elemType)
		return childType, text + "." + childText
	}
	return elemType, text
}

func scalarFunction(c *parsectx.Context, fn *input.ScalarFunction, schema types.Type, b *extbind.Bindings) (types.Type, string) {
	c.MarkParsed("function_reference")
	def, ok := b.LookupFunction(c, fn.FunctionReference)
	name := "?"
	if def != nil {
		if len(def.Identifier.Names) > 0 {
			name = def.Identifier.Names[0]
		}
	}

	argTypes := make([]types.Type, len(fn.Arguments))
	argTexts := make([]string, len(fn.Arguments))
	parsectx.RepeatedField(c, "arguments", fn.Arguments, tree.NodeProtoMessage, func(cc *parsectx.Context, i int, arg input.Expression) {
		argTypes[i], argTexts[i] = Parse(cc, &arg, schema, b)
	})

	var t types.Type
	if ok {
		values := make([]types.Value, len(argTypes))
		for i, at := range argTypes {
			values[i] = types.DataTypeValue{Type_: at}
		}
		derived, err := def.DeriveReturnType(values)
		if err != nil {
			c.Diagnose(diag.Warning, diag.TypeDerivationFailed, err.Error())
			t = types.NewUnresolvedType()
		} else {
			t = derived
		}
	} else {
		t = types.NewUnresolvedType()
	}

	text := name + "(" + joinTexts(argTexts) + ")"
	c.Node().SetDataType(t)
	c.Node().Describe(fmt.Sprintf("Invoke function %s", name))
	// output_type is an optional hint this revision doesn't cross-check
	// against the derived type, so it's left for Sweep to surface.
	parsectx.Sweep(c, fn)
	return t, text
}

func cast(c *parsectx.Context, ca *input.Cast, schema types.Type, b *extbind.Bindings) (types.Type, string) {
	target := parsectx.Field(c, "type", ca.Type, tree.NodeProtoMessage, func(cc *parsectx.Context, t *input.Type) {
		cc.Node().SetDataType(ParseType(cc, t, b))
	})
	targetType := extbind.NodeDataType(target)

	var inputText string
	if ca.Input != nil {
		parsectx.Field(c, "input", ca.Input, tree.NodeProtoMessage, func(cc *parsectx.Context, e *input.Expression) {
			_, inputText = Parse(cc, e, schema, b)
		})
	} else {
		c.Diagnose(diag.Error, diag.ProtoMissingField, "input")
		inputText = "?"
	}

	c.Node().SetDataType(targetType)
	c.Node().Describe(fmt.Sprintf("Cast to %s", targetType))
	// failure_behavior isn't modeled yet (every cast is treated as
	// throw-on-failure), so it's left for Sweep to surface.
	parsectx.Sweep(c, ca)
	return targetType, fmt.Sprintf("cast(%s as %s)", inputText, targetType)
}

func joinTexts(texts []string) string {
	out := ""
	for i, t := range texts {
		if i > 0 {
			out += ", "
		}
		out += t
	}
	return out
}
