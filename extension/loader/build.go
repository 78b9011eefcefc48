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

package loader

import (
	"fmt"

	"github.com/substrait-io/substrait-validator-go/diag"
	"github.com/substrait-io/substrait-validator-go/extension"
	"github.com/substrait-io/substrait-validator-go/extref"
	"github.com/substrait-io/substrait-validator-go/path"
	"github.com/substrait-io/substrait-validator-go/types"
)

// buildModule populates module's namespaces from the schema-validated
// document top, returning the declared dependency name->uri mapping (the
// caller resolves and attaches those separately, since doing so requires
// recursing through the Loader) plus any diagnostics raised while
// interpreting individual definitions. A malformed individual definition
// downgrades to a Warning diagnostic and is skipped, rather than failing
// the whole document, matching the rest of this codebase's "keep going"
// error philosophy.
func buildModule(module *extension.Module, top map[string]interface{}, uri string, p path.Path) (map[string]string, []*diag.Diagnostic) {
	var diags []*diag.Diagnostic

	if name, ok := top["name"].(string); ok {
		module.Identifier = extref.Identifier{URI: uri, Names: []string{name}, DefinitionPath: p.String()}
	}

	deps := map[string]string{}
	if rawDeps, ok := top["dependencies"].(map[string]interface{}); ok {
		for name, v := range rawDeps {
			if depURI, ok := v.(string); ok {
				deps[name] = depURI
			}
		}
	}

	if list, ok := top["types"].([]interface{}); ok {
		for i, item := range list {
			m, ok := item.(map[string]interface{})
			if !ok {
				continue
			}
			name, _ := m["name"].(string)
			if name == "" {
				diags = append(diags, diag.YamlParseFailed.New(diag.Warning, p.WithField("types").WithIndex(i), "type class definition is missing its name"))
				continue
			}
			def := &types.TypeClassDef{Identifier: extref.Identifier{
				URI: uri, Names: []string{name}, ExtensionID: extref.NewExtensionID(),
				DefinitionPath: p.WithField("types").WithIndex(i).String(),
			}}
			module.TypeClasses.Register(name, def)
		}
	}

	if list, ok := top["type_variations"].([]interface{}); ok {
		for i, item := range list {
			m, ok := item.(map[string]interface{})
			if !ok {
				continue
			}
			name, _ := m["name"].(string)
			baseName, _ := m["base"].(string)
			if name == "" || baseName == "" {
				diags = append(diags, diag.YamlParseFailed.New(diag.Warning, p.WithField("type_variations").WithIndex(i), "type variation definition is missing its name or base"))
				continue
			}
			base, ok := resolveBaseClass(baseName)
			if !ok {
				diags = append(diags, diag.TypeParseError.New(diag.Warning, p.WithField("type_variations").WithIndex(i), fmt.Sprintf("unknown base class %q", baseName)))
				continue
			}
			behavior := types.Inherits
			if fb, _ := m["function_behavior"].(string); fb == "separate" {
				behavior = types.Separate
			}
			def := &types.UserDefinedVariationDef{
				Identifier: extref.Identifier{
					URI: uri, Names: []string{name}, ExtensionID: extref.NewExtensionID(),
					DefinitionPath: p.WithField("type_variations").WithIndex(i).String(),
				},
				Base:             base,
				FunctionBehavior: behavior,
			}
			module.TypeVariations.Register(name, def)
		}
	}

	for _, field := range []struct {
		key  string
		kind extension.FunctionKind
	}{
		{"scalar_functions", extension.ScalarFunction},
		{"aggregate_functions", extension.AggregateFunction},
		{"window_functions", extension.WindowFunction},
	} {
		list, ok := top[field.key].([]interface{})
		if !ok {
			continue
		}
		for i, item := range list {
			m, ok := item.(map[string]interface{})
			if !ok {
				continue
			}
			fnDiags := buildFunction(module, m, field.kind, uri, p.WithField(field.key).WithIndex(i))
			diags = append(diags, fnDiags...)
		}
	}

	return deps, diags
}

func buildFunction(module *extension.Module, m map[string]interface{}, kind extension.FunctionKind, uri string, p path.Path) []*diag.Diagnostic {
	name, _ := m["name"].(string)
	if name == "" {
		return []*diag.Diagnostic{diag.YamlParseFailed.New(diag.Warning, p, fmt.Sprintf("%s definition is missing its name", kind))}
	}

	def := &extension.FunctionDef{
		Identifier: extref.Identifier{URI: uri, Names: []string{name}, ExtensionID: extref.NewExtensionID(), DefinitionPath: p.String()},
		Kind:       kind,
	}

	impls, _ := m["impls"].([]interface{})
	var diags []*diag.Diagnostic
	for i, impl := range impls {
		implMap, ok := impl.(map[string]interface{})
		if !ok {
			continue
		}
		ov, ovDiags := buildOverload(implMap, p.WithField("impls").WithIndex(i))
		def.Overloads = append(def.Overloads, ov)
		diags = append(diags, ovDiags...)
	}

	module.Functions.Register(name, def)
	return diags
}

// buildOverload interprets one impl entry: its argument slots (a declared
// value type parsed as a pattern, or an options list parsed as an enum
// set), its variadic marker (either the bare boolean or the min/max map
// form), and its return derivation program. A slot or return expression
// that fails to parse degrades to a wildcard slot / unresolved return type
// with a Warning diagnostic, so the function stays usable by name.
func buildOverload(implMap map[string]interface{}, p path.Path) (extension.FunctionOverload, []*diag.Diagnostic) {
	var diags []*diag.Diagnostic
	var slots []types.ParameterSlot
	if rawArgs, ok := implMap["args"].([]interface{}); ok {
		for i, a := range rawArgs {
			am, ok := a.(map[string]interface{})
			if !ok {
				continue
			}
			name, _ := am["name"].(string)
			slot := types.ParameterSlot{Name: name, Pattern: types.WildcardPattern{}}
			argPath := p.WithField("args").WithIndex(i)
			switch {
			case am["value"] != nil:
				text, ok := am["value"].(string)
				if !ok {
					diags = append(diags, diag.YamlParseFailed.New(diag.Warning, argPath, "argument value must be a string"))
					break
				}
				pat, err := types.ParsePattern(text)
				if err != nil {
					diags = append(diags, diag.TypeParseError.New(diag.Warning, argPath, err.Error()))
					break
				}
				slot.Pattern = pat
			case am["options"] != nil:
				rawOpts, _ := am["options"].([]interface{})
				var variants []string
				for _, o := range rawOpts {
					if s, ok := o.(string); ok {
						variants = append(variants, s)
					}
				}
				slot.Pattern = types.EnumSetPattern{Variants: variants}
			}
			slots = append(slots, slot)
		}
	}

	var variadic bool
	switch implMap["variadic"].(type) {
	case bool:
		variadic = implMap["variadic"].(bool)
	case map[string]interface{}:
		variadic = true
	}

	ret := types.Program{
		Final: types.LiteralPattern{Value: types.DataTypeValue{Type_: types.NewUnresolvedType()}},
	}
	if rawRet, ok := implMap["return"]; ok {
		text, ok := rawRet.(string)
		if !ok {
			diags = append(diags, diag.YamlParseFailed.New(diag.Warning, p.WithField("return"), "return derivation must be a string"))
		} else if prog, err := types.ParseProgram(text); err != nil {
			diags = append(diags, diag.TypeParseError.New(diag.Warning, p.WithField("return"), err.Error()))
		} else {
			ret = prog
		}
	}

	return extension.FunctionOverload{
		Arguments:  slots,
		Variadic:   variadic,
		ReturnType: ret,
	}, diags
}

func resolveBaseClass(name string) (types.Class, bool) {
	if s, ok := types.ParseSimple(name); ok {
		return types.NewSimpleClass(s), true
	}
	if c, ok := types.ParseCompound(name); ok {
		return types.NewCompoundClass(c), true
	}
	return types.Class{}, false
}
