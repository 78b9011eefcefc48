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

package planparse

import (
	"context"
	"fmt"
	"strings"

	"github.com/substrait-io/substrait-validator-go/diag"
	"github.com/substrait-io/substrait-validator-go/extbind"
	"github.com/substrait-io/substrait-validator-go/extension"
	"github.com/substrait-io/substrait-validator-go/extref"
	"github.com/substrait-io/substrait-validator-go/input"
	"github.com/substrait-io/substrait-validator-go/parsectx"
	"github.com/substrait-io/substrait-validator-go/tree"
	"github.com/substrait-io/substrait-validator-go/types"
)

// parseExtensions loads every declared extension URI, then resolves each
// anchor declaration (type class, type variation, or function) against the
// URI's module, producing the anchor table the rest of the plan parse looks
// functions and types up through.
func parseExtensions(c *parsectx.Context, uris []input.SimpleExtensionURI, decls []input.SimpleExtensionDeclaration) *extbind.Bindings {
	modules := make(map[uint32]*extension.Module, len(uris))

	parsectx.RepeatedField(c, "extension_uris", uris, tree.NodeProtoMessage, func(cc *parsectx.Context, i int, u input.SimpleExtensionURI) {
		cc.MarkParsed("extension_uri_anchor")
		cc.MarkParsed("uri")
		defer parsectx.Sweep(cc, &u)
		if !supportedURIScheme(u.Uri) {
			cc.Diagnose(diag.Warning, diag.IllegalValue, fmt.Sprintf(
				"%s is not a file:, http: or https: URI; the validator may not be able to resolve it", u.Uri))
		}
		module, diags, err := cc.State().Loader.Load(context.Background(), u.Uri, cc.Path())
		for _, d := range diags {
			cc.Node().AddDiagnostic(d)
		}
		if err != nil {
			cc.Diagnose(diag.Error, diag.YamlParseFailed, fmt.Sprintf("failed to fetch extension URI %s: %s", u.Uri, err))
			return
		}
		if module != nil {
			modules[u.ExtensionUriAnchor] = module
		}
	})

	b := extbind.New()
	parsectx.RepeatedField(c, "extensions", decls, tree.NodeProtoMessage, func(cc *parsectx.Context, i int, d input.SimpleExtensionDeclaration) {
		parseExtensionDeclaration(cc, &d, modules, b)
	})
	return b
}

func parseExtensionDeclaration(c *parsectx.Context, d *input.SimpleExtensionDeclaration, modules map[uint32]*extension.Module, b *extbind.Bindings) {
	switch {
	case d.ExtensionType != nil:
		c.MarkParsed("extension_type")
		decl := d.ExtensionType
		if module, ok := moduleFor(c, decl.ExtensionUriReference, modules); !ok {
			b.TypeClasses[decl.TypeAnchor] = &extbind.Binding[types.TypeClassDef]{Name: decl.Name, Ref: extref.Unresolved[types.TypeClassDef](decl.Name, ""), Path: c.Path()}
		} else {
			result := module.ResolveTypeClass(decl.Name)
			b.TypeClasses[decl.TypeAnchor] = &extbind.Binding[types.TypeClassDef]{
				Name: decl.Name,
				Ref:  resolveOne(c, decl.Name, module.ActualURI, result),
				Path: c.Path(),
			}
		}
	case d.ExtensionTypeVariation != nil:
		c.MarkParsed("extension_type_variation")
		decl := d.ExtensionTypeVariation
		if module, ok := moduleFor(c, decl.ExtensionUriReference, modules); !ok {
			b.TypeVariations[decl.TypeVariationAnchor] = &extbind.Binding[types.UserDefinedVariationDef]{Name: decl.Name, Ref: extref.Unresolved[types.UserDefinedVariationDef](decl.Name, ""), Path: c.Path()}
		} else {
			result := module.ResolveTypeVariation(decl.Name)
			b.TypeVariations[decl.TypeVariationAnchor] = &extbind.Binding[types.UserDefinedVariationDef]{
				Name: decl.Name,
				Ref:  resolveOne(c, decl.Name, module.ActualURI, result),
				Path: c.Path(),
			}
		}
	case d.ExtensionFunction != nil:
		c.MarkParsed("extension_function")
		decl := d.ExtensionFunction
		if module, ok := moduleFor(c, decl.ExtensionUriReference, modules); !ok {
			b.Functions[decl.FunctionAnchor] = &extbind.Binding[extension.FunctionDef]{Name: decl.Name, Ref: extref.Unresolved[extension.FunctionDef](decl.Name, ""), Path: c.Path()}
		} else {
			result := module.ResolveFunction(decl.Name)
			b.Functions[decl.FunctionAnchor] = &extbind.Binding[extension.FunctionDef]{
				Name: decl.Name,
				Ref:  resolveOne(c, decl.Name, module.ActualURI, result),
				Path: c.Path(),
			}
		}
	default:
		c.Diagnose(diag.Error, diag.ProtoMissingField, "extension declaration has no recognized variant set")
	}
	parsectx.Sweep(c, d)
}

// supportedURIScheme reports whether uri uses one of the schemes the
// validator knows how to resolve.
func supportedURIScheme(uri string) bool {
	return strings.HasPrefix(uri, "file:") ||
		strings.HasPrefix(uri, "http:") ||
		strings.HasPrefix(uri, "https:")
}

func moduleFor(c *parsectx.Context, anchor uint32, modules map[uint32]*extension.Module) (*extension.Module, bool) {
	m, ok := modules[anchor]
	if !ok {
		c.Diagnose(diag.Error, diag.IllegalValue, fmt.Sprintf("no extension URI declared with anchor %d", anchor))
		return nil, false
	}
	return m, true
}

// resolveOne turns a resolution result into a Reference, diagnosing the
// unresolved and ambiguous cases but always deterministically choosing the
// first candidate when ambiguous.
func resolveOne[T any](c *parsectx.Context, name, uri string, result extref.ResolutionResult[T]) extref.Reference[T] {
	switch result.Kind() {
	case extref.KindUnresolved:
		c.Diagnose(diag.Error, diag.IllegalValue, fmt.Sprintf("%q is not declared by extension %s", name, uri))
		return extref.Unresolved[T](name, uri)
	case extref.KindAmbiguous:
		c.Diagnose(diag.Warning, diag.IllegalValue, fmt.Sprintf("%q is declared more than once by extension %s; using the first declaration", name, uri))
		return extref.Reference[T]{Name: name, URI: uri, Definition: result.First()}
	default:
		return extref.Reference[T]{Name: name, URI: uri, Definition: result.First()}
	}
}
