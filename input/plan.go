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

// Package input models the decoded Substrait plan that the traversal
// engine (package parsectx) walks: a plain, JSON-tagged Go struct tree
// standing in for the wire-codec-decoded node (an optional wire field
// becomes a Go pointer field; a oneof becomes a struct of
// mutually-exclusive pointer fields).
package input

// Plan is the toplevel input node.
type Plan struct {
	Version          *Version                     `json:"version"`
	ExtensionUris    []SimpleExtensionURI         `json:"extension_uris"`
	Extensions       []SimpleExtensionDeclaration `json:"extensions"`
	Relations        []PlanRel                    `json:"relations"`
	ExpectedTypeUrls []string                     `json:"expected_type_urls"`
}

// Version is the plan's declared Substrait version.
type Version struct {
	MajorNumber uint32 `json:"major_number"`
	MinorNumber uint32 `json:"minor_number"`
	PatchNumber uint32 `json:"patch_number"`
	GitHash     string `json:"git_hash"`
	Producer    string `json:"producer"`
}

// SimpleExtensionURI declares one URI, anchored for later reference by
// SimpleExtensionDeclaration.ExtensionUriReference.
type SimpleExtensionURI struct {
	ExtensionUriAnchor uint32 `json:"extension_uri_anchor"`
	Uri                string `json:"uri"`
}

// SimpleExtensionDeclaration binds an anchor to one item (a type class, a
// type variation, or a function) declared by a previously-anchored URI.
// Exactly one of the three pointer fields is set, mirroring the source
// oneof.
type SimpleExtensionDeclaration struct {
	ExtensionType          *ExtensionTypeDecl          `json:"extension_type"`
	ExtensionTypeVariation *ExtensionTypeVariationDecl `json:"extension_type_variation"`
	ExtensionFunction      *ExtensionFunctionDecl      `json:"extension_function"`
}

type ExtensionTypeDecl struct {
	ExtensionUriReference uint32 `json:"extension_uri_reference"`
	TypeAnchor            uint32 `json:"type_anchor"`
	Name                  string `json:"name"`
}

type ExtensionTypeVariationDecl struct {
	ExtensionUriReference uint32 `json:"extension_uri_reference"`
	TypeVariationAnchor   uint32 `json:"type_variation_anchor"`
	Name                  string `json:"name"`
}

type ExtensionFunctionDecl struct {
	ExtensionUriReference uint32 `json:"extension_uri_reference"`
	FunctionAnchor        uint32 `json:"function_anchor"`
	Name                  string `json:"name"`
}

// PlanRel is one top-level relation: either a bare Rel, whose output type
// is a struct with field names stripped, or a RelRoot, which attaches
// names.
type PlanRel struct {
	Rel  *Rel     `json:"rel"`
	Root *RelRoot `json:"root"`
}

// RelRoot names the fields of its input relation's output schema.
type RelRoot struct {
	Input *Rel     `json:"input"`
	Names []string `json:"names"`
}
