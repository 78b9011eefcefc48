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

// Package extref provides the generic building blocks of the extension
// model that package types needs in order to represent
// user-defined classes and variations: Identifier, Reference[T] and
// Namespace[T]. It is kept free of any dependency on package types or
// package extension so that both of those can depend on it without
// forming an import cycle.
package extref

import (
	"strings"
	"sync/atomic"
)

var nextExtensionID int64

// NewExtensionID returns the next process-local monotonic extension id.
// The id is run-local and MUST NOT be persisted by callers; Validate
// resets the counter at the start of every run (see package parsectx).
func NewExtensionID() int64 {
	return atomic.AddInt64(&nextExtensionID, 1)
}

// ResetExtensionIDs resets the process-local counter. Only package parsectx
// should call this, once per validation run.
func ResetExtensionIDs() {
	atomic.StoreInt64(&nextExtensionID, 0)
}

// Identifier names one extension-defined item: the URI its declaring
// document was loaded from, its case-insensitive name(s), a process-local
// extension id, and (opaquely, as a string buffer) the path within the
// loaded document where it was defined.
type Identifier struct {
	URI            string
	Names          []string
	ExtensionID    int64
	DefinitionPath string
}

// HasName reports whether name (compared case-insensitively) is one of the
// identifier's aliases.
func (id Identifier) HasName(name string) bool {
	lower := strings.ToLower(name)
	for _, n := range id.Names {
		if strings.ToLower(n) == lower {
			return true
		}
	}
	return false
}

// Reference is a (name, uri, optional-definition) triple. A Reference with
// a nil Definition is unresolved but still carries diagnostic identity.
type Reference[T any] struct {
	Name       string
	URI        string
	Definition *T

	// AnchorPath records where this reference (or the first use of its
	// URI/name) was declared, for "already used here" link diagnostics.
	AnchorPath string
}

// Resolved reports whether the reference carries a definition.
func (r Reference[T]) Resolved() bool {
	return r.Definition != nil
}

// Unresolved returns an unresolved reference carrying only diagnostic
// identity.
func Unresolved[T any](name, uri string) Reference[T] {
	return Reference[T]{Name: name, URI: uri}
}

// Namespace is an append-only, per-module, per-kind mapping from
// lower-cased name to one or more definitions sharing that name
//. The zero value is an empty, usable namespace.
type Namespace[T any] struct {
	byName map[string][]*T
	// Seal, called once the owning module finishes parsing, moves the
	// namespace into a read-only state; callers must not register more
	// definitions afterwards.
	sealed bool
}

// Register adds def under name, which is case-folded on storage. Must not
// be called after Seal.
func (n *Namespace[T]) Register(name string, def *T) {
	if n.sealed {
		panic("extref: Namespace.Register called on a sealed namespace")
	}
	if n.byName == nil {
		n.byName = make(map[string][]*T)
	}
	key := strings.ToLower(name)
	n.byName[key] = append(n.byName[key], def)
}

// Seal freezes the namespace; subsequent resolution is safe for concurrent
// readers.
func (n *Namespace[T]) Seal() {
	n.sealed = true
}

// ResolutionResult carries however many definitions matched a name lookup:
// zero ("unresolved"), one ("resolved") or many ("ambiguous").
type ResolutionResult[T any] struct {
	Candidates []*T
}

// Kind classifies a resolution result's arity.
type Kind int

const (
	KindUnresolved Kind = iota
	KindResolved
	KindAmbiguous
)

// Kind reports which of unresolved/resolved/ambiguous this result is.
func (r ResolutionResult[T]) Kind() Kind {
	switch len(r.Candidates) {
	case 0:
		return KindUnresolved
	case 1:
		return KindResolved
	default:
		return KindAmbiguous
	}
}

// First returns the deterministic first candidate (nil if unresolved).
// Ambiguity is resolved by choosing the first candidate while the caller
// surfaces the ambiguity as a diagnostic; this method provides that
// deterministic choice, it does not itself diagnose.
func (r ResolutionResult[T]) First() *T {
	if len(r.Candidates) == 0 {
		return nil
	}
	return r.Candidates[0]
}

// ResolveLocal looks up name (case-insensitively) in the namespace.
func (n *Namespace[T]) ResolveLocal(name string) ResolutionResult[T] {
	if n.byName == nil {
		return ResolutionResult[T]{}
	}
	key := strings.ToLower(name)
	cands := n.byName[key]
	out := make([]*T, len(cands))
	copy(out, cands)
	return ResolutionResult[T]{Candidates: out}
}

// Len returns the number of distinct names registered.
func (n *Namespace[T]) Len() int {
	return len(n.byName)
}
