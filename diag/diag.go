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

// Package diag defines the classified diagnostic messages produced while
// validating a plan: a severity, a cause drawn from a closed taxonomy, the
// path of the node the diagnostic is attached to, and a formatted message.
package diag

import (
	"fmt"

	errors "gopkg.in/src-d/go-errors.v1"

	"github.com/substrait-io/substrait-validator-go/path"
)

// Severity classifies how serious a diagnostic is. Severities are ordered:
// Info < Warning < Error.
type Severity int

const (
	Info Severity = iota
	Warning
	Error
)

func (s Severity) String() string {
	switch s {
	case Info:
		return "info"
	case Warning:
		return "warning"
	case Error:
		return "error"
	default:
		return "unknown"
	}
}

// Kind is a member of the closed cause taxonomy. Kinds are created once, at
// package scope, with NewKind, following the gopkg.in/src-d/go-errors.v1
// idiom the rest of the causes below are built with. Adding a Kind is an API
// change.
type Kind struct {
	k *errors.Kind
}

// NewKind registers a new cause. message is a printf-style format string
// used to render the diagnostic's message from New's args.
func NewKind(message string) Kind {
	return Kind{errors.NewKind(message)}
}

// New builds a diagnostic of this cause at the given severity and path.
func (k Kind) New(sev Severity, p path.Path, args ...interface{}) *Diagnostic {
	return &Diagnostic{
		Severity: sev,
		Cause:    k,
		Path:     p,
		Message:  k.k.New(args...).Error(),
	}
}

// Is reports whether err (as produced by the underlying go-errors Kind, e.g.
// from a propagated error) belongs to this Kind.
func (k Kind) Is(err error) bool {
	return k.k.Is(err)
}

func (k Kind) String() string {
	return k.k.Message
}

// The closed cause taxonomy. Extending this list is an API
// change.
var (
	IllegalValue             = NewKind("%s")
	ProtoMissingField        = NewKind("missing required field %s")
	TypeMismatch             = NewKind("%s")
	TypeMismatchedParameters = NewKind("%s")
	TypeDerivationFailed     = NewKind("%s")
	TypeDerivationInvalid    = NewKind("%s")
	TypeParseError           = NewKind("%s")
	YamlParseFailed          = NewKind("%s")
	LinkDiscouragedName      = NewKind("%s")
	NotYetImplemented        = NewKind("%s")
	RelationRootMissing      = NewKind("%s")
	Versioning               = NewKind("%s")
	Experimental             = NewKind("%s")
)

// Diagnostic is one classified message attached to a tree node.
type Diagnostic struct {
	Severity Severity
	Cause    Kind
	Path     path.Path
	Message  string
}

// Prefix returns a derived diagnostic whose message is prefixed with text,
// preserving severity, cause and path.
func (d *Diagnostic) Prefix(text string) *Diagnostic {
	return &Diagnostic{
		Severity: d.Severity,
		Cause:    d.Cause,
		Path:     d.Path,
		Message:  fmt.Sprintf("%s: %s", text, d.Message),
	}
}

func (d *Diagnostic) Error() string {
	return fmt.Sprintf("%s/%s at %s: %s", d.Severity, d.Cause, d.Path, d.Message)
}

// Worst returns the more severe of a and b.
func Worst(a, b Severity) Severity {
	if b > a {
		return b
	}
	return a
}
