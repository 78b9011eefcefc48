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

// Package parsectx implements the traversal engine: a Context
// threaded through parsing that tracks the current Path and the output Node
// being built, a set of generic per-field-kind visitation helpers, and a
// post-traversal sweep that flags input fields no helper ever visited. Entering a child field
// creates a new Context bound to the child node; wiring the child back
// under its parent on every exit path is what keeps the tree consistent.
package parsectx

import (
	"github.com/sirupsen/logrus"

	"github.com/substrait-io/substrait-validator-go/extension/loader"
	"github.com/substrait-io/substrait-validator-go/extref"
)

// State is shared, run-scoped state: the extension loader (and therefore
// its per-run module cache) and the logger used for ambient, non-diagnostic
// logging.
type State struct {
	Loader *loader.Loader
	Logger *logrus.Logger

	// IgnoreUnknownFields suppresses the diagnostic Sweep would otherwise
	// attach to an unconsumed field, leaving only the Unknown marker child.
	IgnoreUnknownFields bool
}

// NewState returns run-scoped state and resets the process-local extension
// id counter, so assigned ids stay run-unique. Exactly one State must be
// created per call to validator.Validate.
func NewState(l *loader.Loader, log *logrus.Logger) *State {
	extref.ResetExtensionIDs()
	if log == nil {
		log = logrus.New()
	}
	return &State{Loader: l, Logger: log}
}
