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

package extension

import (
	"fmt"

	"github.com/substrait-io/substrait-validator-go/diag"
	"github.com/substrait-io/substrait-validator-go/extref"
)

// resolutionError is returned when a by-name lookup across a module's
// dependency graph turns up anything other than exactly one candidate.
type resolutionError struct {
	Kind    diag.Kind
	Message string
}

func (e *resolutionError) Error() string { return e.Message }

func typeDerivationFailed(id extref.Identifier, argc int) error {
	name := "<unknown>"
	if len(id.Names) > 0 {
		name = id.Names[0]
	}
	return &resolutionError{
		Kind:    diag.TypeDerivationFailed,
		Message: fmt.Sprintf("no overload of %q accepts %d argument(s)", name, argc),
	}
}
