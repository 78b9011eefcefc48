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

package validator

import "github.com/substrait-io/substrait-validator-go/planparse"

// version is this validator's own release version, independent of the
// Substrait version it validates against.
const version = "0.1.0"

// Version returns this validator's own version string.
func Version() string {
	return version
}

// SubstraitVersion returns the Substrait specification version this
// validator was built against.
func SubstraitVersion() string {
	return planparse.SubstraitVersion
}

// SubstraitVersionConstraint returns the strict semver range: only a plan
// declaring exactly SubstraitVersion is guaranteed compatible.
func SubstraitVersionConstraint() string {
	return planparse.SubstraitVersionConstraint
}

// SubstraitVersionConstraintLoose returns the loose semver range, allowing
// any patch release sharing SubstraitVersion's minor number.
func SubstraitVersionConstraintLoose() string {
	return planparse.SubstraitVersionConstraintLoose
}
