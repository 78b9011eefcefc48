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
	"fmt"
	"regexp"

	"github.com/Masterminds/semver/v3"

	"github.com/substrait-io/substrait-validator-go/diag"
	"github.com/substrait-io/substrait-validator-go/input"
	"github.com/substrait-io/substrait-validator-go/parsectx"
	"github.com/substrait-io/substrait-validator-go/tree"
)

// SubstraitVersion is the Substrait specification version this validator
// was built against.
const SubstraitVersion = "0.52.0"

// SubstraitVersionConstraint is the strict compatibility range: only the
// exact compiled-in version is guaranteed compatible. A plan version
// passing the loose constraint but failing this one is merely
// undetermined, not incompatible.
const SubstraitVersionConstraint = "=" + SubstraitVersion

// SubstraitVersionConstraintLoose allows for the well-known pre-1.0
// caveat: a 0.x release is only considered auto-compatible with another
// release sharing the same minor number.
const SubstraitVersionConstraintLoose = "^" + SubstraitVersion

var gitHashPattern = regexp.MustCompile(`^[0-9a-f]{40}$`)

// parseVersion checks plan version compatibility (with 0.x semver
// caveats), an optional 40-hex git hash, and an optional producer
// identifier.
func parseVersion(c *parsectx.Context, v *input.Version) {
	if v == nil {
		c.Diagnose(diag.Error, diag.ProtoMissingField, "version")
		return
	}
	parsectx.Field(c, "version", v, tree.NodeProtoMessage, func(cc *parsectx.Context, ver *input.Version) {
		checkVersionCompatibility(cc, ver)
		checkGitHash(cc, ver.GitHash)
		checkProducer(cc, ver.Producer)
	})
}

func checkVersionCompatibility(c *parsectx.Context, v *input.Version) {
	planVersion, err := semver.NewVersion(fmt.Sprintf("%d.%d.%d", v.MajorNumber, v.MinorNumber, v.PatchNumber))
	if err != nil {
		c.Diagnose(diag.Error, diag.Versioning, fmt.Sprintf("invalid plan version: %s", err))
		return
	}
	if planVersion.Major() == 0 && planVersion.Minor() == 0 && planVersion.Patch() == 0 {
		c.Diagnose(diag.Error, diag.Versioning, "invalid plan version (0.0.0)")
		return
	}

	loose, err := semver.NewConstraint(SubstraitVersionConstraintLoose)
	if err != nil {
		panic(err)
	}
	if !loose.Check(planVersion) {
		c.Diagnose(diag.Warning, diag.Versioning, fmt.Sprintf(
			"plan version (%s) is not compatible with the Substrait version that this version of the validator validates (%s)",
			planVersion, SubstraitVersion))
		return
	}

	strict, err := semver.NewConstraint(SubstraitVersionConstraint)
	if err != nil {
		panic(err)
	}
	if !strict.Check(planVersion) {
		c.Diagnose(diag.Warning, diag.Versioning, fmt.Sprintf(
			"cannot automatically determine whether plan version (%s) is compatible with the Substrait version that this version of the validator validates (%s)",
			planVersion, SubstraitVersion))
	}
}

func checkGitHash(c *parsectx.Context, hash string) {
	c.MarkParsed("git_hash")
	if hash == "" {
		return
	}
	if !gitHashPattern.MatchString(hash) {
		c.Diagnose(diag.Error, diag.IllegalValue, "git hash must be a 40-character lowercase hexadecimal string if specified")
	}
	c.Diagnose(diag.Warning, diag.Versioning, "a git hash was specified for the Substrait version, indicating use of nonstandard features; the validation result may not be accurate")
}

func checkProducer(c *parsectx.Context, producer string) {
	c.MarkParsed("producer")
	if producer == "" {
		c.Diagnose(diag.Info, diag.Versioning, "producer identifier is missing; while not strictly necessary, especially for hand-written plans, it is strongly recommended to include one")
	}
}
