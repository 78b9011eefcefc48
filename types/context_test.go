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

package types_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/substrait-io/substrait-validator-go/types"
)

func TestContextBindAndGetIsCaseInsensitive(t *testing.T) {
	ctx := types.NewContext()
	ctx.Bind("Scale", types.IntValue(3))

	v, ok := ctx.Get("scale")
	require.True(t, ok)
	require.Equal(t, types.IntValue(3), v)

	_, ok = ctx.Get("undefined")
	require.False(t, ok)
}
