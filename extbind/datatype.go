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

package extbind

import (
	"github.com/substrait-io/substrait-validator-go/tree"
	"github.com/substrait-io/substrait-validator-go/types"
)

// NodeDataType reads n's derived data type, defaulting to the unresolved
// type when none was set. n is assumed to carry a
// types.Type, the only concrete tree.DataType this repository produces.
func NodeDataType(n *tree.Node) types.Type {
	if n == nil || n.DataType == nil {
		return types.NewUnresolvedType()
	}
	t, ok := n.DataType.(types.Type)
	if !ok {
		return types.NewUnresolvedType()
	}
	return t
}
