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

package loader

import (
	"fmt"
	"strconv"
	"strings"

	yaml "gopkg.in/yaml.v3"
)

// maxYAMLDepth bounds the node recursion so an alias-heavy or deeply
// nested document terminates.
const maxYAMLDepth = 1000

// coerceToJSONCompatible converts a decoded YAML node tree into the
// map[string]interface{}/[]interface{}/scalar shape gojsonschema and this
// package's own builders expect. Extension documents use string keys
// throughout, so a non-string mapping key is a parse failure, as is any
// application-specific tag on a value. Numbers resolve to unsigned, signed
// or floating point, preferring the first of those that fits. Decoding
// goes through yaml.Node rather than a bare interface{} because only the
// node form retains the tags this function must reject.
func coerceToJSONCompatible(n *yaml.Node, depth int) (interface{}, error) {
	if depth > maxYAMLDepth {
		return nil, fmt.Errorf("document nesting exceeds %d levels", maxYAMLDepth)
	}
	switch n.Kind {
	case 0:
		// Zero node: an empty document.
		return nil, nil

	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return nil, nil
		}
		return coerceToJSONCompatible(n.Content[0], depth+1)

	case yaml.AliasNode:
		return coerceToJSONCompatible(n.Alias, depth+1)

	case yaml.MappingNode:
		out := make(map[string]interface{}, len(n.Content)/2)
		for i := 0; i+1 < len(n.Content); i += 2 {
			key := n.Content[i]
			if key.Kind != yaml.ScalarNode || key.Tag != "!!str" {
				return nil, fmt.Errorf("non-string map keys are not supported")
			}
			val, err := coerceToJSONCompatible(n.Content[i+1], depth+1)
			if err != nil {
				return nil, err
			}
			out[key.Value] = val
		}
		return out, nil

	case yaml.SequenceNode:
		out := make([]interface{}, len(n.Content))
		for i, item := range n.Content {
			val, err := coerceToJSONCompatible(item, depth+1)
			if err != nil {
				return nil, err
			}
			out[i] = val
		}
		return out, nil

	case yaml.ScalarNode:
		return coerceScalar(n)

	default:
		return nil, fmt.Errorf("unsupported YAML node kind %d", n.Kind)
	}
}

func coerceScalar(n *yaml.Node) (interface{}, error) {
	switch n.Tag {
	case "!!str":
		return n.Value, nil
	case "!!null":
		return nil, nil
	case "!!bool":
		switch strings.ToLower(n.Value) {
		case "true", "yes", "y", "on":
			return true, nil
		case "false", "no", "n", "off":
			return false, nil
		}
		return nil, fmt.Errorf("cannot interpret %q as a boolean", n.Value)
	case "!!int":
		if u, err := strconv.ParseUint(n.Value, 0, 64); err == nil {
			return u, nil
		}
		if i, err := strconv.ParseInt(n.Value, 0, 64); err == nil {
			return i, nil
		}
		if f, err := strconv.ParseFloat(n.Value, 64); err == nil {
			return f, nil
		}
		return nil, fmt.Errorf("cannot interpret %q as a number", n.Value)
	case "!!float":
		f, err := strconv.ParseFloat(n.Value, 64)
		if err != nil {
			return nil, fmt.Errorf("cannot interpret %q as a number", n.Value)
		}
		return f, nil
	default:
		return nil, fmt.Errorf("tagged values are not supported (%s)", n.Tag)
	}
}
