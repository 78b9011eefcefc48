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

// extensionSchemaJSON is the embedded JSON Schema an extension document
// must validate against before it is interpreted. It covers
// only the shape this package actually interprets (name, dependencies,
// types, type_variations, {scalar,aggregate,window}_functions); a document
// may carry additional, ignored top-level keys.
const extensionSchemaJSON = `{
  "type": "object",
  "properties": {
    "name": {"type": "string"},
    "dependencies": {
      "type": "object",
      "additionalProperties": {"type": "string"}
    },
    "types": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["name"],
        "properties": {"name": {"type": "string"}}
      }
    },
    "type_variations": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["name", "base"],
        "properties": {
          "name": {"type": "string"},
          "base": {"type": "string"},
          "function_behavior": {"type": "string", "enum": ["inherits", "separate"]}
        }
      }
    },
    "scalar_functions": {"type": "array", "items": {"$ref": "#/definitions/function"}},
    "aggregate_functions": {"type": "array", "items": {"$ref": "#/definitions/function"}},
    "window_functions": {"type": "array", "items": {"$ref": "#/definitions/function"}}
  },
  "definitions": {
    "function": {
      "type": "object",
      "required": ["name"],
      "properties": {
        "name": {"type": "string"},
        "impls": {
          "type": "array",
          "items": {
            "type": "object",
            "properties": {
              "args": {
                "type": "array",
                "items": {
                  "type": "object",
                  "properties": {
                    "name": {"type": "string"},
                    "value": {"type": "string"},
                    "options": {"type": "array", "items": {"type": "string"}}
                  }
                }
              },
              "variadic": {
                "oneOf": [
                  {"type": "boolean"},
                  {
                    "type": "object",
                    "properties": {
                      "min": {"type": "integer"},
                      "max": {"type": "integer"}
                    }
                  }
                ]
              },
              "return": {"type": "string"}
            }
          }
        }
      }
    }
  }
}`
