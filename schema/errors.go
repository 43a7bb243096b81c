/*
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package schema

import "fmt"

// ErrorKind classifies a ParseError per spec §7.
type ErrorKind string

// The schema-error kinds defined by spec §7.
const (
	InvalidName          ErrorKind = "invalid_name"
	DuplicateName        ErrorKind = "duplicate_name"
	UnknownReference     ErrorKind = "unknown_reference"
	InvalidUnion         ErrorKind = "invalid_union"
	InvalidDefault       ErrorKind = "invalid_default"
	InvalidLogicalType   ErrorKind = "invalid_logical_type"
	MissingRequiredField ErrorKind = "missing_required_field"
	UnrecognizedKey      ErrorKind = "unrecognized_key"
)

// ParseError is returned by Parse when a schema document fails to parse.
// It carries the JSON path of the offending node (dot/bracket separated,
// e.g. ".fields[2].type" for a top-level record), the kind of failure, and, where relevant, the
// offending raw value.
type ParseError struct {
	Kind    ErrorKind
	Path    string
	Value   interface{}
	Wrapped error
}

// Error implements error.
func (e *ParseError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("%s: %v", e.Kind, e.detail())
	}
	return fmt.Sprintf("%s at %s: %v", e.Kind, e.Path, e.detail())
}

func (e *ParseError) detail() string {
	if e.Wrapped != nil {
		return e.Wrapped.Error()
	}
	if e.Value != nil {
		return fmt.Sprintf("%v", e.Value)
	}
	return "invalid schema"
}

// Unwrap allows errors.Is/errors.As to see through to a wrapped cause.
func (e *ParseError) Unwrap() error { return e.Wrapped }

// newParseError builds a ParseError, prefixing path onto any nested
// ParseError's path the way gogen-avro's SchemaError composes field
// names on the way back up the call stack.
func newParseError(kind ErrorKind, path string, value interface{}, wrapped error) *ParseError {
	if nested, ok := wrapped.(*ParseError); ok {
		if path != "" && nested.Path != "" {
			path = path + "." + nested.Path
		} else if nested.Path != "" {
			path = nested.Path
		}
		return &ParseError{Kind: nested.Kind, Path: path, Value: nested.Value, Wrapped: nested.Wrapped}
	}
	return &ParseError{Kind: kind, Path: path, Value: value, Wrapped: wrapped}
}
