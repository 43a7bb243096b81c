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

package avro

import "fmt"

// ErrorKind classifies a CodecError per spec §7.
type ErrorKind string

// The codec-error kinds defined by spec §7.
const (
	EncodingTypeMismatch ErrorKind = "encoding_type_mismatch"
	UnionBranchNotFound  ErrorKind = "union_branch_not_found"
	EnumSymbolNotFound   ErrorKind = "enum_symbol_not_found"
	FixedSizeMismatch    ErrorKind = "fixed_size_mismatch"
	InvalidString        ErrorKind = "invalid_string"
	InvalidBinaryUUID    ErrorKind = "invalid_binary_uuid"
	DecimalOutOfRange    ErrorKind = "decimal_out_of_range"
	UnexpectedEOF        ErrorKind = "unexpected_eof"
	TrailingBytes        ErrorKind = "trailing_bytes"
)

// CodecError is returned by Marshal and Unmarshal when a value or byte
// stream does not conform to its schema. It carries the schema path
// (dot/bracket separated, matching the notation used by schema.ParseError)
// and, where relevant, the offending value or raw bytes.
type CodecError struct {
	Kind    ErrorKind
	Path    string
	Value   interface{}
	Wrapped error
}

// Error implements error.
func (e *CodecError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("%s: %s", e.Kind, e.detail())
	}
	return fmt.Sprintf("%s at %s: %s", e.Kind, e.Path, e.detail())
}

func (e *CodecError) detail() string {
	if e.Wrapped != nil {
		return e.Wrapped.Error()
	}
	if e.Value != nil {
		return fmt.Sprintf("%v", e.Value)
	}
	return "codec failure"
}

// Unwrap allows errors.Is/errors.As to see through to a wrapped cause.
func (e *CodecError) Unwrap() error { return e.Wrapped }

func codecErr(kind ErrorKind, path string, value interface{}, wrapped error) *CodecError {
	return &CodecError{Kind: kind, Path: path, Value: value, Wrapped: wrapped}
}

func joinPath(path, next string) string {
	if path == "" {
		return next
	}
	return path + "." + next
}
