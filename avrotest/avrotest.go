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

// Package avrotest holds schema fixtures shared by the avro package test
// suites. The schema package's own tests do not use it, since avrotest
// imports schema.
package avrotest

import (
	"testing"

	"github.com/avrocore/avro/schema"
)

// MustParse parses text and fails t immediately on error, returning the
// parsed root schema node.
func MustParse(t testing.TB, text string) schema.Schema {
	t.Helper()
	result, err := schema.Parse(text)
	if err != nil {
		t.Fatalf("avrotest: parsing %s: %v", text, err)
	}
	return result.Schema
}

// LongUnion is a nullable-int union, the shape used throughout the Avro
// spec's own worked examples.
const LongUnion = `["null","int"]`

// RecordWithDefault is a small record exercising a field default value.
const RecordWithDefault = `{
	"type": "record",
	"name": "Widget",
	"namespace": "avrotest",
	"fields": [
		{"name": "id", "type": "long"},
		{"name": "label", "type": "string", "default": "unnamed"}
	]
}`

// LinkedList is a self-referencing record, exercising Context-mediated
// cyclic schema resolution.
const LinkedList = `{
	"type": "record",
	"name": "LinkedList",
	"namespace": "avrotest",
	"fields": [
		{"name": "value", "type": "long"},
		{"name": "next", "type": ["null", "LinkedList"], "default": null}
	]
}`
