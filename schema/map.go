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

// MapSchema is an Avro map with string keys and a single value type.
type MapSchema struct {
	values Schema
}

// NewMap constructs a MapSchema whose values are of type values.
func NewMap(values Schema) *MapSchema {
	return &MapSchema{values: values}
}

// Kind implements Schema.
func (m *MapSchema) Kind() Kind { return Map }

// Logical implements Schema. Maps never carry a logical type.
func (m *MapSchema) Logical() *LogicalType { return nil }

// Values returns the map's value schema.
func (m *MapSchema) Values() Schema { return m.values }

// String implements Schema.
func (m *MapSchema) String() string {
	return fmt.Sprintf(`{"type":"map","values":%s}`, m.values.String())
}
