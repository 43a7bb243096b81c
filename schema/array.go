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

// ArraySchema is an Avro array of a single item type.
type ArraySchema struct {
	items Schema
}

// NewArray constructs an ArraySchema whose elements are of type items.
func NewArray(items Schema) *ArraySchema {
	return &ArraySchema{items: items}
}

// Kind implements Schema.
func (a *ArraySchema) Kind() Kind { return Array }

// Logical implements Schema. Arrays never carry a logical type.
func (a *ArraySchema) Logical() *LogicalType { return nil }

// Items returns the array's item schema.
func (a *ArraySchema) Items() Schema { return a.items }

// String implements Schema.
func (a *ArraySchema) String() string {
	return fmt.Sprintf(`{"type":"array","items":%s}`, a.items.String())
}
