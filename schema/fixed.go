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

// FixedSchema is an Avro fixed: a fullname plus a fixed byte size,
// optionally annotated with a logical type (decimal or uuid).
type FixedSchema struct {
	name    QualifiedName
	aliases []QualifiedName
	size    int
	logical *LogicalType
}

// NewFixed constructs a FixedSchema. size must be a positive integer
// (spec §3.3); the caller (the parser) validates this.
func NewFixed(name QualifiedName, aliases []QualifiedName, size int, logical *LogicalType) *FixedSchema {
	return &FixedSchema{name: name, aliases: aliases, size: size, logical: logical}
}

// Kind implements Schema.
func (f *FixedSchema) Kind() Kind { return Fixed }

// Logical implements Schema.
func (f *FixedSchema) Logical() *LogicalType { return f.logical }

// FullName returns the fixed type's namespace-qualified name.
func (f *FixedSchema) FullName() QualifiedName { return f.name }

// Aliases returns the fixed type's alternate fullnames.
func (f *FixedSchema) Aliases() []QualifiedName { return f.aliases }

// Size returns the fixed type's byte size.
func (f *FixedSchema) Size() int { return f.size }

// String implements Schema.
func (f *FixedSchema) String() string {
	if f.logical == nil {
		return fmt.Sprintf(`{"type":"fixed","name":%q,"size":%d}`, f.name.String(), f.size)
	}
	if f.logical.Name == Decimal {
		return fmt.Sprintf(`{"type":"fixed","name":%q,"size":%d,"logicalType":%q,"precision":%d,"scale":%d}`, f.name.String(), f.size, f.logical.Name, f.logical.Precision, f.logical.Scale)
	}
	return fmt.Sprintf(`{"type":"fixed","name":%q,"size":%d,"logicalType":%q}`, f.name.String(), f.size, f.logical.Name)
}
