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

// PrimitiveSchema is one of the eight Avro primitive types, optionally
// annotated with a logical type.
type PrimitiveSchema struct {
	kind    Kind
	logical *LogicalType
}

// NewPrimitive returns a PrimitiveSchema of the given kind with no logical
// type. kind must be one of the eight primitive kinds.
func NewPrimitive(kind Kind) *PrimitiveSchema {
	return &PrimitiveSchema{kind: kind}
}

// NewLogicalPrimitive returns a PrimitiveSchema of the given underlying
// kind annotated with logical. The caller must have already validated
// logical against kind.
func NewLogicalPrimitive(kind Kind, logical *LogicalType) *PrimitiveSchema {
	return &PrimitiveSchema{kind: kind, logical: logical}
}

// Kind implements Schema.
func (p *PrimitiveSchema) Kind() Kind { return p.kind }

// Logical implements Schema.
func (p *PrimitiveSchema) Logical() *LogicalType { return p.logical }

// String implements Schema.
func (p *PrimitiveSchema) String() string {
	if p.logical == nil {
		return fmt.Sprintf("%q", p.kind.String())
	}
	if p.logical.Name == Decimal {
		return fmt.Sprintf(`{"type":%q,"logicalType":%q,"precision":%d,"scale":%d}`, p.kind.String(), p.logical.Name, p.logical.Precision, p.logical.Scale)
	}
	return fmt.Sprintf(`{"type":%q,"logicalType":%q}`, p.kind.String(), p.logical.Name)
}
