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

// Package schema is the in-memory representation of an Avro schema: the
// tagged union of node variants described by the Avro 1.11 specification,
// plus the Context that resolves named-type references within a parsed
// schema document.
package schema

// Kind identifies which variant of the Avro schema tagged union a Schema
// value represents.
type Kind int

// The complete set of Avro schema kinds.
const (
	Null Kind = iota
	Boolean
	Int
	Long
	Float
	Double
	Bytes
	String
	Record
	Enum
	Array
	Map
	Union
	Fixed
	Ref
)

// String returns the Avro type name for k, as it would appear in a "type" key.
func (k Kind) String() string {
	switch k {
	case Null:
		return "null"
	case Boolean:
		return "boolean"
	case Int:
		return "int"
	case Long:
		return "long"
	case Float:
		return "float"
	case Double:
		return "double"
	case Bytes:
		return "bytes"
	case String:
		return "string"
	case Record:
		return "record"
	case Enum:
		return "enum"
	case Array:
		return "array"
	case Map:
		return "map"
	case Union:
		return "union"
	case Fixed:
		return "fixed"
	case Ref:
		return "ref"
	default:
		return "unknown"
	}
}

// IsPrimitive reports whether k is one of the eight Avro primitive kinds.
func (k Kind) IsPrimitive() bool {
	switch k {
	case Null, Boolean, Int, Long, Float, Double, Bytes, String:
		return true
	default:
		return false
	}
}

// Schema is the tagged union over every Avro schema node variant. Concrete
// implementations are *PrimitiveSchema, *RecordSchema, *EnumSchema,
// *ArraySchema, *MapSchema, *UnionSchema, *FixedSchema and *RefSchema.
//
// Schema values are immutable once returned from Parse and may be shared
// freely across goroutines.
type Schema interface {
	// Kind returns the tagged-union variant of this node.
	Kind() Kind

	// Logical returns the logical-type annotation carried by this node, or
	// nil if none was declared. Only primitive and fixed nodes carry a
	// logical type; a reference returns nil and must be resolved first.
	Logical() *LogicalType

	// String renders this node back to Avro-spec JSON schema text.
	String() string
}

// QualifiedName is the namespace-qualified identifier of a named Avro type
// (record, enum or fixed): "namespace.name", or bare "name" when the
// namespace is empty.
type QualifiedName struct {
	Namespace string
	Name      string
}

// String returns the fullname, joining namespace and name with a dot when
// a namespace is present.
func (q QualifiedName) String() string {
	if q.Namespace == "" {
		return q.Name
	}
	return q.Namespace + "." + q.Name
}

// Empty reports whether q has neither a name nor a namespace.
func (q QualifiedName) Empty() bool {
	return q.Namespace == "" && q.Name == ""
}
