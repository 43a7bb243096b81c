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

// FieldOrder controls the "order" attribute of a record field, used by
// sort-order comparisons outside this module's scope; it is preserved
// on parse and exposed through Field.Order. RecordSchema.String does not
// emit it.
type FieldOrder string

// The three field sort orders defined by the Avro specification.
const (
	OrderAscending  FieldOrder = "ascending"
	OrderDescending FieldOrder = "descending"
	OrderIgnore     FieldOrder = "ignore"
)

// Field is one member of a RecordSchema: a name, its schema, an optional
// default value, and an optional explicit sort order.
type Field struct {
	name       string
	aliases    []string
	schema     Schema
	hasDefault bool
	def        interface{}
	order      FieldOrder
	doc        string
}

// NewField constructs a Field. hasDefault distinguishes "no default" from
// a default value of nil (which is valid for a null-typed or nullable
// field).
func NewField(name string, aliases []string, s Schema, hasDefault bool, def interface{}, order FieldOrder, doc string) *Field {
	return &Field{
		name:       name,
		aliases:    aliases,
		schema:     s,
		hasDefault: hasDefault,
		def:        def,
		order:      order,
		doc:        doc,
	}
}

// Name returns the field's declared name.
func (f *Field) Name() string { return f.name }

// Aliases returns the field's alternate names, used only for
// writer/reader schema resolution, which is out of this module's scope.
// They are retained on parse; RecordSchema.String does not emit them.
func (f *Field) Aliases() []string { return f.aliases }

// Schema returns the field's type.
func (f *Field) Schema() Schema { return f.schema }

// HasDefault reports whether the field declares a default value.
func (f *Field) HasDefault() bool { return f.hasDefault }

// Default returns the field's default value as parsed from JSON. Its
// concrete type follows encoding/json's unmarshaling of the "default" key.
func (f *Field) Default() interface{} { return f.def }

// Order returns the field's sort order, defaulting to OrderAscending.
func (f *Field) Order() FieldOrder { return f.order }

// Doc returns the field's documentation string, if any.
func (f *Field) Doc() string { return f.doc }
