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

import (
	"bytes"
	"fmt"
)

// RecordSchema is an Avro record: an ordered, named list of Fields under a
// fullname.
type RecordSchema struct {
	name    QualifiedName
	aliases []QualifiedName
	fields  []*Field
	doc     string
}

// NewRecord constructs a RecordSchema. Field name uniqueness and
// alias-disjointness (spec §3.3) must already have been validated by the
// caller (the parser).
func NewRecord(name QualifiedName, aliases []QualifiedName, fields []*Field, doc string) *RecordSchema {
	return &RecordSchema{name: name, aliases: aliases, fields: fields, doc: doc}
}

// Kind implements Schema.
func (r *RecordSchema) Kind() Kind { return Record }

// Logical implements Schema. Records never carry a logical type.
func (r *RecordSchema) Logical() *LogicalType { return nil }

// FullName returns the record's namespace-qualified name.
func (r *RecordSchema) FullName() QualifiedName { return r.name }

// Aliases returns the record's alternate fullnames.
func (r *RecordSchema) Aliases() []QualifiedName { return r.aliases }

// Fields returns the record's fields in declared order.
func (r *RecordSchema) Fields() []*Field { return r.fields }

// Doc returns the record's documentation string, if any.
func (r *RecordSchema) Doc() string { return r.doc }

// FieldByName returns the field named name, or nil if there is none.
func (r *RecordSchema) FieldByName(name string) *Field {
	for _, f := range r.fields {
		if f.Name() == name {
			return f
		}
	}
	return nil
}

// String implements Schema.
func (r *RecordSchema) String() string {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, `{"type":"record","name":%q`, r.name.String())
	if len(r.aliases) > 0 {
		buf.WriteString(`,"aliases":[`)
		for i, a := range r.aliases {
			if i > 0 {
				buf.WriteByte(',')
			}
			fmt.Fprintf(&buf, "%q", a.String())
		}
		buf.WriteByte(']')
	}
	if r.doc != "" {
		fmt.Fprintf(&buf, `,"doc":%q`, r.doc)
	}
	buf.WriteString(`,"fields":[`)
	for i, f := range r.fields {
		if i > 0 {
			buf.WriteByte(',')
		}
		fmt.Fprintf(&buf, `{"name":%q,"type":%s}`, f.Name(), f.Schema().String())
	}
	buf.WriteString("]}")
	return buf.String()
}
