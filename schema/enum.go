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

// EnumSchema is an Avro enum: a fullname plus a deterministically ordered,
// unique set of symbols.
type EnumSchema struct {
	name       QualifiedName
	aliases    []QualifiedName
	symbols    []string
	def        string
	hasDefault bool
	doc        string
}

// NewEnum constructs an EnumSchema. Symbol uniqueness and name validity
// (spec §3.3) must already have been validated by the caller.
func NewEnum(name QualifiedName, aliases []QualifiedName, symbols []string, def string, hasDefault bool, doc string) *EnumSchema {
	return &EnumSchema{name: name, aliases: aliases, symbols: symbols, def: def, hasDefault: hasDefault, doc: doc}
}

// Kind implements Schema.
func (e *EnumSchema) Kind() Kind { return Enum }

// Logical implements Schema. Enums never carry a logical type.
func (e *EnumSchema) Logical() *LogicalType { return nil }

// FullName returns the enum's namespace-qualified name.
func (e *EnumSchema) FullName() QualifiedName { return e.name }

// Aliases returns the enum's alternate fullnames.
func (e *EnumSchema) Aliases() []QualifiedName { return e.aliases }

// Symbols returns the enum's symbols in declared order.
func (e *EnumSchema) Symbols() []string { return e.symbols }

// Default returns the enum's default symbol and whether one was declared.
func (e *EnumSchema) Default() (string, bool) { return e.def, e.hasDefault }

// Doc returns the enum's documentation string, if any.
func (e *EnumSchema) Doc() string { return e.doc }

// IndexOf returns the zero-based index of symbol in declared order, or -1
// if symbol is not a member of the enum.
func (e *EnumSchema) IndexOf(symbol string) int {
	for i, s := range e.symbols {
		if s == symbol {
			return i
		}
	}
	return -1
}

// String implements Schema.
func (e *EnumSchema) String() string {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, `{"type":"enum","name":%q,"symbols":[`, e.name.String())
	for i, s := range e.symbols {
		if i > 0 {
			buf.WriteByte(',')
		}
		fmt.Fprintf(&buf, "%q", s)
	}
	buf.WriteString("]}")
	return buf.String()
}
