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

// UnionSchema is an Avro union: an ordered list of branch schemas. The
// invariants in spec §3.3 (at most one primitive of each kind, at most one
// map, at most one array, named types unique by fullname, no nested
// unions) are enforced by the parser before a UnionSchema is constructed.
type UnionSchema struct {
	branches []Schema
}

// NewUnion constructs a UnionSchema from already-validated branches.
func NewUnion(branches []Schema) *UnionSchema {
	return &UnionSchema{branches: branches}
}

// Kind implements Schema.
func (u *UnionSchema) Kind() Kind { return Union }

// Logical implements Schema. Unions never carry a logical type.
func (u *UnionSchema) Logical() *LogicalType { return nil }

// Branches returns the union's branch schemas in declared order.
func (u *UnionSchema) Branches() []Schema { return u.branches }

// BranchName returns the name used to identify branch in a tagged union
// value or in a decoder's tagged-union output: a named type's fullname, or
// a primitive's/array's/map's type name.
func BranchName(s Schema) string {
	switch t := s.(type) {
	case *RecordSchema:
		return t.FullName().String()
	case *EnumSchema:
		return t.FullName().String()
	case *FixedSchema:
		return t.FullName().String()
	case *RefSchema:
		return t.FullName().String()
	default:
		return s.Kind().String()
	}
}

// IndexByName returns the index of the branch identified by name (per
// BranchName), or -1 if no branch matches.
func (u *UnionSchema) IndexByName(name string) int {
	for i, b := range u.branches {
		if BranchName(Resolve(b)) == name || BranchName(b) == name {
			return i
		}
	}
	return -1
}

// String implements Schema.
func (u *UnionSchema) String() string {
	var buf bytes.Buffer
	buf.WriteByte('[')
	for i, b := range u.branches {
		if i > 0 {
			buf.WriteByte(',')
		}
		fmt.Fprint(&buf, b.String())
	}
	buf.WriteByte(']')
	return buf.String()
}
