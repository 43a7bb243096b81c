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

// RefSchema is a named-type reference: a fullname resolved through a
// Context rather than a direct pointer, so that self-referencing and
// mutually-referencing records form a flat table instead of a cyclic
// object graph (spec §9, "Cyclic schema graphs").
type RefSchema struct {
	name QualifiedName
	ctx  *Context
}

// NewRef constructs a reference to name, resolved lazily through ctx. The
// referenced definition need not exist in ctx yet, to support forward
// references within the same schema document.
func NewRef(name QualifiedName, ctx *Context) *RefSchema {
	return &RefSchema{name: name, ctx: ctx}
}

// Kind implements Schema.
func (r *RefSchema) Kind() Kind { return Ref }

// Logical implements Schema. A reference has no logical type of its own;
// callers wanting the referent's logical type should call Resolve first.
func (r *RefSchema) Logical() *LogicalType { return nil }

// FullName returns the fullname this reference points to.
func (r *RefSchema) FullName() QualifiedName { return r.name }

// Resolve looks up the referenced definition in the owning Context. It
// panics if called before the enclosing schema document has finished
// parsing (unknown_reference errors are caught by the parser first).
func (r *RefSchema) Resolve() Schema {
	s, ok := r.ctx.Lookup(r.name)
	if !ok {
		panic(fmt.Sprintf("unresolved reference to %q", r.name))
	}
	return s
}

// String implements Schema.
func (r *RefSchema) String() string {
	return fmt.Sprintf("%q", r.name.String())
}

// Resolve follows s through any RefSchema indirection and returns the
// underlying definition. Non-reference schemas are returned unchanged.
func Resolve(s Schema) Schema {
	for {
		ref, ok := s.(*RefSchema)
		if !ok {
			return s
		}
		s = ref.Resolve()
	}
}
