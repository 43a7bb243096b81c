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

// validateReferences walks the freshly parsed schema graph confirming
// every RefSchema resolves within its Context (spec §3.2: an unresolved
// reference fails parsing). visited tracks composite schemas already
// walked, both to avoid quadratic re-walks of shared subgraphs and to
// terminate on self- and mutually-referencing records.
func validateReferences(s Schema, visited map[Schema]bool) error {
	switch t := s.(type) {
	case *RefSchema:
		resolved, ok := t.ctx.Lookup(t.name)
		if !ok {
			return &ParseError{Kind: UnknownReference, Value: t.name.String(), Wrapped: fmt.Errorf("unknown reference %q", t.name)}
		}
		return validateReferences(resolved, visited)
	case *RecordSchema:
		if visited[s] {
			return nil
		}
		visited[s] = true
		for _, f := range t.Fields() {
			if err := validateReferences(f.Schema(), visited); err != nil {
				return err
			}
		}
		return nil
	case *ArraySchema:
		return validateReferences(t.Items(), visited)
	case *MapSchema:
		return validateReferences(t.Values(), visited)
	case *UnionSchema:
		if visited[s] {
			return nil
		}
		visited[s] = true
		for _, b := range t.Branches() {
			if err := validateReferences(b, visited); err != nil {
				return err
			}
		}
		return nil
	default:
		// Enum, Fixed and Primitive schemas are leaves with no further
		// references to check.
		return nil
	}
}
