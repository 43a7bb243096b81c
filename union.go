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

package avro

import (
	"fmt"
	"math"

	"github.com/avrocore/avro/schema"
)

// TaggedUnion pairs a value with the explicit branch under which it
// should be encoded, or was decoded (spec §4.2 "Union branch selection",
// §4.3 "tagged_unions"). Branch is the branch's fullname for a named
// type, or its primitive/array/map/union type name otherwise.
type TaggedUnion struct {
	Branch string
	Value  interface{}
}

// selectBranch implements spec §4.2's union branch selection algorithm:
// a TaggedUnion input always overrides shape inference; otherwise the
// first branch whose shape matches value, in declared order, wins.
func selectBranch(u *schema.UnionSchema, value interface{}, path string) (int, schema.Schema, interface{}, error) {
	if tagged, ok := value.(TaggedUnion); ok {
		idx := u.IndexByName(tagged.Branch)
		if idx < 0 {
			return 0, nil, nil, codecErr(UnionBranchNotFound, path, tagged.Branch,
				fmt.Errorf("union has no branch named %q", tagged.Branch))
		}
		return idx, u.Branches()[idx], tagged.Value, nil
	}

	for i, b := range u.Branches() {
		if branchMatches(schema.Resolve(b), value) {
			return i, b, value, nil
		}
	}
	return 0, nil, nil, codecErr(UnionBranchNotFound, path, value,
		fmt.Errorf("no union branch matches a value of type %T", value))
}

// branchMatches implements the per-kind shape rules from spec §4.2 step 2.
func branchMatches(resolved schema.Schema, value interface{}) bool {
	switch resolved.Kind() {
	case schema.Null:
		return value == nil
	case schema.Boolean:
		_, ok := value.(bool)
		return ok
	case schema.Int:
		return fitsInt32(value)
	case schema.Long:
		return isIntLike(value)
	case schema.Float:
		switch value.(type) {
		case float32:
			return true
		default:
			return false
		}
	case schema.Double:
		switch value.(type) {
		case float64:
			return true
		default:
			return false
		}
	case schema.Bytes:
		_, ok := value.([]byte)
		return ok
	case schema.String:
		_, ok := value.(string)
		return ok
	case schema.Fixed:
		b, ok := value.([]byte)
		return ok && len(b) == resolved.(*schema.FixedSchema).Size()
	case schema.Enum:
		s, ok := value.(string)
		if !ok {
			return false
		}
		return resolved.(*schema.EnumSchema).IndexOf(s) >= 0
	case schema.Array:
		_, ok := value.([]interface{})
		return ok
	case schema.Map:
		_, ok := value.(map[string]interface{})
		return ok
	case schema.Record:
		m, ok := value.(map[string]interface{})
		if !ok {
			return false
		}
		rec := resolved.(*schema.RecordSchema)
		for _, f := range rec.Fields() {
			if !f.HasDefault() {
				if _, present := m[f.Name()]; !present {
					return false
				}
			}
		}
		return true
	default:
		return false
	}
}

func isIntLike(value interface{}) bool {
	switch value.(type) {
	case int, int32, int64:
		return true
	default:
		return false
	}
}

// fitsInt32 reports whether value is integral and representable as a
// signed 32-bit int, implementing spec §4.2's "prefer narrower" rule so
// an ["int","long"] union picks the int branch whenever the value fits.
func fitsInt32(value interface{}) bool {
	switch v := value.(type) {
	case int32:
		return true
	case int:
		return v >= math.MinInt32 && v <= math.MaxInt32
	case int64:
		return v >= math.MinInt32 && v <= math.MaxInt32
	default:
		return false
	}
}
