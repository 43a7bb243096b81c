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

	"github.com/google/uuid"
)

// uuidToFixedBytes converts a uuid logical-type value to its raw 16
// bytes for a fixed-backed schema (spec §4.2: "On 16-byte fixed: raw 16
// bytes; if caller supplies canonical text, parse it to 16 bytes first").
func uuidToFixedBytes(value interface{}, path string) ([]byte, error) {
	switch v := value.(type) {
	case [16]byte:
		return v[:], nil
	case []byte:
		if len(v) != 16 {
			return nil, codecErr(FixedSizeMismatch, path, value, fmt.Errorf("uuid fixed value must be 16 bytes, got %d", len(v)))
		}
		return v, nil
	case string:
		id, err := uuid.Parse(v)
		if err != nil {
			return nil, codecErr(InvalidBinaryUUID, path, value, err)
		}
		b := id[:]
		return b, nil
	case uuid.UUID:
		return v[:], nil
	default:
		return nil, codecErr(EncodingTypeMismatch, path, value, fmt.Errorf("expected a uuid value, got %T", value))
	}
}

// fixedBytesToUUID converts raw 16 bytes to the representation selected
// by format.
func fixedBytesToUUID(raw []byte, format UUIDFormat, path string) (interface{}, error) {
	if len(raw) != 16 {
		return nil, codecErr(InvalidBinaryUUID, path, raw, fmt.Errorf("uuid fixed value must be 16 bytes, got %d", len(raw)))
	}
	if format == UUIDCanonicalString {
		id, err := uuid.FromBytes(raw)
		if err != nil {
			return nil, codecErr(InvalidBinaryUUID, path, raw, err)
		}
		return id.String(), nil
	}
	out := make([]byte, 16)
	copy(out, raw)
	return out, nil
}

// uuidToText converts a uuid logical-type value to canonical text for a
// string-backed schema.
func uuidToText(value interface{}, path string) (string, error) {
	switch v := value.(type) {
	case string:
		id, err := uuid.Parse(v)
		if err != nil {
			return "", codecErr(InvalidBinaryUUID, path, value, err)
		}
		return id.String(), nil
	case uuid.UUID:
		return v.String(), nil
	case [16]byte:
		id, err := uuid.FromBytes(v[:])
		if err != nil {
			return "", codecErr(InvalidBinaryUUID, path, value, err)
		}
		return id.String(), nil
	default:
		return "", codecErr(EncodingTypeMismatch, path, value, fmt.Errorf("expected a uuid value, got %T", value))
	}
}
