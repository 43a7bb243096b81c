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
	"time"

	"github.com/avrocore/avro/schema"
)

// timestampToLong converts value to a signed offset from the Unix epoch
// in the unit implied by name, truncating native precision (spec §4.2:
// "Encoding truncates native precision to the unit").
func timestampToLong(name schema.LogicalName, value interface{}, path string) (int64, error) {
	t, err := asTime(value, path)
	if err != nil {
		return 0, err
	}
	switch name {
	case schema.TimestampMillis:
		return t.UnixMilli(), nil
	case schema.TimestampMicros:
		return t.UnixMicro(), nil
	case schema.TimestampNanos:
		return t.UnixNano(), nil
	default:
		return 0, codecErr(EncodingTypeMismatch, path, value, nil)
	}
}

// longToTimestamp converts a stored offset back to a UTC time.Time.
func longToTimestamp(name schema.LogicalName, v int64) time.Time {
	switch name {
	case schema.TimestampMillis:
		return time.UnixMilli(v).UTC()
	case schema.TimestampMicros:
		return time.UnixMicro(v).UTC()
	default: // TimestampNanos
		return time.Unix(0, v).UTC()
	}
}
