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
	"time"
)

var epochDay = time.Date(1970, time.January, 1, 0, 0, 0, 0, time.UTC)

// dateToInt converts a date logical-type value to a signed day offset
// from the Unix epoch (spec §4.2: "date ↔ signed days from 1970-01-01").
func dateToInt(value interface{}, path string) (int32, error) {
	t, err := asTime(value, path)
	if err != nil {
		return 0, err
	}
	days := t.UTC().Truncate(24 * time.Hour).Sub(epochDay).Hours() / 24
	if days < math.MinInt32 || days > math.MaxInt32 {
		return 0, codecErr(EncodingTypeMismatch, path, value, fmt.Errorf("date out of int32 range"))
	}
	return int32(days), nil
}

// intToDate converts a day offset back to midnight UTC on that day.
func intToDate(days int32) time.Time {
	return epochDay.AddDate(0, 0, int(days))
}

func asTime(value interface{}, path string) (time.Time, error) {
	switch t := value.(type) {
	case time.Time:
		return t, nil
	default:
		return time.Time{}, codecErr(EncodingTypeMismatch, path, value, fmt.Errorf("expected time.Time, got %T", value))
	}
}
