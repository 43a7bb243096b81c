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

// timeToMillis converts a time-of-day value to signed milliseconds since
// midnight (spec §4.2: "time-millis ↔ signed milliseconds since local
// midnight (int)").
func timeToMillis(value interface{}, path string) (int32, error) {
	d, err := asDuration(value, path)
	if err != nil {
		return 0, err
	}
	millis := d.Milliseconds()
	if millis < math.MinInt32 || millis > math.MaxInt32 {
		return 0, codecErr(EncodingTypeMismatch, path, value, fmt.Errorf("time-millis out of int32 range"))
	}
	return int32(millis), nil
}

func millisToTime(v int32) time.Duration {
	return time.Duration(v) * time.Millisecond
}

// timeToMicros converts a time-of-day value to signed microseconds since
// midnight.
func timeToMicros(value interface{}, path string) (int64, error) {
	d, err := asDuration(value, path)
	if err != nil {
		return 0, err
	}
	return d.Microseconds(), nil
}

func microsToTime(v int64) time.Duration {
	return time.Duration(v) * time.Microsecond
}

func asDuration(value interface{}, path string) (time.Duration, error) {
	switch t := value.(type) {
	case time.Duration:
		return t, nil
	default:
		return 0, codecErr(EncodingTypeMismatch, path, value, fmt.Errorf("expected time.Duration, got %T", value))
	}
}
