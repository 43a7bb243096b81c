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

package avro_test

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/avrocore/avro"
	"github.com/avrocore/avro/avrotest"
)

func TestRoundTripComplexRecord(t *testing.T) {
	s := avrotest.MustParse(t, `{
		"type": "record",
		"name": "Order",
		"namespace": "avrotest",
		"fields": [
			{"name": "id", "type": "long"},
			{"name": "note", "type": ["null", "string"], "default": null},
			{"name": "status", "type": {"type": "enum", "name": "Status", "symbols": ["OPEN", "SHIPPED", "CANCELLED"]}},
			{"name": "amounts", "type": {"type": "array", "items": "double"}},
			{"name": "tags", "type": {"type": "map", "values": "string"}}
		]
	}`)

	value := map[string]interface{}{
		"id":      int64(42),
		"note":    "rush order",
		"status":  "SHIPPED",
		"amounts": []interface{}{19.99, 4.50},
		"tags":    map[string]interface{}{"region": "west", "channel": "web"},
	}

	buf, err := avro.Marshal(s, value)
	require.NoError(t, err)

	got, err := avro.Unmarshal(s, buf)
	require.NoError(t, err)
	require.Equal(t, value, got)
}

func TestRoundTripLinkedList(t *testing.T) {
	s := avrotest.MustParse(t, avrotest.LinkedList)

	value := map[string]interface{}{
		"value": int64(1),
		"next": avro.TaggedUnion{Branch: "avrotest.LinkedList", Value: map[string]interface{}{
			"value": int64(2),
			"next":  nil,
		}},
	}

	buf, err := avro.Marshal(s, value)
	require.NoError(t, err)

	got, err := avro.Unmarshal(s, buf)
	require.NoError(t, err)

	expected := map[string]interface{}{
		"value": int64(1),
		"next": map[string]interface{}{
			"value": int64(2),
			"next":  nil,
		},
	}
	require.Equal(t, expected, got)
}

func TestRoundTripTimestampMicros(t *testing.T) {
	s := avrotest.MustParse(t, `{"type":"long","logicalType":"timestamp-micros"}`)
	when := time.Date(2024, time.June, 15, 12, 30, 0, 123000, time.UTC)

	buf, err := avro.Marshal(s, when)
	require.NoError(t, err)

	got, err := avro.Unmarshal(s, buf)
	require.NoError(t, err)
	require.True(t, when.Equal(got.(time.Time)))
}

func TestRoundTripTimeMillis(t *testing.T) {
	s := avrotest.MustParse(t, `{"type":"int","logicalType":"time-millis"}`)
	d := 3*time.Hour + 15*time.Minute + 500*time.Millisecond

	buf, err := avro.Marshal(s, d)
	require.NoError(t, err)

	got, err := avro.Unmarshal(s, buf)
	require.NoError(t, err)
	require.Equal(t, d, got)
}

func TestRoundTripFixedDecimal(t *testing.T) {
	s := avrotest.MustParse(t, `{"type":"fixed","name":"Money","size":8,"logicalType":"decimal","precision":16,"scale":2}`)

	buf, err := avro.Marshal(s, "-1234.56")
	require.NoError(t, err)
	require.Len(t, buf, 8)

	dec := avro.NewDecoder(&avro.DecoderConfig{Decimals: avro.DecimalExact})
	got, err := dec.Decode(s, buf)
	require.NoError(t, err)
	require.Equal(t, "-1234.56", got.(interface{ String() string }).String())
}

func TestIntBoundaries(t *testing.T) {
	s := avrotest.MustParse(t, `"int"`)

	buf, err := avro.Marshal(s, int32(math.MaxInt32))
	require.NoError(t, err)
	v, err := avro.Unmarshal(s, buf)
	require.NoError(t, err)
	require.Equal(t, int32(math.MaxInt32), v)

	buf, err = avro.Marshal(s, int32(math.MinInt32))
	require.NoError(t, err)
	v, err = avro.Unmarshal(s, buf)
	require.NoError(t, err)
	require.Equal(t, int32(math.MinInt32), v)

	_, err = avro.Marshal(s, int64(math.MaxInt32)+1)
	require.Error(t, err)
}

func TestLongBoundaries(t *testing.T) {
	s := avrotest.MustParse(t, `"long"`)

	buf, err := avro.Marshal(s, int64(math.MaxInt64))
	require.NoError(t, err)
	v, err := avro.Unmarshal(s, buf)
	require.NoError(t, err)
	require.Equal(t, int64(math.MaxInt64), v)

	buf, err = avro.Marshal(s, int64(math.MinInt64))
	require.NoError(t, err)
	v, err = avro.Unmarshal(s, buf)
	require.NoError(t, err)
	require.Equal(t, int64(math.MinInt64), v)
}
