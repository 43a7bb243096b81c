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
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/avrocore/avro"
	"github.com/avrocore/avro/avrotest"
)

func TestEncodeIntNegativeTen(t *testing.T) {
	// spec §8 scenario 1
	s := avrotest.MustParse(t, `"int"`)
	buf, err := avro.Marshal(s, int32(-10))
	require.NoError(t, err)
	require.Equal(t, []byte{19}, buf)
}

func TestEncodeNullableIntUnion(t *testing.T) {
	// spec §8 scenario 2
	s := avrotest.MustParse(t, `["null","int"]`)

	buf, err := avro.Marshal(s, nil)
	require.NoError(t, err)
	require.Equal(t, []byte{0}, buf)

	buf, err = avro.Marshal(s, int32(25))
	require.NoError(t, err)
	require.Equal(t, []byte{2, 50}, buf)
}

func TestEncodeArrayOfNullableInt(t *testing.T) {
	// spec §8 scenario 3
	s := avrotest.MustParse(t, `{"type":"array","items":["null","int"]}`)
	values := []interface{}{int32(1), int32(2), int32(3), nil, int32(4), int32(5), nil}
	buf, err := avro.Marshal(s, values)
	require.NoError(t, err)

	require.Equal(t, byte(14), buf[0]) // zig-zag count 7
	require.Equal(t, byte(0), buf[len(buf)-1])
}

func TestEncodeFixedUUIDCanonicalString(t *testing.T) {
	// spec §8 scenario 4
	s := avrotest.MustParse(t, `{"type":"fixed","size":16,"name":"fixed_uuid","logicalType":"uuid"}`)
	buf, err := avro.Marshal(s, "550e8400-e29b-41d4-a716-446655440000")
	require.NoError(t, err)
	require.Equal(t, []byte{
		0x55, 0x0e, 0x84, 0x00, 0xe2, 0x9b, 0x41, 0xd4,
		0xa7, 0x16, 0x44, 0x66, 0x55, 0x44, 0x00, 0x00,
	}, buf)
}

func TestEncodeDateLogicalType(t *testing.T) {
	// spec §8 scenario 5
	s := avrotest.MustParse(t, `{"type":"int","logicalType":"date"}`)
	buf, err := avro.Marshal(s, time.Date(1970, time.March, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	got, err := avro.Unmarshal(s, buf)
	require.NoError(t, err)
	require.Equal(t, time.Date(1970, time.March, 1, 0, 0, 0, 0, time.UTC), got)
}

func TestEncodeEmptyArrayAndMap(t *testing.T) {
	arr := avrotest.MustParse(t, `{"type":"array","items":"int"}`)
	buf, err := avro.Marshal(arr, []interface{}{})
	require.NoError(t, err)
	require.Equal(t, []byte{0}, buf)

	m := avrotest.MustParse(t, `{"type":"map","values":"int"}`)
	buf, err = avro.Marshal(m, map[string]interface{}{})
	require.NoError(t, err)
	require.Equal(t, []byte{0}, buf)
}

func TestEncodeRecordUsesFieldDefault(t *testing.T) {
	s := avrotest.MustParse(t, avrotest.RecordWithDefault)
	buf, err := avro.Marshal(s, map[string]interface{}{"id": int64(7)})
	require.NoError(t, err)

	v, err := avro.Unmarshal(s, buf)
	require.NoError(t, err)
	rec := v.(map[string]interface{})
	require.Equal(t, int64(7), rec["id"])
	require.Equal(t, "unnamed", rec["label"])
}

func TestEncodeTaggedUnionOverridesShapeInference(t *testing.T) {
	s := avrotest.MustParse(t, `["string","int"]`)
	buf, err := avro.Marshal(s, avro.TaggedUnion{Branch: "int", Value: int32(5)})
	require.NoError(t, err)
	require.Equal(t, []byte{2, 10}, buf)
}

func TestEncodeUnionNoMatchingBranch(t *testing.T) {
	s := avrotest.MustParse(t, `["null","int"]`)
	_, err := avro.Marshal(s, "not a match")
	require.Error(t, err)
	var cerr *avro.CodecError
	require.ErrorAs(t, err, &cerr)
	require.Equal(t, avro.UnionBranchNotFound, cerr.Kind)
}

func TestEncodeStringRejectsInvalidUTF8(t *testing.T) {
	s := avrotest.MustParse(t, `"string"`)
	_, err := avro.Marshal(s, string([]byte{0xff, 0xfe}))
	require.Error(t, err)
	var cerr *avro.CodecError
	require.ErrorAs(t, err, &cerr)
	require.Equal(t, avro.InvalidString, cerr.Kind)
}

func TestEncodeFixedSizeMismatch(t *testing.T) {
	s := avrotest.MustParse(t, `{"type":"fixed","name":"F","size":4}`)
	_, err := avro.Marshal(s, []byte{1, 2, 3})
	require.Error(t, err)
	var cerr *avro.CodecError
	require.ErrorAs(t, err, &cerr)
	require.Equal(t, avro.FixedSizeMismatch, cerr.Kind)
}

func TestEncodeMapIsDeterministic(t *testing.T) {
	s := avrotest.MustParse(t, `{"type":"map","values":"int"}`)
	value := map[string]interface{}{"z": int32(1), "a": int32(2), "m": int32(3)}
	first, err := avro.Marshal(s, value)
	require.NoError(t, err)
	second, err := avro.Marshal(s, value)
	require.NoError(t, err)
	require.Equal(t, first, second)
}

func TestEncodeIncludeBlockByteSize(t *testing.T) {
	s := avrotest.MustParse(t, `{"type":"array","items":"int"}`)
	enc := avro.NewEncoder(&avro.EncoderConfig{IncludeBlockByteSize: true})
	buf, err := enc.Encode(s, []interface{}{int32(1), int32(2)})
	require.NoError(t, err)

	dec := avro.NewDecoder(nil)
	v, err := dec.Decode(s, buf)
	require.NoError(t, err)
	require.Equal(t, []interface{}{int32(1), int32(2)}, v)
}
