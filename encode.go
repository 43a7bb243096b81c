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
	"sort"
	"unicode/utf8"

	"github.com/avrocore/avro/internal/varint"
	"github.com/avrocore/avro/schema"
)

// Encoder encodes native Go values to Avro binary under a schema.Schema,
// per spec §4.2. An Encoder holds no state beyond its configuration and
// may be reused and shared across goroutines.
type Encoder struct {
	cfg *EncoderConfig
}

// NewEncoder returns an Encoder configured by cfg. A nil cfg is
// equivalent to NewEncoderConfig().
func NewEncoder(cfg *EncoderConfig) *Encoder {
	if cfg == nil {
		cfg = NewEncoderConfig()
	}
	return &Encoder{cfg: cfg}
}

// Marshal encodes value under s using default encoder options. It is
// equivalent to NewEncoder(nil).Encode(s, value).
func Marshal(s schema.Schema, value interface{}) ([]byte, error) {
	return NewEncoder(nil).Encode(s, value)
}

// Encode encodes value under s, returning the complete binary encoding.
func (e *Encoder) Encode(s schema.Schema, value interface{}) ([]byte, error) {
	return e.encode(nil, s, value, "")
}

func (e *Encoder) encode(buf []byte, s schema.Schema, value interface{}, path string) ([]byte, error) {
	resolved := schema.Resolve(s)

	switch node := resolved.(type) {
	case *schema.PrimitiveSchema:
		return e.encodePrimitive(buf, node, value, path)
	case *schema.RecordSchema:
		return e.encodeRecord(buf, node, value, path)
	case *schema.EnumSchema:
		return e.encodeEnum(buf, node, value, path)
	case *schema.ArraySchema:
		return e.encodeArray(buf, node, value, path)
	case *schema.MapSchema:
		return e.encodeMap(buf, node, value, path)
	case *schema.UnionSchema:
		return e.encodeUnion(buf, node, value, path)
	case *schema.FixedSchema:
		return e.encodeFixed(buf, node, value, path)
	default:
		return nil, codecErr(EncodingTypeMismatch, path, value, fmt.Errorf("unsupported schema node %T", resolved))
	}
}

func (e *Encoder) encodePrimitive(buf []byte, node *schema.PrimitiveSchema, value interface{}, path string) ([]byte, error) {
	if lt := node.Logical(); lt != nil {
		return e.encodeLogical(buf, node.Kind(), lt, value, path)
	}
	switch node.Kind() {
	case schema.Null:
		if value != nil {
			return nil, codecErr(EncodingTypeMismatch, path, value, fmt.Errorf("expected nil for null"))
		}
		return buf, nil
	case schema.Boolean:
		b, ok := value.(bool)
		if !ok {
			return nil, codecErr(EncodingTypeMismatch, path, value, fmt.Errorf("expected bool, got %T", value))
		}
		if b {
			return append(buf, 0x01), nil
		}
		return append(buf, 0x00), nil
	case schema.Int:
		v, err := toInt32(value, path)
		if err != nil {
			return nil, err
		}
		return varint.AppendInt(buf, v), nil
	case schema.Long:
		v, err := toInt64(value, path)
		if err != nil {
			return nil, err
		}
		return varint.AppendLong(buf, v), nil
	case schema.Float:
		v, ok := value.(float32)
		if !ok {
			f, isF64 := value.(float64)
			if !isF64 {
				return nil, codecErr(EncodingTypeMismatch, path, value, fmt.Errorf("expected float32, got %T", value))
			}
			v = float32(f)
		}
		return varint.AppendFloat(buf, v), nil
	case schema.Double:
		v, err := toFloat64(value, path)
		if err != nil {
			return nil, err
		}
		return varint.AppendDouble(buf, v), nil
	case schema.Bytes:
		b, ok := value.([]byte)
		if !ok {
			return nil, codecErr(EncodingTypeMismatch, path, value, fmt.Errorf("expected []byte, got %T", value))
		}
		return appendBytes(buf, b), nil
	case schema.String:
		s, ok := value.(string)
		if !ok {
			return nil, codecErr(EncodingTypeMismatch, path, value, fmt.Errorf("expected string, got %T", value))
		}
		if !utf8.ValidString(s) {
			return nil, codecErr(InvalidString, path, s, fmt.Errorf("value is not valid UTF-8"))
		}
		return appendBytes(buf, []byte(s)), nil
	default:
		return nil, codecErr(EncodingTypeMismatch, path, value, fmt.Errorf("unsupported primitive kind %s", node.Kind()))
	}
}

func (e *Encoder) encodeLogical(buf []byte, underlying schema.Kind, lt *schema.LogicalType, value interface{}, path string) ([]byte, error) {
	switch lt.Name {
	case schema.Date:
		v, err := dateToInt(value, path)
		if err != nil {
			return nil, err
		}
		return varint.AppendInt(buf, v), nil
	case schema.TimeMillis:
		v, err := timeToMillis(value, path)
		if err != nil {
			return nil, err
		}
		return varint.AppendInt(buf, v), nil
	case schema.TimeMicros:
		v, err := timeToMicros(value, path)
		if err != nil {
			return nil, err
		}
		return varint.AppendLong(buf, v), nil
	case schema.TimestampMillis, schema.TimestampMicros, schema.TimestampNanos:
		v, err := timestampToLong(lt.Name, value, path)
		if err != nil {
			return nil, err
		}
		return varint.AppendLong(buf, v), nil
	case schema.Decimal:
		raw, err := decimalToBytes(value, lt.Scale, 0, path)
		if err != nil {
			return nil, err
		}
		return appendBytes(buf, raw), nil
	case schema.UUID:
		s, err := uuidToText(value, path)
		if err != nil {
			return nil, err
		}
		return appendBytes(buf, []byte(s)), nil
	default:
		return nil, codecErr(EncodingTypeMismatch, path, value, fmt.Errorf("unsupported logical type %q", lt.Name))
	}
}

func (e *Encoder) encodeRecord(buf []byte, node *schema.RecordSchema, value interface{}, path string) ([]byte, error) {
	m, ok := value.(map[string]interface{})
	if !ok {
		return nil, codecErr(EncodingTypeMismatch, path, value, fmt.Errorf("expected map[string]interface{} for record %s, got %T", node.FullName(), value))
	}
	var err error
	for _, f := range node.Fields() {
		fv, present := m[f.Name()]
		if !present {
			if !f.HasDefault() {
				return nil, codecErr(EncodingTypeMismatch, joinPath(path, f.Name()), nil, fmt.Errorf("missing required field %q", f.Name()))
			}
			fv = f.Default()
		}
		buf, err = e.encode(buf, f.Schema(), fv, joinPath(path, f.Name()))
		if err != nil {
			return nil, err
		}
	}
	return buf, nil
}

func (e *Encoder) encodeEnum(buf []byte, node *schema.EnumSchema, value interface{}, path string) ([]byte, error) {
	s, ok := value.(string)
	if !ok {
		return nil, codecErr(EncodingTypeMismatch, path, value, fmt.Errorf("expected string symbol, got %T", value))
	}
	idx := node.IndexOf(s)
	if idx < 0 {
		return nil, codecErr(EnumSymbolNotFound, path, s, fmt.Errorf("%q is not a symbol of enum %s", s, node.FullName()))
	}
	return varint.AppendLong(buf, int64(idx)), nil
}

func (e *Encoder) encodeArray(buf []byte, node *schema.ArraySchema, value interface{}, path string) ([]byte, error) {
	items, ok := value.([]interface{})
	if !ok {
		return nil, codecErr(EncodingTypeMismatch, path, value, fmt.Errorf("expected []interface{}, got %T", value))
	}
	if len(items) == 0 {
		return varint.AppendLong(buf, 0), nil
	}

	var itemBuf []byte
	var err error
	for i, it := range items {
		itemBuf, err = e.encode(itemBuf, node.Items(), it, fmt.Sprintf("%s[%d]", path, i))
		if err != nil {
			return nil, err
		}
	}
	return e.appendBlock(buf, len(items), itemBuf), nil
}

func (e *Encoder) encodeMap(buf []byte, node *schema.MapSchema, value interface{}, path string) ([]byte, error) {
	m, ok := value.(map[string]interface{})
	if !ok {
		return nil, codecErr(EncodingTypeMismatch, path, value, fmt.Errorf("expected map[string]interface{}, got %T", value))
	}
	if len(m) == 0 {
		return varint.AppendLong(buf, 0), nil
	}

	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys) // deterministic output (spec §8: idempotence of encode)

	var itemBuf []byte
	var err error
	for _, k := range keys {
		itemBuf = appendBytes(itemBuf, []byte(k))
		itemBuf, err = e.encode(itemBuf, node.Values(), m[k], fmt.Sprintf("%s[%q]", path, k))
		if err != nil {
			return nil, err
		}
	}
	return e.appendBlock(buf, len(keys), itemBuf), nil
}

// appendBlock frames a non-empty array/map block per spec §4.2, honoring
// IncludeBlockByteSize, and appends the terminating zero-count block.
func (e *Encoder) appendBlock(buf []byte, count int, itemBuf []byte) []byte {
	if e.cfg.IncludeBlockByteSize {
		buf = varint.AppendLong(buf, -int64(count))
		buf = varint.AppendLong(buf, int64(len(itemBuf)))
	} else {
		buf = varint.AppendLong(buf, int64(count))
	}
	buf = append(buf, itemBuf...)
	return varint.AppendLong(buf, 0)
}

func (e *Encoder) encodeUnion(buf []byte, node *schema.UnionSchema, value interface{}, path string) ([]byte, error) {
	idx, branch, inner, err := selectBranch(node, value, path)
	if err != nil {
		return nil, err
	}
	buf = varint.AppendLong(buf, int64(idx))
	return e.encode(buf, branch, inner, path)
}

func (e *Encoder) encodeFixed(buf []byte, node *schema.FixedSchema, value interface{}, path string) ([]byte, error) {
	if lt := node.Logical(); lt != nil {
		switch lt.Name {
		case schema.Decimal:
			raw, err := decimalToBytes(value, lt.Scale, node.Size(), path)
			if err != nil {
				return nil, err
			}
			return append(buf, raw...), nil
		case schema.UUID:
			raw, err := uuidToFixedBytes(value, path)
			if err != nil {
				return nil, err
			}
			return append(buf, raw...), nil
		}
	}
	b, ok := value.([]byte)
	if !ok {
		return nil, codecErr(EncodingTypeMismatch, path, value, fmt.Errorf("expected []byte for fixed %s, got %T", node.FullName(), value))
	}
	if len(b) != node.Size() {
		return nil, codecErr(FixedSizeMismatch, path, value, fmt.Errorf("fixed %s requires %d bytes, got %d", node.FullName(), node.Size(), len(b)))
	}
	return append(buf, b...), nil
}

func appendBytes(buf, b []byte) []byte {
	buf = varint.AppendLong(buf, int64(len(b)))
	return append(buf, b...)
}

func toInt32(value interface{}, path string) (int32, error) {
	switch v := value.(type) {
	case int32:
		return v, nil
	case int:
		if v < -(1<<31) || v > (1<<31)-1 {
			return 0, codecErr(EncodingTypeMismatch, path, value, fmt.Errorf("value out of int32 range"))
		}
		return int32(v), nil
	case int64:
		if v < -(1<<31) || v > (1<<31)-1 {
			return 0, codecErr(EncodingTypeMismatch, path, value, fmt.Errorf("value out of int32 range"))
		}
		return int32(v), nil
	default:
		return 0, codecErr(EncodingTypeMismatch, path, value, fmt.Errorf("expected an integer, got %T", value))
	}
}

func toInt64(value interface{}, path string) (int64, error) {
	switch v := value.(type) {
	case int64:
		return v, nil
	case int32:
		return int64(v), nil
	case int:
		return int64(v), nil
	default:
		return 0, codecErr(EncodingTypeMismatch, path, value, fmt.Errorf("expected an integer, got %T", value))
	}
}

func toFloat64(value interface{}, path string) (float64, error) {
	switch v := value.(type) {
	case float64:
		return v, nil
	case float32:
		return float64(v), nil
	default:
		return 0, codecErr(EncodingTypeMismatch, path, value, fmt.Errorf("expected a float, got %T", value))
	}
}
