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
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/avrocore/avro/internal/varint"
	"github.com/avrocore/avro/schema"
)

// Decoder decodes Avro binary data to native Go values under a
// schema.Schema, per spec §4.3. A Decoder holds no state beyond its
// configuration and may be reused and shared across goroutines.
type Decoder struct {
	cfg *DecoderConfig
}

// NewDecoder returns a Decoder configured by cfg. A nil cfg is
// equivalent to NewDecoderConfig().
func NewDecoder(cfg *DecoderConfig) *Decoder {
	if cfg == nil {
		cfg = NewDecoderConfig()
	}
	return &Decoder{cfg: cfg}
}

// Unmarshal decodes data under s using default decoder options. It is
// equivalent to NewDecoder(nil).Decode(s, data).
func Unmarshal(s schema.Schema, data []byte) (interface{}, error) {
	return NewDecoder(nil).Decode(s, data)
}

// Decode decodes the complete value described by s from the start of
// data, then applies the decoder's trailing-bytes policy to whatever is
// left over.
func (d *Decoder) Decode(s schema.Schema, data []byte) (interface{}, error) {
	st := &decodeState{buf: data, cfg: d.cfg}
	v, err := st.decode(s, "")
	if err != nil {
		return nil, err
	}
	if st.pos < len(st.buf) && !d.cfg.AllowTrailingBytes {
		return nil, codecErr(TrailingBytes, "", len(st.buf)-st.pos, fmt.Errorf("%d trailing byte(s) after decode", len(st.buf)-st.pos))
	}
	return v, nil
}

type decodeState struct {
	buf []byte
	pos int
	cfg *DecoderConfig
}

func (st *decodeState) remaining() []byte {
	return st.buf[st.pos:]
}

func (st *decodeState) take(n int, path string) ([]byte, error) {
	if n < 0 || st.pos+n > len(st.buf) {
		return nil, codecErr(UnexpectedEOF, path, nil, fmt.Errorf("need %d bytes, have %d", n, len(st.buf)-st.pos))
	}
	b := st.buf[st.pos : st.pos+n]
	st.pos += n
	return b, nil
}

func (st *decodeState) decodeLong(path string) (int64, error) {
	v, n, err := varint.DecodeLong(st.remaining())
	if err != nil {
		return 0, codecErr(UnexpectedEOF, path, nil, err)
	}
	st.pos += n
	return v, nil
}

func (st *decodeState) decodeInt(path string) (int32, error) {
	v, n, err := varint.DecodeInt(st.remaining())
	if err != nil {
		if errors.Is(err, varint.ErrUnexpectedEOF) {
			return 0, codecErr(UnexpectedEOF, path, nil, err)
		}
		return 0, codecErr(EncodingTypeMismatch, path, nil, err)
	}
	st.pos += n
	return v, nil
}

func (st *decodeState) decodeBytes(path string) ([]byte, error) {
	n, err := st.decodeLong(path)
	if err != nil {
		return nil, err
	}
	raw, err := st.take(int(n), path)
	if err != nil {
		return nil, err
	}
	out := make([]byte, len(raw))
	copy(out, raw)
	return out, nil
}

func (st *decodeState) decode(s schema.Schema, path string) (interface{}, error) {
	resolved := schema.Resolve(s)

	switch node := resolved.(type) {
	case *schema.PrimitiveSchema:
		return st.decodePrimitive(node, path)
	case *schema.RecordSchema:
		return st.decodeRecord(node, path)
	case *schema.EnumSchema:
		return st.decodeEnum(node, path)
	case *schema.ArraySchema:
		return st.decodeArray(node, path)
	case *schema.MapSchema:
		return st.decodeMap(node, path)
	case *schema.UnionSchema:
		return st.decodeUnion(node, path)
	case *schema.FixedSchema:
		return st.decodeFixed(node, path)
	default:
		return nil, codecErr(EncodingTypeMismatch, path, nil, fmt.Errorf("unsupported schema node %T", resolved))
	}
}

func (st *decodeState) decodePrimitive(node *schema.PrimitiveSchema, path string) (interface{}, error) {
	if lt := node.Logical(); lt != nil {
		return st.decodeLogical(lt, path)
	}
	switch node.Kind() {
	case schema.Null:
		return nil, nil
	case schema.Boolean:
		b, err := st.take(1, path)
		if err != nil {
			return nil, err
		}
		return b[0] != 0x00, nil
	case schema.Int:
		return st.decodeInt(path)
	case schema.Long:
		return st.decodeLong(path)
	case schema.Float:
		v, n, err := varint.DecodeFloat(st.remaining())
		if err != nil {
			return nil, codecErr(UnexpectedEOF, path, nil, err)
		}
		st.pos += n
		return v, nil
	case schema.Double:
		v, n, err := varint.DecodeDouble(st.remaining())
		if err != nil {
			return nil, codecErr(UnexpectedEOF, path, nil, err)
		}
		st.pos += n
		return v, nil
	case schema.Bytes:
		return st.decodeBytes(path)
	case schema.String:
		raw, err := st.decodeBytes(path)
		if err != nil {
			return nil, err
		}
		if !utf8.Valid(raw) {
			return nil, codecErr(InvalidString, path, raw, fmt.Errorf("value is not valid UTF-8"))
		}
		return string(raw), nil
	default:
		return nil, codecErr(EncodingTypeMismatch, path, nil, fmt.Errorf("unsupported primitive kind %s", node.Kind()))
	}
}

func (st *decodeState) decodeLogical(lt *schema.LogicalType, path string) (interface{}, error) {
	switch lt.Name {
	case schema.Date:
		v, err := st.decodeInt(path)
		if err != nil {
			return nil, err
		}
		return intToDate(v), nil
	case schema.TimeMillis:
		v, err := st.decodeInt(path)
		if err != nil {
			return nil, err
		}
		return millisToTime(v), nil
	case schema.TimeMicros:
		v, err := st.decodeLong(path)
		if err != nil {
			return nil, err
		}
		return microsToTime(v), nil
	case schema.TimestampMillis, schema.TimestampMicros, schema.TimestampNanos:
		v, err := st.decodeLong(path)
		if err != nil {
			return nil, err
		}
		return longToTimestamp(lt.Name, v), nil
	case schema.Decimal:
		raw, err := st.decodeBytes(path)
		if err != nil {
			return nil, err
		}
		return bytesToDecimal(raw, lt.Scale, st.cfg.Decimals), nil
	case schema.UUID:
		raw, err := st.decodeBytes(path)
		if err != nil {
			return nil, err
		}
		return string(raw), nil
	default:
		return nil, codecErr(EncodingTypeMismatch, path, nil, fmt.Errorf("unsupported logical type %q", lt.Name))
	}
}

func (st *decodeState) decodeRecord(node *schema.RecordSchema, path string) (interface{}, error) {
	out := make(map[string]interface{}, len(node.Fields()))
	for _, f := range node.Fields() {
		v, err := st.decode(f.Schema(), joinPath(path, f.Name()))
		if err != nil {
			return nil, err
		}
		out[f.Name()] = v
	}
	return out, nil
}

func (st *decodeState) decodeEnum(node *schema.EnumSchema, path string) (interface{}, error) {
	idx, err := st.decodeLong(path)
	if err != nil {
		return nil, err
	}
	symbols := node.Symbols()
	if idx < 0 || int(idx) >= len(symbols) {
		return nil, codecErr(EnumSymbolNotFound, path, idx, fmt.Errorf("enum index %d out of range [0,%d)", idx, len(symbols)))
	}
	return symbols[idx], nil
}

func (st *decodeState) decodeArray(node *schema.ArraySchema, path string) (interface{}, error) {
	items := []interface{}{}
	i := 0
	for {
		count, err := st.decodeLong(path)
		if err != nil {
			return nil, err
		}
		if count == 0 {
			break
		}
		n := count
		if n < 0 {
			n = -n
			if _, err := st.decodeLong(path); err != nil { // skippable byte-size long
				return nil, err
			}
		}
		for j := int64(0); j < n; j++ {
			v, err := st.decode(node.Items(), fmt.Sprintf("%s[%d]", path, i))
			if err != nil {
				return nil, err
			}
			items = append(items, v)
			i++
		}
	}
	return items, nil
}

func (st *decodeState) decodeMap(node *schema.MapSchema, path string) (interface{}, error) {
	out := map[string]interface{}{}
	for {
		count, err := st.decodeLong(path)
		if err != nil {
			return nil, err
		}
		if count == 0 {
			break
		}
		n := count
		if n < 0 {
			n = -n
			if _, err := st.decodeLong(path); err != nil {
				return nil, err
			}
		}
		for j := int64(0); j < n; j++ {
			keyRaw, err := st.decodeBytes(path)
			if err != nil {
				return nil, err
			}
			key := string(keyRaw)
			v, err := st.decode(node.Values(), fmt.Sprintf("%s[%q]", path, key))
			if err != nil {
				return nil, err
			}
			out[key] = v // last write wins across blocks (spec §9 open question a)
		}
	}
	return out, nil
}

func (st *decodeState) decodeUnion(node *schema.UnionSchema, path string) (interface{}, error) {
	idx, err := st.decodeLong(path)
	if err != nil {
		return nil, err
	}
	branches := node.Branches()
	if idx < 0 || int(idx) >= len(branches) {
		return nil, codecErr(UnionBranchNotFound, path, idx, fmt.Errorf("union branch index %d out of range [0,%d)", idx, len(branches)))
	}
	branch := branches[idx]
	v, err := st.decode(branch, path)
	if err != nil {
		return nil, err
	}
	if !st.cfg.TaggedUnions || v == nil {
		return v, nil
	}
	return TaggedUnion{Branch: schema.BranchName(schema.Resolve(branch)), Value: v}, nil
}

func (st *decodeState) decodeFixed(node *schema.FixedSchema, path string) (interface{}, error) {
	raw, err := st.take(node.Size(), path)
	if err != nil {
		return nil, err
	}
	if lt := node.Logical(); lt != nil {
		switch lt.Name {
		case schema.Decimal:
			return bytesToDecimal(raw, lt.Scale, st.cfg.Decimals), nil
		case schema.UUID:
			return fixedBytesToUUID(raw, st.cfg.UUIDFormat, path)
		}
	}
	out := make([]byte, len(raw))
	copy(out, raw)
	return out, nil
}
