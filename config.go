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

// EncoderConfig carries the encoder's recognized options (spec §4.2).
type EncoderConfig struct {
	// IncludeBlockByteSize, when true, negates the block count for
	// non-terminating array/map blocks and follows it with a long
	// byte-size of the block's items, letting a decoder skip the block
	// without decoding its items.
	IncludeBlockByteSize bool
}

// NewEncoderConfig returns an EncoderConfig with sane defaults.
func NewEncoderConfig() *EncoderConfig {
	return &EncoderConfig{}
}

// DecimalMode selects how the decoder represents a decimal logical-type
// value.
type DecimalMode int

const (
	// DecimalApproximate decodes to a float64 approximation of
	// unscaled * 10^(-scale). This is the default.
	DecimalApproximate DecimalMode = iota
	// DecimalExact decodes to a decimal.Decimal (github.com/shopspring/decimal)
	// carrying the exact unscaled value and scale.
	DecimalExact
)

// UUIDFormat selects how the decoder represents a 16-byte fixed-backed
// UUID logical-type value. String-backed UUIDs always decode as text
// regardless of this setting.
type UUIDFormat int

const (
	// UUIDBinary decodes a fixed-backed UUID to its raw 16 bytes. This is
	// the default.
	UUIDBinary UUIDFormat = iota
	// UUIDCanonicalString decodes a fixed-backed UUID to its canonical
	// 36-character hyphenated hex text.
	UUIDCanonicalString
)

// DecoderConfig carries the decoder's recognized options (spec §4.3).
type DecoderConfig struct {
	// TaggedUnions, when true, decodes a union value as a TaggedUnion
	// naming the selected branch instead of returning the bare inner
	// value. Null branches are never tagged.
	TaggedUnions bool

	// Decimals selects the representation of decimal logical-type values.
	Decimals DecimalMode

	// UUIDFormat selects the representation of fixed-backed UUID
	// logical-type values.
	UUIDFormat UUIDFormat

	// AllowTrailingBytes, when true, silently ignores bytes remaining
	// after a successful top-level decode. When false, Decoder.Decode
	// returns a TrailingBytes CodecError (Unmarshal always uses the
	// defaults). Default true (spec §9 open question b:
	// the reference behavior ignores them).
	AllowTrailingBytes bool
}

// NewDecoderConfig returns a DecoderConfig with sane defaults: untagged
// unions, approximate decimals, binary UUIDs, trailing bytes allowed.
func NewDecoderConfig() *DecoderConfig {
	return &DecoderConfig{AllowTrailingBytes: true}
}
