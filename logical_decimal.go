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
	"math/big"

	"github.com/shopspring/decimal"
)

// decimalToBytes converts a decimal value to its two's-complement,
// big-endian, sign-extended unscaled representation (spec §4.2: "the
// unscaled integer value, two's-complement big-endian, sign-extended to
// minimum bytes; for fixed-backed decimal, left-padded/sign-extended to
// the fixed size").
//
// fixedSize is 0 for a bytes-backed decimal (minimum-length encoding) or
// the declared size for a fixed-backed decimal.
func decimalToBytes(value interface{}, scale, fixedSize int, path string) ([]byte, error) {
	d, err := asDecimal(value, path)
	if err != nil {
		return nil, err
	}
	rescaled := rescaleDecimal(d, int32(-scale))
	unscaled := rescaled.Coefficient()
	raw := twosComplementBytes(unscaled)

	if fixedSize == 0 {
		return raw, nil
	}
	if len(raw) > fixedSize {
		return nil, codecErr(DecimalOutOfRange, path, value, fmt.Errorf("unscaled value needs %d bytes, fixed size is %d", len(raw), fixedSize))
	}
	padded := make([]byte, fixedSize)
	pad := byte(0x00)
	if unscaled.Sign() < 0 {
		pad = 0xff
	}
	for i := range padded {
		padded[i] = pad
	}
	copy(padded[fixedSize-len(raw):], raw)
	return padded, nil
}

// bytesToDecimal converts a two's-complement unscaled representation back
// to a decimal value, in the representation selected by mode.
func bytesToDecimal(raw []byte, scale int, mode DecimalMode) interface{} {
	unscaled := twosComplementToBigInt(raw)
	d := decimal.NewFromBigInt(unscaled, int32(-scale))
	if mode == DecimalExact {
		return d
	}
	f, _ := d.Float64()
	return f
}

// rescaleDecimal returns d expressed with the given exponent, adjusting the
// unscaled coefficient accordingly (decimal.Decimal has no exported Rescale
// method, unlike the unexported method of the same behavior it uses
// internally).
func rescaleDecimal(d decimal.Decimal, exp int32) decimal.Decimal {
	if d.Exponent() == exp {
		return d
	}
	diff := exp - d.Exponent()
	if diff < 0 {
		diff = -diff
	}
	scale := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(diff)), nil)
	coeff := d.Coefficient()
	if exp > d.Exponent() {
		coeff.Quo(coeff, scale)
	} else {
		coeff.Mul(coeff, scale)
	}
	return decimal.NewFromBigInt(coeff, exp)
}

func asDecimal(value interface{}, path string) (decimal.Decimal, error) {
	switch v := value.(type) {
	case decimal.Decimal:
		return v, nil
	case float64:
		return decimal.NewFromFloat(v), nil
	case string:
		d, err := decimal.NewFromString(v)
		if err != nil {
			return decimal.Decimal{}, codecErr(EncodingTypeMismatch, path, value, err)
		}
		return d, nil
	default:
		return decimal.Decimal{}, codecErr(EncodingTypeMismatch, path, value, fmt.Errorf("expected decimal.Decimal, got %T", value))
	}
}

// twosComplementBytes returns the minimum-length, big-endian, two's
// complement encoding of v, per the Avro binary decimal format.
func twosComplementBytes(v *big.Int) []byte {
	if v.Sign() == 0 {
		return []byte{0}
	}
	if v.Sign() > 0 {
		b := v.Bytes()
		if b[0]&0x80 != 0 {
			b = append([]byte{0}, b...)
		}
		return b
	}

	n := 1
	one := big.NewInt(1)
	for {
		limit := new(big.Int).Lsh(one, uint(8*n-1))
		limit.Neg(limit)
		if v.Cmp(limit) >= 0 {
			break
		}
		n++
	}
	mod := new(big.Int).Lsh(one, uint(8*n))
	tc := new(big.Int).Add(v, mod)
	b := tc.Bytes()
	if len(b) < n {
		padded := make([]byte, n)
		copy(padded[n-len(b):], b)
		b = padded
	}
	return b
}

// twosComplementToBigInt is the inverse of twosComplementBytes.
func twosComplementToBigInt(b []byte) *big.Int {
	v := new(big.Int).SetBytes(b)
	if len(b) > 0 && b[0]&0x80 != 0 {
		mod := new(big.Int).Lsh(big.NewInt(1), uint(8*len(b)))
		v.Sub(v, mod)
	}
	return v
}
