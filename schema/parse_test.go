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

package schema

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParsePrimitive(t *testing.T) {
	result, err := Parse(`"long"`)
	require.NoError(t, err)
	require.Equal(t, Long, result.Schema.Kind())
}

func TestParseUnion(t *testing.T) {
	result, err := Parse(`["null", "int"]`)
	require.NoError(t, err)
	u, ok := result.Schema.(*UnionSchema)
	require.True(t, ok)
	require.Len(t, u.Branches(), 2)
	require.Equal(t, Null, u.Branches()[0].Kind())
	require.Equal(t, Int, u.Branches()[1].Kind())
}

func TestParseUnionRejectsNestedUnion(t *testing.T) {
	_, err := Parse(`["null", ["int", "long"]]`)
	require.Error(t, err)
	var perr *ParseError
	require.ErrorAs(t, err, &perr)
	require.Equal(t, InvalidUnion, perr.Kind)
}

func TestParseUnionRejectsDuplicatePrimitive(t *testing.T) {
	_, err := Parse(`["int", "int"]`)
	require.Error(t, err)
	var perr *ParseError
	require.ErrorAs(t, err, &perr)
	require.Equal(t, InvalidUnion, perr.Kind)
}

func TestParseSelfReferencingRecord(t *testing.T) {
	result, err := Parse(`{
		"type": "record",
		"name": "Node",
		"fields": [
			{"name": "value", "type": "long"},
			{"name": "next", "type": ["null", "Node"], "default": null}
		]
	}`)
	require.NoError(t, err)

	rec, ok := Resolve(result.Schema).(*RecordSchema)
	require.True(t, ok)
	require.Equal(t, QualifiedName{Name: "Node"}, rec.FullName())

	next := rec.FieldByName("next")
	require.NotNil(t, next)
	union, ok := Resolve(next.Schema()).(*UnionSchema)
	require.True(t, ok)
	resolvedBack, ok := Resolve(union.Branches()[1]).(*RecordSchema)
	require.True(t, ok)
	require.Equal(t, rec.FullName(), resolvedBack.FullName())
}

func TestParseUnknownReferenceFails(t *testing.T) {
	_, err := Parse(`{
		"type": "record",
		"name": "Broken",
		"fields": [{"name": "other", "type": "DoesNotExist"}]
	}`)
	require.Error(t, err)
	var perr *ParseError
	require.ErrorAs(t, err, &perr)
	require.Equal(t, UnknownReference, perr.Kind)
}

func TestParseDuplicateFieldName(t *testing.T) {
	_, err := Parse(`{
		"type": "record",
		"name": "Dup",
		"fields": [
			{"name": "a", "type": "int"},
			{"name": "a", "type": "long"}
		]
	}`)
	require.Error(t, err)
	var perr *ParseError
	require.ErrorAs(t, err, &perr)
	require.Equal(t, DuplicateName, perr.Kind)
}

func TestParseEnum(t *testing.T) {
	result, err := Parse(`{
		"type": "enum",
		"name": "Suit",
		"symbols": ["SPADES", "HEARTS", "DIAMONDS", "CLUBS"]
	}`)
	require.NoError(t, err)
	enum, ok := Resolve(result.Schema).(*EnumSchema)
	require.True(t, ok)
	require.Equal(t, 2, enum.IndexOf("DIAMONDS"))
	require.Equal(t, -1, enum.IndexOf("JOKER"))
}

func TestParseEnumDuplicateSymbol(t *testing.T) {
	_, err := Parse(`{"type":"enum","name":"E","symbols":["A","A"]}`)
	require.Error(t, err)
}

func TestParseFixedWithUUIDLogicalType(t *testing.T) {
	result, err := Parse(`{"type":"fixed","name":"FixedUUID","size":16,"logicalType":"uuid"}`)
	require.NoError(t, err)
	fixed, ok := Resolve(result.Schema).(*FixedSchema)
	require.True(t, ok)
	require.Equal(t, 16, fixed.Size())
	require.NotNil(t, fixed.Logical())
	require.Equal(t, UUID, fixed.Logical().Name)
}

func TestParseFixedUUIDWrongSizeDropsLogicalTypeLeniently(t *testing.T) {
	result, err := Parse(`{"type":"fixed","name":"BadUUID","size":4,"logicalType":"uuid"}`)
	require.NoError(t, err)
	fixed := Resolve(result.Schema).(*FixedSchema)
	require.Nil(t, fixed.Logical())
	require.NotEmpty(t, result.Warnings)
}

func TestParseFixedUUIDWrongSizeStrictError(t *testing.T) {
	_, err := ParseWithConfig(`{"type":"fixed","name":"BadUUID","size":4,"logicalType":"uuid"}`, &ParserConfig{Strict: true})
	require.Error(t, err)
	var perr *ParseError
	require.ErrorAs(t, err, &perr)
	require.Equal(t, InvalidLogicalType, perr.Kind)
}

func TestParseDecimalOnBytes(t *testing.T) {
	result, err := Parse(`{"type":"bytes","logicalType":"decimal","precision":12,"scale":8}`)
	require.NoError(t, err)
	prim, ok := result.Schema.(*PrimitiveSchema)
	require.True(t, ok)
	require.Equal(t, Decimal, prim.Logical().Name)
	require.Equal(t, 12, prim.Logical().Precision)
	require.Equal(t, 8, prim.Logical().Scale)
}

func TestParseStrictRejectsUnrecognizedKey(t *testing.T) {
	_, err := ParseWithConfig(`{"type":"int","bogus":true}`, &ParserConfig{Strict: true})
	require.Error(t, err)
	var perr *ParseError
	require.ErrorAs(t, err, &perr)
	require.Equal(t, UnrecognizedKey, perr.Kind)
}

func TestParseStrictRejectsUnrecognizedKeyOnPrimitiveWithLogicalType(t *testing.T) {
	_, err := ParseWithConfig(`{"type":"int","logicalType":"date","bogus":true}`, &ParserConfig{Strict: true})
	require.Error(t, err)
	var perr *ParseError
	require.ErrorAs(t, err, &perr)
	require.Equal(t, UnrecognizedKey, perr.Kind)
}

func TestParseStrictRejectsUnrecognizedKeyOnArray(t *testing.T) {
	_, err := ParseWithConfig(`{"type":"array","items":"int","bogus":true}`, &ParserConfig{Strict: true})
	require.Error(t, err)
	var perr *ParseError
	require.ErrorAs(t, err, &perr)
	require.Equal(t, UnrecognizedKey, perr.Kind)
}

func TestParseStrictRejectsUnrecognizedKeyOnMap(t *testing.T) {
	_, err := ParseWithConfig(`{"type":"map","values":"int","bogus":true}`, &ParserConfig{Strict: true})
	require.Error(t, err)
	var perr *ParseError
	require.ErrorAs(t, err, &perr)
	require.Equal(t, UnrecognizedKey, perr.Kind)
}

func TestParseStrictRejectsUnrecognizedKeyOnField(t *testing.T) {
	_, err := ParseWithConfig(`{
		"type": "record",
		"name": "R",
		"fields": [{"name": "a", "type": "int", "bogus": true}]
	}`, &ParserConfig{Strict: true})
	require.Error(t, err)
	var perr *ParseError
	require.ErrorAs(t, err, &perr)
	require.Equal(t, UnrecognizedKey, perr.Kind)
}

func TestParseArrayAndMap(t *testing.T) {
	result, err := Parse(`{"type":"array","items":{"type":"map","values":"string"}}`)
	require.NoError(t, err)
	arr, ok := result.Schema.(*ArraySchema)
	require.True(t, ok)
	m, ok := arr.Items().(*MapSchema)
	require.True(t, ok)
	require.Equal(t, String, m.Values().Kind())
}

func TestParseInvalidJSON(t *testing.T) {
	_, err := Parse(`{not json`)
	require.Error(t, err)
}

func TestParseDuplicateAliasLenientKeepsFirst(t *testing.T) {
	result, err := Parse(`{
		"type": "record",
		"name": "Dup",
		"aliases": ["A", "A"],
		"fields": []
	}`)
	require.NoError(t, err)
	rec, ok := Resolve(result.Schema).(*RecordSchema)
	require.True(t, ok)
	require.Len(t, rec.Aliases(), 1)
	require.NotEmpty(t, result.Warnings)
}

func TestParseDuplicateAliasStrictError(t *testing.T) {
	_, err := ParseWithConfig(`{
		"type": "record",
		"name": "Dup",
		"aliases": ["A", "A"],
		"fields": []
	}`, &ParserConfig{Strict: true})
	require.Error(t, err)
	var perr *ParseError
	require.ErrorAs(t, err, &perr)
	require.Equal(t, DuplicateName, perr.Kind)
}

func TestParseNonCanonicalRecordNameLenient(t *testing.T) {
	result, err := Parse(`{"type":"record","name":"123bad","fields":[]}`)
	require.NoError(t, err)
	require.NotNil(t, result.Schema)
	require.NotEmpty(t, result.Warnings)
}

func TestParseNonCanonicalRecordNameStrictError(t *testing.T) {
	_, err := ParseWithConfig(`{"type":"record","name":"123bad","fields":[]}`, &ParserConfig{Strict: true})
	require.Error(t, err)
	var perr *ParseError
	require.ErrorAs(t, err, &perr)
	require.Equal(t, InvalidName, perr.Kind)
}

func TestParseNonCanonicalFieldNameLenient(t *testing.T) {
	result, err := Parse(`{
		"type": "record",
		"name": "R",
		"fields": [{"name": "1bad", "type": "int"}]
	}`)
	require.NoError(t, err)
	require.NotEmpty(t, result.Warnings)
}

func TestParseNonCanonicalEnumSymbolLenient(t *testing.T) {
	result, err := Parse(`{"type":"enum","name":"E","symbols":["1bad"]}`)
	require.NoError(t, err)
	require.NotEmpty(t, result.Warnings)
}

func TestParseNonCanonicalFixedNameLenient(t *testing.T) {
	result, err := Parse(`{"type":"fixed","name":"123bad","size":4}`)
	require.NoError(t, err)
	require.NotEmpty(t, result.Warnings)
}
