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
	"encoding/json"
	"fmt"
)

// Parse parses text (Avro-spec JSON) into a fully linked schema graph
// using lenient defaults. It is equivalent to ParseWithConfig(text,
// NewParserConfig()).
func Parse(text string) (*ParseResult, error) {
	return ParseWithConfig(text, NewParserConfig())
}

// ParseWithConfig parses text under cfg.
func ParseWithConfig(text string, cfg *ParserConfig) (*ParseResult, error) {
	var v interface{}
	if err := json.Unmarshal([]byte(text), &v); err != nil {
		return nil, newParseError(InvalidDefault, "", text, fmt.Errorf("invalid JSON: %w", err))
	}
	return ParseValue(v, cfg)
}

// ParseValue parses an already-decoded structured tree (the result of
// unmarshaling JSON, or an equivalent hand-built tree of
// map[string]interface{}, []interface{}, string, float64, bool, nil).
func ParseValue(v interface{}, cfg *ParserConfig) (*ParseResult, error) {
	if cfg == nil {
		cfg = NewParserConfig()
	}
	p := &parser{ctx: NewContext(), cfg: cfg}
	s, err := p.parseType("", "", v, "")
	if err != nil {
		return nil, err
	}
	if err := validateReferences(s, make(map[Schema]bool)); err != nil {
		return nil, err
	}
	return &ParseResult{Schema: s, Context: p.ctx, Warnings: p.warnings}, nil
}

type parser struct {
	ctx      *Context
	cfg      *ParserConfig
	warnings []string
}

func (p *parser) warn(msg string) {
	p.warnings = append(p.warnings, msg)
}

// parseType dispatches on the shape of v per spec §4.1 step 2: a string
// names a primitive or a reference; an array is a union; an object
// carries a "type" discriminator.
func (p *parser) parseType(name, namespace string, v interface{}, path string) (Schema, error) {
	switch t := v.(type) {
	case string:
		return p.parseTypeName(namespace, t), nil
	case []interface{}:
		return p.decodeUnion(name, namespace, t, path)
	case map[string]interface{}:
		return p.decodeComplex(name, namespace, t, path)
	default:
		return nil, newParseError(InvalidDefault, path, v, fmt.Errorf("expected string, array or object for a type, got %T", v))
	}
}

// parseTypeName resolves a bare type-name string to either a primitive or
// a (possibly forward) reference.
func (p *parser) parseTypeName(namespace, typeName string) Schema {
	if k, ok := primitiveKinds[typeName]; ok {
		return NewPrimitive(k)
	}
	return NewRef(ParseFullName(namespace, typeName), p.ctx)
}

// decodeUnion parses a union's branch list, enforcing the invariants in
// spec §3.3.
func (p *parser) decodeUnion(name, namespace string, items []interface{}, path string) (Schema, error) {
	branches := make([]Schema, 0, len(items))
	seenPrimitive := make(map[Kind]bool)
	seenArray := false
	seenMap := false
	seenNamed := make(map[string]bool)

	for i, item := range items {
		branchPath := fmt.Sprintf("%s[%d]", path, i)
		if _, ok := item.([]interface{}); ok {
			return nil, newParseError(InvalidUnion, branchPath, item, fmt.Errorf("unions may not directly contain other unions"))
		}

		branch, err := p.parseType(name, namespace, item, branchPath)
		if err != nil {
			return nil, err
		}

		switch b := branch.(type) {
		case *PrimitiveSchema:
			if seenPrimitive[b.Kind()] {
				return nil, newParseError(InvalidUnion, branchPath, item, fmt.Errorf("union already contains a %s branch", b.Kind()))
			}
			seenPrimitive[b.Kind()] = true
		case *ArraySchema:
			if seenArray {
				return nil, newParseError(InvalidUnion, branchPath, item, fmt.Errorf("union already contains an array branch"))
			}
			seenArray = true
		case *MapSchema:
			if seenMap {
				return nil, newParseError(InvalidUnion, branchPath, item, fmt.Errorf("union already contains a map branch"))
			}
			seenMap = true
		case *RefSchema:
			fullname := b.FullName().String()
			if seenNamed[fullname] {
				return nil, newParseError(InvalidUnion, branchPath, item, fmt.Errorf("union already contains a branch named %q", fullname))
			}
			seenNamed[fullname] = true
		case *UnionSchema:
			return nil, newParseError(InvalidUnion, branchPath, item, fmt.Errorf("unions may not directly contain other unions"))
		}

		branches = append(branches, branch)
	}

	return NewUnion(branches), nil
}

// decodeComplex parses an object-form type: {"type": ...}.
func (p *parser) decodeComplex(name, namespace string, m map[string]interface{}, path string) (Schema, error) {
	typeStr, err := getString(m, "type", path)
	if err != nil {
		return nil, err
	}

	switch typeStr {
	case "record":
		return p.decodeRecord(namespace, m, path)
	case "enum":
		return p.decodeEnum(namespace, m, path)
	case "fixed":
		return p.decodeFixed(namespace, m, path)
	case "array":
		items, ok := m["items"]
		if !ok {
			return nil, newParseError(MissingRequiredField, path, nil, fmt.Errorf("array requires an \"items\" key"))
		}
		if err := p.checkUnrecognizedKeys(m, path, "type", "items"); err != nil {
			return nil, err
		}
		itemType, err := p.parseType(name, namespace, items, path+".items")
		if err != nil {
			return nil, err
		}
		return NewArray(itemType), nil
	case "map":
		values, ok := m["values"]
		if !ok {
			return nil, newParseError(MissingRequiredField, path, nil, fmt.Errorf("map requires a \"values\" key"))
		}
		if err := p.checkUnrecognizedKeys(m, path, "type", "values"); err != nil {
			return nil, err
		}
		valueType, err := p.parseType(name, namespace, values, path+".values")
		if err != nil {
			return nil, err
		}
		return NewMap(valueType), nil
	default:
		if k, ok := primitiveKinds[typeStr]; ok {
			return p.decodePrimitiveWithLogical(k, m, path)
		}
		if err := p.checkUnrecognizedKeys(m, path, "type"); err != nil {
			return nil, err
		}
		return p.parseTypeName(namespace, typeStr), nil
	}
}

func (p *parser) decodePrimitiveWithLogical(k Kind, m map[string]interface{}, path string) (Schema, error) {
	if err := p.checkUnrecognizedKeys(m, path, "type", "logicalType", "precision", "scale"); err != nil {
		return nil, err
	}
	logicalName, ok, err := getOptionalString(m, "logicalType", path)
	if err != nil {
		return nil, err
	}
	if !ok {
		return NewPrimitive(k), nil
	}
	lt := &LogicalType{Name: LogicalName(logicalName)}
	if lt.Name == Decimal {
		prec, err := getFloat(m, "precision", path)
		if err != nil {
			return nil, err
		}
		lt.Precision = int(prec)
		if scaleVal, hasScale := m["scale"]; hasScale {
			scaleFloat, ok := scaleVal.(float64)
			if !ok {
				return nil, newParseError(InvalidLogicalType, path, scaleVal, fmt.Errorf("scale must be a number"))
			}
			lt.Scale = int(scaleFloat)
		}
	}
	if err := lt.Validate(k, 0); err != nil {
		if p.cfg.Strict {
			return nil, newParseError(InvalidLogicalType, path, logicalName, err)
		}
		p.warn(fmt.Sprintf("dropping invalid logical type at %s: %v", path, err))
		return NewPrimitive(k), nil
	}
	return NewLogicalPrimitive(k, lt), nil
}

// checkUnrecognizedKeys enforces spec §4.1's strict-mode handling of
// unknown object keys, ignoring the well-known ones already consumed by
// the caller.
func (p *parser) checkUnrecognizedKeys(m map[string]interface{}, path string, known ...string) error {
	if !p.cfg.Strict {
		return nil
	}
	knownSet := make(map[string]bool, len(known))
	for _, k := range known {
		knownSet[k] = true
	}
	for k := range m {
		if !knownSet[k] {
			return newParseError(UnrecognizedKey, path, k, fmt.Errorf("unrecognized key %q", k))
		}
	}
	return nil
}

// parseAliases reads the optional "aliases" key, resolving each alias
// against enclosing exactly like a name (spec §3.2). A duplicate alias is
// a hard error in strict mode; in lenient mode it is downgraded to a
// warning and the first occurrence wins.
func (p *parser) parseAliases(m map[string]interface{}, enclosing, path string) ([]QualifiedName, error) {
	v, ok := m["aliases"]
	if !ok {
		return nil, nil
	}
	items, ok := v.([]interface{})
	if !ok {
		return nil, newParseError(InvalidName, path, v, fmt.Errorf("aliases must be an array of strings"))
	}
	names, err := stringList(items, "aliases", path)
	if err != nil {
		return nil, err
	}
	seen := make(map[string]bool, len(names))
	out := make([]QualifiedName, 0, len(names))
	for _, n := range names {
		qn := ParseFullName(enclosing, n)
		if seen[qn.String()] {
			if p.cfg.Strict {
				return nil, newParseError(DuplicateName, path, n, fmt.Errorf("duplicate alias %q", qn))
			}
			p.warn(fmt.Sprintf("dropping duplicate alias %q at %s", qn, path))
			continue
		}
		seen[qn.String()] = true
		out = append(out, qn)
	}
	return out, nil
}
