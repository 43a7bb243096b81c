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

import "fmt"

// decodeRecord parses a record definition, registers it in the context,
// and returns a reference to it (spec §4.1 step 3: named types are
// registered so later self- and forward-references can resolve).
func (p *parser) decodeRecord(namespace string, m map[string]interface{}, path string) (Schema, error) {
	name, err := getString(m, "name", path)
	if err != nil {
		return nil, err
	}
	namespaceVal, hasNamespace, err := getOptionalString(m, "namespace", path)
	if err != nil {
		return nil, err
	}
	fullname := fullNameForDefinition(name, namespaceVal, hasNamespace, namespace)
	if !validComponentNames(fullname.String()) {
		if p.cfg.Strict {
			return nil, newParseError(InvalidName, path, fullname.String(), fmt.Errorf("invalid record name"))
		}
		p.warn(fmt.Sprintf("accepting non-canonical record name %q at %s", fullname.String(), path))
	}

	aliases, err := p.parseAliases(m, fullname.Namespace, path)
	if err != nil {
		return nil, err
	}

	doc, _, err := getOptionalString(m, "doc", path)
	if err != nil {
		return nil, err
	}

	rawFields, err := getArray(m, "fields", path)
	if err != nil {
		return nil, err
	}

	fields := make([]*Field, 0, len(rawFields))
	seenNames := make(map[string]bool)
	for i, rf := range rawFields {
		fieldPath := fmt.Sprintf("%s.fields[%d]", path, i)
		fm, ok := rf.(map[string]interface{})
		if !ok {
			return nil, newParseError(InvalidDefault, fieldPath, rf, fmt.Errorf("field must be an object"))
		}

		fieldName, err := getString(fm, "name", fieldPath)
		if err != nil {
			return nil, err
		}
		if !ValidName(fieldName) {
			if p.cfg.Strict {
				return nil, newParseError(InvalidName, fieldPath, fieldName, fmt.Errorf("invalid field name"))
			}
			p.warn(fmt.Sprintf("accepting non-canonical field name %q at %s", fieldName, fieldPath))
		}

		typeVal, ok := fm["type"]
		if !ok {
			return nil, newParseError(MissingRequiredField, fieldPath, nil, fmt.Errorf("field requires a \"type\" key"))
		}
		fieldSchema, err := p.parseType(fieldName, fullname.Namespace, typeVal, fieldPath+".type")
		if err != nil {
			return nil, err
		}

		fieldAliases, err := p.parseAliases(fm, fullname.Namespace, fieldPath)
		if err != nil {
			return nil, err
		}
		fieldAliasNames := make([]string, len(fieldAliases))
		for i, a := range fieldAliases {
			fieldAliasNames[i] = a.String()
		}

		if seenNames[fieldName] {
			return nil, newParseError(DuplicateName, fieldPath, fieldName, fmt.Errorf("duplicate field name %q", fieldName))
		}
		seenNames[fieldName] = true
		for _, a := range fieldAliasNames {
			if seenNames[a] {
				return nil, newParseError(DuplicateName, fieldPath, a, fmt.Errorf("field alias %q collides with another field's name or alias", a))
			}
			seenNames[a] = true
		}

		def, hasDefault := fm["default"]

		order := OrderAscending
		if orderVal, ok, err := getOptionalString(fm, "order", fieldPath); err != nil {
			return nil, err
		} else if ok {
			switch FieldOrder(orderVal) {
			case OrderAscending, OrderDescending, OrderIgnore:
				order = FieldOrder(orderVal)
			default:
				if p.cfg.Strict {
					return nil, newParseError(InvalidDefault, fieldPath, orderVal, fmt.Errorf("invalid field order %q", orderVal))
				}
				p.warn(fmt.Sprintf("ignoring invalid field order %q at %s", orderVal, fieldPath))
			}
		}

		fieldDoc, _, err := getOptionalString(fm, "doc", fieldPath)
		if err != nil {
			return nil, err
		}

		if err := p.checkUnrecognizedKeys(fm, fieldPath, "name", "type", "aliases", "default", "order", "doc"); err != nil {
			return nil, err
		}

		fields = append(fields, NewField(fieldName, fieldAliasNames, fieldSchema, hasDefault, def, order, fieldDoc))
	}

	if err := p.checkUnrecognizedKeys(m, path, "type", "name", "namespace", "aliases", "doc", "fields"); err != nil {
		return nil, err
	}

	record := NewRecord(fullname, aliases, fields, doc)
	if err := p.ctx.Register(fullname, aliases, record); err != nil {
		return nil, newParseError(DuplicateName, path, fullname.String(), err)
	}

	return NewRef(fullname, p.ctx), nil
}
