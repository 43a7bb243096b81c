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

// decodeFixed parses a fixed definition, registers it, and returns a
// reference to it.
func (p *parser) decodeFixed(namespace string, m map[string]interface{}, path string) (Schema, error) {
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
			return nil, newParseError(InvalidName, path, fullname.String(), fmt.Errorf("invalid fixed name"))
		}
		p.warn(fmt.Sprintf("accepting non-canonical fixed name %q at %s", fullname.String(), path))
	}

	aliases, err := p.parseAliases(m, fullname.Namespace, path)
	if err != nil {
		return nil, err
	}

	sizeVal, err := getFloat(m, "size", path)
	if err != nil {
		return nil, err
	}
	size := int(sizeVal)
	if size <= 0 {
		return nil, newParseError(InvalidDefault, path, sizeVal, fmt.Errorf("fixed size must be a positive integer, got %v", sizeVal))
	}

	var logical *LogicalType
	if logicalName, ok, err := getOptionalString(m, "logicalType", path); err != nil {
		return nil, err
	} else if ok {
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
		if err := lt.Validate(Fixed, size); err != nil {
			if p.cfg.Strict {
				return nil, newParseError(InvalidLogicalType, path, logicalName, err)
			}
			p.warn(fmt.Sprintf("dropping invalid logical type at %s: %v", path, err))
		} else {
			logical = lt
		}
	}

	if err := p.checkUnrecognizedKeys(m, path, "type", "name", "namespace", "aliases", "size", "logicalType", "precision", "scale"); err != nil {
		return nil, err
	}

	fixed := NewFixed(fullname, aliases, size, logical)
	if err := p.ctx.Register(fullname, aliases, fixed); err != nil {
		return nil, newParseError(DuplicateName, path, fullname.String(), err)
	}

	return NewRef(fullname, p.ctx), nil
}
