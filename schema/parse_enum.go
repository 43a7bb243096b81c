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

// decodeEnum parses an enum definition, registers it, and returns a
// reference to it.
func (p *parser) decodeEnum(namespace string, m map[string]interface{}, path string) (Schema, error) {
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
			return nil, newParseError(InvalidName, path, fullname.String(), fmt.Errorf("invalid enum name"))
		}
		p.warn(fmt.Sprintf("accepting non-canonical enum name %q at %s", fullname.String(), path))
	}

	aliases, err := p.parseAliases(m, fullname.Namespace, path)
	if err != nil {
		return nil, err
	}

	rawSymbols, err := getArray(m, "symbols", path)
	if err != nil {
		return nil, err
	}
	symbols, err := stringList(rawSymbols, "symbols", path)
	if err != nil {
		return nil, err
	}
	seen := make(map[string]bool, len(symbols))
	for _, s := range symbols {
		if s == "" || !ValidName(s) {
			if p.cfg.Strict {
				return nil, newParseError(InvalidName, path, s, fmt.Errorf("invalid enum symbol %q", s))
			}
			p.warn(fmt.Sprintf("accepting non-canonical enum symbol %q at %s", s, path))
		}
		if seen[s] {
			return nil, newParseError(DuplicateName, path, s, fmt.Errorf("duplicate enum symbol %q", s))
		}
		seen[s] = true
	}

	def, hasDefault, err := getOptionalString(m, "default", path)
	if err != nil {
		return nil, err
	}
	if hasDefault && !seen[def] {
		return nil, newParseError(InvalidDefault, path, def, fmt.Errorf("enum default %q is not one of the declared symbols", def))
	}

	doc, _, err := getOptionalString(m, "doc", path)
	if err != nil {
		return nil, err
	}

	if err := p.checkUnrecognizedKeys(m, path, "type", "name", "namespace", "aliases", "symbols", "default", "doc"); err != nil {
		return nil, err
	}

	enum := NewEnum(fullname, aliases, symbols, def, hasDefault, doc)
	if err := p.ctx.Register(fullname, aliases, enum); err != nil {
		return nil, newParseError(DuplicateName, path, fullname.String(), err)
	}

	return NewRef(fullname, p.ctx), nil
}
