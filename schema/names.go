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
	"regexp"
	"strings"
)

// nameRegexp matches a bare Avro name component per spec §3.2.
var nameRegexp = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// ValidName reports whether name matches the Avro name grammar.
func ValidName(name string) bool {
	return nameRegexp.MatchString(name)
}

// ParseFullName splits name according to the Avro spec: if name contains a
// dot, the part after the last dot is the bare name and everything before
// it is the namespace (overriding enclosing); otherwise name is a bare
// name resolved against the enclosing namespace.
func ParseFullName(enclosing, name string) QualifiedName {
	if idx := strings.LastIndex(name, "."); idx != -1 {
		return QualifiedName{Namespace: name[:idx], Name: name[idx+1:]}
	}
	return QualifiedName{Namespace: enclosing, Name: name}
}

// fullNameForDefinition computes the QualifiedName for a record, enum or
// fixed definition given its "name"/"namespace" keys and the enclosing
// namespace, per spec §3.2: an explicit namespace key takes precedence
// over the enclosing one, a dotted name overrides both.
func fullNameForDefinition(nameVal string, namespaceVal string, hasNamespace bool, enclosing string) QualifiedName {
	if strings.Contains(nameVal, ".") {
		return ParseFullName("", nameVal)
	}
	ns := enclosing
	if hasNamespace {
		ns = namespaceVal
	}
	return QualifiedName{Namespace: ns, Name: nameVal}
}

// validComponentNames reports whether every component of name (split on
// '.') matches the Avro name grammar; used to validate a fullname's bare
// name component plus each namespace component.
func validComponentNames(fullname string) bool {
	for _, part := range strings.Split(fullname, ".") {
		if !ValidName(part) {
			return false
		}
	}
	return true
}
