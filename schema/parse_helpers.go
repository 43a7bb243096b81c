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

// getString reads a required string-valued key from m.
func getString(m map[string]interface{}, key, path string) (string, error) {
	v, ok := m[key]
	if !ok {
		return "", newParseError(MissingRequiredField, path, nil, fmt.Errorf("missing required key %q", key))
	}
	s, ok := v.(string)
	if !ok {
		return "", newParseError(InvalidDefault, path, v, fmt.Errorf("key %q must be a string, got %v", key, v))
	}
	return s, nil
}

// getOptionalString reads an optional string-valued key from m, returning
// ("", false) if absent.
func getOptionalString(m map[string]interface{}, key, path string) (string, bool, error) {
	v, ok := m[key]
	if !ok {
		return "", false, nil
	}
	s, ok := v.(string)
	if !ok {
		return "", false, newParseError(InvalidDefault, path, v, fmt.Errorf("key %q must be a string, got %v", key, v))
	}
	return s, true, nil
}

// getArray reads a required array-valued key from m.
func getArray(m map[string]interface{}, key, path string) ([]interface{}, error) {
	v, ok := m[key]
	if !ok {
		return nil, newParseError(MissingRequiredField, path, nil, fmt.Errorf("missing required key %q", key))
	}
	a, ok := v.([]interface{})
	if !ok {
		return nil, newParseError(InvalidDefault, path, v, fmt.Errorf("key %q must be an array, got %v", key, v))
	}
	return a, nil
}

// getFloat reads a required numeric-valued key from m.
func getFloat(m map[string]interface{}, key, path string) (float64, error) {
	v, ok := m[key]
	if !ok {
		return 0, newParseError(MissingRequiredField, path, nil, fmt.Errorf("missing required key %q", key))
	}
	f, ok := v.(float64)
	if !ok {
		return 0, newParseError(InvalidDefault, path, v, fmt.Errorf("key %q must be a number, got %v", key, v))
	}
	return f, nil
}

// stringList converts a []interface{} of strings into a []string, failing
// if any element is not a string.
func stringList(items []interface{}, key, path string) ([]string, error) {
	out := make([]string, 0, len(items))
	for _, item := range items {
		s, ok := item.(string)
		if !ok {
			return nil, newParseError(InvalidDefault, path, item, fmt.Errorf("%q must be an array of strings", key))
		}
		out = append(out, s)
	}
	return out, nil
}

var primitiveKinds = map[string]Kind{
	"null":    Null,
	"boolean": Boolean,
	"int":     Int,
	"long":    Long,
	"float":   Float,
	"double":  Double,
	"bytes":   Bytes,
	"string":  String,
}
