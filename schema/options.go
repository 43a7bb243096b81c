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

// ParserConfig carries the parser's recognized options (spec §4.1).
type ParserConfig struct {
	// Strict, when true, turns unknown object keys, non-canonical name
	// characters and duplicate aliases into hard errors. When false
	// (the default), these are accepted, with the accepted-but-questionable
	// ones recorded in ParseResult.Warnings instead of rejected outright.
	Strict bool
}

// NewParserConfig returns a ParserConfig with sane (lenient) defaults.
func NewParserConfig() *ParserConfig {
	return &ParserConfig{Strict: false}
}

// ParseResult wraps a successfully parsed schema together with any
// lenient-mode warnings raised along the way (spec §4.1 step 4: logical
// types that fail validation are dropped to their underlying primitive in
// lenient mode rather than rejected).
type ParseResult struct {
	Schema   Schema
	Context  *Context
	Warnings []string
}
