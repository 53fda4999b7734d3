// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package token splits base names into the tokens the validator and
// synthesizer work on. "T_Hero-Sword D" has the tokens ["T" "Hero" "Sword" "D"].
package token

import "strings"

// Separator joins tokens back into a name.
const Separator = "_"

// TemporaryPrefix marks scratch names that hosts may treat specially.
const TemporaryPrefix = "__"

// Tokenize splits baseName on separators. A run of spaces counts as one
// separator, every '-' and '_' counts as one separator each, so "a__b" keeps an
// empty token between "a" and "b". An empty name yields one empty token.
func Tokenize(baseName string) []string {
	tokens := make([]string, 0, 4)
	var cur strings.Builder

	runes := []rune(baseName)
	for i := 0; i < len(runes); i++ {
		switch runes[i] {
		case ' ':
			for i+1 < len(runes) && runes[i+1] == ' ' {
				i++
			}
			tokens = append(tokens, cur.String())
			cur.Reset()
		case '-', '_':
			tokens = append(tokens, cur.String())
			cur.Reset()
		default:
			cur.WriteRune(runes[i])
		}
	}

	return append(tokens, cur.String())
}

// Join rejoins tokens with Separator.
func Join(tokens []string) string {
	return strings.Join(tokens, Separator)
}

// IsTemporary reports whether the original base name starts with "__".
func IsTemporary(baseName string) bool {
	return strings.HasPrefix(baseName, TemporaryPrefix)
}

// IsDegenerate reports whether tokens carry no content at all.
func IsDegenerate(tokens []string) bool {
	for _, t := range tokens {
		if t != "" {
			return false
		}
	}
	return true
}
