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

package convention

import (
	"strings"
	"unicode"

	"gitlab.com/tozd/go/errors"
)

// 🎨 Convention is a case/separator style for names
type Convention int

const (
	PascalCase Convention = iota
	CamelCase
	LowercaseUnderscore
	LowercaseDash
	UppercaseUnderscore
	UppercaseDash
)

// All lists every convention in declaration order.
var All = []Convention{PascalCase, CamelCase, LowercaseUnderscore, LowercaseDash, UppercaseUnderscore, UppercaseDash}

type info struct {
	name      string
	separator rune
}

var table = map[Convention]info{
	PascalCase:          {name: "PascalCase", separator: '_'},
	CamelCase:           {name: "camelCase", separator: '_'},
	LowercaseUnderscore: {name: "lower_snake", separator: '_'},
	LowercaseDash:       {name: "lower-kebab", separator: '-'},
	UppercaseUnderscore: {name: "UPPER_SNAKE", separator: '_'},
	UppercaseDash:       {name: "UPPER-KEBAB", separator: '-'},
}

// String returns the configuration name of the convention.
func (c Convention) String() string {
	if i, ok := table[c]; ok {
		return i.name
	}
	return "unknown"
}

// Valid reports whether c is one of the declared conventions.
func (c Convention) Valid() bool {
	_, ok := table[c]
	return ok
}

// Separator returns the character used to join synthesized fields. Unknown
// conventions fall back to '_'.
func (c Convention) Separator() rune {
	if i, ok := table[c]; ok {
		return i.separator
	}
	return '_'
}

// SeparatorString is Separator as a string.
func (c Convention) SeparatorString() string {
	return string(c.Separator())
}

// 🔍 Parse resolves a convention from its configuration name. Matching ignores
// case and treats '-', '_' and spaces alike, so "pascal_case" and "lower-snake"
// are both accepted.
func Parse(s string) (Convention, error) {
	key := normalizeName(s)
	for _, c := range All {
		if normalizeName(table[c].name) == key {
			return c, nil
		}
	}
	for alias, c := range aliases {
		if alias == key {
			return c, nil
		}
	}
	return PascalCase, errors.Errorf("unknown naming convention %q", s)
}

var aliases = map[string]Convention{
	"pascal":              PascalCase,
	"pascalcase":          PascalCase,
	"camel":               CamelCase,
	"camelcase":           CamelCase,
	"lowercaseunderscore": LowercaseUnderscore,
	"snake":               LowercaseUnderscore,
	"lowercasedash":       LowercaseDash,
	"kebab":               LowercaseDash,
	"uppercaseunderscore": UppercaseUnderscore,
	"uppercasedash":       UppercaseDash,
}

func normalizeName(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '-', '_', ' ':
			return -1
		}
		return unicode.ToLower(r)
	}, strings.TrimSpace(s))
}

// MarshalText implements encoding.TextMarshaler.
func (c Convention) MarshalText() ([]byte, error) {
	if !c.Valid() {
		return nil, errors.Errorf("invalid naming convention %d", int(c))
	}
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Convention) UnmarshalText(b []byte) error {
	parsed, err := Parse(string(b))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

func isWordBreak(r rune) bool {
	return r == '-' || r == '_' || r == ' '
}

// Camelize removes '-', '_' and spaces and capitalizes the character after
// each of them. An uppercase character past the first position stays
// uppercase, everything else is lowered; capitalizeFirst controls the first
// emitted character.
//
//	"foo-bar" -> "FooBar"   "foo bar" -> "FooBar"   "HeroSword" -> "HeroSword"
func Camelize(text string, capitalizeFirst bool) string {
	var out strings.Builder
	out.Grow(len(text))

	capitalize := capitalizeFirst
	for i, c := range []rune(text) {
		if isWordBreak(c) {
			capitalize = true
			continue
		}
		if capitalize || (i != 0 && unicode.IsUpper(c)) {
			out.WriteRune(unicode.ToUpper(c))
			capitalize = false
			continue
		}
		out.WriteRune(unicode.ToLower(c))
	}

	return out.String()
}

// Decamelize lowers text and inserts separator before each uppercase character
// that follows a non-uppercase one. Runs of '-', '_' and spaces collapse into a
// single separator before the next emitted character, and never produce a
// leading or doubled separator.
//
//	"FooBar" -> "foo-bar"   "HTTPServer" -> "httpserver"   "Hero Sword" -> "hero-sword"
func Decamelize(text string, separator rune) string {
	var out strings.Builder
	out.Grow(len(text) + 4)

	emitted := false // something has been written
	afterLower := false
	pendingBreak := false

	for _, c := range []rune(text) {
		switch {
		case isWordBreak(c):
			pendingBreak = emitted
			afterLower = false
		case unicode.IsUpper(c):
			if pendingBreak || afterLower {
				out.WriteRune(separator)
			}
			out.WriteRune(unicode.ToLower(c))
			pendingBreak, afterLower, emitted = false, false, true
		default:
			if pendingBreak {
				out.WriteRune(separator)
			}
			out.WriteRune(c)
			pendingBreak, afterLower, emitted = false, true, true
		}
	}

	return out.String()
}

// 🔄 Convert renders text in the given convention. Unknown conventions return
// text unchanged.
func Convert(text string, c Convention) string {
	switch c {
	case PascalCase:
		return Camelize(text, true)
	case CamelCase:
		return Camelize(text, false)
	case LowercaseUnderscore:
		return Decamelize(text, '_')
	case LowercaseDash:
		return Decamelize(text, '-')
	case UppercaseUnderscore:
		return strings.ToUpper(Decamelize(text, '_'))
	case UppercaseDash:
		return strings.ToUpper(Decamelize(text, '-'))
	default:
		return text
	}
}

// MakeName renders a base name in convention c.
func MakeName(text string, c Convention) string {
	return Convert(text, c)
}

// MakePrefix renders a prefix/suffix candidate literal in convention c.
func MakePrefix(text string, c Convention) string {
	return Convert(text, c)
}
