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

// Package wildcard compiles anchored glob patterns where '*' matches any run of
// characters (path separators included) and '?' matches exactly one character.
// A backslash makes the next '*', '?' or '\' literal.
package wildcard

import (
	"regexp"
	"runtime"
	"strings"

	"gitlab.com/tozd/go/errors"
)

// ErrInvalidPattern is returned by Compile for empty or malformed patterns.
var ErrInvalidPattern = errors.Base("invalid wildcard pattern")

// 🔧 Options controls how a pattern is compiled
type Options struct {
	// FoldCase makes matching case-insensitive
	FoldCase bool
}

// HostOptions returns options matching the default case semantics of the host
// file system: case-insensitive on windows and darwin, case-sensitive elsewhere.
func HostOptions() Options {
	switch runtime.GOOS {
	case "windows", "darwin":
		return Options{FoldCase: true}
	default:
		return Options{}
	}
}

// 🎯 Matcher is a compiled wildcard pattern
type Matcher struct {
	pattern string
	re      *regexp.Regexp
}

// 🏭 Compile compiles a case-sensitive pattern
func Compile(pattern string) (*Matcher, error) {
	return CompileWithOptions(pattern, Options{})
}

// 🏭 CompileWithOptions compiles pattern using opts
func CompileWithOptions(pattern string, opts Options) (*Matcher, error) {
	if pattern == "" {
		return nil, errors.Errorf("%w: pattern is empty", ErrInvalidPattern)
	}

	var expr strings.Builder
	if opts.FoldCase {
		expr.WriteString("(?s)(?i)^")
	} else {
		expr.WriteString("(?s)^")
	}

	runes := []rune(pattern)
	for i := 0; i < len(runes); i++ {
		switch c := runes[i]; c {
		case '*':
			expr.WriteString(".*")
		case '?':
			expr.WriteString(".")
		case '\\':
			if i+1 >= len(runes) {
				return nil, errors.Errorf("%w: trailing escape in %q", ErrInvalidPattern, pattern)
			}
			i++
			expr.WriteString(regexp.QuoteMeta(string(runes[i])))
		default:
			expr.WriteString(regexp.QuoteMeta(string(c)))
		}
	}
	expr.WriteString("$")

	re, err := regexp.Compile(expr.String())
	if err != nil {
		return nil, errors.Errorf("%w: %q: %s", ErrInvalidPattern, pattern, err.Error())
	}

	return &Matcher{pattern: pattern, re: re}, nil
}

// MustCompile is like Compile but panics on error.
func MustCompile(pattern string) *Matcher {
	m, err := Compile(pattern)
	if err != nil {
		panic(err)
	}
	return m
}

// 🔍 Match reports whether text matches the whole pattern
func (m *Matcher) Match(text string) bool {
	return m.re.MatchString(text)
}

// String returns the source pattern.
func (m *Matcher) String() string {
	return m.pattern
}

// 📚 Set is an ordered list of matchers; it matches when any member matches
type Set []*Matcher

// CompileSet compiles every pattern, failing on the first invalid one.
func CompileSet(patterns []string, opts Options) (Set, error) {
	set := make(Set, 0, len(patterns))
	for _, p := range patterns {
		m, err := CompileWithOptions(p, opts)
		if err != nil {
			return nil, err
		}
		set = append(set, m)
	}
	return set, nil
}

// Match reports whether any matcher in the set matches text.
func (s Set) Match(text string) bool {
	for _, m := range s {
		if m.Match(text) {
			return true
		}
	}
	return false
}
