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

package wildcard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gitlab.com/tozd/go/errors"
)

func TestMatch(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		text    string
		opts    Options
		want    bool
	}{
		{name: "literal_extension", pattern: ".png", text: ".png", want: true},
		{name: "literal_is_anchored", pattern: ".png", text: "x.png", want: false},
		{name: "literal_no_substring", pattern: "png", text: ".pngx", want: false},
		{name: "star_matches_empty", pattern: ".png*", text: ".png", want: true},
		{name: "star_crosses_slashes", pattern: "*/External", text: "Assets/Art/External", want: true},
		{name: "star_suffix_mismatch", pattern: "*/External", text: "Assets/External/Art", want: false},
		{name: "question_single_char", pattern: ".m?", text: ".ma", want: true},
		{name: "question_not_empty", pattern: ".m?", text: ".m", want: false},
		{name: "question_not_two", pattern: ".m?", text: ".mab", want: false},
		{name: "regex_meta_is_literal", pattern: "a.b", text: "axb", want: false},
		{name: "plus_is_literal", pattern: "Albedo+Opacity", text: "Albedo+Opacity", want: true},
		{name: "escaped_star", pattern: `a\*`, text: "a*", want: true},
		{name: "escaped_star_not_wild", pattern: `a\*`, text: "abc", want: false},
		{name: "escaped_question", pattern: `a\?`, text: "a?", want: true},
		{name: "case_sensitive_default", pattern: ".PNG", text: ".png", want: false},
		{name: "fold_case", pattern: ".PNG", text: ".png", opts: Options{FoldCase: true}, want: true},
		{name: "unicode_question", pattern: "?", text: "é", want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := CompileWithOptions(tt.pattern, tt.opts)
			require.NoError(t, err)
			assert.Equal(t, tt.want, m.Match(tt.text))
			assert.Equal(t, tt.pattern, m.String())
		})
	}
}

func TestCompileErrors(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
	}{
		{name: "empty", pattern: ""},
		{name: "trailing_escape", pattern: `abc\`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := Compile(tt.pattern)
			require.Error(t, err)
			assert.Nil(t, m)
			assert.True(t, errors.Is(err, ErrInvalidPattern), "error should wrap ErrInvalidPattern")
		})
	}

	assert.Panics(t, func() { MustCompile("") })
}

func TestSet(t *testing.T) {
	set, err := CompileSet([]string{".fbx", ".ma", ".mb"}, Options{})
	require.NoError(t, err)

	assert.True(t, set.Match(".ma"))
	assert.False(t, set.Match(".max"))
	assert.False(t, Set(nil).Match(".ma"), "empty set matches nothing")

	_, err = CompileSet([]string{".fbx", ""}, Options{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidPattern))
}
