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

package unique

import (
	"strings"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gitlab.com/tozd/go/errors"

	"github.com/walteh/renamerc/pkg/item"
)

func TestDecompose(t *testing.T) {
	tests := []struct {
		name string
		want Number
	}{
		{name: "Hero", want: Number{Prefix: "Hero"}},
		{name: "Hero01", want: Number{Prefix: "Hero", ID: 1, HasID: true}},
		{name: "Hero_00", want: Number{Prefix: "Hero_", ID: 0, HasID: true}},
		{name: "Rock07_LOD", want: Number{Prefix: "Rock", ID: 7, Suffix: "_LOD", HasID: true}},
		{name: "A1_B22_C", want: Number{Prefix: "A1_B", ID: 22, Suffix: "_C", HasID: true}},
		{name: "123", want: Number{Prefix: "", ID: 123, HasID: true}},
		{name: "5Hero", want: Number{Prefix: "", ID: 5, Suffix: "Hero", HasID: true}},
		{name: "", want: Number{}},
		{name: "Big99999999999999999999999", want: Number{Prefix: "Big99999999999999999999999"}},
		{name: "Café2", want: Number{Prefix: "Café", ID: 2, HasID: true}},
		{name: "Камень01", want: Number{Prefix: "Камень", ID: 1, HasID: true}},
		{name: "岩3_石", want: Number{Prefix: "岩", ID: 3, Suffix: "_石", HasID: true}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Decompose(tt.name))
		})
	}
}

func TestRender(t *testing.T) {
	n := Decompose("Rock07_LOD")
	assert.Equal(t, "Rock007_LOD", n.Render(7, 3, "_", false))
	assert.Equal(t, "Rock12_LOD", n.Render(12, 0, "_", true))

	bare := Decompose("Hero")
	assert.Equal(t, "Hero", bare.Render(4, 2, "_", false))
	assert.Equal(t, "Hero_04", bare.Render(4, 2, "_", true))
	assert.Equal(t, "Hero4", bare.Render(4, 0, "", true))
}

func TestResolveNames(t *testing.T) {
	tests := []struct {
		name  string
		in    []string
		opts  Options
		want  []string
		nerrs int
	}{
		{
			name: "three_identical",
			in:   []string{"Hero", "Hero", "Hero"},
			opts: Options{Format: "00"},
			want: []string{"Hero", "Hero00", "Hero01"},
		},
		{
			name: "numbered_cyrillic_collision",
			in:   []string{"Камень01", "Камень01"},
			opts: Options{Format: "00"},
			want: []string{"Камень01", "Камень00"},
		},
		{
			name: "already_unique",
			in:   []string{"Hero", "Rock", "Tree"},
			opts: Options{Format: "00"},
			want: []string{"Hero", "Rock", "Tree"},
		},
		{
			name: "pad_zero_numbers_everything",
			in:   []string{"Hero", "Rock"},
			opts: Options{Format: "00", PadZero: true},
			want: []string{"Hero00", "Rock00"},
		},
		{
			name: "pad_zero_with_separator",
			in:   []string{"Hero", "Hero"},
			opts: Options{Format: "000", PadZero: true, Separator: "_"},
			want: []string{"Hero_000", "Hero_001"},
		},
		{
			name: "existing_ids_are_reformatted",
			in:   []string{"Rock1", "Rock2"},
			opts: Options{Format: "00"},
			want: []string{"Rock01", "Rock02"},
		},
		{
			name: "existing_id_collision_probes_in_place",
			in:   []string{"Rock01_LOD", "Rock1_LOD"},
			opts: Options{Format: "00"},
			want: []string{"Rock01_LOD", "Rock00_LOD"},
		},
		{
			name: "probe_skips_claimed_ids",
			in:   []string{"Hero", "Hero00", "Hero", "Hero01", "Hero"},
			opts: Options{Format: "00"},
			want: []string{"Hero", "Hero00", "Hero02", "Hero01", "Hero03"},
		},
		{
			name: "no_format",
			in:   []string{"Hero", "Hero", "Hero"},
			opts: Options{},
			want: []string{"Hero", "Hero0", "Hero1"},
		},
		{
			name:  "bad_format",
			in:    []string{"Hero", "Hero"},
			opts:  Options{Format: "#0"},
			want:  []string{"Hero", "Hero"},
			nerrs: 1,
		},
		{
			name: "empty_batch",
			in:   nil,
			opts: Options{Format: "00"},
			want: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, errs := ResolveNames(tt.in, tt.opts)
			assert.Equal(t, tt.want, got)
			assert.Len(t, errs, tt.nerrs)
		})
	}
}

func TestResolveNamesExhausted(t *testing.T) {
	names := make([]string, MaxID+3)
	for i := range names {
		names[i] = "Hero"
	}

	got, errs := ResolveNames(names, Options{Format: "00"})
	require.Len(t, errs, 2, "one bare name plus MaxID numbered names fit")

	for n, err := range errs {
		assert.True(t, errors.Is(err, ErrUniquenessExhausted))

		var exhausted *ExhaustedError
		require.True(t, errors.As(err, &exhausted))
		assert.Equal(t, MaxID+1+n, exhausted.Index)
		assert.Equal(t, "Hero", exhausted.Name)
		assert.Contains(t, err.Error(), `"Hero"`)
	}

	assert.Equal(t, "Hero", got[0])
	assert.Equal(t, "Hero00", got[1])
	assert.Equal(t, "Hero998", got[MaxID])
	assert.Equal(t, "Hero", got[MaxID+1], "exhausted items keep their name")
}

func TestResolveItems(t *testing.T) {
	items := []*item.Item{
		item.NewFile("Assets/a/Hero.png"),
		item.NewFile("Assets/b/Hero.png"),
		item.NewFile("Assets/c/Rock.png"),
	}
	items[2].ResultName = "Hero_Tmp"
	items[2].SetResultOrCustomName("Hero")

	errs := Resolve(items, Options{Format: "00"})
	require.Empty(t, errs)

	assert.Equal(t, "Hero", items[0].ResultOrCustomName())
	assert.False(t, items[0].HasCustomName(), "an unchanged name does not become an override")
	assert.Equal(t, "Hero00", items[1].ResultOrCustomName())
	assert.True(t, items[1].HasCustomName())
	assert.Equal(t, "Hero01", items[2].ResultOrCustomName(), "custom names take part in resolution")
}

func TestResolveOrderSensitive(t *testing.T) {
	a, _ := ResolveNames([]string{"Hero00", "Hero"}, Options{Format: "00", PadZero: true})
	b, _ := ResolveNames([]string{"Hero", "Hero00"}, Options{Format: "00", PadZero: true})

	assert.Equal(t, []string{"Hero00", "Hero01"}, a)
	assert.Equal(t, []string{"Hero01", "Hero00"}, b, "numbered names are claimed before deferred ones")
}

func TestResolveProperty(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	genName := gen.OneConstOf("Hero", "Hero", "Rock", "Hero00", "Rock_07", "Tree3_LOD")
	genBatch := gen.SliceOf(genName)

	properties.Property("resolved names are pairwise distinct", prop.ForAll(
		func(names []string, padZero bool) bool {
			out, errs := ResolveNames(names, Options{Format: "00", PadZero: padZero})
			if len(errs) > 0 {
				return false
			}
			seen := map[string]bool{}
			for _, n := range out {
				if seen[n] {
					return false
				}
				seen[n] = true
			}
			return true
		},
		genBatch,
		gen.Bool(),
	))

	properties.Property("resolution only changes digits", prop.ForAll(
		func(names []string, padZero bool) bool {
			out, _ := ResolveNames(names, Options{Format: "00", PadZero: padZero})
			for i := range names {
				if stripDigits(out[i]) != stripDigits(names[i]) {
					return false
				}
			}
			return true
		},
		genBatch,
		gen.Bool(),
	))

	properties.Property("resolving twice is stable", prop.ForAll(
		func(names []string) bool {
			once, _ := ResolveNames(names, Options{Format: "00"})
			twice, _ := ResolveNames(once, Options{Format: "00"})
			return strings.Join(once, ",") == strings.Join(twice, ",")
		},
		genBatch,
	))

	properties.TestingRun(t)
}

func stripDigits(s string) string {
	return strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return -1
		}
		return r
	}, s)
}
