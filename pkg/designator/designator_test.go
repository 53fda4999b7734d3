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

package designator

import (
	"strconv"
	"strings"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/walteh/renamerc/pkg/catalog"
	"github.com/walteh/renamerc/pkg/convention"
)

func TestRender(t *testing.T) {
	tests := []struct {
		name       string
		mode       Mode
		starts     string
		ends       string
		useCounter bool
		counter    int
		delta      int
		precision  int
		idx        []int
		want       []string
	}{
		{
			name: "keep_renders_nothing", mode: ModeKeep, starts: "T", useCounter: true, counter: 1, delta: 1, precision: 2,
			idx: []int{0, 1}, want: []string{"", ""},
		},
		{
			name: "add_counter", mode: ModeAdd, useCounter: true, counter: 5, delta: 1, precision: 2,
			idx: []int{0, 1, 2}, want: []string{"05", "06", "07"},
		},
		{
			name: "starts_and_ends", mode: ModeReplace, starts: "LOD", ends: "x", useCounter: true, counter: 0, delta: 1, precision: 1,
			idx: []int{0, 3}, want: []string{"LOD0x", "LOD3x"},
		},
		{
			name: "no_counter_ignores_ends", mode: ModeReplace, starts: "T", ends: "x", counter: 4, delta: 1, precision: 2,
			idx: []int{0, 7}, want: []string{"T", "T"},
		},
		{
			name: "precision_zero_drops_number", mode: ModeReplace, starts: "T", ends: "x", useCounter: true, counter: 4, delta: 1, precision: 0,
			idx: []int{0, 9}, want: []string{"Tx", "Tx"},
		},
		{
			name: "negative_delta_clamps_at_zero", mode: ModeAdd, useCounter: true, counter: 2, delta: -1, precision: 3,
			idx: []int{0, 1, 2, 3, 10}, want: []string{"002", "001", "000", "000", "000"},
		},
		{
			name: "delta_steps", mode: ModeFormat, starts: "V", useCounter: true, counter: 10, delta: 5, precision: 2,
			idx: []int{0, 1, 20}, want: []string{"V10", "V15", "V110"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := New(catalog.FieldSuffix, tt.precision)
			g.SetMode(tt.mode)
			g.SetStarts(tt.starts)
			g.SetEnds(tt.ends)
			g.SetUseCounter(tt.useCounter)
			g.SetCounter(tt.counter)
			g.SetDelta(tt.delta)

			for i, idx := range tt.idx {
				assert.Equal(t, tt.want[i], g.Render(idx), "idx %d", idx)
			}
		})
	}
}

func TestCounterProperty(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("rendered counter is never negative and padded to precision", prop.ForAll(
		func(counter, delta, precision, idx int) bool {
			g := New(catalog.FieldVariant, precision)
			g.SetMode(ModeAdd)
			g.SetUseCounter(true)
			g.SetCounter(counter)
			g.SetDelta(delta)

			out := g.Render(idx)
			if strings.HasPrefix(out, "-") || len(out) < precision {
				return false
			}
			n, err := strconv.Atoi(out)
			if err != nil {
				return false
			}
			expected := delta*idx + counter
			if expected < 0 {
				expected = 0
			}
			return n == expected
		},
		gen.IntRange(0, 500),
		gen.IntRange(-5, 5),
		gen.IntRange(1, MaxPrecision),
		gen.IntRange(0, 200),
	))

	properties.Property("consecutive indexes step by delta", prop.ForAll(
		func(counter, delta, idx int) bool {
			g := New(catalog.FieldSuffix, 4)
			g.SetMode(ModeReplace)
			g.SetUseCounter(true)
			g.SetCounter(counter)
			g.SetDelta(delta)

			a, _ := strconv.Atoi(g.Render(idx))
			b, _ := strconv.Atoi(g.Render(idx + 1))
			return b-a == delta
		},
		gen.IntRange(0, 100),
		gen.IntRange(0, 9),
		gen.IntRange(0, 100),
	))

	properties.TestingRun(t)
}

func TestSetterNormalization(t *testing.T) {
	g := New(catalog.FieldPrefix, -3)
	assert.Equal(t, 3, g.Precision(), "precision is stored as an absolute value")
	assert.Equal(t, 1, g.Delta())

	g.SetCounter(-7)
	assert.Equal(t, 7, g.Counter())

	g.SetPrecision(42)
	assert.Equal(t, MaxPrecision, g.Precision())

	g.SetPrecision(-4)
	assert.Equal(t, 4, g.Precision())
	assert.Equal(t, "0007", g.CounterText())

	g.SetPrecision(0)
	assert.Empty(t, g.CounterText())
}

func TestSetCounterValue(t *testing.T) {
	g := New(catalog.FieldSuffix, 2)
	g.SetMode(ModeReplace)
	g.SetUseCounter(true)
	calls := 0
	g.OnModify(func() { calls++ })

	g.SetCounterValue(-2)
	assert.Equal(t, -2, g.Counter())
	assert.Equal(t, 1, calls)
	assert.Equal(t, "00", g.Render(0))
	assert.Equal(t, "00", g.Render(2))
	assert.Equal(t, "01", g.Render(3))

	g.SetCounterValue(-2)
	assert.Equal(t, 1, calls, "unchanged values do not notify")
}

func TestOnModify(t *testing.T) {
	g := New(catalog.FieldSuffix, 2)
	calls := 0
	g.OnModify(func() { calls++ })

	g.SetMode(ModeReplace)
	g.SetMode(ModeReplace)
	assert.Equal(t, 1, calls, "unchanged values do not notify")

	g.SetStarts("D")
	g.SetEnds("x")
	g.SetCounter(3)
	g.SetDelta(2)
	g.SetPrecision(3)
	g.SetUseCounter(true)
	g.SetConvention(convention.CamelCase)
	assert.Equal(t, 8, calls)

	g.SetCounter(-3)
	assert.Equal(t, 8, calls, "abs(-3) equals the current counter")
}

func TestCandidates(t *testing.T) {
	g := New(catalog.FieldPrefix, 2)
	g.SetStarts("old")
	g.SetEnds("old")

	g.SetOptions([]catalog.Candidate{
		{Label: "Static Mesh", Literal: "SM"},
		{Label: "Skeletal Mesh", Literal: "SK"},
		{Label: "None", Literal: ""},
	})
	assert.Equal(t, 0, g.Selected())
	assert.Equal(t, "SM", g.Starts())
	assert.Empty(t, g.Ends())
	assert.Equal(t, []string{"Static Mesh (SM)", "Skeletal Mesh (SK)", "None ()"}, g.CandidateLabels())

	require.NoError(t, g.SelectCandidate(1))
	assert.Equal(t, 1, g.Selected())
	assert.Equal(t, "SK", g.Starts())

	require.NoError(t, g.SelectCandidate(2))
	assert.Empty(t, g.Starts())

	err := g.SelectCandidate(3)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "out of range")
	assert.Equal(t, 2, g.Selected(), "a bad index keeps the selection")

	g.SetConvention(convention.LowercaseUnderscore)
	assert.Empty(t, g.Starts(), "changing convention does not rewrite starts")
	require.NoError(t, g.SelectCandidate(0))
	assert.Equal(t, "sm", g.Starts())

	g.SetOptions(nil)
	assert.Empty(t, g.Starts())
	assert.Empty(t, g.CandidateLabels())
}

func TestMode(t *testing.T) {
	for _, m := range []Mode{ModeKeep, ModeAdd, ModeReplace, ModeFormat} {
		parsed, err := ParseMode(strings.ToUpper(m.String()))
		require.NoError(t, err)
		assert.Equal(t, m, parsed)
		assert.True(t, m.Valid())
	}
	assert.True(t, ModeKeep.KeepsToken())
	assert.True(t, ModeAdd.KeepsToken())
	assert.False(t, ModeReplace.KeepsToken())
	assert.False(t, ModeFormat.KeepsToken())

	_, err := ParseMode("overwrite")
	require.Error(t, err)
	assert.False(t, Mode(9).Valid())
	assert.Equal(t, "mode(9)", Mode(9).String())
}

func TestWithCounter(t *testing.T) {
	assert.True(t, New(catalog.FieldPrefix, 2).WithCounter())
	assert.True(t, New(catalog.FieldVariant, 2).WithCounter())
	assert.False(t, New(catalog.FieldName, 2).WithCounter())
}
