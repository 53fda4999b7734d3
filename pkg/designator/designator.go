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

// Package designator renders one positional field of a synthesized name: a
// prefix, suffix or variant built from a literal and an optional counter.
package designator

import (
	"fmt"
	"strings"

	"gitlab.com/tozd/go/errors"

	"github.com/walteh/renamerc/pkg/catalog"
	"github.com/walteh/renamerc/pkg/convention"
)

// 🎛️ Mode selects what a generator does with its field
type Mode int

const (
	// ModeKeep leaves the existing token in place and renders nothing
	ModeKeep Mode = iota
	// ModeAdd renders a new token without removing the existing one
	ModeAdd
	// ModeReplace drops the existing token and renders a new one
	ModeReplace
	// ModeFormat behaves like ModeReplace
	ModeFormat
)

var modeNames = map[Mode]string{
	ModeKeep:    "keep",
	ModeAdd:     "add",
	ModeReplace: "replace",
	ModeFormat:  "format",
}

func (m Mode) String() string {
	if n, ok := modeNames[m]; ok {
		return n
	}
	return fmt.Sprintf("mode(%d)", int(m))
}

// Valid reports whether m is a declared mode.
func (m Mode) Valid() bool {
	_, ok := modeNames[m]
	return ok
}

// KeepsToken reports whether the existing token at this field's position
// survives in the clean name.
func (m Mode) KeepsToken() bool {
	return m == ModeKeep || m == ModeAdd
}

// ParseMode resolves a mode from its name, ignoring case.
func ParseMode(s string) (Mode, error) {
	for m, n := range modeNames {
		if strings.EqualFold(n, strings.TrimSpace(s)) {
			return m, nil
		}
	}
	return ModeKeep, errors.Errorf("unknown mode %q", s)
}

// MaxPrecision is the widest counter a generator renders.
const MaxPrecision = catalog.MaxPrecision

// 🔢 Generator is the stateful renderer for one field
type Generator struct {
	field      catalog.Field
	mode       Mode
	starts     string
	ends       string
	counter    int
	delta      int
	precision  int
	useCounter bool
	convention convention.Convention

	options  []catalog.Candidate
	selected int

	onModify func()
}

// 🏭 New creates a generator for field with the given counter width. Delta
// starts at 1.
func New(field catalog.Field, precision int) *Generator {
	return &Generator{
		field:      field,
		delta:      1,
		precision:  clampPrecision(precision),
		convention: convention.PascalCase,
	}
}

func clampPrecision(p int) int {
	if p < 0 {
		p = -p
	}
	if p > MaxPrecision {
		p = MaxPrecision
	}
	return p
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// OnModify registers fn to run after any state change.
func (g *Generator) OnModify(fn func()) {
	g.onModify = fn
}

func (g *Generator) modified() {
	if g.onModify != nil {
		g.onModify()
	}
}

func (g *Generator) Field() catalog.Field { return g.field }
func (g *Generator) Mode() Mode           { return g.mode }
func (g *Generator) Starts() string       { return g.starts }
func (g *Generator) Ends() string         { return g.ends }
func (g *Generator) Counter() int         { return g.counter }
func (g *Generator) Delta() int           { return g.delta }
func (g *Generator) Precision() int       { return g.precision }
func (g *Generator) UseCounter() bool     { return g.useCounter }

func (g *Generator) Convention() convention.Convention { return g.convention }

// WithCounter reports whether the field supports a counter. The name field
// does not.
func (g *Generator) WithCounter() bool {
	return g.field != catalog.FieldName
}

func (g *Generator) SetMode(m Mode) {
	if g.mode != m {
		g.mode = m
		g.modified()
	}
}

func (g *Generator) SetStarts(s string) {
	if g.starts != s {
		g.starts = s
		g.modified()
	}
}

func (g *Generator) SetEnds(s string) {
	if g.ends != s {
		g.ends = s
		g.modified()
	}
}

// SetCounter stores the absolute value of v.
func (g *Generator) SetCounter(v int) {
	if v = abs(v); g.counter != v {
		g.counter = v
		g.modified()
	}
}

// SetCounterValue stores v with its sign, as typed counter text does. Render
// clamps negative results to 0.
func (g *Generator) SetCounterValue(v int) {
	if g.counter != v {
		g.counter = v
		g.modified()
	}
}

func (g *Generator) SetDelta(v int) {
	if g.delta != v {
		g.delta = v
		g.modified()
	}
}

// SetPrecision stores the absolute value of p, capped at MaxPrecision.
func (g *Generator) SetPrecision(p int) {
	if p = clampPrecision(p); g.precision != p {
		g.precision = p
		g.modified()
	}
}

func (g *Generator) SetUseCounter(on bool) {
	if g.useCounter != on {
		g.useCounter = on
		g.modified()
	}
}

// SetConvention changes the convention applied to later candidate selections.
// The current starts literal is left as is.
func (g *Generator) SetConvention(c convention.Convention) {
	if g.convention != c {
		g.convention = c
		g.modified()
	}
}

// Options returns the candidates offered for this field.
func (g *Generator) Options() []catalog.Candidate {
	return g.options
}

// Selected returns the index of the selected candidate.
func (g *Generator) Selected() int {
	return g.selected
}

// CandidateLabels renders each candidate as "Label (Literal)".
func (g *Generator) CandidateLabels() []string {
	out := make([]string, 0, len(g.options))
	for _, c := range g.options {
		out = append(out, fmt.Sprintf("%s (%s)", c.Label, c.Literal))
	}
	return out
}

// 🔄 SetOptions replaces the candidates and resets the field: candidate 0 is
// selected, starts becomes its literal and ends is cleared. Without candidates
// starts is cleared.
func (g *Generator) SetOptions(options []catalog.Candidate) {
	g.options = options
	g.selected = 0
	starts := ""
	if len(options) > 0 {
		starts = convention.MakePrefix(options[0].Literal, g.convention)
	}
	g.starts = starts
	g.ends = ""
	g.modified()
}

// 🎯 SelectCandidate selects candidate i and sets starts to its literal
// converted to the generator's convention.
func (g *Generator) SelectCandidate(i int) error {
	if i < 0 || i >= len(g.options) {
		return errors.Errorf("candidate index %d out of range [0, %d)", i, len(g.options))
	}
	g.selected = i
	g.SetStarts(convention.MakePrefix(g.options[i].Literal, g.convention))
	return nil
}

// CounterText returns the counter zero-padded to the precision. It is empty
// when the precision is 0.
func (g *Generator) CounterText() string {
	return pad(g.counter, g.precision)
}

func pad(n, precision int) string {
	if precision == 0 {
		return ""
	}
	return fmt.Sprintf("%0*d", precision, n)
}

// 🖨️ Render returns the field text for the item at position idx of a batch.
//
// Keep renders nothing. With a counter the result is starts, the padded value
// max(0, delta*idx+counter), then ends; precision 0 drops the number. Without a
// counter only starts is rendered.
func (g *Generator) Render(idx int) string {
	if g.mode == ModeKeep {
		return ""
	}
	if !g.useCounter {
		return g.starts
	}
	n := g.delta*idx + g.counter
	if n < 0 {
		n = 0
	}
	return g.starts + pad(n, g.precision) + g.ends
}
