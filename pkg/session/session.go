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

// Package session owns one catalog and the three field generators used to
// validate and rename a selection. A Session is not safe for concurrent use.
package session

import (
	"strconv"
	"strings"

	"gitlab.com/tozd/go/errors"

	"github.com/walteh/renamerc/pkg/catalog"
	"github.com/walteh/renamerc/pkg/convention"
	"github.com/walteh/renamerc/pkg/designator"
	"github.com/walteh/renamerc/pkg/item"
	"github.com/walteh/renamerc/pkg/synth"
	"github.com/walteh/renamerc/pkg/validate"
)

// 🧭 Session is the engine context for one host
type Session struct {
	cat     *catalog.Catalog
	prefix  *designator.Generator
	variant *designator.Generator
	suffix  *designator.Generator

	convention    convention.Convention
	renameMode    synth.RenameMode
	renameTo      string
	categoryIndex int

	dirty bool
}

// 🏭 New creates a session over cat. The first category is selected.
func New(cat *catalog.Catalog) *Session {
	s := &Session{
		cat:        cat,
		prefix:     designator.New(catalog.FieldPrefix, cat.PrefixPrecision),
		variant:    designator.New(catalog.FieldVariant, catalog.DefaultPrecision),
		suffix:     designator.New(catalog.FieldSuffix, cat.SuffixPrecision),
		convention: cat.Convention,
	}
	for _, g := range s.generators() {
		g.SetConvention(cat.Convention)
		g.OnModify(s.markDirty)
	}
	s.reloadOptions()
	s.dirty = false
	return s
}

func (s *Session) markDirty() {
	s.dirty = true
}

func (s *Session) generators() []*designator.Generator {
	return []*designator.Generator{s.prefix, s.variant, s.suffix}
}

// Catalog returns the catalog the session works on.
func (s *Session) Catalog() *catalog.Catalog { return s.cat }

func (s *Session) Prefix() *designator.Generator  { return s.prefix }
func (s *Session) Variant() *designator.Generator { return s.variant }
func (s *Session) Suffix() *designator.Generator  { return s.suffix }

// Generator returns the generator for f, or nil for the name field.
func (s *Session) Generator(f catalog.Field) *designator.Generator {
	switch f {
	case catalog.FieldPrefix:
		return s.prefix
	case catalog.FieldVariant:
		return s.variant
	case catalog.FieldSuffix:
		return s.suffix
	default:
		return nil
	}
}

// Dirty reports whether state changed since the last ClearDirty.
func (s *Session) Dirty() bool { return s.dirty }

// ClearDirty resets the dirty flag, typically after persisting.
func (s *Session) ClearDirty() { s.dirty = false }

// Categories returns the catalog categories in registration order.
func (s *Session) Categories() []string {
	return s.cat.Categories()
}

// CategoryIndex returns the index of the selected category.
func (s *Session) CategoryIndex() int { return s.categoryIndex }

// Category returns the selected category, or "" when the catalog is empty.
func (s *Session) Category() string {
	cats := s.Categories()
	if s.categoryIndex < 0 || s.categoryIndex >= len(cats) {
		return ""
	}
	return cats[s.categoryIndex]
}

// 📂 SetCategory selects a category by name and reloads the prefix and suffix
// candidates.
func (s *Session) SetCategory(name string) error {
	for i, c := range s.Categories() {
		if c == name {
			return s.SetCategoryIndex(i)
		}
	}
	return errors.Errorf("unknown category %q", name)
}

// SetCategoryIndex selects a category by index and reloads the prefix and
// suffix candidates.
func (s *Session) SetCategoryIndex(i int) error {
	cats := s.Categories()
	if i < 0 || i >= len(cats) {
		return errors.Errorf("category index %d out of range [0, %d)", i, len(cats))
	}
	s.categoryIndex = i
	s.reloadOptions()
	s.markDirty()
	return nil
}

func (s *Session) reloadOptions() {
	prefixes, suffixes := s.cat.FindCandidateOptions(s.Category())
	s.prefix.SetOptions(prefixes)
	s.suffix.SetOptions(suffixes)
}

// Convention returns the target naming convention.
func (s *Session) Convention() convention.Convention { return s.convention }

// SetConvention changes the target convention of the session and of every
// generator.
func (s *Session) SetConvention(c convention.Convention) {
	if s.convention != c {
		s.convention = c
		s.markDirty()
	}
	for _, g := range s.generators() {
		g.SetConvention(c)
	}
}

func (s *Session) RenameMode() synth.RenameMode { return s.renameMode }

func (s *Session) SetRenameMode(m synth.RenameMode) {
	if s.renameMode != m {
		s.renameMode = m
		s.markDirty()
	}
}

func (s *Session) RenameTo() string { return s.renameTo }

func (s *Session) SetRenameTo(name string) {
	if s.renameTo != name {
		s.renameTo = name
		s.markDirty()
	}
}

// Layout returns the synthesis view of the current state.
func (s *Session) Layout() *synth.Layout {
	return &synth.Layout{
		FieldOrder: s.cat.FieldOrder,
		Convention: s.convention,
		Prefix:     s.prefix,
		Variant:    s.variant,
		Suffix:     s.suffix,
		RenameMode: s.renameMode,
		RenameTo:   s.renameTo,
	}
}

// Validate classifies it against the selected category.
func (s *Session) Validate(it *item.Item) item.State {
	return validate.Validate(s.cat, it, s.Category())
}

// AutoValidate classifies it against every group of the catalog.
func (s *Session) AutoValidate(it *item.Item) item.State {
	return validate.AutoValidate(s.cat, it)
}

// CleanName returns the name of it stripped of the fields about to be
// regenerated.
func (s *Session) CleanName(it *item.Item) string {
	return s.Layout().CleanName(it)
}

// Synthesize builds the new base name of it at batch position idx.
func (s *Session) Synthesize(it *item.Item, idx int) string {
	return s.Layout().Synthesize(it, idx)
}

// Hint previews the first n names produced by the current settings.
func (s *Session) Hint(n int) string {
	return s.Layout().Hint(n)
}

// ✍️ SetCounterText parses text as the counter of field. On success the
// precision becomes the digit count of text, so "005" sets counter 5 and
// precision 3. Unparsable text leaves everything unchanged and returns false.
func (s *Session) SetCounterText(f catalog.Field, text string) bool {
	g := s.Generator(f)
	if g == nil {
		return false
	}
	trimmed := strings.ReplaceAll(text, " ", "")
	n, err := strconv.Atoi(trimmed)
	if err != nil {
		return false
	}
	g.SetPrecision(len(strings.TrimLeft(trimmed, "+-")))
	g.SetCounterValue(n)
	return true
}

// SetDeltaText parses text as the delta of field. Unparsable text leaves the
// delta unchanged and returns false.
func (s *Session) SetDeltaText(f catalog.Field, text string) bool {
	g := s.Generator(f)
	if g == nil {
		return false
	}
	n, err := strconv.Atoi(strings.ReplaceAll(text, " ", ""))
	if err != nil {
		return false
	}
	g.SetDelta(n)
	return true
}
