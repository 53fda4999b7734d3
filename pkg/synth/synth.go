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

// Package synth builds new names from an item's clean name and the field
// generators, laid out by the catalog field order.
package synth

import (
	"strings"

	"gitlab.com/tozd/go/errors"

	"github.com/walteh/renamerc/pkg/catalog"
	"github.com/walteh/renamerc/pkg/convention"
	"github.com/walteh/renamerc/pkg/designator"
	"github.com/walteh/renamerc/pkg/item"
	"github.com/walteh/renamerc/pkg/token"
)

// RenameMode decides what happens to the name field.
type RenameMode int

const (
	// RenameKeep keeps the clean name as is
	RenameKeep RenameMode = iota
	// RenameRename replaces the clean name with RenameTo, or with the clean
	// name converted to the convention when RenameTo is empty
	RenameRename
)

func (m RenameMode) String() string {
	if m == RenameRename {
		return "rename"
	}
	return "keep"
}

// ParseRenameMode resolves "keep" or "rename", ignoring case.
func ParseRenameMode(s string) (RenameMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "keep":
		return RenameKeep, nil
	case "rename":
		return RenameRename, nil
	default:
		return RenameKeep, errors.Errorf("unknown rename mode %q", s)
	}
}

// HintName is the placeholder base name used by Hint.
const HintName = "FileName"

// 🧱 Layout holds everything synthesis reads
type Layout struct {
	FieldOrder []catalog.Field
	Convention convention.Convention
	Prefix     *designator.Generator
	Variant    *designator.Generator
	Suffix     *designator.Generator
	RenameMode RenameMode
	RenameTo   string
}

func (l *Layout) generator(f catalog.Field) *designator.Generator {
	switch f {
	case catalog.FieldPrefix:
		return l.Prefix
	case catalog.FieldVariant:
		return l.Variant
	case catalog.FieldSuffix:
		return l.Suffix
	default:
		return nil
	}
}

func keepsToken(g *designator.Generator) bool {
	return g == nil || g.Mode().KeepsToken()
}

// 🧹 CleanName strips the tokens the generators are about to regenerate:
// the first token for the prefix, the second to last for the variant and the
// last for the suffix, unless that field is in Keep or Add mode. Names with a
// single token are returned unchanged. The remaining tokens are joined with
// "_".
func (l *Layout) CleanName(it *item.Item) string {
	tokens := it.Tokens
	drop := make(map[int]bool, 3)
	mark := func(g *designator.Generator, idx int) {
		if keepsToken(g) || len(tokens) <= 1 {
			return
		}
		if idx < 0 {
			idx += len(tokens)
		}
		if idx < 0 || idx >= len(tokens) {
			return
		}
		drop[idx] = true
	}
	mark(l.Prefix, 0)
	mark(l.Variant, -2)
	mark(l.Suffix, -1)

	kept := make([]string, 0, len(tokens))
	for i, t := range tokens {
		if !drop[i] {
			kept = append(kept, t)
		}
	}
	return token.Join(kept)
}

// BaseName returns the name field for it: the clean name, or the rename
// target in RenameRename mode.
func (l *Layout) BaseName(it *item.Item) string {
	clean := l.CleanName(it)
	if l.RenameMode != RenameRename {
		return clean
	}
	if l.RenameTo != "" {
		return l.RenameTo
	}
	return convention.MakeName(clean, l.Convention)
}

// ✨ Synthesize builds the new base name of it at batch position idx. Fields
// are emitted in FieldOrder, empty ones are skipped and the rest are joined
// with the convention separator. The extension is not included.
func (l *Layout) Synthesize(it *item.Item, idx int) string {
	return l.compose(l.BaseName(it), idx)
}

func (l *Layout) compose(name string, idx int) string {
	parts := make([]string, 0, len(l.FieldOrder))
	for _, f := range l.FieldOrder {
		var part string
		if f == catalog.FieldName {
			part = name
		} else if g := l.generator(f); g != nil {
			part = g.Render(idx)
		}
		if part != "" {
			parts = append(parts, part)
		}
	}
	return strings.Join(parts, l.Convention.SeparatorString())
}

// 💡 Hint previews the first n names for the placeholder "FileName", joined
// by ", " and followed by "...".
func (l *Layout) Hint(n int) string {
	name := convention.MakeName(HintName, l.Convention)
	names := make([]string, 0, n)
	for i := 0; i < n; i++ {
		names = append(names, l.compose(name, i))
	}
	return strings.Join(names, ", ") + "..."
}
