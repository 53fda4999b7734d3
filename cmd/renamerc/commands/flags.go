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


package commands

import (
	"github.com/spf13/cobra"
	"gitlab.com/tozd/go/errors"

	"github.com/walteh/renamerc/pkg/catalog"
	"github.com/walteh/renamerc/pkg/convention"
	"github.com/walteh/renamerc/pkg/designator"
	"github.com/walteh/renamerc/pkg/operation"
	"github.com/walteh/renamerc/pkg/selection"
	"github.com/walteh/renamerc/pkg/session"
	"github.com/walteh/renamerc/pkg/synth"
	"github.com/walteh/renamerc/pkg/unique"
)

// selectionFlags controls how path arguments become items
type selectionFlags struct {
	recursive   bool
	exclude     []string
	concurrency int
}

func (f *selectionFlags) bind(cmd *cobra.Command) {
	cmd.Flags().BoolVarP(&f.recursive, "recursive", "r", false, "include the contents of selected directories")
	cmd.Flags().StringSliceVar(&f.exclude, "exclude", nil, "glob patterns of paths to leave out")
	cmd.Flags().IntVar(&f.concurrency, "concurrency", selection.DefaultConcurrency, "parallel stat calls")
}

func (f *selectionFlags) options() selection.Options {
	return selection.Options{
		Recursive:   f.recursive,
		Exclude:     f.exclude,
		Concurrency: f.concurrency,
	}
}

// namingFlags override the restored session settings. Only flags given on the
// command line are applied.
type namingFlags struct {
	category        string
	convention      string
	renameMode      string
	renameTo        string
	prefixMode      string
	suffixMode      string
	variantMode     string
	prefixCandidate int
	suffixCandidate int
	variant         string
	counterField    string
	counter         string
	delta           string
}

func (f *namingFlags) bind(cmd *cobra.Command) {
	fl := cmd.Flags()
	fl.StringVar(&f.category, "category", "", "category to validate and name against")
	fl.StringVar(&f.convention, "convention", "", "naming convention, such as PascalCase or lower_snake")
	fl.StringVar(&f.renameMode, "rename-mode", "", "keep or rename the name field")
	fl.StringVar(&f.renameTo, "rename-to", "", "replacement for the name field, implies --rename-mode=rename")
	fl.StringVar(&f.prefixMode, "prefix-mode", "", "keep, add, replace or format the prefix")
	fl.StringVar(&f.suffixMode, "suffix-mode", "", "keep, add, replace or format the suffix")
	fl.StringVar(&f.variantMode, "variant-mode", "", "keep, add, replace or format the variant")
	fl.IntVar(&f.prefixCandidate, "prefix-candidate", 0, "index of the prefix candidate")
	fl.IntVar(&f.suffixCandidate, "suffix-candidate", 0, "index of the suffix candidate")
	fl.StringVar(&f.variant, "variant", "", "variant text")
	fl.StringVar(&f.counterField, "counter-field", "Variant", "field that carries --counter and --delta")
	fl.StringVar(&f.counter, "counter", "", "first counter value, its digit count sets the padding")
	fl.StringVar(&f.delta, "delta", "", "counter increment between items")
}

// apply pushes the given flags into sess
func (f *namingFlags) apply(cmd *cobra.Command, sess *session.Session) error {
	changed := cmd.Flags().Changed

	if changed("category") {
		if err := sess.SetCategory(f.category); err != nil {
			return errors.Errorf("--category: %w", err)
		}
	}
	if changed("convention") {
		c, err := convention.Parse(f.convention)
		if err != nil {
			return errors.Errorf("--convention: %w", err)
		}
		sess.SetConvention(c)
	}

	if changed("rename-to") {
		sess.SetRenameTo(f.renameTo)
		sess.SetRenameMode(synth.RenameRename)
	}
	if changed("rename-mode") {
		m, err := synth.ParseRenameMode(f.renameMode)
		if err != nil {
			return errors.Errorf("--rename-mode: %w", err)
		}
		sess.SetRenameMode(m)
	}

	modes := []struct {
		flag  string
		value string
		gen   *designator.Generator
	}{
		{"prefix-mode", f.prefixMode, sess.Prefix()},
		{"suffix-mode", f.suffixMode, sess.Suffix()},
		{"variant-mode", f.variantMode, sess.Variant()},
	}
	for _, m := range modes {
		if !changed(m.flag) {
			continue
		}
		mode, err := designator.ParseMode(m.value)
		if err != nil {
			return errors.Errorf("--%s: %w", m.flag, err)
		}
		m.gen.SetMode(mode)
	}

	if changed("prefix-candidate") {
		if err := sess.Prefix().SelectCandidate(f.prefixCandidate); err != nil {
			return errors.Errorf("--prefix-candidate: %w", err)
		}
	}
	if changed("suffix-candidate") {
		if err := sess.Suffix().SelectCandidate(f.suffixCandidate); err != nil {
			return errors.Errorf("--suffix-candidate: %w", err)
		}
	}
	if changed("variant") {
		sess.Variant().SetStarts(f.variant)
	}

	if changed("counter") || changed("delta") {
		field, err := catalog.ParseField(f.counterField)
		if err != nil {
			return errors.Errorf("--counter-field: %w", err)
		}
		if sess.Generator(field) == nil {
			return errors.Errorf("--counter-field: %s has no counter", field)
		}
		if changed("counter") {
			if !sess.SetCounterText(field, f.counter) {
				return errors.Errorf("--counter: %q is not a number", f.counter)
			}
			sess.Generator(field).SetUseCounter(true)
		}
		if changed("delta") && !sess.SetDeltaText(field, f.delta) {
			return errors.Errorf("--delta: %q is not a number", f.delta)
		}
	}

	return nil
}

// planFlags control the batch pass of plan and rename
type planFlags struct {
	auto         bool
	unique       bool
	uniqueFormat string
	padZero      bool
	separator    string
}

func (f *planFlags) bind(cmd *cobra.Command) {
	fl := cmd.Flags()
	fl.BoolVar(&f.auto, "auto", false, "validate every item against the group matching its extension")
	fl.BoolVar(&f.unique, "unique", false, "number colliding names")
	fl.StringVar(&f.uniqueFormat, "unique-format", unique.DefaultFormat, "zero run giving the minimum id width")
	fl.BoolVar(&f.padZero, "pad-zero", false, "number every name without an id")
	fl.StringVar(&f.separator, "separator", "", "text between a name and its new id")
}

func (f *planFlags) options() operation.PlanOptions {
	return operation.PlanOptions{
		Auto:      f.auto,
		Unique:    f.unique,
		Format:    f.uniqueFormat,
		PadZero:   f.padZero,
		Separator: f.separator,
	}
}
