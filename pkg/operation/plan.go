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

package operation

import (
	"context"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"

	"github.com/walteh/renamerc/pkg/item"
	"github.com/walteh/renamerc/pkg/unique"
)

// Reasons a proposal is skipped.
const (
	SkipDirectory = "directories are never renamed"
	SkipIgnored   = "ignored"
	SkipUndefined = "no rule group matches the extension"
	SkipExhausted = "no unique name available"
)

// 🔧 PlanOptions controls name synthesis for a batch
type PlanOptions struct {
	// Auto validates against every group instead of the session category
	Auto bool
	// Unique runs the unique name resolver over the batch
	Unique bool
	// Format is the id format of the resolver, unique.DefaultFormat when empty
	Format string
	// PadZero numbers every name without an id
	PadZero bool
	// Separator goes between a bare name and its new id
	Separator string
}

// 📋 Proposal is the planned outcome for one item
type Proposal struct {
	Item *item.Item
	// Skip is set when the item will not be renamed
	Skip string
	// Err is set when the resolver could not make the name unique
	Err error
}

// OldName returns the current name with extension.
func (p Proposal) OldName() string {
	return p.Item.Name()
}

// NewName returns the proposed name with extension.
func (p Proposal) NewName() string {
	return p.Item.ResultNameWithExtension()
}

// Changed reports whether applying p renames anything.
func (p Proposal) Changed() bool {
	return p.Skip == "" && p.Item.Changed()
}

// 🗺️ Plan validates items and synthesizes a new name for every renamable one.
// Renamable items get consecutive batch indexes in selection order; the
// others keep their name and carry a skip reason. The returned errors are the
// per-item uniqueness failures, which never abort the plan.
func (o *Operator) Plan(ctx context.Context, items []*item.Item, opts PlanOptions) ([]Proposal, []error) {
	logger := zerolog.Ctx(ctx)
	o.Validate(ctx, items, opts.Auto)

	proposals := make([]Proposal, len(items))
	var batch []*item.Item
	var positions []int

	for i, it := range items {
		proposals[i] = Proposal{Item: it}
		it.ResultName = it.BaseName
		it.SetResultOrCustomName(it.BaseName)

		if !it.IsRenamable() {
			proposals[i].Skip = skipReason(it)
			continue
		}

		it.BatchIndex = len(batch)
		it.ResultName = o.session.Synthesize(it, it.BatchIndex)
		it.SetResultOrCustomName(it.ResultName)
		batch = append(batch, it)
		positions = append(positions, i)
	}

	var errs []error
	if opts.Unique && len(batch) > 0 {
		format := opts.Format
		if format == "" {
			format = unique.DefaultFormat
		}
		for _, err := range unique.Resolve(batch, unique.Options{
			Format:    format,
			PadZero:   opts.PadZero,
			Separator: opts.Separator,
		}) {
			var exhausted *unique.ExhaustedError
			if errors.As(err, &exhausted) {
				p := &proposals[positions[exhausted.Index]]
				p.Skip = SkipExhausted
				p.Err = err
				err = errors.Errorf("planning %s: %w", label(p.Item), err)
			}
			errs = append(errs, err)
		}
	}

	for _, p := range proposals {
		logger.Debug().
			Str("item", label(p.Item)).
			Str("state", p.Item.State.String()).
			Str("name", p.NewName()).
			Str("skip", p.Skip).
			Msg("planned item")
	}

	return proposals, errs
}

func skipReason(it *item.Item) string {
	switch {
	case it.Kind == item.KindDirectory:
		return SkipDirectory
	case it.State == item.StateIgnored:
		return SkipIgnored
	default:
		return SkipUndefined
	}
}

func label(it *item.Item) string {
	if it.OriginalPath != "" {
		return it.OriginalPath
	}
	return it.Name()
}
