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
	"fmt"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// Action kinds.
const (
	KindRename    = "rename"
	KindDryRename = "dry-rename"
)

// 🏷️ Action is one line of the action log
type Action struct {
	Kind    string
	Message string
}

// String renders the action as "<kind>: <message>".
func (a Action) String() string {
	return a.Kind + ": " + a.Message
}

// Describe renders a proposal as "rename: '<old path>' -> '<new name>'", or
// with the dry-rename kind.
func Describe(p Proposal, dryRun bool) Action {
	kind := KindRename
	if dryRun {
		kind = KindDryRename
	}
	return Action{
		Kind:    kind,
		Message: fmt.Sprintf("'%s' -> '%s'", label(p.Item), p.NewName()),
	}
}

// 🚀 Apply renames every changed proposal in order and returns how many were
// applied. Every rename is logged first; a dry run only logs. Items without a
// path are logged but never passed to the executor. The first executor error
// stops the run.
func (o *Operator) Apply(ctx context.Context, proposals []Proposal, dryRun bool) (int, error) {
	logger := zerolog.Ctx(ctx)

	applied := 0
	for _, p := range proposals {
		if err := ctx.Err(); err != nil {
			return applied, errors.Errorf("applying renames: %w", err)
		}
		if !p.Changed() {
			continue
		}

		o.logger.LogAction(ctx, Describe(p, dryRun))

		if dryRun || p.Item.OriginalPath == "" {
			applied++
			continue
		}

		if err := o.executor.Rename(ctx, p.Item.OriginalPath, p.NewName()); err != nil {
			return applied, errors.Errorf("renaming %s: %w", p.Item.OriginalPath, err)
		}
		logger.Debug().
			Str("item", p.Item.OriginalPath).
			Str("name", p.NewName()).
			Msg("renamed item")
		applied++
	}

	return applied, nil
}
