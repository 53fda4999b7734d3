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
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"gitlab.com/tozd/go/errors"

	"github.com/walteh/renamerc/cmd/renamerc/opts"
	"github.com/walteh/renamerc/pkg/operation"
	"github.com/walteh/renamerc/pkg/selection"
	"github.com/walteh/renamerc/pkg/status"
)

// hintCount is how many names the preview line shows
const hintCount = 3

// batchFlags groups every flag shared by plan and rename
type batchFlags struct {
	sel    selectionFlags
	naming namingFlags
	plan   planFlags
}

func (f *batchFlags) bind(cmd *cobra.Command) {
	f.sel.bind(cmd)
	f.naming.bind(cmd)
	f.plan.bind(cmd)
}

// 📋 planBatch applies the flags to the session, selects the items and plans
// their new names. Resolver errors are printed with their proposals and only
// returned when nothing could be planned.
func planBatch(ctx context.Context, cmd *cobra.Command, opts *opts.RootOpts, f *batchFlags, args []string) (*operation.Operator, []operation.Proposal, error) {
	if err := f.naming.apply(cmd, opts.Session); err != nil {
		return nil, nil, err
	}

	items, err := selection.Expand(ctx, args, f.sel.options())
	if err != nil {
		return nil, nil, errors.Errorf("selecting items: %w", err)
	}

	op, err := newOperator(opts)
	if err != nil {
		return nil, nil, err
	}

	proposals, errs := op.Plan(ctx, items, f.plan.options())
	if len(proposals) == 0 && len(errs) > 0 {
		return nil, nil, errors.Errorf("planning: %w", errors.Join(errs...))
	}

	opts.Logger.Header(fmt.Sprintf("%s • %s", opts.Session.Category(), opts.Session.Hint(hintCount)))
	changed := 0
	for _, p := range proposals {
		opts.Logger.Println(status.FormatProposal(p))
		if p.Changed() {
			changed++
		}
	}
	opts.Logger.LogNewline()
	opts.Logger.Infof("%d of %d items will be renamed", changed, len(proposals))

	return op, proposals, nil
}

// NewPlanCmd creates a new plan command
func NewPlanCmd(opts *opts.RootOpts) *cobra.Command {
	var flags batchFlags

	cmd := &cobra.Command{
		Use:   "plan [paths...]",
		Short: "Preview new names without renaming",
		Long: `Plan synthesizes a new name for every selected item using the session
settings and the given overrides, then prints old and new names side by side.
Nothing is renamed and no settings are saved.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, _, err := planBatch(cmd.Context(), cmd, opts, &flags, args)
			return err
		},
	}

	flags.bind(cmd)
	return cmd
}
