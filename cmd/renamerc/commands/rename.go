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

	"github.com/walteh/renamerc/cmd/renamerc/opts"
)

// NewRenameCmd creates a new rename command
func NewRenameCmd(opts *opts.RootOpts) *cobra.Command {
	var (
		flags  batchFlags
		dryRun bool
	)

	cmd := &cobra.Command{
		Use:   "rename [paths...]",
		Short: "Rename items to match the naming convention",
		Long: `Rename plans new names like plan does and applies them. Existing files
are never overwritten. Every rename is written to the action log, and the
session settings are saved for the next run.

With --dry-run the renames are only logged.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			op, proposals, err := planBatch(ctx, cmd, opts, &flags, args)
			if err != nil {
				return err
			}

			applied, applyErr := op.Apply(ctx, proposals, dryRun)
			if dryRun {
				opts.Logger.Successf("%d renames previewed", applied)
			} else {
				opts.Logger.Successf("%d items renamed", applied)
			}

			if err := opts.SaveState(ctx); err != nil {
				return errors.Join(applyErr, err)
			}
			return applyErr
		},
	}

	flags.bind(cmd)
	cmd.Flags().BoolVarP(&dryRun, "dry-run", "n", false, "log renames without applying them")
	return cmd
}
