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
	"github.com/walteh/renamerc/pkg/operation"
	"github.com/walteh/renamerc/pkg/selection"
	"github.com/walteh/renamerc/pkg/status"
)

// ErrInvalidItems is returned when validation finds items that break the
// naming convention.
var ErrInvalidItems = errors.Base("invalid items")

// NewValidateCmd creates a new validate command
func NewValidateCmd(opts *opts.RootOpts) *cobra.Command {
	var (
		auto     bool
		category string
		sel      selectionFlags
	)

	cmd := &cobra.Command{
		Use:   "validate [paths...]",
		Short: "Check names against the naming convention",
		Long: `Validate classifies every selected item as valid, invalid, undefined
or ignored and prints a summary. Paths may be glob patterns.

The command fails when at least one item is invalid.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			if cmd.Flags().Changed("category") {
				if err := opts.Session.SetCategory(category); err != nil {
					return errors.Errorf("--category: %w", err)
				}
			}

			items, err := selection.Expand(ctx, args, sel.options())
			if err != nil {
				return errors.Errorf("selecting items: %w", err)
			}

			op, err := newOperator(opts)
			if err != nil {
				return err
			}

			report := op.Validate(ctx, items, auto)
			for _, it := range report.Items {
				opts.Logger.Println(status.FormatItem(it))
			}
			opts.Logger.LogNewline()
			opts.Logger.Println(status.NewDefaultFormatter().FormatSummary(report))
			opts.UserLogger.LogValidation(report)

			if !report.OK() {
				return errors.Errorf("%d %w", len(report.Invalid), ErrInvalidItems)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&auto, "auto", false, "validate every item against the group matching its extension")
	cmd.Flags().StringVar(&category, "category", "", "category to validate against")
	cmd.MarkFlagsMutuallyExclusive("auto", "category")
	sel.bind(cmd)

	return cmd
}

func newOperator(opts *opts.RootOpts) (*operation.Operator, error) {
	op, err := operation.New(operation.Options{
		Session:  opts.Session,
		Executor: operation.OSExecutor{},
		Logger:   opts.Logger,
	})
	if err != nil {
		return nil, errors.Errorf("creating operator: %w", err)
	}
	return op, nil
}
