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
	"fmt"
	"sort"

	"github.com/spf13/cobra"
	"gitlab.com/tozd/go/errors"
	"gopkg.in/yaml.v3"

	"github.com/walteh/renamerc/cmd/renamerc/opts"
	"github.com/walteh/renamerc/pkg/state"
)

// SkipInit marks commands that run without a catalog or session, so a broken
// state file can still be reset.
const SkipInit = "renamerc/skip-init"

// NewStateCmd creates a new state command
func NewStateCmd(opts *opts.RootOpts) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "state",
		Short: "Show or reset the saved session settings",
	}

	cmd.AddCommand(newStateShowCmd(opts), newStateResetCmd(opts))
	return cmd
}

func newStateShowCmd(opts *opts.RootOpts) *cobra.Command {
	var asYAML bool

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the session settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			values := opts.Session.ExportState()

			if asYAML {
				out, err := yaml.Marshal(values)
				if err != nil {
					return errors.Errorf("encoding state: %w", err)
				}
				opts.Logger.Println(string(out))
				return nil
			}

			keys := make([]string, 0, len(values))
			for k := range values {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			for _, k := range keys {
				opts.Logger.Println(fmt.Sprintf("%s = %v", k, values[k]))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&asYAML, "yaml", false, "print as YAML")
	return cmd
}

func newStateResetCmd(opts *opts.RootOpts) *cobra.Command {
	return &cobra.Command{
		Use:         "reset",
		Short:       "Delete the saved session settings",
		Args:        cobra.NoArgs,
		Annotations: map[string]string{SkipInit: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := state.Reset(cmd.Context(), opts.StatePath); err != nil {
				return errors.Errorf("resetting state: %w", err)
			}
			opts.UserLogger.LogStateChange("removed " + opts.StatePath)
			return nil
		},
	}
}
