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


package main

import (
	"context"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/walteh/renamerc/cmd/renamerc/commands"
	"github.com/walteh/renamerc/cmd/renamerc/opts"
	"github.com/walteh/renamerc/pkg/state"
)

// newRootCmd creates the command tree around o
func newRootCmd(o *opts.RootOpts) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "renamerc",
		Short: "Validate and fix asset names against a naming convention",
		Long: `renamerc checks files, folders and other assets against a catalog of
naming rules and renames them to match. Prefixes and suffixes come from the
catalog's rule groups, picked by category and file extension.

Settings given on the command line are saved after each rename and restored
on the next run.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			ctx := setupLogging(cmd.Context(), o.Debug)
			cmd.SetContext(ctx)

			o.Setup(ctx)
			if cmd.Annotations[commands.SkipInit] == "true" {
				return nil
			}
			return o.Init(ctx)
		},
	}

	addRootFlags(rootCmd, o)

	rootCmd.AddCommand(
		commands.NewValidateCmd(o),
		commands.NewPlanCmd(o),
		commands.NewRenameCmd(o),
		commands.NewCatalogCmd(o),
		commands.NewStateCmd(o),
		newVersionCmd(o),
	)

	return rootCmd
}

// addRootFlags adds shared flags to the root command
func addRootFlags(cmd *cobra.Command, o *opts.RootOpts) {
	cmd.PersistentFlags().StringVarP(&o.CatalogFile, "catalog", "c", "", "catalog file path (.yaml, .json or .hcl), built-in when empty")
	cmd.PersistentFlags().StringVarP(&o.StatePath, "state", "s", state.DefaultPath, "session state file path")
	cmd.PersistentFlags().StringVar(&o.LogFile, "log-file", "", "append every rename to this file")
	cmd.PersistentFlags().BoolVarP(&o.Debug, "debug", "d", false, "enable debug logging")
}

// setupLogging puts a zerolog logger matching the debug flag on ctx
func setupLogging(ctx context.Context, debug bool) context.Context {
	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level).With().Timestamp().Logger()
	return logger.WithContext(ctx)
}
