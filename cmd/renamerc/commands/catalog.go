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
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"gitlab.com/tozd/go/errors"

	"github.com/walteh/renamerc/cmd/renamerc/opts"
	"github.com/walteh/renamerc/pkg/catalog"
)

// NewCatalogCmd creates a new catalog command
func NewCatalogCmd(opts *opts.RootOpts) *cobra.Command {
	var category string

	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "List categories, rule groups and candidates",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cat := opts.Catalog
			if category == "" {
				current := opts.Session.Category()
				for i, name := range cat.Categories() {
					marker := " "
					if name == current {
						marker = "*"
					}
					opts.Logger.Println(fmt.Sprintf("%s %2d %s", marker, i, name))
				}
				return nil
			}

			groups := cat.FindGroupsByCategory(category)
			if len(groups) == 0 {
				return errors.Errorf("unknown category %q", category)
			}
			for _, g := range groups {
				printGroup(opts, g)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&category, "category", "", "show the groups of one category")
	return cmd
}

func printGroup(opts *opts.RootOpts, g *catalog.RuleGroup) {
	opts.Logger.Println(color.New(color.Bold).Sprint(g.ID) + "  " + strings.Join(g.ExtensionPatterns, ", "))
	if g.Description != "" {
		opts.Logger.Println("    " + color.New(color.Faint).Sprint(g.Description))
	}
	opts.Logger.Println("    prefixes: " + candidateList(g.Prefixes))
	opts.Logger.Println("    suffixes: " + candidateList(g.Suffixes))
}

func candidateList(list []catalog.Candidate) string {
	if len(list) == 0 {
		return "-"
	}
	parts := make([]string, 0, len(list))
	for _, c := range list {
		literal := c.Literal
		if literal == "" {
			literal = "(none)"
		}
		parts = append(parts, literal)
	}
	return strings.Join(parts, " ")
}
