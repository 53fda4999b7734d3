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
	"fmt"
	"io"
	"runtime"
	"runtime/debug"

	"github.com/spf13/cobra"

	"github.com/walteh/renamerc/cmd/renamerc/commands"
	"github.com/walteh/renamerc/cmd/renamerc/opts"
)

// buildInfo is what the version command prints
type buildInfo struct {
	version  string
	revision string
	time     string
	modified bool
}

func readBuildInfo() buildInfo {
	info := buildInfo{version: "dev"}

	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return info
	}
	if v := bi.Main.Version; v != "" && v != "(devel)" {
		info.version = v
	}
	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs.revision":
			info.revision = s.Value
		case "vcs.time":
			info.time = s.Value
		case "vcs.modified":
			info.modified = s.Value == "true"
		}
	}
	return info
}

func printVersion(w io.Writer, info buildInfo) {
	revision := info.revision
	if revision == "" {
		revision = "unknown"
	}
	if info.modified {
		revision += " (modified)"
	}
	fmt.Fprintf(w, "🚀 renamerc version info:\n")
	fmt.Fprintf(w, "Version:   %s\n", info.version)
	fmt.Fprintf(w, "Revision:  %s\n", revision)
	if info.time != "" {
		fmt.Fprintf(w, "Built:     %s\n", info.time)
	}
	fmt.Fprintf(w, "Go:        %s %s/%s\n", runtime.Version(), runtime.GOOS, runtime.GOARCH)
}

func newVersionCmd(o *opts.RootOpts) *cobra.Command {
	return &cobra.Command{
		Use:         "version",
		Short:       "Print build information",
		Args:        cobra.NoArgs,
		Annotations: map[string]string{commands.SkipInit: "true"},
		Run: func(cmd *cobra.Command, args []string) {
			printVersion(o.Out, readBuildInfo())
		},
	}
}
