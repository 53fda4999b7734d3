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

package status

import (
	"strings"

	"github.com/fatih/color"
	"github.com/sergi/go-diff/diffmatchpatch"
)

// 🔍 NameDiff renders newName as a character diff against oldName. Inserted
// text is green and removed text red. Without color, removals are written
// as [-text-] and insertions as {+text+}.
func NameDiff(oldName, newName string) string {
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffCleanupSemantic(dmp.DiffMain(oldName, newName, false))

	var out strings.Builder
	for _, d := range diffs {
		switch d.Type {
		case diffmatchpatch.DiffInsert:
			if color.NoColor {
				out.WriteString("{+" + d.Text + "+}")
			} else {
				out.WriteString(color.New(color.FgGreen, color.Bold).Sprint(d.Text))
			}
		case diffmatchpatch.DiffDelete:
			if color.NoColor {
				out.WriteString("[-" + d.Text + "-]")
			} else {
				out.WriteString(color.New(color.FgRed, color.CrossedOut).Sprint(d.Text))
			}
		default:
			out.WriteString(d.Text)
		}
	}
	return out.String()
}
