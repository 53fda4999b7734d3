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
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/walteh/renamerc/pkg/item"
	"github.com/walteh/renamerc/pkg/operation"
)

// 🎨 Display configuration
const (
	fileIndent = 4  // spaces to indent entries
	nameWidth  = 35 // Base width for names
	stateWidth = 10 // Width for the state column
)

var severityColor = map[item.Severity]func(format string, a ...interface{}) string{
	item.SeverityOK:      color.GreenString,
	item.SeveritySkipped: color.HiBlackString,
	item.SeverityWarning: color.YellowString,
	item.SeverityError:   color.RedString,
}

// 🎯 FormatProposal formats a planned rename for the console: a symbol, the
// old name, the item state and, for changed items, a diff of the two names.
func FormatProposal(p operation.Proposal) string {
	var prefix, detail string
	switch {
	case p.Err != nil:
		prefix = color.RedString("✗")
		detail = color.RedString("%s", p.Err)
	case p.Skip != "":
		prefix = color.HiBlackString("-")
		detail = color.HiBlackString("%s", p.Skip)
	case p.Changed():
		prefix = color.YellowString("⟳")
		detail = "→ " + NameDiff(p.OldName(), p.NewName())
	default:
		prefix = color.GreenString("✓")
		detail = color.HiBlackString("unchanged")
	}

	return fmt.Sprintf("%s%s %s %s %s",
		strings.Repeat(" ", fileIndent),
		prefix,
		fmt.Sprintf("%-*s", nameWidth, p.OldName()),
		stateColumn(p.Item.State),
		detail,
	)
}

// 🎯 FormatItem formats a validated item for the console
func FormatItem(it *item.Item) string {
	return fmt.Sprintf("%s%s %s",
		strings.Repeat(" ", fileIndent),
		stateColumn(it.State),
		path(it),
	)
}

func stateColumn(s item.State) string {
	paint := severityColor[s.Severity()]
	return paint("%-*s", stateWidth, s.String())
}
