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

	"github.com/walteh/renamerc/pkg/item"
	"github.com/walteh/renamerc/pkg/operation"
)

// Formatter defines how plans and reports are rendered
type Formatter interface {
	// FormatProposal formats one planned rename
	FormatProposal(p operation.Proposal) string

	// FormatItem formats one validated item
	FormatItem(it *item.Item) string

	// FormatSummary formats the state counts of a report
	FormatSummary(r operation.Report) string

	// FormatProgress formats a progress message
	FormatProgress(current, total int) string

	// FormatError formats an error message
	FormatError(err error) string
}

// DefaultFormatter renders plain lines with emojis
type DefaultFormatter struct{}

var _ Formatter = (*DefaultFormatter)(nil)

// NewDefaultFormatter creates a new DefaultFormatter
func NewDefaultFormatter() *DefaultFormatter {
	return &DefaultFormatter{}
}

// FormatProposal formats a planned rename with emojis
func (f *DefaultFormatter) FormatProposal(p operation.Proposal) string {
	switch {
	case p.Err != nil:
		return fmt.Sprintf("❌ Failed %s: %v", p.OldName(), p.Err)
	case p.Skip != "":
		return fmt.Sprintf("⏭️  Skipped %s (%s)", p.OldName(), p.Skip)
	case p.Changed():
		return fmt.Sprintf("📝 Rename %s -> %s", p.OldName(), p.NewName())
	default:
		return fmt.Sprintf("👍 Unchanged %s", p.OldName())
	}
}

var stateEmoji = map[item.Severity]string{
	item.SeverityOK:      "✅",
	item.SeveritySkipped: "⏭️ ",
	item.SeverityWarning: "⚠️ ",
	item.SeverityError:   "❌",
}

// FormatItem formats the validation state of an item
func (f *DefaultFormatter) FormatItem(it *item.Item) string {
	return fmt.Sprintf("%s %s %s", stateEmoji[it.State.Severity()], it.State, path(it))
}

// FormatSummary lists the count of every state present in r
func (f *DefaultFormatter) FormatSummary(r operation.Report) string {
	parts := make([]string, 0, len(item.AllStates))
	for _, s := range item.AllStates {
		if n := r.Count(s); n > 0 {
			parts = append(parts, fmt.Sprintf("%d %s", n, s))
		}
	}
	if len(parts) == 0 {
		return "📊 0 items"
	}
	return fmt.Sprintf("📊 %d items: %s", len(r.Items), strings.Join(parts, ", "))
}

// FormatProgress formats a progress message with percentage
func (f *DefaultFormatter) FormatProgress(current, total int) string {
	var percentage float64
	if total == 0 {
		percentage = 0
		if current > 0 {
			percentage = 100
		}
	} else {
		percentage = float64(current) / float64(total) * 100
	}

	if current >= total {
		return fmt.Sprintf("✅ Progress: %d/%d (%.0f%%)", current, total, percentage)
	}
	return fmt.Sprintf("⏳ Progress: %d/%d (%.0f%%)", current, total, percentage)
}

// FormatError formats an error message with emoji
func (f *DefaultFormatter) FormatError(err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("❌ Error: %v", err)
}

func path(it *item.Item) string {
	if it.OriginalPath != "" {
		return it.OriginalPath
	}
	return it.Name()
}
