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

package operation

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/walteh/renamerc/pkg/item"
)

// 📊 Report is the outcome of a validation pass
type Report struct {
	// Category is empty for automatic validation
	Category string
	Items    []*item.Item
	Counts   map[item.State]int
	// Undefined items are warnings, Invalid items are errors
	Undefined []*item.Item
	Invalid   []*item.Item
}

// OK reports whether no item is Invalid.
func (r Report) OK() bool {
	return len(r.Invalid) == 0
}

// Count returns the number of items in state s.
func (r Report) Count(s item.State) int {
	return r.Counts[s]
}

// ✅ Validate classifies every item against the session category, or against
// the whole catalog when auto is set.
func (o *Operator) Validate(ctx context.Context, items []*item.Item, auto bool) Report {
	logger := zerolog.Ctx(ctx)

	report := Report{
		Items:  items,
		Counts: make(map[item.State]int, len(item.AllStates)),
	}
	if !auto {
		report.Category = o.session.Category()
	}

	for _, it := range items {
		var st item.State
		if auto {
			st = o.session.AutoValidate(it)
		} else {
			st = o.session.Validate(it)
		}
		report.Counts[st]++

		switch st {
		case item.StateUndefined:
			report.Undefined = append(report.Undefined, it)
		case item.StateInvalid:
			report.Invalid = append(report.Invalid, it)
		}

		logger.Debug().
			Str("item", label(it)).
			Str("category", report.Category).
			Str("state", st.String()).
			Msg("validated item")
	}

	return report
}
