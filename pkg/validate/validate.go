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

// Package validate classifies items against the rule groups of a catalog.
//
// A group accepts a multi-token name when at least one token equals a prefix
// candidate and at least one token equals a suffix candidate. Token positions
// are not checked, so "D_Hero_T" passes a group with prefix "T" and suffix "D".
// A single-token name passes only a group declaring both an empty prefix and an
// empty suffix candidate.
package validate

import (
	"github.com/walteh/renamerc/pkg/catalog"
	"github.com/walteh/renamerc/pkg/item"
	"github.com/walteh/renamerc/pkg/token"
)

// ✅ Validate classifies it against the groups of category, stores the result
// in it.State and returns it. Groups are tried in registration order and the
// first accepting group wins.
func Validate(cat *catalog.Catalog, it *item.Item, category string) item.State {
	it.State = validate(cat, it, cat.FindGroupsByCategory(category), true)
	return it.State
}

// 🔎 AutoValidate is Validate over every group of the catalog regardless of
// category. It is meant for unattended scans.
func AutoValidate(cat *catalog.Catalog, it *item.Item) item.State {
	it.State = validate(cat, it, cat.Groups, false)
	return it.State
}

func validate(cat *catalog.Catalog, it *item.Item, groups []*catalog.RuleGroup, emptyIsIgnored bool) item.State {
	if token.IsDegenerate(it.Tokens) {
		return item.StateInvalid
	}
	if it.Kind == item.KindFile && cat.IsIgnored(it.DirectoryPath) {
		return item.StateIgnored
	}
	if emptyIsIgnored && len(groups) == 0 {
		return item.StateIgnored
	}

	seen := 0
	result := item.StateInvalid
	for _, g := range groups {
		if !g.VerifyExtension(it.Extension) {
			continue
		}
		seen++
		result = CheckGroup(g, it.Tokens)
		if result == item.StateValid {
			return result
		}
	}

	if seen == 0 {
		return item.StateUndefined
	}
	return result
}

// CheckGroup runs the candidate check of one group, ignoring extensions. It
// returns StateValid or StateInvalid.
func CheckGroup(g *catalog.RuleGroup, tokens []string) item.State {
	if len(tokens) == 1 {
		if g.HasPrefix("") && g.HasSuffix("") {
			return item.StateValid
		}
		return item.StateInvalid
	}

	prefixes, suffixes := 0, 0
	for _, t := range tokens {
		if g.HasPrefix(t) {
			prefixes++
		}
		if g.HasSuffix(t) {
			suffixes++
		}
	}
	if prefixes > 0 && suffixes > 0 {
		return item.StateValid
	}
	return item.StateInvalid
}
