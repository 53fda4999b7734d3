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

// Package unique makes the proposed names of a batch distinct by assigning
// numeric ids to colliding names.
//
// Resolution is first come, first served: items are visited in the order given
// and an earlier item keeps its name over a later one. Reordering a batch can
// change which items are renumbered.
package unique

import (
	"fmt"
	"strconv"
	"strings"

	"gitlab.com/tozd/go/errors"

	"github.com/walteh/renamerc/pkg/item"
)

// MaxID bounds the ids probed for a colliding name; ids are in [0, MaxID).
const MaxID = 999

// DefaultFormat pads ids to two digits.
const DefaultFormat = "00"

// ErrUniquenessExhausted is wrapped by every ExhaustedError.
var ErrUniquenessExhausted = errors.Base("uniqueness exhausted")

// ❌ ExhaustedError reports an item for which no free id below MaxID exists.
// The item keeps its proposed name.
type ExhaustedError struct {
	Index int
	Name  string
}

func (e *ExhaustedError) Error() string {
	return fmt.Sprintf("%s: item %d %q: no free id below %d", ErrUniquenessExhausted, e.Index, e.Name, MaxID)
}

func (e *ExhaustedError) Unwrap() error {
	return ErrUniquenessExhausted
}

// 🔧 Options controls how ids are rendered
type Options struct {
	// Format is a run of '0' characters giving the minimum id width; empty
	// means no padding
	Format string
	// PadZero numbers names that carry no id even when they do not collide
	PadZero bool
	// Separator is placed between a name without id and its new id
	Separator string
}

func (o Options) width() (int, error) {
	if strings.Trim(o.Format, "0") != "" {
		return 0, errors.Errorf("invalid id format %q: only '0' characters are allowed", o.Format)
	}
	return len(o.Format), nil
}

// 🔢 Number is a name split around its last run of digits
type Number struct {
	Prefix string
	ID     int
	Suffix string
	// HasID is false when the name has no digits; Prefix then holds the
	// whole name
	HasID bool
}

// Decompose splits name around its last digit run. "Rock07_LOD" gives prefix
// "Rock", id 7 and suffix "_LOD".
func Decompose(name string) Number {
	end := strings.LastIndexFunc(name, isDigit)
	if end < 0 {
		return Number{Prefix: name}
	}
	// digits are single bytes, so walking bytes never splits a rune
	start := end
	for start > 0 && isDigit(rune(name[start-1])) {
		start--
	}

	id, err := strconv.Atoi(name[start : end+1])
	if err != nil {
		return Number{Prefix: name}
	}
	return Number{
		Prefix: name[:start],
		ID:     id,
		Suffix: name[end+1:],
		HasID:  true,
	}
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

// Render rebuilds the name with id. A name without an id is returned bare
// unless forced, in which case sep and the id are appended.
func (n Number) Render(id, width int, sep string, force bool) string {
	switch {
	case n.HasID:
		return n.Prefix + pad(id, width) + n.Suffix
	case force:
		return n.Prefix + sep + pad(id, width)
	default:
		return n.Prefix
	}
}

func pad(id, width int) string {
	return fmt.Sprintf("%0*d", width, id)
}

// 🎯 ResolveNames returns names made distinct. Names that already carry an
// id are re-rendered with the format; names that collide with an earlier one
// get the lowest free id. An ExhaustedError is returned for every name that
// could not be made unique, and that name is returned unchanged.
func ResolveNames(names []string, opts Options) ([]string, []error) {
	width, err := opts.width()
	if err != nil {
		return append([]string(nil), names...), []error{err}
	}

	out := make([]string, len(names))
	numbers := make([]Number, len(names))
	claimed := make(map[string]int, len(names))
	var deferred []int

	for i, name := range names {
		out[i] = name
		numbers[i] = Decompose(name)
		if opts.PadZero && !numbers[i].HasID {
			deferred = append(deferred, i)
			continue
		}
		candidate := numbers[i].Render(numbers[i].ID, width, opts.Separator, false)
		if _, taken := claimed[candidate]; taken {
			deferred = append(deferred, i)
			continue
		}
		claimed[candidate] = i
		out[i] = candidate
	}

	var errs []error
	for _, i := range deferred {
		found := false
		for id := 0; id < MaxID; id++ {
			candidate := numbers[i].Render(id, width, opts.Separator, true)
			if _, taken := claimed[candidate]; taken {
				continue
			}
			claimed[candidate] = i
			out[i] = candidate
			found = true
			break
		}
		if !found {
			errs = append(errs, &ExhaustedError{Index: i, Name: names[i]})
		}
	}

	return out, errs
}

// Resolve runs ResolveNames over the proposed names of items and stores the
// results with SetResultOrCustomName.
func Resolve(items []*item.Item, opts Options) []error {
	names := make([]string, len(items))
	for i, it := range items {
		names[i] = it.ResultOrCustomName()
	}

	resolved, errs := ResolveNames(names, opts)
	for i, it := range items {
		it.SetResultOrCustomName(resolved[i])
	}
	return errs
}
