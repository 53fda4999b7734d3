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

// Package selection turns command line arguments into items.
package selection

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
	"golang.org/x/sync/errgroup"

	"github.com/walteh/renamerc/pkg/item"
)

// DefaultConcurrency bounds the stat calls running at once.
const DefaultConcurrency = 8

// 🔧 Options controls expansion
type Options struct {
	// Recursive adds everything below a selected directory
	Recursive bool
	// Exclude drops paths matching any of these doublestar patterns
	Exclude []string
	// Concurrency bounds parallel stat calls; 0 means DefaultConcurrency
	Concurrency int
}

func isPattern(arg string) bool {
	return strings.ContainsAny(arg, "*?[{")
}

// 🔍 Expand resolves args into items. An argument is a path or a doublestar
// glob. Items come in argument order, glob matches in lexical order, and a
// path selected twice is kept once. A literal path that does not exist is an
// error; a glob matching nothing is not.
func Expand(ctx context.Context, args []string, opts Options) ([]*item.Item, error) {
	logger := zerolog.Ctx(ctx)

	for _, pattern := range opts.Exclude {
		if !doublestar.ValidatePattern(filepath.ToSlash(pattern)) {
			return nil, errors.Errorf("invalid exclude pattern %q", pattern)
		}
	}

	var paths []string
	seen := map[string]bool{}
	add := func(p string) {
		p = filepath.Clean(p)
		if seen[p] || excluded(p, opts.Exclude) {
			return
		}
		seen[p] = true
		paths = append(paths, p)
	}

	for _, arg := range args {
		if !isPattern(arg) {
			add(arg)
			continue
		}
		matches, err := doublestar.FilepathGlob(arg)
		if err != nil {
			return nil, errors.Errorf("expanding %q: %w", arg, err)
		}
		sort.Strings(matches)
		logger.Debug().Str("pattern", arg).Int("matches", len(matches)).Msg("expanded glob")
		for _, m := range matches {
			add(m)
		}
	}

	items, err := stat(ctx, paths, opts)
	if err != nil {
		return nil, err
	}

	if !opts.Recursive {
		return items, nil
	}

	var out []*item.Item
	for i, it := range items {
		out = append(out, it)
		if it.Kind != item.KindDirectory {
			continue
		}
		var below []string
		for _, p := range walk(paths[i]) {
			if seen[p] || excluded(p, opts.Exclude) {
				continue
			}
			seen[p] = true
			below = append(below, p)
		}
		children, err := stat(ctx, below, opts)
		if err != nil {
			return nil, err
		}
		out = append(out, children...)
	}
	return out, nil
}

func excluded(p string, patterns []string) bool {
	slashed := filepath.ToSlash(p)
	for _, pattern := range patterns {
		if ok, _ := doublestar.Match(filepath.ToSlash(pattern), slashed); ok {
			return true
		}
	}
	return false
}

// walk lists everything below dir in lexical order, dir itself excluded.
func walk(dir string) []string {
	matches, err := doublestar.Glob(os.DirFS(dir), "**")
	if err != nil {
		return nil
	}
	sort.Strings(matches)
	out := make([]string, 0, len(matches))
	for _, m := range matches {
		if m == "." {
			continue
		}
		out = append(out, filepath.Join(dir, filepath.FromSlash(m)))
	}
	return out
}

// stat builds one item per path, keeping the order of paths.
func stat(ctx context.Context, paths []string, opts Options) ([]*item.Item, error) {
	limit := opts.Concurrency
	if limit <= 0 {
		limit = DefaultConcurrency
	}

	items := make([]*item.Item, len(paths))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)

	for i, p := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			info, err := os.Stat(p)
			if err != nil {
				if errors.Is(err, fs.ErrNotExist) {
					return errors.Errorf("selecting %s: %w", p, err)
				}
				return errors.Errorf("stat %s: %w", p, err)
			}
			items[i] = item.FromPath(p, info.IsDir())
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return items, nil
}
