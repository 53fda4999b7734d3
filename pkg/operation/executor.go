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
	"os"
	"path/filepath"
	"strings"

	"gitlab.com/tozd/go/errors"
)

// ErrTargetExists is returned when a rename would replace another object.
var ErrTargetExists = errors.Base("target already exists")

// 💽 OSExecutor renames files and directories on the local filesystem
type OSExecutor struct{}

var _ Executor = OSExecutor{}

// Rename moves oldPath to newName in the same directory. An existing target
// is never overwritten, except when it is oldPath itself, as with a case-only
// rename on a case-insensitive filesystem.
func (OSExecutor) Rename(ctx context.Context, oldPath, newName string) error {
	if newName == "" || strings.ContainsAny(newName, `/\`) {
		return errors.Errorf("invalid name %q", newName)
	}

	oldPath = filepath.FromSlash(oldPath)
	target := filepath.Join(filepath.Dir(oldPath), newName)
	if target == oldPath {
		return nil
	}

	src, err := os.Lstat(oldPath)
	if err != nil {
		return errors.Errorf("stat source: %w", err)
	}
	if dst, err := os.Lstat(target); err == nil {
		if !os.SameFile(src, dst) {
			return errors.Errorf("%s: %w", target, ErrTargetExists)
		}
	} else if !os.IsNotExist(err) {
		return errors.Errorf("stat target: %w", err)
	}

	if err := os.Rename(oldPath, target); err != nil {
		return errors.Errorf("renaming: %w", err)
	}
	return nil
}
