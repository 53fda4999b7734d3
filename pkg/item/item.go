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

// Package item models one renamable object: a read view of its current name
// plus the proposed name computed for it.
package item

import (
	"path"
	"path/filepath"
	"strings"

	"github.com/walteh/renamerc/pkg/token"
)

// 🗂️ Kind tags what an item refers to
type Kind int

const (
	KindFile Kind = iota
	KindDirectory
	// KindEntity is a named object without a path, such as a scene node
	KindEntity
)

func (k Kind) String() string {
	switch k {
	case KindFile:
		return "file"
	case KindDirectory:
		return "directory"
	case KindEntity:
		return "entity"
	default:
		return "unknown"
	}
}

// 📦 Item is one selected object and its proposed name
type Item struct {
	Kind Kind
	// OriginalPath is empty for entities
	OriginalPath string
	// DirectoryPath uses forward slashes and is empty when there is no parent
	DirectoryPath string
	BaseName      string
	// Extension keeps its leading dot
	Extension   string
	Tokens      []string
	IsTemporary bool

	State      State
	BatchIndex int
	// ResultName is the synthesized base name
	ResultName string

	customName string
}

// FromPath creates a file or directory item. Directories keep their whole
// name as base name.
func FromPath(p string, isDir bool) *Item {
	p = filepath.ToSlash(p)
	dir := path.Dir(p)
	if dir == "." {
		dir = ""
	}
	name := path.Base(p)

	it := &Item{
		Kind:          KindFile,
		OriginalPath:  p,
		DirectoryPath: dir,
	}
	if isDir {
		it.Kind = KindDirectory
	} else {
		it.Extension = path.Ext(name)
		name = strings.TrimSuffix(name, it.Extension)
	}
	it.setBaseName(name)
	return it
}

// NewFile creates a file item from its path.
func NewFile(p string) *Item {
	return FromPath(p, false)
}

// NewDirectory creates a directory item from its path.
func NewDirectory(p string) *Item {
	return FromPath(p, true)
}

// NewEntity creates a path-less item from a display name.
func NewEntity(name string) *Item {
	it := &Item{Kind: KindEntity}
	it.setBaseName(name)
	return it
}

func (it *Item) setBaseName(name string) {
	it.BaseName = name
	it.Tokens = token.Tokenize(name)
	it.IsTemporary = token.IsTemporary(name)
	it.ResultName = name
}

// Retokenize replaces the base name and recomputes the derived fields. The
// validation state is reset.
func (it *Item) Retokenize(name string) {
	it.setBaseName(name)
	it.State = StateUndefined
	it.customName = ""
}

// Name returns the current base name with its extension.
func (it *Item) Name() string {
	return it.BaseName + it.Extension
}

// IsRenamable reports whether a host may rename the item: never directories,
// files only once classified Invalid or Valid, entities always.
func (it *Item) IsRenamable() bool {
	switch it.Kind {
	case KindDirectory:
		return false
	case KindFile:
		return it.State != StateIgnored && it.State != StateUndefined
	case KindEntity:
		return true
	default:
		return false
	}
}

// HasCustomName reports whether a custom override is set.
func (it *Item) HasCustomName() bool {
	return it.customName != ""
}

// CustomName returns the override, or "".
func (it *Item) CustomName() string {
	return it.customName
}

// ResultOrCustomName returns the override when set, else ResultName.
func (it *Item) ResultOrCustomName() string {
	if it.customName != "" {
		return it.customName
	}
	return it.ResultName
}

// SetResultOrCustomName stores name as the override, or clears the override
// when name equals ResultName.
func (it *Item) SetResultOrCustomName(name string) {
	if name == it.ResultName {
		it.customName = ""
		return
	}
	it.customName = name
}

// ResultNameWithExtension returns the proposed name with the extension.
func (it *Item) ResultNameWithExtension() string {
	return it.ResultOrCustomName() + it.Extension
}

// Changed reports whether the proposed name differs from the current one.
func (it *Item) Changed() bool {
	return it.ResultOrCustomName() != it.BaseName
}

// TargetPath joins the directory with the proposed name. It is empty for
// entities.
func (it *Item) TargetPath() string {
	if it.Kind == KindEntity {
		return ""
	}
	if it.DirectoryPath == "" {
		return it.ResultNameWithExtension()
	}
	return path.Join(it.DirectoryPath, it.ResultNameWithExtension())
}
