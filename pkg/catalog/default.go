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

package catalog

import (
	"context"
	_ "embed"

	"gitlab.com/tozd/go/errors"
)

//go:embed defaults.yaml
var defaultCatalog []byte

// DefaultData returns the raw built-in catalog file.
func DefaultData() []byte {
	return append([]byte(nil), defaultCatalog...)
}

// 🌱 Default builds a fresh copy of the built-in catalog
func Default(ctx context.Context) (*Catalog, error) {
	cat, err := Parse(ctx, defaultCatalog, FormatYAML)
	if err != nil {
		return nil, errors.Errorf("building default catalog: %w", err)
	}
	return cat, nil
}

// MustDefault is like Default but panics on error.
func MustDefault() *Catalog {
	cat, err := Default(context.Background())
	if err != nil {
		panic(err)
	}
	return cat
}
