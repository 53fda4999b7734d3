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
	"fmt"

	"gitlab.com/tozd/go/errors"
)

// ErrConfiguration is wrapped by every ConfigurationError.
var ErrConfiguration = errors.Base("catalog configuration error")

// ❌ ConfigurationError reports inconsistent catalog data, such as a bad
// extension list. GroupID is empty for catalog-wide settings.
type ConfigurationError struct {
	GroupID string
	Err     error
}

func (e *ConfigurationError) Error() string {
	if e.GroupID == "" {
		return fmt.Sprintf("%s: %v", ErrConfiguration, e.Err)
	}
	return fmt.Sprintf("%s: group %q: %v", ErrConfiguration, e.GroupID, e.Err)
}

// Unwrap exposes both ErrConfiguration and the underlying cause.
func (e *ConfigurationError) Unwrap() []error {
	return []error{ErrConfiguration, e.Err}
}

func configErrorf(groupID, format string, args ...any) error {
	return &ConfigurationError{GroupID: groupID, Err: errors.Errorf(format, args...)}
}
