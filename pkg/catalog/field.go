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
	"strings"

	"gitlab.com/tozd/go/errors"
)

// 🧩 Field is one positional part of a synthesized name
type Field int

const (
	FieldPrefix Field = iota
	FieldName
	FieldSuffix
	FieldVariant
)

var fieldNames = map[Field]string{
	FieldPrefix:  "Prefix",
	FieldName:    "Name",
	FieldSuffix:  "Suffix",
	FieldVariant: "Variant",
}

// DefaultFieldOrder is prefix, name, variant, suffix.
var DefaultFieldOrder = []Field{FieldPrefix, FieldName, FieldVariant, FieldSuffix}

// String returns the field name used in state keys.
func (f Field) String() string {
	if n, ok := fieldNames[f]; ok {
		return n
	}
	return "Unknown"
}

// ParseField resolves a field from its name, ignoring case.
func ParseField(s string) (Field, error) {
	for f, n := range fieldNames {
		if strings.EqualFold(n, strings.TrimSpace(s)) {
			return f, nil
		}
	}
	return FieldName, errors.Errorf("unknown field %q", s)
}

// MarshalText implements encoding.TextMarshaler.
func (f Field) MarshalText() ([]byte, error) {
	if _, ok := fieldNames[f]; !ok {
		return nil, errors.Errorf("invalid field %d", int(f))
	}
	return []byte(strings.ToLower(f.String())), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (f *Field) UnmarshalText(b []byte) error {
	parsed, err := ParseField(string(b))
	if err != nil {
		return err
	}
	*f = parsed
	return nil
}
