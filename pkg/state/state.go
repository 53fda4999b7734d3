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

// Package state persists exported session values between runs.
package state

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
	"gopkg.in/yaml.v3"
)

// DefaultPath is the state file used when none is given.
const DefaultPath = ".renamerc.state.json"

// SchemaVersion is written into every state file.
const SchemaVersion = "1.0.0"

// File is the on-disk layout of a state file
type File struct {
	SchemaVersion string         `json:"schema_version" yaml:"schema_version"`
	LastUpdated   time.Time      `json:"last_updated" yaml:"last_updated"`
	Values        map[string]any `json:"values" yaml:"values"`
}

type format int

const (
	formatJSON format = iota
	formatYAML
)

func formatFromPath(path string) (format, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json", "":
		return formatJSON, nil
	case ".yaml", ".yml":
		return formatYAML, nil
	default:
		return 0, errors.Errorf("unsupported state file extension %q", ext)
	}
}

// 📖 Load reads the values stored at path. A missing file is an empty state.
func Load(ctx context.Context, path string) (map[string]any, error) {
	logger := zerolog.Ctx(ctx)
	logger.Debug().Str("path", path).Msg("loading state")

	f, err := formatFromPath(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			logger.Debug().Str("path", path).Msg("no state file, starting clean")
			return map[string]any{}, nil
		}
		return nil, errors.Errorf("reading state file: %w", err)
	}

	var file File
	switch f {
	case formatYAML:
		err = yaml.Unmarshal(data, &file)
	default:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.UseNumber()
		err = dec.Decode(&file)
	}
	if err != nil {
		return nil, errors.Errorf("parsing state file %s: %w", path, err)
	}

	if file.Values == nil {
		file.Values = map[string]any{}
	}
	return normalize(file.Values), nil
}

// normalize turns json.Number values into int or float64 so callers see the
// same types a YAML file produces.
func normalize(values map[string]any) map[string]any {
	for k, v := range values {
		n, ok := v.(json.Number)
		if !ok {
			continue
		}
		if i, err := n.Int64(); err == nil {
			values[k] = int(i)
		} else if fl, err := n.Float64(); err == nil {
			values[k] = fl
		}
	}
	return values
}

// 💾 Save writes values to path atomically. A lock file next to path guards
// against concurrent writers.
func Save(ctx context.Context, path string, values map[string]any) error {
	logger := zerolog.Ctx(ctx)
	logger.Debug().Str("path", path).Int("values", len(values)).Msg("saving state")

	f, err := formatFromPath(path)
	if err != nil {
		return err
	}

	file := File{
		SchemaVersion: SchemaVersion,
		LastUpdated:   time.Now().UTC(),
		Values:        values,
	}
	if file.Values == nil {
		file.Values = map[string]any{}
	}

	var data []byte
	switch f {
	case formatYAML:
		data, err = yaml.Marshal(file)
	default:
		data, err = json.MarshalIndent(file, "", "  ")
	}
	if err != nil {
		return errors.Errorf("marshaling state: %w", err)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return errors.Errorf("creating state directory: %w", err)
		}
	}

	unlock, err := lock(path)
	if err != nil {
		return err
	}
	defer unlock()

	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0644); err != nil {
		return errors.Errorf("writing temporary state file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return errors.Errorf("renaming temporary state file: %w", err)
	}

	return nil
}

// 🗑️ Reset removes the state file at path. A missing file is not an error.
func Reset(ctx context.Context, path string) error {
	zerolog.Ctx(ctx).Debug().Str("path", path).Msg("resetting state")

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil
	}

	unlock, err := lock(path)
	if err != nil {
		return err
	}
	defer unlock()

	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return errors.Errorf("removing state file: %w", err)
	}
	return nil
}

func lock(path string) (func(), error) {
	lockPath := path + ".lock"
	f, err := os.OpenFile(lockPath, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0600)
	if err != nil {
		return nil, errors.Errorf("creating lock file: %w", err)
	}
	return func() {
		f.Close()
		os.Remove(lockPath)
	}, nil
}
