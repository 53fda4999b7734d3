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

package session

import (
	"encoding/json"
	"math"
	"strconv"

	"gitlab.com/tozd/go/errors"

	"github.com/walteh/renamerc/pkg/catalog"
	"github.com/walteh/renamerc/pkg/convention"
	"github.com/walteh/renamerc/pkg/designator"
	"github.com/walteh/renamerc/pkg/synth"
)

// Keys of the exported state. Generator keys are namespaced as
// "<tool>_<Field>_<key>", session keys as "<tool>_<key>".
const (
	KeyMode       = "mode"
	KeyStarts     = "starts"
	KeyEnds       = "ends"
	KeyCounter    = "counter"
	KeyDelta      = "delta"
	KeyPrecision  = "precision"
	KeyUseCounter = "useCounter"
	KeyCandidate  = "candidate"

	KeyConvention = "convention"
	KeyRenameMode = "renameMode"
	KeyRenameTo   = "renameTo"
	KeyCategory   = "category"
)

// SessionKey returns the namespaced key of a session property.
func (s *Session) SessionKey(prop string) string {
	return s.cat.ToolName + "_" + prop
}

// FieldKey returns the namespaced key of a generator property.
func (s *Session) FieldKey(f catalog.Field, prop string) string {
	return s.cat.ToolName + "_" + f.String() + "_" + prop
}

// 💾 ExportState returns the session state as plain ints, strings and bools.
func (s *Session) ExportState() map[string]any {
	out := map[string]any{
		s.SessionKey(KeyConvention): int(s.convention),
		s.SessionKey(KeyRenameMode): int(s.renameMode),
		s.SessionKey(KeyRenameTo):   s.renameTo,
		s.SessionKey(KeyCategory):   s.Category(),
	}
	for _, g := range s.generators() {
		f := g.Field()
		out[s.FieldKey(f, KeyMode)] = int(g.Mode())
		out[s.FieldKey(f, KeyStarts)] = g.Starts()
		out[s.FieldKey(f, KeyEnds)] = g.Ends()
		out[s.FieldKey(f, KeyCounter)] = g.Counter()
		out[s.FieldKey(f, KeyDelta)] = g.Delta()
		out[s.FieldKey(f, KeyPrecision)] = g.Precision()
		out[s.FieldKey(f, KeyUseCounter)] = g.UseCounter()
		out[s.FieldKey(f, KeyCandidate)] = g.Selected()
	}
	return out
}

// 📥 ImportState restores values produced by ExportState, possibly after a
// JSON or YAML round trip. Missing and unknown keys are ignored. Values of the
// wrong type or out of range are reported together and skipped; everything
// else is applied. The session is clean afterwards.
func (s *Session) ImportState(values map[string]any) error {
	var errs []error
	fail := func(err error) {
		errs = append(errs, err)
	}

	if v, ok := values[s.SessionKey(KeyCategory)]; ok {
		if name, err := asString(v); err != nil {
			fail(errors.Errorf("%s: %w", s.SessionKey(KeyCategory), err))
		} else if name != "" {
			if err := s.SetCategory(name); err != nil {
				fail(errors.Errorf("%s: %w", s.SessionKey(KeyCategory), err))
			}
		}
	}

	s.importInt(values, s.SessionKey(KeyConvention), fail, func(n int) error {
		c := convention.Convention(n)
		if !c.Valid() {
			return errors.Errorf("invalid naming convention %d", n)
		}
		s.SetConvention(c)
		return nil
	})
	s.importInt(values, s.SessionKey(KeyRenameMode), fail, func(n int) error {
		m := synth.RenameMode(n)
		if m != synth.RenameKeep && m != synth.RenameRename {
			return errors.Errorf("invalid rename mode %d", n)
		}
		s.SetRenameMode(m)
		return nil
	})
	s.importString(values, s.SessionKey(KeyRenameTo), fail, s.SetRenameTo)

	for _, g := range s.generators() {
		s.importGenerator(values, g, fail)
	}

	s.dirty = false
	if len(errs) > 0 {
		return errors.Errorf("importing session state: %w", errors.Join(errs...))
	}
	return nil
}

func (s *Session) importGenerator(values map[string]any, g *designator.Generator, fail func(error)) {
	f := g.Field()
	key := func(prop string) string { return s.FieldKey(f, prop) }

	s.importInt(values, key(KeyMode), fail, func(n int) error {
		m := designator.Mode(n)
		if !m.Valid() {
			return errors.Errorf("invalid mode %d", n)
		}
		g.SetMode(m)
		return nil
	})
	// the candidate goes first so an explicit starts value wins
	s.importInt(values, key(KeyCandidate), fail, func(n int) error {
		if len(g.Options()) == 0 && n == 0 {
			return nil
		}
		return g.SelectCandidate(n)
	})
	s.importString(values, key(KeyStarts), fail, g.SetStarts)
	s.importString(values, key(KeyEnds), fail, g.SetEnds)
	s.importInt(values, key(KeyCounter), fail, func(n int) error { g.SetCounterValue(n); return nil })
	s.importInt(values, key(KeyDelta), fail, func(n int) error { g.SetDelta(n); return nil })
	s.importInt(values, key(KeyPrecision), fail, func(n int) error {
		if n < 0 || n > designator.MaxPrecision {
			return errors.Errorf("precision %d out of range 0..%d", n, designator.MaxPrecision)
		}
		g.SetPrecision(n)
		return nil
	})
	if v, ok := values[key(KeyUseCounter)]; ok {
		if b, err := asBool(v); err != nil {
			fail(errors.Errorf("%s: %w", key(KeyUseCounter), err))
		} else {
			g.SetUseCounter(b)
		}
	}
}

func (s *Session) importInt(values map[string]any, key string, fail func(error), apply func(int) error) {
	v, ok := values[key]
	if !ok {
		return
	}
	n, err := asInt(v)
	if err == nil {
		err = apply(n)
	}
	if err != nil {
		fail(errors.Errorf("%s: %w", key, err))
	}
}

func (s *Session) importString(values map[string]any, key string, fail func(error), apply func(string)) {
	v, ok := values[key]
	if !ok {
		return
	}
	str, err := asString(v)
	if err != nil {
		fail(errors.Errorf("%s: %w", key, err))
		return
	}
	apply(str)
}

func asInt(v any) (int, error) {
	switch n := v.(type) {
	case int:
		return n, nil
	case int32:
		return int(n), nil
	case int64:
		return int(n), nil
	case uint64:
		return int(n), nil
	case json.Number:
		i, err := strconv.Atoi(n.String())
		if err != nil {
			return 0, errors.Errorf("expected an integer, got %s", n)
		}
		return i, nil
	case float64:
		if n != math.Trunc(n) {
			return 0, errors.Errorf("expected an integer, got %v", n)
		}
		return int(n), nil
	default:
		return 0, errors.Errorf("expected an integer, got %T", v)
	}
}

func asString(v any) (string, error) {
	if str, ok := v.(string); ok {
		return str, nil
	}
	return "", errors.Errorf("expected a string, got %T", v)
}

func asBool(v any) (bool, error) {
	if b, ok := v.(bool); ok {
		return b, nil
	}
	return false, errors.Errorf("expected a bool, got %T", v)
}
