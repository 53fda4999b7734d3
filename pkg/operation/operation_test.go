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
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gitlab.com/tozd/go/errors"

	"github.com/walteh/renamerc/pkg/catalog"
	"github.com/walteh/renamerc/pkg/designator"
	"github.com/walteh/renamerc/pkg/item"
	"github.com/walteh/renamerc/pkg/session"
	"github.com/walteh/renamerc/pkg/unique"
)

// 🔧 MockExecutor is a mock implementation of the Executor interface
type MockExecutor struct {
	mock.Mock
}

func (m *MockExecutor) Rename(ctx context.Context, oldPath, newName string) error {
	return m.Called(ctx, oldPath, newName).Error(0)
}

// 🔧 MockActionLogger is a mock implementation of the ActionLogger interface
type MockActionLogger struct {
	mock.Mock
}

func (m *MockActionLogger) LogAction(ctx context.Context, action Action) {
	m.Called(ctx, action)
}

func testContext(t *testing.T) context.Context {
	return zerolog.New(zerolog.NewTestWriter(t)).WithContext(context.Background())
}

func texturesSession(t *testing.T) *session.Session {
	s := session.New(catalog.MustDefault())
	require.NoError(t, s.SetCategory("Textures"))
	s.Prefix().SetMode(designator.ModeReplace)
	s.Suffix().SetMode(designator.ModeReplace)
	return s
}

func newOperator(t *testing.T) (*Operator, *MockExecutor, *MockActionLogger) {
	exec := &MockExecutor{}
	logger := &MockActionLogger{}
	op, err := New(Options{Session: texturesSession(t), Executor: exec, Logger: logger})
	require.NoError(t, err)
	return op, exec, logger
}

func mixedSelection() []*item.Item {
	return []*item.Item{
		item.NewFile("Assets/Art/tex_rock_alb.png"),
		item.NewFile("Assets/Art/T_Sand_D.png"),
		item.NewDirectory("Assets/Art"),
		item.NewFile("Assets/Art/readme.txt"),
		item.NewFile("Assets/External/tex_x_y.png"),
		item.NewEntity("hero_a_b"),
	}
}

func TestNew(t *testing.T) {
	s := session.New(catalog.New())
	exec := &MockExecutor{}
	logger := &MockActionLogger{}

	tests := []struct {
		name        string
		opts        Options
		errContains string
	}{
		{name: "missing_session", opts: Options{Executor: exec, Logger: logger}, errContains: "session is required"},
		{name: "missing_executor", opts: Options{Session: s, Logger: logger}, errContains: "executor is required"},
		{name: "missing_logger", opts: Options{Session: s, Executor: exec}, errContains: "logger is required"},
		{name: "complete", opts: Options{Session: s, Executor: exec, Logger: logger}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			op, err := New(tt.opts)
			if tt.errContains != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errContains)
				assert.Nil(t, op)
				return
			}
			require.NoError(t, err)
			assert.Same(t, s, op.Session())
		})
	}
}

func TestValidate(t *testing.T) {
	ctx := testContext(t)
	op, _, _ := newOperator(t)
	items := mixedSelection()

	report := op.Validate(ctx, items, false)
	assert.Equal(t, "Textures", report.Category)
	assert.False(t, report.OK())
	assert.Equal(t, 1, report.Count(item.StateValid))
	assert.Equal(t, 1, report.Count(item.StateInvalid))
	assert.Equal(t, 1, report.Count(item.StateIgnored))
	assert.Equal(t, 3, report.Count(item.StateUndefined))
	assert.Equal(t, []*item.Item{items[0]}, report.Invalid)
	assert.Equal(t, []*item.Item{items[2], items[3], items[5]}, report.Undefined)

	auto := op.Validate(ctx, []*item.Item{item.NewFile("Assets/T_Rock_D.png")}, true)
	assert.Empty(t, auto.Category)
	assert.True(t, auto.OK())
	assert.Equal(t, 1, auto.Count(item.StateValid))
}

func TestPlan(t *testing.T) {
	ctx := testContext(t)
	op, _, _ := newOperator(t)
	items := mixedSelection()

	proposals, errs := op.Plan(ctx, items, PlanOptions{})
	require.Empty(t, errs)
	require.Len(t, proposals, len(items))

	tests := []struct {
		name    string
		newName string
		skip    string
		changed bool
		batch   int
	}{
		{name: "tex_rock_alb.png", newName: "T_rock_D.png", changed: true, batch: 0},
		{name: "T_Sand_D.png", newName: "T_Sand_D.png", batch: 1},
		{name: "Art", newName: "Art", skip: SkipDirectory},
		{name: "readme.txt", newName: "readme.txt", skip: SkipUndefined},
		{name: "tex_x_y.png", newName: "tex_x_y.png", skip: SkipIgnored},
		{name: "hero_a_b", newName: "T_a_D", changed: true, batch: 2},
	}
	for i, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := proposals[i]
			assert.Equal(t, tt.name, p.OldName())
			assert.Equal(t, tt.newName, p.NewName())
			assert.Equal(t, tt.skip, p.Skip)
			assert.Equal(t, tt.changed, p.Changed())
			if tt.skip == "" {
				assert.Equal(t, tt.batch, p.Item.BatchIndex)
			}
		})
	}
}

func TestPlanCounters(t *testing.T) {
	ctx := testContext(t)
	op, _, _ := newOperator(t)
	v := op.Session().Variant()
	v.SetMode(designator.ModeAdd)
	v.SetUseCounter(true)
	v.SetCounter(1)

	items := []*item.Item{
		item.NewFile("Assets/a/tex_rock_alb.png"),
		item.NewFile("Assets/a/notes.txt"),
		item.NewFile("Assets/a/tex_sand_alb.png"),
	}
	proposals, errs := op.Plan(ctx, items, PlanOptions{})
	require.Empty(t, errs)

	assert.Equal(t, "T_rock_01_D.png", proposals[0].NewName())
	assert.Equal(t, "T_sand_02_D.png", proposals[2].NewName(), "skipped items do not consume an index")
}

func TestPlanUnique(t *testing.T) {
	ctx := testContext(t)
	op, _, _ := newOperator(t)

	items := []*item.Item{
		item.NewFile("Assets/a/tex_rock_alb.png"),
		item.NewFile("Assets/b/tex_rock_nrm.png"),
		item.NewFile("Assets/c/readme.txt"),
		item.NewFile("Assets/d/tex_rock_rgh.png"),
	}

	proposals, errs := op.Plan(ctx, items, PlanOptions{Unique: true})
	require.Empty(t, errs)
	assert.Equal(t, "T_rock_D.png", proposals[0].NewName())
	assert.Equal(t, "T_rock_D00.png", proposals[1].NewName())
	assert.Equal(t, "readme.txt", proposals[2].NewName())
	assert.Equal(t, "T_rock_D01.png", proposals[3].NewName())

	proposals, errs = op.Plan(ctx, items, PlanOptions{Unique: true, PadZero: true, Format: "000", Separator: "_"})
	require.Empty(t, errs)
	assert.Equal(t, "T_rock_D_000.png", proposals[0].NewName())
	assert.Equal(t, "T_rock_D_001.png", proposals[1].NewName())

	proposals, errs = op.Plan(ctx, items, PlanOptions{})
	require.Empty(t, errs)
	assert.Equal(t, "T_rock_D.png", proposals[1].NewName(), "planning again starts from the current names")
}

func TestPlanUniqueExhausted(t *testing.T) {
	ctx := testContext(t)
	op, _, _ := newOperator(t)

	items := make([]*item.Item, unique.MaxID+2)
	for i := range items {
		items[i] = item.NewEntity("hero_a_b")
	}

	proposals, errs := op.Plan(ctx, items, PlanOptions{Unique: true})
	require.Len(t, errs, 1)
	assert.True(t, errors.Is(errs[0], unique.ErrUniquenessExhausted))
	assert.Contains(t, errs[0].Error(), "planning hero_a_b")

	last := proposals[len(proposals)-1]
	assert.Equal(t, SkipExhausted, last.Skip)
	assert.Error(t, last.Err)
	assert.False(t, last.Changed())
	assert.Empty(t, proposals[0].Skip)
}

func TestPlanBadFormat(t *testing.T) {
	ctx := testContext(t)
	op, _, _ := newOperator(t)

	_, errs := op.Plan(ctx, []*item.Item{item.NewEntity("a_b_c")}, PlanOptions{Unique: true, Format: "0#"})
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Error(), "invalid id format")
}

func TestDescribe(t *testing.T) {
	p := Proposal{Item: item.NewFile("Assets/Art/tex_rock_alb.png")}
	p.Item.ResultName = "T_rock_D"

	assert.Equal(t, "rename: 'Assets/Art/tex_rock_alb.png' -> 'T_rock_D.png'", Describe(p, false).String())
	assert.Equal(t, "dry-rename: 'Assets/Art/tex_rock_alb.png' -> 'T_rock_D.png'", Describe(p, true).String())
	assert.Equal(t, Action{Kind: KindDryRename, Message: "'Assets/Art/tex_rock_alb.png' -> 'T_rock_D.png'"}, Describe(p, true))
}

func TestApply(t *testing.T) {
	ctx := testContext(t)

	t.Run("renames_changed_items", func(t *testing.T) {
		op, exec, logger := newOperator(t)
		proposals, errs := op.Plan(ctx, mixedSelection(), PlanOptions{})
		require.Empty(t, errs)

		exec.On("Rename", mock.Anything, "Assets/Art/tex_rock_alb.png", "T_rock_D.png").Return(nil).Once()
		logger.On("LogAction", mock.Anything, Action{Kind: KindRename, Message: "'Assets/Art/tex_rock_alb.png' -> 'T_rock_D.png'"}).Once()
		logger.On("LogAction", mock.Anything, Action{Kind: KindRename, Message: "'hero_a_b' -> 'T_a_D'"}).Once()

		applied, err := op.Apply(ctx, proposals, false)
		require.NoError(t, err)
		assert.Equal(t, 2, applied)

		exec.AssertExpectations(t)
		logger.AssertExpectations(t)
	})

	t.Run("dry_run_only_logs", func(t *testing.T) {
		op, exec, logger := newOperator(t)
		proposals, _ := op.Plan(ctx, mixedSelection(), PlanOptions{})

		logger.On("LogAction", mock.Anything, mock.MatchedBy(func(a Action) bool {
			return a.Kind == KindDryRename
		})).Twice()

		applied, err := op.Apply(ctx, proposals, true)
		require.NoError(t, err)
		assert.Equal(t, 2, applied)

		exec.AssertNotCalled(t, "Rename", mock.Anything, mock.Anything, mock.Anything)
		logger.AssertExpectations(t)
	})

	t.Run("executor_error_stops", func(t *testing.T) {
		op, exec, logger := newOperator(t)
		proposals, _ := op.Plan(ctx, mixedSelection(), PlanOptions{})

		exec.On("Rename", mock.Anything, mock.Anything, mock.Anything).Return(errors.New("disk on fire")).Once()
		logger.On("LogAction", mock.Anything, mock.Anything).Once()

		applied, err := op.Apply(ctx, proposals, false)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "renaming Assets/Art/tex_rock_alb.png")
		assert.Contains(t, err.Error(), "disk on fire")
		assert.Equal(t, 0, applied)

		exec.AssertExpectations(t)
		logger.AssertExpectations(t)
	})

	t.Run("cancelled_context", func(t *testing.T) {
		op, _, _ := newOperator(t)
		proposals, _ := op.Plan(ctx, mixedSelection(), PlanOptions{})

		cctx, cancel := context.WithCancel(ctx)
		cancel()

		applied, err := op.Apply(cctx, proposals, false)
		require.Error(t, err)
		assert.ErrorIs(t, err, context.Canceled)
		assert.Equal(t, 0, applied)
	})
}

func TestOSExecutor(t *testing.T) {
	ctx := testContext(t)
	dir := t.TempDir()
	write := func(name string) string {
		p := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(p, []byte(name), 0644))
		return p
	}

	t.Run("renames_in_place", func(t *testing.T) {
		src := write("tex_rock.png")
		require.NoError(t, OSExecutor{}.Rename(ctx, src, "T_Rock_D.png"))

		_, err := os.Stat(src)
		assert.True(t, os.IsNotExist(err))
		content, err := os.ReadFile(filepath.Join(dir, "T_Rock_D.png"))
		require.NoError(t, err)
		assert.Equal(t, "tex_rock.png", string(content))
	})

	t.Run("refuses_to_overwrite", func(t *testing.T) {
		src := write("a.png")
		write("b.png")

		err := OSExecutor{}.Rename(ctx, src, "b.png")
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrTargetExists)

		content, err := os.ReadFile(filepath.Join(dir, "b.png"))
		require.NoError(t, err)
		assert.Equal(t, "b.png", string(content), "target is untouched")
	})

	t.Run("same_name_is_noop", func(t *testing.T) {
		src := write("same.png")
		require.NoError(t, OSExecutor{}.Rename(ctx, src, "same.png"))
	})

	t.Run("invalid_names", func(t *testing.T) {
		src := write("c.png")
		for _, name := range []string{"", "sub/c.png", `sub\c.png`} {
			require.Error(t, OSExecutor{}.Rename(ctx, src, name), name)
		}
	})

	t.Run("missing_source", func(t *testing.T) {
		err := OSExecutor{}.Rename(ctx, filepath.Join(dir, "ghost.png"), "x.png")
		require.Error(t, err)
		assert.ErrorIs(t, err, os.ErrNotExist)
	})
}
