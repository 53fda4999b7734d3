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

package opts

import (
	"context"
	"io"
	"os"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"

	"github.com/walteh/renamerc/pkg/catalog"
	"github.com/walteh/renamerc/pkg/log"
	"github.com/walteh/renamerc/pkg/session"
	"github.com/walteh/renamerc/pkg/state"
)

// RootOpts contains shared options used by all commands. The flag fields are
// bound by the root command; the rest is filled by Init.
type RootOpts struct {
	CatalogFile string
	StatePath   string
	LogFile     string
	Debug       bool
	Out         io.Writer

	Catalog    *catalog.Catalog
	Session    *session.Session
	Logger     *log.Logger
	UserLogger *log.UserLogger
}

// New creates options writing to out, or stdout when nil
func New(out io.Writer) *RootOpts {
	if out == nil {
		out = os.Stdout
	}
	return &RootOpts{
		StatePath: state.DefaultPath,
		Out:       out,
	}
}

// Level returns the zerolog level selected by the debug flag
func (o *RootOpts) Level() zerolog.Level {
	if o.Debug {
		return zerolog.DebugLevel
	}
	return zerolog.WarnLevel
}

// Setup creates the console loggers
func (o *RootOpts) Setup(ctx context.Context) {
	o.UserLogger = log.NewUserLogger(ctx, o.Out)
	o.Logger = log.New(o.Out, o.Level()).WithLogFile(o.LogFile)
}

// 🏗️ Init loads the catalog and restores the persisted session. A state file
// holding bad values is reported and the remaining values still apply.
func (o *RootOpts) Init(ctx context.Context) error {
	if o.Logger == nil {
		o.Setup(ctx)
	}

	cat, err := o.loadCatalog(ctx)
	if err != nil {
		return err
	}
	o.Catalog = cat
	o.Session = session.New(cat)

	values, err := state.Load(ctx, o.StatePath)
	if err != nil {
		return errors.Errorf("loading state: %w", err)
	}
	if err := o.Session.ImportState(values); err != nil {
		o.UserLogger.LogError("some saved settings were skipped", err)
	}

	zerolog.Ctx(ctx).Debug().
		Str("catalog", o.catalogName()).
		Str("state", o.StatePath).
		Int("values", len(values)).
		Msg("initialized session")
	return nil
}

func (o *RootOpts) loadCatalog(ctx context.Context) (*catalog.Catalog, error) {
	if o.CatalogFile == "" {
		return catalog.Default(ctx)
	}
	cat, err := catalog.Load(ctx, o.CatalogFile)
	if err != nil {
		return nil, errors.Errorf("loading catalog: %w", err)
	}
	return cat, nil
}

func (o *RootOpts) catalogName() string {
	if o.CatalogFile == "" {
		return "built-in"
	}
	return o.CatalogFile
}

// 💾 SaveState persists the session settings
func (o *RootOpts) SaveState(ctx context.Context) error {
	if err := state.Save(ctx, o.StatePath, o.Session.ExportState()); err != nil {
		return errors.Errorf("saving state: %w", err)
	}
	o.Session.ClearDirty()
	o.UserLogger.LogStateChange("saved session settings to " + o.StatePath)
	return nil
}
