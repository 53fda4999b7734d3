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

	"gitlab.com/tozd/go/errors"

	"github.com/walteh/renamerc/pkg/session"
)

// 📁 Executor performs the actual renames
type Executor interface {
	// Rename gives the object at oldPath the name newName within its
	// directory. newName includes the extension.
	Rename(ctx context.Context, oldPath, newName string) error
}

// 📝 ActionLogger records every rename, real or dry
type ActionLogger interface {
	LogAction(ctx context.Context, action Action)
}

// 🔧 Options contains the collaborators of an Operator
type Options struct {
	// Session holds the catalog and generator settings
	Session *session.Session
	// Executor renames objects on the host
	Executor Executor
	// Logger receives the action log
	Logger ActionLogger
}

// 🎮 Operator validates, plans and applies renames for one session
type Operator struct {
	session  *session.Session
	executor Executor
	logger   ActionLogger
}

// 🏭 New creates a new operator with the given options
func New(opts Options) (*Operator, error) {
	if opts.Session == nil {
		return nil, errors.Errorf("session is required")
	}
	if opts.Executor == nil {
		return nil, errors.Errorf("executor is required")
	}
	if opts.Logger == nil {
		return nil, errors.Errorf("logger is required")
	}
	return &Operator{
		session:  opts.Session,
		executor: opts.Executor,
		logger:   opts.Logger,
	}, nil
}

// Session returns the session the operator works on.
func (o *Operator) Session() *session.Session {
	return o.session
}
