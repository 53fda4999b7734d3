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

package log

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/pterm/pterm"
	"github.com/rs/zerolog"

	"github.com/walteh/renamerc/pkg/operation"
)

// 📢 UserLogger provides user-friendly feedback about validation and state
type UserLogger struct {
	log zerolog.Logger // for debug/error logging
	out io.Writer
}

// 🎯 NewUserLogger creates a new user logger writing to out, or stdout when nil
func NewUserLogger(ctx context.Context, out io.Writer) *UserLogger {
	if out == nil {
		out = os.Stdout
	}
	return &UserLogger{
		log: *zerolog.Ctx(ctx),
		out: out,
	}
}

func (u *UserLogger) printer(base pterm.PrefixPrinter, prefix string) *pterm.PrefixPrinter {
	return base.WithPrefix(pterm.Prefix{Text: prefix, Style: base.Prefix.Style}).WithWriter(u.out)
}

// 🔍 LogValidation logs a validation report
func (u *UserLogger) LogValidation(report operation.Report) {
	against := report.Category
	if against == "" {
		against = "their own categories"
	}
	desc := fmt.Sprintf("%d items checked against %s", len(report.Items), against)
	if report.OK() {
		u.printer(pterm.Success, "✅").Println(desc)
		u.log.Info().Msg(desc)
	}

	if len(report.Undefined) > 0 {
		msg := fmt.Sprintf("%d items have no matching rule group", len(report.Undefined))
		u.printer(pterm.Warning, "⚠️").Println(msg)
		u.log.Warn().Int("undefined", len(report.Undefined)).Msg(desc)
	}
	if len(report.Invalid) > 0 {
		msg := fmt.Sprintf("%d items break the naming convention", len(report.Invalid))
		u.printer(pterm.Error, "❌").Println(msg)
		u.log.Error().Int("invalid", len(report.Invalid)).Msg(desc)
	}
}

// 📊 LogStateChange logs a change to the persisted session state
func (u *UserLogger) LogStateChange(description string) {
	u.printer(pterm.Info, "📦").Println(description)
	u.log.Info().Msg(description)
}

// ❌ LogError logs an error with a short description
func (u *UserLogger) LogError(description string, err error) {
	u.printer(pterm.Error, "❌").Println(description)
	if err != nil {
		pterm.Error.WithWriter(u.out).Println(err)
	}
	u.log.Error().Err(err).Msg(description)
}
