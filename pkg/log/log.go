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
	"os/user"
	"sync"
	"time"

	"github.com/fatih/color"
	"github.com/rs/zerolog"

	"github.com/walteh/renamerc/pkg/operation"
)

// 🎨 Display configuration
const (
	actionIndent = 4  // spaces to indent action entries
	kindWidth    = 12 // Width for the action kind
)

// stampLayout is the clock format of log file lines
const stampLayout = "15:04:05"

// 🎯 Logger handles structured logging with console output and an optional
// append-only action log file
type Logger struct {
	zlog    zerolog.Logger
	console io.Writer
	mu      sync.Mutex

	logFile string
	user    string
	machine string
	now     func() time.Time
	actions int
}

// 🏭 New creates a new logger
func New(console io.Writer, level zerolog.Level) *Logger {
	zlog := zerolog.New(zerolog.NewConsoleWriter(func(w *zerolog.ConsoleWriter) {
		w.Out = os.Stderr
	})).With().Timestamp().Logger().Level(level)
	return &Logger{
		zlog:    zlog,
		console: console,
		mu:      sync.Mutex{},
		user:    currentUser(),
		machine: currentMachine(),
		now:     time.Now,
	}
}

// WithLogFile makes every action also append a line to path. An empty path
// disables the file.
func (l *Logger) WithLogFile(path string) *Logger {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.logFile = path
	return l
}

// LogFile returns the action log path, or "".
func (l *Logger) LogFile() string {
	return l.logFile
}

func currentUser() string {
	if u, err := user.Current(); err == nil && u.Username != "" {
		return u.Username
	}
	if name := os.Getenv("USER"); name != "" {
		return name
	}
	return "unknown"
}

func currentMachine() string {
	if host, err := os.Hostname(); err == nil && host != "" {
		return host
	}
	return "unknown"
}

// 🔑 contextKey is the type for context values
type contextKey struct{}

// 🎯 FromContext gets the logger from context
func FromContext(ctx context.Context) *Logger {
	logger, ok := ctx.Value(contextKey{}).(*Logger)
	if !ok {
		panic("logger not found in context")
	}
	return logger
}

// 🎯 NewContext adds the logger to context
func NewContext(ctx context.Context, l *Logger) context.Context {
	return context.WithValue(ctx, contextKey{}, l)
}

var _ operation.ActionLogger = (*Logger)(nil)

// 📝 formatAction formats an action for display
func (l *Logger) formatAction(action operation.Action) string {
	symbol := '⟳'
	symbolColor := color.FgYellow
	if action.Kind == operation.KindDryRename {
		symbol = '○'
		symbolColor = color.FgCyan
	}

	return fmt.Sprintf("%s%s %s %s",
		fmt.Sprintf("%*s", actionIndent, ""),
		color.New(symbolColor).Sprint(string(symbol)),
		color.New(color.Faint).Sprint(fmt.Sprintf("%-*s", kindWidth, action.Kind)),
		action.Message)
}

// FormatLine renders the log file line of action at t.
func (l *Logger) FormatLine(t time.Time, action operation.Action) string {
	return fmt.Sprintf("%s : [%s] : %s@%s : %s\n",
		t.Format(stampLayout), action.Kind, l.user, l.machine, action.Message)
}

// 📝 LogAction prints an action, records it with zerolog and appends it to
// the log file. A failing log file never fails the caller.
func (l *Logger) LogAction(ctx context.Context, action operation.Action) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.actions++
	fmt.Fprintln(l.console, l.formatAction(action))

	l.zlog.Debug().
		Str("kind", action.Kind).
		Str("message", action.Message).
		Msg("action")

	if l.logFile == "" {
		return
	}
	if err := appendLine(l.logFile, l.FormatLine(l.now(), action)); err != nil {
		zerolog.Ctx(ctx).Debug().Err(err).Str("path", l.logFile).Msg("appending to action log")
	}
}

// Actions returns how many actions were logged.
func (l *Logger) Actions() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.actions
}

func appendLine(path, line string) error {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	defer f.Close()
	_, err = io.WriteString(f, line)
	return err
}

// 📝 LogNewline logs a newline
func (l *Logger) LogNewline() {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintln(l.console)
}

// 📝 Header logs a header
func (l *Logger) Header(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	toolText := color.New(color.Bold, color.FgCyan).Sprint("renamerc")
	fmt.Fprintf(l.console, "\n%s %s\n\n", toolText, color.New(color.Faint).Sprint("• "+msg))
	l.zlog.Info().Msg(msg)
}

// 📝 Println writes a preformatted line to the console
func (l *Logger) Println(line string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintln(l.console, line)
}

// 📝 Success logs a success message
func (l *Logger) Success(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.console, "✅ %s\n", color.New(color.FgGreen).Sprint(msg))
	l.zlog.Info().Msg(msg)
}

// 📝 Warning logs a warning message
func (l *Logger) Warning(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.console, "⚠️  %s\n", color.New(color.FgYellow).Sprint(msg))
	l.zlog.Warn().Msg(msg)
}

// 📝 Error logs an error message
func (l *Logger) Error(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.console, "❌ %s\n", color.New(color.FgRed).Sprint(msg))
	l.zlog.Error().Msg(msg)
}

// 📝 Info logs an info message
func (l *Logger) Info(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.console, "ℹ️  %s\n", color.New(color.FgCyan).Sprint(msg))
	l.zlog.Info().Msg(msg)
}

// 📝 Infof logs a formatted info message
func (l *Logger) Infof(format string, args ...interface{}) {
	l.Info(fmt.Sprintf(format, args...))
}

// 📝 Warningf logs a formatted warning message
func (l *Logger) Warningf(format string, args ...interface{}) {
	l.Warning(fmt.Sprintf(format, args...))
}

// 📝 Errorf logs a formatted error message
func (l *Logger) Errorf(format string, args ...interface{}) {
	l.Error(fmt.Sprintf(format, args...))
}

// 📝 Successf logs a formatted success message
func (l *Logger) Successf(format string, args ...interface{}) {
	l.Success(fmt.Sprintf(format, args...))
}
