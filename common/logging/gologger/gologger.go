// Copyright 2024 The Serverless Registry Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package gologger is a logging.Logger backend on top of op/go-logging,
// writing formatted, optionally colorized lines to an io.Writer.
//
// Binaries install it once near main:
//
//	ctx := gologger.StdConfig.Use(context.Background())
package gologger

import (
	"context"
	"io"
	"os"
	"sync"

	gol "github.com/op/go-logging"

	"github.com/serverless-registry/deploytool/common/logging"
)

// StandardFormat is a preferred logging format.
//
// It is compatible with logging format of the go-logging library:
// pid, timestamp, abbreviated file of the call site, level and a message
// sequence number.
const StandardFormat = `%{color}[P%{pid} %{time:15:04:05.000} %{shortfile} %{level:.4s} %{id:03x}]%{color:reset} %{message}`

// StandardFormatNoColor is like StandardFormat, but disables colors.
const StandardFormatNoColor = `[P%{pid} %{time:15:04:05.000} %{shortfile} %{level:.4s} %{id:03x}] %{message}`

// StdConfig defines default logger configuration, writing StandardFormat
// lines to stderr.
var StdConfig = LoggerConfig{Out: os.Stderr, Format: StandardFormat}

// LoggerConfig owns the parameters of a new logger instance.
type LoggerConfig struct {
	Out    io.Writer // where to write the log output
	Format string    // a go-logging format string, e.g. StandardFormat
}

// NewLogger returns a new logging.Logger backed by this config.
//
// Level filtering is not done here: it is handled by the logging package
// based on the context's level (see logging.SetLevel).
func (lc *LoggerConfig) NewLogger() logging.Logger {
	backend := gol.NewLogBackend(lc.Out, "", 0)
	formatted := gol.NewBackendFormatter(backend, gol.MustStringFormatter(lc.Format))
	leveled := gol.AddModuleLevel(formatted)
	leveled.SetLevel(gol.DEBUG, "")

	l := &gol.Logger{Module: "gologger"}
	l.SetBackend(leveled)
	return &loggerImpl{l: l}
}

// Use installs a logger configured by lc into the context.
func (lc *LoggerConfig) Use(ctx context.Context) context.Context {
	return logging.Set(ctx, lc.NewLogger())
}

// loggerImpl bridges logging.Logger calls into a go-logging logger.
type loggerImpl struct {
	mu sync.Mutex
	l  *gol.Logger
}

func (li *loggerImpl) Debugf(format string, args ...any) {
	li.LogCall(logging.Debug, 1, format, args)
}

func (li *loggerImpl) Infof(format string, args ...any) {
	li.LogCall(logging.Info, 1, format, args)
}

func (li *loggerImpl) Warningf(format string, args ...any) {
	li.LogCall(logging.Warning, 1, format, args)
}

func (li *loggerImpl) Errorf(format string, args ...any) {
	li.LogCall(logging.Error, 1, format, args)
}

func (li *loggerImpl) LogCall(lvl logging.Level, calldepth int, format string, args []any) {
	// go-logging resolves %{shortfile} relative to its own call site, plus
	// ExtraCalldepth frames. One extra frame for LogCall itself.
	li.mu.Lock()
	defer li.mu.Unlock()
	li.l.ExtraCalldepth = calldepth + 1

	switch lvl {
	case logging.Debug:
		li.l.Debugf(format, args...)
	case logging.Info:
		li.l.Infof(format, args...)
	case logging.Warning:
		li.l.Warningf(format, args...)
	default:
		li.l.Errorf(format, args...)
	}
}
