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

// Package logging defines a Logger interface and context helpers so that
// libraries can log through whatever backend the caller installed.
//
// The logger lives in a context.Context. Code logs via the package-level
// helpers:
//
//	logging.Infof(ctx, "fetched %d objects", n)
//
// and binaries pick a backend once, near main (see the gologger
// subpackage). If no backend is installed, log calls are dropped.
package logging

import (
	"fmt"
	"strings"
)

// Level is a verbosity threshold. Messages below the context's level are
// not emitted.
type Level int

// Supported levels, in increasing order of severity.
const (
	Debug Level = iota
	Info
	Warning
	Error
)

// String returns a human readable name of the level.
//
// Together with Set it makes *Level usable as a flag.Value.
func (l Level) String() string {
	switch l {
	case Debug:
		return "debug"
	case Info:
		return "info"
	case Warning:
		return "warning"
	case Error:
		return "error"
	default:
		return "unknown"
	}
}

// Set implements flag.Value.
func (l *Level) Set(v string) error {
	switch strings.ToLower(v) {
	case "debug":
		*l = Debug
	case "info":
		*l = Info
	case "warning":
		*l = Warning
	case "error":
		*l = Error
	default:
		return fmt.Errorf("unknown logging level %q", v)
	}
	return nil
}

// Get implements flag.Getter.
func (l *Level) Get() any {
	return *l
}

// Logger emits log messages at various levels.
//
// Implementations must be safe for concurrent use.
type Logger interface {
	// Debugf formats its arguments according to the format, analogous to
	// fmt.Printf, and records the text as a log message at Debug level.
	Debugf(format string, args ...any)

	// Infof is like Debugf, but logs at Info level.
	Infof(format string, args ...any)

	// Warningf is like Debugf, but logs at Warning level.
	Warningf(format string, args ...any)

	// Errorf is like Debugf, but logs at Error level.
	Errorf(format string, args ...any)

	// LogCall is the generic form of the level methods.
	//
	// calldepth is the number of stack frames between LogCall and the
	// originating user call, used by backends that record the call site.
	LogCall(lvl Level, calldepth int, format string, args []any)
}
