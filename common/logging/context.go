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

package logging

import (
	"context"
)

type contextKey int

const (
	loggerKey contextKey = iota
	levelKey
	fieldsKey
)

// Set installs a Logger into the context.
func Set(ctx context.Context, l Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// Get returns the Logger installed in the context, bound to the context's
// current fields (see SetFields).
//
// If no logger is installed, returns Null, which swallows all messages.
func Get(ctx context.Context) Logger {
	l, ok := ctx.Value(loggerKey).(Logger)
	if !ok {
		return Null
	}
	if f := GetFields(ctx); len(f) > 0 {
		l = &fieldsLogger{base: l, fields: f}
	}
	return l
}

// SetLevel sets the minimum level of messages to emit through this context.
func SetLevel(ctx context.Context, lvl Level) context.Context {
	return context.WithValue(ctx, levelKey, lvl)
}

// GetLevel returns the context's minimum logging level. Defaults to Info.
func GetLevel(ctx context.Context) Level {
	if lvl, ok := ctx.Value(levelKey).(Level); ok {
		return lvl
	}
	return Info
}

// IsLogging reports whether a message at the given level would be emitted.
//
// Useful to skip expensive argument construction for debug logging.
func IsLogging(ctx context.Context, lvl Level) bool {
	return lvl >= GetLevel(ctx)
}
