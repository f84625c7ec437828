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

// Debugf logs a Debug level message through the context's logger.
func Debugf(ctx context.Context, format string, args ...any) {
	logCall(ctx, Debug, format, args)
}

// Infof logs an Info level message through the context's logger.
func Infof(ctx context.Context, format string, args ...any) {
	logCall(ctx, Info, format, args)
}

// Warningf logs a Warning level message through the context's logger.
func Warningf(ctx context.Context, format string, args ...any) {
	logCall(ctx, Warning, format, args)
}

// Errorf logs an Error level message through the context's logger.
func Errorf(ctx context.Context, format string, args ...any) {
	logCall(ctx, Error, format, args)
}

func logCall(ctx context.Context, lvl Level, format string, args []any) {
	if !IsLogging(ctx, lvl) {
		return
	}
	// 2 frames: logCall and the exported helper above it.
	Get(ctx).LogCall(lvl, 2, format, args)
}
