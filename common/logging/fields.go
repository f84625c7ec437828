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
	"fmt"
	"sort"
	"strings"
)

// ErrorKey is the field key conventionally holding an error value.
const ErrorKey = "error"

// Fields is a set of key/value pairs attached to log messages.
//
// Fields can be stored in a context with SetFields, or used directly:
//
//	logging.Fields{"bucket": name}.Infof(ctx, "bucket created")
type Fields map[string]any

// WithError returns Fields with just the error field set.
func WithError(err error) Fields {
	return Fields{ErrorKey: err}
}

// Copy returns a new Fields with entries of f overlaid by other.
func (f Fields) Copy(other Fields) Fields {
	out := make(Fields, len(f)+len(other))
	for k, v := range f {
		out[k] = v
	}
	for k, v := range other {
		out[k] = v
	}
	return out
}

// String renders the fields as a sorted, brace-delimited list.
func (f Fields) String() string {
	keys := make([]string, 0, len(f))
	for k := range f {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteString("{")
	for i, k := range keys {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%q: %q", k, fmt.Sprintf("%v", f[k]))
	}
	b.WriteString("}")
	return b.String()
}

// Debugf logs at Debug level with these fields attached.
func (f Fields) Debugf(ctx context.Context, format string, args ...any) {
	logCall(SetFields(ctx, f), Debug, format, args)
}

// Infof logs at Info level with these fields attached.
func (f Fields) Infof(ctx context.Context, format string, args ...any) {
	logCall(SetFields(ctx, f), Info, format, args)
}

// Warningf logs at Warning level with these fields attached.
func (f Fields) Warningf(ctx context.Context, format string, args ...any) {
	logCall(SetFields(ctx, f), Warning, format, args)
}

// Errorf logs at Error level with these fields attached.
func (f Fields) Errorf(ctx context.Context, format string, args ...any) {
	logCall(SetFields(ctx, f), Error, format, args)
}

// SetFields overlays the fields onto the ones already in the context.
//
// All subsequent log messages through the returned context carry the merged
// set.
func SetFields(ctx context.Context, f Fields) context.Context {
	if cur := GetFields(ctx); len(cur) > 0 {
		f = cur.Copy(f)
	}
	return context.WithValue(ctx, fieldsKey, f)
}

// SetField is a shortcut for SetFields with a single field.
func SetField(ctx context.Context, key string, value any) context.Context {
	return SetFields(ctx, Fields{key: value})
}

// GetFields returns the fields stored in the context, or nil.
func GetFields(ctx context.Context) Fields {
	f, _ := ctx.Value(fieldsKey).(Fields)
	return f
}

// fieldsLogger decorates a Logger so that every emitted message has the
// rendered fields appended.
type fieldsLogger struct {
	base   Logger
	fields Fields
}

func (fl *fieldsLogger) Debugf(format string, args ...any) {
	fl.LogCall(Debug, 1, format, args)
}

func (fl *fieldsLogger) Infof(format string, args ...any) {
	fl.LogCall(Info, 1, format, args)
}

func (fl *fieldsLogger) Warningf(format string, args ...any) {
	fl.LogCall(Warning, 1, format, args)
}

func (fl *fieldsLogger) Errorf(format string, args ...any) {
	fl.LogCall(Error, 1, format, args)
}

func (fl *fieldsLogger) LogCall(lvl Level, calldepth int, format string, args []any) {
	msg := fmt.Sprintf(format, args...)
	fl.base.LogCall(lvl, calldepth+1, "%s %s", []any{msg, fl.fields})
}
