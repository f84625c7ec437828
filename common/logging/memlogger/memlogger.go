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

// Package memlogger implements an in-memory logging.Logger for tests that
// want to assert on emitted log messages.
package memlogger

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/serverless-registry/deploytool/common/logging"
)

// LogEntry is a single captured log message.
type LogEntry struct {
	Level logging.Level
	Msg   string
}

// MemLogger collects log messages in memory.
//
// Safe for concurrent use. The zero value is ready to use.
type MemLogger struct {
	mu      sync.Mutex
	entries []LogEntry
}

var _ logging.Logger = (*MemLogger)(nil)

// Use installs a fresh MemLogger into the context at Debug level.
//
// Retrieve it for inspection with logging.Get:
//
//	ml := logging.Get(ctx).(*memlogger.MemLogger)
func Use(ctx context.Context) context.Context {
	ctx = logging.SetLevel(ctx, logging.Debug)
	return logging.Set(ctx, &MemLogger{})
}

func (m *MemLogger) Debugf(format string, args ...any) {
	m.LogCall(logging.Debug, 1, format, args)
}

func (m *MemLogger) Infof(format string, args ...any) {
	m.LogCall(logging.Info, 1, format, args)
}

func (m *MemLogger) Warningf(format string, args ...any) {
	m.LogCall(logging.Warning, 1, format, args)
}

func (m *MemLogger) Errorf(format string, args ...any) {
	m.LogCall(logging.Error, 1, format, args)
}

func (m *MemLogger) LogCall(lvl logging.Level, calldepth int, format string, args []any) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries = append(m.entries, LogEntry{lvl, fmt.Sprintf(format, args...)})
}

// Messages returns a copy of all captured entries, in order.
func (m *MemLogger) Messages() []LogEntry {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]LogEntry, len(m.entries))
	copy(out, m.entries)
	return out
}

// Has reports whether some captured message at the given level contains
// substr.
func (m *MemLogger) Has(lvl logging.Level, substr string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, e := range m.entries {
		if e.Level == lvl && strings.Contains(e.Msg, substr) {
			return true
		}
	}
	return false
}

// Reset drops all captured entries.
func (m *MemLogger) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries = nil
}
