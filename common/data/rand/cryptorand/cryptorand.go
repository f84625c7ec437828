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

// Package cryptorand exposes crypto/rand through the context, so that it can
// be mocked in tests that need deterministic output.
package cryptorand

import (
	"context"
	"crypto/rand"
	"io"
	mathrand "math/rand"
	"sync"
)

type key int

var randKey key

// Get returns the random source installed in the context, or crypto/rand's
// Reader if nothing is installed (i.e. in production).
func Get(ctx context.Context) io.Reader {
	if r, ok := ctx.Value(randKey).(io.Reader); ok {
		return r
	}
	return rand.Reader
}

// Use installs the given source of randomness into the context.
func Use(ctx context.Context, r io.Reader) context.Context {
	return context.WithValue(ctx, randKey, r)
}

// Read is a shortcut for io.ReadFull(Get(ctx), b).
func Read(ctx context.Context, b []byte) (int, error) {
	return io.ReadFull(Get(ctx), b)
}

// MockForTest installs a deterministic, insecure source of randomness
// seeded with the given value. Never use this outside of tests.
func MockForTest(ctx context.Context, seed int64) context.Context {
	return Use(ctx, &lockedRand{r: mathrand.New(mathrand.NewSource(seed))})
}

// lockedRand makes the unsynchronized math/rand.Rand safe for concurrent
// reads.
type lockedRand struct {
	mu sync.Mutex
	r  *mathrand.Rand
}

func (lr *lockedRand) Read(b []byte) (int, error) {
	lr.mu.Lock()
	defer lr.mu.Unlock()
	return lr.r.Read(b)
}
