// Copyright 2025 The Serverless Registry Authors.
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

package deploy

import (
	"context"
	"fmt"
	"sync"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/serverless-registry/deploytool/common/errors"
	deployflag "github.com/serverless-registry/deploytool/common/flag"
)

// fakeWrangler is an in-memory Wrangler that keeps bucket state, so tests
// can assert on end states rather than call sequences alone.
type fakeWrangler struct {
	mu      sync.Mutex
	buckets map[string]bool
	rules   map[string]int // rule ID -> days
	secrets map[string]string
	ops     []string // every mutation, in order

	deployed int
	failOp   string // op recorded verbatim; a matching prefix fails
}

func newFakeWrangler() *fakeWrangler {
	return &fakeWrangler{
		buckets: map[string]bool{},
		rules:   map[string]int{},
		secrets: map[string]string{},
	}
}

func (f *fakeWrangler) record(op string) error {
	f.ops = append(f.ops, op)
	if f.failOp != "" && len(op) >= len(f.failOp) && op[:len(f.failOp)] == f.failOp {
		return errors.New("injected failure")
	}
	return nil
}

func (f *fakeWrangler) EnsureBucket(ctx context.Context, bucket string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.record("ensure-bucket " + bucket); err != nil {
		return err
	}
	f.buckets[bucket] = true
	return nil
}

func (f *fakeWrangler) ListLifecycleRuleIDs(ctx context.Context, bucket string) ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.record("list-rules " + bucket); err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(f.rules))
	for id := range f.rules {
		ids = append(ids, id)
	}
	return ids, nil
}

func (f *fakeWrangler) RemoveLifecycleRule(ctx context.Context, bucket, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.record("remove-rule " + id); err != nil {
		return err
	}
	if _, ok := f.rules[id]; !ok {
		return errors.Fmt("no lifecycle rule %q on bucket %q", id, bucket)
	}
	delete(f.rules, id)
	return nil
}

func (f *fakeWrangler) AddLifecycleRule(ctx context.Context, bucket string, r LifecycleRule) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.record(fmt.Sprintf("add-rule %s %d", r.Kind.RuleID(), r.Days)); err != nil {
		return err
	}
	if _, ok := f.rules[r.Kind.RuleID()]; ok {
		return errors.Fmt("lifecycle rule %q already exists on bucket %q", r.Kind.RuleID(), bucket)
	}
	f.rules[r.Kind.RuleID()] = r.Days
	return nil
}

func (f *fakeWrangler) PutSecret(ctx context.Context, dir, name, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.record("put-secret " + name); err != nil {
		return err
	}
	f.secrets[name] = value
	return nil
}

func (f *fakeWrangler) Deploy(ctx context.Context, dir string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.record("deploy " + dir); err != nil {
		return err
	}
	f.deployed++
	return nil
}

func countPrefix(ops []string, prefix string) int {
	n := 0
	for _, op := range ops {
		if len(op) >= len(prefix) && op[:len(prefix)] == prefix {
			n++
		}
	}
	return n
}

func TestReconcileLifecycle(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	Convey(`reconcileLifecycle`, t, func() {
		fw := newFakeWrangler()
		cfg := testConfig()

		Convey(`on a fresh bucket creates all configured rules`, func() {
			So(reconcileLifecycle(ctx, fw, cfg), ShouldBeNil)

			So(fw.buckets["r2-registry"], ShouldBeTrue)
			So(fw.rules, ShouldResemble, map[string]int{
				RuleExpireObjects:  30,
				RuleAbortMultipart: 1,
				RuleIATransition:   14,
			})
			So(countPrefix(fw.ops, "remove-rule"), ShouldEqual, 0)
		})

		Convey(`replaces pre-existing managed rules exactly once`, func() {
			fw.rules[RuleExpireObjects] = 90
			fw.rules[RuleIATransition] = 3

			So(reconcileLifecycle(ctx, fw, cfg), ShouldBeNil)

			So(fw.rules, ShouldResemble, map[string]int{
				RuleExpireObjects:  30,
				RuleAbortMultipart: 1,
				RuleIATransition:   14,
			})
			So(countPrefix(fw.ops, "remove-rule "+RuleExpireObjects), ShouldEqual, 1)
			So(countPrefix(fw.ops, "remove-rule "+RuleIATransition), ShouldEqual, 1)
			So(countPrefix(fw.ops, "remove-rule "+RuleAbortMultipart), ShouldEqual, 0)
		})

		Convey(`removes a rule whose retention is unset, and adds nothing back`, func() {
			fw.rules[RuleExpireObjects] = 30
			cfg.ExpireDays = deployflag.OptionalDays{}

			So(reconcileLifecycle(ctx, fw, cfg), ShouldBeNil)

			_, ok := fw.rules[RuleExpireObjects]
			So(ok, ShouldBeFalse)
			So(fw.rules, ShouldResemble, map[string]int{
				RuleAbortMultipart: 1,
				RuleIATransition:   14,
			})
		})

		Convey(`never touches rules under other identifiers`, func() {
			fw.rules["custom-archival"] = 365

			So(reconcileLifecycle(ctx, fw, cfg), ShouldBeNil)

			So(fw.rules["custom-archival"], ShouldEqual, 365)
			So(countPrefix(fw.ops, "remove-rule custom-archival"), ShouldEqual, 0)
		})

		Convey(`is idempotent`, func() {
			So(reconcileLifecycle(ctx, fw, cfg), ShouldBeNil)
			first := map[string]int{}
			for k, v := range fw.rules {
				first[k] = v
			}

			So(reconcileLifecycle(ctx, fw, cfg), ShouldBeNil)
			So(fw.rules, ShouldResemble, first)
		})

		Convey(`fails fast when the bucket cannot be ensured`, func() {
			fw.failOp = "ensure-bucket"
			err := reconcileLifecycle(ctx, fw, cfg)
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, `ensuring bucket "r2-registry"`)
		})

		Convey(`fails fast when listing fails`, func() {
			fw.failOp = "list-rules"
			err := reconcileLifecycle(ctx, fw, cfg)
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, "listing lifecycle rules")
		})

		Convey(`wraps rule operation failures with the rule ID`, func() {
			fw.failOp = "add-rule " + RuleAbortMultipart
			err := reconcileLifecycle(ctx, fw, cfg)
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, `adding lifecycle rule "abort-multipart-uploads"`)
		})
	})
}
