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

	"github.com/serverless-registry/deploytool/common/data/stringset"
	"github.com/serverless-registry/deploytool/common/errors"
	deployflag "github.com/serverless-registry/deploytool/common/flag"
	"github.com/serverless-registry/deploytool/common/logging"
)

// Reserved identifiers of the managed lifecycle rules. Rules under other
// identifiers are never touched.
const (
	RuleExpireObjects  = "expire-objects"
	RuleAbortMultipart = "abort-multipart-uploads"
	RuleIATransition   = "transition-infrequent-access"
)

// RuleKind enumerates the retention rule categories the tool manages.
type RuleKind int

const (
	// ExpireObjects deletes objects some days after upload.
	ExpireObjects RuleKind = iota
	// AbortMultipartUploads drops incomplete multipart uploads.
	AbortMultipartUploads
	// TransitionInfrequentAccess moves objects to Infrequent Access
	// storage.
	TransitionInfrequentAccess
)

// ruleKinds is the reconciliation order.
var ruleKinds = []RuleKind{ExpireObjects, AbortMultipartUploads, TransitionInfrequentAccess}

// RuleID returns the reserved bucket rule identifier of the category.
func (k RuleKind) RuleID() string {
	switch k {
	case ExpireObjects:
		return RuleExpireObjects
	case AbortMultipartUploads:
		return RuleAbortMultipart
	case TransitionInfrequentAccess:
		return RuleIATransition
	}
	panic("unknown rule kind")
}

// String implements fmt.Stringer for logs.
func (k RuleKind) String() string {
	return k.RuleID()
}

// cliFlag is the wrangler flag that selects the category when adding a
// rule.
func (k RuleKind) cliFlag() string {
	switch k {
	case ExpireObjects:
		return "--expire-days"
	case AbortMultipartUploads:
		return "--abort-multipart-days"
	case TransitionInfrequentAccess:
		return "--ia-transition-days"
	}
	panic("unknown rule kind")
}

// LifecycleRule is one desired retention rule.
type LifecycleRule struct {
	Kind RuleKind
	Days int
}

// desiredRule returns the configured rule of the category, if any.
func desiredRule(cfg Config, k RuleKind) (LifecycleRule, bool) {
	var d deployflag.OptionalDays
	switch k {
	case ExpireObjects:
		d = cfg.ExpireDays
	case AbortMultipartUploads:
		d = cfg.AbortMultipartDays
	case TransitionInfrequentAccess:
		d = cfg.IATransitionDays
	}
	if !d.Valid {
		return LifecycleRule{}, false
	}
	return LifecycleRule{Kind: k, Days: d.Days}, true
}

// reconcileLifecycle drives the bucket's managed lifecycle rules to the
// configured state.
//
// The bucket is created first if needed. Rules are listed once; then, per
// category, a pre-existing rule under the managed identifier is removed
// unconditionally, and the desired rule (if configured) is added fresh. The
// end state per category is exactly one rule with the configured window, or
// none, regardless of what was there before.
func reconcileLifecycle(ctx context.Context, w Wrangler, cfg Config) error {
	if err := w.EnsureBucket(ctx, cfg.BucketName); err != nil {
		return errors.Fmt("ensuring bucket %q: %w", cfg.BucketName, err)
	}

	ids, err := w.ListLifecycleRuleIDs(ctx, cfg.BucketName)
	if err != nil {
		return errors.Fmt("listing lifecycle rules: %w", err)
	}
	existing := stringset.NewFromSlice(ids...)
	logging.Debugf(ctx, "bucket %q has %d lifecycle rule(s): %v", cfg.BucketName, existing.Len(), ids)

	for _, kind := range ruleKinds {
		id := kind.RuleID()
		if existing.Has(id) {
			if err := w.RemoveLifecycleRule(ctx, cfg.BucketName, id); err != nil {
				return errors.Fmt("removing lifecycle rule %q: %w", id, err)
			}
			logging.Infof(ctx, "removed existing lifecycle rule %q", id)
		}
		rule, ok := desiredRule(cfg, kind)
		if !ok {
			logging.Infof(ctx, "lifecycle rule %q not configured, leaving it unset", id)
			continue
		}
		if err := w.AddLifecycleRule(ctx, cfg.BucketName, rule); err != nil {
			return errors.Fmt("adding lifecycle rule %q: %w", id, err)
		}
		logging.Fields{
			"rule": id,
			"days": rule.Days,
		}.Infof(ctx, "lifecycle rule set")
	}
	return nil
}
